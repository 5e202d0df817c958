// Package storage provides the SQLite-backed key-value store behind
// FlowTask's repositories. Each repository owns one key and stores its
// state as a single JSON document, matching the app's write-through
// persistence model.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/flowtaskapp/flowtask/internal/ports"
	_ "modernc.org/sqlite"
)

// Keys used in the kv table. Each is read once at startup and written
// after its owning component mutates.
const (
	keyTasks    = "tasks"
	keyUserData = "userdata"
	keySettings = "pomodoro_settings"
	keyStats    = "pomodoro_stats"
	keyTheme    = "theme"
)

// sqliteStore implements the ports.Storage interface using SQLite.
type sqliteStore struct {
	db *sql.DB
}

// Ensure sqliteStore implements ports.Storage.
var _ ports.Storage = (*sqliteStore)(nil)

// New creates a new SQLite storage instance at the given path.
func New(dbPath string) (ports.Storage, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// A single connection keeps :memory: databases coherent and is
	// plenty for a CLI.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	store := &sqliteStore{db: db}
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// NewMemory creates an in-memory SQLite storage instance for testing.
func NewMemory() (ports.Storage, error) {
	return New(":memory:")
}

// Migrate creates the key-value schema.
func (s *sqliteStore) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func (s *sqliteStore) Tasks() ports.TaskRepository { return &taskRepository{store: s} }

func (s *sqliteStore) UserData() ports.UserDataRepository { return &userDataRepository{store: s} }

func (s *sqliteStore) Settings() ports.SettingsRepository { return &settingsRepository{store: s} }

func (s *sqliteStore) Stats() ports.StatsRepository { return &statsRepository{store: s} }

func (s *sqliteStore) Theme() ports.ThemeRepository { return &themeRepository{store: s} }

// get reads the raw JSON document under key. The second return value is
// false when the key is absent.
func (s *sqliteStore) get(ctx context.Context, key string) ([]byte, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return []byte(value), true, nil
}

// set writes the raw JSON document under key, replacing any prior value.
func (s *sqliteStore) set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(value))
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}
