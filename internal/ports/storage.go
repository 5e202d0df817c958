// Package ports defines the interfaces (driven and driving ports) for
// the FlowTask application following hexagonal architecture principles.
// These interfaces define the contracts between the domain layer and
// external infrastructure.
package ports

import (
	"context"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// TaskRepository persists the task collection as a single document.
// The store writes through after every mutation, so Save always carries
// the full collection. This is a driven port (implemented by adapters).
type TaskRepository interface {
	// Load retrieves the full task collection; an empty store yields nil.
	Load(ctx context.Context) ([]domain.Task, error)

	// Save persists the full task collection.
	Save(ctx context.Context, tasks []domain.Task) error
}

// UserDataRepository persists the gamification state.
type UserDataRepository interface {
	Load(ctx context.Context) (domain.UserData, error)
	Save(ctx context.Context, data domain.UserData) error
}

// SettingsRepository persists the focus timer settings. Load falls back
// to defaults when the store holds nothing.
type SettingsRepository interface {
	Load(ctx context.Context) (domain.PomodoroSettings, error)
	Save(ctx context.Context, settings domain.PomodoroSettings) error
}

// StatsRepository persists the focus session statistics.
type StatsRepository interface {
	Load(ctx context.Context) (domain.PomodoroStats, error)
	Save(ctx context.Context, stats domain.PomodoroStats) error
}

// ThemeRepository persists the display theme preference.
type ThemeRepository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, theme string) error
}

// Storage is the combined repository interface over the key-value store.
// This is a driven port (implemented by adapters).
type Storage interface {
	Tasks() TaskRepository
	UserData() UserDataRepository
	Settings() SettingsRepository
	Stats() StatsRepository
	Theme() ThemeRepository

	// Close closes the storage connection.
	Close() error

	// Migrate creates the backing schema.
	Migrate() error
}
