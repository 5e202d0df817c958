package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// taskRepository stores the full task collection under one key.
type taskRepository struct {
	store *sqliteStore
}

func (r *taskRepository) Load(ctx context.Context) ([]domain.Task, error) {
	raw, ok, err := r.store.get(ctx, keyTasks)
	if err != nil || !ok {
		return nil, err
	}
	var tasks []domain.Task
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *taskRepository) Save(ctx context.Context, tasks []domain.Task) error {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return r.store.set(ctx, keyTasks, raw)
}

type userDataRepository struct {
	store *sqliteStore
}

func (r *userDataRepository) Load(ctx context.Context) (domain.UserData, error) {
	var data domain.UserData
	raw, ok, err := r.store.get(ctx, keyUserData)
	if err != nil || !ok {
		return data, err
	}
	// Unknown or missing fields default rather than fail.
	if err := json.Unmarshal(raw, &data); err != nil {
		return domain.UserData{}, fmt.Errorf("failed to decode user data: %w", err)
	}
	return data, nil
}

func (r *userDataRepository) Save(ctx context.Context, data domain.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}
	return r.store.set(ctx, keyUserData, raw)
}

type settingsRepository struct {
	store *sqliteStore
}

func (r *settingsRepository) Load(ctx context.Context) (domain.PomodoroSettings, error) {
	settings := domain.DefaultPomodoroSettings()
	raw, ok, err := r.store.get(ctx, keySettings)
	if err != nil || !ok {
		return settings, err
	}
	if err := json.Unmarshal(raw, &settings); err != nil {
		return domain.DefaultPomodoroSettings(), fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

func (r *settingsRepository) Save(ctx context.Context, settings domain.PomodoroSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return r.store.set(ctx, keySettings, raw)
}

type statsRepository struct {
	store *sqliteStore
}

func (r *statsRepository) Load(ctx context.Context) (domain.PomodoroStats, error) {
	var stats domain.PomodoroStats
	raw, ok, err := r.store.get(ctx, keyStats)
	if err != nil || !ok {
		return stats, err
	}
	if err := json.Unmarshal(raw, &stats); err != nil {
		return domain.PomodoroStats{}, fmt.Errorf("failed to decode stats: %w", err)
	}
	return stats, nil
}

func (r *statsRepository) Save(ctx context.Context, stats domain.PomodoroStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	return r.store.set(ctx, keyStats, raw)
}

type themeRepository struct {
	store *sqliteStore
}

func (r *themeRepository) Load(ctx context.Context) (string, error) {
	raw, ok, err := r.store.get(ctx, keyTheme)
	if err != nil {
		return "", err
	}
	if !ok {
		return "light", nil
	}
	var theme string
	if err := json.Unmarshal(raw, &theme); err != nil {
		return "light", fmt.Errorf("failed to decode theme: %w", err)
	}
	return theme, nil
}

func (r *themeRepository) Save(ctx context.Context, theme string) error {
	raw, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	return r.store.set(ctx, keyTheme, raw)
}
