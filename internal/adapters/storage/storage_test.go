package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/ports"
)

func setupStore(t *testing.T) ports.Storage {
	t.Helper()

	store, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTaskRepositoryRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	loaded, err := store.Tasks().Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded, "empty store yields no tasks")

	deadline := time.Date(2025, time.March, 14, 23, 59, 59, 0, time.UTC)
	tasks := []domain.Task{
		{ID: 2, Text: "ship the release", Priority: domain.PriorityHigh, CreatedAt: time.Now().UTC(), Deadline: &deadline},
		{ID: 1, Text: "water plants", Priority: domain.PriorityLow, CreatedAt: time.Now().UTC(), Completed: true, RolledOver: true},
	}
	require.NoError(t, store.Tasks().Save(ctx, tasks))

	loaded, err = store.Tasks().Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "ship the release", loaded[0].Text)
	require.NotNil(t, loaded[0].Deadline)
	assert.True(t, loaded[0].Deadline.Equal(deadline))
	assert.True(t, loaded[1].Completed)
	assert.True(t, loaded[1].RolledOver)

	// Saving again replaces, not appends.
	require.NoError(t, store.Tasks().Save(ctx, tasks[:1]))
	loaded, err = store.Tasks().Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestUserDataRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	data, err := store.UserData().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.UserData{}, data, "empty store yields zero state")

	want := domain.UserData{XP: 120, Streak: 4, LastActive: "2025-03-12", CompletedToday: 3}
	require.NoError(t, store.UserData().Save(ctx, want))

	data, err = store.UserData().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, data)
}

func TestSettingsDefaultWhenAbsent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	settings, err := store.Settings().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultPomodoroSettings(), settings)

	custom := domain.PomodoroSettings{WorkDuration: 50, ShortBreak: 10, LongBreak: 30, SoundEnabled: false}
	require.NoError(t, store.Settings().Save(ctx, custom))

	settings, err = store.Settings().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, custom, settings)
}

func TestStatsRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	taskID := int64(42)
	want := domain.PomodoroStats{
		TodayPomodoros: 2,
		TotalPomodoros: 9,
		TotalMinutes:   225,
		LastDate:       "2025-03-12",
		Log: []domain.SessionLogEntry{
			{
				ID:          "a2a1f1de-52b0-4ee0-aaaf-0f2ae6a1f0a1",
				TaskID:      &taskID,
				Minutes:     25,
				CompletedAt: time.Date(2025, time.March, 12, 15, 25, 0, 0, time.UTC),
				GitBranch:   "main",
				GitCommit:   "abc1234",
			},
		},
	}
	require.NoError(t, store.Stats().Save(ctx, want))

	stats, err := store.Stats().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want.TotalPomodoros, stats.TotalPomodoros)
	require.Len(t, stats.Log, 1)
	assert.Equal(t, want.Log[0].ID, stats.Log[0].ID)
	require.NotNil(t, stats.Log[0].TaskID)
	assert.Equal(t, taskID, *stats.Log[0].TaskID)
	assert.Equal(t, "main", stats.Log[0].GitBranch)
}

func TestThemeDefaultsToLight(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	theme, err := store.Theme().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "light", theme)

	require.NoError(t, store.Theme().Save(ctx, "dark"))
	theme, err = store.Theme().Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}
