package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowtaskapp/flowtask/internal/adapters/storage"
	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/ports"
)

// fakeTicker never fires; tests drive the countdown through Tick.
type fakeTicker struct {
	ch chan time.Time
}

func newFakeTicker(time.Duration) ports.Ticker {
	return &fakeTicker{ch: make(chan time.Time)}
}

func (f *fakeTicker) C() <-chan time.Time { return f.ch }

func (f *fakeTicker) Stop() {}

func setupFocusService(t *testing.T) (*FocusService, *RewardService, *fakeClock) {
	t.Helper()

	store, err := storage.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := &fakeClock{now: testNow}
	ctx := context.Background()

	rewards := NewRewardService(store.UserData(), clock)
	require.NoError(t, rewards.StartDay(ctx))

	svc := NewFocusService(store.Settings(), store.Stats(), clock, newFakeTicker, nil, rewards)
	require.NoError(t, svc.Load(ctx))
	t.Cleanup(svc.Close)
	return svc, rewards, clock
}

// runDown ticks a session to completion.
func runDown(t *testing.T, svc *FocusService, ctx context.Context) {
	t.Helper()
	for svc.Snapshot().TimeRemaining > 0 && svc.Snapshot().IsRunning {
		require.NoError(t, svc.Tick(ctx))
	}
}

func TestFocusServiceDefaults(t *testing.T) {
	svc, _, _ := setupFocusService(t)

	state := svc.Snapshot()
	assert.Equal(t, domain.ModeWork, state.Mode)
	assert.Equal(t, 25*60, state.TimeRemaining)
	assert.Equal(t, 25*60, state.TotalTime)
	assert.False(t, state.IsRunning)
}

func TestFocusServiceStartRequiresTask(t *testing.T) {
	svc, _, _ := setupFocusService(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Start(ctx), domain.ErrNoTaskSelected)

	taskID := int64(42)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.Start(ctx))

	state := svc.Snapshot()
	assert.True(t, state.IsRunning)
	assert.Equal(t, 1, state.CurrentSession)
}

func TestFocusServiceBreakAlsoRequiresTask(t *testing.T) {
	svc, _, _ := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(42)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.UpdateSettings(ctx, domain.PomodoroSettings{
		WorkDuration: 1, ShortBreak: 1, LongBreak: 2, SoundEnabled: true,
	}))
	require.NoError(t, svc.Start(ctx))
	runDown(t, svc, ctx)
	require.Equal(t, domain.ModeShortBreak, svc.Snapshot().Mode)

	svc.SelectTask(nil)
	assert.ErrorIs(t, svc.Start(ctx), domain.ErrNoTaskSelected)
}

func TestFocusServiceWorkSessionCompletes(t *testing.T) {
	svc, rewards, _ := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(42)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.UpdateSettings(ctx, domain.PomodoroSettings{
		WorkDuration: 1, ShortBreak: 1, LongBreak: 2, SoundEnabled: true,
	}))

	var finishedMode, nextMode domain.FocusMode
	svc.SetOnSessionComplete(func(finished, next domain.FocusMode) {
		finishedMode = finished
		nextMode = next
	})

	require.NoError(t, svc.Start(ctx))
	runDown(t, svc, ctx)

	assert.Equal(t, domain.ModeWork, finishedMode)
	assert.Equal(t, domain.ModeShortBreak, nextMode)

	state := svc.Snapshot()
	assert.False(t, state.IsRunning, "next session waits for an explicit start")
	assert.Equal(t, domain.ModeShortBreak, state.Mode)
	assert.Equal(t, 60, state.TimeRemaining)
	assert.Equal(t, 1, state.CompletedSessions)

	assert.Equal(t, 5, rewards.Data().XP)

	stats := svc.Stats()
	assert.Equal(t, 1, stats.TodayPomodoros)
	assert.Equal(t, 1, stats.TotalPomodoros)
	assert.Equal(t, 1, stats.TotalMinutes)
	require.Len(t, stats.Log, 1)
	assert.NotEmpty(t, stats.Log[0].ID)
	require.NotNil(t, stats.Log[0].TaskID)
	assert.Equal(t, taskID, *stats.Log[0].TaskID)
}

func TestFocusServiceLongBreakEveryFourth(t *testing.T) {
	svc, _, _ := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(7)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.UpdateSettings(ctx, domain.PomodoroSettings{
		WorkDuration: 1, ShortBreak: 1, LongBreak: 2,
	}))

	var breaks []domain.FocusMode
	svc.SetOnSessionComplete(func(finished, next domain.FocusMode) {
		if finished == domain.ModeWork {
			breaks = append(breaks, next)
		}
	})

	for i := 0; i < 4; i++ {
		require.NoError(t, svc.Start(ctx)) // work
		runDown(t, svc, ctx)
		if i < 3 {
			require.NoError(t, svc.Start(ctx)) // break
			runDown(t, svc, ctx)
		}
	}

	require.Len(t, breaks, 4)
	assert.Equal(t, []domain.FocusMode{
		domain.ModeShortBreak,
		domain.ModeShortBreak,
		domain.ModeShortBreak,
		domain.ModeLongBreak,
	}, breaks)
}

func TestFocusServicePauseResume(t *testing.T) {
	svc, _, _ := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(1)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Tick(ctx))

	before := svc.Snapshot().TimeRemaining
	svc.Pause()
	assert.True(t, svc.Snapshot().IsPaused)

	// A paused timer ignores ticks.
	require.NoError(t, svc.Tick(ctx))
	assert.Equal(t, before, svc.Snapshot().TimeRemaining)

	svc.Resume(ctx)
	assert.False(t, svc.Snapshot().IsPaused)
	require.NoError(t, svc.Tick(ctx))
	assert.Equal(t, before-1, svc.Snapshot().TimeRemaining)
}

func TestFocusServiceStopAbandonsWithoutCredit(t *testing.T) {
	svc, rewards, _ := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(1)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Tick(ctx))
	svc.Stop()

	state := svc.Snapshot()
	assert.False(t, state.IsRunning)
	assert.Equal(t, domain.ModeWork, state.Mode)
	assert.Equal(t, state.TotalTime, state.TimeRemaining)
	assert.Equal(t, 1, state.CurrentSession, "the cycle position survives a stop")
	assert.Zero(t, state.CompletedSessions)
	assert.Zero(t, rewards.Data().XP)
	assert.Zero(t, svc.Stats().TotalPomodoros)
}

func TestFocusServiceSkipEarnsFullCredit(t *testing.T) {
	svc, rewards, _ := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(1)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Tick(ctx))
	require.NoError(t, svc.Skip(ctx))

	state := svc.Snapshot()
	assert.Equal(t, domain.ModeShortBreak, state.Mode)
	assert.Equal(t, 1, state.CompletedSessions)
	assert.Equal(t, 5, rewards.Data().XP)
	assert.Equal(t, 1, svc.Stats().TotalPomodoros)
}

func TestFocusServiceUpdateSettings(t *testing.T) {
	svc, _, _ := setupFocusService(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateSettings(ctx, domain.PomodoroSettings{
		WorkDuration: 50, ShortBreak: 10, LongBreak: 20,
	}))

	state := svc.Snapshot()
	assert.Equal(t, 50*60, state.TimeRemaining, "idle timer re-arms to the new length")
	assert.Equal(t, 50*60, state.TotalTime)

	taskID := int64(1)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.Start(ctx))
	require.NoError(t, svc.Tick(ctx))

	require.NoError(t, svc.UpdateSettings(ctx, domain.PomodoroSettings{
		WorkDuration: 25, ShortBreak: 5, LongBreak: 15,
	}))
	assert.Equal(t, 50*60-1, svc.Snapshot().TimeRemaining,
		"a running session keeps its old length")
}

func TestFocusServiceStatsDayRollover(t *testing.T) {
	svc, _, clock := setupFocusService(t)
	ctx := context.Background()

	taskID := int64(1)
	svc.SelectTask(&taskID)
	require.NoError(t, svc.UpdateSettings(ctx, domain.PomodoroSettings{
		WorkDuration: 1, ShortBreak: 1, LongBreak: 2,
	}))
	require.NoError(t, svc.Start(ctx))
	runDown(t, svc, ctx)

	assert.Equal(t, 1, svc.Stats().TodayPomodoros)

	clock.now = testNow.AddDate(0, 0, 1)
	stats := svc.Stats()
	assert.Zero(t, stats.TodayPomodoros, "today counter resets on a new day")
	assert.Equal(t, 1, stats.TotalPomodoros, "lifetime totals survive")
}
