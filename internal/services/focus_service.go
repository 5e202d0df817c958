package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/ports"
)

// FocusService runs the pomodoro state machine: a work/break countdown
// with session accounting, per-day statistics, and a session log
// annotated with git context when available.
type FocusService struct {
	mu       sync.Mutex
	state    domain.PomodoroState
	settings domain.PomodoroSettings
	stats    domain.PomodoroStats

	settingsRepo ports.SettingsRepository
	statsRepo    ports.StatsRepository
	clock        ports.Clock
	newTicker    ports.TickerFactory
	git          ports.GitDetector
	rewards      *RewardService

	ticker ports.Ticker
	stopCh chan struct{}

	onTick            func(state domain.PomodoroState)
	onSessionComplete func(finished domain.FocusMode, next domain.FocusMode)
}

// XP granted for each finished work session.
const focusSessionXP = 5

// NewFocusService creates a focus service. Load must be called before
// any other method.
func NewFocusService(
	settingsRepo ports.SettingsRepository,
	statsRepo ports.StatsRepository,
	clock ports.Clock,
	newTicker ports.TickerFactory,
	git ports.GitDetector,
	rewards *RewardService,
) *FocusService {
	return &FocusService{
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
		clock:        clock,
		newTicker:    newTicker,
		git:          git,
		rewards:      rewards,
	}
}

// SetOnTick registers a callback invoked after every countdown tick and
// state transition, with a snapshot of the new state.
func (s *FocusService) SetOnTick(fn func(state domain.PomodoroState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// SetOnSessionComplete registers a callback invoked when a session runs
// down to zero (work or break), with the finished mode and the mode the
// timer moved to.
func (s *FocusService) SetOnSessionComplete(fn func(finished, next domain.FocusMode)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSessionComplete = fn
}

// Load reads settings and stats from storage and initializes an idle
// work-mode timer.
func (s *FocusService) Load(ctx context.Context) error {
	settings, err := s.settingsRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pomodoro settings: %w", err)
	}
	stats, err := s.statsRepo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pomodoro stats: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.stats = stats
	s.state = domain.PomodoroState{
		Mode:          domain.ModeWork,
		TimeRemaining: settings.DurationSeconds(domain.ModeWork),
		TotalTime:     settings.DurationSeconds(domain.ModeWork),
	}
	return nil
}

// SelectTask associates the upcoming work sessions with a task. Pass
// nil to clear the association.
func (s *FocusService) SelectTask(id *int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SelectedTaskID = id
}

// Start begins the countdown. No session starts without a selected
// task. Starting a fresh work session (not resuming after a stop)
// advances the session counter.
func (s *FocusService) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsRunning {
		return nil
	}
	if s.state.SelectedTaskID == nil {
		return domain.ErrNoTaskSelected
	}

	if s.state.Mode == domain.ModeWork && s.state.TimeRemaining == s.state.TotalTime {
		s.state.CurrentSession++
	}

	s.state.IsRunning = true
	s.state.IsPaused = false
	s.startTickerLocked(ctx)
	s.notifyTickLocked()
	return nil
}

// Pause freezes the countdown without losing progress.
func (s *FocusService) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRunning || s.state.IsPaused {
		return
	}
	s.state.IsPaused = true
	s.stopTickerLocked()
	s.notifyTickLocked()
}

// Resume continues a paused countdown.
func (s *FocusService) Resume(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRunning || !s.state.IsPaused {
		return
	}
	s.state.IsPaused = false
	s.startTickerLocked(ctx)
	s.notifyTickLocked()
}

// Stop abandons the current session without credit and resets the timer
// to an idle full-length work session. The session counter keeps its
// value so the long-break cadence is preserved.
func (s *FocusService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTickerLocked()
	s.state.IsRunning = false
	s.state.IsPaused = false
	s.state.Mode = domain.ModeWork
	s.state.TimeRemaining = s.settings.DurationSeconds(domain.ModeWork)
	s.state.TotalTime = s.state.TimeRemaining
	s.notifyTickLocked()
}

// Skip ends the current session immediately as if the countdown had
// reached zero: a skipped work session still earns full credit.
func (s *FocusService) Skip(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completeSessionLocked(ctx)
}

// Tick advances the countdown by one second. The run loop calls this on
// every ticker fire; tests call it directly.
func (s *FocusService) Tick(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsRunning || s.state.IsPaused {
		return nil
	}

	s.state.TimeRemaining--
	if s.state.TimeRemaining > 0 {
		s.notifyTickLocked()
		return nil
	}
	return s.completeSessionLocked(ctx)
}

// UpdateSettings persists new durations. An idle timer is re-armed to
// the new length immediately; a running session keeps its old length
// until it ends.
func (s *FocusService) UpdateSettings(ctx context.Context, settings domain.PomodoroSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settingsRepo.Save(ctx, settings); err != nil {
		return fmt.Errorf("failed to save pomodoro settings: %w", err)
	}
	s.settings = settings

	if !s.state.IsRunning {
		s.state.TimeRemaining = settings.DurationSeconds(s.state.Mode)
		s.state.TotalTime = s.state.TimeRemaining
		s.notifyTickLocked()
	}
	return nil
}

// Settings returns the active durations.
func (s *FocusService) Settings() domain.PomodoroSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Snapshot returns a copy of the timer state.
func (s *FocusService) Snapshot() domain.PomodoroState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Stats returns the pomodoro statistics with the today counter rolled
// over when the recorded day is no longer today.
func (s *FocusService) Stats() domain.PomodoroStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.stats
	if stats.LastDate != s.clock.Now().Format(domain.DayFormat) {
		stats.TodayPomodoros = 0
	}
	return stats
}

// Close stops the ticker goroutine.
func (s *FocusService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopTickerLocked()
}

// completeSessionLocked handles a countdown reaching zero. A finished
// work session earns XP, increments the session counters, and appends a
// session log entry; every fourth work session routes to a long break.
// The next session is armed idle, waiting for an explicit Start.
func (s *FocusService) completeSessionLocked(ctx context.Context) error {
	s.stopTickerLocked()

	finished := s.state.Mode

	var next domain.FocusMode
	if finished == domain.ModeWork {
		s.state.CompletedSessions++
		if err := s.recordWorkSessionLocked(ctx); err != nil {
			return err
		}
		if s.rewards != nil {
			if err := s.rewards.AddXP(ctx, focusSessionXP); err != nil {
				return err
			}
		}

		if s.state.CurrentSession%domain.SessionsBeforeLongBreak == 0 {
			next = domain.ModeLongBreak
		} else {
			next = domain.ModeShortBreak
		}
	} else {
		next = domain.ModeWork
	}

	s.state.Mode = next
	s.state.IsRunning = false
	s.state.IsPaused = false
	s.state.TimeRemaining = s.settings.DurationSeconds(next)
	s.state.TotalTime = s.state.TimeRemaining

	s.notifyTickLocked()
	if finished == domain.ModeWork && s.rewards != nil {
		s.rewards.Celebrate("Focus session complete!", focusSessionXP)
	}
	if s.onSessionComplete != nil {
		s.onSessionComplete(finished, next)
	}
	return nil
}

// recordWorkSessionLocked updates the day counters and appends a log
// entry. Git detection failure is not an error; the entry simply has no
// branch or commit.
func (s *FocusService) recordWorkSessionLocked(ctx context.Context) error {
	now := s.clock.Now()
	today := now.Format(domain.DayFormat)

	if s.stats.LastDate != today {
		s.stats.TodayPomodoros = 0
		s.stats.LastDate = today
	}
	s.stats.TodayPomodoros++
	s.stats.TotalPomodoros++
	s.stats.TotalMinutes += s.settings.WorkDuration

	entry := domain.SessionLogEntry{
		ID:          uuid.New().String(),
		TaskID:      s.state.SelectedTaskID,
		Minutes:     s.settings.WorkDuration,
		CompletedAt: now,
	}
	if s.git != nil && s.git.IsAvailable() {
		if info, err := s.git.Detect(ctx, "."); err == nil && info != nil {
			entry.GitBranch = info.Branch
			entry.GitCommit = info.Commit
		}
	}
	s.stats.Log = append(s.stats.Log, entry)

	if err := s.statsRepo.Save(ctx, s.stats); err != nil {
		return fmt.Errorf("failed to save pomodoro stats: %w", err)
	}
	return nil
}

func (s *FocusService) startTickerLocked(ctx context.Context) {
	s.stopTickerLocked()

	s.ticker = s.newTicker(time.Second)
	s.stopCh = make(chan struct{})

	go func(ticker ports.Ticker, stop chan struct{}) {
		for {
			select {
			case <-ticker.C():
				if err := s.Tick(ctx); err != nil {
					return
				}
			case <-stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}(s.ticker, s.stopCh)
}

func (s *FocusService) stopTickerLocked() {
	if s.ticker != nil {
		s.ticker.Stop()
		s.ticker = nil
	}
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}

func (s *FocusService) notifyTickLocked() {
	if s.onTick != nil {
		s.onTick(s.state)
	}
}
