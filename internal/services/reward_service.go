package services

import (
	"context"
	"fmt"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/ports"
)

// RewardService tracks XP, the daily streak, and the completed-today
// counter. It implements RewardSink for the task store and also grants
// XP for finished focus sessions.
type RewardService struct {
	data          domain.UserData
	repo          ports.UserDataRepository
	clock         ports.Clock
	onCelebration func(message string, xp int)
}

// NewRewardService creates a new reward service.
func NewRewardService(repo ports.UserDataRepository, clock ports.Clock) *RewardService {
	return &RewardService{repo: repo, clock: clock}
}

// SetOnCelebration registers a callback fired when a completion is
// worth celebrating (first of the day, or a high-priority task).
func (s *RewardService) SetOnCelebration(fn func(message string, xp int)) {
	s.onCelebration = fn
}

// Data returns the current gamification state.
func (s *RewardService) Data() domain.UserData {
	return s.data
}

// StartDay loads the persisted state and applies the day boundary:
// a streak survives when the last active day was exactly yesterday,
// otherwise it resets to zero, and the completed-today counter resets
// on any new day. Runs once at startup before any completion events.
func (s *RewardService) StartDay(ctx context.Context) error {
	data, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load user data: %w", err)
	}
	s.data = data

	now := s.clock.Now()
	today := now.Format(domain.DayFormat)
	yesterday := now.AddDate(0, 0, -1).Format(domain.DayFormat)

	if s.data.LastActive == today {
		return nil
	}
	if s.data.LastActive != yesterday {
		s.data.Streak = 0
	}
	s.data.CompletedToday = 0
	return s.persist(ctx)
}

// TaskCompleted grants priority-scaled XP and advances the streak on
// the first completion of the day. LastActive moves to today inside the
// streak guard so a complete/uncomplete/complete cycle cannot count the
// same day twice.
func (s *RewardService) TaskCompleted(ctx context.Context, priority domain.Priority) error {
	today := s.clock.Now().Format(domain.DayFormat)

	xp := priority.XP()
	s.data.XP += xp
	s.data.CompletedToday++

	// The streak only advances once per day; the celebration fires
	// whenever the counter lands on 1, so a task uncompleted and
	// completed again still celebrates.
	firstOfDay := s.data.CompletedToday == 1
	if firstOfDay && s.data.LastActive != today {
		s.data.Streak++
		s.data.LastActive = today
	}

	if err := s.persist(ctx); err != nil {
		return err
	}

	if s.onCelebration != nil {
		switch {
		case firstOfDay:
			s.onCelebration(fmt.Sprintf("First task of the day! Streak: %d", s.data.Streak), xp)
		case priority == domain.PriorityHigh:
			s.onCelebration("High priority task done!", xp)
		}
	}
	return nil
}

// TaskUncompleted decrements the daily counter, never below zero.
// XP already granted stays granted.
func (s *RewardService) TaskUncompleted(ctx context.Context) error {
	if s.data.CompletedToday > 0 {
		s.data.CompletedToday--
	}
	return s.persist(ctx)
}

// AddXP grants a flat XP amount outside task completion (focus
// sessions).
func (s *RewardService) AddXP(ctx context.Context, amount int) error {
	s.data.XP += amount
	return s.persist(ctx)
}

// Celebrate fires the celebration callback directly.
func (s *RewardService) Celebrate(message string, xp int) {
	if s.onCelebration != nil {
		s.onCelebration(message, xp)
	}
}

func (s *RewardService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.data); err != nil {
		return fmt.Errorf("failed to save user data: %w", err)
	}
	return nil
}
