// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/parse"
	"github.com/flowtaskapp/flowtask/internal/ports"
)

// RewardSink receives task completion events from the task store. It is
// implemented by RewardService.
type RewardSink interface {
	TaskCompleted(ctx context.Context, priority domain.Priority) error
	TaskUncompleted(ctx context.Context) error
}

// TaskService owns the in-memory ordered task collection and its
// mutation operations. Newly added tasks are prepended; the collection
// is written through to storage after every mutation.
type TaskService struct {
	tasks   []domain.Task
	repo    ports.TaskRepository
	clock   ports.Clock
	rewards RewardSink
	lastID  int64
}

// NewTaskService creates a new task service.
func NewTaskService(repo ports.TaskRepository, clock ports.Clock) *TaskService {
	return &TaskService{repo: repo, clock: clock}
}

// SetRewards wires the completion event consumer.
func (s *TaskService) SetRewards(rewards RewardSink) {
	s.rewards = rewards
}

// Load reads the persisted collection into memory. Must run before any
// mutation.
func (s *TaskService) Load(ctx context.Context) error {
	tasks, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load tasks: %w", err)
	}
	s.tasks = tasks
	for _, t := range tasks {
		if t.ID > s.lastID {
			s.lastID = t.ID
		}
	}
	return nil
}

// All returns a copy of the collection in canonical store order
// (most recent first).
func (s *TaskService) All() []domain.Task {
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Find returns the task with the given id.
func (s *TaskService) Find(id int64) (domain.Task, error) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

// Add creates a new task from free text. When no explicit deadline is
// given the text is scanned for a deadline phrase, and the matched
// phrase is stripped from the stored text. An explicit deadline always
// wins and suppresses stripping. The priority classifier's suggestion
// overrides the selected priority when the text carries a signal.
func (s *TaskService) Add(ctx context.Context, text string, explicitDeadline *time.Time, selected domain.Priority) (*domain.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domain.ErrEmptyTaskText
	}

	now := s.clock.Now()

	priority := selected
	if suggested, ok := parse.SuggestPriority(text); ok {
		priority = suggested
	}
	if !priority.IsValid() {
		priority = domain.PriorityMedium
	}

	deadline := explicitDeadline
	if deadline == nil {
		if parsed, ok := parse.Deadline(text, now); ok {
			deadline = &parsed
			if stripped := parse.StripDeadlinePhrase(text); stripped != "" {
				text = stripped
			}
		}
	}

	// Creation-instant id; bumped past the previous id so rapid adds in
	// the same millisecond stay unique.
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	task := domain.Task{
		ID:        id,
		Text:      text,
		Priority:  priority,
		CreatedAt: now,
		Deadline:  deadline,
	}
	s.tasks = append([]domain.Task{task}, s.tasks...)

	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	return &task, nil
}

// ToggleComplete flips a task's completion state. Completing emits a
// TaskCompleted event; uncompleting only decrements the daily counter and
// leaves XP already granted in place.
func (s *TaskService) ToggleComplete(ctx context.Context, id int64) (*domain.Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		task := &s.tasks[i]
		if task.Completed {
			task.Uncomplete()
			if s.rewards != nil {
				if err := s.rewards.TaskUncompleted(ctx); err != nil {
					return nil, err
				}
			}
		} else {
			task.Complete(s.clock.Now())
			if s.rewards != nil {
				if err := s.rewards.TaskCompleted(ctx, task.Priority); err != nil {
					return nil, err
				}
			}
		}

		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return task, nil
	}
	return nil, domain.ErrTaskNotFound
}

// Edit replaces a task's text. Empty replacement text is a no-op.
func (s *TaskService) Edit(ctx context.Context, id int64, newText string) error {
	newText = strings.TrimSpace(newText)
	if newText == "" {
		return domain.ErrEmptyTaskText
	}

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Text = newText
			return s.persist(ctx)
		}
	}
	return domain.ErrTaskNotFound
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return s.persist(ctx)
		}
	}
	return domain.ErrTaskNotFound
}

// ClearCompleted removes every completed task and reports how many were
// removed. Zero means there was nothing to clear.
func (s *TaskService) ClearCompleted(ctx context.Context) (int, error) {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept

	if removed == 0 {
		return 0, nil
	}
	return removed, s.persist(ctx)
}

// Rollover carries yesterday's incomplete tasks into today: their
// createdAt is rewritten to now and they are flagged rolledOver. Tasks
// still incomplete tomorrow roll again. Only tasks created on exactly
// the previous calendar day roll; older ones stay where they are.
// Runs once at startup; invoking it twice on the same day is a no-op
// for already-rolled tasks because their createdAt now falls on today.
func (s *TaskService) Rollover(ctx context.Context, now time.Time) (int, error) {
	yesterday := now.AddDate(0, 0, -1)

	rolled := 0
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.Completed || !domain.SameDay(yesterday, t.CreatedAt) {
			continue
		}
		t.CreatedAt = now
		t.RolledOver = true
		rolled++
	}

	if rolled == 0 {
		return 0, nil
	}
	return rolled, s.persist(ctx)
}

func (s *TaskService) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.tasks); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}
