// Package domain contains the core business entities for FlowTask.
// These entities represent the fundamental concepts of the task manager
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"time"
)

// Common domain errors.
var (
	ErrEmptyTaskText   = errors.New("task text cannot be empty")
	ErrTaskNotFound    = errors.New("task not found")
	ErrNoTaskSelected  = errors.New("no task selected")
	ErrInvalidPriority = errors.New("invalid priority")
)

// DayFormat is the day-granularity stamp used for streaks, rollover and
// daily statistics.
const DayFormat = "2006-01-02"

// Priority represents the urgency tier of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority tier.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// XP returns the reward granted for completing a task of this priority.
func (p Priority) XP() int {
	switch p {
	case PriorityHigh:
		return 15
	case PriorityMedium:
		return 10
	default:
		return 5
	}
}

// Task represents a single to-do item with an optional deadline.
type Task struct {
	ID          int64      `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	Priority    Priority   `json:"priority"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	RolledOver  bool       `json:"rolledOver,omitempty"`
}

// Complete marks the task as completed at the given instant.
func (t *Task) Complete(now time.Time) {
	t.Completed = true
	t.CompletedAt = &now
}

// Uncomplete returns the task to the active state.
func (t *Task) Uncomplete() {
	t.Completed = false
	t.CompletedAt = nil
}

// SameDay reports whether two instants fall on the same calendar day in
// a's location.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
