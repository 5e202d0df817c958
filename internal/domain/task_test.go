package domain

import (
	"testing"
	"time"
)

func TestPriorityXP(t *testing.T) {
	tests := []struct {
		priority Priority
		want     int
	}{
		{PriorityHigh, 15},
		{PriorityMedium, 10},
		{PriorityLow, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.priority), func(t *testing.T) {
			if got := tt.priority.XP(); got != tt.want {
				t.Errorf("XP() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPriorityIsValid(t *testing.T) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if !p.IsValid() {
			t.Errorf("IsValid() = false for %q", p)
		}
	}
	if Priority("urgent").IsValid() {
		t.Error("IsValid() = true for unknown priority")
	}
}

func TestTaskCompleteUncomplete(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)
	task := Task{ID: 1, Text: "write release notes", Priority: PriorityHigh, CreatedAt: now}

	task.Complete(now)
	if !task.Completed {
		t.Error("Complete() did not mark the task completed")
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Errorf("Complete() CompletedAt = %v, want %v", task.CompletedAt, now)
	}

	task.Uncomplete()
	if task.Completed {
		t.Error("Uncomplete() left the task completed")
	}
	if task.CompletedAt != nil {
		t.Errorf("Uncomplete() CompletedAt = %v, want nil", task.CompletedAt)
	}
}

func TestSameDay(t *testing.T) {
	base := time.Date(2025, time.March, 12, 0, 1, 0, 0, time.UTC)

	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different hour", base, base.Add(23 * time.Hour), true},
		{"adjacent days", base, base.AddDate(0, 0, 1), false},
		{"same day-of-month different month", base, base.AddDate(0, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
