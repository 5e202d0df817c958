package projection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

var now = time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC)

func ptr(t time.Time) *time.Time { return &t }

func fixtureTasks() []domain.Task {
	return []domain.Task{
		{ID: 4, Text: "write release notes", Priority: domain.PriorityHigh, CreatedAt: now.Add(-time.Hour)},
		{ID: 3, Text: "review the PR", Priority: domain.PriorityMedium, CreatedAt: now.Add(-2 * time.Hour), Completed: true},
		{ID: 2, Text: "book flights", Priority: domain.PriorityHigh, CreatedAt: now.AddDate(0, 0, -1), Completed: true},
		{ID: 1, Text: "water plants", Priority: domain.PriorityLow, CreatedAt: now.AddDate(0, 0, -3),
			Deadline: ptr(time.Date(2025, time.March, 15, 23, 59, 59, 0, time.UTC))},
	}
}

func TestByFilter(t *testing.T) {
	tasks := fixtureTasks()

	assert.Len(t, ByFilter(tasks, FilterAll), 4)
	assert.Len(t, ByFilter(tasks, FilterActive), 2)
	assert.Len(t, ByFilter(tasks, FilterCompleted), 2)

	high := ByFilter(tasks, FilterHigh)
	require.Len(t, high, 1, "completed high-priority tasks are excluded")
	assert.Equal(t, int64(4), high[0].ID)
}

func TestToday(t *testing.T) {
	today := Today(fixtureTasks(), now)
	require.Len(t, today, 2)
	assert.Equal(t, int64(4), today[0].ID)
	assert.Equal(t, int64(3), today[1].ID)
}

func TestTimelineOrder(t *testing.T) {
	// Shuffle the store order; the timeline must still come out newest
	// first.
	tasks := fixtureTasks()
	tasks[0], tasks[3] = tasks[3], tasks[0]

	ordered := Timeline(tasks)
	require.Len(t, ordered, 4)
	for i := 1; i < len(ordered); i++ {
		assert.False(t, ordered[i].CreatedAt.After(ordered[i-1].CreatedAt),
			"timeline out of order at %d", i)
	}
}

func TestCalendarDay(t *testing.T) {
	tasks := fixtureTasks()

	due := CalendarDay(tasks, time.Date(2025, time.March, 15, 8, 0, 0, 0, time.UTC))
	require.Len(t, due, 1)
	assert.Equal(t, int64(1), due[0].ID)

	assert.Empty(t, CalendarDay(tasks, now), "tasks without deadlines never appear")
}

func TestSearch(t *testing.T) {
	tasks := fixtureTasks()

	t.Run("substring is case-insensitive", func(t *testing.T) {
		result := Search(tasks, "PLANTS", FilterAll)
		require.Equal(t, 1, result.Count)
		assert.Equal(t, "PLANTS", result.Query)
		require.Len(t, result.Matches[0].Spans, 1)
		assert.Equal(t, [2]int{6, 12}, result.Matches[0].Spans[0])
	})

	t.Run("priority filter intersects", func(t *testing.T) {
		// Unlike list filtering, search keeps completed tasks.
		result := Search(tasks, "", FilterHigh)
		assert.Equal(t, 2, result.Count)
	})

	t.Run("no matches", func(t *testing.T) {
		result := Search(tasks, "zzz", FilterAll)
		assert.Zero(t, result.Count)
		assert.Empty(t, result.Matches)
	})

	t.Run("repeated occurrences all get spans", func(t *testing.T) {
		repeated := []domain.Task{{ID: 9, Text: "red red red", CreatedAt: now}}
		result := Search(repeated, "red", FilterAll)
		require.Equal(t, 1, result.Count)
		assert.Len(t, result.Matches[0].Spans, 3)
	})

	t.Run("spans index the original text for non-ASCII", func(t *testing.T) {
		// "Ⱥ" lowercases to "ⱥ", which is one byte longer, so spans
		// computed on a lowercased copy would run past the text.
		text := "ȺȺȺabc"
		result := Search([]domain.Task{{ID: 9, Text: text, CreatedAt: now}}, "abc", FilterAll)
		require.Equal(t, 1, result.Count)
		require.Len(t, result.Matches[0].Spans, 1)
		span := result.Matches[0].Spans[0]
		require.LessOrEqual(t, span[1], len(text))
		assert.Equal(t, "abc", text[span[0]:span[1]])
	})

	t.Run("case folding matches across rune widths", func(t *testing.T) {
		result := Search([]domain.Task{{ID: 9, Text: "Überweisung senden", CreatedAt: now}}, "über", FilterAll)
		require.Equal(t, 1, result.Count)
		require.Len(t, result.Matches[0].Spans, 1)
		span := result.Matches[0].Spans[0]
		assert.Equal(t, "Über", "Überweisung senden"[span[0]:span[1]])
	})
}

func TestCountsSummary(t *testing.T) {
	counts := CountTasks(fixtureTasks())
	assert.Equal(t, Counts{All: 4, Active: 2, Completed: 2}, counts)
	assert.Equal(t, "2 tasks remaining", counts.Summary())

	assert.Equal(t, "No tasks yet", Counts{}.Summary())
	assert.Equal(t, "All tasks completed!", Counts{All: 2, Completed: 2}.Summary())
	assert.Equal(t, "1 task remaining", Counts{All: 1, Active: 1}.Summary())
}

func TestCreatedLabel(t *testing.T) {
	assert.Equal(t, "2:00 PM", CreatedLabel(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", CreatedLabel(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Mar 9", CreatedLabel(now.AddDate(0, 0, -3), now))
}

func TestMonthGrid(t *testing.T) {
	tasks := fixtureTasks()
	grid := MonthGrid(tasks, 2025, time.March, now)

	require.Len(t, grid, 42)

	// March 2025 starts on a Saturday, so the grid leads with February.
	assert.True(t, grid[0].OtherMonth)
	assert.Equal(t, 23, grid[0].Day)

	var today, due *DaySummary
	for i := range grid {
		if grid[i].Today {
			today = &grid[i]
		}
		if grid[i].TaskCount > 0 {
			due = &grid[i]
		}
	}
	require.NotNil(t, today)
	assert.Equal(t, 12, today.Day)

	require.NotNil(t, due)
	assert.Equal(t, 15, due.Day)
	assert.Equal(t, "water plants", due.FirstTask)
	assert.Equal(t, []domain.Priority{domain.PriorityLow}, due.Priorities)
}
