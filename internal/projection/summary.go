package projection

import (
	"fmt"
	"time"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// Counts holds per-filter task totals for the filter pills.
type Counts struct {
	All       int
	Active    int
	Completed int
}

// CountTasks tallies the collection for the filter pills.
func CountTasks(tasks []domain.Task) Counts {
	c := Counts{All: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		} else {
			c.Active++
		}
	}
	return c
}

// Summary renders the one-line remaining-work footer.
func (c Counts) Summary() string {
	switch {
	case c.All == 0:
		return "No tasks yet"
	case c.Active == 0:
		return "All tasks completed!"
	case c.Active == 1:
		return "1 task remaining"
	default:
		return fmt.Sprintf("%d tasks remaining", c.Active)
	}
}

// CreatedLabel renders a creation instant the way the task list shows it:
// time of day for today, "Yesterday", otherwise a short date.
func CreatedLabel(createdAt, now time.Time) string {
	if domain.SameDay(now, createdAt) {
		return createdAt.Format("3:04 PM")
	}
	if domain.SameDay(now.AddDate(0, 0, -1), createdAt) {
		return "Yesterday"
	}
	return createdAt.Format("Jan 2")
}

// DaySummary describes one cell of the month calendar grid.
type DaySummary struct {
	Date       time.Time
	Day        int
	OtherMonth bool
	Today      bool
	TaskCount  int
	Priorities []domain.Priority // up to the first three deadline tasks
	FirstTask  string
}

// MonthGrid lays out a 42-cell calendar month (leading and trailing days
// from the adjacent months included) with per-day deadline summaries.
func MonthGrid(tasks []domain.Task, year int, month time.Month, now time.Time) []DaySummary {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))

	cells := make([]DaySummary, 0, 42)
	for i := 0; i < 42; i++ {
		date := start.AddDate(0, 0, i)
		cell := DaySummary{
			Date:       date,
			Day:        date.Day(),
			OtherMonth: date.Month() != month,
			Today:      domain.SameDay(now, date),
		}
		due := CalendarDay(tasks, date)
		cell.TaskCount = len(due)
		if len(due) > 0 {
			cell.FirstTask = due[0].Text
			for _, t := range due {
				cell.Priorities = append(cell.Priorities, t.Priority)
				if len(cell.Priorities) == 3 {
					break
				}
			}
		}
		cells = append(cells, cell)
	}
	return cells
}
