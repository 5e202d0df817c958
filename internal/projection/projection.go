// Package projection computes the filtered, sorted and annotated task
// subsets each view renders. Every function is pure: it takes the full
// collection plus view parameters and never mutates the input.
package projection

import (
	"sort"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// Filter selects a subset of the collection by completion/priority state.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
	FilterHigh      Filter = "high"
)

// ByFilter returns the tasks matching the given filter, preserving store
// order. FilterHigh excludes completed tasks.
func ByFilter(tasks []domain.Task, f Filter) []domain.Task {
	switch f {
	case FilterActive:
		return keep(tasks, func(t domain.Task) bool { return !t.Completed })
	case FilterCompleted:
		return keep(tasks, func(t domain.Task) bool { return t.Completed })
	case FilterHigh:
		return keep(tasks, func(t domain.Task) bool {
			return t.Priority == domain.PriorityHigh && !t.Completed
		})
	default:
		return keep(tasks, func(domain.Task) bool { return true })
	}
}

// Today returns the tasks created on now's calendar day.
func Today(tasks []domain.Task, now time.Time) []domain.Task {
	return keep(tasks, func(t domain.Task) bool {
		return domain.SameDay(now, t.CreatedAt)
	})
}

// Timeline returns the full collection ordered by creation time,
// newest first.
func Timeline(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// CalendarDay returns the tasks whose deadline falls on the given
// calendar day. Completed tasks are included; their badges are suppressed
// downstream, not filtered here.
func CalendarDay(tasks []domain.Task, date time.Time) []domain.Task {
	return keep(tasks, func(t domain.Task) bool {
		return t.Deadline != nil && domain.SameDay(date, *t.Deadline)
	})
}

// SearchMatch pairs a task with the byte-offset spans of the query inside
// its text, for downstream highlighting.
type SearchMatch struct {
	Task  domain.Task
	Spans [][2]int
}

// SearchResult carries the matches plus the literal query and count for
// "no results" messaging.
type SearchResult struct {
	Matches []SearchMatch
	Count   int
	Query   string
}

// Search filters by case-insensitive substring match of query against
// task text (empty query matches all), intersected with a priority filter
// (FilterAll imposes no constraint).
func Search(tasks []domain.Task, query string, priority Filter) SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))

	var matches []SearchMatch
	for _, t := range tasks {
		spans := matchSpans(t.Text, q)
		if q != "" && len(spans) == 0 {
			continue
		}
		switch priority {
		case FilterAll, "":
		default:
			if t.Priority != domain.Priority(priority) {
				continue
			}
		}
		matches = append(matches, SearchMatch{Task: t, Spans: spans})
	}

	return SearchResult{Matches: matches, Count: len(matches), Query: query}
}

// matchSpans returns the byte offsets of every non-overlapping,
// case-insensitive occurrence of query in text. Offsets index the
// original text, never a case-folded copy, because folding can change a
// rune's byte length.
func matchSpans(text, query string) [][2]int {
	if query == "" {
		return nil
	}
	qRunes := []rune(query)
	var spans [][2]int
	for i := 0; i < len(text); {
		if end, ok := matchAt(text, i, qRunes); ok {
			spans = append(spans, [2]int{i, end})
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(text[i:])
		i += size
	}
	return spans
}

// matchAt reports whether the lowercased query runes match text at byte
// offset i, and where the match ends in text's own offsets.
func matchAt(text string, i int, query []rune) (int, bool) {
	pos := i
	for _, qr := range query {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if size == 0 || unicode.ToLower(r) != qr {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

func keep(tasks []domain.Task, pred func(domain.Task) bool) []domain.Task {
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if pred(t) {
			out = append(out, t)
		}
	}
	return out
}
