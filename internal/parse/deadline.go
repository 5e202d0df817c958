// Package parse implements the free-text heuristics FlowTask applies to
// new task input: deadline extraction and priority suggestion.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Weekday names indexed by time.Weekday (Sunday == 0).
var dayNames = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var (
	inDaysRe  = regexp.MustCompile(`in (\d+) days?`)
	inWeeksRe = regexp.MustCompile(`in (\d+) weeks?`)

	isoDateRe   = regexp.MustCompile(`(\d{4})-(\d{1,2})-(\d{1,2})`)
	slashDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})/(\d{2,4})`)
	shortDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})`)

	monthDayRes = compileMonthDayPatterns()
)

func compileMonthDayPatterns() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(monthNames))
	for i, name := range monthNames {
		res[i] = regexp.MustCompile(`(?i)` + name + `\s+(\d{1,2})`)
	}
	return res
}

// Deadline scans free text for a deadline phrase and returns the absolute
// instant it resolves to. Rules are tried in a fixed precedence order and
// the first match wins; all rules resolve to the end of the target day
// (23:59:59.999) in now's location. The second return value is false when
// no rule matches.
func Deadline(text string, now time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)

	if strings.Contains(lower, "tomorrow") {
		return endOfDay(now.AddDate(0, 0, 1)), true
	}
	if strings.Contains(lower, "today") {
		return endOfDay(now), true
	}

	// A weekday name always means the next occurrence strictly after
	// today; naming today's weekday points a week out.
	for i, name := range dayNames {
		if strings.Contains(lower, name) {
			delta := i - int(now.Weekday())
			if delta <= 0 {
				delta += 7
			}
			return endOfDay(now.AddDate(0, 0, delta)), true
		}
	}

	if m := inDaysRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return endOfDay(now.AddDate(0, 0, n)), true
	}
	if m := inWeeksRe.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		return endOfDay(now.AddDate(0, 0, n*7)), true
	}

	// Numeric date literals. A pattern whose fields do not form a real
	// calendar date yields no match and falls through to the next rule.
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := calendarDay(atoi(m[1]), atoi(m[2]), atoi(m[3]), now.Location()); ok {
			return endOfDay(d), true
		}
	}
	if m := slashDateRe.FindStringSubmatch(text); m != nil {
		year := atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if d, ok := calendarDay(year, atoi(m[1]), atoi(m[2]), now.Location()); ok {
			return endOfDay(d), true
		}
	}
	if m := shortDateRe.FindStringSubmatch(text); m != nil {
		if d, ok := yearlessDay(atoi(m[1]), atoi(m[2]), now); ok {
			return endOfDay(d), true
		}
	}

	for i, re := range monthDayRes {
		if m := re.FindStringSubmatch(text); m != nil {
			if d, ok := yearlessDay(i+1, atoi(m[1]), now); ok {
				return endOfDay(d), true
			}
		}
	}

	return time.Time{}, false
}

// calendarDay validates year/month/day as a real calendar date and
// returns its midnight instant.
func calendarDay(year, month, day int, loc *time.Location) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	// Day zero of the following month is the last day of this one.
	if day > time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, loc).Day() {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), true
}

// yearlessDay resolves a month/day with no year: the current year, rolled
// to the next year when the date's midnight has already passed.
func yearlessDay(month, day int, now time.Time) (time.Time, bool) {
	d, ok := calendarDay(now.Year(), month, day, now.Location())
	if !ok {
		return time.Time{}, false
	}
	if d.Before(now) {
		return calendarDay(now.Year()+1, month, day, now.Location())
	}
	return d, true
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
