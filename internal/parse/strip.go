package parse

import (
	"regexp"
	"strings"
)

// Fragments removed by StripDeadlinePhrase, in application order. Month
// name phrases are deliberately not stripped; they tend to be part of the
// task text itself ("book flights for march 5 conference").
var stripPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*(by|due|until|deadline)\s+[a-zA-Z0-9/\-\s]+`),
	regexp.MustCompile(`(?i)\s*(tomorrow|today)`),
	regexp.MustCompile(`(?i)\s*(sunday|monday|tuesday|wednesday|thursday|friday|saturday)`),
	regexp.MustCompile(`(?i)\s*in\s+\d+\s+(days?|weeks?)`),
	regexp.MustCompile(`\s*\d{4}-\d{1,2}-\d{1,2}`),
	regexp.MustCompile(`\s*\d{1,2}/\d{1,2}(/\d{2,4})?`),
}

// StripDeadlinePhrase removes the textual fragments the deadline rules
// recognize and trims the remainder. It is applied only when the deadline
// was derived from the text rather than supplied explicitly.
func StripDeadlinePhrase(text string) string {
	cleaned := text
	for _, re := range stripPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}
