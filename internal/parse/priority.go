package parse

import (
	"strings"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

var urgentWords = []string{"urgent", "asap", "critical", "important", "deadline", "emergency"}

var lowWords = []string{"maybe", "sometime", "eventually", "consider", "idea"}

// SuggestPriority inspects task text for urgency signals. Urgent keywords
// win over low-signal keywords when both appear. The second return value
// is false when the text carries no signal and the caller should fall
// back to the explicitly selected priority.
func SuggestPriority(text string) (domain.Priority, bool) {
	lower := strings.ToLower(text)

	for _, w := range urgentWords {
		if strings.Contains(lower, w) {
			return domain.PriorityHigh, true
		}
	}
	for _, w := range lowWords {
		if strings.Contains(lower, w) {
			return domain.PriorityLow, true
		}
	}
	return "", false
}
