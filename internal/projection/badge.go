package projection

import (
	"fmt"
	"math"
	"time"
)

// BadgeKind classifies how close a deadline is.
type BadgeKind string

const (
	BadgeOverdue     BadgeKind = "overdue"
	BadgeDueToday    BadgeKind = "due-today"
	BadgeDueTomorrow BadgeKind = "due-tomorrow"
	BadgeUrgent      BadgeKind = "urgent"    // due in 2-3 days
	BadgeUpcoming    BadgeKind = "upcoming"  // due in 4-7 days
	BadgeScheduled   BadgeKind = "scheduled" // more than a week out
)

// Badge annotates a task's deadline for display.
type Badge struct {
	Kind  BadgeKind
	Days  int // days until due; negative when overdue
	Label string
}

// DeadlineBadge classifies a deadline relative to now. The badge is
// suppressed entirely (second return false) for completed tasks.
func DeadlineBadge(deadline time.Time, completed bool, now time.Time) (Badge, bool) {
	if completed {
		return Badge{}, false
	}

	diffDays := int(math.Ceil(deadline.Sub(now).Hours() / 24))

	switch {
	case diffDays < 0:
		return Badge{
			Kind:  BadgeOverdue,
			Days:  diffDays,
			Label: fmt.Sprintf("Overdue by %s", pluralDays(-diffDays)),
		}, true
	case diffDays == 0:
		return Badge{Kind: BadgeDueToday, Days: 0, Label: "Due today!"}, true
	case diffDays == 1:
		return Badge{Kind: BadgeDueTomorrow, Days: 1, Label: "Due tomorrow"}, true
	case diffDays <= 3:
		return Badge{
			Kind:  BadgeUrgent,
			Days:  diffDays,
			Label: fmt.Sprintf("Due in %d days", diffDays),
		}, true
	case diffDays <= 7:
		return Badge{
			Kind:  BadgeUpcoming,
			Days:  diffDays,
			Label: fmt.Sprintf("Due in %d days", diffDays),
		}, true
	default:
		return Badge{
			Kind:  BadgeScheduled,
			Days:  diffDays,
			Label: deadline.Format("Jan 2"),
		}, true
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
