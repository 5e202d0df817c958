package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/projection"
)

// styles bundles the lipgloss styles derived from the theme config.
type styles struct {
	high      lipgloss.Style
	medium    lipgloss.Style
	low       lipgloss.Style
	overdue   lipgloss.Style
	done      lipgloss.Style
	help      lipgloss.Style
	highlight lipgloss.Style
	header    lipgloss.Style
}

func newStyles() styles {
	theme := appConfig.Theme
	s := styles{
		high:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHigh)),
		medium:    lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorMedium)),
		low:       lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorLow)),
		overdue:   lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorOverdue)).Bold(true),
		done:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorDone)).Strikethrough(true),
		help:      lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp)),
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color(theme.ColorHighlight)),
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorWork)),
	}
	if themeName == "dark" {
		s.highlight = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHighlight)).Bold(true)
	}
	return s
}

func (s styles) forPriority(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return s.high
	case domain.PriorityLow:
		return s.low
	default:
		return s.medium
	}
}

// renderTask prints one task line: position, checkbox, priority-colored
// text, creation label, and the deadline badge when one applies.
func renderTask(s styles, pos int, task domain.Task, badge *projection.Badge, created string) string {
	box := "[ ]"
	text := s.forPriority(task.Priority).Render(task.Text)
	if task.Completed {
		box = "[x]"
		text = s.done.Render(task.Text)
	}

	line := fmt.Sprintf("%3d. %s %s", pos, box, text)
	if task.RolledOver {
		line += " " + s.help.Render("(rolled over)")
	}
	if created != "" {
		line += " " + s.help.Render(created)
	}
	if badge != nil {
		line += " " + renderBadge(s, *badge)
	}
	return line
}

func renderBadge(s styles, badge projection.Badge) string {
	switch badge.Kind {
	case projection.BadgeOverdue:
		return s.overdue.Render("⚠ " + badge.Label)
	case projection.BadgeDueToday, projection.BadgeDueTomorrow, projection.BadgeUrgent:
		return s.high.Render(badge.Label)
	default:
		return s.help.Render(badge.Label)
	}
}

// renderHighlighted renders text with the matched spans highlighted.
func renderHighlighted(s styles, text string, spans [][2]int) string {
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	for _, span := range spans {
		b.WriteString(text[last:span[0]])
		b.WriteString(s.highlight.Render(text[span[0]:span[1]]))
		last = span[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// outputJSON marshals v for the --json flag.
func outputJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// resolveTask turns a task reference into a task: a number is the
// position shown by "flowtask list", anything else is fuzzy-matched
// against task text. Ambiguous text references pick the best match.
func resolveTask(ref string) (domain.Task, error) {
	tasks := taskService.All()

	if pos, err := strconv.Atoi(ref); err == nil {
		if pos < 1 || pos > len(tasks) {
			return domain.Task{}, fmt.Errorf("no task at position %d", pos)
		}
		return tasks[pos-1], nil
	}

	texts := make([]string, len(tasks))
	for i, t := range tasks {
		texts[i] = t.Text
	}
	matches := fuzzy.Find(ref, texts)
	if len(matches) == 0 {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return tasks[matches[0].Index], nil
}
