package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/flowtaskapp/flowtask/internal/config"
	"github.com/flowtaskapp/flowtask/internal/domain"
)

// PickerResult holds the outcome of a picker interaction.
type PickerResult struct {
	Index   int
	Aborted bool
}

type pickerModel struct {
	title   string
	items   []string
	cursor  int
	aborted bool
	theme   config.ThemeConfig
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case "enter":
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.aborted = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorWork))
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorWork)).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  "+m.title) + "\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			arrow := activeStyle.Render("▸")
			b.WriteString(fmt.Sprintf("  %s %s\n", arrow, activeStyle.Render(item)))
		} else {
			b.WriteString(dimStyle.Render("    "+item) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  ↑/↓ navigate · enter select · esc back") + "\n")

	return b.String()
}

// RunPicker launches an interactive arrow-key picker and returns the
// selected index.
func RunPicker(title string, items []string, theme config.ThemeConfig) PickerResult {
	m := pickerModel{title: title, items: items, theme: theme}

	p := tea.NewProgram(m)
	result, err := p.Run()
	if err != nil {
		return PickerResult{Aborted: true}
	}

	final := result.(pickerModel)
	if final.aborted {
		return PickerResult{Aborted: true}
	}
	return PickerResult{Index: final.cursor}
}

// PickTask resolves a query against the active tasks: an exact-enough
// single fuzzy match is returned directly, several matches open the
// picker, and an empty query offers every active task. Returns nil when
// nothing matches or the user backs out.
func PickTask(tasks []domain.Task, query string, theme config.ThemeConfig) *domain.Task {
	var active []domain.Task
	for _, t := range tasks {
		if !t.Completed {
			active = append(active, t)
		}
	}
	if len(active) == 0 {
		return nil
	}

	candidates := active
	if query != "" {
		texts := make([]string, len(active))
		for i, t := range active {
			texts[i] = t.Text
		}
		matches := fuzzy.Find(query, texts)
		if len(matches) == 0 {
			return nil
		}
		if len(matches) == 1 {
			task := active[matches[0].Index]
			return &task
		}
		candidates = make([]domain.Task, len(matches))
		for i, match := range matches {
			candidates[i] = active[match.Index]
		}
	}

	if len(candidates) == 1 {
		return &candidates[0]
	}

	items := make([]string, len(candidates))
	for i, t := range candidates {
		items[i] = t.Text
	}
	result := RunPicker("Pick a task to focus on", items, theme)
	if result.Aborted {
		return nil
	}
	return &candidates[result.Index]
}
