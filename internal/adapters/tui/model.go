// Package tui provides the focus timer interface using the Bubbletea
// framework.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/flowtaskapp/flowtask/internal/config"
	"github.com/flowtaskapp/flowtask/internal/domain"
)

// stateMsg carries a timer state snapshot pushed by the focus service.
type stateMsg struct {
	state domain.PomodoroState
}

// sessionDoneMsg is sent when a session runs down to zero.
type sessionDoneMsg struct {
	finished domain.FocusMode
	next     domain.FocusMode
}

// Model represents the focus timer TUI state.
type Model struct {
	state    domain.PomodoroState
	stats    domain.PomodoroStats
	taskText string
	progress progress.Model
	theme    config.ThemeConfig
	width    int
	height   int

	confirmStop bool
	confirmSkip bool
	lastDone    *sessionDoneMsg

	onStart    func() error
	onPause    func()
	onResume   func()
	onStop     func()
	onSkip     func() error
	fetchStats func() domain.PomodoroStats
	lastError  error
}

// Callbacks wires the model's key actions to the focus service.
type Callbacks struct {
	OnStart    func() error
	OnPause    func()
	OnResume   func()
	OnStop     func()
	OnSkip     func() error
	FetchStats func() domain.PomodoroStats
}

// NewModel creates a focus timer model for the given task and initial
// state.
func NewModel(taskText string, state domain.PomodoroState, theme config.ThemeConfig, cb Callbacks) Model {
	return Model{
		state:      state,
		taskText:   taskText,
		progress:   progress.New(progress.WithDefaultGradient()),
		theme:      theme,
		onStart:    cb.OnStart,
		onPause:    cb.OnPause,
		onResume:   cb.OnResume,
		onStop:     cb.OnStop,
		onSkip:     cb.OnSkip,
		fetchStats: cb.FetchStats,
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 8
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}

	case stateMsg:
		m.state = msg.state
		if m.fetchStats != nil {
			m.stats = m.fetchStats()
		}

	case sessionDoneMsg:
		done := msg
		m.lastDone = &done
		m.confirmStop = false
		m.confirmSkip = false
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.onStop != nil {
			m.onStop()
		}
		return m, tea.Quit

	case "s", " ":
		m.lastDone = nil
		m.confirmStop = false
		m.confirmSkip = false
		switch {
		case !m.state.IsRunning:
			if m.onStart != nil {
				if err := m.onStart(); err != nil {
					m.lastError = err
				}
			}
		case m.state.IsPaused:
			if m.onResume != nil {
				m.onResume()
			}
		default:
			if m.onPause != nil {
				m.onPause()
			}
		}

	case "x":
		if !m.state.IsRunning {
			return m, nil
		}
		if m.confirmStop {
			m.confirmStop = false
			if m.onStop != nil {
				m.onStop()
			}
			return m, nil
		}
		m.confirmStop = true
		m.confirmSkip = false

	case "k":
		if !m.state.IsRunning {
			return m, nil
		}
		if m.confirmSkip {
			m.confirmSkip = false
			if m.onSkip != nil {
				if err := m.onSkip(); err != nil {
					m.lastError = err
				}
			}
			return m, nil
		}
		m.confirmSkip = true
		m.confirmStop = false

	default:
		m.confirmStop = false
		m.confirmSkip = false
	}
	return m, nil
}

// View renders the TUI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(m.modeColor()).MarginBottom(1)
	sections = append(sections, titleStyle.Render("FlowTask Focus"))

	if m.taskText != "" {
		taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
		sections = append(sections, taskStyle.Render("Task: "+m.taskText))
	}

	modeStyle := lipgloss.NewStyle().Foreground(m.modeColor())
	label := domain.ModeLabel(m.state.Mode)
	if m.state.IsPaused {
		label += " (paused)"
	}
	sections = append(sections, modeStyle.Render(label))

	timerStyle := lipgloss.NewStyle().Bold(true).Foreground(m.timerColor())
	sections = append(sections, timerStyle.Render(formatClock(m.state.TimeRemaining)))

	if m.state.TotalTime > 0 {
		done := float64(m.state.TotalTime-m.state.TimeRemaining) / float64(m.state.TotalTime)
		sections = append(sections, m.progress.ViewAs(done))
	}

	sections = append(sections, m.sessionDots())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	if m.lastDone != nil {
		doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorBreak))
		if m.lastDone.finished == domain.ModeWork {
			sections = append(sections, doneStyle.Render(fmt.Sprintf("Session complete! Next: %s", domain.ModeLabel(m.lastDone.next))))
		} else {
			sections = append(sections, doneStyle.Render("Break over. Back to work!"))
		}
	}

	statsLine := fmt.Sprintf("Today: %d pomodoros  Total: %d (%d min)",
		m.stats.TodayPomodoros, m.stats.TotalPomodoros, m.stats.TotalMinutes)
	sections = append(sections, helpStyle.Render(statsLine))

	sections = append(sections, "")
	switch {
	case m.confirmStop:
		sections = append(sections, helpStyle.Render("Stop this session? [x] again to confirm"))
	case m.confirmSkip:
		sections = append(sections, helpStyle.Render("Skip to the end? [k] again to confirm"))
	case !m.state.IsRunning:
		sections = append(sections, helpStyle.Render("[s]tart  [q]uit"))
	case m.state.IsPaused:
		sections = append(sections, helpStyle.Render("[s] resume  [x] stop  [k] skip  [q]uit"))
	default:
		sections = append(sections, helpStyle.Render("[s] pause  [x] stop  [k] skip  [q]uit"))
	}

	if m.lastError != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorOverdue))
		sections = append(sections, errStyle.Render(m.lastError.Error()))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// sessionDots renders the position within the four-session cycle.
func (m Model) sessionDots() string {
	pos := m.state.CurrentSession % domain.SessionsBeforeLongBreak
	if pos == 0 && m.state.CurrentSession > 0 {
		pos = domain.SessionsBeforeLongBreak
	}

	filled := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorWork))
	empty := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorPaused))

	dots := ""
	for i := 1; i <= domain.SessionsBeforeLongBreak; i++ {
		if dots != "" {
			dots += " "
		}
		if i <= pos {
			dots += filled.Render("●")
		} else {
			dots += empty.Render("○")
		}
	}
	return dots
}

func (m Model) modeColor() lipgloss.Color {
	if m.state.Mode != domain.ModeWork {
		return lipgloss.Color(m.theme.ColorBreak)
	}
	return lipgloss.Color(m.theme.ColorWork)
}

func (m Model) timerColor() lipgloss.Color {
	if m.state.IsPaused {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	return m.modeColor()
}

// formatClock renders remaining seconds as MM:SS.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
