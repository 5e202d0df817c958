package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowtaskapp/flowtask/internal/config"
	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/services"
)

// Run starts the focus timer interface bound to the focus service and
// blocks until the user quits. The service pushes state snapshots into
// the program on every tick; key presses call back into the service.
func Run(ctx context.Context, focus *services.FocusService, taskText string, theme config.ThemeConfig, onComplete func(finished, next domain.FocusMode)) error {
	cb := Callbacks{
		OnStart:    func() error { return focus.Start(ctx) },
		OnPause:    focus.Pause,
		OnResume:   func() { focus.Resume(ctx) },
		OnStop:     focus.Stop,
		OnSkip:     func() error { return focus.Skip(ctx) },
		FetchStats: focus.Stats,
	}

	model := NewModel(taskText, focus.Snapshot(), theme, cb)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Callbacks can fire from key handlers inside the program's own
	// event loop; a synchronous Send would deadlock there.
	focus.SetOnTick(func(state domain.PomodoroState) {
		go program.Send(stateMsg{state: state})
	})
	focus.SetOnSessionComplete(func(finished, next domain.FocusMode) {
		if onComplete != nil {
			onComplete(finished, next)
		}
		go program.Send(sessionDoneMsg{finished: finished, next: next})
	})
	defer func() {
		focus.SetOnTick(nil)
		focus.SetOnSessionComplete(nil)
	}()

	go func() {
		<-ctx.Done()
		program.Quit()
	}()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
