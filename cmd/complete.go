package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:     "complete [task]",
	Aliases: []string{"done", "toggle"},
	Short:   "Toggle a task's completion",
	Long: `Toggle a task between done and not done. The task is referenced by
its list position or by (fuzzy) text:

  flowtask complete 2
  flowtask complete "submit report"

Completing a task earns XP; toggling it back does not take the XP away.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		task, err := resolveTask(args[0])
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return nil
			}
			return err
		}

		updated, err := taskService.ToggleComplete(ctx, task.ID)
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return nil
			}
			return fmt.Errorf("failed to toggle task: %w", err)
		}

		s := newStyles()
		if updated.Completed {
			fmt.Printf("Done: %s (+%d XP)\n", s.done.Render(updated.Text), updated.Priority.XP())
		} else {
			fmt.Printf("Reopened: %s\n", s.forPriority(updated.Priority).Render(updated.Text))
		}
		return nil
	},
}
