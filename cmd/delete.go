package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [task]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long:    `Delete a task after confirmation. Deletion is permanent.`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		task, err := resolveTask(args[0])
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return nil
			}
			return err
		}

		if !confirmer.Confirm(fmt.Sprintf("Delete %q?", task.Text)) {
			return nil
		}

		if err := taskService.Delete(ctx, task.ID); err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return nil
			}
			return fmt.Errorf("failed to delete task: %w", err)
		}

		fmt.Printf("Deleted: %s\n", task.Text)
		return nil
	},
}
