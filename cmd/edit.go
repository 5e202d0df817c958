package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/domain"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:   "edit [task] [new text...]",
	Short: "Edit a task's text",
	Long: `Edit a task's text. With only a task reference, prompts for the new
text with the current text as the default. The deadline and priority
are unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		task, err := resolveTask(args[0])
		if err != nil {
			if errors.Is(err, domain.ErrTaskNotFound) {
				return nil
			}
			return err
		}

		newText := strings.Join(args[1:], " ")
		if newText == "" {
			answer, ok := confirmer.PromptText("New text", task.Text)
			if !ok {
				return nil
			}
			newText = answer
		}

		if err := taskService.Edit(ctx, task.ID, newText); err != nil {
			if errors.Is(err, domain.ErrEmptyTaskText) {
				return nil
			}
			return fmt.Errorf("failed to edit task: %w", err)
		}

		fmt.Printf("Updated: %s\n", newText)
		return nil
	},
}
