package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// clearCmd represents the clear command
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Long:  `Remove every completed task after confirmation.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if !confirmer.Confirm("Remove all completed tasks?") {
			return nil
		}

		removed, err := taskService.ClearCompleted(ctx)
		if err != nil {
			return fmt.Errorf("failed to clear completed tasks: %w", err)
		}

		if removed == 0 {
			fmt.Println("Nothing to clear.")
			return nil
		}
		fmt.Printf("Cleared %d completed task(s).\n", removed)
		return nil
	},
}
