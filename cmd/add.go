package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/parse"
	"github.com/flowtaskapp/flowtask/internal/projection"
)

var (
	addDeadline string
	addPriority string
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add [text]",
	Short: "Add a new task",
	Long: `Add a new task to the FlowTask list.

Deadlines written in plain English are picked up from the task text:

  flowtask add "Submit report by friday"
  flowtask add "Call dentist tomorrow"
  flowtask add "Renew passport in 2 weeks"

The matched phrase is stripped from the stored text. Use --deadline to
set one explicitly instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		text := strings.Join(args, " ")

		var explicit *time.Time
		if addDeadline != "" {
			parsed, ok := parse.Deadline(addDeadline, time.Now())
			if !ok {
				return fmt.Errorf("could not understand deadline %q", addDeadline)
			}
			explicit = &parsed
		}

		priority := domain.Priority(addPriority)
		if !priority.IsValid() {
			return fmt.Errorf("invalid priority %q (use low, medium, or high)", addPriority)
		}

		task, err := taskService.Add(ctx, text, explicit, priority)
		if err != nil {
			if errors.Is(err, domain.ErrEmptyTaskText) {
				return nil
			}
			return fmt.Errorf("failed to add task: %w", err)
		}

		if jsonOutput {
			return outputJSON(task)
		}

		s := newStyles()
		fmt.Printf("Added: %s\n", s.forPriority(task.Priority).Render(task.Text))
		if task.Deadline != nil {
			if badge, ok := projection.DeadlineBadge(*task.Deadline, false, time.Now()); ok {
				fmt.Printf("Deadline: %s (%s)\n", task.Deadline.Format("Mon Jan 2"), badge.Label)
			}
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addDeadline, "deadline", "d", "", "Explicit deadline (same phrases as in task text)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority: low, medium, or high")
}
