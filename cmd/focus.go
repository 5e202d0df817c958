package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/adapters/tui"
	"github.com/flowtaskapp/flowtask/internal/domain"
)

var (
	focusTask  string
	focusWork  int
	focusShort int
	focusLong  int
)

// focusCmd represents the focus command
var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run a pomodoro focus session",
	Long: `Run a fullscreen pomodoro timer against one of your tasks. Work
sessions alternate with short breaks, and every fourth work session
earns a long break. Each finished work session is worth XP and is
logged with the current git branch and commit when run inside a
repository.

With --task the task is fuzzy-matched; otherwise a picker opens.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := setupSignalHandler()

		if focusWork > 0 || focusShort > 0 || focusLong > 0 {
			settings := focusService.Settings()
			if focusWork > 0 {
				settings.WorkDuration = focusWork
			}
			if focusShort > 0 {
				settings.ShortBreak = focusShort
			}
			if focusLong > 0 {
				settings.LongBreak = focusLong
			}
			if err := focusService.UpdateSettings(ctx, settings); err != nil {
				return err
			}
		}

		task := tui.PickTask(taskService.All(), focusTask, appConfig.Theme)
		if task == nil {
			fmt.Println("No task selected.")
			return nil
		}
		focusService.SelectTask(&task.ID)

		onComplete := func(finished, next domain.FocusMode) {
			notifier.Chime()
			if finished == domain.ModeWork {
				notifier.Notify("FlowTask", fmt.Sprintf("Focus session done. Next: %s", domain.ModeLabel(next)))
			} else {
				notifier.Notify("FlowTask", "Break over. Back to work!")
			}
		}

		return tui.Run(ctx, focusService, task.Text, appConfig.Theme, onComplete)
	},
}

func init() {
	focusCmd.Flags().StringVarP(&focusTask, "task", "t", "", "Task to focus on (fuzzy text match)")
	focusCmd.Flags().IntVar(&focusWork, "work", 0, "Work session length in minutes")
	focusCmd.Flags().IntVar(&focusShort, "short-break", 0, "Short break length in minutes")
	focusCmd.Flags().IntVar(&focusLong, "long-break", 0, "Long break length in minutes")
}
