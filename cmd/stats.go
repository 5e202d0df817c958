package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/adapters/git"
	"github.com/flowtaskapp/flowtask/internal/projection"
)

var statsLog int

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show progress and focus statistics",
	Long: `Show XP, streak, task counts, and pomodoro statistics, including the
most recent focus sessions with their git context.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := newStyles()

		data := rewardService.Data()
		counts := projection.CountTasks(taskService.All())
		stats := focusService.Stats()

		if jsonOutput {
			return outputJSON(map[string]interface{}{
				"xp":              data.XP,
				"streak":          data.Streak,
				"completed_today": data.CompletedToday,
				"tasks_all":       counts.All,
				"tasks_active":    counts.Active,
				"tasks_completed": counts.Completed,
				"today_pomodoros": stats.TodayPomodoros,
				"total_pomodoros": stats.TotalPomodoros,
				"total_minutes":   stats.TotalMinutes,
			})
		}

		fmt.Println(s.header.Render("Progress"))
		fmt.Printf("  XP: %d\n", data.XP)
		fmt.Printf("  Streak: %d day(s)\n", data.Streak)
		fmt.Printf("  Completed today: %d\n", data.CompletedToday)
		fmt.Printf("  %s\n", counts.Summary())

		fmt.Println()
		fmt.Println(s.header.Render("Focus"))
		fmt.Printf("  Today: %d pomodoro(s)\n", stats.TodayPomodoros)
		fmt.Printf("  All time: %d pomodoro(s), %d minute(s)\n", stats.TotalPomodoros, stats.TotalMinutes)

		if statsLog > 0 && len(stats.Log) > 0 {
			fmt.Println()
			fmt.Println(s.header.Render("Recent sessions"))
			start := len(stats.Log) - statsLog
			if start < 0 {
				start = 0
			}
			for i := len(stats.Log) - 1; i >= start; i-- {
				entry := stats.Log[i]
				line := fmt.Sprintf("  %s  %d min", entry.CompletedAt.Format("Jan 2 3:04 PM"), entry.Minutes)
				if entry.TaskID != nil {
					if task, err := taskService.Find(*entry.TaskID); err == nil {
						line += "  " + task.Text
					}
				}
				if entry.GitBranch != "" {
					line += s.help.Render(fmt.Sprintf("  [%s@%s]", entry.GitBranch, git.ShortCommit(entry.GitCommit)))
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsLog, "log", "l", 5, "How many recent sessions to show (0 hides the log)")
}
