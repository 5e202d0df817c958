package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/projection"
)

var (
	listFilter string
	listView   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	Long: `List tasks in one of three views:

  today     tasks created today (default)
  all       every task
  timeline  all tasks grouped by creation day, newest first

Filters narrow any view to active, completed, or high-priority tasks.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listFilter, "filter", "f", "all", "Filter: all, active, completed, high")
	listCmd.Flags().StringVarP(&listView, "view", "v", "today", "View: today, all, timeline")
}

func runList(cmd *cobra.Command, args []string) error {
	filter := projection.Filter(listFilter)
	switch filter {
	case projection.FilterAll, projection.FilterActive, projection.FilterCompleted, projection.FilterHigh:
	default:
		return fmt.Errorf("invalid filter %q (use all, active, completed, or high)", listFilter)
	}

	now := time.Now()
	tasks := taskService.All()

	if jsonOutput {
		var visible []domain.Task
		switch listView {
		case "today", "":
			visible = projection.ByFilter(projection.Today(tasks, now), filter)
		case "all":
			visible = projection.ByFilter(tasks, filter)
		case "timeline":
			visible = projection.Timeline(projection.ByFilter(tasks, filter))
		default:
			return fmt.Errorf("invalid view %q (use today, all, or timeline)", listView)
		}
		return outputJSON(map[string]interface{}{
			"tasks": visible,
			"count": len(visible),
		})
	}

	s := newStyles()

	// Positions refer to the unfiltered store order so references stay
	// stable across filters.
	positions := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		positions[t.ID] = i + 1
	}

	switch listView {
	case "today", "":
		visible := projection.ByFilter(projection.Today(tasks, now), filter)
		fmt.Println(s.header.Render("Today"))
		printTasks(s, visible, positions, now)
	case "all":
		visible := projection.ByFilter(tasks, filter)
		fmt.Println(s.header.Render("All tasks"))
		printTasks(s, visible, positions, now)
	case "timeline":
		printTimeline(s, projection.ByFilter(tasks, filter), positions, now)
	default:
		return fmt.Errorf("invalid view %q (use today, all, or timeline)", listView)
	}

	counts := projection.CountTasks(tasks)
	data := rewardService.Data()
	fmt.Println()
	fmt.Println(s.help.Render(counts.Summary()))
	fmt.Println(s.help.Render(fmt.Sprintf("XP: %d  Streak: %d day(s)  Done today: %d",
		data.XP, data.Streak, data.CompletedToday)))
	return nil
}

func printTasks(s styles, tasks []domain.Task, positions map[int64]int, now time.Time) {
	if len(tasks) == 0 {
		fmt.Println(s.help.Render("  No tasks here."))
		return
	}
	for _, t := range tasks {
		var badge *projection.Badge
		if t.Deadline != nil {
			if b, ok := projection.DeadlineBadge(*t.Deadline, t.Completed, now); ok {
				badge = &b
			}
		}
		created := projection.CreatedLabel(t.CreatedAt, now)
		fmt.Println(renderTask(s, positions[t.ID], t, badge, created))
	}
}

func printTimeline(s styles, tasks []domain.Task, positions map[int64]int, now time.Time) {
	ordered := projection.Timeline(tasks)
	if len(ordered) == 0 {
		fmt.Println(s.help.Render("  No tasks here."))
		return
	}

	var lastDay string
	for _, t := range ordered {
		day := t.CreatedAt.Format(domain.DayFormat)
		if day != lastDay {
			lastDay = day
			label := t.CreatedAt.Format("Monday, Jan 2")
			if domain.SameDay(t.CreatedAt, now) {
				label = "Today"
			} else if domain.SameDay(t.CreatedAt, now.AddDate(0, 0, -1)) {
				label = "Yesterday"
			}
			fmt.Println(s.header.Render(label))
		}

		var badge *projection.Badge
		if t.Deadline != nil {
			if b, ok := projection.DeadlineBadge(*t.Deadline, t.Completed, now); ok {
				badge = &b
			}
		}
		fmt.Println(renderTask(s, positions[t.ID], t, badge, t.CreatedAt.Format("3:04 PM")))
	}
}
