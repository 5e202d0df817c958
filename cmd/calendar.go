package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/domain"
	"github.com/flowtaskapp/flowtask/internal/projection"
)

var calendarMonth string

// calendarCmd represents the calendar command
var calendarCmd = &cobra.Command{
	Use:     "calendar [day]",
	Aliases: []string{"cal"},
	Short:   "Show tasks on a month calendar",
	Long: `Show a month calendar with a task count per day. Days with tasks also
mark the priorities present. Pass a day (2006-01-02) to list that day's
tasks instead:

  flowtask calendar
  flowtask calendar --month 2026-09
  flowtask calendar 2026-09-15`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		tasks := taskService.All()
		s := newStyles()

		if len(args) == 1 {
			day, err := time.ParseInLocation(domain.DayFormat, args[0], now.Location())
			if err != nil {
				return fmt.Errorf("invalid day %q (use 2006-01-02)", args[0])
			}
			printDay(s, tasks, day)
			return nil
		}

		year, month := now.Year(), now.Month()
		if calendarMonth != "" {
			parsed, err := time.ParseInLocation("2006-01", calendarMonth, now.Location())
			if err != nil {
				return fmt.Errorf("invalid month %q (use 2006-01)", calendarMonth)
			}
			year, month = parsed.Year(), parsed.Month()
		}

		printMonth(s, tasks, year, month, now)
		return nil
	},
}

func init() {
	calendarCmd.Flags().StringVarP(&calendarMonth, "month", "m", "", "Month to show (2006-01)")
}

func printDay(s styles, tasks []domain.Task, day time.Time) {
	onDay := projection.CalendarDay(tasks, day)
	fmt.Println(s.header.Render(day.Format("Monday, January 2, 2006")))
	if len(onDay) == 0 {
		fmt.Println(s.help.Render("  No tasks on this day."))
		return
	}
	for _, t := range onDay {
		box := "[ ]"
		text := s.forPriority(t.Priority).Render(t.Text)
		if t.Completed {
			box = "[x]"
			text = s.done.Render(t.Text)
		}
		fmt.Printf("  %s %s\n", box, text)
	}
}

func printMonth(s styles, tasks []domain.Task, year int, month time.Month, now time.Time) {
	grid := projection.MonthGrid(tasks, year, month, now)

	title := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).Format("January 2006")
	fmt.Println(s.header.Render(title))
	fmt.Println(s.help.Render(" Sun  Mon  Tue  Wed  Thu  Fri  Sat"))

	var row strings.Builder
	for i, cell := range grid {
		label := fmt.Sprintf("%2d", cell.Day)
		if cell.TaskCount > 0 {
			label += fmt.Sprintf("·%d", cell.TaskCount)
		}
		cellText := fmt.Sprintf("%-5s", label)

		switch {
		case cell.OtherMonth:
			cellText = s.help.Render(cellText)
		case cell.Today:
			cellText = s.header.Render(cellText)
		case cell.TaskCount > 0:
			highest := domain.PriorityLow
			for _, p := range cell.Priorities {
				if p == domain.PriorityHigh {
					highest = p
					break
				}
				if p == domain.PriorityMedium {
					highest = p
				}
			}
			cellText = s.forPriority(highest).Render(cellText)
		}

		row.WriteString(cellText)
		if (i+1)%7 == 0 {
			fmt.Println(row.String())
			row.Reset()
		}
	}

	fmt.Println()
	fmt.Println(s.help.Render("N·M = day N has M tasks. \"flowtask calendar <day>\" to list them."))
}
