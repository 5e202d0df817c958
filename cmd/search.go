package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowtaskapp/flowtask/internal/projection"
)

var searchPriority string

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search tasks by text",
	Long: `Search tasks by a case-insensitive substring of their text, with the
matched portion highlighted. Combine with --priority to narrow the
results to one priority.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.Join(args, " ")
		now := time.Now()

		filter := projection.Filter(searchPriority)
		if searchPriority == "" {
			filter = projection.FilterAll
		}

		result := projection.Search(taskService.All(), query, filter)

		if jsonOutput {
			matches := make([]map[string]interface{}, 0, len(result.Matches))
			for _, match := range result.Matches {
				matches = append(matches, map[string]interface{}{
					"task":  match.Task,
					"spans": match.Spans,
				})
			}
			return outputJSON(map[string]interface{}{
				"query":   result.Query,
				"count":   result.Count,
				"matches": matches,
			})
		}

		s := newStyles()

		if result.Count == 0 {
			fmt.Printf("No results for %q\n", result.Query)
			return nil
		}

		fmt.Printf("Found %d result(s) for %q\n\n", result.Count, result.Query)
		for _, match := range result.Matches {
			t := match.Task
			box := "[ ]"
			if t.Completed {
				box = "[x]"
			}
			text := renderHighlighted(s, t.Text, match.Spans)
			line := fmt.Sprintf("  %s %s", box, text)
			if t.Deadline != nil {
				if badge, ok := projection.DeadlineBadge(*t.Deadline, t.Completed, now); ok {
					line += " " + renderBadge(s, badge)
				}
			}
			line += " " + s.help.Render(projection.CreatedLabel(t.CreatedAt, now))
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchPriority, "priority", "p", "", "Narrow to a priority: high, or a filter: active, completed")
}
