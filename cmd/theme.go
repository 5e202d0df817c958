package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or switch the color theme",
	Long: `Show the active color theme, or switch it. With no argument the
theme toggles between light and dark. The choice persists across runs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		next := themeName
		if len(args) == 1 {
			switch args[0] {
			case "light", "dark":
				next = args[0]
			default:
				return fmt.Errorf("unknown theme %q (use light or dark)", args[0])
			}
		} else {
			if themeName == "dark" {
				next = "light"
			} else {
				next = "dark"
			}
		}

		if err := storageAdapter.Theme().Save(ctx, next); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}
		themeName = next
		fmt.Printf("Theme: %s\n", next)
		return nil
	},
}
