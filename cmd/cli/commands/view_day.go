package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// ViewDayCmd creates the viewDay command
func ViewDayCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viewDay [date]",
		Short: "Show every boat's crew on one day",
		Long:  "Show the effective assignment of every boat on the given day (YYYY-MM-DD), plus the users already committed somewhere.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := args[0]
			app.Logger.Debug("viewDay command", zap.String("day", day))

			result, err := services.ViewDay(app.Ctx, app.Database, app.Logger, day)
			if err != nil {
				return fmt.Errorf("failed to resolve day view: %w", err)
			}

			fmt.Printf("\n📅 Schedule for %s\n\n", result.Day)
			fmt.Printf("%-15s  %-20s  %-20s  %-20s  %s\n", "Boat", "Activity", "Instructor", "Helper", "Status")
			fmt.Println("---------------  --------------------  --------------------  --------------------  ----------")

			for _, row := range result.Rows {
				if row.Assignment == nil {
					fmt.Printf("%-15s  %-20s\n", row.Boat.Name, "—")
					continue
				}

				status := ""
				if row.Cancelled {
					status = "cancelled"
				}
				fmt.Printf("%-15s  %-20s  %-20s  %-20s  %s\n",
					row.Boat.Name,
					orDash(row.ActivityName),
					orDash(row.InstructorName),
					orDash(row.HelperName),
					status)
			}

			fmt.Printf("\nCommitted users: %d\n", len(result.BusyIDs))

			if len(result.Warnings) > 0 {
				fmt.Printf("\n⚠️  Data warnings:\n")
				for _, w := range result.Warnings {
					fmt.Printf("  [%s] %s\n", w.Code, w.Message)
				}
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}

// orDash substitutes an em dash for empty cell values
func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
