package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// EligibleCrewCmd creates the eligibleCrew command
func EligibleCrewCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eligibleCrew [boatID] [date]",
		Short: "List users who can crew a boat on a day",
		Long:  "List the boat's current crew plus every user marked available and not committed to another boat on the day.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("eligibleCrew command", zap.String("boat_id", args[0]), zap.String("date", args[1]))

			eligible, err := services.EligibleCrew(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to list eligible crew: %w", err)
			}

			if len(eligible) == 0 {
				fmt.Printf("\nNo eligible crew for boat %s on %s\n\n", args[0], args[1])
				return nil
			}

			fmt.Printf("\n👥 Eligible crew for boat %s on %s\n\n", args[0], args[1])
			for _, user := range eligible {
				fmt.Printf("  %-25s  (%s)\n", user.FullName(), user.ID)
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}
