package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// AssignCrewCmd creates the assignCrew command
func AssignCrewCmd(app *AppContext) *cobra.Command {
	var (
		instructorID string
		helperID     string
		activityID   string
		durationDays int
		notes        string
	)

	cmd := &cobra.Command{
		Use:   "assignCrew [boatID] [date]",
		Short: "Create or edit the assignment covering a boat/day cell",
		Long: "Create or edit the assignment covering a boat on a day (YYYY-MM-DD). " +
			"Only the flags you pass are changed; changing the person in a role resets that role's confirmation.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := services.AssignCrewParams{
				BoatID: args[0],
				Date:   args[1],
			}
			if cmd.Flags().Changed("instructor") {
				params.InstructorID = &instructorID
			}
			if cmd.Flags().Changed("helper") {
				params.HelperID = &helperID
			}
			if cmd.Flags().Changed("activity") {
				params.ActivityID = &activityID
			}
			if cmd.Flags().Changed("duration") {
				params.DurationDays = &durationDays
			}
			if cmd.Flags().Changed("notes") {
				params.Notes = &notes
			}

			app.Logger.Debug("assignCrew command", zap.String("boat_id", params.BoatID), zap.String("date", params.Date))

			result, err := services.AssignCrew(app.Ctx, app.Database, app.Logger, params)
			if err != nil {
				return fmt.Errorf("failed to edit crew: %w", err)
			}

			if result.Created {
				fmt.Printf("\n✅ Assignment created: %s\n", result.Assignment.ID)
			} else {
				fmt.Printf("\n✅ Assignment updated: %s\n", result.Assignment.ID)
			}
			fmt.Printf("Boat: %s  Date: %s  Duration: %d day(s)\n",
				result.Assignment.BoatID, result.Assignment.Date, result.Assignment.DurationDays)

			if len(result.Warnings) > 0 {
				fmt.Printf("\n⚠️  Warnings (write saved anyway):\n")
				for _, w := range result.Warnings {
					fmt.Printf("  [%s] %s\n", w.Code, w.Message)
				}
			}
			if len(result.Notifications) > 0 {
				fmt.Printf("\n🔔 %d confirmation request(s) sent\n", len(result.Notifications))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().StringVar(&instructorID, "instructor", "", "User ID for the instructor slot (empty clears it)")
	cmd.Flags().StringVar(&helperID, "helper", "", "User ID for the helper slot (empty clears it)")
	cmd.Flags().StringVar(&activityID, "activity", "", "Activity ID")
	cmd.Flags().IntVar(&durationDays, "duration", 1, "Span length in days")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

// ClearActivityCmd creates the clearActivity command
func ClearActivityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clearActivity [boatID] [date]",
		Short: "Delete the assignment covering a boat/day cell",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := services.ClearActivity(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to clear activity: %w", err)
			}

			fmt.Printf("\n✅ Assignment %s deleted (boat %s, started %s)\n\n",
				deleted.ID, deleted.BoatID, deleted.Date)
			return nil
		},
	}

	return cmd
}
