package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
	"github.com/sailclub/crewboard/pkg/db"
)

// SetAvailabilityCmd creates the setAvailability command
func SetAvailabilityCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setAvailability [userID] [date] [available|unavailable|unknown]",
		Short: "Record a user's availability for one day",
		Long:  "Record a user's availability for one day (YYYY-MM-DD). A Saturday or Sunday entry also writes the other day of the same weekend.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var status db.AvailabilityStatus
			switch strings.ToLower(args[2]) {
			case "available":
				status = db.Available
			case "unavailable":
				status = db.Unavailable
			case "unknown":
				status = db.Unknown
			default:
				return fmt.Errorf("status must be 'available', 'unavailable' or 'unknown', got %q", args[2])
			}

			app.Logger.Debug("setAvailability command",
				zap.String("user_id", args[0]),
				zap.String("date", args[1]),
				zap.String("status", string(status)))

			entries, err := services.SetAvailability(app.Ctx, app.Database, app.Logger, args[0], args[1], status)
			if err != nil {
				return fmt.Errorf("failed to set availability: %w", err)
			}

			fmt.Printf("\n✅ Availability recorded\n")
			for _, entry := range entries {
				fmt.Printf("  %s: %s\n", entry.Date, entry.Status)
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}

// AvailabilityGapsCmd creates the availabilityGaps command
func AvailabilityGapsCmd(app *AppContext) *cobra.Command {
	var notifyUsers bool

	cmd := &cobra.Command{
		Use:   "availabilityGaps [from] [to]",
		Short: "List users with missing availability in a date range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.AvailabilityGaps(app.Ctx, app.Database, app.Logger, args[0], args[1], notifyUsers)
			if err != nil {
				return fmt.Errorf("failed to resolve availability gaps: %w", err)
			}

			if len(result.Gaps) == 0 {
				fmt.Printf("\n✅ Everyone has entered availability for %s to %s\n\n", result.From, result.To)
				return nil
			}

			fmt.Printf("\n📋 Missing availability %s to %s\n\n", result.From, result.To)
			for _, gap := range result.Gaps {
				fmt.Printf("%-25s  %d day(s): %s\n",
					gap.User.FullName(), len(gap.MissingDays), strings.Join(gap.MissingDays, ", "))
			}
			if len(result.Notifications) > 0 {
				fmt.Printf("\n🔔 %d reminder(s) sent\n", len(result.Notifications))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().BoolVar(&notifyUsers, "notify", false, "Send a reminder notification to each user with gaps")

	return cmd
}
