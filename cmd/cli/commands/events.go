package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// CreateEventCmd creates the createEvent command
func CreateEventCmd(app *AppContext) *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "createEvent [date] [title]",
		Short: "Create a general event and invite every current user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("createEvent command", zap.String("date", args[0]), zap.String("title", args[1]))

			result, err := services.CreateEvent(app.Ctx, app.Database, app.Logger, args[0], args[1], description)
			if err != nil {
				return fmt.Errorf("failed to create event: %w", err)
			}

			fmt.Printf("\n✅ Event created: %s\n", result.Event.ID)
			fmt.Printf("Date: %s  Title: %s\n", result.Event.Date, result.Event.Title)
			fmt.Printf("🔔 %d user(s) invited\n\n", len(result.Notifications))

			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Event description")

	return cmd
}

// RespondEventCmd creates the respondEvent command
func RespondEventCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "respondEvent [eventID] [userID] [accept|decline]",
		Short: "Record a user's RSVP on an event",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			accepted, err := parseDecision(args[2])
			if err != nil {
				return err
			}

			updated, err := services.RespondToEvent(app.Ctx, app.Database, app.Logger, args[0], args[1], accepted)
			if err != nil {
				return fmt.Errorf("failed to record response: %w", err)
			}

			decision := "accepted"
			if !accepted {
				decision = "declined"
			}
			fmt.Printf("\n✅ %s %s %q on %s\n\n", args[1], decision, updated.Title, updated.Date)

			return nil
		},
	}

	return cmd
}
