package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/confirm"
	"github.com/sailclub/crewboard/pkg/core/services"
)

// parseDecision turns an accept/decline argument into a boolean
func parseDecision(s string) (bool, error) {
	switch s {
	case "accept":
		return true, nil
	case "decline":
		return false, nil
	default:
		return false, fmt.Errorf("decision must be 'accept' or 'decline', got %q", s)
	}
}

// ConfirmRoleCmd creates the confirmRole command
func ConfirmRoleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "confirmRole [assignmentID] [instructor|helper] [accept|decline]",
		Short: "Record a crew member's decision on an assignment",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := confirm.ParseRole(args[1])
			if err != nil {
				return err
			}
			accepted, err := parseDecision(args[2])
			if err != nil {
				return err
			}

			app.Logger.Debug("confirmRole command",
				zap.String("assignment_id", args[0]),
				zap.String("role", string(role)),
				zap.Bool("accepted", accepted))

			updated, err := services.ConfirmRole(app.Ctx, app.Database, app.Logger, args[0], role, accepted)
			if err != nil {
				return fmt.Errorf("failed to confirm role: %w", err)
			}

			decision := "accepted"
			if !accepted {
				decision = "declined"
			}
			fmt.Printf("\n✅ %s %s on assignment %s (boat %s, %s)\n\n",
				role, decision, updated.ID, updated.BoatID, updated.Date)

			return nil
		},
	}

	return cmd
}

// CancelAssignmentCmd creates the cancelAssignment command
func CancelAssignmentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cancelAssignment [assignmentID]",
		Short: "Cancel an assignment without deleting it",
		Long:  "Cancel an assignment. The record stays on the schedule marked cancelled and can be restored; role confirmations are kept.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := services.CancelAssignment(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to cancel assignment: %w", err)
			}

			fmt.Printf("\n✅ Assignment %s cancelled (boat %s, %s)\n\n",
				updated.ID, updated.BoatID, updated.Date)
			return nil
		},
	}

	return cmd
}

// RestoreAssignmentCmd creates the restoreAssignment command
func RestoreAssignmentCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restoreAssignment [assignmentID]",
		Short: "Reverse a cancellation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := services.RestoreAssignment(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to restore assignment: %w", err)
			}

			fmt.Printf("\n✅ Assignment %s restored (boat %s, %s)\n\n",
				updated.ID, updated.BoatID, updated.Date)
			return nil
		},
	}

	return cmd
}
