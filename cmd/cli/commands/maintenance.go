package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// CompleteMaintenanceCmd creates the completeMaintenance command
func CompleteMaintenanceCmd(app *AppContext) *cobra.Command {
	var acceptNext bool

	cmd := &cobra.Command{
		Use:   "completeMaintenance [recordID]",
		Short: "Mark a maintenance record done",
		Long: "Mark a maintenance record done. For recurring work the next occurrence is proposed; " +
			"pass --accept-next to save it immediately.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("completeMaintenance command", zap.String("record_id", args[0]))

			result, err := services.CompleteMaintenance(app.Ctx, app.Database, app.Logger, args[0], time.Now())
			if err != nil {
				return fmt.Errorf("failed to complete maintenance: %w", err)
			}

			fmt.Printf("\n✅ Maintenance %q marked done\n", result.Updated.Description)

			if result.Proposal == nil {
				fmt.Println()
				return nil
			}

			fmt.Printf("\n🔁 Next occurrence proposed: due %s\n", result.Proposal.ExpirationDate)
			if !acceptNext {
				fmt.Println("Run again with --accept-next, or create the record manually.")
				fmt.Println()
				return nil
			}

			if err := services.AcceptProposal(app.Ctx, app.Database, app.Logger, result.Proposal); err != nil {
				return fmt.Errorf("failed to save proposed record: %w", err)
			}
			fmt.Printf("✅ Follow-up record %s saved\n\n", result.Proposal.ID)

			return nil
		},
	}

	cmd.Flags().BoolVar(&acceptNext, "accept-next", false, "Save the proposed next occurrence without asking")

	return cmd
}

// MaintenanceReportCmd creates the maintenanceReport command
func MaintenanceReportCmd(app *AppContext) *cobra.Command {
	var notifyAdmins bool

	cmd := &cobra.Command{
		Use:   "maintenanceReport",
		Short: "Group maintenance records by expiration urgency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.MaintenanceReport(app.Ctx, app.Database, app.Logger, time.Now(), notifyAdmins)
			if err != nil {
				return fmt.Errorf("failed to build maintenance report: %w", err)
			}

			printBucket := func(title string, records []services.BucketedRecord) {
				fmt.Printf("%s (%d)\n", title, len(records))
				for _, r := range records {
					due := r.Record.ExpirationDate
					if due == "" {
						due = "—"
					}
					fmt.Printf("  %-15s  %-30s  due %s\n", r.BoatName, r.Record.Description, due)
				}
				fmt.Println()
			}

			fmt.Printf("\n🔧 Maintenance report\n\n")
			printBucket("❌ Expired", result.Expired)
			printBucket("⚠️  Expiring soon", result.ExpiringSoon)
			printBucket("✅ OK", result.OK)

			if len(result.Notifications) > 0 {
				fmt.Printf("🔔 %d admin notification(s) sent\n\n", len(result.Notifications))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&notifyAdmins, "notify", false, "Notify admins about expiring-soon records")

	return cmd
}
