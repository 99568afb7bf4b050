package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/internal/config"
	"github.com/sailclub/crewboard/pkg/clients/sheetsclient"
	"github.com/sailclub/crewboard/pkg/core/services"
)

// PublishScheduleCmd creates the publishSchedule command
func PublishScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publishSchedule [from] [to]",
		Short: "Publish the crew board for a date range to Google Sheets",
		Long: "Publish the crew board for a date range (YYYY-MM-DD) to the spreadsheet named by scheduleSheetID. " +
			"The OAuth flow runs on first use.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Cfg.ScheduleSheetID == "" {
				return fmt.Errorf("scheduleSheetID is not set in the config file")
			}

			app.Logger.Debug("publishSchedule command", zap.String("from", args[0]), zap.String("to", args[1]))

			board, err := services.PublishSchedule(app.Ctx, app.Database, app.Logger, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to assemble schedule: %w", err)
			}

			// The sheets client is created here rather than at startup so the
			// database-only commands never trigger the OAuth flow
			oauthCfg, err := config.LoadOAuthClient()
			if err != nil {
				return fmt.Errorf("failed to load OAuth client config: %w", err)
			}

			client, err := sheetsclient.NewClient(app.Ctx, oauthCfg)
			if err != nil {
				return fmt.Errorf("failed to create sheets client: %w", err)
			}

			if err := client.PublishSchedule(app.Cfg.ScheduleSheetID, board); err != nil {
				return fmt.Errorf("failed to publish schedule: %w", err)
			}

			fmt.Printf("\n✅ Schedule Published Successfully\n\n")
			fmt.Printf("Range:    %s to %s\n", board.From, board.To)
			fmt.Printf("Rows:     %d\n", len(board.Rows))
			fmt.Printf("Sheet ID: %s\n\n", app.Cfg.ScheduleSheetID)

			return nil
		},
	}

	return cmd
}
