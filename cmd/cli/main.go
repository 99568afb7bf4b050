package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/cmd/cli/commands"
	"github.com/sailclub/crewboard/internal/config"
	"github.com/sailclub/crewboard/pkg/postgres"
	"github.com/sailclub/crewboard/pkg/utils/logging"
)

var app *commands.AppContext

func main() {
	rootCmd := &cobra.Command{
		Use:   "crewboard",
		Short: "Crewboard CLI - Manage the club's boat schedule",
		Long:  `A CLI tool for managing boat assignments, crew confirmations, availability, maintenance and member notifications for a sailing club.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(cmd.Name())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add all commands
	rootCmd.AddCommand(commands.ViewDayCmd(appRef()))
	rootCmd.AddCommand(commands.AssignCrewCmd(appRef()))
	rootCmd.AddCommand(commands.ClearActivityCmd(appRef()))
	rootCmd.AddCommand(commands.EligibleCrewCmd(appRef()))
	rootCmd.AddCommand(commands.ConfirmRoleCmd(appRef()))
	rootCmd.AddCommand(commands.CancelAssignmentCmd(appRef()))
	rootCmd.AddCommand(commands.RestoreAssignmentCmd(appRef()))
	rootCmd.AddCommand(commands.SetAvailabilityCmd(appRef()))
	rootCmd.AddCommand(commands.AvailabilityGapsCmd(appRef()))
	rootCmd.AddCommand(commands.CreateEventCmd(appRef()))
	rootCmd.AddCommand(commands.RespondEventCmd(appRef()))
	rootCmd.AddCommand(commands.CompleteMaintenanceCmd(appRef()))
	rootCmd.AddCommand(commands.MaintenanceReportCmd(appRef()))
	rootCmd.AddCommand(commands.NotificationsCmd(appRef()))
	rootCmd.AddCommand(commands.MarkReadCmd(appRef()))
	rootCmd.AddCommand(commands.BirthdaysCmd(appRef()))
	rootCmd.AddCommand(commands.PublishScheduleCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext. Commands capture the pointer before
// initApp populates it, so it must be allocated up front.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config and database
func initApp(command string) error {
	var err error
	app = appRef()
	app.Ctx = context.Background()

	// Initialize logger
	app.Logger, err = logging.InitLogger(command)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting crewboard", zap.String("command", command))

	// Load configuration
	app.Logger.Debug("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Connect to PostgreSQL and apply pending migrations
	app.Logger.Debug("Connecting to database")
	database, err := postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Database = database
	app.Logger.Debug("Application initialized")

	return nil
}
