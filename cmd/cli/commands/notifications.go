package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/services"
)

// NotificationsCmd creates the notifications command
func NotificationsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications [userID]",
		Short: "List a user's notifications, unread first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("notifications command", zap.String("user_id", args[0]))

			notifications, err := services.ListNotifications(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to list notifications: %w", err)
			}

			if len(notifications) == 0 {
				fmt.Printf("\nNo notifications for %s\n\n", args[0])
				return nil
			}

			fmt.Printf("\n🔔 Notifications for %s\n\n", args[0])
			for _, n := range notifications {
				marker := "•"
				if n.Read {
					marker = " "
				}
				fmt.Printf("%s [%s] %-12s %s  (%s)\n", marker, n.CreatedAt, n.Type, n.Message, n.ID)
			}
			fmt.Println()

			return nil
		},
	}

	return cmd
}

// MarkReadCmd creates the markRead command
func MarkReadCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "markRead [notificationID]",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := services.MarkNotificationRead(app.Ctx, app.Database, app.Logger, args[0])
			if err != nil {
				return fmt.Errorf("failed to mark notification read: %w", err)
			}

			fmt.Printf("\n✅ Marked read: %s\n\n", updated.Message)
			return nil
		},
	}

	return cmd
}

// BirthdaysCmd creates the birthdays command
func BirthdaysCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Send today's birthday broadcasts",
		Long:  "Send a broadcast notification for every user whose birthday is today. Safe to run more than once a day.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sent, err := services.BirthdayNotifications(app.Ctx, app.Database, app.Logger, time.Now())
			if err != nil {
				return fmt.Errorf("failed to send birthday notifications: %w", err)
			}

			if len(sent) == 0 {
				fmt.Printf("\nNo birthdays today (or broadcasts already sent)\n\n")
				return nil
			}

			fmt.Printf("\n🎂 %d birthday notification(s) sent\n\n", len(sent))
			return nil
		},
	}

	return cmd
}
