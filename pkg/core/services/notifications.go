package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/notify"
	"github.com/sailclub/crewboard/pkg/db"
)

// ListNotificationsStore defines the database operations needed for the
// notification inbox
type ListNotificationsStore interface {
	GetNotifications(ctx context.Context) ([]db.UserNotification, error)
}

// ListNotifications returns one user's notifications, unread first, newest
// within each group
func ListNotifications(ctx context.Context, database ListNotificationsStore, logger *zap.Logger, userID string) ([]db.UserNotification, error) {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	var mine []db.UserNotification
	for _, n := range notifications {
		if n.UserID == userID {
			mine = append(mine, n)
		}
	}

	sort.SliceStable(mine, func(i, j int) bool {
		if mine[i].Read != mine[j].Read {
			return !mine[i].Read
		}
		return mine[i].CreatedAt > mine[j].CreatedAt
	})

	logger.Debug("Notifications listed", zap.String("user_id", userID), zap.Int("count", len(mine)))
	return mine, nil
}

// MarkReadStore defines the database operations needed to mark a
// notification read
type MarkReadStore interface {
	GetNotifications(ctx context.Context) ([]db.UserNotification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// MarkNotificationRead flips a notification's read flag. The transition is
// one-way; an already-read notification is left alone.
func MarkNotificationRead(ctx context.Context, database MarkReadStore, logger *zap.Logger, notificationID string) (*db.UserNotification, error) {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	for _, n := range notifications {
		if n.ID != notificationID {
			continue
		}
		if n.Read {
			return &n, nil
		}

		updated := notify.MarkRead(n)
		if err := database.MarkNotificationRead(ctx, notificationID); err != nil {
			return nil, fmt.Errorf("failed to mark notification read: %w", err)
		}

		logger.Info("Notification marked read", zap.String("notification_id", notificationID))
		return &updated, nil
	}

	return nil, fmt.Errorf("notification not found: %s", notificationID)
}

// BirthdayStore defines the database operations needed for the birthday
// fan-out
type BirthdayStore interface {
	GetUsers(ctx context.Context) ([]db.User, error)
	GetNotifications(ctx context.Context) ([]db.UserNotification, error)
	InsertNotifications(ctx context.Context, notifications []db.UserNotification) error
}

// BirthdayNotifications fans out today's birthday broadcasts. Running the
// command twice on the same day is safe: already-sent messages are skipped.
func BirthdayNotifications(ctx context.Context, database BirthdayStore, logger *zap.Logger, today time.Time) ([]db.UserNotification, error) {
	users, err := database.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	existing, err := database.GetNotifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	notifications := notify.OnBirthday(today, users, existing)
	if len(notifications) > 0 {
		if err := database.InsertNotifications(ctx, notifications); err != nil {
			return nil, fmt.Errorf("failed to save notifications: %w", err)
		}
	}

	logger.Info("Birthday fan-out complete", zap.Int("notifications", len(notifications)))
	return notifications, nil
}
