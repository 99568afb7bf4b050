package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/confirm"
	"github.com/sailclub/crewboard/pkg/db"
)

// RespondStore defines the database operations needed for confirmation and
// cancellation flows
type RespondStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	UpsertAssignment(ctx context.Context, assignment *db.Assignment) error
	GetNotifications(ctx context.Context) ([]db.UserNotification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// ConfirmRole records an instructor's or helper's decision on an assignment
// and marks the notification that asked them as read
func ConfirmRole(ctx context.Context, database RespondStore, logger *zap.Logger, assignmentID string, role confirm.Role, accepted bool) (*db.Assignment, error) {
	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	assignment, err := findAssignmentByID(assignments, assignmentID)
	if err != nil {
		return nil, err
	}

	updated, err := confirm.ConfirmRole(*assignment, role, accepted)
	if err != nil {
		return nil, err
	}

	if err := database.UpsertAssignment(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	userID := updated.InstructorID
	if role == confirm.RoleHelper {
		userID = updated.HelperID
	}
	if err := markTriggeringNotificationsRead(ctx, database, logger, func(n db.UserNotification) bool {
		return n.AssignmentID == assignmentID && n.UserID == userID && n.Type == db.NotificationAssignment
	}); err != nil {
		return nil, err
	}

	logger.Info("Role confirmation recorded",
		zap.String("assignment_id", assignmentID),
		zap.String("role", string(role)),
		zap.Bool("accepted", accepted))

	return &updated, nil
}

// CancelAssignment soft-deletes an assignment, keeping role confirmations
func CancelAssignment(ctx context.Context, database RespondStore, logger *zap.Logger, assignmentID string) (*db.Assignment, error) {
	return setCancellation(ctx, database, logger, assignmentID, true)
}

// RestoreAssignment reverses a cancellation without resetting confirmations
func RestoreAssignment(ctx context.Context, database RespondStore, logger *zap.Logger, assignmentID string) (*db.Assignment, error) {
	return setCancellation(ctx, database, logger, assignmentID, false)
}

func setCancellation(ctx context.Context, database RespondStore, logger *zap.Logger, assignmentID string, cancelled bool) (*db.Assignment, error) {
	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	assignment, err := findAssignmentByID(assignments, assignmentID)
	if err != nil {
		return nil, err
	}

	var updated db.Assignment
	if cancelled {
		updated = confirm.Cancel(*assignment)
	} else {
		updated = confirm.Restore(*assignment)
	}

	if err := database.UpsertAssignment(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	logger.Info("Assignment cancellation flag updated",
		zap.String("assignment_id", assignmentID),
		zap.Bool("cancelled", cancelled))

	return &updated, nil
}

// notificationMarker is the slice of the store needed to clear triggering
// notifications; both the assignment and event response stores satisfy it
type notificationMarker interface {
	GetNotifications(ctx context.Context) ([]db.UserNotification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// markTriggeringNotificationsRead marks every unread notification matching
// the predicate as read. Responding to the underlying entity is expected to
// clear the notification that asked for the response.
func markTriggeringNotificationsRead(ctx context.Context, database notificationMarker, logger *zap.Logger, matches func(db.UserNotification) bool) error {
	notifications, err := database.GetNotifications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch notifications: %w", err)
	}

	for _, n := range notifications {
		if n.Read || !matches(n) {
			continue
		}
		if err := database.MarkNotificationRead(ctx, n.ID); err != nil {
			return fmt.Errorf("failed to mark notification %s read: %w", n.ID, err)
		}
		logger.Debug("Triggering notification marked read", zap.String("notification_id", n.ID))
	}

	return nil
}
