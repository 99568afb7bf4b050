package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/db"
)

// GetNotifications retrieves all user notification records
func (d *DB) GetNotifications(ctx context.Context) ([]db.UserNotification, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, user_id, type, message, read, assignment_id, event_id, role, created_day
		FROM user_notification
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	var notifications []db.UserNotification
	for rows.Next() {
		var n db.UserNotification
		var createdDay time.Time
		var assignmentID, eventID, role *string
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.Read,
			&assignmentID, &eventID, &role, &createdDay); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		n.CreatedAt = createdDay.Format("2006-01-02")
		if assignmentID != nil {
			n.AssignmentID = *assignmentID
		}
		if eventID != nil {
			n.EventID = *eventID
		}
		if role != nil {
			n.Role = *role
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notifications: %w", err)
	}

	return notifications, nil
}

// InsertNotifications inserts notification records in a batch
func (d *DB) InsertNotifications(ctx context.Context, notifications []db.UserNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, n := range notifications {
		var assignmentID, eventID, role *string
		if n.AssignmentID != "" {
			assignmentID = &n.AssignmentID
		}
		if n.EventID != "" {
			eventID = &n.EventID
		}
		if n.Role != "" {
			role = &n.Role
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO user_notification (id, user_id, type, message, read, assignment_id, event_id, role, created_day)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		`, n.ID, n.UserID, n.Type, n.Message, n.Read, assignmentID, eventID, role, n.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// MarkNotificationRead flips a notification's read flag
func (d *DB) MarkNotificationRead(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE user_notification SET read = TRUE WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("notification not found: %s", id)
	}

	return nil
}
