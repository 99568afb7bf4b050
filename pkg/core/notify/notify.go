// Package notify derives the notification records to create when a business
// operation fires. Builders are pure: they take the triggering entity plus
// the relevant user list and return new records, never touching existing
// ones. Services dispatch the returned batch to the store alongside the
// entity write itself.
package notify

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sailclub/crewboard/pkg/core/confirm"
	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/db"
)

// OnRoleAssigned builds the notification for a user newly placed into a crew
// role. The recipient is asked to confirm or decline the assignment.
func OnRoleAssigned(a db.Assignment, role confirm.Role, userID string, boatName string, now time.Time) []db.UserNotification {
	if userID == "" {
		return nil
	}

	return []db.UserNotification{{
		ID:           uuid.New().String(),
		UserID:       userID,
		Type:         db.NotificationAssignment,
		Message:      fmt.Sprintf("You have been assigned as %s on %s for %s. Please confirm.", role, boatName, a.Date),
		AssignmentID: a.ID,
		Role:         string(role),
		CreatedAt:    dates.Format(now),
	}}
}

// OnEventCreated builds one notification per invited user of a new general
// event, in response-list order
func OnEventCreated(e db.GeneralEvent, now time.Time) []db.UserNotification {
	notifications := make([]db.UserNotification, 0, len(e.Responses))
	for _, response := range e.Responses {
		notifications = append(notifications, db.UserNotification{
			ID:        uuid.New().String(),
			UserID:    response.UserID,
			Type:      db.NotificationEvent,
			Message:   fmt.Sprintf("New event on %s: %s. Are you coming?", e.Date, e.Title),
			EventID:   e.ID,
			CreatedAt: dates.Format(now),
		})
	}
	return notifications
}

// OnBirthday builds a broadcast INFO notification to every user for each
// user whose birthday falls on today (matched by month and day).
//
// Duplicate suppression: a notification is skipped when one with the exact
// same message already exists among today's records. Matching on the message
// string alone would also swallow next year's occurrence, so the guard is
// scoped to notifications created on the same calendar day.
func OnBirthday(today time.Time, users []db.User, existing []db.UserNotification) []db.UserNotification {
	todayKey := dates.Format(today)

	sentToday := make(map[string]bool)
	for _, n := range existing {
		if n.CreatedAt == todayKey {
			sentToday[n.Message] = true
		}
	}

	var notifications []db.UserNotification
	for _, celebrant := range users {
		if celebrant.Birthday == "" {
			continue
		}

		birthday, err := dates.Parse(celebrant.Birthday)
		if err != nil {
			continue
		}
		if birthday.Month() != today.Month() || birthday.Day() != today.Day() {
			continue
		}

		message := fmt.Sprintf("Today is %s's birthday!", celebrant.FullName())
		if sentToday[message] {
			continue
		}
		sentToday[message] = true

		for _, recipient := range users {
			if recipient.ID == celebrant.ID {
				continue
			}
			notifications = append(notifications, db.UserNotification{
				ID:        uuid.New().String(),
				UserID:    recipient.ID,
				Type:      db.NotificationInfo,
				Message:   message,
				CreatedAt: todayKey,
			})
		}
	}

	return notifications
}

// OnMaintenanceExpiring builds one notification per admin for a maintenance
// record that is about to expire
func OnMaintenanceExpiring(rec db.MaintenanceRecord, boatName string, admins []db.User, now time.Time) []db.UserNotification {
	message := fmt.Sprintf("Maintenance %q on %s expires on %s.", rec.Description, boatName, rec.ExpirationDate)

	notifications := make([]db.UserNotification, 0, len(admins))
	for _, admin := range admins {
		notifications = append(notifications, db.UserNotification{
			ID:        uuid.New().String(),
			UserID:    admin.ID,
			Type:      db.NotificationMaintenance,
			Message:   message,
			CreatedAt: dates.Format(now),
		})
	}
	return notifications
}

// OnMissingAvailability builds one reminder per user who has not entered
// availability for the given days
func OnMissingAvailability(userIDs []string, from, to time.Time, now time.Time) []db.UserNotification {
	message := fmt.Sprintf("Please enter your availability for %s to %s.", dates.Format(from), dates.Format(to))

	notifications := make([]db.UserNotification, 0, len(userIDs))
	for _, userID := range userIDs {
		notifications = append(notifications, db.UserNotification{
			ID:        uuid.New().String(),
			UserID:    userID,
			Type:      db.NotificationInfo,
			Message:   message,
			CreatedAt: dates.Format(now),
		})
	}
	return notifications
}

// MarkRead flips the read flag. The transition is one-way; marking an
// already-read notification is a no-op.
func MarkRead(n db.UserNotification) db.UserNotification {
	n.Read = true
	return n
}
