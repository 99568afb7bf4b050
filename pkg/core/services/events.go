package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/confirm"
	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/core/notify"
	"github.com/sailclub/crewboard/pkg/db"
)

// CreateEventResult contains the stored event and its fan-out
type CreateEventResult struct {
	Event         db.GeneralEvent
	Notifications []db.UserNotification
}

// CreateEventStore defines the database operations needed to create an event
type CreateEventStore interface {
	GetUsers(ctx context.Context) ([]db.User, error)
	InsertEvent(ctx context.Context, event *db.GeneralEvent) error
	InsertNotifications(ctx context.Context, notifications []db.UserNotification) error
}

// CreateEvent creates a general event with a pending response entry for
// every user that exists right now. Users joining the club later are not
// added to existing events. Each invited user gets an EVENT notification in
// the same batch.
func CreateEvent(ctx context.Context, database CreateEventStore, logger *zap.Logger, date, title, description string) (*CreateEventResult, error) {
	if _, err := dates.Parse(date); err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	users, err := database.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	event := db.GeneralEvent{
		ID:          uuid.New().String(),
		Date:        date,
		Title:       title,
		Description: description,
		Responses:   make([]db.EventResponse, 0, len(users)),
	}
	for _, u := range users {
		event.Responses = append(event.Responses, db.EventResponse{UserID: u.ID, Status: db.RolePending})
	}

	if err := database.InsertEvent(ctx, &event); err != nil {
		return nil, fmt.Errorf("failed to save event: %w", err)
	}

	notifications := notify.OnEventCreated(event, time.Now())
	if len(notifications) > 0 {
		if err := database.InsertNotifications(ctx, notifications); err != nil {
			return nil, fmt.Errorf("failed to save notifications: %w", err)
		}
	}

	logger.Info("Event created",
		zap.String("event_id", event.ID),
		zap.String("date", date),
		zap.Int("invited", len(event.Responses)))

	return &CreateEventResult{Event: event, Notifications: notifications}, nil
}

// RespondEventStore defines the database operations needed for an RSVP
type RespondEventStore interface {
	GetEvents(ctx context.Context) ([]db.GeneralEvent, error)
	UpdateEventResponse(ctx context.Context, eventID string, response db.EventResponse) error
	GetNotifications(ctx context.Context) ([]db.UserNotification, error)
	MarkNotificationRead(ctx context.Context, id string) error
}

// RespondToEvent records a user's RSVP and marks the notification that
// invited them as read. Only users present in the event's response list may
// respond.
func RespondToEvent(ctx context.Context, database RespondEventStore, logger *zap.Logger, eventID, userID string, accepted bool) (*db.GeneralEvent, error) {
	events, err := database.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events: %w", err)
	}

	var event *db.GeneralEvent
	for i := range events {
		if events[i].ID == eventID {
			event = &events[i]
			break
		}
	}
	if event == nil {
		return nil, fmt.Errorf("event not found: %s", eventID)
	}

	updated, err := confirm.RespondToEvent(*event, userID, accepted)
	if err != nil {
		return nil, err
	}

	status := db.RoleConfirmed
	if !accepted {
		status = db.RoleRejected
	}
	if err := database.UpdateEventResponse(ctx, eventID, db.EventResponse{UserID: userID, Status: status}); err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	if err := markTriggeringNotificationsRead(ctx, database, logger, func(n db.UserNotification) bool {
		return n.EventID == eventID && n.UserID == userID
	}); err != nil {
		return nil, err
	}

	logger.Info("Event response recorded",
		zap.String("event_id", eventID),
		zap.String("user_id", userID),
		zap.Bool("accepted", accepted))

	return &updated, nil
}
