package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/db"
)

// GetEvents retrieves all general events with their response lists
func (d *DB) GetEvents(ctx context.Context) ([]db.GeneralEvent, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, day, title, description
		FROM general_event
		ORDER BY day
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	var events []db.GeneralEvent
	index := make(map[string]int)
	for rows.Next() {
		var e db.GeneralEvent
		var day time.Time
		var description *string
		if err := rows.Scan(&e.ID, &day, &e.Title, &description); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Date = day.Format("2006-01-02")
		if description != nil {
			e.Description = *description
		}
		index[e.ID] = len(events)
		events = append(events, e)
	}
	rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	respRows, err := d.pool.Query(ctx, `
		SELECT event_id, user_id, status
		FROM event_response
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query event responses: %w", err)
	}
	defer respRows.Close()

	for respRows.Next() {
		var eventID string
		var response db.EventResponse
		if err := respRows.Scan(&eventID, &response.UserID, &response.Status); err != nil {
			return nil, fmt.Errorf("failed to scan event response: %w", err)
		}
		if i, ok := index[eventID]; ok {
			events[i].Responses = append(events[i].Responses, response)
		}
	}

	if err := respRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event responses: %w", err)
	}

	return events, nil
}

// InsertEvent inserts a general event and its seeded response list in one
// transaction
func (d *DB) InsertEvent(ctx context.Context, event *db.GeneralEvent) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var description *string
	if event.Description != "" {
		description = &event.Description
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO general_event (id, day, title, description)
		VALUES ($1, $2, $3, $4)
	`, event.ID, event.Date, event.Title, description)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	for position, response := range event.Responses {
		_, err := tx.Exec(ctx, `
			INSERT INTO event_response (event_id, user_id, status, position)
			VALUES ($1, $2, $3, $4)
		`, event.ID, response.UserID, response.Status, position)
		if err != nil {
			return fmt.Errorf("failed to insert event response: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// UpdateEventResponse records one user's RSVP on an event
func (d *DB) UpdateEventResponse(ctx context.Context, eventID string, response db.EventResponse) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE event_response SET status = $3
		WHERE event_id = $1 AND user_id = $2
	`, eventID, response.UserID, response.Status)
	if err != nil {
		return fmt.Errorf("failed to update event response: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no response row for event %s and user %s", eventID, response.UserID)
	}

	return nil
}
