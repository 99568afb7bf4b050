package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/db"
)

// GetAvailability retrieves all availability records
func (d *DB) GetAvailability(ctx context.Context) ([]db.Availability, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, user_id, day, status
		FROM availability
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability: %w", err)
	}
	defer rows.Close()

	var entries []db.Availability
	for rows.Next() {
		var entry db.Availability
		var day time.Time
		if err := rows.Scan(&entry.ID, &entry.UserID, &day, &entry.Status); err != nil {
			return nil, fmt.Errorf("failed to scan availability: %w", err)
		}
		entry.Date = day.Format("2006-01-02")
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability: %w", err)
	}

	return entries, nil
}

// UpsertAvailability writes availability entries in a single transaction.
// Rows are keyed by (user_id, day); a repeated write replaces the stance.
func (d *DB) UpsertAvailability(ctx context.Context, entries []db.Availability) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, entry := range entries {
		_, err := tx.Exec(ctx, `
			INSERT INTO availability (id, user_id, day, status)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, day) DO UPDATE SET status = EXCLUDED.status
		`, entry.ID, entry.UserID, entry.Date, entry.Status)
		if err != nil {
			return fmt.Errorf("failed to upsert availability: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
