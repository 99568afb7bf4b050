package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/db"
)

// GetMaintenanceRecords retrieves all maintenance records
func (d *DB) GetMaintenanceRecords(ctx context.Context) ([]db.MaintenanceRecord, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, boat_id, description, day, expiration_day, status,
		       recurrence_interval, recurrence_unit, rrule
		FROM maintenance_record
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query maintenance records: %w", err)
	}
	defer rows.Close()

	var records []db.MaintenanceRecord
	for rows.Next() {
		var rec db.MaintenanceRecord
		var day time.Time
		var expiration *time.Time
		var unit, rule *string
		if err := rows.Scan(&rec.ID, &rec.BoatID, &rec.Description, &day, &expiration,
			&rec.Status, &rec.RecurrenceInterval, &unit, &rule); err != nil {
			return nil, fmt.Errorf("failed to scan maintenance record: %w", err)
		}
		rec.Date = day.Format("2006-01-02")
		if expiration != nil {
			rec.ExpirationDate = expiration.Format("2006-01-02")
		}
		if unit != nil {
			rec.RecurrenceUnit = db.RecurrenceUnit(*unit)
		}
		if rule != nil {
			rec.RRule = *rule
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating maintenance records: %w", err)
	}

	return records, nil
}

// UpsertMaintenanceRecord inserts a maintenance record or replaces it by id
func (d *DB) UpsertMaintenanceRecord(ctx context.Context, rec *db.MaintenanceRecord) error {
	var expiration, unit, rule *string
	if rec.ExpirationDate != "" {
		expiration = &rec.ExpirationDate
	}
	if rec.RecurrenceUnit != "" {
		u := string(rec.RecurrenceUnit)
		unit = &u
	}
	if rec.RRule != "" {
		rule = &rec.RRule
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO maintenance_record (id, boat_id, description, day, expiration_day, status,
		                                recurrence_interval, recurrence_unit, rrule)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			boat_id = EXCLUDED.boat_id,
			description = EXCLUDED.description,
			day = EXCLUDED.day,
			expiration_day = EXCLUDED.expiration_day,
			status = EXCLUDED.status,
			recurrence_interval = EXCLUDED.recurrence_interval,
			recurrence_unit = EXCLUDED.recurrence_unit,
			rrule = EXCLUDED.rrule
	`, rec.ID, rec.BoatID, rec.Description, rec.Date, expiration, rec.Status,
		rec.RecurrenceInterval, unit, rule)
	if err != nil {
		return fmt.Errorf("failed to upsert maintenance record: %w", err)
	}

	return nil
}
