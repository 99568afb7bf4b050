package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/db"
)

// GetAssignments retrieves all assignment records
func (d *DB) GetAssignments(ctx context.Context) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, day, boat_id, instructor_id, helper_id, activity_id,
		       duration_days, status, instructor_status, helper_status, notes
		FROM assignment
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var day time.Time
		var instructorID, helperID, activityID, notes *string
		if err := rows.Scan(&a.ID, &day, &a.BoatID, &instructorID, &helperID, &activityID,
			&a.DurationDays, &a.Status, &a.InstructorStatus, &a.HelperStatus, &notes); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.Date = day.Format("2006-01-02")
		if instructorID != nil {
			a.InstructorID = *instructorID
		}
		if helperID != nil {
			a.HelperID = *helperID
		}
		if activityID != nil {
			a.ActivityID = *activityID
		}
		if notes != nil {
			a.Notes = *notes
		}
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// UpsertAssignment inserts an assignment or replaces it by id
func (d *DB) UpsertAssignment(ctx context.Context, a *db.Assignment) error {
	var instructorID, helperID, activityID, notes *string
	if a.InstructorID != "" {
		instructorID = &a.InstructorID
	}
	if a.HelperID != "" {
		helperID = &a.HelperID
	}
	if a.ActivityID != "" {
		activityID = &a.ActivityID
	}
	if a.Notes != "" {
		notes = &a.Notes
	}

	_, err := d.pool.Exec(ctx, `
		INSERT INTO assignment (id, day, boat_id, instructor_id, helper_id, activity_id,
		                        duration_days, status, instructor_status, helper_status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			day = EXCLUDED.day,
			boat_id = EXCLUDED.boat_id,
			instructor_id = EXCLUDED.instructor_id,
			helper_id = EXCLUDED.helper_id,
			activity_id = EXCLUDED.activity_id,
			duration_days = EXCLUDED.duration_days,
			status = EXCLUDED.status,
			instructor_status = EXCLUDED.instructor_status,
			helper_status = EXCLUDED.helper_status,
			notes = EXCLUDED.notes
	`, a.ID, a.Date, a.BoatID, instructorID, helperID, activityID,
		a.DurationDays, a.Status, a.InstructorStatus, a.HelperStatus, notes)
	if err != nil {
		return fmt.Errorf("failed to upsert assignment: %w", err)
	}

	return nil
}

// DeleteAssignment removes an assignment record by id
func (d *DB) DeleteAssignment(ctx context.Context, id string) error {
	_, err := d.pool.Exec(ctx, `DELETE FROM assignment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}
