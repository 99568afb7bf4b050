package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/db"
)

// GetUsers retrieves all club users
func (d *DB) GetUsers(ctx context.Context) ([]db.User, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, email, birthday, is_admin
		FROM club_user
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []db.User
	for rows.Next() {
		var u db.User
		var email *string
		var birthday *time.Time
		if err := rows.Scan(&u.ID, &u.FirstName, &u.LastName, &email, &birthday, &u.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		if email != nil {
			u.Email = *email
		}
		if birthday != nil {
			u.Birthday = birthday.Format("2006-01-02")
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// GetBoats retrieves the club fleet
func (d *DB) GetBoats(ctx context.Context) ([]db.Boat, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name
		FROM boat
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query boats: %w", err)
	}
	defer rows.Close()

	var boats []db.Boat
	for rows.Next() {
		var b db.Boat
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan boat: %w", err)
		}
		boats = append(boats, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating boats: %w", err)
	}

	return boats, nil
}

// GetActivities retrieves the activity catalog
func (d *DB) GetActivities(ctx context.Context) ([]db.Activity, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name
		FROM activity
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []db.Activity
	for rows.Next() {
		var a db.Activity
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activities: %w", err)
	}

	return activities, nil
}
