package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/core/schedule"
	"github.com/sailclub/crewboard/pkg/db"
)

// PublishedScheduleRow represents one (day, boat) line on the clubhouse board
type PublishedScheduleRow struct {
	Date           string // Format: "Mon Jan 02 2006"
	BoatName       string
	ActivityName   string
	InstructorName string
	HelperName     string
	Remarks        string // "cancelled" or pending-confirmation marks
}

// PublishedSchedule represents the complete crew board for a date range
type PublishedSchedule struct {
	From string
	To   string
	Rows []PublishedScheduleRow
}

// PublishScheduleStore defines the database operations needed for publishing
type PublishScheduleStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	GetUsers(ctx context.Context) ([]db.User, error)
	GetBoats(ctx context.Context) ([]db.Boat, error)
	GetActivities(ctx context.Context) ([]db.Activity, error)
}

// PublishSchedule builds the crew board rows for a date range: one row per
// boat per day with an effective assignment. The sheets client turns the
// result into a spreadsheet tab; this function only assembles the data.
func PublishSchedule(ctx context.Context, database PublishScheduleStore, logger *zap.Logger, from, to string) (*PublishedSchedule, error) {
	start, err := dates.Parse(from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from date: %w", err)
	}
	end, err := dates.Parse(to)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to date: %w", err)
	}
	if dates.DaysBetween(start, end) < 0 {
		return nil, fmt.Errorf("range is backwards: %s is after %s", from, to)
	}

	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	users, err := database.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	boats, err := database.GetBoats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boats: %w", err)
	}
	activities, err := database.GetActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}

	userLookup := usersByID(users)
	board := &PublishedSchedule{From: from, To: to}

	for offset := 0; offset <= dates.DaysBetween(start, end); offset++ {
		day := dates.AddDays(start, offset)

		for _, boat := range boats {
			effective, _ := schedule.EffectiveAssignment(assignments, boat.ID, day)
			if effective == nil {
				continue
			}

			row := PublishedScheduleRow{
				Date:           day.Format("Mon Jan 02 2006"),
				BoatName:       boat.Name,
				ActivityName:   activityName(activities, effective.ActivityID),
				InstructorName: displayName(userLookup, effective.InstructorID),
				HelperName:     displayName(userLookup, effective.HelperID),
				Remarks:        remarks(*effective),
			}
			board.Rows = append(board.Rows, row)
		}
	}

	logger.Info("Schedule assembled for publishing",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("rows", len(board.Rows)))

	return board, nil
}

// remarks summarises the confirmation state of a row for the printed board
func remarks(a db.Assignment) string {
	if a.Status == db.AssignmentCancelled {
		return "cancelled"
	}

	pending := ""
	if a.InstructorID != "" && a.InstructorStatus != db.RoleConfirmed {
		pending = "instructor unconfirmed"
	}
	if a.HelperID != "" && a.HelperStatus != db.RoleConfirmed {
		if pending != "" {
			return "crew unconfirmed"
		}
		pending = "helper unconfirmed"
	}
	return pending
}
