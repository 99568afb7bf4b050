package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/core/schedule"
	"github.com/sailclub/crewboard/pkg/db"
)

// BoatDayRow represents one boat's situation on the requested day
type BoatDayRow struct {
	Boat           db.Boat
	Assignment     *db.Assignment // nil when the boat is idle
	ActivityName   string
	InstructorName string
	HelperName     string
	Cancelled      bool
}

// ViewDayResult contains everything the day screen shows
type ViewDayResult struct {
	Day      string
	Rows     []BoatDayRow
	BusyIDs  []string
	Warnings []schedule.Warning
}

// ViewDayStore defines the database operations needed for the day view
type ViewDayStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	GetUsers(ctx context.Context) ([]db.User, error)
	GetBoats(ctx context.Context) ([]db.Boat, error)
	GetActivities(ctx context.Context) ([]db.Activity, error)
}

// ViewDay resolves the effective assignment of every boat on one calendar
// day, along with the set of users already committed somewhere on that day.
// Data-quality warnings from the index are collected, logged and returned,
// never fatal.
func ViewDay(ctx context.Context, database ViewDayStore, logger *zap.Logger, day string) (*ViewDayResult, error) {
	parsed, err := dates.Parse(day)
	if err != nil {
		return nil, fmt.Errorf("failed to parse day: %w", err)
	}

	logger.Debug("Resolving day view", zap.String("day", day))

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
	result := &ViewDayResult{Day: day}

	for _, boat := range boats {
		effective, warnings := schedule.EffectiveAssignment(assignments, boat.ID, parsed)
		result.Warnings = append(result.Warnings, warnings...)

		row := BoatDayRow{Boat: boat, Assignment: effective}
		if effective != nil {
			row.ActivityName = activityName(activities, effective.ActivityID)
			row.InstructorName = displayName(userLookup, effective.InstructorID)
			row.HelperName = displayName(userLookup, effective.HelperID)
			row.Cancelled = effective.Status == db.AssignmentCancelled
		}
		result.Rows = append(result.Rows, row)
	}

	busy, warnings := schedule.BusyUserIDs(assignments, parsed, "")
	result.BusyIDs = busy
	result.Warnings = append(result.Warnings, warnings...)

	for _, w := range result.Warnings {
		logger.Warn("Data-quality warning", zap.String("code", string(w.Code)), zap.String("detail", w.Message))
	}

	logger.Info("Day view resolved",
		zap.String("day", day),
		zap.Int("boats", len(result.Rows)),
		zap.Int("busy_users", len(result.BusyIDs)),
		zap.Int("warnings", len(result.Warnings)))

	return result, nil
}
