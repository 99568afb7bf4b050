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
	"github.com/sailclub/crewboard/pkg/core/schedule"
	"github.com/sailclub/crewboard/pkg/db"
)

// AssignCrewParams describes an edit to a boat/day cell. Pointer fields are
// left unchanged when nil, so a caller can set only the helper without
// touching the instructor.
type AssignCrewParams struct {
	BoatID       string
	Date         string
	InstructorID *string
	HelperID     *string
	ActivityID   *string
	DurationDays *int
	Notes        *string
}

// AssignCrewResult contains the written assignment, the advisory warnings
// raised at the write boundary and the notifications fanned out with it
type AssignCrewResult struct {
	Assignment    db.Assignment
	Created       bool
	Warnings      []schedule.Warning
	Notifications []db.UserNotification
}

// AssignCrewStore defines the database operations needed for editing crew
type AssignCrewStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	UpsertAssignment(ctx context.Context, assignment *db.Assignment) error
	GetAvailability(ctx context.Context) ([]db.Availability, error)
	GetBoats(ctx context.Context) ([]db.Boat, error)
	InsertNotifications(ctx context.Context, notifications []db.UserNotification) error
}

// AssignCrew creates or updates the assignment covering a boat/day cell.
//
// When no assignment covers the day a new one is created. Changing the
// person in a role resets that role's confirmation to PENDING and notifies
// the new occupant. Warnings from the write-boundary validation (overlap,
// busy crew, unavailable crew) are advisory: they are logged and returned
// but the write always proceeds.
func AssignCrew(ctx context.Context, database AssignCrewStore, logger *zap.Logger, params AssignCrewParams) (*AssignCrewResult, error) {
	day, err := dates.Parse(params.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	logger.Debug("Editing crew", zap.String("boat_id", params.BoatID), zap.String("date", params.Date))

	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	effective, warnings := schedule.EffectiveAssignment(assignments, params.BoatID, day)

	var assignment db.Assignment
	created := effective == nil
	if created {
		assignment = db.Assignment{
			ID:               uuid.New().String(),
			Date:             params.Date,
			BoatID:           params.BoatID,
			DurationDays:     1,
			Status:           db.AssignmentConfirmed,
			InstructorStatus: db.RolePending,
			HelperStatus:     db.RolePending,
		}
		logger.Info("Creating assignment", zap.String("id", assignment.ID))
	} else {
		assignment = *effective
		logger.Info("Updating assignment", zap.String("id", assignment.ID))
	}

	var notifications []db.UserNotification
	now := time.Now()

	boats, err := database.GetBoats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boats: %w", err)
	}
	name := boatName(boats, params.BoatID)

	if params.InstructorID != nil && assignment.InstructorID != *params.InstructorID {
		assignment, _ = confirm.Reassign(assignment, confirm.RoleInstructor, *params.InstructorID)
		notifications = append(notifications, notify.OnRoleAssigned(assignment, confirm.RoleInstructor, *params.InstructorID, name, now)...)
	}
	if params.HelperID != nil && assignment.HelperID != *params.HelperID {
		assignment, _ = confirm.Reassign(assignment, confirm.RoleHelper, *params.HelperID)
		notifications = append(notifications, notify.OnRoleAssigned(assignment, confirm.RoleHelper, *params.HelperID, name, now)...)
	}
	if params.ActivityID != nil {
		assignment.ActivityID = *params.ActivityID
	}
	if params.DurationDays != nil {
		assignment.DurationDays = *params.DurationDays
	}
	if params.Notes != nil {
		assignment.Notes = *params.Notes
	}

	availability, err := database.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	warnings = append(warnings, schedule.ValidateWrite(assignments, assignment, availability)...)
	for _, w := range warnings {
		logger.Warn("Advisory warning on crew edit",
			zap.String("code", string(w.Code)),
			zap.String("detail", w.Message))
	}

	if err := database.UpsertAssignment(ctx, &assignment); err != nil {
		return nil, fmt.Errorf("failed to save assignment: %w", err)
	}

	if len(notifications) > 0 {
		if err := database.InsertNotifications(ctx, notifications); err != nil {
			return nil, fmt.Errorf("failed to save notifications: %w", err)
		}
	}

	logger.Info("Crew edit saved",
		zap.String("assignment_id", assignment.ID),
		zap.Bool("created", created),
		zap.Int("warnings", len(warnings)),
		zap.Int("notifications", len(notifications)))

	return &AssignCrewResult{
		Assignment:    assignment,
		Created:       created,
		Warnings:      warnings,
		Notifications: notifications,
	}, nil
}

// ClearActivityStore defines the database operations needed to clear a cell
type ClearActivityStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	DeleteAssignment(ctx context.Context, id string) error
}

// ClearActivity hard-deletes the assignment covering a boat/day cell. This
// is the one path that removes a record instead of cancelling it.
func ClearActivity(ctx context.Context, database ClearActivityStore, logger *zap.Logger, boatID, date string) (*db.Assignment, error) {
	day, err := dates.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	effective, _ := schedule.EffectiveAssignment(assignments, boatID, day)
	if effective == nil {
		return nil, fmt.Errorf("no assignment covers boat %s on %s", boatID, date)
	}

	if err := database.DeleteAssignment(ctx, effective.ID); err != nil {
		return nil, fmt.Errorf("failed to delete assignment: %w", err)
	}

	logger.Info("Assignment deleted", zap.String("id", effective.ID), zap.String("boat_id", boatID))
	return effective, nil
}
