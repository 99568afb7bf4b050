package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/core/eligibility"
	"github.com/sailclub/crewboard/pkg/core/schedule"
	"github.com/sailclub/crewboard/pkg/db"
)

// EligibleCrewStore defines the database operations needed to list crew
// candidates
type EligibleCrewStore interface {
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	GetAvailability(ctx context.Context) ([]db.Availability, error)
	GetUsers(ctx context.Context) ([]db.User, error)
}

// EligibleCrew lists the users a crew picker should offer for a boat on one
// day: the boat's current crew plus everyone available and uncommitted
func EligibleCrew(ctx context.Context, database EligibleCrewStore, logger *zap.Logger, boatID, date string) ([]db.User, error) {
	day, err := dates.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	availability, err := database.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	users, err := database.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	current, _ := schedule.EffectiveAssignment(assignments, boatID, day)
	eligible := eligibility.EligibleForRole(day, boatID, users, current, assignments, availability)

	logger.Debug("Eligible crew resolved",
		zap.String("boat_id", boatID),
		zap.String("date", date),
		zap.Int("candidates", len(users)),
		zap.Int("eligible", len(eligible)))

	return eligible, nil
}
