package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/schedule"
	"github.com/sailclub/crewboard/pkg/db"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestAssignCrew_CreatesAssignmentWhenCellEmpty(t *testing.T) {
	mock := &mockDB{
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}},
	}

	result, err := AssignCrew(context.Background(), mock, zap.NewNop(), AssignCrewParams{
		BoatID:       "b1",
		Date:         "2024-06-01",
		InstructorID: strPtr("u1"),
		ActivityID:   strPtr("act-1"),
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.NotEmpty(t, result.Assignment.ID)
	assert.Equal(t, "u1", result.Assignment.InstructorID)
	assert.Equal(t, db.RolePending, result.Assignment.InstructorStatus)
	assert.Equal(t, 1, result.Assignment.DurationDays)
	assert.Equal(t, db.AssignmentConfirmed, result.Assignment.Status)

	require.Len(t, mock.upsertedAssignments, 1)
	require.Len(t, mock.insertedNotifs, 1)
	assert.Equal(t, "u1", mock.insertedNotifs[0].UserID)
	assert.Equal(t, db.NotificationAssignment, mock.insertedNotifs[0].Type)
}

func TestAssignCrew_ReassignInstructorResetsOnlyThatRole(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{{
			ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 2,
			InstructorID: "u1", InstructorStatus: db.RoleConfirmed,
			HelperID: "u2", HelperStatus: db.RoleConfirmed,
			Status: db.AssignmentConfirmed,
		}},
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}},
	}

	result, err := AssignCrew(context.Background(), mock, zap.NewNop(), AssignCrewParams{
		BoatID:       "b1",
		Date:         "2024-06-02", // middle of the span still resolves a-1
		InstructorID: strPtr("u9"),
	})
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, "a-1", result.Assignment.ID)
	assert.Equal(t, "u9", result.Assignment.InstructorID)
	assert.Equal(t, db.RolePending, result.Assignment.InstructorStatus)
	assert.Equal(t, "u2", result.Assignment.HelperID)
	assert.Equal(t, db.RoleConfirmed, result.Assignment.HelperStatus)
}

func TestAssignCrew_SamePersonKeepsConfirmationAndSkipsNotification(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{{
			ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1,
			InstructorID: "u1", InstructorStatus: db.RoleConfirmed,
			Status: db.AssignmentConfirmed,
		}},
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}},
	}

	result, err := AssignCrew(context.Background(), mock, zap.NewNop(), AssignCrewParams{
		BoatID:       "b1",
		Date:         "2024-06-01",
		InstructorID: strPtr("u1"),
		Notes:        strPtr("bring spare rudder"),
	})
	require.NoError(t, err)

	assert.Equal(t, db.RoleConfirmed, result.Assignment.InstructorStatus)
	assert.Equal(t, "bring spare rudder", result.Assignment.Notes)
	assert.Empty(t, mock.insertedNotifs)
}

func TestAssignCrew_BusyCrewWarningDoesNotBlockWrite(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{{
			ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1,
			InstructorID: "u1", Status: db.AssignmentConfirmed,
		}},
		boats: []db.Boat{{ID: "b2", Name: "Pelican"}},
	}

	result, err := AssignCrew(context.Background(), mock, zap.NewNop(), AssignCrewParams{
		BoatID:       "b2",
		Date:         "2024-06-01",
		InstructorID: strPtr("u1"),
	})
	require.NoError(t, err)

	// Warned but written anyway
	require.Len(t, mock.upsertedAssignments, 1)
	codes := warningCodes(result.Warnings)
	assert.Contains(t, codes, schedule.WarnBusyCrew)
}

func TestAssignCrew_DurationChange(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{{
			ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1,
			Status: db.AssignmentConfirmed,
		}},
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}},
	}

	result, err := AssignCrew(context.Background(), mock, zap.NewNop(), AssignCrewParams{
		BoatID:       "b1",
		Date:         "2024-06-01",
		DurationDays: intPtr(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Assignment.DurationDays)
}

func TestAssignCrew_BadDate(t *testing.T) {
	mock := &mockDB{}

	_, err := AssignCrew(context.Background(), mock, zap.NewNop(), AssignCrewParams{
		BoatID: "b1",
		Date:   "June 1st",
	})
	assert.Error(t, err)
	assert.Empty(t, mock.upsertedAssignments)
}

func TestClearActivity_DeletesCoveringAssignment(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{{
			ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 2,
		}},
	}

	deleted, err := ClearActivity(context.Background(), mock, zap.NewNop(), "b1", "2024-06-02")
	require.NoError(t, err)

	assert.Equal(t, "a-1", deleted.ID)
	assert.Equal(t, []string{"a-1"}, mock.deletedAssignments)
}

func TestClearActivity_NoCoverage(t *testing.T) {
	mock := &mockDB{}

	_, err := ClearActivity(context.Background(), mock, zap.NewNop(), "b1", "2024-06-01")
	assert.Error(t, err)
}

func warningCodes(warnings []schedule.Warning) []schedule.WarningCode {
	codes := make([]schedule.WarningCode, 0, len(warnings))
	for _, w := range warnings {
		codes = append(codes, w.Code)
	}
	return codes
}
