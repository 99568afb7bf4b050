package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/db"
)

func TestViewDay_ResolvesEveryBoat(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{
			{
				ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 2,
				InstructorID: "u1", HelperID: "u2", ActivityID: "act-1",
				Status: db.AssignmentConfirmed,
			},
		},
		users: []db.User{
			{ID: "u1", FirstName: "Anna", LastName: "Kemp"},
			{ID: "u2", FirstName: "Ben", LastName: "Osei"},
		},
		boats:      []db.Boat{{ID: "b1", Name: "Albatross"}, {ID: "b2", Name: "Pelican"}},
		activities: []db.Activity{{ID: "act-1", Name: "Beginner training"}},
	}

	result, err := ViewDay(context.Background(), mock, zap.NewNop(), "2024-06-02")
	require.NoError(t, err)

	require.Len(t, result.Rows, 2)

	occupied := result.Rows[0]
	require.NotNil(t, occupied.Assignment)
	assert.Equal(t, "a-1", occupied.Assignment.ID)
	assert.Equal(t, "Beginner training", occupied.ActivityName)
	assert.Equal(t, "Anna Kemp", occupied.InstructorName)
	assert.Equal(t, "Ben Osei", occupied.HelperName)
	assert.False(t, occupied.Cancelled)

	idle := result.Rows[1]
	assert.Equal(t, "Pelican", idle.Boat.Name)
	assert.Nil(t, idle.Assignment)

	assert.Equal(t, []string{"u1", "u2"}, result.BusyIDs)
	assert.Empty(t, result.Warnings)
}

func TestViewDay_CancelledAssignmentStillShown(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{
			{
				ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1,
				InstructorID: "u1", Status: db.AssignmentCancelled,
			},
		},
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}},
	}

	result, err := ViewDay(context.Background(), mock, zap.NewNop(), "2024-06-01")
	require.NoError(t, err)

	require.Len(t, result.Rows, 1)
	require.NotNil(t, result.Rows[0].Assignment)
	assert.True(t, result.Rows[0].Cancelled)

	// Cancelled crew is not committed
	assert.Empty(t, result.BusyIDs)
}

func TestViewDay_CollectsDataQualityWarnings(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{
			{ID: "a-bad", BoatID: "b1", Date: "garbage", DurationDays: 1},
		},
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}},
	}

	result, err := ViewDay(context.Background(), mock, zap.NewNop(), "2024-06-01")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Warnings)
}

func TestViewDay_BadDay(t *testing.T) {
	mock := &mockDB{}

	_, err := ViewDay(context.Background(), mock, zap.NewNop(), "tomorrow")
	assert.Error(t, err)
}
