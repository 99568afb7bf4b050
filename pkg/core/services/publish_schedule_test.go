package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/db"
)

func TestPublishSchedule_OneRowPerOccupiedBoatDay(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{
			{
				ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 2,
				InstructorID: "u1", HelperID: "u2", ActivityID: "act-1",
				Status:           db.AssignmentConfirmed,
				InstructorStatus: db.RoleConfirmed,
				HelperStatus:     db.RoleConfirmed,
			},
		},
		users: []db.User{
			{ID: "u1", FirstName: "Anna", LastName: "Kemp"},
			{ID: "u2", FirstName: "Ben", LastName: "Osei"},
		},
		boats:      []db.Boat{{ID: "b1", Name: "Albatross"}, {ID: "b2", Name: "Pelican"}},
		activities: []db.Activity{{ID: "act-1", Name: "Beginner training"}},
	}

	board, err := PublishSchedule(context.Background(), mock, zap.NewNop(), "2024-06-01", "2024-06-03")
	require.NoError(t, err)

	// Two covered days for b1, nothing for b2, nothing on the third day
	require.Len(t, board.Rows, 2)
	assert.Equal(t, "Sat Jun 01 2024", board.Rows[0].Date)
	assert.Equal(t, "Sun Jun 02 2024", board.Rows[1].Date)
	assert.Equal(t, "Albatross", board.Rows[0].BoatName)
	assert.Equal(t, "Beginner training", board.Rows[0].ActivityName)
	assert.Equal(t, "Anna Kemp", board.Rows[0].InstructorName)
	assert.Equal(t, "Ben Osei", board.Rows[0].HelperName)
	assert.Empty(t, board.Rows[0].Remarks)
}

func TestPublishSchedule_RemarksReflectConfirmationState(t *testing.T) {
	mock := &mockDB{
		assignments: []db.Assignment{
			{
				ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1,
				InstructorID: "u1", InstructorStatus: db.RolePending,
				Status: db.AssignmentConfirmed,
			},
			{
				ID: "a-2", BoatID: "b2", Date: "2024-06-01", DurationDays: 1,
				InstructorID: "u2", InstructorStatus: db.RoleConfirmed,
				Status: db.AssignmentCancelled,
			},
		},
		users: []db.User{{ID: "u1"}, {ID: "u2"}},
		boats: []db.Boat{{ID: "b1", Name: "Albatross"}, {ID: "b2", Name: "Pelican"}},
	}

	board, err := PublishSchedule(context.Background(), mock, zap.NewNop(), "2024-06-01", "2024-06-01")
	require.NoError(t, err)

	require.Len(t, board.Rows, 2)
	assert.Equal(t, "instructor unconfirmed", board.Rows[0].Remarks)
	assert.Equal(t, "cancelled", board.Rows[1].Remarks)
}

func TestPublishSchedule_BackwardsRange(t *testing.T) {
	mock := &mockDB{}

	_, err := PublishSchedule(context.Background(), mock, zap.NewNop(), "2024-06-03", "2024-06-01")
	assert.Error(t, err)
}
