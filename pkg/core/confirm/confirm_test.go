package confirm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailclub/crewboard/pkg/db"
)

func baseAssignment() db.Assignment {
	return db.Assignment{
		ID:               "a-1",
		BoatID:           "b1",
		Date:             "2024-06-01",
		DurationDays:     1,
		InstructorID:     "u1",
		HelperID:         "u2",
		Status:           db.AssignmentConfirmed,
		InstructorStatus: db.RolePending,
		HelperStatus:     db.RolePending,
	}
}

func TestConfirmRole_Accept(t *testing.T) {
	updated, err := ConfirmRole(baseAssignment(), RoleInstructor, true)
	require.NoError(t, err)

	assert.Equal(t, db.RoleConfirmed, updated.InstructorStatus)
	assert.Equal(t, db.RolePending, updated.HelperStatus)
	assert.Equal(t, db.AssignmentConfirmed, updated.Status)
}

func TestConfirmRole_Decline(t *testing.T) {
	updated, err := ConfirmRole(baseAssignment(), RoleHelper, false)
	require.NoError(t, err)

	assert.Equal(t, db.RoleRejected, updated.HelperStatus)
	assert.Equal(t, db.RolePending, updated.InstructorStatus)
}

func TestConfirmRole_UnassignedRole(t *testing.T) {
	a := baseAssignment()
	a.HelperID = ""

	_, err := ConfirmRole(a, RoleHelper, true)
	assert.ErrorIs(t, err, ErrRoleUnassigned)
}

func TestConfirmRole_UnknownRole(t *testing.T) {
	_, err := ConfirmRole(baseAssignment(), Role("skipper"), true)
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestConfirmRole_DoesNotMutateInput(t *testing.T) {
	a := baseAssignment()
	_, err := ConfirmRole(a, RoleInstructor, true)
	require.NoError(t, err)

	assert.Equal(t, db.RolePending, a.InstructorStatus)
}

func TestReassign_ChangingInstructorResetsOnlyInstructor(t *testing.T) {
	a := baseAssignment()
	a.InstructorStatus = db.RoleConfirmed
	a.HelperStatus = db.RoleConfirmed

	updated, err := Reassign(a, RoleInstructor, "u9")
	require.NoError(t, err)

	assert.Equal(t, "u9", updated.InstructorID)
	assert.Equal(t, db.RolePending, updated.InstructorStatus)
	assert.Equal(t, db.RoleConfirmed, updated.HelperStatus)
}

func TestReassign_SamePersonKeepsStatus(t *testing.T) {
	a := baseAssignment()
	a.InstructorStatus = db.RoleConfirmed

	updated, err := Reassign(a, RoleInstructor, "u1")
	require.NoError(t, err)

	assert.Equal(t, db.RoleConfirmed, updated.InstructorStatus)
}

func TestReassign_ClearingSlotResetsStatus(t *testing.T) {
	a := baseAssignment()
	a.HelperStatus = db.RoleRejected

	updated, err := Reassign(a, RoleHelper, "")
	require.NoError(t, err)

	assert.Empty(t, updated.HelperID)
	assert.Equal(t, db.RolePending, updated.HelperStatus)
}

func TestCancelRestore_RoundTripPreservesConfirmations(t *testing.T) {
	a := baseAssignment()
	a.InstructorStatus = db.RoleConfirmed
	a.HelperStatus = db.RoleRejected

	cancelled := Cancel(a)
	assert.Equal(t, db.AssignmentCancelled, cancelled.Status)
	assert.Equal(t, db.RoleConfirmed, cancelled.InstructorStatus)
	assert.Equal(t, db.RoleRejected, cancelled.HelperStatus)

	restored := Restore(cancelled)
	assert.Equal(t, db.AssignmentConfirmed, restored.Status)
	assert.Equal(t, a.InstructorStatus, restored.InstructorStatus)
	assert.Equal(t, a.HelperStatus, restored.HelperStatus)
}

func TestRespondToEvent_UpdatesOnlyMatchingEntry(t *testing.T) {
	event := db.GeneralEvent{
		ID:   "e-1",
		Date: "2024-06-15",
		Responses: []db.EventResponse{
			{UserID: "u1", Status: db.RolePending},
			{UserID: "u2", Status: db.RolePending},
		},
	}

	updated, err := RespondToEvent(event, "u1", true)
	require.NoError(t, err)

	assert.Equal(t, db.RoleConfirmed, updated.Responses[0].Status)
	assert.Equal(t, db.RolePending, updated.Responses[1].Status)

	// Input event untouched
	assert.Equal(t, db.RolePending, event.Responses[0].Status)
}

func TestRespondToEvent_UninvitedUser(t *testing.T) {
	event := db.GeneralEvent{
		ID:        "e-1",
		Responses: []db.EventResponse{{UserID: "u1", Status: db.RolePending}},
	}

	_, err := RespondToEvent(event, "u99", true)
	assert.ErrorIs(t, err, ErrNotInvited)
}

func TestParseRole(t *testing.T) {
	role, err := ParseRole("instructor")
	require.NoError(t, err)
	assert.Equal(t, RoleInstructor, role)

	_, err = ParseRole("bosun")
	assert.ErrorIs(t, err, ErrUnknownRole)
}
