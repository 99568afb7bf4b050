package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/db"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := dates.Parse(s)
	require.NoError(t, err)
	return parsed
}

func TestEligibleForRole_AvailableAndFree(t *testing.T) {
	day := mustDate(t, "2024-07-10")
	candidates := []db.User{{ID: "u1"}, {ID: "u2"}, {ID: "u3"}}
	availability := []db.Availability{
		{UserID: "u1", Date: "2024-07-10", Status: db.Available},
		{UserID: "u2", Date: "2024-07-10", Status: db.Unavailable},
		// u3 has no record: unknown, not offered
	}

	eligible := EligibleForRole(day, "b1", candidates, nil, nil, availability)

	require.Len(t, eligible, 1)
	assert.Equal(t, "u1", eligible[0].ID)
}

func TestEligibleForRole_BusyOnOtherBoatExcluded(t *testing.T) {
	// u1 is instructor on b1 for 2024-07-10..2024-07-11; from b2's picker
	// u1 is excluded even though marked available
	day := mustDate(t, "2024-07-10")
	candidates := []db.User{{ID: "u1"}, {ID: "u2"}}
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-07-10", DurationDays: 2, InstructorID: "u1", Status: db.AssignmentConfirmed},
	}
	availability := []db.Availability{
		{UserID: "u1", Date: "2024-07-10", Status: db.Available},
		{UserID: "u2", Date: "2024-07-10", Status: db.Available},
	}

	eligible := EligibleForRole(day, "b2", candidates, nil, assignments, availability)

	require.Len(t, eligible, 1)
	assert.Equal(t, "u2", eligible[0].ID)
}

func TestEligibleForRole_CurrentCrewAlwaysListed(t *testing.T) {
	// u1 is unavailable and busy elsewhere, but already the helper on the
	// assignment being edited, so the picker still lists them
	day := mustDate(t, "2024-07-10")
	current := &db.Assignment{ID: "a-2", BoatID: "b2", Date: "2024-07-10", DurationDays: 1, HelperID: "u1"}
	candidates := []db.User{{ID: "u1"}}
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-07-10", DurationDays: 1, InstructorID: "u1", Status: db.AssignmentConfirmed},
	}
	availability := []db.Availability{
		{UserID: "u1", Date: "2024-07-10", Status: db.Unavailable},
	}

	eligible := EligibleForRole(day, "b2", candidates, current, assignments, availability)

	require.Len(t, eligible, 1)
	assert.Equal(t, "u1", eligible[0].ID)
}

func TestEligibleForRole_PreservesCandidateOrder(t *testing.T) {
	day := mustDate(t, "2024-07-10")
	candidates := []db.User{{ID: "u3"}, {ID: "u1"}, {ID: "u2"}}
	availability := []db.Availability{
		{UserID: "u1", Date: "2024-07-10", Status: db.Available},
		{UserID: "u2", Date: "2024-07-10", Status: db.Available},
		{UserID: "u3", Date: "2024-07-10", Status: db.Available},
	}

	eligible := EligibleForRole(day, "b1", candidates, nil, nil, availability)

	require.Len(t, eligible, 3)
	assert.Equal(t, "u3", eligible[0].ID)
	assert.Equal(t, "u1", eligible[1].ID)
	assert.Equal(t, "u2", eligible[2].ID)
}
