package schedule

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

func TestEffectiveAssignment_SpanCoverage(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 2, Status: db.AssignmentConfirmed},
	}

	// Covered days
	for _, s := range []string{"2024-06-01", "2024-06-02"} {
		effective, warnings := EffectiveAssignment(assignments, "b1", mustDate(t, s))
		require.NotNil(t, effective, "expected coverage on %s", s)
		assert.Equal(t, "a-1", effective.ID)
		assert.Empty(t, warnings)
	}

	// Uncovered days: before the span and after it
	for _, s := range []string{"2024-05-31", "2024-06-03"} {
		effective, _ := EffectiveAssignment(assignments, "b1", mustDate(t, s))
		assert.Nil(t, effective, "expected no coverage on %s", s)
	}
}

func TestEffectiveAssignment_WrongBoat(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 2},
	}

	effective, _ := EffectiveAssignment(assignments, "b2", mustDate(t, "2024-06-01"))
	assert.Nil(t, effective)
}

func TestEffectiveAssignment_BadDateExcluded(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-bad", BoatID: "b1", Date: "01/06/2024", DurationDays: 2},
		{ID: "a-ok", BoatID: "b1", Date: "2024-06-01", DurationDays: 1},
	}

	effective, warnings := EffectiveAssignment(assignments, "b1", mustDate(t, "2024-06-01"))
	require.NotNil(t, effective)
	assert.Equal(t, "a-ok", effective.ID)

	require.Len(t, warnings, 1)
	assert.Equal(t, WarnBadDate, warnings[0].Code)
	assert.Equal(t, "a-bad", warnings[0].AssignmentID)
}

func TestEffectiveAssignment_BadDurationExcluded(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-zero", BoatID: "b1", Date: "2024-06-01", DurationDays: 0},
	}

	effective, warnings := EffectiveAssignment(assignments, "b1", mustDate(t, "2024-06-01"))
	assert.Nil(t, effective)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnBadDuration, warnings[0].Code)
}

func TestEffectiveAssignment_AmbiguousOverlapDeterministic(t *testing.T) {
	// Two assignments cover b1 on 2024-06-02: earliest start date wins
	assignments := []db.Assignment{
		{ID: "a-2", BoatID: "b1", Date: "2024-06-02", DurationDays: 1},
		{ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 3},
	}

	effective, warnings := EffectiveAssignment(assignments, "b1", mustDate(t, "2024-06-02"))
	require.NotNil(t, effective)
	assert.Equal(t, "a-1", effective.ID)

	require.Len(t, warnings, 1)
	assert.Equal(t, WarnAmbiguousOverlap, warnings[0].Code)
}

func TestEffectiveAssignment_AmbiguousOverlapTieBrokenByID(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-9", BoatID: "b1", Date: "2024-06-01", DurationDays: 1},
		{ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1},
	}

	effective, warnings := EffectiveAssignment(assignments, "b1", mustDate(t, "2024-06-01"))
	require.NotNil(t, effective)
	assert.Equal(t, "a-1", effective.ID)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnAmbiguousOverlap, warnings[0].Code)
}

func TestEffectiveAssignment_CancelledStillMatches(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-06-01", DurationDays: 1, Status: db.AssignmentCancelled},
	}

	effective, _ := EffectiveAssignment(assignments, "b1", mustDate(t, "2024-06-01"))
	require.NotNil(t, effective)
	assert.Equal(t, db.AssignmentCancelled, effective.Status)
}

func TestBusyUserIDs_ExcludesOwnBoat(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-07-10", DurationDays: 2, InstructorID: "u1", HelperID: "u2", Status: db.AssignmentConfirmed},
		{ID: "a-2", BoatID: "b2", Date: "2024-07-10", DurationDays: 1, InstructorID: "u3", Status: db.AssignmentConfirmed},
	}

	busy, warnings := BusyUserIDs(assignments, mustDate(t, "2024-07-10"), "b2")
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"u1", "u2"}, busy)

	// u1's only commitment is b1, so asking from b1's perspective omits u1
	busy, _ = BusyUserIDs(assignments, mustDate(t, "2024-07-10"), "b1")
	assert.Equal(t, []string{"u3"}, busy)
}

func TestBusyUserIDs_MultiDaySpanCommitsMiddleDays(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-07-10", DurationDays: 2, InstructorID: "u1", Status: db.AssignmentConfirmed},
	}

	busy, _ := BusyUserIDs(assignments, mustDate(t, "2024-07-11"), "")
	assert.Equal(t, []string{"u1"}, busy)

	busy, _ = BusyUserIDs(assignments, mustDate(t, "2024-07-12"), "")
	assert.Empty(t, busy)
}

func TestBusyUserIDs_CancelledAssignmentDoesNotCommitCrew(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b1", Date: "2024-07-10", DurationDays: 1, InstructorID: "u1", Status: db.AssignmentCancelled},
	}

	busy, _ := BusyUserIDs(assignments, mustDate(t, "2024-07-10"), "")
	assert.Empty(t, busy)
}

func TestBusyUserIDs_SortedOutput(t *testing.T) {
	assignments := []db.Assignment{
		{ID: "a-1", BoatID: "b3", Date: "2024-07-10", DurationDays: 1, InstructorID: "zz", Status: db.AssignmentConfirmed},
		{ID: "a-2", BoatID: "b1", Date: "2024-07-10", DurationDays: 1, InstructorID: "aa", Status: db.AssignmentConfirmed},
		{ID: "a-3", BoatID: "b2", Date: "2024-07-10", DurationDays: 1, HelperID: "mm", Status: db.AssignmentConfirmed},
	}

	busy, _ := BusyUserIDs(assignments, mustDate(t, "2024-07-10"), "")
	assert.Equal(t, []string{"aa", "mm", "zz"}, busy)
}
