// Package eligibility implements the advisory rule set deciding which users
// a crew picker should offer for a boat on a given day. It shapes what the
// operator sees; it never vetoes a write.
package eligibility

import (
	"time"

	"github.com/sailclub/crewboard/pkg/core/schedule"
	"github.com/sailclub/crewboard/pkg/db"
)

// EligibleForRole filters candidates down to those that may be offered for a
// crew slot on boatID on the given day.
//
// A candidate stays in the list when either:
//   - they already occupy a role on the current assignment for this boat/day,
//     so the picker keeps listing the present crew, or
//   - they are marked AVAILABLE on the day and are not committed to another
//     boat on it.
//
// Candidate order is preserved so the picker is stable.
func EligibleForRole(
	day time.Time,
	boatID string,
	candidates []db.User,
	current *db.Assignment,
	assignments []db.Assignment,
	availability []db.Availability,
) []db.User {
	busyIDs, _ := schedule.BusyUserIDs(assignments, day, boatID)
	busy := make(map[string]bool, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = true
	}

	var eligible []db.User
	for _, candidate := range candidates {
		if onCurrentCrew(current, candidate.ID) {
			eligible = append(eligible, candidate)
			continue
		}

		if schedule.StatusOn(availability, candidate.ID, day) == db.Available && !busy[candidate.ID] {
			eligible = append(eligible, candidate)
		}
	}

	return eligible
}

// onCurrentCrew reports whether the user occupies either role on the
// assignment being edited
func onCurrentCrew(current *db.Assignment, userID string) bool {
	if current == nil || userID == "" {
		return false
	}
	return current.InstructorID == userID || current.HelperID == userID
}
