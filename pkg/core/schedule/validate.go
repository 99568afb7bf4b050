package schedule

import (
	"fmt"
	"time"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/db"
)

// ValidateWrite checks a proposed assignment against the current snapshot
// before it is written: overlapping assignments on the same boat, crew
// already committed elsewhere, and crew who declared themselves unavailable.
//
// The findings are advisory. The write always proceeds; callers surface the
// warnings to the operator and log them.
func ValidateWrite(assignments []db.Assignment, proposed db.Assignment, availability []db.Availability) []Warning {
	var warnings []Warning

	start, warn := spanStart(proposed)
	if warn != nil {
		return []Warning{*warn}
	}

	for offset := 0; offset < proposed.DurationDays; offset++ {
		day := dates.AddDays(start, offset)

		warnings = append(warnings, overlapWarnings(assignments, proposed, day)...)
		warnings = append(warnings, crewWarnings(assignments, proposed, availability, day)...)
	}

	return warnings
}

// overlapWarnings reports other assignments covering the same boat and day
func overlapWarnings(assignments []db.Assignment, proposed db.Assignment, day time.Time) []Warning {
	var warnings []Warning

	for _, a := range assignments {
		if a.BoatID != proposed.BoatID || a.ID == proposed.ID {
			continue
		}

		start, bad := spanStart(a)
		if bad != nil {
			continue
		}

		offset := dates.DaysBetween(start, day)
		if offset >= 0 && offset < a.DurationDays {
			warnings = append(warnings, Warning{
				Code:         WarnAmbiguousOverlap,
				AssignmentID: proposed.ID,
				Message: fmt.Sprintf("boat %s already has assignment %s covering %s",
					proposed.BoatID, a.ID, dates.Format(day)),
			})
		}
	}

	return warnings
}

// crewWarnings reports proposed crew who are busy on another boat or marked
// unavailable on the given day
func crewWarnings(assignments []db.Assignment, proposed db.Assignment, availability []db.Availability, day time.Time) []Warning {
	var warnings []Warning

	busy, _ := BusyUserIDs(assignments, day, proposed.BoatID)
	busySet := make(map[string]bool, len(busy))
	for _, id := range busy {
		busySet[id] = true
	}

	for _, userID := range []string{proposed.InstructorID, proposed.HelperID} {
		if userID == "" {
			continue
		}

		if busySet[userID] {
			warnings = append(warnings, Warning{
				Code:         WarnBusyCrew,
				AssignmentID: proposed.ID,
				Message: fmt.Sprintf("user %s is already committed to another boat on %s",
					userID, dates.Format(day)),
			})
		}

		if StatusOn(availability, userID, day) == db.Unavailable {
			warnings = append(warnings, Warning{
				Code:         WarnUnavailableCrew,
				AssignmentID: proposed.ID,
				Message: fmt.Sprintf("user %s is marked unavailable on %s",
					userID, dates.Format(day)),
			})
		}
	}

	return warnings
}

// StatusOn returns a user's availability on a day. Days without a record are
// Unknown; records with unparsable dates are ignored.
func StatusOn(availability []db.Availability, userID string, day time.Time) db.AvailabilityStatus {
	key := dates.Format(day)
	status := db.Unknown

	// Last record wins, mirroring the (userId, date) last-write-wins contract
	for _, entry := range availability {
		if entry.UserID == userID && entry.Date == key {
			status = entry.Status
		}
	}

	return status
}
