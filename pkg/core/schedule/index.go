// Package schedule answers day-level questions about the assignment
// collection: which assignment governs a boat on a given day, and which
// users are already committed somewhere on that day. All functions are pure
// transformations of the snapshot passed in.
package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/db"
)

// WarningCode identifies a data-quality finding surfaced by the index
type WarningCode string

const (
	// WarnBadDate marks an assignment whose start date does not parse.
	// The assignment is excluded from matching.
	WarnBadDate WarningCode = "bad_date"

	// WarnBadDuration marks an assignment with a duration below one day.
	// The assignment is excluded from matching.
	WarnBadDuration WarningCode = "bad_duration"

	// WarnAmbiguousOverlap marks a day where more than one assignment covers
	// the same boat. The index picks deterministically but the overlap needs
	// operator cleanup.
	WarnAmbiguousOverlap WarningCode = "ambiguous_overlap"

	// WarnBusyCrew marks a proposed crew member already committed to another
	// boat on an overlapping day.
	WarnBusyCrew WarningCode = "busy_crew"

	// WarnUnavailableCrew marks a proposed crew member who declared
	// themselves unavailable on a day of the span.
	WarnUnavailableCrew WarningCode = "unavailable_crew"
)

// Warning represents a non-fatal data-quality finding.
// Warnings never abort an operation; they are returned for display and logging.
type Warning struct {
	Code         WarningCode
	AssignmentID string
	Message      string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// EffectiveAssignment returns the assignment governing boatID on day, or nil.
//
// An assignment covers a day when 0 <= day - start < durationDays. Records
// with an unparsable date or a duration below one day are skipped and
// reported. When several assignments cover the same boat and day (a data
// anomaly), the one with the earliest start date wins, ties broken by lowest
// ID, and an ambiguous_overlap warning is emitted. Cancelled assignments
// still match: the day cell keeps showing the cancelled mission and callers
// decide how to render it.
func EffectiveAssignment(assignments []db.Assignment, boatID string, day time.Time) (*db.Assignment, []Warning) {
	var warnings []Warning
	var matches []db.Assignment

	for _, a := range assignments {
		if a.BoatID != boatID {
			continue
		}

		start, warn := spanStart(a)
		if warn != nil {
			warnings = append(warnings, *warn)
			continue
		}

		offset := dates.DaysBetween(start, day)
		if offset >= 0 && offset < a.DurationDays {
			matches = append(matches, a)
		}
	}

	if len(matches) == 0 {
		return nil, warnings
	}

	if len(matches) > 1 {
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Date != matches[j].Date {
				return matches[i].Date < matches[j].Date
			}
			return matches[i].ID < matches[j].ID
		})
		warnings = append(warnings, Warning{
			Code:         WarnAmbiguousOverlap,
			AssignmentID: matches[0].ID,
			Message: fmt.Sprintf("boat %s has %d overlapping assignments on %s, using %s",
				boatID, len(matches), dates.Format(day), matches[0].ID),
		})
	}

	picked := matches[0]
	return &picked, warnings
}

// BusyUserIDs returns every user committed as instructor or helper on day
// through some boat other than excludeBoatID. Cancelled assignments do not
// commit their crew. The result is sorted so identical snapshots always
// produce identical output.
func BusyUserIDs(assignments []db.Assignment, day time.Time, excludeBoatID string) ([]string, []Warning) {
	var warnings []Warning
	busy := make(map[string]bool)

	boats := boatIDs(assignments)
	for _, boatID := range boats {
		if boatID == excludeBoatID {
			continue
		}

		effective, w := EffectiveAssignment(assignments, boatID, day)
		warnings = append(warnings, w...)
		if effective == nil || effective.Status == db.AssignmentCancelled {
			continue
		}

		if effective.InstructorID != "" {
			busy[effective.InstructorID] = true
		}
		if effective.HelperID != "" {
			busy[effective.HelperID] = true
		}
	}

	ids := make([]string, 0, len(busy))
	for id := range busy {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, warnings
}

// boatIDs returns the distinct boat ids present in the snapshot, sorted
func boatIDs(assignments []db.Assignment) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, a := range assignments {
		if !seen[a.BoatID] {
			seen[a.BoatID] = true
			ids = append(ids, a.BoatID)
		}
	}
	sort.Strings(ids)
	return ids
}

// spanStart parses the start date of an assignment and checks its duration,
// returning a warning instead of an error when the record is unusable
func spanStart(a db.Assignment) (time.Time, *Warning) {
	start, err := dates.Parse(a.Date)
	if err != nil {
		return time.Time{}, &Warning{
			Code:         WarnBadDate,
			AssignmentID: a.ID,
			Message:      fmt.Sprintf("assignment %s excluded: %v", a.ID, err),
		}
	}

	if a.DurationDays < 1 {
		return time.Time{}, &Warning{
			Code:         WarnBadDuration,
			AssignmentID: a.ID,
			Message:      fmt.Sprintf("assignment %s excluded: duration %d days", a.ID, a.DurationDays),
		}
	}

	return start, nil
}
