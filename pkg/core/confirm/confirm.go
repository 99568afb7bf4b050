// Package confirm implements the per-role confirmation lifecycle of an
// assignment and the RSVP lifecycle of a general event. Every function takes
// a record by value and returns the updated copy; the input is never mutated.
package confirm

import (
	"errors"
	"fmt"

	"github.com/sailclub/crewboard/pkg/db"
)

// Role identifies one of the two crew slots on an assignment
type Role string

const (
	RoleInstructor Role = "instructor"
	RoleHelper     Role = "helper"
)

var (
	// ErrUnknownRole is returned for a role other than instructor or helper
	ErrUnknownRole = errors.New("unknown role")

	// ErrRoleUnassigned is returned when confirming a role with no occupant
	ErrRoleUnassigned = errors.New("no user assigned to role")

	// ErrNotInvited is returned when a user responds to an event they are not
	// part of. Event membership is fixed at creation time.
	ErrNotInvited = errors.New("user is not invited to event")
)

// ParseRole validates a role string from the CLI or a notification payload
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleInstructor, RoleHelper:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
}

// ConfirmRole records the occupant's decision for one role: CONFIRMED when
// accepted, REJECTED otherwise. The other role's status and the assignment's
// cancellation flag are untouched.
func ConfirmRole(a db.Assignment, role Role, accepted bool) (db.Assignment, error) {
	status := db.RoleConfirmed
	if !accepted {
		status = db.RoleRejected
	}

	switch role {
	case RoleInstructor:
		if a.InstructorID == "" {
			return a, fmt.Errorf("assignment %s: %w", a.ID, ErrRoleUnassigned)
		}
		a.InstructorStatus = status
	case RoleHelper:
		if a.HelperID == "" {
			return a, fmt.Errorf("assignment %s: %w", a.ID, ErrRoleUnassigned)
		}
		a.HelperStatus = status
	default:
		return a, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return a, nil
}

// Reassign places userID (possibly empty, clearing the slot) into the given
// role. When the occupant actually changes the role's confirmation resets to
// PENDING; reassigning the same person keeps their existing answer. The
// other role is never touched.
func Reassign(a db.Assignment, role Role, userID string) (db.Assignment, error) {
	switch role {
	case RoleInstructor:
		if a.InstructorID != userID {
			a.InstructorID = userID
			a.InstructorStatus = db.RolePending
		}
	case RoleHelper:
		if a.HelperID != userID {
			a.HelperID = userID
			a.HelperStatus = db.RolePending
		}
	default:
		return a, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	return a, nil
}

// Cancel soft-deletes the assignment. Role confirmations are preserved so a
// cancelled mission keeps the history of who had accepted.
func Cancel(a db.Assignment) db.Assignment {
	a.Status = db.AssignmentCancelled
	return a
}

// Restore is the inverse of Cancel. Confirmations are not reset.
func Restore(a db.Assignment) db.Assignment {
	a.Status = db.AssignmentConfirmed
	return a
}

// RespondToEvent updates the matching entry in the event's response list.
// A user without an entry cannot respond.
func RespondToEvent(e db.GeneralEvent, userID string, accepted bool) (db.GeneralEvent, error) {
	status := db.RoleConfirmed
	if !accepted {
		status = db.RoleRejected
	}

	responses := make([]db.EventResponse, len(e.Responses))
	copy(responses, e.Responses)

	found := false
	for i := range responses {
		if responses[i].UserID == userID {
			responses[i].Status = status
			found = true
		}
	}

	if !found {
		return e, fmt.Errorf("event %s: %w (user %s)", e.ID, ErrNotInvited, userID)
	}

	e.Responses = responses
	return e, nil
}
