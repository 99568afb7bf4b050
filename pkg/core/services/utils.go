package services

import (
	"fmt"

	"github.com/sailclub/crewboard/pkg/db"
)

// findAssignmentByID returns the assignment with the given id from a snapshot
func findAssignmentByID(assignments []db.Assignment, id string) (*db.Assignment, error) {
	for i := range assignments {
		if assignments[i].ID == id {
			return &assignments[i], nil
		}
	}
	return nil, fmt.Errorf("assignment not found: %s", id)
}

// usersByID builds a lookup map from a user list
func usersByID(users []db.User) map[string]db.User {
	byID := make(map[string]db.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	return byID
}

// adminUsers filters the user list down to admins
func adminUsers(users []db.User) []db.User {
	var admins []db.User
	for _, u := range users {
		if u.IsAdmin {
			admins = append(admins, u)
		}
	}
	return admins
}

// boatName resolves a boat id to its display name, falling back to the id
// when the boat is missing from the catalog
func boatName(boats []db.Boat, boatID string) string {
	for _, b := range boats {
		if b.ID == boatID {
			return b.Name
		}
	}
	return boatID
}

// activityName resolves an activity id to its display name
func activityName(activities []db.Activity, activityID string) string {
	for _, a := range activities {
		if a.ID == activityID {
			return a.Name
		}
	}
	return activityID
}

// displayName resolves a user id to a full name, falling back to the id
func displayName(users map[string]db.User, userID string) string {
	if userID == "" {
		return ""
	}
	if u, ok := users[userID]; ok {
		return u.FullName()
	}
	return userID
}
