package services

import (
	"context"
	"fmt"

	"github.com/sailclub/crewboard/pkg/db"
)

// mockDB implements the service store interfaces over in-memory slices and
// records every write so tests can assert on what was persisted
type mockDB struct {
	assignments   []db.Assignment
	availability  []db.Availability
	events        []db.GeneralEvent
	maintenance   []db.MaintenanceRecord
	notifications []db.UserNotification
	users         []db.User
	boats         []db.Boat
	activities    []db.Activity

	upsertedAssignments  []*db.Assignment
	deletedAssignments   []string
	upsertedAvailability []db.Availability
	insertedEvents       []*db.GeneralEvent
	updatedResponses     []db.EventResponse
	upsertedMaintenance  []*db.MaintenanceRecord
	insertedNotifs       []db.UserNotification
	markedRead           []string

	failOn string // method name to fail, empty for none
}

func (m *mockDB) fail(method string) error {
	if m.failOn == method {
		return fmt.Errorf("forced %s failure", method)
	}
	return nil
}

func (m *mockDB) GetAssignments(ctx context.Context) ([]db.Assignment, error) {
	return m.assignments, m.fail("GetAssignments")
}

func (m *mockDB) UpsertAssignment(ctx context.Context, assignment *db.Assignment) error {
	if err := m.fail("UpsertAssignment"); err != nil {
		return err
	}
	m.upsertedAssignments = append(m.upsertedAssignments, assignment)
	return nil
}

func (m *mockDB) DeleteAssignment(ctx context.Context, id string) error {
	if err := m.fail("DeleteAssignment"); err != nil {
		return err
	}
	m.deletedAssignments = append(m.deletedAssignments, id)
	return nil
}

func (m *mockDB) GetAvailability(ctx context.Context) ([]db.Availability, error) {
	return m.availability, m.fail("GetAvailability")
}

func (m *mockDB) UpsertAvailability(ctx context.Context, entries []db.Availability) error {
	if err := m.fail("UpsertAvailability"); err != nil {
		return err
	}
	m.upsertedAvailability = append(m.upsertedAvailability, entries...)
	return nil
}

func (m *mockDB) GetEvents(ctx context.Context) ([]db.GeneralEvent, error) {
	return m.events, m.fail("GetEvents")
}

func (m *mockDB) InsertEvent(ctx context.Context, event *db.GeneralEvent) error {
	if err := m.fail("InsertEvent"); err != nil {
		return err
	}
	m.insertedEvents = append(m.insertedEvents, event)
	return nil
}

func (m *mockDB) UpdateEventResponse(ctx context.Context, eventID string, response db.EventResponse) error {
	if err := m.fail("UpdateEventResponse"); err != nil {
		return err
	}
	m.updatedResponses = append(m.updatedResponses, response)
	return nil
}

func (m *mockDB) GetMaintenanceRecords(ctx context.Context) ([]db.MaintenanceRecord, error) {
	return m.maintenance, m.fail("GetMaintenanceRecords")
}

func (m *mockDB) UpsertMaintenanceRecord(ctx context.Context, record *db.MaintenanceRecord) error {
	if err := m.fail("UpsertMaintenanceRecord"); err != nil {
		return err
	}
	m.upsertedMaintenance = append(m.upsertedMaintenance, record)
	return nil
}

func (m *mockDB) GetNotifications(ctx context.Context) ([]db.UserNotification, error) {
	return m.notifications, m.fail("GetNotifications")
}

func (m *mockDB) InsertNotifications(ctx context.Context, notifications []db.UserNotification) error {
	if err := m.fail("InsertNotifications"); err != nil {
		return err
	}
	m.insertedNotifs = append(m.insertedNotifs, notifications...)
	return nil
}

func (m *mockDB) MarkNotificationRead(ctx context.Context, id string) error {
	if err := m.fail("MarkNotificationRead"); err != nil {
		return err
	}
	m.markedRead = append(m.markedRead, id)
	return nil
}

func (m *mockDB) GetUsers(ctx context.Context) ([]db.User, error) {
	return m.users, m.fail("GetUsers")
}

func (m *mockDB) GetBoats(ctx context.Context) ([]db.Boat, error) {
	return m.boats, m.fail("GetBoats")
}

func (m *mockDB) GetActivities(ctx context.Context) ([]db.Activity, error) {
	return m.activities, m.fail("GetActivities")
}
