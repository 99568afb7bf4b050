package db

import "context"

// AssignmentStore defines the interface for assignment database operations
type AssignmentStore interface {
	GetAssignments(ctx context.Context) ([]Assignment, error)
	UpsertAssignment(ctx context.Context, assignment *Assignment) error
	DeleteAssignment(ctx context.Context, id string) error
}

// AvailabilityStore defines the interface for availability database operations
type AvailabilityStore interface {
	GetAvailability(ctx context.Context) ([]Availability, error)
	UpsertAvailability(ctx context.Context, entries []Availability) error
}

// EventStore defines the interface for general event database operations
type EventStore interface {
	GetEvents(ctx context.Context) ([]GeneralEvent, error)
	InsertEvent(ctx context.Context, event *GeneralEvent) error
	UpdateEventResponse(ctx context.Context, eventID string, response EventResponse) error
}

// MaintenanceStore defines the interface for maintenance record operations
type MaintenanceStore interface {
	GetMaintenanceRecords(ctx context.Context) ([]MaintenanceRecord, error)
	UpsertMaintenanceRecord(ctx context.Context, record *MaintenanceRecord) error
}

// NotificationStore defines the interface for notification operations
type NotificationStore interface {
	GetNotifications(ctx context.Context) ([]UserNotification, error)
	InsertNotifications(ctx context.Context, notifications []UserNotification) error
	MarkNotificationRead(ctx context.Context, id string) error
}

// CatalogStore defines the interface for the user/boat/activity catalogs.
// The catalogs are edited elsewhere; this tool only reads them.
type CatalogStore interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetBoats(ctx context.Context) ([]Boat, error)
	GetActivities(ctx context.Context) ([]Activity, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	AssignmentStore
	AvailabilityStore
	EventStore
	MaintenanceStore
	NotificationStore
	CatalogStore
}
