package db

// AssignmentStatus is the cancellation axis of an assignment.
// It is independent of the per-role confirmation statuses.
type AssignmentStatus string

const (
	AssignmentConfirmed AssignmentStatus = "CONFIRMED"
	AssignmentCancelled AssignmentStatus = "CANCELLED"
)

// RoleStatus is the per-role acceptance state of an assignment
type RoleStatus string

const (
	RolePending   RoleStatus = "PENDING"
	RoleConfirmed RoleStatus = "CONFIRMED"
	RoleRejected  RoleStatus = "REJECTED"
)

// AvailabilityStatus is a user's stance on a single calendar day.
// Absence of an Availability record means unknown.
type AvailabilityStatus string

const (
	Available   AvailabilityStatus = "AVAILABLE"
	Unavailable AvailabilityStatus = "UNAVAILABLE"
	Unknown     AvailabilityStatus = "UNKNOWN"
)

// MaintenanceStatus is the workflow state of a maintenance record
type MaintenanceStatus string

const (
	MaintenanceTodo       MaintenanceStatus = "TODO"
	MaintenanceInProgress MaintenanceStatus = "IN_PROGRESS"
	MaintenanceDone       MaintenanceStatus = "DONE"
)

// RecurrenceUnit is the calendar unit of a maintenance recurrence interval
type RecurrenceUnit string

const (
	UnitDays   RecurrenceUnit = "days"
	UnitMonths RecurrenceUnit = "months"
	UnitYears  RecurrenceUnit = "years"
)

// NotificationType classifies a user notification
type NotificationType string

const (
	NotificationAssignment  NotificationType = "ASSIGNMENT"
	NotificationEvent       NotificationType = "EVENT"
	NotificationInfo        NotificationType = "INFO"
	NotificationMaintenance NotificationType = "MAINTENANCE"
)

// Assignment represents a boat committed to one activity over a contiguous
// span of days starting at Date. All dates use the "2006-01-02" format.
type Assignment struct {
	ID               string
	Date             string // span start
	BoatID           string
	InstructorID     string // empty if no instructor assigned
	HelperID         string // empty if no helper assigned
	ActivityID       string
	DurationDays     int
	Status           AssignmentStatus
	InstructorStatus RoleStatus
	HelperStatus     RoleStatus
	Notes            string
}

// Availability represents one user's stance on one calendar day.
// Rows are keyed by (UserID, Date); the latest write wins.
type Availability struct {
	ID     string
	UserID string
	Date   string
	Status AvailabilityStatus
}

// EventResponse represents a single user's RSVP on a general event
type EventResponse struct {
	UserID string
	Status RoleStatus
}

// GeneralEvent represents a non-boat social or training event on one date.
// Responses cover every user that existed when the event was created;
// membership is fixed from then on.
type GeneralEvent struct {
	ID          string
	Date        string
	Title       string
	Description string
	Responses   []EventResponse
}

// MaintenanceRecord represents a unit of maintenance work on a boat.
// RecurrenceInterval/RecurrenceUnit describe a simple calendar recurrence;
// RRule, when set, is an RFC 5545 recurrence rule that takes precedence.
type MaintenanceRecord struct {
	ID                 string
	BoatID             string
	Description        string
	Date               string // creation or performed date
	ExpirationDate     string // empty if none
	Status             MaintenanceStatus
	RecurrenceInterval int    // 0 if not recurring
	RecurrenceUnit     RecurrenceUnit
	RRule              string
}

// UserNotification represents a single fan-out record for one recipient.
// Records are never mutated after creation except for the Read flag.
type UserNotification struct {
	ID           string
	UserID       string
	Type         NotificationType
	Message      string
	Read         bool
	AssignmentID string // set for ASSIGNMENT notifications
	EventID      string // set for EVENT notifications
	Role         string // instructor/helper for ASSIGNMENT notifications
	CreatedAt    string // "2006-01-02" creation day
}

// User represents a club member or staff user
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Birthday  string // "2006-01-02", empty if unknown
	IsAdmin   bool
}

// FullName returns the user's display name
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Boat represents a boat in the club fleet
type Boat struct {
	ID   string
	Name string
}

// Activity represents a catalog entry assignments refer to (training,
// regatta, maintenance sail and so on)
type Activity struct {
	ID   string
	Name string
}
