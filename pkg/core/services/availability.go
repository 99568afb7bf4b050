package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/core/notify"
	"github.com/sailclub/crewboard/pkg/db"
)

// SetAvailabilityStore defines the database operations needed to record
// availability
type SetAvailabilityStore interface {
	UpsertAvailability(ctx context.Context, entries []db.Availability) error
}

// SetAvailability records a user's stance on one calendar day. Entries are
// keyed by (user, day) in the store, so repeated writes overwrite.
//
// Weekend mirroring: a Saturday or Sunday entry also writes the other day of
// the same weekend as a second single-day record, because crews sail whole
// weekends.
func SetAvailability(ctx context.Context, database SetAvailabilityStore, logger *zap.Logger, userID, date string, status db.AvailabilityStatus) ([]db.Availability, error) {
	day, err := dates.Parse(date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date: %w", err)
	}

	entries := []db.Availability{{
		ID:     uuid.New().String(),
		UserID: userID,
		Date:   date,
		Status: status,
	}}

	if counterpart, ok := dates.WeekendCounterpart(day); ok {
		entries = append(entries, db.Availability{
			ID:     uuid.New().String(),
			UserID: userID,
			Date:   dates.Format(counterpart),
			Status: status,
		})
	}

	if err := database.UpsertAvailability(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to save availability: %w", err)
	}

	logger.Info("Availability recorded",
		zap.String("user_id", userID),
		zap.String("date", date),
		zap.String("status", string(status)),
		zap.Int("days_written", len(entries)))

	return entries, nil
}

// AvailabilityGap represents one user's missing days in the requested range
type AvailabilityGap struct {
	User        db.User
	MissingDays []string
}

// AvailabilityGapsResult lists users who still owe availability entries
type AvailabilityGapsResult struct {
	From          string
	To            string
	Gaps          []AvailabilityGap
	Notifications []db.UserNotification
}

// AvailabilityGapsStore defines the database operations needed for the
// missing-availability report
type AvailabilityGapsStore interface {
	GetUsers(ctx context.Context) ([]db.User, error)
	GetAvailability(ctx context.Context) ([]db.Availability, error)
	InsertNotifications(ctx context.Context, notifications []db.UserNotification) error
}

// AvailabilityGaps reports, per user, the days in [from, to] with no
// availability record at all. When notifyUsers is set an INFO reminder is
// fanned out to every user with at least one missing day.
func AvailabilityGaps(ctx context.Context, database AvailabilityGapsStore, logger *zap.Logger, from, to string, notifyUsers bool) (*AvailabilityGapsResult, error) {
	start, err := dates.Parse(from)
	if err != nil {
		return nil, fmt.Errorf("failed to parse from date: %w", err)
	}
	end, err := dates.Parse(to)
	if err != nil {
		return nil, fmt.Errorf("failed to parse to date: %w", err)
	}
	if dates.DaysBetween(start, end) < 0 {
		return nil, fmt.Errorf("range is backwards: %s is after %s", from, to)
	}

	users, err := database.GetUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	availability, err := database.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}

	// Days with any record per user, regardless of status
	recorded := make(map[string]map[string]bool)
	for _, entry := range availability {
		if recorded[entry.UserID] == nil {
			recorded[entry.UserID] = make(map[string]bool)
		}
		recorded[entry.UserID][entry.Date] = true
	}

	result := &AvailabilityGapsResult{From: from, To: to}
	var remindIDs []string

	for _, user := range users {
		var missing []string
		for offset := 0; offset <= dates.DaysBetween(start, end); offset++ {
			key := dates.Format(dates.AddDays(start, offset))
			if !recorded[user.ID][key] {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			sort.Strings(missing)
			result.Gaps = append(result.Gaps, AvailabilityGap{User: user, MissingDays: missing})
			remindIDs = append(remindIDs, user.ID)
		}
	}

	if notifyUsers && len(remindIDs) > 0 {
		result.Notifications = notify.OnMissingAvailability(remindIDs, start, end, time.Now())
		if err := database.InsertNotifications(ctx, result.Notifications); err != nil {
			return nil, fmt.Errorf("failed to save notifications: %w", err)
		}
	}

	logger.Info("Availability gaps resolved",
		zap.String("from", from),
		zap.String("to", to),
		zap.Int("users_with_gaps", len(result.Gaps)),
		zap.Int("reminders", len(result.Notifications)))

	return result, nil
}
