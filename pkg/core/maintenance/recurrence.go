// Package maintenance turns completed maintenance records with a recurrence
// rule into proposals for the next occurrence, and classifies records by how
// close their expiration date is. The engine only proposes; persisting a
// spawned record is always the caller's decision.
package maintenance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/sailclub/crewboard/pkg/core/dates"
	"github.com/sailclub/crewboard/pkg/db"
)

// ExpiringSoonDays is the look-ahead window for the expiring-soon bucket
const ExpiringSoonDays = 30

// Bucket classifies a record's expiration urgency
type Bucket string

const (
	BucketExpired      Bucket = "expired"
	BucketExpiringSoon Bucket = "expiringSoon"
	BucketOK           Bucket = "ok"
)

// Completion is the result of completing a maintenance record.
// Proposal is nil when the record has no recurrence rule.
type Completion struct {
	Updated  db.MaintenanceRecord
	Proposal *db.MaintenanceRecord
}

// Advance returns base moved forward by interval units using calendar-aware
// addition. Month and year steps clamp to the last valid day of the target
// month, so 2024-01-31 plus one month is 2024-02-29 and 2024-02-29 plus one
// year is 2025-02-28. Day steps are plain calendar-day addition.
func Advance(base time.Time, interval int, unit db.RecurrenceUnit) time.Time {
	switch unit {
	case db.UnitDays:
		return dates.AddDays(base, interval)
	case db.UnitMonths:
		return addMonthsClamped(base, interval)
	case db.UnitYears:
		return addMonthsClamped(base, interval*12)
	default:
		return base
	}
}

// NextFromRule returns the first occurrence of an RFC 5545 recurrence rule
// strictly after base, anchored at base
func NextFromRule(base time.Time, rule string) (time.Time, error) {
	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid recurrence rule %q: %w", rule, err)
	}

	r.DTStart(base)

	next := r.After(base, false)
	if next.IsZero() {
		return time.Time{}, fmt.Errorf("recurrence rule %q has no occurrence after %s", rule, dates.Format(base))
	}

	return next, nil
}

// ValidateRule checks an RFC 5545 recurrence rule string
func ValidateRule(rule string) error {
	if _, err := rrule.StrToRRule(rule); err != nil {
		return fmt.Errorf("invalid recurrence rule %q: %w", rule, err)
	}
	return nil
}

// CompleteAndMaybeReschedule flips the record to DONE and, when a recurrence
// is configured, proposes the next occurrence: a fresh TODO record dated
// today whose expiration is today advanced by the recurrence. An RRule takes
// precedence over interval+unit; an invalid RRule falls back to interval+unit
// when present. The proposal carries a freshly generated id and the same
// boat, description and recurrence settings.
func CompleteAndMaybeReschedule(rec db.MaintenanceRecord, today time.Time) (Completion, error) {
	updated := rec
	updated.Status = db.MaintenanceDone

	next, ok, err := nextExpiration(rec, today)
	if err != nil {
		return Completion{Updated: updated}, err
	}
	if !ok {
		return Completion{Updated: updated}, nil
	}

	proposal := db.MaintenanceRecord{
		ID:                 uuid.New().String(),
		BoatID:             rec.BoatID,
		Description:        rec.Description,
		Date:               dates.Format(today),
		ExpirationDate:     dates.Format(next),
		Status:             db.MaintenanceTodo,
		RecurrenceInterval: rec.RecurrenceInterval,
		RecurrenceUnit:     rec.RecurrenceUnit,
		RRule:              rec.RRule,
	}

	return Completion{Updated: updated, Proposal: &proposal}, nil
}

// ExpirationBucket classifies a record against today:
// expired when the expiration date is strictly in the past, expiringSoon when
// it falls within the next ExpiringSoonDays days (today included), ok
// otherwise. DONE records and records without a parsable expiration date are
// always ok.
func ExpirationBucket(rec db.MaintenanceRecord, today time.Time) Bucket {
	if rec.Status == db.MaintenanceDone || rec.ExpirationDate == "" {
		return BucketOK
	}

	expiration, err := dates.Parse(rec.ExpirationDate)
	if err != nil {
		return BucketOK
	}

	daysUntil := dates.DaysBetween(today, expiration)
	switch {
	case daysUntil < 0:
		return BucketExpired
	case daysUntil <= ExpiringSoonDays:
		return BucketExpiringSoon
	default:
		return BucketOK
	}
}

// nextExpiration computes the proposed expiration date for a completed
// recurring record. ok is false when the record has no recurrence.
func nextExpiration(rec db.MaintenanceRecord, today time.Time) (next time.Time, ok bool, err error) {
	if rec.RRule != "" {
		next, err = NextFromRule(today, rec.RRule)
		if err == nil {
			return next, true, nil
		}
		// Fall back to the simple interval when one is configured
		if rec.RecurrenceInterval <= 0 {
			return time.Time{}, false, err
		}
	}

	if rec.RecurrenceInterval <= 0 || rec.RecurrenceUnit == "" {
		return time.Time{}, false, nil
	}

	return Advance(today, rec.RecurrenceInterval, rec.RecurrenceUnit), true, nil
}

// addMonthsClamped adds months to a date, clamping the day of month to the
// last valid day of the target month instead of letting it roll over
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	// First day of the target month, then clamp the day
	target := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, months, 0)
	last := daysInMonth(target.Year(), target.Month())
	if day > last {
		day = last
	}

	return time.Date(target.Year(), target.Month(), day, 0, 0, 0, 0, time.UTC)
}

// daysInMonth returns the number of days in the given month
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
