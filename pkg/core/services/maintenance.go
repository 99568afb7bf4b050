package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sailclub/crewboard/pkg/core/maintenance"
	"github.com/sailclub/crewboard/pkg/core/notify"
	"github.com/sailclub/crewboard/pkg/db"
)

// MaintenanceStore defines the database operations needed for the
// maintenance flows
type MaintenanceStore interface {
	GetMaintenanceRecords(ctx context.Context) ([]db.MaintenanceRecord, error)
	UpsertMaintenanceRecord(ctx context.Context, record *db.MaintenanceRecord) error
}

// CompleteMaintenanceResult contains the completed record and, for recurring
// work, the proposed next occurrence. The proposal is not persisted here:
// the caller shows it to the operator and calls AcceptProposal on approval.
type CompleteMaintenanceResult struct {
	Updated  db.MaintenanceRecord
	Proposal *db.MaintenanceRecord
}

// CompleteMaintenance flips a record to DONE and computes the recurrence
// proposal when the record carries a recurrence rule
func CompleteMaintenance(ctx context.Context, database MaintenanceStore, logger *zap.Logger, recordID string, today time.Time) (*CompleteMaintenanceResult, error) {
	records, err := database.GetMaintenanceRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance records: %w", err)
	}

	var record *db.MaintenanceRecord
	for i := range records {
		if records[i].ID == recordID {
			record = &records[i]
			break
		}
	}
	if record == nil {
		return nil, fmt.Errorf("maintenance record not found: %s", recordID)
	}

	completion, err := maintenance.CompleteAndMaybeReschedule(*record, today)
	if err != nil {
		// The completion itself still stands; the broken recurrence rule is
		// reported after the record is saved
		logger.Warn("Recurrence rule unusable, completing without proposal",
			zap.String("record_id", recordID),
			zap.Error(err))
	}

	if err := database.UpsertMaintenanceRecord(ctx, &completion.Updated); err != nil {
		return nil, fmt.Errorf("failed to save maintenance record: %w", err)
	}

	logger.Info("Maintenance record completed",
		zap.String("record_id", recordID),
		zap.Bool("proposal", completion.Proposal != nil))

	return &CompleteMaintenanceResult{Updated: completion.Updated, Proposal: completion.Proposal}, nil
}

// AcceptProposal persists a recurrence proposal produced by
// CompleteMaintenance, turning it into a real TODO record
func AcceptProposal(ctx context.Context, database MaintenanceStore, logger *zap.Logger, proposal *db.MaintenanceRecord) error {
	if proposal == nil {
		return fmt.Errorf("no proposal to accept")
	}

	if err := database.UpsertMaintenanceRecord(ctx, proposal); err != nil {
		return fmt.Errorf("failed to save proposed record: %w", err)
	}

	logger.Info("Recurrence proposal accepted",
		zap.String("record_id", proposal.ID),
		zap.String("expiration", proposal.ExpirationDate))

	return nil
}

// BucketedRecord pairs a maintenance record with its urgency bucket
type BucketedRecord struct {
	Record   db.MaintenanceRecord
	BoatName string
	Bucket   maintenance.Bucket
}

// MaintenanceReportResult groups the fleet's records by expiration urgency
type MaintenanceReportResult struct {
	Expired       []BucketedRecord
	ExpiringSoon  []BucketedRecord
	OK            []BucketedRecord
	Notifications []db.UserNotification
}

// MaintenanceReportStore defines the database operations needed for the
// expiration report
type MaintenanceReportStore interface {
	GetMaintenanceRecords(ctx context.Context) ([]db.MaintenanceRecord, error)
	GetBoats(ctx context.Context) ([]db.Boat, error)
	GetUsers(ctx context.Context) ([]db.User, error)
	InsertNotifications(ctx context.Context, notifications []db.UserNotification) error
}

// MaintenanceReport buckets every maintenance record by expiration urgency.
// When notifyAdmins is set, each expiring-soon record fans out a
// MAINTENANCE notification to every admin in the same run.
func MaintenanceReport(ctx context.Context, database MaintenanceReportStore, logger *zap.Logger, today time.Time, notifyAdmins bool) (*MaintenanceReportResult, error) {
	records, err := database.GetMaintenanceRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch maintenance records: %w", err)
	}

	boats, err := database.GetBoats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch boats: %w", err)
	}

	result := &MaintenanceReportResult{}
	for _, record := range records {
		bucketed := BucketedRecord{
			Record:   record,
			BoatName: boatName(boats, record.BoatID),
			Bucket:   maintenance.ExpirationBucket(record, today),
		}
		switch bucketed.Bucket {
		case maintenance.BucketExpired:
			result.Expired = append(result.Expired, bucketed)
		case maintenance.BucketExpiringSoon:
			result.ExpiringSoon = append(result.ExpiringSoon, bucketed)
		default:
			result.OK = append(result.OK, bucketed)
		}
	}

	if notifyAdmins && len(result.ExpiringSoon) > 0 {
		users, err := database.GetUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch users: %w", err)
		}
		admins := adminUsers(users)

		for _, bucketed := range result.ExpiringSoon {
			result.Notifications = append(result.Notifications,
				notify.OnMaintenanceExpiring(bucketed.Record, bucketed.BoatName, admins, today)...)
		}
		if len(result.Notifications) > 0 {
			if err := database.InsertNotifications(ctx, result.Notifications); err != nil {
				return nil, fmt.Errorf("failed to save notifications: %w", err)
			}
		}
	}

	logger.Info("Maintenance report resolved",
		zap.Int("expired", len(result.Expired)),
		zap.Int("expiring_soon", len(result.ExpiringSoon)),
		zap.Int("ok", len(result.OK)),
		zap.Int("notifications", len(result.Notifications)))

	return result, nil
}
