package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"gtasync/internal/errs"
	"gtasync/internal/infrastructure/persistence/sqlite/model"
	"gtasync/internal/ports"
)

// SyncLogRepository is the append-only audit log sink. Entries are never
// updated or deleted here; retention is an external concern.
type SyncLogRepository struct {
	db *gorm.DB
}

var _ ports.SyncLogSink = (*SyncLogRepository)(nil)

func NewSyncLogRepository(db *gorm.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

func (r *SyncLogRepository) Append(ctx context.Context, entry ports.SyncLogEntry) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	row := model.SyncLogEntry{
		Timestamp:      entry.Timestamp,
		SessionID:      entry.SessionID,
		SourceFunction: entry.SourceFunction,
		Level:          entry.Level,
		Message:        entry.Message,
		InterventionID: entry.InterventionID,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return errs.Wrap(err, "append sync log entry")
	}
	return nil
}

func (r *SyncLogRepository) ListRecent(ctx context.Context, filter ports.SyncLogFilter) ([]ports.SyncLogEntry, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	query := r.db.WithContext(ctx).Model(&model.SyncLogEntry{}).Order("entry_id desc")
	if filter.SessionID != "" {
		query = query.Where("session_id = ?", filter.SessionID)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []model.SyncLogEntry
	if err := query.Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query sync log entries")
	}

	items := make([]ports.SyncLogEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.SyncLogEntry{
			EntryID:        row.EntryID,
			Timestamp:      row.Timestamp,
			SessionID:      row.SessionID,
			SourceFunction: row.SourceFunction,
			Level:          row.Level,
			Message:        row.Message,
			InterventionID: row.InterventionID,
		})
	}
	return items, nil
}
