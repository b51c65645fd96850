package settings

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gtasync/internal/errs"
	"gtasync/internal/infrastructure/persistence/sqlite/model"
	"gtasync/internal/ports"
)

// SQLiteSettings backs the settings key-value store with the settings
// table. The sync engine only calls Get; Set and All serve the settings
// CLI command.
type SQLiteSettings struct {
	db *gorm.DB
}

var _ ports.SettingsStore = (*SQLiteSettings)(nil)

func NewSQLiteSettings(db *gorm.DB) *SQLiteSettings {
	return &SQLiteSettings{db: db}
}

func (s *SQLiteSettings) Get(ctx context.Context, key string) (string, bool, error) {
	if ctx == nil {
		return "", false, errors.New("context is required")
	}

	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return "", false, errors.New("key is required")
	}

	var row model.Setting
	if err := s.db.WithContext(ctx).Where("key = ?", trimmedKey).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, errs.Wrap(err, "query setting by key")
	}

	return row.Value, true, nil
}

func (s *SQLiteSettings) Set(ctx context.Context, key string, value string) error {
	if ctx == nil {
		return errors.New("context is required")
	}

	trimmedKey := strings.TrimSpace(key)
	if trimmedKey == "" {
		return errors.New("key is required")
	}

	row := model.Setting{
		Key:       trimmedKey,
		Value:     value,
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "key"}},
		DoUpdates: clause.Assignments(map[string]any{
			"value":      row.Value,
			"updated_at": row.UpdatedAt,
		}),
	}).Create(&row).Error; err != nil {
		return errs.Wrap(err, "upsert setting")
	}

	return nil
}

func (s *SQLiteSettings) All(ctx context.Context) (map[string]string, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	var rows []model.Setting
	if err := s.db.WithContext(ctx).Order("key asc").Find(&rows).Error; err != nil {
		return nil, errs.Wrap(err, "query settings")
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}
