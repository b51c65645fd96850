package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gtasync/internal/errs"
	"gtasync/internal/infrastructure/persistence/sqlite/model"
	"gtasync/internal/ports"
)

type InterventionRepository struct {
	db *gorm.DB
}

var _ ports.InterventionRepository = (*InterventionRepository)(nil)

func NewInterventionRepository(db *gorm.DB) *InterventionRepository {
	return &InterventionRepository{db: db}
}

func (r *InterventionRepository) dbFromContext(ctx context.Context) (*gorm.DB, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	tx := ports.TxFromContext(ctx)
	if tx == nil {
		return r.db.WithContext(ctx), nil
	}

	gormTx, ok := tx.(*gorm.DB)
	if !ok || gormTx == nil {
		return nil, fmt.Errorf("invalid tx in context: %T", tx)
	}
	return gormTx.WithContext(ctx), nil
}

func (r *InterventionRepository) Get(ctx context.Context, interventionID int64) (ports.Intervention, bool, error) {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return ports.Intervention{}, false, err
	}

	var row model.Intervention
	if err := db.Where("intervention_id = ?", interventionID).Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Intervention{}, false, nil
		}
		return ports.Intervention{}, false, errs.Wrap(err, "query intervention by id")
	}

	return mapIntervention(row), true, nil
}

func (r *InterventionRepository) Insert(ctx context.Context, record ports.Intervention) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	row := model.Intervention{
		InterventionID:           record.InterventionID,
		Title:                    record.Title,
		Description:              record.Description,
		Type:                     record.Type,
		Evaluation:               record.Evaluation,
		DateAnnounced:            record.DateAnnounced,
		ImplementationDate:       record.ImplementationDate,
		RemovalDate:              record.RemovalDate,
		ImplementingJurisdiction: record.ImplementingJurisdiction,
		AffectedJurisdictions:    record.AffectedJurisdictions,
		TargetedProductsHS6:      record.TargetedProductsHS6,
		TargetedSectorsCPC3:      record.TargetedSectorsCPC3,
		Source:                   record.Source,
		LastSyncedAt:             record.LastSyncedAt,
		SyncOrigin:               record.SyncOrigin,
	}

	if err := db.Create(&row).Error; err != nil {
		return errs.Wrap(err, "insert intervention")
	}
	return nil
}

// Update writes only the columns present in the patch. Columns absent from
// the patch keep their stored value, which is what preserves fields the
// source stopped sending.
func (r *InterventionRepository) Update(ctx context.Context, interventionID int64, patch ports.InterventionPatch) error {
	db, err := r.dbFromContext(ctx)
	if err != nil {
		return err
	}

	assignments := patchAssignments(patch)

	result := db.Model(&model.Intervention{}).
		Where("intervention_id = ?", interventionID).
		Updates(assignments)
	if result.Error != nil {
		return errs.Wrap(result.Error, "update intervention")
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("update intervention: no row with id %d", interventionID)
	}
	return nil
}

func patchAssignments(patch ports.InterventionPatch) map[string]any {
	assignments := map[string]any{
		"last_synced_at": patch.LastSyncedAt,
	}

	setStr := func(column string, v *string) {
		if v != nil {
			assignments[column] = *v
		}
	}
	setStr("title", patch.Title)
	setStr("description", patch.Description)
	setStr("type", patch.Type)
	setStr("evaluation", patch.Evaluation)
	setStr("implementing_jurisdiction", patch.ImplementingJurisdiction)
	setStr("affected_jurisdictions", patch.AffectedJurisdictions)
	setStr("targeted_products_hs6", patch.TargetedProductsHS6)
	setStr("targeted_sectors_cpc3", patch.TargetedSectorsCPC3)
	setStr("source", patch.Source)

	if patch.DateAnnounced != nil {
		assignments["date_announced"] = *patch.DateAnnounced
	}
	if patch.ImplementationDate != nil {
		assignments["implementation_date"] = *patch.ImplementationDate
	}
	if patch.RemovalDate != nil {
		assignments["removal_date"] = *patch.RemovalDate
	}

	return assignments
}

func mapIntervention(row model.Intervention) ports.Intervention {
	return ports.Intervention{
		InterventionID:           row.InterventionID,
		Title:                    row.Title,
		Description:              row.Description,
		Type:                     row.Type,
		Evaluation:               row.Evaluation,
		DateAnnounced:            row.DateAnnounced,
		ImplementationDate:       row.ImplementationDate,
		RemovalDate:              row.RemovalDate,
		ImplementingJurisdiction: row.ImplementingJurisdiction,
		AffectedJurisdictions:    row.AffectedJurisdictions,
		TargetedProductsHS6:      row.TargetedProductsHS6,
		TargetedSectorsCPC3:      row.TargetedSectorsCPC3,
		Source:                   row.Source,
		LastSyncedAt:             row.LastSyncedAt,
		SyncOrigin:               row.SyncOrigin,
	}
}
