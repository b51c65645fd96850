package uow

import (
	"context"

	"gorm.io/gorm"

	"gtasync/internal/ports"
)

// UnitOfWork implements ports.UnitOfWork with gorm. The sync engine wraps
// each per-record lookup-and-write in one transaction so an upsert decision
// and its write are atomic.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ports.WithTxContext(ctx, tx))
	})
}
