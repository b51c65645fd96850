package ports

import (
	"context"
	"time"
)

// Intervention is one stored trade-intervention row.
type Intervention struct {
	InterventionID           int64
	Title                    string
	Description              string
	Type                     string
	Evaluation               string
	DateAnnounced            *time.Time
	ImplementationDate       *time.Time
	RemovalDate              *time.Time
	ImplementingJurisdiction string
	AffectedJurisdictions    string
	TargetedProductsHS6      string
	TargetedSectorsCPC3      string
	Source                   string
	LastSyncedAt             time.Time
	SyncOrigin               string
}

// InterventionPatch carries only the columns to overwrite. Nil fields are
// never written, which is what keeps absent source fields from clearing
// stored values.
type InterventionPatch struct {
	Title                    *string
	Description              *string
	Type                     *string
	Evaluation               *string
	DateAnnounced            *time.Time
	ImplementationDate       *time.Time
	RemovalDate              *time.Time
	ImplementingJurisdiction *string
	AffectedJurisdictions    *string
	TargetedProductsHS6      *string
	TargetedSectorsCPC3      *string
	Source                   *string
	LastSyncedAt             time.Time
}

type InterventionRepository interface {
	Get(ctx context.Context, interventionID int64) (Intervention, bool, error)
	Insert(ctx context.Context, record Intervention) error
	Update(ctx context.Context, interventionID int64, patch InterventionPatch) error
}
