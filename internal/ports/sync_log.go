package ports

import (
	"context"
	"time"
)

// SyncLogEntry is one append-only fact about an action taken during a run.
// Entries are never mutated or deleted by this system.
type SyncLogEntry struct {
	EntryID        uint64
	Timestamp      time.Time
	SessionID      string
	SourceFunction string
	Level          string
	Message        string
	InterventionID *int64
}

type SyncLogFilter struct {
	SessionID string
	Limit     int
}

type SyncLogSink interface {
	Append(ctx context.Context, entry SyncLogEntry) error
	ListRecent(ctx context.Context, filter SyncLogFilter) ([]SyncLogEntry, error)
}
