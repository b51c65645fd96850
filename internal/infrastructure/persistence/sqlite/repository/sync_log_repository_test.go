package repository

import (
	"context"
	"testing"
	"time"

	"gtasync/internal/ports"
)

func TestAppendAndListRecent(t *testing.T) {
	repo := NewSyncLogRepository(setupDB(t))
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	id := int64(100)
	entries := []ports.SyncLogEntry{
		{Timestamp: now, SessionID: "s1", SourceFunction: "RunSync", Level: "INFO", Message: "Sync run started"},
		{Timestamp: now, SessionID: "s1", SourceFunction: "processRecord", Level: "INFO", Message: "Inserted intervention 100", InterventionID: &id},
		{Timestamp: now, SessionID: "s2", SourceFunction: "RunSync", Level: "ERROR", Message: "ERROR: missing API key"},
	}
	for _, entry := range entries {
		if err := repo.Append(ctx, entry); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	all, err := repo.ListRecent(ctx, ports.SyncLogFilter{Limit: 10})
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("ListRecent() len = %d", len(all))
	}
	// Newest first.
	if all[0].SessionID != "s2" {
		t.Fatalf("ListRecent()[0].SessionID = %q", all[0].SessionID)
	}

	s1, err := repo.ListRecent(ctx, ports.SyncLogFilter{SessionID: "s1", Limit: 10})
	if err != nil {
		t.Fatalf("ListRecent(session) error = %v", err)
	}
	if len(s1) != 2 {
		t.Fatalf("ListRecent(session) len = %d", len(s1))
	}
	if s1[0].InterventionID == nil || *s1[0].InterventionID != 100 {
		t.Fatalf("InterventionID = %v", s1[0].InterventionID)
	}
}
