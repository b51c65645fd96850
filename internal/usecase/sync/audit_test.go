package sync

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domain "gtasync/internal/domain/gta"
	"gtasync/internal/ports"
)

type fakeSink struct {
	entries []ports.SyncLogEntry
	err     error
}

func (f *fakeSink) Append(_ context.Context, entry ports.SyncLogEntry) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeSink) ListRecent(context.Context, ports.SyncLogFilter) ([]ports.SyncLogEntry, error) {
	return f.entries, nil
}

func testSession() domain.Session {
	return domain.NewSession(time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC))
}

func TestAuditLoggerWritesEntry(t *testing.T) {
	sink := &fakeSink{}
	logger := NewAuditLogger(sink)
	session := testSession()
	id := int64(100)

	logger.Log(context.Background(), session, "processRecord", "Inserted intervention 100", &id)

	if len(sink.entries) != 1 {
		t.Fatalf("entries = %d", len(sink.entries))
	}
	entry := sink.entries[0]
	if entry.SessionID != session.ID {
		t.Fatalf("SessionID = %q", entry.SessionID)
	}
	if entry.Level != domain.LevelInfo {
		t.Fatalf("Level = %q", entry.Level)
	}
	if entry.InterventionID == nil || *entry.InterventionID != 100 {
		t.Fatalf("InterventionID = %v", entry.InterventionID)
	}
	if entry.Timestamp.IsZero() {
		t.Fatalf("Timestamp not set")
	}
}

func TestAuditLoggerTruncatesFields(t *testing.T) {
	sink := &fakeSink{}
	logger := NewAuditLogger(sink)

	longSource := strings.Repeat("s", 80)
	longMessage := "ERROR: " + strings.Repeat("m", 600)
	logger.Log(context.Background(), testSession(), longSource, longMessage, nil)

	entry := sink.entries[0]
	if len(entry.SourceFunction) != maxLogSource {
		t.Fatalf("len(SourceFunction) = %d", len(entry.SourceFunction))
	}
	if len(entry.Message) != maxLogMessage {
		t.Fatalf("len(Message) = %d", len(entry.Message))
	}
	// Level derives from the full message, before truncation concerns.
	if entry.Level != domain.LevelError {
		t.Fatalf("Level = %q", entry.Level)
	}
}

func TestAuditLoggerSwallowsSinkFailure(t *testing.T) {
	sink := &fakeSink{err: errors.New("sink down")}
	logger := NewAuditLogger(sink)

	// Must not panic or surface the sink error in any way.
	logger.Log(context.Background(), testSession(), "RunSync", "Sync run started", nil)
}
