package sync

import (
	"context"
	"log/slog"

	"gtasync/internal/bootstrap/logging"
	domain "gtasync/internal/domain/gta"
	"gtasync/internal/errs"
	"gtasync/internal/ports"
)

// Audit log column bounds.
const (
	maxLogSource  = 50
	maxLogMessage = 500
)

// AuditLogger writes session-scoped entries to the audit log sink. Logging
// never fails from the caller's perspective: sink errors are swallowed and
// every message is mirrored to the diagnostic trace regardless of sink
// success.
type AuditLogger struct {
	sink ports.SyncLogSink
	now  nowFunc
}

func NewAuditLogger(sink ports.SyncLogSink) *AuditLogger {
	return &AuditLogger{sink: sink, now: defaultNow}
}

func (l *AuditLogger) Log(ctx context.Context, session domain.Session, source, message string, interventionID *int64) {
	entry := ports.SyncLogEntry{
		Timestamp:      l.now(),
		SessionID:      session.ID,
		SourceFunction: domain.Truncate(source, maxLogSource),
		Level:          domain.LevelForMessage(message),
		Message:        domain.Truncate(message, maxLogMessage),
		InterventionID: interventionID,
	}

	sinkErr := l.sink.Append(ctx, entry)

	attrs := []slog.Attr{
		slog.String("session_id", entry.SessionID),
		slog.String("source", entry.SourceFunction),
	}
	if interventionID != nil {
		attrs = append(attrs, slog.Int64("intervention_id", *interventionID))
	}
	if sinkErr != nil {
		attrs = append(attrs, slog.Any("sink_err", errs.Loggable(sinkErr)))
	}

	switch entry.Level {
	case domain.LevelError:
		logging.Error(ctx, entry.Message, attrs...)
	case domain.LevelWarning:
		logging.Warn(ctx, entry.Message, attrs...)
	default:
		logging.Info(ctx, entry.Message, attrs...)
	}
}
