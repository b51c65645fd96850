package gta

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session groups every log entry of one sync run under one opaque token.
// It is an explicit value created at the start of RunSync and threaded
// through the engine, so two runs in one process never share an identifier.
type Session struct {
	ID        string
	StartedAt time.Time
}

// NewSession builds a session whose ID sorts by creation time: a UTC
// timestamp token plus a randomized suffix to keep near-simultaneous
// processes apart.
func NewSession(now time.Time) Session {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return Session{
		ID:        now.UTC().Format("20060102T150405Z") + "-" + suffix,
		StartedAt: now,
	}
}
