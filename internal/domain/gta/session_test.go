package gta

import (
	"strings"
	"testing"
	"time"
)

func TestNewSessionTokenFormat(t *testing.T) {
	now := time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC)

	session := NewSession(now)
	if !strings.HasPrefix(session.ID, "20240517T093000Z-") {
		t.Fatalf("session ID = %q, want timestamp prefix", session.ID)
	}
	if got := len(session.ID); got != len("20240517T093000Z-")+8 {
		t.Fatalf("session ID length = %d", got)
	}
	if !session.StartedAt.Equal(now) {
		t.Fatalf("StartedAt = %v", session.StartedAt)
	}
}

func TestNewSessionTokensSortByCreationTime(t *testing.T) {
	earlier := NewSession(time.Date(2024, 5, 17, 9, 30, 0, 0, time.UTC))
	later := NewSession(time.Date(2024, 5, 17, 9, 30, 1, 0, time.UTC))

	if !(earlier.ID < later.ID) {
		t.Fatalf("tokens must sort by creation time: %q >= %q", earlier.ID, later.ID)
	}
}

func TestNewSessionTokensDistinct(t *testing.T) {
	now := time.Now()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewSession(now).ID
		if seen[id] {
			t.Fatalf("duplicate session ID %q", id)
		}
		seen[id] = true
	}
}
