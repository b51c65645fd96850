package gta

import "testing"

func TestLevelForMessage(t *testing.T) {
	cases := []struct {
		message string
		want    string
	}{
		{"Sync run started", LevelInfo},
		{"Inserted intervention 100", LevelInfo},
		{"ERROR: record FAILED: boom", LevelError},
		{"fetching interventions FAILED", LevelError},
		{"WARNING: sync is disabled in settings", LevelWarning},
		{"record has missing intervention_id", LevelWarning},
		{"Sync COMPLETED: 3 processed", LevelSuccess},
		{"import finished with success", LevelSuccess},
		// ERROR outranks WARNING and SUCCESS when several match.
		{"ERROR: sync FAILED before COMPLETED state", LevelError},
		{"WARNING before SUCCESS", LevelWarning},
	}

	for _, tc := range cases {
		if got := LevelForMessage(tc.message); got != tc.want {
			t.Fatalf("LevelForMessage(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}
