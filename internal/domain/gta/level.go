package gta

import "strings"

// Audit log levels.
const (
	LevelInfo    = "INFO"
	LevelSuccess = "SUCCESS"
	LevelWarning = "WARNING"
	LevelError   = "ERROR"
)

// LevelForMessage classifies a log message by substring match in priority
// order. Callers control the level indirectly through message wording; this
// is a heuristic, not a structured taxonomy.
func LevelForMessage(message string) string {
	upper := strings.ToUpper(message)
	switch {
	case strings.Contains(upper, "ERROR"), strings.Contains(upper, "FAILED"):
		return LevelError
	case strings.Contains(upper, "WARNING"), strings.Contains(upper, "MISSING"):
		return LevelWarning
	case strings.Contains(upper, "SUCCESS"), strings.Contains(upper, "COMPLETED"):
		return LevelSuccess
	default:
		return LevelInfo
	}
}
