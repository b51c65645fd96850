package gta

import (
	"fmt"
	"strconv"
)

// ConfigError is a missing or invalid required setting. Fatal to the run.
type ConfigError struct {
	Setting string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required setting %q", e.Setting)
}

// RemoteError is a non-success HTTP response from the remote API. Fatal to
// the run; the response body is not parsed.
type RemoteError struct {
	StatusCode int
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote API returned status %d", e.StatusCode)
}

// ProtocolError means the response body had an unrecognized shape.
type ProtocolError struct {
	Detail string
}

func (e *ProtocolError) Error() string {
	return "unrecognized response shape: " + e.Detail
}

// RecordError is a malformed or unprocessable individual record. Recovered
// locally: the record is logged and skipped, the run continues.
type RecordError struct {
	InterventionID *int64
	Reason         string
}

func (e *RecordError) Error() string {
	if e.InterventionID != nil {
		return "record " + strconv.FormatInt(*e.InterventionID, 10) + ": " + e.Reason
	}
	return "record: " + e.Reason
}
