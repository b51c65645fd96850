package ports

import (
	"context"
	"encoding/json"
)

// RemoteSource fetches one page of intervention records from the remote
// trade-alert API. Implementations validate the response envelope (bare
// array or {"results": [...]}) and return the raw elements; decoding of
// individual records is left to the caller so one malformed element cannot
// fail the batch.
type RemoteSource interface {
	FetchPage(ctx context.Context, apiKey string, limit int) ([]json.RawMessage, error)
}
