// Package gta implements the remote trade-alert API client. The request
// and response contract lives here; record semantics live in domain/gta.
package gta

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"gtasync/internal/bootstrap/config"
	domain "gtasync/internal/domain/gta"
	"gtasync/internal/errs"
	"gtasync/internal/ports"
)

const (
	dataPath = "/api/v1/data/"

	// The network call is the only suspension point of a run; it blocks
	// until response or this budget is exhausted.
	requestTimeout = 30 * time.Second

	// Server-side category filter restricting results to the tracked
	// class of trade measures.
	mastChapter = 4

	// Header name is a convention of the remote system.
	apiKeyHeader = "APIKey"
)

type pageRequest struct {
	Limit       int         `json:"limit"`
	Sorting     []string    `json:"sorting"`
	RequestData requestData `json:"request_data"`
}

type requestData struct {
	MastChapters []int `json:"mast_chapters"`
}

type Client struct {
	http *resty.Client
}

var _ ports.RemoteSource = (*Client)(nil)

func NewClient(cfg config.GTAConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(requestTimeout).
		SetHeader("User-Agent", cfg.UserAgent).
		SetHeader("Content-Type", "application/json")

	// The core never retries; re-invocation is a scheduling concern.
	client.SetRetryCount(0)

	return &Client{http: client}
}

// FetchPage requests up to limit records, newest announcement first,
// filtered to the fixed MAST chapter. A non-200 status yields a RemoteError
// without parsing the body; a 200 body that is neither a bare array nor an
// object with a results array yields a ProtocolError.
func (c *Client) FetchPage(ctx context.Context, apiKey string, limit int) ([]json.RawMessage, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader(apiKeyHeader, apiKey).
		SetBody(pageRequest{
			Limit:       limit,
			Sorting:     []string{"-date_announced"},
			RequestData: requestData{MastChapters: []int{mastChapter}},
		}).
		Post(dataPath)
	if err != nil {
		return nil, errs.Wrap(err, "request intervention page")
	}

	if res.StatusCode() != http.StatusOK {
		return nil, &domain.RemoteError{StatusCode: res.StatusCode()}
	}

	return parseResultList(res.Body())
}

func parseResultList(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, &domain.ProtocolError{Detail: "empty response body"}
	}

	switch trimmed[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, &domain.ProtocolError{Detail: "invalid result array: " + err.Error()}
		}
		return list, nil
	case '{':
		var envelope struct {
			Results []json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, &domain.ProtocolError{Detail: "invalid result object: " + err.Error()}
		}
		if envelope.Results == nil {
			return nil, &domain.ProtocolError{Detail: "object body without results array"}
		}
		return envelope.Results, nil
	default:
		return nil, &domain.ProtocolError{Detail: "body is neither array nor object"}
	}
}
