package gta

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gtasync/internal/bootstrap/config"
	domain "gtasync/internal/domain/gta"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(config.GTAConfig{
		BaseURL:   server.URL,
		UserAgent: "gtasync-test/1.0",
	})
}

func TestFetchPageRequestContract(t *testing.T) {
	var gotPath, gotKey, gotAgent, gotContentType string
	var gotBody map[string]any

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("APIKey")
		gotAgent = r.Header.Get("User-Agent")
		gotContentType = r.Header.Get("Content-Type")

		payload, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(payload, &gotBody)

		_, _ = w.Write([]byte(`{"results": []}`))
	})

	if _, err := client.FetchPage(context.Background(), "k1", 50); err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}

	if gotPath != "/api/v1/data/" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotKey != "k1" {
		t.Fatalf("APIKey header = %q", gotKey)
	}
	if gotAgent != "gtasync-test/1.0" {
		t.Fatalf("User-Agent = %q", gotAgent)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q", gotContentType)
	}
	if gotBody["limit"] != float64(50) {
		t.Fatalf("body limit = %v", gotBody["limit"])
	}
	sorting, _ := gotBody["sorting"].([]any)
	if len(sorting) != 1 || sorting[0] != "-date_announced" {
		t.Fatalf("body sorting = %v", gotBody["sorting"])
	}
	requestData, _ := gotBody["request_data"].(map[string]any)
	chapters, _ := requestData["mast_chapters"].([]any)
	if len(chapters) != 1 || chapters[0] != float64(4) {
		t.Fatalf("body mast_chapters = %v", requestData["mast_chapters"])
	}
}

func TestFetchPageBareArray(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"intervention_id": 1}, {"intervention_id": 2}]`))
	})

	results, err := client.FetchPage(context.Background(), "k1", 10)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("FetchPage() len = %d", len(results))
	}
}

func TestFetchPageResultsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"count": 1, "results": [{"intervention_id": 1}]}`))
	})

	results, err := client.FetchPage(context.Background(), "k1", 10)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("FetchPage() len = %d", len(results))
	}
}

func TestFetchPageNonSuccessStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`this body must not be parsed`))
	})

	_, err := client.FetchPage(context.Background(), "k1", 10)

	var remoteErr *domain.RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("FetchPage() error = %v, want RemoteError", err)
	}
	if remoteErr.StatusCode != http.StatusForbidden {
		t.Fatalf("StatusCode = %d", remoteErr.StatusCode)
	}
}

func TestFetchPageUnrecognizedShape(t *testing.T) {
	cases := map[string]string{
		"object without results": `{"count": 0}`,
		"scalar":                 `42`,
		"empty":                  ``,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.FetchPage(context.Background(), "k1", 10)

			var protoErr *domain.ProtocolError
			if !errors.As(err, &protoErr) {
				t.Fatalf("FetchPage() error = %v, want ProtocolError", err)
			}
		})
	}
}
