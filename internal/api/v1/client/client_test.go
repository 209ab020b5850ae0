package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabforge/fabquote/internal/api/v1/handlers"
	"github.com/fabforge/fabquote/internal/db/models"
)

// newTestServer serves canned responses keyed by method plus path.
func newTestServer(t *testing.T, responses map[string]http.HandlerFunc) Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handler, ok := responses[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"slug": "not-found", "error": "no such route"}`))
			return
		}
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(&ClientOptions{BaseURL: server.URL, Timeout: DefaultTimeout})
	require.NoError(t, err)
	return c
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"slug": "success", "error": "", "data": data})
}

func TestNewClientRejectsBadURL(t *testing.T) {
	_, err := NewClient(&ClientOptions{BaseURL: "://not-a-url"})
	assert.Error(t, err)
}

func TestStartSessionDecodesEnvelope(t *testing.T) {
	c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/sessions": func(w http.ResponseWriter, r *http.Request) {
			var req handlers.StartSessionRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "deck railing", req.Description)
			writeEnvelope(w, http.StatusCreated, map[string]interface{}{
				"session_id":  "abc-123",
				"job_type":    "straight_railing",
				"tree_loaded": true,
			})
		},
	})

	result, err := c.StartSession(context.Background(), handlers.StartSessionRequest{Description: "deck railing"})
	require.NoError(t, err)
	assert.Equal(t, "abc-123", result.SessionID)
	assert.True(t, result.TreeLoaded)
}

func TestErrorEnvelopeBecomesFiberError(t *testing.T) {
	c := newTestServer(t, map[string]http.HandlerFunc{
		"POST /api/v1/sessions/abc/calculate": func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"slug": "wrong-stage", "error": "answers are still incomplete"}`))
		},
	})

	_, err := c.Calculate(context.Background(), "abc")
	require.Error(t, err)
	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, http.StatusConflict, fiberErr.Code)
	assert.Contains(t, fiberErr.Message, "incomplete")
}

func TestQuotePDFReturnsRawBytes(t *testing.T) {
	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/quotes/7/pdf": func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4 test"))
		},
	})

	out, err := c.QuotePDF(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestListQuotesPassesPagination(t *testing.T) {
	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/quotes": func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "10", r.URL.Query().Get("limit"))
			assert.Equal(t, "20", r.URL.Query().Get("offset"))
			writeEnvelope(w, http.StatusOK, []map[string]interface{}{
				{"quote_id": 1, "quote_number": "FQ-2026-0001"},
			})
		},
	})

	results, err := c.ListQuotes(context.Background(), &models.ListOptions{Limit: 10, Offset: 20})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "FQ-2026-0001", results[0].QuoteNumber)
}

func TestHealthCheck(t *testing.T) {
	c := newTestServer(t, map[string]http.HandlerFunc{
		"GET /health": func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status": "healthy"}`))
		},
	})

	health, err := c.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health["status"])
}
