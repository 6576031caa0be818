package httputil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

// ============================================================================
// GET Tests
// ============================================================================

func TestClient_Get(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/items", r.URL.Path)
		_, err := uuid.Parse(r.Header.Get(HeaderRequestID))
		assert.NoError(t, err, "request id should be a uuid")
		_, _ = io.WriteString(w, "ok")
	})

	body, err := NewClient().Get(context.Background(), server.URL+"/items")
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
}

func TestClient_GetWithParams(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "go lang", r.URL.Query().Get("q"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = io.WriteString(w, r.URL.RawQuery)
	})

	body, err := NewClient().GetWithParams(context.Background(), server.URL, map[string]string{
		"q":    "go lang",
		"page": "2",
	})
	require.NoError(t, err)
	assert.Equal(t, "page=2&q=go+lang", body)

	_, err = NewClient().GetWithParams(context.Background(), server.URL, map[string]string{"": "x"})
	assert.ErrorIs(t, err, ErrEmptyParamKey)
}

func TestClient_KeepsCallerRequestID(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.Header.Get(HeaderRequestID))
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, "req-123")

	body, err := NewClient().Do(req)
	require.NoError(t, err)
	assert.Equal(t, "req-123", body)
}

func TestClient_RequestIDFromContext(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.Header.Get(HeaderRequestID))
	})

	ctx := ContextWithRequestID(context.Background(), "ctx-456")
	body, err := NewClient().Get(ctx, server.URL)
	require.NoError(t, err)
	assert.Equal(t, "ctx-456", body)
}

func TestClient_DefaultHeaders(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, r.Header.Get("Authorization")+"|"+r.Header.Get("X-Tenant"))
	})

	client := NewClient(WithHeader("Authorization", "Bearer default"), WithHeader("X-Tenant", "acme"))

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer explicit")

	body, err := client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, "Bearer explicit|acme", body)
	assert.Empty(t, req.Header.Get("X-Tenant"), "caller request must not be mutated")
}

// ============================================================================
// POST Tests
// ============================================================================

func TestClient_PostJSON(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json; charset=utf-8", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"name":"widget"}`, string(body))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"id":7}`)
	})

	body, err := NewClient().PostJSON(context.Background(), server.URL, `{"name":"widget"}`)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":7}`, body)
}

func TestClient_PostMap(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		var decoded map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&decoded))
		assert.Equal(t, map[string]string{"user": "hck", "role": "admin"}, decoded)
		_, _ = io.WriteString(w, "created")
	})

	body, err := NewClient().PostMap(context.Background(), server.URL, map[string]string{
		"user": "hck",
		"role": "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "created", body)
}

// ============================================================================
// Response Handling Tests
// ============================================================================

func TestClient_Fetch_NonSuccessStatus(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, "missing")
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)

	resp, err := NewClient().Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.Status)
	assert.Equal(t, "missing", resp.Body)

	body, err := NewClient().Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "missing", body)
}

func TestClient_LargeBody(t *testing.T) {
	payload := strings.Repeat("abcdefgh", 1000)
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		// flushing first forces a chunked response without Content-Length
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, payload)
	})

	body, err := NewClient().Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, payload, body)
}

func TestClient_MaxBodySize(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, strings.Repeat("x", 100))
	})

	_, err := NewClient(WithMaxBodySize(99)).Get(context.Background(), server.URL)
	assert.ErrorIs(t, err, ErrBodyTooLarge)

	body, err := NewClient(WithMaxBodySize(100)).Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Len(t, body, 100)
}

func TestClient_DecodesDeclaredCharset(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=ISO-8859-1")
		_, _ = w.Write([]byte("caf\xe9"))
	})

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	resp, err := NewClient().Fetch(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "café", resp.Body)
	assert.Equal(t, []byte("caf\xe9"), resp.Raw)
}

// ============================================================================
// Timeout Tests
// ============================================================================

func TestClient_Timeout(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	})

	start := time.Now()
	_, err := NewClient(WithTimeout(20*time.Millisecond)).Get(context.Background(), server.URL)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWithHTTPClient_NilKeepsDefault(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})

	client := NewClient(WithHTTPClient(nil))
	require.NotNil(t, client.httpClient)

	body, err := client.Get(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "ok", body)
}

func TestWithTimeout_NonPositiveUsesDefault(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(WithTimeout(0)).timeout)
	assert.Equal(t, DefaultTimeout, NewClient(WithTimeout(-time.Second)).timeout)
	assert.Equal(t, time.Second, NewClient(WithTimeout(time.Second)).timeout)
}

func TestClient_InvalidURL(t *testing.T) {
	_, err := NewClient().Get(context.Background(), "://bad")
	assert.Error(t, err)
}

// ============================================================================
// Package Function Tests
// ============================================================================

func TestPackageFunctions(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = io.WriteString(w, r.Method+" "+r.URL.RawQuery+" "+string(body))
	})
	ctx := context.Background()

	body, err := Get(ctx, server.URL+"?a=1", 0)
	require.NoError(t, err)
	assert.Equal(t, "GET a=1 ", body)

	body, err = GetWithParams(ctx, server.URL, map[string]string{"b": "2"}, time.Second)
	require.NoError(t, err)
	assert.Equal(t, "GET b=2 ", body)

	body, err = PostJSON(ctx, server.URL, `[]`, -1)
	require.NoError(t, err)
	assert.Equal(t, "POST  []", body)

	body, err = PostMap(ctx, server.URL, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, "POST  {}", body)
}
