package smartlead_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	smartlead "github.com/andyle182810/smartlead-go"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"", "   ", "\t\n"} {
		client, err := smartlead.New(key)

		require.ErrorIs(t, err, smartlead.ErrMissingAPIKey)
		require.Nil(t, client)
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	client, err := smartlead.New("test-key")

	require.NoError(t, err)
	require.Equal(t, smartlead.DefaultBaseURL, client.BaseURL())
}

func TestClient_EmbedsAPIKeyAndPath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/campaigns", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client, err := smartlead.New("test-key", smartlead.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Campaigns(context.Background())

	require.NoError(t, err)
}

func TestClient_DecodesJSONUnchanged(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id": 3286, "name": "Tech Pty"}]`))
	}))
	defer server.Close()

	client, err := smartlead.New("test-key", smartlead.WithBaseURL(server.URL))
	require.NoError(t, err)

	got, err := client.Clients(context.Background())

	require.NoError(t, err)
	require.Equal(t, []any{map[string]any{"id": float64(3286), "name": "Tech Pty"}}, got)
}

func TestClient_UpstreamError(t *testing.T) {
	t.Parallel()

	for _, status := range []int{
		http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusInternalServerError,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"message":"nope"}`))
		}))

		client, err := smartlead.New("test-key", smartlead.WithBaseURL(server.URL))
		require.NoError(t, err)

		got, err := client.Campaign(context.Background(), 42)

		require.Nil(t, got)
		require.ErrorIs(t, err, smartlead.ErrAPIError)

		apiErr, ok := smartlead.IsAPIError(err)
		require.True(t, ok)
		require.Equal(t, status, apiErr.StatusCode)
		require.Equal(t, `{"message":"nope"}`, apiErr.Body)

		server.Close()
	}
}

func TestClient_TransportError_SingleAttempt(t *testing.T) {
	t.Parallel()

	var callCount atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		callCount.Add(1)
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := smartlead.New("test-key",
		smartlead.WithBaseURL(server.URL),
		smartlead.WithTimeout(50*time.Millisecond),
	)
	require.NoError(t, err)

	_, err = client.Campaigns(context.Background())

	require.ErrorIs(t, err, smartlead.ErrRequestFailed)
	require.Equal(t, int32(1), callCount.Load())
}

func TestClient_CallsAreIndependent(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		requests []*url.URL
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, r.URL)
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := smartlead.New("test-key", smartlead.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.LeadByEmail(context.Background(), "lead@example.com")
	require.NoError(t, err)

	_, err = client.Campaigns(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()

	require.Len(t, requests, 2)
	assert.Equal(t, "lead@example.com", requests[0].Query().Get("email"))
	assert.Equal(t, "/campaigns", requests[1].Path)
	assert.Empty(t, requests[1].Query().Get("email"))
	assert.Equal(t, "test-key", requests[1].Query().Get("api_key"))
}

func TestClient_EmptyBodyDecodesToNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := smartlead.New("test-key", smartlead.WithBaseURL(server.URL))
	require.NoError(t, err)

	got, err := client.ReconnectFailedEmailAccounts(context.Background())

	require.NoError(t, err)
	require.Nil(t, got)
}

func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"broken":`))
	}))
	defer server.Close()

	client, err := smartlead.New("test-key", smartlead.WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Campaigns(context.Background())

	require.ErrorIs(t, err, smartlead.ErrDecodeResponse)
}

func TestClient_MaxResponseSize(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"a very long campaign name indeed"}]`))
	}))
	defer server.Close()

	client, err := smartlead.New("test-key",
		smartlead.WithBaseURL(server.URL),
		smartlead.WithMaxResponseSize(8),
	)
	require.NoError(t, err)

	_, err = client.Campaigns(context.Background())

	require.ErrorIs(t, err, smartlead.ErrResponseTooLarge)
}

func TestClient_LogsRequestsWithoutAPIKey(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	client, err := smartlead.New("super-secret-key",
		smartlead.WithBaseURL(server.URL),
		smartlead.WithLogger(log),
	)
	require.NoError(t, err)

	_, err = client.Campaigns(context.Background())
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "request_id")
	assert.Contains(t, logged, `"status":200`)
	assert.Contains(t, logged, "GET /campaigns")
	assert.NotContains(t, logged, "super-secret-key")
}
