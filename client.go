package smartlead

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production Smartlead REST endpoint.
	DefaultBaseURL = "https://server.smartlead.ai/api/v1"

	DefaultTimeout = 30 * time.Second

	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	headerXRequestID  = "X-Request-ID"
	contentTypeJSON   = "application/json"

	apiKeyParam = "api_key"
)

// JSON is a decoded response body as returned by the upstream service:
// a map[string]any, []any, string, float64, bool or nil. The client
// passes it through without enforcing any schema.
type JSON = any

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ Doer = (*http.Client)(nil)

// Client dispatches authenticated calls to the Smartlead API. All
// fields are set during New and never mutated afterwards, so a single
// Client is safe for concurrent use; calls it does not itself issue
// are not ordered relative to each other.
type Client struct {
	apiKey          string
	baseURL         string
	httpClient      Doer
	log             zerolog.Logger
	maxResponseSize int64 // 0 means no limit
}

func New(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{ //nolint:exhaustruct
			Timeout: DefaultTimeout,
		},
		log:             zerolog.Nop(),
		maxResponseSize: 0,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (JSON, error) {
	return c.dispatch(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, body any) (JSON, error) {
	return c.dispatch(ctx, http.MethodPost, path, nil, body)
}

func (c *Client) del(ctx context.Context, path string, body any) (JSON, error) {
	return c.dispatch(ctx, http.MethodDelete, path, nil, body)
}

func (c *Client) dispatch(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
) (JSON, error) {
	raw, err := c.send(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var out JSON
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return out, nil
}

// send performs a single HTTP exchange and returns the raw response
// body. Each call is one attempt: failures are surfaced, never retried.
func (c *Client) send(
	ctx context.Context,
	method string,
	path string,
	query url.Values,
	body any,
) ([]byte, error) {
	requestID := uuid.New().String()

	var bodyReader io.Reader

	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodeBody, err)
		}

		bodyReader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCreateRequest, err)
	}

	req.Header.Set(headerAccept, contentTypeJSON)
	req.Header.Set(headerXRequestID, requestID)

	if body != nil {
		req.Header.Set(headerContentType, contentTypeJSON)
	}

	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug().
			Str("request_id", requestID).
			Str("request", method+" "+path).
			Err(err).
			Msg("smartlead request failed")

		return nil, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("request_id", requestID).
		Str("request", method+" "+path).
		Int("status", resp.StatusCode).
		Str("latency", time.Since(start).String()).
		Msg("smartlead request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.errorFromResponse(resp, requestID)
	}

	reader := io.Reader(resp.Body)
	if c.maxResponseSize > 0 {
		reader = io.LimitReader(resp.Body, c.maxResponseSize+1)
	}

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	if c.maxResponseSize > 0 && int64(len(raw)) > c.maxResponseSize {
		return nil, ErrResponseTooLarge
	}

	return raw, nil
}

func (c *Client) errorFromResponse(resp *http.Response, requestID string) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewAPIError(resp.StatusCode, "", requestID)
	}

	return NewAPIError(resp.StatusCode, string(raw), requestID)
}

// buildURL joins the base URL, the endpoint path and the query string.
// The api_key parameter is always attached here so no request can leave
// without credentials.
func (c *Client) buildURL(path string, query url.Values) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	params := url.Values{}

	for key, vals := range query {
		for _, val := range vals {
			params.Add(key, val)
		}
	}

	params.Set(apiKeyParam, c.apiKey)

	return c.baseURL + path + "?" + params.Encode()
}

// compactList renders list-typed fields the way the upstream expects
// them in request bodies, e.g. []int{1, 2, 3} -> "[1,2,3]".
func compactList[T any](vals []T) string {
	parts := make([]string, 0, len(vals))
	for _, val := range vals {
		parts = append(parts, fmt.Sprint(val))
	}

	return "[" + strings.Join(parts, ",") + "]"
}
