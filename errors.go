package smartlead

import (
	"errors"
	"fmt"
)

var (
	ErrMissingAPIKey    = errors.New("smartlead: api key is required")
	ErrRequestFailed    = errors.New("smartlead: request failed")
	ErrAPIError         = errors.New("smartlead: api error")
	ErrDecodeResponse   = errors.New("smartlead: failed to decode response")
	ErrCreateRequest    = errors.New("smartlead: failed to create request")
	ErrEncodeBody       = errors.New("smartlead: failed to encode request body")
	ErrResponseTooLarge = errors.New("smartlead: response body too large")
)

// APIError is returned whenever the upstream answers with a non-2xx
// status. Body carries the response verbatim so callers can inspect
// whatever the service reported.
type APIError struct {
	StatusCode int
	Body       string
	RequestID  string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("smartlead: upstream returned status %d: %s", e.StatusCode, e.Body)
	}

	return fmt.Sprintf("smartlead: upstream returned status %d", e.StatusCode)
}

func (e *APIError) Is(target error) bool {
	return errors.Is(target, ErrAPIError)
}

func (e *APIError) Unwrap() error {
	return ErrAPIError
}

func NewAPIError(statusCode int, body, requestID string) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Body:       body,
		RequestID:  requestID,
	}
}

func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}

	return nil, false
}
