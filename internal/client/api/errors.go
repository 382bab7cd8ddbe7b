package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/artfolio/artfolio-cli/internal/common"
)

// The three error kinds every API operation can surface:
//
//   - *ValidationError — a client-side precondition failed, no request was
//     made;
//   - *RejectedError — the backend answered with a non-success status;
//   - *NetworkError — no response was received at all.
//
// Callers match them with errors.As.

// ValidationError reports a client-side precondition failure. No network
// call has been made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return "validation failed: " + e.Message
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// RejectedError reports a non-success response from the backend. Message is
// the most specific human-readable text found in the body.
type RejectedError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("backend rejected request (status %d): %s", e.StatusCode, e.Message)
}

// Is maps the common rejection statuses onto their sentinels, so callers can
// write errors.Is(err, common.ErrUnauthorized) without inspecting the status
// code themselves.
func (e *RejectedError) Is(target error) bool {
	switch target {
	case common.ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case common.ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// NetworkError reports a transport failure: the request never produced a
// structured response.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "network error: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// TimeoutExceededError reports that bounded-retry polling gave up before the
// backend produced a result.
type TimeoutExceededError struct {
	Operation string
}

func (e *TimeoutExceededError) Error() string {
	return fmt.Sprintf("timeout exceeded waiting for %s", e.Operation)
}

const genericRejectedMessage = "request rejected by server"

// messageFields is the ordered list of conventional body fields probed for a
// human-readable error message. The order is a stable contract: the first
// field present with a non-empty string value wins, then the first element
// of non_field_errors, then a generic fallback.
var messageFields = []string{"detail", "error", "message"}

func extractMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return genericRejectedMessage
	}

	for _, field := range messageFields {
		if s, ok := payload[field].(string); ok && s != "" {
			return s
		}
	}

	if arr, ok := payload["non_field_errors"].([]any); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok && s != "" {
			return s
		}
	}

	return genericRejectedMessage
}
