package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Failure classifies why a model call produced no usable consultation.
type Failure string

const (
	FailureUnavailable Failure = "unavailable"
	FailureRateLimited Failure = "rate limited"
	FailureInvalid     Failure = "invalid response"
	FailureTruncated   Failure = "truncated"
)

// Error is the error every Provider in this package returns for a vendor
// failure. Content holds the rejected output for invalid and truncated
// answers.
type Error struct {
	Failure    Failure
	RetryAfter time.Duration
	Content    json.RawMessage
	Err        error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return "model " + string(e.Failure)
	}
	return fmt.Sprintf("model %s: %v", e.Failure, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// FailureOf returns the failure class of err, or "" when err did not come
// from a provider.
func FailureOf(err error) Failure {
	var e *Error
	if errors.As(err, &e) {
		return e.Failure
	}
	return ""
}

func invalidResponse(raw json.RawMessage, err error) *Error {
	return &Error{Failure: FailureInvalid, Content: raw, Err: err}
}

func truncated(raw json.RawMessage) *Error {
	return &Error{Failure: FailureTruncated, Content: raw}
}

// apiFailure wraps a vendor API error by HTTP status. Anything that is not
// a 429 counts as the vendor being unavailable.
func apiFailure(status int, header http.Header, err error) *Error {
	if status != http.StatusTooManyRequests {
		return &Error{Failure: FailureUnavailable, Err: err}
	}
	e := &Error{Failure: FailureRateLimited, Err: err}
	if header != nil {
		if secs, convErr := strconv.Atoi(header.Get("Retry-After")); convErr == nil && secs > 0 {
			e.RetryAfter = time.Duration(secs) * time.Second
		}
	}
	return e
}
