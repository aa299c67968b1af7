package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{Attempts: 3, Wait: time.Millisecond, MaxWait: 4 * time.Millisecond}
}

func failing(f Failure) MockResponse {
	return MockResponse{Err: &Error{Failure: f, Err: errors.New(string(f))}}
}

func TestRetry(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{"ok":true}`)}
	tests := []struct {
		name      string
		responses []MockResponse
		wantErr   Failure
		wantCalls int
	}{
		{"first attempt", []MockResponse{ok}, "", 1},
		{"rate limit then answer", []MockResponse{failing(FailureRateLimited), ok}, "", 2},
		{"outage every attempt", []MockResponse{failing(FailureUnavailable), failing(FailureUnavailable), failing(FailureUnavailable), ok}, FailureUnavailable, 3},
		{"truncation is final", []MockResponse{failing(FailureTruncated), ok}, FailureTruncated, 1},
		{"invalid answer asked for once more", []MockResponse{failing(FailureInvalid), failing(FailureInvalid), ok}, FailureInvalid, 2},
		{"invalid then answer", []MockResponse{failing(FailureInvalid), ok}, "", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			resp, err := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.JSONEq(t, `{"ok":true}`, string(resp.Content))
			} else {
				assert.Equal(t, tt.wantErr, FailureOf(err))
			}
			assert.Equal(t, tt.wantCalls, mock.CallCount())
		})
	}
}

func TestRetryStopsOnNonModelErrors(t *testing.T) {
	for _, err := range []error{context.Canceled, &Error{Failure: FailureUnavailable, Err: context.DeadlineExceeded}, errors.New("bug")} {
		mock := NewMockProvider(MockResponse{Err: err}, MockResponse{Content: json.RawMessage(`{}`)})
		_, got := WithRetry(mock, fastRetry()).Generate(context.Background(), Request{})
		require.ErrorIs(t, got, err)
		assert.Equal(t, 1, mock.CallCount())
	}
}

func TestRetryHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	mock := NewMockProvider(failing(FailureUnavailable), failing(FailureUnavailable))
	p := WithRetry(mock, RetryConfig{Attempts: 2, Wait: time.Hour, MaxWait: time.Hour})

	_, err := p.Generate(ctx, Request{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.CallCount())
}

func TestRetryWait(t *testing.T) {
	r := &retryingProvider{cfg: RetryConfig{Wait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond}}
	down := &Error{Failure: FailureUnavailable}

	for i := 0; i < 50; i++ {
		first := r.wait(1, down)
		assert.GreaterOrEqual(t, first, 50*time.Millisecond)
		assert.LessOrEqual(t, first, 100*time.Millisecond)
		assert.LessOrEqual(t, r.wait(6, down), 300*time.Millisecond)
	}
	assert.Equal(t, 2*time.Second, r.wait(1, &Error{Failure: FailureRateLimited, RetryAfter: 2 * time.Second}))
	assert.Equal(t, time.Duration(0), (&retryingProvider{}).wait(1, down))
}
