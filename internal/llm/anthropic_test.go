package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(
		AnthropicConfig{APIKey: "test-key", Model: "claude-haiku"},
		option.WithBaseURL(server.URL),
		option.WithMaxRetries(0),
	)
	require.NoError(t, err)
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":            "msg_test",
		"type":          "message",
		"role":          "assistant",
		"model":         "claude-haiku-4-5-20251001",
		"content":       []map[string]any{{"type": "text", "text": text}},
		"stop_reason":   stop,
		"stop_sequence": nil,
		"usage":         map[string]any{"input_tokens": 30, "output_tokens": 12},
	}
}

func TestAnthropicProvider_CaseWithImage(t *testing.T) {
	var body map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"urgency":"high"}`, "end_turn"))
	})
	assert.Equal(t, "claude-haiku-4-5-20251001", p.ModelID())

	resp, err := p.Generate(context.Background(), Request{
		System:    "triage",
		Case:      "What is this rash?",
		Image:     &Image{MIMEType: "image/jpeg", Data: []byte("jpeg")},
		Schema:    testSchema,
		MaxTokens: 128,
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"urgency":"high"}`, string(resp.Content))
	assert.Equal(t, 30, resp.TokensIn)
	assert.Equal(t, 12, resp.TokensOut)

	msgs := body["messages"].([]any)
	require.Len(t, msgs, 1)
	blocks := msgs[0].(map[string]any)["content"].([]any)
	require.Len(t, blocks, 2)
	assert.Equal(t, "image", blocks[0].(map[string]any)["type"])
	assert.Equal(t, "What is this rash?", blocks[1].(map[string]any)["text"])
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"urg`, "max_tokens"))
	})
	_, err := p.Generate(context.Background(), Request{Case: "x", MaxTokens: 4})
	assert.Equal(t, FailureTruncated, FailureOf(err))
}

func TestAnthropicProvider_RateLimitedHonoursRetryAfter(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Retry-After", "2")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"type":"error","error":{"type":"rate_limit_error","message":"slow"}}`)
	})
	_, err := p.Generate(context.Background(), Request{Case: "x", MaxTokens: 4})

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, FailureRateLimited, e.Failure)
	assert.Equal(t, 2*time.Second, e.RetryAfter)
}
