package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned answer. A non-nil Err is returned instead.
type MockResponse struct {
	Content json.RawMessage
	Err     error
}

// MockProvider answers from a FIFO queue and records every request. It
// backs the "mock" provider for offline runs.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned answer, or an unavailable error once the
// queue is drained.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, req)
	if len(m.responses) == 0 {
		return nil, &Error{Failure: FailureUnavailable}
	}

	next := m.responses[0]
	m.responses = m.responses[1:]
	if next.Err != nil {
		return nil, next.Err
	}
	return &Response{Content: next.Content, Model: ProviderMock}, nil
}

func (m *MockProvider) ModelID() string {
	return ProviderMock
}

func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// Calls returns a copy of the recorded requests.
func (m *MockProvider) Calls() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.calls...)
}
