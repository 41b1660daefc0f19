package llm

import (
	"context"
	"sync"
)

// Mock is a scripted Client for tests and local dry runs; it never calls an
// external service. Replies are consumed in order, the last one repeating.
type Mock struct {
	Replies []string
	Err     error

	mu       sync.Mutex
	requests []Request
}

func (m *Mock) Name() string { return "Mock" }

func (m *Mock) Complete(_ context.Context, req Request) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)
	if m.Err != nil {
		return "", m.Err
	}
	if len(m.Replies) == 0 {
		return "", ErrEmptyCompletion
	}
	idx := len(m.requests) - 1
	if idx >= len(m.Replies) {
		idx = len(m.Replies) - 1
	}
	return m.Replies[idx], nil
}

// Requests returns a copy of every request seen so far
func (m *Mock) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Request, len(m.requests))
	copy(out, m.requests)
	return out
}
