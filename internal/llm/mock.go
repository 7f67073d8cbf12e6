package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockReply is one canned response for the MockProvider.
type MockReply struct {
	Content json.RawMessage
	Err     error
}

// MockProvider replays canned responses in FIFO order and records every
// request. An exhausted queue returns ErrUnavailable.
type MockProvider struct {
	mu      sync.Mutex
	replies []MockReply

	// Calls records every request, in order.
	Calls []Request
}

// NewMockProvider builds a MockProvider preloaded with replies.
func NewMockProvider(replies ...MockReply) *MockProvider {
	return &MockProvider{replies: replies}
}

func (m *MockProvider) Complete(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.replies) == 0 {
		return nil, &ErrUnavailable{}
	}
	reply := m.replies[0]
	m.replies = m.replies[1:]

	if reply.Err != nil {
		return nil, reply.Err
	}
	return &Response{Content: reply.Content, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string { return "mock" }

// Queue appends another canned reply.
func (m *MockProvider) Queue(reply MockReply) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, reply)
}

// CallCount reports how many requests were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// MockEmbedder returns fixed vectors per input text. Unknown texts get the
// Default vector.
type MockEmbedder struct {
	Vectors map[string][]float32
	Default []float32
	Err     error
}

func (m *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([][]float32, len(texts))
	for i, t := range texts {
		if v, ok := m.Vectors[t]; ok {
			out[i] = v
		} else {
			out[i] = m.Default
		}
	}
	return out, nil
}
