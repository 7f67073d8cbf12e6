// Package llm abstracts the external generative and embedding capabilities
// behind narrow contracts so the engine never depends on a concrete vendor
// SDK. Providers are long-lived, explicitly constructed singletons wired at
// startup; tests substitute the mock.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is the contract for the generative capability. Implementations
// send one request and return exactly one structured response.
type Provider interface {
	// Complete sends the request and returns the model's output. When
	// req.Schema is set the provider uses its native structured-output
	// mechanism and the returned Content is schema-validated JSON.
	Complete(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Embedder is the contract for the embedding capability. One input span
// per output vector, same order.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Request is a single round trip to the generative capability.
type Request struct {
	// System sets the model's role and hard constraints.
	System string

	// Messages are the ordered, role-tagged conversation turns. Single-turn
	// requests (the common case here) carry one user message.
	Messages []Message

	// Schema, when set, declares the required JSON output shape. The
	// provider both requests and validates conformance.
	Schema *Schema

	// Temperature is the sampling randomness, 0.0–1.0. Zero means
	// deterministic where the vendor supports it.
	Temperature float64

	// MaxTokens bounds the response size. Zero uses the provider default.
	MaxTokens int
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role tags the sender of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must satisfy.
type Schema struct {
	// Name identifies the schema, kebab-case ("vocab-puzzle").
	Name string

	// Description tells the model what the shape represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response is the model's output for one request.
type Response struct {
	// Content is the raw output. Schema-validated JSON when the request
	// carried a schema, free text otherwise. Either way the caller still
	// owns sanitization; validation checks shape, not content.
	Content json.RawMessage

	// Model is the model that actually served the request.
	Model string

	// Usage reports token consumption, zero when the vendor omits it.
	Usage Usage
}

// Usage is per-request token accounting.
type Usage struct {
	InputTokens  int
	OutputTokens int
}

// UserMessage is a convenience constructor for the common single-turn case.
func UserMessage(content string) []Message {
	return []Message{{Role: RoleUser, Content: content}}
}
