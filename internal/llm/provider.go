package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single boundary between the app and a generative
// language service. The tutor modes build a Request, call Generate,
// and receive text or schema-conforming JSON back.
type Provider interface {
	// Generate sends one prompt to the service and blocks until the
	// response arrives or ctx is done. When the request carries a
	// Schema, the returned Content is JSON already validated against
	// that schema; otherwise Content is the raw generated text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System is the system prompt establishing the tutor's role.
	System string

	// Messages is the conversation. Every mode in this app is
	// single-turn, so this holds exactly one user message.
	Messages []Message

	// Schema, when set, is the JSON structure the response must
	// conform to. The provider passes it to the service's native
	// structured-output mechanism and validates the result. Nil means
	// freeform text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero value means the
	// provider default.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON contract expected from the service.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "quiz-question".
	Name string

	// Description tells the service what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the service's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
