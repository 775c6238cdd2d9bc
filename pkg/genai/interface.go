package genai

import "context"

// IGenAI defines the interface for the text-generation service client.
// Implementations are safe for concurrent use.
type IGenAI interface {
	// Chat sends a single-turn chat request and returns the generated text.
	Chat(ctx context.Context, req *Request) (*Response, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new text-generation client with the given configuration.
func New(cfg Config) (IGenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGenAIImpl(cfg), nil
}
