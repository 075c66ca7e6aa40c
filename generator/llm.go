package generator

import "context"

// LLMClient abstracts the hosted completion API so implementations can be swapped or mocked.
type LLMClient interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}

// LLMSettings carries the explicit configuration for a concrete client.
// Everything is passed in here; clients never read process environment themselves.
type LLMSettings struct {
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}
