package generator

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Timeout for a single completion round-trip. The pipeline itself enforces
// no deadline; this is the only timeout in the call chain.
const completionTimeout = 60 * time.Second

// Known OpenAI-compatible gateways. Groq and DeepSeek speak the same chat
// completions protocol behind their own base URLs.
const (
	groqBaseURL = "https://api.groq.com/openai/v1"
)

// OpenAILLM implements LLMClient using the official openai-go SDK (chat completions).
type OpenAILLM struct {
	model string
	opts  []option.RequestOption
}

// NewOpenAILLM validates the settings and builds a client for the selected provider.
func NewOpenAILLM(cfg *LLMSettings) (*OpenAILLM, error) {
	if cfg == nil {
		return nil, errors.New("llm config is nil")
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: api key missing; provide llm.api_key or llm.api_key_env", ErrModelUnavailable)
	}
	if cfg.Model == "" {
		return nil, errors.New("llm model is required")
	}

	baseURL := cfg.BaseURL
	switch cfg.Provider {
	case "openai":
		// default endpoint unless overridden
	case "groq":
		if baseURL == "" {
			baseURL = groqBaseURL
		}
	case "deepseek":
		if baseURL == "" {
			return nil, errors.New("llm provider deepseek requires base_url (OpenAI-compatible endpoint)")
		}
	default:
		return nil, fmt.Errorf("llm provider %s not supported", cfg.Provider)
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(&http.Client{Timeout: completionTimeout}),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &OpenAILLM{model: cfg.Model, opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, prompt Prompt) (string, error) {
	client := openai.NewClient(o.opts...)

	msgs := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(prompt.System),
		openai.UserMessage(prompt.User),
	}

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(o.model),
		Messages: msgs,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choices", ErrModelUnavailable)
	}
	return resp.Choices[0].Message.Content, nil
}
