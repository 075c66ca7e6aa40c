package tracing

import (
	"context"
	"log/slog"
	"time"

	"auto_blog_generator/generator"
)

// TracedLLM decorates an LLMClient so every completion is recorded as a run.
// The wrapped client's result and error pass through unchanged.
type TracedLLM struct {
	inner  generator.LLMClient
	client *Client
}

// WrapLLM attaches telemetry to a model client. A nil tracing client
// returns the inner client untouched.
func WrapLLM(inner generator.LLMClient, client *Client) generator.LLMClient {
	if client == nil {
		return inner
	}
	return &TracedLLM{inner: inner, client: client}
}

func (t *TracedLLM) Complete(ctx context.Context, prompt generator.Prompt) (string, error) {
	start := time.Now()
	out, err := t.inner.Complete(ctx, prompt)

	run := Run{
		Name:      "completion",
		Inputs:    map[string]string{"system": prompt.System, "user": prompt.User},
		StartTime: start,
		EndTime:   time.Now(),
	}
	if err != nil {
		run.Error = err.Error()
	} else {
		run.Outputs = map[string]string{"text": out}
	}
	if recErr := t.client.Record(ctx, run); recErr != nil {
		slog.Warn("failed to record llm run", slog.String("error", recErr.Error()))
	}

	return out, err
}
