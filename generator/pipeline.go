package generator

import (
	"context"
	"errors"
	"log/slog"
	"strings"
)

// Pipeline runs the fixed two-step generation sequence: title, then content.
// There is no branching and no retry; the first failing step aborts the run.
type Pipeline struct {
	llm LLMClient
}

// NewPipeline wires the runner to a model client.
func NewPipeline(llm LLMClient) (*Pipeline, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	return &Pipeline{llm: llm}, nil
}

// Run executes both steps for a topic and returns the finished blog.
// Errors propagate unchanged; a failed run never yields a partial result.
func (p *Pipeline) Run(ctx context.Context, topic string) (Blog, error) {
	if strings.TrimSpace(topic) == "" {
		return Blog{}, ErrEmptyTopic
	}

	state := NewBlogState(topic)

	state, err := p.createTitle(ctx, state)
	if err != nil {
		return Blog{}, err
	}

	state, err = p.createContent(ctx, state)
	if err != nil {
		return Blog{}, err
	}

	return state.Blog(), nil
}

// createTitle derives the title from the topic. Model output is kept verbatim.
func (p *Pipeline) createTitle(ctx context.Context, state BlogState) (BlogState, error) {
	slog.Debug("generating title", slog.String("topic", state.Topic))
	raw, err := p.llm.Complete(ctx, BuildTitlePrompt(state.Topic))
	if err != nil {
		return state, err
	}
	return state.WithTitle(raw), nil
}

// createContent derives the markdown body. Runs only after the title step.
func (p *Pipeline) createContent(ctx context.Context, state BlogState) (BlogState, error) {
	slog.Debug("generating content", slog.String("topic", state.Topic))
	raw, err := p.llm.Complete(ctx, BuildContentPrompt(state.Topic))
	if err != nil {
		return state, err
	}
	return state.WithContent(raw), nil
}
