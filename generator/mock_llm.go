package generator

import (
	"context"
	"strings"
)

// MockLLM is a deterministic stand-in for local runs without a provider key.
// It keys off the system prompt to decide which stage it is serving.
type MockLLM struct{}

func (m MockLLM) Complete(_ context.Context, prompt Prompt) (string, error) {
	topic := strings.TrimPrefix(prompt.User, "Topic: ")
	if strings.Contains(prompt.System, "blog title") {
		return "# A Practical Guide to " + topic, nil
	}
	var sb strings.Builder
	sb.WriteString("## Introduction\n\n")
	sb.WriteString("This article takes a closer look at ")
	sb.WriteString(topic)
	sb.WriteString(".\n\n## Breakdown\n\n")
	sb.WriteString("- background\n- current state\n- outlook\n")
	return sb.String(), nil
}
