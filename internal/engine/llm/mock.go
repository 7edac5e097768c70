package llm

import (
	"context"
)

// MockClient is a test double for llm.Client.
type MockClient struct {
	Result string
	Err    error

	// Prompts records every prompt Draft was called with.
	Prompts []string
}

// Draft records the prompt and returns the configured result and error.
func (m *MockClient) Draft(_ context.Context, prompt string) (string, error) {
	m.Prompts = append(m.Prompts, prompt)
	return m.Result, m.Err
}
