// Package llmtest provides a configurable llm.Client for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/jonathan/career-compass/internal/llm"
)

// MockClient implements llm.Client with overridable functions. Unset functions
// return an empty response. Prompts are recorded for assertions.
type MockClient struct {
	GenerateContentFunc         func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateWithInstructionFunc func(ctx context.Context, systemInstruction, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc            func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GetModelFunc                func(tier llm.ModelTier) string
	CloseFunc                   func() error

	mu      sync.Mutex
	prompts []string
}

// Respond returns a MockClient whose every generation call returns text.
func Respond(text string) *MockClient {
	respond := func(context.Context, string, llm.ModelTier) (string, error) { return text, nil }
	return &MockClient{
		GenerateContentFunc: respond,
		GenerateWithInstructionFunc: func(ctx context.Context, _ string, prompt string, tier llm.ModelTier) (string, error) {
			return respond(ctx, prompt, tier)
		},
		GenerateJSONFunc: respond,
	}
}

// Fail returns a MockClient whose every generation call fails with err.
func Fail(err error) *MockClient {
	fail := func(context.Context, string, llm.ModelTier) (string, error) { return "", err }
	return &MockClient{
		GenerateContentFunc: fail,
		GenerateWithInstructionFunc: func(ctx context.Context, _ string, prompt string, tier llm.ModelTier) (string, error) {
			return fail(ctx, prompt, tier)
		},
		GenerateJSONFunc: fail,
	}
}

func (m *MockClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.record(prompt)
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
	return "", nil
}

func (m *MockClient) GenerateWithInstruction(ctx context.Context, systemInstruction, prompt string, tier llm.ModelTier) (string, error) {
	m.record(prompt)
	if m.GenerateWithInstructionFunc != nil {
		return m.GenerateWithInstructionFunc(ctx, systemInstruction, prompt, tier)
	}
	return "", nil
}

func (m *MockClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	m.record(prompt)
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockClient) GetModel(tier llm.ModelTier) string {
	if m.GetModelFunc != nil {
		return m.GetModelFunc(tier)
	}
	return "mock-model"
}

func (m *MockClient) Close() error {
	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// Prompts returns the prompts received so far.
func (m *MockClient) Prompts() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.prompts...)
}

func (m *MockClient) record(prompt string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prompts = append(m.prompts, prompt)
}

var _ llm.Client = (*MockClient)(nil)
