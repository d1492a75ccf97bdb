package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend records requests and replies with fixed parts.
type fakeBackend struct {
	parts    []string
	err      error
	requests []request
	closed   bool
}

func (f *fakeBackend) complete(_ context.Context, req request) ([]string, error) {
	f.requests = append(f.requests, req)
	return f.parts, f.err
}

func (f *fakeBackend) close() error {
	f.closed = true
	return nil
}

func TestSDKClient_GenerateWithInstruction(t *testing.T) {
	backend := &fakeBackend{parts: []string{"SKILL GAP ", "ANALYSIS"}}
	client := newSDKClient(DefaultGeminiConfig(), backend)

	text, err := client.GenerateWithInstruction(context.Background(), "be brief", "roadmap for nurse", TierAdvanced)
	require.NoError(t, err)
	assert.Equal(t, "SKILL GAP ANALYSIS", text)

	require.Len(t, backend.requests, 1)
	req := backend.requests[0]
	assert.Equal(t, "gemini-2.5-pro", req.Model)
	assert.Equal(t, "be brief", req.System)
	assert.Equal(t, "roadmap for nurse", req.Prompt)
	assert.Equal(t, defaultTemperature, req.Temperature)
	assert.False(t, req.JSON)
}

func TestSDKClient_GenerateJSON(t *testing.T) {
	backend := &fakeBackend{parts: []string{"```json\n{\"field\": \"Finance\"}\n```"}}
	client := newSDKClient(DefaultGeminiConfig(), backend)

	text, err := client.GenerateJSON(context.Background(), "trends", TierStandard)
	require.NoError(t, err)
	assert.Equal(t, `{"field": "Finance"}`, text)

	req := backend.requests[0]
	assert.True(t, req.JSON)
	assert.Equal(t, jsonTemperature, req.Temperature)
	assert.Empty(t, req.System)
}

func TestSDKClient_Errors(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		backend *fakeBackend
		wantMsg string
	}{
		{
			name:    "no model for tier",
			config:  &Config{Provider: ProviderVertex},
			backend: &fakeBackend{parts: []string{"x"}},
			wantMsg: "no model configured for tier lite",
		},
		{
			name:    "sdk failure",
			config:  DefaultGeminiConfig(),
			backend: &fakeBackend{err: errors.New("quota exceeded")},
			wantMsg: "failed to generate content (gemini/gemini-2.5-flash-lite): quota exceeded",
		},
		{
			name:    "blank response",
			config:  DefaultGeminiConfig(),
			backend: &fakeBackend{parts: []string{"  ", "\n"}},
			wantMsg: "no text in response",
		},
		{
			name:    "no candidates",
			config:  DefaultGeminiConfig(),
			backend: &fakeBackend{err: errNoCandidates},
			wantMsg: "no candidates in response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newSDKClient(tt.config, tt.backend)
			_, err := client.GenerateContent(context.Background(), "prompt", TierLite)
			require.Error(t, err)

			var completionErr *CompletionError
			require.ErrorAs(t, err, &completionErr)
			assert.Equal(t, tt.config.Provider, completionErr.Provider)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSDKClient_GetModelAndClose(t *testing.T) {
	backend := &fakeBackend{}
	client := newSDKClient(DefaultGeminiConfig(), backend)

	assert.Equal(t, "gemini-2.5-flash", client.GetModel(TierStandard))
	require.NoError(t, client.Close())
	assert.True(t, backend.closed)
}

func TestNewClient_Validation(t *testing.T) {
	ctx := context.Background()

	_, err := NewClient(ctx, DefaultGeminiConfig(), "")
	assert.ErrorContains(t, err, "API key is required")

	_, err = NewClient(ctx, DefaultVertexConfig("", ""), "")
	assert.ErrorContains(t, err, "project ID is required")

	_, err = NewClient(ctx, &Config{Provider: "openai"}, "key")
	assert.ErrorContains(t, err, `unknown LLM provider "openai"`)
}
