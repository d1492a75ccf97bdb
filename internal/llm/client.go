package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// jsonTemperature is used for GenerateJSON regardless of the configured temperature.
const jsonTemperature float32 = 0.1

var errNoCandidates = errors.New("no candidates in response")

// Client is a completion client with tiered models.
type Client interface {
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateWithInstruction sends prompt with a system instruction. An empty
	// instruction is omitted.
	GenerateWithInstruction(ctx context.Context, systemInstruction, prompt string, tier ModelTier) (string, error)
	// GenerateJSON asks for a JSON response and strips any fences or prose around it.
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	GetModel(tier ModelTier) string
	Close() error
}

// request is one completion call as handed to a provider SDK.
type request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	JSON        bool
}

// backend sends a request through one provider SDK and returns the text parts
// of the first candidate.
type backend interface {
	complete(ctx context.Context, req request) ([]string, error)
	close() error
}

// NewClient creates the client for config.Provider. apiKey is only used by
// the Gemini API provider; Vertex AI uses application default credentials.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	var (
		b   backend
		err error
	)
	switch config.Provider {
	case ProviderGemini, "":
		b, err = newGeminiBackend(ctx, apiKey)
	case ProviderVertex:
		b, err = newVertexBackend(ctx, config)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.Provider)
	}
	if err != nil {
		return nil, err
	}
	return newSDKClient(config, b), nil
}

// sdkClient implements Client over a provider backend.
type sdkClient struct {
	config  *Config
	backend backend
}

func newSDKClient(config *Config, b backend) *sdkClient {
	return &sdkClient{config: config, backend: b}
}

func (c *sdkClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.run(ctx, tier, request{Prompt: prompt})
}

func (c *sdkClient) GenerateWithInstruction(ctx context.Context, systemInstruction, prompt string, tier ModelTier) (string, error) {
	return c.run(ctx, tier, request{System: systemInstruction, Prompt: prompt})
}

func (c *sdkClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.run(ctx, tier, request{Prompt: prompt, JSON: true})
	if err != nil {
		return "", err
	}
	cleaned, _ := ExtractJSON(text)
	return cleaned, nil
}

func (c *sdkClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

func (c *sdkClient) Close() error {
	return c.backend.close()
}

// run fills in model and temperature for the tier and sends req. Every failure
// is a *CompletionError.
func (c *sdkClient) run(ctx context.Context, tier ModelTier, req request) (string, error) {
	req.Model = c.config.GetModel(tier)
	if req.Model == "" {
		return "", &CompletionError{
			Provider: c.config.Provider,
			Message:  fmt.Sprintf("no model configured for tier %s", tier),
		}
	}
	req.Temperature = c.config.temperature()
	if req.JSON {
		req.Temperature = jsonTemperature
	}

	parts, err := c.backend.complete(ctx, req)
	if err != nil {
		return "", &CompletionError{
			Provider: c.config.Provider,
			Model:    req.Model,
			Message:  "failed to generate content",
			Cause:    err,
		}
	}

	text := strings.Join(parts, "")
	if strings.TrimSpace(text) == "" {
		return "", &CompletionError{
			Provider: c.config.Provider,
			Model:    req.Model,
			Message:  "no text in response",
		}
	}
	return text, nil
}
