// Package llm wraps the Gemini API and Vertex AI behind a completion Client
// with three model tiers, and builds the sectioned prompts the synthesizers send.
package llm

import "maps"

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for simple tasks: classification, short extraction
	TierLite ModelTier = "lite"
	// TierStandard is for moderate reasoning: sectioned briefs, trend reports
	TierStandard ModelTier = "standard"
	// TierAdvanced is for complex reasoning: personalised learning roadmaps
	TierAdvanced ModelTier = "advanced"
)

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGemini is the Google Gemini API (API key auth)
	ProviderGemini Provider = "gemini"
	// ProviderVertex is Gemini served through Vertex AI (project credentials)
	ProviderVertex Provider = "vertex"
)

const (
	defaultTemperature    float32 = 0.7
	defaultVertexLocation         = "us-central1"
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Models      map[ModelTier]string
	Temperature float32

	// Vertex AI only
	ProjectID string
	Location  string
}

// DefaultConfig returns the default configuration (currently Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: defaultTemperature,
	}
}

// DefaultVertexConfig returns the default Vertex AI configuration for a project.
func DefaultVertexConfig(projectID, location string) *Config {
	if location == "" {
		location = defaultVertexLocation
	}
	cfg := DefaultGeminiConfig()
	cfg.Provider = ProviderVertex
	cfg.ProjectID = projectID
	cfg.Location = location
	return cfg
}

// GetModel returns the model for tier, falling back to the standard and then
// the lite model. It returns "" when none is configured.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok && model != "" {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of the config with model set for tier.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	next := *c
	next.Models = maps.Clone(c.Models)
	if next.Models == nil {
		next.Models = map[ModelTier]string{}
	}
	next.Models[tier] = model
	return &next
}

// temperature returns the configured sampling temperature or the default.
func (c *Config) temperature() float32 {
	if c.Temperature <= 0 {
		return defaultTemperature
	}
	return c.Temperature
}
