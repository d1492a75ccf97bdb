// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/llm"
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values come from the environment, CLI flags
// or defaults.
type Config struct {
	// Completion provider
	Provider    string  `json:"provider,omitempty"`    // "gemini" or "vertex"
	APIKey      string  `json:"api_key,omitempty"`     // Gemini API key
	ProjectID   string  `json:"project_id,omitempty"`  // Google Cloud project (vertex)
	Location    string  `json:"location,omitempty"`    // Google Cloud region (vertex)
	Model       string  `json:"model,omitempty"`       // Overrides the standard-tier model
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature (0-2)

	// Corpus
	Store       string `json:"store,omitempty"`        // "file", "postgres" or "sqlite"
	CareersPath string `json:"careers_path,omitempty"` // careers.json for the file store
	MentorsPath string `json:"mentors_path,omitempty"` // mentors.json for the file store
	SQLitePath  string `json:"sqlite_path,omitempty"`  // Database file for the sqlite store
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Behavior
	Port    int    `json:"port,omitempty"`    // HTTP port for serve
	Period  string `json:"period,omitempty"`  // Default trends period
	Verbose bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Credentials are not required here; commands that call the model check them.
func (c *Config) Validate() error {
	switch llm.Provider(strings.ToLower(c.Provider)) {
	case "", llm.ProviderGemini, llm.ProviderVertex:
	default:
		return fmt.Errorf("config error: unknown provider %q (expected gemini or vertex)", c.Provider)
	}

	switch strings.ToLower(c.Store) {
	case "", corpus.KindFile, corpus.KindPostgres, corpus.KindSQLite:
	default:
		return fmt.Errorf("config error: unknown store %q (expected file, postgres or sqlite)", c.Store)
	}

	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("config error: 'temperature' must be between 0 and 2")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	for name, path := range map[string]string{"careers_path": c.CareersPath, "mentors_path": c.MentorsPath} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: %s file not found: %s", name, path)
		}
	}

	return nil
}

// RequireCredentials checks that the selected provider can authenticate.
func (c *Config) RequireCredentials() error {
	if llm.Provider(strings.ToLower(c.Provider)) == llm.ProviderVertex {
		if c.ProjectID == "" {
			return fmt.Errorf("GOOGLE_CLOUD_PROJECT is required for the vertex provider")
		}
		return nil
	}
	if c.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file and environment values beneath CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	fill := func(field *string, def string) {
		if *field == "" {
			*field = def
		}
	}
	fill(&result.Provider, defaults.Provider)
	fill(&result.APIKey, defaults.APIKey)
	fill(&result.ProjectID, defaults.ProjectID)
	fill(&result.Location, defaults.Location)
	fill(&result.Model, defaults.Model)
	fill(&result.Store, defaults.Store)
	fill(&result.CareersPath, defaults.CareersPath)
	fill(&result.MentorsPath, defaults.MentorsPath)
	fill(&result.SQLitePath, defaults.SQLitePath)
	fill(&result.DatabaseURL, defaults.DatabaseURL)
	fill(&result.Period, defaults.Period)

	if result.Temperature == 0 {
		result.Temperature = defaults.Temperature
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LLMConfig returns the completion client configuration.
func (c *Config) LLMConfig() *llm.Config {
	var cfg *llm.Config
	if llm.Provider(strings.ToLower(c.Provider)) == llm.ProviderVertex {
		cfg = llm.DefaultVertexConfig(c.ProjectID, c.Location)
	} else {
		cfg = llm.DefaultGeminiConfig()
	}
	if c.Model != "" {
		cfg = cfg.WithModel(llm.TierStandard, c.Model)
	}
	if c.Temperature > 0 {
		cfg.Temperature = c.Temperature
	}
	return cfg
}

// CorpusConfig returns the corpus store configuration.
func (c *Config) CorpusConfig() corpus.Config {
	return corpus.Config{
		Kind:        c.Store,
		CareersPath: c.CareersPath,
		MentorsPath: c.MentorsPath,
		SQLitePath:  c.SQLitePath,
		DatabaseURL: c.DatabaseURL,
	}
}
