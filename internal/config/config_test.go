package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/llm"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"provider": "vertex",
		"project_id": "career-compass-dev",
		"store": "sqlite",
		"sqlite_path": "corpus.db",
		"port": 9090,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "vertex", cfg.Provider)
	assert.Equal(t, "career-compass-dev", cfg.ProjectID)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{ invalid json }`))
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "empty is valid", cfg: Config{}},
		{name: "full", cfg: Config{Provider: "Gemini", Store: "postgres", Temperature: 0.4, Port: 8080}},
		{name: "unknown provider", cfg: Config{Provider: "openai"}, wantErr: "unknown provider"},
		{name: "unknown store", cfg: Config{Store: "firestore"}, wantErr: "unknown store"},
		{name: "temperature", cfg: Config{Temperature: 3}, wantErr: "temperature"},
		{name: "port", cfg: Config{Port: 70000}, wantErr: "port"},
		{name: "missing careers file", cfg: Config{CareersPath: "/nonexistent/careers.json"}, wantErr: "careers_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRequireCredentials(t *testing.T) {
	assert.Error(t, (&Config{}).RequireCredentials())
	assert.NoError(t, (&Config{APIKey: "key"}).RequireCredentials())
	assert.Error(t, (&Config{Provider: "vertex", APIKey: "key"}).RequireCredentials())
	assert.NoError(t, (&Config{Provider: "vertex", ProjectID: "p"}).RequireCredentials())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Provider:    "gemini",
		APIKey:      "default-key",
		Store:       "file",
		CareersPath: "data/careers.json",
		Port:        8080,
		Temperature: 0.7,
	}

	partial := Config{
		Store:      "sqlite",
		SQLitePath: "corpus.db",
	}

	merged := partial.MergeWithDefaults(defaults)

	assert.Equal(t, "sqlite", merged.Store)
	assert.Equal(t, "corpus.db", merged.SQLitePath)
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "data/careers.json", merged.CareersPath)
	assert.Equal(t, 8080, merged.Port)
	assert.InDelta(t, 0.7, merged.Temperature, 0.0001)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{Provider: "vertex", Port: 9000}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "vertex", merged.Provider)
	assert.Equal(t, 9000, merged.Port)
}

func TestLLMConfig(t *testing.T) {
	gemini := (&Config{Model: "gemini-custom", Temperature: 0.2}).LLMConfig()
	assert.Equal(t, llm.ProviderGemini, gemini.Provider)
	assert.Equal(t, "gemini-custom", gemini.GetModel(llm.TierStandard))
	assert.InDelta(t, 0.2, gemini.Temperature, 0.0001)

	vertex := (&Config{Provider: "vertex", ProjectID: "proj"}).LLMConfig()
	assert.Equal(t, llm.ProviderVertex, vertex.Provider)
	assert.Equal(t, "proj", vertex.ProjectID)
	assert.Equal(t, "us-central1", vertex.Location)
}

func TestCorpusConfig(t *testing.T) {
	cfg := Config{Store: "postgres", DatabaseURL: "postgres://localhost/cc", CareersPath: "c.json"}

	assert.Equal(t, corpus.Config{
		Kind:        corpus.KindPostgres,
		CareersPath: "c.json",
		DatabaseURL: "postgres://localhost/cc",
	}, cfg.CorpusConfig())
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvStore, "sqlite")
	t.Setenv(EnvPort, "9191")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, 9191, cfg.Port)
}

func TestFromEnv_InvalidPort(t *testing.T) {
	t.Setenv(EnvPort, "eighty")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvPort)
}

func TestResolve_Layering(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvStore, "sqlite")
	t.Setenv(EnvPort, "")
	path := writeConfig(t, `{"store": "file", "port": 9000, "verbose": true}`)

	cfg, err := Resolve(Config{Port: 7000}, path)
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.APIKey, "environment fills gaps")
	assert.Equal(t, "file", cfg.Store, "config file beats environment")
	assert.Equal(t, 7000, cfg.Port, "flags beat config file")
	assert.Equal(t, "gemini", cfg.Provider, "built-in default")
	assert.True(t, cfg.Verbose)
}

func TestResolve_InvalidResult(t *testing.T) {
	t.Setenv(EnvStore, "firestore")

	_, err := Resolve(Config{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}
