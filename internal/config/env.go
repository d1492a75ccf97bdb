package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvProvider    = "LLM_PROVIDER"
	EnvProjectID   = "GOOGLE_CLOUD_PROJECT"
	EnvLocation    = "GOOGLE_CLOUD_LOCATION"
	EnvModel       = "LLM_MODEL"
	EnvStore       = "CAREERCOMPASS_STORE"
	EnvCareersPath = "CAREERCOMPASS_CAREERS"
	EnvMentorsPath = "CAREERCOMPASS_MENTORS"
	EnvSQLitePath  = "CAREERCOMPASS_SQLITE"
	EnvDatabaseURL = "DATABASE_URL"
	EnvPort        = "PORT"
)

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// FromEnv builds a Config from environment variables. Unset variables leave
// their fields empty.
func FromEnv() (Config, error) {
	cfg := Config{
		Provider:    os.Getenv(EnvProvider),
		APIKey:      os.Getenv(EnvAPIKey),
		ProjectID:   os.Getenv(EnvProjectID),
		Location:    os.Getenv(EnvLocation),
		Model:       os.Getenv(EnvModel),
		Store:       os.Getenv(EnvStore),
		CareersPath: os.Getenv(EnvCareersPath),
		MentorsPath: os.Getenv(EnvMentorsPath),
		SQLitePath:  os.Getenv(EnvSQLitePath),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
	}

	if portStr := os.Getenv(EnvPort); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvPort, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Defaults returns the built-in fallback values.
func Defaults() Config {
	return Config{
		Provider: "gemini",
		Store:    "file",
		Port:     DefaultPort,
	}
}

// Resolve layers flags over a config file over the environment over Defaults.
// An empty path skips the file layer.
func Resolve(flags Config, path string) (Config, error) {
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}
	base := env.MergeWithDefaults(Defaults())

	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		base = fileCfg.MergeWithDefaults(base)
		base.Verbose = base.Verbose || fileCfg.Verbose
	}

	merged := flags.MergeWithDefaults(base)
	merged.Verbose = flags.Verbose || base.Verbose
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
