package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// EndpointConfig limits one route. A Path ending in "/" matches every path
// under it. Limit requests are allowed per Window, refilled evenly; Burst is the
// bucket size and defaults to Limit.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// LoadConfig loads rate limiting configuration from RATE_LIMIT_* environment
// variables. Unset or unparsable values fall back to the defaults.
func LoadConfig() *Config {
	if !envOr("RATE_LIMIT_ENABLED", true, strconv.ParseBool) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    envOr("RATE_LIMIT_DEFAULT_LIMIT", 1000, strconv.Atoi),
		DefaultWindow:   envOr("RATE_LIMIT_DEFAULT_WINDOW", time.Minute, time.ParseDuration),
		CleanupInterval: envOr("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute, time.ParseDuration),
		Whitelist:       parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
		Blacklist:       parseIPList(os.Getenv("RATE_LIMIT_BLACKLIST")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Completion-backed
		{Path: "/career-plan", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/career-plan/stream", Method: "POST", Limit: 10, Window: time.Hour, Burst: 2},
		{Path: "/generate-learning-roadmap", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/learning-roadmap/", Method: "GET", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/get-industry-trends", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/industry-trends/", Method: "GET", Limit: 30, Window: time.Hour, Burst: 5},

		// Corpus scoring
		{Path: "/recommend-careers", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/match-mentors", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
	}
}

func envOr[T any](key string, def T, parse func(string) (T, error)) T {
	value := os.Getenv(key)
	if value == "" {
		return def
	}
	parsed, err := parse(value)
	if err != nil {
		return def
	}
	return parsed
}

// parseIPList parses a comma- or space-separated list of client IPs.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.FieldsFunc(list, func(r rune) bool { return r == ',' || unicode.IsSpace(r) }) {
		result[ip] = true
	}
	return result
}
