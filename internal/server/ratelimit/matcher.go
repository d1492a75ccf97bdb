package ratelimit

import (
	"strings"
)

// MatchEndpoint finds the configuration for a request path and method, or nil.
// An exact path wins; otherwise the longest configured path ending in "/" that
// prefixes the request path is used ("/learning-roadmap/" matches
// "/learning-roadmap/data_scientist"). Methods compare case-insensitively.
func MatchEndpoint(path string, method string, configs []EndpointConfig) *EndpointConfig {
	method = strings.ToUpper(method)

	// Health checks are never limited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{Path: path, Method: method}
	}

	var best *EndpointConfig
	for i := range configs {
		config := &configs[i]
		if !strings.EqualFold(config.Method, method) {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			if best == nil || len(config.Path) > len(best.Path) {
				best = config
			}
		}
	}
	return best
}
