// Package prompts holds the completion prompts for the roadmap and trends
// synthesizers. Each prompt set is a JSON file embedded at compile time.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
)

//go:embed *.json
var files embed.FS

// Embedded prompt sets.
const (
	Roadmap = "roadmap.json"
	Trends  = "trends.json"
)

// Set is a system instruction plus a context template with {{.Key}} placeholders.
type Set struct {
	System  string `json:"system"`
	Context string `json:"context"`
}

var (
	mu     sync.Mutex
	loaded = map[string]Set{}
)

// Load returns the named prompt set. Both the system and context keys are required.
func Load(name string) (Set, error) {
	mu.Lock()
	defer mu.Unlock()

	if set, ok := loaded[name]; ok {
		return set, nil
	}

	data, err := files.ReadFile(name)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read prompt file %s: %w", name, err)
	}
	var set Set
	if err := json.Unmarshal(data, &set); err != nil {
		return Set{}, fmt.Errorf("failed to parse prompt file %s: %w", name, err)
	}
	switch {
	case strings.TrimSpace(set.System) == "":
		return Set{}, fmt.Errorf("prompt file %s has no system instruction", name)
	case strings.TrimSpace(set.Context) == "":
		return Set{}, fmt.Errorf("prompt file %s has no context template", name)
	}

	loaded[name] = set
	return set, nil
}

// MustLoad is Load for the embedded sets, which are known to be valid.
func MustLoad(name string) Set {
	set, err := Load(name)
	if err != nil {
		panic(err)
	}
	return set
}

// Render fills the context template. Placeholders without a value are left in place.
func (s Set) Render(data map[string]string) string {
	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, 2*len(keys))
	for _, key := range keys {
		pairs = append(pairs, "{{."+key+"}}", data[key])
	}
	return strings.NewReplacer(pairs...).Replace(s.Context)
}

// Placeholders lists the distinct {{.Key}} names in the context template, in
// order of first use.
func (s Set) Placeholders() []string {
	var names []string
	seen := map[string]bool{}
	rest := s.Context
	for {
		start := strings.Index(rest, "{{.")
		if start < 0 {
			return names
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			return names
		}
		name := rest[start+3 : start+end]
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		rest = rest[start+end+2:]
	}
}
