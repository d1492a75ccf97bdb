// Package types provides type definitions for structured data used throughout the career-compass system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UserProfile holds the questionnaire answers used for matching and synthesis.
// Every field is optional; absent answers behave as empty.
type UserProfile struct {
	Interests        string     `json:"interests,omitempty"`
	FavoriteSubjects StringList `json:"favorite_subjects,omitempty"`
	Activities       StringList `json:"activities,omitempty"`
	Strengths        StringList `json:"strengths,omitempty"`
	FutureGoals      string     `json:"future_goals,omitempty"`
	Skills           string     `json:"skills,omitempty"`
	ExperienceLevel  string     `json:"experience_level,omitempty"`
	Education        string     `json:"education,omitempty"`
}

// StringList is a multi-choice answer. It decodes from either a comma-separated
// string or a JSON array of strings.
type StringList []string

// UnmarshalJSON accepts null, "a, b, c" or ["a", "b", "c"].
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" || trimmed == "" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "\"") {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid string answer: %w", err)
		}
		*l = SplitList(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("answer must be a string or an array of strings: %w", err)
	}
	*l = items
	return nil
}

// Tokens returns the answers as lowercase, trimmed, de-duplicated tokens in
// their original order.
func (l StringList) Tokens() []string {
	tokens := make([]string, 0, len(l))
	seen := make(map[string]bool, len(l))
	for _, item := range l {
		token := strings.ToLower(strings.TrimSpace(item))
		if token == "" || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}

// SplitList splits a comma-separated answer into trimmed, non-empty items.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	return items
}
