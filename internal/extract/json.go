package extract

import (
	"encoding/json"
	"fmt"
	"strings"
)

// TextList decodes a JSON value that is either a string or a list of strings.
// LLMs switch between the two shapes for the same field.
type TextList []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *TextList) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s = strings.TrimSpace(s); s != "" {
			*t = TextList{s}
		} else {
			*t = nil
		}
		return nil
	}

	var items []any
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("expected string or list of strings: %w", err)
	}
	list := make(TextList, 0, len(items))
	for _, item := range items {
		if text := strings.TrimSpace(fmt.Sprint(item)); text != "" && item != nil {
			list = append(list, text)
		}
	}
	*t = list
	return nil
}

// Text joins the items with newlines.
func (t TextList) Text() string {
	return strings.Join(t, "\n")
}

// Bullets joins the items as "• "-prefixed lines, or returns "" for an empty list.
func (t TextList) Bullets() string {
	lines := make([]string, 0, len(t))
	for _, item := range t {
		if item = StripMarker(item); item != "" {
			lines = append(lines, Bullet+item)
		}
	}
	return strings.Join(lines, "\n")
}
