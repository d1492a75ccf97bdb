package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fencePattern = regexp.MustCompile("(?s)^```[A-Za-z0-9_-]*[ \t]*\n?(.*?)\n?```")

// ExtractJSON returns the first JSON object or array in a completion, without
// markdown fences, preamble or trailing prose. When the text holds no
// decodable JSON value it is returned trimmed, with ok false.
func ExtractJSON(text string) (value string, ok bool) {
	text = strings.TrimSpace(text)
	if m := fencePattern.FindStringSubmatch(text); m != nil {
		text = strings.TrimSpace(m[1])
	}

	for i := 0; i < len(text); i++ {
		if text[i] != '{' && text[i] != '[' {
			continue
		}
		var raw json.RawMessage
		if err := json.NewDecoder(strings.NewReader(text[i:])).Decode(&raw); err == nil {
			return string(raw), true
		}
	}
	return text, false
}
