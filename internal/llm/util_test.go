package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "plain object", input: `{"career": "Nurse"}`, want: `{"career": "Nurse"}`, wantOK: true},
		{name: "json fence", input: "```json\n{\"phases\": []}\n```", want: `{"phases": []}`, wantOK: true},
		{name: "bare fence", input: "```\n{\"phases\": []}\n```", want: `{"phases": []}`, wantOK: true},
		{name: "other language fence", input: "```javascript\n[1, 2]\n```", want: `[1, 2]`, wantOK: true},
		{
			name:   "preamble and trailing prose",
			input:  "Here is the roadmap you asked for:\n{\"timeline\": \"6 months\"}\n\nGood luck!",
			want:   `{"timeline": "6 months"}`,
			wantOK: true,
		},
		{
			name:   "fence after preamble",
			input:  "Sure.\n```json\n{\"field\": \"Finance\"}\n```",
			want:   `{"field": "Finance"}`,
			wantOK: true,
		},
		{
			name:   "braces inside strings",
			input:  `Result: {"template": "Hello {name}!", "note": "a \"quoted\" ]"}`,
			want:   `{"template": "Hello {name}!", "note": "a \"quoted\" ]"}`,
			wantOK: true,
		},
		{
			name:   "skips bracketed prose",
			input:  "Phase [one] of the plan: {\"ok\": true}",
			want:   `{"ok": true}`,
			wantOK: true,
		},
		{name: "nested", input: `x {"a": {"b": [{"c": 1}]}} y`, want: `{"a": {"b": [{"c": 1}]}}`, wantOK: true},
		{name: "no json", input: "  SKILL GAP ANALYSIS\nLearn SQL.  ", want: "SKILL GAP ANALYSIS\nLearn SQL.", wantOK: false},
		{name: "unterminated", input: `{"a": 1`, want: `{"a": 1`, wantOK: false},
		{name: "empty", input: "", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSON(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
