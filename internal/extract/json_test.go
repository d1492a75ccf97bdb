package extract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextList_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TextList
		wantErr bool
	}{
		{name: "string", input: `"AI copilots"`, want: TextList{"AI copilots"}},
		{name: "blank string", input: `"  "`, want: nil},
		{name: "list", input: `["Rust", " Go ", ""]`, want: TextList{"Rust", "Go"}},
		{name: "object", input: `{"a": 1}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TextList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextList_Bullets(t *testing.T) {
	list := TextList{"- Rust adoption", "**Go** services"}
	assert.Equal(t, "• Rust adoption\n• Go services", list.Bullets())
	assert.Equal(t, "", TextList{}.Bullets())
	assert.Equal(t, "a\nb", TextList{"a", "b"}.Text())
}
