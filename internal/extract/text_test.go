package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Bold and code", CleanText("  **Bold** and `code` "))
	assert.Equal(t, "snakecase", CleanText("_snake_case_"))
}

func TestCleanBlock(t *testing.T) {
	assert.Equal(t, "one\ntwo", CleanBlock("**one**\n\n  two  \n"))
}

func TestSplitBlocks(t *testing.T) {
	text := "first\nblock\r\n\r\n\n  \nsecond\n\n"
	blocks := SplitBlocks(text)

	assert.Equal(t, []string{"first\nblock", "second"}, blocks)
	assert.Empty(t, SplitBlocks("   \n\n"))
}

func TestListItems(t *testing.T) {
	block := `RECOMMENDED RESOURCES
1. Coursera Machine Learning
2) **Designing Data-Intensive Applications** book
- Go documentation
• tiny
plain prose line is ignored`

	assert.Equal(t, []string{
		"Coursera Machine Learning",
		"Designing Data-Intensive Applications book",
		"Go documentation",
	}, ListItems(block))
}

func TestIsHeadingLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"NEXT STEPS", true},
		{"## TIMELINE:", true},
		{"**PRACTICAL PROJECTS**", true},
		{"Next steps", false},
		{"- AWS", false},
		{"2024", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeadingLine(tt.line))
		})
	}
}
