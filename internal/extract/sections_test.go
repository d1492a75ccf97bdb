package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSection(t *testing.T) {
	text := `Intro line
Skill Gap Analysis
You know Python.
You lack statistics.
## Timeline
Twelve months.`

	tests := []struct {
		name    string
		section string
		want    string
	}{
		{
			name:    "stops at heading marker",
			section: "skill gap",
			want:    "You know Python.\nYou lack statistics.",
		},
		{
			name:    "case insensitive match runs to end of text",
			section: "TIMELINE",
			want:    "Twelve months.",
		},
		{
			name:    "missing section",
			section: "networking",
			want:    "",
		},
		{
			name:    "empty name",
			section: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractSection(text, tt.section))
		})
	}
}

func TestExtractSection_StopsAtBoldAndSectionWord(t *testing.T) {
	text := "Networking\nJoin meetups.\n**Projects**\nBuild a CLI."
	assert.Equal(t, "Join meetups.", ExtractSection(text, "networking"))

	text = "Networking\nJoin meetups.\nNext section follows\nignored"
	assert.Equal(t, "Join meetups.", ExtractSection(text, "networking"))
}

func TestExtractBulletPoints_ThreeValidLines(t *testing.T) {
	block := `MARKET TRENDS
- Remote work keeps growing
• Demand for cloud skills rises
* Consolidation among vendors
- abc`

	got := ExtractBulletPoints(block)
	lines := strings.Split(got, "\n")

	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, Bullet), "line %q should be normalized", line)
	}
	assert.Equal(t, "• Remote work keeps growing", lines[0])
	assert.Equal(t, "• Consolidation among vendors", lines[2])
}

func TestExtractBulletPoints_SkipsCategoryRestatements(t *testing.T) {
	block := `Emerging technologies in data
EMERGING TECHNOLOGIES:
**Market Trends**
3. SALARY TRENDS
Vector databases are mainstream`

	assert.Equal(t, "• Vector databases are mainstream", ExtractBulletPoints(block))
}

func TestExtractBulletPoints_Placeholder(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{name: "empty", block: ""},
		{name: "header only", block: "KEY COMPANIES"},
		{name: "only short lines", block: "KEY COMPANIES\n- abc\n- x\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Placeholder, ExtractBulletPoints(tt.block))
		})
	}
}

func TestIsCategoryHeading(t *testing.T) {
	assert.True(t, IsCategoryHeading("Future Outlook"))
	assert.True(t, IsCategoryHeading("## KEY COMPANIES:"))
	assert.True(t, IsCategoryHeading("7. Key Companies"))
	assert.False(t, IsCategoryHeading("Key companies are hiring"))
	assert.False(t, IsCategoryHeading(""))
}
