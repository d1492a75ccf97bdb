package llm

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSectionPrompt_ListsHeadingsInOrder(t *testing.T) {
	prompt := BuildSectionPrompt(RoadmapSchema(), "Career: Data Scientist")

	gap := strings.Index(prompt, "1. SKILL GAP ANALYSIS (required)")
	phases := strings.Index(prompt, "2. LEARNING PHASES (required)")
	next := strings.Index(prompt, "7. NEXT STEPS -")
	require.GreaterOrEqual(t, gap, 0)
	require.Greater(t, phases, gap)
	require.Greater(t, next, phases)

	assert.Contains(t, prompt, "Do not use markdown emphasis")
	assert.True(t, strings.HasSuffix(prompt, "Career: Data Scientist\n\"\"\"\n"))
}

func TestSchemas_SectionCounts(t *testing.T) {
	assert.Len(t, RoadmapSchema().Sections, 7)
	assert.Equal(t, []string{
		"EMERGING TECHNOLOGIES",
		"MARKET TRENDS",
		"SKILL DEMANDS",
		"INDUSTRY NEWS",
		"FUTURE OUTLOOK",
		"SALARY TRENDS",
		"KEY COMPANIES",
	}, TrendsSchema().Headings())
}

func TestCompletionError(t *testing.T) {
	cause := errors.New("quota exceeded")
	err := &CompletionError{Provider: ProviderGemini, Model: "gemini-2.5-pro", Message: "failed to generate content", Cause: cause}

	assert.Equal(t, "failed to generate content (gemini/gemini-2.5-pro): quota exceeded", err.Error())
	assert.ErrorIs(t, err, cause)

	var target *CompletionError
	assert.True(t, errors.As(error(err), &target))
	assert.Equal(t, "completion failed", (&CompletionError{}).Error())
}
