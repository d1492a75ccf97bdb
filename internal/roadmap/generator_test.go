package roadmap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/llm/llmtest"
	"github.com/jonathan/career-compass/internal/types"
)

var testCareer = types.CareerRecord{
	CareerID:              "data_scientist",
	Title:                 "Data Scientist",
	KeySkills:             []string{"Python", "Statistics", "Machine Learning"},
	EducationRequirements: "Bachelor's degree in a quantitative field",
}

var testProfile = types.UserProfile{
	Interests:       "Science and Research",
	Skills:          "Python, Excel",
	ExperienceLevel: "Student/New graduate",
}

func TestGenerate_CompletionFailure(t *testing.T) {
	client := llmtest.Fail(errors.New("rate limited"))
	gen := NewGenerator(client, nil)

	resp, err := gen.Generate(context.Background(), testCareer, testProfile)

	require.Error(t, err)
	assert.Nil(t, resp)
	var completionErr *llm.CompletionError
	require.ErrorAs(t, err, &completionErr)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestGenerate_KeepsCompletionError(t *testing.T) {
	original := &llm.CompletionError{Provider: llm.ProviderGemini, Model: "m", Message: "quota exceeded"}
	gen := NewGenerator(llmtest.Fail(original), nil)

	_, err := gen.Generate(context.Background(), testCareer, testProfile)

	assert.Same(t, original, err)
}

func TestGenerate_Heuristic(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	client := llmtest.Respond(sampleResponse)
	gen := NewGenerator(client, nil)
	gen.Now = func() time.Time { return fixed }

	resp, err := gen.Generate(context.Background(), testCareer, testProfile)

	require.NoError(t, err)
	assert.Equal(t, types.SourceHeuristic, resp.Source)
	assert.Equal(t, "Data Scientist", resp.CareerTitle)
	assert.Equal(t, "Data Scientist", resp.Roadmap.Career)
	assert.Equal(t, fixed, resp.GeneratedAt)
	assert.Len(t, resp.Roadmap.LearningPhases, 3)

	prompts := client.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Career: Data Scientist")
	assert.Contains(t, prompts[0], "Python, Statistics, Machine Learning")
	assert.Contains(t, prompts[0], "SKILL GAP ANALYSIS")
}

func TestGenerate_EmptyResponseUsesDefault(t *testing.T) {
	gen := NewGenerator(llmtest.Respond("   "), nil)

	resp, err := gen.Generate(context.Background(), testCareer, testProfile)

	require.NoError(t, err)
	assert.Equal(t, types.SourceDefault, resp.Source)
	assert.Equal(t, DefaultRoadmap("Data Scientist"), resp.Roadmap)
}

func TestGenerate_UsesConfiguredTier(t *testing.T) {
	var gotTier llm.ModelTier
	var gotSystem string
	client := &llmtest.MockClient{
		GenerateWithInstructionFunc: func(_ context.Context, system, _ string, tier llm.ModelTier) (string, error) {
			gotTier = tier
			gotSystem = system
			return sampleResponse, nil
		},
	}
	gen := &Generator{Client: client, Tier: llm.TierAdvanced}

	_, err := gen.Generate(context.Background(), testCareer, testProfile)

	require.NoError(t, err)
	assert.Equal(t, llm.TierAdvanced, gotTier)
	assert.Contains(t, gotSystem, "career coach")
}

func TestBuildPrompt_MissingFields(t *testing.T) {
	prompt := BuildPrompt(types.CareerRecord{}, types.UserProfile{})

	assert.Contains(t, prompt, "Career: Unknown Career")
	assert.Contains(t, prompt, "Experience level: Entry level")
	assert.Contains(t, prompt, "Current skills: not specified")
	assert.NotContains(t, prompt, "{{")
}
