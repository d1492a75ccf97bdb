package server

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/llm/llmtest"
	"github.com/jonathan/career-compass/internal/types"
)

const roadmapText = `SKILL GAP ANALYSIS
You know Python but need data structures and system design.

LEARNING PHASES
Phase 1: Foundations (3 months): Core programming and Git
Phase 2: Projects (3 months): Build and ship two applications

RECOMMENDED RESOURCES
- CS50 course
- Clean Code book

TIMELINE
Six months to a junior role.

PRACTICAL PROJECTS
- Personal portfolio site

NETWORKING
Join local developer meetups.`

func TestHandleGenerateRoadmap(t *testing.T) {
	client := llmtest.Respond(roadmapText)
	s := newTestServer(t, testCorpus(), client)

	rec := do(t, s, http.MethodPost, "/generate-learning-roadmap",
		`{"career_id": "software_developer", "profile": {"skills": "Python"}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[types.RoadmapResponse](t, rec)
	assert.Equal(t, "Software Developer", resp.CareerTitle)
	assert.Equal(t, "Software Developer", resp.Roadmap.Career)
	assert.NotEmpty(t, resp.Roadmap.LearningPhases)
	assert.NotEqual(t, types.SourceDefault, resp.Source)

	prompts := client.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Current skills: Python")
}

func TestHandleGenerateRoadmap_InlineCareer(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Respond(""))

	rec := do(t, s, http.MethodPost, "/generate-learning-roadmap", `{"career": {"title": "Beekeeper"}}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.RoadmapResponse](t, rec)
	assert.Equal(t, "Beekeeper", resp.CareerTitle)
	assert.Equal(t, types.SourceDefault, resp.Source)
	assert.NotEmpty(t, resp.Roadmap.Resources)
}

func TestHandleGenerateRoadmap_Errors(t *testing.T) {
	tests := []struct {
		name   string
		client llm.Client
		body   string
		status int
	}{
		{name: "no career", client: llmtest.Respond(""), body: `{"profile": {}}`, status: http.StatusBadRequest},
		{name: "unknown career", client: llmtest.Respond(""), body: `{"career_id": "astronaut"}`, status: http.StatusNotFound},
		{
			name:   "completion failure",
			client: llmtest.Fail(&llm.CompletionError{Provider: llm.ProviderGemini, Message: "quota exceeded"}),
			body:   `{"career_id": "software_developer"}`,
			status: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, testCorpus(), tt.client)
			rec := do(t, s, http.MethodPost, "/generate-learning-roadmap", tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHandleRoadmapForCareer_UsesDefaultProfile(t *testing.T) {
	client := llmtest.Respond(roadmapText)
	s := newTestServer(t, testCorpus(), client)

	rec := do(t, s, http.MethodGet, "/learning-roadmap/registered_nurse", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Registered Nurse", decodeBody[types.RoadmapResponse](t, rec).CareerTitle)

	prompts := client.Prompts()
	require.Len(t, prompts, 1)
	assert.Contains(t, prompts[0], "Current skills: Basic programming, Communication")
	assert.Contains(t, prompts[0], "Education: Bachelor's Degree")
}

func TestHandleIndustryTrends(t *testing.T) {
	client := llmtest.Respond("MARKET TRENDS\n- Hiring is up\n\nSKILL DEMANDS\n- Cloud skills")
	s := newTestServer(t, testCorpus(), client)

	rec := do(t, s, http.MethodPost, "/get-industry-trends", `{"field": " Data Science ", "period": "1year"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[types.TrendsResponse](t, rec)
	assert.Equal(t, "Data Science", resp.Field)
	assert.Equal(t, "1year", resp.Period)
	assert.NotEmpty(t, resp.Trends.EmergingTechnologies)
}

func TestHandleTrendsForField(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Respond(""))

	rec := do(t, s, http.MethodGet, "/industry-trends/healthcare?period=3months", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[types.TrendsResponse](t, rec)
	assert.Equal(t, "healthcare", resp.Field)
	assert.Equal(t, "3months", resp.Period)
	assert.Equal(t, types.SourceDefault, resp.Source)

	rec = do(t, s, http.MethodGet, "/industry-trends/healthcare", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "6months", decodeBody[types.TrendsResponse](t, rec).Period)
}

func TestHandleIndustryTrends_Errors(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Fail(errors.New("deadline")))

	rec := do(t, s, http.MethodPost, "/get-industry-trends", `{"field": "   "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/get-industry-trends", `{"field": "finance"}`)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHandleCareerPlan(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Respond(roadmapText))

	rec := do(t, s, http.MethodPost, "/career-plan", `{"profile": `+techProfile+`}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	plan := decodeBody[types.CareerPlan](t, rec)
	assert.Equal(t, "software_developer", plan.Career.CareerID)
	assert.NotEmpty(t, plan.Recommendations)
	assert.NotEmpty(t, plan.Mentors)
	require.NotNil(t, plan.Roadmap)
	require.NotNil(t, plan.Trends)
	require.NotNil(t, plan.SkillGap)
	assert.Equal(t, []string{"Problem Solving", "Git"}, plan.SkillGap.MissingSkills)
	assert.Empty(t, plan.Errors)
}

func TestHandleCareerPlan_CompletionFailuresArePartial(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Fail(errors.New("quota exceeded")))

	rec := do(t, s, http.MethodPost, "/career-plan", `{"profile": `+techProfile+`, "career_id": "registered_nurse"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	plan := decodeBody[types.CareerPlan](t, rec)
	assert.Equal(t, "registered_nurse", plan.Career.CareerID)
	assert.Nil(t, plan.Roadmap)
	assert.Nil(t, plan.Trends)
	assert.Contains(t, plan.Errors, "roadmap")
	assert.Contains(t, plan.Errors, "trends")
}

func TestHandleCareerPlan_UnknownCareer(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Respond(""))

	rec := do(t, s, http.MethodPost, "/career-plan", `{"career_id": "astronaut"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleCareerPlanStream(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Respond(roadmapText))

	rec := do(t, s, http.MethodPost, "/career-plan/stream", `{"profile": `+techProfile+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Equal(t, 6, strings.Count(body, "event: step\n"))
	assert.Contains(t, body, `"step":"recommendations"`)
	assert.Contains(t, body, "event: plan\n")
	assert.Contains(t, body, "event: complete\n")
	assert.Contains(t, body, `"status":"completed"`)
	assert.Less(t, strings.Index(body, "event: plan"), strings.Index(body, "event: complete"))
}

func TestHandleCareerPlanStream_Partial(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Fail(errors.New("quota exceeded")))

	rec := do(t, s, http.MethodPost, "/career-plan/stream", `{"profile": `+techProfile+`}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"partial"`)
}

func TestHandleCareerPlanStream_Error(t *testing.T) {
	s := newTestServer(t, testCorpus(), llmtest.Respond(""))

	rec := do(t, s, http.MethodPost, "/career-plan/stream", `{"career_id": "astronaut"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "event: error\n")
	assert.NotContains(t, body, "event: complete")
}
