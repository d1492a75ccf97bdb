package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/llm/llmtest"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/trends"
	"github.com/jonathan/career-compass/internal/types"
)

type fakeCareers struct {
	careers []types.CareerRecord
	err     error
}

func (f fakeCareers) Careers(context.Context) ([]types.CareerRecord, error) {
	return f.careers, f.err
}

type fakeRoadmaps func(ctx context.Context, career types.CareerRecord, profile types.UserProfile) (*types.RoadmapResponse, error)

func (f fakeRoadmaps) Generate(ctx context.Context, career types.CareerRecord, profile types.UserProfile) (*types.RoadmapResponse, error) {
	return f(ctx, career, profile)
}

type fakeTrends func(ctx context.Context, field, period string) (*types.TrendsResponse, error)

func (f fakeTrends) Analyze(ctx context.Context, field, period string) (*types.TrendsResponse, error) {
	return f(ctx, field, period)
}

var techProfile = types.UserProfile{
	Interests:        "Science and Technology",
	FutureGoals:      "Build software products",
	FavoriteSubjects: types.StringList{"Computer Science", "Math"},
	Strengths:        types.StringList{"Problem solving"},
	Skills:           "Programming, Python",
}

func TestBuildPlan_TopRecommendation(t *testing.T) {
	fixed := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	client := llmtest.Respond("")
	planner := &Planner{
		Roadmaps: roadmap.NewGenerator(client, nil),
		Trends:   trends.NewAnalyzer(client, nil),
		Now:      func() time.Time { return fixed },
	}

	plan, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{Profile: techProfile})
	require.NoError(t, err)

	require.NotEmpty(t, plan.Recommendations)
	assert.Equal(t, plan.Recommendations[0], plan.Career)
	assert.NotEqual(t, "", plan.ID.String())
	assert.Equal(t, fixed, plan.GeneratedAt)
	assert.Nil(t, plan.Errors)

	require.NotNil(t, plan.Roadmap)
	assert.Equal(t, types.SourceDefault, plan.Roadmap.Source)
	assert.Equal(t, plan.Career.Title, plan.Roadmap.CareerTitle)

	require.NotNil(t, plan.Trends)
	assert.Equal(t, plan.Career.Title, plan.Trends.Field)
	assert.Equal(t, trends.DefaultPeriod, plan.Trends.Period)

	require.NotNil(t, plan.SkillGap)
	assert.Equal(t, plan.Career.KeySkills, plan.SkillGap.CareerSkills)
	assert.Equal(t, []string{"Programming", "Python"}, plan.SkillGap.UserSkills)
	assert.NotNil(t, plan.Mentors)
}

func TestBuildPlan_CareerByID(t *testing.T) {
	planner := &Planner{
		Careers: fakeCareers{careers: matching.DefaultCareers()},
	}

	plan, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{
		Profile:  techProfile,
		CareerID: "registered_nurse",
	})
	require.NoError(t, err)
	assert.Equal(t, "registered_nurse", plan.Career.CareerID)
	assert.Equal(t, matching.ScoreCareer(techProfile, plan.Career.CareerRecord), plan.Career.MatchScore)
}

func TestBuildPlan_CareerByIDFallsBackToDefaults(t *testing.T) {
	planner := &Planner{Careers: fakeCareers{err: errors.New("db down")}}

	plan, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{CareerID: "graphic_designer"})
	require.NoError(t, err)
	assert.Equal(t, "Graphic Designer", plan.Career.Title)
}

func TestBuildPlan_UnknownCareer(t *testing.T) {
	planner := &Planner{Careers: fakeCareers{careers: matching.DefaultCareers()}}

	_, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{CareerID: "astronaut"})

	var notFound *corpus.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "astronaut", notFound.ID)
}

func TestBuildPlan_InlineCareer(t *testing.T) {
	career := types.CareerRecord{CareerID: "game_designer", Title: "Game Designer", KeySkills: []string{"Unity", "Python"}}
	var seenField string
	planner := &Planner{
		Trends: fakeTrends(func(_ context.Context, field, period string) (*types.TrendsResponse, error) {
			seenField = field
			return &types.TrendsResponse{Field: field, Period: period}, nil
		}),
	}

	plan, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{
		Profile: techProfile,
		Career:  career,
		Period:  "1year",
	})
	require.NoError(t, err)
	assert.Equal(t, "Game Designer", plan.Career.Title)
	assert.Equal(t, "Game Designer", seenField)
	assert.Equal(t, "1year", plan.Trends.Period)
	assert.Equal(t, []string{"Unity"}, plan.SkillGap.MissingSkills)
}

func TestBuildPlan_CompletionErrorsRecorded(t *testing.T) {
	client := llmtest.Fail(&llm.CompletionError{Provider: llm.ProviderGemini, Message: "quota exceeded"})
	planner := &Planner{
		Roadmaps: roadmap.NewGenerator(client, nil),
		Trends:   trends.NewAnalyzer(client, nil),
	}

	plan, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{Profile: techProfile})
	require.NoError(t, err)

	assert.Nil(t, plan.Roadmap)
	assert.Nil(t, plan.Trends)
	require.Len(t, plan.Errors, 2)
	assert.Contains(t, plan.Errors[StepRoadmap], "quota exceeded")
	assert.Contains(t, plan.Errors[StepTrends], "quota exceeded")
	assert.NotEmpty(t, plan.Mentors)
}

func TestBuildPlan_OtherErrorsAbort(t *testing.T) {
	planner := &Planner{
		Roadmaps: fakeRoadmaps(func(context.Context, types.CareerRecord, types.UserProfile) (*types.RoadmapResponse, error) {
			return nil, errors.New("unexpected failure")
		}),
	}

	_, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{Profile: techProfile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected failure")
}

func TestBuildPlan_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Planner{}).BuildPlan(ctx, types.CareerPlanRequest{Profile: techProfile})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuildPlan_ProgressEvents(t *testing.T) {
	client := llmtest.Respond("")
	var mu sync.Mutex
	var steps []string
	planner := &Planner{
		Roadmaps: roadmap.NewGenerator(client, nil),
		Trends:   trends.NewAnalyzer(client, nil),
		OnProgress: func(event ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			steps = append(steps, event.Step)
		},
	}

	plan, err := planner.BuildPlan(context.Background(), types.CareerPlanRequest{Profile: techProfile})
	require.NoError(t, err)

	require.Len(t, steps, 6)
	assert.Equal(t, []string{StepRecommendations, StepCareer, StepSkillGap}, steps[:3])
	assert.ElementsMatch(t, []string{StepMentors, StepRoadmap, StepTrends}, steps[3:])
	assert.NotNil(t, plan)
}
