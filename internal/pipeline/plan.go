// Package pipeline builds a complete career plan: recommendations, the chosen
// career, its mentors, roadmap, trends brief and skill gap.
package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/insights"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

// Plan steps, in the order their progress events are first emitted.
const (
	StepRecommendations = "recommendations"
	StepCareer          = "career"
	StepSkillGap        = "skill_gap"
	StepMentors         = "mentors"
	StepRoadmap         = "roadmap"
	StepTrends          = "trends"
)

// ProgressEvent represents a progress update during plan building
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	PlanID  string `json:"plan_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when plan progress occurs. Calls are serialized.
type ProgressCallback func(event ProgressEvent)

// RoadmapGenerator produces learning roadmaps.
type RoadmapGenerator interface {
	Generate(ctx context.Context, career types.CareerRecord, profile types.UserProfile) (*types.RoadmapResponse, error)
}

// TrendsAnalyzer produces industry-trends briefs.
type TrendsAnalyzer interface {
	Analyze(ctx context.Context, field, period string) (*types.TrendsResponse, error)
}

// Planner wires the matchers and synthesizers together.
type Planner struct {
	Careers    corpus.CareerSource
	Mentors    *matching.MentorMatcher
	Roadmaps   RoadmapGenerator
	Trends     TrendsAnalyzer
	Logger     *zap.Logger
	OnProgress ProgressCallback
	Now        func() time.Time

	progressMu sync.Mutex
}

// BuildPlan recommends careers for the profile, picks the requested career (or
// the top recommendation), then matches mentors, generates the roadmap and the
// trends brief concurrently. A completion failure in the roadmap or trends
// branch is recorded in the plan's Errors map instead of failing the plan.
func (p *Planner) BuildPlan(ctx context.Context, req types.CareerPlanRequest) (*types.CareerPlan, error) {
	logger := p.logger()
	plan := &types.CareerPlan{
		ID:     uuid.New(),
		Errors: map[string]string{},
	}
	planLogger := logger.With(zap.String("plan_id", plan.ID.String()))

	careers := p.loadCareers(ctx, planLogger)
	plan.Recommendations = matching.RecommendCareers(req.Profile, careers)
	p.emit(plan, StepRecommendations, "Recommended careers", plan.Recommendations)

	chosen, err := chooseCareer(req, careers, plan.Recommendations)
	if err != nil {
		return nil, err
	}
	plan.Career = chosen
	p.emit(plan, StepCareer, "Selected "+chosen.Title, chosen)

	gap := insights.SkillGapReport(insights.ExtractUserSkills(req.Profile), chosen.KeySkills)
	plan.SkillGap = &gap
	p.emit(plan, StepSkillGap, "Computed skill gap", plan.SkillGap)

	var mu sync.Mutex // guards plan fields written by the branches
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var mentors []types.MentorMatch
		if p.Mentors != nil {
			mentors = p.Mentors.Match(gCtx, chosen.CareerRecord, req.Profile)
		} else {
			mentors = matching.ScoreMentors(chosen.CareerRecord, req.Profile, nil)
		}
		mu.Lock()
		plan.Mentors = mentors
		mu.Unlock()
		p.emit(plan, StepMentors, "Matched mentors", mentors)
		return nil
	})

	if p.Roadmaps != nil {
		g.Go(func() error {
			resp, err := p.Roadmaps.Generate(gCtx, chosen.CareerRecord, req.Profile)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				return recordFailure(plan, StepRoadmap, err, planLogger)
			}
			plan.Roadmap = resp
			p.emit(plan, StepRoadmap, "Generated learning roadmap", resp)
			return nil
		})
	}

	if p.Trends != nil {
		g.Go(func() error {
			resp, err := p.Trends.Analyze(gCtx, chosen.Title, req.Period)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				return recordFailure(plan, StepTrends, err, planLogger)
			}
			plan.Trends = resp
			p.emit(plan, StepTrends, "Analyzed industry trends", resp)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if plan.Mentors == nil {
		plan.Mentors = []types.MentorMatch{}
	}
	if len(plan.Errors) == 0 {
		plan.Errors = nil
	}
	plan.GeneratedAt = p.now()

	planLogger.Info("career plan built",
		zap.String("career", chosen.Title),
		zap.Int("recommendations", len(plan.Recommendations)),
		zap.Int("mentors", len(plan.Mentors)),
		zap.Int("failed_sections", len(plan.Errors)))
	return plan, nil
}

// recordFailure stores a completion error under step. Other errors abort the plan.
func recordFailure(plan *types.CareerPlan, step string, err error, logger *zap.Logger) error {
	var completionErr *llm.CompletionError
	if !errors.As(err, &completionErr) {
		return err
	}
	logger.Warn("plan section unavailable", zap.String("step", step), zap.Error(err))
	plan.Errors[step] = err.Error()
	return nil
}

func (p *Planner) loadCareers(ctx context.Context, logger *zap.Logger) []types.CareerRecord {
	if p.Careers == nil {
		return nil
	}
	careers, err := p.Careers.Careers(ctx)
	if err != nil {
		logger.Warn("career corpus unavailable, using defaults", zap.Error(err))
		return nil
	}
	return careers
}

// chooseCareer resolves the plan's career: inline record first, then id, then
// the top recommendation.
func chooseCareer(req types.CareerPlanRequest, careers []types.CareerRecord, recommended []types.CareerMatch) (types.CareerMatch, error) {
	if strings.TrimSpace(req.Career.Title) != "" {
		return scored(req.Profile, req.Career), nil
	}

	if id := strings.TrimSpace(req.CareerID); id != "" {
		for _, match := range recommended {
			if match.CareerID == id {
				return match, nil
			}
		}
		if len(careers) == 0 {
			careers = matching.DefaultCareers()
		}
		for _, career := range careers {
			if career.CareerID == id {
				return scored(req.Profile, career), nil
			}
		}
		return types.CareerMatch{}, &corpus.NotFoundError{Kind: "career", ID: id}
	}

	if len(recommended) == 0 {
		return scored(req.Profile, matching.DefaultCareers()[0]), nil
	}
	return recommended[0], nil
}

func scored(profile types.UserProfile, career types.CareerRecord) types.CareerMatch {
	return types.CareerMatch{
		CareerRecord: career.Clone(),
		MatchScore:   matching.ScoreCareer(profile, career),
		Explanation:  matching.Explanation(profile),
	}
}

// emit calls the progress callback if configured
func (p *Planner) emit(plan *types.CareerPlan, step, message string, content any) {
	if p.OnProgress == nil {
		return
	}
	p.progressMu.Lock()
	defer p.progressMu.Unlock()
	p.OnProgress(ProgressEvent{
		Step:    step,
		Message: message,
		PlanID:  plan.ID.String(),
		Content: content,
	})
}

func (p *Planner) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func (p *Planner) now() time.Time {
	if p.Now == nil {
		return time.Now().UTC()
	}
	return p.Now()
}
