// Package roadmap synthesizes structured learning roadmaps from LLM output.
//
// A completion failure is the only error Generate returns. Any response that
// arrives is parsed as JSON, then heuristically from plain-text sections, and
// finally replaced by the canonical default roadmap, so callers always receive a
// fully populated result.
package roadmap

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/prompts"
	"github.com/jonathan/career-compass/internal/types"
)

// Generator produces learning roadmaps using an LLM client.
type Generator struct {
	Client llm.Client
	Tier   llm.ModelTier
	Logger *zap.Logger
	Now    func() time.Time
}

// NewGenerator creates a Generator using the standard model tier.
func NewGenerator(client llm.Client, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		Client: client,
		Tier:   llm.TierStandard,
		Logger: logger,
		Now:    time.Now,
	}
}

// Generate builds a roadmap for the career tailored to the profile.
// The returned error is always a *llm.CompletionError.
func (g *Generator) Generate(ctx context.Context, career types.CareerRecord, profile types.UserProfile) (*types.RoadmapResponse, error) {
	title := careerTitle(career.Title)
	logger := g.logger().With(zap.String("career", title))

	system := prompts.MustLoad(prompts.Roadmap).System
	prompt := BuildPrompt(career, profile)

	text, err := g.Client.GenerateWithInstruction(ctx, system, prompt, g.tier())
	if err != nil {
		logger.Error("roadmap completion failed", zap.Error(err))
		return nil, llm.WrapCompletion(err, "failed to generate roadmap")
	}

	roadmap, source := Parse(text, title)
	if source != types.SourceParsed {
		logger.Warn("roadmap degraded", zap.String("source", string(source)), zap.Int("response_len", len(text)))
	} else {
		logger.Debug("roadmap parsed", zap.Int("phases", len(roadmap.LearningPhases)))
	}

	return &types.RoadmapResponse{
		Roadmap:     roadmap,
		CareerTitle: title,
		Source:      source,
		GeneratedAt: g.now().UTC(),
	}, nil
}

// BuildPrompt renders the sectioned roadmap prompt for a career and profile.
func BuildPrompt(career types.CareerRecord, profile types.UserProfile) string {
	promptContext := prompts.MustLoad(prompts.Roadmap).Render(map[string]string{
		"CareerTitle":           careerTitle(career.Title),
		"KeySkills":             orNotSpecified(strings.Join(career.KeySkills, ", ")),
		"EducationRequirements": orNotSpecified(career.EducationRequirements),
		"Skills":                orNotSpecified(profile.Skills),
		"ExperienceLevel":       orDefault(profile.ExperienceLevel, "Entry level"),
		"Education":             orNotSpecified(profile.Education),
		"Interests":             orNotSpecified(profile.Interests),
		"FutureGoals":           orNotSpecified(profile.FutureGoals),
	})
	return llm.BuildSectionPrompt(llm.RoadmapSchema(), promptContext)
}

func (g *Generator) tier() llm.ModelTier {
	if g.Tier == "" {
		return llm.TierStandard
	}
	return g.Tier
}

func (g *Generator) logger() *zap.Logger {
	if g.Logger == nil {
		return zap.NewNop()
	}
	return g.Logger
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func orNotSpecified(s string) string {
	return orDefault(s, "not specified")
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
