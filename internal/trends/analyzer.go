// Package trends synthesizes industry-trends briefs from LLM output.
package trends

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/prompts"
	"github.com/jonathan/career-compass/internal/types"
)

// Analyzer produces trends briefs using an LLM client.
type Analyzer struct {
	Client llm.Client
	Tier   llm.ModelTier
	Logger *zap.Logger
	Now    func() time.Time
}

// NewAnalyzer creates an Analyzer using the standard model tier.
func NewAnalyzer(client llm.Client, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		Client: client,
		Tier:   llm.TierStandard,
		Logger: logger,
		Now:    time.Now,
	}
}

// Analyze returns the trends brief for a field over a period such as "6months".
// Only a failed completion call produces an error, always a *llm.CompletionError.
func (a *Analyzer) Analyze(ctx context.Context, field, period string) (*types.TrendsResponse, error) {
	field = fieldName(field)
	if period = strings.TrimSpace(period); period == "" {
		period = DefaultPeriod
	}
	logger := a.logger().With(zap.String("field", field), zap.String("period", period))

	system := prompts.MustLoad(prompts.Trends).System
	text, err := a.Client.GenerateWithInstruction(ctx, system, BuildPrompt(field, period), a.tier())
	if err != nil {
		logger.Error("trends completion failed", zap.Error(err))
		return nil, llm.WrapCompletion(err, "failed to get trends")
	}

	trends, source := Parse(text, field)
	if source != types.SourceParsed {
		logger.Warn("trends degraded", zap.String("source", string(source)), zap.Int("response_len", len(text)))
	}

	return &types.TrendsResponse{
		Trends:      trends,
		Field:       field,
		Period:      period,
		Source:      source,
		GeneratedAt: a.now().UTC(),
	}, nil
}

// BuildPrompt renders the sectioned trends prompt.
func BuildPrompt(field, period string) string {
	promptContext := prompts.MustLoad(prompts.Trends).Render(map[string]string{
		"Field":  fieldName(field),
		"Period": period,
	})
	return llm.BuildSectionPrompt(llm.TrendsSchema(), promptContext)
}

func (a *Analyzer) tier() llm.ModelTier {
	if a.Tier == "" {
		return llm.TierStandard
	}
	return a.Tier
}

func (a *Analyzer) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *Analyzer) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}
