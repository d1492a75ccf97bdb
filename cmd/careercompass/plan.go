package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/pipeline"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/trends"
	"github.com/jonathan/career-compass/internal/types"
)

var (
	planProfile  string
	planCareerID string
	planPeriod   string
	planOut      string
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a complete career plan for a profile",
	Long: `Recommend careers for a profile, pick the requested career (or the top
recommendation), then match mentors and generate the roadmap, trends brief and
skill gap. Roadmap or trends failures are reported in the plan's errors.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planProfile, "profile", "p", "", "Path to profile JSON file")
	planCmd.Flags().StringVar(&planCareerID, "career-id", "", "Career id (default: top recommendation)")
	planCmd.Flags().StringVar(&planPeriod, "period", "", "Trends period (default 6months)")
	planCmd.Flags().StringVarP(&planOut, "out", "o", "", "Output file (default stdout)")

	if err := planCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	profile, err := readProfile(planProfile)
	if err != nil {
		return err
	}

	e, err := setup(ctx, config.Config{Period: planPeriod})
	if err != nil {
		return err
	}
	defer e.close()

	req := types.CareerPlanRequest{Profile: profile, CareerID: planCareerID, Period: e.cfg.Period}
	if err := req.Validate(); err != nil {
		return err
	}

	client, err := e.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient(client, e.logger)

	planner := &pipeline.Planner{
		Careers:  e.store,
		Mentors:  matching.NewMentorMatcher(e.store, e.logger.Named("mentors")),
		Roadmaps: roadmap.NewGenerator(client, e.logger.Named("roadmap")),
		Trends:   trends.NewAnalyzer(client, e.logger.Named("trends")),
		Logger:   e.logger.Named("plan"),
		OnProgress: func(event pipeline.ProgressEvent) {
			e.logger.Debug(event.Message, zap.String("step", event.Step))
		},
	}

	plan, err := planner.BuildPlan(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to build career plan: %w", err)
	}
	e.logger.Info("career plan built",
		zap.String("plan_id", plan.ID.String()),
		zap.String("career", plan.Career.Title),
		zap.Int("errors", len(plan.Errors)),
	)

	if p := e.printer(cmd); p != nil {
		p.PrintCareerMatches(plan.Recommendations)
		p.PrintMentorMatches(plan.Mentors)
		if plan.Roadmap != nil {
			p.PrintRoadmap(plan.Roadmap)
		}
		if plan.Trends != nil {
			p.PrintTrends(plan.Trends)
		}
		if plan.SkillGap != nil {
			p.PrintSkillGap(plan.SkillGap)
		}
		p.PrintPlanErrors(plan.Errors)
	}
	return writeJSON(cmd, planOut, plan)
}
