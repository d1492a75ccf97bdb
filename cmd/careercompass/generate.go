package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/trends"
	"github.com/jonathan/career-compass/internal/types"
)

var (
	roadmapProfile  string
	roadmapCareerID string
	roadmapCareer   string
	roadmapOut      string
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Generate a learning roadmap for a career",
	Long: `Generate a learning roadmap for a career with the configured completion model.
The career is taken from the corpus by --career-id, or given inline by --career.`,
	RunE: runRoadmap,
}

var (
	trendsField  string
	trendsPeriod string
	trendsOut    string
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Generate an industry-trends brief for a field",
	RunE:  runTrends,
}

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapProfile, "profile", "p", "", "Path to profile JSON file")
	roadmapCmd.Flags().StringVar(&roadmapCareerID, "career-id", "", "Career id from the corpus")
	roadmapCmd.Flags().StringVar(&roadmapCareer, "career", "", "Career title, for careers outside the corpus")
	roadmapCmd.Flags().StringVarP(&roadmapOut, "out", "o", "", "Output file (default stdout)")

	trendsCmd.Flags().StringVarP(&trendsField, "field", "f", "", "Industry or field name")
	trendsCmd.Flags().StringVar(&trendsPeriod, "period", "", "Time period, e.g. 6months or 1year (default 6months)")
	trendsCmd.Flags().StringVarP(&trendsOut, "out", "o", "", "Output file (default stdout)")

	if err := trendsCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}

	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(trendsCmd)
}

func runRoadmap(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req := types.RoadmapRequest{CareerID: roadmapCareerID, Career: types.CareerRecord{Title: roadmapCareer}}
	if err := req.Validate(); err != nil {
		return err
	}
	profile, err := readProfile(roadmapProfile)
	if err != nil {
		return err
	}

	e, err := setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	defer e.close()

	career := req.Career
	if career.Title == "" {
		if career, err = lookupCareer(ctx, e.store, req.CareerID); err != nil {
			return err
		}
	}

	client, err := e.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient(client, e.logger)

	resp, err := roadmap.NewGenerator(client, e.logger.Named("roadmap")).Generate(ctx, career, profile)
	if err != nil {
		return fmt.Errorf("failed to generate roadmap: %w", err)
	}
	e.logger.Info("roadmap generated", zap.String("career", resp.CareerTitle), zap.String("source", string(resp.Source)))

	if p := e.printer(cmd); p != nil {
		p.PrintRoadmap(resp)
	}
	return writeJSON(cmd, roadmapOut, resp)
}

func runTrends(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req := types.TrendsRequest{Field: trendsField, Period: trendsPeriod}
	if err := req.Validate(); err != nil {
		return err
	}

	e, err := setup(ctx, config.Config{Period: trendsPeriod})
	if err != nil {
		return err
	}
	defer e.close()

	client, err := e.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient(client, e.logger)

	resp, err := trends.NewAnalyzer(client, e.logger.Named("trends")).Analyze(ctx, req.Field, e.cfg.Period)
	if err != nil {
		return fmt.Errorf("failed to analyze trends: %w", err)
	}
	e.logger.Info("trends generated", zap.String("field", resp.Field), zap.String("source", string(resp.Source)))

	if p := e.printer(cmd); p != nil {
		p.PrintTrends(resp)
	}
	return writeJSON(cmd, trendsOut, resp)
}
