package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/types"
)

var (
	recommendProfile string
	recommendLimit   int
	recommendOut     string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank careers for a questionnaire profile",
	Long: `Score every career in the corpus against a questionnaire profile and print the
ranked matches as JSON. The built-in careers are used when the corpus is empty.`,
	RunE: runRecommend,
}

var (
	mentorsProfile  string
	mentorsCareerID string
	mentorsLimit    int
	mentorsOut      string
)

var mentorsCmd = &cobra.Command{
	Use:   "mentors",
	Short: "Rank mentors for a profile and target career",
	RunE:  runMentors,
}

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to profile JSON file")
	recommendCmd.Flags().IntVarP(&recommendLimit, "limit", "n", 0, "Maximum number of recommendations (0 = all)")
	recommendCmd.Flags().StringVarP(&recommendOut, "out", "o", "", "Output file (default stdout)")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	mentorsCmd.Flags().StringVarP(&mentorsProfile, "profile", "p", "", "Path to profile JSON file")
	mentorsCmd.Flags().StringVar(&mentorsCareerID, "career-id", "", "Target career id")
	mentorsCmd.Flags().IntVarP(&mentorsLimit, "limit", "n", 0, "Maximum number of mentors (0 = all)")
	mentorsCmd.Flags().StringVarP(&mentorsOut, "out", "o", "", "Output file (default stdout)")

	if err := mentorsCmd.MarkFlagRequired("career-id"); err != nil {
		panic(fmt.Sprintf("failed to mark career-id flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(mentorsCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req := types.RecommendCareersRequest{Limit: recommendLimit}
	if err := req.Validate(); err != nil {
		return err
	}
	profile, err := readProfile(recommendProfile)
	if err != nil {
		return err
	}

	e, err := setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	defer e.close()

	careers, err := e.store.Careers(ctx)
	if err != nil {
		e.logger.Warn("career corpus unavailable, using defaults", zap.Error(err))
		careers = nil
	}

	matches := matching.RecommendCareers(profile, careers)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}
	e.logger.Debug("careers ranked", zap.Int("count", len(matches)))

	if p := e.printer(cmd); p != nil {
		p.PrintCareerMatches(matches)
	}
	return writeJSON(cmd, recommendOut, map[string]any{
		"recommendations": matches,
		"explanation":     matching.Explanation(profile),
		"count":           len(matches),
	})
}

func runMentors(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	req := types.MatchMentorsRequest{Limit: mentorsLimit}
	if err := req.Validate(); err != nil {
		return err
	}
	profile, err := readProfile(mentorsProfile)
	if err != nil {
		return err
	}

	e, err := setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	defer e.close()

	career, err := lookupCareer(ctx, e.store, mentorsCareerID)
	if err != nil {
		return err
	}

	matches := matching.NewMentorMatcher(e.store, e.logger.Named("mentors")).Match(ctx, career, profile)
	if req.Limit > 0 && len(matches) > req.Limit {
		matches = matches[:req.Limit]
	}

	if p := e.printer(cmd); p != nil {
		p.PrintMentorMatches(matches)
	}
	return writeJSON(cmd, mentorsOut, map[string]any{
		"career":  career.Title,
		"mentors": matches,
		"count":   len(matches),
	})
}

// lookupCareer finds a career by id in the store, then among the built-in careers.
func lookupCareer(ctx context.Context, store corpus.Store, id string) (types.CareerRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return types.CareerRecord{}, &types.MissingCareerError{}
	}

	career, err := store.Career(ctx, id)
	if err == nil {
		return *career, nil
	}

	var notFound *corpus.NotFoundError
	if !errors.As(err, &notFound) {
		return types.CareerRecord{}, fmt.Errorf("failed to look up career: %w", err)
	}
	for _, c := range matching.DefaultCareers() {
		if c.CareerID == id {
			return c, nil
		}
	}
	return types.CareerRecord{}, err
}
