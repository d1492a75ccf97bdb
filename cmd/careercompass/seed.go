package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/corpus"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load careers and mentors JSON files into a database store",
	Long: `Validate the careers and mentors files given by --careers and --mentors and
replace the corresponding tables of the postgres or sqlite store.

Examples:
  careercompass seed --store sqlite --sqlite corpus.db --careers data/careers.json --mentors data/mentors.json
  DATABASE_URL=postgres://... careercompass seed --store postgres --careers data/careers.json`,
	RunE: runSeed,
}

var validateCorpusCmd = &cobra.Command{
	Use:   "validate-corpus",
	Short: "Validate careers and mentors JSON files against their schemas",
	RunE:  runValidateCorpus,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(validateCorpusCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	e, err := setup(ctx, config.Config{})
	if err != nil {
		return err
	}
	defer e.close()

	if e.cfg.CareersPath == "" && e.cfg.MentorsPath == "" {
		return fmt.Errorf("--careers or --mentors is required")
	}
	seeder, ok := e.store.(corpus.Seeder)
	if !ok {
		return fmt.Errorf("corpus store kind %q cannot be seeded (use postgres or sqlite)", e.cfg.Store)
	}

	out := cmd.OutOrStdout()
	if e.cfg.CareersPath != "" {
		careers, err := corpus.LoadCareersFile(e.cfg.CareersPath)
		if err != nil {
			return err
		}
		n, err := seeder.SeedCareers(ctx, careers)
		if err != nil {
			return fmt.Errorf("failed to seed careers: %w", err)
		}
		e.logger.Info("careers seeded", zap.Int("count", n), zap.String("store", e.cfg.Store))
		_, _ = fmt.Fprintf(out, "Seeded %d careers\n", n)
	}

	if e.cfg.MentorsPath != "" {
		mentors, err := corpus.LoadMentorsFile(e.cfg.MentorsPath)
		if err != nil {
			return err
		}
		n, err := seeder.SeedMentors(ctx, mentors)
		if err != nil {
			return fmt.Errorf("failed to seed mentors: %w", err)
		}
		e.logger.Info("mentors seeded", zap.Int("count", n), zap.String("store", e.cfg.Store))
		_, _ = fmt.Fprintf(out, "Seeded %d mentors\n", n)
	}
	return nil
}

func runValidateCorpus(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Resolve(config.Config{
		CareersPath: careersPath,
		MentorsPath: mentorsPath,
	}, configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.CareersPath == "" && cfg.MentorsPath == "" {
		return fmt.Errorf("--careers or --mentors is required")
	}

	out := cmd.OutOrStdout()
	failed := false

	if cfg.CareersPath != "" {
		careers, err := corpus.LoadCareersFile(cfg.CareersPath)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Validation failed: %v\n", err)
			failed = true
		} else {
			_, _ = fmt.Fprintf(out, "Validation passed: %s (%d careers)\n", cfg.CareersPath, len(careers))
		}
	}

	if cfg.MentorsPath != "" {
		mentors, err := corpus.LoadMentorsFile(cfg.MentorsPath)
		if err != nil {
			_, _ = fmt.Fprintf(out, "Validation failed: %v\n", err)
			failed = true
		} else {
			_, _ = fmt.Fprintf(out, "Validation passed: %s (%d mentors)\n", cfg.MentorsPath, len(mentors))
		}
	}

	if failed {
		return fmt.Errorf("corpus validation failed")
	}
	return nil
}
