package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/server"
	"github.com/jonathan/career-compass/internal/server/ratelimit"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the CareerCompass HTTP API server.

Endpoints:
  GET  /health                          Health check
  GET  /model-info                      Configured completion models
  GET  /careers                         List careers
  GET  /careers/{id}                    Get a career
  GET  /mentors                         List mentors
  POST /recommend-careers               Rank careers for a profile
  POST /match-mentors                   Rank mentors for a profile and career
  POST /generate-learning-roadmap       Generate a learning roadmap
  GET  /learning-roadmap/{career_id}    Roadmap with a default profile
  POST /get-industry-trends             Generate an industry-trends brief
  GET  /industry-trends/{field}         Trends brief by path
  POST /skill-gap                       Compare user and career skills
  POST /growth-projection               Compound salary projection
  POST /extract-skills                  Extract skills from a profile
  POST /career-plan                     Build a full career plan
  POST /career-plan/stream              Build a plan with SSE progress`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e, err := setup(ctx, config.Config{Port: servePort})
	if err != nil {
		return err
	}
	defer e.close()

	client, err := e.client(ctx)
	if err != nil {
		return err
	}
	defer closeClient(client, e.logger)

	srv, err := server.New(server.Config{
		Port:      e.cfg.Port,
		Store:     e.store,
		Client:    client,
		LLMConfig: e.cfg.LLMConfig(),
		Logger:    e.logger,
		RateLimit: ratelimit.LoadConfig(),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	e.logger.Info("starting server",
		zap.Int("port", e.cfg.Port),
		zap.String("store", e.cfg.Store),
		zap.String("provider", e.cfg.Provider),
	)
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
