package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/corpus"
	"github.com/jonathan/career-compass/internal/llm"
	"github.com/jonathan/career-compass/internal/observability"
	"github.com/jonathan/career-compass/internal/schemas"
	"github.com/jonathan/career-compass/internal/types"
	schemafiles "github.com/jonathan/career-compass/schemas"
)

// newLLMClient is replaced in tests.
var newLLMClient = func(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if err := cfg.RequireCredentials(); err != nil {
		return nil, err
	}
	return llm.NewClient(ctx, cfg.LLMConfig(), cfg.APIKey)
}

// env holds what every command needs: resolved config, logger and store.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	store  corpus.Store
}

// setup resolves configuration from flags, config file and environment, then
// opens the logger and corpus store. The caller must call close.
func setup(ctx context.Context, flags config.Config) (*env, error) {
	flags.Store = storeKind
	flags.CareersPath = careersPath
	flags.MentorsPath = mentorsPath
	flags.SQLitePath = sqlitePath
	flags.Verbose = verbose

	cfg, err := config.Resolve(flags, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := corpus.Open(ctx, cfg.CorpusConfig())
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}

	return &env{cfg: cfg, logger: logger, store: store}, nil
}

func (e *env) close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("failed to close corpus store", zap.Error(err))
	}
	_ = e.logger.Sync()
}

// client creates the completion client for the resolved configuration.
func (e *env) client(ctx context.Context) (llm.Client, error) {
	client, err := newLLMClient(ctx, e.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}
	return client, nil
}

// printer returns the human-readable printer, or nil when not verbose.
func (e *env) printer(cmd *cobra.Command) *observability.Printer {
	if !e.cfg.Verbose {
		return nil
	}
	return observability.NewPrinter(cmd.ErrOrStderr())
}

// readProfile loads a questionnaire profile and validates it against the
// profile schema. An empty path yields an empty profile.
func readProfile(path string) (types.UserProfile, error) {
	var profile types.UserProfile
	if path == "" {
		return profile, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return profile, fmt.Errorf("failed to read profile file: %w", err)
	}
	if err := schemas.ValidateDocument(schemafiles.Profile, data); err != nil {
		return profile, fmt.Errorf("invalid profile %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &profile); err != nil {
		return profile, fmt.Errorf("failed to unmarshal profile JSON: %w", err)
	}
	return profile, nil
}

// writeJSON writes v as indented JSON to path, or to the command's stdout when
// path is empty.
func writeJSON(cmd *cobra.Command, path string, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if path == "" {
		_, err := cmd.OutOrStdout().Write(jsonBytes)
		return err
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Output: %s\n", path)
	return nil
}

// closeClient releases a completion client, logging any failure.
func closeClient(client io.Closer, logger *zap.Logger) {
	if err := client.Close(); err != nil {
		logger.Warn("failed to close LLM client", zap.Error(err))
	}
}
