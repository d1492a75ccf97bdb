package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/config"
	"github.com/jonathan/career-compass/internal/llm"
)

const techProfile = `{
	"interests": "Technology",
	"favorite_subjects": ["Math", "Computer Science"],
	"activities": "Coding, Gaming",
	"strengths": ["Problem Solving"],
	"future_goals": "Build software products",
	"skills": "Programming, Python"
}`

const careersJSON = `[
	{"career_id": "software_developer", "title": "Software Developer", "key_skills": ["Programming", "Git"], "avg_salary": 100000, "demand_score": 92},
	{"career_id": "registered_nurse", "title": "Registered Nurse", "key_skills": ["Patient Care"], "avg_salary": 80000}
]`

const mentorsJSON = `{"mentors": [
	{"id": "mentor_1", "name": "Sarah Chen", "industry": "technology", "expertise": ["Software Development"], "rating": 4.9},
	{"id": "mentor_2", "name": "James Wilson", "industry": "healthcare", "expertise": ["Nursing"], "rating": 4.7}
]}`

const roadmapText = `SKILL GAP ANALYSIS
You know Python but need data structures.

LEARNING PHASES
Phase 1: Foundations (3 months): Core programming and Git

RECOMMENDED RESOURCES
- CS50 course

PRACTICAL PROJECTS
- Personal portfolio site`

// execute runs the root command in-process with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{
		config.EnvStore, config.EnvCareersPath, config.EnvMentorsPath,
		config.EnvSQLitePath, config.EnvDatabaseURL, config.EnvProvider, config.EnvPort,
	} {
		t.Setenv(key, "")
	}
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

// resetFlags restores every flag to its default so commands can run repeatedly.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// stubClient replaces the LLM client constructor for the duration of a test.
func stubClient(t *testing.T, client llm.Client) {
	t.Helper()
	original := newLLMClient
	newLLMClient = func(context.Context, config.Config) (llm.Client, error) {
		return client, nil
	}
	t.Cleanup(func() { newLLMClient = original })
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
