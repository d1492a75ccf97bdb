// Package main provides the careercompass CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careercompass",
	Short: "CareerCompass career guidance CLI and API server",
	Long: `CareerCompass recommends careers and mentors from a questionnaire profile and
generates learning roadmaps and industry-trends briefs with Gemini.`,
	SilenceUsage: true,
}

var (
	configPath  string
	verbose     bool
	storeKind   string
	careersPath string
	mentorsPath string
	sqlitePath  string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Path to JSON config file")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print human-readable results and debug logs")
	flags.StringVar(&storeKind, "store", "", "Corpus store: file, postgres or sqlite (default file)")
	flags.StringVar(&careersPath, "careers", "", "Path to careers JSON file")
	flags.StringVar(&mentorsPath, "mentors", "", "Path to mentors JSON file")
	flags.StringVar(&sqlitePath, "sqlite", "", "Path to SQLite corpus database")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
