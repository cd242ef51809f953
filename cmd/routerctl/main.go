package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	lexiconPath     string
	minScore        int
	supportFraction float64
	defaultAgent    string
)

var rootCmd = &cobra.Command{
	Use:   "routerctl",
	Short: "Classify browser tasks into specialized agent kinds",
	Long: `routerctl exercises the agent-router engine from the command line.

Commands:
  classify   Route one task and print the decision
  bench      Run a labeled corpus and report accuracy
  lexicon    Dump the active keyword tables as YAML

The engine ships with baseline keyword tables and context rules; pass
--lexicon to retune them from a YAML file without a rebuild.`,
	SilenceUsage: true,
}

func main() {
	// A .env file is optional; environment variables win either way.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Lexicon YAML file (default: built-in tables)")
	rootCmd.PersistentFlags().IntVar(&minScore, "min-score", 0, "Minimum-score threshold (default: baseline)")
	rootCmd.PersistentFlags().Float64Var(&supportFraction, "support-fraction", 0, "Supporting-agent fraction of the primary score (default: baseline)")
	rootCmd.PersistentFlags().StringVar(&defaultAgent, "default-agent", "", "Agent kind for tasks with no signal (default: research)")
}
