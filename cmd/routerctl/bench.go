package main

import (
	"fmt"

	router "github.com/FrenchMajesty/agent-router"
	"github.com/FrenchMajesty/agent-router/harness"
	"github.com/spf13/cobra"
)

var (
	benchCorpus string
	benchTarget float64
	benchSave   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a labeled corpus and report accuracy",
	Long: `Run the accuracy harness over a labeled corpus and report overall
accuracy, per-kind accuracy, and the confusion breakdown. Exits non-zero when
accuracy falls below the target, so it can gate lexicon changes in CI.

Examples:
  routerctl bench
  routerctl bench --target 95
  routerctl bench --corpus cases.yaml --save`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchCorpus, "corpus", "", "Corpus YAML file (default: built-in corpus)")
	benchCmd.Flags().Float64Var(&benchTarget, "target", harness.DefaultTarget, "Accuracy floor in percent")
	benchCmd.Flags().BoolVar(&benchSave, "save", false, "Save the report as a JSON file")
}

func runBench(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	cases := harness.DefaultCorpus()
	if benchCorpus != "" {
		cases, err = harness.LoadCorpus(benchCorpus)
		if err != nil {
			return err
		}
	}

	report, err := harness.Run(cmd.Context(), engine, cases, benchTarget)
	if err != nil {
		return err
	}

	fmt.Printf("Accuracy: %.1f%% (%d/%d)\n", report.Accuracy, report.Correct, report.Total)
	fmt.Println("Per kind:")
	for _, kind := range router.AgentKinds {
		stats, ok := report.PerKind[kind]
		if !ok {
			continue
		}
		fmt.Printf("  %-14s %.1f%% (%d/%d)\n", kind, stats.Accuracy, stats.Correct, stats.Total)
	}
	for _, miss := range report.Misses {
		fmt.Printf("MISS: %q expected %s, got %s (confidence %d%%)\n",
			miss.Text, miss.Expected, miss.Got, miss.Confidence)
	}

	if benchSave {
		path, err := report.SaveFile("")
		if err != nil {
			return err
		}
		fmt.Printf("Report saved to %s\n", path)
	}

	if !report.Passed {
		return fmt.Errorf("accuracy %.1f%% is below the %.1f%% target", report.Accuracy, report.Target)
	}
	fmt.Printf("PASS: above the %.1f%% target\n", report.Target)
	return nil
}
