package main

import (
	"encoding/json"
	"fmt"
	"strings"

	router "github.com/FrenchMajesty/agent-router"
	"github.com/spf13/cobra"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify <task>",
	Short: "Route one task and print the decision",
	Long: `Classify a free-text task description and print the selected agent
kind, the confidence percentage, the full score vector, and any supporting
agents flagged for collaboration.

Examples:
  routerctl classify "buy laptop on amazon"
  routerctl classify --json "summarize this page"
  routerctl classify --lexicon tuned.yaml "navigate to github.com"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "Print the result as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	engine, err := buildEngine()
	if err != nil {
		return err
	}

	task := strings.Join(args, " ")
	result := engine.Classify(cmd.Context(), task)

	if classifyJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Primary agent: %s\n", result.Primary)
	fmt.Printf("Confidence:    %d%%\n", result.Confidence)
	if result.NeedsMultipleAgents {
		names := make([]string, len(result.Supporting))
		for i, kind := range result.Supporting {
			names[i] = string(kind)
		}
		fmt.Printf("Supporting:    %s\n", strings.Join(names, ", "))
	}
	fmt.Println("Scores:")
	for _, kind := range router.AgentKinds {
		fmt.Printf("  %-14s %d\n", kind, result.Scores[kind])
	}
	return nil
}
