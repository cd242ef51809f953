package main

import (
	"fmt"

	router "github.com/FrenchMajesty/agent-router"
	"github.com/spf13/cobra"
)

var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Dump the active keyword tables as YAML",
	Long: `Print the active lexicon in the same YAML format --lexicon accepts,
so the built-in tables can be dumped, hand-tuned, and fed back in.`,
	RunE: runLexicon,
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
}

func runLexicon(cmd *cobra.Command, args []string) error {
	lexicon := router.DefaultLexicon()
	if lexiconPath != "" {
		var err error
		lexicon, err = router.LoadLexiconFile(lexiconPath)
		if err != nil {
			return err
		}
	}

	data, err := router.MarshalLexicon(lexicon)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
