package main

import (
	router "github.com/FrenchMajesty/agent-router"
)

// buildEngine constructs an engine from the global flags.
func buildEngine() (*router.Engine, error) {
	cfg := router.Config{
		MinScore:        minScore,
		SupportFraction: supportFraction,
		Default:         router.AgentKind(defaultAgent),
	}

	if lexiconPath != "" {
		lexicon, err := router.LoadLexiconFile(lexiconPath)
		if err != nil {
			return nil, err
		}
		cfg.Lexicon = lexicon
	}

	return router.NewEngine(cfg)
}
