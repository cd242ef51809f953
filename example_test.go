package router_test

import (
	"context"
	"fmt"
	"log"

	router "github.com/FrenchMajesty/agent-router"
)

// Example shows basic usage with the baseline lexicon and rules.
func Example_basic() {
	engine, err := router.NewEngine(router.Config{})
	if err != nil {
		log.Fatal(err)
	}

	result := engine.Classify(context.Background(), "find and analyze best laptop deals")

	fmt.Printf("Primary: %s\n", result.Primary)
	fmt.Printf("Needs multiple agents: %v\n", result.NeedsMultipleAgents)
	// Output:
	// Primary: shopping
	// Needs multiple agents: true
}

// Example shows retuning the engine with a custom lexicon and rule set.
func Example_customConfig() {
	cfg := router.Config{
		Lexicon: router.Lexicon{
			router.AgentAutomation: {
				{Term: "deploy", Weight: 5},
				{Term: "roll out", Weight: 3},
			},
		},
		Rules: []router.ContextRule{
			{
				Name:   "cron-syntax",
				Target: router.AgentAutomation,
				Bonus:  4,
				Match: func(text string) bool {
					return len(text) > 0 && text[0] == '*'
				},
			},
		},
	}

	engine, err := router.NewEngine(cfg)
	if err != nil {
		log.Fatal(err)
	}

	result := engine.Classify(context.Background(), "roll out the deploy script")
	fmt.Printf("Primary: %s, confidence %d%%\n", result.Primary, result.Confidence)
	// Output:
	// Primary: automation, confidence 100%
}

// Example shows learning from misrouted tasks.
func Example_learning() {
	engine, err := router.NewLearningEngine(router.LearningConfig{
		Persistence:  noopPersistence{},
		PromoteAfter: 1,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	ctx := context.Background()
	before := engine.Classify(ctx, "water the garden").Primary

	if err := engine.Record(ctx, "water the garden", router.AgentAutomation); err != nil {
		log.Fatal(err)
	}
	after := engine.Classify(ctx, "water the garden").Primary

	fmt.Printf("before: %s, after: %s\n", before, after)
	// Output:
	// before: research, after: automation
}

type noopPersistence struct{}

func (noopPersistence) Load() ([]router.LearnedPattern, error) { return nil, nil }
func (noopPersistence) Save([]router.LearnedPattern) error     { return nil }
