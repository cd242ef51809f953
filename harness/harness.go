// Package harness runs labeled task corpora through the router and reports
// aggregate accuracy. It is a validation tool, not production routing: the
// test suite uses it to gate lexicon changes against an accuracy floor.
package harness

import (
	"context"
	"fmt"
	"os"

	router "github.com/FrenchMajesty/agent-router"
	"gopkg.in/yaml.v3"
)

// DefaultTarget is the minimum exact-match accuracy a lexicon change must
// hold. StretchTarget is the goal the tuning history aims for.
const (
	DefaultTarget = 80.0
	StretchTarget = 95.0
)

// Classifier is the slice of the router surface the harness needs. Both
// *router.Engine and *router.LearningEngine satisfy it.
type Classifier interface {
	Classify(ctx context.Context, task string) router.Result
}

// Case is one labeled corpus entry.
type Case struct {
	Text     string           `yaml:"text" json:"text"`
	Expected router.AgentKind `yaml:"expected" json:"expected"`
}

// KindStats is the per-kind accuracy breakdown.
type KindStats struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// Miss records one misrouted case for inspection.
type Miss struct {
	Text       string           `json:"text"`
	Expected   router.AgentKind `json:"expected"`
	Got        router.AgentKind `json:"got"`
	Confidence int              `json:"confidence"`
}

// Report aggregates a harness run.
type Report struct {
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`

	// PerKind breaks accuracy down by expected kind.
	PerKind map[router.AgentKind]KindStats `json:"per_kind"`

	// Confusion counts expected kind → routed kind.
	Confusion map[router.AgentKind]map[router.AgentKind]int `json:"confusion"`

	Misses []Miss  `json:"misses,omitempty"`
	Target float64 `json:"target"`
	Passed bool    `json:"passed"`
}

// Run classifies every case and compares the primary agent to the label.
// target is the pass/fail accuracy floor in percent; 0 uses DefaultTarget.
func Run(ctx context.Context, clf Classifier, cases []Case, target float64) (Report, error) {
	if target == 0 {
		target = DefaultTarget
	}
	if len(cases) == 0 {
		return Report{}, fmt.Errorf("no cases to run")
	}

	report := Report{
		PerKind:   make(map[router.AgentKind]KindStats),
		Confusion: make(map[router.AgentKind]map[router.AgentKind]int),
		Target:    target,
	}

	for _, c := range cases {
		if !c.Expected.Valid() {
			return Report{}, fmt.Errorf("case %q expects unknown agent kind %q", c.Text, c.Expected)
		}

		result := clf.Classify(ctx, c.Text)

		report.Total++
		stats := report.PerKind[c.Expected]
		stats.Total++

		if report.Confusion[c.Expected] == nil {
			report.Confusion[c.Expected] = make(map[router.AgentKind]int)
		}
		report.Confusion[c.Expected][result.Primary]++

		if result.Primary == c.Expected {
			report.Correct++
			stats.Correct++
		} else {
			report.Misses = append(report.Misses, Miss{
				Text:       c.Text,
				Expected:   c.Expected,
				Got:        result.Primary,
				Confidence: result.Confidence,
			})
		}
		report.PerKind[c.Expected] = stats
	}

	for kind, stats := range report.PerKind {
		stats.Accuracy = 100 * float64(stats.Correct) / float64(stats.Total)
		report.PerKind[kind] = stats
	}
	report.Accuracy = 100 * float64(report.Correct) / float64(report.Total)
	report.Passed = report.Accuracy >= target

	return report, nil
}

// LoadCorpus reads a labeled corpus from a YAML file of {text, expected}
// entries.
func LoadCorpus(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}

	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("corpus file %s contains no cases", path)
	}

	return cases, nil
}
