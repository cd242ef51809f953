// Package router classifies free-text task descriptions into one of six
// specialized agent kinds, with a confidence percentage and a multi-agent
// collaboration flag. Scoring is a heuristic keyword pass over per-kind
// lexicons plus contextual bonus rules; there is no statistical model and no
// I/O on the classification path.
package router

import (
	"context"
	"log"
	"strings"
	"sync"
)

// Engine routes tasks to agent kinds. It is read-only after construction, so
// any number of Classify calls may run concurrently.
type Engine struct {
	lexicon         Lexicon
	rules           []ContextRule
	minScore        int
	supportFraction float64
	defaultAgent    AgentKind
	fallback        FallbackClassifier

	// Metrics tracking
	totalClassifications int
	fallbackCount        int
	multiAgentCount      int
	primaryCounts        map[AgentKind]int
	metricsLock          sync.RWMutex
}

// NewEngine creates a new Engine with the given configuration. Malformed
// configuration fails here, never at classification time.
func NewEngine(cfg Config) (*Engine, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Engine{
		lexicon:         cfg.Lexicon.clone(),
		rules:           cfg.Rules,
		minScore:        cfg.MinScore,
		supportFraction: cfg.SupportFraction,
		defaultAgent:    cfg.Default,
		fallback:        cfg.Fallback,
		primaryCounts:   make(map[AgentKind]int),
	}, nil
}

// Classify scores the task text and resolves the winning agent kind. It
// never fails for well-formed text: empty input and inputs with no usable
// signal degrade to the default kind with confidence 0.
func (e *Engine) Classify(ctx context.Context, task string) Result {
	text := strings.ToLower(strings.TrimSpace(task))
	if text == "" {
		return e.insufficientSignal(ctx, text)
	}

	scores := e.score(text)

	// Threshold filter: kinds below minScore carry no signal and are never
	// selected as primary nor listed as supporting.
	primary := AgentKind("")
	primaryScore := 0
	for _, kind := range AgentKinds {
		score := scores[kind]
		if score < e.minScore {
			continue
		}
		// Strict comparison keeps ties resolving to the earliest kind in
		// canonical order, so identical input always classifies identically.
		if primary == "" || score > primaryScore {
			primary = kind
			primaryScore = score
		}
	}
	if primary == "" {
		return e.insufficientSignal(ctx, text)
	}

	confidence := 0
	if total := scores.Total(); total > 0 {
		confidence = (100*primaryScore + total/2) / total
		if confidence > 100 {
			confidence = 100
		}
	}

	var supporting []AgentKind
	cutoff := e.supportFraction * float64(primaryScore)
	for _, kind := range AgentKinds {
		if kind == primary {
			continue
		}
		if score := scores[kind]; score >= e.minScore && float64(score) >= cutoff {
			supporting = append(supporting, kind)
		}
	}

	e.recordClassification(primary, len(supporting) > 0)

	return Result{
		Primary:             primary,
		Scores:              scores,
		Confidence:          confidence,
		NeedsMultipleAgents: len(supporting) > 0,
		Supporting:          supporting,
	}
}

// insufficientSignal produces the defined no-signal outcome: the default kind
// (or the fallback collaborator's answer when one is configured) with
// confidence 0 and an all-zero score vector.
func (e *Engine) insufficientSignal(ctx context.Context, task string) Result {
	primary := e.defaultAgent
	if e.fallback != nil && task != "" {
		kind, err := e.fallback.ClassifyTask(ctx, task)
		if err == nil && kind.Valid() {
			primary = kind
		} else if err != nil {
			log.Printf("router: fallback classifier failed: %v", err)
		}
	}

	e.recordFallback(primary)

	return Result{
		Primary:    primary,
		Scores:     newScoreVector(),
		Confidence: 0,
	}
}

// Metrics returns a snapshot of the engine's routing counters.
func (e *Engine) Metrics() Metrics {
	e.metricsLock.RLock()
	defer e.metricsLock.RUnlock()

	counts := make(map[AgentKind]int, len(e.primaryCounts))
	for kind, n := range e.primaryCounts {
		counts[kind] = n
	}

	return Metrics{
		TotalClassifications: e.totalClassifications,
		FallbackCount:        e.fallbackCount,
		MultiAgentCount:      e.multiAgentCount,
		PrimaryCounts:        counts,
	}
}

func (e *Engine) recordClassification(primary AgentKind, multi bool) {
	e.metricsLock.Lock()
	defer e.metricsLock.Unlock()
	e.totalClassifications++
	e.primaryCounts[primary]++
	if multi {
		e.multiAgentCount++
	}
}

func (e *Engine) recordFallback(primary AgentKind) {
	e.metricsLock.Lock()
	defer e.metricsLock.Unlock()
	e.totalClassifications++
	e.fallbackCount++
	e.primaryCounts[primary]++
}
