package router

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// LearnedPattern is a candidate keyword accumulated from misrouted tasks.
// Once its count reaches the promotion threshold it is appended to the
// lexicon of its kind as a regular KeywordEntry.
type LearnedPattern struct {
	ID       string    `json:"id"`
	Kind     AgentKind `json:"kind"`
	Term     string    `json:"term"`
	Count    int       `json:"count"`
	Promoted bool      `json:"promoted"`
}

// PatternPersistence handles loading and saving learned patterns.
type PatternPersistence interface {
	Load() ([]LearnedPattern, error)
	Save(patterns []LearnedPattern) error
}

// LearningConfig holds configuration for the LearningEngine.
type LearningConfig struct {
	Config

	// Persistence stores learned patterns across restarts. If nil, uses
	// file-based persistence at DefaultPatternFilePath.
	Persistence PatternPersistence

	// PromoteAfter is how many misroutes must repeat a term before it is
	// promoted into the lexicon. If 0, uses 3.
	PromoteAfter int

	// LearnedWeight is the weight promoted terms receive. If 0, uses 2: a
	// learned term is a weak signal until retuned by hand.
	LearnedWeight int
}

// LearningEngine wraps the baseline engine and grows the lexicon from
// misclassification feedback. Readers always see a complete immutable engine
// snapshot; promotion builds a new snapshot and swaps it in under the write
// lock, so an update is never visible half-applied.
type LearningEngine struct {
	mu     sync.RWMutex
	engine *Engine
	cfg    Config

	patterns      map[AgentKind]map[string]*LearnedPattern
	persist       PatternPersistence
	promoteAfter  int
	learnedWeight int

	shutdownOnce sync.Once
}

// NewLearningEngine creates a LearningEngine, loading previously learned
// patterns from persistence and folding the promoted ones into the lexicon.
func NewLearningEngine(cfg LearningConfig) (*LearningEngine, error) {
	cfg.Config.applyDefaults()
	if cfg.Persistence == nil {
		cfg.Persistence = NewFilePatternPersistence(DefaultPatternFilePath)
	}
	if cfg.PromoteAfter == 0 {
		cfg.PromoteAfter = 3
	}
	if cfg.LearnedWeight == 0 {
		cfg.LearnedWeight = 2
	}

	loaded, err := cfg.Persistence.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load learned patterns: %w", err)
	}

	patterns := make(map[AgentKind]map[string]*LearnedPattern)
	lexicon := cfg.Lexicon.clone()
	for i := range loaded {
		p := loaded[i]
		if !p.Kind.Valid() || p.Term == "" {
			return nil, &ConfigError{
				Field:  "Persistence",
				Reason: fmt.Sprintf("learned pattern %q has invalid kind %q or empty term", p.ID, p.Kind),
			}
		}
		if patterns[p.Kind] == nil {
			patterns[p.Kind] = make(map[string]*LearnedPattern)
		}
		patterns[p.Kind][p.Term] = &p
		if p.Promoted {
			lexicon[p.Kind] = append(lexicon[p.Kind], KeywordEntry{Term: p.Term, Weight: cfg.LearnedWeight})
		}
	}

	engineCfg := cfg.Config
	engineCfg.Lexicon = lexicon
	engine, err := NewEngine(engineCfg)
	if err != nil {
		return nil, err
	}

	return &LearningEngine{
		engine:        engine,
		cfg:           cfg.Config,
		patterns:      patterns,
		persist:       cfg.Persistence,
		promoteAfter:  cfg.PromoteAfter,
		learnedWeight: cfg.LearnedWeight,
	}, nil
}

// Classify routes the task through the current engine snapshot.
func (le *LearningEngine) Classify(ctx context.Context, task string) Result {
	le.mu.RLock()
	engine := le.engine
	le.mu.RUnlock()
	return engine.Classify(ctx, task)
}

// Record reports that task should have routed to expected. Candidate terms
// from the task accumulate against that kind; a term seen promoteAfter times
// is appended to the kind's lexicon. Tasks the engine already routes to
// expected are ignored.
func (le *LearningEngine) Record(ctx context.Context, task string, expected AgentKind) error {
	if !expected.Valid() {
		return fmt.Errorf("cannot record feedback for unknown agent kind %q", expected)
	}
	text := strings.ToLower(strings.TrimSpace(task))
	if text == "" {
		return nil
	}
	if le.Classify(ctx, task).Primary == expected {
		return nil
	}

	le.mu.Lock()
	defer le.mu.Unlock()

	promoted := false
	for _, term := range candidateTerms(text) {
		if lexiconHasTerm(le.engine.lexicon, expected, term) {
			continue
		}
		if le.patterns[expected] == nil {
			le.patterns[expected] = make(map[string]*LearnedPattern)
		}
		p := le.patterns[expected][term]
		if p == nil {
			p = &LearnedPattern{
				ID:   uuid.New().String(),
				Kind: expected,
				Term: term,
			}
			le.patterns[expected][term] = p
		}
		p.Count++
		if !p.Promoted && p.Count >= le.promoteAfter {
			p.Promoted = true
			promoted = true
		}
	}

	if !promoted {
		return nil
	}
	return le.rebuildLocked()
}

// rebuildLocked constructs a fresh engine snapshot from the base lexicon plus
// all promoted patterns and swaps it in. Caller must hold the write lock.
func (le *LearningEngine) rebuildLocked() error {
	lexicon := le.cfg.Lexicon.clone()
	for kind, terms := range le.patterns {
		for _, p := range terms {
			if p.Promoted {
				lexicon[kind] = append(lexicon[kind], KeywordEntry{Term: p.Term, Weight: le.learnedWeight})
			}
		}
	}

	cfg := le.cfg
	cfg.Lexicon = lexicon
	next, err := NewEngine(cfg)
	if err != nil {
		return fmt.Errorf("failed to rebuild engine after promotion: %w", err)
	}

	// Carry routing counters across the swap so Metrics stays cumulative.
	prev := le.engine
	prev.metricsLock.RLock()
	next.totalClassifications = prev.totalClassifications
	next.fallbackCount = prev.fallbackCount
	next.multiAgentCount = prev.multiAgentCount
	for kind, n := range prev.primaryCounts {
		next.primaryCounts[kind] = n
	}
	prev.metricsLock.RUnlock()

	le.engine = next
	return nil
}

// Patterns returns a copy of all learned patterns, promoted or not.
func (le *LearningEngine) Patterns() []LearnedPattern {
	le.mu.RLock()
	defer le.mu.RUnlock()
	return le.patternsLocked()
}

func (le *LearningEngine) patternsLocked() []LearnedPattern {
	var out []LearnedPattern
	for _, kind := range AgentKinds {
		for _, p := range le.patterns[kind] {
			out = append(out, *p)
		}
	}
	return out
}

// Metrics returns the cumulative routing counters.
func (le *LearningEngine) Metrics() Metrics {
	le.mu.RLock()
	engine := le.engine
	le.mu.RUnlock()
	return engine.Metrics()
}

// Save writes the current learned patterns to persistence.
func (le *LearningEngine) Save() error {
	le.mu.RLock()
	patterns := le.patternsLocked()
	le.mu.RUnlock()
	return le.persist.Save(patterns)
}

// Close saves the learned patterns. It is safe to call Close multiple times;
// only the first call writes.
func (le *LearningEngine) Close() error {
	var saveErr error
	le.shutdownOnce.Do(func() {
		saveErr = le.Save()
	})
	return saveErr
}

// candidateTerms extracts learnable tokens from lowercased task text:
// deduplicated words of four letters or more that are not filler.
func candidateTerms(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !isWordRune(r)
	})
	seen := make(map[string]bool)
	var out []string
	for _, f := range fields {
		if len(f) < 4 || fillerWords[f] || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func lexiconHasTerm(l Lexicon, kind AgentKind, term string) bool {
	for _, entry := range l[kind] {
		if entry.Term == term {
			return true
		}
	}
	return false
}

var fillerWords = map[string]bool{
	"this": true, "that": true, "these": true, "those": true, "from": true,
	"with": true, "about": true, "please": true, "what": true, "when": true,
	"where": true, "which": true, "while": true, "will": true, "would": true,
	"could": true, "should": true, "have": true, "just": true, "like": true,
	"then": true, "them": true, "they": true, "your": true, "their": true,
	"into": true, "over": true, "more": true, "most": true, "very": true,
	"much": true, "many": true, "each": true, "also": true, "been": true,
	"being": true, "there": true, "here": true, "after": true, "before": true,
	"because": true, "some": true, "same": true, "other": true,
}
