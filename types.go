package router

import "context"

// AgentKind identifies one of the specialized agent handlers a task can be
// routed to. The set is closed: adding a kind means adding its lexicon and
// context rules too.
type AgentKind string

const (
	AgentResearch      AgentKind = "research"
	AgentNavigation    AgentKind = "navigation"
	AgentShopping      AgentKind = "shopping"
	AgentCommunication AgentKind = "communication"
	AgentAutomation    AgentKind = "automation"
	AgentAnalysis      AgentKind = "analysis"
)

// AgentKinds lists every kind in canonical order. Score ties during decision
// resolution break toward the earliest kind in this slice, so the order must
// stay stable across releases.
var AgentKinds = []AgentKind{
	AgentResearch,
	AgentNavigation,
	AgentShopping,
	AgentCommunication,
	AgentAutomation,
	AgentAnalysis,
}

// Valid reports whether k is one of the known agent kinds.
func (k AgentKind) Valid() bool {
	for _, known := range AgentKinds {
		if k == known {
			return true
		}
	}
	return false
}

// KeywordEntry is a single weighted signal in a lexicon. Term is matched
// case-insensitively; multi-word terms (phrases) score double their weight on
// presence, single tokens score weight per whole-word occurrence.
type KeywordEntry struct {
	Term   string `yaml:"term" json:"term"`
	Weight int    `yaml:"weight" json:"weight"`
}

// Lexicon maps each agent kind to its weighted keyword table. A Lexicon given
// to an Engine is treated as an immutable snapshot.
type Lexicon map[AgentKind][]KeywordEntry

// Entries returns the keyword table for the given kind. Missing kinds return
// an empty table.
func (l Lexicon) Entries(kind AgentKind) []KeywordEntry {
	return l[kind]
}

// clone deep-copies the lexicon so the learning path can grow its copy
// without touching the snapshot concurrent readers see.
func (l Lexicon) clone() Lexicon {
	out := make(Lexicon, len(l))
	for kind, entries := range l {
		dup := make([]KeywordEntry, len(entries))
		copy(dup, entries)
		out[kind] = dup
	}
	return out
}

// ContextRule adds a bonus to one kind's score when a situational cue is
// present in the input. Match is called with the lowercased, trimmed task
// text and must be a pure function of it.
type ContextRule struct {
	Name   string
	Target AgentKind
	Bonus  int
	Match  func(text string) bool
}

// ScoreVector holds the bonus-adjusted score for every agent kind. It is
// always fully populated; kinds with no matches carry zero.
type ScoreVector map[AgentKind]int

func newScoreVector() ScoreVector {
	v := make(ScoreVector, len(AgentKinds))
	for _, kind := range AgentKinds {
		v[kind] = 0
	}
	return v
}

// Total sums the scores across all kinds.
func (v ScoreVector) Total() int {
	total := 0
	for _, score := range v {
		total += score
	}
	return total
}

// Result is the outcome of classifying one task. It is created fresh per
// call and owned by the caller.
type Result struct {
	// Primary is the agent kind selected to own the task.
	Primary AgentKind

	// Scores is the full bonus-adjusted score vector, kept for observability.
	Scores ScoreVector

	// Confidence is how dominant the primary score is relative to the total
	// signal, as an integer percentage in [0,100]. Zero means insufficient
	// signal: the task fell back to the default kind.
	Confidence int

	// NeedsMultipleAgents is true when at least one other kind scored close
	// enough to the primary to warrant collaboration.
	NeedsMultipleAgents bool

	// Supporting lists those close-scoring kinds in canonical order.
	Supporting []AgentKind
}

// Metrics provides counters about the engine's routing history.
type Metrics struct {
	// TotalClassifications is the number of Classify calls served.
	TotalClassifications int

	// FallbackCount is the number of calls that had insufficient signal and
	// fell back to the default kind.
	FallbackCount int

	// MultiAgentCount is the number of calls flagged for collaboration.
	MultiAgentCount int

	// PrimaryCounts is how often each kind was selected as primary.
	PrimaryCounts map[AgentKind]int
}

// FallbackClassifier is an optional collaborator consulted only when no kind
// clears the minimum-score threshold. Implementations typically sit in front
// of an LLM; see the adapters package. Errors degrade to the default kind and
// never surface to the Classify caller.
type FallbackClassifier interface {
	ClassifyTask(ctx context.Context, task string) (AgentKind, error)
}
