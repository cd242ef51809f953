package router

import "fmt"

const (
	// DefaultMinScore is the minimum bonus-adjusted score a kind needs to be
	// considered at all. Kinds below it are treated as "no signal".
	DefaultMinScore = 2

	// DefaultSupportFraction is the fraction of the primary score another
	// kind must reach to be listed as a supporting agent.
	DefaultSupportFraction = 0.40

	// DefaultAgent receives tasks that carry no usable signal.
	DefaultAgent = AgentResearch

	// DefaultPatternFilePath is the default location for learned-pattern
	// persistence.
	DefaultPatternFilePath = "./learned_patterns.json"
)

// Config holds configuration for the Engine. The zero value is usable: every
// unset field falls back to the baseline tuning.
type Config struct {
	// Lexicon is the per-kind weighted keyword table. If nil, uses
	// DefaultLexicon().
	Lexicon Lexicon

	// Rules is the contextual bonus rule set. If nil, uses
	// DefaultContextRules(). An explicitly empty, non-nil slice disables
	// contextual bonuses.
	Rules []ContextRule

	// MinScore is the minimum-score threshold. If 0, uses DefaultMinScore.
	MinScore int

	// SupportFraction is the supporting-agent threshold as a fraction of the
	// primary score, in (0,1]. If 0, uses DefaultSupportFraction.
	SupportFraction float64

	// Default is the kind selected when no kind clears MinScore. If empty,
	// uses DefaultAgent.
	Default AgentKind

	// Fallback, when set, is consulted before settling on Default for
	// insufficient-signal tasks. If nil, no collaborator is called.
	Fallback FallbackClassifier
}

// applyDefaults fills in default values for unset config fields.
func (c *Config) applyDefaults() {
	if c.Lexicon == nil {
		c.Lexicon = DefaultLexicon()
	}
	if c.Rules == nil {
		c.Rules = DefaultContextRules()
	}
	if c.MinScore == 0 {
		c.MinScore = DefaultMinScore
	}
	if c.SupportFraction == 0 {
		c.SupportFraction = DefaultSupportFraction
	}
	if c.Default == "" {
		c.Default = DefaultAgent
	}
}

// ConfigError describes a malformed Engine configuration. It is returned at
// construction time only; Classify never fails for well-formed text.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("router config: %s: %s", e.Field, e.Reason)
}

// validate checks the configuration after defaults have been applied.
func (c *Config) validate() error {
	if c.MinScore < 0 {
		return &ConfigError{Field: "MinScore", Reason: "must not be negative"}
	}
	if c.SupportFraction <= 0 || c.SupportFraction > 1 {
		return &ConfigError{Field: "SupportFraction", Reason: "must be in (0,1]"}
	}
	if !c.Default.Valid() {
		return &ConfigError{
			Field:  "Default",
			Reason: fmt.Sprintf("unknown agent kind %q", c.Default),
		}
	}
	for kind, entries := range c.Lexicon {
		if !kind.Valid() {
			return &ConfigError{
				Field:  "Lexicon",
				Reason: fmt.Sprintf("unknown agent kind %q", kind),
			}
		}
		for _, entry := range entries {
			if entry.Term == "" {
				return &ConfigError{
					Field:  "Lexicon",
					Reason: fmt.Sprintf("empty term for kind %q", kind),
				}
			}
			if entry.Weight <= 0 {
				return &ConfigError{
					Field:  "Lexicon",
					Reason: fmt.Sprintf("non-positive weight %d for term %q", entry.Weight, entry.Term),
				}
			}
		}
	}
	for i, rule := range c.Rules {
		if rule.Match == nil {
			return &ConfigError{
				Field:  "Rules",
				Reason: fmt.Sprintf("rule %d (%s) has no predicate", i, rule.Name),
			}
		}
		if !rule.Target.Valid() {
			return &ConfigError{
				Field:  "Rules",
				Reason: fmt.Sprintf("rule %d (%s) targets unknown agent kind %q", i, rule.Name, rule.Target),
			}
		}
		if rule.Bonus <= 0 {
			return &ConfigError{
				Field:  "Rules",
				Reason: fmt.Sprintf("rule %d (%s) has non-positive bonus %d", i, rule.Name, rule.Bonus),
			}
		}
	}
	return nil
}
