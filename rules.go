package router

import "strings"

// DefaultContextRules returns the baseline situational cues. Rules are
// independent and additive: several may fire on the same input, which is how
// compound tasks accumulate signal for more than one kind.
func DefaultContextRules() []ContextRule {
	return []ContextRule{
		{
			Name:   "interrogative",
			Target: AgentResearch,
			Bonus:  3,
			Match:  containsAny("how many", "what are", "what is", "list of"),
		},
		{
			Name:   "url",
			Target: AgentNavigation,
			Bonus:  5,
			Match:  containsAny("http", "www.", ".com", ".org", ".net"),
		},
		{
			Name:   "marketplace",
			Target: AgentShopping,
			Bonus:  4,
			Match: func(text string) bool {
				return strings.Contains(text, "$") ||
					hasWord(text, "amazon") || hasWord(text, "ebay") || hasWord(text, "walmart")
			},
		},
		{
			Name:   "bargain-hunting",
			Target: AgentShopping,
			Bonus:  4,
			Match: func(text string) bool {
				// "best ... deal(s)" phrasing, with arbitrary words between.
				return hasWord(text, "best") && strings.Contains(text, "deal")
			},
		},
		{
			Name:   "email-marker",
			Target: AgentCommunication,
			Bonus:  4,
			Match: func(text string) bool {
				return strings.Contains(text, "@") ||
					hasWord(text, "gmail") || hasWord(text, "outlook")
			},
		},
		{
			Name:   "page-reference",
			Target: AgentAnalysis,
			Bonus:  3,
			Match:  containsAny("this page", "current page", "content"),
		},
		{
			Name:   "recurrence",
			Target: AgentAutomation,
			Bonus:  3,
			Match: func(text string) bool {
				return hasWord(text, "every") || hasWord(text, "daily") ||
					hasWord(text, "weekly") || hasWord(text, "automatically")
			},
		},
	}
}

// containsAny builds a predicate that fires when any of the given substrings
// is present.
func containsAny(substrings ...string) func(string) bool {
	return func(text string) bool {
		for _, s := range substrings {
			if strings.Contains(text, s) {
				return true
			}
		}
		return false
	}
}

// hasWord reports whether word occurs in text as a whole word.
func hasWord(text, word string) bool {
	return wordOccurrences(text, word) > 0
}
