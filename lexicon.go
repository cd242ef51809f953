package router

// DefaultLexicon returns the baseline hand-tuned keyword tables. Weights are
// heuristic signal strengths, not probabilities: 5 marks an unambiguous verb
// for the kind, 3 a moderate cue, 2 a weak or generic one. Overlap between
// kinds is expected; context rules and tie-breaks resolve it downstream.
func DefaultLexicon() Lexicon {
	return Lexicon{
		AgentResearch: {
			{Term: "research", Weight: 5},
			{Term: "search", Weight: 3},
			{Term: "find", Weight: 3},
			{Term: "learn", Weight: 3},
			{Term: "discover", Weight: 3},
			{Term: "look up", Weight: 3},
			{Term: "find out", Weight: 3},
			{Term: "information", Weight: 2},
			{Term: "sources", Weight: 2},
			{Term: "facts", Weight: 2},
			{Term: "latest", Weight: 2},
			{Term: "news", Weight: 2},
		},
		AgentNavigation: {
			{Term: "navigate", Weight: 5},
			{Term: "go to", Weight: 3},
			{Term: "go", Weight: 2},
			{Term: "open", Weight: 3},
			{Term: "visit", Weight: 3},
			{Term: "browse", Weight: 3},
			{Term: "url", Weight: 3},
			{Term: "website", Weight: 2},
			{Term: "site", Weight: 2},
			{Term: "link", Weight: 2},
			{Term: "tab", Weight: 2},
		},
		AgentShopping: {
			{Term: "buy", Weight: 5},
			{Term: "purchase", Weight: 5},
			{Term: "shop", Weight: 3},
			{Term: "order", Weight: 3},
			{Term: "price", Weight: 3},
			{Term: "prices", Weight: 3},
			{Term: "deal", Weight: 3},
			{Term: "deals", Weight: 3},
			{Term: "cart", Weight: 3},
			{Term: "add to cart", Weight: 3},
			{Term: "compare prices", Weight: 3},
			{Term: "discount", Weight: 3},
			{Term: "cheap", Weight: 2},
			{Term: "product", Weight: 2},
			{Term: "store", Weight: 2},
		},
		AgentCommunication: {
			{Term: "email", Weight: 5},
			{Term: "send", Weight: 3},
			{Term: "compose", Weight: 3},
			{Term: "message", Weight: 3},
			{Term: "reply", Weight: 3},
			{Term: "inbox", Weight: 3},
			{Term: "meeting", Weight: 3},
			{Term: "reach out", Weight: 3},
			{Term: "contact", Weight: 2},
			{Term: "write", Weight: 2},
			{Term: "letter", Weight: 2},
		},
		AgentAutomation: {
			{Term: "automate", Weight: 5},
			{Term: "automation", Weight: 3},
			{Term: "automated", Weight: 3},
			{Term: "schedule", Weight: 3},
			{Term: "workflow", Weight: 3},
			{Term: "recurring", Weight: 3},
			{Term: "repeat", Weight: 3},
			{Term: "routine", Weight: 3},
			{Term: "reminder", Weight: 3},
			{Term: "trigger", Weight: 3},
			{Term: "set up", Weight: 2},
			{Term: "task", Weight: 2},
		},
		AgentAnalysis: {
			{Term: "analyze", Weight: 5},
			{Term: "summarize", Weight: 5},
			{Term: "summary", Weight: 3},
			{Term: "explain", Weight: 3},
			{Term: "review", Weight: 3},
			{Term: "extract", Weight: 3},
			{Term: "compare", Weight: 3},
			{Term: "statistics", Weight: 3},
			{Term: "insights", Weight: 2},
			{Term: "data", Weight: 2},
			{Term: "content", Weight: 2},
			{Term: "article", Weight: 2},
		},
	}
}
