package harness

import router "github.com/FrenchMajesty/agent-router"

// DefaultCorpus returns the built-in labeled corpus: a handful of cases per
// kind plus compound tasks whose signal spans several kinds. Lexicon retuning
// is gated on this set staying above DefaultTarget.
func DefaultCorpus() []Case {
	return []Case{
		// research
		{Text: "research latest AI developments", Expected: router.AgentResearch},
		{Text: "find information about climate change", Expected: router.AgentResearch},
		{Text: "what are the best restaurants nearby", Expected: router.AgentResearch},
		{Text: "look up the population of Brazil", Expected: router.AgentResearch},
		{Text: "search for scientific papers on fusion", Expected: router.AgentResearch},

		// navigation
		{Text: "navigate to google.com", Expected: router.AgentNavigation},
		{Text: "open a new tab", Expected: router.AgentNavigation},
		{Text: "go to wikipedia.org", Expected: router.AgentNavigation},
		{Text: "visit the company website", Expected: router.AgentNavigation},

		// shopping
		{Text: "buy laptop on amazon", Expected: router.AgentShopping},
		{Text: "compare prices for wireless headphones", Expected: router.AgentShopping},
		{Text: "find the best deals on shoes", Expected: router.AgentShopping},
		{Text: "order a phone case from ebay", Expected: router.AgentShopping},
		{Text: "add this to my cart", Expected: router.AgentShopping},

		// communication
		{Text: "compose email to client", Expected: router.AgentCommunication},
		{Text: "send a message to John", Expected: router.AgentCommunication},
		{Text: "reply to sarah@gmail.com", Expected: router.AgentCommunication},
		{Text: "write a letter to my landlord", Expected: router.AgentCommunication},
		{Text: "check my inbox for new messages", Expected: router.AgentCommunication},

		// automation
		{Text: "schedule automated backups", Expected: router.AgentAutomation},
		{Text: "automate my daily report generation", Expected: router.AgentAutomation},
		{Text: "set up a recurring reminder every Monday", Expected: router.AgentAutomation},
		{Text: "create a workflow for invoice processing", Expected: router.AgentAutomation},

		// analysis
		{Text: "summarize current article", Expected: router.AgentAnalysis},
		{Text: "analyze the data in this report", Expected: router.AgentAnalysis},
		{Text: "summarize the content of this page", Expected: router.AgentAnalysis},
		{Text: "extract key insights from the quarterly report", Expected: router.AgentAnalysis},

		// compound tasks: more than one kind carries signal
		{Text: "find and analyze best laptop deals", Expected: router.AgentShopping},
		{Text: "research flight prices and book the cheapest", Expected: router.AgentResearch},
		{Text: "go to amazon.com and buy a keyboard", Expected: router.AgentNavigation},
	}
}
