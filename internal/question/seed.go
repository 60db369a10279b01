package question

// builtinQuestions is the seed bank used when no bank file is supplied.
var builtinQuestions = []Question{
	{
		ID:         "beh-conflict",
		Prompt:     "Tell me about a time you disagreed with a teammate on a technical decision. How did you resolve it?",
		Type:       TypeBehavioral,
		Difficulty: DifficultyEasy,
		Hints: []string{
			"Use the STAR structure: situation, task, action, result.",
			"Focus on how you sought to understand the other position before arguing yours.",
			"End with the concrete outcome and what you would do differently.",
		},
		EstimateSecs: 240,
	},
	{
		ID:         "beh-failure",
		Prompt:     "Describe a project that failed or missed its goals. What was your role, and what did you learn?",
		Type:       TypeBehavioral,
		Difficulty: DifficultyMedium,
		Hints: []string{
			"Pick a real failure, not a disguised success.",
			"Own your part explicitly rather than blaming circumstances.",
			"Name one process change you made afterwards.",
		},
		EstimateSecs: 300,
	},
	{
		ID:         "tech-http-flow",
		Prompt:     "Walk me through what happens when you type a URL into a browser and press enter.",
		Type:       TypeTechnical,
		Difficulty: DifficultyMedium,
		Hints: []string{
			"Start with DNS resolution and work down the stack.",
			"Cover TCP/TLS handshakes before the HTTP request itself.",
			"Don't forget caching layers and the render pipeline.",
		},
		EstimateSecs: 360,
	},
	{
		ID:         "tech-race",
		Prompt:     "What is a race condition? Give an example from a system you've worked on and explain how you fixed it.",
		Type:       TypeTechnical,
		Difficulty: DifficultyMedium,
		Hints: []string{
			"Define it precisely: outcome depends on uncontrolled ordering of events.",
			"A concrete read-modify-write example is stronger than an abstract one.",
			"Mention the fix category: locking, atomics, or redesigning ownership.",
		},
		EstimateSecs: 300,
	},
	{
		ID:         "sd-url-shortener",
		Prompt:     "Design a URL shortening service. Cover the API, storage, and how you'd handle 10k redirects per second.",
		Type:       TypeSystemDesign,
		Difficulty: DifficultyHard,
		Hints: []string{
			"Clarify requirements first: custom aliases? expiry? analytics?",
			"The key design choice is ID generation: counter, hash, or random.",
			"Redirects are read-heavy; a cache in front of the store does most of the work.",
		},
		EstimateSecs: 600,
	},
	{
		ID:         "sd-rate-limiter",
		Prompt:     "Design a distributed rate limiter for a public API. What algorithm would you use and where does its state live?",
		Type:       TypeSystemDesign,
		Difficulty: DifficultyHard,
		Hints: []string{
			"Compare fixed window, sliding window, and token bucket.",
			"Think about where counters live when requests hit many nodes.",
			"Decide what happens when the limiter itself is unavailable.",
		},
		EstimateSecs: 600,
	},
}

// BuiltinBank returns the builtin seed bank.
func BuiltinBank() *Bank {
	b, err := NewBank(builtinQuestions)
	if err != nil {
		// Builtin data is validated by tests; a failure here is a bug.
		panic(err)
	}
	return b
}
