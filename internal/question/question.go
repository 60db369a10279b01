package question

// Type categorizes an interview question.
type Type string

const (
	TypeBehavioral   Type = "behavioral"
	TypeTechnical    Type = "technical"
	TypeSystemDesign Type = "system-design"
	TypeCoding       Type = "coding"
)

// AllTypes returns all question types in display order.
func AllTypes() []Type {
	return []Type{TypeBehavioral, TypeTechnical, TypeSystemDesign, TypeCoding}
}

// TypeDisplayName returns a human-readable name for a question type.
func TypeDisplayName(t Type) string {
	switch t {
	case TypeBehavioral:
		return "Behavioral"
	case TypeTechnical:
		return "Technical"
	case TypeSystemDesign:
		return "System Design"
	case TypeCoding:
		return "Coding"
	default:
		return string(t)
	}
}

// Difficulty grades a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Question is a single interview question. Questions are supplied by a bank
// (builtin or loaded from a file) and are never mutated by the session engine.
type Question struct {
	// ID uniquely identifies the question within its bank.
	ID string `json:"id"`

	// Prompt is the question text shown to the candidate.
	Prompt string `json:"prompt"`

	// Type is the question category.
	Type Type `json:"type"`

	// Difficulty grades the question.
	Difficulty Difficulty `json:"difficulty"`

	// Hints holds graduated hint texts, mildest first. May be empty, in
	// which case LLM-generated hints are used when a provider is available.
	Hints []string `json:"hints,omitempty"`

	// EstimateSecs is the suggested time to spend on this question.
	EstimateSecs int `json:"estimate_secs"`
}

// HintCount returns the number of static hints attached to the question.
func (q Question) HintCount() int {
	return len(q.Hints)
}
