// Package hints tracks which graduated hints were revealed per question and
// the score penalty they cost. Hint text itself comes from the question bank
// or the LLM content service; the ledger only owns levels and penalties.
package hints

import "time"

// RevealStatus is the outcome of a reveal attempt.
type RevealStatus int

const (
	// StatusRevealed means a new level was unlocked.
	StatusRevealed RevealStatus = iota
	// StatusNoMoreHints means every available level is already revealed.
	// This is a no-op, not an error.
	StatusNoMoreHints
	// StatusTooEarly means the minimum-elapsed-time gate rejected the
	// reveal; the caller may retry later.
	StatusTooEarly
)

// Result describes the outcome of RevealNext.
type Result struct {
	Status  RevealStatus
	Level   int // the level revealed, valid only for StatusRevealed
	Penalty int // the penalty added, valid only for StatusRevealed
}

// Usage is the per-question reveal record exposed to consumers.
type Usage struct {
	QuestionID        string
	RevealedLevels    []int
	CumulativePenalty int
}

// Config holds the penalty schedule and the reveal gate.
type Config struct {
	// Penalties maps hint level to score penalty. Levels beyond the
	// schedule reuse the last entry.
	Penalties []int

	// MinElapsed is the minimum time on a question before any hint may
	// be revealed. Zero disables the gate.
	MinElapsed time.Duration
}

// DefaultConfig returns the standard graduated penalty schedule.
func DefaultConfig() Config {
	return Config{Penalties: []int{10, 15, 25}}
}

// Ledger enforces strict sequential hint unlocks and accumulates penalties.
type Ledger struct {
	cfg  Config
	byID map[string]*Usage
}

// NewLedger creates an empty ledger.
func NewLedger(cfg Config) *Ledger {
	if len(cfg.Penalties) == 0 {
		cfg.Penalties = DefaultConfig().Penalties
	}
	return &Ledger{cfg: cfg, byID: make(map[string]*Usage)}
}

// RevealNext unlocks the next hint level for a question. Levels unlock
// strictly in order starting from 0; totalHints bounds how many exist for
// this question, and elapsed is the caller's time-on-question, checked
// against the gate at call time.
func (l *Ledger) RevealNext(questionID string, totalHints int, elapsed time.Duration) Result {
	u := l.usage(questionID)

	next := len(u.RevealedLevels)
	if next >= totalHints {
		return Result{Status: StatusNoMoreHints}
	}
	if l.cfg.MinElapsed > 0 && elapsed < l.cfg.MinElapsed {
		return Result{Status: StatusTooEarly}
	}

	penalty := l.penaltyFor(next)
	u.RevealedLevels = append(u.RevealedLevels, next)
	u.CumulativePenalty += penalty

	return Result{Status: StatusRevealed, Level: next, Penalty: penalty}
}

// Usage returns a copy of the reveal record for a question. A question with
// no reveals yields a zero-valued record.
func (l *Ledger) Usage(questionID string) Usage {
	u, ok := l.byID[questionID]
	if !ok {
		return Usage{QuestionID: questionID}
	}
	levels := make([]int, len(u.RevealedLevels))
	copy(levels, u.RevealedLevels)
	return Usage{
		QuestionID:        questionID,
		RevealedLevels:    levels,
		CumulativePenalty: u.CumulativePenalty,
	}
}

// Count returns the number of levels revealed for a question.
func (l *Ledger) Count(questionID string) int {
	if u, ok := l.byID[questionID]; ok {
		return len(u.RevealedLevels)
	}
	return 0
}

// Penalty returns the cumulative penalty for a question.
func (l *Ledger) Penalty(questionID string) int {
	if u, ok := l.byID[questionID]; ok {
		return u.CumulativePenalty
	}
	return 0
}

// TotalRevealed returns the number of hints revealed across all questions.
func (l *Ledger) TotalRevealed() int {
	total := 0
	for _, u := range l.byID {
		total += len(u.RevealedLevels)
	}
	return total
}

// TotalPenalty returns the cumulative penalty across all questions.
func (l *Ledger) TotalPenalty() int {
	total := 0
	for _, u := range l.byID {
		total += u.CumulativePenalty
	}
	return total
}

// Reset discards all reveal records.
func (l *Ledger) Reset() {
	l.byID = make(map[string]*Usage)
}

func (l *Ledger) usage(questionID string) *Usage {
	u, ok := l.byID[questionID]
	if !ok {
		u = &Usage{QuestionID: questionID}
		l.byID[questionID] = u
	}
	return u
}

func (l *Ledger) penaltyFor(level int) int {
	if level < len(l.cfg.Penalties) {
		return l.cfg.Penalties[level]
	}
	return l.cfg.Penalties[len(l.cfg.Penalties)-1]
}
