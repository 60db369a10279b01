package hints

import (
	"testing"
	"time"
)

func TestRevealNext_SequentialUnlock(t *testing.T) {
	l := NewLedger(DefaultConfig())

	for want := 0; want < 3; want++ {
		res := l.RevealNext("q1", 3, 0)
		if res.Status != StatusRevealed {
			t.Fatalf("reveal %d: Status = %v, want StatusRevealed", want, res.Status)
		}
		if res.Level != want {
			t.Errorf("reveal %d: Level = %d", want, res.Level)
		}
	}

	u := l.Usage("q1")
	for i, lvl := range u.RevealedLevels {
		if lvl != i {
			t.Errorf("RevealedLevels[%d] = %d, gap in sequence", i, lvl)
		}
	}
}

func TestRevealNext_ExhaustedIsNoop(t *testing.T) {
	l := NewLedger(DefaultConfig())

	l.RevealNext("q1", 2, 0)
	l.RevealNext("q1", 2, 0)

	before := l.Usage("q1")
	res := l.RevealNext("q1", 2, 0)
	if res.Status != StatusNoMoreHints {
		t.Fatalf("Status = %v, want StatusNoMoreHints", res.Status)
	}

	after := l.Usage("q1")
	if len(after.RevealedLevels) != len(before.RevealedLevels) {
		t.Error("RevealedLevels changed on exhausted reveal")
	}
	if after.CumulativePenalty != before.CumulativePenalty {
		t.Error("CumulativePenalty changed on exhausted reveal")
	}
}

func TestRevealNext_PenaltyAccumulates(t *testing.T) {
	l := NewLedger(Config{Penalties: []int{10, 15, 25}})

	l.RevealNext("q1", 3, 0)
	l.RevealNext("q1", 3, 0)

	u := l.Usage("q1")
	if u.CumulativePenalty != 25 {
		t.Errorf("CumulativePenalty = %d, want 25 (10+15)", u.CumulativePenalty)
	}
	if got := len(u.RevealedLevels); got != 2 {
		t.Errorf("len(RevealedLevels) = %d, want 2", got)
	}
}

func TestRevealNext_TimeGate(t *testing.T) {
	l := NewLedger(Config{Penalties: []int{10}, MinElapsed: time.Minute})

	res := l.RevealNext("q1", 1, 30*time.Second)
	if res.Status != StatusTooEarly {
		t.Fatalf("Status = %v, want StatusTooEarly", res.Status)
	}
	if l.Count("q1") != 0 {
		t.Error("too-early reveal must not unlock a level")
	}

	// Retry after the gate passes.
	res = l.RevealNext("q1", 1, time.Minute)
	if res.Status != StatusRevealed {
		t.Errorf("Status = %v, want StatusRevealed after gate", res.Status)
	}
}

func TestRevealNext_NoHintsAvailable(t *testing.T) {
	l := NewLedger(DefaultConfig())
	res := l.RevealNext("q1", 0, 0)
	if res.Status != StatusNoMoreHints {
		t.Errorf("Status = %v, want StatusNoMoreHints for hintless question", res.Status)
	}
}

func TestLedger_PenaltyScheduleReusesLastEntry(t *testing.T) {
	l := NewLedger(Config{Penalties: []int{10, 15}})

	l.RevealNext("q1", 4, 0)
	l.RevealNext("q1", 4, 0)
	res := l.RevealNext("q1", 4, 0)
	if res.Penalty != 15 {
		t.Errorf("level 2 penalty = %d, want 15 (last schedule entry)", res.Penalty)
	}
}

func TestLedger_Totals(t *testing.T) {
	l := NewLedger(Config{Penalties: []int{10, 15, 25}})

	l.RevealNext("q1", 3, 0)
	l.RevealNext("q1", 3, 0)
	l.RevealNext("q2", 3, 0)

	if got := l.TotalRevealed(); got != 3 {
		t.Errorf("TotalRevealed = %d, want 3", got)
	}
	if got := l.TotalPenalty(); got != 35 {
		t.Errorf("TotalPenalty = %d, want 35", got)
	}

	l.Reset()
	if got := l.TotalRevealed(); got != 0 {
		t.Errorf("TotalRevealed after reset = %d, want 0", got)
	}
}
