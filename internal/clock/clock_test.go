package clock

import (
	"testing"
	"time"
)

// fakeNow returns a now func backed by a movable instant.
func fakeNow() (func() time.Time, func(d time.Duration)) {
	current := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	now := func() time.Time { return current }
	advance := func(d time.Duration) { current = current.Add(d) }
	return now, advance
}

func TestStopwatch_AccumulatesAcrossSegments(t *testing.T) {
	now, advance := fakeNow()
	sw := NewStopwatch(now)

	sw.Start()
	advance(10 * time.Second)
	sw.Pause()
	advance(1 * time.Hour) // paused time must not count
	sw.Start()
	advance(5 * time.Second)

	if got := sw.Elapsed(); got != 15*time.Second {
		t.Errorf("Elapsed = %v, want 15s", got)
	}
}

func TestStopwatch_DoubleStartIsNoop(t *testing.T) {
	now, advance := fakeNow()
	sw := NewStopwatch(now)

	sw.Start()
	advance(3 * time.Second)
	sw.Start()
	advance(2 * time.Second)

	if got := sw.Elapsed(); got != 5*time.Second {
		t.Errorf("Elapsed = %v, want 5s", got)
	}
}

func TestStopwatch_UnavailableClockDegrades(t *testing.T) {
	sw := NewStopwatch(func() time.Time { return time.Time{} })

	sw.Start()
	if sw.Running() {
		t.Error("expected degraded stopwatch to stay stopped")
	}
	if got := sw.Elapsed(); got != 0 {
		t.Errorf("Elapsed = %v, want 0", got)
	}
}

func TestCountdown_PauseResumePreservesRemaining(t *testing.T) {
	now, advance := fakeNow()
	cd := NewCountdown(3*time.Minute, now)

	cd.Start()
	advance(60 * time.Second)
	cd.Pause()

	before := cd.Remaining()
	if before != 120*time.Second {
		t.Fatalf("Remaining before pause gap = %v, want 120s", before)
	}

	advance(45 * time.Minute)
	cd.Resume()

	if got := cd.Remaining(); got != before {
		t.Errorf("Remaining after resume = %v, want %v", got, before)
	}
}

func TestCountdown_Expiry(t *testing.T) {
	now, advance := fakeNow()
	cd := NewCountdown(30*time.Second, now)

	cd.Start()
	if cd.Expired() {
		t.Error("expired immediately after start")
	}

	advance(30 * time.Second)
	if !cd.Expired() {
		t.Error("expected countdown to be expired")
	}
	if got := cd.Remaining(); got != 0 {
		t.Errorf("Remaining = %v, want 0", got)
	}

	// Remaining never goes negative.
	advance(10 * time.Second)
	if got := cd.Remaining(); got != 0 {
		t.Errorf("Remaining past budget = %v, want 0", got)
	}
}

func TestCountdown_Unlimited(t *testing.T) {
	now, advance := fakeNow()
	cd := NewCountdown(0, now)

	cd.Start()
	advance(24 * time.Hour)

	if cd.Expired() {
		t.Error("unlimited countdown must never expire")
	}
	if !cd.Unlimited() {
		t.Error("expected Unlimited to be true")
	}
	if got := cd.Elapsed(); got != 24*time.Hour {
		t.Errorf("Elapsed = %v, want 24h", got)
	}
}
