package session

import "time"

// Mode selects a preset behavior profile for a session.
type Mode string

const (
	ModePractice      Mode = "practice"
	ModeAssessment    Mode = "assessment"
	ModeMockInterview Mode = "mock-interview"
)

// DisplayName returns a human readable label for the mode.
func (m Mode) DisplayName() string {
	switch m {
	case ModePractice:
		return "Practice"
	case ModeAssessment:
		return "Assessment"
	case ModeMockInterview:
		return "Mock Interview"
	default:
		return string(m)
	}
}

// Settings control timing, hint availability, and submission policy for a
// single session. Zero Duration means the session is untimed.
type Settings struct {
	Duration             time.Duration
	PerQuestionLimit     time.Duration
	HintsEnabled         bool
	HintMinElapsed       time.Duration
	SkipEnabled          bool
	AutoSaveEnabled      bool
	AutoSubmit           bool
	AllowResubmit        bool
	CountDraftsAttempted bool
}

// DefaultSettings returns the preset for a mode. Unknown modes fall back to
// the practice preset.
func DefaultSettings(mode Mode) Settings {
	switch mode {
	case ModeAssessment:
		return Settings{
			Duration:        30 * time.Minute,
			HintsEnabled:    false,
			SkipEnabled:     true,
			AutoSaveEnabled: true,
			AutoSubmit:      false,
			AllowResubmit:   false,
		}
	case ModeMockInterview:
		return Settings{
			Duration:        45 * time.Minute,
			HintsEnabled:    true,
			HintMinElapsed:  60 * time.Second,
			SkipEnabled:     false,
			AutoSaveEnabled: true,
			AutoSubmit:      true,
			AllowResubmit:   false,
		}
	default:
		return Settings{
			Duration:        0,
			HintsEnabled:    true,
			SkipEnabled:     true,
			AutoSaveEnabled: true,
			AutoSubmit:      false,
			AllowResubmit:   true,
		}
	}
}
