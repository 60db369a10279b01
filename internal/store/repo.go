package store

import (
	"context"
	"time"

	"prepkit/internal/drafts"
)

// SessionEventData captures a session lifecycle transition.
type SessionEventData struct {
	SessionID          string
	Action             string // started, paused, resumed, completed, reset
	Mode               string
	QuestionsTotal     int
	QuestionsCompleted int
	QuestionsSkipped   int
	HintsUsed          int
	PenaltyTotal       int
	DurationSecs       int
}

// AnswerEventData captures a submitted final answer.
type AnswerEventData struct {
	SessionID      string
	QuestionID     string
	QuestionPrompt string
	AnswerText     string
	TimeSpentSecs  int
	HintsUsed      int
	Resubmission   bool
}

// HintEventData captures a revealed hint level.
type HintEventData struct {
	SessionID  string
	QuestionID string
	Level      int
	Penalty    int
}

// ScoreEventData captures the AI scorer's verdict for an answer.
type ScoreEventData struct {
	SessionID   string
	QuestionID  string
	Score       int
	Feedback    string
	HintPenalty int
}

// LLMRequestEventData captures a single LLM API call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEventRecord is a stored LLM request event, for inspection commands.
type LLMEventRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// QueryOpts bounds list queries.
type QueryOpts struct {
	Limit int
}

// LLMUsage aggregates token counts for one purpose or model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// Summary aggregates historical practice activity for the stats command.
type Summary struct {
	SessionsCompleted int
	AnswersSubmitted  int
	HintsRevealed     int
	AverageScore      float64 // 0 when no scores exist
	TotalPracticeSecs int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	AppendSessionEvent(ctx context.Context, data SessionEventData) error
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error
	AppendHintEvent(ctx context.Context, data HintEventData) error
	AppendScoreEvent(ctx context.Context, data ScoreEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by id, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// Summary aggregates all-time practice activity.
	Summary(ctx context.Context) (Summary, error)
}

// DraftRepo is the persistence collaborator for auto-save. Implementations
// must tolerate being unavailable; callers degrade to in-memory operation.
type DraftRepo interface {
	// SaveDrafts replaces the stored snapshot for a session.
	SaveDrafts(ctx context.Context, sessionID string, snap *drafts.Snapshot) error

	// LoadDrafts returns the stored snapshot and its save time, or
	// (nil, zero, nil) when no snapshot exists for the session.
	LoadDrafts(ctx context.Context, sessionID string) (*drafts.Snapshot, time.Time, error)

	// DeleteDrafts removes the stored snapshot for a session.
	DeleteDrafts(ctx context.Context, sessionID string) error
}
