package session

import "errors"

// Sentinel errors returned by engine operations. Callers match these with
// errors.Is to translate rejections into user-facing feedback.
var (
	ErrNoQuestions      = errors.New("session requires at least one question")
	ErrAlreadyStarted   = errors.New("session already started")
	ErrNotActive        = errors.New("session is not active")
	ErrNotPaused        = errors.New("session is not paused")
	ErrSessionCompleted = errors.New("session completed")
	ErrOutOfRange       = errors.New("question index out of range")
	ErrEmptyAnswer      = errors.New("answer is empty")
	ErrAlreadyAnswered  = errors.New("question already answered")
	ErrHintsDisabled    = errors.New("hints are disabled for this session")
	ErrSkipDisabled     = errors.New("skipping is disabled for this session")
)
