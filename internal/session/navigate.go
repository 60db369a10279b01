package session

import (
	"context"
	"fmt"
	"os"
)

// GoTo moves the cursor to the question at index. Any unsaved draft on the
// outgoing question is flushed to storage before the move so that switching
// questions never loses work. Moving to the current index is a no-op.
func (e *Engine) GoTo(ctx context.Context, index int) error {
	if err := e.requireActive(); err != nil {
		return err
	}
	if index < 0 || index >= len(e.questions) {
		return ErrOutOfRange
	}
	if index == e.cursor {
		return nil
	}

	leaving := e.currentID()
	if e.settings.AutoSaveEnabled && e.drafts.Dirty(leaving) {
		if err := e.saver.Flush(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "warning: draft save on navigation failed: %v\n", err)
		}
	}
	e.watchFor(leaving).Pause()

	e.cursor = index
	e.watchFor(e.currentID()).Start()
	e.saver.SetActive(e.currentID())
	return nil
}

// Next advances to the following question. At the last question it returns
// ErrOutOfRange; there is no wraparound.
func (e *Engine) Next(ctx context.Context) error {
	return e.GoTo(ctx, e.cursor+1)
}

// Previous moves back one question. At the first question it returns
// ErrOutOfRange.
func (e *Engine) Previous(ctx context.Context) error {
	return e.GoTo(ctx, e.cursor-1)
}

// Skip marks the current question as skipped and advances. Skipping the
// last question completes the session.
func (e *Engine) Skip(ctx context.Context) error {
	if err := e.requireActive(); err != nil {
		return err
	}
	if !e.settings.SkipEnabled {
		return ErrSkipDisabled
	}
	qid := e.currentID()
	if _, answered := e.answers[qid]; !answered {
		e.skipped[qid] = true
	}
	if e.cursor+1 < len(e.questions) {
		return e.GoTo(ctx, e.cursor+1)
	}
	return e.complete(ctx)
}
