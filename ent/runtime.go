// Code generated by ent, DO NOT EDIT.

package ent

import (
	"prepkit/ent/answerevent"
	"prepkit/ent/draftsnapshot"
	"prepkit/ent/hintevent"
	"prepkit/ent/llmrequestevent"
	"prepkit/ent/schema"
	"prepkit/ent/scoreevent"
	"prepkit/ent/sessionevent"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescQuestionPrompt is the schema descriptor for question_prompt field.
	answereventDescQuestionPrompt := answereventFields[2].Descriptor()
	// answerevent.QuestionPromptValidator is a validator for the "question_prompt" field. It is called by the builders before save.
	answerevent.QuestionPromptValidator = answereventDescQuestionPrompt.Validators[0].(func(string) error)
	// answereventDescAnswerText is the schema descriptor for answer_text field.
	answereventDescAnswerText := answereventFields[3].Descriptor()
	// answerevent.AnswerTextValidator is a validator for the "answer_text" field. It is called by the builders before save.
	answerevent.AnswerTextValidator = answereventDescAnswerText.Validators[0].(func(string) error)
	// answereventDescHintsUsed is the schema descriptor for hints_used field.
	answereventDescHintsUsed := answereventFields[5].Descriptor()
	// answerevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	answerevent.DefaultHintsUsed = answereventDescHintsUsed.Default.(int)
	// answereventDescResubmission is the schema descriptor for resubmission field.
	answereventDescResubmission := answereventFields[6].Descriptor()
	// answerevent.DefaultResubmission holds the default value on creation for the resubmission field.
	answerevent.DefaultResubmission = answereventDescResubmission.Default.(bool)
	draftsnapshotFields := schema.DraftSnapshot{}.Fields()
	_ = draftsnapshotFields
	// draftsnapshotDescSessionID is the schema descriptor for session_id field.
	draftsnapshotDescSessionID := draftsnapshotFields[0].Descriptor()
	// draftsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	draftsnapshot.SessionIDValidator = draftsnapshotDescSessionID.Validators[0].(func(string) error)
	// draftsnapshotDescSavedAt is the schema descriptor for saved_at field.
	draftsnapshotDescSavedAt := draftsnapshotFields[1].Descriptor()
	// draftsnapshot.DefaultSavedAt holds the default value on creation for the saved_at field.
	draftsnapshot.DefaultSavedAt = draftsnapshotDescSavedAt.Default.(func() time.Time)
	hinteventMixin := schema.HintEvent{}.Mixin()
	hinteventMixinFields0 := hinteventMixin[0].Fields()
	_ = hinteventMixinFields0
	hinteventFields := schema.HintEvent{}.Fields()
	_ = hinteventFields
	// hinteventDescTimestamp is the schema descriptor for timestamp field.
	hinteventDescTimestamp := hinteventMixinFields0[1].Descriptor()
	// hintevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	hintevent.DefaultTimestamp = hinteventDescTimestamp.Default.(func() time.Time)
	// hinteventDescSessionID is the schema descriptor for session_id field.
	hinteventDescSessionID := hinteventFields[0].Descriptor()
	// hintevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	hintevent.SessionIDValidator = hinteventDescSessionID.Validators[0].(func(string) error)
	// hinteventDescQuestionID is the schema descriptor for question_id field.
	hinteventDescQuestionID := hinteventFields[1].Descriptor()
	// hintevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	hintevent.QuestionIDValidator = hinteventDescQuestionID.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	scoreeventMixin := schema.ScoreEvent{}.Mixin()
	scoreeventMixinFields0 := scoreeventMixin[0].Fields()
	_ = scoreeventMixinFields0
	scoreeventFields := schema.ScoreEvent{}.Fields()
	_ = scoreeventFields
	// scoreeventDescTimestamp is the schema descriptor for timestamp field.
	scoreeventDescTimestamp := scoreeventMixinFields0[1].Descriptor()
	// scoreevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	scoreevent.DefaultTimestamp = scoreeventDescTimestamp.Default.(func() time.Time)
	// scoreeventDescSessionID is the schema descriptor for session_id field.
	scoreeventDescSessionID := scoreeventFields[0].Descriptor()
	// scoreevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	scoreevent.SessionIDValidator = scoreeventDescSessionID.Validators[0].(func(string) error)
	// scoreeventDescQuestionID is the schema descriptor for question_id field.
	scoreeventDescQuestionID := scoreeventFields[1].Descriptor()
	// scoreevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	scoreevent.QuestionIDValidator = scoreeventDescQuestionID.Validators[0].(func(string) error)
	// scoreeventDescFeedback is the schema descriptor for feedback field.
	scoreeventDescFeedback := scoreeventFields[3].Descriptor()
	// scoreevent.DefaultFeedback holds the default value on creation for the feedback field.
	scoreevent.DefaultFeedback = scoreeventDescFeedback.Default.(string)
	// scoreeventDescHintPenalty is the schema descriptor for hint_penalty field.
	scoreeventDescHintPenalty := scoreeventFields[4].Descriptor()
	// scoreevent.DefaultHintPenalty holds the default value on creation for the hint_penalty field.
	scoreevent.DefaultHintPenalty = scoreeventDescHintPenalty.Default.(int)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescQuestionsTotal is the schema descriptor for questions_total field.
	sessioneventDescQuestionsTotal := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultQuestionsTotal holds the default value on creation for the questions_total field.
	sessionevent.DefaultQuestionsTotal = sessioneventDescQuestionsTotal.Default.(int)
	// sessioneventDescQuestionsCompleted is the schema descriptor for questions_completed field.
	sessioneventDescQuestionsCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsCompleted holds the default value on creation for the questions_completed field.
	sessionevent.DefaultQuestionsCompleted = sessioneventDescQuestionsCompleted.Default.(int)
	// sessioneventDescQuestionsSkipped is the schema descriptor for questions_skipped field.
	sessioneventDescQuestionsSkipped := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultQuestionsSkipped holds the default value on creation for the questions_skipped field.
	sessionevent.DefaultQuestionsSkipped = sessioneventDescQuestionsSkipped.Default.(int)
	// sessioneventDescHintsUsed is the schema descriptor for hints_used field.
	sessioneventDescHintsUsed := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultHintsUsed holds the default value on creation for the hints_used field.
	sessionevent.DefaultHintsUsed = sessioneventDescHintsUsed.Default.(int)
	// sessioneventDescPenaltyTotal is the schema descriptor for penalty_total field.
	sessioneventDescPenaltyTotal := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultPenaltyTotal holds the default value on creation for the penalty_total field.
	sessionevent.DefaultPenaltyTotal = sessioneventDescPenaltyTotal.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
