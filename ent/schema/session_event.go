package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle transitions
// (started, paused, resumed, completed, reset).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("started, paused, resumed, completed, or reset"),
		field.String("mode").
			NotEmpty().
			Comment("practice, assessment, or mock-interview"),
		field.Int("questions_total").
			Default(0).
			Comment("Questions in the session plan"),
		field.Int("questions_completed").
			Default(0).
			Comment("Answered questions (on completed only)"),
		field.Int("questions_skipped").
			Default(0).
			Comment("Skipped questions (on completed only)"),
		field.Int("hints_used").
			Default(0).
			Comment("Total hints revealed (on completed only)"),
		field.Int("penalty_total").
			Default(0).
			Comment("Cumulative hint penalty (on completed only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Actual elapsed seconds (on completed only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
		index.Fields("mode"),
	}
}
