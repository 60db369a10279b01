package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScoreEvent records the AI scorer's verdict for a submitted answer.
// Scoring happens after submission and may fail without affecting the
// answer itself, so scores live in their own event type.
type ScoreEvent struct {
	ent.Schema
}

func (ScoreEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ScoreEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").NotEmpty(),
		field.String("question_id").NotEmpty(),
		field.Int("score").
			Comment("0-100, after hint penalty"),
		field.Text("feedback").
			Default("").
			Comment("Qualitative feedback from the scorer"),
		field.Int("hint_penalty").
			Default(0).
			Comment("Penalty magnitude supplied to the scorer"),
	}
}

func (ScoreEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
