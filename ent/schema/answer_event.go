package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records a submitted final answer within a session.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("question_id").
			NotEmpty().
			Comment("Question this answer is for"),
		field.String("question_prompt").
			NotEmpty().
			Comment("The question shown"),
		field.Text("answer_text").
			NotEmpty().
			Comment("The committed answer, whitespace-trimmed"),
		field.Int("time_spent_secs").
			Comment("Seconds between question view start and submission"),
		field.Int("hints_used").
			Default(0).
			Comment("Hint levels revealed at submission time"),
		field.Bool("resubmission").
			Default(false).
			Comment("Whether this replaced an earlier answer"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("question_id"),
	}
}
