package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DraftSnapshot holds the latest auto-saved drafts for a session, enabling
// resume-after-restart. One row per session, replaced on every save.
type DraftSnapshot struct {
	ent.Schema
}

// DraftEntry is the serialized form of one draft for persistence.
// Array form keeps question order across a round trip.
type DraftEntry struct {
	QuestionID string `json:"question_id"`
	Content    string `json:"content"`
}

func (DraftSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Unique().
			Comment("Session these drafts belong to"),
		field.Time("saved_at").
			Default(time.Now).
			Comment("When this snapshot was persisted"),
		field.JSON("entries", []DraftEntry{}).
			Comment("Ordered question_id/content pairs"),
	}
}

func (DraftSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("saved_at"),
	}
}
