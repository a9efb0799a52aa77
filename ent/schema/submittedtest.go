package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"hirehub/internal/models"
)

// SubmittedTest holds the schema definition for the SubmittedTest entity.
// One per application; immutable except for per-answer grading.
type SubmittedTest struct {
	ent.Schema
}

// Fields of the SubmittedTest.
func (SubmittedTest) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("application_id", uuid.UUID{}).StorageKey("application_id").Unique().Immutable(),
		field.UUID("candidate_id", uuid.UUID{}).StorageKey("candidate_id").Immutable(),

		field.String("video_key").Immutable(),

		// Answers carry a later-settable is_correct judgement per question.
		field.JSON("answers", []models.Answer{}),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (SubmittedTest) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "submitted_tests"},
	}
}

// Edges of the SubmittedTest.
func (SubmittedTest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("application", JobApplication.Type).
			Ref("submitted_test").
			Required().
			Unique().
			Immutable().
			Field("application_id"),
	}
}
