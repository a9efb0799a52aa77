package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"hirehub/internal/models"
)

// Job holds the schema definition for the Job entity.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("employer_id", uuid.UUID{}).StorageKey("employer_id").Immutable(),

		field.String("title").NotEmpty(),
		field.Text("description").Optional(),

		// Map JobStatus enum to Ent's enum field
		field.Enum("status").
			Values("Active", "Closed", "Archived").
			Default("Active"),

		// Test-builder question set, a typed union per question type.
		field.JSON("questions", []models.Question{}).Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		// Job belongs to an employer (User). Required edge.
		edge.From("employer", User.Type).
			Ref("jobsAsEmployer").
			Required().
			Unique().
			Immutable().
			Field("employer_id"),

		// Job has multiple applications.
		edge.To("applications", JobApplication.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
