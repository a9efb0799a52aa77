package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"hirehub/internal/models"
)

// JobApplication holds the schema definition for the JobApplication entity.
type JobApplication struct {
	ent.Schema
}

// Fields of the JobApplication.
func (JobApplication) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("job_id", uuid.UUID{}).StorageKey("job_id").Immutable(),
		field.UUID("candidate_id", uuid.UUID{}).StorageKey("candidate_id").Immutable(),

		// Forward-only progress marker. Value 2 is reserved, see models.
		field.Int("status").
			GoType(models.ApplicationStatus(0)).
			Default(int(models.StatusPending)),

		// Terminal verdict, orthogonal to status.
		field.Int("outcome").
			GoType(models.ApplicationOutcome(0)).
			Default(int(models.OutcomeInProgress)),

		// Candidate snapshot at apply time.
		field.String("candidate_name"),
		field.String("candidate_email"),
		field.String("candidate_country").Optional(),
		field.String("candidate_timezone").Optional(),
		field.String("candidate_contact").Optional(),

		// Submitted artifacts as object-storage keys, not URLs.
		field.String("cv_key").Optional(),
		field.String("cover_letter_key").Optional(),
		field.String("about_video_key").Optional(),
		field.String("contract_key").Optional(),

		field.Text("note").Optional(),

		field.Time("deleted_at").Optional().Nillable(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (JobApplication) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_applications"},
	}
}

// Indexes of the JobApplication. One live application per (job, candidate);
// soft-deleted rows are excluded so a candidate can re-apply after a delete.
func (JobApplication) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "candidate_id").
			Unique().
			Annotations(entsql.IndexWhere("deleted_at IS NULL")),
	}
}

// Edges of the JobApplication.
func (JobApplication) Edges() []ent.Edge {
	return []ent.Edge{
		// Application belongs to a candidate (User). Required edge.
		edge.From("candidate", User.Type).
			Ref("applicationsAsCandidate").
			Required().
			Unique().
			Immutable().
			Field("candidate_id"),

		// Application is for a specific Job. Required edge.
		edge.From("job", Job.Type).
			Ref("applications").
			Required().
			Unique().
			Immutable().
			Field("job_id"),

		// At most one submitted test per application.
		edge.To("submitted_test", SubmittedTest.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
