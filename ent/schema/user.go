package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("name").NotEmpty(),

		field.String("email").Unique().NotEmpty(),

		// Mark as Sensitive to prevent logging.
		field.Text("password_hash").Sensitive().NotEmpty(),

		field.Enum("role").
			Values("candidate", "employer", "admin").
			Default("candidate"),

		// Candidate profile fields, snapshotted onto applications at apply time.
		field.String("country").Optional(),
		field.String("timezone").Optional(),
		field.String("contact").Optional(),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

// Edges of the User. Define relationships here.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// Employer side: posted jobs and the (single) credit subscription.
		edge.To("jobsAsEmployer", Job.Type),
		edge.To("subscription", Subscription.Type).Unique(),

		// Candidate side: submitted applications.
		edge.To("applicationsAsCandidate", JobApplication.Type),
	}
}
