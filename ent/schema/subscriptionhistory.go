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

// SubscriptionHistory holds the schema definition for superseded packages.
// Rows are written once when a new package replaces the current one and are
// never updated or deleted afterwards.
type SubscriptionHistory struct {
	ent.Schema
}

// Fields of the SubscriptionHistory.
func (SubscriptionHistory) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("subscription_id", uuid.UUID{}).StorageKey("subscription_id").Immutable(),

		// Full package snapshot as it stood at replacement time, including
		// remaining credits and admin adjustments. Unused credits are
		// archived here, not carried forward.
		field.JSON("snapshot", models.PackageSnapshot{}).Immutable(),

		field.Time("archived_at").Immutable().Default(time.Now),
	}
}

func (SubscriptionHistory) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subscription_history"},
	}
}

// Edges of the SubscriptionHistory.
func (SubscriptionHistory) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("subscription", Subscription.Type).
			Ref("history").
			Required().
			Unique().
			Immutable().
			Field("subscription_id"),
	}
}
