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

// Subscription holds the schema definition for the Subscription entity.
// One per employer; the snapshot fields mirror the Package template at
// purchase time and `credits` is the live remaining-credit counter.
type Subscription struct {
	ent.Schema
}

// Fields of the Subscription.
func (Subscription) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.UUID("employer_id", uuid.UUID{}).StorageKey("employer_id").Unique().Immutable(),

		// Current-package snapshot.
		field.UUID("package_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.JSON("features", []string{}).Optional(),
		field.Float("price_per_credit").Min(0),
		field.Int("credit_allowance").NonNegative(),
		field.Int("package_type").GoType(models.PackageType(0)),

		// Live counter. Debited one per test submission via a conditional
		// update; never allowed below zero.
		field.Int("credits").NonNegative(),

		field.Int("admin_credits_added").Default(0).NonNegative(),
		field.Int("admin_credits_removed").Default(0).NonNegative(),

		field.String("transaction_id").NotEmpty(),
		field.Time("granted_at").Default(time.Now),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Subscription) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "subscriptions"},
	}
}

// Edges of the Subscription.
func (Subscription) Edges() []ent.Edge {
	return []ent.Edge{
		// Subscription belongs to an employer (User). Required edge.
		edge.From("employer", User.Type).
			Ref("subscription").
			Required().
			Unique().
			Immutable().
			Field("employer_id"),

		// Superseded packages, append-only.
		edge.To("history", SubscriptionHistory.Type).Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}
