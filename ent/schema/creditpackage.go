package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"hirehub/internal/models"
)

// CreditPackage holds the schema definition for the CreditPackage entity, the
// admin-managed credit-grant template. Type 0 is the free-trial singleton.
// The entity cannot be named plain Package: ent derives the generated package
// name from the lowercased type name, which would collide with the keyword.
type CreditPackage struct {
	ent.Schema
}

// Fields of the CreditPackage.
func (CreditPackage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).StorageKey("id").Immutable(),

		field.String("title").NotEmpty(),
		field.JSON("features", []string{}).Optional(),
		field.Float("price_per_credit").Min(0),
		field.Int("number_of_credits").Positive(),
		field.Int("package_type").GoType(models.PackageType(0)),

		field.Time("created_at").Immutable().Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CreditPackage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "packages"},
	}
}
