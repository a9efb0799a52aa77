// Code generated by ent, DO NOT EDIT.

package creditpackage

import (
	"hirehub/ent/predicate"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLTE(FieldID, id))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldTitle, v))
}

// PricePerCredit applies equality check predicate on the "price_per_credit" field. It's identical to PricePerCreditEQ.
func PricePerCredit(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldPricePerCredit, v))
}

// NumberOfCredits applies equality check predicate on the "number_of_credits" field. It's identical to NumberOfCreditsEQ.
func NumberOfCredits(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldNumberOfCredits, v))
}

// PackageType applies equality check predicate on the "package_type" field. It's identical to PackageTypeEQ.
func PackageType(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldEQ(FieldPackageType, vc))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldContainsFold(FieldTitle, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotNull(FieldFeatures))
}

// PricePerCreditEQ applies the EQ predicate on the "price_per_credit" field.
func PricePerCreditEQ(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldPricePerCredit, v))
}

// PricePerCreditNEQ applies the NEQ predicate on the "price_per_credit" field.
func PricePerCreditNEQ(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNEQ(FieldPricePerCredit, v))
}

// PricePerCreditIn applies the In predicate on the "price_per_credit" field.
func PricePerCreditIn(vs ...float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIn(FieldPricePerCredit, vs...))
}

// PricePerCreditNotIn applies the NotIn predicate on the "price_per_credit" field.
func PricePerCreditNotIn(vs ...float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotIn(FieldPricePerCredit, vs...))
}

// PricePerCreditGT applies the GT predicate on the "price_per_credit" field.
func PricePerCreditGT(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGT(FieldPricePerCredit, v))
}

// PricePerCreditGTE applies the GTE predicate on the "price_per_credit" field.
func PricePerCreditGTE(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGTE(FieldPricePerCredit, v))
}

// PricePerCreditLT applies the LT predicate on the "price_per_credit" field.
func PricePerCreditLT(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLT(FieldPricePerCredit, v))
}

// PricePerCreditLTE applies the LTE predicate on the "price_per_credit" field.
func PricePerCreditLTE(v float64) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLTE(FieldPricePerCredit, v))
}

// NumberOfCreditsEQ applies the EQ predicate on the "number_of_credits" field.
func NumberOfCreditsEQ(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldNumberOfCredits, v))
}

// NumberOfCreditsNEQ applies the NEQ predicate on the "number_of_credits" field.
func NumberOfCreditsNEQ(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNEQ(FieldNumberOfCredits, v))
}

// NumberOfCreditsIn applies the In predicate on the "number_of_credits" field.
func NumberOfCreditsIn(vs ...int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIn(FieldNumberOfCredits, vs...))
}

// NumberOfCreditsNotIn applies the NotIn predicate on the "number_of_credits" field.
func NumberOfCreditsNotIn(vs ...int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotIn(FieldNumberOfCredits, vs...))
}

// NumberOfCreditsGT applies the GT predicate on the "number_of_credits" field.
func NumberOfCreditsGT(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGT(FieldNumberOfCredits, v))
}

// NumberOfCreditsGTE applies the GTE predicate on the "number_of_credits" field.
func NumberOfCreditsGTE(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGTE(FieldNumberOfCredits, v))
}

// NumberOfCreditsLT applies the LT predicate on the "number_of_credits" field.
func NumberOfCreditsLT(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLT(FieldNumberOfCredits, v))
}

// NumberOfCreditsLTE applies the LTE predicate on the "number_of_credits" field.
func NumberOfCreditsLTE(v int) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLTE(FieldNumberOfCredits, v))
}

// PackageTypeEQ applies the EQ predicate on the "package_type" field.
func PackageTypeEQ(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldEQ(FieldPackageType, vc))
}

// PackageTypeNEQ applies the NEQ predicate on the "package_type" field.
func PackageTypeNEQ(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldNEQ(FieldPackageType, vc))
}

// PackageTypeIn applies the In predicate on the "package_type" field.
func PackageTypeIn(vs ...models.PackageType) predicate.CreditPackage {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.CreditPackage(sql.FieldIn(FieldPackageType, v...))
}

// PackageTypeNotIn applies the NotIn predicate on the "package_type" field.
func PackageTypeNotIn(vs ...models.PackageType) predicate.CreditPackage {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.CreditPackage(sql.FieldNotIn(FieldPackageType, v...))
}

// PackageTypeGT applies the GT predicate on the "package_type" field.
func PackageTypeGT(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldGT(FieldPackageType, vc))
}

// PackageTypeGTE applies the GTE predicate on the "package_type" field.
func PackageTypeGTE(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldGTE(FieldPackageType, vc))
}

// PackageTypeLT applies the LT predicate on the "package_type" field.
func PackageTypeLT(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldLT(FieldPackageType, vc))
}

// PackageTypeLTE applies the LTE predicate on the "package_type" field.
func PackageTypeLTE(v models.PackageType) predicate.CreditPackage {
	vc := int(v)
	return predicate.CreditPackage(sql.FieldLTE(FieldPackageType, vc))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreditPackage {
	return predicate.CreditPackage(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreditPackage) predicate.CreditPackage {
	return predicate.CreditPackage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreditPackage) predicate.CreditPackage {
	return predicate.CreditPackage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreditPackage) predicate.CreditPackage {
	return predicate.CreditPackage(sql.NotPredicates(p))
}
