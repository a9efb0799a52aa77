// Code generated by ent, DO NOT EDIT.

package subscription

import (
	"hirehub/ent/predicate"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldID, id))
}

// EmployerID applies equality check predicate on the "employer_id" field. It's identical to EmployerIDEQ.
func EmployerID(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEmployerID, v))
}

// PackageID applies equality check predicate on the "package_id" field. It's identical to PackageIDEQ.
func PackageID(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPackageID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldTitle, v))
}

// PricePerCredit applies equality check predicate on the "price_per_credit" field. It's identical to PricePerCreditEQ.
func PricePerCredit(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPricePerCredit, v))
}

// CreditAllowance applies equality check predicate on the "credit_allowance" field. It's identical to CreditAllowanceEQ.
func CreditAllowance(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCreditAllowance, v))
}

// PackageType applies equality check predicate on the "package_type" field. It's identical to PackageTypeEQ.
func PackageType(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldEQ(FieldPackageType, vc))
}

// Credits applies equality check predicate on the "credits" field. It's identical to CreditsEQ.
func Credits(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCredits, v))
}

// AdminCreditsAdded applies equality check predicate on the "admin_credits_added" field. It's identical to AdminCreditsAddedEQ.
func AdminCreditsAdded(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldAdminCreditsAdded, v))
}

// AdminCreditsRemoved applies equality check predicate on the "admin_credits_removed" field. It's identical to AdminCreditsRemovedEQ.
func AdminCreditsRemoved(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldAdminCreditsRemoved, v))
}

// TransactionID applies equality check predicate on the "transaction_id" field. It's identical to TransactionIDEQ.
func TransactionID(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldTransactionID, v))
}

// GrantedAt applies equality check predicate on the "granted_at" field. It's identical to GrantedAtEQ.
func GrantedAt(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldGrantedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// EmployerIDEQ applies the EQ predicate on the "employer_id" field.
func EmployerIDEQ(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldEmployerID, v))
}

// EmployerIDNEQ applies the NEQ predicate on the "employer_id" field.
func EmployerIDNEQ(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldEmployerID, v))
}

// EmployerIDIn applies the In predicate on the "employer_id" field.
func EmployerIDIn(vs ...uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldEmployerID, vs...))
}

// EmployerIDNotIn applies the NotIn predicate on the "employer_id" field.
func EmployerIDNotIn(vs ...uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldEmployerID, vs...))
}

// PackageIDEQ applies the EQ predicate on the "package_id" field.
func PackageIDEQ(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPackageID, v))
}

// PackageIDNEQ applies the NEQ predicate on the "package_id" field.
func PackageIDNEQ(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldPackageID, v))
}

// PackageIDIn applies the In predicate on the "package_id" field.
func PackageIDIn(vs ...uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldPackageID, vs...))
}

// PackageIDNotIn applies the NotIn predicate on the "package_id" field.
func PackageIDNotIn(vs ...uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldPackageID, vs...))
}

// PackageIDGT applies the GT predicate on the "package_id" field.
func PackageIDGT(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldPackageID, v))
}

// PackageIDGTE applies the GTE predicate on the "package_id" field.
func PackageIDGTE(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldPackageID, v))
}

// PackageIDLT applies the LT predicate on the "package_id" field.
func PackageIDLT(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldPackageID, v))
}

// PackageIDLTE applies the LTE predicate on the "package_id" field.
func PackageIDLTE(v uuid.UUID) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldPackageID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContainsFold(FieldTitle, v))
}

// FeaturesIsNil applies the IsNil predicate on the "features" field.
func FeaturesIsNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldIsNull(FieldFeatures))
}

// FeaturesNotNil applies the NotNil predicate on the "features" field.
func FeaturesNotNil() predicate.Subscription {
	return predicate.Subscription(sql.FieldNotNull(FieldFeatures))
}

// PricePerCreditEQ applies the EQ predicate on the "price_per_credit" field.
func PricePerCreditEQ(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldPricePerCredit, v))
}

// PricePerCreditNEQ applies the NEQ predicate on the "price_per_credit" field.
func PricePerCreditNEQ(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldPricePerCredit, v))
}

// PricePerCreditIn applies the In predicate on the "price_per_credit" field.
func PricePerCreditIn(vs ...float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldPricePerCredit, vs...))
}

// PricePerCreditNotIn applies the NotIn predicate on the "price_per_credit" field.
func PricePerCreditNotIn(vs ...float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldPricePerCredit, vs...))
}

// PricePerCreditGT applies the GT predicate on the "price_per_credit" field.
func PricePerCreditGT(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldPricePerCredit, v))
}

// PricePerCreditGTE applies the GTE predicate on the "price_per_credit" field.
func PricePerCreditGTE(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldPricePerCredit, v))
}

// PricePerCreditLT applies the LT predicate on the "price_per_credit" field.
func PricePerCreditLT(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldPricePerCredit, v))
}

// PricePerCreditLTE applies the LTE predicate on the "price_per_credit" field.
func PricePerCreditLTE(v float64) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldPricePerCredit, v))
}

// CreditAllowanceEQ applies the EQ predicate on the "credit_allowance" field.
func CreditAllowanceEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCreditAllowance, v))
}

// CreditAllowanceNEQ applies the NEQ predicate on the "credit_allowance" field.
func CreditAllowanceNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCreditAllowance, v))
}

// CreditAllowanceIn applies the In predicate on the "credit_allowance" field.
func CreditAllowanceIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCreditAllowance, vs...))
}

// CreditAllowanceNotIn applies the NotIn predicate on the "credit_allowance" field.
func CreditAllowanceNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCreditAllowance, vs...))
}

// CreditAllowanceGT applies the GT predicate on the "credit_allowance" field.
func CreditAllowanceGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldCreditAllowance, v))
}

// CreditAllowanceGTE applies the GTE predicate on the "credit_allowance" field.
func CreditAllowanceGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldCreditAllowance, v))
}

// CreditAllowanceLT applies the LT predicate on the "credit_allowance" field.
func CreditAllowanceLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldCreditAllowance, v))
}

// CreditAllowanceLTE applies the LTE predicate on the "credit_allowance" field.
func CreditAllowanceLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldCreditAllowance, v))
}

// PackageTypeEQ applies the EQ predicate on the "package_type" field.
func PackageTypeEQ(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldEQ(FieldPackageType, vc))
}

// PackageTypeNEQ applies the NEQ predicate on the "package_type" field.
func PackageTypeNEQ(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldNEQ(FieldPackageType, vc))
}

// PackageTypeIn applies the In predicate on the "package_type" field.
func PackageTypeIn(vs ...models.PackageType) predicate.Subscription {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.Subscription(sql.FieldIn(FieldPackageType, v...))
}

// PackageTypeNotIn applies the NotIn predicate on the "package_type" field.
func PackageTypeNotIn(vs ...models.PackageType) predicate.Subscription {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.Subscription(sql.FieldNotIn(FieldPackageType, v...))
}

// PackageTypeGT applies the GT predicate on the "package_type" field.
func PackageTypeGT(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldGT(FieldPackageType, vc))
}

// PackageTypeGTE applies the GTE predicate on the "package_type" field.
func PackageTypeGTE(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldGTE(FieldPackageType, vc))
}

// PackageTypeLT applies the LT predicate on the "package_type" field.
func PackageTypeLT(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldLT(FieldPackageType, vc))
}

// PackageTypeLTE applies the LTE predicate on the "package_type" field.
func PackageTypeLTE(v models.PackageType) predicate.Subscription {
	vc := int(v)
	return predicate.Subscription(sql.FieldLTE(FieldPackageType, vc))
}

// CreditsEQ applies the EQ predicate on the "credits" field.
func CreditsEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCredits, v))
}

// CreditsNEQ applies the NEQ predicate on the "credits" field.
func CreditsNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCredits, v))
}

// CreditsIn applies the In predicate on the "credits" field.
func CreditsIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCredits, vs...))
}

// CreditsNotIn applies the NotIn predicate on the "credits" field.
func CreditsNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCredits, vs...))
}

// CreditsGT applies the GT predicate on the "credits" field.
func CreditsGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldCredits, v))
}

// CreditsGTE applies the GTE predicate on the "credits" field.
func CreditsGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldCredits, v))
}

// CreditsLT applies the LT predicate on the "credits" field.
func CreditsLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldCredits, v))
}

// CreditsLTE applies the LTE predicate on the "credits" field.
func CreditsLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldCredits, v))
}

// AdminCreditsAddedEQ applies the EQ predicate on the "admin_credits_added" field.
func AdminCreditsAddedEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldAdminCreditsAdded, v))
}

// AdminCreditsAddedNEQ applies the NEQ predicate on the "admin_credits_added" field.
func AdminCreditsAddedNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldAdminCreditsAdded, v))
}

// AdminCreditsAddedIn applies the In predicate on the "admin_credits_added" field.
func AdminCreditsAddedIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldAdminCreditsAdded, vs...))
}

// AdminCreditsAddedNotIn applies the NotIn predicate on the "admin_credits_added" field.
func AdminCreditsAddedNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldAdminCreditsAdded, vs...))
}

// AdminCreditsAddedGT applies the GT predicate on the "admin_credits_added" field.
func AdminCreditsAddedGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldAdminCreditsAdded, v))
}

// AdminCreditsAddedGTE applies the GTE predicate on the "admin_credits_added" field.
func AdminCreditsAddedGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldAdminCreditsAdded, v))
}

// AdminCreditsAddedLT applies the LT predicate on the "admin_credits_added" field.
func AdminCreditsAddedLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldAdminCreditsAdded, v))
}

// AdminCreditsAddedLTE applies the LTE predicate on the "admin_credits_added" field.
func AdminCreditsAddedLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldAdminCreditsAdded, v))
}

// AdminCreditsRemovedEQ applies the EQ predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldAdminCreditsRemoved, v))
}

// AdminCreditsRemovedNEQ applies the NEQ predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedNEQ(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldAdminCreditsRemoved, v))
}

// AdminCreditsRemovedIn applies the In predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldAdminCreditsRemoved, vs...))
}

// AdminCreditsRemovedNotIn applies the NotIn predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedNotIn(vs ...int) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldAdminCreditsRemoved, vs...))
}

// AdminCreditsRemovedGT applies the GT predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedGT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldAdminCreditsRemoved, v))
}

// AdminCreditsRemovedGTE applies the GTE predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedGTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldAdminCreditsRemoved, v))
}

// AdminCreditsRemovedLT applies the LT predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedLT(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldAdminCreditsRemoved, v))
}

// AdminCreditsRemovedLTE applies the LTE predicate on the "admin_credits_removed" field.
func AdminCreditsRemovedLTE(v int) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldAdminCreditsRemoved, v))
}

// TransactionIDEQ applies the EQ predicate on the "transaction_id" field.
func TransactionIDEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldTransactionID, v))
}

// TransactionIDNEQ applies the NEQ predicate on the "transaction_id" field.
func TransactionIDNEQ(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldTransactionID, v))
}

// TransactionIDIn applies the In predicate on the "transaction_id" field.
func TransactionIDIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldTransactionID, vs...))
}

// TransactionIDNotIn applies the NotIn predicate on the "transaction_id" field.
func TransactionIDNotIn(vs ...string) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldTransactionID, vs...))
}

// TransactionIDGT applies the GT predicate on the "transaction_id" field.
func TransactionIDGT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldTransactionID, v))
}

// TransactionIDGTE applies the GTE predicate on the "transaction_id" field.
func TransactionIDGTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldTransactionID, v))
}

// TransactionIDLT applies the LT predicate on the "transaction_id" field.
func TransactionIDLT(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldTransactionID, v))
}

// TransactionIDLTE applies the LTE predicate on the "transaction_id" field.
func TransactionIDLTE(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldTransactionID, v))
}

// TransactionIDContains applies the Contains predicate on the "transaction_id" field.
func TransactionIDContains(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContains(FieldTransactionID, v))
}

// TransactionIDHasPrefix applies the HasPrefix predicate on the "transaction_id" field.
func TransactionIDHasPrefix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasPrefix(FieldTransactionID, v))
}

// TransactionIDHasSuffix applies the HasSuffix predicate on the "transaction_id" field.
func TransactionIDHasSuffix(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldHasSuffix(FieldTransactionID, v))
}

// TransactionIDEqualFold applies the EqualFold predicate on the "transaction_id" field.
func TransactionIDEqualFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldEqualFold(FieldTransactionID, v))
}

// TransactionIDContainsFold applies the ContainsFold predicate on the "transaction_id" field.
func TransactionIDContainsFold(v string) predicate.Subscription {
	return predicate.Subscription(sql.FieldContainsFold(FieldTransactionID, v))
}

// GrantedAtEQ applies the EQ predicate on the "granted_at" field.
func GrantedAtEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldGrantedAt, v))
}

// GrantedAtNEQ applies the NEQ predicate on the "granted_at" field.
func GrantedAtNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldGrantedAt, v))
}

// GrantedAtIn applies the In predicate on the "granted_at" field.
func GrantedAtIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldGrantedAt, vs...))
}

// GrantedAtNotIn applies the NotIn predicate on the "granted_at" field.
func GrantedAtNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldGrantedAt, vs...))
}

// GrantedAtGT applies the GT predicate on the "granted_at" field.
func GrantedAtGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldGrantedAt, v))
}

// GrantedAtGTE applies the GTE predicate on the "granted_at" field.
func GrantedAtGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldGrantedAt, v))
}

// GrantedAtLT applies the LT predicate on the "granted_at" field.
func GrantedAtLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldGrantedAt, v))
}

// GrantedAtLTE applies the LTE predicate on the "granted_at" field.
func GrantedAtLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldGrantedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Subscription {
	return predicate.Subscription(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasEmployer applies the HasEdge predicate on the "employer" edge.
func HasEmployer() predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, EmployerTable, EmployerColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasEmployerWith applies the HasEdge predicate on the "employer" edge with a given conditions (other predicates).
func HasEmployerWith(preds ...predicate.User) predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := newEmployerStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHistory applies the HasEdge predicate on the "history" edge.
func HasHistory() predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, HistoryTable, HistoryColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHistoryWith applies the HasEdge predicate on the "history" edge with a given conditions (other predicates).
func HasHistoryWith(preds ...predicate.SubscriptionHistory) predicate.Subscription {
	return predicate.Subscription(func(s *sql.Selector) {
		step := newHistoryStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Subscription) predicate.Subscription {
	return predicate.Subscription(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Subscription) predicate.Subscription {
	return predicate.Subscription(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Subscription) predicate.Subscription {
	return predicate.Subscription(sql.NotPredicates(p))
}
