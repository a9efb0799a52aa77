// Code generated by ent, DO NOT EDIT.

package creditpackage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the creditpackage type in the database.
	Label = "credit_package"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldPricePerCredit holds the string denoting the price_per_credit field in the database.
	FieldPricePerCredit = "price_per_credit"
	// FieldNumberOfCredits holds the string denoting the number_of_credits field in the database.
	FieldNumberOfCredits = "number_of_credits"
	// FieldPackageType holds the string denoting the package_type field in the database.
	FieldPackageType = "package_type"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the creditpackage in the database.
	Table = "packages"
)

// Columns holds all SQL columns for creditpackage fields.
var Columns = []string{
	FieldID,
	FieldTitle,
	FieldFeatures,
	FieldPricePerCredit,
	FieldNumberOfCredits,
	FieldPackageType,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// PricePerCreditValidator is a validator for the "price_per_credit" field. It is called by the builders before save.
	PricePerCreditValidator func(float64) error
	// NumberOfCreditsValidator is a validator for the "number_of_credits" field. It is called by the builders before save.
	NumberOfCreditsValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CreditPackage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPricePerCredit orders the results by the price_per_credit field.
func ByPricePerCredit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerCredit, opts...).ToFunc()
}

// ByNumberOfCredits orders the results by the number_of_credits field.
func ByNumberOfCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumberOfCredits, opts...).ToFunc()
}

// ByPackageType orders the results by the package_type field.
func ByPackageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageType, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
