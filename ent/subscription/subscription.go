// Code generated by ent, DO NOT EDIT.

package subscription

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the subscription type in the database.
	Label = "subscription"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEmployerID holds the string denoting the employer_id field in the database.
	FieldEmployerID = "employer_id"
	// FieldPackageID holds the string denoting the package_id field in the database.
	FieldPackageID = "package_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFeatures holds the string denoting the features field in the database.
	FieldFeatures = "features"
	// FieldPricePerCredit holds the string denoting the price_per_credit field in the database.
	FieldPricePerCredit = "price_per_credit"
	// FieldCreditAllowance holds the string denoting the credit_allowance field in the database.
	FieldCreditAllowance = "credit_allowance"
	// FieldPackageType holds the string denoting the package_type field in the database.
	FieldPackageType = "package_type"
	// FieldCredits holds the string denoting the credits field in the database.
	FieldCredits = "credits"
	// FieldAdminCreditsAdded holds the string denoting the admin_credits_added field in the database.
	FieldAdminCreditsAdded = "admin_credits_added"
	// FieldAdminCreditsRemoved holds the string denoting the admin_credits_removed field in the database.
	FieldAdminCreditsRemoved = "admin_credits_removed"
	// FieldTransactionID holds the string denoting the transaction_id field in the database.
	FieldTransactionID = "transaction_id"
	// FieldGrantedAt holds the string denoting the granted_at field in the database.
	FieldGrantedAt = "granted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeEmployer holds the string denoting the employer edge name in mutations.
	EdgeEmployer = "employer"
	// EdgeHistory holds the string denoting the history edge name in mutations.
	EdgeHistory = "history"
	// Table holds the table name of the subscription in the database.
	Table = "subscriptions"
	// EmployerTable is the table that holds the employer relation/edge.
	EmployerTable = "subscriptions"
	// EmployerInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	EmployerInverseTable = "users"
	// EmployerColumn is the table column denoting the employer relation/edge.
	EmployerColumn = "employer_id"
	// HistoryTable is the table that holds the history relation/edge.
	HistoryTable = "subscription_history"
	// HistoryInverseTable is the table name for the SubscriptionHistory entity.
	// It exists in this package in order to avoid circular dependency with the "subscriptionhistory" package.
	HistoryInverseTable = "subscription_history"
	// HistoryColumn is the table column denoting the history relation/edge.
	HistoryColumn = "subscription_id"
)

// Columns holds all SQL columns for subscription fields.
var Columns = []string{
	FieldID,
	FieldEmployerID,
	FieldPackageID,
	FieldTitle,
	FieldFeatures,
	FieldPricePerCredit,
	FieldCreditAllowance,
	FieldPackageType,
	FieldCredits,
	FieldAdminCreditsAdded,
	FieldAdminCreditsRemoved,
	FieldTransactionID,
	FieldGrantedAt,
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
	// CreditAllowanceValidator is a validator for the "credit_allowance" field. It is called by the builders before save.
	CreditAllowanceValidator func(int) error
	// CreditsValidator is a validator for the "credits" field. It is called by the builders before save.
	CreditsValidator func(int) error
	// DefaultAdminCreditsAdded holds the default value on creation for the "admin_credits_added" field.
	DefaultAdminCreditsAdded int
	// AdminCreditsAddedValidator is a validator for the "admin_credits_added" field. It is called by the builders before save.
	AdminCreditsAddedValidator func(int) error
	// DefaultAdminCreditsRemoved holds the default value on creation for the "admin_credits_removed" field.
	DefaultAdminCreditsRemoved int
	// AdminCreditsRemovedValidator is a validator for the "admin_credits_removed" field. It is called by the builders before save.
	AdminCreditsRemovedValidator func(int) error
	// TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	TransactionIDValidator func(string) error
	// DefaultGrantedAt holds the default value on creation for the "granted_at" field.
	DefaultGrantedAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Subscription queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEmployerID orders the results by the employer_id field.
func ByEmployerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployerID, opts...).ToFunc()
}

// ByPackageID orders the results by the package_id field.
func ByPackageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByPricePerCredit orders the results by the price_per_credit field.
func ByPricePerCredit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPricePerCredit, opts...).ToFunc()
}

// ByCreditAllowance orders the results by the credit_allowance field.
func ByCreditAllowance(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreditAllowance, opts...).ToFunc()
}

// ByPackageType orders the results by the package_type field.
func ByPackageType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPackageType, opts...).ToFunc()
}

// ByCredits orders the results by the credits field.
func ByCredits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCredits, opts...).ToFunc()
}

// ByAdminCreditsAdded orders the results by the admin_credits_added field.
func ByAdminCreditsAdded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminCreditsAdded, opts...).ToFunc()
}

// ByAdminCreditsRemoved orders the results by the admin_credits_removed field.
func ByAdminCreditsRemoved(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAdminCreditsRemoved, opts...).ToFunc()
}

// ByTransactionID orders the results by the transaction_id field.
func ByTransactionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransactionID, opts...).ToFunc()
}

// ByGrantedAt orders the results by the granted_at field.
func ByGrantedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrantedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmployerField orders the results by employer field.
func ByEmployerField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newEmployerStep(), sql.OrderByField(field, opts...))
	}
}

// ByHistoryCount orders the results by history count.
func ByHistoryCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newHistoryStep(), opts...)
	}
}

// ByHistory orders the results by history terms.
func ByHistory(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHistoryStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newEmployerStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(EmployerInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, EmployerTable, EmployerColumn),
	)
}
func newHistoryStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HistoryInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, HistoryTable, HistoryColumn),
	)
}
