// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"hirehub/ent/subscription"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// Subscription is the model entity for the Subscription schema.
type Subscription struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// EmployerID holds the value of the "employer_id" field.
	EmployerID uuid.UUID `json:"employer_id,omitempty"`
	// PackageID holds the value of the "package_id" field.
	PackageID uuid.UUID `json:"package_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Features holds the value of the "features" field.
	Features []string `json:"features,omitempty"`
	// PricePerCredit holds the value of the "price_per_credit" field.
	PricePerCredit float64 `json:"price_per_credit,omitempty"`
	// CreditAllowance holds the value of the "credit_allowance" field.
	CreditAllowance int `json:"credit_allowance,omitempty"`
	// PackageType holds the value of the "package_type" field.
	PackageType models.PackageType `json:"package_type,omitempty"`
	// Credits holds the value of the "credits" field.
	Credits int `json:"credits,omitempty"`
	// AdminCreditsAdded holds the value of the "admin_credits_added" field.
	AdminCreditsAdded int `json:"admin_credits_added,omitempty"`
	// AdminCreditsRemoved holds the value of the "admin_credits_removed" field.
	AdminCreditsRemoved int `json:"admin_credits_removed,omitempty"`
	// TransactionID holds the value of the "transaction_id" field.
	TransactionID string `json:"transaction_id,omitempty"`
	// GrantedAt holds the value of the "granted_at" field.
	GrantedAt time.Time `json:"granted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubscriptionQuery when eager-loading is set.
	Edges        SubscriptionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubscriptionEdges holds the relations/edges for other nodes in the graph.
type SubscriptionEdges struct {
	// Employer holds the value of the employer edge.
	Employer *User `json:"employer,omitempty"`
	// History holds the value of the history edge.
	History []*SubscriptionHistory `json:"history,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// EmployerOrErr returns the Employer value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubscriptionEdges) EmployerOrErr() (*User, error) {
	if e.Employer != nil {
		return e.Employer, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "employer"}
}

// HistoryOrErr returns the History value or an error if the edge
// was not loaded in eager-loading.
func (e SubscriptionEdges) HistoryOrErr() ([]*SubscriptionHistory, error) {
	if e.loadedTypes[1] {
		return e.History, nil
	}
	return nil, &NotLoadedError{edge: "history"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subscription) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscription.FieldFeatures:
			values[i] = new([]byte)
		case subscription.FieldPricePerCredit:
			values[i] = new(sql.NullFloat64)
		case subscription.FieldCreditAllowance, subscription.FieldPackageType, subscription.FieldCredits, subscription.FieldAdminCreditsAdded, subscription.FieldAdminCreditsRemoved:
			values[i] = new(sql.NullInt64)
		case subscription.FieldTitle, subscription.FieldTransactionID:
			values[i] = new(sql.NullString)
		case subscription.FieldGrantedAt, subscription.FieldCreatedAt, subscription.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case subscription.FieldID, subscription.FieldEmployerID, subscription.FieldPackageID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subscription fields.
func (s *Subscription) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscription.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				s.ID = *value
			}
		case subscription.FieldEmployerID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field employer_id", values[i])
			} else if value != nil {
				s.EmployerID = *value
			}
		case subscription.FieldPackageID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field package_id", values[i])
			} else if value != nil {
				s.PackageID = *value
			}
		case subscription.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				s.Title = value.String
			}
		case subscription.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &s.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case subscription.FieldPricePerCredit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_per_credit", values[i])
			} else if value.Valid {
				s.PricePerCredit = value.Float64
			}
		case subscription.FieldCreditAllowance:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credit_allowance", values[i])
			} else if value.Valid {
				s.CreditAllowance = int(value.Int64)
			}
		case subscription.FieldPackageType:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_type", values[i])
			} else if value.Valid {
				s.PackageType = models.PackageType(value.Int64)
			}
		case subscription.FieldCredits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field credits", values[i])
			} else if value.Valid {
				s.Credits = int(value.Int64)
			}
		case subscription.FieldAdminCreditsAdded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_credits_added", values[i])
			} else if value.Valid {
				s.AdminCreditsAdded = int(value.Int64)
			}
		case subscription.FieldAdminCreditsRemoved:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field admin_credits_removed", values[i])
			} else if value.Valid {
				s.AdminCreditsRemoved = int(value.Int64)
			}
		case subscription.FieldTransactionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transaction_id", values[i])
			} else if value.Valid {
				s.TransactionID = value.String
			}
		case subscription.FieldGrantedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field granted_at", values[i])
			} else if value.Valid {
				s.GrantedAt = value.Time
			}
		case subscription.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				s.CreatedAt = value.Time
			}
		case subscription.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				s.UpdatedAt = value.Time
			}
		default:
			s.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subscription.
// This includes values selected through modifiers, order, etc.
func (s *Subscription) Value(name string) (ent.Value, error) {
	return s.selectValues.Get(name)
}

// QueryEmployer queries the "employer" edge of the Subscription entity.
func (s *Subscription) QueryEmployer() *UserQuery {
	return NewSubscriptionClient(s.config).QueryEmployer(s)
}

// QueryHistory queries the "history" edge of the Subscription entity.
func (s *Subscription) QueryHistory() *SubscriptionHistoryQuery {
	return NewSubscriptionClient(s.config).QueryHistory(s)
}

// Update returns a builder for updating this Subscription.
// Note that you need to call Subscription.Unwrap() before calling this method if this Subscription
// was returned from a transaction, and the transaction was committed or rolled back.
func (s *Subscription) Update() *SubscriptionUpdateOne {
	return NewSubscriptionClient(s.config).UpdateOne(s)
}

// Unwrap unwraps the Subscription entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (s *Subscription) Unwrap() *Subscription {
	_tx, ok := s.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subscription is not a transactional entity")
	}
	s.config.driver = _tx.drv
	return s
}

// String implements the fmt.Stringer.
func (s *Subscription) String() string {
	var builder strings.Builder
	builder.WriteString("Subscription(")
	builder.WriteString(fmt.Sprintf("id=%v, ", s.ID))
	builder.WriteString("employer_id=")
	builder.WriteString(fmt.Sprintf("%v", s.EmployerID))
	builder.WriteString(", ")
	builder.WriteString("package_id=")
	builder.WriteString(fmt.Sprintf("%v", s.PackageID))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(s.Title)
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", s.Features))
	builder.WriteString(", ")
	builder.WriteString("price_per_credit=")
	builder.WriteString(fmt.Sprintf("%v", s.PricePerCredit))
	builder.WriteString(", ")
	builder.WriteString("credit_allowance=")
	builder.WriteString(fmt.Sprintf("%v", s.CreditAllowance))
	builder.WriteString(", ")
	builder.WriteString("package_type=")
	builder.WriteString(fmt.Sprintf("%v", s.PackageType))
	builder.WriteString(", ")
	builder.WriteString("credits=")
	builder.WriteString(fmt.Sprintf("%v", s.Credits))
	builder.WriteString(", ")
	builder.WriteString("admin_credits_added=")
	builder.WriteString(fmt.Sprintf("%v", s.AdminCreditsAdded))
	builder.WriteString(", ")
	builder.WriteString("admin_credits_removed=")
	builder.WriteString(fmt.Sprintf("%v", s.AdminCreditsRemoved))
	builder.WriteString(", ")
	builder.WriteString("transaction_id=")
	builder.WriteString(s.TransactionID)
	builder.WriteString(", ")
	builder.WriteString("granted_at=")
	builder.WriteString(s.GrantedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(s.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(s.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Subscriptions is a parsable slice of Subscription.
type Subscriptions []*Subscription
