// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"hirehub/ent/creditpackage"
	"hirehub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// CreditPackage is the model entity for the CreditPackage schema.
type CreditPackage struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Features holds the value of the "features" field.
	Features []string `json:"features,omitempty"`
	// PricePerCredit holds the value of the "price_per_credit" field.
	PricePerCredit float64 `json:"price_per_credit,omitempty"`
	// NumberOfCredits holds the value of the "number_of_credits" field.
	NumberOfCredits int `json:"number_of_credits,omitempty"`
	// PackageType holds the value of the "package_type" field.
	PackageType models.PackageType `json:"package_type,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CreditPackage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case creditpackage.FieldFeatures:
			values[i] = new([]byte)
		case creditpackage.FieldPricePerCredit:
			values[i] = new(sql.NullFloat64)
		case creditpackage.FieldNumberOfCredits, creditpackage.FieldPackageType:
			values[i] = new(sql.NullInt64)
		case creditpackage.FieldTitle:
			values[i] = new(sql.NullString)
		case creditpackage.FieldCreatedAt, creditpackage.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case creditpackage.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CreditPackage fields.
func (cp *CreditPackage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case creditpackage.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				cp.ID = *value
			}
		case creditpackage.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				cp.Title = value.String
			}
		case creditpackage.FieldFeatures:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field features", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &cp.Features); err != nil {
					return fmt.Errorf("unmarshal field features: %w", err)
				}
			}
		case creditpackage.FieldPricePerCredit:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price_per_credit", values[i])
			} else if value.Valid {
				cp.PricePerCredit = value.Float64
			}
		case creditpackage.FieldNumberOfCredits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field number_of_credits", values[i])
			} else if value.Valid {
				cp.NumberOfCredits = int(value.Int64)
			}
		case creditpackage.FieldPackageType:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field package_type", values[i])
			} else if value.Valid {
				cp.PackageType = models.PackageType(value.Int64)
			}
		case creditpackage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				cp.CreatedAt = value.Time
			}
		case creditpackage.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				cp.UpdatedAt = value.Time
			}
		default:
			cp.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CreditPackage.
// This includes values selected through modifiers, order, etc.
func (cp *CreditPackage) Value(name string) (ent.Value, error) {
	return cp.selectValues.Get(name)
}

// Update returns a builder for updating this CreditPackage.
// Note that you need to call CreditPackage.Unwrap() before calling this method if this CreditPackage
// was returned from a transaction, and the transaction was committed or rolled back.
func (cp *CreditPackage) Update() *CreditPackageUpdateOne {
	return NewCreditPackageClient(cp.config).UpdateOne(cp)
}

// Unwrap unwraps the CreditPackage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (cp *CreditPackage) Unwrap() *CreditPackage {
	_tx, ok := cp.config.driver.(*txDriver)
	if !ok {
		panic("ent: CreditPackage is not a transactional entity")
	}
	cp.config.driver = _tx.drv
	return cp
}

// String implements the fmt.Stringer.
func (cp *CreditPackage) String() string {
	var builder strings.Builder
	builder.WriteString("CreditPackage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", cp.ID))
	builder.WriteString("title=")
	builder.WriteString(cp.Title)
	builder.WriteString(", ")
	builder.WriteString("features=")
	builder.WriteString(fmt.Sprintf("%v", cp.Features))
	builder.WriteString(", ")
	builder.WriteString("price_per_credit=")
	builder.WriteString(fmt.Sprintf("%v", cp.PricePerCredit))
	builder.WriteString(", ")
	builder.WriteString("number_of_credits=")
	builder.WriteString(fmt.Sprintf("%v", cp.NumberOfCredits))
	builder.WriteString(", ")
	builder.WriteString("package_type=")
	builder.WriteString(fmt.Sprintf("%v", cp.PackageType))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(cp.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(cp.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CreditPackages is a parsable slice of CreditPackage.
type CreditPackages []*CreditPackage
