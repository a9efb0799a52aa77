// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SubscriptionHistory is the model entity for the SubscriptionHistory schema.
type SubscriptionHistory struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SubscriptionID holds the value of the "subscription_id" field.
	SubscriptionID uuid.UUID `json:"subscription_id,omitempty"`
	// Snapshot holds the value of the "snapshot" field.
	Snapshot models.PackageSnapshot `json:"snapshot,omitempty"`
	// ArchivedAt holds the value of the "archived_at" field.
	ArchivedAt time.Time `json:"archived_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubscriptionHistoryQuery when eager-loading is set.
	Edges        SubscriptionHistoryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubscriptionHistoryEdges holds the relations/edges for other nodes in the graph.
type SubscriptionHistoryEdges struct {
	// Subscription holds the value of the subscription edge.
	Subscription *Subscription `json:"subscription,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SubscriptionOrErr returns the Subscription value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubscriptionHistoryEdges) SubscriptionOrErr() (*Subscription, error) {
	if e.Subscription != nil {
		return e.Subscription, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: subscription.Label}
	}
	return nil, &NotLoadedError{edge: "subscription"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubscriptionHistory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subscriptionhistory.FieldSnapshot:
			values[i] = new([]byte)
		case subscriptionhistory.FieldArchivedAt:
			values[i] = new(sql.NullTime)
		case subscriptionhistory.FieldID, subscriptionhistory.FieldSubscriptionID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubscriptionHistory fields.
func (sh *SubscriptionHistory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subscriptionhistory.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				sh.ID = *value
			}
		case subscriptionhistory.FieldSubscriptionID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field subscription_id", values[i])
			} else if value != nil {
				sh.SubscriptionID = *value
			}
		case subscriptionhistory.FieldSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &sh.Snapshot); err != nil {
					return fmt.Errorf("unmarshal field snapshot: %w", err)
				}
			}
		case subscriptionhistory.FieldArchivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field archived_at", values[i])
			} else if value.Valid {
				sh.ArchivedAt = value.Time
			}
		default:
			sh.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubscriptionHistory.
// This includes values selected through modifiers, order, etc.
func (sh *SubscriptionHistory) Value(name string) (ent.Value, error) {
	return sh.selectValues.Get(name)
}

// QuerySubscription queries the "subscription" edge of the SubscriptionHistory entity.
func (sh *SubscriptionHistory) QuerySubscription() *SubscriptionQuery {
	return NewSubscriptionHistoryClient(sh.config).QuerySubscription(sh)
}

// Update returns a builder for updating this SubscriptionHistory.
// Note that you need to call SubscriptionHistory.Unwrap() before calling this method if this SubscriptionHistory
// was returned from a transaction, and the transaction was committed or rolled back.
func (sh *SubscriptionHistory) Update() *SubscriptionHistoryUpdateOne {
	return NewSubscriptionHistoryClient(sh.config).UpdateOne(sh)
}

// Unwrap unwraps the SubscriptionHistory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (sh *SubscriptionHistory) Unwrap() *SubscriptionHistory {
	_tx, ok := sh.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubscriptionHistory is not a transactional entity")
	}
	sh.config.driver = _tx.drv
	return sh
}

// String implements the fmt.Stringer.
func (sh *SubscriptionHistory) String() string {
	var builder strings.Builder
	builder.WriteString("SubscriptionHistory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", sh.ID))
	builder.WriteString("subscription_id=")
	builder.WriteString(fmt.Sprintf("%v", sh.SubscriptionID))
	builder.WriteString(", ")
	builder.WriteString("snapshot=")
	builder.WriteString(fmt.Sprintf("%v", sh.Snapshot))
	builder.WriteString(", ")
	builder.WriteString("archived_at=")
	builder.WriteString(sh.ArchivedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubscriptionHistories is a parsable slice of SubscriptionHistory.
type SubscriptionHistories []*SubscriptionHistory
