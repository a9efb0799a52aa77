// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"hirehub/ent/jobapplication"
	"hirehub/ent/submittedtest"
	"hirehub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SubmittedTest is the model entity for the SubmittedTest schema.
type SubmittedTest struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// ApplicationID holds the value of the "application_id" field.
	ApplicationID uuid.UUID `json:"application_id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	// VideoKey holds the value of the "video_key" field.
	VideoKey string `json:"video_key,omitempty"`
	// Answers holds the value of the "answers" field.
	Answers []models.Answer `json:"answers,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SubmittedTestQuery when eager-loading is set.
	Edges        SubmittedTestEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SubmittedTestEdges holds the relations/edges for other nodes in the graph.
type SubmittedTestEdges struct {
	// Application holds the value of the application edge.
	Application *JobApplication `json:"application,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ApplicationOrErr returns the Application value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SubmittedTestEdges) ApplicationOrErr() (*JobApplication, error) {
	if e.Application != nil {
		return e.Application, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: jobapplication.Label}
	}
	return nil, &NotLoadedError{edge: "application"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SubmittedTest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case submittedtest.FieldAnswers:
			values[i] = new([]byte)
		case submittedtest.FieldVideoKey:
			values[i] = new(sql.NullString)
		case submittedtest.FieldCreatedAt, submittedtest.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case submittedtest.FieldID, submittedtest.FieldApplicationID, submittedtest.FieldCandidateID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SubmittedTest fields.
func (st *SubmittedTest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case submittedtest.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				st.ID = *value
			}
		case submittedtest.FieldApplicationID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field application_id", values[i])
			} else if value != nil {
				st.ApplicationID = *value
			}
		case submittedtest.FieldCandidateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value != nil {
				st.CandidateID = *value
			}
		case submittedtest.FieldVideoKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field video_key", values[i])
			} else if value.Valid {
				st.VideoKey = value.String
			}
		case submittedtest.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &st.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case submittedtest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				st.CreatedAt = value.Time
			}
		case submittedtest.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				st.UpdatedAt = value.Time
			}
		default:
			st.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SubmittedTest.
// This includes values selected through modifiers, order, etc.
func (st *SubmittedTest) Value(name string) (ent.Value, error) {
	return st.selectValues.Get(name)
}

// QueryApplication queries the "application" edge of the SubmittedTest entity.
func (st *SubmittedTest) QueryApplication() *JobApplicationQuery {
	return NewSubmittedTestClient(st.config).QueryApplication(st)
}

// Update returns a builder for updating this SubmittedTest.
// Note that you need to call SubmittedTest.Unwrap() before calling this method if this SubmittedTest
// was returned from a transaction, and the transaction was committed or rolled back.
func (st *SubmittedTest) Update() *SubmittedTestUpdateOne {
	return NewSubmittedTestClient(st.config).UpdateOne(st)
}

// Unwrap unwraps the SubmittedTest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (st *SubmittedTest) Unwrap() *SubmittedTest {
	_tx, ok := st.config.driver.(*txDriver)
	if !ok {
		panic("ent: SubmittedTest is not a transactional entity")
	}
	st.config.driver = _tx.drv
	return st
}

// String implements the fmt.Stringer.
func (st *SubmittedTest) String() string {
	var builder strings.Builder
	builder.WriteString("SubmittedTest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", st.ID))
	builder.WriteString("application_id=")
	builder.WriteString(fmt.Sprintf("%v", st.ApplicationID))
	builder.WriteString(", ")
	builder.WriteString("candidate_id=")
	builder.WriteString(fmt.Sprintf("%v", st.CandidateID))
	builder.WriteString(", ")
	builder.WriteString("video_key=")
	builder.WriteString(st.VideoKey)
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", st.Answers))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(st.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(st.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SubmittedTests is a parsable slice of SubmittedTest.
type SubmittedTests []*SubmittedTest
