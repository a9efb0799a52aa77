// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"hirehub/ent/job"
	"hirehub/ent/jobapplication"
	"hirehub/ent/submittedtest"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// JobApplication is the model entity for the JobApplication schema.
type JobApplication struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// JobID holds the value of the "job_id" field.
	JobID uuid.UUID `json:"job_id,omitempty"`
	// CandidateID holds the value of the "candidate_id" field.
	CandidateID uuid.UUID `json:"candidate_id,omitempty"`
	// Status holds the value of the "status" field.
	Status models.ApplicationStatus `json:"status,omitempty"`
	// Outcome holds the value of the "outcome" field.
	Outcome models.ApplicationOutcome `json:"outcome,omitempty"`
	// CandidateName holds the value of the "candidate_name" field.
	CandidateName string `json:"candidate_name,omitempty"`
	// CandidateEmail holds the value of the "candidate_email" field.
	CandidateEmail string `json:"candidate_email,omitempty"`
	// CandidateCountry holds the value of the "candidate_country" field.
	CandidateCountry string `json:"candidate_country,omitempty"`
	// CandidateTimezone holds the value of the "candidate_timezone" field.
	CandidateTimezone string `json:"candidate_timezone,omitempty"`
	// CandidateContact holds the value of the "candidate_contact" field.
	CandidateContact string `json:"candidate_contact,omitempty"`
	// CvKey holds the value of the "cv_key" field.
	CvKey string `json:"cv_key,omitempty"`
	// CoverLetterKey holds the value of the "cover_letter_key" field.
	CoverLetterKey string `json:"cover_letter_key,omitempty"`
	// AboutVideoKey holds the value of the "about_video_key" field.
	AboutVideoKey string `json:"about_video_key,omitempty"`
	// ContractKey holds the value of the "contract_key" field.
	ContractKey string `json:"contract_key,omitempty"`
	// Note holds the value of the "note" field.
	Note string `json:"note,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the JobApplicationQuery when eager-loading is set.
	Edges        JobApplicationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// JobApplicationEdges holds the relations/edges for other nodes in the graph.
type JobApplicationEdges struct {
	// Candidate holds the value of the candidate edge.
	Candidate *User `json:"candidate,omitempty"`
	// Job holds the value of the job edge.
	Job *Job `json:"job,omitempty"`
	// SubmittedTest holds the value of the submitted_test edge.
	SubmittedTest *SubmittedTest `json:"submitted_test,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// CandidateOrErr returns the Candidate value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobApplicationEdges) CandidateOrErr() (*User, error) {
	if e.Candidate != nil {
		return e.Candidate, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "candidate"}
}

// JobOrErr returns the Job value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobApplicationEdges) JobOrErr() (*Job, error) {
	if e.Job != nil {
		return e.Job, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: job.Label}
	}
	return nil, &NotLoadedError{edge: "job"}
}

// SubmittedTestOrErr returns the SubmittedTest value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e JobApplicationEdges) SubmittedTestOrErr() (*SubmittedTest, error) {
	if e.SubmittedTest != nil {
		return e.SubmittedTest, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: submittedtest.Label}
	}
	return nil, &NotLoadedError{edge: "submitted_test"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*JobApplication) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case jobapplication.FieldStatus, jobapplication.FieldOutcome:
			values[i] = new(sql.NullInt64)
		case jobapplication.FieldCandidateName, jobapplication.FieldCandidateEmail, jobapplication.FieldCandidateCountry, jobapplication.FieldCandidateTimezone, jobapplication.FieldCandidateContact, jobapplication.FieldCvKey, jobapplication.FieldCoverLetterKey, jobapplication.FieldAboutVideoKey, jobapplication.FieldContractKey, jobapplication.FieldNote:
			values[i] = new(sql.NullString)
		case jobapplication.FieldDeletedAt, jobapplication.FieldCreatedAt, jobapplication.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case jobapplication.FieldID, jobapplication.FieldJobID, jobapplication.FieldCandidateID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the JobApplication fields.
func (ja *JobApplication) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case jobapplication.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				ja.ID = *value
			}
		case jobapplication.FieldJobID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field job_id", values[i])
			} else if value != nil {
				ja.JobID = *value
			}
		case jobapplication.FieldCandidateID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_id", values[i])
			} else if value != nil {
				ja.CandidateID = *value
			}
		case jobapplication.FieldStatus:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				ja.Status = models.ApplicationStatus(value.Int64)
			}
		case jobapplication.FieldOutcome:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field outcome", values[i])
			} else if value.Valid {
				ja.Outcome = models.ApplicationOutcome(value.Int64)
			}
		case jobapplication.FieldCandidateName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_name", values[i])
			} else if value.Valid {
				ja.CandidateName = value.String
			}
		case jobapplication.FieldCandidateEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_email", values[i])
			} else if value.Valid {
				ja.CandidateEmail = value.String
			}
		case jobapplication.FieldCandidateCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_country", values[i])
			} else if value.Valid {
				ja.CandidateCountry = value.String
			}
		case jobapplication.FieldCandidateTimezone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_timezone", values[i])
			} else if value.Valid {
				ja.CandidateTimezone = value.String
			}
		case jobapplication.FieldCandidateContact:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate_contact", values[i])
			} else if value.Valid {
				ja.CandidateContact = value.String
			}
		case jobapplication.FieldCvKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cv_key", values[i])
			} else if value.Valid {
				ja.CvKey = value.String
			}
		case jobapplication.FieldCoverLetterKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_letter_key", values[i])
			} else if value.Valid {
				ja.CoverLetterKey = value.String
			}
		case jobapplication.FieldAboutVideoKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field about_video_key", values[i])
			} else if value.Valid {
				ja.AboutVideoKey = value.String
			}
		case jobapplication.FieldContractKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contract_key", values[i])
			} else if value.Valid {
				ja.ContractKey = value.String
			}
		case jobapplication.FieldNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field note", values[i])
			} else if value.Valid {
				ja.Note = value.String
			}
		case jobapplication.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				ja.DeletedAt = new(time.Time)
				*ja.DeletedAt = value.Time
			}
		case jobapplication.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				ja.CreatedAt = value.Time
			}
		case jobapplication.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ja.UpdatedAt = value.Time
			}
		default:
			ja.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the JobApplication.
// This includes values selected through modifiers, order, etc.
func (ja *JobApplication) Value(name string) (ent.Value, error) {
	return ja.selectValues.Get(name)
}

// QueryCandidate queries the "candidate" edge of the JobApplication entity.
func (ja *JobApplication) QueryCandidate() *UserQuery {
	return NewJobApplicationClient(ja.config).QueryCandidate(ja)
}

// QueryJob queries the "job" edge of the JobApplication entity.
func (ja *JobApplication) QueryJob() *JobQuery {
	return NewJobApplicationClient(ja.config).QueryJob(ja)
}

// QuerySubmittedTest queries the "submitted_test" edge of the JobApplication entity.
func (ja *JobApplication) QuerySubmittedTest() *SubmittedTestQuery {
	return NewJobApplicationClient(ja.config).QuerySubmittedTest(ja)
}

// Update returns a builder for updating this JobApplication.
// Note that you need to call JobApplication.Unwrap() before calling this method if this JobApplication
// was returned from a transaction, and the transaction was committed or rolled back.
func (ja *JobApplication) Update() *JobApplicationUpdateOne {
	return NewJobApplicationClient(ja.config).UpdateOne(ja)
}

// Unwrap unwraps the JobApplication entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ja *JobApplication) Unwrap() *JobApplication {
	_tx, ok := ja.config.driver.(*txDriver)
	if !ok {
		panic("ent: JobApplication is not a transactional entity")
	}
	ja.config.driver = _tx.drv
	return ja
}

// String implements the fmt.Stringer.
func (ja *JobApplication) String() string {
	var builder strings.Builder
	builder.WriteString("JobApplication(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ja.ID))
	builder.WriteString("job_id=")
	builder.WriteString(fmt.Sprintf("%v", ja.JobID))
	builder.WriteString(", ")
	builder.WriteString("candidate_id=")
	builder.WriteString(fmt.Sprintf("%v", ja.CandidateID))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", ja.Status))
	builder.WriteString(", ")
	builder.WriteString("outcome=")
	builder.WriteString(fmt.Sprintf("%v", ja.Outcome))
	builder.WriteString(", ")
	builder.WriteString("candidate_name=")
	builder.WriteString(ja.CandidateName)
	builder.WriteString(", ")
	builder.WriteString("candidate_email=")
	builder.WriteString(ja.CandidateEmail)
	builder.WriteString(", ")
	builder.WriteString("candidate_country=")
	builder.WriteString(ja.CandidateCountry)
	builder.WriteString(", ")
	builder.WriteString("candidate_timezone=")
	builder.WriteString(ja.CandidateTimezone)
	builder.WriteString(", ")
	builder.WriteString("candidate_contact=")
	builder.WriteString(ja.CandidateContact)
	builder.WriteString(", ")
	builder.WriteString("cv_key=")
	builder.WriteString(ja.CvKey)
	builder.WriteString(", ")
	builder.WriteString("cover_letter_key=")
	builder.WriteString(ja.CoverLetterKey)
	builder.WriteString(", ")
	builder.WriteString("about_video_key=")
	builder.WriteString(ja.AboutVideoKey)
	builder.WriteString(", ")
	builder.WriteString("contract_key=")
	builder.WriteString(ja.ContractKey)
	builder.WriteString(", ")
	builder.WriteString("note=")
	builder.WriteString(ja.Note)
	builder.WriteString(", ")
	if v := ja.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(ja.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ja.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// JobApplications is a parsable slice of JobApplication.
type JobApplications []*JobApplication
