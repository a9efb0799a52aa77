// Code generated by ent, DO NOT EDIT.

package jobapplication

import (
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the jobapplication type in the database.
	Label = "job_application"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldCandidateID holds the string denoting the candidate_id field in the database.
	FieldCandidateID = "candidate_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldOutcome holds the string denoting the outcome field in the database.
	FieldOutcome = "outcome"
	// FieldCandidateName holds the string denoting the candidate_name field in the database.
	FieldCandidateName = "candidate_name"
	// FieldCandidateEmail holds the string denoting the candidate_email field in the database.
	FieldCandidateEmail = "candidate_email"
	// FieldCandidateCountry holds the string denoting the candidate_country field in the database.
	FieldCandidateCountry = "candidate_country"
	// FieldCandidateTimezone holds the string denoting the candidate_timezone field in the database.
	FieldCandidateTimezone = "candidate_timezone"
	// FieldCandidateContact holds the string denoting the candidate_contact field in the database.
	FieldCandidateContact = "candidate_contact"
	// FieldCvKey holds the string denoting the cv_key field in the database.
	FieldCvKey = "cv_key"
	// FieldCoverLetterKey holds the string denoting the cover_letter_key field in the database.
	FieldCoverLetterKey = "cover_letter_key"
	// FieldAboutVideoKey holds the string denoting the about_video_key field in the database.
	FieldAboutVideoKey = "about_video_key"
	// FieldContractKey holds the string denoting the contract_key field in the database.
	FieldContractKey = "contract_key"
	// FieldNote holds the string denoting the note field in the database.
	FieldNote = "note"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCandidate holds the string denoting the candidate edge name in mutations.
	EdgeCandidate = "candidate"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeSubmittedTest holds the string denoting the submitted_test edge name in mutations.
	EdgeSubmittedTest = "submitted_test"
	// Table holds the table name of the jobapplication in the database.
	Table = "job_applications"
	// CandidateTable is the table that holds the candidate relation/edge.
	CandidateTable = "job_applications"
	// CandidateInverseTable is the table name for the User entity.
	// It exists in this package in order to avoid circular dependency with the "user" package.
	CandidateInverseTable = "users"
	// CandidateColumn is the table column denoting the candidate relation/edge.
	CandidateColumn = "candidate_id"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "job_applications"
	// JobInverseTable is the table name for the Job entity.
	// It exists in this package in order to avoid circular dependency with the "job" package.
	JobInverseTable = "jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// SubmittedTestTable is the table that holds the submitted_test relation/edge.
	SubmittedTestTable = "submitted_tests"
	// SubmittedTestInverseTable is the table name for the SubmittedTest entity.
	// It exists in this package in order to avoid circular dependency with the "submittedtest" package.
	SubmittedTestInverseTable = "submitted_tests"
	// SubmittedTestColumn is the table column denoting the submitted_test relation/edge.
	SubmittedTestColumn = "application_id"
)

// Columns holds all SQL columns for jobapplication fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldCandidateID,
	FieldStatus,
	FieldOutcome,
	FieldCandidateName,
	FieldCandidateEmail,
	FieldCandidateCountry,
	FieldCandidateTimezone,
	FieldCandidateContact,
	FieldCvKey,
	FieldCoverLetterKey,
	FieldAboutVideoKey,
	FieldContractKey,
	FieldNote,
	FieldDeletedAt,
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
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus models.ApplicationStatus
	// DefaultOutcome holds the default value on creation for the "outcome" field.
	DefaultOutcome models.ApplicationOutcome
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the JobApplication queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByCandidateID orders the results by the candidate_id field.
func ByCandidateID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByOutcome orders the results by the outcome field.
func ByOutcome(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutcome, opts...).ToFunc()
}

// ByCandidateName orders the results by the candidate_name field.
func ByCandidateName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateName, opts...).ToFunc()
}

// ByCandidateEmail orders the results by the candidate_email field.
func ByCandidateEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateEmail, opts...).ToFunc()
}

// ByCandidateCountry orders the results by the candidate_country field.
func ByCandidateCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateCountry, opts...).ToFunc()
}

// ByCandidateTimezone orders the results by the candidate_timezone field.
func ByCandidateTimezone(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateTimezone, opts...).ToFunc()
}

// ByCandidateContact orders the results by the candidate_contact field.
func ByCandidateContact(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidateContact, opts...).ToFunc()
}

// ByCvKey orders the results by the cv_key field.
func ByCvKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCvKey, opts...).ToFunc()
}

// ByCoverLetterKey orders the results by the cover_letter_key field.
func ByCoverLetterKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverLetterKey, opts...).ToFunc()
}

// ByAboutVideoKey orders the results by the about_video_key field.
func ByAboutVideoKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAboutVideoKey, opts...).ToFunc()
}

// ByContractKey orders the results by the contract_key field.
func ByContractKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContractKey, opts...).ToFunc()
}

// ByNote orders the results by the note field.
func ByNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNote, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCandidateField orders the results by candidate field.
func ByCandidateField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCandidateStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// BySubmittedTestField orders the results by submitted_test field.
func BySubmittedTestField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSubmittedTestStep(), sql.OrderByField(field, opts...))
	}
}
func newCandidateStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CandidateInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
	)
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newSubmittedTestStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SubmittedTestInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, SubmittedTestTable, SubmittedTestColumn),
	)
}
