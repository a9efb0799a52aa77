package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- User Role Enum ---
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// Scan implements the sql.Scanner interface for Role
func (r *Role) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan Role: value is not string or []byte")
		}
	}
	v := Role(strVal)
	switch v {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		*r = v
		return nil
	default:
		return fmt.Errorf("invalid Role value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for Role
func (r Role) Value() (driver.Value, error) {
	return string(r), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive   JobStatus = "Active"
	JobStatusClosed   JobStatus = "Closed"
	JobStatusArchived JobStatus = "Archived"
)

// Scan implements the sql.Scanner interface for JobStatus
func (js *JobStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan JobStatus: value is not string or []byte")
		}
	}
	v := JobStatus(strVal)
	switch v {
	case JobStatusActive, JobStatusClosed, JobStatusArchived:
		*js = v
		return nil
	default:
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
}

// Value implements the driver.Valuer interface for JobStatus
func (js JobStatus) Value() (driver.Value, error) {
	return string(js), nil
}

// --- Application Status Enum ---

// ApplicationStatus is the forward-only progress marker of an application.
// Stored as an integer. The value 2 is reserved: it belonged to a stage that
// was removed from the hiring flow and must never be assigned to a new state.
type ApplicationStatus int

const (
	StatusPending        ApplicationStatus = 0
	StatusAccepted       ApplicationStatus = 1
	StatusTestTaken      ApplicationStatus = 3
	StatusPassed         ApplicationStatus = 4
	StatusContractSigned ApplicationStatus = 5
)

// String returns the stage name, used in transition errors and logs.
func (s ApplicationStatus) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusAccepted:
		return "Accepted"
	case StatusTestTaken:
		return "TestTaken"
	case StatusPassed:
		return "Passed"
	case StatusContractSigned:
		return "ContractSigned"
	default:
		return fmt.Sprintf("ApplicationStatus(%d)", int(s))
	}
}

// Valid reports whether s is an assignable status value.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusTestTaken, StatusPassed, StatusContractSigned:
		return true
	default:
		return false
	}
}

// --- Application Outcome Enum ---

// ApplicationOutcome tracks the terminal verdict orthogonally to status.
// Rejected freezes the application regardless of how far status advanced.
type ApplicationOutcome int

const (
	OutcomeInProgress       ApplicationOutcome = 0
	OutcomeContractApproved ApplicationOutcome = 1
	OutcomeRejected         ApplicationOutcome = 2
)

func (o ApplicationOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "InProgress"
	case OutcomeContractApproved:
		return "ContractApproved"
	case OutcomeRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("ApplicationOutcome(%d)", int(o))
	}
}

// --- Package Type Enum ---

// PackageType 0 is the free-trial singleton: seeded at startup, never
// deletable, price immutable.
type PackageType int

const (
	PackageTypeFreeTrial  PackageType = 0
	PackageTypeStandard   PackageType = 1
	PackageTypeEnterprise PackageType = 2
)

// --- Question Types ---
type QuestionType string

const (
	QuestionOpen           QuestionType = "open"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionFile           QuestionType = "file"
)

// Question is one entry of a job's test builder. Only the fields for its
// Type are meaningful: open questions carry WordLimit, multiple-choice
// questions carry Options, file questions carry neither.
type Question struct {
	ID        uuid.UUID    `json:"id"`
	Type      QuestionType `json:"type"`
	Prompt    string       `json:"prompt"`
	WordLimit int          `json:"word_limit,omitempty"`
	Options   []string     `json:"options,omitempty"`
}

// Answer is a candidate's response to a single question. IsCorrect stays nil
// until the employer grades the answer.
type Answer struct {
	QuestionID  uuid.UUID    `json:"question_id"`
	Type        QuestionType `json:"type"`
	Text        string       `json:"text,omitempty"`
	OptionIndex *int         `json:"option_index,omitempty"`
	FileKey     string       `json:"file_key,omitempty"`
	IsCorrect   *bool        `json:"is_correct,omitempty"`
}

// PackageSnapshot mirrors a Package template at purchase time, plus the live
// counters. It is the shape archived into subscription history when a
// package is superseded.
type PackageSnapshot struct {
	PackageID           uuid.UUID   `json:"package_id"`
	Title               string      `json:"title"`
	Features            []string    `json:"features"`
	PricePerCredit      float64     `json:"price_per_credit"`
	CreditAllowance     int         `json:"credit_allowance"`
	PackageType         PackageType `json:"package_type"`
	Credits             int         `json:"credits"`
	AdminCreditsAdded   int         `json:"admin_credits_added"`
	AdminCreditsRemoved int         `json:"admin_credits_removed"`
	TransactionID       string      `json:"transaction_id"`
	GrantedAt           time.Time   `json:"granted_at"`
}
