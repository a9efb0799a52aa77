package dto

import (
	"time"

	"github.com/google/uuid"

	"hirehub/internal/models"
)

// ApplyToJobRequest defines the structure for a candidate applying to a job.
// Artifact fields are object-storage keys, uploaded out of band.
type ApplyToJobRequest struct {
	JobID          uuid.UUID `json:"-" validate:"required"` // From path
	CandidateID    uuid.UUID `json:"-"`                     // Set from user context
	CVKey          string    `json:"cv_key" validate:"required"`
	CoverLetterKey string    `json:"cover_letter_key,omitempty"`
	AboutVideoKey  string    `json:"about_video_key,omitempty"`
	Note           string    `json:"note,omitempty"`
}

// CreateJobApplicationRequest is used internally by the Apply service method
// after the candidate snapshot has been resolved.
type CreateJobApplicationRequest struct {
	JobID             uuid.UUID
	CandidateID       uuid.UUID
	CandidateName     string
	CandidateEmail    string
	CandidateCountry  string
	CandidateTimezone string
	CandidateContact  string
	CVKey             string
	CoverLetterKey    string
	AboutVideoKey     string
	Note              string
}

// GetApplicationRequest fetches one application with an authorization check.
type GetApplicationRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for auth check
}

// ListApplicationsByJobRequest defines parameters for the employer view.
type ListApplicationsByJobRequest struct {
	JobID  uuid.UUID `json:"-" validate:"required"` // From path
	UserID uuid.UUID `json:"-"`                     // Set from user context for auth check
	Limit  int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// ListApplicationsByCandidateRequest defines parameters for the candidate view.
type ListApplicationsByCandidateRequest struct {
	CandidateID uuid.UUID `json:"-" validate:"required"` // Set from user context
	Limit       int       `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset      int       `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// AcceptApplicationRequest moves a Pending application to Accepted.
type AcceptApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be employer)
}

// MarkPassedRequest moves a TestTaken application to Passed.
type MarkPassedRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be employer)
}

// SignContractRequest moves a Passed application to ContractSigned.
type SignContractRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be applicant)
	ContractKey   string    `json:"contract_key" validate:"required"`
}

// ApproveContractRequest sets the terminal ContractApproved outcome.
type ApproveContractRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be employer)
}

// RejectApplicationRequest sets the terminal Rejected outcome. Legal from
// any status.
type RejectApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be employer)
}

// UpdateApplicationNoteRequest updates the employer's free-text note.
type UpdateApplicationNoteRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context (must be employer)
	Note          string    `json:"note"`
}

// DeleteApplicationRequest removes an application (soft by default).
type DeleteApplicationRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context
	Hard          bool      `form:"hard,default=false"`
}

// JobApplicationResponse defines the application data returned to clients.
type JobApplicationResponse struct {
	ID             uuid.UUID                 `json:"id"`
	JobID          uuid.UUID                 `json:"job_id"`
	CandidateID    uuid.UUID                 `json:"candidate_id"`
	Status         models.ApplicationStatus  `json:"status"`
	StatusName     string                    `json:"status_name"`
	Outcome        models.ApplicationOutcome `json:"outcome"`
	OutcomeName    string                    `json:"outcome_name"`
	CandidateName  string                    `json:"candidate_name"`
	CandidateEmail string                    `json:"candidate_email"`
	CVKey          string                    `json:"cv_key,omitempty"`
	CoverLetterKey string                    `json:"cover_letter_key,omitempty"`
	AboutVideoKey  string                    `json:"about_video_key,omitempty"`
	ContractKey    string                    `json:"contract_key,omitempty"`
	Note           string                    `json:"note,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
	UpdatedAt      time.Time                 `json:"updated_at"`
}
