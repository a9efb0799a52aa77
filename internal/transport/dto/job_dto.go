package dto

import (
	"time"

	"github.com/google/uuid"

	"hirehub/internal/models"
)

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for posting a new job with its
// test-builder question set.
type CreateJobRequest struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description,omitempty"`
	Questions   []models.Question `json:"questions,omitempty" validate:"omitempty,dive"`
	EmployerID  uuid.UUID         `json:"-"` // Set internally by handler from auth context
}

// ListJobsByEmployerRequest defines parameters for listing jobs by employer.
type ListJobsByEmployerRequest struct {
	EmployerID uuid.UUID         `json:"-" validate:"required"` // Set internally by handler
	Limit      int               `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset     int               `form:"offset,default=0" validate:"omitempty,gte=0"`
	Status     *models.JobStatus `form:"status" validate:"omitempty,oneof=Active Closed Archived"`
}

// ListActiveJobsRequest defines parameters for the public job board.
type ListActiveJobsRequest struct {
	Limit  int `form:"limit,default=10" validate:"omitempty,gte=0"`
	Offset int `form:"offset,default=0" validate:"omitempty,gte=0"`
}

// UpdateJobRequest defines the structure for updating a job posting.
type UpdateJobRequest struct {
	ID          uuid.UUID          `json:"-" validate:"required"` // From URL path
	UserID      uuid.UUID          `json:"-"`                     // Set from user context (must be employer)
	Title       *string            `json:"title,omitempty"`
	Description *string            `json:"description,omitempty"`
	Questions   *[]models.Question `json:"questions,omitempty" validate:"omitempty,dive"`
}

// UpdateJobStatusRequest defines the structure for updating the job status.
type UpdateJobStatusRequest struct {
	ID     uuid.UUID        `json:"-" validate:"required"` // From URL path
	UserID uuid.UUID        `json:"-"`                     // Set from user context (must be employer)
	Status models.JobStatus `json:"status" validate:"required,oneof=Active Closed Archived"`
}

// DeleteJobRequest defines the structure for deleting a job.
type DeleteJobRequest struct {
	ID     uuid.UUID `json:"-" validate:"required"`
	UserID uuid.UUID `json:"-"`
}

// JobResponse defines the standard job data returned to the client.
type JobResponse struct {
	ID          uuid.UUID         `json:"id"`
	EmployerID  uuid.UUID         `json:"employer_id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	Status      string            `json:"status"`
	Questions   []models.Question `json:"questions,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}
