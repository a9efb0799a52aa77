package dto

import (
	"time"

	"github.com/google/uuid"

	"hirehub/internal/models"
)

// AnswerInput is one candidate answer in a test submission. Exactly the
// fields for the question's type must be set.
type AnswerInput struct {
	QuestionID  uuid.UUID `json:"question_id" validate:"required"`
	Text        string    `json:"text,omitempty"`
	OptionIndex *int      `json:"option_index,omitempty"`
	FileKey     string    `json:"file_key,omitempty"`
}

// SubmitTestRequest is the single entry point of the test submission engine.
type SubmitTestRequest struct {
	ApplicationID uuid.UUID     `json:"-" validate:"required"` // From path
	CandidateID   uuid.UUID     `json:"-"`                     // Set from user context
	VideoKey      string        `json:"video_key" validate:"required"`
	Answers       []AnswerInput `json:"answers" validate:"required,dive"`
}

// CreateSubmittedTestRequest is used internally after answers validate.
type CreateSubmittedTestRequest struct {
	ApplicationID uuid.UUID
	CandidateID   uuid.UUID
	VideoKey      string
	Answers       []models.Answer
}

// GetSubmittedTestRequest fetches a submitted test for review.
type GetSubmittedTestRequest struct {
	ApplicationID uuid.UUID `json:"-" validate:"required"` // From path
	UserID        uuid.UUID `json:"-"`                     // Set from user context
}

// MarkQuestionCorrectRequest records the employer's judgement on one answer.
// Idempotent; the latest write wins.
type MarkQuestionCorrectRequest struct {
	TestID     uuid.UUID `json:"-" validate:"required"` // From path
	QuestionID uuid.UUID `json:"-" validate:"required"` // From path
	UserID     uuid.UUID `json:"-"`                     // Set from user context (must be employer)
	IsCorrect  bool      `json:"is_correct"`
}

// SubmittedTestResponse defines the submitted test data returned to clients.
type SubmittedTestResponse struct {
	ID            uuid.UUID       `json:"id"`
	ApplicationID uuid.UUID       `json:"application_id"`
	CandidateID   uuid.UUID       `json:"candidate_id"`
	VideoKey      string          `json:"video_key"`
	Answers       []models.Answer `json:"answers"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
