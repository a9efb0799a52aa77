package services

import "errors"

// Define common service errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict") // e.g., duplicate email, duplicate application
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidState       = errors.New("invalid state for operation")
	ErrInvalidTransition  = errors.New("invalid state transition")

	// Test submission / application lifecycle
	ErrAlreadySubmitted    = errors.New("test already submitted")
	ErrApplicationRejected = errors.New("application has been rejected")

	// Credit ledger. Distinct kinds: the employer-facing message for a
	// missing subscription differs from the one for an exhausted package.
	ErrNoSubscription      = errors.New("employer has no active subscription")
	ErrInsufficientCredits = errors.New("insufficient credits")
)

// FieldViolation names one offending field in an answer set.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AnswerValidationError itemizes every schema mismatch in a submitted answer
// set. It unwraps to ErrValidation so callers can match the kind.
type AnswerValidationError struct {
	Violations []FieldViolation
}

func (e *AnswerValidationError) Error() string {
	if len(e.Violations) == 1 {
		return "validation failed: " + e.Violations[0].Field + ": " + e.Violations[0].Message
	}
	msg := "validation failed:"
	for _, v := range e.Violations {
		msg += " " + v.Field + ": " + v.Message + ";"
	}
	return msg
}

func (e *AnswerValidationError) Unwrap() error { return ErrValidation }
