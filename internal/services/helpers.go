package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/objectstore"
	"hirehub/internal/storage"
)

// isValidStatusTransition defines the allowed forward moves of an
// application. Test submission (Accepted -> TestTaken) is driven by the
// submission engine only, but it is still listed here so the table covers
// the whole machine.
func isValidStatusTransition(from, to models.ApplicationStatus) bool {
	switch from {
	case models.StatusPending:
		return to == models.StatusAccepted
	case models.StatusAccepted:
		return to == models.StatusTestTaken
	case models.StatusTestTaken:
		return to == models.StatusPassed
	case models.StatusPassed:
		return to == models.StatusContractSigned
	case models.StatusContractSigned:
		// Terminal status; only the outcome can still change.
		return false
	default:
		return false
	}
}

// isValidJobStatusTransition defines the allowed job posting moves.
func isValidJobStatusTransition(from, to models.JobStatus) bool {
	switch from {
	case models.JobStatusActive:
		return to == models.JobStatusClosed || to == models.JobStatusArchived
	case models.JobStatusClosed:
		return to == models.JobStatusActive || to == models.JobStatusArchived
	case models.JobStatusArchived:
		// Terminal state
		return false
	default:
		return false
	}
}

// invalidTransition builds the stable error naming current and requested
// states. Illegal transitions are never silent no-ops.
func invalidTransition(current, requested models.ApplicationStatus) error {
	return fmt.Errorf("%w: cannot move from %s to %s", ErrInvalidTransition, current, requested)
}

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	// Log other unexpected errors
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// validateAnswers checks a submitted answer set against the job's question
// schema and resolves it into persistable answers. Every question must be
// answered exactly once; per-type rules are matched exhaustively. All
// violations are collected so the candidate sees the full list at once.
func validateAnswers(ctx context.Context, questions []models.Question, answers []models.Answer, store objectstore.ObjectStore) ([]models.Answer, error) {
	var violations []FieldViolation

	if len(answers) != len(questions) {
		violations = append(violations, FieldViolation{
			Field:   "answers",
			Message: fmt.Sprintf("expected %d answers, got %d", len(questions), len(answers)),
		})
	}

	byQuestion := make(map[string]*models.Question, len(questions))
	for i := range questions {
		byQuestion[questions[i].ID.String()] = &questions[i]
	}

	resolved := make([]models.Answer, 0, len(answers))
	seen := make(map[string]bool, len(answers))

	for i, ans := range answers {
		field := fmt.Sprintf("answers[%d]", i)

		q, ok := byQuestion[ans.QuestionID.String()]
		if !ok {
			violations = append(violations, FieldViolation{
				Field:   field + ".question_id",
				Message: "unknown question",
			})
			continue
		}
		if seen[ans.QuestionID.String()] {
			violations = append(violations, FieldViolation{
				Field:   field + ".question_id",
				Message: "question answered more than once",
			})
			continue
		}
		seen[ans.QuestionID.String()] = true

		switch q.Type {
		case models.QuestionOpen:
			if strings.TrimSpace(ans.Text) == "" {
				violations = append(violations, FieldViolation{
					Field:   field + ".text",
					Message: "open question requires a text answer",
				})
				continue
			}
			if q.WordLimit > 0 && len(strings.Fields(ans.Text)) > q.WordLimit {
				violations = append(violations, FieldViolation{
					Field:   field + ".text",
					Message: fmt.Sprintf("answer exceeds word limit of %d", q.WordLimit),
				})
				continue
			}
			resolved = append(resolved, models.Answer{QuestionID: q.ID, Type: q.Type, Text: ans.Text})

		case models.QuestionMultipleChoice:
			if ans.OptionIndex == nil {
				violations = append(violations, FieldViolation{
					Field:   field + ".option_index",
					Message: "multiple-choice question requires an option index",
				})
				continue
			}
			if *ans.OptionIndex < 0 || *ans.OptionIndex >= len(q.Options) {
				violations = append(violations, FieldViolation{
					Field:   field + ".option_index",
					Message: fmt.Sprintf("option index %d out of range [0,%d)", *ans.OptionIndex, len(q.Options)),
				})
				continue
			}
			idx := *ans.OptionIndex
			resolved = append(resolved, models.Answer{QuestionID: q.ID, Type: q.Type, OptionIndex: &idx})

		case models.QuestionFile:
			if ans.FileKey == "" {
				violations = append(violations, FieldViolation{
					Field:   field + ".file_key",
					Message: "file question requires an attachment key",
				})
				continue
			}
			exists, err := store.Exists(ctx, ans.FileKey)
			if err != nil {
				return nil, fmt.Errorf("internal error checking attachment %s: %w", ans.FileKey, err)
			}
			if !exists {
				violations = append(violations, FieldViolation{
					Field:   field + ".file_key",
					Message: "attachment reference does not resolve",
				})
				continue
			}
			resolved = append(resolved, models.Answer{QuestionID: q.ID, Type: q.Type, FileKey: ans.FileKey})

		default:
			violations = append(violations, FieldViolation{
				Field:   field + ".type",
				Message: fmt.Sprintf("unsupported question type %q", q.Type),
			})
		}
	}

	if len(violations) > 0 {
		return nil, &AnswerValidationError{Violations: violations}
	}

	return resolved, nil
}

// snapshotFromPackage copies the template fields at purchase time; the live
// credit counter starts at the template allowance.
func snapshotFromPackage(pkg *ent.CreditPackage, transactionID string, grantedAt time.Time) models.PackageSnapshot {
	return models.PackageSnapshot{
		PackageID:       pkg.ID,
		Title:           pkg.Title,
		Features:        pkg.Features,
		PricePerCredit:  pkg.PricePerCredit,
		CreditAllowance: pkg.NumberOfCredits,
		PackageType:     pkg.PackageType,
		Credits:         pkg.NumberOfCredits,
		TransactionID:   transactionID,
		GrantedAt:       grantedAt,
	}
}

// snapshotFromSubscription freezes the current package exactly as it stands,
// including remaining credits and admin adjustments, for archival.
func snapshotFromSubscription(sub *ent.Subscription) models.PackageSnapshot {
	return models.PackageSnapshot{
		PackageID:           sub.PackageID,
		Title:               sub.Title,
		Features:            sub.Features,
		PricePerCredit:      sub.PricePerCredit,
		CreditAllowance:     sub.CreditAllowance,
		PackageType:         sub.PackageType,
		Credits:             sub.Credits,
		AdminCreditsAdded:   sub.AdminCreditsAdded,
		AdminCreditsRemoved: sub.AdminCreditsRemoved,
		TransactionID:       sub.TransactionID,
		GrantedAt:           sub.GrantedAt,
	}
}
