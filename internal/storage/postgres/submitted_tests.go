package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/submittedtest"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// SubmittedTestRepo implements the storage.SubmittedTestRepository interface using Ent.
type SubmittedTestRepo struct {
	client *ent.Client
}

// NewSubmittedTestRepo creates a new SubmittedTestRepo.
func NewSubmittedTestRepo(client *ent.Client) *SubmittedTestRepo {
	return &SubmittedTestRepo{client: client}
}

func (r *SubmittedTestRepo) WithTx(tx *ent.Tx) storage.SubmittedTestRepository {
	return &SubmittedTestRepo{client: tx.Client()}
}

// Compile-time check to ensure SubmittedTestRepo implements SubmittedTestRepository
var _ storage.SubmittedTestRepository = (*SubmittedTestRepo)(nil)

func (r *SubmittedTestRepo) Create(ctx context.Context, req *dto.CreateSubmittedTestRequest) (*ent.SubmittedTest, error) {
	created, err := r.client.SubmittedTest.Create().
		SetApplicationID(req.ApplicationID).
		SetCandidateID(req.CandidateID).
		SetVideoKey(req.VideoKey).
		SetAnswers(req.Answers).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			// The unique application_id column rejects a second submission.
			log.Printf("Error creating submitted test (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create submitted test: already submitted: %w", storage.ErrConflict)
		}
		log.Printf("Error creating submitted test: %v\n", err)
		return nil, fmt.Errorf("failed to create submitted test: %w", err)
	}

	log.Printf("Submitted test created with ID: %s for application %s", created.ID, req.ApplicationID)
	return created, nil
}

func (r *SubmittedTestRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.SubmittedTest, error) {
	st, err := r.client.SubmittedTest.Get(ctx, id)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving submitted test by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get submitted test by ID %s: %w", id, err)
	}

	return st, nil
}

func (r *SubmittedTestRepo) GetByApplication(ctx context.Context, applicationID uuid.UUID) (*ent.SubmittedTest, error) {
	st, err := r.client.SubmittedTest.Query().
		Where(submittedtest.ApplicationID(applicationID)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving submitted test for application %s: %v\n", applicationID, err)
		return nil, fmt.Errorf("failed to get submitted test by application: %w", err)
	}

	return st, nil
}

func (r *SubmittedTestRepo) UpdateAnswers(ctx context.Context, id uuid.UUID, answers []models.Answer) (*ent.SubmittedTest, error) {
	updated, err := r.client.SubmittedTest.UpdateOneID(id).
		SetAnswers(answers).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating answers for submitted test %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update submitted test answers: %w", err)
	}

	return updated, nil
}
