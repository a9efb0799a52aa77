package postgres

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/jobapplication"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// JobApplicationRepo implements the storage.JobApplicationRepository interface using Ent.
type JobApplicationRepo struct {
	client *ent.Client
}

// NewJobApplicationRepo creates a new JobApplicationRepo.
func NewJobApplicationRepo(client *ent.Client) *JobApplicationRepo {
	return &JobApplicationRepo{client: client}
}

func (r *JobApplicationRepo) WithTx(tx *ent.Tx) storage.JobApplicationRepository {
	return &JobApplicationRepo{client: tx.Client()}
}

// Compile-time check to ensure JobApplicationRepo implements JobApplicationRepository
var _ storage.JobApplicationRepository = (*JobApplicationRepo)(nil)

func (r *JobApplicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*ent.JobApplication, error) {
	createdApp, err := r.client.JobApplication.Create().
		SetJobID(req.JobID).
		SetCandidateID(req.CandidateID).
		SetStatus(models.StatusPending).
		SetOutcome(models.OutcomeInProgress).
		SetCandidateName(req.CandidateName).
		SetCandidateEmail(req.CandidateEmail).
		SetCandidateCountry(req.CandidateCountry).
		SetCandidateTimezone(req.CandidateTimezone).
		SetCandidateContact(req.CandidateContact).
		SetCvKey(req.CVKey).
		SetCoverLetterKey(req.CoverLetterKey).
		SetAboutVideoKey(req.AboutVideoKey).
		SetNote(req.Note).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating job application (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create job application: unique constraint or foreign key violation: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job application: %v\n", err)
		return nil, fmt.Errorf("failed to create job application: %w", err)
	}

	log.Printf("Job application created successfully with ID: %s", createdApp.ID)
	return createdApp, nil
}

func (r *JobApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.JobApplication, error) {
	app, err := r.client.JobApplication.Query().
		Where(jobapplication.ID(id), jobapplication.DeletedAtIsNil()).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job application by ID %s: %w", id, err)
	}

	return app, nil
}

func (r *JobApplicationRepo) GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*ent.JobApplication, error) {
	app, err := r.client.JobApplication.Query().
		Where(
			jobapplication.JobID(jobID),
			jobapplication.CandidateID(candidateID),
			jobapplication.DeletedAtIsNil(),
		).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error querying job application for job %s and candidate %s: %v\n", jobID, candidateID, err)
		return nil, fmt.Errorf("failed to get job application by job and candidate: %w", err)
	}

	return app, nil
}

func (r *JobApplicationRepo) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.JobApplication, error) {
	apps, err := r.client.JobApplication.Query().
		Where(jobapplication.JobID(req.JobID), jobapplication.DeletedAtIsNil()).
		Order(ent.Desc(jobapplication.FieldCreatedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying job applications by job ID %s: %v\n", req.JobID, err)
		return nil, fmt.Errorf("failed to list job applications by job: %w", err)
	}

	return apps, nil
}

func (r *JobApplicationRepo) ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]*ent.JobApplication, error) {
	apps, err := r.client.JobApplication.Query().
		Where(jobapplication.CandidateID(req.CandidateID), jobapplication.DeletedAtIsNil()).
		Order(ent.Desc(jobapplication.FieldCreatedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying job applications by candidate ID %s: %v\n", req.CandidateID, err)
		return nil, fmt.Errorf("failed to list job applications by candidate: %w", err)
	}

	return apps, nil
}

// TransitionStatus performs the conditional forward move. The predicate pins
// both the expected current status and the InProgress outcome, so a
// concurrent transition or rejection makes this a no-match instead of a
// silent overwrite.
func (r *JobApplicationRepo) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*ent.JobApplication, error) {
	updatedApp, err := r.client.JobApplication.UpdateOneID(id).
		Where(
			jobapplication.StatusEQ(from),
			jobapplication.OutcomeEQ(models.OutcomeInProgress),
			jobapplication.DeletedAtIsNil(),
		).
		SetStatus(to).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Conditional status update %s -> %s matched no row for application %s\n", from, to, id)
			return nil, storage.ErrStaleState
		}
		log.Printf("Error updating job application status for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job application status: %w", err)
	}

	return updatedApp, nil
}

func (r *JobApplicationRepo) SetOutcome(ctx context.Context, id uuid.UUID, outcome models.ApplicationOutcome) (*ent.JobApplication, error) {
	updatedApp, err := r.client.JobApplication.UpdateOneID(id).
		Where(
			jobapplication.OutcomeEQ(models.OutcomeInProgress),
			jobapplication.DeletedAtIsNil(),
		).
		SetOutcome(outcome).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			log.Printf("Conditional outcome update to %s matched no row for application %s\n", outcome, id)
			return nil, storage.ErrStaleState
		}
		log.Printf("Error updating job application outcome for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job application outcome: %w", err)
	}

	return updatedApp, nil
}

func (r *JobApplicationRepo) SetContractKey(ctx context.Context, id uuid.UUID, contractKey string) error {
	err := r.client.JobApplication.UpdateOneID(id).
		SetContractKey(contractKey).
		Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error setting contract key for application %s: %v\n", id, err)
		return fmt.Errorf("failed to set contract key: %w", err)
	}

	return nil
}

func (r *JobApplicationRepo) UpdateNote(ctx context.Context, id uuid.UUID, note string) (*ent.JobApplication, error) {
	updatedApp, err := r.client.JobApplication.UpdateOneID(id).
		SetNote(note).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating note for application %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application note: %w", err)
	}

	return updatedApp, nil
}

func (r *JobApplicationRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	err := r.client.JobApplication.UpdateOneID(id).
		Where(jobapplication.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error soft-deleting job application %s: %v\n", id, err)
		return fmt.Errorf("failed to soft-delete job application: %w", err)
	}

	log.Printf("Job application soft-deleted with ID: %s", id)
	return nil
}

func (r *JobApplicationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.JobApplication.DeleteOneID(id).Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error deleting job application with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job application: %w", err)
	}

	log.Printf("Job application deleted successfully with ID: %s", id)
	return nil
}
