package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/job"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// JobRepo implements the storage.JobRepository interface using Ent.
type JobRepo struct {
	client *ent.Client
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(client *ent.Client) *JobRepo {
	return &JobRepo{client: client}
}

func (r *JobRepo) WithTx(tx *ent.Tx) storage.JobRepository {
	return &JobRepo{client: tx.Client()}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	created, err := r.client.Job.Create().
		SetEmployerID(req.EmployerID).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetQuestions(req.Questions).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating job (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create job: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	j, err := r.client.Job.Get(ctx, id)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return j, nil
}

func (r *JobRepo) ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*ent.Job, error) {
	query := r.client.Job.Query().
		Where(job.EmployerID(req.EmployerID))

	if req.Status != nil {
		query = query.Where(job.StatusEQ(job.Status(*req.Status)))
	}

	jobs, err := query.
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(req.Limit).
		Offset(req.Offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying jobs by employer ID %s: %v\n", req.EmployerID, err)
		return nil, fmt.Errorf("failed to list jobs by employer: %w", err)
	}

	return jobs, nil
}

func (r *JobRepo) ListActive(ctx context.Context, limit, offset int) ([]*ent.Job, error) {
	jobs, err := r.client.Job.Query().
		Where(job.StatusEQ(job.StatusActive)).
		Order(ent.Desc(job.FieldCreatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)

	if err != nil {
		log.Printf("Error querying active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to list active jobs: %w", err)
	}

	return jobs, nil
}

func (r *JobRepo) Update(ctx context.Context, req *dto.UpdateJobRequest) (*ent.Job, error) {
	update := r.client.Job.UpdateOneID(req.ID)

	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Description != nil {
		update = update.SetDescription(*req.Description)
	}
	if req.Questions != nil {
		update = update.SetQuestions(*req.Questions)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	return updated, nil
}

func (r *JobRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*ent.Job, error) {
	updated, err := r.client.Job.UpdateOneID(id).
		SetStatus(job.Status(status)).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job status for ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	return updated, nil
}

func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Job.DeleteOneID(id).Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error deleting job with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job: %w", err)
	}

	log.Printf("Job deleted successfully with ID: %s", id)
	return nil
}
