package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type jobService struct {
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, userRepo storage.UserRepository) JobService {
	return &jobService{jobRepo: jobRepo, userRepo: userRepo}
}

// CreateJob posts a new job with its test-builder question set. Employer only.
func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	employer, err := s.userRepo.GetByID(ctx, req.EmployerID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching employer %s", req.EmployerID))
	}
	if employer.Role != user.RoleEmployer {
		return nil, fmt.Errorf("%w: only employers can post jobs", ErrForbidden)
	}

	if err := validateQuestions(req.Questions); err != nil {
		return nil, err
	}
	ensureQuestionIDs(req.Questions)

	created, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating job")
	}
	log.Printf("Job %s created by employer %s", created.ID, req.EmployerID)
	return created, nil
}

// GetJobByID retrieves a job posting by its ID.
func (s *jobService) GetJobByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	jobFound, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", id))
	}
	return jobFound, nil
}

// ListActiveJobs retrieves the public job board.
func (s *jobService) ListActiveJobs(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*ent.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx, req.Limit, req.Offset)
	if err != nil {
		return nil, mapRepoError(err, "listing active jobs")
	}
	return jobs, nil
}

// ListJobsByEmployer retrieves the requesting employer's postings.
func (s *jobService) ListJobsByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*ent.Job, error) {
	jobs, err := s.jobRepo.ListByEmployer(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing jobs for employer %s", req.EmployerID))
	}
	return jobs, nil
}

// UpdateJob updates a posting's content. Archived jobs are immutable.
func (s *jobService) UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*ent.Job, error) {
	jobFound, err := s.authorizeOwner(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	if models.JobStatus(jobFound.Status) == models.JobStatusArchived {
		return nil, fmt.Errorf("%w: archived jobs cannot be updated", ErrInvalidState)
	}

	if req.Questions != nil {
		if err := validateQuestions(*req.Questions); err != nil {
			return nil, err
		}
		ensureQuestionIDs(*req.Questions)
	}

	updated, err := s.jobRepo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating job %s", req.ID))
	}
	return updated, nil
}

// UpdateJobStatus moves a posting through its own lifecycle
// (Active <-> Closed, either -> Archived).
func (s *jobService) UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*ent.Job, error) {
	jobFound, err := s.authorizeOwner(ctx, req.ID, req.UserID)
	if err != nil {
		return nil, err
	}

	current := models.JobStatus(jobFound.Status)
	if current == req.Status {
		return jobFound, nil
	}
	if !isValidJobStatusTransition(current, req.Status) {
		return nil, fmt.Errorf("%w: cannot move job from %s to %s", ErrInvalidTransition, current, req.Status)
	}

	updated, err := s.jobRepo.UpdateStatus(ctx, req.ID, req.Status)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating status of job %s", req.ID))
	}
	log.Printf("Job %s moved from %s to %s by employer %s", req.ID, current, req.Status, req.UserID)
	return updated, nil
}

// DeleteJob removes a posting and cascades to its applications.
func (s *jobService) DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error {
	if _, err := s.authorizeOwner(ctx, req.ID, req.UserID); err != nil {
		return err
	}

	if err := s.jobRepo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting job %s", req.ID))
	}
	log.Printf("Job %s deleted by user %s", req.ID, req.UserID)
	return nil
}

func (s *jobService) authorizeOwner(ctx context.Context, jobID, userID uuid.UUID) (*ent.Job, error) {
	jobFound, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", jobID))
	}
	if jobFound.EmployerID != userID {
		log.Printf("Forbidden attempt by user %s on job %s (Employer: %s)", userID, jobID, jobFound.EmployerID)
		return nil, ErrForbidden
	}
	return jobFound, nil
}

// validateQuestions checks the test-builder question set for structural
// soundness at authoring time, so submission-time validation can trust it.
func validateQuestions(questions []models.Question) error {
	var violations []FieldViolation
	for i, q := range questions {
		field := fmt.Sprintf("questions[%d]", i)
		if q.Prompt == "" {
			violations = append(violations, FieldViolation{Field: field + ".prompt", Message: "prompt is required"})
		}
		switch q.Type {
		case models.QuestionOpen:
			if q.WordLimit < 0 {
				violations = append(violations, FieldViolation{Field: field + ".word_limit", Message: "word limit cannot be negative"})
			}
		case models.QuestionMultipleChoice:
			if len(q.Options) < 2 {
				violations = append(violations, FieldViolation{Field: field + ".options", Message: "multiple-choice question requires at least two options"})
			}
		case models.QuestionFile:
			// No extra fields.
		default:
			violations = append(violations, FieldViolation{Field: field + ".type", Message: fmt.Sprintf("unsupported question type %q", q.Type)})
		}
	}
	if len(violations) > 0 {
		return &AnswerValidationError{Violations: violations}
	}
	return nil
}

// ensureQuestionIDs assigns IDs to newly authored questions. Existing IDs are
// kept so answers on older submissions still resolve.
func ensureQuestionIDs(questions []models.Question) {
	for i := range questions {
		if questions[i].ID == uuid.Nil {
			questions[i].ID = uuid.New()
		}
	}
}
