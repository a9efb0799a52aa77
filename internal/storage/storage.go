package storage

import (
	"context"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	Create(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
	GetByEmail(ctx context.Context, email string) (*ent.User, error)
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	WithTx(tx *ent.Tx) JobRepository
	Create(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error)
	ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*ent.Job, error)
	ListActive(ctx context.Context, limit, offset int) ([]*ent.Job, error)
	Update(ctx context.Context, req *dto.UpdateJobRequest) (*ent.Job, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*ent.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// JobApplicationRepository defines the interface for job application data operations.
type JobApplicationRepository interface {
	WithTx(tx *ent.Tx) JobApplicationRepository
	Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*ent.JobApplication, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.JobApplication, error)
	GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*ent.JobApplication, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.JobApplication, error)
	ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]*ent.JobApplication, error)

	// TransitionStatus advances status from exactly `from` to `to` while the
	// outcome is still InProgress. Returns ErrStaleState when no row matched,
	// i.e. the application moved (or was rejected) concurrently.
	TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*ent.JobApplication, error)

	SetOutcome(ctx context.Context, id uuid.UUID, outcome models.ApplicationOutcome) (*ent.JobApplication, error)
	SetContractKey(ctx context.Context, id uuid.UUID, contractKey string) error
	UpdateNote(ctx context.Context, id uuid.UUID, note string) (*ent.JobApplication, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// SubscriptionRepository defines the interface for the employer credit ledger.
type SubscriptionRepository interface {
	WithTx(tx *ent.Tx) SubscriptionRepository
	GetByEmployer(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error)
	GetByTransactionID(ctx context.Context, transactionID string) (*ent.Subscription, error)

	// Create installs the first package for an employer.
	Create(ctx context.Context, employerID uuid.UUID, snap models.PackageSnapshot) (*ent.Subscription, error)

	// InstallPackage replaces the current package snapshot and resets the
	// live counter to the new allowance. History archiving is the caller's
	// responsibility, inside the same transaction.
	InstallPackage(ctx context.Context, subscriptionID uuid.UUID, snap models.PackageSnapshot) (*ent.Subscription, error)

	// AppendHistory archives a superseded package snapshot. Append-only.
	AppendHistory(ctx context.Context, subscriptionID uuid.UUID, snap models.PackageSnapshot) error
	History(ctx context.Context, subscriptionID uuid.UUID) ([]models.PackageSnapshot, error)

	// DebitCredit atomically decrements the live counter by one, failing
	// with ErrInsufficientCredits when it is already zero and ErrNotFound
	// when the employer has no subscription.
	DebitCredit(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error)

	// AdjustCredits applies an admin adjustment (positive or negative) to
	// the live counter, tracking it in the admin counters. A negative delta
	// never takes the counter below zero.
	AdjustCredits(ctx context.Context, employerID uuid.UUID, delta int) (*ent.Subscription, error)
}

// SubmittedTestRepository defines the interface for submitted test data operations.
type SubmittedTestRepository interface {
	WithTx(tx *ent.Tx) SubmittedTestRepository
	Create(ctx context.Context, req *dto.CreateSubmittedTestRequest) (*ent.SubmittedTest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.SubmittedTest, error)
	GetByApplication(ctx context.Context, applicationID uuid.UUID) (*ent.SubmittedTest, error)
	UpdateAnswers(ctx context.Context, id uuid.UUID, answers []models.Answer) (*ent.SubmittedTest, error)
}

// PackageRepository defines the interface for package template data operations.
type PackageRepository interface {
	Create(ctx context.Context, req *dto.CreatePackageRequest) (*ent.CreditPackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.CreditPackage, error)
	GetByType(ctx context.Context, packageType models.PackageType) (*ent.CreditPackage, error)
	List(ctx context.Context) ([]*ent.CreditPackage, error)
	Update(ctx context.Context, req *dto.UpdatePackageRequest) (*ent.CreditPackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
