package services

import (
	"context"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/transport/dto"
)

// UserService defines the interface for user-related business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, string, string, error) // Returns user, access and refresh tokens
	GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error)
	Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error)
	Logout(ctx context.Context, req *dto.LogoutRequest) error
}

// JobService defines the interface for job-posting business logic.
type JobService interface {
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (*ent.Job, error)
	ListActiveJobs(ctx context.Context, req *dto.ListActiveJobsRequest) ([]*ent.Job, error)
	ListJobsByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*ent.Job, error)
	UpdateJob(ctx context.Context, req *dto.UpdateJobRequest) (*ent.Job, error)
	UpdateJobStatus(ctx context.Context, req *dto.UpdateJobStatusRequest) (*ent.Job, error)
	DeleteJob(ctx context.Context, req *dto.DeleteJobRequest) error
}

// JobApplicationService enforces the application lifecycle state machine.
type JobApplicationService interface {
	Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*ent.JobApplication, error)
	GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*ent.JobApplication, error)
	ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.JobApplication, error)
	ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]*ent.JobApplication, error)
	Accept(ctx context.Context, req *dto.AcceptApplicationRequest) (*ent.JobApplication, error)
	MarkPassed(ctx context.Context, req *dto.MarkPassedRequest) (*ent.JobApplication, error)
	SignContract(ctx context.Context, req *dto.SignContractRequest) (*ent.JobApplication, error)
	ApproveContract(ctx context.Context, req *dto.ApproveContractRequest) (*ent.JobApplication, error)
	Reject(ctx context.Context, req *dto.RejectApplicationRequest) (*ent.JobApplication, error)
	UpdateNote(ctx context.Context, req *dto.UpdateApplicationNoteRequest) (*ent.JobApplication, error)
	Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error
}

// SubscriptionService owns the employer credit ledger.
type SubscriptionService interface {
	GetByEmployer(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error)
	GetActiveCredits(ctx context.Context, employerID uuid.UUID) (int, error)
	DebitCredit(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error)
	GrantPackage(ctx context.Context, req *dto.GrantPackageRequest) (*ent.Subscription, error)
	AdjustCredits(ctx context.Context, req *dto.AdjustCreditsRequest) (*ent.Subscription, error)
	History(ctx context.Context, employerID uuid.UUID) ([]models.PackageSnapshot, error)
}

// TestSubmissionService is the single entry point for taking and grading a
// test. Submission is where the state machine, the credit ledger and the
// answer schema all intersect.
type TestSubmissionService interface {
	SubmitTest(ctx context.Context, req *dto.SubmitTestRequest) (*ent.SubmittedTest, error)
	GetByApplication(ctx context.Context, req *dto.GetSubmittedTestRequest) (*ent.SubmittedTest, error)
	MarkQuestionCorrect(ctx context.Context, req *dto.MarkQuestionCorrectRequest) (*ent.SubmittedTest, error)
}

// PackageService manages the admin credit-grant templates.
type PackageService interface {
	EnsureFreeTrial(ctx context.Context) (*ent.CreditPackage, error)
	Create(ctx context.Context, req *dto.CreatePackageRequest) (*ent.CreditPackage, error)
	List(ctx context.Context) ([]*ent.CreditPackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ent.CreditPackage, error)
	Update(ctx context.Context, req *dto.UpdatePackageRequest) (*ent.CreditPackage, error)
	Delete(ctx context.Context, req *dto.DeletePackageRequest) error
}
