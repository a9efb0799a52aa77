// Package mocks provides hand-written testify mocks for the storage
// interfaces and outbound collaborators.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// --- UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ storage.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) Create(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

// --- JobRepository ---

type MockJobRepository struct {
	mock.Mock
}

var _ storage.JobRepository = (*MockJobRepository)(nil)

func (m *MockJobRepository) WithTx(tx *ent.Tx) storage.JobRepository {
	return m
}

func (m *MockJobRepository) Create(ctx context.Context, req *dto.CreateJobRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) ListByEmployer(ctx context.Context, req *dto.ListJobsByEmployerRequest) ([]*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Job), args.Error(1)
}

func (m *MockJobRepository) ListActive(ctx context.Context, limit, offset int) ([]*ent.Job, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.Job), args.Error(1)
}

func (m *MockJobRepository) Update(ctx context.Context, req *dto.UpdateJobRequest) (*ent.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.JobStatus) (*ent.Job, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Job), args.Error(1)
}

func (m *MockJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- JobApplicationRepository ---

type MockJobApplicationRepository struct {
	mock.Mock
}

var _ storage.JobApplicationRepository = (*MockJobApplicationRepository)(nil)

func (m *MockJobApplicationRepository) WithTx(tx *ent.Tx) storage.JobApplicationRepository {
	return m
}

func (m *MockJobApplicationRepository) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.JobApplication, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) GetByJobAndCandidate(ctx context.Context, jobID, candidateID uuid.UUID) (*ent.JobApplication, error) {
	args := m.Called(ctx, jobID, candidateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) TransitionStatus(ctx context.Context, id uuid.UUID, from, to models.ApplicationStatus) (*ent.JobApplication, error) {
	args := m.Called(ctx, id, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) SetOutcome(ctx context.Context, id uuid.UUID, outcome models.ApplicationOutcome) (*ent.JobApplication, error) {
	args := m.Called(ctx, id, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) SetContractKey(ctx context.Context, id uuid.UUID, contractKey string) error {
	args := m.Called(ctx, id, contractKey)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) UpdateNote(ctx context.Context, id uuid.UUID, note string) (*ent.JobApplication, error) {
	args := m.Called(ctx, id, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobApplicationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- SubscriptionRepository ---

type MockSubscriptionRepository struct {
	mock.Mock
}

var _ storage.SubscriptionRepository = (*MockSubscriptionRepository)(nil)

func (m *MockSubscriptionRepository) WithTx(tx *ent.Tx) storage.SubscriptionRepository {
	return m
}

func (m *MockSubscriptionRepository) GetByEmployer(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*ent.Subscription, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) Create(ctx context.Context, employerID uuid.UUID, snap models.PackageSnapshot) (*ent.Subscription, error) {
	args := m.Called(ctx, employerID, snap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) InstallPackage(ctx context.Context, subscriptionID uuid.UUID, snap models.PackageSnapshot) (*ent.Subscription, error) {
	args := m.Called(ctx, subscriptionID, snap)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) AppendHistory(ctx context.Context, subscriptionID uuid.UUID, snap models.PackageSnapshot) error {
	args := m.Called(ctx, subscriptionID, snap)
	return args.Error(0)
}

func (m *MockSubscriptionRepository) History(ctx context.Context, subscriptionID uuid.UUID) ([]models.PackageSnapshot, error) {
	args := m.Called(ctx, subscriptionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PackageSnapshot), args.Error(1)
}

func (m *MockSubscriptionRepository) DebitCredit(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionRepository) AdjustCredits(ctx context.Context, employerID uuid.UUID, delta int) (*ent.Subscription, error) {
	args := m.Called(ctx, employerID, delta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

// --- SubmittedTestRepository ---

type MockSubmittedTestRepository struct {
	mock.Mock
}

var _ storage.SubmittedTestRepository = (*MockSubmittedTestRepository)(nil)

func (m *MockSubmittedTestRepository) WithTx(tx *ent.Tx) storage.SubmittedTestRepository {
	return m
}

func (m *MockSubmittedTestRepository) Create(ctx context.Context, req *dto.CreateSubmittedTestRequest) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

func (m *MockSubmittedTestRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

func (m *MockSubmittedTestRepository) GetByApplication(ctx context.Context, applicationID uuid.UUID) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

func (m *MockSubmittedTestRepository) UpdateAnswers(ctx context.Context, id uuid.UUID, answers []models.Answer) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, id, answers)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

// --- PackageRepository ---

type MockPackageRepository struct {
	mock.Mock
}

var _ storage.PackageRepository = (*MockPackageRepository)(nil)

func (m *MockPackageRepository) Create(ctx context.Context, req *dto.CreatePackageRequest) (*ent.CreditPackage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.CreditPackage), args.Error(1)
}

func (m *MockPackageRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.CreditPackage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.CreditPackage), args.Error(1)
}

func (m *MockPackageRepository) GetByType(ctx context.Context, packageType models.PackageType) (*ent.CreditPackage, error) {
	args := m.Called(ctx, packageType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.CreditPackage), args.Error(1)
}

func (m *MockPackageRepository) List(ctx context.Context) ([]*ent.CreditPackage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.CreditPackage), args.Error(1)
}

func (m *MockPackageRepository) Update(ctx context.Context, req *dto.UpdatePackageRequest) (*ent.CreditPackage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.CreditPackage), args.Error(1)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Notifier ---

type MockNotifier struct {
	mock.Mock
}

var _ notify.Notifier = (*MockNotifier)(nil)

func (m *MockNotifier) Notify(ctx context.Context, kind notify.Kind, recipient uuid.UUID, payload interface{}) error {
	args := m.Called(ctx, kind, recipient, payload)
	return args.Error(0)
}

func (m *MockNotifier) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- ObjectStore ---

type MockObjectStore struct {
	mock.Mock
}

var _ objectstore.ObjectStore = (*MockObjectStore)(nil)

func (m *MockObjectStore) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockObjectStore) Sign(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStore) IsDuplicate(ctx context.Context, key, field string) (bool, error) {
	args := m.Called(ctx, key, field)
	return args.Bool(0), args.Error(1)
}
