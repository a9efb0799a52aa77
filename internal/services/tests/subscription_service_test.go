package services_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	entuser "hirehub/ent/user"
	"hirehub/internal/mocks"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type subscriptionServiceMocks struct {
	subRepo  *mocks.MockSubscriptionRepository
	pkgRepo  *mocks.MockPackageRepository
	userRepo *mocks.MockUserRepository
}

func setupSubscriptionServiceTest(t *testing.T) (context.Context, services.SubscriptionService, subscriptionServiceMocks) {
	t.Helper()
	m := subscriptionServiceMocks{
		subRepo:  new(mocks.MockSubscriptionRepository),
		pkgRepo:  new(mocks.MockPackageRepository),
		userRepo: new(mocks.MockUserRepository),
	}
	svc := services.NewSubscriptionService(m.subRepo, m.pkgRepo, m.userRepo, nil, notify.NoopNotifier{})
	return context.Background(), svc, m
}

func TestSubscriptionService_GetByEmployer_Success(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	expected := &ent.Subscription{
		ID:            uuid.New(),
		EmployerID:    employerID,
		Title:         "Standard",
		Credits:       7,
		TransactionID: "txn_001",
		GrantedAt:     time.Now(),
	}

	m.subRepo.On("GetByEmployer", ctx, employerID).Return(expected, nil).Once()

	sub, err := svc.GetByEmployer(ctx, employerID)

	require.NoError(t, err)
	assert.Equal(t, expected, sub)
}

func TestSubscriptionService_GetByEmployer_NoSubscription(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GetByEmployer(ctx, employerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoSubscription))
}

func TestSubscriptionService_GetActiveCredits_NoSubscription(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GetActiveCredits(ctx, employerID)

	// A missing subscription is not the same thing as a spent-down balance.
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoSubscription))
}

func TestSubscriptionService_GetActiveCredits_Success(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(&ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 4}, nil).Once()

	credits, err := svc.GetActiveCredits(ctx, employerID)

	require.NoError(t, err)
	assert.Equal(t, 4, credits)
}

func TestSubscriptionService_GetActiveCredits_ZeroBalance(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(&ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 0}, nil).Once()

	credits, err := svc.GetActiveCredits(ctx, employerID)

	// An existing subscription with nothing left reads as zero, not an error.
	require.NoError(t, err)
	assert.Equal(t, 0, credits)
}

func TestSubscriptionService_DebitCredit_Success(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	debited := &ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 2}

	m.subRepo.On("DebitCredit", ctx, employerID).Return(debited, nil).Once()

	sub, err := svc.DebitCredit(ctx, employerID)

	require.NoError(t, err)
	assert.Equal(t, 2, sub.Credits)
}

func TestSubscriptionService_DebitCredit_NoSubscription(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("DebitCredit", ctx, employerID).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.DebitCredit(ctx, employerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoSubscription))
}

func TestSubscriptionService_DebitCredit_Insufficient(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("DebitCredit", ctx, employerID).Return(nil, storage.ErrInsufficientCredits).Once()

	_, err := svc.DebitCredit(ctx, employerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInsufficientCredits))
}

func TestSubscriptionService_DebitCredit_LastCreditRace(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	drained := &ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 0}

	// One credit left and two concurrent debits. The conditional update lets
	// exactly one through; the other hits the floor.
	m.subRepo.On("DebitCredit", ctx, employerID).Return(drained, nil).Once()
	m.subRepo.On("DebitCredit", ctx, employerID).Return(nil, storage.ErrInsufficientCredits).Once()

	results := make(chan error, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.DebitCredit(ctx, employerID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, floors int
	for err := range results {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, services.ErrInsufficientCredits):
			floors++
		default:
			t.Fatalf("unexpected debit error: %v", err)
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, 1, floors)
	m.subRepo.AssertExpectations(t)
}

func TestSubscriptionService_GrantPackage_Forbidden_NotEmployer(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	candidateID := uuid.New()
	req := &dto.GrantPackageRequest{EmployerID: candidateID, PackageID: uuid.New(), TransactionID: "txn_001"}

	m.userRepo.On("GetByID", ctx, candidateID).Return(&ent.User{ID: candidateID, Role: entuser.RoleCandidate}, nil).Once()

	_, err := svc.GrantPackage(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	m.pkgRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestSubscriptionService_GrantPackage_PackageNotFound(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	packageID := uuid.New()
	req := &dto.GrantPackageRequest{EmployerID: employerID, PackageID: packageID, TransactionID: "txn_001"}

	m.userRepo.On("GetByID", ctx, employerID).Return(&ent.User{ID: employerID, Role: entuser.RoleEmployer}, nil).Once()
	m.pkgRepo.On("GetByID", ctx, packageID).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.GrantPackage(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestSubscriptionService_AdjustCredits_ZeroDelta(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	req := &dto.AdjustCreditsRequest{EmployerID: uuid.New(), AdminID: uuid.New(), Delta: 0}

	_, err := svc.AdjustCredits(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	m.subRepo.AssertNotCalled(t, "AdjustCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_AdjustCredits_Success(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	req := &dto.AdjustCreditsRequest{EmployerID: employerID, AdminID: uuid.New(), Delta: 5}
	adjusted := &ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 8, AdminCreditsAdded: 5}

	m.subRepo.On("AdjustCredits", ctx, employerID, 5).Return(adjusted, nil).Once()

	sub, err := svc.AdjustCredits(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, adjusted, sub)
}

func TestSubscriptionService_AdjustCredits_RemovalBelowZero(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	req := &dto.AdjustCreditsRequest{EmployerID: employerID, AdminID: uuid.New(), Delta: -10}

	m.subRepo.On("AdjustCredits", ctx, employerID, -10).Return(nil, storage.ErrInsufficientCredits).Once()

	_, err := svc.AdjustCredits(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInsufficientCredits))
}

func TestSubscriptionService_AdjustCredits_NoSubscription(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	req := &dto.AdjustCreditsRequest{EmployerID: employerID, AdminID: uuid.New(), Delta: 3}

	m.subRepo.On("AdjustCredits", ctx, employerID, 3).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.AdjustCredits(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoSubscription))
}

func TestSubscriptionService_History_Success(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	subID := uuid.New()
	sub := &ent.Subscription{ID: subID, EmployerID: employerID, Credits: 1}
	history := []models.PackageSnapshot{
		{PackageID: uuid.New(), Title: "Free Trial", Credits: 0, TransactionID: "trial"},
		{PackageID: uuid.New(), Title: "Standard", Credits: 2, TransactionID: "txn_001"},
	}

	m.subRepo.On("GetByEmployer", ctx, employerID).Return(sub, nil).Once()
	m.subRepo.On("History", ctx, subID).Return(history, nil).Once()

	snaps, err := svc.History(ctx, employerID)

	require.NoError(t, err)
	assert.Equal(t, history, snaps)
}

func TestSubscriptionService_History_NoSubscription(t *testing.T) {
	ctx, svc, m := setupSubscriptionServiceTest(t)

	employerID := uuid.New()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.History(ctx, employerID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoSubscription))
}
