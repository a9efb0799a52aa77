package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	"hirehub/internal/mocks"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

func setupPackageServiceTest(t *testing.T) (context.Context, services.PackageService, *mocks.MockPackageRepository) {
	t.Helper()
	mockPkgRepo := new(mocks.MockPackageRepository)
	pkgService := services.NewPackageService(mockPkgRepo)
	return context.Background(), pkgService, mockPkgRepo
}

func TestPackageService_EnsureFreeTrial_AlreadySeeded(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	existing := &ent.CreditPackage{ID: uuid.New(), Title: "Free Trial", NumberOfCredits: 3, PackageType: models.PackageTypeFreeTrial}
	mockPkgRepo.On("GetByType", ctx, models.PackageTypeFreeTrial).Return(existing, nil).Once()

	pkg, err := pkgService.EnsureFreeTrial(ctx)

	require.NoError(t, err)
	assert.Equal(t, existing, pkg)
	mockPkgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPackageService_EnsureFreeTrial_SeedsOnFirstRun(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	created := &ent.CreditPackage{ID: uuid.New(), Title: "Free Trial", NumberOfCredits: 3, PackageType: models.PackageTypeFreeTrial}

	mockPkgRepo.On("GetByType", ctx, models.PackageTypeFreeTrial).Return(nil, storage.ErrNotFound).Once()
	mockPkgRepo.On("Create", ctx, mock.MatchedBy(func(req *dto.CreatePackageRequest) bool {
		return req.Title == "Free Trial" &&
			req.PricePerCredit == 0 &&
			req.NumberOfCredits == 3 &&
			req.PackageType == models.PackageTypeFreeTrial
	})).Return(created, nil).Once()

	pkg, err := pkgService.EnsureFreeTrial(ctx)

	require.NoError(t, err)
	assert.Equal(t, created, pkg)
	mockPkgRepo.AssertExpectations(t)
}

func TestPackageService_EnsureFreeTrial_LostStartupRace(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	winner := &ent.CreditPackage{ID: uuid.New(), Title: "Free Trial", NumberOfCredits: 3, PackageType: models.PackageTypeFreeTrial}

	// Another instance seeded between the lookup and the insert.
	mockPkgRepo.On("GetByType", ctx, models.PackageTypeFreeTrial).Return(nil, storage.ErrNotFound).Once()
	mockPkgRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()
	mockPkgRepo.On("GetByType", ctx, models.PackageTypeFreeTrial).Return(winner, nil).Once()

	pkg, err := pkgService.EnsureFreeTrial(ctx)

	require.NoError(t, err)
	assert.Equal(t, winner, pkg)
}

func TestPackageService_Create_Success(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	req := &dto.CreatePackageRequest{
		Title:           "Standard",
		Features:        []string{"10 candidate tests"},
		PricePerCredit:  9.99,
		NumberOfCredits: 10,
		PackageType:     models.PackageTypeStandard,
	}
	created := &ent.CreditPackage{ID: uuid.New(), Title: req.Title, NumberOfCredits: req.NumberOfCredits, PackageType: req.PackageType}

	mockPkgRepo.On("Create", ctx, req).Return(created, nil).Once()

	pkg, err := pkgService.Create(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, pkg)
}

func TestPackageService_Create_Conflict_SecondFreeTrial(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	req := &dto.CreatePackageRequest{Title: "Another Trial", NumberOfCredits: 5, PackageType: models.PackageTypeFreeTrial}
	existing := &ent.CreditPackage{ID: uuid.New(), Title: "Free Trial", PackageType: models.PackageTypeFreeTrial}

	mockPkgRepo.On("GetByType", ctx, models.PackageTypeFreeTrial).Return(existing, nil).Once()

	_, err := pkgService.Create(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	mockPkgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPackageService_Create_Validation_PaidFreeTrial(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	req := &dto.CreatePackageRequest{Title: "Trial", PricePerCredit: 1.50, NumberOfCredits: 5, PackageType: models.PackageTypeFreeTrial}

	mockPkgRepo.On("GetByType", ctx, models.PackageTypeFreeTrial).Return(nil, storage.ErrNotFound).Once()

	_, err := pkgService.Create(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	assert.Contains(t, err.Error(), "must be free")
}

func TestPackageService_Update_Validation_FreeTrialPriceImmutable(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	pkgID := uuid.New()
	req := &dto.UpdatePackageRequest{ID: pkgID, PricePerCredit: ptrFloat64(4.99)}
	freeTrial := &ent.CreditPackage{ID: pkgID, Title: "Free Trial", PackageType: models.PackageTypeFreeTrial}

	mockPkgRepo.On("GetByID", ctx, pkgID).Return(freeTrial, nil).Once()

	_, err := pkgService.Update(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	mockPkgRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPackageService_Update_Success_FreeTrialOtherFields(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	pkgID := uuid.New()
	req := &dto.UpdatePackageRequest{ID: pkgID, Title: ptrString("Starter Trial"), NumberOfCredits: ptrInt(5)}
	freeTrial := &ent.CreditPackage{ID: pkgID, Title: "Free Trial", PackageType: models.PackageTypeFreeTrial}
	updated := &ent.CreditPackage{ID: pkgID, Title: "Starter Trial", NumberOfCredits: 5, PackageType: models.PackageTypeFreeTrial}

	mockPkgRepo.On("GetByID", ctx, pkgID).Return(freeTrial, nil).Once()
	mockPkgRepo.On("Update", ctx, req).Return(updated, nil).Once()

	pkg, err := pkgService.Update(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updated, pkg)
}

func TestPackageService_Delete_Forbidden_FreeTrial(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	pkgID := uuid.New()
	freeTrial := &ent.CreditPackage{ID: pkgID, Title: "Free Trial", PackageType: models.PackageTypeFreeTrial}

	mockPkgRepo.On("GetByID", ctx, pkgID).Return(freeTrial, nil).Once()

	err := pkgService.Delete(ctx, &dto.DeletePackageRequest{ID: pkgID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockPkgRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPackageService_Delete_Success(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	pkgID := uuid.New()
	standard := &ent.CreditPackage{ID: pkgID, Title: "Standard", PackageType: models.PackageTypeStandard}

	mockPkgRepo.On("GetByID", ctx, pkgID).Return(standard, nil).Once()
	mockPkgRepo.On("Delete", ctx, pkgID).Return(nil).Once()

	err := pkgService.Delete(ctx, &dto.DeletePackageRequest{ID: pkgID})

	require.NoError(t, err)
	mockPkgRepo.AssertExpectations(t)
}

func TestPackageService_GetByID_NotFound(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	pkgID := uuid.New()
	mockPkgRepo.On("GetByID", ctx, pkgID).Return(nil, storage.ErrNotFound).Once()

	_, err := pkgService.GetByID(ctx, pkgID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestPackageService_List_Success(t *testing.T) {
	ctx, pkgService, mockPkgRepo := setupPackageServiceTest(t)

	expected := []*ent.CreditPackage{
		{ID: uuid.New(), Title: "Free Trial", PackageType: models.PackageTypeFreeTrial},
		{ID: uuid.New(), Title: "Standard", PackageType: models.PackageTypeStandard},
	}
	mockPkgRepo.On("List", ctx).Return(expected, nil).Once()

	packages, err := pkgService.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, packages)
}
