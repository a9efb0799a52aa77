package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// freeTrialCredits is the allowance seeded for the free-trial template.
const freeTrialCredits = 3

type packageService struct {
	repo storage.PackageRepository
}

// NewPackageService creates a new instance of PackageService.
func NewPackageService(repo storage.PackageRepository) PackageService {
	return &packageService{repo: repo}
}

// EnsureFreeTrial seeds the free-trial template if it does not exist yet.
// Called once at startup; safe to call again.
func (s *packageService) EnsureFreeTrial(ctx context.Context) (*ent.CreditPackage, error) {
	existing, err := s.repo.GetByType(ctx, models.PackageTypeFreeTrial)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "looking up free-trial package")
	}

	created, err := s.repo.Create(ctx, &dto.CreatePackageRequest{
		Title:           "Free Trial",
		Features:        []string{"Evaluate candidates with a starter credit allowance"},
		PricePerCredit:  0,
		NumberOfCredits: freeTrialCredits,
		PackageType:     models.PackageTypeFreeTrial,
	})
	if err != nil {
		// Lost a startup race with another instance; the row exists now.
		if errors.Is(err, storage.ErrConflict) {
			return s.repo.GetByType(ctx, models.PackageTypeFreeTrial)
		}
		return nil, mapRepoError(err, "seeding free-trial package")
	}
	log.Printf("Seeded free-trial package %s with %d credits", created.ID, freeTrialCredits)
	return created, nil
}

// Create adds a new package template. Admin only (enforced at the route).
func (s *packageService) Create(ctx context.Context, req *dto.CreatePackageRequest) (*ent.CreditPackage, error) {
	if req.PackageType == models.PackageTypeFreeTrial {
		if _, err := s.repo.GetByType(ctx, models.PackageTypeFreeTrial); err == nil {
			return nil, fmt.Errorf("%w: free-trial package already exists", ErrConflict)
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, mapRepoError(err, "looking up free-trial package")
		}
		if req.PricePerCredit != 0 {
			return nil, fmt.Errorf("%w: free-trial package must be free", ErrValidation)
		}
	}

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, "creating package")
	}
	return created, nil
}

// List returns all package templates.
func (s *packageService) List(ctx context.Context) ([]*ent.CreditPackage, error) {
	packages, err := s.repo.List(ctx)
	if err != nil {
		return nil, mapRepoError(err, "listing packages")
	}
	return packages, nil
}

// GetByID retrieves a package template.
func (s *packageService) GetByID(ctx context.Context, id uuid.UUID) (*ent.CreditPackage, error) {
	pkg, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching package %s", id))
	}
	return pkg, nil
}

// Update modifies a package template. The free-trial price is immutable.
// Subscriptions hold snapshots, so updates never affect past grants.
func (s *packageService) Update(ctx context.Context, req *dto.UpdatePackageRequest) (*ent.CreditPackage, error) {
	pkg, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching package %s", req.ID))
	}

	if models.PackageType(pkg.PackageType) == models.PackageTypeFreeTrial &&
		req.PricePerCredit != nil && *req.PricePerCredit != 0 {
		return nil, fmt.Errorf("%w: free-trial package price is immutable", ErrValidation)
	}

	updated, err := s.repo.Update(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("updating package %s", req.ID))
	}
	return updated, nil
}

// Delete removes a package template. The free-trial template is never
// deletable.
func (s *packageService) Delete(ctx context.Context, req *dto.DeletePackageRequest) error {
	pkg, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching package %s", req.ID))
	}

	if models.PackageType(pkg.PackageType) == models.PackageTypeFreeTrial {
		return fmt.Errorf("%w: free-trial package cannot be deleted", ErrForbidden)
	}

	if err := s.repo.Delete(ctx, req.ID); err != nil {
		return mapRepoError(err, fmt.Sprintf("deleting package %s", req.ID))
	}
	log.Printf("Package %s (%s) deleted", pkg.ID, pkg.Title)
	return nil
}
