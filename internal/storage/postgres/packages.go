package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/creditpackage"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// PackageRepo implements the storage.PackageRepository interface using Ent.
type PackageRepo struct {
	client *ent.Client
}

// NewPackageRepo creates a new PackageRepo.
func NewPackageRepo(client *ent.Client) *PackageRepo {
	return &PackageRepo{client: client}
}

// Compile-time check to ensure PackageRepo implements PackageRepository
var _ storage.PackageRepository = (*PackageRepo)(nil)

func (r *PackageRepo) Create(ctx context.Context, req *dto.CreatePackageRequest) (*ent.CreditPackage, error) {
	created, err := r.client.CreditPackage.Create().
		SetTitle(req.Title).
		SetFeatures(req.Features).
		SetPricePerCredit(req.PricePerCredit).
		SetNumberOfCredits(req.NumberOfCredits).
		SetPackageType(req.PackageType).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating package (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create package: %w", storage.ErrConflict)
		}
		log.Printf("Error creating package: %v\n", err)
		return nil, fmt.Errorf("failed to create package: %w", err)
	}

	log.Printf("Package created successfully with ID: %s", created.ID)
	return created, nil
}

func (r *PackageRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.CreditPackage, error) {
	p, err := r.client.CreditPackage.Get(ctx, id)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving package by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get package by ID %s: %w", id, err)
	}

	return p, nil
}

func (r *PackageRepo) GetByType(ctx context.Context, packageType models.PackageType) (*ent.CreditPackage, error) {
	p, err := r.client.CreditPackage.Query().
		Where(creditpackage.PackageTypeEQ(packageType)).
		First(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving package by type %d: %v\n", packageType, err)
		return nil, fmt.Errorf("failed to get package by type: %w", err)
	}

	return p, nil
}

func (r *PackageRepo) List(ctx context.Context) ([]*ent.CreditPackage, error) {
	pkgs, err := r.client.CreditPackage.Query().
		Order(ent.Asc(creditpackage.FieldPackageType), ent.Asc(creditpackage.FieldCreatedAt)).
		All(ctx)

	if err != nil {
		log.Printf("Error listing packages: %v\n", err)
		return nil, fmt.Errorf("failed to list packages: %w", err)
	}

	return pkgs, nil
}

func (r *PackageRepo) Update(ctx context.Context, req *dto.UpdatePackageRequest) (*ent.CreditPackage, error) {
	update := r.client.CreditPackage.UpdateOneID(req.ID)

	if req.Title != nil {
		update = update.SetTitle(*req.Title)
	}
	if req.Features != nil {
		update = update.SetFeatures(*req.Features)
	}
	if req.PricePerCredit != nil {
		update = update.SetPricePerCredit(*req.PricePerCredit)
	}
	if req.NumberOfCredits != nil {
		update = update.SetNumberOfCredits(*req.NumberOfCredits)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating package %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update package: %w", err)
	}

	return updated, nil
}

func (r *PackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.CreditPackage.DeleteOneID(id).Exec(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return storage.ErrNotFound
		}
		log.Printf("Error deleting package with ID %s: %v\n", id, err)
		return fmt.Errorf("failed to delete package: %w", err)
	}

	log.Printf("Package deleted successfully with ID: %s", id)
	return nil
}
