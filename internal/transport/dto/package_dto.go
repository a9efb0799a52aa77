package dto

import (
	"time"

	"github.com/google/uuid"

	"hirehub/internal/models"
)

// CreatePackageRequest defines the structure for an admin creating a package
// template.
type CreatePackageRequest struct {
	Title           string             `json:"title" validate:"required"`
	Features        []string           `json:"features,omitempty"`
	PricePerCredit  float64            `json:"price_per_credit" validate:"gte=0"`
	NumberOfCredits int                `json:"number_of_credits" validate:"required,gt=0"`
	PackageType     models.PackageType `json:"package_type" validate:"gte=0"`
}

// UpdatePackageRequest defines the structure for updating a package
// template. PricePerCredit of the free-trial package is immutable; the
// service enforces that.
type UpdatePackageRequest struct {
	ID              uuid.UUID `json:"-" validate:"required"` // From path
	Title           *string   `json:"title,omitempty"`
	Features        *[]string `json:"features,omitempty"`
	PricePerCredit  *float64  `json:"price_per_credit,omitempty" validate:"omitempty,gte=0"`
	NumberOfCredits *int      `json:"number_of_credits,omitempty" validate:"omitempty,gt=0"`
}

// DeletePackageRequest removes a package template. Type 0 is never deletable.
type DeletePackageRequest struct {
	ID uuid.UUID `json:"-" validate:"required"`
}

// PackageResponse defines the package template data returned to clients.
type PackageResponse struct {
	ID              uuid.UUID          `json:"id"`
	Title           string             `json:"title"`
	Features        []string           `json:"features,omitempty"`
	PricePerCredit  float64            `json:"price_per_credit"`
	NumberOfCredits int                `json:"number_of_credits"`
	PackageType     models.PackageType `json:"package_type"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
