package dto

import (
	"time"

	"github.com/google/uuid"

	"hirehub/internal/models"
)

// PaymentWebhookRequest is the payload the payment gateway delivers on a
// successful checkout. Its sole consumer is SubscriptionService.GrantPackage.
type PaymentWebhookRequest struct {
	EmployerID    uuid.UUID `json:"employer_id" validate:"required"`
	PackageID     uuid.UUID `json:"package_id" validate:"required"`
	TransactionID string    `json:"transaction_id" validate:"required"`
}

// GrantPackageRequest installs a purchased package for an employer.
type GrantPackageRequest struct {
	EmployerID    uuid.UUID `json:"-" validate:"required"`
	PackageID     uuid.UUID `json:"-" validate:"required"`
	TransactionID string    `json:"-" validate:"required"`
}

// AdjustCreditsRequest applies an admin credit adjustment.
type AdjustCreditsRequest struct {
	EmployerID uuid.UUID `json:"-" validate:"required"` // From path
	AdminID    uuid.UUID `json:"-"`                     // Set from user context (must be admin)
	Delta      int       `json:"delta" validate:"required"`
}

// SubscriptionResponse defines the subscription data returned to clients.
type SubscriptionResponse struct {
	ID                  uuid.UUID          `json:"id"`
	EmployerID          uuid.UUID          `json:"employer_id"`
	PackageID           uuid.UUID          `json:"package_id"`
	Title               string             `json:"title"`
	Features            []string           `json:"features,omitempty"`
	PricePerCredit      float64            `json:"price_per_credit"`
	CreditAllowance     int                `json:"credit_allowance"`
	PackageType         models.PackageType `json:"package_type"`
	Credits             int                `json:"credits"`
	AdminCreditsAdded   int                `json:"admin_credits_added"`
	AdminCreditsRemoved int                `json:"admin_credits_removed"`
	GrantedAt           time.Time          `json:"granted_at"`
}

// CreditsResponse reports the remaining credit balance.
type CreditsResponse struct {
	Credits int `json:"credits"`
}
