package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/internal/models"
	"hirehub/internal/storage"
)

// SubscriptionRepo implements the storage.SubscriptionRepository interface using Ent.
type SubscriptionRepo struct {
	client *ent.Client
}

// NewSubscriptionRepo creates a new SubscriptionRepo.
func NewSubscriptionRepo(client *ent.Client) *SubscriptionRepo {
	return &SubscriptionRepo{client: client}
}

func (r *SubscriptionRepo) WithTx(tx *ent.Tx) storage.SubscriptionRepository {
	return &SubscriptionRepo{client: tx.Client()}
}

// Compile-time check to ensure SubscriptionRepo implements SubscriptionRepository
var _ storage.SubscriptionRepository = (*SubscriptionRepo)(nil)

func (r *SubscriptionRepo) GetByEmployer(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	sub, err := r.client.Subscription.Query().
		Where(subscription.EmployerID(employerID)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving subscription for employer %s: %v\n", employerID, err)
		return nil, fmt.Errorf("failed to get subscription by employer: %w", err)
	}

	return sub, nil
}

func (r *SubscriptionRepo) GetByTransactionID(ctx context.Context, transactionID string) (*ent.Subscription, error) {
	sub, err := r.client.Subscription.Query().
		Where(subscription.TransactionID(transactionID)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving subscription by transaction %s: %v\n", transactionID, err)
		return nil, fmt.Errorf("failed to get subscription by transaction: %w", err)
	}

	return sub, nil
}

func (r *SubscriptionRepo) Create(ctx context.Context, employerID uuid.UUID, snap models.PackageSnapshot) (*ent.Subscription, error) {
	created, err := r.client.Subscription.Create().
		SetEmployerID(employerID).
		SetPackageID(snap.PackageID).
		SetTitle(snap.Title).
		SetFeatures(snap.Features).
		SetPricePerCredit(snap.PricePerCredit).
		SetCreditAllowance(snap.CreditAllowance).
		SetPackageType(snap.PackageType).
		SetCredits(snap.Credits).
		SetAdminCreditsAdded(0).
		SetAdminCreditsRemoved(0).
		SetTransactionID(snap.TransactionID).
		SetGrantedAt(snap.GrantedAt).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating subscription (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create subscription: employer already has one: %w", storage.ErrConflict)
		}
		log.Printf("Error creating subscription for employer %s: %v\n", employerID, err)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	log.Printf("Subscription created for employer %s with %d credits", employerID, snap.Credits)
	return created, nil
}

// InstallPackage overwrites the current-package snapshot with a fresh one.
// The admin counters reset: they describe adjustments to the live package.
func (r *SubscriptionRepo) InstallPackage(ctx context.Context, subscriptionID uuid.UUID, snap models.PackageSnapshot) (*ent.Subscription, error) {
	updated, err := r.client.Subscription.UpdateOneID(subscriptionID).
		SetPackageID(snap.PackageID).
		SetTitle(snap.Title).
		SetFeatures(snap.Features).
		SetPricePerCredit(snap.PricePerCredit).
		SetCreditAllowance(snap.CreditAllowance).
		SetPackageType(snap.PackageType).
		SetCredits(snap.Credits).
		SetAdminCreditsAdded(0).
		SetAdminCreditsRemoved(0).
		SetTransactionID(snap.TransactionID).
		SetGrantedAt(snap.GrantedAt).
		Save(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error installing package on subscription %s: %v\n", subscriptionID, err)
		return nil, fmt.Errorf("failed to install package: %w", err)
	}

	return updated, nil
}

func (r *SubscriptionRepo) AppendHistory(ctx context.Context, subscriptionID uuid.UUID, snap models.PackageSnapshot) error {
	err := r.client.SubscriptionHistory.Create().
		SetSubscriptionID(subscriptionID).
		SetSnapshot(snap).
		Exec(ctx)

	if err != nil {
		log.Printf("Error appending subscription history for %s: %v\n", subscriptionID, err)
		return fmt.Errorf("failed to append subscription history: %w", err)
	}

	return nil
}

func (r *SubscriptionRepo) History(ctx context.Context, subscriptionID uuid.UUID) ([]models.PackageSnapshot, error) {
	rows, err := r.client.SubscriptionHistory.Query().
		Where(subscriptionhistory.SubscriptionID(subscriptionID)).
		Order(ent.Desc(subscriptionhistory.FieldArchivedAt)).
		All(ctx)

	if err != nil {
		log.Printf("Error querying subscription history for %s: %v\n", subscriptionID, err)
		return nil, fmt.Errorf("failed to list subscription history: %w", err)
	}

	snaps := make([]models.PackageSnapshot, 0, len(rows))
	for _, row := range rows {
		snaps = append(snaps, row.Snapshot)
	}
	return snaps, nil
}

// DebitCredit is the single atomic decrement behind every test submission.
// The credits > 0 predicate makes two racing debits of the last credit
// resolve to exactly one winner at the database.
func (r *SubscriptionRepo) DebitCredit(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	n, err := r.client.Subscription.Update().
		Where(
			subscription.EmployerID(employerID),
			subscription.CreditsGT(0),
		).
		AddCredits(-1).
		Save(ctx)

	if err != nil {
		log.Printf("Error debiting credit for employer %s: %v\n", employerID, err)
		return nil, fmt.Errorf("failed to debit credit: %w", err)
	}

	if n == 0 {
		exists, err := r.client.Subscription.Query().
			Where(subscription.EmployerID(employerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check subscription existence: %w", err)
		}
		if !exists {
			return nil, storage.ErrNotFound
		}
		return nil, storage.ErrInsufficientCredits
	}

	return r.GetByEmployer(ctx, employerID)
}

func (r *SubscriptionRepo) AdjustCredits(ctx context.Context, employerID uuid.UUID, delta int) (*ent.Subscription, error) {
	if delta == 0 {
		return r.GetByEmployer(ctx, employerID)
	}

	update := r.client.Subscription.Update().
		Where(subscription.EmployerID(employerID)).
		AddCredits(delta)

	if delta > 0 {
		update = update.AddAdminCreditsAdded(delta)
	} else {
		// Removal must not take the live counter below zero.
		update = update.
			Where(subscription.CreditsGTE(-delta)).
			AddAdminCreditsRemoved(-delta)
	}

	n, err := update.Save(ctx)
	if err != nil {
		log.Printf("Error adjusting credits for employer %s by %d: %v\n", employerID, delta, err)
		return nil, fmt.Errorf("failed to adjust credits: %w", err)
	}

	if n == 0 {
		exists, err := r.client.Subscription.Query().
			Where(subscription.EmployerID(employerID)).
			Exist(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to check subscription existence: %w", err)
		}
		if !exists {
			return nil, storage.ErrNotFound
		}
		return nil, storage.ErrInsufficientCredits
	}

	return r.GetByEmployer(ctx, employerID)
}
