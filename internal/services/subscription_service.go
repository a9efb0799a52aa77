package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type subscriptionService struct {
	subRepo  storage.SubscriptionRepository
	pkgRepo  storage.PackageRepository
	userRepo storage.UserRepository
	db       *ent.Client
	notifier notify.Notifier
}

// NewSubscriptionService creates a new instance of SubscriptionService.
func NewSubscriptionService(
	subRepo storage.SubscriptionRepository,
	pkgRepo storage.PackageRepository,
	userRepo storage.UserRepository,
	db *ent.Client,
	notifier notify.Notifier,
) SubscriptionService {
	return &subscriptionService{
		subRepo:  subRepo,
		pkgRepo:  pkgRepo,
		userRepo: userRepo,
		db:       db,
		notifier: notifier,
	}
}

// GetByEmployer retrieves the employer's current subscription.
func (s *subscriptionService) GetByEmployer(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	sub, err := s.subRepo.GetByEmployer(ctx, employerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: employer %s", ErrNoSubscription, employerID)
		}
		return nil, mapRepoError(err, fmt.Sprintf("fetching subscription for employer %s", employerID))
	}
	return sub, nil
}

// GetActiveCredits reports the remaining balance of the current package.
// A missing subscription is ErrNoSubscription, distinct from a balance that
// has been spent down to zero.
func (s *subscriptionService) GetActiveCredits(ctx context.Context, employerID uuid.UUID) (int, error) {
	sub, err := s.subRepo.GetByEmployer(ctx, employerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, fmt.Errorf("%w: employer %s", ErrNoSubscription, employerID)
		}
		return 0, mapRepoError(err, fmt.Sprintf("fetching subscription for employer %s", employerID))
	}
	return sub.Credits, nil
}

// DebitCredit consumes exactly one credit from the employer's live counter.
// The decrement is a single conditional update, so two concurrent debits of a
// last credit cannot both succeed.
func (s *subscriptionService) DebitCredit(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	sub, err := s.subRepo.DebitCredit(ctx, employerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: employer %s", ErrNoSubscription, employerID)
		}
		if errors.Is(err, storage.ErrInsufficientCredits) {
			return nil, ErrInsufficientCredits
		}
		return nil, mapRepoError(err, fmt.Sprintf("debiting credit for employer %s", employerID))
	}
	return sub, nil
}

// GrantPackage installs a purchased package for an employer. The previous
// package snapshot (remaining credits included) is archived to history and
// the live counter restarts at the new allowance. Replays of the same
// transaction ID return the current subscription unchanged.
func (s *subscriptionService) GrantPackage(ctx context.Context, req *dto.GrantPackageRequest) (*ent.Subscription, error) {
	employer, err := s.userRepo.GetByID(ctx, req.EmployerID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching employer %s", req.EmployerID))
	}
	if employer.Role != user.RoleEmployer {
		return nil, fmt.Errorf("%w: packages can only be granted to employers", ErrForbidden)
	}

	pkg, err := s.pkgRepo.GetByID(ctx, req.PackageID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching package %s", req.PackageID))
	}

	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("GrantPackage: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback()

	txSubRepo := s.subRepo.WithTx(tx)

	current, err := txSubRepo.GetByEmployer(ctx, req.EmployerID)
	switch {
	case err == nil:
		// Gateway retries deliver the same transaction more than once.
		if current.TransactionID == req.TransactionID {
			log.Printf("GrantPackage: Replay of transaction %s for employer %s, no-op", req.TransactionID, req.EmployerID)
			return current, nil
		}
		if existing, lookupErr := txSubRepo.GetByTransactionID(ctx, req.TransactionID); lookupErr == nil {
			return existing, nil
		} else if !errors.Is(lookupErr, storage.ErrNotFound) {
			return nil, mapRepoError(lookupErr, "checking transaction replay")
		}
		if history, histErr := txSubRepo.History(ctx, current.ID); histErr == nil {
			for _, snap := range history {
				if snap.TransactionID == req.TransactionID {
					return current, nil
				}
			}
		} else {
			return nil, mapRepoError(histErr, "checking transaction replay in history")
		}

		if err := txSubRepo.AppendHistory(ctx, current.ID, snapshotFromSubscription(current)); err != nil {
			return nil, mapRepoError(err, "archiving superseded package")
		}
		current, err = txSubRepo.InstallPackage(ctx, current.ID, snapshotFromPackage(pkg, req.TransactionID, time.Now()))
		if err != nil {
			return nil, mapRepoError(err, "installing package")
		}

	case errors.Is(err, storage.ErrNotFound):
		current, err = txSubRepo.Create(ctx, req.EmployerID, snapshotFromPackage(pkg, req.TransactionID, time.Now()))
		if err != nil {
			return nil, mapRepoError(err, "creating subscription")
		}

	default:
		return nil, mapRepoError(err, fmt.Sprintf("fetching subscription for employer %s", req.EmployerID))
	}

	if err := tx.Commit(); err != nil {
		log.Printf("GrantPackage: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	log.Printf("Granted package %s (%s) to employer %s, transaction %s", pkg.ID, pkg.Title, req.EmployerID, req.TransactionID)
	s.dispatch(notify.KindSubscriptionGranted, req.EmployerID, current)
	return current, nil
}

// AdjustCredits applies an admin correction to the live counter. Additions
// and removals are tracked separately so the original allowance stays
// auditable. A removal never takes the counter below zero.
func (s *subscriptionService) AdjustCredits(ctx context.Context, req *dto.AdjustCreditsRequest) (*ent.Subscription, error) {
	if req.Delta == 0 {
		return nil, fmt.Errorf("%w: delta must be non-zero", ErrValidation)
	}

	sub, err := s.subRepo.AdjustCredits(ctx, req.EmployerID, req.Delta)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: employer %s", ErrNoSubscription, req.EmployerID)
		}
		if errors.Is(err, storage.ErrInsufficientCredits) {
			return nil, fmt.Errorf("%w: cannot remove more credits than remain", ErrInsufficientCredits)
		}
		return nil, mapRepoError(err, fmt.Sprintf("adjusting credits for employer %s", req.EmployerID))
	}

	log.Printf("Admin %s adjusted credits for employer %s by %d (now %d)", req.AdminID, req.EmployerID, req.Delta, sub.Credits)
	return sub, nil
}

// History returns the archived package snapshots, most recent first.
func (s *subscriptionService) History(ctx context.Context, employerID uuid.UUID) ([]models.PackageSnapshot, error) {
	sub, err := s.subRepo.GetByEmployer(ctx, employerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: employer %s", ErrNoSubscription, employerID)
		}
		return nil, mapRepoError(err, fmt.Sprintf("fetching subscription for employer %s", employerID))
	}

	history, err := s.subRepo.History(ctx, sub.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching history for subscription %s", sub.ID))
	}
	return history, nil
}

func (s *subscriptionService) dispatch(kind notify.Kind, recipient uuid.UUID, payload interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, kind, recipient, payload); err != nil {
			log.Printf("Failed to dispatch %s notification to %s: %v", kind, recipient, err)
		}
	}()
}
