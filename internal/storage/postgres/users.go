package postgres

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/user"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// UserRepo implements the storage.UserRepository interface using Ent.
type UserRepo struct {
	client *ent.Client
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(client *ent.Client) *UserRepo {
	return &UserRepo{client: client}
}

// Compile-time check to ensure UserRepo implements UserRepository
var _ storage.UserRepository = (*UserRepo)(nil)

// Create persists a new user. The password must already be hashed.
func (r *UserRepo) Create(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error) {
	created, err := r.client.User.Create().
		SetName(req.Name).
		SetEmail(req.Email).
		SetPasswordHash(req.Password).
		SetRole(user.Role(req.Role)).
		SetCountry(req.Country).
		SetTimezone(req.Timezone).
		SetContact(req.Contact).
		Save(ctx)

	if err != nil {
		if ent.IsConstraintError(err) {
			log.Printf("Error creating user (constraint violation): %v\n", err)
			return nil, fmt.Errorf("failed to create user: duplicate email: %w", storage.ErrConflict)
		}
		log.Printf("Error creating user: %v\n", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return created, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	u, err := r.client.User.Get(ctx, id)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*ent.User, error) {
	u, err := r.client.User.Query().
		Where(user.EmailEQ(email)).
		Only(ctx)

	if err != nil {
		if ent.IsNotFound(err) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error retrieving user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}
