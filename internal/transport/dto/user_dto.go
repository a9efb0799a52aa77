package dto

import (
	"time"

	"github.com/google/uuid"

	"hirehub/internal/models"
)

// CreateUserRequest defines the structure for registering a new user.
type CreateUserRequest struct {
	Name     string      `json:"name" validate:"required"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=8"`
	Role     models.Role `json:"role" validate:"required,oneof=candidate employer admin"`
	Country  string      `json:"country,omitempty"`
	Timezone string      `json:"timezone,omitempty"`
	Contact  string      `json:"contact,omitempty"`
}

// LoginRequest defines the structure for logging in.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest exchanges a refresh token for a new token pair.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest revokes a refresh token.
type LogoutRequest struct {
	UserID       uuid.UUID `json:"-"`
	RefreshToken string    `json:"refresh_token" validate:"required"`
}

// UserResponse defines the standard user data returned to the client.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Country   string      `json:"country,omitempty"`
	Timezone  string      `json:"timezone,omitempty"`
	Contact   string      `json:"contact,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
