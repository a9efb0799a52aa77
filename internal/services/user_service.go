package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"hirehub/ent"
	"hirehub/internal/auth"
	"hirehub/internal/models"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type userService struct {
	repo              storage.UserRepository
	redis             *redis.Client
	jwtSecret         string
	jwtExpiration     time.Duration
	refreshExpiration time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, redisClient *redis.Client, jwtSecret string, jwtExpiration, refreshExpiration time.Duration) UserService {
	return &userService{
		repo:              repo,
		redis:             redisClient,
		jwtSecret:         jwtSecret,
		jwtExpiration:     jwtExpiration,
		refreshExpiration: refreshExpiration,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	req.Password = string(hash)

	created, err := s.repo.Create(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: email already registered", ErrConflict)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return created, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, string, string, error) {
	found, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, "", "", ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, "", "", fmt.Errorf("internal error during login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, "", "", ErrInvalidCredentials
	}

	access, err := s.signAccessToken(found)
	if err != nil {
		log.Printf("Error generating JWT token for user %s: %v", found.Email, err)
		return nil, "", "", fmt.Errorf("failed to generate login token: %w", err)
	}

	refresh, err := s.issueRefreshToken(ctx, found.ID)
	if err != nil {
		log.Printf("Error issuing refresh token for user %s: %v", found.Email, err)
		return nil, "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return found, access, refresh, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	found, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrNotFound
	}
	return found, err
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. A token that is unknown (expired, revoked or fabricated)
// fails as invalid credentials.
func (s *userService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	key := refreshKey(req.RefreshToken)
	userIDStr, err := s.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", "", ErrInvalidCredentials
		}
		log.Printf("Error looking up refresh token: %v", err)
		return "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", ErrInvalidCredentials
	}

	found, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	// Rotate: the old token must not survive the exchange.
	if err := s.redis.Del(ctx, key).Err(); err != nil {
		log.Printf("Error revoking rotated refresh token: %v", err)
		return "", "", fmt.Errorf("internal error during refresh: %w", err)
	}

	access, err := s.signAccessToken(found)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate login token: %w", err)
	}
	refresh, err := s.issueRefreshToken(ctx, found.ID)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return access, refresh, nil
}

// Logout revokes a refresh token. Revoking an already-dead token succeeds.
func (s *userService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	if err := s.redis.Del(ctx, refreshKey(req.RefreshToken)).Err(); err != nil {
		log.Printf("Error revoking refresh token on logout: %v", err)
		return fmt.Errorf("internal error during logout: %w", err)
	}
	return nil
}

func (s *userService) signAccessToken(u *ent.User) (string, error) {
	now := time.Now()
	claims := &auth.Claims{
		Role: models.Role(u.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtExpiration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *userService) issueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token := uuid.NewString()
	if err := s.redis.Set(ctx, refreshKey(token), userID.String(), s.refreshExpiration).Err(); err != nil {
		return "", err
	}
	return token, nil
}

func refreshKey(token string) string {
	return "refresh_token:" + token
}
