package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hirehub/ent"
	entuser "hirehub/ent/user"
	"hirehub/internal/mocks"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// The refresh-token flows need a live Redis connection and are covered by
// integration tests; these exercise the repo-facing logic only.
func setupUserServiceTest(t *testing.T) (context.Context, services.UserService, *mocks.MockUserRepository) {
	t.Helper()
	mockUserRepo := new(mocks.MockUserRepository)
	userService := services.NewUserService(mockUserRepo, nil, "test-secret", 15*time.Minute, 24*time.Hour)
	return context.Background(), userService, mockUserRepo
}

func TestUserService_Register_Success_HashesPassword(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest(t)

	plaintext := "s3cret-password"
	req := &dto.CreateUserRequest{
		Name:     "Ada Candidate",
		Email:    "ada@example.com",
		Password: plaintext,
		Role:     models.RoleCandidate,
	}
	created := &ent.User{ID: uuid.New(), Name: req.Name, Email: req.Email, Role: entuser.RoleCandidate}

	mockUserRepo.On("Create", ctx, mock.MatchedBy(func(r *dto.CreateUserRequest) bool {
		// The plaintext never reaches storage.
		if r.Password == plaintext {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(r.Password), []byte(plaintext)) == nil
	})).Return(created, nil).Once()

	registered, err := userService.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, created, registered)
	mockUserRepo.AssertExpectations(t)
}

func TestUserService_Register_Conflict_DuplicateEmail(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest(t)

	req := &dto.CreateUserRequest{Name: "Ada", Email: "ada@example.com", Password: "s3cret-password", Role: models.RoleCandidate}

	mockUserRepo.On("Create", ctx, mock.Anything).Return(nil, storage.ErrConflict).Once()

	_, err := userService.Register(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
	assert.Contains(t, err.Error(), "email already registered")
}

func TestUserService_Login_InvalidCredentials_UnknownEmail(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest(t)

	req := &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"}

	mockUserRepo.On("GetByEmail", ctx, req.Email).Return(nil, storage.ErrNotFound).Once()

	_, _, _, err := userService.Login(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_Login_InvalidCredentials_WrongPassword(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("the-real-password"), bcrypt.MinCost)
	require.NoError(t, err)

	req := &dto.LoginRequest{Email: "ada@example.com", Password: "not-the-password"}
	found := &ent.User{ID: uuid.New(), Email: req.Email, PasswordHash: string(hash), Role: entuser.RoleCandidate}

	mockUserRepo.On("GetByEmail", ctx, req.Email).Return(found, nil).Once()

	_, _, _, err = userService.Login(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidCredentials))
}

func TestUserService_GetByID_Success(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest(t)

	userID := uuid.New()
	expected := &ent.User{ID: userID, Name: "Ada", Email: "ada@example.com", Role: entuser.RoleEmployer}

	mockUserRepo.On("GetByID", ctx, userID).Return(expected, nil).Once()

	found, err := userService.GetByID(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, found)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	ctx, userService, mockUserRepo := setupUserServiceTest(t)

	userID := uuid.New()
	mockUserRepo.On("GetByID", ctx, userID).Return(nil, storage.ErrNotFound).Once()

	_, err := userService.GetByID(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
