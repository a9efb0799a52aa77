package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/api/routes"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// MockSubscriptionService is a mock type for the services.SubscriptionService interface
type MockSubscriptionService struct {
	mock.Mock
}

func (m *MockSubscriptionService) GetByEmployer(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GetActiveCredits(ctx context.Context, employerID uuid.UUID) (int, error) {
	args := m.Called(ctx, employerID)
	return args.Int(0), args.Error(1)
}

func (m *MockSubscriptionService) DebitCredit(ctx context.Context, employerID uuid.UUID) (*ent.Subscription, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) GrantPackage(ctx context.Context, req *dto.GrantPackageRequest) (*ent.Subscription, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) AdjustCredits(ctx context.Context, req *dto.AdjustCreditsRequest) (*ent.Subscription, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.Subscription), args.Error(1)
}

func (m *MockSubscriptionService) History(ctx context.Context, employerID uuid.UUID) ([]models.PackageSnapshot, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PackageSnapshot), args.Error(1)
}

// Ensure mock implements the interface
var _ services.SubscriptionService = (*MockSubscriptionService)(nil)

func setupTestRouterWithSubscriptionMocks() (*gin.Engine, *MockSubscriptionService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockSubscriptionService)
	validate := validator.New()
	handler := handlers.NewSubscriptionHandler(mockService, validate)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterSubscriptionRoutes(api, handler, middleware.JWTAuthMiddleware(testJWTSecret))
	return router, mockService
}

func TestSubscriptionHandler_GetMyCredits(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupTestRouterWithSubscriptionMocks()
		employerID := uuid.New()

		mockService.On("GetActiveCredits", mock.Anything, employerID).Return(4, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/subscriptions/my/credits", nil)
		req.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.CreditsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 4, body.Credits)
		mockService.AssertExpectations(t)
	})

	t.Run("Zero Balance Is Not Missing", func(t *testing.T) {
		router, mockService := setupTestRouterWithSubscriptionMocks()
		employerID := uuid.New()

		mockService.On("GetActiveCredits", mock.Anything, employerID).Return(0, nil).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/subscriptions/my/credits", nil)
		req.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.CreditsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 0, body.Credits)
		mockService.AssertExpectations(t)
	})

	t.Run("No Subscription", func(t *testing.T) {
		router, mockService := setupTestRouterWithSubscriptionMocks()
		employerID := uuid.New()

		mockService.On("GetActiveCredits", mock.Anything, employerID).
			Return(0, services.ErrNoSubscription).Once()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/subscriptions/my/credits", nil)
		req.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "no active subscription")
		mockService.AssertExpectations(t)
	})

	t.Run("Candidate Role Blocked", func(t *testing.T) {
		router, mockService := setupTestRouterWithSubscriptionMocks()

		req, _ := http.NewRequest(http.MethodGet, "/api/v1/subscriptions/my/credits", nil)
		req.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleCandidate))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		mockService.AssertNotCalled(t, "GetActiveCredits", mock.Anything, mock.Anything)
	})
}
