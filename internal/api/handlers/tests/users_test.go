package routes_test

import (
	"bytes"
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

	"hirehub/ent"
	entuser "hirehub/ent/user"
	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/api/routes"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// MockUserHandler is a mock implementation of UserHandlerInterface
type MockUserHandler struct {
	mock.Mock
}

// Implement the interface methods for the mock
func (m *MockUserHandler) Register(c *gin.Context) {
	m.Called(c) // Record that the method was called
}

func (m *MockUserHandler) Login(c *gin.Context) {
	m.Called(c)
}

func (m *MockUserHandler) Refresh(c *gin.Context) {
	m.Called(c)
}

func (m *MockUserHandler) Logout(c *gin.Context) {
	m.Called(c)
}

func (m *MockUserHandler) GetMe(c *gin.Context) {
	m.Called(c)
}

// Ensure MockUserHandler implements the interface (compile-time check)
var _ handlers.UserHandlerInterface = (*MockUserHandler)(nil)

// MockUserService is a mock type for the services.UserService interface
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *dto.CreateUserRequest) (*ent.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, req *dto.LoginRequest) (*ent.User, string, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*ent.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*ent.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.User), args.Error(1)
}

func (m *MockUserService) Refresh(ctx context.Context, req *dto.RefreshRequest) (string, string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockUserService) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ services.UserService = (*MockUserService)(nil)

// --- Helper Function for Setup ---

func setupTestRouterWithUserMocks() (*gin.Engine, *MockUserService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockUserService)
	validate := validator.New() // Use real validator
	handler := handlers.NewUserHandler(mockService, validate)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterUserRoutes(api, handler, middleware.JWTAuthMiddleware(testJWTSecret))
	return router, mockService
}

func TestRegisterUserRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockUserHandler)

	router := gin.New()
	testGroup := router.Group("/api/v1")

	// Act
	routes.RegisterUserRoutes(testGroup, mockHandler, middleware.JWTAuthMiddleware(testJWTSecret))

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodPost, "/api/v1/auth/register"},
		{http.MethodPost, "/api/v1/auth/login"},
		{http.MethodPost, "/api/v1/auth/refresh"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodGet, "/api/v1/users/me"},
	}

	registeredRoutes := router.Routes()

	registeredMap := make(map[string]bool)
	for _, routeInfo := range registeredRoutes {
		mapKey := routeInfo.Method + " " + routeInfo.Path
		registeredMap[mapKey] = true
		t.Logf("Registered: %s %s", routeInfo.Method, routeInfo.Path)
	}

	assert.Len(t, registeredRoutes, len(expectedRoutes), "Number of registered routes should match expected")

	for _, expected := range expectedRoutes {
		mapKey := expected.Method + " " + expected.Path
		assert.True(t, registeredMap[mapKey], "Expected route %s %s to be registered", expected.Method, expected.Path)
	}
}

func TestUserHandler_Register(t *testing.T) {
	router, mockService := setupTestRouterWithUserMocks()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		created := &ent.User{ID: uuid.New(), Name: "Ada Candidate", Email: "ada@example.com", Role: entuser.RoleCandidate}
		mockService.On("Register", mock.Anything, mock.MatchedBy(func(r *dto.CreateUserRequest) bool {
			return r.Email == "ada@example.com" && r.Role == models.RoleCandidate
		})).Return(created, nil).Once()

		body := `{"name":"Ada Candidate","email":"ada@example.com","password":"s3cret-password","role":"candidate"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.UserResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, created.Email, response.Email)
		assert.Equal(t, models.RoleCandidate, response.Role)
		mockService.AssertExpectations(t)
	})

	t.Run("Conflict - Duplicate Email", func(t *testing.T) {
		// Arrange
		mockService.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

		body := `{"name":"Ada Candidate","email":"ada@example.com","password":"s3cret-password","role":"candidate"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Email already registered")
		mockService.AssertExpectations(t)
	})

	t.Run("Bad Request - Short Password", func(t *testing.T) {
		router, mockService := setupTestRouterWithUserMocks()

		// Arrange
		body := `{"name":"Ada Candidate","email":"ada@example.com","password":"short","role":"candidate"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Validation failed")
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})

	t.Run("Bad Request - Unknown Role", func(t *testing.T) {
		router, mockService := setupTestRouterWithUserMocks()

		// Arrange
		body := `{"name":"Ada Candidate","email":"ada@example.com","password":"s3cret-password","role":"superuser"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestUserHandler_Login(t *testing.T) {
	router, mockService := setupTestRouterWithUserMocks()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		user := &ent.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Role: entuser.RoleEmployer}
		mockService.On("Login", mock.Anything, mock.MatchedBy(func(r *dto.LoginRequest) bool {
			return r.Email == "ada@example.com"
		})).Return(user, "access-token", "refresh-token", nil).Once()

		body := `{"email":"ada@example.com","password":"s3cret-password"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response map[string]json.RawMessage
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Contains(t, response, "access_token")
		assert.Contains(t, response, "refresh_token")
		assert.Contains(t, response, "user")
		mockService.AssertExpectations(t)
	})

	t.Run("Unauthorized - Invalid Credentials", func(t *testing.T) {
		// Arrange
		mockService.On("Login", mock.Anything, mock.Anything).Return(nil, "", "", services.ErrInvalidCredentials).Once()

		body := `{"email":"ada@example.com","password":"not-the-password"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid email or password")
		mockService.AssertExpectations(t)
	})
}

func TestUserHandler_GetMe(t *testing.T) {
	router, mockService := setupTestRouterWithUserMocks()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		user := &ent.User{ID: userID, Name: "Ada", Email: "ada@example.com", Role: entuser.RoleCandidate}
		mockService.On("GetByID", mock.Anything, userID).Return(user, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		request.Header.Set("Authorization", bearerToken(t, userID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.UserResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, userID, response.ID)
		mockService.AssertExpectations(t)
	})

	t.Run("Unauthorized - Missing Token", func(t *testing.T) {
		router, mockService := setupTestRouterWithUserMocks()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		userID := uuid.New()
		mockService.On("GetByID", mock.Anything, userID).Return(nil, services.ErrNotFound).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
		request.Header.Set("Authorization", bearerToken(t, userID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "User not found")
		mockService.AssertExpectations(t)
	})
}
