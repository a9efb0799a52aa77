package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hirehub/ent"
	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/api/routes"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// MockJobApplicationHandler is a mock implementation of JobApplicationHandlerInterface
type MockJobApplicationHandler struct {
	mock.Mock
}

func (m *MockJobApplicationHandler) ApplyToJob(c *gin.Context)            { m.Called(c) }
func (m *MockJobApplicationHandler) GetApplicationByID(c *gin.Context)    { m.Called(c) }
func (m *MockJobApplicationHandler) ListApplicationsByJob(c *gin.Context) { m.Called(c) }
func (m *MockJobApplicationHandler) ListMyApplications(c *gin.Context)    { m.Called(c) }
func (m *MockJobApplicationHandler) AcceptApplication(c *gin.Context)     { m.Called(c) }
func (m *MockJobApplicationHandler) MarkApplicationPassed(c *gin.Context) { m.Called(c) }
func (m *MockJobApplicationHandler) SignContract(c *gin.Context)          { m.Called(c) }
func (m *MockJobApplicationHandler) ApproveContract(c *gin.Context)       { m.Called(c) }
func (m *MockJobApplicationHandler) RejectApplication(c *gin.Context)     { m.Called(c) }
func (m *MockJobApplicationHandler) UpdateApplicationNote(c *gin.Context) { m.Called(c) }
func (m *MockJobApplicationHandler) DeleteApplication(c *gin.Context)     { m.Called(c) }

// Ensure MockJobApplicationHandler implements the interface (compile-time check)
var _ handlers.JobApplicationHandlerInterface = (*MockJobApplicationHandler)(nil)

// MockTestHandler is a mock implementation of TestHandlerInterface
type MockTestHandler struct {
	mock.Mock
}

func (m *MockTestHandler) SubmitTest(c *gin.Context)          { m.Called(c) }
func (m *MockTestHandler) GetSubmittedTest(c *gin.Context)    { m.Called(c) }
func (m *MockTestHandler) MarkQuestionCorrect(c *gin.Context) { m.Called(c) }

var _ handlers.TestHandlerInterface = (*MockTestHandler)(nil)

// MockJobApplicationService is a mock type for the services.JobApplicationService interface
type MockJobApplicationService struct {
	mock.Mock
}

func (m *MockJobApplicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) Accept(ctx context.Context, req *dto.AcceptApplicationRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) MarkPassed(ctx context.Context, req *dto.MarkPassedRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) SignContract(ctx context.Context, req *dto.SignContractRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) ApproveContract(ctx context.Context, req *dto.ApproveContractRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) Reject(ctx context.Context, req *dto.RejectApplicationRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) UpdateNote(ctx context.Context, req *dto.UpdateApplicationNoteRequest) (*ent.JobApplication, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.JobApplication), args.Error(1)
}

func (m *MockJobApplicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ services.JobApplicationService = (*MockJobApplicationService)(nil)

// MockTestSubmissionService is a mock type for the services.TestSubmissionService interface
type MockTestSubmissionService struct {
	mock.Mock
}

func (m *MockTestSubmissionService) SubmitTest(ctx context.Context, req *dto.SubmitTestRequest) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

func (m *MockTestSubmissionService) GetByApplication(ctx context.Context, req *dto.GetSubmittedTestRequest) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

func (m *MockTestSubmissionService) MarkQuestionCorrect(ctx context.Context, req *dto.MarkQuestionCorrectRequest) (*ent.SubmittedTest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ent.SubmittedTest), args.Error(1)
}

var _ services.TestSubmissionService = (*MockTestSubmissionService)(nil)

// --- Helper Function for Setup ---

func setupTestRouterWithApplicationMocks() (*gin.Engine, *MockJobApplicationService, *MockTestSubmissionService) {
	gin.SetMode(gin.TestMode)
	mockAppService := new(MockJobApplicationService)
	mockTestService := new(MockTestSubmissionService)
	validate := validator.New() // Use real validator
	appHandler := handlers.NewJobApplicationHandler(mockAppService, validate)
	testHandler := handlers.NewTestHandler(mockTestService, validate)
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterJobApplicationRoutes(api, appHandler, testHandler, middleware.JWTAuthMiddleware(testJWTSecret))
	return router, mockAppService, mockTestService
}

func TestRegisterJobApplicationRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	mockAppHandler := new(MockJobApplicationHandler)
	mockTestHandler := new(MockTestHandler)

	router := gin.New()
	testGroup := router.Group("/api/v1")

	// Act
	routes.RegisterJobApplicationRoutes(testGroup, mockAppHandler, mockTestHandler, middleware.JWTAuthMiddleware(testJWTSecret))

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodPost, "/api/v1/jobs/:job_id/apply"},
		{http.MethodGet, "/api/v1/jobs/:job_id/applications"},
		{http.MethodGet, "/api/v1/applications/my"},
		{http.MethodGet, "/api/v1/applications/:id"},
		{http.MethodPatch, "/api/v1/applications/:id/accept"},
		{http.MethodPatch, "/api/v1/applications/:id/pass"},
		{http.MethodPatch, "/api/v1/applications/:id/sign"},
		{http.MethodPatch, "/api/v1/applications/:id/approve"},
		{http.MethodPatch, "/api/v1/applications/:id/reject"},
		{http.MethodPatch, "/api/v1/applications/:id/note"},
		{http.MethodDelete, "/api/v1/applications/:id"},
		{http.MethodPost, "/api/v1/applications/:id/test"},
		{http.MethodGet, "/api/v1/applications/:id/test"},
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

func TestJobApplicationHandler_ApplyToJob(t *testing.T) {
	router, mockAppService, _ := setupTestRouterWithApplicationMocks()

	jobID := uuid.New()
	candidateID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		created := &ent.JobApplication{
			ID:            uuid.New(),
			JobID:         jobID,
			CandidateID:   candidateID,
			Status:        models.StatusPending,
			Outcome:       models.OutcomeInProgress,
			CandidateName: "Ada Candidate",
			CvKey:         "uploads/cv.pdf",
		}
		mockAppService.On("Apply", mock.Anything, mock.MatchedBy(func(r *dto.ApplyToJobRequest) bool {
			return r.JobID == jobID && r.CandidateID == candidateID && r.CVKey == "uploads/cv.pdf"
		})).Return(created, nil).Once()

		body := `{"cv_key":"uploads/cv.pdf","note":"Excited about this role"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.JobApplicationResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, created.ID, response.ID)
		assert.Equal(t, "Pending", response.StatusName)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Forbidden - Employer Role Blocked By Middleware", func(t *testing.T) {
		router, mockAppService, _ := setupTestRouterWithApplicationMocks()

		// Act
		body := `{"cv_key":"uploads/cv.pdf"}`
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Insufficient permissions")
		mockAppService.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})

	t.Run("Bad Request - Missing CV", func(t *testing.T) {
		router, mockAppService, _ := setupTestRouterWithApplicationMocks()

		// Act
		body := `{"note":"No CV attached"}`
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Validation failed")
		mockAppService.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})

	t.Run("Conflict - Already Applied", func(t *testing.T) {
		// Arrange
		mockAppService.On("Apply", mock.Anything, mock.Anything).Return(nil, services.ErrConflict).Once()

		body := `{"cv_key":"uploads/cv.pdf"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Unauthorized - Missing Token", func(t *testing.T) {
		// Act
		body := `{"cv_key":"uploads/cv.pdf"}`
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/jobs/"+jobID.String()+"/apply", bytes.NewBufferString(body))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func TestJobApplicationHandler_AcceptApplication(t *testing.T) {
	router, mockAppService, _ := setupTestRouterWithApplicationMocks()

	appID := uuid.New()
	employerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		accepted := &ent.JobApplication{
			ID:          appID,
			JobID:       uuid.New(),
			CandidateID: uuid.New(),
			Status:      models.StatusAccepted,
			Outcome:     models.OutcomeInProgress,
		}
		mockAppService.On("Accept", mock.Anything, &dto.AcceptApplicationRequest{ApplicationID: appID, UserID: employerID}).
			Return(accepted, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/accept", nil)
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.JobApplicationResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Accepted", response.StatusName)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Conflict - Invalid Transition", func(t *testing.T) {
		// Arrange
		transitionErr := fmt.Errorf("cannot move from TestTaken to Accepted: %w", services.ErrInvalidTransition)
		mockAppService.On("Accept", mock.Anything, mock.Anything).Return(nil, transitionErr).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/accept", nil)
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "cannot move from TestTaken to Accepted")
		mockAppService.AssertExpectations(t)
	})

	t.Run("Conflict - Application Rejected", func(t *testing.T) {
		// Arrange
		mockAppService.On("Accept", mock.Anything, mock.Anything).Return(nil, services.ErrApplicationRejected).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/accept", nil)
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Forbidden - Wrong Employer", func(t *testing.T) {
		// Arrange
		mockAppService.On("Accept", mock.Anything, mock.Anything).Return(nil, services.ErrForbidden).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/accept", nil)
		request.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Forbidden - Candidate Role Blocked By Middleware", func(t *testing.T) {
		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/accept", nil)
		request.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Insufficient permissions")
	})

	t.Run("Bad Request - Invalid ID", func(t *testing.T) {
		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/not-a-uuid/accept", nil)
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid application ID format")
	})
}

func TestJobApplicationHandler_RejectApplication(t *testing.T) {
	router, mockAppService, _ := setupTestRouterWithApplicationMocks()

	appID := uuid.New()
	employerID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		rejected := &ent.JobApplication{
			ID:          appID,
			JobID:       uuid.New(),
			CandidateID: uuid.New(),
			Status:      models.StatusTestTaken,
			Outcome:     models.OutcomeRejected,
		}
		mockAppService.On("Reject", mock.Anything, &dto.RejectApplicationRequest{ApplicationID: appID, UserID: employerID}).
			Return(rejected, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/reject", nil)
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.JobApplicationResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "Rejected", response.OutcomeName)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Conflict - Already Rejected", func(t *testing.T) {
		// Arrange
		mockAppService.On("Reject", mock.Anything, mock.Anything).Return(nil, services.ErrApplicationRejected).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/reject", nil)
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockAppService.AssertExpectations(t)
	})
}

func TestJobApplicationHandler_SignContract(t *testing.T) {
	router, mockAppService, _ := setupTestRouterWithApplicationMocks()

	appID := uuid.New()
	candidateID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		signed := &ent.JobApplication{
			ID:          appID,
			JobID:       uuid.New(),
			CandidateID: candidateID,
			Status:      models.StatusContractSigned,
			Outcome:     models.OutcomeInProgress,
			ContractKey: "uploads/contract-signed.pdf",
		}
		mockAppService.On("SignContract", mock.Anything, mock.MatchedBy(func(r *dto.SignContractRequest) bool {
			return r.ApplicationID == appID && r.UserID == candidateID && r.ContractKey == "uploads/contract-signed.pdf"
		})).Return(signed, nil).Once()

		body := `{"contract_key":"uploads/contract-signed.pdf"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/sign", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.JobApplicationResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, "ContractSigned", response.StatusName)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Bad Request - Missing Contract Key", func(t *testing.T) {
		router, mockAppService, _ := setupTestRouterWithApplicationMocks()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/sign", bytes.NewBufferString(`{}`))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockAppService.AssertNotCalled(t, "SignContract", mock.Anything, mock.Anything)
	})

	t.Run("Conflict - Not Passed Yet", func(t *testing.T) {
		// Arrange
		transitionErr := fmt.Errorf("cannot move from Accepted to ContractSigned: %w", services.ErrInvalidTransition)
		mockAppService.On("SignContract", mock.Anything, mock.Anything).Return(nil, transitionErr).Once()

		body := `{"contract_key":"uploads/contract-signed.pdf"}`

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, "/api/v1/applications/"+appID.String()+"/sign", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		mockAppService.AssertExpectations(t)
	})
}

func TestJobApplicationHandler_DeleteApplication(t *testing.T) {
	router, mockAppService, _ := setupTestRouterWithApplicationMocks()

	appID := uuid.New()
	candidateID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockAppService.On("Delete", mock.Anything, mock.MatchedBy(func(r *dto.DeleteApplicationRequest) bool {
			return r.ApplicationID == appID && r.UserID == candidateID && !r.Hard
		})).Return(nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/api/v1/applications/"+appID.String(), nil)
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusNoContent, recorder.Code)
		mockAppService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		mockAppService.On("Delete", mock.Anything, mock.Anything).Return(services.ErrNotFound).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodDelete, "/api/v1/applications/"+appID.String(), nil)
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockAppService.AssertExpectations(t)
	})
}
