package routes_test

import (
	"bytes"
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
	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/api/routes"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

func TestRegisterTestRoutes(t *testing.T) {
	// Arrange
	gin.SetMode(gin.TestMode)

	mockHandler := new(MockTestHandler)

	router := gin.New()
	testGroup := router.Group("/api/v1")

	// Act
	routes.RegisterTestRoutes(testGroup, mockHandler, middleware.JWTAuthMiddleware(testJWTSecret))

	// Assert
	expectedRoutes := []struct {
		Method string
		Path   string
	}{
		{http.MethodPatch, "/api/v1/tests/:id/questions/:question_id/verdict"},
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

func TestTestHandler_SubmitTest(t *testing.T) {
	router, _, mockTestService := setupTestRouterWithApplicationMocks()

	appID := uuid.New()
	candidateID := uuid.New()
	questionID := uuid.New()

	submitBody := func() string {
		return `{"video_key":"uploads/intro.mp4","answers":[{"question_id":"` + questionID.String() + `","text":"My answer"}]}`
	}

	t.Run("Success", func(t *testing.T) {
		// Arrange
		submitted := &ent.SubmittedTest{
			ID:            uuid.New(),
			ApplicationID: appID,
			CandidateID:   candidateID,
			VideoKey:      "uploads/intro.mp4",
			Answers: []models.Answer{
				{QuestionID: questionID, Type: models.QuestionOpen, Text: "My answer"},
			},
		}
		mockTestService.On("SubmitTest", mock.Anything, mock.MatchedBy(func(r *dto.SubmitTestRequest) bool {
			return r.ApplicationID == appID && r.CandidateID == candidateID &&
				r.VideoKey == "uploads/intro.mp4" && len(r.Answers) == 1
		})).Return(submitted, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(submitBody()))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response dto.SubmittedTestResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, submitted.ID, response.ID)
		assert.Len(t, response.Answers, 1)
		mockTestService.AssertExpectations(t)
	})

	t.Run("Payment Required - No Subscription", func(t *testing.T) {
		// Arrange
		mockTestService.On("SubmitTest", mock.Anything, mock.Anything).Return(nil, services.ErrNoSubscription).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(submitBody()))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusPaymentRequired, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "no active subscription")
		mockTestService.AssertExpectations(t)
	})

	t.Run("Payment Required - No Credits", func(t *testing.T) {
		// Arrange
		mockTestService.On("SubmitTest", mock.Anything, mock.Anything).Return(nil, services.ErrInsufficientCredits).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(submitBody()))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusPaymentRequired, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "no remaining credits")
		mockTestService.AssertExpectations(t)
	})

	t.Run("Conflict - Already Submitted", func(t *testing.T) {
		// Arrange
		mockTestService.On("SubmitTest", mock.Anything, mock.Anything).Return(nil, services.ErrAlreadySubmitted).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(submitBody()))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "already been submitted")
		mockTestService.AssertExpectations(t)
	})

	t.Run("Bad Request - Answer Violations", func(t *testing.T) {
		// Arrange
		answerErr := &services.AnswerValidationError{Violations: []services.FieldViolation{
			{Field: "answers[0].text", Message: "answer exceeds the word limit of 3"},
		}}
		mockTestService.On("SubmitTest", mock.Anything, mock.Anything).Return(nil, answerErr).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(submitBody()))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "violations")
		assert.Contains(t, recorder.Body.String(), "word limit")
		mockTestService.AssertExpectations(t)
	})

	t.Run("Bad Request - Missing Video", func(t *testing.T) {
		router, _, mockTestService := setupTestRouterWithApplicationMocks()

		// Act
		body := `{"answers":[{"question_id":"` + questionID.String() + `","text":"My answer"}]}`
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(body))
		request.Header.Set("Authorization", bearerToken(t, candidateID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockTestService.AssertNotCalled(t, "SubmitTest", mock.Anything, mock.Anything)
	})

	t.Run("Forbidden - Employer Role Blocked By Middleware", func(t *testing.T) {
		router, _, mockTestService := setupTestRouterWithApplicationMocks()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/v1/applications/"+appID.String()+"/test", bytes.NewBufferString(submitBody()))
		request.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockTestService.AssertNotCalled(t, "SubmitTest", mock.Anything, mock.Anything)
	})
}

func TestTestHandler_GetSubmittedTest(t *testing.T) {
	router, _, mockTestService := setupTestRouterWithApplicationMocks()

	appID := uuid.New()
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		correct := true
		submitted := &ent.SubmittedTest{
			ID:            uuid.New(),
			ApplicationID: appID,
			CandidateID:   userID,
			VideoKey:      "uploads/intro.mp4",
			Answers: []models.Answer{
				{QuestionID: uuid.New(), Type: models.QuestionOpen, Text: "Answer", IsCorrect: &correct},
			},
		}
		mockTestService.On("GetByApplication", mock.Anything, &dto.GetSubmittedTestRequest{ApplicationID: appID, UserID: userID}).
			Return(submitted, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/applications/"+appID.String()+"/test", nil)
		request.Header.Set("Authorization", bearerToken(t, userID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response dto.SubmittedTestResponse
		err := json.Unmarshal(recorder.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.Equal(t, submitted.ID, response.ID)
		assert.NotNil(t, response.Answers[0].IsCorrect)
		mockTestService.AssertExpectations(t)
	})

	t.Run("Forbidden - Stranger", func(t *testing.T) {
		// Arrange
		mockTestService.On("GetByApplication", mock.Anything, mock.Anything).Return(nil, services.ErrForbidden).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/applications/"+appID.String()+"/test", nil)
		request.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockTestService.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		// Arrange
		mockTestService.On("GetByApplication", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/v1/applications/"+appID.String()+"/test", nil)
		request.Header.Set("Authorization", bearerToken(t, userID, models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockTestService.AssertExpectations(t)
	})
}

func TestTestHandler_MarkQuestionCorrect(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockTestService := new(MockTestSubmissionService)
	testHandler := handlers.NewTestHandler(mockTestService, validator.New())
	router := gin.New()
	api := router.Group("/api/v1")
	routes.RegisterTestRoutes(api, testHandler, middleware.JWTAuthMiddleware(testJWTSecret))

	testID := uuid.New()
	questionID := uuid.New()
	employerID := uuid.New()

	gradeURL := "/api/v1/tests/" + testID.String() + "/questions/" + questionID.String() + "/verdict"

	t.Run("Success", func(t *testing.T) {
		// Arrange
		correct := true
		graded := &ent.SubmittedTest{
			ID:            testID,
			ApplicationID: uuid.New(),
			CandidateID:   uuid.New(),
			VideoKey:      "uploads/intro.mp4",
			Answers: []models.Answer{
				{QuestionID: questionID, Type: models.QuestionOpen, Text: "Answer", IsCorrect: &correct},
			},
		}
		mockTestService.On("MarkQuestionCorrect", mock.Anything, mock.MatchedBy(func(r *dto.MarkQuestionCorrectRequest) bool {
			return r.TestID == testID && r.QuestionID == questionID && r.UserID == employerID && r.IsCorrect
		})).Return(graded, nil).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, gradeURL, bytes.NewBufferString(`{"is_correct":true}`))
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockTestService.AssertExpectations(t)
	})

	t.Run("Forbidden - Candidate Role Blocked By Middleware", func(t *testing.T) {
		mockTestService := new(MockTestSubmissionService)
		testHandler := handlers.NewTestHandler(mockTestService, validator.New())
		router := gin.New()
		api := router.Group("/api/v1")
		routes.RegisterTestRoutes(api, testHandler, middleware.JWTAuthMiddleware(testJWTSecret))

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, gradeURL, bytes.NewBufferString(`{"is_correct":true}`))
		request.Header.Set("Authorization", bearerToken(t, uuid.New(), models.RoleCandidate))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusForbidden, recorder.Code)
		mockTestService.AssertNotCalled(t, "MarkQuestionCorrect", mock.Anything, mock.Anything)
	})

	t.Run("Not Found - Unknown Question", func(t *testing.T) {
		// Arrange
		mockTestService.On("MarkQuestionCorrect", mock.Anything, mock.Anything).Return(nil, services.ErrNotFound).Once()

		// Act
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPatch, gradeURL, bytes.NewBufferString(`{"is_correct":false}`))
		request.Header.Set("Authorization", bearerToken(t, employerID, models.RoleEmployer))
		router.ServeHTTP(recorder, request)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockTestService.AssertExpectations(t)
	})
}
