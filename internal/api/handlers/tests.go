package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"hirehub/internal/api/middleware"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// TestHandler holds dependencies for test submission operations.
type TestHandler struct {
	service   services.TestSubmissionService
	validator *validator.Validate
}

// NewTestHandler creates a new TestHandler.
func NewTestHandler(service services.TestSubmissionService, validate *validator.Validate) *TestHandler {
	return &TestHandler{
		service:   service,
		validator: validate,
	}
}

// SubmitTest godoc
//	@Summary		Submit a test for an application
//	@Description	Allows the candidate of an Accepted application to submit their test: an intro video plus one answer per question. Consumes one employer credit and moves the application to TestTaken.
//	@Tags			tests
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Application ID"	Format(uuid)
//	@Param			submission	body		dto.SubmitTestRequest		true	"Test submission"
//	@Success		201			{object}	dto.SubmittedTestResponse	"Test submitted"
//	@Failure		400			{object}	map[string]string			"Bad Request - Invalid input or answers"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		402			{object}	map[string]string			"Payment Required - Employer has no credits"
//	@Failure		403			{object}	map[string]string			"Forbidden - User is not the applicant"
//	@Failure		404			{object}	map[string]string			"Not Found - Application not found"
//	@Failure		409			{object}	map[string]string			"Conflict - Already submitted, rejected or not accepted yet"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/test [post]
//	@Security		BearerAuth
func (h *TestHandler) SubmitTest(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	var req dto.SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.CandidateID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	submitted, err := h.service.SubmitTest(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the applicant for this application"})
		case errors.Is(err, services.ErrAlreadySubmitted):
			c.JSON(http.StatusConflict, gin.H{"error": "Test has already been submitted for this application"})
		case errors.Is(err, services.ErrApplicationRejected):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInvalidTransition), errors.Is(err, services.ErrInvalidState):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoSubscription):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "The employer has no active subscription"})
		case errors.Is(err, services.ErrInsufficientCredits):
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "The employer has no remaining credits"})
		case errors.Is(err, services.ErrValidation):
			respondValidation(c, err)
		default:
			log.Printf("SubmitTest: Error submitting test for application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit test"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapSubmittedTestModelToResponse(submitted))
}

// GetSubmittedTest godoc
//	@Summary		Get the submitted test for an application
//	@Description	Retrieves the submitted test (video, answers, verdicts). Visible to the candidate and the job employer.
//	@Tags			tests
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.SubmittedTestResponse	"Submitted test"
//	@Failure		400	{object}	map[string]string			"Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden - User not associated with this application"
//	@Failure		404	{object}	map[string]string			"Not Found - Application or test not found"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/test [get]
//	@Security		BearerAuth
func (h *TestHandler) GetSubmittedTest(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	appID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid application ID format"})
		return
	}

	req := dto.GetSubmittedTestRequest{ApplicationID: appID, UserID: userID}
	submitted, err := h.service.GetByApplication(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Submitted test not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this test"})
		} else {
			log.Printf("GetSubmittedTest: Error fetching test for application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve submitted test"})
		}
		return
	}

	c.JSON(http.StatusOK, MapSubmittedTestModelToResponse(submitted))
}

// MarkQuestionCorrect godoc
//	@Summary		Record a verdict on an answer
//	@Description	Allows the employer to mark one answer of a submitted test as correct or incorrect. Repeated calls overwrite the verdict.
//	@Tags			tests
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Submitted test ID"	Format(uuid)
//	@Param			question_id	path		string							true	"Question ID"		Format(uuid)
//	@Param			verdict		body		dto.MarkQuestionCorrectRequest	true	"Verdict"
//	@Success		200			{object}	dto.SubmittedTestResponse		"Verdict recorded"
//	@Failure		400			{object}	map[string]string				"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string				"Unauthorized"
//	@Failure		403			{object}	map[string]string				"Forbidden - User is not the employer"
//	@Failure		404			{object}	map[string]string				"Not Found - Test or question not found"
//	@Failure		500			{object}	map[string]string				"Internal Server Error"
//	@Router			/tests/{id}/questions/{question_id}/verdict [patch]
//	@Security		BearerAuth
func (h *TestHandler) MarkQuestionCorrect(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	testID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid test ID format"})
		return
	}
	questionID, err := uuid.Parse(c.Param("question_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid question ID format"})
		return
	}

	var req dto.MarkQuestionCorrectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.TestID = testID
	req.QuestionID = questionID
	req.UserID = userID

	updated, err := h.service.MarkQuestionCorrect(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to grade this test"})
		} else {
			log.Printf("MarkQuestionCorrect: Error grading test %s: %v", testID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record verdict"})
		}
		return
	}

	c.JSON(http.StatusOK, MapSubmittedTestModelToResponse(updated))
}
