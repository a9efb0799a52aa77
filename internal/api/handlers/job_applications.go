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

// JobApplicationHandler holds dependencies for job application operations.
type JobApplicationHandler struct {
	service   services.JobApplicationService
	validator *validator.Validate
}

// NewJobApplicationHandler creates a new JobApplicationHandler.
func NewJobApplicationHandler(service services.JobApplicationService, validate *validator.Validate) *JobApplicationHandler {
	return &JobApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// respondLifecycleError maps the service error taxonomy for application
// state changes onto HTTP statuses. Transition and frozen-state failures are
// conflicts, never silent successes.
func respondLifecycleError(c *gin.Context, operation string, appID uuid.UUID, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to perform this action"})
	case errors.Is(err, services.ErrApplicationRejected):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidState):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		respondValidation(c, err)
	default:
		log.Printf("%s: Error on application %s: %v", operation, appID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update application"})
	}
}

// ApplyToJob godoc
//	@Summary		Apply for a job
//	@Description	Allows a candidate to apply for an active job with CV and optional cover letter, intro video and note.
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			job_id		path		string						true	"Job ID to apply for"	Format(uuid)
//	@Param			application	body		dto.ApplyToJobRequest		true	"Application artifacts"
//	@Success		201			{object}	dto.JobApplicationResponse	"Application created successfully"
//	@Failure		400			{object}	map[string]string			"Bad Request - Invalid input or artifact references"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		403			{object}	map[string]string			"Forbidden - Employers cannot apply"
//	@Failure		404			{object}	map[string]string			"Not Found - Job not found"
//	@Failure		409			{object}	map[string]string			"Conflict - Job not active or already applied"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/jobs/{job_id}/apply [post]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ApplyToJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("ApplyToJob: Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ApplyToJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.CandidateID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	application, err := h.service.Apply(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrInvalidState) || errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
		} else {
			log.Printf("ApplyToJob: Error applying to job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply for job"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapJobApplicationModelToResponse(application))
}

// GetApplicationByID godoc
//	@Summary		Get a job application by ID
//	@Description	Retrieves details for a specific job application. Requires user to be the applicant or the job employer.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Successfully retrieved application"
//	@Failure		400	{object}	map[string]string			"Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden - User not associated with this application"
//	@Failure		404	{object}	map[string]string			"Application Not Found"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id} [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) GetApplicationByID(c *gin.Context) {
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

	req := dto.GetApplicationRequest{ID: appID, UserID: userID}
	application, err := h.service.GetByID(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view this application"})
		} else {
			log.Printf("GetApplicationByID: Error fetching application %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(application))
}

// ListApplicationsByJob godoc
//	@Summary		List applications for a specific job
//	@Description	Retrieves applications for a job. Only allowed for the employer who posted it. Supports pagination.
//	@Tags			job_applications
//	@Produce		json
//	@Param			job_id	path		string						true	"Job ID"			Format(uuid)
//	@Param			limit	query		int							false	"Pagination limit"	default(10)
//	@Param			offset	query		int							false	"Pagination offset"	default(0)
//	@Success		200		{array}		dto.JobApplicationResponse	"Successfully retrieved list of applications"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid Job ID or query parameters"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden - User is not the employer for this job"
//	@Failure		404		{object}	map[string]string			"Not Found - Job not found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/jobs/{job_id}/applications [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ListApplicationsByJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	var req dto.ListApplicationsByJobRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.JobID = jobID
	req.UserID = userID

	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	applications, err := h.service.ListByJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to view applications for this job"})
		} else {
			log.Printf("ListApplicationsByJob: Error listing applications for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		}
		return
	}

	appResponses := make([]dto.JobApplicationResponse, 0, len(applications))
	for _, app := range applications {
		appResponses = append(appResponses, MapJobApplicationModelToResponse(app))
	}

	c.JSON(http.StatusOK, appResponses)
}

// ListMyApplications godoc
//	@Summary		List applications submitted by the authenticated user
//	@Description	Retrieves the job applications submitted by the currently authenticated candidate. Supports pagination.
//	@Tags			job_applications
//	@Produce		json
//	@Param			limit	query		int							false	"Pagination limit"	default(10)
//	@Param			offset	query		int							false	"Pagination offset"	default(0)
//	@Success		200		{array}		dto.JobApplicationResponse	"Successfully retrieved list of applications"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid query parameters"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/my [get]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ListMyApplications(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListApplicationsByCandidateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.CandidateID = userID

	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	applications, err := h.service.ListByCandidate(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyApplications: Error listing applications for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	appResponses := make([]dto.JobApplicationResponse, 0, len(applications))
	for _, app := range applications {
		appResponses = append(appResponses, MapJobApplicationModelToResponse(app))
	}

	c.JSON(http.StatusOK, appResponses)
}

// AcceptApplication godoc
//	@Summary		Accept a job application
//	@Description	Allows the employer to accept a Pending application, opening test access for the candidate.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Application accepted"
//	@Failure		400	{object}	map[string]string			"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden - User is not the employer"
//	@Failure		404	{object}	map[string]string			"Not Found - Application or Job not found"
//	@Failure		409	{object}	map[string]string			"Conflict - Application state prevents acceptance"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/accept [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) AcceptApplication(c *gin.Context) {
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

	req := dto.AcceptApplicationRequest{ApplicationID: appID, UserID: userID}
	updatedApp, err := h.service.Accept(c.Request.Context(), &req)
	if err != nil {
		respondLifecycleError(c, "AcceptApplication", appID, err)
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(updatedApp))
}

// MarkApplicationPassed godoc
//	@Summary		Mark an application as passed
//	@Description	Allows the employer to mark a TestTaken application as Passed after reviewing the submitted test.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Application marked passed"
//	@Failure		400	{object}	map[string]string			"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden - User is not the employer"
//	@Failure		404	{object}	map[string]string			"Not Found - Application or submitted test not found"
//	@Failure		409	{object}	map[string]string			"Conflict - Application state or unreviewed test prevents passing"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/pass [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) MarkApplicationPassed(c *gin.Context) {
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

	req := dto.MarkPassedRequest{ApplicationID: appID, UserID: userID}
	updatedApp, err := h.service.MarkPassed(c.Request.Context(), &req)
	if err != nil {
		respondLifecycleError(c, "MarkApplicationPassed", appID, err)
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(updatedApp))
}

// SignContract godoc
//	@Summary		Sign the contract for a passed application
//	@Description	Allows the candidate to attach the signed contract to a Passed application, moving it to ContractSigned.
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string						true	"Application ID"	Format(uuid)
//	@Param			contract	body		dto.SignContractRequest		true	"Signed contract reference"
//	@Success		200			{object}	dto.JobApplicationResponse	"Contract signed"
//	@Failure		400			{object}	map[string]string			"Bad Request - Invalid input or contract reference"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		403			{object}	map[string]string			"Forbidden - User is not the applicant"
//	@Failure		404			{object}	map[string]string			"Not Found - Application not found"
//	@Failure		409			{object}	map[string]string			"Conflict - Application state prevents signing"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/sign [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) SignContract(c *gin.Context) {
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

	var req dto.SignContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	updatedApp, err := h.service.SignContract(c.Request.Context(), &req)
	if err != nil {
		respondLifecycleError(c, "SignContract", appID, err)
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(updatedApp))
}

// ApproveContract godoc
//	@Summary		Approve a signed contract
//	@Description	Allows the employer to approve the signed contract, setting the terminal ContractApproved outcome.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Contract approved"
//	@Failure		400	{object}	map[string]string			"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden - User is not the employer"
//	@Failure		404	{object}	map[string]string			"Not Found - Application not found"
//	@Failure		409	{object}	map[string]string			"Conflict - Contract not signed or outcome already settled"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/approve [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) ApproveContract(c *gin.Context) {
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

	req := dto.ApproveContractRequest{ApplicationID: appID, UserID: userID}
	updatedApp, err := h.service.ApproveContract(c.Request.Context(), &req)
	if err != nil {
		respondLifecycleError(c, "ApproveContract", appID, err)
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(updatedApp))
}

// RejectApplication godoc
//	@Summary		Reject a job application
//	@Description	Allows the employer to reject an application at any stage. Rejection is terminal and freezes the application.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id	path		string						true	"Application ID"	Format(uuid)
//	@Success		200	{object}	dto.JobApplicationResponse	"Application rejected"
//	@Failure		400	{object}	map[string]string			"Bad Request - Invalid ID format"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		403	{object}	map[string]string			"Forbidden - User is not the employer"
//	@Failure		404	{object}	map[string]string			"Not Found - Application or Job not found"
//	@Failure		409	{object}	map[string]string			"Conflict - Application outcome already settled"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/applications/{id}/reject [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) RejectApplication(c *gin.Context) {
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

	req := dto.RejectApplicationRequest{ApplicationID: appID, UserID: userID}
	updatedApp, err := h.service.Reject(c.Request.Context(), &req)
	if err != nil {
		respondLifecycleError(c, "RejectApplication", appID, err)
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(updatedApp))
}

// UpdateApplicationNote godoc
//	@Summary		Update the note on an application
//	@Description	Allows the employer to set or replace the free-text note on an application.
//	@Tags			job_applications
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Application ID"	Format(uuid)
//	@Param			note	body		dto.UpdateApplicationNoteRequest	true	"Note content"
//	@Success		200		{object}	dto.JobApplicationResponse			"Note updated"
//	@Failure		400		{object}	map[string]string					"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string					"Unauthorized"
//	@Failure		403		{object}	map[string]string					"Forbidden - User is not the employer"
//	@Failure		404		{object}	map[string]string					"Not Found - Application not found"
//	@Failure		500		{object}	map[string]string					"Internal Server Error"
//	@Router			/applications/{id}/note [patch]
//	@Security		BearerAuth
func (h *JobApplicationHandler) UpdateApplicationNote(c *gin.Context) {
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

	var req dto.UpdateApplicationNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.UserID = userID

	updatedApp, err := h.service.UpdateNote(c.Request.Context(), &req)
	if err != nil {
		respondLifecycleError(c, "UpdateApplicationNote", appID, err)
		return
	}

	c.JSON(http.StatusOK, MapJobApplicationModelToResponse(updatedApp))
}

// DeleteApplication godoc
//	@Summary		Delete a job application
//	@Description	Soft-deletes an application. Admins may hard-delete with the hard query flag.
//	@Tags			job_applications
//	@Produce		json
//	@Param			id		path	string	true	"Application ID"	Format(uuid)
//	@Param			hard	query	bool	false	"Hard delete (admin only)"	default(false)
//	@Success		204		"Application deleted"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid ID format"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		403		{object}	map[string]string	"Forbidden - User not associated with this application"
//	@Failure		404		{object}	map[string]string	"Not Found - Application not found"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/applications/{id} [delete]
//	@Security		BearerAuth
func (h *JobApplicationHandler) DeleteApplication(c *gin.Context) {
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

	var req dto.DeleteApplicationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.ApplicationID = appID
	req.UserID = userID

	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondLifecycleError(c, "DeleteApplication", appID, err)
		return
	}

	c.Status(http.StatusNoContent)
}
