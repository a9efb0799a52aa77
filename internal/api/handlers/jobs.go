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

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// CreateJob godoc
//	@Summary		Post a new job
//	@Description	Creates a job posting with its test question set. Employer only.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job	body		dto.CreateJobRequest	true	"Job posting data"
//	@Success		201	{object}	dto.JobResponse			"Job created successfully"
//	@Failure		400	{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		403	{object}	map[string]string		"Forbidden - Not an employer"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/jobs [post]
//	@Security		BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.EmployerID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
		} else {
			log.Printf("CreateJob: Error creating job for employer %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapJobModelToJobResponse(job))
}

// GetJobByID godoc
//	@Summary		Get a job by ID
//	@Description	Retrieves a single job posting with its question set.
//	@Tags			jobs
//	@Produce		json
//	@Param			job_id	path		string				true	"Job ID"	Format(uuid)
//	@Success		200	{object}	dto.JobResponse		"Successfully retrieved job"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{job_id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("job_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetJobByID(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else {
			log.Printf("GetJobByID: Error fetching job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// ListActiveJobs godoc
//	@Summary		List active jobs
//	@Description	Retrieves the public board of jobs open for applications. Supports pagination.
//	@Tags			jobs
//	@Produce		json
//	@Param			limit	query		int					false	"Pagination limit"	default(10)
//	@Param			offset	query		int					false	"Pagination offset"	default(0)
//	@Success		200		{array}		dto.JobResponse		"Successfully retrieved jobs"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid query parameters"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs [get]
func (h *JobHandler) ListActiveJobs(c *gin.Context) {
	var req dto.ListActiveJobsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	jobs, err := h.service.ListActiveJobs(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListActiveJobs: Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(job))
	}

	c.JSON(http.StatusOK, jobResponses)
}

// ListMyJobs godoc
//	@Summary		List the authenticated employer's jobs
//	@Description	Retrieves jobs posted by the currently authenticated employer. Supports pagination and status filtering.
//	@Tags			jobs
//	@Produce		json
//	@Param			limit	query		int					false	"Pagination limit"	default(10)
//	@Param			offset	query		int					false	"Pagination offset"	default(0)
//	@Param			status	query		string				false	"Filter by status"	Enums(Active, Closed, Archived)
//	@Success		200		{array}		dto.JobResponse		"Successfully retrieved jobs"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid query parameters"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/my [get]
//	@Security		BearerAuth
func (h *JobHandler) ListMyJobs(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.ListJobsByEmployerRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	req.EmployerID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}
	if req.Limit <= 0 {
		req.Limit = 10
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	jobs, err := h.service.ListJobsByEmployer(c.Request.Context(), &req)
	if err != nil {
		log.Printf("ListMyJobs: Error listing jobs for employer %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve jobs"})
		return
	}

	jobResponses := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		jobResponses = append(jobResponses, MapJobModelToJobResponse(job))
	}

	c.JSON(http.StatusOK, jobResponses)
}

// UpdateJob godoc
//	@Summary		Update a job posting
//	@Description	Updates title, description or question set of a job. Only the posting employer may update; archived jobs are immutable.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job_id	path		string				true	"Job ID"	Format(uuid)
//	@Param			job	body		dto.UpdateJobRequest	true	"Fields to update"
//	@Success		200	{object}	dto.JobResponse		"Job updated"
//	@Failure		400	{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the posting employer"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		409	{object}	map[string]string	"Conflict - Job is archived"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{job_id} [patch]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
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

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = jobID
	req.UserID = userID

	job, err := h.service.UpdateJob(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
		} else if errors.Is(err, services.ErrInvalidState) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
		} else {
			log.Printf("UpdateJob: Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// UpdateJobStatus godoc
//	@Summary		Update a job's status
//	@Description	Moves a job between Active, Closed and Archived. Archived is terminal.
//	@Tags			jobs
//	@Accept			json
//	@Produce		json
//	@Param			job_id	path		string						true	"Job ID"	Format(uuid)
//	@Param			status	body		dto.UpdateJobStatusRequest	true	"New status"
//	@Success		200		{object}	dto.JobResponse				"Job status updated"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string			"Unauthorized"
//	@Failure		403		{object}	map[string]string			"Forbidden - Not the posting employer"
//	@Failure		404		{object}	map[string]string			"Job not found"
//	@Failure		409		{object}	map[string]string			"Conflict - Invalid status transition"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/jobs/{job_id}/status [patch]
//	@Security		BearerAuth
func (h *JobHandler) UpdateJobStatus(c *gin.Context) {
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

	var req dto.UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.ID = jobID
	req.UserID = userID

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	job, err := h.service.UpdateJobStatus(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
		} else if errors.Is(err, services.ErrInvalidTransition) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			log.Printf("UpdateJobStatus: Error updating status of job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job status"})
		}
		return
	}

	c.JSON(http.StatusOK, MapJobModelToJobResponse(job))
}

// DeleteJob godoc
//	@Summary		Delete a job posting
//	@Description	Deletes a job and all of its applications. Only the posting employer may delete.
//	@Tags			jobs
//	@Produce		json
//	@Param			job_id	path	string	true	"Job ID"	Format(uuid)
//	@Success		204	"Job deleted"
//	@Failure		400	{object}	map[string]string	"Invalid ID format"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		403	{object}	map[string]string	"Forbidden - Not the posting employer"
//	@Failure		404	{object}	map[string]string	"Job not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/jobs/{job_id} [delete]
//	@Security		BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
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

	req := dto.DeleteJobRequest{ID: jobID, UserID: userID}
	if err := h.service.DeleteJob(c.Request.Context(), &req); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not the employer for this job"})
		} else {
			log.Printf("DeleteJob: Error deleting job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete job"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
