package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/models"
)

// RegisterJobRoutes registers all routes related to job postings.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	jobsGroup := rg.Group("/jobs")
	{
		// Public job board
		jobsGroup.GET("", jobHandler.ListActiveJobs)
		jobsGroup.GET("/:job_id", jobHandler.GetJobByID)

		// Employer-only management
		employerOnly := middleware.RequireRole(models.RoleEmployer)
		jobsGroup.POST("", authMiddleware, employerOnly, jobHandler.CreateJob)
		jobsGroup.GET("/my", authMiddleware, employerOnly, jobHandler.ListMyJobs)
		jobsGroup.PATCH("/:job_id", authMiddleware, employerOnly, jobHandler.UpdateJob)
		jobsGroup.PATCH("/:job_id/status", authMiddleware, employerOnly, jobHandler.UpdateJobStatus)
		jobsGroup.DELETE("/:job_id", authMiddleware, employerOnly, jobHandler.DeleteJob)
	}
}
