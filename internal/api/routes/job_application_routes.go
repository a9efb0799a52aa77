package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/models"
)

// RegisterJobApplicationRoutes registers all routes related to job applications.
func RegisterJobApplicationRoutes(
	rg *gin.RouterGroup,
	jobAppHandler handlers.JobApplicationHandlerInterface, // Use interface
	testHandler handlers.TestHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	candidateOnly := middleware.RequireRole(models.RoleCandidate, models.RoleAdmin)
	employerOnly := middleware.RequireRole(models.RoleEmployer, models.RoleAdmin)

	// Group for actions related to a specific job
	jobsGroup := rg.Group("/jobs")
	jobsGroup.Use(authMiddleware)
	{
		// Apply for a specific job
		jobsGroup.POST("/:job_id/apply", candidateOnly, jobAppHandler.ApplyToJob)
		// List applications for a specific job (Employer view)
		jobsGroup.GET("/:job_id/applications", employerOnly, jobAppHandler.ListApplicationsByJob)
	}

	// Group for actions related to applications themselves
	appsGroup := rg.Group("/applications")
	appsGroup.Use(authMiddleware)
	{
		appsGroup.GET("/my", jobAppHandler.ListMyApplications) // List applications submitted by the current user
		appsGroup.GET("/:id", jobAppHandler.GetApplicationByID)
		appsGroup.PATCH("/:id/accept", employerOnly, jobAppHandler.AcceptApplication)
		appsGroup.PATCH("/:id/pass", employerOnly, jobAppHandler.MarkApplicationPassed)
		appsGroup.PATCH("/:id/sign", candidateOnly, jobAppHandler.SignContract)
		appsGroup.PATCH("/:id/approve", employerOnly, jobAppHandler.ApproveContract)
		appsGroup.PATCH("/:id/reject", employerOnly, jobAppHandler.RejectApplication)
		appsGroup.PATCH("/:id/note", employerOnly, jobAppHandler.UpdateApplicationNote)
		appsGroup.DELETE("/:id", jobAppHandler.DeleteApplication)

		// Test submission lives under the application it belongs to.
		appsGroup.POST("/:id/test", candidateOnly, testHandler.SubmitTest)
		appsGroup.GET("/:id/test", testHandler.GetSubmittedTest)
	}
}
