package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/models"
)

// RegisterTestRoutes registers routes for grading submitted tests.
func RegisterTestRoutes(
	rg *gin.RouterGroup,
	testHandler handlers.TestHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	testsGroup := rg.Group("/tests")
	testsGroup.Use(authMiddleware)
	{
		testsGroup.PATCH("/:id/questions/:question_id/verdict",
			middleware.RequireRole(models.RoleEmployer, models.RoleAdmin),
			testHandler.MarkQuestionCorrect)
	}
}
