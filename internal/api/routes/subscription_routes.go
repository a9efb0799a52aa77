package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/models"
)

// RegisterSubscriptionRoutes registers routes for the employer credit ledger.
func RegisterSubscriptionRoutes(
	rg *gin.RouterGroup,
	subscriptionHandler handlers.SubscriptionHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	subsGroup := rg.Group("/subscriptions")
	subsGroup.Use(authMiddleware)
	{
		employerOnly := middleware.RequireRole(models.RoleEmployer)
		subsGroup.GET("/my", employerOnly, subscriptionHandler.GetMySubscription)
		subsGroup.GET("/my/credits", employerOnly, subscriptionHandler.GetMyCredits)
		subsGroup.GET("/my/history", employerOnly, subscriptionHandler.GetMyHistory)

		// Admin corrections
		subsGroup.PATCH("/:employer_id/credits",
			middleware.RequireRole(models.RoleAdmin),
			subscriptionHandler.AdjustCredits)
	}
}
