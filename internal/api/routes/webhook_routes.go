package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
)

// RegisterWebhookRoutes registers payment gateway callback routes. These are
// authenticated by the gateway's shared secret at the ingress, not by user
// JWTs.
func RegisterWebhookRoutes(
	rg *gin.RouterGroup,
	webhookHandler handlers.WebhookHandlerInterface, // Use interface
) {
	webhooksGroup := rg.Group("/webhooks")
	{
		webhooksGroup.POST("/payment", webhookHandler.PaymentSucceeded)
	}
}
