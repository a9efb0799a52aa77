package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// WebhookHandler receives payment gateway callbacks.
type WebhookHandler struct {
	service   services.SubscriptionService
	validator *validator.Validate
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(service services.SubscriptionService, validate *validator.Validate) *WebhookHandler {
	return &WebhookHandler{
		service:   service,
		validator: validate,
	}
}

// PaymentSucceeded godoc
//	@Summary		Payment succeeded webhook
//	@Description	Called by the payment gateway after a successful checkout. Installs the purchased package for the employer; replays of the same transaction are no-ops.
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			event	body		dto.PaymentWebhookRequest	true	"Payment event"
//	@Success		200		{object}	dto.SubscriptionResponse	"Package granted"
//	@Failure		400		{object}	map[string]string			"Bad Request - Invalid payload"
//	@Failure		403		{object}	map[string]string			"Forbidden - Target user is not an employer"
//	@Failure		404		{object}	map[string]string			"Not Found - Employer or package not found"
//	@Failure		500		{object}	map[string]string			"Internal Server Error"
//	@Router			/webhooks/payment [post]
func (h *WebhookHandler) PaymentSucceeded(c *gin.Context) {
	var payload dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	req := dto.GrantPackageRequest{
		EmployerID:    payload.EmployerID,
		PackageID:     payload.PackageID,
		TransactionID: payload.TransactionID,
	}

	sub, err := h.service.GrantPackage(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		} else {
			log.Printf("PaymentSucceeded: Error granting package for transaction %s: %v", payload.TransactionID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment event"})
		}
		return
	}

	c.JSON(http.StatusOK, MapSubscriptionModelToResponse(sub))
}
