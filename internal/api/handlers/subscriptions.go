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

// SubscriptionHandler holds dependencies for subscription/credit operations.
type SubscriptionHandler struct {
	service   services.SubscriptionService
	validator *validator.Validate
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(service services.SubscriptionService, validate *validator.Validate) *SubscriptionHandler {
	return &SubscriptionHandler{
		service:   service,
		validator: validate,
	}
}

// GetMySubscription godoc
//	@Summary		Get the authenticated employer's subscription
//	@Description	Retrieves the current package snapshot and live credit counter.
//	@Tags			subscriptions
//	@Produce		json
//	@Success		200	{object}	dto.SubscriptionResponse	"Current subscription"
//	@Failure		401	{object}	map[string]string			"Unauthorized"
//	@Failure		404	{object}	map[string]string			"No subscription"
//	@Failure		500	{object}	map[string]string			"Internal Server Error"
//	@Router			/subscriptions/my [get]
//	@Security		BearerAuth
func (h *SubscriptionHandler) GetMySubscription(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sub, err := h.service.GetByEmployer(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": "You have no active subscription"})
		} else {
			log.Printf("GetMySubscription: Error fetching subscription for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve subscription"})
		}
		return
	}

	c.JSON(http.StatusOK, MapSubscriptionModelToResponse(sub))
}

// GetMyCredits godoc
//	@Summary		Get the remaining credit balance
//	@Description	Reports the authenticated employer's remaining credits. A zero balance is distinct from having no subscription at all.
//	@Tags			subscriptions
//	@Produce		json
//	@Success		200	{object}	dto.CreditsResponse	"Remaining credits"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"No subscription"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/subscriptions/my/credits [get]
//	@Security		BearerAuth
func (h *SubscriptionHandler) GetMyCredits(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	credits, err := h.service.GetActiveCredits(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": "You have no active subscription"})
			return
		}
		log.Printf("GetMyCredits: Error fetching credits for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve credits"})
		return
	}

	c.JSON(http.StatusOK, dto.CreditsResponse{Credits: credits})
}

// GetMyHistory godoc
//	@Summary		Get the subscription package history
//	@Description	Retrieves the archived package snapshots superseded by later grants, most recent first.
//	@Tags			subscriptions
//	@Produce		json
//	@Success		200	{array}		models.PackageSnapshot	"Archived package snapshots"
//	@Failure		401	{object}	map[string]string		"Unauthorized"
//	@Failure		404	{object}	map[string]string		"No subscription"
//	@Failure		500	{object}	map[string]string		"Internal Server Error"
//	@Router			/subscriptions/my/history [get]
//	@Security		BearerAuth
func (h *SubscriptionHandler) GetMyHistory(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": "You have no active subscription"})
		} else {
			log.Printf("GetMyHistory: Error fetching history for %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve history"})
		}
		return
	}

	c.JSON(http.StatusOK, history)
}

// AdjustCredits godoc
//	@Summary		Adjust an employer's credits
//	@Description	Applies an admin credit adjustment (positive or negative) to an employer's live counter. Admin only.
//	@Tags			subscriptions
//	@Accept			json
//	@Produce		json
//	@Param			employer_id	path		string						true	"Employer ID"	Format(uuid)
//	@Param			adjustment	body		dto.AdjustCreditsRequest	true	"Credit delta"
//	@Success		200			{object}	dto.SubscriptionResponse	"Adjusted subscription"
//	@Failure		400			{object}	map[string]string			"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string			"Unauthorized"
//	@Failure		403			{object}	map[string]string			"Forbidden - Not an admin"
//	@Failure		404			{object}	map[string]string			"Not Found - Employer has no subscription"
//	@Failure		409			{object}	map[string]string			"Conflict - Removal exceeds remaining credits"
//	@Failure		500			{object}	map[string]string			"Internal Server Error"
//	@Router			/subscriptions/{employer_id}/credits [patch]
//	@Security		BearerAuth
func (h *SubscriptionHandler) AdjustCredits(c *gin.Context) {
	adminID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	employerID, err := uuid.Parse(c.Param("employer_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid employer ID format"})
		return
	}

	var req dto.AdjustCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.EmployerID = employerID
	req.AdminID = adminID

	sub, err := h.service.AdjustCredits(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrNoSubscription) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer has no subscription"})
		} else if errors.Is(err, services.ErrInsufficientCredits) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, services.ErrValidation) {
			respondValidation(c, err)
		} else {
			log.Printf("AdjustCredits: Error adjusting credits for employer %s: %v", employerID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust credits"})
		}
		return
	}

	c.JSON(http.StatusOK, MapSubscriptionModelToResponse(sub))
}
