package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hirehub/internal/api/middleware"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// UserHandler holds dependencies for user operations.
type UserHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserService, validate *validator.Validate) *UserHandler {
	return &UserHandler{
		service:   service,
		validator: validate,
	}
}

// Register godoc
//	@Summary		Register a new user
//	@Description	Creates a new account with a role of candidate, employer or admin.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user	body		dto.CreateUserRequest	true	"User registration data"
//	@Success		201		{object}	dto.UserResponse		"User created successfully"
//	@Failure		400		{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		409		{object}	map[string]string		"Conflict - Email already registered"
//	@Failure		500		{object}	map[string]string		"Internal Server Error"
//	@Router			/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		} else {
			log.Printf("Register: Error creating user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, MapUserModelToUserResponse(user))
}

// Login godoc
//	@Summary		Log in
//	@Description	Authenticates a user and returns an access/refresh token pair.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest		true	"Login credentials"
//	@Success		200			{object}	map[string]interface{}	"Tokens and user data"
//	@Failure		400			{object}	map[string]string		"Bad Request - Invalid input"
//	@Failure		401			{object}	map[string]string		"Unauthorized - Invalid credentials"
//	@Failure		500			{object}	map[string]string		"Internal Server Error"
//	@Router			/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	user, access, refresh, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		} else {
			log.Printf("Login: Error logging in user %s: %v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
		"user":          MapUserModelToUserResponse(user),
	})
}

// Refresh godoc
//	@Summary		Refresh tokens
//	@Description	Exchanges a valid refresh token for a new token pair. The old refresh token is revoked.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			token	body		dto.RefreshRequest	true	"Refresh token"
//	@Success		200		{object}	map[string]string	"New token pair"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string	"Unauthorized - Unknown or expired refresh token"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/refresh [post]
func (h *UserHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	access, refresh, err := h.service.Refresh(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		} else {
			log.Printf("Refresh: Error refreshing tokens: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh tokens"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	})
}

// Logout godoc
//	@Summary		Log out
//	@Description	Revokes the presented refresh token.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			token	body	dto.LogoutRequest	true	"Refresh token to revoke"
//	@Success		204		"Logged out"
//	@Failure		400		{object}	map[string]string	"Bad Request - Invalid input"
//	@Failure		401		{object}	map[string]string	"Unauthorized"
//	@Failure		500		{object}	map[string]string	"Internal Server Error"
//	@Router			/auth/logout [post]
//	@Security		BearerAuth
func (h *UserHandler) Logout(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	req.UserID = userID

	if err := h.service.Logout(c.Request.Context(), &req); err != nil {
		log.Printf("Logout: Error logging out user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log out"})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMe godoc
//	@Summary		Get the authenticated user
//	@Description	Retrieves the profile of the currently authenticated user.
//	@Tags			users
//	@Produce		json
//	@Success		200	{object}	dto.UserResponse	"User profile"
//	@Failure		401	{object}	map[string]string	"Unauthorized"
//	@Failure		404	{object}	map[string]string	"User not found"
//	@Failure		500	{object}	map[string]string	"Internal Server Error"
//	@Router			/users/me [get]
//	@Security		BearerAuth
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Printf("GetMe: Error fetching user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, MapUserModelToUserResponse(user))
}
