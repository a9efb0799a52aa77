package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
)

// RegisterUserRoutes registers authentication and profile routes.
func RegisterUserRoutes(
	rg *gin.RouterGroup,
	userHandler handlers.UserHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", userHandler.Register)
		authGroup.POST("/login", userHandler.Login)
		authGroup.POST("/refresh", userHandler.Refresh)
		authGroup.POST("/logout", authMiddleware, userHandler.Logout)
	}

	usersGroup := rg.Group("/users")
	usersGroup.Use(authMiddleware)
	{
		usersGroup.GET("/me", userHandler.GetMe)
	}
}
