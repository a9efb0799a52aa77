package routes

import (
	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/models"
)

// RegisterPackageRoutes registers routes for package templates.
func RegisterPackageRoutes(
	rg *gin.RouterGroup,
	packageHandler handlers.PackageHandlerInterface, // Use interface
	authMiddleware gin.HandlerFunc,
) {
	packagesGroup := rg.Group("/packages")
	{
		// Public catalog
		packagesGroup.GET("", packageHandler.ListPackages)
		packagesGroup.GET("/:id", packageHandler.GetPackageByID)

		// Admin-only management
		adminOnly := middleware.RequireRole(models.RoleAdmin)
		packagesGroup.POST("", authMiddleware, adminOnly, packageHandler.CreatePackage)
		packagesGroup.PATCH("/:id", authMiddleware, adminOnly, packageHandler.UpdatePackage)
		packagesGroup.DELETE("/:id", authMiddleware, adminOnly, packageHandler.DeletePackage)
	}
}
