// internal/api/routes/routes.go
package routes

import (
	"log"

	"github.com/gin-gonic/gin"

	"hirehub/internal/api/handlers"
	"hirehub/internal/api/middleware"
	"hirehub/internal/app"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {

	// --- Base API Group ---
	apiV1 := router.Group("/api/v1")

	//Create handlers
	userHandler := handlers.NewUserHandler(app.UserService, app.Validator)
	jobHandler := handlers.NewJobHandler(app.JobService, app.Validator)
	jobAppHandler := handlers.NewJobApplicationHandler(app.JobAppService, app.Validator)
	testHandler := handlers.NewTestHandler(app.TestService, app.Validator)
	subscriptionHandler := handlers.NewSubscriptionHandler(app.SubscriptionService, app.Validator)
	packageHandler := handlers.NewPackageHandler(app.PackageService, app.Validator)
	webhookHandler := handlers.NewWebhookHandler(app.SubscriptionService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(app.Config.JWT.Secret)

	// --- Register Resource Routes ---
	RegisterUserRoutes(apiV1, userHandler, authMiddleware)
	RegisterJobRoutes(apiV1, jobHandler, authMiddleware)
	RegisterJobApplicationRoutes(apiV1, jobAppHandler, testHandler, authMiddleware)
	RegisterTestRoutes(apiV1, testHandler, authMiddleware)
	RegisterSubscriptionRoutes(apiV1, subscriptionHandler, authMiddleware)
	RegisterPackageRoutes(apiV1, packageHandler, authMiddleware)
	RegisterWebhookRoutes(apiV1, webhookHandler)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck)

	log.Println("Configuring Swagger UI handler")
	// Register the Swagger UI handler WITHOUT the explicit URL option.
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
