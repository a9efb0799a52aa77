package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"hirehub/config"
	"hirehub/internal/app"
	"hirehub/internal/database"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/server"

	_ "hirehub/docs" // Import generated docs (created by swag init)
)

// @title           HireHub API
// @version         1.0
// @description     Recruiting platform backend: job postings, application lifecycle, test submissions and credit-metered subscriptions.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.example.com/support
// @contact.email  support@example.com

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Initialize Redis Client ---
	redisClient, err := database.NewRedisClient(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	dbPool, err := database.NewConnectionPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	entClient := database.NewEntClient(dbPool)
	defer entClient.Close()

	// --- Run Schema Migration ---
	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	if err := entClient.Schema.Create(migrateCtx); err != nil {
		cancelMigrate()
		log.Fatalf("Failed to run schema migration: %v", err)
	}
	cancelMigrate()

	// --- Initialize Notification Broker ---
	var notifier notify.Notifier
	if cfg.AMQP.URL != "" {
		notifier, err = notify.NewRabbitMQNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			log.Printf("WARN: Failed to connect to notification broker: %v. Continuing with no-op notifier.", err)
			notifier = notify.NoopNotifier{}
		} else {
			log.Println("Notification broker connected")
		}
	} else {
		log.Println("AMQP URL not configured, notifications will be dropped.")
		notifier = notify.NoopNotifier{}
	}
	defer notifier.Close()

	validate := validator.New()

	application := app.New(cfg, dbPool, entClient, redisClient, notifier, objectstore.Unchecked{}, validate)

	// --- Seed the Free-Trial Package ---
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := application.PackageService.EnsureFreeTrial(seedCtx); err != nil {
		cancelSeed()
		log.Fatalf("Failed to seed free-trial package: %v", err)
	}
	cancelSeed()

	srv := server.NewServer(application)

	// --- Graceful Shutdown Handling ---
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	log.Println("Shutting down...")

	//Gin shutdowns on its own

	log.Println("Application gracefully stopped.")
}
