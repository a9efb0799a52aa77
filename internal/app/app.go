// internal/app/app.go (or similar package)
package app

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"hirehub/config"
	"hirehub/ent"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/storage/postgres"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	EntClient   *ent.Client
	RedisClient *redis.Client
	Notifier    notify.Notifier
	ObjectStore objectstore.ObjectStore
	Validator   *validator.Validate

	// Repositories
	UserRepo         storage.UserRepository
	JobRepo          storage.JobRepository
	JobAppRepo       storage.JobApplicationRepository
	SubscriptionRepo storage.SubscriptionRepository
	TestRepo         storage.SubmittedTestRepository
	PackageRepo      storage.PackageRepository

	// Services
	UserService         services.UserService
	JobService          services.JobService
	JobAppService       services.JobApplicationService
	SubscriptionService services.SubscriptionService
	TestService         services.TestSubmissionService
	PackageService      services.PackageService
}

// New wires repositories and services around the shared clients.
func New(
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	entClient *ent.Client,
	redisClient *redis.Client,
	notifier notify.Notifier,
	store objectstore.ObjectStore,
	validate *validator.Validate,
) *Application {
	a := &Application{
		Config:      cfg,
		DBPool:      dbPool,
		EntClient:   entClient,
		RedisClient: redisClient,
		Notifier:    notifier,
		ObjectStore: store,
		Validator:   validate,
	}

	a.UserRepo = postgres.NewUserRepo(entClient)
	a.JobRepo = postgres.NewJobRepo(entClient)
	a.JobAppRepo = postgres.NewJobApplicationRepo(entClient)
	a.SubscriptionRepo = postgres.NewSubscriptionRepo(entClient)
	a.TestRepo = postgres.NewSubmittedTestRepo(entClient)
	a.PackageRepo = postgres.NewPackageRepo(entClient)

	a.UserService = services.NewUserService(a.UserRepo, redisClient, cfg.JWT.Secret, cfg.JWT.Expiration, cfg.JWT.RefreshExpiration)
	a.JobService = services.NewJobService(a.JobRepo, a.UserRepo)
	a.JobAppService = services.NewJobApplicationService(a.JobAppRepo, a.JobRepo, a.UserRepo, a.TestRepo, entClient, store, notifier)
	a.SubscriptionService = services.NewSubscriptionService(a.SubscriptionRepo, a.PackageRepo, a.UserRepo, entClient, notifier)
	a.TestService = services.NewTestSubmissionService(a.TestRepo, a.JobAppRepo, a.JobRepo, a.SubscriptionRepo, entClient, store, notifier)
	a.PackageService = services.NewPackageService(a.PackageRepo)

	return a
}
