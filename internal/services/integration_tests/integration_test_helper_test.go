package integration_tests

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/storage/postgres"
	"hirehub/internal/transport/dto"
)

var testDB *ent.Client

// getTestClient establishes an ent client against the test database.
// It reads the DSN from the TEST_DATABASE_URL environment variable and
// skips the test when no database is available.
func getTestClient(t *testing.T) *ent.Client {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	if testDB != nil {
		return testDB
	}

	db, err := sql.Open("pgx", dsn)
	require.NoError(t, err, "Failed to open test database connection")

	entDriver := entsql.OpenDB(dialect.Postgres, db)
	testDB = ent.NewClient(ent.Driver(entDriver))

	// Run migrations before handing out the client so the schema exists
	runMigrations(t)

	return testDB
}

// runMigrations runs database migrations up.
func runMigrations(t *testing.T) {
	t.Helper()

	err := testDB.Schema.Create(context.Background())
	require.NoError(t, err)
	log.Println("Ent client connected and schema created/checked.")
}

// cleanupTables truncates specified tables for test isolation. Pass child
// tables before their parents so foreign keys do not get in the way.
func cleanupTables(ctx context.Context, t *testing.T, pool *ent.Client, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return // Nothing to clean
	}

	for _, table := range tables {
		switch table {
		case "users":
			_, err := pool.User.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate users table")
		case "jobs":
			_, err := pool.Job.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate jobs table")
		case "job_applications":
			_, err := pool.JobApplication.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate job_applications table")
		case "submitted_tests":
			_, err := pool.SubmittedTest.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate submitted_tests table")
		case "subscriptions":
			_, err := pool.Subscription.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate subscriptions table")
		case "subscription_history":
			_, err := pool.SubscriptionHistory.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate subscription_history table")
		case "packages":
			_, err := pool.CreditPackage.Delete().Exec(ctx)
			require.NoError(t, err, "Failed to truncate packages table")
		default:
		}
	}
	log.Printf("Cleaned tables: %s", strings.Join(tables, ", "))
}

// Helper function to create a user for tests
func createTestUser(t *testing.T, ctx context.Context, pool *ent.Client, email, name string, role models.Role) *ent.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(pool)
	userReq := &dto.CreateUserRequest{
		Email:    email,
		Name:     name,
		Password: "$2a$10$integrationtesthashplaceholder00000000000000000000000",
		Role:     role,
	}
	user, err := userRepo.Create(ctx, userReq)
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

// Helper function to create a job with its question set for tests
func createTestJob(t *testing.T, ctx context.Context, pool *ent.Client, employerID uuid.UUID, questions []models.Question) *ent.Job {
	t.Helper()
	jobRepo := postgres.NewJobRepo(pool)
	jobReq := &dto.CreateJobRequest{
		Title:      "Backend Engineer",
		EmployerID: employerID,
		Questions:  questions,
	}
	created, err := jobRepo.Create(ctx, jobReq)
	require.NoError(t, err, "Failed to create test job for employer %s", employerID)
	require.NotNil(t, created)
	return created
}

// statusPath is the forward walk of the application state machine. Value 2
// is reserved, so TestTaken follows Accepted directly.
var statusPath = []models.ApplicationStatus{
	models.StatusPending,
	models.StatusAccepted,
	models.StatusTestTaken,
	models.StatusPassed,
	models.StatusContractSigned,
}

// Helper function to create an application and walk it to the given status
func createTestApplication(t *testing.T, ctx context.Context, pool *ent.Client, jobID uuid.UUID, candidate *ent.User, status models.ApplicationStatus) *ent.JobApplication {
	t.Helper()
	appRepo := postgres.NewJobApplicationRepo(pool)
	application, err := appRepo.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:          jobID,
		CandidateID:    candidate.ID,
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		CVKey:          "uploads/cv.pdf",
	})
	require.NoError(t, err, "Failed to create test application for job %s", jobID)

	for i := 0; i+1 < len(statusPath); i++ {
		if statusPath[i+1] > status {
			break
		}
		application, err = appRepo.TransitionStatus(ctx, application.ID, statusPath[i], statusPath[i+1])
		require.NoError(t, err, "Failed to advance test application to %s", statusPath[i+1])
	}
	require.Equal(t, status, application.Status)
	return application
}

// Helper function to create a package template for tests
func createTestPackage(t *testing.T, ctx context.Context, pool *ent.Client, title string, credits int, packageType models.PackageType) *ent.CreditPackage {
	t.Helper()
	pkgRepo := postgres.NewPackageRepo(pool)
	pkg, err := pkgRepo.Create(ctx, &dto.CreatePackageRequest{
		Title:           title,
		PricePerCredit:  2.5,
		NumberOfCredits: credits,
		PackageType:     packageType,
	})
	require.NoError(t, err, "Failed to create test package %s", title)
	return pkg
}
