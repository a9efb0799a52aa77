package integration_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/services"
	"hirehub/internal/storage/postgres"
	"hirehub/internal/transport/dto"
)

func setupJobApplicationIntegrationTest(t *testing.T) (context.Context, services.JobApplicationService, *ent.Client) {
	t.Helper()
	pool := getTestClient(t)
	svc := services.NewJobApplicationService(
		postgres.NewJobApplicationRepo(pool),
		postgres.NewJobRepo(pool),
		postgres.NewUserRepo(pool),
		postgres.NewSubmittedTestRepo(pool),
		pool,
		objectstore.Unchecked{},
		notify.NoopNotifier{},
	)
	return context.Background(), svc, pool
}

func TestIntegration_SignContract_PersistsTransitionAndKeyTogether(t *testing.T) {
	ctx, svc, pool := setupJobApplicationIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "job_applications", "jobs", "users")

	employer := createTestUser(t, ctx, pool, "sign-employer@test.com", "Employer", models.RoleEmployer)
	candidate := createTestUser(t, ctx, pool, "sign-candidate@test.com", "Candidate", models.RoleCandidate)
	job := createTestJob(t, ctx, pool, employer.ID, nil)
	application := createTestApplication(t, ctx, pool, job.ID, candidate, models.StatusPassed)

	signed, err := svc.SignContract(ctx, &dto.SignContractRequest{
		ApplicationID: application.ID,
		UserID:        candidate.ID,
		ContractKey:   "uploads/contract-signed.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusContractSigned, signed.Status)

	// Status and contract key committed together.
	appRepo := postgres.NewJobApplicationRepo(pool)
	persisted, err := appRepo.GetByID(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusContractSigned, persisted.Status)
	assert.Equal(t, "uploads/contract-signed.pdf", persisted.ContractKey)
}

func TestIntegration_Apply_SoftDeletedApplicationDoesNotBlockReapply(t *testing.T) {
	ctx, _, pool := setupJobApplicationIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "job_applications", "jobs", "users")

	employer := createTestUser(t, ctx, pool, "reapply-employer@test.com", "Employer", models.RoleEmployer)
	candidate := createTestUser(t, ctx, pool, "reapply-candidate@test.com", "Candidate", models.RoleCandidate)
	job := createTestJob(t, ctx, pool, employer.ID, nil)
	application := createTestApplication(t, ctx, pool, job.ID, candidate, models.StatusPending)

	appRepo := postgres.NewJobApplicationRepo(pool)
	require.NoError(t, appRepo.SoftDelete(ctx, application.ID))

	// The unique (job, candidate) constraint only covers live rows, so a
	// fresh application for the same pair must go through.
	second, err := appRepo.Create(ctx, &dto.CreateJobApplicationRequest{
		JobID:          job.ID,
		CandidateID:    candidate.ID,
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		CVKey:          "uploads/cv-v2.pdf",
	})
	require.NoError(t, err)
	assert.NotEqual(t, application.ID, second.ID)
	assert.Equal(t, models.StatusPending, second.Status)
}

func TestIntegration_SignContract_RequiresPassedStatus(t *testing.T) {
	ctx, svc, pool := setupJobApplicationIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "job_applications", "jobs", "users")

	employer := createTestUser(t, ctx, pool, "sign-early-employer@test.com", "Employer", models.RoleEmployer)
	candidate := createTestUser(t, ctx, pool, "sign-early-candidate@test.com", "Candidate", models.RoleCandidate)
	job := createTestJob(t, ctx, pool, employer.ID, nil)
	application := createTestApplication(t, ctx, pool, job.ID, candidate, models.StatusAccepted)

	_, err := svc.SignContract(ctx, &dto.SignContractRequest{
		ApplicationID: application.ID,
		UserID:        candidate.ID,
		ContractKey:   "uploads/contract-signed.pdf",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))

	// The row is untouched.
	appRepo := postgres.NewJobApplicationRepo(pool)
	persisted, err := appRepo.GetByID(ctx, application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, persisted.Status)
	assert.Empty(t, persisted.ContractKey)
}
