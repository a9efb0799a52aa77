package integration_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/storage/postgres"
	"hirehub/internal/transport/dto"
)

func setupTestSubmissionIntegrationTest(t *testing.T) (context.Context, services.TestSubmissionService, *ent.Client) {
	t.Helper()
	pool := getTestClient(t)
	svc := services.NewTestSubmissionService(
		postgres.NewSubmittedTestRepo(pool),
		postgres.NewJobApplicationRepo(pool),
		postgres.NewJobRepo(pool),
		postgres.NewSubscriptionRepo(pool),
		pool,
		objectstore.Unchecked{},
		notify.NoopNotifier{},
	)
	return context.Background(), svc, pool
}

// submissionFixture wires up an employer with a funded subscription, a job
// with one open question and a candidate accepted for it.
type submissionFixture struct {
	employer    *ent.User
	candidate   *ent.User
	job         *ent.Job
	application *ent.JobApplication
	question    models.Question
}

func newSubmissionFixture(t *testing.T, ctx context.Context, pool *ent.Client, emailPrefix string, credits int) submissionFixture {
	t.Helper()

	employer := createTestUser(t, ctx, pool, emailPrefix+"-employer@test.com", "Employer", models.RoleEmployer)
	candidate := createTestUser(t, ctx, pool, emailPrefix+"-candidate@test.com", "Candidate", models.RoleCandidate)

	pkg := createTestPackage(t, ctx, pool, "Standard", credits, models.PackageTypeStandard)
	subSvc := services.NewSubscriptionService(
		postgres.NewSubscriptionRepo(pool),
		postgres.NewPackageRepo(pool),
		postgres.NewUserRepo(pool),
		pool,
		notify.NoopNotifier{},
	)
	_, err := subSvc.GrantPackage(ctx, &dto.GrantPackageRequest{
		EmployerID:    employer.ID,
		PackageID:     pkg.ID,
		TransactionID: "txn_" + emailPrefix,
	})
	require.NoError(t, err)

	question := models.Question{
		ID:        uuid.New(),
		Type:      models.QuestionOpen,
		Prompt:    "Describe your approach to schema migrations.",
		WordLimit: 200,
	}
	job := createTestJob(t, ctx, pool, employer.ID, []models.Question{question})
	application := createTestApplication(t, ctx, pool, job.ID, candidate, models.StatusAccepted)

	return submissionFixture{
		employer:    employer,
		candidate:   candidate,
		job:         job,
		application: application,
		question:    question,
	}
}

func submissionCleanupTables() []string {
	return []string{
		"submitted_tests", "job_applications", "jobs",
		"subscription_history", "subscriptions", "packages", "users",
	}
}

func TestIntegration_SubmitTest_CommitsRowStatusAndDebit(t *testing.T) {
	ctx, svc, pool := setupTestSubmissionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, submissionCleanupTables()...)

	fix := newSubmissionFixture(t, ctx, pool, "submit-commit", 5)

	submitted, err := svc.SubmitTest(ctx, &dto.SubmitTestRequest{
		ApplicationID: fix.application.ID,
		CandidateID:   fix.candidate.ID,
		VideoKey:      "uploads/answer-video.mp4",
		Answers: []dto.AnswerInput{
			{QuestionID: fix.question.ID, Text: "Expand, backfill, then contract."},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, submitted)

	// All three effects of the submission landed together.
	testRepo := postgres.NewSubmittedTestRepo(pool)
	persisted, err := testRepo.GetByApplication(ctx, fix.application.ID)
	require.NoError(t, err)
	require.Len(t, persisted.Answers, 1)
	assert.Equal(t, fix.question.ID, persisted.Answers[0].QuestionID)

	appRepo := postgres.NewJobApplicationRepo(pool)
	application, err := appRepo.GetByID(ctx, fix.application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusTestTaken, application.Status)

	subRepo := postgres.NewSubscriptionRepo(pool)
	sub, err := subRepo.GetByEmployer(ctx, fix.employer.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, sub.Credits)
}

func TestIntegration_SubmitTest_ExistingRowRollsBackStatusAndDebit(t *testing.T) {
	ctx, svc, pool := setupTestSubmissionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, submissionCleanupTables()...)

	fix := newSubmissionFixture(t, ctx, pool, "submit-conflict", 5)

	// A test row already exists for the application while the status still
	// reads Accepted. The insert inside the transaction hits the unique
	// constraint, so neither the status advance nor the debit may stick.
	testRepo := postgres.NewSubmittedTestRepo(pool)
	_, err := testRepo.Create(ctx, &dto.CreateSubmittedTestRequest{
		ApplicationID: fix.application.ID,
		CandidateID:   fix.candidate.ID,
		VideoKey:      "uploads/earlier-video.mp4",
		Answers: []models.Answer{
			{QuestionID: fix.question.ID, Type: models.QuestionOpen, Text: "First attempt."},
		},
	})
	require.NoError(t, err)

	_, err = svc.SubmitTest(ctx, &dto.SubmitTestRequest{
		ApplicationID: fix.application.ID,
		CandidateID:   fix.candidate.ID,
		VideoKey:      "uploads/answer-video.mp4",
		Answers: []dto.AnswerInput{
			{QuestionID: fix.question.ID, Text: "Second attempt."},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrAlreadySubmitted))

	appRepo := postgres.NewJobApplicationRepo(pool)
	application, err := appRepo.GetByID(ctx, fix.application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, application.Status)

	subRepo := postgres.NewSubscriptionRepo(pool)
	sub, err := subRepo.GetByEmployer(ctx, fix.employer.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, sub.Credits)

	// The original row survives untouched.
	persisted, err := testRepo.GetByApplication(ctx, fix.application.ID)
	require.NoError(t, err)
	assert.Equal(t, "uploads/earlier-video.mp4", persisted.VideoKey)
}

func TestIntegration_SubmitTest_SpentBalanceRejectedBeforePersisting(t *testing.T) {
	ctx, svc, pool := setupTestSubmissionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, submissionCleanupTables()...)

	fix := newSubmissionFixture(t, ctx, pool, "submit-broke", 1)

	subRepo := postgres.NewSubscriptionRepo(pool)
	_, err := subRepo.DebitCredit(ctx, fix.employer.ID)
	require.NoError(t, err)

	_, err = svc.SubmitTest(ctx, &dto.SubmitTestRequest{
		ApplicationID: fix.application.ID,
		CandidateID:   fix.candidate.ID,
		VideoKey:      "uploads/answer-video.mp4",
		Answers: []dto.AnswerInput{
			{QuestionID: fix.question.ID, Text: "An answer nobody will read."},
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInsufficientCredits))

	// Nothing was persisted for the candidate.
	testRepo := postgres.NewSubmittedTestRepo(pool)
	_, err = testRepo.GetByApplication(ctx, fix.application.ID)
	assert.True(t, errors.Is(err, storage.ErrNotFound))

	appRepo := postgres.NewJobApplicationRepo(pool)
	application, err := appRepo.GetByID(ctx, fix.application.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, application.Status)
}
