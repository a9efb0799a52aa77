package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	entjob "hirehub/ent/job"
	entuser "hirehub/ent/user"
	"hirehub/internal/mocks"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

// Helper to create a pointer to a float64
func ptrFloat64(f float64) *float64 { return &f }

// Helper to create a pointer to an int
func ptrInt(i int) *int { return &i }

// Helper to create a pointer to a string
func ptrString(s string) *string { return &s }

func setupJobServiceTest(t *testing.T) (context.Context, services.JobService, *mocks.MockJobRepository, *mocks.MockUserRepository) {
	t.Helper()
	mockJobRepo := new(mocks.MockJobRepository)
	mockUserRepo := new(mocks.MockUserRepository)
	jobService := services.NewJobService(mockJobRepo, mockUserRepo)
	ctx := context.Background()
	return ctx, jobService, mockJobRepo, mockUserRepo
}

func TestJobService_CreateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, mockUserRepo := setupJobServiceTest(t)

	employerID := uuid.New()
	req := &dto.CreateJobRequest{
		Title:       "Backend Engineer",
		Description: "Build the billing pipeline",
		Questions: []models.Question{
			{Type: models.QuestionOpen, Prompt: "Describe a production incident you handled", WordLimit: 300},
			{Type: models.QuestionMultipleChoice, Prompt: "Preferred stack?", Options: []string{"Go", "Rust"}},
		},
		EmployerID: employerID, // Set by handler in real scenario
	}

	expectedJob := &ent.Job{
		ID:         uuid.New(),
		EmployerID: employerID,
		Title:      req.Title,
		Status:     entjob.StatusActive,
	}

	mockUserRepo.On("GetByID", ctx, employerID).Return(&ent.User{ID: employerID, Role: entuser.RoleEmployer}, nil).Once()
	mockJobRepo.On("Create", ctx, req).Return(expectedJob, nil).Once()

	created, err := jobService.CreateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJob, created)
	// Newly authored questions get IDs assigned before persistence.
	assert.NotEqual(t, uuid.Nil, req.Questions[0].ID)
	assert.NotEqual(t, uuid.Nil, req.Questions[1].ID)
	mockJobRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
}

func TestJobService_CreateJob_Forbidden_CandidateRole(t *testing.T) {
	ctx, jobService, mockJobRepo, mockUserRepo := setupJobServiceTest(t)

	candidateID := uuid.New()
	req := &dto.CreateJobRequest{Title: "Backend Engineer", EmployerID: candidateID}

	mockUserRepo.On("GetByID", ctx, candidateID).Return(&ent.User{ID: candidateID, Role: entuser.RoleCandidate}, nil).Once()

	_, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockJobRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobService_CreateJob_InvalidQuestions(t *testing.T) {
	ctx, jobService, _, mockUserRepo := setupJobServiceTest(t)

	employerID := uuid.New()
	req := &dto.CreateJobRequest{
		Title:      "Backend Engineer",
		EmployerID: employerID,
		Questions: []models.Question{
			{Type: models.QuestionMultipleChoice, Prompt: "Pick one", Options: []string{"only one"}},
			{Type: models.QuestionOpen, Prompt: "", WordLimit: -5},
			{Type: models.QuestionType("essay"), Prompt: "Unknown kind"},
		},
	}

	mockUserRepo.On("GetByID", ctx, employerID).Return(&ent.User{ID: employerID, Role: entuser.RoleEmployer}, nil).Once()

	_, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))

	var vErr *services.AnswerValidationError
	require.True(t, errors.As(err, &vErr))
	// One for the short option list, one for the missing prompt, one for the
	// negative word limit, one for the unknown type.
	assert.Len(t, vErr.Violations, 4)
}

func TestJobService_CreateJob_RepoError(t *testing.T) {
	ctx, jobService, mockJobRepo, mockUserRepo := setupJobServiceTest(t)

	employerID := uuid.New()
	req := &dto.CreateJobRequest{Title: "Backend Engineer", EmployerID: employerID}
	repoErr := errors.New("db connection failed")

	mockUserRepo.On("GetByID", ctx, employerID).Return(&ent.User{ID: employerID, Role: entuser.RoleEmployer}, nil).Once()
	mockJobRepo.On("Create", ctx, req).Return(nil, repoErr).Once()

	_, err := jobService.CreateJob(ctx, req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "internal error during creating job")
	assert.True(t, errors.Is(err, repoErr))
}

func TestJobService_GetJobByID_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	expectedJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusActive}

	mockJobRepo.On("GetByID", ctx, jobID).Return(expectedJob, nil).Once()

	found, err := jobService.GetJobByID(ctx, jobID)

	require.NoError(t, err)
	assert.Equal(t, expectedJob, found)
}

func TestJobService_GetJobByID_NotFound(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	mockJobRepo.On("GetByID", ctx, jobID).Return(nil, storage.ErrNotFound).Once()

	_, err := jobService.GetJobByID(ctx, jobID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}

func TestJobService_ListActiveJobs_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	req := &dto.ListActiveJobsRequest{Limit: 5, Offset: 0}
	expectedJobs := []*ent.Job{
		{ID: uuid.New(), Status: entjob.StatusActive, EmployerID: uuid.New()},
		{ID: uuid.New(), Status: entjob.StatusActive, EmployerID: uuid.New()},
	}

	mockJobRepo.On("ListActive", ctx, 5, 0).Return(expectedJobs, nil).Once()

	jobs, err := jobService.ListActiveJobs(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedJobs, jobs)
}

func TestJobService_ListJobsByEmployer_RepoError(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	employerID := uuid.New()
	req := &dto.ListJobsByEmployerRequest{EmployerID: employerID, Limit: 10, Offset: 0}
	repoErr := errors.New("db query failed")

	mockJobRepo.On("ListByEmployer", ctx, req).Return(nil, repoErr).Once()

	_, err := jobService.ListJobsByEmployer(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, repoErr))
}

func TestJobService_UpdateJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateJobRequest{
		ID:     jobID,
		UserID: employerID,
		Title:  ptrString("Senior Backend Engineer"),
	}

	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive, Title: "Backend Engineer"}
	updatedJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive, Title: *req.Title}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()
	mockJobRepo.On("Update", ctx, req).Return(updatedJob, nil).Once()

	updated, err := jobService.UpdateJob(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedJob, updated)
}

func TestJobService_UpdateJob_Forbidden_WrongUser(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	req := &dto.UpdateJobRequest{ID: jobID, UserID: uuid.New(), Title: ptrString("New title")}
	existingJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusActive}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()

	_, err := jobService.UpdateJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobService_UpdateJob_InvalidState_Archived(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateJobRequest{ID: jobID, UserID: employerID, Title: ptrString("New title")}
	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusArchived}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()

	_, err := jobService.UpdateJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
	mockJobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestJobService_UpdateJob_InvalidQuestions(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	badQuestions := []models.Question{{Type: models.QuestionMultipleChoice, Prompt: "Pick", Options: nil}}
	req := &dto.UpdateJobRequest{ID: jobID, UserID: employerID, Questions: &badQuestions}
	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()

	_, err := jobService.UpdateJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
}

func TestJobService_UpdateJobStatus_Success_ActiveToClosed(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateJobStatusRequest{ID: jobID, UserID: employerID, Status: models.JobStatusClosed}

	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive}
	updatedJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusClosed}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()
	mockJobRepo.On("UpdateStatus", ctx, jobID, models.JobStatusClosed).Return(updatedJob, nil).Once()

	updated, err := jobService.UpdateJobStatus(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedJob, updated)
}

func TestJobService_UpdateJobStatus_Success_ClosedToActive(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateJobStatusRequest{ID: jobID, UserID: employerID, Status: models.JobStatusActive}

	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusClosed}
	updatedJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()
	mockJobRepo.On("UpdateStatus", ctx, jobID, models.JobStatusActive).Return(updatedJob, nil).Once()

	updated, err := jobService.UpdateJobStatus(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedJob, updated)
}

func TestJobService_UpdateJobStatus_NoOp_SameStatus(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateJobStatusRequest{ID: jobID, UserID: employerID, Status: models.JobStatusActive}
	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()

	updated, err := jobService.UpdateJobStatus(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, existingJob, updated)
	mockJobRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobService_UpdateJobStatus_InvalidTransition_ArchivedIsTerminal(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateJobStatusRequest{ID: jobID, UserID: employerID, Status: models.JobStatusActive}
	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusArchived}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()

	_, err := jobService.UpdateJobStatus(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "from Archived to Active")
}

func TestJobService_DeleteJob_Success(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.DeleteJobRequest{ID: jobID, UserID: employerID}
	existingJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusClosed}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()
	mockJobRepo.On("Delete", ctx, jobID).Return(nil).Once()

	err := jobService.DeleteJob(ctx, req)

	require.NoError(t, err)
	mockJobRepo.AssertExpectations(t)
}

func TestJobService_DeleteJob_Forbidden_WrongUser(t *testing.T) {
	ctx, jobService, mockJobRepo, _ := setupJobServiceTest(t)

	jobID := uuid.New()
	req := &dto.DeleteJobRequest{ID: jobID, UserID: uuid.New()}
	existingJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusActive}

	mockJobRepo.On("GetByID", ctx, jobID).Return(existingJob, nil).Once()

	err := jobService.DeleteJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	mockJobRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
