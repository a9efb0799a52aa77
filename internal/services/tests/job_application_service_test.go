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
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type jobAppServiceMocks struct {
	appRepo  *mocks.MockJobApplicationRepository
	jobRepo  *mocks.MockJobRepository
	userRepo *mocks.MockUserRepository
	testRepo *mocks.MockSubmittedTestRepository
}

func setupJobAppServiceTest(t *testing.T) (context.Context, services.JobApplicationService, jobAppServiceMocks) {
	t.Helper()
	m := jobAppServiceMocks{
		appRepo:  new(mocks.MockJobApplicationRepository),
		jobRepo:  new(mocks.MockJobRepository),
		userRepo: new(mocks.MockUserRepository),
		testRepo: new(mocks.MockSubmittedTestRepository),
	}
	svc := services.NewJobApplicationService(m.appRepo, m.jobRepo, m.userRepo, m.testRepo, nil, objectstore.Unchecked{}, notify.NoopNotifier{})
	return context.Background(), svc, m
}

func TestJobApplicationService_Apply_Success(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: jobID, CandidateID: candidateID, CVKey: "uploads/cv.pdf"}

	activeJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive}
	candidate := &ent.User{
		ID:      candidateID,
		Name:    "Ada Candidate",
		Email:   "ada@example.com",
		Role:    entuser.RoleCandidate,
		Country: "PT",
	}
	expectedCreateReq := &dto.CreateJobApplicationRequest{
		JobID:            jobID,
		CandidateID:      candidateID,
		CandidateName:    candidate.Name,
		CandidateEmail:   candidate.Email,
		CandidateCountry: candidate.Country,
		CVKey:            req.CVKey,
	}
	expectedApp := &ent.JobApplication{
		ID:          uuid.New(),
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      models.StatusPending,
		Outcome:     models.OutcomeInProgress,
	}

	m.jobRepo.On("GetByID", ctx, jobID).Return(activeJob, nil).Once()
	m.userRepo.On("GetByID", ctx, candidateID).Return(candidate, nil).Once()
	m.appRepo.On("GetByJobAndCandidate", ctx, jobID, candidateID).Return(nil, storage.ErrNotFound).Once()
	m.appRepo.On("Create", ctx, expectedCreateReq).Return(expectedApp, nil).Once()

	application, err := svc.Apply(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, expectedApp, application)
	m.appRepo.AssertExpectations(t)
}

func TestJobApplicationService_Apply_InvalidState_JobNotActive(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: jobID, CandidateID: uuid.New(), CVKey: "uploads/cv.pdf"}
	closedJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusClosed}

	m.jobRepo.On("GetByID", ctx, jobID).Return(closedJob, nil).Once()

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
	m.appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobApplicationService_Apply_Forbidden_OwnJob(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: jobID, CandidateID: employerID, CVKey: "uploads/cv.pdf"}
	activeJob := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive}

	m.jobRepo.On("GetByID", ctx, jobID).Return(activeJob, nil).Once()

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_Apply_Forbidden_EmployerRole(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	otherEmployerID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: jobID, CandidateID: otherEmployerID, CVKey: "uploads/cv.pdf"}
	activeJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusActive}

	m.jobRepo.On("GetByID", ctx, jobID).Return(activeJob, nil).Once()
	m.userRepo.On("GetByID", ctx, otherEmployerID).Return(&ent.User{ID: otherEmployerID, Role: entuser.RoleEmployer}, nil).Once()

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_Apply_Conflict_Duplicate(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	candidateID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: jobID, CandidateID: candidateID, CVKey: "uploads/cv.pdf"}
	activeJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusActive}
	existing := &ent.JobApplication{ID: uuid.New(), JobID: jobID, CandidateID: candidateID}

	m.jobRepo.On("GetByID", ctx, jobID).Return(activeJob, nil).Once()
	m.userRepo.On("GetByID", ctx, candidateID).Return(&ent.User{ID: candidateID, Role: entuser.RoleCandidate}, nil).Once()
	m.appRepo.On("GetByJobAndCandidate", ctx, jobID, candidateID).Return(existing, nil).Once()

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrConflict))
}

func TestJobApplicationService_Apply_Validation_CVDoesNotResolve(t *testing.T) {
	ctx := context.Background()
	m := jobAppServiceMocks{
		appRepo:  new(mocks.MockJobApplicationRepository),
		jobRepo:  new(mocks.MockJobRepository),
		userRepo: new(mocks.MockUserRepository),
		testRepo: new(mocks.MockSubmittedTestRepository),
	}
	store := new(mocks.MockObjectStore)
	svc := services.NewJobApplicationService(m.appRepo, m.jobRepo, m.userRepo, m.testRepo, nil, store, notify.NoopNotifier{})

	jobID := uuid.New()
	candidateID := uuid.New()
	req := &dto.ApplyToJobRequest{JobID: jobID, CandidateID: candidateID, CVKey: "uploads/missing.pdf"}
	activeJob := &ent.Job{ID: jobID, EmployerID: uuid.New(), Status: entjob.StatusActive}

	m.jobRepo.On("GetByID", ctx, jobID).Return(activeJob, nil).Once()
	m.userRepo.On("GetByID", ctx, candidateID).Return(&ent.User{ID: candidateID, Role: entuser.RoleCandidate}, nil).Once()
	m.appRepo.On("GetByJobAndCandidate", ctx, jobID, candidateID).Return(nil, storage.ErrNotFound).Once()
	store.On("Exists", ctx, "uploads/missing.pdf").Return(false, nil).Once()

	_, err := svc.Apply(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	assert.Contains(t, err.Error(), "cv reference does not resolve")
	m.appRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestJobApplicationService_GetByID_Authorization(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()
	employerID := uuid.New()
	strangerID := uuid.New()

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID}
	jobFound := &ent.Job{ID: jobID, EmployerID: employerID}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Times(3)
	m.jobRepo.On("GetByID", ctx, jobID).Return(jobFound, nil).Times(3)

	// The applicant and the job employer both see the application.
	found, err := svc.GetByID(ctx, &dto.GetApplicationRequest{ID: appID, UserID: candidateID})
	require.NoError(t, err)
	assert.Equal(t, application, found)

	found, err = svc.GetByID(ctx, &dto.GetApplicationRequest{ID: appID, UserID: employerID})
	require.NoError(t, err)
	assert.Equal(t, application, found)

	// Anyone else is refused.
	_, err = svc.GetByID(ctx, &dto.GetApplicationRequest{ID: appID, UserID: strangerID})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_ListByJob_Forbidden_NotEmployer(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	req := &dto.ListApplicationsByJobRequest{JobID: jobID, UserID: uuid.New(), Limit: 10}
	jobFound := &ent.Job{ID: jobID, EmployerID: uuid.New()}

	m.jobRepo.On("GetByID", ctx, jobID).Return(jobFound, nil).Once()

	_, err := svc.ListByJob(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	m.appRepo.AssertNotCalled(t, "ListByJob", mock.Anything, mock.Anything)
}

func TestJobApplicationService_Accept_Success(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.AcceptApplicationRequest{ApplicationID: appID, UserID: employerID}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusPending, Outcome: models.OutcomeInProgress}
	updatedApp := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.appRepo.On("TransitionStatus", ctx, appID, models.StatusPending, models.StatusAccepted).Return(updatedApp, nil).Once()

	accepted, err := svc.Accept(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedApp, accepted)
	m.appRepo.AssertExpectations(t)
}

func TestJobApplicationService_Accept_Forbidden_WrongEmployer(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	req := &dto.AcceptApplicationRequest{ApplicationID: appID, UserID: uuid.New()}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusPending}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: uuid.New()}, nil).Once()

	_, err := svc.Accept(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_Accept_InvalidTransition_NotPending(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.AcceptApplicationRequest{ApplicationID: appID, UserID: employerID}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusTestTaken, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.Accept(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "from TestTaken to Accepted")
	m.appRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobApplicationService_Accept_Rejected_Frozen(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.AcceptApplicationRequest{ApplicationID: appID, UserID: employerID}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusPending, Outcome: models.OutcomeRejected}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.Accept(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrApplicationRejected))
}

func TestJobApplicationService_Accept_StaleState_ReResolved(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.AcceptApplicationRequest{ApplicationID: appID, UserID: employerID}

	// The guard sees Pending but another request wins the conditional update.
	pendingApp := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusPending, Outcome: models.OutcomeInProgress}
	movedApp := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(pendingApp, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.appRepo.On("TransitionStatus", ctx, appID, models.StatusPending, models.StatusAccepted).Return(nil, storage.ErrStaleState).Once()
	m.appRepo.On("GetByID", ctx, appID).Return(movedApp, nil).Once()

	_, err := svc.Accept(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "from Accepted to Accepted")
}

func TestJobApplicationService_MarkPassed_Success(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.MarkPassedRequest{ApplicationID: appID, UserID: employerID}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusTestTaken, Outcome: models.OutcomeInProgress}
	updatedApp := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusPassed, Outcome: models.OutcomeInProgress}
	correct := true
	reviewedTest := &ent.SubmittedTest{
		ID:            uuid.New(),
		ApplicationID: appID,
		Answers: []models.Answer{
			{QuestionID: uuid.New(), Type: models.QuestionOpen, Text: "answer", IsCorrect: &correct},
		},
	}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.testRepo.On("GetByApplication", ctx, appID).Return(reviewedTest, nil).Once()
	m.appRepo.On("TransitionStatus", ctx, appID, models.StatusTestTaken, models.StatusPassed).Return(updatedApp, nil).Once()

	passed, err := svc.MarkPassed(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedApp, passed)
}

func TestJobApplicationService_MarkPassed_InvalidState_NotReviewed(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.MarkPassedRequest{ApplicationID: appID, UserID: employerID}

	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusTestTaken, Outcome: models.OutcomeInProgress}
	ungradedTest := &ent.SubmittedTest{
		ID:            uuid.New(),
		ApplicationID: appID,
		Answers: []models.Answer{
			{QuestionID: uuid.New(), Type: models.QuestionOpen, Text: "answer"},
			{QuestionID: uuid.New(), Type: models.QuestionMultipleChoice, OptionIndex: ptrInt(0)},
		},
	}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.testRepo.On("GetByApplication", ctx, appID).Return(ungradedTest, nil).Once()

	_, err := svc.MarkPassed(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
	assert.Contains(t, err.Error(), "has not been reviewed")
	m.appRepo.AssertNotCalled(t, "TransitionStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobApplicationService_MarkPassed_InvalidTransition_NoTestTaken(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.MarkPassedRequest{ApplicationID: appID, UserID: employerID}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.MarkPassed(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "from Accepted to Passed")
}

func TestJobApplicationService_SignContract_Forbidden_NotApplicant(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	req := &dto.SignContractRequest{ApplicationID: appID, UserID: uuid.New(), ContractKey: "uploads/contract.pdf"}
	application := &ent.JobApplication{ID: appID, CandidateID: uuid.New(), Status: models.StatusPassed, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()

	_, err := svc.SignContract(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestJobApplicationService_SignContract_InvalidTransition_NotPassed(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	candidateID := uuid.New()
	req := &dto.SignContractRequest{ApplicationID: appID, UserID: candidateID, ContractKey: "uploads/contract.pdf"}
	application := &ent.JobApplication{ID: appID, CandidateID: candidateID, Status: models.StatusTestTaken, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()

	_, err := svc.SignContract(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "from TestTaken to ContractSigned")
}

func TestJobApplicationService_ApproveContract_Success(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.ApproveContractRequest{ApplicationID: appID, UserID: employerID}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusContractSigned, Outcome: models.OutcomeInProgress}
	updatedApp := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusContractSigned, Outcome: models.OutcomeContractApproved}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.appRepo.On("SetOutcome", ctx, appID, models.OutcomeContractApproved).Return(updatedApp, nil).Once()

	approved, err := svc.ApproveContract(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedApp, approved)
}

func TestJobApplicationService_ApproveContract_InvalidTransition_NotSigned(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.ApproveContractRequest{ApplicationID: appID, UserID: employerID}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusPassed, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.ApproveContract(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	m.appRepo.AssertNotCalled(t, "SetOutcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobApplicationService_ApproveContract_InvalidState_AlreadySettled(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.ApproveContractRequest{ApplicationID: appID, UserID: employerID}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusContractSigned, Outcome: models.OutcomeContractApproved}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.ApproveContract(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidState))
}

func TestJobApplicationService_Reject_Success_AnyStatus(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()

	// Rejection is legal however far the application has advanced.
	for _, status := range []models.ApplicationStatus{
		models.StatusPending,
		models.StatusAccepted,
		models.StatusTestTaken,
		models.StatusPassed,
		models.StatusContractSigned,
	} {
		appID := uuid.New()
		req := &dto.RejectApplicationRequest{ApplicationID: appID, UserID: employerID}
		application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: status, Outcome: models.OutcomeInProgress}
		rejectedApp := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: status, Outcome: models.OutcomeRejected}

		m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
		m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
		m.appRepo.On("SetOutcome", ctx, appID, models.OutcomeRejected).Return(rejectedApp, nil).Once()

		rejected, err := svc.Reject(ctx, req)

		require.NoError(t, err, "rejecting from %s", status)
		assert.Equal(t, models.OutcomeRejected, rejected.Outcome)
	}
	m.appRepo.AssertExpectations(t)
}

func TestJobApplicationService_Reject_AlreadyRejected(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.RejectApplicationRequest{ApplicationID: appID, UserID: employerID}
	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusAccepted, Outcome: models.OutcomeRejected}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.Reject(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrApplicationRejected))
	m.appRepo.AssertNotCalled(t, "SetOutcome", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobApplicationService_UpdateNote_Success(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.UpdateApplicationNoteRequest{ApplicationID: appID, UserID: employerID, Note: "strong take-home"}

	application := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusTestTaken}
	updatedApp := &ent.JobApplication{ID: appID, JobID: jobID, Status: models.StatusTestTaken, Note: req.Note}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.appRepo.On("UpdateNote", ctx, appID, req.Note).Return(updatedApp, nil).Once()

	updated, err := svc.UpdateNote(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, updatedApp, updated)
}

func TestJobApplicationService_Delete_SoftByDefault(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()
	req := &dto.DeleteApplicationRequest{ApplicationID: appID, UserID: candidateID}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.userRepo.On("GetByID", ctx, candidateID).Return(&ent.User{ID: candidateID, Role: entuser.RoleCandidate}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: uuid.New()}, nil).Once()
	m.appRepo.On("SoftDelete", ctx, appID).Return(nil).Once()

	err := svc.Delete(ctx, req)

	require.NoError(t, err)
	m.appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestJobApplicationService_Delete_HardRequiresAdmin(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()
	// A candidate asking for a hard delete still gets a soft delete.
	req := &dto.DeleteApplicationRequest{ApplicationID: appID, UserID: candidateID, Hard: true}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.userRepo.On("GetByID", ctx, candidateID).Return(&ent.User{ID: candidateID, Role: entuser.RoleCandidate}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: uuid.New()}, nil).Once()
	m.appRepo.On("SoftDelete", ctx, appID).Return(nil).Once()

	err := svc.Delete(ctx, req)

	require.NoError(t, err)
	m.appRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestJobApplicationService_Delete_HardByAdmin(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	adminID := uuid.New()
	req := &dto.DeleteApplicationRequest{ApplicationID: appID, UserID: adminID, Hard: true}

	application := &ent.JobApplication{ID: appID, JobID: uuid.New(), CandidateID: uuid.New()}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.userRepo.On("GetByID", ctx, adminID).Return(&ent.User{ID: adminID, Role: entuser.RoleAdmin}, nil).Once()
	m.appRepo.On("Delete", ctx, appID).Return(nil).Once()

	err := svc.Delete(ctx, req)

	require.NoError(t, err)
	m.appRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestJobApplicationService_Delete_Forbidden_Stranger(t *testing.T) {
	ctx, svc, m := setupJobAppServiceTest(t)

	appID := uuid.New()
	jobID := uuid.New()
	strangerID := uuid.New()
	req := &dto.DeleteApplicationRequest{ApplicationID: appID, UserID: strangerID}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: uuid.New()}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.userRepo.On("GetByID", ctx, strangerID).Return(&ent.User{ID: strangerID, Role: entuser.RoleCandidate}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: uuid.New()}, nil).Once()

	err := svc.Delete(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}
