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
	"hirehub/internal/mocks"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/services"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type testSubmissionMocks struct {
	testRepo *mocks.MockSubmittedTestRepository
	appRepo  *mocks.MockJobApplicationRepository
	jobRepo  *mocks.MockJobRepository
	subRepo  *mocks.MockSubscriptionRepository
}

func setupTestSubmissionServiceTest(t *testing.T, store objectstore.ObjectStore) (context.Context, services.TestSubmissionService, testSubmissionMocks) {
	t.Helper()
	m := testSubmissionMocks{
		testRepo: new(mocks.MockSubmittedTestRepository),
		appRepo:  new(mocks.MockJobApplicationRepository),
		jobRepo:  new(mocks.MockJobRepository),
		subRepo:  new(mocks.MockSubscriptionRepository),
	}
	if store == nil {
		store = objectstore.Unchecked{}
	}
	svc := services.NewTestSubmissionService(m.testRepo, m.appRepo, m.jobRepo, m.subRepo, nil, store, notify.NoopNotifier{})
	return context.Background(), svc, m
}

func TestTestSubmissionService_SubmitTest_Forbidden_NotOwnApplication(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: uuid.New(), VideoKey: "uploads/video.webm"}
	application := &ent.JobApplication{ID: appID, CandidateID: uuid.New(), Status: models.StatusAccepted}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestTestSubmissionService_SubmitTest_Rejected_Frozen(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	candidateID := uuid.New()
	req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/video.webm"}
	application := &ent.JobApplication{ID: appID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeRejected}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrApplicationRejected))
}

func TestTestSubmissionService_SubmitTest_AlreadySubmitted(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	candidateID := uuid.New()

	// Any status at or past TestTaken means the one-shot test was consumed.
	for _, status := range []models.ApplicationStatus{
		models.StatusTestTaken,
		models.StatusPassed,
		models.StatusContractSigned,
	} {
		appID := uuid.New()
		req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/video.webm"}
		application := &ent.JobApplication{ID: appID, CandidateID: candidateID, Status: status, Outcome: models.OutcomeInProgress}

		m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()

		_, err := svc.SubmitTest(ctx, req)

		require.Error(t, err, "submitting at %s", status)
		assert.True(t, errors.Is(err, services.ErrAlreadySubmitted))
	}
}

func TestTestSubmissionService_SubmitTest_InvalidTransition_Pending(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	candidateID := uuid.New()
	req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/video.webm"}
	application := &ent.JobApplication{ID: appID, CandidateID: candidateID, Status: models.StatusPending, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInvalidTransition))
	assert.Contains(t, err.Error(), "from Pending to TestTaken")
}

func TestTestSubmissionService_SubmitTest_NoSubscription(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/video.webm"}
	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNoSubscription))
	m.testRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTestSubmissionService_SubmitTest_InsufficientCredits(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/video.webm"}
	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(&ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 0}, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrInsufficientCredits))
	m.testRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTestSubmissionService_SubmitTest_Validation_VideoDoesNotResolve(t *testing.T) {
	store := new(mocks.MockObjectStore)
	ctx, svc, m := setupTestSubmissionServiceTest(t, store)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()
	req := &dto.SubmitTestRequest{ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/missing.webm"}
	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(&ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 2}, nil).Once()
	store.On("Exists", ctx, "uploads/missing.webm").Return(false, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))
	assert.Contains(t, err.Error(), "video reference does not resolve")
}

func TestTestSubmissionService_SubmitTest_Validation_AnswerViolations(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()

	openQ := models.Question{ID: uuid.New(), Type: models.QuestionOpen, Prompt: "Tell us about yourself", WordLimit: 3}
	mcQ := models.Question{ID: uuid.New(), Type: models.QuestionMultipleChoice, Prompt: "Pick one", Options: []string{"A", "B"}}
	fileQ := models.Question{ID: uuid.New(), Type: models.QuestionFile, Prompt: "Attach your portfolio"}

	req := &dto.SubmitTestRequest{
		ApplicationID: appID,
		CandidateID:   candidateID,
		VideoKey:      "uploads/video.webm",
		Answers: []dto.AnswerInput{
			{QuestionID: openQ.ID, Text: "way too many words in this answer"}, // over the word limit
			{QuestionID: mcQ.ID, OptionIndex: ptrInt(5)},                      // out of range
			{QuestionID: fileQ.ID},                                           // missing attachment key
		},
	}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}
	jobFound := &ent.Job{ID: jobID, EmployerID: employerID, Status: entjob.StatusActive, Questions: []models.Question{openQ, mcQ, fileQ}}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(jobFound, nil).Once()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(&ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 2}, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrValidation))

	var vErr *services.AnswerValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Len(t, vErr.Violations, 3)
	assert.Contains(t, vErr.Violations[0].Message, "word limit")
	assert.Contains(t, vErr.Violations[1].Message, "out of range")
	assert.Contains(t, vErr.Violations[2].Message, "attachment key")
	m.testRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTestSubmissionService_SubmitTest_Validation_MissingAnswer(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	candidateID := uuid.New()

	q1 := models.Question{ID: uuid.New(), Type: models.QuestionOpen, Prompt: "First"}
	q2 := models.Question{ID: uuid.New(), Type: models.QuestionOpen, Prompt: "Second"}

	req := &dto.SubmitTestRequest{
		ApplicationID: appID,
		CandidateID:   candidateID,
		VideoKey:      "uploads/video.webm",
		Answers:       []dto.AnswerInput{{QuestionID: q1.ID, Text: "only one"}},
	}

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusAccepted, Outcome: models.OutcomeInProgress}
	jobFound := &ent.Job{ID: jobID, EmployerID: employerID, Questions: []models.Question{q1, q2}}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(jobFound, nil).Once()
	m.subRepo.On("GetByEmployer", ctx, employerID).Return(&ent.Subscription{ID: uuid.New(), EmployerID: employerID, Credits: 1}, nil).Once()

	_, err := svc.SubmitTest(ctx, req)

	require.Error(t, err)
	var vErr *services.AnswerValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Violations[0].Message, "expected 2 answers, got 1")
}

func TestTestSubmissionService_GetByApplication_Authorization(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	appID := uuid.New()
	jobID := uuid.New()
	candidateID := uuid.New()
	employerID := uuid.New()

	application := &ent.JobApplication{ID: appID, JobID: jobID, CandidateID: candidateID, Status: models.StatusTestTaken}
	jobFound := &ent.Job{ID: jobID, EmployerID: employerID}
	submitted := &ent.SubmittedTest{ID: uuid.New(), ApplicationID: appID, CandidateID: candidateID, VideoKey: "uploads/video.webm"}

	m.appRepo.On("GetByID", ctx, appID).Return(application, nil).Times(3)
	m.jobRepo.On("GetByID", ctx, jobID).Return(jobFound, nil).Times(3)
	m.testRepo.On("GetByApplication", ctx, appID).Return(submitted, nil).Twice()

	found, err := svc.GetByApplication(ctx, &dto.GetSubmittedTestRequest{ApplicationID: appID, UserID: candidateID})
	require.NoError(t, err)
	assert.Equal(t, submitted, found)

	found, err = svc.GetByApplication(ctx, &dto.GetSubmittedTestRequest{ApplicationID: appID, UserID: employerID})
	require.NoError(t, err)
	assert.Equal(t, submitted, found)

	_, err = svc.GetByApplication(ctx, &dto.GetSubmittedTestRequest{ApplicationID: appID, UserID: uuid.New()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
}

func TestTestSubmissionService_MarkQuestionCorrect_Success(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	testID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	questionID := uuid.New()
	otherQuestionID := uuid.New()
	req := &dto.MarkQuestionCorrectRequest{TestID: testID, QuestionID: questionID, UserID: employerID, IsCorrect: true}

	submitted := &ent.SubmittedTest{
		ID:            testID,
		ApplicationID: appID,
		Answers: []models.Answer{
			{QuestionID: questionID, Type: models.QuestionOpen, Text: "answer"},
			{QuestionID: otherQuestionID, Type: models.QuestionOpen, Text: "other"},
		},
	}

	m.testRepo.On("GetByID", ctx, testID).Return(submitted, nil).Once()
	m.appRepo.On("GetByID", ctx, appID).Return(&ent.JobApplication{ID: appID, JobID: jobID}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.testRepo.On("UpdateAnswers", ctx, testID, mock.MatchedBy(func(answers []models.Answer) bool {
		if len(answers) != 2 {
			return false
		}
		// Only the targeted answer carries the verdict.
		return answers[0].IsCorrect != nil && *answers[0].IsCorrect && answers[1].IsCorrect == nil
	})).Return(submitted, nil).Once()

	_, err := svc.MarkQuestionCorrect(ctx, req)

	require.NoError(t, err)
	// The stored record is never mutated in place.
	assert.Nil(t, submitted.Answers[0].IsCorrect)
	m.testRepo.AssertExpectations(t)
}

func TestTestSubmissionService_MarkQuestionCorrect_OverwritesVerdict(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	testID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	questionID := uuid.New()
	req := &dto.MarkQuestionCorrectRequest{TestID: testID, QuestionID: questionID, UserID: employerID, IsCorrect: false}

	wasCorrect := true
	submitted := &ent.SubmittedTest{
		ID:            testID,
		ApplicationID: appID,
		Answers:       []models.Answer{{QuestionID: questionID, Type: models.QuestionOpen, Text: "answer", IsCorrect: &wasCorrect}},
	}

	m.testRepo.On("GetByID", ctx, testID).Return(submitted, nil).Once()
	m.appRepo.On("GetByID", ctx, appID).Return(&ent.JobApplication{ID: appID, JobID: jobID}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()
	m.testRepo.On("UpdateAnswers", ctx, testID, mock.MatchedBy(func(answers []models.Answer) bool {
		return len(answers) == 1 && answers[0].IsCorrect != nil && !*answers[0].IsCorrect
	})).Return(submitted, nil).Once()

	_, err := svc.MarkQuestionCorrect(ctx, req)

	require.NoError(t, err)
}

func TestTestSubmissionService_MarkQuestionCorrect_Forbidden_NotEmployer(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	testID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	req := &dto.MarkQuestionCorrectRequest{TestID: testID, QuestionID: uuid.New(), UserID: uuid.New(), IsCorrect: true}

	submitted := &ent.SubmittedTest{ID: testID, ApplicationID: appID, Answers: []models.Answer{}}

	m.testRepo.On("GetByID", ctx, testID).Return(submitted, nil).Once()
	m.appRepo.On("GetByID", ctx, appID).Return(&ent.JobApplication{ID: appID, JobID: jobID}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: uuid.New()}, nil).Once()

	_, err := svc.MarkQuestionCorrect(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrForbidden))
	m.testRepo.AssertNotCalled(t, "UpdateAnswers", mock.Anything, mock.Anything, mock.Anything)
}

func TestTestSubmissionService_MarkQuestionCorrect_UnknownQuestion(t *testing.T) {
	ctx, svc, m := setupTestSubmissionServiceTest(t, nil)

	testID := uuid.New()
	appID := uuid.New()
	jobID := uuid.New()
	employerID := uuid.New()
	req := &dto.MarkQuestionCorrectRequest{TestID: testID, QuestionID: uuid.New(), UserID: employerID, IsCorrect: true}

	submitted := &ent.SubmittedTest{
		ID:            testID,
		ApplicationID: appID,
		Answers:       []models.Answer{{QuestionID: uuid.New(), Type: models.QuestionOpen, Text: "answer"}},
	}

	m.testRepo.On("GetByID", ctx, testID).Return(submitted, nil).Once()
	m.appRepo.On("GetByID", ctx, appID).Return(&ent.JobApplication{ID: appID, JobID: jobID}, nil).Once()
	m.jobRepo.On("GetByID", ctx, jobID).Return(&ent.Job{ID: jobID, EmployerID: employerID}, nil).Once()

	_, err := svc.MarkQuestionCorrect(ctx, req)

	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
}
