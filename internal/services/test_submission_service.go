package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type testSubmissionService struct {
	testRepo storage.SubmittedTestRepository
	appRepo  storage.JobApplicationRepository
	jobRepo  storage.JobRepository
	subRepo  storage.SubscriptionRepository
	db       *ent.Client
	store    objectstore.ObjectStore
	notifier notify.Notifier
}

// NewTestSubmissionService creates a new instance of TestSubmissionService.
func NewTestSubmissionService(
	testRepo storage.SubmittedTestRepository,
	appRepo storage.JobApplicationRepository,
	jobRepo storage.JobRepository,
	subRepo storage.SubscriptionRepository,
	db *ent.Client,
	store objectstore.ObjectStore,
	notifier notify.Notifier,
) TestSubmissionService {
	return &testSubmissionService{
		testRepo: testRepo,
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		subRepo:  subRepo,
		db:       db,
		store:    store,
		notifier: notifier,
	}
}

// SubmitTest records a candidate's test for an accepted application. The
// checks run in a fixed order so the candidate always sees the most
// fundamental failure first; when all pass, the test row, the status advance
// and the employer credit debit commit as one transaction.
func (s *testSubmissionService) SubmitTest(ctx context.Context, req *dto.SubmitTestRequest) (*ent.SubmittedTest, error) {
	// 1. The application must exist and belong to the caller.
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}
	if application.CandidateID != req.CandidateID {
		log.Printf("SubmitTest: Forbidden attempt by user %s on application %s", req.CandidateID, req.ApplicationID)
		return nil, ErrForbidden
	}

	// 2. A rejected application is frozen.
	if application.Outcome == models.OutcomeRejected {
		return nil, fmt.Errorf("%w: cannot submit a test", ErrApplicationRejected)
	}
	if application.Outcome != models.OutcomeInProgress {
		return nil, fmt.Errorf("%w: application outcome is already %s", ErrInvalidState, application.Outcome)
	}

	// 3. Only an accepted application grants test access. A repeat submit
	// surfaces as its own kind so the client can say "already taken".
	if application.Status != models.StatusAccepted {
		if application.Status == models.StatusTestTaken || application.Status > models.StatusTestTaken {
			return nil, ErrAlreadySubmitted
		}
		return nil, invalidTransition(application.Status, models.StatusTestTaken)
	}

	// 4. The employer must have a funded subscription before any work is
	// persisted. The authoritative debit happens inside the transaction; this
	// early read only spares the candidate a validation round on a dead job.
	jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", application.JobID))
	}
	sub, err := s.subRepo.GetByEmployer(ctx, jobFound.EmployerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoSubscription
		}
		return nil, mapRepoError(err, fmt.Sprintf("fetching subscription for employer %s", jobFound.EmployerID))
	}
	if sub.Credits <= 0 {
		return nil, ErrInsufficientCredits
	}

	// 5. The recording must resolve before the answers are inspected.
	exists, err := s.store.Exists(ctx, req.VideoKey)
	if err != nil {
		return nil, fmt.Errorf("internal error checking video reference: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: video reference does not resolve", ErrValidation)
	}

	// 6. Answers must match the job's question schema exactly.
	answers := make([]models.Answer, 0, len(req.Answers))
	for _, a := range req.Answers {
		answers = append(answers, models.Answer{
			QuestionID:  a.QuestionID,
			Text:        a.Text,
			OptionIndex: a.OptionIndex,
			FileKey:     a.FileKey,
		})
	}
	resolved, err := validateAnswers(ctx, jobFound.Questions, answers, s.store)
	if err != nil {
		return nil, err
	}

	// All preconditions hold. Persist atomically: test row, status advance,
	// credit debit. Any failure rolls the whole submission back.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("SubmitTest: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback()

	txTestRepo := s.testRepo.WithTx(tx)
	txAppRepo := s.appRepo.WithTx(tx)
	txSubRepo := s.subRepo.WithTx(tx)

	submitted, err := txTestRepo.Create(ctx, &dto.CreateSubmittedTestRequest{
		ApplicationID: req.ApplicationID,
		CandidateID:   req.CandidateID,
		VideoKey:      req.VideoKey,
		Answers:       resolved,
	})
	if err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return nil, ErrAlreadySubmitted
		}
		return nil, mapRepoError(err, "creating submitted test")
	}

	if _, err := txAppRepo.TransitionStatus(ctx, application.ID, models.StatusAccepted, models.StatusTestTaken); err != nil {
		if errors.Is(err, storage.ErrStaleState) {
			// Lost the race with a concurrent submit or a rejection.
			return nil, ErrAlreadySubmitted
		}
		return nil, mapRepoError(err, "advancing application status")
	}

	if _, err := txSubRepo.DebitCredit(ctx, jobFound.EmployerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNoSubscription
		}
		if errors.Is(err, storage.ErrInsufficientCredits) {
			return nil, ErrInsufficientCredits
		}
		return nil, mapRepoError(err, "debiting employer credit")
	}

	if err := tx.Commit(); err != nil {
		log.Printf("SubmitTest: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	log.Printf("Test submitted for application %s by candidate %s", req.ApplicationID, req.CandidateID)
	s.dispatch(notify.KindTestSubmitted, jobFound.EmployerID, submitted)
	return submitted, nil
}

// GetByApplication retrieves the submitted test for review. Visible to the
// candidate who took it and the employer who owns the job.
func (s *testSubmissionService) GetByApplication(ctx context.Context, req *dto.GetSubmittedTestRequest) (*ent.SubmittedTest, error) {
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", application.JobID))
	}

	if req.UserID != application.CandidateID && req.UserID != jobFound.EmployerID {
		log.Printf("GetByApplication: Forbidden attempt by user %s on application %s", req.UserID, req.ApplicationID)
		return nil, ErrForbidden
	}

	submitted, err := s.testRepo.GetByApplication(ctx, req.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching submitted test for application %s", req.ApplicationID))
	}
	return submitted, nil
}

// MarkQuestionCorrect records the employer's verdict on one answer. Repeated
// calls overwrite the previous verdict; the latest judgement wins.
func (s *testSubmissionService) MarkQuestionCorrect(ctx context.Context, req *dto.MarkQuestionCorrectRequest) (*ent.SubmittedTest, error) {
	submitted, err := s.testRepo.GetByID(ctx, req.TestID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching submitted test %s", req.TestID))
	}

	application, err := s.appRepo.GetByID(ctx, submitted.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", submitted.ApplicationID))
	}
	jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s", application.JobID))
	}
	if jobFound.EmployerID != req.UserID {
		log.Printf("MarkQuestionCorrect: Forbidden attempt by user %s on test %s", req.UserID, req.TestID)
		return nil, ErrForbidden
	}

	found := false
	answers := make([]models.Answer, len(submitted.Answers))
	copy(answers, submitted.Answers)
	for i := range answers {
		if answers[i].QuestionID == req.QuestionID {
			verdict := req.IsCorrect
			answers[i].IsCorrect = &verdict
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("%w: question %s has no answer on test %s", ErrNotFound, req.QuestionID, req.TestID)
	}

	updated, err := s.testRepo.UpdateAnswers(ctx, submitted.ID, answers)
	if err != nil {
		return nil, mapRepoError(err, "recording answer verdict")
	}
	return updated, nil
}

func (s *testSubmissionService) dispatch(kind notify.Kind, recipient uuid.UUID, payload interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, kind, recipient, payload); err != nil {
			log.Printf("Failed to dispatch %s notification to %s: %v", kind, recipient, err)
		}
	}()
}
