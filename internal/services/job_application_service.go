package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"hirehub/ent"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/objectstore"
	"hirehub/internal/storage"
	"hirehub/internal/transport/dto"
)

type jobApplicationService struct {
	appRepo  storage.JobApplicationRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
	testRepo storage.SubmittedTestRepository
	db       *ent.Client
	store    objectstore.ObjectStore
	notifier notify.Notifier
}

// NewJobApplicationService creates a new instance of JobApplicationService.
func NewJobApplicationService(
	appRepo storage.JobApplicationRepository,
	jobRepo storage.JobRepository,
	userRepo storage.UserRepository,
	testRepo storage.SubmittedTestRepository,
	db *ent.Client,
	store objectstore.ObjectStore,
	notifier notify.Notifier,
) JobApplicationService {
	return &jobApplicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		userRepo: userRepo,
		testRepo: testRepo,
		db:       db,
		store:    store,
		notifier: notifier,
	}
}

// dispatch fires the post-commit notification for a transition. The state
// mutation has already committed; a dispatch failure is logged and never
// surfaced to the caller.
func (s *jobApplicationService) dispatch(kind notify.Kind, recipient uuid.UUID, payload interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.notifier.Notify(ctx, kind, recipient, payload); err != nil {
			log.Printf("Failed to dispatch %s notification to %s: %v", kind, recipient, err)
		}
	}()
}

// Apply creates a new Pending application for a candidate on an active job.
func (s *jobApplicationService) Apply(ctx context.Context, req *dto.ApplyToJobRequest) (*ent.JobApplication, error) {
	// 1. Fetch the Job to check its state
	jobFound, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for application", req.JobID))
	}

	if models.JobStatus(jobFound.Status) != models.JobStatusActive {
		log.Printf("Apply: Attempt to apply to non-active job %s (Status: %s)", req.JobID, jobFound.Status)
		return nil, fmt.Errorf("%w: job is not open for applications", ErrInvalidState)
	}
	if jobFound.EmployerID == req.CandidateID {
		return nil, fmt.Errorf("%w: employer cannot apply to their own job", ErrForbidden)
	}

	// 2. Resolve the candidate for the snapshot fields
	candidate, err := s.userRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching candidate %s", req.CandidateID))
	}
	if candidate.Role == user.RoleEmployer {
		return nil, fmt.Errorf("%w: employers cannot apply to jobs", ErrForbidden)
	}

	// 3. Refuse a second live application for the same (job, candidate)
	if _, err := s.appRepo.GetByJobAndCandidate(ctx, req.JobID, req.CandidateID); err == nil {
		log.Printf("Apply: Candidate %s already applied to job %s", req.CandidateID, req.JobID)
		return nil, fmt.Errorf("%w: already applied to job", ErrConflict)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, mapRepoError(err, "checking existing application")
	}

	// 4. Verify artifact references before accepting them into state
	if err := s.checkArtifact(ctx, req.CVKey, "cv"); err != nil {
		return nil, err
	}
	if req.AboutVideoKey != "" {
		if err := s.checkArtifact(ctx, req.AboutVideoKey, "about_video"); err != nil {
			return nil, err
		}
	}

	createReq := dto.CreateJobApplicationRequest{
		JobID:             req.JobID,
		CandidateID:       req.CandidateID,
		CandidateName:     candidate.Name,
		CandidateEmail:    candidate.Email,
		CandidateCountry:  candidate.Country,
		CandidateTimezone: candidate.Timezone,
		CandidateContact:  candidate.Contact,
		CVKey:             req.CVKey,
		CoverLetterKey:    req.CoverLetterKey,
		AboutVideoKey:     req.AboutVideoKey,
		Note:              req.Note,
	}
	application, err := s.appRepo.Create(ctx, &createReq)
	if err != nil {
		return nil, mapRepoError(err, "creating application")
	}

	s.dispatch(notify.KindApplicationReceived, jobFound.EmployerID, application)
	return application, nil
}

func (s *jobApplicationService) checkArtifact(ctx context.Context, key, field string) error {
	exists, err := s.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("internal error checking %s reference: %w", field, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s reference does not resolve", ErrValidation, field)
	}
	dup, err := s.store.IsDuplicate(ctx, key, field)
	if err != nil {
		return fmt.Errorf("internal error checking %s duplication: %w", field, err)
	}
	if dup {
		return fmt.Errorf("%w: %s reference is already in use", ErrValidation, field)
	}
	return nil
}

// GetByID retrieves an application; the caller must be the applicant or the
// job employer.
func (s *jobApplicationService) GetByID(ctx context.Context, req *dto.GetApplicationRequest) (*ent.JobApplication, error) {
	application, err := s.appRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ID))
	}

	jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		log.Printf("GetByID: Error fetching job %s associated with application %s: %v", application.JobID, req.ID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	isApplicant := application.CandidateID == req.UserID
	isEmployer := jobFound.EmployerID == req.UserID
	if !isApplicant && !isEmployer {
		log.Printf("GetByID: Forbidden attempt by user %s on application %s", req.UserID, req.ID)
		return nil, ErrForbidden
	}

	return application, nil
}

// ListByJob retrieves applications for a job; employer only.
func (s *jobApplicationService) ListByJob(ctx context.Context, req *dto.ListApplicationsByJobRequest) ([]*ent.JobApplication, error) {
	jobFound, err := s.jobRepo.GetByID(ctx, req.JobID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching job %s for listing applications", req.JobID))
	}

	if jobFound.EmployerID != req.UserID {
		log.Printf("ListByJob: Forbidden attempt by user %s to list applications for job %s", req.UserID, req.JobID)
		return nil, ErrForbidden
	}

	applications, err := s.appRepo.ListByJob(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for job %s", req.JobID))
	}
	return applications, nil
}

// ListByCandidate retrieves the requesting candidate's applications.
func (s *jobApplicationService) ListByCandidate(ctx context.Context, req *dto.ListApplicationsByCandidateRequest) ([]*ent.JobApplication, error) {
	applications, err := s.appRepo.ListByCandidate(ctx, req)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("listing applications for candidate %s", req.CandidateID))
	}
	return applications, nil
}

// Accept moves a Pending application to Accepted, opening test access.
func (s *jobApplicationService) Accept(ctx context.Context, req *dto.AcceptApplicationRequest) (*ent.JobApplication, error) {
	application, err := s.authorizeEmployer(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.guardTransition(application, models.StatusPending, models.StatusAccepted); err != nil {
		return nil, err
	}

	updatedApp, err := s.appRepo.TransitionStatus(ctx, application.ID, models.StatusPending, models.StatusAccepted)
	if err != nil {
		return nil, s.mapTransitionError(ctx, err, application.ID, models.StatusAccepted)
	}

	log.Printf("Application %s accepted by employer %s", application.ID, req.UserID)
	s.dispatch(notify.KindApplicationAccepted, application.CandidateID, updatedApp)
	return updatedApp, nil
}

// MarkPassed moves a TestTaken application to Passed. Requires the employer
// to have reviewed the submitted test first.
func (s *jobApplicationService) MarkPassed(ctx context.Context, req *dto.MarkPassedRequest) (*ent.JobApplication, error) {
	application, err := s.authorizeEmployer(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	if err := s.guardTransition(application, models.StatusTestTaken, models.StatusPassed); err != nil {
		return nil, err
	}

	// Review gate: the test must exist and carry at least one judgement.
	test, err := s.testRepo.GetByApplication(ctx, application.ID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching submitted test for application %s", application.ID))
	}
	reviewed := false
	for _, ans := range test.Answers {
		if ans.IsCorrect != nil {
			reviewed = true
			break
		}
	}
	if !reviewed {
		return nil, fmt.Errorf("%w: submitted test has not been reviewed", ErrInvalidState)
	}

	updatedApp, err := s.appRepo.TransitionStatus(ctx, application.ID, models.StatusTestTaken, models.StatusPassed)
	if err != nil {
		return nil, s.mapTransitionError(ctx, err, application.ID, models.StatusPassed)
	}

	log.Printf("Application %s marked passed by employer %s", application.ID, req.UserID)
	s.dispatch(notify.KindApplicationPassed, application.CandidateID, updatedApp)
	return updatedApp, nil
}

// SignContract moves a Passed application to ContractSigned. The signed
// contract artifact is supplied by the document collaborator; this core only
// validates the prerequisite state and stores the reference.
func (s *jobApplicationService) SignContract(ctx context.Context, req *dto.SignContractRequest) (*ent.JobApplication, error) {
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	if application.CandidateID != req.UserID {
		log.Printf("SignContract: Forbidden attempt by user %s on application %s", req.UserID, req.ApplicationID)
		return nil, ErrForbidden
	}

	if err := s.guardTransition(application, models.StatusPassed, models.StatusContractSigned); err != nil {
		return nil, err
	}

	if err := s.checkArtifact(ctx, req.ContractKey, "contract"); err != nil {
		return nil, err
	}

	// Transition and contract key must land together.
	tx, err := s.db.Tx(ctx)
	if err != nil {
		log.Printf("SignContract: Error beginning transaction: %v", err)
		return nil, fmt.Errorf("internal error starting transaction: %w", err)
	}
	defer tx.Rollback()

	txAppRepo := s.appRepo.WithTx(tx)

	updatedApp, err := txAppRepo.TransitionStatus(ctx, application.ID, models.StatusPassed, models.StatusContractSigned)
	if err != nil {
		return nil, s.mapTransitionError(ctx, err, application.ID, models.StatusContractSigned)
	}
	if err := txAppRepo.SetContractKey(ctx, application.ID, req.ContractKey); err != nil {
		return nil, mapRepoError(err, "storing contract reference")
	}

	if err := tx.Commit(); err != nil {
		log.Printf("SignContract: Error committing transaction: %v", err)
		return nil, fmt.Errorf("internal error committing changes: %w", err)
	}

	log.Printf("Application %s contract signed by candidate %s", application.ID, req.UserID)
	updatedApp.ContractKey = req.ContractKey

	// The employer reviews and approves next.
	jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		log.Printf("SignContract: skipping contract-signed notification for application %s, could not fetch job %s: %v", application.ID, application.JobID, err)
		return updatedApp, nil
	}
	s.dispatch(notify.KindContractSigned, jobFound.EmployerID, updatedApp)
	return updatedApp, nil
}

// ApproveContract sets the terminal ContractApproved outcome after contract
// review. Requires status ContractSigned.
func (s *jobApplicationService) ApproveContract(ctx context.Context, req *dto.ApproveContractRequest) (*ent.JobApplication, error) {
	application, err := s.authorizeEmployer(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	if application.Outcome != models.OutcomeInProgress {
		return nil, fmt.Errorf("%w: application outcome is already %s", ErrInvalidState, application.Outcome)
	}
	if application.Status != models.StatusContractSigned {
		return nil, fmt.Errorf("%w: contract approval requires a signed contract, current status is %s", ErrInvalidTransition, application.Status)
	}

	updatedApp, err := s.appRepo.SetOutcome(ctx, application.ID, models.OutcomeContractApproved)
	if err != nil {
		if errors.Is(err, storage.ErrStaleState) {
			return nil, fmt.Errorf("%w: application outcome changed concurrently", ErrInvalidState)
		}
		return nil, mapRepoError(err, "approving contract")
	}

	log.Printf("Application %s contract approved by employer %s", application.ID, req.UserID)
	s.dispatch(notify.KindContractApproved, application.CandidateID, updatedApp)
	return updatedApp, nil
}

// Reject sets the terminal Rejected outcome. Legal from any status while the
// outcome is still InProgress; afterwards the application is frozen.
func (s *jobApplicationService) Reject(ctx context.Context, req *dto.RejectApplicationRequest) (*ent.JobApplication, error) {
	application, err := s.authorizeEmployer(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	if application.Outcome == models.OutcomeRejected {
		return nil, fmt.Errorf("%w: application is already rejected", ErrApplicationRejected)
	}
	if application.Outcome != models.OutcomeInProgress {
		return nil, fmt.Errorf("%w: application outcome is already %s", ErrInvalidState, application.Outcome)
	}

	updatedApp, err := s.appRepo.SetOutcome(ctx, application.ID, models.OutcomeRejected)
	if err != nil {
		if errors.Is(err, storage.ErrStaleState) {
			return nil, fmt.Errorf("%w: application outcome changed concurrently", ErrInvalidState)
		}
		return nil, mapRepoError(err, "rejecting application")
	}

	log.Printf("Application %s rejected by employer %s", application.ID, req.UserID)
	s.dispatch(notify.KindApplicationRejected, application.CandidateID, updatedApp)
	return updatedApp, nil
}

// UpdateNote updates the employer's free-text note on an application.
func (s *jobApplicationService) UpdateNote(ctx context.Context, req *dto.UpdateApplicationNoteRequest) (*ent.JobApplication, error) {
	application, err := s.authorizeEmployer(ctx, req.ApplicationID, req.UserID)
	if err != nil {
		return nil, err
	}

	updatedApp, err := s.appRepo.UpdateNote(ctx, application.ID, req.Note)
	if err != nil {
		return nil, mapRepoError(err, "updating application note")
	}
	return updatedApp, nil
}

// Delete removes an application. Candidates and employers soft-delete;
// hard deletion is reserved for admins and explicit requests.
func (s *jobApplicationService) Delete(ctx context.Context, req *dto.DeleteApplicationRequest) error {
	application, err := s.appRepo.GetByID(ctx, req.ApplicationID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching application %s", req.ApplicationID))
	}

	caller, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return mapRepoError(err, fmt.Sprintf("fetching user %s", req.UserID))
	}

	if caller.Role != user.RoleAdmin {
		jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
		if err != nil {
			return mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
		}
		if application.CandidateID != req.UserID && jobFound.EmployerID != req.UserID {
			return ErrForbidden
		}
	}

	if req.Hard && caller.Role == user.RoleAdmin {
		if err := s.appRepo.Delete(ctx, application.ID); err != nil {
			return mapRepoError(err, "deleting application")
		}
		return nil
	}

	if err := s.appRepo.SoftDelete(ctx, application.ID); err != nil {
		return mapRepoError(err, "soft-deleting application")
	}
	return nil
}

// authorizeEmployer fetches the application and verifies the caller owns
// the job it belongs to.
func (s *jobApplicationService) authorizeEmployer(ctx context.Context, applicationID, userID uuid.UUID) (*ent.JobApplication, error) {
	application, err := s.appRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, mapRepoError(err, fmt.Sprintf("fetching application %s", applicationID))
	}

	jobFound, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		log.Printf("Error fetching job %s for application %s: %v", application.JobID, applicationID, err)
		return nil, mapRepoError(err, fmt.Sprintf("fetching associated job %s", application.JobID))
	}

	if jobFound.EmployerID != userID {
		log.Printf("Forbidden attempt by user %s on application %s (Employer: %s)", userID, applicationID, jobFound.EmployerID)
		return nil, ErrForbidden
	}

	return application, nil
}

// guardTransition rejects frozen and out-of-order applications before the
// conditional update is attempted, so the caller gets the precise error.
func (s *jobApplicationService) guardTransition(application *ent.JobApplication, from, to models.ApplicationStatus) error {
	if application.Outcome == models.OutcomeRejected {
		return fmt.Errorf("%w: no further transitions allowed", ErrApplicationRejected)
	}
	if application.Outcome != models.OutcomeInProgress {
		return fmt.Errorf("%w: application outcome is already %s", ErrInvalidState, application.Outcome)
	}
	if application.Status != from || !isValidStatusTransition(from, to) {
		return invalidTransition(application.Status, to)
	}
	return nil
}

// mapTransitionError resolves a stale conditional update into the precise
// lifecycle error by re-reading the row.
func (s *jobApplicationService) mapTransitionError(ctx context.Context, err error, applicationID uuid.UUID, requested models.ApplicationStatus) error {
	if !errors.Is(err, storage.ErrStaleState) {
		return mapRepoError(err, "updating application status")
	}
	current, fetchErr := s.appRepo.GetByID(ctx, applicationID)
	if fetchErr != nil {
		return mapRepoError(fetchErr, "re-reading application after stale update")
	}
	if current.Outcome == models.OutcomeRejected {
		return fmt.Errorf("%w: no further transitions allowed", ErrApplicationRejected)
	}
	return invalidTransition(current.Status, requested)
}
