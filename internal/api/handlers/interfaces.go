// internal/api/handlers/interfaces.go (or similar)
package handlers

import "github.com/gin-gonic/gin"

// UserHandlerInterface defines the methods needed by the user routes.
type UserHandlerInterface interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	GetMe(c *gin.Context)
}

// JobHandlerInterface defines the methods needed by the job routes.
type JobHandlerInterface interface {
	CreateJob(c *gin.Context)
	GetJobByID(c *gin.Context)
	ListActiveJobs(c *gin.Context)
	ListMyJobs(c *gin.Context)
	UpdateJob(c *gin.Context)
	UpdateJobStatus(c *gin.Context)
	DeleteJob(c *gin.Context)
}

// JobApplicationHandlerInterface defines the methods needed by the application routes.
type JobApplicationHandlerInterface interface {
	ApplyToJob(c *gin.Context)
	GetApplicationByID(c *gin.Context)
	ListApplicationsByJob(c *gin.Context)
	ListMyApplications(c *gin.Context)
	AcceptApplication(c *gin.Context)
	MarkApplicationPassed(c *gin.Context)
	SignContract(c *gin.Context)
	ApproveContract(c *gin.Context)
	RejectApplication(c *gin.Context)
	UpdateApplicationNote(c *gin.Context)
	DeleteApplication(c *gin.Context)
}

// TestHandlerInterface defines the methods needed by the test routes.
type TestHandlerInterface interface {
	SubmitTest(c *gin.Context)
	GetSubmittedTest(c *gin.Context)
	MarkQuestionCorrect(c *gin.Context)
}

// SubscriptionHandlerInterface defines the methods needed by the subscription routes.
type SubscriptionHandlerInterface interface {
	GetMySubscription(c *gin.Context)
	GetMyCredits(c *gin.Context)
	GetMyHistory(c *gin.Context)
	AdjustCredits(c *gin.Context)
}

// PackageHandlerInterface defines the methods needed by the package routes.
type PackageHandlerInterface interface {
	ListPackages(c *gin.Context)
	GetPackageByID(c *gin.Context)
	CreatePackage(c *gin.Context)
	UpdatePackage(c *gin.Context)
	DeletePackage(c *gin.Context)
}

// WebhookHandlerInterface defines the methods needed by the webhook routes.
type WebhookHandlerInterface interface {
	PaymentSucceeded(c *gin.Context)
}

// Ensure handlers implement the interfaces (compile-time check)
var _ UserHandlerInterface = (*UserHandler)(nil)
var _ JobHandlerInterface = (*JobHandler)(nil)
var _ JobApplicationHandlerInterface = (*JobApplicationHandler)(nil)
var _ TestHandlerInterface = (*TestHandler)(nil)
var _ SubscriptionHandlerInterface = (*SubscriptionHandler)(nil)
var _ PackageHandlerInterface = (*PackageHandler)(nil)
var _ WebhookHandlerInterface = (*WebhookHandler)(nil)
