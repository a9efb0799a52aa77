package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/services"
	"hirehub/internal/transport/dto"
)

// respondValidation writes a 400 for service-level validation failures,
// itemizing field violations when the service collected them.
func respondValidation(c *gin.Context, err error) {
	var answerErr *services.AnswerValidationError
	if errors.As(err, &answerErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "violations": answerErr.Violations})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

func FormatValidationErrors(err error) map[string]string {
	errorsMap := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		errorsMap["error"] = "Invalid validation error type"
		return errorsMap
	}
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		errorsMap[fieldName] = fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "min":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at least %s characters long", fieldName, fieldError.Param())
		case "max":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param())
		case "uuid":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		case "oneof":
			errorsMap[fieldName] = fmt.Sprintf("Field '%s' must be one of [%s]", fieldName, fieldError.Param())
		}
	}
	return errorsMap
}

// MapUserModelToUserResponse converts a ent.User to a dto.UserResponse
func MapUserModelToUserResponse(user *ent.User) dto.UserResponse {
	return dto.UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      models.Role(user.Role),
		Country:   user.Country,
		Timezone:  user.Timezone,
		Contact:   user.Contact,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// MapJobModelToJobResponse converts a ent.Job to a dto.JobResponse
func MapJobModelToJobResponse(job *ent.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:          job.ID,
		EmployerID:  job.EmployerID,
		Title:       job.Title,
		Description: job.Description,
		Status:      string(job.Status), // Convert enum to string
		Questions:   job.Questions,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

// MapJobApplicationModelToResponse converts a ent.JobApplication to a dto.JobApplicationResponse
func MapJobApplicationModelToResponse(app *ent.JobApplication) dto.JobApplicationResponse {
	return dto.JobApplicationResponse{
		ID:             app.ID,
		JobID:          app.JobID,
		CandidateID:    app.CandidateID,
		Status:         app.Status,
		StatusName:     app.Status.String(),
		Outcome:        app.Outcome,
		OutcomeName:    app.Outcome.String(),
		CandidateName:  app.CandidateName,
		CandidateEmail: app.CandidateEmail,
		CVKey:          app.CvKey,
		CoverLetterKey: app.CoverLetterKey,
		AboutVideoKey:  app.AboutVideoKey,
		ContractKey:    app.ContractKey,
		Note:           app.Note,
		CreatedAt:      app.CreatedAt,
		UpdatedAt:      app.UpdatedAt,
	}
}

// MapSubmittedTestModelToResponse converts a ent.SubmittedTest to a dto.SubmittedTestResponse
func MapSubmittedTestModelToResponse(test *ent.SubmittedTest) dto.SubmittedTestResponse {
	return dto.SubmittedTestResponse{
		ID:            test.ID,
		ApplicationID: test.ApplicationID,
		CandidateID:   test.CandidateID,
		VideoKey:      test.VideoKey,
		Answers:       test.Answers,
		CreatedAt:     test.CreatedAt,
		UpdatedAt:     test.UpdatedAt,
	}
}

// MapSubscriptionModelToResponse converts a ent.Subscription to a dto.SubscriptionResponse
func MapSubscriptionModelToResponse(sub *ent.Subscription) dto.SubscriptionResponse {
	return dto.SubscriptionResponse{
		ID:                  sub.ID,
		EmployerID:          sub.EmployerID,
		PackageID:           sub.PackageID,
		Title:               sub.Title,
		Features:            sub.Features,
		PricePerCredit:      sub.PricePerCredit,
		CreditAllowance:     sub.CreditAllowance,
		PackageType:         sub.PackageType,
		Credits:             sub.Credits,
		AdminCreditsAdded:   sub.AdminCreditsAdded,
		AdminCreditsRemoved: sub.AdminCreditsRemoved,
		GrantedAt:           sub.GrantedAt,
	}
}

// MapPackageModelToResponse converts a ent.CreditPackage to a dto.PackageResponse
func MapPackageModelToResponse(pkg *ent.CreditPackage) dto.PackageResponse {
	return dto.PackageResponse{
		ID:              pkg.ID,
		Title:           pkg.Title,
		Features:        pkg.Features,
		PricePerCredit:  pkg.PricePerCredit,
		NumberOfCredits: pkg.NumberOfCredits,
		PackageType:     pkg.PackageType,
		CreatedAt:       pkg.CreatedAt,
		UpdatedAt:       pkg.UpdatedAt,
	}
}
