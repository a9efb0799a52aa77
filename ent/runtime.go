// Code generated by ent, DO NOT EDIT.

package ent

import (
	"hirehub/ent/creditpackage"
	"hirehub/ent/job"
	"hirehub/ent/jobapplication"
	"hirehub/ent/schema"
	"hirehub/ent/submittedtest"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	creditpackageFields := schema.CreditPackage{}.Fields()
	_ = creditpackageFields
	// creditpackageDescTitle is the schema descriptor for title field.
	creditpackageDescTitle := creditpackageFields[1].Descriptor()
	// creditpackage.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	creditpackage.TitleValidator = creditpackageDescTitle.Validators[0].(func(string) error)
	// creditpackageDescPricePerCredit is the schema descriptor for price_per_credit field.
	creditpackageDescPricePerCredit := creditpackageFields[3].Descriptor()
	// creditpackage.PricePerCreditValidator is a validator for the "price_per_credit" field. It is called by the builders before save.
	creditpackage.PricePerCreditValidator = creditpackageDescPricePerCredit.Validators[0].(func(float64) error)
	// creditpackageDescNumberOfCredits is the schema descriptor for number_of_credits field.
	creditpackageDescNumberOfCredits := creditpackageFields[4].Descriptor()
	// creditpackage.NumberOfCreditsValidator is a validator for the "number_of_credits" field. It is called by the builders before save.
	creditpackage.NumberOfCreditsValidator = creditpackageDescNumberOfCredits.Validators[0].(func(int) error)
	// creditpackageDescCreatedAt is the schema descriptor for created_at field.
	creditpackageDescCreatedAt := creditpackageFields[6].Descriptor()
	// creditpackage.DefaultCreatedAt holds the default value on creation for the created_at field.
	creditpackage.DefaultCreatedAt = creditpackageDescCreatedAt.Default.(func() time.Time)
	// creditpackageDescUpdatedAt is the schema descriptor for updated_at field.
	creditpackageDescUpdatedAt := creditpackageFields[7].Descriptor()
	// creditpackage.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creditpackage.DefaultUpdatedAt = creditpackageDescUpdatedAt.Default.(func() time.Time)
	// creditpackage.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creditpackage.UpdateDefaultUpdatedAt = creditpackageDescUpdatedAt.UpdateDefault.(func() time.Time)
	// creditpackageDescID is the schema descriptor for id field.
	creditpackageDescID := creditpackageFields[0].Descriptor()
	// creditpackage.DefaultID holds the default value on creation for the id field.
	creditpackage.DefaultID = creditpackageDescID.Default.(func() uuid.UUID)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescTitle is the schema descriptor for title field.
	jobDescTitle := jobFields[2].Descriptor()
	// job.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	job.TitleValidator = jobDescTitle.Validators[0].(func(string) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[6].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[7].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// job.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	job.UpdateDefaultUpdatedAt = jobDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobapplicationFields := schema.JobApplication{}.Fields()
	_ = jobapplicationFields
	// jobapplicationDescStatus is the schema descriptor for status field.
	jobapplicationDescStatus := jobapplicationFields[3].Descriptor()
	// jobapplication.DefaultStatus holds the default value on creation for the status field.
	jobapplication.DefaultStatus = models.ApplicationStatus(jobapplicationDescStatus.Default.(int))
	// jobapplicationDescOutcome is the schema descriptor for outcome field.
	jobapplicationDescOutcome := jobapplicationFields[4].Descriptor()
	// jobapplication.DefaultOutcome holds the default value on creation for the outcome field.
	jobapplication.DefaultOutcome = models.ApplicationOutcome(jobapplicationDescOutcome.Default.(int))
	// jobapplicationDescCreatedAt is the schema descriptor for created_at field.
	jobapplicationDescCreatedAt := jobapplicationFields[16].Descriptor()
	// jobapplication.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobapplication.DefaultCreatedAt = jobapplicationDescCreatedAt.Default.(func() time.Time)
	// jobapplicationDescUpdatedAt is the schema descriptor for updated_at field.
	jobapplicationDescUpdatedAt := jobapplicationFields[17].Descriptor()
	// jobapplication.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	jobapplication.DefaultUpdatedAt = jobapplicationDescUpdatedAt.Default.(func() time.Time)
	// jobapplication.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	jobapplication.UpdateDefaultUpdatedAt = jobapplicationDescUpdatedAt.UpdateDefault.(func() time.Time)
	// jobapplicationDescID is the schema descriptor for id field.
	jobapplicationDescID := jobapplicationFields[0].Descriptor()
	// jobapplication.DefaultID holds the default value on creation for the id field.
	jobapplication.DefaultID = jobapplicationDescID.Default.(func() uuid.UUID)
	submittedtestFields := schema.SubmittedTest{}.Fields()
	_ = submittedtestFields
	// submittedtestDescCreatedAt is the schema descriptor for created_at field.
	submittedtestDescCreatedAt := submittedtestFields[5].Descriptor()
	// submittedtest.DefaultCreatedAt holds the default value on creation for the created_at field.
	submittedtest.DefaultCreatedAt = submittedtestDescCreatedAt.Default.(func() time.Time)
	// submittedtestDescUpdatedAt is the schema descriptor for updated_at field.
	submittedtestDescUpdatedAt := submittedtestFields[6].Descriptor()
	// submittedtest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	submittedtest.DefaultUpdatedAt = submittedtestDescUpdatedAt.Default.(func() time.Time)
	// submittedtest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	submittedtest.UpdateDefaultUpdatedAt = submittedtestDescUpdatedAt.UpdateDefault.(func() time.Time)
	// submittedtestDescID is the schema descriptor for id field.
	submittedtestDescID := submittedtestFields[0].Descriptor()
	// submittedtest.DefaultID holds the default value on creation for the id field.
	submittedtest.DefaultID = submittedtestDescID.Default.(func() uuid.UUID)
	subscriptionFields := schema.Subscription{}.Fields()
	_ = subscriptionFields
	// subscriptionDescTitle is the schema descriptor for title field.
	subscriptionDescTitle := subscriptionFields[3].Descriptor()
	// subscription.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	subscription.TitleValidator = subscriptionDescTitle.Validators[0].(func(string) error)
	// subscriptionDescPricePerCredit is the schema descriptor for price_per_credit field.
	subscriptionDescPricePerCredit := subscriptionFields[5].Descriptor()
	// subscription.PricePerCreditValidator is a validator for the "price_per_credit" field. It is called by the builders before save.
	subscription.PricePerCreditValidator = subscriptionDescPricePerCredit.Validators[0].(func(float64) error)
	// subscriptionDescCreditAllowance is the schema descriptor for credit_allowance field.
	subscriptionDescCreditAllowance := subscriptionFields[6].Descriptor()
	// subscription.CreditAllowanceValidator is a validator for the "credit_allowance" field. It is called by the builders before save.
	subscription.CreditAllowanceValidator = subscriptionDescCreditAllowance.Validators[0].(func(int) error)
	// subscriptionDescCredits is the schema descriptor for credits field.
	subscriptionDescCredits := subscriptionFields[8].Descriptor()
	// subscription.CreditsValidator is a validator for the "credits" field. It is called by the builders before save.
	subscription.CreditsValidator = subscriptionDescCredits.Validators[0].(func(int) error)
	// subscriptionDescAdminCreditsAdded is the schema descriptor for admin_credits_added field.
	subscriptionDescAdminCreditsAdded := subscriptionFields[9].Descriptor()
	// subscription.DefaultAdminCreditsAdded holds the default value on creation for the admin_credits_added field.
	subscription.DefaultAdminCreditsAdded = subscriptionDescAdminCreditsAdded.Default.(int)
	// subscription.AdminCreditsAddedValidator is a validator for the "admin_credits_added" field. It is called by the builders before save.
	subscription.AdminCreditsAddedValidator = subscriptionDescAdminCreditsAdded.Validators[0].(func(int) error)
	// subscriptionDescAdminCreditsRemoved is the schema descriptor for admin_credits_removed field.
	subscriptionDescAdminCreditsRemoved := subscriptionFields[10].Descriptor()
	// subscription.DefaultAdminCreditsRemoved holds the default value on creation for the admin_credits_removed field.
	subscription.DefaultAdminCreditsRemoved = subscriptionDescAdminCreditsRemoved.Default.(int)
	// subscription.AdminCreditsRemovedValidator is a validator for the "admin_credits_removed" field. It is called by the builders before save.
	subscription.AdminCreditsRemovedValidator = subscriptionDescAdminCreditsRemoved.Validators[0].(func(int) error)
	// subscriptionDescTransactionID is the schema descriptor for transaction_id field.
	subscriptionDescTransactionID := subscriptionFields[11].Descriptor()
	// subscription.TransactionIDValidator is a validator for the "transaction_id" field. It is called by the builders before save.
	subscription.TransactionIDValidator = subscriptionDescTransactionID.Validators[0].(func(string) error)
	// subscriptionDescGrantedAt is the schema descriptor for granted_at field.
	subscriptionDescGrantedAt := subscriptionFields[12].Descriptor()
	// subscription.DefaultGrantedAt holds the default value on creation for the granted_at field.
	subscription.DefaultGrantedAt = subscriptionDescGrantedAt.Default.(func() time.Time)
	// subscriptionDescCreatedAt is the schema descriptor for created_at field.
	subscriptionDescCreatedAt := subscriptionFields[13].Descriptor()
	// subscription.DefaultCreatedAt holds the default value on creation for the created_at field.
	subscription.DefaultCreatedAt = subscriptionDescCreatedAt.Default.(func() time.Time)
	// subscriptionDescUpdatedAt is the schema descriptor for updated_at field.
	subscriptionDescUpdatedAt := subscriptionFields[14].Descriptor()
	// subscription.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	subscription.DefaultUpdatedAt = subscriptionDescUpdatedAt.Default.(func() time.Time)
	// subscription.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	subscription.UpdateDefaultUpdatedAt = subscriptionDescUpdatedAt.UpdateDefault.(func() time.Time)
	// subscriptionDescID is the schema descriptor for id field.
	subscriptionDescID := subscriptionFields[0].Descriptor()
	// subscription.DefaultID holds the default value on creation for the id field.
	subscription.DefaultID = subscriptionDescID.Default.(func() uuid.UUID)
	subscriptionhistoryFields := schema.SubscriptionHistory{}.Fields()
	_ = subscriptionhistoryFields
	// subscriptionhistoryDescArchivedAt is the schema descriptor for archived_at field.
	subscriptionhistoryDescArchivedAt := subscriptionhistoryFields[3].Descriptor()
	// subscriptionhistory.DefaultArchivedAt holds the default value on creation for the archived_at field.
	subscriptionhistory.DefaultArchivedAt = subscriptionhistoryDescArchivedAt.Default.(func() time.Time)
	// subscriptionhistoryDescID is the schema descriptor for id field.
	subscriptionhistoryDescID := subscriptionhistoryFields[0].Descriptor()
	// subscriptionhistory.DefaultID holds the default value on creation for the id field.
	subscriptionhistory.DefaultID = subscriptionhistoryDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
}
