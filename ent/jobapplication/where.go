// Code generated by ent, DO NOT EDIT.

package jobapplication

import (
	"hirehub/ent/predicate"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldID, id))
}

// JobID applies equality check predicate on the "job_id" field. It's identical to JobIDEQ.
func JobID(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldJobID, v))
}

// CandidateID applies equality check predicate on the "candidate_id" field. It's identical to CandidateIDEQ.
func CandidateID(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateID, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldEQ(FieldStatus, vc))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldEQ(FieldOutcome, vc))
}

// CandidateName applies equality check predicate on the "candidate_name" field. It's identical to CandidateNameEQ.
func CandidateName(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateEmail applies equality check predicate on the "candidate_email" field. It's identical to CandidateEmailEQ.
func CandidateEmail(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateEmail, v))
}

// CandidateCountry applies equality check predicate on the "candidate_country" field. It's identical to CandidateCountryEQ.
func CandidateCountry(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateCountry, v))
}

// CandidateTimezone applies equality check predicate on the "candidate_timezone" field. It's identical to CandidateTimezoneEQ.
func CandidateTimezone(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateTimezone, v))
}

// CandidateContact applies equality check predicate on the "candidate_contact" field. It's identical to CandidateContactEQ.
func CandidateContact(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateContact, v))
}

// CvKey applies equality check predicate on the "cv_key" field. It's identical to CvKeyEQ.
func CvKey(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCvKey, v))
}

// CoverLetterKey applies equality check predicate on the "cover_letter_key" field. It's identical to CoverLetterKeyEQ.
func CoverLetterKey(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCoverLetterKey, v))
}

// AboutVideoKey applies equality check predicate on the "about_video_key" field. It's identical to AboutVideoKeyEQ.
func AboutVideoKey(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldAboutVideoKey, v))
}

// ContractKey applies equality check predicate on the "contract_key" field. It's identical to ContractKeyEQ.
func ContractKey(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldContractKey, v))
}

// Note applies equality check predicate on the "note" field. It's identical to NoteEQ.
func Note(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldNote, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// JobIDEQ applies the EQ predicate on the "job_id" field.
func JobIDEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldJobID, v))
}

// JobIDNEQ applies the NEQ predicate on the "job_id" field.
func JobIDNEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldJobID, v))
}

// JobIDIn applies the In predicate on the "job_id" field.
func JobIDIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldJobID, vs...))
}

// JobIDNotIn applies the NotIn predicate on the "job_id" field.
func JobIDNotIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldJobID, vs...))
}

// CandidateIDEQ applies the EQ predicate on the "candidate_id" field.
func CandidateIDEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateID, v))
}

// CandidateIDNEQ applies the NEQ predicate on the "candidate_id" field.
func CandidateIDNEQ(v uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCandidateID, v))
}

// CandidateIDIn applies the In predicate on the "candidate_id" field.
func CandidateIDIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCandidateID, vs...))
}

// CandidateIDNotIn applies the NotIn predicate on the "candidate_id" field.
func CandidateIDNotIn(vs ...uuid.UUID) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCandidateID, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldEQ(FieldStatus, vc))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldNEQ(FieldStatus, vc))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...models.ApplicationStatus) predicate.JobApplication {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.JobApplication(sql.FieldIn(FieldStatus, v...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...models.ApplicationStatus) predicate.JobApplication {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.JobApplication(sql.FieldNotIn(FieldStatus, v...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldGT(FieldStatus, vc))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldGTE(FieldStatus, vc))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldLT(FieldStatus, vc))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v models.ApplicationStatus) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldLTE(FieldStatus, vc))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldEQ(FieldOutcome, vc))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldNEQ(FieldOutcome, vc))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...models.ApplicationOutcome) predicate.JobApplication {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.JobApplication(sql.FieldIn(FieldOutcome, v...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...models.ApplicationOutcome) predicate.JobApplication {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.JobApplication(sql.FieldNotIn(FieldOutcome, v...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldGT(FieldOutcome, vc))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldGTE(FieldOutcome, vc))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldLT(FieldOutcome, vc))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v models.ApplicationOutcome) predicate.JobApplication {
	vc := int(v)
	return predicate.JobApplication(sql.FieldLTE(FieldOutcome, vc))
}

// CandidateNameEQ applies the EQ predicate on the "candidate_name" field.
func CandidateNameEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateName, v))
}

// CandidateNameNEQ applies the NEQ predicate on the "candidate_name" field.
func CandidateNameNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCandidateName, v))
}

// CandidateNameIn applies the In predicate on the "candidate_name" field.
func CandidateNameIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCandidateName, vs...))
}

// CandidateNameNotIn applies the NotIn predicate on the "candidate_name" field.
func CandidateNameNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCandidateName, vs...))
}

// CandidateNameGT applies the GT predicate on the "candidate_name" field.
func CandidateNameGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCandidateName, v))
}

// CandidateNameGTE applies the GTE predicate on the "candidate_name" field.
func CandidateNameGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCandidateName, v))
}

// CandidateNameLT applies the LT predicate on the "candidate_name" field.
func CandidateNameLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCandidateName, v))
}

// CandidateNameLTE applies the LTE predicate on the "candidate_name" field.
func CandidateNameLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCandidateName, v))
}

// CandidateNameContains applies the Contains predicate on the "candidate_name" field.
func CandidateNameContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCandidateName, v))
}

// CandidateNameHasPrefix applies the HasPrefix predicate on the "candidate_name" field.
func CandidateNameHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCandidateName, v))
}

// CandidateNameHasSuffix applies the HasSuffix predicate on the "candidate_name" field.
func CandidateNameHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCandidateName, v))
}

// CandidateNameEqualFold applies the EqualFold predicate on the "candidate_name" field.
func CandidateNameEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCandidateName, v))
}

// CandidateNameContainsFold applies the ContainsFold predicate on the "candidate_name" field.
func CandidateNameContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCandidateName, v))
}

// CandidateEmailEQ applies the EQ predicate on the "candidate_email" field.
func CandidateEmailEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateEmail, v))
}

// CandidateEmailNEQ applies the NEQ predicate on the "candidate_email" field.
func CandidateEmailNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCandidateEmail, v))
}

// CandidateEmailIn applies the In predicate on the "candidate_email" field.
func CandidateEmailIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCandidateEmail, vs...))
}

// CandidateEmailNotIn applies the NotIn predicate on the "candidate_email" field.
func CandidateEmailNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCandidateEmail, vs...))
}

// CandidateEmailGT applies the GT predicate on the "candidate_email" field.
func CandidateEmailGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCandidateEmail, v))
}

// CandidateEmailGTE applies the GTE predicate on the "candidate_email" field.
func CandidateEmailGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCandidateEmail, v))
}

// CandidateEmailLT applies the LT predicate on the "candidate_email" field.
func CandidateEmailLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCandidateEmail, v))
}

// CandidateEmailLTE applies the LTE predicate on the "candidate_email" field.
func CandidateEmailLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCandidateEmail, v))
}

// CandidateEmailContains applies the Contains predicate on the "candidate_email" field.
func CandidateEmailContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCandidateEmail, v))
}

// CandidateEmailHasPrefix applies the HasPrefix predicate on the "candidate_email" field.
func CandidateEmailHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCandidateEmail, v))
}

// CandidateEmailHasSuffix applies the HasSuffix predicate on the "candidate_email" field.
func CandidateEmailHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCandidateEmail, v))
}

// CandidateEmailEqualFold applies the EqualFold predicate on the "candidate_email" field.
func CandidateEmailEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCandidateEmail, v))
}

// CandidateEmailContainsFold applies the ContainsFold predicate on the "candidate_email" field.
func CandidateEmailContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCandidateEmail, v))
}

// CandidateCountryEQ applies the EQ predicate on the "candidate_country" field.
func CandidateCountryEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateCountry, v))
}

// CandidateCountryNEQ applies the NEQ predicate on the "candidate_country" field.
func CandidateCountryNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCandidateCountry, v))
}

// CandidateCountryIn applies the In predicate on the "candidate_country" field.
func CandidateCountryIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCandidateCountry, vs...))
}

// CandidateCountryNotIn applies the NotIn predicate on the "candidate_country" field.
func CandidateCountryNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCandidateCountry, vs...))
}

// CandidateCountryGT applies the GT predicate on the "candidate_country" field.
func CandidateCountryGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCandidateCountry, v))
}

// CandidateCountryGTE applies the GTE predicate on the "candidate_country" field.
func CandidateCountryGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCandidateCountry, v))
}

// CandidateCountryLT applies the LT predicate on the "candidate_country" field.
func CandidateCountryLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCandidateCountry, v))
}

// CandidateCountryLTE applies the LTE predicate on the "candidate_country" field.
func CandidateCountryLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCandidateCountry, v))
}

// CandidateCountryContains applies the Contains predicate on the "candidate_country" field.
func CandidateCountryContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCandidateCountry, v))
}

// CandidateCountryHasPrefix applies the HasPrefix predicate on the "candidate_country" field.
func CandidateCountryHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCandidateCountry, v))
}

// CandidateCountryHasSuffix applies the HasSuffix predicate on the "candidate_country" field.
func CandidateCountryHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCandidateCountry, v))
}

// CandidateCountryIsNil applies the IsNil predicate on the "candidate_country" field.
func CandidateCountryIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldCandidateCountry))
}

// CandidateCountryNotNil applies the NotNil predicate on the "candidate_country" field.
func CandidateCountryNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldCandidateCountry))
}

// CandidateCountryEqualFold applies the EqualFold predicate on the "candidate_country" field.
func CandidateCountryEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCandidateCountry, v))
}

// CandidateCountryContainsFold applies the ContainsFold predicate on the "candidate_country" field.
func CandidateCountryContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCandidateCountry, v))
}

// CandidateTimezoneEQ applies the EQ predicate on the "candidate_timezone" field.
func CandidateTimezoneEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateTimezone, v))
}

// CandidateTimezoneNEQ applies the NEQ predicate on the "candidate_timezone" field.
func CandidateTimezoneNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCandidateTimezone, v))
}

// CandidateTimezoneIn applies the In predicate on the "candidate_timezone" field.
func CandidateTimezoneIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCandidateTimezone, vs...))
}

// CandidateTimezoneNotIn applies the NotIn predicate on the "candidate_timezone" field.
func CandidateTimezoneNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCandidateTimezone, vs...))
}

// CandidateTimezoneGT applies the GT predicate on the "candidate_timezone" field.
func CandidateTimezoneGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCandidateTimezone, v))
}

// CandidateTimezoneGTE applies the GTE predicate on the "candidate_timezone" field.
func CandidateTimezoneGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCandidateTimezone, v))
}

// CandidateTimezoneLT applies the LT predicate on the "candidate_timezone" field.
func CandidateTimezoneLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCandidateTimezone, v))
}

// CandidateTimezoneLTE applies the LTE predicate on the "candidate_timezone" field.
func CandidateTimezoneLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCandidateTimezone, v))
}

// CandidateTimezoneContains applies the Contains predicate on the "candidate_timezone" field.
func CandidateTimezoneContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCandidateTimezone, v))
}

// CandidateTimezoneHasPrefix applies the HasPrefix predicate on the "candidate_timezone" field.
func CandidateTimezoneHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCandidateTimezone, v))
}

// CandidateTimezoneHasSuffix applies the HasSuffix predicate on the "candidate_timezone" field.
func CandidateTimezoneHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCandidateTimezone, v))
}

// CandidateTimezoneIsNil applies the IsNil predicate on the "candidate_timezone" field.
func CandidateTimezoneIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldCandidateTimezone))
}

// CandidateTimezoneNotNil applies the NotNil predicate on the "candidate_timezone" field.
func CandidateTimezoneNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldCandidateTimezone))
}

// CandidateTimezoneEqualFold applies the EqualFold predicate on the "candidate_timezone" field.
func CandidateTimezoneEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCandidateTimezone, v))
}

// CandidateTimezoneContainsFold applies the ContainsFold predicate on the "candidate_timezone" field.
func CandidateTimezoneContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCandidateTimezone, v))
}

// CandidateContactEQ applies the EQ predicate on the "candidate_contact" field.
func CandidateContactEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCandidateContact, v))
}

// CandidateContactNEQ applies the NEQ predicate on the "candidate_contact" field.
func CandidateContactNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCandidateContact, v))
}

// CandidateContactIn applies the In predicate on the "candidate_contact" field.
func CandidateContactIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCandidateContact, vs...))
}

// CandidateContactNotIn applies the NotIn predicate on the "candidate_contact" field.
func CandidateContactNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCandidateContact, vs...))
}

// CandidateContactGT applies the GT predicate on the "candidate_contact" field.
func CandidateContactGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCandidateContact, v))
}

// CandidateContactGTE applies the GTE predicate on the "candidate_contact" field.
func CandidateContactGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCandidateContact, v))
}

// CandidateContactLT applies the LT predicate on the "candidate_contact" field.
func CandidateContactLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCandidateContact, v))
}

// CandidateContactLTE applies the LTE predicate on the "candidate_contact" field.
func CandidateContactLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCandidateContact, v))
}

// CandidateContactContains applies the Contains predicate on the "candidate_contact" field.
func CandidateContactContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCandidateContact, v))
}

// CandidateContactHasPrefix applies the HasPrefix predicate on the "candidate_contact" field.
func CandidateContactHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCandidateContact, v))
}

// CandidateContactHasSuffix applies the HasSuffix predicate on the "candidate_contact" field.
func CandidateContactHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCandidateContact, v))
}

// CandidateContactIsNil applies the IsNil predicate on the "candidate_contact" field.
func CandidateContactIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldCandidateContact))
}

// CandidateContactNotNil applies the NotNil predicate on the "candidate_contact" field.
func CandidateContactNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldCandidateContact))
}

// CandidateContactEqualFold applies the EqualFold predicate on the "candidate_contact" field.
func CandidateContactEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCandidateContact, v))
}

// CandidateContactContainsFold applies the ContainsFold predicate on the "candidate_contact" field.
func CandidateContactContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCandidateContact, v))
}

// CvKeyEQ applies the EQ predicate on the "cv_key" field.
func CvKeyEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCvKey, v))
}

// CvKeyNEQ applies the NEQ predicate on the "cv_key" field.
func CvKeyNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCvKey, v))
}

// CvKeyIn applies the In predicate on the "cv_key" field.
func CvKeyIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCvKey, vs...))
}

// CvKeyNotIn applies the NotIn predicate on the "cv_key" field.
func CvKeyNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCvKey, vs...))
}

// CvKeyGT applies the GT predicate on the "cv_key" field.
func CvKeyGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCvKey, v))
}

// CvKeyGTE applies the GTE predicate on the "cv_key" field.
func CvKeyGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCvKey, v))
}

// CvKeyLT applies the LT predicate on the "cv_key" field.
func CvKeyLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCvKey, v))
}

// CvKeyLTE applies the LTE predicate on the "cv_key" field.
func CvKeyLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCvKey, v))
}

// CvKeyContains applies the Contains predicate on the "cv_key" field.
func CvKeyContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCvKey, v))
}

// CvKeyHasPrefix applies the HasPrefix predicate on the "cv_key" field.
func CvKeyHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCvKey, v))
}

// CvKeyHasSuffix applies the HasSuffix predicate on the "cv_key" field.
func CvKeyHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCvKey, v))
}

// CvKeyIsNil applies the IsNil predicate on the "cv_key" field.
func CvKeyIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldCvKey))
}

// CvKeyNotNil applies the NotNil predicate on the "cv_key" field.
func CvKeyNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldCvKey))
}

// CvKeyEqualFold applies the EqualFold predicate on the "cv_key" field.
func CvKeyEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCvKey, v))
}

// CvKeyContainsFold applies the ContainsFold predicate on the "cv_key" field.
func CvKeyContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCvKey, v))
}

// CoverLetterKeyEQ applies the EQ predicate on the "cover_letter_key" field.
func CoverLetterKeyEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCoverLetterKey, v))
}

// CoverLetterKeyNEQ applies the NEQ predicate on the "cover_letter_key" field.
func CoverLetterKeyNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCoverLetterKey, v))
}

// CoverLetterKeyIn applies the In predicate on the "cover_letter_key" field.
func CoverLetterKeyIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCoverLetterKey, vs...))
}

// CoverLetterKeyNotIn applies the NotIn predicate on the "cover_letter_key" field.
func CoverLetterKeyNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCoverLetterKey, vs...))
}

// CoverLetterKeyGT applies the GT predicate on the "cover_letter_key" field.
func CoverLetterKeyGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCoverLetterKey, v))
}

// CoverLetterKeyGTE applies the GTE predicate on the "cover_letter_key" field.
func CoverLetterKeyGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCoverLetterKey, v))
}

// CoverLetterKeyLT applies the LT predicate on the "cover_letter_key" field.
func CoverLetterKeyLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCoverLetterKey, v))
}

// CoverLetterKeyLTE applies the LTE predicate on the "cover_letter_key" field.
func CoverLetterKeyLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCoverLetterKey, v))
}

// CoverLetterKeyContains applies the Contains predicate on the "cover_letter_key" field.
func CoverLetterKeyContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldCoverLetterKey, v))
}

// CoverLetterKeyHasPrefix applies the HasPrefix predicate on the "cover_letter_key" field.
func CoverLetterKeyHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldCoverLetterKey, v))
}

// CoverLetterKeyHasSuffix applies the HasSuffix predicate on the "cover_letter_key" field.
func CoverLetterKeyHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldCoverLetterKey, v))
}

// CoverLetterKeyIsNil applies the IsNil predicate on the "cover_letter_key" field.
func CoverLetterKeyIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldCoverLetterKey))
}

// CoverLetterKeyNotNil applies the NotNil predicate on the "cover_letter_key" field.
func CoverLetterKeyNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldCoverLetterKey))
}

// CoverLetterKeyEqualFold applies the EqualFold predicate on the "cover_letter_key" field.
func CoverLetterKeyEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldCoverLetterKey, v))
}

// CoverLetterKeyContainsFold applies the ContainsFold predicate on the "cover_letter_key" field.
func CoverLetterKeyContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldCoverLetterKey, v))
}

// AboutVideoKeyEQ applies the EQ predicate on the "about_video_key" field.
func AboutVideoKeyEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldAboutVideoKey, v))
}

// AboutVideoKeyNEQ applies the NEQ predicate on the "about_video_key" field.
func AboutVideoKeyNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldAboutVideoKey, v))
}

// AboutVideoKeyIn applies the In predicate on the "about_video_key" field.
func AboutVideoKeyIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldAboutVideoKey, vs...))
}

// AboutVideoKeyNotIn applies the NotIn predicate on the "about_video_key" field.
func AboutVideoKeyNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldAboutVideoKey, vs...))
}

// AboutVideoKeyGT applies the GT predicate on the "about_video_key" field.
func AboutVideoKeyGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldAboutVideoKey, v))
}

// AboutVideoKeyGTE applies the GTE predicate on the "about_video_key" field.
func AboutVideoKeyGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldAboutVideoKey, v))
}

// AboutVideoKeyLT applies the LT predicate on the "about_video_key" field.
func AboutVideoKeyLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldAboutVideoKey, v))
}

// AboutVideoKeyLTE applies the LTE predicate on the "about_video_key" field.
func AboutVideoKeyLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldAboutVideoKey, v))
}

// AboutVideoKeyContains applies the Contains predicate on the "about_video_key" field.
func AboutVideoKeyContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldAboutVideoKey, v))
}

// AboutVideoKeyHasPrefix applies the HasPrefix predicate on the "about_video_key" field.
func AboutVideoKeyHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldAboutVideoKey, v))
}

// AboutVideoKeyHasSuffix applies the HasSuffix predicate on the "about_video_key" field.
func AboutVideoKeyHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldAboutVideoKey, v))
}

// AboutVideoKeyIsNil applies the IsNil predicate on the "about_video_key" field.
func AboutVideoKeyIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldAboutVideoKey))
}

// AboutVideoKeyNotNil applies the NotNil predicate on the "about_video_key" field.
func AboutVideoKeyNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldAboutVideoKey))
}

// AboutVideoKeyEqualFold applies the EqualFold predicate on the "about_video_key" field.
func AboutVideoKeyEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldAboutVideoKey, v))
}

// AboutVideoKeyContainsFold applies the ContainsFold predicate on the "about_video_key" field.
func AboutVideoKeyContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldAboutVideoKey, v))
}

// ContractKeyEQ applies the EQ predicate on the "contract_key" field.
func ContractKeyEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldContractKey, v))
}

// ContractKeyNEQ applies the NEQ predicate on the "contract_key" field.
func ContractKeyNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldContractKey, v))
}

// ContractKeyIn applies the In predicate on the "contract_key" field.
func ContractKeyIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldContractKey, vs...))
}

// ContractKeyNotIn applies the NotIn predicate on the "contract_key" field.
func ContractKeyNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldContractKey, vs...))
}

// ContractKeyGT applies the GT predicate on the "contract_key" field.
func ContractKeyGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldContractKey, v))
}

// ContractKeyGTE applies the GTE predicate on the "contract_key" field.
func ContractKeyGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldContractKey, v))
}

// ContractKeyLT applies the LT predicate on the "contract_key" field.
func ContractKeyLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldContractKey, v))
}

// ContractKeyLTE applies the LTE predicate on the "contract_key" field.
func ContractKeyLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldContractKey, v))
}

// ContractKeyContains applies the Contains predicate on the "contract_key" field.
func ContractKeyContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldContractKey, v))
}

// ContractKeyHasPrefix applies the HasPrefix predicate on the "contract_key" field.
func ContractKeyHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldContractKey, v))
}

// ContractKeyHasSuffix applies the HasSuffix predicate on the "contract_key" field.
func ContractKeyHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldContractKey, v))
}

// ContractKeyIsNil applies the IsNil predicate on the "contract_key" field.
func ContractKeyIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldContractKey))
}

// ContractKeyNotNil applies the NotNil predicate on the "contract_key" field.
func ContractKeyNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldContractKey))
}

// ContractKeyEqualFold applies the EqualFold predicate on the "contract_key" field.
func ContractKeyEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldContractKey, v))
}

// ContractKeyContainsFold applies the ContainsFold predicate on the "contract_key" field.
func ContractKeyContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldContractKey, v))
}

// NoteEQ applies the EQ predicate on the "note" field.
func NoteEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldNote, v))
}

// NoteNEQ applies the NEQ predicate on the "note" field.
func NoteNEQ(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldNote, v))
}

// NoteIn applies the In predicate on the "note" field.
func NoteIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldNote, vs...))
}

// NoteNotIn applies the NotIn predicate on the "note" field.
func NoteNotIn(vs ...string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldNote, vs...))
}

// NoteGT applies the GT predicate on the "note" field.
func NoteGT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldNote, v))
}

// NoteGTE applies the GTE predicate on the "note" field.
func NoteGTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldNote, v))
}

// NoteLT applies the LT predicate on the "note" field.
func NoteLT(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldNote, v))
}

// NoteLTE applies the LTE predicate on the "note" field.
func NoteLTE(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldNote, v))
}

// NoteContains applies the Contains predicate on the "note" field.
func NoteContains(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContains(FieldNote, v))
}

// NoteHasPrefix applies the HasPrefix predicate on the "note" field.
func NoteHasPrefix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasPrefix(FieldNote, v))
}

// NoteHasSuffix applies the HasSuffix predicate on the "note" field.
func NoteHasSuffix(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldHasSuffix(FieldNote, v))
}

// NoteIsNil applies the IsNil predicate on the "note" field.
func NoteIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldNote))
}

// NoteNotNil applies the NotNil predicate on the "note" field.
func NoteNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldNote))
}

// NoteEqualFold applies the EqualFold predicate on the "note" field.
func NoteEqualFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEqualFold(FieldNote, v))
}

// NoteContainsFold applies the ContainsFold predicate on the "note" field.
func NoteContainsFold(v string) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldContainsFold(FieldNote, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.JobApplication {
	return predicate.JobApplication(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasCandidate applies the HasEdge predicate on the "candidate" edge.
func HasCandidate() predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CandidateTable, CandidateColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCandidateWith applies the HasEdge predicate on the "candidate" edge with a given conditions (other predicates).
func HasCandidateWith(preds ...predicate.User) predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := newCandidateStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJob applies the HasEdge predicate on the "job" edge.
func HasJob() predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobWith applies the HasEdge predicate on the "job" edge with a given conditions (other predicates).
func HasJobWith(preds ...predicate.Job) predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := newJobStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSubmittedTest applies the HasEdge predicate on the "submitted_test" edge.
func HasSubmittedTest() predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, SubmittedTestTable, SubmittedTestColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSubmittedTestWith applies the HasEdge predicate on the "submitted_test" edge with a given conditions (other predicates).
func HasSubmittedTestWith(preds ...predicate.SubmittedTest) predicate.JobApplication {
	return predicate.JobApplication(func(s *sql.Selector) {
		step := newSubmittedTestStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.JobApplication) predicate.JobApplication {
	return predicate.JobApplication(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.JobApplication) predicate.JobApplication {
	return predicate.JobApplication(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.JobApplication) predicate.JobApplication {
	return predicate.JobApplication(sql.NotPredicates(p))
}
