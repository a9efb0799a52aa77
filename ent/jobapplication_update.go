// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/jobapplication"
	"hirehub/ent/predicate"
	"hirehub/ent/submittedtest"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// JobApplicationUpdate is the builder for updating JobApplication entities.
type JobApplicationUpdate struct {
	config
	hooks    []Hook
	mutation *JobApplicationMutation
}

// Where appends a list predicates to the JobApplicationUpdate builder.
func (jau *JobApplicationUpdate) Where(ps ...predicate.JobApplication) *JobApplicationUpdate {
	jau.mutation.Where(ps...)
	return jau
}

// SetStatus sets the "status" field.
func (jau *JobApplicationUpdate) SetStatus(ms models.ApplicationStatus) *JobApplicationUpdate {
	jau.mutation.ResetStatus()
	jau.mutation.SetStatus(ms)
	return jau
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableStatus(ms *models.ApplicationStatus) *JobApplicationUpdate {
	if ms != nil {
		jau.SetStatus(*ms)
	}
	return jau
}

// AddStatus adds ms to the "status" field.
func (jau *JobApplicationUpdate) AddStatus(ms models.ApplicationStatus) *JobApplicationUpdate {
	jau.mutation.AddStatus(ms)
	return jau
}

// SetOutcome sets the "outcome" field.
func (jau *JobApplicationUpdate) SetOutcome(mo models.ApplicationOutcome) *JobApplicationUpdate {
	jau.mutation.ResetOutcome()
	jau.mutation.SetOutcome(mo)
	return jau
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableOutcome(mo *models.ApplicationOutcome) *JobApplicationUpdate {
	if mo != nil {
		jau.SetOutcome(*mo)
	}
	return jau
}

// AddOutcome adds mo to the "outcome" field.
func (jau *JobApplicationUpdate) AddOutcome(mo models.ApplicationOutcome) *JobApplicationUpdate {
	jau.mutation.AddOutcome(mo)
	return jau
}

// SetCandidateName sets the "candidate_name" field.
func (jau *JobApplicationUpdate) SetCandidateName(s string) *JobApplicationUpdate {
	jau.mutation.SetCandidateName(s)
	return jau
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCandidateName(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCandidateName(*s)
	}
	return jau
}

// SetCandidateEmail sets the "candidate_email" field.
func (jau *JobApplicationUpdate) SetCandidateEmail(s string) *JobApplicationUpdate {
	jau.mutation.SetCandidateEmail(s)
	return jau
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCandidateEmail(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCandidateEmail(*s)
	}
	return jau
}

// SetCandidateCountry sets the "candidate_country" field.
func (jau *JobApplicationUpdate) SetCandidateCountry(s string) *JobApplicationUpdate {
	jau.mutation.SetCandidateCountry(s)
	return jau
}

// SetNillableCandidateCountry sets the "candidate_country" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCandidateCountry(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCandidateCountry(*s)
	}
	return jau
}

// ClearCandidateCountry clears the value of the "candidate_country" field.
func (jau *JobApplicationUpdate) ClearCandidateCountry() *JobApplicationUpdate {
	jau.mutation.ClearCandidateCountry()
	return jau
}

// SetCandidateTimezone sets the "candidate_timezone" field.
func (jau *JobApplicationUpdate) SetCandidateTimezone(s string) *JobApplicationUpdate {
	jau.mutation.SetCandidateTimezone(s)
	return jau
}

// SetNillableCandidateTimezone sets the "candidate_timezone" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCandidateTimezone(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCandidateTimezone(*s)
	}
	return jau
}

// ClearCandidateTimezone clears the value of the "candidate_timezone" field.
func (jau *JobApplicationUpdate) ClearCandidateTimezone() *JobApplicationUpdate {
	jau.mutation.ClearCandidateTimezone()
	return jau
}

// SetCandidateContact sets the "candidate_contact" field.
func (jau *JobApplicationUpdate) SetCandidateContact(s string) *JobApplicationUpdate {
	jau.mutation.SetCandidateContact(s)
	return jau
}

// SetNillableCandidateContact sets the "candidate_contact" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCandidateContact(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCandidateContact(*s)
	}
	return jau
}

// ClearCandidateContact clears the value of the "candidate_contact" field.
func (jau *JobApplicationUpdate) ClearCandidateContact() *JobApplicationUpdate {
	jau.mutation.ClearCandidateContact()
	return jau
}

// SetCvKey sets the "cv_key" field.
func (jau *JobApplicationUpdate) SetCvKey(s string) *JobApplicationUpdate {
	jau.mutation.SetCvKey(s)
	return jau
}

// SetNillableCvKey sets the "cv_key" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCvKey(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCvKey(*s)
	}
	return jau
}

// ClearCvKey clears the value of the "cv_key" field.
func (jau *JobApplicationUpdate) ClearCvKey() *JobApplicationUpdate {
	jau.mutation.ClearCvKey()
	return jau
}

// SetCoverLetterKey sets the "cover_letter_key" field.
func (jau *JobApplicationUpdate) SetCoverLetterKey(s string) *JobApplicationUpdate {
	jau.mutation.SetCoverLetterKey(s)
	return jau
}

// SetNillableCoverLetterKey sets the "cover_letter_key" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableCoverLetterKey(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetCoverLetterKey(*s)
	}
	return jau
}

// ClearCoverLetterKey clears the value of the "cover_letter_key" field.
func (jau *JobApplicationUpdate) ClearCoverLetterKey() *JobApplicationUpdate {
	jau.mutation.ClearCoverLetterKey()
	return jau
}

// SetAboutVideoKey sets the "about_video_key" field.
func (jau *JobApplicationUpdate) SetAboutVideoKey(s string) *JobApplicationUpdate {
	jau.mutation.SetAboutVideoKey(s)
	return jau
}

// SetNillableAboutVideoKey sets the "about_video_key" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableAboutVideoKey(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetAboutVideoKey(*s)
	}
	return jau
}

// ClearAboutVideoKey clears the value of the "about_video_key" field.
func (jau *JobApplicationUpdate) ClearAboutVideoKey() *JobApplicationUpdate {
	jau.mutation.ClearAboutVideoKey()
	return jau
}

// SetContractKey sets the "contract_key" field.
func (jau *JobApplicationUpdate) SetContractKey(s string) *JobApplicationUpdate {
	jau.mutation.SetContractKey(s)
	return jau
}

// SetNillableContractKey sets the "contract_key" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableContractKey(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetContractKey(*s)
	}
	return jau
}

// ClearContractKey clears the value of the "contract_key" field.
func (jau *JobApplicationUpdate) ClearContractKey() *JobApplicationUpdate {
	jau.mutation.ClearContractKey()
	return jau
}

// SetNote sets the "note" field.
func (jau *JobApplicationUpdate) SetNote(s string) *JobApplicationUpdate {
	jau.mutation.SetNote(s)
	return jau
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableNote(s *string) *JobApplicationUpdate {
	if s != nil {
		jau.SetNote(*s)
	}
	return jau
}

// ClearNote clears the value of the "note" field.
func (jau *JobApplicationUpdate) ClearNote() *JobApplicationUpdate {
	jau.mutation.ClearNote()
	return jau
}

// SetDeletedAt sets the "deleted_at" field.
func (jau *JobApplicationUpdate) SetDeletedAt(t time.Time) *JobApplicationUpdate {
	jau.mutation.SetDeletedAt(t)
	return jau
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableDeletedAt(t *time.Time) *JobApplicationUpdate {
	if t != nil {
		jau.SetDeletedAt(*t)
	}
	return jau
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (jau *JobApplicationUpdate) ClearDeletedAt() *JobApplicationUpdate {
	jau.mutation.ClearDeletedAt()
	return jau
}

// SetUpdatedAt sets the "updated_at" field.
func (jau *JobApplicationUpdate) SetUpdatedAt(t time.Time) *JobApplicationUpdate {
	jau.mutation.SetUpdatedAt(t)
	return jau
}

// SetSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by ID.
func (jau *JobApplicationUpdate) SetSubmittedTestID(id uuid.UUID) *JobApplicationUpdate {
	jau.mutation.SetSubmittedTestID(id)
	return jau
}

// SetNillableSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by ID if the given value is not nil.
func (jau *JobApplicationUpdate) SetNillableSubmittedTestID(id *uuid.UUID) *JobApplicationUpdate {
	if id != nil {
		jau = jau.SetSubmittedTestID(*id)
	}
	return jau
}

// SetSubmittedTest sets the "submitted_test" edge to the SubmittedTest entity.
func (jau *JobApplicationUpdate) SetSubmittedTest(s *SubmittedTest) *JobApplicationUpdate {
	return jau.SetSubmittedTestID(s.ID)
}

// Mutation returns the JobApplicationMutation object of the builder.
func (jau *JobApplicationUpdate) Mutation() *JobApplicationMutation {
	return jau.mutation
}

// ClearSubmittedTest clears the "submitted_test" edge to the SubmittedTest entity.
func (jau *JobApplicationUpdate) ClearSubmittedTest() *JobApplicationUpdate {
	jau.mutation.ClearSubmittedTest()
	return jau
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (jau *JobApplicationUpdate) Save(ctx context.Context) (int, error) {
	jau.defaults()
	return withHooks(ctx, jau.sqlSave, jau.mutation, jau.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jau *JobApplicationUpdate) SaveX(ctx context.Context) int {
	affected, err := jau.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (jau *JobApplicationUpdate) Exec(ctx context.Context) error {
	_, err := jau.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jau *JobApplicationUpdate) ExecX(ctx context.Context) {
	if err := jau.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jau *JobApplicationUpdate) defaults() {
	if _, ok := jau.mutation.UpdatedAt(); !ok {
		v := jobapplication.UpdateDefaultUpdatedAt()
		jau.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jau *JobApplicationUpdate) check() error {
	if jau.mutation.CandidateCleared() && len(jau.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.candidate"`)
	}
	if jau.mutation.JobCleared() && len(jau.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.job"`)
	}
	return nil
}

func (jau *JobApplicationUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := jau.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobapplication.Table, jobapplication.Columns, sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID))
	if ps := jau.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jau.mutation.Status(); ok {
		_spec.SetField(jobapplication.FieldStatus, field.TypeInt, value)
	}
	if value, ok := jau.mutation.AddedStatus(); ok {
		_spec.AddField(jobapplication.FieldStatus, field.TypeInt, value)
	}
	if value, ok := jau.mutation.Outcome(); ok {
		_spec.SetField(jobapplication.FieldOutcome, field.TypeInt, value)
	}
	if value, ok := jau.mutation.AddedOutcome(); ok {
		_spec.AddField(jobapplication.FieldOutcome, field.TypeInt, value)
	}
	if value, ok := jau.mutation.CandidateName(); ok {
		_spec.SetField(jobapplication.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := jau.mutation.CandidateEmail(); ok {
		_spec.SetField(jobapplication.FieldCandidateEmail, field.TypeString, value)
	}
	if value, ok := jau.mutation.CandidateCountry(); ok {
		_spec.SetField(jobapplication.FieldCandidateCountry, field.TypeString, value)
	}
	if jau.mutation.CandidateCountryCleared() {
		_spec.ClearField(jobapplication.FieldCandidateCountry, field.TypeString)
	}
	if value, ok := jau.mutation.CandidateTimezone(); ok {
		_spec.SetField(jobapplication.FieldCandidateTimezone, field.TypeString, value)
	}
	if jau.mutation.CandidateTimezoneCleared() {
		_spec.ClearField(jobapplication.FieldCandidateTimezone, field.TypeString)
	}
	if value, ok := jau.mutation.CandidateContact(); ok {
		_spec.SetField(jobapplication.FieldCandidateContact, field.TypeString, value)
	}
	if jau.mutation.CandidateContactCleared() {
		_spec.ClearField(jobapplication.FieldCandidateContact, field.TypeString)
	}
	if value, ok := jau.mutation.CvKey(); ok {
		_spec.SetField(jobapplication.FieldCvKey, field.TypeString, value)
	}
	if jau.mutation.CvKeyCleared() {
		_spec.ClearField(jobapplication.FieldCvKey, field.TypeString)
	}
	if value, ok := jau.mutation.CoverLetterKey(); ok {
		_spec.SetField(jobapplication.FieldCoverLetterKey, field.TypeString, value)
	}
	if jau.mutation.CoverLetterKeyCleared() {
		_spec.ClearField(jobapplication.FieldCoverLetterKey, field.TypeString)
	}
	if value, ok := jau.mutation.AboutVideoKey(); ok {
		_spec.SetField(jobapplication.FieldAboutVideoKey, field.TypeString, value)
	}
	if jau.mutation.AboutVideoKeyCleared() {
		_spec.ClearField(jobapplication.FieldAboutVideoKey, field.TypeString)
	}
	if value, ok := jau.mutation.ContractKey(); ok {
		_spec.SetField(jobapplication.FieldContractKey, field.TypeString, value)
	}
	if jau.mutation.ContractKeyCleared() {
		_spec.ClearField(jobapplication.FieldContractKey, field.TypeString)
	}
	if value, ok := jau.mutation.Note(); ok {
		_spec.SetField(jobapplication.FieldNote, field.TypeString, value)
	}
	if jau.mutation.NoteCleared() {
		_spec.ClearField(jobapplication.FieldNote, field.TypeString)
	}
	if value, ok := jau.mutation.DeletedAt(); ok {
		_spec.SetField(jobapplication.FieldDeletedAt, field.TypeTime, value)
	}
	if jau.mutation.DeletedAtCleared() {
		_spec.ClearField(jobapplication.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := jau.mutation.UpdatedAt(); ok {
		_spec.SetField(jobapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if jau.mutation.SubmittedTestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   jobapplication.SubmittedTestTable,
			Columns: []string{jobapplication.SubmittedTestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := jau.mutation.SubmittedTestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   jobapplication.SubmittedTestTable,
			Columns: []string{jobapplication.SubmittedTestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, jau.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	jau.mutation.done = true
	return n, nil
}

// JobApplicationUpdateOne is the builder for updating a single JobApplication entity.
type JobApplicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobApplicationMutation
}

// SetStatus sets the "status" field.
func (jauo *JobApplicationUpdateOne) SetStatus(ms models.ApplicationStatus) *JobApplicationUpdateOne {
	jauo.mutation.ResetStatus()
	jauo.mutation.SetStatus(ms)
	return jauo
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableStatus(ms *models.ApplicationStatus) *JobApplicationUpdateOne {
	if ms != nil {
		jauo.SetStatus(*ms)
	}
	return jauo
}

// AddStatus adds ms to the "status" field.
func (jauo *JobApplicationUpdateOne) AddStatus(ms models.ApplicationStatus) *JobApplicationUpdateOne {
	jauo.mutation.AddStatus(ms)
	return jauo
}

// SetOutcome sets the "outcome" field.
func (jauo *JobApplicationUpdateOne) SetOutcome(mo models.ApplicationOutcome) *JobApplicationUpdateOne {
	jauo.mutation.ResetOutcome()
	jauo.mutation.SetOutcome(mo)
	return jauo
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableOutcome(mo *models.ApplicationOutcome) *JobApplicationUpdateOne {
	if mo != nil {
		jauo.SetOutcome(*mo)
	}
	return jauo
}

// AddOutcome adds mo to the "outcome" field.
func (jauo *JobApplicationUpdateOne) AddOutcome(mo models.ApplicationOutcome) *JobApplicationUpdateOne {
	jauo.mutation.AddOutcome(mo)
	return jauo
}

// SetCandidateName sets the "candidate_name" field.
func (jauo *JobApplicationUpdateOne) SetCandidateName(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCandidateName(s)
	return jauo
}

// SetNillableCandidateName sets the "candidate_name" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCandidateName(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCandidateName(*s)
	}
	return jauo
}

// SetCandidateEmail sets the "candidate_email" field.
func (jauo *JobApplicationUpdateOne) SetCandidateEmail(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCandidateEmail(s)
	return jauo
}

// SetNillableCandidateEmail sets the "candidate_email" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCandidateEmail(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCandidateEmail(*s)
	}
	return jauo
}

// SetCandidateCountry sets the "candidate_country" field.
func (jauo *JobApplicationUpdateOne) SetCandidateCountry(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCandidateCountry(s)
	return jauo
}

// SetNillableCandidateCountry sets the "candidate_country" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCandidateCountry(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCandidateCountry(*s)
	}
	return jauo
}

// ClearCandidateCountry clears the value of the "candidate_country" field.
func (jauo *JobApplicationUpdateOne) ClearCandidateCountry() *JobApplicationUpdateOne {
	jauo.mutation.ClearCandidateCountry()
	return jauo
}

// SetCandidateTimezone sets the "candidate_timezone" field.
func (jauo *JobApplicationUpdateOne) SetCandidateTimezone(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCandidateTimezone(s)
	return jauo
}

// SetNillableCandidateTimezone sets the "candidate_timezone" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCandidateTimezone(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCandidateTimezone(*s)
	}
	return jauo
}

// ClearCandidateTimezone clears the value of the "candidate_timezone" field.
func (jauo *JobApplicationUpdateOne) ClearCandidateTimezone() *JobApplicationUpdateOne {
	jauo.mutation.ClearCandidateTimezone()
	return jauo
}

// SetCandidateContact sets the "candidate_contact" field.
func (jauo *JobApplicationUpdateOne) SetCandidateContact(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCandidateContact(s)
	return jauo
}

// SetNillableCandidateContact sets the "candidate_contact" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCandidateContact(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCandidateContact(*s)
	}
	return jauo
}

// ClearCandidateContact clears the value of the "candidate_contact" field.
func (jauo *JobApplicationUpdateOne) ClearCandidateContact() *JobApplicationUpdateOne {
	jauo.mutation.ClearCandidateContact()
	return jauo
}

// SetCvKey sets the "cv_key" field.
func (jauo *JobApplicationUpdateOne) SetCvKey(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCvKey(s)
	return jauo
}

// SetNillableCvKey sets the "cv_key" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCvKey(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCvKey(*s)
	}
	return jauo
}

// ClearCvKey clears the value of the "cv_key" field.
func (jauo *JobApplicationUpdateOne) ClearCvKey() *JobApplicationUpdateOne {
	jauo.mutation.ClearCvKey()
	return jauo
}

// SetCoverLetterKey sets the "cover_letter_key" field.
func (jauo *JobApplicationUpdateOne) SetCoverLetterKey(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetCoverLetterKey(s)
	return jauo
}

// SetNillableCoverLetterKey sets the "cover_letter_key" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableCoverLetterKey(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetCoverLetterKey(*s)
	}
	return jauo
}

// ClearCoverLetterKey clears the value of the "cover_letter_key" field.
func (jauo *JobApplicationUpdateOne) ClearCoverLetterKey() *JobApplicationUpdateOne {
	jauo.mutation.ClearCoverLetterKey()
	return jauo
}

// SetAboutVideoKey sets the "about_video_key" field.
func (jauo *JobApplicationUpdateOne) SetAboutVideoKey(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetAboutVideoKey(s)
	return jauo
}

// SetNillableAboutVideoKey sets the "about_video_key" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableAboutVideoKey(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetAboutVideoKey(*s)
	}
	return jauo
}

// ClearAboutVideoKey clears the value of the "about_video_key" field.
func (jauo *JobApplicationUpdateOne) ClearAboutVideoKey() *JobApplicationUpdateOne {
	jauo.mutation.ClearAboutVideoKey()
	return jauo
}

// SetContractKey sets the "contract_key" field.
func (jauo *JobApplicationUpdateOne) SetContractKey(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetContractKey(s)
	return jauo
}

// SetNillableContractKey sets the "contract_key" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableContractKey(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetContractKey(*s)
	}
	return jauo
}

// ClearContractKey clears the value of the "contract_key" field.
func (jauo *JobApplicationUpdateOne) ClearContractKey() *JobApplicationUpdateOne {
	jauo.mutation.ClearContractKey()
	return jauo
}

// SetNote sets the "note" field.
func (jauo *JobApplicationUpdateOne) SetNote(s string) *JobApplicationUpdateOne {
	jauo.mutation.SetNote(s)
	return jauo
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableNote(s *string) *JobApplicationUpdateOne {
	if s != nil {
		jauo.SetNote(*s)
	}
	return jauo
}

// ClearNote clears the value of the "note" field.
func (jauo *JobApplicationUpdateOne) ClearNote() *JobApplicationUpdateOne {
	jauo.mutation.ClearNote()
	return jauo
}

// SetDeletedAt sets the "deleted_at" field.
func (jauo *JobApplicationUpdateOne) SetDeletedAt(t time.Time) *JobApplicationUpdateOne {
	jauo.mutation.SetDeletedAt(t)
	return jauo
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableDeletedAt(t *time.Time) *JobApplicationUpdateOne {
	if t != nil {
		jauo.SetDeletedAt(*t)
	}
	return jauo
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (jauo *JobApplicationUpdateOne) ClearDeletedAt() *JobApplicationUpdateOne {
	jauo.mutation.ClearDeletedAt()
	return jauo
}

// SetUpdatedAt sets the "updated_at" field.
func (jauo *JobApplicationUpdateOne) SetUpdatedAt(t time.Time) *JobApplicationUpdateOne {
	jauo.mutation.SetUpdatedAt(t)
	return jauo
}

// SetSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by ID.
func (jauo *JobApplicationUpdateOne) SetSubmittedTestID(id uuid.UUID) *JobApplicationUpdateOne {
	jauo.mutation.SetSubmittedTestID(id)
	return jauo
}

// SetNillableSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by ID if the given value is not nil.
func (jauo *JobApplicationUpdateOne) SetNillableSubmittedTestID(id *uuid.UUID) *JobApplicationUpdateOne {
	if id != nil {
		jauo = jauo.SetSubmittedTestID(*id)
	}
	return jauo
}

// SetSubmittedTest sets the "submitted_test" edge to the SubmittedTest entity.
func (jauo *JobApplicationUpdateOne) SetSubmittedTest(s *SubmittedTest) *JobApplicationUpdateOne {
	return jauo.SetSubmittedTestID(s.ID)
}

// Mutation returns the JobApplicationMutation object of the builder.
func (jauo *JobApplicationUpdateOne) Mutation() *JobApplicationMutation {
	return jauo.mutation
}

// ClearSubmittedTest clears the "submitted_test" edge to the SubmittedTest entity.
func (jauo *JobApplicationUpdateOne) ClearSubmittedTest() *JobApplicationUpdateOne {
	jauo.mutation.ClearSubmittedTest()
	return jauo
}

// Where appends a list predicates to the JobApplicationUpdate builder.
func (jauo *JobApplicationUpdateOne) Where(ps ...predicate.JobApplication) *JobApplicationUpdateOne {
	jauo.mutation.Where(ps...)
	return jauo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (jauo *JobApplicationUpdateOne) Select(field string, fields ...string) *JobApplicationUpdateOne {
	jauo.fields = append([]string{field}, fields...)
	return jauo
}

// Save executes the query and returns the updated JobApplication entity.
func (jauo *JobApplicationUpdateOne) Save(ctx context.Context) (*JobApplication, error) {
	jauo.defaults()
	return withHooks(ctx, jauo.sqlSave, jauo.mutation, jauo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (jauo *JobApplicationUpdateOne) SaveX(ctx context.Context) *JobApplication {
	node, err := jauo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (jauo *JobApplicationUpdateOne) Exec(ctx context.Context) error {
	_, err := jauo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jauo *JobApplicationUpdateOne) ExecX(ctx context.Context) {
	if err := jauo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jauo *JobApplicationUpdateOne) defaults() {
	if _, ok := jauo.mutation.UpdatedAt(); !ok {
		v := jobapplication.UpdateDefaultUpdatedAt()
		jauo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jauo *JobApplicationUpdateOne) check() error {
	if jauo.mutation.CandidateCleared() && len(jauo.mutation.CandidateIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.candidate"`)
	}
	if jauo.mutation.JobCleared() && len(jauo.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobApplication.job"`)
	}
	return nil
}

func (jauo *JobApplicationUpdateOne) sqlSave(ctx context.Context) (_node *JobApplication, err error) {
	if err := jauo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobapplication.Table, jobapplication.Columns, sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID))
	id, ok := jauo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobApplication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := jauo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobapplication.FieldID)
		for _, f := range fields {
			if !jobapplication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobapplication.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := jauo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := jauo.mutation.Status(); ok {
		_spec.SetField(jobapplication.FieldStatus, field.TypeInt, value)
	}
	if value, ok := jauo.mutation.AddedStatus(); ok {
		_spec.AddField(jobapplication.FieldStatus, field.TypeInt, value)
	}
	if value, ok := jauo.mutation.Outcome(); ok {
		_spec.SetField(jobapplication.FieldOutcome, field.TypeInt, value)
	}
	if value, ok := jauo.mutation.AddedOutcome(); ok {
		_spec.AddField(jobapplication.FieldOutcome, field.TypeInt, value)
	}
	if value, ok := jauo.mutation.CandidateName(); ok {
		_spec.SetField(jobapplication.FieldCandidateName, field.TypeString, value)
	}
	if value, ok := jauo.mutation.CandidateEmail(); ok {
		_spec.SetField(jobapplication.FieldCandidateEmail, field.TypeString, value)
	}
	if value, ok := jauo.mutation.CandidateCountry(); ok {
		_spec.SetField(jobapplication.FieldCandidateCountry, field.TypeString, value)
	}
	if jauo.mutation.CandidateCountryCleared() {
		_spec.ClearField(jobapplication.FieldCandidateCountry, field.TypeString)
	}
	if value, ok := jauo.mutation.CandidateTimezone(); ok {
		_spec.SetField(jobapplication.FieldCandidateTimezone, field.TypeString, value)
	}
	if jauo.mutation.CandidateTimezoneCleared() {
		_spec.ClearField(jobapplication.FieldCandidateTimezone, field.TypeString)
	}
	if value, ok := jauo.mutation.CandidateContact(); ok {
		_spec.SetField(jobapplication.FieldCandidateContact, field.TypeString, value)
	}
	if jauo.mutation.CandidateContactCleared() {
		_spec.ClearField(jobapplication.FieldCandidateContact, field.TypeString)
	}
	if value, ok := jauo.mutation.CvKey(); ok {
		_spec.SetField(jobapplication.FieldCvKey, field.TypeString, value)
	}
	if jauo.mutation.CvKeyCleared() {
		_spec.ClearField(jobapplication.FieldCvKey, field.TypeString)
	}
	if value, ok := jauo.mutation.CoverLetterKey(); ok {
		_spec.SetField(jobapplication.FieldCoverLetterKey, field.TypeString, value)
	}
	if jauo.mutation.CoverLetterKeyCleared() {
		_spec.ClearField(jobapplication.FieldCoverLetterKey, field.TypeString)
	}
	if value, ok := jauo.mutation.AboutVideoKey(); ok {
		_spec.SetField(jobapplication.FieldAboutVideoKey, field.TypeString, value)
	}
	if jauo.mutation.AboutVideoKeyCleared() {
		_spec.ClearField(jobapplication.FieldAboutVideoKey, field.TypeString)
	}
	if value, ok := jauo.mutation.ContractKey(); ok {
		_spec.SetField(jobapplication.FieldContractKey, field.TypeString, value)
	}
	if jauo.mutation.ContractKeyCleared() {
		_spec.ClearField(jobapplication.FieldContractKey, field.TypeString)
	}
	if value, ok := jauo.mutation.Note(); ok {
		_spec.SetField(jobapplication.FieldNote, field.TypeString, value)
	}
	if jauo.mutation.NoteCleared() {
		_spec.ClearField(jobapplication.FieldNote, field.TypeString)
	}
	if value, ok := jauo.mutation.DeletedAt(); ok {
		_spec.SetField(jobapplication.FieldDeletedAt, field.TypeTime, value)
	}
	if jauo.mutation.DeletedAtCleared() {
		_spec.ClearField(jobapplication.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := jauo.mutation.UpdatedAt(); ok {
		_spec.SetField(jobapplication.FieldUpdatedAt, field.TypeTime, value)
	}
	if jauo.mutation.SubmittedTestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   jobapplication.SubmittedTestTable,
			Columns: []string{jobapplication.SubmittedTestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := jauo.mutation.SubmittedTestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   jobapplication.SubmittedTestTable,
			Columns: []string{jobapplication.SubmittedTestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobApplication{config: jauo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, jauo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobapplication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	jauo.mutation.done = true
	return _node, nil
}
