// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/job"
	"hirehub/ent/jobapplication"
	"hirehub/ent/submittedtest"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// JobApplicationCreate is the builder for creating a JobApplication entity.
type JobApplicationCreate struct {
	config
	mutation *JobApplicationMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (jac *JobApplicationCreate) SetJobID(u uuid.UUID) *JobApplicationCreate {
	jac.mutation.SetJobID(u)
	return jac
}

// SetCandidateID sets the "candidate_id" field.
func (jac *JobApplicationCreate) SetCandidateID(u uuid.UUID) *JobApplicationCreate {
	jac.mutation.SetCandidateID(u)
	return jac
}

// SetStatus sets the "status" field.
func (jac *JobApplicationCreate) SetStatus(ms models.ApplicationStatus) *JobApplicationCreate {
	jac.mutation.SetStatus(ms)
	return jac
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableStatus(ms *models.ApplicationStatus) *JobApplicationCreate {
	if ms != nil {
		jac.SetStatus(*ms)
	}
	return jac
}

// SetOutcome sets the "outcome" field.
func (jac *JobApplicationCreate) SetOutcome(mo models.ApplicationOutcome) *JobApplicationCreate {
	jac.mutation.SetOutcome(mo)
	return jac
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableOutcome(mo *models.ApplicationOutcome) *JobApplicationCreate {
	if mo != nil {
		jac.SetOutcome(*mo)
	}
	return jac
}

// SetCandidateName sets the "candidate_name" field.
func (jac *JobApplicationCreate) SetCandidateName(s string) *JobApplicationCreate {
	jac.mutation.SetCandidateName(s)
	return jac
}

// SetCandidateEmail sets the "candidate_email" field.
func (jac *JobApplicationCreate) SetCandidateEmail(s string) *JobApplicationCreate {
	jac.mutation.SetCandidateEmail(s)
	return jac
}

// SetCandidateCountry sets the "candidate_country" field.
func (jac *JobApplicationCreate) SetCandidateCountry(s string) *JobApplicationCreate {
	jac.mutation.SetCandidateCountry(s)
	return jac
}

// SetNillableCandidateCountry sets the "candidate_country" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableCandidateCountry(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetCandidateCountry(*s)
	}
	return jac
}

// SetCandidateTimezone sets the "candidate_timezone" field.
func (jac *JobApplicationCreate) SetCandidateTimezone(s string) *JobApplicationCreate {
	jac.mutation.SetCandidateTimezone(s)
	return jac
}

// SetNillableCandidateTimezone sets the "candidate_timezone" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableCandidateTimezone(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetCandidateTimezone(*s)
	}
	return jac
}

// SetCandidateContact sets the "candidate_contact" field.
func (jac *JobApplicationCreate) SetCandidateContact(s string) *JobApplicationCreate {
	jac.mutation.SetCandidateContact(s)
	return jac
}

// SetNillableCandidateContact sets the "candidate_contact" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableCandidateContact(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetCandidateContact(*s)
	}
	return jac
}

// SetCvKey sets the "cv_key" field.
func (jac *JobApplicationCreate) SetCvKey(s string) *JobApplicationCreate {
	jac.mutation.SetCvKey(s)
	return jac
}

// SetNillableCvKey sets the "cv_key" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableCvKey(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetCvKey(*s)
	}
	return jac
}

// SetCoverLetterKey sets the "cover_letter_key" field.
func (jac *JobApplicationCreate) SetCoverLetterKey(s string) *JobApplicationCreate {
	jac.mutation.SetCoverLetterKey(s)
	return jac
}

// SetNillableCoverLetterKey sets the "cover_letter_key" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableCoverLetterKey(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetCoverLetterKey(*s)
	}
	return jac
}

// SetAboutVideoKey sets the "about_video_key" field.
func (jac *JobApplicationCreate) SetAboutVideoKey(s string) *JobApplicationCreate {
	jac.mutation.SetAboutVideoKey(s)
	return jac
}

// SetNillableAboutVideoKey sets the "about_video_key" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableAboutVideoKey(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetAboutVideoKey(*s)
	}
	return jac
}

// SetContractKey sets the "contract_key" field.
func (jac *JobApplicationCreate) SetContractKey(s string) *JobApplicationCreate {
	jac.mutation.SetContractKey(s)
	return jac
}

// SetNillableContractKey sets the "contract_key" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableContractKey(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetContractKey(*s)
	}
	return jac
}

// SetNote sets the "note" field.
func (jac *JobApplicationCreate) SetNote(s string) *JobApplicationCreate {
	jac.mutation.SetNote(s)
	return jac
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableNote(s *string) *JobApplicationCreate {
	if s != nil {
		jac.SetNote(*s)
	}
	return jac
}

// SetDeletedAt sets the "deleted_at" field.
func (jac *JobApplicationCreate) SetDeletedAt(t time.Time) *JobApplicationCreate {
	jac.mutation.SetDeletedAt(t)
	return jac
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableDeletedAt(t *time.Time) *JobApplicationCreate {
	if t != nil {
		jac.SetDeletedAt(*t)
	}
	return jac
}

// SetCreatedAt sets the "created_at" field.
func (jac *JobApplicationCreate) SetCreatedAt(t time.Time) *JobApplicationCreate {
	jac.mutation.SetCreatedAt(t)
	return jac
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableCreatedAt(t *time.Time) *JobApplicationCreate {
	if t != nil {
		jac.SetCreatedAt(*t)
	}
	return jac
}

// SetUpdatedAt sets the "updated_at" field.
func (jac *JobApplicationCreate) SetUpdatedAt(t time.Time) *JobApplicationCreate {
	jac.mutation.SetUpdatedAt(t)
	return jac
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableUpdatedAt(t *time.Time) *JobApplicationCreate {
	if t != nil {
		jac.SetUpdatedAt(*t)
	}
	return jac
}

// SetID sets the "id" field.
func (jac *JobApplicationCreate) SetID(u uuid.UUID) *JobApplicationCreate {
	jac.mutation.SetID(u)
	return jac
}

// SetNillableID sets the "id" field if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableID(u *uuid.UUID) *JobApplicationCreate {
	if u != nil {
		jac.SetID(*u)
	}
	return jac
}

// SetCandidate sets the "candidate" edge to the User entity.
func (jac *JobApplicationCreate) SetCandidate(u *User) *JobApplicationCreate {
	return jac.SetCandidateID(u.ID)
}

// SetJob sets the "job" edge to the Job entity.
func (jac *JobApplicationCreate) SetJob(j *Job) *JobApplicationCreate {
	return jac.SetJobID(j.ID)
}

// SetSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by ID.
func (jac *JobApplicationCreate) SetSubmittedTestID(id uuid.UUID) *JobApplicationCreate {
	jac.mutation.SetSubmittedTestID(id)
	return jac
}

// SetNillableSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by ID if the given value is not nil.
func (jac *JobApplicationCreate) SetNillableSubmittedTestID(id *uuid.UUID) *JobApplicationCreate {
	if id != nil {
		jac = jac.SetSubmittedTestID(*id)
	}
	return jac
}

// SetSubmittedTest sets the "submitted_test" edge to the SubmittedTest entity.
func (jac *JobApplicationCreate) SetSubmittedTest(s *SubmittedTest) *JobApplicationCreate {
	return jac.SetSubmittedTestID(s.ID)
}

// Mutation returns the JobApplicationMutation object of the builder.
func (jac *JobApplicationCreate) Mutation() *JobApplicationMutation {
	return jac.mutation
}

// Save creates the JobApplication in the database.
func (jac *JobApplicationCreate) Save(ctx context.Context) (*JobApplication, error) {
	jac.defaults()
	return withHooks(ctx, jac.sqlSave, jac.mutation, jac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (jac *JobApplicationCreate) SaveX(ctx context.Context) *JobApplication {
	v, err := jac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jac *JobApplicationCreate) Exec(ctx context.Context) error {
	_, err := jac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jac *JobApplicationCreate) ExecX(ctx context.Context) {
	if err := jac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (jac *JobApplicationCreate) defaults() {
	if _, ok := jac.mutation.Status(); !ok {
		v := jobapplication.DefaultStatus
		jac.mutation.SetStatus(v)
	}
	if _, ok := jac.mutation.Outcome(); !ok {
		v := jobapplication.DefaultOutcome
		jac.mutation.SetOutcome(v)
	}
	if _, ok := jac.mutation.CreatedAt(); !ok {
		v := jobapplication.DefaultCreatedAt()
		jac.mutation.SetCreatedAt(v)
	}
	if _, ok := jac.mutation.UpdatedAt(); !ok {
		v := jobapplication.DefaultUpdatedAt()
		jac.mutation.SetUpdatedAt(v)
	}
	if _, ok := jac.mutation.ID(); !ok {
		v := jobapplication.DefaultID()
		jac.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (jac *JobApplicationCreate) check() error {
	if _, ok := jac.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobApplication.job_id"`)}
	}
	if _, ok := jac.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "JobApplication.candidate_id"`)}
	}
	if _, ok := jac.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobApplication.status"`)}
	}
	if _, ok := jac.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "JobApplication.outcome"`)}
	}
	if _, ok := jac.mutation.CandidateName(); !ok {
		return &ValidationError{Name: "candidate_name", err: errors.New(`ent: missing required field "JobApplication.candidate_name"`)}
	}
	if _, ok := jac.mutation.CandidateEmail(); !ok {
		return &ValidationError{Name: "candidate_email", err: errors.New(`ent: missing required field "JobApplication.candidate_email"`)}
	}
	if _, ok := jac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "JobApplication.created_at"`)}
	}
	if _, ok := jac.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "JobApplication.updated_at"`)}
	}
	if len(jac.mutation.CandidateIDs()) == 0 {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required edge "JobApplication.candidate"`)}
	}
	if len(jac.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobApplication.job"`)}
	}
	return nil
}

func (jac *JobApplicationCreate) sqlSave(ctx context.Context) (*JobApplication, error) {
	if err := jac.check(); err != nil {
		return nil, err
	}
	_node, _spec := jac.createSpec()
	if err := sqlgraph.CreateNode(ctx, jac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	jac.mutation.id = &_node.ID
	jac.mutation.done = true
	return _node, nil
}

func (jac *JobApplicationCreate) createSpec() (*JobApplication, *sqlgraph.CreateSpec) {
	var (
		_node = &JobApplication{config: jac.config}
		_spec = sqlgraph.NewCreateSpec(jobapplication.Table, sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID))
	)
	if id, ok := jac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := jac.mutation.Status(); ok {
		_spec.SetField(jobapplication.FieldStatus, field.TypeInt, value)
		_node.Status = value
	}
	if value, ok := jac.mutation.Outcome(); ok {
		_spec.SetField(jobapplication.FieldOutcome, field.TypeInt, value)
		_node.Outcome = value
	}
	if value, ok := jac.mutation.CandidateName(); ok {
		_spec.SetField(jobapplication.FieldCandidateName, field.TypeString, value)
		_node.CandidateName = value
	}
	if value, ok := jac.mutation.CandidateEmail(); ok {
		_spec.SetField(jobapplication.FieldCandidateEmail, field.TypeString, value)
		_node.CandidateEmail = value
	}
	if value, ok := jac.mutation.CandidateCountry(); ok {
		_spec.SetField(jobapplication.FieldCandidateCountry, field.TypeString, value)
		_node.CandidateCountry = value
	}
	if value, ok := jac.mutation.CandidateTimezone(); ok {
		_spec.SetField(jobapplication.FieldCandidateTimezone, field.TypeString, value)
		_node.CandidateTimezone = value
	}
	if value, ok := jac.mutation.CandidateContact(); ok {
		_spec.SetField(jobapplication.FieldCandidateContact, field.TypeString, value)
		_node.CandidateContact = value
	}
	if value, ok := jac.mutation.CvKey(); ok {
		_spec.SetField(jobapplication.FieldCvKey, field.TypeString, value)
		_node.CvKey = value
	}
	if value, ok := jac.mutation.CoverLetterKey(); ok {
		_spec.SetField(jobapplication.FieldCoverLetterKey, field.TypeString, value)
		_node.CoverLetterKey = value
	}
	if value, ok := jac.mutation.AboutVideoKey(); ok {
		_spec.SetField(jobapplication.FieldAboutVideoKey, field.TypeString, value)
		_node.AboutVideoKey = value
	}
	if value, ok := jac.mutation.ContractKey(); ok {
		_spec.SetField(jobapplication.FieldContractKey, field.TypeString, value)
		_node.ContractKey = value
	}
	if value, ok := jac.mutation.Note(); ok {
		_spec.SetField(jobapplication.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if value, ok := jac.mutation.DeletedAt(); ok {
		_spec.SetField(jobapplication.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := jac.mutation.CreatedAt(); ok {
		_spec.SetField(jobapplication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := jac.mutation.UpdatedAt(); ok {
		_spec.SetField(jobapplication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := jac.mutation.CandidateIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobapplication.CandidateTable,
			Columns: []string{jobapplication.CandidateColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CandidateID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := jac.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobapplication.JobTable,
			Columns: []string{jobapplication.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := jac.mutation.SubmittedTestIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobApplicationCreateBulk is the builder for creating many JobApplication entities in bulk.
type JobApplicationCreateBulk struct {
	config
	err      error
	builders []*JobApplicationCreate
}

// Save creates the JobApplication entities in the database.
func (jacb *JobApplicationCreateBulk) Save(ctx context.Context) ([]*JobApplication, error) {
	if jacb.err != nil {
		return nil, jacb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(jacb.builders))
	nodes := make([]*JobApplication, len(jacb.builders))
	mutators := make([]Mutator, len(jacb.builders))
	for i := range jacb.builders {
		func(i int, root context.Context) {
			builder := jacb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobApplicationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, jacb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, jacb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, jacb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (jacb *JobApplicationCreateBulk) SaveX(ctx context.Context) []*JobApplication {
	v, err := jacb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (jacb *JobApplicationCreateBulk) Exec(ctx context.Context) error {
	_, err := jacb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (jacb *JobApplicationCreateBulk) ExecX(ctx context.Context) {
	if err := jacb.Exec(ctx); err != nil {
		panic(err)
	}
}
