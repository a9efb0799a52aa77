// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/jobapplication"
	"hirehub/ent/submittedtest"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubmittedTestCreate is the builder for creating a SubmittedTest entity.
type SubmittedTestCreate struct {
	config
	mutation *SubmittedTestMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (stc *SubmittedTestCreate) SetApplicationID(u uuid.UUID) *SubmittedTestCreate {
	stc.mutation.SetApplicationID(u)
	return stc
}

// SetCandidateID sets the "candidate_id" field.
func (stc *SubmittedTestCreate) SetCandidateID(u uuid.UUID) *SubmittedTestCreate {
	stc.mutation.SetCandidateID(u)
	return stc
}

// SetVideoKey sets the "video_key" field.
func (stc *SubmittedTestCreate) SetVideoKey(s string) *SubmittedTestCreate {
	stc.mutation.SetVideoKey(s)
	return stc
}

// SetAnswers sets the "answers" field.
func (stc *SubmittedTestCreate) SetAnswers(m []models.Answer) *SubmittedTestCreate {
	stc.mutation.SetAnswers(m)
	return stc
}

// SetCreatedAt sets the "created_at" field.
func (stc *SubmittedTestCreate) SetCreatedAt(t time.Time) *SubmittedTestCreate {
	stc.mutation.SetCreatedAt(t)
	return stc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (stc *SubmittedTestCreate) SetNillableCreatedAt(t *time.Time) *SubmittedTestCreate {
	if t != nil {
		stc.SetCreatedAt(*t)
	}
	return stc
}

// SetUpdatedAt sets the "updated_at" field.
func (stc *SubmittedTestCreate) SetUpdatedAt(t time.Time) *SubmittedTestCreate {
	stc.mutation.SetUpdatedAt(t)
	return stc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (stc *SubmittedTestCreate) SetNillableUpdatedAt(t *time.Time) *SubmittedTestCreate {
	if t != nil {
		stc.SetUpdatedAt(*t)
	}
	return stc
}

// SetID sets the "id" field.
func (stc *SubmittedTestCreate) SetID(u uuid.UUID) *SubmittedTestCreate {
	stc.mutation.SetID(u)
	return stc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (stc *SubmittedTestCreate) SetNillableID(u *uuid.UUID) *SubmittedTestCreate {
	if u != nil {
		stc.SetID(*u)
	}
	return stc
}

// SetApplication sets the "application" edge to the JobApplication entity.
func (stc *SubmittedTestCreate) SetApplication(j *JobApplication) *SubmittedTestCreate {
	return stc.SetApplicationID(j.ID)
}

// Mutation returns the SubmittedTestMutation object of the builder.
func (stc *SubmittedTestCreate) Mutation() *SubmittedTestMutation {
	return stc.mutation
}

// Save creates the SubmittedTest in the database.
func (stc *SubmittedTestCreate) Save(ctx context.Context) (*SubmittedTest, error) {
	stc.defaults()
	return withHooks(ctx, stc.sqlSave, stc.mutation, stc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (stc *SubmittedTestCreate) SaveX(ctx context.Context) *SubmittedTest {
	v, err := stc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (stc *SubmittedTestCreate) Exec(ctx context.Context) error {
	_, err := stc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (stc *SubmittedTestCreate) ExecX(ctx context.Context) {
	if err := stc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (stc *SubmittedTestCreate) defaults() {
	if _, ok := stc.mutation.CreatedAt(); !ok {
		v := submittedtest.DefaultCreatedAt()
		stc.mutation.SetCreatedAt(v)
	}
	if _, ok := stc.mutation.UpdatedAt(); !ok {
		v := submittedtest.DefaultUpdatedAt()
		stc.mutation.SetUpdatedAt(v)
	}
	if _, ok := stc.mutation.ID(); !ok {
		v := submittedtest.DefaultID()
		stc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (stc *SubmittedTestCreate) check() error {
	if _, ok := stc.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "SubmittedTest.application_id"`)}
	}
	if _, ok := stc.mutation.CandidateID(); !ok {
		return &ValidationError{Name: "candidate_id", err: errors.New(`ent: missing required field "SubmittedTest.candidate_id"`)}
	}
	if _, ok := stc.mutation.VideoKey(); !ok {
		return &ValidationError{Name: "video_key", err: errors.New(`ent: missing required field "SubmittedTest.video_key"`)}
	}
	if _, ok := stc.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "SubmittedTest.answers"`)}
	}
	if _, ok := stc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SubmittedTest.created_at"`)}
	}
	if _, ok := stc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SubmittedTest.updated_at"`)}
	}
	if len(stc.mutation.ApplicationIDs()) == 0 {
		return &ValidationError{Name: "application", err: errors.New(`ent: missing required edge "SubmittedTest.application"`)}
	}
	return nil
}

func (stc *SubmittedTestCreate) sqlSave(ctx context.Context) (*SubmittedTest, error) {
	if err := stc.check(); err != nil {
		return nil, err
	}
	_node, _spec := stc.createSpec()
	if err := sqlgraph.CreateNode(ctx, stc.driver, _spec); err != nil {
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
	stc.mutation.id = &_node.ID
	stc.mutation.done = true
	return _node, nil
}

func (stc *SubmittedTestCreate) createSpec() (*SubmittedTest, *sqlgraph.CreateSpec) {
	var (
		_node = &SubmittedTest{config: stc.config}
		_spec = sqlgraph.NewCreateSpec(submittedtest.Table, sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID))
	)
	if id, ok := stc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := stc.mutation.CandidateID(); ok {
		_spec.SetField(submittedtest.FieldCandidateID, field.TypeUUID, value)
		_node.CandidateID = value
	}
	if value, ok := stc.mutation.VideoKey(); ok {
		_spec.SetField(submittedtest.FieldVideoKey, field.TypeString, value)
		_node.VideoKey = value
	}
	if value, ok := stc.mutation.Answers(); ok {
		_spec.SetField(submittedtest.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := stc.mutation.CreatedAt(); ok {
		_spec.SetField(submittedtest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := stc.mutation.UpdatedAt(); ok {
		_spec.SetField(submittedtest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := stc.mutation.ApplicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   submittedtest.ApplicationTable,
			Columns: []string{submittedtest.ApplicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobapplication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ApplicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubmittedTestCreateBulk is the builder for creating many SubmittedTest entities in bulk.
type SubmittedTestCreateBulk struct {
	config
	err      error
	builders []*SubmittedTestCreate
}

// Save creates the SubmittedTest entities in the database.
func (stcb *SubmittedTestCreateBulk) Save(ctx context.Context) ([]*SubmittedTest, error) {
	if stcb.err != nil {
		return nil, stcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(stcb.builders))
	nodes := make([]*SubmittedTest, len(stcb.builders))
	mutators := make([]Mutator, len(stcb.builders))
	for i := range stcb.builders {
		func(i int, root context.Context) {
			builder := stcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubmittedTestMutation)
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
					_, err = mutators[i+1].Mutate(root, stcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, stcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, stcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (stcb *SubmittedTestCreateBulk) SaveX(ctx context.Context) []*SubmittedTest {
	v, err := stcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (stcb *SubmittedTestCreateBulk) Exec(ctx context.Context) error {
	_, err := stcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (stcb *SubmittedTestCreateBulk) ExecX(ctx context.Context) {
	if err := stcb.Exec(ctx); err != nil {
		panic(err)
	}
}
