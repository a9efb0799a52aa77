// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/predicate"
	"hirehub/ent/submittedtest"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// SubmittedTestUpdate is the builder for updating SubmittedTest entities.
type SubmittedTestUpdate struct {
	config
	hooks    []Hook
	mutation *SubmittedTestMutation
}

// Where appends a list predicates to the SubmittedTestUpdate builder.
func (stu *SubmittedTestUpdate) Where(ps ...predicate.SubmittedTest) *SubmittedTestUpdate {
	stu.mutation.Where(ps...)
	return stu
}

// SetAnswers sets the "answers" field.
func (stu *SubmittedTestUpdate) SetAnswers(m []models.Answer) *SubmittedTestUpdate {
	stu.mutation.SetAnswers(m)
	return stu
}

// AppendAnswers appends m to the "answers" field.
func (stu *SubmittedTestUpdate) AppendAnswers(m []models.Answer) *SubmittedTestUpdate {
	stu.mutation.AppendAnswers(m)
	return stu
}

// SetUpdatedAt sets the "updated_at" field.
func (stu *SubmittedTestUpdate) SetUpdatedAt(t time.Time) *SubmittedTestUpdate {
	stu.mutation.SetUpdatedAt(t)
	return stu
}

// Mutation returns the SubmittedTestMutation object of the builder.
func (stu *SubmittedTestUpdate) Mutation() *SubmittedTestMutation {
	return stu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (stu *SubmittedTestUpdate) Save(ctx context.Context) (int, error) {
	stu.defaults()
	return withHooks(ctx, stu.sqlSave, stu.mutation, stu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (stu *SubmittedTestUpdate) SaveX(ctx context.Context) int {
	affected, err := stu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (stu *SubmittedTestUpdate) Exec(ctx context.Context) error {
	_, err := stu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (stu *SubmittedTestUpdate) ExecX(ctx context.Context) {
	if err := stu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (stu *SubmittedTestUpdate) defaults() {
	if _, ok := stu.mutation.UpdatedAt(); !ok {
		v := submittedtest.UpdateDefaultUpdatedAt()
		stu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (stu *SubmittedTestUpdate) check() error {
	if stu.mutation.ApplicationCleared() && len(stu.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedTest.application"`)
	}
	return nil
}

func (stu *SubmittedTestUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := stu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(submittedtest.Table, submittedtest.Columns, sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID))
	if ps := stu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := stu.mutation.Answers(); ok {
		_spec.SetField(submittedtest.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := stu.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submittedtest.FieldAnswers, value)
		})
	}
	if value, ok := stu.mutation.UpdatedAt(); ok {
		_spec.SetField(submittedtest.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, stu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submittedtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	stu.mutation.done = true
	return n, nil
}

// SubmittedTestUpdateOne is the builder for updating a single SubmittedTest entity.
type SubmittedTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmittedTestMutation
}

// SetAnswers sets the "answers" field.
func (stuo *SubmittedTestUpdateOne) SetAnswers(m []models.Answer) *SubmittedTestUpdateOne {
	stuo.mutation.SetAnswers(m)
	return stuo
}

// AppendAnswers appends m to the "answers" field.
func (stuo *SubmittedTestUpdateOne) AppendAnswers(m []models.Answer) *SubmittedTestUpdateOne {
	stuo.mutation.AppendAnswers(m)
	return stuo
}

// SetUpdatedAt sets the "updated_at" field.
func (stuo *SubmittedTestUpdateOne) SetUpdatedAt(t time.Time) *SubmittedTestUpdateOne {
	stuo.mutation.SetUpdatedAt(t)
	return stuo
}

// Mutation returns the SubmittedTestMutation object of the builder.
func (stuo *SubmittedTestUpdateOne) Mutation() *SubmittedTestMutation {
	return stuo.mutation
}

// Where appends a list predicates to the SubmittedTestUpdate builder.
func (stuo *SubmittedTestUpdateOne) Where(ps ...predicate.SubmittedTest) *SubmittedTestUpdateOne {
	stuo.mutation.Where(ps...)
	return stuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (stuo *SubmittedTestUpdateOne) Select(field string, fields ...string) *SubmittedTestUpdateOne {
	stuo.fields = append([]string{field}, fields...)
	return stuo
}

// Save executes the query and returns the updated SubmittedTest entity.
func (stuo *SubmittedTestUpdateOne) Save(ctx context.Context) (*SubmittedTest, error) {
	stuo.defaults()
	return withHooks(ctx, stuo.sqlSave, stuo.mutation, stuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (stuo *SubmittedTestUpdateOne) SaveX(ctx context.Context) *SubmittedTest {
	node, err := stuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (stuo *SubmittedTestUpdateOne) Exec(ctx context.Context) error {
	_, err := stuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (stuo *SubmittedTestUpdateOne) ExecX(ctx context.Context) {
	if err := stuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (stuo *SubmittedTestUpdateOne) defaults() {
	if _, ok := stuo.mutation.UpdatedAt(); !ok {
		v := submittedtest.UpdateDefaultUpdatedAt()
		stuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (stuo *SubmittedTestUpdateOne) check() error {
	if stuo.mutation.ApplicationCleared() && len(stuo.mutation.ApplicationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubmittedTest.application"`)
	}
	return nil
}

func (stuo *SubmittedTestUpdateOne) sqlSave(ctx context.Context) (_node *SubmittedTest, err error) {
	if err := stuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submittedtest.Table, submittedtest.Columns, sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID))
	id, ok := stuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubmittedTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := stuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submittedtest.FieldID)
		for _, f := range fields {
			if !submittedtest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submittedtest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := stuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := stuo.mutation.Answers(); ok {
		_spec.SetField(submittedtest.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := stuo.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, submittedtest.FieldAnswers, value)
		})
	}
	if value, ok := stuo.mutation.UpdatedAt(); ok {
		_spec.SetField(submittedtest.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SubmittedTest{config: stuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, stuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submittedtest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	stuo.mutation.done = true
	return _node, nil
}
