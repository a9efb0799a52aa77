// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"hirehub/ent/predicate"
	"hirehub/ent/submittedtest"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SubmittedTestDelete is the builder for deleting a SubmittedTest entity.
type SubmittedTestDelete struct {
	config
	hooks    []Hook
	mutation *SubmittedTestMutation
}

// Where appends a list predicates to the SubmittedTestDelete builder.
func (std *SubmittedTestDelete) Where(ps ...predicate.SubmittedTest) *SubmittedTestDelete {
	std.mutation.Where(ps...)
	return std
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (std *SubmittedTestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, std.sqlExec, std.mutation, std.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (std *SubmittedTestDelete) ExecX(ctx context.Context) int {
	n, err := std.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (std *SubmittedTestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(submittedtest.Table, sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID))
	if ps := std.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, std.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	std.mutation.done = true
	return affected, err
}

// SubmittedTestDeleteOne is the builder for deleting a single SubmittedTest entity.
type SubmittedTestDeleteOne struct {
	std *SubmittedTestDelete
}

// Where appends a list predicates to the SubmittedTestDelete builder.
func (stdo *SubmittedTestDeleteOne) Where(ps ...predicate.SubmittedTest) *SubmittedTestDeleteOne {
	stdo.std.mutation.Where(ps...)
	return stdo
}

// Exec executes the deletion query.
func (stdo *SubmittedTestDeleteOne) Exec(ctx context.Context) error {
	n, err := stdo.std.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{submittedtest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (stdo *SubmittedTestDeleteOne) ExecX(ctx context.Context) {
	if err := stdo.Exec(ctx); err != nil {
		panic(err)
	}
}
