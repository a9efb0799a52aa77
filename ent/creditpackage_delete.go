// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"hirehub/ent/creditpackage"
	"hirehub/ent/predicate"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// CreditPackageDelete is the builder for deleting a CreditPackage entity.
type CreditPackageDelete struct {
	config
	hooks    []Hook
	mutation *CreditPackageMutation
}

// Where appends a list predicates to the CreditPackageDelete builder.
func (cpd *CreditPackageDelete) Where(ps ...predicate.CreditPackage) *CreditPackageDelete {
	cpd.mutation.Where(ps...)
	return cpd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (cpd *CreditPackageDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, cpd.sqlExec, cpd.mutation, cpd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (cpd *CreditPackageDelete) ExecX(ctx context.Context) int {
	n, err := cpd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (cpd *CreditPackageDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(creditpackage.Table, sqlgraph.NewFieldSpec(creditpackage.FieldID, field.TypeUUID))
	if ps := cpd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, cpd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	cpd.mutation.done = true
	return affected, err
}

// CreditPackageDeleteOne is the builder for deleting a single CreditPackage entity.
type CreditPackageDeleteOne struct {
	cpd *CreditPackageDelete
}

// Where appends a list predicates to the CreditPackageDelete builder.
func (cpdo *CreditPackageDeleteOne) Where(ps ...predicate.CreditPackage) *CreditPackageDeleteOne {
	cpdo.cpd.mutation.Where(ps...)
	return cpdo
}

// Exec executes the deletion query.
func (cpdo *CreditPackageDeleteOne) Exec(ctx context.Context) error {
	n, err := cpdo.cpd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{creditpackage.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (cpdo *CreditPackageDeleteOne) ExecX(ctx context.Context) {
	if err := cpdo.Exec(ctx); err != nil {
		panic(err)
	}
}
