// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"hirehub/ent/predicate"
	"hirehub/ent/subscriptionhistory"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SubscriptionHistoryDelete is the builder for deleting a SubscriptionHistory entity.
type SubscriptionHistoryDelete struct {
	config
	hooks    []Hook
	mutation *SubscriptionHistoryMutation
}

// Where appends a list predicates to the SubscriptionHistoryDelete builder.
func (shd *SubscriptionHistoryDelete) Where(ps ...predicate.SubscriptionHistory) *SubscriptionHistoryDelete {
	shd.mutation.Where(ps...)
	return shd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (shd *SubscriptionHistoryDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, shd.sqlExec, shd.mutation, shd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (shd *SubscriptionHistoryDelete) ExecX(ctx context.Context) int {
	n, err := shd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (shd *SubscriptionHistoryDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(subscriptionhistory.Table, sqlgraph.NewFieldSpec(subscriptionhistory.FieldID, field.TypeUUID))
	if ps := shd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, shd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	shd.mutation.done = true
	return affected, err
}

// SubscriptionHistoryDeleteOne is the builder for deleting a single SubscriptionHistory entity.
type SubscriptionHistoryDeleteOne struct {
	shd *SubscriptionHistoryDelete
}

// Where appends a list predicates to the SubscriptionHistoryDelete builder.
func (shdo *SubscriptionHistoryDeleteOne) Where(ps ...predicate.SubscriptionHistory) *SubscriptionHistoryDeleteOne {
	shdo.shd.mutation.Where(ps...)
	return shdo
}

// Exec executes the deletion query.
func (shdo *SubscriptionHistoryDeleteOne) Exec(ctx context.Context) error {
	n, err := shdo.shd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{subscriptionhistory.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (shdo *SubscriptionHistoryDeleteOne) ExecX(ctx context.Context) {
	if err := shdo.Exec(ctx); err != nil {
		panic(err)
	}
}
