// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/predicate"
	"hirehub/ent/subscriptionhistory"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SubscriptionHistoryUpdate is the builder for updating SubscriptionHistory entities.
type SubscriptionHistoryUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionHistoryMutation
}

// Where appends a list predicates to the SubscriptionHistoryUpdate builder.
func (shu *SubscriptionHistoryUpdate) Where(ps ...predicate.SubscriptionHistory) *SubscriptionHistoryUpdate {
	shu.mutation.Where(ps...)
	return shu
}

// Mutation returns the SubscriptionHistoryMutation object of the builder.
func (shu *SubscriptionHistoryUpdate) Mutation() *SubscriptionHistoryMutation {
	return shu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (shu *SubscriptionHistoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, shu.sqlSave, shu.mutation, shu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (shu *SubscriptionHistoryUpdate) SaveX(ctx context.Context) int {
	affected, err := shu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (shu *SubscriptionHistoryUpdate) Exec(ctx context.Context) error {
	_, err := shu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (shu *SubscriptionHistoryUpdate) ExecX(ctx context.Context) {
	if err := shu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (shu *SubscriptionHistoryUpdate) check() error {
	if shu.mutation.SubscriptionCleared() && len(shu.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubscriptionHistory.subscription"`)
	}
	return nil
}

func (shu *SubscriptionHistoryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := shu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptionhistory.Table, subscriptionhistory.Columns, sqlgraph.NewFieldSpec(subscriptionhistory.FieldID, field.TypeUUID))
	if ps := shu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if n, err = sqlgraph.UpdateNodes(ctx, shu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	shu.mutation.done = true
	return n, nil
}

// SubscriptionHistoryUpdateOne is the builder for updating a single SubscriptionHistory entity.
type SubscriptionHistoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionHistoryMutation
}

// Mutation returns the SubscriptionHistoryMutation object of the builder.
func (shuo *SubscriptionHistoryUpdateOne) Mutation() *SubscriptionHistoryMutation {
	return shuo.mutation
}

// Where appends a list predicates to the SubscriptionHistoryUpdate builder.
func (shuo *SubscriptionHistoryUpdateOne) Where(ps ...predicate.SubscriptionHistory) *SubscriptionHistoryUpdateOne {
	shuo.mutation.Where(ps...)
	return shuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (shuo *SubscriptionHistoryUpdateOne) Select(field string, fields ...string) *SubscriptionHistoryUpdateOne {
	shuo.fields = append([]string{field}, fields...)
	return shuo
}

// Save executes the query and returns the updated SubscriptionHistory entity.
func (shuo *SubscriptionHistoryUpdateOne) Save(ctx context.Context) (*SubscriptionHistory, error) {
	return withHooks(ctx, shuo.sqlSave, shuo.mutation, shuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (shuo *SubscriptionHistoryUpdateOne) SaveX(ctx context.Context) *SubscriptionHistory {
	node, err := shuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (shuo *SubscriptionHistoryUpdateOne) Exec(ctx context.Context) error {
	_, err := shuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (shuo *SubscriptionHistoryUpdateOne) ExecX(ctx context.Context) {
	if err := shuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (shuo *SubscriptionHistoryUpdateOne) check() error {
	if shuo.mutation.SubscriptionCleared() && len(shuo.mutation.SubscriptionIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SubscriptionHistory.subscription"`)
	}
	return nil
}

func (shuo *SubscriptionHistoryUpdateOne) sqlSave(ctx context.Context) (_node *SubscriptionHistory, err error) {
	if err := shuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscriptionhistory.Table, subscriptionhistory.Columns, sqlgraph.NewFieldSpec(subscriptionhistory.FieldID, field.TypeUUID))
	id, ok := shuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SubscriptionHistory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := shuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscriptionhistory.FieldID)
		for _, f := range fields {
			if !subscriptionhistory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscriptionhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := shuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	_node = &SubscriptionHistory{config: shuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, shuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscriptionhistory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	shuo.mutation.done = true
	return _node, nil
}
