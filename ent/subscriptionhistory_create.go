// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubscriptionHistoryCreate is the builder for creating a SubscriptionHistory entity.
type SubscriptionHistoryCreate struct {
	config
	mutation *SubscriptionHistoryMutation
	hooks    []Hook
}

// SetSubscriptionID sets the "subscription_id" field.
func (shc *SubscriptionHistoryCreate) SetSubscriptionID(u uuid.UUID) *SubscriptionHistoryCreate {
	shc.mutation.SetSubscriptionID(u)
	return shc
}

// SetSnapshot sets the "snapshot" field.
func (shc *SubscriptionHistoryCreate) SetSnapshot(ms models.PackageSnapshot) *SubscriptionHistoryCreate {
	shc.mutation.SetSnapshot(ms)
	return shc
}

// SetArchivedAt sets the "archived_at" field.
func (shc *SubscriptionHistoryCreate) SetArchivedAt(t time.Time) *SubscriptionHistoryCreate {
	shc.mutation.SetArchivedAt(t)
	return shc
}

// SetNillableArchivedAt sets the "archived_at" field if the given value is not nil.
func (shc *SubscriptionHistoryCreate) SetNillableArchivedAt(t *time.Time) *SubscriptionHistoryCreate {
	if t != nil {
		shc.SetArchivedAt(*t)
	}
	return shc
}

// SetID sets the "id" field.
func (shc *SubscriptionHistoryCreate) SetID(u uuid.UUID) *SubscriptionHistoryCreate {
	shc.mutation.SetID(u)
	return shc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (shc *SubscriptionHistoryCreate) SetNillableID(u *uuid.UUID) *SubscriptionHistoryCreate {
	if u != nil {
		shc.SetID(*u)
	}
	return shc
}

// SetSubscription sets the "subscription" edge to the Subscription entity.
func (shc *SubscriptionHistoryCreate) SetSubscription(s *Subscription) *SubscriptionHistoryCreate {
	return shc.SetSubscriptionID(s.ID)
}

// Mutation returns the SubscriptionHistoryMutation object of the builder.
func (shc *SubscriptionHistoryCreate) Mutation() *SubscriptionHistoryMutation {
	return shc.mutation
}

// Save creates the SubscriptionHistory in the database.
func (shc *SubscriptionHistoryCreate) Save(ctx context.Context) (*SubscriptionHistory, error) {
	shc.defaults()
	return withHooks(ctx, shc.sqlSave, shc.mutation, shc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (shc *SubscriptionHistoryCreate) SaveX(ctx context.Context) *SubscriptionHistory {
	v, err := shc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (shc *SubscriptionHistoryCreate) Exec(ctx context.Context) error {
	_, err := shc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (shc *SubscriptionHistoryCreate) ExecX(ctx context.Context) {
	if err := shc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (shc *SubscriptionHistoryCreate) defaults() {
	if _, ok := shc.mutation.ArchivedAt(); !ok {
		v := subscriptionhistory.DefaultArchivedAt()
		shc.mutation.SetArchivedAt(v)
	}
	if _, ok := shc.mutation.ID(); !ok {
		v := subscriptionhistory.DefaultID()
		shc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (shc *SubscriptionHistoryCreate) check() error {
	if _, ok := shc.mutation.SubscriptionID(); !ok {
		return &ValidationError{Name: "subscription_id", err: errors.New(`ent: missing required field "SubscriptionHistory.subscription_id"`)}
	}
	if _, ok := shc.mutation.Snapshot(); !ok {
		return &ValidationError{Name: "snapshot", err: errors.New(`ent: missing required field "SubscriptionHistory.snapshot"`)}
	}
	if _, ok := shc.mutation.ArchivedAt(); !ok {
		return &ValidationError{Name: "archived_at", err: errors.New(`ent: missing required field "SubscriptionHistory.archived_at"`)}
	}
	if len(shc.mutation.SubscriptionIDs()) == 0 {
		return &ValidationError{Name: "subscription", err: errors.New(`ent: missing required edge "SubscriptionHistory.subscription"`)}
	}
	return nil
}

func (shc *SubscriptionHistoryCreate) sqlSave(ctx context.Context) (*SubscriptionHistory, error) {
	if err := shc.check(); err != nil {
		return nil, err
	}
	_node, _spec := shc.createSpec()
	if err := sqlgraph.CreateNode(ctx, shc.driver, _spec); err != nil {
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
	shc.mutation.id = &_node.ID
	shc.mutation.done = true
	return _node, nil
}

func (shc *SubscriptionHistoryCreate) createSpec() (*SubscriptionHistory, *sqlgraph.CreateSpec) {
	var (
		_node = &SubscriptionHistory{config: shc.config}
		_spec = sqlgraph.NewCreateSpec(subscriptionhistory.Table, sqlgraph.NewFieldSpec(subscriptionhistory.FieldID, field.TypeUUID))
	)
	if id, ok := shc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := shc.mutation.Snapshot(); ok {
		_spec.SetField(subscriptionhistory.FieldSnapshot, field.TypeJSON, value)
		_node.Snapshot = value
	}
	if value, ok := shc.mutation.ArchivedAt(); ok {
		_spec.SetField(subscriptionhistory.FieldArchivedAt, field.TypeTime, value)
		_node.ArchivedAt = value
	}
	if nodes := shc.mutation.SubscriptionIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   subscriptionhistory.SubscriptionTable,
			Columns: []string{subscriptionhistory.SubscriptionColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.SubscriptionID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubscriptionHistoryCreateBulk is the builder for creating many SubscriptionHistory entities in bulk.
type SubscriptionHistoryCreateBulk struct {
	config
	err      error
	builders []*SubscriptionHistoryCreate
}

// Save creates the SubscriptionHistory entities in the database.
func (shcb *SubscriptionHistoryCreateBulk) Save(ctx context.Context) ([]*SubscriptionHistory, error) {
	if shcb.err != nil {
		return nil, shcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(shcb.builders))
	nodes := make([]*SubscriptionHistory, len(shcb.builders))
	mutators := make([]Mutator, len(shcb.builders))
	for i := range shcb.builders {
		func(i int, root context.Context) {
			builder := shcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriptionHistoryMutation)
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
					_, err = mutators[i+1].Mutate(root, shcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, shcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, shcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (shcb *SubscriptionHistoryCreateBulk) SaveX(ctx context.Context) []*SubscriptionHistory {
	v, err := shcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (shcb *SubscriptionHistoryCreateBulk) Exec(ctx context.Context) error {
	_, err := shcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (shcb *SubscriptionHistoryCreateBulk) ExecX(ctx context.Context) {
	if err := shcb.Exec(ctx); err != nil {
		panic(err)
	}
}
