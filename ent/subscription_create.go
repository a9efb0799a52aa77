// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubscriptionCreate is the builder for creating a Subscription entity.
type SubscriptionCreate struct {
	config
	mutation *SubscriptionMutation
	hooks    []Hook
}

// SetEmployerID sets the "employer_id" field.
func (sc *SubscriptionCreate) SetEmployerID(u uuid.UUID) *SubscriptionCreate {
	sc.mutation.SetEmployerID(u)
	return sc
}

// SetPackageID sets the "package_id" field.
func (sc *SubscriptionCreate) SetPackageID(u uuid.UUID) *SubscriptionCreate {
	sc.mutation.SetPackageID(u)
	return sc
}

// SetTitle sets the "title" field.
func (sc *SubscriptionCreate) SetTitle(s string) *SubscriptionCreate {
	sc.mutation.SetTitle(s)
	return sc
}

// SetFeatures sets the "features" field.
func (sc *SubscriptionCreate) SetFeatures(s []string) *SubscriptionCreate {
	sc.mutation.SetFeatures(s)
	return sc
}

// SetPricePerCredit sets the "price_per_credit" field.
func (sc *SubscriptionCreate) SetPricePerCredit(f float64) *SubscriptionCreate {
	sc.mutation.SetPricePerCredit(f)
	return sc
}

// SetCreditAllowance sets the "credit_allowance" field.
func (sc *SubscriptionCreate) SetCreditAllowance(i int) *SubscriptionCreate {
	sc.mutation.SetCreditAllowance(i)
	return sc
}

// SetPackageType sets the "package_type" field.
func (sc *SubscriptionCreate) SetPackageType(mt models.PackageType) *SubscriptionCreate {
	sc.mutation.SetPackageType(mt)
	return sc
}

// SetCredits sets the "credits" field.
func (sc *SubscriptionCreate) SetCredits(i int) *SubscriptionCreate {
	sc.mutation.SetCredits(i)
	return sc
}

// SetAdminCreditsAdded sets the "admin_credits_added" field.
func (sc *SubscriptionCreate) SetAdminCreditsAdded(i int) *SubscriptionCreate {
	sc.mutation.SetAdminCreditsAdded(i)
	return sc
}

// SetNillableAdminCreditsAdded sets the "admin_credits_added" field if the given value is not nil.
func (sc *SubscriptionCreate) SetNillableAdminCreditsAdded(i *int) *SubscriptionCreate {
	if i != nil {
		sc.SetAdminCreditsAdded(*i)
	}
	return sc
}

// SetAdminCreditsRemoved sets the "admin_credits_removed" field.
func (sc *SubscriptionCreate) SetAdminCreditsRemoved(i int) *SubscriptionCreate {
	sc.mutation.SetAdminCreditsRemoved(i)
	return sc
}

// SetNillableAdminCreditsRemoved sets the "admin_credits_removed" field if the given value is not nil.
func (sc *SubscriptionCreate) SetNillableAdminCreditsRemoved(i *int) *SubscriptionCreate {
	if i != nil {
		sc.SetAdminCreditsRemoved(*i)
	}
	return sc
}

// SetTransactionID sets the "transaction_id" field.
func (sc *SubscriptionCreate) SetTransactionID(s string) *SubscriptionCreate {
	sc.mutation.SetTransactionID(s)
	return sc
}

// SetGrantedAt sets the "granted_at" field.
func (sc *SubscriptionCreate) SetGrantedAt(t time.Time) *SubscriptionCreate {
	sc.mutation.SetGrantedAt(t)
	return sc
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (sc *SubscriptionCreate) SetNillableGrantedAt(t *time.Time) *SubscriptionCreate {
	if t != nil {
		sc.SetGrantedAt(*t)
	}
	return sc
}

// SetCreatedAt sets the "created_at" field.
func (sc *SubscriptionCreate) SetCreatedAt(t time.Time) *SubscriptionCreate {
	sc.mutation.SetCreatedAt(t)
	return sc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (sc *SubscriptionCreate) SetNillableCreatedAt(t *time.Time) *SubscriptionCreate {
	if t != nil {
		sc.SetCreatedAt(*t)
	}
	return sc
}

// SetUpdatedAt sets the "updated_at" field.
func (sc *SubscriptionCreate) SetUpdatedAt(t time.Time) *SubscriptionCreate {
	sc.mutation.SetUpdatedAt(t)
	return sc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (sc *SubscriptionCreate) SetNillableUpdatedAt(t *time.Time) *SubscriptionCreate {
	if t != nil {
		sc.SetUpdatedAt(*t)
	}
	return sc
}

// SetID sets the "id" field.
func (sc *SubscriptionCreate) SetID(u uuid.UUID) *SubscriptionCreate {
	sc.mutation.SetID(u)
	return sc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (sc *SubscriptionCreate) SetNillableID(u *uuid.UUID) *SubscriptionCreate {
	if u != nil {
		sc.SetID(*u)
	}
	return sc
}

// SetEmployer sets the "employer" edge to the User entity.
func (sc *SubscriptionCreate) SetEmployer(u *User) *SubscriptionCreate {
	return sc.SetEmployerID(u.ID)
}

// AddHistoryIDs adds the "history" edge to the SubscriptionHistory entity by IDs.
func (sc *SubscriptionCreate) AddHistoryIDs(ids ...uuid.UUID) *SubscriptionCreate {
	sc.mutation.AddHistoryIDs(ids...)
	return sc
}

// AddHistory adds the "history" edges to the SubscriptionHistory entity.
func (sc *SubscriptionCreate) AddHistory(s ...*SubscriptionHistory) *SubscriptionCreate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return sc.AddHistoryIDs(ids...)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (sc *SubscriptionCreate) Mutation() *SubscriptionMutation {
	return sc.mutation
}

// Save creates the Subscription in the database.
func (sc *SubscriptionCreate) Save(ctx context.Context) (*Subscription, error) {
	sc.defaults()
	return withHooks(ctx, sc.sqlSave, sc.mutation, sc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (sc *SubscriptionCreate) SaveX(ctx context.Context) *Subscription {
	v, err := sc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (sc *SubscriptionCreate) Exec(ctx context.Context) error {
	_, err := sc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (sc *SubscriptionCreate) ExecX(ctx context.Context) {
	if err := sc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (sc *SubscriptionCreate) defaults() {
	if _, ok := sc.mutation.AdminCreditsAdded(); !ok {
		v := subscription.DefaultAdminCreditsAdded
		sc.mutation.SetAdminCreditsAdded(v)
	}
	if _, ok := sc.mutation.AdminCreditsRemoved(); !ok {
		v := subscription.DefaultAdminCreditsRemoved
		sc.mutation.SetAdminCreditsRemoved(v)
	}
	if _, ok := sc.mutation.GrantedAt(); !ok {
		v := subscription.DefaultGrantedAt()
		sc.mutation.SetGrantedAt(v)
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		v := subscription.DefaultCreatedAt()
		sc.mutation.SetCreatedAt(v)
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		v := subscription.DefaultUpdatedAt()
		sc.mutation.SetUpdatedAt(v)
	}
	if _, ok := sc.mutation.ID(); !ok {
		v := subscription.DefaultID()
		sc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (sc *SubscriptionCreate) check() error {
	if _, ok := sc.mutation.EmployerID(); !ok {
		return &ValidationError{Name: "employer_id", err: errors.New(`ent: missing required field "Subscription.employer_id"`)}
	}
	if _, ok := sc.mutation.PackageID(); !ok {
		return &ValidationError{Name: "package_id", err: errors.New(`ent: missing required field "Subscription.package_id"`)}
	}
	if _, ok := sc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Subscription.title"`)}
	}
	if v, ok := sc.mutation.Title(); ok {
		if err := subscription.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subscription.title": %w`, err)}
		}
	}
	if _, ok := sc.mutation.PricePerCredit(); !ok {
		return &ValidationError{Name: "price_per_credit", err: errors.New(`ent: missing required field "Subscription.price_per_credit"`)}
	}
	if v, ok := sc.mutation.PricePerCredit(); ok {
		if err := subscription.PricePerCreditValidator(v); err != nil {
			return &ValidationError{Name: "price_per_credit", err: fmt.Errorf(`ent: validator failed for field "Subscription.price_per_credit": %w`, err)}
		}
	}
	if _, ok := sc.mutation.CreditAllowance(); !ok {
		return &ValidationError{Name: "credit_allowance", err: errors.New(`ent: missing required field "Subscription.credit_allowance"`)}
	}
	if v, ok := sc.mutation.CreditAllowance(); ok {
		if err := subscription.CreditAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "credit_allowance", err: fmt.Errorf(`ent: validator failed for field "Subscription.credit_allowance": %w`, err)}
		}
	}
	if _, ok := sc.mutation.PackageType(); !ok {
		return &ValidationError{Name: "package_type", err: errors.New(`ent: missing required field "Subscription.package_type"`)}
	}
	if _, ok := sc.mutation.Credits(); !ok {
		return &ValidationError{Name: "credits", err: errors.New(`ent: missing required field "Subscription.credits"`)}
	}
	if v, ok := sc.mutation.Credits(); ok {
		if err := subscription.CreditsValidator(v); err != nil {
			return &ValidationError{Name: "credits", err: fmt.Errorf(`ent: validator failed for field "Subscription.credits": %w`, err)}
		}
	}
	if _, ok := sc.mutation.AdminCreditsAdded(); !ok {
		return &ValidationError{Name: "admin_credits_added", err: errors.New(`ent: missing required field "Subscription.admin_credits_added"`)}
	}
	if v, ok := sc.mutation.AdminCreditsAdded(); ok {
		if err := subscription.AdminCreditsAddedValidator(v); err != nil {
			return &ValidationError{Name: "admin_credits_added", err: fmt.Errorf(`ent: validator failed for field "Subscription.admin_credits_added": %w`, err)}
		}
	}
	if _, ok := sc.mutation.AdminCreditsRemoved(); !ok {
		return &ValidationError{Name: "admin_credits_removed", err: errors.New(`ent: missing required field "Subscription.admin_credits_removed"`)}
	}
	if v, ok := sc.mutation.AdminCreditsRemoved(); ok {
		if err := subscription.AdminCreditsRemovedValidator(v); err != nil {
			return &ValidationError{Name: "admin_credits_removed", err: fmt.Errorf(`ent: validator failed for field "Subscription.admin_credits_removed": %w`, err)}
		}
	}
	if _, ok := sc.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "Subscription.transaction_id"`)}
	}
	if v, ok := sc.mutation.TransactionID(); ok {
		if err := subscription.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.transaction_id": %w`, err)}
		}
	}
	if _, ok := sc.mutation.GrantedAt(); !ok {
		return &ValidationError{Name: "granted_at", err: errors.New(`ent: missing required field "Subscription.granted_at"`)}
	}
	if _, ok := sc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Subscription.created_at"`)}
	}
	if _, ok := sc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Subscription.updated_at"`)}
	}
	if len(sc.mutation.EmployerIDs()) == 0 {
		return &ValidationError{Name: "employer", err: errors.New(`ent: missing required edge "Subscription.employer"`)}
	}
	return nil
}

func (sc *SubscriptionCreate) sqlSave(ctx context.Context) (*Subscription, error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	_node, _spec := sc.createSpec()
	if err := sqlgraph.CreateNode(ctx, sc.driver, _spec); err != nil {
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
	sc.mutation.id = &_node.ID
	sc.mutation.done = true
	return _node, nil
}

func (sc *SubscriptionCreate) createSpec() (*Subscription, *sqlgraph.CreateSpec) {
	var (
		_node = &Subscription{config: sc.config}
		_spec = sqlgraph.NewCreateSpec(subscription.Table, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID))
	)
	if id, ok := sc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := sc.mutation.PackageID(); ok {
		_spec.SetField(subscription.FieldPackageID, field.TypeUUID, value)
		_node.PackageID = value
	}
	if value, ok := sc.mutation.Title(); ok {
		_spec.SetField(subscription.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := sc.mutation.Features(); ok {
		_spec.SetField(subscription.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := sc.mutation.PricePerCredit(); ok {
		_spec.SetField(subscription.FieldPricePerCredit, field.TypeFloat64, value)
		_node.PricePerCredit = value
	}
	if value, ok := sc.mutation.CreditAllowance(); ok {
		_spec.SetField(subscription.FieldCreditAllowance, field.TypeInt, value)
		_node.CreditAllowance = value
	}
	if value, ok := sc.mutation.PackageType(); ok {
		_spec.SetField(subscription.FieldPackageType, field.TypeInt, value)
		_node.PackageType = value
	}
	if value, ok := sc.mutation.Credits(); ok {
		_spec.SetField(subscription.FieldCredits, field.TypeInt, value)
		_node.Credits = value
	}
	if value, ok := sc.mutation.AdminCreditsAdded(); ok {
		_spec.SetField(subscription.FieldAdminCreditsAdded, field.TypeInt, value)
		_node.AdminCreditsAdded = value
	}
	if value, ok := sc.mutation.AdminCreditsRemoved(); ok {
		_spec.SetField(subscription.FieldAdminCreditsRemoved, field.TypeInt, value)
		_node.AdminCreditsRemoved = value
	}
	if value, ok := sc.mutation.TransactionID(); ok {
		_spec.SetField(subscription.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = value
	}
	if value, ok := sc.mutation.GrantedAt(); ok {
		_spec.SetField(subscription.FieldGrantedAt, field.TypeTime, value)
		_node.GrantedAt = value
	}
	if value, ok := sc.mutation.CreatedAt(); ok {
		_spec.SetField(subscription.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := sc.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := sc.mutation.EmployerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   subscription.EmployerTable,
			Columns: []string{subscription.EmployerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.EmployerID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := sc.mutation.HistoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   subscription.HistoryTable,
			Columns: []string{subscription.HistoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(subscriptionhistory.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SubscriptionCreateBulk is the builder for creating many Subscription entities in bulk.
type SubscriptionCreateBulk struct {
	config
	err      error
	builders []*SubscriptionCreate
}

// Save creates the Subscription entities in the database.
func (scb *SubscriptionCreateBulk) Save(ctx context.Context) ([]*Subscription, error) {
	if scb.err != nil {
		return nil, scb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(scb.builders))
	nodes := make([]*Subscription, len(scb.builders))
	mutators := make([]Mutator, len(scb.builders))
	for i := range scb.builders {
		func(i int, root context.Context) {
			builder := scb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubscriptionMutation)
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
					_, err = mutators[i+1].Mutate(root, scb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, scb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, scb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (scb *SubscriptionCreateBulk) SaveX(ctx context.Context) []*Subscription {
	v, err := scb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (scb *SubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := scb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (scb *SubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := scb.Exec(ctx); err != nil {
		panic(err)
	}
}
