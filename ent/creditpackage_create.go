// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/creditpackage"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CreditPackageCreate is the builder for creating a CreditPackage entity.
type CreditPackageCreate struct {
	config
	mutation *CreditPackageMutation
	hooks    []Hook
}

// SetTitle sets the "title" field.
func (cpc *CreditPackageCreate) SetTitle(s string) *CreditPackageCreate {
	cpc.mutation.SetTitle(s)
	return cpc
}

// SetFeatures sets the "features" field.
func (cpc *CreditPackageCreate) SetFeatures(s []string) *CreditPackageCreate {
	cpc.mutation.SetFeatures(s)
	return cpc
}

// SetPricePerCredit sets the "price_per_credit" field.
func (cpc *CreditPackageCreate) SetPricePerCredit(f float64) *CreditPackageCreate {
	cpc.mutation.SetPricePerCredit(f)
	return cpc
}

// SetNumberOfCredits sets the "number_of_credits" field.
func (cpc *CreditPackageCreate) SetNumberOfCredits(i int) *CreditPackageCreate {
	cpc.mutation.SetNumberOfCredits(i)
	return cpc
}

// SetPackageType sets the "package_type" field.
func (cpc *CreditPackageCreate) SetPackageType(mt models.PackageType) *CreditPackageCreate {
	cpc.mutation.SetPackageType(mt)
	return cpc
}

// SetCreatedAt sets the "created_at" field.
func (cpc *CreditPackageCreate) SetCreatedAt(t time.Time) *CreditPackageCreate {
	cpc.mutation.SetCreatedAt(t)
	return cpc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (cpc *CreditPackageCreate) SetNillableCreatedAt(t *time.Time) *CreditPackageCreate {
	if t != nil {
		cpc.SetCreatedAt(*t)
	}
	return cpc
}

// SetUpdatedAt sets the "updated_at" field.
func (cpc *CreditPackageCreate) SetUpdatedAt(t time.Time) *CreditPackageCreate {
	cpc.mutation.SetUpdatedAt(t)
	return cpc
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (cpc *CreditPackageCreate) SetNillableUpdatedAt(t *time.Time) *CreditPackageCreate {
	if t != nil {
		cpc.SetUpdatedAt(*t)
	}
	return cpc
}

// SetID sets the "id" field.
func (cpc *CreditPackageCreate) SetID(u uuid.UUID) *CreditPackageCreate {
	cpc.mutation.SetID(u)
	return cpc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (cpc *CreditPackageCreate) SetNillableID(u *uuid.UUID) *CreditPackageCreate {
	if u != nil {
		cpc.SetID(*u)
	}
	return cpc
}

// Mutation returns the CreditPackageMutation object of the builder.
func (cpc *CreditPackageCreate) Mutation() *CreditPackageMutation {
	return cpc.mutation
}

// Save creates the CreditPackage in the database.
func (cpc *CreditPackageCreate) Save(ctx context.Context) (*CreditPackage, error) {
	cpc.defaults()
	return withHooks(ctx, cpc.sqlSave, cpc.mutation, cpc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (cpc *CreditPackageCreate) SaveX(ctx context.Context) *CreditPackage {
	v, err := cpc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cpc *CreditPackageCreate) Exec(ctx context.Context) error {
	_, err := cpc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cpc *CreditPackageCreate) ExecX(ctx context.Context) {
	if err := cpc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cpc *CreditPackageCreate) defaults() {
	if _, ok := cpc.mutation.CreatedAt(); !ok {
		v := creditpackage.DefaultCreatedAt()
		cpc.mutation.SetCreatedAt(v)
	}
	if _, ok := cpc.mutation.UpdatedAt(); !ok {
		v := creditpackage.DefaultUpdatedAt()
		cpc.mutation.SetUpdatedAt(v)
	}
	if _, ok := cpc.mutation.ID(); !ok {
		v := creditpackage.DefaultID()
		cpc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cpc *CreditPackageCreate) check() error {
	if _, ok := cpc.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CreditPackage.title"`)}
	}
	if v, ok := cpc.mutation.Title(); ok {
		if err := creditpackage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.title": %w`, err)}
		}
	}
	if _, ok := cpc.mutation.PricePerCredit(); !ok {
		return &ValidationError{Name: "price_per_credit", err: errors.New(`ent: missing required field "CreditPackage.price_per_credit"`)}
	}
	if v, ok := cpc.mutation.PricePerCredit(); ok {
		if err := creditpackage.PricePerCreditValidator(v); err != nil {
			return &ValidationError{Name: "price_per_credit", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.price_per_credit": %w`, err)}
		}
	}
	if _, ok := cpc.mutation.NumberOfCredits(); !ok {
		return &ValidationError{Name: "number_of_credits", err: errors.New(`ent: missing required field "CreditPackage.number_of_credits"`)}
	}
	if v, ok := cpc.mutation.NumberOfCredits(); ok {
		if err := creditpackage.NumberOfCreditsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_credits", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.number_of_credits": %w`, err)}
		}
	}
	if _, ok := cpc.mutation.PackageType(); !ok {
		return &ValidationError{Name: "package_type", err: errors.New(`ent: missing required field "CreditPackage.package_type"`)}
	}
	if _, ok := cpc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CreditPackage.created_at"`)}
	}
	if _, ok := cpc.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CreditPackage.updated_at"`)}
	}
	return nil
}

func (cpc *CreditPackageCreate) sqlSave(ctx context.Context) (*CreditPackage, error) {
	if err := cpc.check(); err != nil {
		return nil, err
	}
	_node, _spec := cpc.createSpec()
	if err := sqlgraph.CreateNode(ctx, cpc.driver, _spec); err != nil {
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
	cpc.mutation.id = &_node.ID
	cpc.mutation.done = true
	return _node, nil
}

func (cpc *CreditPackageCreate) createSpec() (*CreditPackage, *sqlgraph.CreateSpec) {
	var (
		_node = &CreditPackage{config: cpc.config}
		_spec = sqlgraph.NewCreateSpec(creditpackage.Table, sqlgraph.NewFieldSpec(creditpackage.FieldID, field.TypeUUID))
	)
	if id, ok := cpc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := cpc.mutation.Title(); ok {
		_spec.SetField(creditpackage.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := cpc.mutation.Features(); ok {
		_spec.SetField(creditpackage.FieldFeatures, field.TypeJSON, value)
		_node.Features = value
	}
	if value, ok := cpc.mutation.PricePerCredit(); ok {
		_spec.SetField(creditpackage.FieldPricePerCredit, field.TypeFloat64, value)
		_node.PricePerCredit = value
	}
	if value, ok := cpc.mutation.NumberOfCredits(); ok {
		_spec.SetField(creditpackage.FieldNumberOfCredits, field.TypeInt, value)
		_node.NumberOfCredits = value
	}
	if value, ok := cpc.mutation.PackageType(); ok {
		_spec.SetField(creditpackage.FieldPackageType, field.TypeInt, value)
		_node.PackageType = value
	}
	if value, ok := cpc.mutation.CreatedAt(); ok {
		_spec.SetField(creditpackage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := cpc.mutation.UpdatedAt(); ok {
		_spec.SetField(creditpackage.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CreditPackageCreateBulk is the builder for creating many CreditPackage entities in bulk.
type CreditPackageCreateBulk struct {
	config
	err      error
	builders []*CreditPackageCreate
}

// Save creates the CreditPackage entities in the database.
func (cpcb *CreditPackageCreateBulk) Save(ctx context.Context) ([]*CreditPackage, error) {
	if cpcb.err != nil {
		return nil, cpcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(cpcb.builders))
	nodes := make([]*CreditPackage, len(cpcb.builders))
	mutators := make([]Mutator, len(cpcb.builders))
	for i := range cpcb.builders {
		func(i int, root context.Context) {
			builder := cpcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CreditPackageMutation)
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
					_, err = mutators[i+1].Mutate(root, cpcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, cpcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, cpcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (cpcb *CreditPackageCreateBulk) SaveX(ctx context.Context) []*CreditPackage {
	v, err := cpcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (cpcb *CreditPackageCreateBulk) Exec(ctx context.Context) error {
	_, err := cpcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cpcb *CreditPackageCreateBulk) ExecX(ctx context.Context) {
	if err := cpcb.Exec(ctx); err != nil {
		panic(err)
	}
}
