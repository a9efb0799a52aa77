// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/creditpackage"
	"hirehub/ent/predicate"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// CreditPackageUpdate is the builder for updating CreditPackage entities.
type CreditPackageUpdate struct {
	config
	hooks    []Hook
	mutation *CreditPackageMutation
}

// Where appends a list predicates to the CreditPackageUpdate builder.
func (cpu *CreditPackageUpdate) Where(ps ...predicate.CreditPackage) *CreditPackageUpdate {
	cpu.mutation.Where(ps...)
	return cpu
}

// SetTitle sets the "title" field.
func (cpu *CreditPackageUpdate) SetTitle(s string) *CreditPackageUpdate {
	cpu.mutation.SetTitle(s)
	return cpu
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cpu *CreditPackageUpdate) SetNillableTitle(s *string) *CreditPackageUpdate {
	if s != nil {
		cpu.SetTitle(*s)
	}
	return cpu
}

// SetFeatures sets the "features" field.
func (cpu *CreditPackageUpdate) SetFeatures(s []string) *CreditPackageUpdate {
	cpu.mutation.SetFeatures(s)
	return cpu
}

// AppendFeatures appends s to the "features" field.
func (cpu *CreditPackageUpdate) AppendFeatures(s []string) *CreditPackageUpdate {
	cpu.mutation.AppendFeatures(s)
	return cpu
}

// ClearFeatures clears the value of the "features" field.
func (cpu *CreditPackageUpdate) ClearFeatures() *CreditPackageUpdate {
	cpu.mutation.ClearFeatures()
	return cpu
}

// SetPricePerCredit sets the "price_per_credit" field.
func (cpu *CreditPackageUpdate) SetPricePerCredit(f float64) *CreditPackageUpdate {
	cpu.mutation.ResetPricePerCredit()
	cpu.mutation.SetPricePerCredit(f)
	return cpu
}

// SetNillablePricePerCredit sets the "price_per_credit" field if the given value is not nil.
func (cpu *CreditPackageUpdate) SetNillablePricePerCredit(f *float64) *CreditPackageUpdate {
	if f != nil {
		cpu.SetPricePerCredit(*f)
	}
	return cpu
}

// AddPricePerCredit adds f to the "price_per_credit" field.
func (cpu *CreditPackageUpdate) AddPricePerCredit(f float64) *CreditPackageUpdate {
	cpu.mutation.AddPricePerCredit(f)
	return cpu
}

// SetNumberOfCredits sets the "number_of_credits" field.
func (cpu *CreditPackageUpdate) SetNumberOfCredits(i int) *CreditPackageUpdate {
	cpu.mutation.ResetNumberOfCredits()
	cpu.mutation.SetNumberOfCredits(i)
	return cpu
}

// SetNillableNumberOfCredits sets the "number_of_credits" field if the given value is not nil.
func (cpu *CreditPackageUpdate) SetNillableNumberOfCredits(i *int) *CreditPackageUpdate {
	if i != nil {
		cpu.SetNumberOfCredits(*i)
	}
	return cpu
}

// AddNumberOfCredits adds i to the "number_of_credits" field.
func (cpu *CreditPackageUpdate) AddNumberOfCredits(i int) *CreditPackageUpdate {
	cpu.mutation.AddNumberOfCredits(i)
	return cpu
}

// SetPackageType sets the "package_type" field.
func (cpu *CreditPackageUpdate) SetPackageType(mt models.PackageType) *CreditPackageUpdate {
	cpu.mutation.ResetPackageType()
	cpu.mutation.SetPackageType(mt)
	return cpu
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (cpu *CreditPackageUpdate) SetNillablePackageType(mt *models.PackageType) *CreditPackageUpdate {
	if mt != nil {
		cpu.SetPackageType(*mt)
	}
	return cpu
}

// AddPackageType adds mt to the "package_type" field.
func (cpu *CreditPackageUpdate) AddPackageType(mt models.PackageType) *CreditPackageUpdate {
	cpu.mutation.AddPackageType(mt)
	return cpu
}

// SetUpdatedAt sets the "updated_at" field.
func (cpu *CreditPackageUpdate) SetUpdatedAt(t time.Time) *CreditPackageUpdate {
	cpu.mutation.SetUpdatedAt(t)
	return cpu
}

// Mutation returns the CreditPackageMutation object of the builder.
func (cpu *CreditPackageUpdate) Mutation() *CreditPackageMutation {
	return cpu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (cpu *CreditPackageUpdate) Save(ctx context.Context) (int, error) {
	cpu.defaults()
	return withHooks(ctx, cpu.sqlSave, cpu.mutation, cpu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cpu *CreditPackageUpdate) SaveX(ctx context.Context) int {
	affected, err := cpu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (cpu *CreditPackageUpdate) Exec(ctx context.Context) error {
	_, err := cpu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cpu *CreditPackageUpdate) ExecX(ctx context.Context) {
	if err := cpu.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cpu *CreditPackageUpdate) defaults() {
	if _, ok := cpu.mutation.UpdatedAt(); !ok {
		v := creditpackage.UpdateDefaultUpdatedAt()
		cpu.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cpu *CreditPackageUpdate) check() error {
	if v, ok := cpu.mutation.Title(); ok {
		if err := creditpackage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.title": %w`, err)}
		}
	}
	if v, ok := cpu.mutation.PricePerCredit(); ok {
		if err := creditpackage.PricePerCreditValidator(v); err != nil {
			return &ValidationError{Name: "price_per_credit", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.price_per_credit": %w`, err)}
		}
	}
	if v, ok := cpu.mutation.NumberOfCredits(); ok {
		if err := creditpackage.NumberOfCreditsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_credits", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.number_of_credits": %w`, err)}
		}
	}
	return nil
}

func (cpu *CreditPackageUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := cpu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditpackage.Table, creditpackage.Columns, sqlgraph.NewFieldSpec(creditpackage.FieldID, field.TypeUUID))
	if ps := cpu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cpu.mutation.Title(); ok {
		_spec.SetField(creditpackage.FieldTitle, field.TypeString, value)
	}
	if value, ok := cpu.mutation.Features(); ok {
		_spec.SetField(creditpackage.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := cpu.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creditpackage.FieldFeatures, value)
		})
	}
	if cpu.mutation.FeaturesCleared() {
		_spec.ClearField(creditpackage.FieldFeatures, field.TypeJSON)
	}
	if value, ok := cpu.mutation.PricePerCredit(); ok {
		_spec.SetField(creditpackage.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := cpu.mutation.AddedPricePerCredit(); ok {
		_spec.AddField(creditpackage.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := cpu.mutation.NumberOfCredits(); ok {
		_spec.SetField(creditpackage.FieldNumberOfCredits, field.TypeInt, value)
	}
	if value, ok := cpu.mutation.AddedNumberOfCredits(); ok {
		_spec.AddField(creditpackage.FieldNumberOfCredits, field.TypeInt, value)
	}
	if value, ok := cpu.mutation.PackageType(); ok {
		_spec.SetField(creditpackage.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := cpu.mutation.AddedPackageType(); ok {
		_spec.AddField(creditpackage.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := cpu.mutation.UpdatedAt(); ok {
		_spec.SetField(creditpackage.FieldUpdatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, cpu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	cpu.mutation.done = true
	return n, nil
}

// CreditPackageUpdateOne is the builder for updating a single CreditPackage entity.
type CreditPackageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CreditPackageMutation
}

// SetTitle sets the "title" field.
func (cpuo *CreditPackageUpdateOne) SetTitle(s string) *CreditPackageUpdateOne {
	cpuo.mutation.SetTitle(s)
	return cpuo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (cpuo *CreditPackageUpdateOne) SetNillableTitle(s *string) *CreditPackageUpdateOne {
	if s != nil {
		cpuo.SetTitle(*s)
	}
	return cpuo
}

// SetFeatures sets the "features" field.
func (cpuo *CreditPackageUpdateOne) SetFeatures(s []string) *CreditPackageUpdateOne {
	cpuo.mutation.SetFeatures(s)
	return cpuo
}

// AppendFeatures appends s to the "features" field.
func (cpuo *CreditPackageUpdateOne) AppendFeatures(s []string) *CreditPackageUpdateOne {
	cpuo.mutation.AppendFeatures(s)
	return cpuo
}

// ClearFeatures clears the value of the "features" field.
func (cpuo *CreditPackageUpdateOne) ClearFeatures() *CreditPackageUpdateOne {
	cpuo.mutation.ClearFeatures()
	return cpuo
}

// SetPricePerCredit sets the "price_per_credit" field.
func (cpuo *CreditPackageUpdateOne) SetPricePerCredit(f float64) *CreditPackageUpdateOne {
	cpuo.mutation.ResetPricePerCredit()
	cpuo.mutation.SetPricePerCredit(f)
	return cpuo
}

// SetNillablePricePerCredit sets the "price_per_credit" field if the given value is not nil.
func (cpuo *CreditPackageUpdateOne) SetNillablePricePerCredit(f *float64) *CreditPackageUpdateOne {
	if f != nil {
		cpuo.SetPricePerCredit(*f)
	}
	return cpuo
}

// AddPricePerCredit adds f to the "price_per_credit" field.
func (cpuo *CreditPackageUpdateOne) AddPricePerCredit(f float64) *CreditPackageUpdateOne {
	cpuo.mutation.AddPricePerCredit(f)
	return cpuo
}

// SetNumberOfCredits sets the "number_of_credits" field.
func (cpuo *CreditPackageUpdateOne) SetNumberOfCredits(i int) *CreditPackageUpdateOne {
	cpuo.mutation.ResetNumberOfCredits()
	cpuo.mutation.SetNumberOfCredits(i)
	return cpuo
}

// SetNillableNumberOfCredits sets the "number_of_credits" field if the given value is not nil.
func (cpuo *CreditPackageUpdateOne) SetNillableNumberOfCredits(i *int) *CreditPackageUpdateOne {
	if i != nil {
		cpuo.SetNumberOfCredits(*i)
	}
	return cpuo
}

// AddNumberOfCredits adds i to the "number_of_credits" field.
func (cpuo *CreditPackageUpdateOne) AddNumberOfCredits(i int) *CreditPackageUpdateOne {
	cpuo.mutation.AddNumberOfCredits(i)
	return cpuo
}

// SetPackageType sets the "package_type" field.
func (cpuo *CreditPackageUpdateOne) SetPackageType(mt models.PackageType) *CreditPackageUpdateOne {
	cpuo.mutation.ResetPackageType()
	cpuo.mutation.SetPackageType(mt)
	return cpuo
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (cpuo *CreditPackageUpdateOne) SetNillablePackageType(mt *models.PackageType) *CreditPackageUpdateOne {
	if mt != nil {
		cpuo.SetPackageType(*mt)
	}
	return cpuo
}

// AddPackageType adds mt to the "package_type" field.
func (cpuo *CreditPackageUpdateOne) AddPackageType(mt models.PackageType) *CreditPackageUpdateOne {
	cpuo.mutation.AddPackageType(mt)
	return cpuo
}

// SetUpdatedAt sets the "updated_at" field.
func (cpuo *CreditPackageUpdateOne) SetUpdatedAt(t time.Time) *CreditPackageUpdateOne {
	cpuo.mutation.SetUpdatedAt(t)
	return cpuo
}

// Mutation returns the CreditPackageMutation object of the builder.
func (cpuo *CreditPackageUpdateOne) Mutation() *CreditPackageMutation {
	return cpuo.mutation
}

// Where appends a list predicates to the CreditPackageUpdate builder.
func (cpuo *CreditPackageUpdateOne) Where(ps ...predicate.CreditPackage) *CreditPackageUpdateOne {
	cpuo.mutation.Where(ps...)
	return cpuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (cpuo *CreditPackageUpdateOne) Select(field string, fields ...string) *CreditPackageUpdateOne {
	cpuo.fields = append([]string{field}, fields...)
	return cpuo
}

// Save executes the query and returns the updated CreditPackage entity.
func (cpuo *CreditPackageUpdateOne) Save(ctx context.Context) (*CreditPackage, error) {
	cpuo.defaults()
	return withHooks(ctx, cpuo.sqlSave, cpuo.mutation, cpuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (cpuo *CreditPackageUpdateOne) SaveX(ctx context.Context) *CreditPackage {
	node, err := cpuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (cpuo *CreditPackageUpdateOne) Exec(ctx context.Context) error {
	_, err := cpuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (cpuo *CreditPackageUpdateOne) ExecX(ctx context.Context) {
	if err := cpuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (cpuo *CreditPackageUpdateOne) defaults() {
	if _, ok := cpuo.mutation.UpdatedAt(); !ok {
		v := creditpackage.UpdateDefaultUpdatedAt()
		cpuo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (cpuo *CreditPackageUpdateOne) check() error {
	if v, ok := cpuo.mutation.Title(); ok {
		if err := creditpackage.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.title": %w`, err)}
		}
	}
	if v, ok := cpuo.mutation.PricePerCredit(); ok {
		if err := creditpackage.PricePerCreditValidator(v); err != nil {
			return &ValidationError{Name: "price_per_credit", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.price_per_credit": %w`, err)}
		}
	}
	if v, ok := cpuo.mutation.NumberOfCredits(); ok {
		if err := creditpackage.NumberOfCreditsValidator(v); err != nil {
			return &ValidationError{Name: "number_of_credits", err: fmt.Errorf(`ent: validator failed for field "CreditPackage.number_of_credits": %w`, err)}
		}
	}
	return nil
}

func (cpuo *CreditPackageUpdateOne) sqlSave(ctx context.Context) (_node *CreditPackage, err error) {
	if err := cpuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(creditpackage.Table, creditpackage.Columns, sqlgraph.NewFieldSpec(creditpackage.FieldID, field.TypeUUID))
	id, ok := cpuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CreditPackage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := cpuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditpackage.FieldID)
		for _, f := range fields {
			if !creditpackage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != creditpackage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := cpuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := cpuo.mutation.Title(); ok {
		_spec.SetField(creditpackage.FieldTitle, field.TypeString, value)
	}
	if value, ok := cpuo.mutation.Features(); ok {
		_spec.SetField(creditpackage.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := cpuo.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, creditpackage.FieldFeatures, value)
		})
	}
	if cpuo.mutation.FeaturesCleared() {
		_spec.ClearField(creditpackage.FieldFeatures, field.TypeJSON)
	}
	if value, ok := cpuo.mutation.PricePerCredit(); ok {
		_spec.SetField(creditpackage.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := cpuo.mutation.AddedPricePerCredit(); ok {
		_spec.AddField(creditpackage.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := cpuo.mutation.NumberOfCredits(); ok {
		_spec.SetField(creditpackage.FieldNumberOfCredits, field.TypeInt, value)
	}
	if value, ok := cpuo.mutation.AddedNumberOfCredits(); ok {
		_spec.AddField(creditpackage.FieldNumberOfCredits, field.TypeInt, value)
	}
	if value, ok := cpuo.mutation.PackageType(); ok {
		_spec.SetField(creditpackage.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := cpuo.mutation.AddedPackageType(); ok {
		_spec.AddField(creditpackage.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := cpuo.mutation.UpdatedAt(); ok {
		_spec.SetField(creditpackage.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CreditPackage{config: cpuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, cpuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{creditpackage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	cpuo.mutation.done = true
	return _node, nil
}
