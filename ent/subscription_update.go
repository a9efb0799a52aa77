// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/predicate"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/internal/models"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubscriptionUpdate is the builder for updating Subscription entities.
type SubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *SubscriptionMutation
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (su *SubscriptionUpdate) Where(ps ...predicate.Subscription) *SubscriptionUpdate {
	su.mutation.Where(ps...)
	return su
}

// SetPackageID sets the "package_id" field.
func (su *SubscriptionUpdate) SetPackageID(u uuid.UUID) *SubscriptionUpdate {
	su.mutation.SetPackageID(u)
	return su
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillablePackageID(u *uuid.UUID) *SubscriptionUpdate {
	if u != nil {
		su.SetPackageID(*u)
	}
	return su
}

// SetTitle sets the "title" field.
func (su *SubscriptionUpdate) SetTitle(s string) *SubscriptionUpdate {
	su.mutation.SetTitle(s)
	return su
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableTitle(s *string) *SubscriptionUpdate {
	if s != nil {
		su.SetTitle(*s)
	}
	return su
}

// SetFeatures sets the "features" field.
func (su *SubscriptionUpdate) SetFeatures(s []string) *SubscriptionUpdate {
	su.mutation.SetFeatures(s)
	return su
}

// AppendFeatures appends s to the "features" field.
func (su *SubscriptionUpdate) AppendFeatures(s []string) *SubscriptionUpdate {
	su.mutation.AppendFeatures(s)
	return su
}

// ClearFeatures clears the value of the "features" field.
func (su *SubscriptionUpdate) ClearFeatures() *SubscriptionUpdate {
	su.mutation.ClearFeatures()
	return su
}

// SetPricePerCredit sets the "price_per_credit" field.
func (su *SubscriptionUpdate) SetPricePerCredit(f float64) *SubscriptionUpdate {
	su.mutation.ResetPricePerCredit()
	su.mutation.SetPricePerCredit(f)
	return su
}

// SetNillablePricePerCredit sets the "price_per_credit" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillablePricePerCredit(f *float64) *SubscriptionUpdate {
	if f != nil {
		su.SetPricePerCredit(*f)
	}
	return su
}

// AddPricePerCredit adds f to the "price_per_credit" field.
func (su *SubscriptionUpdate) AddPricePerCredit(f float64) *SubscriptionUpdate {
	su.mutation.AddPricePerCredit(f)
	return su
}

// SetCreditAllowance sets the "credit_allowance" field.
func (su *SubscriptionUpdate) SetCreditAllowance(i int) *SubscriptionUpdate {
	su.mutation.ResetCreditAllowance()
	su.mutation.SetCreditAllowance(i)
	return su
}

// SetNillableCreditAllowance sets the "credit_allowance" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableCreditAllowance(i *int) *SubscriptionUpdate {
	if i != nil {
		su.SetCreditAllowance(*i)
	}
	return su
}

// AddCreditAllowance adds i to the "credit_allowance" field.
func (su *SubscriptionUpdate) AddCreditAllowance(i int) *SubscriptionUpdate {
	su.mutation.AddCreditAllowance(i)
	return su
}

// SetPackageType sets the "package_type" field.
func (su *SubscriptionUpdate) SetPackageType(mt models.PackageType) *SubscriptionUpdate {
	su.mutation.ResetPackageType()
	su.mutation.SetPackageType(mt)
	return su
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillablePackageType(mt *models.PackageType) *SubscriptionUpdate {
	if mt != nil {
		su.SetPackageType(*mt)
	}
	return su
}

// AddPackageType adds mt to the "package_type" field.
func (su *SubscriptionUpdate) AddPackageType(mt models.PackageType) *SubscriptionUpdate {
	su.mutation.AddPackageType(mt)
	return su
}

// SetCredits sets the "credits" field.
func (su *SubscriptionUpdate) SetCredits(i int) *SubscriptionUpdate {
	su.mutation.ResetCredits()
	su.mutation.SetCredits(i)
	return su
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableCredits(i *int) *SubscriptionUpdate {
	if i != nil {
		su.SetCredits(*i)
	}
	return su
}

// AddCredits adds i to the "credits" field.
func (su *SubscriptionUpdate) AddCredits(i int) *SubscriptionUpdate {
	su.mutation.AddCredits(i)
	return su
}

// SetAdminCreditsAdded sets the "admin_credits_added" field.
func (su *SubscriptionUpdate) SetAdminCreditsAdded(i int) *SubscriptionUpdate {
	su.mutation.ResetAdminCreditsAdded()
	su.mutation.SetAdminCreditsAdded(i)
	return su
}

// SetNillableAdminCreditsAdded sets the "admin_credits_added" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableAdminCreditsAdded(i *int) *SubscriptionUpdate {
	if i != nil {
		su.SetAdminCreditsAdded(*i)
	}
	return su
}

// AddAdminCreditsAdded adds i to the "admin_credits_added" field.
func (su *SubscriptionUpdate) AddAdminCreditsAdded(i int) *SubscriptionUpdate {
	su.mutation.AddAdminCreditsAdded(i)
	return su
}

// SetAdminCreditsRemoved sets the "admin_credits_removed" field.
func (su *SubscriptionUpdate) SetAdminCreditsRemoved(i int) *SubscriptionUpdate {
	su.mutation.ResetAdminCreditsRemoved()
	su.mutation.SetAdminCreditsRemoved(i)
	return su
}

// SetNillableAdminCreditsRemoved sets the "admin_credits_removed" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableAdminCreditsRemoved(i *int) *SubscriptionUpdate {
	if i != nil {
		su.SetAdminCreditsRemoved(*i)
	}
	return su
}

// AddAdminCreditsRemoved adds i to the "admin_credits_removed" field.
func (su *SubscriptionUpdate) AddAdminCreditsRemoved(i int) *SubscriptionUpdate {
	su.mutation.AddAdminCreditsRemoved(i)
	return su
}

// SetTransactionID sets the "transaction_id" field.
func (su *SubscriptionUpdate) SetTransactionID(s string) *SubscriptionUpdate {
	su.mutation.SetTransactionID(s)
	return su
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableTransactionID(s *string) *SubscriptionUpdate {
	if s != nil {
		su.SetTransactionID(*s)
	}
	return su
}

// SetGrantedAt sets the "granted_at" field.
func (su *SubscriptionUpdate) SetGrantedAt(t time.Time) *SubscriptionUpdate {
	su.mutation.SetGrantedAt(t)
	return su
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (su *SubscriptionUpdate) SetNillableGrantedAt(t *time.Time) *SubscriptionUpdate {
	if t != nil {
		su.SetGrantedAt(*t)
	}
	return su
}

// SetUpdatedAt sets the "updated_at" field.
func (su *SubscriptionUpdate) SetUpdatedAt(t time.Time) *SubscriptionUpdate {
	su.mutation.SetUpdatedAt(t)
	return su
}

// AddHistoryIDs adds the "history" edge to the SubscriptionHistory entity by IDs.
func (su *SubscriptionUpdate) AddHistoryIDs(ids ...uuid.UUID) *SubscriptionUpdate {
	su.mutation.AddHistoryIDs(ids...)
	return su
}

// AddHistory adds the "history" edges to the SubscriptionHistory entity.
func (su *SubscriptionUpdate) AddHistory(s ...*SubscriptionHistory) *SubscriptionUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return su.AddHistoryIDs(ids...)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (su *SubscriptionUpdate) Mutation() *SubscriptionMutation {
	return su.mutation
}

// ClearHistory clears all "history" edges to the SubscriptionHistory entity.
func (su *SubscriptionUpdate) ClearHistory() *SubscriptionUpdate {
	su.mutation.ClearHistory()
	return su
}

// RemoveHistoryIDs removes the "history" edge to SubscriptionHistory entities by IDs.
func (su *SubscriptionUpdate) RemoveHistoryIDs(ids ...uuid.UUID) *SubscriptionUpdate {
	su.mutation.RemoveHistoryIDs(ids...)
	return su
}

// RemoveHistory removes "history" edges to SubscriptionHistory entities.
func (su *SubscriptionUpdate) RemoveHistory(s ...*SubscriptionHistory) *SubscriptionUpdate {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return su.RemoveHistoryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (su *SubscriptionUpdate) Save(ctx context.Context) (int, error) {
	su.defaults()
	return withHooks(ctx, su.sqlSave, su.mutation, su.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (su *SubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := su.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (su *SubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := su.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (su *SubscriptionUpdate) ExecX(ctx context.Context) {
	if err := su.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (su *SubscriptionUpdate) defaults() {
	if _, ok := su.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		su.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (su *SubscriptionUpdate) check() error {
	if v, ok := su.mutation.Title(); ok {
		if err := subscription.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subscription.title": %w`, err)}
		}
	}
	if v, ok := su.mutation.PricePerCredit(); ok {
		if err := subscription.PricePerCreditValidator(v); err != nil {
			return &ValidationError{Name: "price_per_credit", err: fmt.Errorf(`ent: validator failed for field "Subscription.price_per_credit": %w`, err)}
		}
	}
	if v, ok := su.mutation.CreditAllowance(); ok {
		if err := subscription.CreditAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "credit_allowance", err: fmt.Errorf(`ent: validator failed for field "Subscription.credit_allowance": %w`, err)}
		}
	}
	if v, ok := su.mutation.Credits(); ok {
		if err := subscription.CreditsValidator(v); err != nil {
			return &ValidationError{Name: "credits", err: fmt.Errorf(`ent: validator failed for field "Subscription.credits": %w`, err)}
		}
	}
	if v, ok := su.mutation.AdminCreditsAdded(); ok {
		if err := subscription.AdminCreditsAddedValidator(v); err != nil {
			return &ValidationError{Name: "admin_credits_added", err: fmt.Errorf(`ent: validator failed for field "Subscription.admin_credits_added": %w`, err)}
		}
	}
	if v, ok := su.mutation.AdminCreditsRemoved(); ok {
		if err := subscription.AdminCreditsRemovedValidator(v); err != nil {
			return &ValidationError{Name: "admin_credits_removed", err: fmt.Errorf(`ent: validator failed for field "Subscription.admin_credits_removed": %w`, err)}
		}
	}
	if v, ok := su.mutation.TransactionID(); ok {
		if err := subscription.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.transaction_id": %w`, err)}
		}
	}
	if su.mutation.EmployerCleared() && len(su.mutation.EmployerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subscription.employer"`)
	}
	return nil
}

func (su *SubscriptionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := su.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID))
	if ps := su.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := su.mutation.PackageID(); ok {
		_spec.SetField(subscription.FieldPackageID, field.TypeUUID, value)
	}
	if value, ok := su.mutation.Title(); ok {
		_spec.SetField(subscription.FieldTitle, field.TypeString, value)
	}
	if value, ok := su.mutation.Features(); ok {
		_spec.SetField(subscription.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := su.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscription.FieldFeatures, value)
		})
	}
	if su.mutation.FeaturesCleared() {
		_spec.ClearField(subscription.FieldFeatures, field.TypeJSON)
	}
	if value, ok := su.mutation.PricePerCredit(); ok {
		_spec.SetField(subscription.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := su.mutation.AddedPricePerCredit(); ok {
		_spec.AddField(subscription.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := su.mutation.CreditAllowance(); ok {
		_spec.SetField(subscription.FieldCreditAllowance, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedCreditAllowance(); ok {
		_spec.AddField(subscription.FieldCreditAllowance, field.TypeInt, value)
	}
	if value, ok := su.mutation.PackageType(); ok {
		_spec.SetField(subscription.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedPackageType(); ok {
		_spec.AddField(subscription.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := su.mutation.Credits(); ok {
		_spec.SetField(subscription.FieldCredits, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedCredits(); ok {
		_spec.AddField(subscription.FieldCredits, field.TypeInt, value)
	}
	if value, ok := su.mutation.AdminCreditsAdded(); ok {
		_spec.SetField(subscription.FieldAdminCreditsAdded, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedAdminCreditsAdded(); ok {
		_spec.AddField(subscription.FieldAdminCreditsAdded, field.TypeInt, value)
	}
	if value, ok := su.mutation.AdminCreditsRemoved(); ok {
		_spec.SetField(subscription.FieldAdminCreditsRemoved, field.TypeInt, value)
	}
	if value, ok := su.mutation.AddedAdminCreditsRemoved(); ok {
		_spec.AddField(subscription.FieldAdminCreditsRemoved, field.TypeInt, value)
	}
	if value, ok := su.mutation.TransactionID(); ok {
		_spec.SetField(subscription.FieldTransactionID, field.TypeString, value)
	}
	if value, ok := su.mutation.GrantedAt(); ok {
		_spec.SetField(subscription.FieldGrantedAt, field.TypeTime, value)
	}
	if value, ok := su.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if su.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := su.mutation.RemovedHistoryIDs(); len(nodes) > 0 && !su.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := su.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, su.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	su.mutation.done = true
	return n, nil
}

// SubscriptionUpdateOne is the builder for updating a single Subscription entity.
type SubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubscriptionMutation
}

// SetPackageID sets the "package_id" field.
func (suo *SubscriptionUpdateOne) SetPackageID(u uuid.UUID) *SubscriptionUpdateOne {
	suo.mutation.SetPackageID(u)
	return suo
}

// SetNillablePackageID sets the "package_id" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillablePackageID(u *uuid.UUID) *SubscriptionUpdateOne {
	if u != nil {
		suo.SetPackageID(*u)
	}
	return suo
}

// SetTitle sets the "title" field.
func (suo *SubscriptionUpdateOne) SetTitle(s string) *SubscriptionUpdateOne {
	suo.mutation.SetTitle(s)
	return suo
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableTitle(s *string) *SubscriptionUpdateOne {
	if s != nil {
		suo.SetTitle(*s)
	}
	return suo
}

// SetFeatures sets the "features" field.
func (suo *SubscriptionUpdateOne) SetFeatures(s []string) *SubscriptionUpdateOne {
	suo.mutation.SetFeatures(s)
	return suo
}

// AppendFeatures appends s to the "features" field.
func (suo *SubscriptionUpdateOne) AppendFeatures(s []string) *SubscriptionUpdateOne {
	suo.mutation.AppendFeatures(s)
	return suo
}

// ClearFeatures clears the value of the "features" field.
func (suo *SubscriptionUpdateOne) ClearFeatures() *SubscriptionUpdateOne {
	suo.mutation.ClearFeatures()
	return suo
}

// SetPricePerCredit sets the "price_per_credit" field.
func (suo *SubscriptionUpdateOne) SetPricePerCredit(f float64) *SubscriptionUpdateOne {
	suo.mutation.ResetPricePerCredit()
	suo.mutation.SetPricePerCredit(f)
	return suo
}

// SetNillablePricePerCredit sets the "price_per_credit" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillablePricePerCredit(f *float64) *SubscriptionUpdateOne {
	if f != nil {
		suo.SetPricePerCredit(*f)
	}
	return suo
}

// AddPricePerCredit adds f to the "price_per_credit" field.
func (suo *SubscriptionUpdateOne) AddPricePerCredit(f float64) *SubscriptionUpdateOne {
	suo.mutation.AddPricePerCredit(f)
	return suo
}

// SetCreditAllowance sets the "credit_allowance" field.
func (suo *SubscriptionUpdateOne) SetCreditAllowance(i int) *SubscriptionUpdateOne {
	suo.mutation.ResetCreditAllowance()
	suo.mutation.SetCreditAllowance(i)
	return suo
}

// SetNillableCreditAllowance sets the "credit_allowance" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableCreditAllowance(i *int) *SubscriptionUpdateOne {
	if i != nil {
		suo.SetCreditAllowance(*i)
	}
	return suo
}

// AddCreditAllowance adds i to the "credit_allowance" field.
func (suo *SubscriptionUpdateOne) AddCreditAllowance(i int) *SubscriptionUpdateOne {
	suo.mutation.AddCreditAllowance(i)
	return suo
}

// SetPackageType sets the "package_type" field.
func (suo *SubscriptionUpdateOne) SetPackageType(mt models.PackageType) *SubscriptionUpdateOne {
	suo.mutation.ResetPackageType()
	suo.mutation.SetPackageType(mt)
	return suo
}

// SetNillablePackageType sets the "package_type" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillablePackageType(mt *models.PackageType) *SubscriptionUpdateOne {
	if mt != nil {
		suo.SetPackageType(*mt)
	}
	return suo
}

// AddPackageType adds mt to the "package_type" field.
func (suo *SubscriptionUpdateOne) AddPackageType(mt models.PackageType) *SubscriptionUpdateOne {
	suo.mutation.AddPackageType(mt)
	return suo
}

// SetCredits sets the "credits" field.
func (suo *SubscriptionUpdateOne) SetCredits(i int) *SubscriptionUpdateOne {
	suo.mutation.ResetCredits()
	suo.mutation.SetCredits(i)
	return suo
}

// SetNillableCredits sets the "credits" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableCredits(i *int) *SubscriptionUpdateOne {
	if i != nil {
		suo.SetCredits(*i)
	}
	return suo
}

// AddCredits adds i to the "credits" field.
func (suo *SubscriptionUpdateOne) AddCredits(i int) *SubscriptionUpdateOne {
	suo.mutation.AddCredits(i)
	return suo
}

// SetAdminCreditsAdded sets the "admin_credits_added" field.
func (suo *SubscriptionUpdateOne) SetAdminCreditsAdded(i int) *SubscriptionUpdateOne {
	suo.mutation.ResetAdminCreditsAdded()
	suo.mutation.SetAdminCreditsAdded(i)
	return suo
}

// SetNillableAdminCreditsAdded sets the "admin_credits_added" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableAdminCreditsAdded(i *int) *SubscriptionUpdateOne {
	if i != nil {
		suo.SetAdminCreditsAdded(*i)
	}
	return suo
}

// AddAdminCreditsAdded adds i to the "admin_credits_added" field.
func (suo *SubscriptionUpdateOne) AddAdminCreditsAdded(i int) *SubscriptionUpdateOne {
	suo.mutation.AddAdminCreditsAdded(i)
	return suo
}

// SetAdminCreditsRemoved sets the "admin_credits_removed" field.
func (suo *SubscriptionUpdateOne) SetAdminCreditsRemoved(i int) *SubscriptionUpdateOne {
	suo.mutation.ResetAdminCreditsRemoved()
	suo.mutation.SetAdminCreditsRemoved(i)
	return suo
}

// SetNillableAdminCreditsRemoved sets the "admin_credits_removed" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableAdminCreditsRemoved(i *int) *SubscriptionUpdateOne {
	if i != nil {
		suo.SetAdminCreditsRemoved(*i)
	}
	return suo
}

// AddAdminCreditsRemoved adds i to the "admin_credits_removed" field.
func (suo *SubscriptionUpdateOne) AddAdminCreditsRemoved(i int) *SubscriptionUpdateOne {
	suo.mutation.AddAdminCreditsRemoved(i)
	return suo
}

// SetTransactionID sets the "transaction_id" field.
func (suo *SubscriptionUpdateOne) SetTransactionID(s string) *SubscriptionUpdateOne {
	suo.mutation.SetTransactionID(s)
	return suo
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableTransactionID(s *string) *SubscriptionUpdateOne {
	if s != nil {
		suo.SetTransactionID(*s)
	}
	return suo
}

// SetGrantedAt sets the "granted_at" field.
func (suo *SubscriptionUpdateOne) SetGrantedAt(t time.Time) *SubscriptionUpdateOne {
	suo.mutation.SetGrantedAt(t)
	return suo
}

// SetNillableGrantedAt sets the "granted_at" field if the given value is not nil.
func (suo *SubscriptionUpdateOne) SetNillableGrantedAt(t *time.Time) *SubscriptionUpdateOne {
	if t != nil {
		suo.SetGrantedAt(*t)
	}
	return suo
}

// SetUpdatedAt sets the "updated_at" field.
func (suo *SubscriptionUpdateOne) SetUpdatedAt(t time.Time) *SubscriptionUpdateOne {
	suo.mutation.SetUpdatedAt(t)
	return suo
}

// AddHistoryIDs adds the "history" edge to the SubscriptionHistory entity by IDs.
func (suo *SubscriptionUpdateOne) AddHistoryIDs(ids ...uuid.UUID) *SubscriptionUpdateOne {
	suo.mutation.AddHistoryIDs(ids...)
	return suo
}

// AddHistory adds the "history" edges to the SubscriptionHistory entity.
func (suo *SubscriptionUpdateOne) AddHistory(s ...*SubscriptionHistory) *SubscriptionUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return suo.AddHistoryIDs(ids...)
}

// Mutation returns the SubscriptionMutation object of the builder.
func (suo *SubscriptionUpdateOne) Mutation() *SubscriptionMutation {
	return suo.mutation
}

// ClearHistory clears all "history" edges to the SubscriptionHistory entity.
func (suo *SubscriptionUpdateOne) ClearHistory() *SubscriptionUpdateOne {
	suo.mutation.ClearHistory()
	return suo
}

// RemoveHistoryIDs removes the "history" edge to SubscriptionHistory entities by IDs.
func (suo *SubscriptionUpdateOne) RemoveHistoryIDs(ids ...uuid.UUID) *SubscriptionUpdateOne {
	suo.mutation.RemoveHistoryIDs(ids...)
	return suo
}

// RemoveHistory removes "history" edges to SubscriptionHistory entities.
func (suo *SubscriptionUpdateOne) RemoveHistory(s ...*SubscriptionHistory) *SubscriptionUpdateOne {
	ids := make([]uuid.UUID, len(s))
	for i := range s {
		ids[i] = s[i].ID
	}
	return suo.RemoveHistoryIDs(ids...)
}

// Where appends a list predicates to the SubscriptionUpdate builder.
func (suo *SubscriptionUpdateOne) Where(ps ...predicate.Subscription) *SubscriptionUpdateOne {
	suo.mutation.Where(ps...)
	return suo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (suo *SubscriptionUpdateOne) Select(field string, fields ...string) *SubscriptionUpdateOne {
	suo.fields = append([]string{field}, fields...)
	return suo
}

// Save executes the query and returns the updated Subscription entity.
func (suo *SubscriptionUpdateOne) Save(ctx context.Context) (*Subscription, error) {
	suo.defaults()
	return withHooks(ctx, suo.sqlSave, suo.mutation, suo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (suo *SubscriptionUpdateOne) SaveX(ctx context.Context) *Subscription {
	node, err := suo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (suo *SubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := suo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (suo *SubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := suo.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (suo *SubscriptionUpdateOne) defaults() {
	if _, ok := suo.mutation.UpdatedAt(); !ok {
		v := subscription.UpdateDefaultUpdatedAt()
		suo.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (suo *SubscriptionUpdateOne) check() error {
	if v, ok := suo.mutation.Title(); ok {
		if err := subscription.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subscription.title": %w`, err)}
		}
	}
	if v, ok := suo.mutation.PricePerCredit(); ok {
		if err := subscription.PricePerCreditValidator(v); err != nil {
			return &ValidationError{Name: "price_per_credit", err: fmt.Errorf(`ent: validator failed for field "Subscription.price_per_credit": %w`, err)}
		}
	}
	if v, ok := suo.mutation.CreditAllowance(); ok {
		if err := subscription.CreditAllowanceValidator(v); err != nil {
			return &ValidationError{Name: "credit_allowance", err: fmt.Errorf(`ent: validator failed for field "Subscription.credit_allowance": %w`, err)}
		}
	}
	if v, ok := suo.mutation.Credits(); ok {
		if err := subscription.CreditsValidator(v); err != nil {
			return &ValidationError{Name: "credits", err: fmt.Errorf(`ent: validator failed for field "Subscription.credits": %w`, err)}
		}
	}
	if v, ok := suo.mutation.AdminCreditsAdded(); ok {
		if err := subscription.AdminCreditsAddedValidator(v); err != nil {
			return &ValidationError{Name: "admin_credits_added", err: fmt.Errorf(`ent: validator failed for field "Subscription.admin_credits_added": %w`, err)}
		}
	}
	if v, ok := suo.mutation.AdminCreditsRemoved(); ok {
		if err := subscription.AdminCreditsRemovedValidator(v); err != nil {
			return &ValidationError{Name: "admin_credits_removed", err: fmt.Errorf(`ent: validator failed for field "Subscription.admin_credits_removed": %w`, err)}
		}
	}
	if v, ok := suo.mutation.TransactionID(); ok {
		if err := subscription.TransactionIDValidator(v); err != nil {
			return &ValidationError{Name: "transaction_id", err: fmt.Errorf(`ent: validator failed for field "Subscription.transaction_id": %w`, err)}
		}
	}
	if suo.mutation.EmployerCleared() && len(suo.mutation.EmployerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Subscription.employer"`)
	}
	return nil
}

func (suo *SubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *Subscription, err error) {
	if err := suo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subscription.Table, subscription.Columns, sqlgraph.NewFieldSpec(subscription.FieldID, field.TypeUUID))
	id, ok := suo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := suo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscription.FieldID)
		for _, f := range fields {
			if !subscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subscription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := suo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := suo.mutation.PackageID(); ok {
		_spec.SetField(subscription.FieldPackageID, field.TypeUUID, value)
	}
	if value, ok := suo.mutation.Title(); ok {
		_spec.SetField(subscription.FieldTitle, field.TypeString, value)
	}
	if value, ok := suo.mutation.Features(); ok {
		_spec.SetField(subscription.FieldFeatures, field.TypeJSON, value)
	}
	if value, ok := suo.mutation.AppendedFeatures(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, subscription.FieldFeatures, value)
		})
	}
	if suo.mutation.FeaturesCleared() {
		_spec.ClearField(subscription.FieldFeatures, field.TypeJSON)
	}
	if value, ok := suo.mutation.PricePerCredit(); ok {
		_spec.SetField(subscription.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := suo.mutation.AddedPricePerCredit(); ok {
		_spec.AddField(subscription.FieldPricePerCredit, field.TypeFloat64, value)
	}
	if value, ok := suo.mutation.CreditAllowance(); ok {
		_spec.SetField(subscription.FieldCreditAllowance, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedCreditAllowance(); ok {
		_spec.AddField(subscription.FieldCreditAllowance, field.TypeInt, value)
	}
	if value, ok := suo.mutation.PackageType(); ok {
		_spec.SetField(subscription.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedPackageType(); ok {
		_spec.AddField(subscription.FieldPackageType, field.TypeInt, value)
	}
	if value, ok := suo.mutation.Credits(); ok {
		_spec.SetField(subscription.FieldCredits, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedCredits(); ok {
		_spec.AddField(subscription.FieldCredits, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AdminCreditsAdded(); ok {
		_spec.SetField(subscription.FieldAdminCreditsAdded, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedAdminCreditsAdded(); ok {
		_spec.AddField(subscription.FieldAdminCreditsAdded, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AdminCreditsRemoved(); ok {
		_spec.SetField(subscription.FieldAdminCreditsRemoved, field.TypeInt, value)
	}
	if value, ok := suo.mutation.AddedAdminCreditsRemoved(); ok {
		_spec.AddField(subscription.FieldAdminCreditsRemoved, field.TypeInt, value)
	}
	if value, ok := suo.mutation.TransactionID(); ok {
		_spec.SetField(subscription.FieldTransactionID, field.TypeString, value)
	}
	if value, ok := suo.mutation.GrantedAt(); ok {
		_spec.SetField(subscription.FieldGrantedAt, field.TypeTime, value)
	}
	if value, ok := suo.mutation.UpdatedAt(); ok {
		_spec.SetField(subscription.FieldUpdatedAt, field.TypeTime, value)
	}
	if suo.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := suo.mutation.RemovedHistoryIDs(); len(nodes) > 0 && !suo.mutation.HistoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := suo.mutation.HistoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Subscription{config: suo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, suo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	suo.mutation.done = true
	return _node, nil
}
