// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"hirehub/ent/creditpackage"
	"hirehub/ent/job"
	"hirehub/ent/jobapplication"
	"hirehub/ent/predicate"
	"hirehub/ent/submittedtest"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/ent/user"
	"hirehub/internal/models"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCreditPackage       = "CreditPackage"
	TypeJob                 = "Job"
	TypeJobApplication      = "JobApplication"
	TypeSubmittedTest       = "SubmittedTest"
	TypeSubscription        = "Subscription"
	TypeSubscriptionHistory = "SubscriptionHistory"
	TypeUser                = "User"
)

// CreditPackageMutation represents an operation that mutates the CreditPackage nodes in the graph.
type CreditPackageMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	title                *string
	features             *[]string
	appendfeatures       []string
	price_per_credit     *float64
	addprice_per_credit  *float64
	number_of_credits    *int
	addnumber_of_credits *int
	package_type         *models.PackageType
	addpackage_type      *models.PackageType
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*CreditPackage, error)
	predicates           []predicate.CreditPackage
}

var _ ent.Mutation = (*CreditPackageMutation)(nil)

// creditpackageOption allows management of the mutation configuration using functional options.
type creditpackageOption func(*CreditPackageMutation)

// newCreditPackageMutation creates new mutation for the CreditPackage entity.
func newCreditPackageMutation(c config, op Op, opts ...creditpackageOption) *CreditPackageMutation {
	m := &CreditPackageMutation{
		config:        c,
		op:            op,
		typ:           TypeCreditPackage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCreditPackageID sets the ID field of the mutation.
func withCreditPackageID(id uuid.UUID) creditpackageOption {
	return func(m *CreditPackageMutation) {
		var (
			err   error
			once  sync.Once
			value *CreditPackage
		)
		m.oldValue = func(ctx context.Context) (*CreditPackage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CreditPackage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCreditPackage sets the old CreditPackage of the mutation.
func withCreditPackage(node *CreditPackage) creditpackageOption {
	return func(m *CreditPackageMutation) {
		m.oldValue = func(context.Context) (*CreditPackage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CreditPackageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CreditPackageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CreditPackage entities.
func (m *CreditPackageMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CreditPackageMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CreditPackageMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CreditPackage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *CreditPackageMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CreditPackageMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *CreditPackageMutation) ResetTitle() {
	m.title = nil
}

// SetFeatures sets the "features" field.
func (m *CreditPackageMutation) SetFeatures(s []string) {
	m.features = &s
	m.appendfeatures = nil
}

// Features returns the value of the "features" field in the mutation.
func (m *CreditPackageMutation) Features() (r []string, exists bool) {
	v := m.features
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatures returns the old "features" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldFeatures(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatures: %w", err)
	}
	return oldValue.Features, nil
}

// AppendFeatures adds s to the "features" field.
func (m *CreditPackageMutation) AppendFeatures(s []string) {
	m.appendfeatures = append(m.appendfeatures, s...)
}

// AppendedFeatures returns the list of values that were appended to the "features" field in this mutation.
func (m *CreditPackageMutation) AppendedFeatures() ([]string, bool) {
	if len(m.appendfeatures) == 0 {
		return nil, false
	}
	return m.appendfeatures, true
}

// ClearFeatures clears the value of the "features" field.
func (m *CreditPackageMutation) ClearFeatures() {
	m.features = nil
	m.appendfeatures = nil
	m.clearedFields[creditpackage.FieldFeatures] = struct{}{}
}

// FeaturesCleared returns if the "features" field was cleared in this mutation.
func (m *CreditPackageMutation) FeaturesCleared() bool {
	_, ok := m.clearedFields[creditpackage.FieldFeatures]
	return ok
}

// ResetFeatures resets all changes to the "features" field.
func (m *CreditPackageMutation) ResetFeatures() {
	m.features = nil
	m.appendfeatures = nil
	delete(m.clearedFields, creditpackage.FieldFeatures)
}

// SetPricePerCredit sets the "price_per_credit" field.
func (m *CreditPackageMutation) SetPricePerCredit(f float64) {
	m.price_per_credit = &f
	m.addprice_per_credit = nil
}

// PricePerCredit returns the value of the "price_per_credit" field in the mutation.
func (m *CreditPackageMutation) PricePerCredit() (r float64, exists bool) {
	v := m.price_per_credit
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerCredit returns the old "price_per_credit" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldPricePerCredit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerCredit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerCredit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerCredit: %w", err)
	}
	return oldValue.PricePerCredit, nil
}

// AddPricePerCredit adds f to the "price_per_credit" field.
func (m *CreditPackageMutation) AddPricePerCredit(f float64) {
	if m.addprice_per_credit != nil {
		*m.addprice_per_credit += f
	} else {
		m.addprice_per_credit = &f
	}
}

// AddedPricePerCredit returns the value that was added to the "price_per_credit" field in this mutation.
func (m *CreditPackageMutation) AddedPricePerCredit() (r float64, exists bool) {
	v := m.addprice_per_credit
	if v == nil {
		return
	}
	return *v, true
}

// ResetPricePerCredit resets all changes to the "price_per_credit" field.
func (m *CreditPackageMutation) ResetPricePerCredit() {
	m.price_per_credit = nil
	m.addprice_per_credit = nil
}

// SetNumberOfCredits sets the "number_of_credits" field.
func (m *CreditPackageMutation) SetNumberOfCredits(i int) {
	m.number_of_credits = &i
	m.addnumber_of_credits = nil
}

// NumberOfCredits returns the value of the "number_of_credits" field in the mutation.
func (m *CreditPackageMutation) NumberOfCredits() (r int, exists bool) {
	v := m.number_of_credits
	if v == nil {
		return
	}
	return *v, true
}

// OldNumberOfCredits returns the old "number_of_credits" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldNumberOfCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumberOfCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumberOfCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumberOfCredits: %w", err)
	}
	return oldValue.NumberOfCredits, nil
}

// AddNumberOfCredits adds i to the "number_of_credits" field.
func (m *CreditPackageMutation) AddNumberOfCredits(i int) {
	if m.addnumber_of_credits != nil {
		*m.addnumber_of_credits += i
	} else {
		m.addnumber_of_credits = &i
	}
}

// AddedNumberOfCredits returns the value that was added to the "number_of_credits" field in this mutation.
func (m *CreditPackageMutation) AddedNumberOfCredits() (r int, exists bool) {
	v := m.addnumber_of_credits
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumberOfCredits resets all changes to the "number_of_credits" field.
func (m *CreditPackageMutation) ResetNumberOfCredits() {
	m.number_of_credits = nil
	m.addnumber_of_credits = nil
}

// SetPackageType sets the "package_type" field.
func (m *CreditPackageMutation) SetPackageType(mt models.PackageType) {
	m.package_type = &mt
	m.addpackage_type = nil
}

// PackageType returns the value of the "package_type" field in the mutation.
func (m *CreditPackageMutation) PackageType() (r models.PackageType, exists bool) {
	v := m.package_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageType returns the old "package_type" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldPackageType(ctx context.Context) (v models.PackageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageType: %w", err)
	}
	return oldValue.PackageType, nil
}

// AddPackageType adds mt to the "package_type" field.
func (m *CreditPackageMutation) AddPackageType(mt models.PackageType) {
	if m.addpackage_type != nil {
		*m.addpackage_type += mt
	} else {
		m.addpackage_type = &mt
	}
}

// AddedPackageType returns the value that was added to the "package_type" field in this mutation.
func (m *CreditPackageMutation) AddedPackageType() (r models.PackageType, exists bool) {
	v := m.addpackage_type
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageType resets all changes to the "package_type" field.
func (m *CreditPackageMutation) ResetPackageType() {
	m.package_type = nil
	m.addpackage_type = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CreditPackageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CreditPackageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CreditPackageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CreditPackageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CreditPackageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CreditPackage entity.
// If the CreditPackage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CreditPackageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CreditPackageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CreditPackageMutation builder.
func (m *CreditPackageMutation) Where(ps ...predicate.CreditPackage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CreditPackageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CreditPackageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CreditPackage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CreditPackageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CreditPackageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CreditPackage).
func (m *CreditPackageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CreditPackageMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, creditpackage.FieldTitle)
	}
	if m.features != nil {
		fields = append(fields, creditpackage.FieldFeatures)
	}
	if m.price_per_credit != nil {
		fields = append(fields, creditpackage.FieldPricePerCredit)
	}
	if m.number_of_credits != nil {
		fields = append(fields, creditpackage.FieldNumberOfCredits)
	}
	if m.package_type != nil {
		fields = append(fields, creditpackage.FieldPackageType)
	}
	if m.created_at != nil {
		fields = append(fields, creditpackage.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, creditpackage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CreditPackageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case creditpackage.FieldTitle:
		return m.Title()
	case creditpackage.FieldFeatures:
		return m.Features()
	case creditpackage.FieldPricePerCredit:
		return m.PricePerCredit()
	case creditpackage.FieldNumberOfCredits:
		return m.NumberOfCredits()
	case creditpackage.FieldPackageType:
		return m.PackageType()
	case creditpackage.FieldCreatedAt:
		return m.CreatedAt()
	case creditpackage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CreditPackageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case creditpackage.FieldTitle:
		return m.OldTitle(ctx)
	case creditpackage.FieldFeatures:
		return m.OldFeatures(ctx)
	case creditpackage.FieldPricePerCredit:
		return m.OldPricePerCredit(ctx)
	case creditpackage.FieldNumberOfCredits:
		return m.OldNumberOfCredits(ctx)
	case creditpackage.FieldPackageType:
		return m.OldPackageType(ctx)
	case creditpackage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case creditpackage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CreditPackage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditPackageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case creditpackage.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case creditpackage.FieldFeatures:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatures(v)
		return nil
	case creditpackage.FieldPricePerCredit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerCredit(v)
		return nil
	case creditpackage.FieldNumberOfCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumberOfCredits(v)
		return nil
	case creditpackage.FieldPackageType:
		v, ok := value.(models.PackageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageType(v)
		return nil
	case creditpackage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case creditpackage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CreditPackage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CreditPackageMutation) AddedFields() []string {
	var fields []string
	if m.addprice_per_credit != nil {
		fields = append(fields, creditpackage.FieldPricePerCredit)
	}
	if m.addnumber_of_credits != nil {
		fields = append(fields, creditpackage.FieldNumberOfCredits)
	}
	if m.addpackage_type != nil {
		fields = append(fields, creditpackage.FieldPackageType)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CreditPackageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case creditpackage.FieldPricePerCredit:
		return m.AddedPricePerCredit()
	case creditpackage.FieldNumberOfCredits:
		return m.AddedNumberOfCredits()
	case creditpackage.FieldPackageType:
		return m.AddedPackageType()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CreditPackageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case creditpackage.FieldPricePerCredit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerCredit(v)
		return nil
	case creditpackage.FieldNumberOfCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumberOfCredits(v)
		return nil
	case creditpackage.FieldPackageType:
		v, ok := value.(models.PackageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageType(v)
		return nil
	}
	return fmt.Errorf("unknown CreditPackage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CreditPackageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(creditpackage.FieldFeatures) {
		fields = append(fields, creditpackage.FieldFeatures)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CreditPackageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CreditPackageMutation) ClearField(name string) error {
	switch name {
	case creditpackage.FieldFeatures:
		m.ClearFeatures()
		return nil
	}
	return fmt.Errorf("unknown CreditPackage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CreditPackageMutation) ResetField(name string) error {
	switch name {
	case creditpackage.FieldTitle:
		m.ResetTitle()
		return nil
	case creditpackage.FieldFeatures:
		m.ResetFeatures()
		return nil
	case creditpackage.FieldPricePerCredit:
		m.ResetPricePerCredit()
		return nil
	case creditpackage.FieldNumberOfCredits:
		m.ResetNumberOfCredits()
		return nil
	case creditpackage.FieldPackageType:
		m.ResetPackageType()
		return nil
	case creditpackage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case creditpackage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CreditPackage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CreditPackageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CreditPackageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CreditPackageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CreditPackageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CreditPackageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CreditPackageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CreditPackageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CreditPackage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CreditPackageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CreditPackage edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	title               *string
	description         *string
	status              *job.Status
	questions           *[]models.Question
	appendquestions     []models.Question
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	employer            *uuid.UUID
	clearedemployer     bool
	applications        map[uuid.UUID]struct{}
	removedapplications map[uuid.UUID]struct{}
	clearedapplications bool
	done                bool
	oldValue            func(context.Context) (*Job, error)
	predicates          []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id uuid.UUID) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployerID sets the "employer_id" field.
func (m *JobMutation) SetEmployerID(u uuid.UUID) {
	m.employer = &u
}

// EmployerID returns the value of the "employer_id" field in the mutation.
func (m *JobMutation) EmployerID() (r uuid.UUID, exists bool) {
	v := m.employer
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployerID returns the old "employer_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldEmployerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployerID: %w", err)
	}
	return oldValue.EmployerID, nil
}

// ResetEmployerID resets all changes to the "employer_id" field.
func (m *JobMutation) ResetEmployerID() {
	m.employer = nil
}

// SetTitle sets the "title" field.
func (m *JobMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *JobMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *JobMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *JobMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *JobMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *JobMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[job.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *JobMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[job.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *JobMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, job.FieldDescription)
}

// SetStatus sets the "status" field.
func (m *JobMutation) SetStatus(j job.Status) {
	m.status = &j
}

// Status returns the value of the "status" field in the mutation.
func (m *JobMutation) Status() (r job.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStatus(ctx context.Context) (v job.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobMutation) ResetStatus() {
	m.status = nil
}

// SetQuestions sets the "questions" field.
func (m *JobMutation) SetQuestions(value []models.Question) {
	m.questions = &value
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *JobMutation) Questions() (r []models.Question, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQuestions(ctx context.Context) (v []models.Question, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds value to the "questions" field.
func (m *JobMutation) AppendQuestions(value []models.Question) {
	m.appendquestions = append(m.appendquestions, value...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *JobMutation) AppendedQuestions() ([]models.Question, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *JobMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[job.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *JobMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[job.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *JobMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, job.FieldQuestions)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEmployer clears the "employer" edge to the User entity.
func (m *JobMutation) ClearEmployer() {
	m.clearedemployer = true
	m.clearedFields[job.FieldEmployerID] = struct{}{}
}

// EmployerCleared reports if the "employer" edge to the User entity was cleared.
func (m *JobMutation) EmployerCleared() bool {
	return m.clearedemployer
}

// EmployerIDs returns the "employer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployerID instead. It exists only for internal usage by the builders.
func (m *JobMutation) EmployerIDs() (ids []uuid.UUID) {
	if id := m.employer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployer resets all changes to the "employer" edge.
func (m *JobMutation) ResetEmployer() {
	m.employer = nil
	m.clearedemployer = false
}

// AddApplicationIDs adds the "applications" edge to the JobApplication entity by ids.
func (m *JobMutation) AddApplicationIDs(ids ...uuid.UUID) {
	if m.applications == nil {
		m.applications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applications[ids[i]] = struct{}{}
	}
}

// ClearApplications clears the "applications" edge to the JobApplication entity.
func (m *JobMutation) ClearApplications() {
	m.clearedapplications = true
}

// ApplicationsCleared reports if the "applications" edge to the JobApplication entity was cleared.
func (m *JobMutation) ApplicationsCleared() bool {
	return m.clearedapplications
}

// RemoveApplicationIDs removes the "applications" edge to the JobApplication entity by IDs.
func (m *JobMutation) RemoveApplicationIDs(ids ...uuid.UUID) {
	if m.removedapplications == nil {
		m.removedapplications = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applications, ids[i])
		m.removedapplications[ids[i]] = struct{}{}
	}
}

// RemovedApplications returns the removed IDs of the "applications" edge to the JobApplication entity.
func (m *JobMutation) RemovedApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.removedapplications {
		ids = append(ids, id)
	}
	return
}

// ApplicationsIDs returns the "applications" edge IDs in the mutation.
func (m *JobMutation) ApplicationsIDs() (ids []uuid.UUID) {
	for id := range m.applications {
		ids = append(ids, id)
	}
	return
}

// ResetApplications resets all changes to the "applications" edge.
func (m *JobMutation) ResetApplications() {
	m.applications = nil
	m.clearedapplications = false
	m.removedapplications = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.employer != nil {
		fields = append(fields, job.FieldEmployerID)
	}
	if m.title != nil {
		fields = append(fields, job.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, job.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, job.FieldStatus)
	}
	if m.questions != nil {
		fields = append(fields, job.FieldQuestions)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, job.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldEmployerID:
		return m.EmployerID()
	case job.FieldTitle:
		return m.Title()
	case job.FieldDescription:
		return m.Description()
	case job.FieldStatus:
		return m.Status()
	case job.FieldQuestions:
		return m.Questions()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldEmployerID:
		return m.OldEmployerID(ctx)
	case job.FieldTitle:
		return m.OldTitle(ctx)
	case job.FieldDescription:
		return m.OldDescription(ctx)
	case job.FieldStatus:
		return m.OldStatus(ctx)
	case job.FieldQuestions:
		return m.OldQuestions(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldEmployerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployerID(v)
		return nil
	case job.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case job.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case job.FieldStatus:
		v, ok := value.(job.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case job.FieldQuestions:
		v, ok := value.([]models.Question)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldDescription) {
		fields = append(fields, job.FieldDescription)
	}
	if m.FieldCleared(job.FieldQuestions) {
		fields = append(fields, job.FieldQuestions)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldDescription:
		m.ClearDescription()
		return nil
	case job.FieldQuestions:
		m.ClearQuestions()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldEmployerID:
		m.ResetEmployerID()
		return nil
	case job.FieldTitle:
		m.ResetTitle()
		return nil
	case job.FieldDescription:
		m.ResetDescription()
		return nil
	case job.FieldStatus:
		m.ResetStatus()
		return nil
	case job.FieldQuestions:
		m.ResetQuestions()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.employer != nil {
		edges = append(edges, job.EdgeEmployer)
	}
	if m.applications != nil {
		edges = append(edges, job.EdgeApplications)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeEmployer:
		if id := m.employer; id != nil {
			return []ent.Value{*id}
		}
	case job.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.applications))
		for id := range m.applications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedapplications != nil {
		edges = append(edges, job.EdgeApplications)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case job.EdgeApplications:
		ids := make([]ent.Value, 0, len(m.removedapplications))
		for id := range m.removedapplications {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemployer {
		edges = append(edges, job.EdgeEmployer)
	}
	if m.clearedapplications {
		edges = append(edges, job.EdgeApplications)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgeEmployer:
		return m.clearedemployer
	case job.EdgeApplications:
		return m.clearedapplications
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgeEmployer:
		m.ClearEmployer()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgeEmployer:
		m.ResetEmployer()
		return nil
	case job.EdgeApplications:
		m.ResetApplications()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// JobApplicationMutation represents an operation that mutates the JobApplication nodes in the graph.
type JobApplicationMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	status                *models.ApplicationStatus
	addstatus             *models.ApplicationStatus
	outcome               *models.ApplicationOutcome
	addoutcome            *models.ApplicationOutcome
	candidate_name        *string
	candidate_email       *string
	candidate_country     *string
	candidate_timezone    *string
	candidate_contact     *string
	cv_key                *string
	cover_letter_key      *string
	about_video_key       *string
	contract_key          *string
	note                  *string
	deleted_at            *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	candidate             *uuid.UUID
	clearedcandidate      bool
	job                   *uuid.UUID
	clearedjob            bool
	submitted_test        *uuid.UUID
	clearedsubmitted_test bool
	done                  bool
	oldValue              func(context.Context) (*JobApplication, error)
	predicates            []predicate.JobApplication
}

var _ ent.Mutation = (*JobApplicationMutation)(nil)

// jobapplicationOption allows management of the mutation configuration using functional options.
type jobapplicationOption func(*JobApplicationMutation)

// newJobApplicationMutation creates new mutation for the JobApplication entity.
func newJobApplicationMutation(c config, op Op, opts ...jobapplicationOption) *JobApplicationMutation {
	m := &JobApplicationMutation{
		config:        c,
		op:            op,
		typ:           TypeJobApplication,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobApplicationID sets the ID field of the mutation.
func withJobApplicationID(id uuid.UUID) jobapplicationOption {
	return func(m *JobApplicationMutation) {
		var (
			err   error
			once  sync.Once
			value *JobApplication
		)
		m.oldValue = func(ctx context.Context) (*JobApplication, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobApplication.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobApplication sets the old JobApplication of the mutation.
func withJobApplication(node *JobApplication) jobapplicationOption {
	return func(m *JobApplicationMutation) {
		m.oldValue = func(context.Context) (*JobApplication, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobApplicationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobApplicationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobApplication entities.
func (m *JobApplicationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobApplicationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobApplicationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobApplication.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobApplicationMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobApplicationMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobApplicationMutation) ResetJobID() {
	m.job = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *JobApplicationMutation) SetCandidateID(u uuid.UUID) {
	m.candidate = &u
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *JobApplicationMutation) CandidateID() (r uuid.UUID, exists bool) {
	v := m.candidate
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCandidateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *JobApplicationMutation) ResetCandidateID() {
	m.candidate = nil
}

// SetStatus sets the "status" field.
func (m *JobApplicationMutation) SetStatus(ms models.ApplicationStatus) {
	m.status = &ms
	m.addstatus = nil
}

// Status returns the value of the "status" field in the mutation.
func (m *JobApplicationMutation) Status() (r models.ApplicationStatus, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldStatus(ctx context.Context) (v models.ApplicationStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// AddStatus adds ms to the "status" field.
func (m *JobApplicationMutation) AddStatus(ms models.ApplicationStatus) {
	if m.addstatus != nil {
		*m.addstatus += ms
	} else {
		m.addstatus = &ms
	}
}

// AddedStatus returns the value that was added to the "status" field in this mutation.
func (m *JobApplicationMutation) AddedStatus() (r models.ApplicationStatus, exists bool) {
	v := m.addstatus
	if v == nil {
		return
	}
	return *v, true
}

// ResetStatus resets all changes to the "status" field.
func (m *JobApplicationMutation) ResetStatus() {
	m.status = nil
	m.addstatus = nil
}

// SetOutcome sets the "outcome" field.
func (m *JobApplicationMutation) SetOutcome(mo models.ApplicationOutcome) {
	m.outcome = &mo
	m.addoutcome = nil
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *JobApplicationMutation) Outcome() (r models.ApplicationOutcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldOutcome(ctx context.Context) (v models.ApplicationOutcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// AddOutcome adds mo to the "outcome" field.
func (m *JobApplicationMutation) AddOutcome(mo models.ApplicationOutcome) {
	if m.addoutcome != nil {
		*m.addoutcome += mo
	} else {
		m.addoutcome = &mo
	}
}

// AddedOutcome returns the value that was added to the "outcome" field in this mutation.
func (m *JobApplicationMutation) AddedOutcome() (r models.ApplicationOutcome, exists bool) {
	v := m.addoutcome
	if v == nil {
		return
	}
	return *v, true
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *JobApplicationMutation) ResetOutcome() {
	m.outcome = nil
	m.addoutcome = nil
}

// SetCandidateName sets the "candidate_name" field.
func (m *JobApplicationMutation) SetCandidateName(s string) {
	m.candidate_name = &s
}

// CandidateName returns the value of the "candidate_name" field in the mutation.
func (m *JobApplicationMutation) CandidateName() (r string, exists bool) {
	v := m.candidate_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateName returns the old "candidate_name" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCandidateName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateName: %w", err)
	}
	return oldValue.CandidateName, nil
}

// ResetCandidateName resets all changes to the "candidate_name" field.
func (m *JobApplicationMutation) ResetCandidateName() {
	m.candidate_name = nil
}

// SetCandidateEmail sets the "candidate_email" field.
func (m *JobApplicationMutation) SetCandidateEmail(s string) {
	m.candidate_email = &s
}

// CandidateEmail returns the value of the "candidate_email" field in the mutation.
func (m *JobApplicationMutation) CandidateEmail() (r string, exists bool) {
	v := m.candidate_email
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateEmail returns the old "candidate_email" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCandidateEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateEmail: %w", err)
	}
	return oldValue.CandidateEmail, nil
}

// ResetCandidateEmail resets all changes to the "candidate_email" field.
func (m *JobApplicationMutation) ResetCandidateEmail() {
	m.candidate_email = nil
}

// SetCandidateCountry sets the "candidate_country" field.
func (m *JobApplicationMutation) SetCandidateCountry(s string) {
	m.candidate_country = &s
}

// CandidateCountry returns the value of the "candidate_country" field in the mutation.
func (m *JobApplicationMutation) CandidateCountry() (r string, exists bool) {
	v := m.candidate_country
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateCountry returns the old "candidate_country" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCandidateCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateCountry: %w", err)
	}
	return oldValue.CandidateCountry, nil
}

// ClearCandidateCountry clears the value of the "candidate_country" field.
func (m *JobApplicationMutation) ClearCandidateCountry() {
	m.candidate_country = nil
	m.clearedFields[jobapplication.FieldCandidateCountry] = struct{}{}
}

// CandidateCountryCleared returns if the "candidate_country" field was cleared in this mutation.
func (m *JobApplicationMutation) CandidateCountryCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldCandidateCountry]
	return ok
}

// ResetCandidateCountry resets all changes to the "candidate_country" field.
func (m *JobApplicationMutation) ResetCandidateCountry() {
	m.candidate_country = nil
	delete(m.clearedFields, jobapplication.FieldCandidateCountry)
}

// SetCandidateTimezone sets the "candidate_timezone" field.
func (m *JobApplicationMutation) SetCandidateTimezone(s string) {
	m.candidate_timezone = &s
}

// CandidateTimezone returns the value of the "candidate_timezone" field in the mutation.
func (m *JobApplicationMutation) CandidateTimezone() (r string, exists bool) {
	v := m.candidate_timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateTimezone returns the old "candidate_timezone" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCandidateTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateTimezone: %w", err)
	}
	return oldValue.CandidateTimezone, nil
}

// ClearCandidateTimezone clears the value of the "candidate_timezone" field.
func (m *JobApplicationMutation) ClearCandidateTimezone() {
	m.candidate_timezone = nil
	m.clearedFields[jobapplication.FieldCandidateTimezone] = struct{}{}
}

// CandidateTimezoneCleared returns if the "candidate_timezone" field was cleared in this mutation.
func (m *JobApplicationMutation) CandidateTimezoneCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldCandidateTimezone]
	return ok
}

// ResetCandidateTimezone resets all changes to the "candidate_timezone" field.
func (m *JobApplicationMutation) ResetCandidateTimezone() {
	m.candidate_timezone = nil
	delete(m.clearedFields, jobapplication.FieldCandidateTimezone)
}

// SetCandidateContact sets the "candidate_contact" field.
func (m *JobApplicationMutation) SetCandidateContact(s string) {
	m.candidate_contact = &s
}

// CandidateContact returns the value of the "candidate_contact" field in the mutation.
func (m *JobApplicationMutation) CandidateContact() (r string, exists bool) {
	v := m.candidate_contact
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateContact returns the old "candidate_contact" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCandidateContact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateContact: %w", err)
	}
	return oldValue.CandidateContact, nil
}

// ClearCandidateContact clears the value of the "candidate_contact" field.
func (m *JobApplicationMutation) ClearCandidateContact() {
	m.candidate_contact = nil
	m.clearedFields[jobapplication.FieldCandidateContact] = struct{}{}
}

// CandidateContactCleared returns if the "candidate_contact" field was cleared in this mutation.
func (m *JobApplicationMutation) CandidateContactCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldCandidateContact]
	return ok
}

// ResetCandidateContact resets all changes to the "candidate_contact" field.
func (m *JobApplicationMutation) ResetCandidateContact() {
	m.candidate_contact = nil
	delete(m.clearedFields, jobapplication.FieldCandidateContact)
}

// SetCvKey sets the "cv_key" field.
func (m *JobApplicationMutation) SetCvKey(s string) {
	m.cv_key = &s
}

// CvKey returns the value of the "cv_key" field in the mutation.
func (m *JobApplicationMutation) CvKey() (r string, exists bool) {
	v := m.cv_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCvKey returns the old "cv_key" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCvKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCvKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCvKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCvKey: %w", err)
	}
	return oldValue.CvKey, nil
}

// ClearCvKey clears the value of the "cv_key" field.
func (m *JobApplicationMutation) ClearCvKey() {
	m.cv_key = nil
	m.clearedFields[jobapplication.FieldCvKey] = struct{}{}
}

// CvKeyCleared returns if the "cv_key" field was cleared in this mutation.
func (m *JobApplicationMutation) CvKeyCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldCvKey]
	return ok
}

// ResetCvKey resets all changes to the "cv_key" field.
func (m *JobApplicationMutation) ResetCvKey() {
	m.cv_key = nil
	delete(m.clearedFields, jobapplication.FieldCvKey)
}

// SetCoverLetterKey sets the "cover_letter_key" field.
func (m *JobApplicationMutation) SetCoverLetterKey(s string) {
	m.cover_letter_key = &s
}

// CoverLetterKey returns the value of the "cover_letter_key" field in the mutation.
func (m *JobApplicationMutation) CoverLetterKey() (r string, exists bool) {
	v := m.cover_letter_key
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverLetterKey returns the old "cover_letter_key" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCoverLetterKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverLetterKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverLetterKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverLetterKey: %w", err)
	}
	return oldValue.CoverLetterKey, nil
}

// ClearCoverLetterKey clears the value of the "cover_letter_key" field.
func (m *JobApplicationMutation) ClearCoverLetterKey() {
	m.cover_letter_key = nil
	m.clearedFields[jobapplication.FieldCoverLetterKey] = struct{}{}
}

// CoverLetterKeyCleared returns if the "cover_letter_key" field was cleared in this mutation.
func (m *JobApplicationMutation) CoverLetterKeyCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldCoverLetterKey]
	return ok
}

// ResetCoverLetterKey resets all changes to the "cover_letter_key" field.
func (m *JobApplicationMutation) ResetCoverLetterKey() {
	m.cover_letter_key = nil
	delete(m.clearedFields, jobapplication.FieldCoverLetterKey)
}

// SetAboutVideoKey sets the "about_video_key" field.
func (m *JobApplicationMutation) SetAboutVideoKey(s string) {
	m.about_video_key = &s
}

// AboutVideoKey returns the value of the "about_video_key" field in the mutation.
func (m *JobApplicationMutation) AboutVideoKey() (r string, exists bool) {
	v := m.about_video_key
	if v == nil {
		return
	}
	return *v, true
}

// OldAboutVideoKey returns the old "about_video_key" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldAboutVideoKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAboutVideoKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAboutVideoKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAboutVideoKey: %w", err)
	}
	return oldValue.AboutVideoKey, nil
}

// ClearAboutVideoKey clears the value of the "about_video_key" field.
func (m *JobApplicationMutation) ClearAboutVideoKey() {
	m.about_video_key = nil
	m.clearedFields[jobapplication.FieldAboutVideoKey] = struct{}{}
}

// AboutVideoKeyCleared returns if the "about_video_key" field was cleared in this mutation.
func (m *JobApplicationMutation) AboutVideoKeyCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldAboutVideoKey]
	return ok
}

// ResetAboutVideoKey resets all changes to the "about_video_key" field.
func (m *JobApplicationMutation) ResetAboutVideoKey() {
	m.about_video_key = nil
	delete(m.clearedFields, jobapplication.FieldAboutVideoKey)
}

// SetContractKey sets the "contract_key" field.
func (m *JobApplicationMutation) SetContractKey(s string) {
	m.contract_key = &s
}

// ContractKey returns the value of the "contract_key" field in the mutation.
func (m *JobApplicationMutation) ContractKey() (r string, exists bool) {
	v := m.contract_key
	if v == nil {
		return
	}
	return *v, true
}

// OldContractKey returns the old "contract_key" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldContractKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContractKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContractKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContractKey: %w", err)
	}
	return oldValue.ContractKey, nil
}

// ClearContractKey clears the value of the "contract_key" field.
func (m *JobApplicationMutation) ClearContractKey() {
	m.contract_key = nil
	m.clearedFields[jobapplication.FieldContractKey] = struct{}{}
}

// ContractKeyCleared returns if the "contract_key" field was cleared in this mutation.
func (m *JobApplicationMutation) ContractKeyCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldContractKey]
	return ok
}

// ResetContractKey resets all changes to the "contract_key" field.
func (m *JobApplicationMutation) ResetContractKey() {
	m.contract_key = nil
	delete(m.clearedFields, jobapplication.FieldContractKey)
}

// SetNote sets the "note" field.
func (m *JobApplicationMutation) SetNote(s string) {
	m.note = &s
}

// Note returns the value of the "note" field in the mutation.
func (m *JobApplicationMutation) Note() (r string, exists bool) {
	v := m.note
	if v == nil {
		return
	}
	return *v, true
}

// OldNote returns the old "note" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldNote(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNote: %w", err)
	}
	return oldValue.Note, nil
}

// ClearNote clears the value of the "note" field.
func (m *JobApplicationMutation) ClearNote() {
	m.note = nil
	m.clearedFields[jobapplication.FieldNote] = struct{}{}
}

// NoteCleared returns if the "note" field was cleared in this mutation.
func (m *JobApplicationMutation) NoteCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldNote]
	return ok
}

// ResetNote resets all changes to the "note" field.
func (m *JobApplicationMutation) ResetNote() {
	m.note = nil
	delete(m.clearedFields, jobapplication.FieldNote)
}

// SetDeletedAt sets the "deleted_at" field.
func (m *JobApplicationMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *JobApplicationMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *JobApplicationMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[jobapplication.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *JobApplicationMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[jobapplication.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *JobApplicationMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, jobapplication.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobApplicationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobApplicationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobApplicationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *JobApplicationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *JobApplicationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the JobApplication entity.
// If the JobApplication object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobApplicationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *JobApplicationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearCandidate clears the "candidate" edge to the User entity.
func (m *JobApplicationMutation) ClearCandidate() {
	m.clearedcandidate = true
	m.clearedFields[jobapplication.FieldCandidateID] = struct{}{}
}

// CandidateCleared reports if the "candidate" edge to the User entity was cleared.
func (m *JobApplicationMutation) CandidateCleared() bool {
	return m.clearedcandidate
}

// CandidateIDs returns the "candidate" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// CandidateID instead. It exists only for internal usage by the builders.
func (m *JobApplicationMutation) CandidateIDs() (ids []uuid.UUID) {
	if id := m.candidate; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCandidate resets all changes to the "candidate" edge.
func (m *JobApplicationMutation) ResetCandidate() {
	m.candidate = nil
	m.clearedcandidate = false
}

// ClearJob clears the "job" edge to the Job entity.
func (m *JobApplicationMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobapplication.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the Job entity was cleared.
func (m *JobApplicationMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobApplicationMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobApplicationMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// SetSubmittedTestID sets the "submitted_test" edge to the SubmittedTest entity by id.
func (m *JobApplicationMutation) SetSubmittedTestID(id uuid.UUID) {
	m.submitted_test = &id
}

// ClearSubmittedTest clears the "submitted_test" edge to the SubmittedTest entity.
func (m *JobApplicationMutation) ClearSubmittedTest() {
	m.clearedsubmitted_test = true
}

// SubmittedTestCleared reports if the "submitted_test" edge to the SubmittedTest entity was cleared.
func (m *JobApplicationMutation) SubmittedTestCleared() bool {
	return m.clearedsubmitted_test
}

// SubmittedTestID returns the "submitted_test" edge ID in the mutation.
func (m *JobApplicationMutation) SubmittedTestID() (id uuid.UUID, exists bool) {
	if m.submitted_test != nil {
		return *m.submitted_test, true
	}
	return
}

// SubmittedTestIDs returns the "submitted_test" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubmittedTestID instead. It exists only for internal usage by the builders.
func (m *JobApplicationMutation) SubmittedTestIDs() (ids []uuid.UUID) {
	if id := m.submitted_test; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubmittedTest resets all changes to the "submitted_test" edge.
func (m *JobApplicationMutation) ResetSubmittedTest() {
	m.submitted_test = nil
	m.clearedsubmitted_test = false
}

// Where appends a list predicates to the JobApplicationMutation builder.
func (m *JobApplicationMutation) Where(ps ...predicate.JobApplication) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobApplicationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobApplicationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobApplication, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobApplicationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobApplicationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobApplication).
func (m *JobApplicationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobApplicationMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.job != nil {
		fields = append(fields, jobapplication.FieldJobID)
	}
	if m.candidate != nil {
		fields = append(fields, jobapplication.FieldCandidateID)
	}
	if m.status != nil {
		fields = append(fields, jobapplication.FieldStatus)
	}
	if m.outcome != nil {
		fields = append(fields, jobapplication.FieldOutcome)
	}
	if m.candidate_name != nil {
		fields = append(fields, jobapplication.FieldCandidateName)
	}
	if m.candidate_email != nil {
		fields = append(fields, jobapplication.FieldCandidateEmail)
	}
	if m.candidate_country != nil {
		fields = append(fields, jobapplication.FieldCandidateCountry)
	}
	if m.candidate_timezone != nil {
		fields = append(fields, jobapplication.FieldCandidateTimezone)
	}
	if m.candidate_contact != nil {
		fields = append(fields, jobapplication.FieldCandidateContact)
	}
	if m.cv_key != nil {
		fields = append(fields, jobapplication.FieldCvKey)
	}
	if m.cover_letter_key != nil {
		fields = append(fields, jobapplication.FieldCoverLetterKey)
	}
	if m.about_video_key != nil {
		fields = append(fields, jobapplication.FieldAboutVideoKey)
	}
	if m.contract_key != nil {
		fields = append(fields, jobapplication.FieldContractKey)
	}
	if m.note != nil {
		fields = append(fields, jobapplication.FieldNote)
	}
	if m.deleted_at != nil {
		fields = append(fields, jobapplication.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, jobapplication.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, jobapplication.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobApplicationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobapplication.FieldJobID:
		return m.JobID()
	case jobapplication.FieldCandidateID:
		return m.CandidateID()
	case jobapplication.FieldStatus:
		return m.Status()
	case jobapplication.FieldOutcome:
		return m.Outcome()
	case jobapplication.FieldCandidateName:
		return m.CandidateName()
	case jobapplication.FieldCandidateEmail:
		return m.CandidateEmail()
	case jobapplication.FieldCandidateCountry:
		return m.CandidateCountry()
	case jobapplication.FieldCandidateTimezone:
		return m.CandidateTimezone()
	case jobapplication.FieldCandidateContact:
		return m.CandidateContact()
	case jobapplication.FieldCvKey:
		return m.CvKey()
	case jobapplication.FieldCoverLetterKey:
		return m.CoverLetterKey()
	case jobapplication.FieldAboutVideoKey:
		return m.AboutVideoKey()
	case jobapplication.FieldContractKey:
		return m.ContractKey()
	case jobapplication.FieldNote:
		return m.Note()
	case jobapplication.FieldDeletedAt:
		return m.DeletedAt()
	case jobapplication.FieldCreatedAt:
		return m.CreatedAt()
	case jobapplication.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobApplicationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobapplication.FieldJobID:
		return m.OldJobID(ctx)
	case jobapplication.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case jobapplication.FieldStatus:
		return m.OldStatus(ctx)
	case jobapplication.FieldOutcome:
		return m.OldOutcome(ctx)
	case jobapplication.FieldCandidateName:
		return m.OldCandidateName(ctx)
	case jobapplication.FieldCandidateEmail:
		return m.OldCandidateEmail(ctx)
	case jobapplication.FieldCandidateCountry:
		return m.OldCandidateCountry(ctx)
	case jobapplication.FieldCandidateTimezone:
		return m.OldCandidateTimezone(ctx)
	case jobapplication.FieldCandidateContact:
		return m.OldCandidateContact(ctx)
	case jobapplication.FieldCvKey:
		return m.OldCvKey(ctx)
	case jobapplication.FieldCoverLetterKey:
		return m.OldCoverLetterKey(ctx)
	case jobapplication.FieldAboutVideoKey:
		return m.OldAboutVideoKey(ctx)
	case jobapplication.FieldContractKey:
		return m.OldContractKey(ctx)
	case jobapplication.FieldNote:
		return m.OldNote(ctx)
	case jobapplication.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case jobapplication.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case jobapplication.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown JobApplication field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobApplicationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobapplication.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobapplication.FieldCandidateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case jobapplication.FieldStatus:
		v, ok := value.(models.ApplicationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobapplication.FieldOutcome:
		v, ok := value.(models.ApplicationOutcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case jobapplication.FieldCandidateName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateName(v)
		return nil
	case jobapplication.FieldCandidateEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateEmail(v)
		return nil
	case jobapplication.FieldCandidateCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateCountry(v)
		return nil
	case jobapplication.FieldCandidateTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateTimezone(v)
		return nil
	case jobapplication.FieldCandidateContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateContact(v)
		return nil
	case jobapplication.FieldCvKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCvKey(v)
		return nil
	case jobapplication.FieldCoverLetterKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverLetterKey(v)
		return nil
	case jobapplication.FieldAboutVideoKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAboutVideoKey(v)
		return nil
	case jobapplication.FieldContractKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContractKey(v)
		return nil
	case jobapplication.FieldNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNote(v)
		return nil
	case jobapplication.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case jobapplication.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case jobapplication.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown JobApplication field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobApplicationMutation) AddedFields() []string {
	var fields []string
	if m.addstatus != nil {
		fields = append(fields, jobapplication.FieldStatus)
	}
	if m.addoutcome != nil {
		fields = append(fields, jobapplication.FieldOutcome)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobApplicationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobapplication.FieldStatus:
		return m.AddedStatus()
	case jobapplication.FieldOutcome:
		return m.AddedOutcome()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobApplicationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobapplication.FieldStatus:
		v, ok := value.(models.ApplicationStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStatus(v)
		return nil
	case jobapplication.FieldOutcome:
		v, ok := value.(models.ApplicationOutcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOutcome(v)
		return nil
	}
	return fmt.Errorf("unknown JobApplication numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobApplicationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(jobapplication.FieldCandidateCountry) {
		fields = append(fields, jobapplication.FieldCandidateCountry)
	}
	if m.FieldCleared(jobapplication.FieldCandidateTimezone) {
		fields = append(fields, jobapplication.FieldCandidateTimezone)
	}
	if m.FieldCleared(jobapplication.FieldCandidateContact) {
		fields = append(fields, jobapplication.FieldCandidateContact)
	}
	if m.FieldCleared(jobapplication.FieldCvKey) {
		fields = append(fields, jobapplication.FieldCvKey)
	}
	if m.FieldCleared(jobapplication.FieldCoverLetterKey) {
		fields = append(fields, jobapplication.FieldCoverLetterKey)
	}
	if m.FieldCleared(jobapplication.FieldAboutVideoKey) {
		fields = append(fields, jobapplication.FieldAboutVideoKey)
	}
	if m.FieldCleared(jobapplication.FieldContractKey) {
		fields = append(fields, jobapplication.FieldContractKey)
	}
	if m.FieldCleared(jobapplication.FieldNote) {
		fields = append(fields, jobapplication.FieldNote)
	}
	if m.FieldCleared(jobapplication.FieldDeletedAt) {
		fields = append(fields, jobapplication.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobApplicationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobApplicationMutation) ClearField(name string) error {
	switch name {
	case jobapplication.FieldCandidateCountry:
		m.ClearCandidateCountry()
		return nil
	case jobapplication.FieldCandidateTimezone:
		m.ClearCandidateTimezone()
		return nil
	case jobapplication.FieldCandidateContact:
		m.ClearCandidateContact()
		return nil
	case jobapplication.FieldCvKey:
		m.ClearCvKey()
		return nil
	case jobapplication.FieldCoverLetterKey:
		m.ClearCoverLetterKey()
		return nil
	case jobapplication.FieldAboutVideoKey:
		m.ClearAboutVideoKey()
		return nil
	case jobapplication.FieldContractKey:
		m.ClearContractKey()
		return nil
	case jobapplication.FieldNote:
		m.ClearNote()
		return nil
	case jobapplication.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown JobApplication nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobApplicationMutation) ResetField(name string) error {
	switch name {
	case jobapplication.FieldJobID:
		m.ResetJobID()
		return nil
	case jobapplication.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case jobapplication.FieldStatus:
		m.ResetStatus()
		return nil
	case jobapplication.FieldOutcome:
		m.ResetOutcome()
		return nil
	case jobapplication.FieldCandidateName:
		m.ResetCandidateName()
		return nil
	case jobapplication.FieldCandidateEmail:
		m.ResetCandidateEmail()
		return nil
	case jobapplication.FieldCandidateCountry:
		m.ResetCandidateCountry()
		return nil
	case jobapplication.FieldCandidateTimezone:
		m.ResetCandidateTimezone()
		return nil
	case jobapplication.FieldCandidateContact:
		m.ResetCandidateContact()
		return nil
	case jobapplication.FieldCvKey:
		m.ResetCvKey()
		return nil
	case jobapplication.FieldCoverLetterKey:
		m.ResetCoverLetterKey()
		return nil
	case jobapplication.FieldAboutVideoKey:
		m.ResetAboutVideoKey()
		return nil
	case jobapplication.FieldContractKey:
		m.ResetContractKey()
		return nil
	case jobapplication.FieldNote:
		m.ResetNote()
		return nil
	case jobapplication.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case jobapplication.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case jobapplication.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown JobApplication field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobApplicationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.candidate != nil {
		edges = append(edges, jobapplication.EdgeCandidate)
	}
	if m.job != nil {
		edges = append(edges, jobapplication.EdgeJob)
	}
	if m.submitted_test != nil {
		edges = append(edges, jobapplication.EdgeSubmittedTest)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobApplicationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobapplication.EdgeCandidate:
		if id := m.candidate; id != nil {
			return []ent.Value{*id}
		}
	case jobapplication.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	case jobapplication.EdgeSubmittedTest:
		if id := m.submitted_test; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobApplicationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobApplicationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobApplicationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedcandidate {
		edges = append(edges, jobapplication.EdgeCandidate)
	}
	if m.clearedjob {
		edges = append(edges, jobapplication.EdgeJob)
	}
	if m.clearedsubmitted_test {
		edges = append(edges, jobapplication.EdgeSubmittedTest)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobApplicationMutation) EdgeCleared(name string) bool {
	switch name {
	case jobapplication.EdgeCandidate:
		return m.clearedcandidate
	case jobapplication.EdgeJob:
		return m.clearedjob
	case jobapplication.EdgeSubmittedTest:
		return m.clearedsubmitted_test
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobApplicationMutation) ClearEdge(name string) error {
	switch name {
	case jobapplication.EdgeCandidate:
		m.ClearCandidate()
		return nil
	case jobapplication.EdgeJob:
		m.ClearJob()
		return nil
	case jobapplication.EdgeSubmittedTest:
		m.ClearSubmittedTest()
		return nil
	}
	return fmt.Errorf("unknown JobApplication unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobApplicationMutation) ResetEdge(name string) error {
	switch name {
	case jobapplication.EdgeCandidate:
		m.ResetCandidate()
		return nil
	case jobapplication.EdgeJob:
		m.ResetJob()
		return nil
	case jobapplication.EdgeSubmittedTest:
		m.ResetSubmittedTest()
		return nil
	}
	return fmt.Errorf("unknown JobApplication edge %s", name)
}

// SubmittedTestMutation represents an operation that mutates the SubmittedTest nodes in the graph.
type SubmittedTestMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	candidate_id       *uuid.UUID
	video_key          *string
	answers            *[]models.Answer
	appendanswers      []models.Answer
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	application        *uuid.UUID
	clearedapplication bool
	done               bool
	oldValue           func(context.Context) (*SubmittedTest, error)
	predicates         []predicate.SubmittedTest
}

var _ ent.Mutation = (*SubmittedTestMutation)(nil)

// submittedtestOption allows management of the mutation configuration using functional options.
type submittedtestOption func(*SubmittedTestMutation)

// newSubmittedTestMutation creates new mutation for the SubmittedTest entity.
func newSubmittedTestMutation(c config, op Op, opts ...submittedtestOption) *SubmittedTestMutation {
	m := &SubmittedTestMutation{
		config:        c,
		op:            op,
		typ:           TypeSubmittedTest,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubmittedTestID sets the ID field of the mutation.
func withSubmittedTestID(id uuid.UUID) submittedtestOption {
	return func(m *SubmittedTestMutation) {
		var (
			err   error
			once  sync.Once
			value *SubmittedTest
		)
		m.oldValue = func(ctx context.Context) (*SubmittedTest, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubmittedTest.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubmittedTest sets the old SubmittedTest of the mutation.
func withSubmittedTest(node *SubmittedTest) submittedtestOption {
	return func(m *SubmittedTestMutation) {
		m.oldValue = func(context.Context) (*SubmittedTest, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubmittedTestMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubmittedTestMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubmittedTest entities.
func (m *SubmittedTestMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubmittedTestMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubmittedTestMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubmittedTest.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetApplicationID sets the "application_id" field.
func (m *SubmittedTestMutation) SetApplicationID(u uuid.UUID) {
	m.application = &u
}

// ApplicationID returns the value of the "application_id" field in the mutation.
func (m *SubmittedTestMutation) ApplicationID() (r uuid.UUID, exists bool) {
	v := m.application
	if v == nil {
		return
	}
	return *v, true
}

// OldApplicationID returns the old "application_id" field's value of the SubmittedTest entity.
// If the SubmittedTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedTestMutation) OldApplicationID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldApplicationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldApplicationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldApplicationID: %w", err)
	}
	return oldValue.ApplicationID, nil
}

// ResetApplicationID resets all changes to the "application_id" field.
func (m *SubmittedTestMutation) ResetApplicationID() {
	m.application = nil
}

// SetCandidateID sets the "candidate_id" field.
func (m *SubmittedTestMutation) SetCandidateID(u uuid.UUID) {
	m.candidate_id = &u
}

// CandidateID returns the value of the "candidate_id" field in the mutation.
func (m *SubmittedTestMutation) CandidateID() (r uuid.UUID, exists bool) {
	v := m.candidate_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCandidateID returns the old "candidate_id" field's value of the SubmittedTest entity.
// If the SubmittedTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedTestMutation) OldCandidateID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCandidateID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCandidateID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCandidateID: %w", err)
	}
	return oldValue.CandidateID, nil
}

// ResetCandidateID resets all changes to the "candidate_id" field.
func (m *SubmittedTestMutation) ResetCandidateID() {
	m.candidate_id = nil
}

// SetVideoKey sets the "video_key" field.
func (m *SubmittedTestMutation) SetVideoKey(s string) {
	m.video_key = &s
}

// VideoKey returns the value of the "video_key" field in the mutation.
func (m *SubmittedTestMutation) VideoKey() (r string, exists bool) {
	v := m.video_key
	if v == nil {
		return
	}
	return *v, true
}

// OldVideoKey returns the old "video_key" field's value of the SubmittedTest entity.
// If the SubmittedTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedTestMutation) OldVideoKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVideoKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVideoKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVideoKey: %w", err)
	}
	return oldValue.VideoKey, nil
}

// ResetVideoKey resets all changes to the "video_key" field.
func (m *SubmittedTestMutation) ResetVideoKey() {
	m.video_key = nil
}

// SetAnswers sets the "answers" field.
func (m *SubmittedTestMutation) SetAnswers(value []models.Answer) {
	m.answers = &value
	m.appendanswers = nil
}

// Answers returns the value of the "answers" field in the mutation.
func (m *SubmittedTestMutation) Answers() (r []models.Answer, exists bool) {
	v := m.answers
	if v == nil {
		return
	}
	return *v, true
}

// OldAnswers returns the old "answers" field's value of the SubmittedTest entity.
// If the SubmittedTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedTestMutation) OldAnswers(ctx context.Context) (v []models.Answer, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnswers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnswers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnswers: %w", err)
	}
	return oldValue.Answers, nil
}

// AppendAnswers adds value to the "answers" field.
func (m *SubmittedTestMutation) AppendAnswers(value []models.Answer) {
	m.appendanswers = append(m.appendanswers, value...)
}

// AppendedAnswers returns the list of values that were appended to the "answers" field in this mutation.
func (m *SubmittedTestMutation) AppendedAnswers() ([]models.Answer, bool) {
	if len(m.appendanswers) == 0 {
		return nil, false
	}
	return m.appendanswers, true
}

// ResetAnswers resets all changes to the "answers" field.
func (m *SubmittedTestMutation) ResetAnswers() {
	m.answers = nil
	m.appendanswers = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubmittedTestMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubmittedTestMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SubmittedTest entity.
// If the SubmittedTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedTestMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubmittedTestMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubmittedTestMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubmittedTestMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SubmittedTest entity.
// If the SubmittedTest object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubmittedTestMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubmittedTestMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearApplication clears the "application" edge to the JobApplication entity.
func (m *SubmittedTestMutation) ClearApplication() {
	m.clearedapplication = true
	m.clearedFields[submittedtest.FieldApplicationID] = struct{}{}
}

// ApplicationCleared reports if the "application" edge to the JobApplication entity was cleared.
func (m *SubmittedTestMutation) ApplicationCleared() bool {
	return m.clearedapplication
}

// ApplicationIDs returns the "application" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ApplicationID instead. It exists only for internal usage by the builders.
func (m *SubmittedTestMutation) ApplicationIDs() (ids []uuid.UUID) {
	if id := m.application; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetApplication resets all changes to the "application" edge.
func (m *SubmittedTestMutation) ResetApplication() {
	m.application = nil
	m.clearedapplication = false
}

// Where appends a list predicates to the SubmittedTestMutation builder.
func (m *SubmittedTestMutation) Where(ps ...predicate.SubmittedTest) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubmittedTestMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubmittedTestMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubmittedTest, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubmittedTestMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubmittedTestMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubmittedTest).
func (m *SubmittedTestMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubmittedTestMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.application != nil {
		fields = append(fields, submittedtest.FieldApplicationID)
	}
	if m.candidate_id != nil {
		fields = append(fields, submittedtest.FieldCandidateID)
	}
	if m.video_key != nil {
		fields = append(fields, submittedtest.FieldVideoKey)
	}
	if m.answers != nil {
		fields = append(fields, submittedtest.FieldAnswers)
	}
	if m.created_at != nil {
		fields = append(fields, submittedtest.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, submittedtest.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubmittedTestMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case submittedtest.FieldApplicationID:
		return m.ApplicationID()
	case submittedtest.FieldCandidateID:
		return m.CandidateID()
	case submittedtest.FieldVideoKey:
		return m.VideoKey()
	case submittedtest.FieldAnswers:
		return m.Answers()
	case submittedtest.FieldCreatedAt:
		return m.CreatedAt()
	case submittedtest.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubmittedTestMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case submittedtest.FieldApplicationID:
		return m.OldApplicationID(ctx)
	case submittedtest.FieldCandidateID:
		return m.OldCandidateID(ctx)
	case submittedtest.FieldVideoKey:
		return m.OldVideoKey(ctx)
	case submittedtest.FieldAnswers:
		return m.OldAnswers(ctx)
	case submittedtest.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case submittedtest.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubmittedTest field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmittedTestMutation) SetField(name string, value ent.Value) error {
	switch name {
	case submittedtest.FieldApplicationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetApplicationID(v)
		return nil
	case submittedtest.FieldCandidateID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCandidateID(v)
		return nil
	case submittedtest.FieldVideoKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVideoKey(v)
		return nil
	case submittedtest.FieldAnswers:
		v, ok := value.([]models.Answer)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnswers(v)
		return nil
	case submittedtest.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case submittedtest.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubmittedTest field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubmittedTestMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubmittedTestMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubmittedTestMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SubmittedTest numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubmittedTestMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubmittedTestMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubmittedTestMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubmittedTest nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubmittedTestMutation) ResetField(name string) error {
	switch name {
	case submittedtest.FieldApplicationID:
		m.ResetApplicationID()
		return nil
	case submittedtest.FieldCandidateID:
		m.ResetCandidateID()
		return nil
	case submittedtest.FieldVideoKey:
		m.ResetVideoKey()
		return nil
	case submittedtest.FieldAnswers:
		m.ResetAnswers()
		return nil
	case submittedtest.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case submittedtest.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SubmittedTest field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubmittedTestMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.application != nil {
		edges = append(edges, submittedtest.EdgeApplication)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubmittedTestMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case submittedtest.EdgeApplication:
		if id := m.application; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubmittedTestMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubmittedTestMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubmittedTestMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedapplication {
		edges = append(edges, submittedtest.EdgeApplication)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubmittedTestMutation) EdgeCleared(name string) bool {
	switch name {
	case submittedtest.EdgeApplication:
		return m.clearedapplication
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubmittedTestMutation) ClearEdge(name string) error {
	switch name {
	case submittedtest.EdgeApplication:
		m.ClearApplication()
		return nil
	}
	return fmt.Errorf("unknown SubmittedTest unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubmittedTestMutation) ResetEdge(name string) error {
	switch name {
	case submittedtest.EdgeApplication:
		m.ResetApplication()
		return nil
	}
	return fmt.Errorf("unknown SubmittedTest edge %s", name)
}

// SubscriptionMutation represents an operation that mutates the Subscription nodes in the graph.
type SubscriptionMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	package_id               *uuid.UUID
	title                    *string
	features                 *[]string
	appendfeatures           []string
	price_per_credit         *float64
	addprice_per_credit      *float64
	credit_allowance         *int
	addcredit_allowance      *int
	package_type             *models.PackageType
	addpackage_type          *models.PackageType
	credits                  *int
	addcredits               *int
	admin_credits_added      *int
	addadmin_credits_added   *int
	admin_credits_removed    *int
	addadmin_credits_removed *int
	transaction_id           *string
	granted_at               *time.Time
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	employer                 *uuid.UUID
	clearedemployer          bool
	history                  map[uuid.UUID]struct{}
	removedhistory           map[uuid.UUID]struct{}
	clearedhistory           bool
	done                     bool
	oldValue                 func(context.Context) (*Subscription, error)
	predicates               []predicate.Subscription
}

var _ ent.Mutation = (*SubscriptionMutation)(nil)

// subscriptionOption allows management of the mutation configuration using functional options.
type subscriptionOption func(*SubscriptionMutation)

// newSubscriptionMutation creates new mutation for the Subscription entity.
func newSubscriptionMutation(c config, op Op, opts ...subscriptionOption) *SubscriptionMutation {
	m := &SubscriptionMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscription,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionID sets the ID field of the mutation.
func withSubscriptionID(id uuid.UUID) subscriptionOption {
	return func(m *SubscriptionMutation) {
		var (
			err   error
			once  sync.Once
			value *Subscription
		)
		m.oldValue = func(ctx context.Context) (*Subscription, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Subscription.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscription sets the old Subscription of the mutation.
func withSubscription(node *Subscription) subscriptionOption {
	return func(m *SubscriptionMutation) {
		m.oldValue = func(context.Context) (*Subscription, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Subscription entities.
func (m *SubscriptionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Subscription.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmployerID sets the "employer_id" field.
func (m *SubscriptionMutation) SetEmployerID(u uuid.UUID) {
	m.employer = &u
}

// EmployerID returns the value of the "employer_id" field in the mutation.
func (m *SubscriptionMutation) EmployerID() (r uuid.UUID, exists bool) {
	v := m.employer
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployerID returns the old "employer_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldEmployerID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployerID: %w", err)
	}
	return oldValue.EmployerID, nil
}

// ResetEmployerID resets all changes to the "employer_id" field.
func (m *SubscriptionMutation) ResetEmployerID() {
	m.employer = nil
}

// SetPackageID sets the "package_id" field.
func (m *SubscriptionMutation) SetPackageID(u uuid.UUID) {
	m.package_id = &u
}

// PackageID returns the value of the "package_id" field in the mutation.
func (m *SubscriptionMutation) PackageID() (r uuid.UUID, exists bool) {
	v := m.package_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageID returns the old "package_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPackageID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageID: %w", err)
	}
	return oldValue.PackageID, nil
}

// ResetPackageID resets all changes to the "package_id" field.
func (m *SubscriptionMutation) ResetPackageID() {
	m.package_id = nil
}

// SetTitle sets the "title" field.
func (m *SubscriptionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SubscriptionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *SubscriptionMutation) ResetTitle() {
	m.title = nil
}

// SetFeatures sets the "features" field.
func (m *SubscriptionMutation) SetFeatures(s []string) {
	m.features = &s
	m.appendfeatures = nil
}

// Features returns the value of the "features" field in the mutation.
func (m *SubscriptionMutation) Features() (r []string, exists bool) {
	v := m.features
	if v == nil {
		return
	}
	return *v, true
}

// OldFeatures returns the old "features" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldFeatures(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFeatures: %w", err)
	}
	return oldValue.Features, nil
}

// AppendFeatures adds s to the "features" field.
func (m *SubscriptionMutation) AppendFeatures(s []string) {
	m.appendfeatures = append(m.appendfeatures, s...)
}

// AppendedFeatures returns the list of values that were appended to the "features" field in this mutation.
func (m *SubscriptionMutation) AppendedFeatures() ([]string, bool) {
	if len(m.appendfeatures) == 0 {
		return nil, false
	}
	return m.appendfeatures, true
}

// ClearFeatures clears the value of the "features" field.
func (m *SubscriptionMutation) ClearFeatures() {
	m.features = nil
	m.appendfeatures = nil
	m.clearedFields[subscription.FieldFeatures] = struct{}{}
}

// FeaturesCleared returns if the "features" field was cleared in this mutation.
func (m *SubscriptionMutation) FeaturesCleared() bool {
	_, ok := m.clearedFields[subscription.FieldFeatures]
	return ok
}

// ResetFeatures resets all changes to the "features" field.
func (m *SubscriptionMutation) ResetFeatures() {
	m.features = nil
	m.appendfeatures = nil
	delete(m.clearedFields, subscription.FieldFeatures)
}

// SetPricePerCredit sets the "price_per_credit" field.
func (m *SubscriptionMutation) SetPricePerCredit(f float64) {
	m.price_per_credit = &f
	m.addprice_per_credit = nil
}

// PricePerCredit returns the value of the "price_per_credit" field in the mutation.
func (m *SubscriptionMutation) PricePerCredit() (r float64, exists bool) {
	v := m.price_per_credit
	if v == nil {
		return
	}
	return *v, true
}

// OldPricePerCredit returns the old "price_per_credit" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPricePerCredit(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPricePerCredit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPricePerCredit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPricePerCredit: %w", err)
	}
	return oldValue.PricePerCredit, nil
}

// AddPricePerCredit adds f to the "price_per_credit" field.
func (m *SubscriptionMutation) AddPricePerCredit(f float64) {
	if m.addprice_per_credit != nil {
		*m.addprice_per_credit += f
	} else {
		m.addprice_per_credit = &f
	}
}

// AddedPricePerCredit returns the value that was added to the "price_per_credit" field in this mutation.
func (m *SubscriptionMutation) AddedPricePerCredit() (r float64, exists bool) {
	v := m.addprice_per_credit
	if v == nil {
		return
	}
	return *v, true
}

// ResetPricePerCredit resets all changes to the "price_per_credit" field.
func (m *SubscriptionMutation) ResetPricePerCredit() {
	m.price_per_credit = nil
	m.addprice_per_credit = nil
}

// SetCreditAllowance sets the "credit_allowance" field.
func (m *SubscriptionMutation) SetCreditAllowance(i int) {
	m.credit_allowance = &i
	m.addcredit_allowance = nil
}

// CreditAllowance returns the value of the "credit_allowance" field in the mutation.
func (m *SubscriptionMutation) CreditAllowance() (r int, exists bool) {
	v := m.credit_allowance
	if v == nil {
		return
	}
	return *v, true
}

// OldCreditAllowance returns the old "credit_allowance" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreditAllowance(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreditAllowance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreditAllowance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreditAllowance: %w", err)
	}
	return oldValue.CreditAllowance, nil
}

// AddCreditAllowance adds i to the "credit_allowance" field.
func (m *SubscriptionMutation) AddCreditAllowance(i int) {
	if m.addcredit_allowance != nil {
		*m.addcredit_allowance += i
	} else {
		m.addcredit_allowance = &i
	}
}

// AddedCreditAllowance returns the value that was added to the "credit_allowance" field in this mutation.
func (m *SubscriptionMutation) AddedCreditAllowance() (r int, exists bool) {
	v := m.addcredit_allowance
	if v == nil {
		return
	}
	return *v, true
}

// ResetCreditAllowance resets all changes to the "credit_allowance" field.
func (m *SubscriptionMutation) ResetCreditAllowance() {
	m.credit_allowance = nil
	m.addcredit_allowance = nil
}

// SetPackageType sets the "package_type" field.
func (m *SubscriptionMutation) SetPackageType(mt models.PackageType) {
	m.package_type = &mt
	m.addpackage_type = nil
}

// PackageType returns the value of the "package_type" field in the mutation.
func (m *SubscriptionMutation) PackageType() (r models.PackageType, exists bool) {
	v := m.package_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPackageType returns the old "package_type" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldPackageType(ctx context.Context) (v models.PackageType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPackageType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPackageType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPackageType: %w", err)
	}
	return oldValue.PackageType, nil
}

// AddPackageType adds mt to the "package_type" field.
func (m *SubscriptionMutation) AddPackageType(mt models.PackageType) {
	if m.addpackage_type != nil {
		*m.addpackage_type += mt
	} else {
		m.addpackage_type = &mt
	}
}

// AddedPackageType returns the value that was added to the "package_type" field in this mutation.
func (m *SubscriptionMutation) AddedPackageType() (r models.PackageType, exists bool) {
	v := m.addpackage_type
	if v == nil {
		return
	}
	return *v, true
}

// ResetPackageType resets all changes to the "package_type" field.
func (m *SubscriptionMutation) ResetPackageType() {
	m.package_type = nil
	m.addpackage_type = nil
}

// SetCredits sets the "credits" field.
func (m *SubscriptionMutation) SetCredits(i int) {
	m.credits = &i
	m.addcredits = nil
}

// Credits returns the value of the "credits" field in the mutation.
func (m *SubscriptionMutation) Credits() (r int, exists bool) {
	v := m.credits
	if v == nil {
		return
	}
	return *v, true
}

// OldCredits returns the old "credits" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCredits(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCredits is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCredits requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCredits: %w", err)
	}
	return oldValue.Credits, nil
}

// AddCredits adds i to the "credits" field.
func (m *SubscriptionMutation) AddCredits(i int) {
	if m.addcredits != nil {
		*m.addcredits += i
	} else {
		m.addcredits = &i
	}
}

// AddedCredits returns the value that was added to the "credits" field in this mutation.
func (m *SubscriptionMutation) AddedCredits() (r int, exists bool) {
	v := m.addcredits
	if v == nil {
		return
	}
	return *v, true
}

// ResetCredits resets all changes to the "credits" field.
func (m *SubscriptionMutation) ResetCredits() {
	m.credits = nil
	m.addcredits = nil
}

// SetAdminCreditsAdded sets the "admin_credits_added" field.
func (m *SubscriptionMutation) SetAdminCreditsAdded(i int) {
	m.admin_credits_added = &i
	m.addadmin_credits_added = nil
}

// AdminCreditsAdded returns the value of the "admin_credits_added" field in the mutation.
func (m *SubscriptionMutation) AdminCreditsAdded() (r int, exists bool) {
	v := m.admin_credits_added
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminCreditsAdded returns the old "admin_credits_added" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldAdminCreditsAdded(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminCreditsAdded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminCreditsAdded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminCreditsAdded: %w", err)
	}
	return oldValue.AdminCreditsAdded, nil
}

// AddAdminCreditsAdded adds i to the "admin_credits_added" field.
func (m *SubscriptionMutation) AddAdminCreditsAdded(i int) {
	if m.addadmin_credits_added != nil {
		*m.addadmin_credits_added += i
	} else {
		m.addadmin_credits_added = &i
	}
}

// AddedAdminCreditsAdded returns the value that was added to the "admin_credits_added" field in this mutation.
func (m *SubscriptionMutation) AddedAdminCreditsAdded() (r int, exists bool) {
	v := m.addadmin_credits_added
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdminCreditsAdded resets all changes to the "admin_credits_added" field.
func (m *SubscriptionMutation) ResetAdminCreditsAdded() {
	m.admin_credits_added = nil
	m.addadmin_credits_added = nil
}

// SetAdminCreditsRemoved sets the "admin_credits_removed" field.
func (m *SubscriptionMutation) SetAdminCreditsRemoved(i int) {
	m.admin_credits_removed = &i
	m.addadmin_credits_removed = nil
}

// AdminCreditsRemoved returns the value of the "admin_credits_removed" field in the mutation.
func (m *SubscriptionMutation) AdminCreditsRemoved() (r int, exists bool) {
	v := m.admin_credits_removed
	if v == nil {
		return
	}
	return *v, true
}

// OldAdminCreditsRemoved returns the old "admin_credits_removed" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldAdminCreditsRemoved(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdminCreditsRemoved is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdminCreditsRemoved requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdminCreditsRemoved: %w", err)
	}
	return oldValue.AdminCreditsRemoved, nil
}

// AddAdminCreditsRemoved adds i to the "admin_credits_removed" field.
func (m *SubscriptionMutation) AddAdminCreditsRemoved(i int) {
	if m.addadmin_credits_removed != nil {
		*m.addadmin_credits_removed += i
	} else {
		m.addadmin_credits_removed = &i
	}
}

// AddedAdminCreditsRemoved returns the value that was added to the "admin_credits_removed" field in this mutation.
func (m *SubscriptionMutation) AddedAdminCreditsRemoved() (r int, exists bool) {
	v := m.addadmin_credits_removed
	if v == nil {
		return
	}
	return *v, true
}

// ResetAdminCreditsRemoved resets all changes to the "admin_credits_removed" field.
func (m *SubscriptionMutation) ResetAdminCreditsRemoved() {
	m.admin_credits_removed = nil
	m.addadmin_credits_removed = nil
}

// SetTransactionID sets the "transaction_id" field.
func (m *SubscriptionMutation) SetTransactionID(s string) {
	m.transaction_id = &s
}

// TransactionID returns the value of the "transaction_id" field in the mutation.
func (m *SubscriptionMutation) TransactionID() (r string, exists bool) {
	v := m.transaction_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransactionID returns the old "transaction_id" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldTransactionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransactionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransactionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransactionID: %w", err)
	}
	return oldValue.TransactionID, nil
}

// ResetTransactionID resets all changes to the "transaction_id" field.
func (m *SubscriptionMutation) ResetTransactionID() {
	m.transaction_id = nil
}

// SetGrantedAt sets the "granted_at" field.
func (m *SubscriptionMutation) SetGrantedAt(t time.Time) {
	m.granted_at = &t
}

// GrantedAt returns the value of the "granted_at" field in the mutation.
func (m *SubscriptionMutation) GrantedAt() (r time.Time, exists bool) {
	v := m.granted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldGrantedAt returns the old "granted_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldGrantedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrantedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrantedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrantedAt: %w", err)
	}
	return oldValue.GrantedAt, nil
}

// ResetGrantedAt resets all changes to the "granted_at" field.
func (m *SubscriptionMutation) ResetGrantedAt() {
	m.granted_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SubscriptionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SubscriptionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SubscriptionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SubscriptionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SubscriptionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Subscription entity.
// If the Subscription object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SubscriptionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearEmployer clears the "employer" edge to the User entity.
func (m *SubscriptionMutation) ClearEmployer() {
	m.clearedemployer = true
	m.clearedFields[subscription.FieldEmployerID] = struct{}{}
}

// EmployerCleared reports if the "employer" edge to the User entity was cleared.
func (m *SubscriptionMutation) EmployerCleared() bool {
	return m.clearedemployer
}

// EmployerIDs returns the "employer" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// EmployerID instead. It exists only for internal usage by the builders.
func (m *SubscriptionMutation) EmployerIDs() (ids []uuid.UUID) {
	if id := m.employer; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetEmployer resets all changes to the "employer" edge.
func (m *SubscriptionMutation) ResetEmployer() {
	m.employer = nil
	m.clearedemployer = false
}

// AddHistoryIDs adds the "history" edge to the SubscriptionHistory entity by ids.
func (m *SubscriptionMutation) AddHistoryIDs(ids ...uuid.UUID) {
	if m.history == nil {
		m.history = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.history[ids[i]] = struct{}{}
	}
}

// ClearHistory clears the "history" edge to the SubscriptionHistory entity.
func (m *SubscriptionMutation) ClearHistory() {
	m.clearedhistory = true
}

// HistoryCleared reports if the "history" edge to the SubscriptionHistory entity was cleared.
func (m *SubscriptionMutation) HistoryCleared() bool {
	return m.clearedhistory
}

// RemoveHistoryIDs removes the "history" edge to the SubscriptionHistory entity by IDs.
func (m *SubscriptionMutation) RemoveHistoryIDs(ids ...uuid.UUID) {
	if m.removedhistory == nil {
		m.removedhistory = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.history, ids[i])
		m.removedhistory[ids[i]] = struct{}{}
	}
}

// RemovedHistory returns the removed IDs of the "history" edge to the SubscriptionHistory entity.
func (m *SubscriptionMutation) RemovedHistoryIDs() (ids []uuid.UUID) {
	for id := range m.removedhistory {
		ids = append(ids, id)
	}
	return
}

// HistoryIDs returns the "history" edge IDs in the mutation.
func (m *SubscriptionMutation) HistoryIDs() (ids []uuid.UUID) {
	for id := range m.history {
		ids = append(ids, id)
	}
	return
}

// ResetHistory resets all changes to the "history" edge.
func (m *SubscriptionMutation) ResetHistory() {
	m.history = nil
	m.clearedhistory = false
	m.removedhistory = nil
}

// Where appends a list predicates to the SubscriptionMutation builder.
func (m *SubscriptionMutation) Where(ps ...predicate.Subscription) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Subscription, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Subscription).
func (m *SubscriptionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.employer != nil {
		fields = append(fields, subscription.FieldEmployerID)
	}
	if m.package_id != nil {
		fields = append(fields, subscription.FieldPackageID)
	}
	if m.title != nil {
		fields = append(fields, subscription.FieldTitle)
	}
	if m.features != nil {
		fields = append(fields, subscription.FieldFeatures)
	}
	if m.price_per_credit != nil {
		fields = append(fields, subscription.FieldPricePerCredit)
	}
	if m.credit_allowance != nil {
		fields = append(fields, subscription.FieldCreditAllowance)
	}
	if m.package_type != nil {
		fields = append(fields, subscription.FieldPackageType)
	}
	if m.credits != nil {
		fields = append(fields, subscription.FieldCredits)
	}
	if m.admin_credits_added != nil {
		fields = append(fields, subscription.FieldAdminCreditsAdded)
	}
	if m.admin_credits_removed != nil {
		fields = append(fields, subscription.FieldAdminCreditsRemoved)
	}
	if m.transaction_id != nil {
		fields = append(fields, subscription.FieldTransactionID)
	}
	if m.granted_at != nil {
		fields = append(fields, subscription.FieldGrantedAt)
	}
	if m.created_at != nil {
		fields = append(fields, subscription.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, subscription.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldEmployerID:
		return m.EmployerID()
	case subscription.FieldPackageID:
		return m.PackageID()
	case subscription.FieldTitle:
		return m.Title()
	case subscription.FieldFeatures:
		return m.Features()
	case subscription.FieldPricePerCredit:
		return m.PricePerCredit()
	case subscription.FieldCreditAllowance:
		return m.CreditAllowance()
	case subscription.FieldPackageType:
		return m.PackageType()
	case subscription.FieldCredits:
		return m.Credits()
	case subscription.FieldAdminCreditsAdded:
		return m.AdminCreditsAdded()
	case subscription.FieldAdminCreditsRemoved:
		return m.AdminCreditsRemoved()
	case subscription.FieldTransactionID:
		return m.TransactionID()
	case subscription.FieldGrantedAt:
		return m.GrantedAt()
	case subscription.FieldCreatedAt:
		return m.CreatedAt()
	case subscription.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscription.FieldEmployerID:
		return m.OldEmployerID(ctx)
	case subscription.FieldPackageID:
		return m.OldPackageID(ctx)
	case subscription.FieldTitle:
		return m.OldTitle(ctx)
	case subscription.FieldFeatures:
		return m.OldFeatures(ctx)
	case subscription.FieldPricePerCredit:
		return m.OldPricePerCredit(ctx)
	case subscription.FieldCreditAllowance:
		return m.OldCreditAllowance(ctx)
	case subscription.FieldPackageType:
		return m.OldPackageType(ctx)
	case subscription.FieldCredits:
		return m.OldCredits(ctx)
	case subscription.FieldAdminCreditsAdded:
		return m.OldAdminCreditsAdded(ctx)
	case subscription.FieldAdminCreditsRemoved:
		return m.OldAdminCreditsRemoved(ctx)
	case subscription.FieldTransactionID:
		return m.OldTransactionID(ctx)
	case subscription.FieldGrantedAt:
		return m.OldGrantedAt(ctx)
	case subscription.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case subscription.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Subscription field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldEmployerID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployerID(v)
		return nil
	case subscription.FieldPackageID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageID(v)
		return nil
	case subscription.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case subscription.FieldFeatures:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFeatures(v)
		return nil
	case subscription.FieldPricePerCredit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPricePerCredit(v)
		return nil
	case subscription.FieldCreditAllowance:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreditAllowance(v)
		return nil
	case subscription.FieldPackageType:
		v, ok := value.(models.PackageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPackageType(v)
		return nil
	case subscription.FieldCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCredits(v)
		return nil
	case subscription.FieldAdminCreditsAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminCreditsAdded(v)
		return nil
	case subscription.FieldAdminCreditsRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdminCreditsRemoved(v)
		return nil
	case subscription.FieldTransactionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransactionID(v)
		return nil
	case subscription.FieldGrantedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrantedAt(v)
		return nil
	case subscription.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case subscription.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionMutation) AddedFields() []string {
	var fields []string
	if m.addprice_per_credit != nil {
		fields = append(fields, subscription.FieldPricePerCredit)
	}
	if m.addcredit_allowance != nil {
		fields = append(fields, subscription.FieldCreditAllowance)
	}
	if m.addpackage_type != nil {
		fields = append(fields, subscription.FieldPackageType)
	}
	if m.addcredits != nil {
		fields = append(fields, subscription.FieldCredits)
	}
	if m.addadmin_credits_added != nil {
		fields = append(fields, subscription.FieldAdminCreditsAdded)
	}
	if m.addadmin_credits_removed != nil {
		fields = append(fields, subscription.FieldAdminCreditsRemoved)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case subscription.FieldPricePerCredit:
		return m.AddedPricePerCredit()
	case subscription.FieldCreditAllowance:
		return m.AddedCreditAllowance()
	case subscription.FieldPackageType:
		return m.AddedPackageType()
	case subscription.FieldCredits:
		return m.AddedCredits()
	case subscription.FieldAdminCreditsAdded:
		return m.AddedAdminCreditsAdded()
	case subscription.FieldAdminCreditsRemoved:
		return m.AddedAdminCreditsRemoved()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case subscription.FieldPricePerCredit:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPricePerCredit(v)
		return nil
	case subscription.FieldCreditAllowance:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCreditAllowance(v)
		return nil
	case subscription.FieldPackageType:
		v, ok := value.(models.PackageType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPackageType(v)
		return nil
	case subscription.FieldCredits:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCredits(v)
		return nil
	case subscription.FieldAdminCreditsAdded:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminCreditsAdded(v)
		return nil
	case subscription.FieldAdminCreditsRemoved:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAdminCreditsRemoved(v)
		return nil
	}
	return fmt.Errorf("unknown Subscription numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(subscription.FieldFeatures) {
		fields = append(fields, subscription.FieldFeatures)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionMutation) ClearField(name string) error {
	switch name {
	case subscription.FieldFeatures:
		m.ClearFeatures()
		return nil
	}
	return fmt.Errorf("unknown Subscription nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionMutation) ResetField(name string) error {
	switch name {
	case subscription.FieldEmployerID:
		m.ResetEmployerID()
		return nil
	case subscription.FieldPackageID:
		m.ResetPackageID()
		return nil
	case subscription.FieldTitle:
		m.ResetTitle()
		return nil
	case subscription.FieldFeatures:
		m.ResetFeatures()
		return nil
	case subscription.FieldPricePerCredit:
		m.ResetPricePerCredit()
		return nil
	case subscription.FieldCreditAllowance:
		m.ResetCreditAllowance()
		return nil
	case subscription.FieldPackageType:
		m.ResetPackageType()
		return nil
	case subscription.FieldCredits:
		m.ResetCredits()
		return nil
	case subscription.FieldAdminCreditsAdded:
		m.ResetAdminCreditsAdded()
		return nil
	case subscription.FieldAdminCreditsRemoved:
		m.ResetAdminCreditsRemoved()
		return nil
	case subscription.FieldTransactionID:
		m.ResetTransactionID()
		return nil
	case subscription.FieldGrantedAt:
		m.ResetGrantedAt()
		return nil
	case subscription.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case subscription.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Subscription field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.employer != nil {
		edges = append(edges, subscription.EdgeEmployer)
	}
	if m.history != nil {
		edges = append(edges, subscription.EdgeHistory)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgeEmployer:
		if id := m.employer; id != nil {
			return []ent.Value{*id}
		}
	case subscription.EdgeHistory:
		ids := make([]ent.Value, 0, len(m.history))
		for id := range m.history {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedhistory != nil {
		edges = append(edges, subscription.EdgeHistory)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case subscription.EdgeHistory:
		ids := make([]ent.Value, 0, len(m.removedhistory))
		for id := range m.removedhistory {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedemployer {
		edges = append(edges, subscription.EdgeEmployer)
	}
	if m.clearedhistory {
		edges = append(edges, subscription.EdgeHistory)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionMutation) EdgeCleared(name string) bool {
	switch name {
	case subscription.EdgeEmployer:
		return m.clearedemployer
	case subscription.EdgeHistory:
		return m.clearedhistory
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionMutation) ClearEdge(name string) error {
	switch name {
	case subscription.EdgeEmployer:
		m.ClearEmployer()
		return nil
	}
	return fmt.Errorf("unknown Subscription unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionMutation) ResetEdge(name string) error {
	switch name {
	case subscription.EdgeEmployer:
		m.ResetEmployer()
		return nil
	case subscription.EdgeHistory:
		m.ResetHistory()
		return nil
	}
	return fmt.Errorf("unknown Subscription edge %s", name)
}

// SubscriptionHistoryMutation represents an operation that mutates the SubscriptionHistory nodes in the graph.
type SubscriptionHistoryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	snapshot            *models.PackageSnapshot
	archived_at         *time.Time
	clearedFields       map[string]struct{}
	subscription        *uuid.UUID
	clearedsubscription bool
	done                bool
	oldValue            func(context.Context) (*SubscriptionHistory, error)
	predicates          []predicate.SubscriptionHistory
}

var _ ent.Mutation = (*SubscriptionHistoryMutation)(nil)

// subscriptionhistoryOption allows management of the mutation configuration using functional options.
type subscriptionhistoryOption func(*SubscriptionHistoryMutation)

// newSubscriptionHistoryMutation creates new mutation for the SubscriptionHistory entity.
func newSubscriptionHistoryMutation(c config, op Op, opts ...subscriptionhistoryOption) *SubscriptionHistoryMutation {
	m := &SubscriptionHistoryMutation{
		config:        c,
		op:            op,
		typ:           TypeSubscriptionHistory,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSubscriptionHistoryID sets the ID field of the mutation.
func withSubscriptionHistoryID(id uuid.UUID) subscriptionhistoryOption {
	return func(m *SubscriptionHistoryMutation) {
		var (
			err   error
			once  sync.Once
			value *SubscriptionHistory
		)
		m.oldValue = func(ctx context.Context) (*SubscriptionHistory, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SubscriptionHistory.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSubscriptionHistory sets the old SubscriptionHistory of the mutation.
func withSubscriptionHistory(node *SubscriptionHistory) subscriptionhistoryOption {
	return func(m *SubscriptionHistoryMutation) {
		m.oldValue = func(context.Context) (*SubscriptionHistory, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SubscriptionHistoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SubscriptionHistoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of SubscriptionHistory entities.
func (m *SubscriptionHistoryMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SubscriptionHistoryMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SubscriptionHistoryMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SubscriptionHistory.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSubscriptionID sets the "subscription_id" field.
func (m *SubscriptionHistoryMutation) SetSubscriptionID(u uuid.UUID) {
	m.subscription = &u
}

// SubscriptionID returns the value of the "subscription_id" field in the mutation.
func (m *SubscriptionHistoryMutation) SubscriptionID() (r uuid.UUID, exists bool) {
	v := m.subscription
	if v == nil {
		return
	}
	return *v, true
}

// OldSubscriptionID returns the old "subscription_id" field's value of the SubscriptionHistory entity.
// If the SubscriptionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionHistoryMutation) OldSubscriptionID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubscriptionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubscriptionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubscriptionID: %w", err)
	}
	return oldValue.SubscriptionID, nil
}

// ResetSubscriptionID resets all changes to the "subscription_id" field.
func (m *SubscriptionHistoryMutation) ResetSubscriptionID() {
	m.subscription = nil
}

// SetSnapshot sets the "snapshot" field.
func (m *SubscriptionHistoryMutation) SetSnapshot(ms models.PackageSnapshot) {
	m.snapshot = &ms
}

// Snapshot returns the value of the "snapshot" field in the mutation.
func (m *SubscriptionHistoryMutation) Snapshot() (r models.PackageSnapshot, exists bool) {
	v := m.snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldSnapshot returns the old "snapshot" field's value of the SubscriptionHistory entity.
// If the SubscriptionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionHistoryMutation) OldSnapshot(ctx context.Context) (v models.PackageSnapshot, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSnapshot: %w", err)
	}
	return oldValue.Snapshot, nil
}

// ResetSnapshot resets all changes to the "snapshot" field.
func (m *SubscriptionHistoryMutation) ResetSnapshot() {
	m.snapshot = nil
}

// SetArchivedAt sets the "archived_at" field.
func (m *SubscriptionHistoryMutation) SetArchivedAt(t time.Time) {
	m.archived_at = &t
}

// ArchivedAt returns the value of the "archived_at" field in the mutation.
func (m *SubscriptionHistoryMutation) ArchivedAt() (r time.Time, exists bool) {
	v := m.archived_at
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivedAt returns the old "archived_at" field's value of the SubscriptionHistory entity.
// If the SubscriptionHistory object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SubscriptionHistoryMutation) OldArchivedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivedAt: %w", err)
	}
	return oldValue.ArchivedAt, nil
}

// ResetArchivedAt resets all changes to the "archived_at" field.
func (m *SubscriptionHistoryMutation) ResetArchivedAt() {
	m.archived_at = nil
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (m *SubscriptionHistoryMutation) ClearSubscription() {
	m.clearedsubscription = true
	m.clearedFields[subscriptionhistory.FieldSubscriptionID] = struct{}{}
}

// SubscriptionCleared reports if the "subscription" edge to the Subscription entity was cleared.
func (m *SubscriptionHistoryMutation) SubscriptionCleared() bool {
	return m.clearedsubscription
}

// SubscriptionIDs returns the "subscription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubscriptionID instead. It exists only for internal usage by the builders.
func (m *SubscriptionHistoryMutation) SubscriptionIDs() (ids []uuid.UUID) {
	if id := m.subscription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubscription resets all changes to the "subscription" edge.
func (m *SubscriptionHistoryMutation) ResetSubscription() {
	m.subscription = nil
	m.clearedsubscription = false
}

// Where appends a list predicates to the SubscriptionHistoryMutation builder.
func (m *SubscriptionHistoryMutation) Where(ps ...predicate.SubscriptionHistory) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SubscriptionHistoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SubscriptionHistoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SubscriptionHistory, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SubscriptionHistoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SubscriptionHistoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SubscriptionHistory).
func (m *SubscriptionHistoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SubscriptionHistoryMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.subscription != nil {
		fields = append(fields, subscriptionhistory.FieldSubscriptionID)
	}
	if m.snapshot != nil {
		fields = append(fields, subscriptionhistory.FieldSnapshot)
	}
	if m.archived_at != nil {
		fields = append(fields, subscriptionhistory.FieldArchivedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SubscriptionHistoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case subscriptionhistory.FieldSubscriptionID:
		return m.SubscriptionID()
	case subscriptionhistory.FieldSnapshot:
		return m.Snapshot()
	case subscriptionhistory.FieldArchivedAt:
		return m.ArchivedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SubscriptionHistoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case subscriptionhistory.FieldSubscriptionID:
		return m.OldSubscriptionID(ctx)
	case subscriptionhistory.FieldSnapshot:
		return m.OldSnapshot(ctx)
	case subscriptionhistory.FieldArchivedAt:
		return m.OldArchivedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SubscriptionHistory field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionHistoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case subscriptionhistory.FieldSubscriptionID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubscriptionID(v)
		return nil
	case subscriptionhistory.FieldSnapshot:
		v, ok := value.(models.PackageSnapshot)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSnapshot(v)
		return nil
	case subscriptionhistory.FieldArchivedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SubscriptionHistory field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SubscriptionHistoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SubscriptionHistoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SubscriptionHistoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SubscriptionHistory numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SubscriptionHistoryMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SubscriptionHistoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SubscriptionHistoryMutation) ClearField(name string) error {
	return fmt.Errorf("unknown SubscriptionHistory nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SubscriptionHistoryMutation) ResetField(name string) error {
	switch name {
	case subscriptionhistory.FieldSubscriptionID:
		m.ResetSubscriptionID()
		return nil
	case subscriptionhistory.FieldSnapshot:
		m.ResetSnapshot()
		return nil
	case subscriptionhistory.FieldArchivedAt:
		m.ResetArchivedAt()
		return nil
	}
	return fmt.Errorf("unknown SubscriptionHistory field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SubscriptionHistoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.subscription != nil {
		edges = append(edges, subscriptionhistory.EdgeSubscription)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SubscriptionHistoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case subscriptionhistory.EdgeSubscription:
		if id := m.subscription; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SubscriptionHistoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SubscriptionHistoryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SubscriptionHistoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsubscription {
		edges = append(edges, subscriptionhistory.EdgeSubscription)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SubscriptionHistoryMutation) EdgeCleared(name string) bool {
	switch name {
	case subscriptionhistory.EdgeSubscription:
		return m.clearedsubscription
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SubscriptionHistoryMutation) ClearEdge(name string) error {
	switch name {
	case subscriptionhistory.EdgeSubscription:
		m.ClearSubscription()
		return nil
	}
	return fmt.Errorf("unknown SubscriptionHistory unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SubscriptionHistoryMutation) ResetEdge(name string) error {
	switch name {
	case subscriptionhistory.EdgeSubscription:
		m.ResetSubscription()
		return nil
	}
	return fmt.Errorf("unknown SubscriptionHistory edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                             Op
	typ                            string
	id                             *uuid.UUID
	name                           *string
	email                          *string
	password_hash                  *string
	role                           *user.Role
	country                        *string
	timezone                       *string
	contact                        *string
	created_at                     *time.Time
	updated_at                     *time.Time
	clearedFields                  map[string]struct{}
	jobsAsEmployer                 map[uuid.UUID]struct{}
	removedjobsAsEmployer          map[uuid.UUID]struct{}
	clearedjobsAsEmployer          bool
	subscription                   *uuid.UUID
	clearedsubscription            bool
	applicationsAsCandidate        map[uuid.UUID]struct{}
	removedapplicationsAsCandidate map[uuid.UUID]struct{}
	clearedapplicationsAsCandidate bool
	done                           bool
	oldValue                       func(context.Context) (*User, error)
	predicates                     []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetCountry sets the "country" field.
func (m *UserMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *UserMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCountry(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *UserMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[user.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *UserMutation) CountryCleared() bool {
	_, ok := m.clearedFields[user.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *UserMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, user.FieldCountry)
}

// SetTimezone sets the "timezone" field.
func (m *UserMutation) SetTimezone(s string) {
	m.timezone = &s
}

// Timezone returns the value of the "timezone" field in the mutation.
func (m *UserMutation) Timezone() (r string, exists bool) {
	v := m.timezone
	if v == nil {
		return
	}
	return *v, true
}

// OldTimezone returns the old "timezone" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldTimezone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimezone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimezone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimezone: %w", err)
	}
	return oldValue.Timezone, nil
}

// ClearTimezone clears the value of the "timezone" field.
func (m *UserMutation) ClearTimezone() {
	m.timezone = nil
	m.clearedFields[user.FieldTimezone] = struct{}{}
}

// TimezoneCleared returns if the "timezone" field was cleared in this mutation.
func (m *UserMutation) TimezoneCleared() bool {
	_, ok := m.clearedFields[user.FieldTimezone]
	return ok
}

// ResetTimezone resets all changes to the "timezone" field.
func (m *UserMutation) ResetTimezone() {
	m.timezone = nil
	delete(m.clearedFields, user.FieldTimezone)
}

// SetContact sets the "contact" field.
func (m *UserMutation) SetContact(s string) {
	m.contact = &s
}

// Contact returns the value of the "contact" field in the mutation.
func (m *UserMutation) Contact() (r string, exists bool) {
	v := m.contact
	if v == nil {
		return
	}
	return *v, true
}

// OldContact returns the old "contact" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldContact(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContact is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContact requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContact: %w", err)
	}
	return oldValue.Contact, nil
}

// ClearContact clears the value of the "contact" field.
func (m *UserMutation) ClearContact() {
	m.contact = nil
	m.clearedFields[user.FieldContact] = struct{}{}
}

// ContactCleared returns if the "contact" field was cleared in this mutation.
func (m *UserMutation) ContactCleared() bool {
	_, ok := m.clearedFields[user.FieldContact]
	return ok
}

// ResetContact resets all changes to the "contact" field.
func (m *UserMutation) ResetContact() {
	m.contact = nil
	delete(m.clearedFields, user.FieldContact)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobsAsEmployerIDs adds the "jobsAsEmployer" edge to the Job entity by ids.
func (m *UserMutation) AddJobsAsEmployerIDs(ids ...uuid.UUID) {
	if m.jobsAsEmployer == nil {
		m.jobsAsEmployer = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobsAsEmployer[ids[i]] = struct{}{}
	}
}

// ClearJobsAsEmployer clears the "jobsAsEmployer" edge to the Job entity.
func (m *UserMutation) ClearJobsAsEmployer() {
	m.clearedjobsAsEmployer = true
}

// JobsAsEmployerCleared reports if the "jobsAsEmployer" edge to the Job entity was cleared.
func (m *UserMutation) JobsAsEmployerCleared() bool {
	return m.clearedjobsAsEmployer
}

// RemoveJobsAsEmployerIDs removes the "jobsAsEmployer" edge to the Job entity by IDs.
func (m *UserMutation) RemoveJobsAsEmployerIDs(ids ...uuid.UUID) {
	if m.removedjobsAsEmployer == nil {
		m.removedjobsAsEmployer = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobsAsEmployer, ids[i])
		m.removedjobsAsEmployer[ids[i]] = struct{}{}
	}
}

// RemovedJobsAsEmployer returns the removed IDs of the "jobsAsEmployer" edge to the Job entity.
func (m *UserMutation) RemovedJobsAsEmployerIDs() (ids []uuid.UUID) {
	for id := range m.removedjobsAsEmployer {
		ids = append(ids, id)
	}
	return
}

// JobsAsEmployerIDs returns the "jobsAsEmployer" edge IDs in the mutation.
func (m *UserMutation) JobsAsEmployerIDs() (ids []uuid.UUID) {
	for id := range m.jobsAsEmployer {
		ids = append(ids, id)
	}
	return
}

// ResetJobsAsEmployer resets all changes to the "jobsAsEmployer" edge.
func (m *UserMutation) ResetJobsAsEmployer() {
	m.jobsAsEmployer = nil
	m.clearedjobsAsEmployer = false
	m.removedjobsAsEmployer = nil
}

// SetSubscriptionID sets the "subscription" edge to the Subscription entity by id.
func (m *UserMutation) SetSubscriptionID(id uuid.UUID) {
	m.subscription = &id
}

// ClearSubscription clears the "subscription" edge to the Subscription entity.
func (m *UserMutation) ClearSubscription() {
	m.clearedsubscription = true
}

// SubscriptionCleared reports if the "subscription" edge to the Subscription entity was cleared.
func (m *UserMutation) SubscriptionCleared() bool {
	return m.clearedsubscription
}

// SubscriptionID returns the "subscription" edge ID in the mutation.
func (m *UserMutation) SubscriptionID() (id uuid.UUID, exists bool) {
	if m.subscription != nil {
		return *m.subscription, true
	}
	return
}

// SubscriptionIDs returns the "subscription" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SubscriptionID instead. It exists only for internal usage by the builders.
func (m *UserMutation) SubscriptionIDs() (ids []uuid.UUID) {
	if id := m.subscription; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSubscription resets all changes to the "subscription" edge.
func (m *UserMutation) ResetSubscription() {
	m.subscription = nil
	m.clearedsubscription = false
}

// AddApplicationsAsCandidateIDs adds the "applicationsAsCandidate" edge to the JobApplication entity by ids.
func (m *UserMutation) AddApplicationsAsCandidateIDs(ids ...uuid.UUID) {
	if m.applicationsAsCandidate == nil {
		m.applicationsAsCandidate = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.applicationsAsCandidate[ids[i]] = struct{}{}
	}
}

// ClearApplicationsAsCandidate clears the "applicationsAsCandidate" edge to the JobApplication entity.
func (m *UserMutation) ClearApplicationsAsCandidate() {
	m.clearedapplicationsAsCandidate = true
}

// ApplicationsAsCandidateCleared reports if the "applicationsAsCandidate" edge to the JobApplication entity was cleared.
func (m *UserMutation) ApplicationsAsCandidateCleared() bool {
	return m.clearedapplicationsAsCandidate
}

// RemoveApplicationsAsCandidateIDs removes the "applicationsAsCandidate" edge to the JobApplication entity by IDs.
func (m *UserMutation) RemoveApplicationsAsCandidateIDs(ids ...uuid.UUID) {
	if m.removedapplicationsAsCandidate == nil {
		m.removedapplicationsAsCandidate = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.applicationsAsCandidate, ids[i])
		m.removedapplicationsAsCandidate[ids[i]] = struct{}{}
	}
}

// RemovedApplicationsAsCandidate returns the removed IDs of the "applicationsAsCandidate" edge to the JobApplication entity.
func (m *UserMutation) RemovedApplicationsAsCandidateIDs() (ids []uuid.UUID) {
	for id := range m.removedapplicationsAsCandidate {
		ids = append(ids, id)
	}
	return
}

// ApplicationsAsCandidateIDs returns the "applicationsAsCandidate" edge IDs in the mutation.
func (m *UserMutation) ApplicationsAsCandidateIDs() (ids []uuid.UUID) {
	for id := range m.applicationsAsCandidate {
		ids = append(ids, id)
	}
	return
}

// ResetApplicationsAsCandidate resets all changes to the "applicationsAsCandidate" edge.
func (m *UserMutation) ResetApplicationsAsCandidate() {
	m.applicationsAsCandidate = nil
	m.clearedapplicationsAsCandidate = false
	m.removedapplicationsAsCandidate = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.country != nil {
		fields = append(fields, user.FieldCountry)
	}
	if m.timezone != nil {
		fields = append(fields, user.FieldTimezone)
	}
	if m.contact != nil {
		fields = append(fields, user.FieldContact)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldCountry:
		return m.Country()
	case user.FieldTimezone:
		return m.Timezone()
	case user.FieldContact:
		return m.Contact()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldCountry:
		return m.OldCountry(ctx)
	case user.FieldTimezone:
		return m.OldTimezone(ctx)
	case user.FieldContact:
		return m.OldContact(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case user.FieldTimezone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimezone(v)
		return nil
	case user.FieldContact:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContact(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldCountry) {
		fields = append(fields, user.FieldCountry)
	}
	if m.FieldCleared(user.FieldTimezone) {
		fields = append(fields, user.FieldTimezone)
	}
	if m.FieldCleared(user.FieldContact) {
		fields = append(fields, user.FieldContact)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldCountry:
		m.ClearCountry()
		return nil
	case user.FieldTimezone:
		m.ClearTimezone()
		return nil
	case user.FieldContact:
		m.ClearContact()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldCountry:
		m.ResetCountry()
		return nil
	case user.FieldTimezone:
		m.ResetTimezone()
		return nil
	case user.FieldContact:
		m.ResetContact()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.jobsAsEmployer != nil {
		edges = append(edges, user.EdgeJobsAsEmployer)
	}
	if m.subscription != nil {
		edges = append(edges, user.EdgeSubscription)
	}
	if m.applicationsAsCandidate != nil {
		edges = append(edges, user.EdgeApplicationsAsCandidate)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeJobsAsEmployer:
		ids := make([]ent.Value, 0, len(m.jobsAsEmployer))
		for id := range m.jobsAsEmployer {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeSubscription:
		if id := m.subscription; id != nil {
			return []ent.Value{*id}
		}
	case user.EdgeApplicationsAsCandidate:
		ids := make([]ent.Value, 0, len(m.applicationsAsCandidate))
		for id := range m.applicationsAsCandidate {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobsAsEmployer != nil {
		edges = append(edges, user.EdgeJobsAsEmployer)
	}
	if m.removedapplicationsAsCandidate != nil {
		edges = append(edges, user.EdgeApplicationsAsCandidate)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeJobsAsEmployer:
		ids := make([]ent.Value, 0, len(m.removedjobsAsEmployer))
		for id := range m.removedjobsAsEmployer {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeApplicationsAsCandidate:
		ids := make([]ent.Value, 0, len(m.removedapplicationsAsCandidate))
		for id := range m.removedapplicationsAsCandidate {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedjobsAsEmployer {
		edges = append(edges, user.EdgeJobsAsEmployer)
	}
	if m.clearedsubscription {
		edges = append(edges, user.EdgeSubscription)
	}
	if m.clearedapplicationsAsCandidate {
		edges = append(edges, user.EdgeApplicationsAsCandidate)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeJobsAsEmployer:
		return m.clearedjobsAsEmployer
	case user.EdgeSubscription:
		return m.clearedsubscription
	case user.EdgeApplicationsAsCandidate:
		return m.clearedapplicationsAsCandidate
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeSubscription:
		m.ClearSubscription()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeJobsAsEmployer:
		m.ResetJobsAsEmployer()
		return nil
	case user.EdgeSubscription:
		m.ResetSubscription()
		return nil
	case user.EdgeApplicationsAsCandidate:
		m.ResetApplicationsAsCandidate()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
