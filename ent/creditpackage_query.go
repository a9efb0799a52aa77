// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"hirehub/ent/creditpackage"
	"hirehub/ent/predicate"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// CreditPackageQuery is the builder for querying CreditPackage entities.
type CreditPackageQuery struct {
	config
	ctx        *QueryContext
	order      []creditpackage.OrderOption
	inters     []Interceptor
	predicates []predicate.CreditPackage
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CreditPackageQuery builder.
func (cpq *CreditPackageQuery) Where(ps ...predicate.CreditPackage) *CreditPackageQuery {
	cpq.predicates = append(cpq.predicates, ps...)
	return cpq
}

// Limit the number of records to be returned by this query.
func (cpq *CreditPackageQuery) Limit(limit int) *CreditPackageQuery {
	cpq.ctx.Limit = &limit
	return cpq
}

// Offset to start from.
func (cpq *CreditPackageQuery) Offset(offset int) *CreditPackageQuery {
	cpq.ctx.Offset = &offset
	return cpq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (cpq *CreditPackageQuery) Unique(unique bool) *CreditPackageQuery {
	cpq.ctx.Unique = &unique
	return cpq
}

// Order specifies how the records should be ordered.
func (cpq *CreditPackageQuery) Order(o ...creditpackage.OrderOption) *CreditPackageQuery {
	cpq.order = append(cpq.order, o...)
	return cpq
}

// First returns the first CreditPackage entity from the query.
// Returns a *NotFoundError when no CreditPackage was found.
func (cpq *CreditPackageQuery) First(ctx context.Context) (*CreditPackage, error) {
	nodes, err := cpq.Limit(1).All(setContextOp(ctx, cpq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{creditpackage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (cpq *CreditPackageQuery) FirstX(ctx context.Context) *CreditPackage {
	node, err := cpq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CreditPackage ID from the query.
// Returns a *NotFoundError when no CreditPackage ID was found.
func (cpq *CreditPackageQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cpq.Limit(1).IDs(setContextOp(ctx, cpq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{creditpackage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (cpq *CreditPackageQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := cpq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CreditPackage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CreditPackage entity is found.
// Returns a *NotFoundError when no CreditPackage entities are found.
func (cpq *CreditPackageQuery) Only(ctx context.Context) (*CreditPackage, error) {
	nodes, err := cpq.Limit(2).All(setContextOp(ctx, cpq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{creditpackage.Label}
	default:
		return nil, &NotSingularError{creditpackage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (cpq *CreditPackageQuery) OnlyX(ctx context.Context) *CreditPackage {
	node, err := cpq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CreditPackage ID in the query.
// Returns a *NotSingularError when more than one CreditPackage ID is found.
// Returns a *NotFoundError when no entities are found.
func (cpq *CreditPackageQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = cpq.Limit(2).IDs(setContextOp(ctx, cpq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{creditpackage.Label}
	default:
		err = &NotSingularError{creditpackage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (cpq *CreditPackageQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := cpq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CreditPackages.
func (cpq *CreditPackageQuery) All(ctx context.Context) ([]*CreditPackage, error) {
	ctx = setContextOp(ctx, cpq.ctx, ent.OpQueryAll)
	if err := cpq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CreditPackage, *CreditPackageQuery]()
	return withInterceptors[[]*CreditPackage](ctx, cpq, qr, cpq.inters)
}

// AllX is like All, but panics if an error occurs.
func (cpq *CreditPackageQuery) AllX(ctx context.Context) []*CreditPackage {
	nodes, err := cpq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CreditPackage IDs.
func (cpq *CreditPackageQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if cpq.ctx.Unique == nil && cpq.path != nil {
		cpq.Unique(true)
	}
	ctx = setContextOp(ctx, cpq.ctx, ent.OpQueryIDs)
	if err = cpq.Select(creditpackage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (cpq *CreditPackageQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := cpq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (cpq *CreditPackageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, cpq.ctx, ent.OpQueryCount)
	if err := cpq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, cpq, querierCount[*CreditPackageQuery](), cpq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (cpq *CreditPackageQuery) CountX(ctx context.Context) int {
	count, err := cpq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (cpq *CreditPackageQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, cpq.ctx, ent.OpQueryExist)
	switch _, err := cpq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (cpq *CreditPackageQuery) ExistX(ctx context.Context) bool {
	exist, err := cpq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CreditPackageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (cpq *CreditPackageQuery) Clone() *CreditPackageQuery {
	if cpq == nil {
		return nil
	}
	return &CreditPackageQuery{
		config:     cpq.config,
		ctx:        cpq.ctx.Clone(),
		order:      append([]creditpackage.OrderOption{}, cpq.order...),
		inters:     append([]Interceptor{}, cpq.inters...),
		predicates: append([]predicate.CreditPackage{}, cpq.predicates...),
		// clone intermediate query.
		sql:  cpq.sql.Clone(),
		path: cpq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CreditPackage.Query().
//		GroupBy(creditpackage.FieldTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (cpq *CreditPackageQuery) GroupBy(field string, fields ...string) *CreditPackageGroupBy {
	cpq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CreditPackageGroupBy{build: cpq}
	grbuild.flds = &cpq.ctx.Fields
	grbuild.label = creditpackage.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Title string `json:"title,omitempty"`
//	}
//
//	client.CreditPackage.Query().
//		Select(creditpackage.FieldTitle).
//		Scan(ctx, &v)
func (cpq *CreditPackageQuery) Select(fields ...string) *CreditPackageSelect {
	cpq.ctx.Fields = append(cpq.ctx.Fields, fields...)
	sbuild := &CreditPackageSelect{CreditPackageQuery: cpq}
	sbuild.label = creditpackage.Label
	sbuild.flds, sbuild.scan = &cpq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CreditPackageSelect configured with the given aggregations.
func (cpq *CreditPackageQuery) Aggregate(fns ...AggregateFunc) *CreditPackageSelect {
	return cpq.Select().Aggregate(fns...)
}

func (cpq *CreditPackageQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range cpq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, cpq); err != nil {
				return err
			}
		}
	}
	for _, f := range cpq.ctx.Fields {
		if !creditpackage.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if cpq.path != nil {
		prev, err := cpq.path(ctx)
		if err != nil {
			return err
		}
		cpq.sql = prev
	}
	return nil
}

func (cpq *CreditPackageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CreditPackage, error) {
	var (
		nodes = []*CreditPackage{}
		_spec = cpq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CreditPackage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CreditPackage{config: cpq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, cpq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (cpq *CreditPackageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := cpq.querySpec()
	_spec.Node.Columns = cpq.ctx.Fields
	if len(cpq.ctx.Fields) > 0 {
		_spec.Unique = cpq.ctx.Unique != nil && *cpq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, cpq.driver, _spec)
}

func (cpq *CreditPackageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(creditpackage.Table, creditpackage.Columns, sqlgraph.NewFieldSpec(creditpackage.FieldID, field.TypeUUID))
	_spec.From = cpq.sql
	if unique := cpq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if cpq.path != nil {
		_spec.Unique = true
	}
	if fields := cpq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, creditpackage.FieldID)
		for i := range fields {
			if fields[i] != creditpackage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := cpq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := cpq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := cpq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := cpq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (cpq *CreditPackageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(cpq.driver.Dialect())
	t1 := builder.Table(creditpackage.Table)
	columns := cpq.ctx.Fields
	if len(columns) == 0 {
		columns = creditpackage.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if cpq.sql != nil {
		selector = cpq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if cpq.ctx.Unique != nil && *cpq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range cpq.predicates {
		p(selector)
	}
	for _, p := range cpq.order {
		p(selector)
	}
	if offset := cpq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := cpq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CreditPackageGroupBy is the group-by builder for CreditPackage entities.
type CreditPackageGroupBy struct {
	selector
	build *CreditPackageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (cpgb *CreditPackageGroupBy) Aggregate(fns ...AggregateFunc) *CreditPackageGroupBy {
	cpgb.fns = append(cpgb.fns, fns...)
	return cpgb
}

// Scan applies the selector query and scans the result into the given value.
func (cpgb *CreditPackageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cpgb.build.ctx, ent.OpQueryGroupBy)
	if err := cpgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditPackageQuery, *CreditPackageGroupBy](ctx, cpgb.build, cpgb, cpgb.build.inters, v)
}

func (cpgb *CreditPackageGroupBy) sqlScan(ctx context.Context, root *CreditPackageQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(cpgb.fns))
	for _, fn := range cpgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*cpgb.flds)+len(cpgb.fns))
		for _, f := range *cpgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*cpgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cpgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CreditPackageSelect is the builder for selecting fields of CreditPackage entities.
type CreditPackageSelect struct {
	*CreditPackageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (cps *CreditPackageSelect) Aggregate(fns ...AggregateFunc) *CreditPackageSelect {
	cps.fns = append(cps.fns, fns...)
	return cps
}

// Scan applies the selector query and scans the result into the given value.
func (cps *CreditPackageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, cps.ctx, ent.OpQuerySelect)
	if err := cps.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CreditPackageQuery, *CreditPackageSelect](ctx, cps.CreditPackageQuery, cps, cps.inters, v)
}

func (cps *CreditPackageSelect) sqlScan(ctx context.Context, root *CreditPackageQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(cps.fns))
	for _, fn := range cps.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*cps.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := cps.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
