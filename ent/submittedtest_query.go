// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"hirehub/ent/jobapplication"
	"hirehub/ent/predicate"
	"hirehub/ent/submittedtest"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubmittedTestQuery is the builder for querying SubmittedTest entities.
type SubmittedTestQuery struct {
	config
	ctx             *QueryContext
	order           []submittedtest.OrderOption
	inters          []Interceptor
	predicates      []predicate.SubmittedTest
	withApplication *JobApplicationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SubmittedTestQuery builder.
func (stq *SubmittedTestQuery) Where(ps ...predicate.SubmittedTest) *SubmittedTestQuery {
	stq.predicates = append(stq.predicates, ps...)
	return stq
}

// Limit the number of records to be returned by this query.
func (stq *SubmittedTestQuery) Limit(limit int) *SubmittedTestQuery {
	stq.ctx.Limit = &limit
	return stq
}

// Offset to start from.
func (stq *SubmittedTestQuery) Offset(offset int) *SubmittedTestQuery {
	stq.ctx.Offset = &offset
	return stq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (stq *SubmittedTestQuery) Unique(unique bool) *SubmittedTestQuery {
	stq.ctx.Unique = &unique
	return stq
}

// Order specifies how the records should be ordered.
func (stq *SubmittedTestQuery) Order(o ...submittedtest.OrderOption) *SubmittedTestQuery {
	stq.order = append(stq.order, o...)
	return stq
}

// QueryApplication chains the current query on the "application" edge.
func (stq *SubmittedTestQuery) QueryApplication() *JobApplicationQuery {
	query := (&JobApplicationClient{config: stq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := stq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := stq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedtest.Table, submittedtest.FieldID, selector),
			sqlgraph.To(jobapplication.Table, jobapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, submittedtest.ApplicationTable, submittedtest.ApplicationColumn),
		)
		fromU = sqlgraph.SetNeighbors(stq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SubmittedTest entity from the query.
// Returns a *NotFoundError when no SubmittedTest was found.
func (stq *SubmittedTestQuery) First(ctx context.Context) (*SubmittedTest, error) {
	nodes, err := stq.Limit(1).All(setContextOp(ctx, stq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{submittedtest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (stq *SubmittedTestQuery) FirstX(ctx context.Context) *SubmittedTest {
	node, err := stq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SubmittedTest ID from the query.
// Returns a *NotFoundError when no SubmittedTest ID was found.
func (stq *SubmittedTestQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = stq.Limit(1).IDs(setContextOp(ctx, stq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{submittedtest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (stq *SubmittedTestQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := stq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SubmittedTest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SubmittedTest entity is found.
// Returns a *NotFoundError when no SubmittedTest entities are found.
func (stq *SubmittedTestQuery) Only(ctx context.Context) (*SubmittedTest, error) {
	nodes, err := stq.Limit(2).All(setContextOp(ctx, stq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{submittedtest.Label}
	default:
		return nil, &NotSingularError{submittedtest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (stq *SubmittedTestQuery) OnlyX(ctx context.Context) *SubmittedTest {
	node, err := stq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SubmittedTest ID in the query.
// Returns a *NotSingularError when more than one SubmittedTest ID is found.
// Returns a *NotFoundError when no entities are found.
func (stq *SubmittedTestQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = stq.Limit(2).IDs(setContextOp(ctx, stq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{submittedtest.Label}
	default:
		err = &NotSingularError{submittedtest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (stq *SubmittedTestQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := stq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SubmittedTests.
func (stq *SubmittedTestQuery) All(ctx context.Context) ([]*SubmittedTest, error) {
	ctx = setContextOp(ctx, stq.ctx, ent.OpQueryAll)
	if err := stq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SubmittedTest, *SubmittedTestQuery]()
	return withInterceptors[[]*SubmittedTest](ctx, stq, qr, stq.inters)
}

// AllX is like All, but panics if an error occurs.
func (stq *SubmittedTestQuery) AllX(ctx context.Context) []*SubmittedTest {
	nodes, err := stq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SubmittedTest IDs.
func (stq *SubmittedTestQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if stq.ctx.Unique == nil && stq.path != nil {
		stq.Unique(true)
	}
	ctx = setContextOp(ctx, stq.ctx, ent.OpQueryIDs)
	if err = stq.Select(submittedtest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (stq *SubmittedTestQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := stq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (stq *SubmittedTestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, stq.ctx, ent.OpQueryCount)
	if err := stq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, stq, querierCount[*SubmittedTestQuery](), stq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (stq *SubmittedTestQuery) CountX(ctx context.Context) int {
	count, err := stq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (stq *SubmittedTestQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, stq.ctx, ent.OpQueryExist)
	switch _, err := stq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (stq *SubmittedTestQuery) ExistX(ctx context.Context) bool {
	exist, err := stq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SubmittedTestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (stq *SubmittedTestQuery) Clone() *SubmittedTestQuery {
	if stq == nil {
		return nil
	}
	return &SubmittedTestQuery{
		config:          stq.config,
		ctx:             stq.ctx.Clone(),
		order:           append([]submittedtest.OrderOption{}, stq.order...),
		inters:          append([]Interceptor{}, stq.inters...),
		predicates:      append([]predicate.SubmittedTest{}, stq.predicates...),
		withApplication: stq.withApplication.Clone(),
		// clone intermediate query.
		sql:  stq.sql.Clone(),
		path: stq.path,
	}
}

// WithApplication tells the query-builder to eager-load the nodes that are connected to
// the "application" edge. The optional arguments are used to configure the query builder of the edge.
func (stq *SubmittedTestQuery) WithApplication(opts ...func(*JobApplicationQuery)) *SubmittedTestQuery {
	query := (&JobApplicationClient{config: stq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	stq.withApplication = query
	return stq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ApplicationID uuid.UUID `json:"application_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SubmittedTest.Query().
//		GroupBy(submittedtest.FieldApplicationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (stq *SubmittedTestQuery) GroupBy(field string, fields ...string) *SubmittedTestGroupBy {
	stq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SubmittedTestGroupBy{build: stq}
	grbuild.flds = &stq.ctx.Fields
	grbuild.label = submittedtest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ApplicationID uuid.UUID `json:"application_id,omitempty"`
//	}
//
//	client.SubmittedTest.Query().
//		Select(submittedtest.FieldApplicationID).
//		Scan(ctx, &v)
func (stq *SubmittedTestQuery) Select(fields ...string) *SubmittedTestSelect {
	stq.ctx.Fields = append(stq.ctx.Fields, fields...)
	sbuild := &SubmittedTestSelect{SubmittedTestQuery: stq}
	sbuild.label = submittedtest.Label
	sbuild.flds, sbuild.scan = &stq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SubmittedTestSelect configured with the given aggregations.
func (stq *SubmittedTestQuery) Aggregate(fns ...AggregateFunc) *SubmittedTestSelect {
	return stq.Select().Aggregate(fns...)
}

func (stq *SubmittedTestQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range stq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, stq); err != nil {
				return err
			}
		}
	}
	for _, f := range stq.ctx.Fields {
		if !submittedtest.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if stq.path != nil {
		prev, err := stq.path(ctx)
		if err != nil {
			return err
		}
		stq.sql = prev
	}
	return nil
}

func (stq *SubmittedTestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SubmittedTest, error) {
	var (
		nodes       = []*SubmittedTest{}
		_spec       = stq.querySpec()
		loadedTypes = [1]bool{
			stq.withApplication != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SubmittedTest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SubmittedTest{config: stq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, stq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := stq.withApplication; query != nil {
		if err := stq.loadApplication(ctx, query, nodes, nil,
			func(n *SubmittedTest, e *JobApplication) { n.Edges.Application = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (stq *SubmittedTestQuery) loadApplication(ctx context.Context, query *JobApplicationQuery, nodes []*SubmittedTest, init func(*SubmittedTest), assign func(*SubmittedTest, *JobApplication)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SubmittedTest)
	for i := range nodes {
		fk := nodes[i].ApplicationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(jobapplication.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "application_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (stq *SubmittedTestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := stq.querySpec()
	_spec.Node.Columns = stq.ctx.Fields
	if len(stq.ctx.Fields) > 0 {
		_spec.Unique = stq.ctx.Unique != nil && *stq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, stq.driver, _spec)
}

func (stq *SubmittedTestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(submittedtest.Table, submittedtest.Columns, sqlgraph.NewFieldSpec(submittedtest.FieldID, field.TypeUUID))
	_spec.From = stq.sql
	if unique := stq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if stq.path != nil {
		_spec.Unique = true
	}
	if fields := stq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submittedtest.FieldID)
		for i := range fields {
			if fields[i] != submittedtest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if stq.withApplication != nil {
			_spec.Node.AddColumnOnce(submittedtest.FieldApplicationID)
		}
	}
	if ps := stq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := stq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := stq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := stq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (stq *SubmittedTestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(stq.driver.Dialect())
	t1 := builder.Table(submittedtest.Table)
	columns := stq.ctx.Fields
	if len(columns) == 0 {
		columns = submittedtest.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if stq.sql != nil {
		selector = stq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if stq.ctx.Unique != nil && *stq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range stq.predicates {
		p(selector)
	}
	for _, p := range stq.order {
		p(selector)
	}
	if offset := stq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := stq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SubmittedTestGroupBy is the group-by builder for SubmittedTest entities.
type SubmittedTestGroupBy struct {
	selector
	build *SubmittedTestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (stgb *SubmittedTestGroupBy) Aggregate(fns ...AggregateFunc) *SubmittedTestGroupBy {
	stgb.fns = append(stgb.fns, fns...)
	return stgb
}

// Scan applies the selector query and scans the result into the given value.
func (stgb *SubmittedTestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, stgb.build.ctx, ent.OpQueryGroupBy)
	if err := stgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubmittedTestQuery, *SubmittedTestGroupBy](ctx, stgb.build, stgb, stgb.build.inters, v)
}

func (stgb *SubmittedTestGroupBy) sqlScan(ctx context.Context, root *SubmittedTestQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(stgb.fns))
	for _, fn := range stgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*stgb.flds)+len(stgb.fns))
		for _, f := range *stgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*stgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := stgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SubmittedTestSelect is the builder for selecting fields of SubmittedTest entities.
type SubmittedTestSelect struct {
	*SubmittedTestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sts *SubmittedTestSelect) Aggregate(fns ...AggregateFunc) *SubmittedTestSelect {
	sts.fns = append(sts.fns, fns...)
	return sts
}

// Scan applies the selector query and scans the result into the given value.
func (sts *SubmittedTestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sts.ctx, ent.OpQuerySelect)
	if err := sts.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubmittedTestQuery, *SubmittedTestSelect](ctx, sts.SubmittedTestQuery, sts, sts.inters, v)
}

func (sts *SubmittedTestSelect) sqlScan(ctx context.Context, root *SubmittedTestQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sts.fns))
	for _, fn := range sts.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sts.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sts.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
