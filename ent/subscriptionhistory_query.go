// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"hirehub/ent/predicate"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SubscriptionHistoryQuery is the builder for querying SubscriptionHistory entities.
type SubscriptionHistoryQuery struct {
	config
	ctx              *QueryContext
	order            []subscriptionhistory.OrderOption
	inters           []Interceptor
	predicates       []predicate.SubscriptionHistory
	withSubscription *SubscriptionQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SubscriptionHistoryQuery builder.
func (shq *SubscriptionHistoryQuery) Where(ps ...predicate.SubscriptionHistory) *SubscriptionHistoryQuery {
	shq.predicates = append(shq.predicates, ps...)
	return shq
}

// Limit the number of records to be returned by this query.
func (shq *SubscriptionHistoryQuery) Limit(limit int) *SubscriptionHistoryQuery {
	shq.ctx.Limit = &limit
	return shq
}

// Offset to start from.
func (shq *SubscriptionHistoryQuery) Offset(offset int) *SubscriptionHistoryQuery {
	shq.ctx.Offset = &offset
	return shq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (shq *SubscriptionHistoryQuery) Unique(unique bool) *SubscriptionHistoryQuery {
	shq.ctx.Unique = &unique
	return shq
}

// Order specifies how the records should be ordered.
func (shq *SubscriptionHistoryQuery) Order(o ...subscriptionhistory.OrderOption) *SubscriptionHistoryQuery {
	shq.order = append(shq.order, o...)
	return shq
}

// QuerySubscription chains the current query on the "subscription" edge.
func (shq *SubscriptionHistoryQuery) QuerySubscription() *SubscriptionQuery {
	query := (&SubscriptionClient{config: shq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := shq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := shq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(subscriptionhistory.Table, subscriptionhistory.FieldID, selector),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subscriptionhistory.SubscriptionTable, subscriptionhistory.SubscriptionColumn),
		)
		fromU = sqlgraph.SetNeighbors(shq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first SubscriptionHistory entity from the query.
// Returns a *NotFoundError when no SubscriptionHistory was found.
func (shq *SubscriptionHistoryQuery) First(ctx context.Context) (*SubscriptionHistory, error) {
	nodes, err := shq.Limit(1).All(setContextOp(ctx, shq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{subscriptionhistory.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) FirstX(ctx context.Context) *SubscriptionHistory {
	node, err := shq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SubscriptionHistory ID from the query.
// Returns a *NotFoundError when no SubscriptionHistory ID was found.
func (shq *SubscriptionHistoryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = shq.Limit(1).IDs(setContextOp(ctx, shq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{subscriptionhistory.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := shq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SubscriptionHistory entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SubscriptionHistory entity is found.
// Returns a *NotFoundError when no SubscriptionHistory entities are found.
func (shq *SubscriptionHistoryQuery) Only(ctx context.Context) (*SubscriptionHistory, error) {
	nodes, err := shq.Limit(2).All(setContextOp(ctx, shq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{subscriptionhistory.Label}
	default:
		return nil, &NotSingularError{subscriptionhistory.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) OnlyX(ctx context.Context) *SubscriptionHistory {
	node, err := shq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SubscriptionHistory ID in the query.
// Returns a *NotSingularError when more than one SubscriptionHistory ID is found.
// Returns a *NotFoundError when no entities are found.
func (shq *SubscriptionHistoryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = shq.Limit(2).IDs(setContextOp(ctx, shq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{subscriptionhistory.Label}
	default:
		err = &NotSingularError{subscriptionhistory.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := shq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SubscriptionHistories.
func (shq *SubscriptionHistoryQuery) All(ctx context.Context) ([]*SubscriptionHistory, error) {
	ctx = setContextOp(ctx, shq.ctx, ent.OpQueryAll)
	if err := shq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SubscriptionHistory, *SubscriptionHistoryQuery]()
	return withInterceptors[[]*SubscriptionHistory](ctx, shq, qr, shq.inters)
}

// AllX is like All, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) AllX(ctx context.Context) []*SubscriptionHistory {
	nodes, err := shq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SubscriptionHistory IDs.
func (shq *SubscriptionHistoryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if shq.ctx.Unique == nil && shq.path != nil {
		shq.Unique(true)
	}
	ctx = setContextOp(ctx, shq.ctx, ent.OpQueryIDs)
	if err = shq.Select(subscriptionhistory.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := shq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (shq *SubscriptionHistoryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, shq.ctx, ent.OpQueryCount)
	if err := shq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, shq, querierCount[*SubscriptionHistoryQuery](), shq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) CountX(ctx context.Context) int {
	count, err := shq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (shq *SubscriptionHistoryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, shq.ctx, ent.OpQueryExist)
	switch _, err := shq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (shq *SubscriptionHistoryQuery) ExistX(ctx context.Context) bool {
	exist, err := shq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SubscriptionHistoryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (shq *SubscriptionHistoryQuery) Clone() *SubscriptionHistoryQuery {
	if shq == nil {
		return nil
	}
	return &SubscriptionHistoryQuery{
		config:           shq.config,
		ctx:              shq.ctx.Clone(),
		order:            append([]subscriptionhistory.OrderOption{}, shq.order...),
		inters:           append([]Interceptor{}, shq.inters...),
		predicates:       append([]predicate.SubscriptionHistory{}, shq.predicates...),
		withSubscription: shq.withSubscription.Clone(),
		// clone intermediate query.
		sql:  shq.sql.Clone(),
		path: shq.path,
	}
}

// WithSubscription tells the query-builder to eager-load the nodes that are connected to
// the "subscription" edge. The optional arguments are used to configure the query builder of the edge.
func (shq *SubscriptionHistoryQuery) WithSubscription(opts ...func(*SubscriptionQuery)) *SubscriptionHistoryQuery {
	query := (&SubscriptionClient{config: shq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	shq.withSubscription = query
	return shq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SubscriptionID uuid.UUID `json:"subscription_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SubscriptionHistory.Query().
//		GroupBy(subscriptionhistory.FieldSubscriptionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (shq *SubscriptionHistoryQuery) GroupBy(field string, fields ...string) *SubscriptionHistoryGroupBy {
	shq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SubscriptionHistoryGroupBy{build: shq}
	grbuild.flds = &shq.ctx.Fields
	grbuild.label = subscriptionhistory.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SubscriptionID uuid.UUID `json:"subscription_id,omitempty"`
//	}
//
//	client.SubscriptionHistory.Query().
//		Select(subscriptionhistory.FieldSubscriptionID).
//		Scan(ctx, &v)
func (shq *SubscriptionHistoryQuery) Select(fields ...string) *SubscriptionHistorySelect {
	shq.ctx.Fields = append(shq.ctx.Fields, fields...)
	sbuild := &SubscriptionHistorySelect{SubscriptionHistoryQuery: shq}
	sbuild.label = subscriptionhistory.Label
	sbuild.flds, sbuild.scan = &shq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SubscriptionHistorySelect configured with the given aggregations.
func (shq *SubscriptionHistoryQuery) Aggregate(fns ...AggregateFunc) *SubscriptionHistorySelect {
	return shq.Select().Aggregate(fns...)
}

func (shq *SubscriptionHistoryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range shq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, shq); err != nil {
				return err
			}
		}
	}
	for _, f := range shq.ctx.Fields {
		if !subscriptionhistory.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if shq.path != nil {
		prev, err := shq.path(ctx)
		if err != nil {
			return err
		}
		shq.sql = prev
	}
	return nil
}

func (shq *SubscriptionHistoryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SubscriptionHistory, error) {
	var (
		nodes       = []*SubscriptionHistory{}
		_spec       = shq.querySpec()
		loadedTypes = [1]bool{
			shq.withSubscription != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SubscriptionHistory).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SubscriptionHistory{config: shq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, shq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := shq.withSubscription; query != nil {
		if err := shq.loadSubscription(ctx, query, nodes, nil,
			func(n *SubscriptionHistory, e *Subscription) { n.Edges.Subscription = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (shq *SubscriptionHistoryQuery) loadSubscription(ctx context.Context, query *SubscriptionQuery, nodes []*SubscriptionHistory, init func(*SubscriptionHistory), assign func(*SubscriptionHistory, *Subscription)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*SubscriptionHistory)
	for i := range nodes {
		fk := nodes[i].SubscriptionID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(subscription.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "subscription_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (shq *SubscriptionHistoryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := shq.querySpec()
	_spec.Node.Columns = shq.ctx.Fields
	if len(shq.ctx.Fields) > 0 {
		_spec.Unique = shq.ctx.Unique != nil && *shq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, shq.driver, _spec)
}

func (shq *SubscriptionHistoryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(subscriptionhistory.Table, subscriptionhistory.Columns, sqlgraph.NewFieldSpec(subscriptionhistory.FieldID, field.TypeUUID))
	_spec.From = shq.sql
	if unique := shq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if shq.path != nil {
		_spec.Unique = true
	}
	if fields := shq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subscriptionhistory.FieldID)
		for i := range fields {
			if fields[i] != subscriptionhistory.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if shq.withSubscription != nil {
			_spec.Node.AddColumnOnce(subscriptionhistory.FieldSubscriptionID)
		}
	}
	if ps := shq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := shq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := shq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := shq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (shq *SubscriptionHistoryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(shq.driver.Dialect())
	t1 := builder.Table(subscriptionhistory.Table)
	columns := shq.ctx.Fields
	if len(columns) == 0 {
		columns = subscriptionhistory.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if shq.sql != nil {
		selector = shq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if shq.ctx.Unique != nil && *shq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range shq.predicates {
		p(selector)
	}
	for _, p := range shq.order {
		p(selector)
	}
	if offset := shq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := shq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SubscriptionHistoryGroupBy is the group-by builder for SubscriptionHistory entities.
type SubscriptionHistoryGroupBy struct {
	selector
	build *SubscriptionHistoryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (shgb *SubscriptionHistoryGroupBy) Aggregate(fns ...AggregateFunc) *SubscriptionHistoryGroupBy {
	shgb.fns = append(shgb.fns, fns...)
	return shgb
}

// Scan applies the selector query and scans the result into the given value.
func (shgb *SubscriptionHistoryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, shgb.build.ctx, ent.OpQueryGroupBy)
	if err := shgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubscriptionHistoryQuery, *SubscriptionHistoryGroupBy](ctx, shgb.build, shgb, shgb.build.inters, v)
}

func (shgb *SubscriptionHistoryGroupBy) sqlScan(ctx context.Context, root *SubscriptionHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(shgb.fns))
	for _, fn := range shgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*shgb.flds)+len(shgb.fns))
		for _, f := range *shgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*shgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := shgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SubscriptionHistorySelect is the builder for selecting fields of SubscriptionHistory entities.
type SubscriptionHistorySelect struct {
	*SubscriptionHistoryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (shs *SubscriptionHistorySelect) Aggregate(fns ...AggregateFunc) *SubscriptionHistorySelect {
	shs.fns = append(shs.fns, fns...)
	return shs
}

// Scan applies the selector query and scans the result into the given value.
func (shs *SubscriptionHistorySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, shs.ctx, ent.OpQuerySelect)
	if err := shs.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SubscriptionHistoryQuery, *SubscriptionHistorySelect](ctx, shs.SubscriptionHistoryQuery, shs, shs.inters, v)
}

func (shs *SubscriptionHistorySelect) sqlScan(ctx context.Context, root *SubscriptionHistoryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(shs.fns))
	for _, fn := range shs.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*shs.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := shs.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
