// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dappsmith/conductor/ent/artifact"
	"github.com/dappsmith/conductor/ent/predicate"
	"github.com/dappsmith/conductor/ent/run"
	"github.com/dappsmith/conductor/ent/spec"
	"github.com/dappsmith/conductor/ent/suiterun"
)

// RunQuery is the builder for querying Run entities.
type RunQuery struct {
	config
	ctx           *QueryContext
	order         []run.OrderOption
	inters        []Interceptor
	predicates    []predicate.Run
	withSpec      *SpecQuery
	withSuiteRun  *SuiteRunQuery
	withArtifacts *ArtifactQuery
	modifiers     []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RunQuery builder.
func (_q *RunQuery) Where(ps ...predicate.Run) *RunQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RunQuery) Limit(limit int) *RunQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RunQuery) Offset(offset int) *RunQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RunQuery) Unique(unique bool) *RunQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RunQuery) Order(o ...run.OrderOption) *RunQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QuerySpec chains the current query on the "spec" edge.
func (_q *RunQuery) QuerySpec() *SpecQuery {
	query := (&SpecClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, selector),
			sqlgraph.To(spec.Table, spec.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, run.SpecTable, run.SpecColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySuiteRun chains the current query on the "suite_run" edge.
func (_q *RunQuery) QuerySuiteRun() *SuiteRunQuery {
	query := (&SuiteRunClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, selector),
			sqlgraph.To(suiterun.Table, suiterun.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, run.SuiteRunTable, run.SuiteRunColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryArtifacts chains the current query on the "artifacts" edge.
func (_q *RunQuery) QueryArtifacts() *ArtifactQuery {
	query := (&ArtifactClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(run.Table, run.FieldID, selector),
			sqlgraph.To(artifact.Table, artifact.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, run.ArtifactsTable, run.ArtifactsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Run entity from the query.
// Returns a *NotFoundError when no Run was found.
func (_q *RunQuery) First(ctx context.Context) (*Run, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{run.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RunQuery) FirstX(ctx context.Context) *Run {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Run ID from the query.
// Returns a *NotFoundError when no Run ID was found.
func (_q *RunQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{run.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RunQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Run entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Run entity is found.
// Returns a *NotFoundError when no Run entities are found.
func (_q *RunQuery) Only(ctx context.Context) (*Run, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{run.Label}
	default:
		return nil, &NotSingularError{run.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RunQuery) OnlyX(ctx context.Context) *Run {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Run ID in the query.
// Returns a *NotSingularError when more than one Run ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RunQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{run.Label}
	default:
		err = &NotSingularError{run.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RunQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Runs.
func (_q *RunQuery) All(ctx context.Context) ([]*Run, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Run, *RunQuery]()
	return withInterceptors[[]*Run](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RunQuery) AllX(ctx context.Context) []*Run {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Run IDs.
func (_q *RunQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(run.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RunQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RunQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RunQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RunQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RunQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *RunQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RunQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RunQuery) Clone() *RunQuery {
	if _q == nil {
		return nil
	}
	return &RunQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]run.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.Run{}, _q.predicates...),
		withSpec:      _q.withSpec.Clone(),
		withSuiteRun:  _q.withSuiteRun.Clone(),
		withArtifacts: _q.withArtifacts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithSpec tells the query-builder to eager-load the nodes that are connected to
// the "spec" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunQuery) WithSpec(opts ...func(*SpecQuery)) *RunQuery {
	query := (&SpecClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSpec = query
	return _q
}

// WithSuiteRun tells the query-builder to eager-load the nodes that are connected to
// the "suite_run" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunQuery) WithSuiteRun(opts ...func(*SuiteRunQuery)) *RunQuery {
	query := (&SuiteRunClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSuiteRun = query
	return _q
}

// WithArtifacts tells the query-builder to eager-load the nodes that are connected to
// the "artifacts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RunQuery) WithArtifacts(opts ...func(*ArtifactQuery)) *RunQuery {
	query := (&ArtifactClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withArtifacts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SpecID string `json:"spec_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Run.Query().
//		GroupBy(run.FieldSpecID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *RunQuery) GroupBy(field string, fields ...string) *RunGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RunGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = run.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SpecID string `json:"spec_id,omitempty"`
//	}
//
//	client.Run.Query().
//		Select(run.FieldSpecID).
//		Scan(ctx, &v)
func (_q *RunQuery) Select(fields ...string) *RunSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RunSelect{RunQuery: _q}
	sbuild.label = run.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RunSelect configured with the given aggregations.
func (_q *RunQuery) Aggregate(fns ...AggregateFunc) *RunSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RunQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !run.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *RunQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Run, error) {
	var (
		nodes       = []*Run{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withSpec != nil,
			_q.withSuiteRun != nil,
			_q.withArtifacts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Run).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Run{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withSpec; query != nil {
		if err := _q.loadSpec(ctx, query, nodes, nil,
			func(n *Run, e *Spec) { n.Edges.Spec = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSuiteRun; query != nil {
		if err := _q.loadSuiteRun(ctx, query, nodes, nil,
			func(n *Run, e *SuiteRun) { n.Edges.SuiteRun = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withArtifacts; query != nil {
		if err := _q.loadArtifacts(ctx, query, nodes,
			func(n *Run) { n.Edges.Artifacts = []*Artifact{} },
			func(n *Run, e *Artifact) { n.Edges.Artifacts = append(n.Edges.Artifacts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RunQuery) loadSpec(ctx context.Context, query *SpecQuery, nodes []*Run, init func(*Run), assign func(*Run, *Spec)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Run)
	for i := range nodes {
		fk := nodes[i].SpecID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(spec.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "spec_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RunQuery) loadSuiteRun(ctx context.Context, query *SuiteRunQuery, nodes []*Run, init func(*Run), assign func(*Run, *SuiteRun)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Run)
	for i := range nodes {
		if nodes[i].SuiteRunID == nil {
			continue
		}
		fk := *nodes[i].SuiteRunID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(suiterun.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "suite_run_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RunQuery) loadArtifacts(ctx context.Context, query *ArtifactQuery, nodes []*Run, init func(*Run), assign func(*Run, *Artifact)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Run)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(artifact.FieldRunID)
	}
	query.Where(predicate.Artifact(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(run.ArtifactsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RunID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "run_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RunQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RunQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(run.Table, run.Columns, sqlgraph.NewFieldSpec(run.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, run.FieldID)
		for i := range fields {
			if fields[i] != run.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withSpec != nil {
			_spec.Node.AddColumnOnce(run.FieldSpecID)
		}
		if _q.withSuiteRun != nil {
			_spec.Node.AddColumnOnce(run.FieldSuiteRunID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *RunQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(run.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = run.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *RunQuery) ForUpdate(opts ...sql.LockOption) *RunQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *RunQuery) ForShare(opts ...sql.LockOption) *RunQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// RunGroupBy is the group-by builder for Run entities.
type RunGroupBy struct {
	selector
	build *RunQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RunGroupBy) Aggregate(fns ...AggregateFunc) *RunGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RunGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RunQuery, *RunGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RunGroupBy) sqlScan(ctx context.Context, root *RunQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// RunSelect is the builder for selecting fields of Run entities.
type RunSelect struct {
	*RunQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RunSelect) Aggregate(fns ...AggregateFunc) *RunSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RunSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RunQuery, *RunSelect](ctx, _s.RunQuery, _s, _s.inters, v)
}

func (_s *RunSelect) sqlScan(ctx context.Context, root *RunQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
