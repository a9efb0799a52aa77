// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"hirehub/ent/migrate"

	"hirehub/ent/creditpackage"
	"hirehub/ent/job"
	"hirehub/ent/jobapplication"
	"hirehub/ent/submittedtest"
	"hirehub/ent/subscription"
	"hirehub/ent/subscriptionhistory"
	"hirehub/ent/user"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CreditPackage is the client for interacting with the CreditPackage builders.
	CreditPackage *CreditPackageClient
	// Job is the client for interacting with the Job builders.
	Job *JobClient
	// JobApplication is the client for interacting with the JobApplication builders.
	JobApplication *JobApplicationClient
	// SubmittedTest is the client for interacting with the SubmittedTest builders.
	SubmittedTest *SubmittedTestClient
	// Subscription is the client for interacting with the Subscription builders.
	Subscription *SubscriptionClient
	// SubscriptionHistory is the client for interacting with the SubscriptionHistory builders.
	SubscriptionHistory *SubscriptionHistoryClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CreditPackage = NewCreditPackageClient(c.config)
	c.Job = NewJobClient(c.config)
	c.JobApplication = NewJobApplicationClient(c.config)
	c.SubmittedTest = NewSubmittedTestClient(c.config)
	c.Subscription = NewSubscriptionClient(c.config)
	c.SubscriptionHistory = NewSubscriptionHistoryClient(c.config)
	c.User = NewUserClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		CreditPackage:       NewCreditPackageClient(cfg),
		Job:                 NewJobClient(cfg),
		JobApplication:      NewJobApplicationClient(cfg),
		SubmittedTest:       NewSubmittedTestClient(cfg),
		Subscription:        NewSubscriptionClient(cfg),
		SubscriptionHistory: NewSubscriptionHistoryClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                 ctx,
		config:              cfg,
		CreditPackage:       NewCreditPackageClient(cfg),
		Job:                 NewJobClient(cfg),
		JobApplication:      NewJobApplicationClient(cfg),
		SubmittedTest:       NewSubmittedTestClient(cfg),
		Subscription:        NewSubscriptionClient(cfg),
		SubscriptionHistory: NewSubscriptionHistoryClient(cfg),
		User:                NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CreditPackage.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.CreditPackage, c.Job, c.JobApplication, c.SubmittedTest, c.Subscription,
		c.SubscriptionHistory, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.CreditPackage, c.Job, c.JobApplication, c.SubmittedTest, c.Subscription,
		c.SubscriptionHistory, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CreditPackageMutation:
		return c.CreditPackage.mutate(ctx, m)
	case *JobMutation:
		return c.Job.mutate(ctx, m)
	case *JobApplicationMutation:
		return c.JobApplication.mutate(ctx, m)
	case *SubmittedTestMutation:
		return c.SubmittedTest.mutate(ctx, m)
	case *SubscriptionMutation:
		return c.Subscription.mutate(ctx, m)
	case *SubscriptionHistoryMutation:
		return c.SubscriptionHistory.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CreditPackageClient is a client for the CreditPackage schema.
type CreditPackageClient struct {
	config
}

// NewCreditPackageClient returns a client for the CreditPackage from the given config.
func NewCreditPackageClient(c config) *CreditPackageClient {
	return &CreditPackageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `creditpackage.Hooks(f(g(h())))`.
func (c *CreditPackageClient) Use(hooks ...Hook) {
	c.hooks.CreditPackage = append(c.hooks.CreditPackage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `creditpackage.Intercept(f(g(h())))`.
func (c *CreditPackageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CreditPackage = append(c.inters.CreditPackage, interceptors...)
}

// Create returns a builder for creating a CreditPackage entity.
func (c *CreditPackageClient) Create() *CreditPackageCreate {
	mutation := newCreditPackageMutation(c.config, OpCreate)
	return &CreditPackageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CreditPackage entities.
func (c *CreditPackageClient) CreateBulk(builders ...*CreditPackageCreate) *CreditPackageCreateBulk {
	return &CreditPackageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CreditPackageClient) MapCreateBulk(slice any, setFunc func(*CreditPackageCreate, int)) *CreditPackageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CreditPackageCreateBulk{err: fmt.Errorf("calling to CreditPackageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CreditPackageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CreditPackageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CreditPackage.
func (c *CreditPackageClient) Update() *CreditPackageUpdate {
	mutation := newCreditPackageMutation(c.config, OpUpdate)
	return &CreditPackageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CreditPackageClient) UpdateOne(cp *CreditPackage) *CreditPackageUpdateOne {
	mutation := newCreditPackageMutation(c.config, OpUpdateOne, withCreditPackage(cp))
	return &CreditPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CreditPackageClient) UpdateOneID(id uuid.UUID) *CreditPackageUpdateOne {
	mutation := newCreditPackageMutation(c.config, OpUpdateOne, withCreditPackageID(id))
	return &CreditPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CreditPackage.
func (c *CreditPackageClient) Delete() *CreditPackageDelete {
	mutation := newCreditPackageMutation(c.config, OpDelete)
	return &CreditPackageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CreditPackageClient) DeleteOne(cp *CreditPackage) *CreditPackageDeleteOne {
	return c.DeleteOneID(cp.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CreditPackageClient) DeleteOneID(id uuid.UUID) *CreditPackageDeleteOne {
	builder := c.Delete().Where(creditpackage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CreditPackageDeleteOne{builder}
}

// Query returns a query builder for CreditPackage.
func (c *CreditPackageClient) Query() *CreditPackageQuery {
	return &CreditPackageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCreditPackage},
		inters: c.Interceptors(),
	}
}

// Get returns a CreditPackage entity by its id.
func (c *CreditPackageClient) Get(ctx context.Context, id uuid.UUID) (*CreditPackage, error) {
	return c.Query().Where(creditpackage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CreditPackageClient) GetX(ctx context.Context, id uuid.UUID) *CreditPackage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CreditPackageClient) Hooks() []Hook {
	return c.hooks.CreditPackage
}

// Interceptors returns the client interceptors.
func (c *CreditPackageClient) Interceptors() []Interceptor {
	return c.inters.CreditPackage
}

func (c *CreditPackageClient) mutate(ctx context.Context, m *CreditPackageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CreditPackageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CreditPackageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CreditPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CreditPackageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CreditPackage mutation op: %q", m.Op())
	}
}

// JobClient is a client for the Job schema.
type JobClient struct {
	config
}

// NewJobClient returns a client for the Job from the given config.
func NewJobClient(c config) *JobClient {
	return &JobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `job.Hooks(f(g(h())))`.
func (c *JobClient) Use(hooks ...Hook) {
	c.hooks.Job = append(c.hooks.Job, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `job.Intercept(f(g(h())))`.
func (c *JobClient) Intercept(interceptors ...Interceptor) {
	c.inters.Job = append(c.inters.Job, interceptors...)
}

// Create returns a builder for creating a Job entity.
func (c *JobClient) Create() *JobCreate {
	mutation := newJobMutation(c.config, OpCreate)
	return &JobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Job entities.
func (c *JobClient) CreateBulk(builders ...*JobCreate) *JobCreateBulk {
	return &JobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobClient) MapCreateBulk(slice any, setFunc func(*JobCreate, int)) *JobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobCreateBulk{err: fmt.Errorf("calling to JobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Job.
func (c *JobClient) Update() *JobUpdate {
	mutation := newJobMutation(c.config, OpUpdate)
	return &JobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobClient) UpdateOne(j *Job) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJob(j))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobClient) UpdateOneID(id uuid.UUID) *JobUpdateOne {
	mutation := newJobMutation(c.config, OpUpdateOne, withJobID(id))
	return &JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Job.
func (c *JobClient) Delete() *JobDelete {
	mutation := newJobMutation(c.config, OpDelete)
	return &JobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobClient) DeleteOne(j *Job) *JobDeleteOne {
	return c.DeleteOneID(j.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobClient) DeleteOneID(id uuid.UUID) *JobDeleteOne {
	builder := c.Delete().Where(job.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobDeleteOne{builder}
}

// Query returns a query builder for Job.
func (c *JobClient) Query() *JobQuery {
	return &JobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJob},
		inters: c.Interceptors(),
	}
}

// Get returns a Job entity by its id.
func (c *JobClient) Get(ctx context.Context, id uuid.UUID) (*Job, error) {
	return c.Query().Where(job.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobClient) GetX(ctx context.Context, id uuid.UUID) *Job {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmployer queries the employer edge of a Job.
func (c *JobClient) QueryEmployer(j *Job) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := j.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, job.EmployerTable, job.EmployerColumn),
		)
		fromV = sqlgraph.Neighbors(j.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplications queries the applications edge of a Job.
func (c *JobClient) QueryApplications(j *Job) *JobApplicationQuery {
	query := (&JobApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := j.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(job.Table, job.FieldID, id),
			sqlgraph.To(jobapplication.Table, jobapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, job.ApplicationsTable, job.ApplicationsColumn),
		)
		fromV = sqlgraph.Neighbors(j.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobClient) Hooks() []Hook {
	return c.hooks.Job
}

// Interceptors returns the client interceptors.
func (c *JobClient) Interceptors() []Interceptor {
	return c.inters.Job
}

func (c *JobClient) mutate(ctx context.Context, m *JobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Job mutation op: %q", m.Op())
	}
}

// JobApplicationClient is a client for the JobApplication schema.
type JobApplicationClient struct {
	config
}

// NewJobApplicationClient returns a client for the JobApplication from the given config.
func NewJobApplicationClient(c config) *JobApplicationClient {
	return &JobApplicationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `jobapplication.Hooks(f(g(h())))`.
func (c *JobApplicationClient) Use(hooks ...Hook) {
	c.hooks.JobApplication = append(c.hooks.JobApplication, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `jobapplication.Intercept(f(g(h())))`.
func (c *JobApplicationClient) Intercept(interceptors ...Interceptor) {
	c.inters.JobApplication = append(c.inters.JobApplication, interceptors...)
}

// Create returns a builder for creating a JobApplication entity.
func (c *JobApplicationClient) Create() *JobApplicationCreate {
	mutation := newJobApplicationMutation(c.config, OpCreate)
	return &JobApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of JobApplication entities.
func (c *JobApplicationClient) CreateBulk(builders ...*JobApplicationCreate) *JobApplicationCreateBulk {
	return &JobApplicationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *JobApplicationClient) MapCreateBulk(slice any, setFunc func(*JobApplicationCreate, int)) *JobApplicationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &JobApplicationCreateBulk{err: fmt.Errorf("calling to JobApplicationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*JobApplicationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &JobApplicationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for JobApplication.
func (c *JobApplicationClient) Update() *JobApplicationUpdate {
	mutation := newJobApplicationMutation(c.config, OpUpdate)
	return &JobApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *JobApplicationClient) UpdateOne(ja *JobApplication) *JobApplicationUpdateOne {
	mutation := newJobApplicationMutation(c.config, OpUpdateOne, withJobApplication(ja))
	return &JobApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *JobApplicationClient) UpdateOneID(id uuid.UUID) *JobApplicationUpdateOne {
	mutation := newJobApplicationMutation(c.config, OpUpdateOne, withJobApplicationID(id))
	return &JobApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for JobApplication.
func (c *JobApplicationClient) Delete() *JobApplicationDelete {
	mutation := newJobApplicationMutation(c.config, OpDelete)
	return &JobApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *JobApplicationClient) DeleteOne(ja *JobApplication) *JobApplicationDeleteOne {
	return c.DeleteOneID(ja.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *JobApplicationClient) DeleteOneID(id uuid.UUID) *JobApplicationDeleteOne {
	builder := c.Delete().Where(jobapplication.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &JobApplicationDeleteOne{builder}
}

// Query returns a query builder for JobApplication.
func (c *JobApplicationClient) Query() *JobApplicationQuery {
	return &JobApplicationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeJobApplication},
		inters: c.Interceptors(),
	}
}

// Get returns a JobApplication entity by its id.
func (c *JobApplicationClient) Get(ctx context.Context, id uuid.UUID) (*JobApplication, error) {
	return c.Query().Where(jobapplication.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *JobApplicationClient) GetX(ctx context.Context, id uuid.UUID) *JobApplication {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCandidate queries the candidate edge of a JobApplication.
func (c *JobApplicationClient) QueryCandidate(ja *JobApplication) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ja.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobapplication.Table, jobapplication.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobapplication.CandidateTable, jobapplication.CandidateColumn),
		)
		fromV = sqlgraph.Neighbors(ja.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJob queries the job edge of a JobApplication.
func (c *JobApplicationClient) QueryJob(ja *JobApplication) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ja.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobapplication.Table, jobapplication.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, jobapplication.JobTable, jobapplication.JobColumn),
		)
		fromV = sqlgraph.Neighbors(ja.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubmittedTest queries the submitted_test edge of a JobApplication.
func (c *JobApplicationClient) QuerySubmittedTest(ja *JobApplication) *SubmittedTestQuery {
	query := (&SubmittedTestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := ja.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(jobapplication.Table, jobapplication.FieldID, id),
			sqlgraph.To(submittedtest.Table, submittedtest.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, jobapplication.SubmittedTestTable, jobapplication.SubmittedTestColumn),
		)
		fromV = sqlgraph.Neighbors(ja.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *JobApplicationClient) Hooks() []Hook {
	return c.hooks.JobApplication
}

// Interceptors returns the client interceptors.
func (c *JobApplicationClient) Interceptors() []Interceptor {
	return c.inters.JobApplication
}

func (c *JobApplicationClient) mutate(ctx context.Context, m *JobApplicationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&JobApplicationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&JobApplicationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&JobApplicationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&JobApplicationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown JobApplication mutation op: %q", m.Op())
	}
}

// SubmittedTestClient is a client for the SubmittedTest schema.
type SubmittedTestClient struct {
	config
}

// NewSubmittedTestClient returns a client for the SubmittedTest from the given config.
func NewSubmittedTestClient(c config) *SubmittedTestClient {
	return &SubmittedTestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `submittedtest.Hooks(f(g(h())))`.
func (c *SubmittedTestClient) Use(hooks ...Hook) {
	c.hooks.SubmittedTest = append(c.hooks.SubmittedTest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `submittedtest.Intercept(f(g(h())))`.
func (c *SubmittedTestClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubmittedTest = append(c.inters.SubmittedTest, interceptors...)
}

// Create returns a builder for creating a SubmittedTest entity.
func (c *SubmittedTestClient) Create() *SubmittedTestCreate {
	mutation := newSubmittedTestMutation(c.config, OpCreate)
	return &SubmittedTestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubmittedTest entities.
func (c *SubmittedTestClient) CreateBulk(builders ...*SubmittedTestCreate) *SubmittedTestCreateBulk {
	return &SubmittedTestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubmittedTestClient) MapCreateBulk(slice any, setFunc func(*SubmittedTestCreate, int)) *SubmittedTestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubmittedTestCreateBulk{err: fmt.Errorf("calling to SubmittedTestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubmittedTestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubmittedTestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubmittedTest.
func (c *SubmittedTestClient) Update() *SubmittedTestUpdate {
	mutation := newSubmittedTestMutation(c.config, OpUpdate)
	return &SubmittedTestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubmittedTestClient) UpdateOne(st *SubmittedTest) *SubmittedTestUpdateOne {
	mutation := newSubmittedTestMutation(c.config, OpUpdateOne, withSubmittedTest(st))
	return &SubmittedTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubmittedTestClient) UpdateOneID(id uuid.UUID) *SubmittedTestUpdateOne {
	mutation := newSubmittedTestMutation(c.config, OpUpdateOne, withSubmittedTestID(id))
	return &SubmittedTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubmittedTest.
func (c *SubmittedTestClient) Delete() *SubmittedTestDelete {
	mutation := newSubmittedTestMutation(c.config, OpDelete)
	return &SubmittedTestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubmittedTestClient) DeleteOne(st *SubmittedTest) *SubmittedTestDeleteOne {
	return c.DeleteOneID(st.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubmittedTestClient) DeleteOneID(id uuid.UUID) *SubmittedTestDeleteOne {
	builder := c.Delete().Where(submittedtest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubmittedTestDeleteOne{builder}
}

// Query returns a query builder for SubmittedTest.
func (c *SubmittedTestClient) Query() *SubmittedTestQuery {
	return &SubmittedTestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubmittedTest},
		inters: c.Interceptors(),
	}
}

// Get returns a SubmittedTest entity by its id.
func (c *SubmittedTestClient) Get(ctx context.Context, id uuid.UUID) (*SubmittedTest, error) {
	return c.Query().Where(submittedtest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubmittedTestClient) GetX(ctx context.Context, id uuid.UUID) *SubmittedTest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryApplication queries the application edge of a SubmittedTest.
func (c *SubmittedTestClient) QueryApplication(st *SubmittedTest) *JobApplicationQuery {
	query := (&JobApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := st.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(submittedtest.Table, submittedtest.FieldID, id),
			sqlgraph.To(jobapplication.Table, jobapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, submittedtest.ApplicationTable, submittedtest.ApplicationColumn),
		)
		fromV = sqlgraph.Neighbors(st.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubmittedTestClient) Hooks() []Hook {
	return c.hooks.SubmittedTest
}

// Interceptors returns the client interceptors.
func (c *SubmittedTestClient) Interceptors() []Interceptor {
	return c.inters.SubmittedTest
}

func (c *SubmittedTestClient) mutate(ctx context.Context, m *SubmittedTestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubmittedTestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubmittedTestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubmittedTestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubmittedTestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubmittedTest mutation op: %q", m.Op())
	}
}

// SubscriptionClient is a client for the Subscription schema.
type SubscriptionClient struct {
	config
}

// NewSubscriptionClient returns a client for the Subscription from the given config.
func NewSubscriptionClient(c config) *SubscriptionClient {
	return &SubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscription.Hooks(f(g(h())))`.
func (c *SubscriptionClient) Use(hooks ...Hook) {
	c.hooks.Subscription = append(c.hooks.Subscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscription.Intercept(f(g(h())))`.
func (c *SubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Subscription = append(c.inters.Subscription, interceptors...)
}

// Create returns a builder for creating a Subscription entity.
func (c *SubscriptionClient) Create() *SubscriptionCreate {
	mutation := newSubscriptionMutation(c.config, OpCreate)
	return &SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Subscription entities.
func (c *SubscriptionClient) CreateBulk(builders ...*SubscriptionCreate) *SubscriptionCreateBulk {
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionClient) MapCreateBulk(slice any, setFunc func(*SubscriptionCreate, int)) *SubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionCreateBulk{err: fmt.Errorf("calling to SubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Subscription.
func (c *SubscriptionClient) Update() *SubscriptionUpdate {
	mutation := newSubscriptionMutation(c.config, OpUpdate)
	return &SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionClient) UpdateOne(s *Subscription) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscription(s))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionClient) UpdateOneID(id uuid.UUID) *SubscriptionUpdateOne {
	mutation := newSubscriptionMutation(c.config, OpUpdateOne, withSubscriptionID(id))
	return &SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Subscription.
func (c *SubscriptionClient) Delete() *SubscriptionDelete {
	mutation := newSubscriptionMutation(c.config, OpDelete)
	return &SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionClient) DeleteOne(s *Subscription) *SubscriptionDeleteOne {
	return c.DeleteOneID(s.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionClient) DeleteOneID(id uuid.UUID) *SubscriptionDeleteOne {
	builder := c.Delete().Where(subscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionDeleteOne{builder}
}

// Query returns a query builder for Subscription.
func (c *SubscriptionClient) Query() *SubscriptionQuery {
	return &SubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a Subscription entity by its id.
func (c *SubscriptionClient) Get(ctx context.Context, id uuid.UUID) (*Subscription, error) {
	return c.Query().Where(subscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionClient) GetX(ctx context.Context, id uuid.UUID) *Subscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEmployer queries the employer edge of a Subscription.
func (c *SubscriptionClient) QueryEmployer(s *Subscription) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := s.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscription.Table, subscription.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, subscription.EmployerTable, subscription.EmployerColumn),
		)
		fromV = sqlgraph.Neighbors(s.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHistory queries the history edge of a Subscription.
func (c *SubscriptionClient) QueryHistory(s *Subscription) *SubscriptionHistoryQuery {
	query := (&SubscriptionHistoryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := s.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscription.Table, subscription.FieldID, id),
			sqlgraph.To(subscriptionhistory.Table, subscriptionhistory.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, subscription.HistoryTable, subscription.HistoryColumn),
		)
		fromV = sqlgraph.Neighbors(s.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubscriptionClient) Hooks() []Hook {
	return c.hooks.Subscription
}

// Interceptors returns the client interceptors.
func (c *SubscriptionClient) Interceptors() []Interceptor {
	return c.inters.Subscription
}

func (c *SubscriptionClient) mutate(ctx context.Context, m *SubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Subscription mutation op: %q", m.Op())
	}
}

// SubscriptionHistoryClient is a client for the SubscriptionHistory schema.
type SubscriptionHistoryClient struct {
	config
}

// NewSubscriptionHistoryClient returns a client for the SubscriptionHistory from the given config.
func NewSubscriptionHistoryClient(c config) *SubscriptionHistoryClient {
	return &SubscriptionHistoryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `subscriptionhistory.Hooks(f(g(h())))`.
func (c *SubscriptionHistoryClient) Use(hooks ...Hook) {
	c.hooks.SubscriptionHistory = append(c.hooks.SubscriptionHistory, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `subscriptionhistory.Intercept(f(g(h())))`.
func (c *SubscriptionHistoryClient) Intercept(interceptors ...Interceptor) {
	c.inters.SubscriptionHistory = append(c.inters.SubscriptionHistory, interceptors...)
}

// Create returns a builder for creating a SubscriptionHistory entity.
func (c *SubscriptionHistoryClient) Create() *SubscriptionHistoryCreate {
	mutation := newSubscriptionHistoryMutation(c.config, OpCreate)
	return &SubscriptionHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of SubscriptionHistory entities.
func (c *SubscriptionHistoryClient) CreateBulk(builders ...*SubscriptionHistoryCreate) *SubscriptionHistoryCreateBulk {
	return &SubscriptionHistoryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SubscriptionHistoryClient) MapCreateBulk(slice any, setFunc func(*SubscriptionHistoryCreate, int)) *SubscriptionHistoryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SubscriptionHistoryCreateBulk{err: fmt.Errorf("calling to SubscriptionHistoryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SubscriptionHistoryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SubscriptionHistoryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for SubscriptionHistory.
func (c *SubscriptionHistoryClient) Update() *SubscriptionHistoryUpdate {
	mutation := newSubscriptionHistoryMutation(c.config, OpUpdate)
	return &SubscriptionHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SubscriptionHistoryClient) UpdateOne(sh *SubscriptionHistory) *SubscriptionHistoryUpdateOne {
	mutation := newSubscriptionHistoryMutation(c.config, OpUpdateOne, withSubscriptionHistory(sh))
	return &SubscriptionHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SubscriptionHistoryClient) UpdateOneID(id uuid.UUID) *SubscriptionHistoryUpdateOne {
	mutation := newSubscriptionHistoryMutation(c.config, OpUpdateOne, withSubscriptionHistoryID(id))
	return &SubscriptionHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for SubscriptionHistory.
func (c *SubscriptionHistoryClient) Delete() *SubscriptionHistoryDelete {
	mutation := newSubscriptionHistoryMutation(c.config, OpDelete)
	return &SubscriptionHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SubscriptionHistoryClient) DeleteOne(sh *SubscriptionHistory) *SubscriptionHistoryDeleteOne {
	return c.DeleteOneID(sh.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SubscriptionHistoryClient) DeleteOneID(id uuid.UUID) *SubscriptionHistoryDeleteOne {
	builder := c.Delete().Where(subscriptionhistory.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SubscriptionHistoryDeleteOne{builder}
}

// Query returns a query builder for SubscriptionHistory.
func (c *SubscriptionHistoryClient) Query() *SubscriptionHistoryQuery {
	return &SubscriptionHistoryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSubscriptionHistory},
		inters: c.Interceptors(),
	}
}

// Get returns a SubscriptionHistory entity by its id.
func (c *SubscriptionHistoryClient) Get(ctx context.Context, id uuid.UUID) (*SubscriptionHistory, error) {
	return c.Query().Where(subscriptionhistory.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SubscriptionHistoryClient) GetX(ctx context.Context, id uuid.UUID) *SubscriptionHistory {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QuerySubscription queries the subscription edge of a SubscriptionHistory.
func (c *SubscriptionHistoryClient) QuerySubscription(sh *SubscriptionHistory) *SubscriptionQuery {
	query := (&SubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := sh.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(subscriptionhistory.Table, subscriptionhistory.FieldID, id),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, subscriptionhistory.SubscriptionTable, subscriptionhistory.SubscriptionColumn),
		)
		fromV = sqlgraph.Neighbors(sh.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *SubscriptionHistoryClient) Hooks() []Hook {
	return c.hooks.SubscriptionHistory
}

// Interceptors returns the client interceptors.
func (c *SubscriptionHistoryClient) Interceptors() []Interceptor {
	return c.inters.SubscriptionHistory
}

func (c *SubscriptionHistoryClient) mutate(ctx context.Context, m *SubscriptionHistoryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SubscriptionHistoryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SubscriptionHistoryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SubscriptionHistoryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SubscriptionHistoryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown SubscriptionHistory mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJobsAsEmployer queries the jobsAsEmployer edge of a User.
func (c *UserClient) QueryJobsAsEmployer(u *User) *JobQuery {
	query := (&JobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(job.Table, job.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.JobsAsEmployerTable, user.JobsAsEmployerColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscription queries the subscription edge of a User.
func (c *UserClient) QuerySubscription(u *User) *SubscriptionQuery {
	query := (&SubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(subscription.Table, subscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.SubscriptionTable, user.SubscriptionColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryApplicationsAsCandidate queries the applicationsAsCandidate edge of a User.
func (c *UserClient) QueryApplicationsAsCandidate(u *User) *JobApplicationQuery {
	query := (&JobApplicationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := u.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(jobapplication.Table, jobapplication.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.ApplicationsAsCandidateTable, user.ApplicationsAsCandidateColumn),
		)
		fromV = sqlgraph.Neighbors(u.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CreditPackage, Job, JobApplication, SubmittedTest, Subscription,
		SubscriptionHistory, User []ent.Hook
	}
	inters struct {
		CreditPackage, Job, JobApplication, SubmittedTest, Subscription,
		SubscriptionHistory, User []ent.Interceptor
	}
)
