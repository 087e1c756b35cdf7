// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"heatwatch.io/heatwatch/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"heatwatch.io/heatwatch/ent/auditlog"
	"heatwatch.io/heatwatch/ent/claim"
	"heatwatch.io/heatwatch/ent/datasource"
	"heatwatch.io/heatwatch/ent/deadletter"
	"heatwatch.io/heatwatch/ent/event"
	"heatwatch.io/heatwatch/ent/stateaggregation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Claim is the client for interacting with the Claim builders.
	Claim *ClaimClient
	// DataSource is the client for interacting with the DataSource builders.
	DataSource *DataSourceClient
	// DeadLetter is the client for interacting with the DeadLetter builders.
	DeadLetter *DeadLetterClient
	// Event is the client for interacting with the Event builders.
	Event *EventClient
	// StateAggregation is the client for interacting with the StateAggregation builders.
	StateAggregation *StateAggregationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Claim = NewClaimClient(c.config)
	c.DataSource = NewDataSourceClient(c.config)
	c.DeadLetter = NewDeadLetterClient(c.config)
	c.Event = NewEventClient(c.config)
	c.StateAggregation = NewStateAggregationClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		AuditLog:         NewAuditLogClient(cfg),
		Claim:            NewClaimClient(cfg),
		DataSource:       NewDataSourceClient(cfg),
		DeadLetter:       NewDeadLetterClient(cfg),
		Event:            NewEventClient(cfg),
		StateAggregation: NewStateAggregationClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		AuditLog:         NewAuditLogClient(cfg),
		Claim:            NewClaimClient(cfg),
		DataSource:       NewDataSourceClient(cfg),
		DeadLetter:       NewDeadLetterClient(cfg),
		Event:            NewEventClient(cfg),
		StateAggregation: NewStateAggregationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
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
		c.AuditLog, c.Claim, c.DataSource, c.DeadLetter, c.Event, c.StateAggregation,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.Claim, c.DataSource, c.DeadLetter, c.Event, c.StateAggregation,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *ClaimMutation:
		return c.Claim.mutate(ctx, m)
	case *DataSourceMutation:
		return c.DataSource.mutate(ctx, m)
	case *DeadLetterMutation:
		return c.DeadLetter.mutate(ctx, m)
	case *EventMutation:
		return c.Event.mutate(ctx, m)
	case *StateAggregationMutation:
		return c.StateAggregation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// ClaimClient is a client for the Claim schema.
type ClaimClient struct {
	config
}

// NewClaimClient returns a client for the Claim from the given config.
func NewClaimClient(c config) *ClaimClient {
	return &ClaimClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claim.Hooks(f(g(h())))`.
func (c *ClaimClient) Use(hooks ...Hook) {
	c.hooks.Claim = append(c.hooks.Claim, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claim.Intercept(f(g(h())))`.
func (c *ClaimClient) Intercept(interceptors ...Interceptor) {
	c.inters.Claim = append(c.inters.Claim, interceptors...)
}

// Create returns a builder for creating a Claim entity.
func (c *ClaimClient) Create() *ClaimCreate {
	mutation := newClaimMutation(c.config, OpCreate)
	return &ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Claim entities.
func (c *ClaimClient) CreateBulk(builders ...*ClaimCreate) *ClaimCreateBulk {
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimClient) MapCreateBulk(slice any, setFunc func(*ClaimCreate, int)) *ClaimCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimCreateBulk{err: fmt.Errorf("calling to ClaimClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Claim.
func (c *ClaimClient) Update() *ClaimUpdate {
	mutation := newClaimMutation(c.config, OpUpdate)
	return &ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimClient) UpdateOne(_m *Claim) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaim(_m))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimClient) UpdateOneID(id string) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaimID(id))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Claim.
func (c *ClaimClient) Delete() *ClaimDelete {
	mutation := newClaimMutation(c.config, OpDelete)
	return &ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimClient) DeleteOne(_m *Claim) *ClaimDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimClient) DeleteOneID(id string) *ClaimDeleteOne {
	builder := c.Delete().Where(claim.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimDeleteOne{builder}
}

// Query returns a query builder for Claim.
func (c *ClaimClient) Query() *ClaimQuery {
	return &ClaimQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaim},
		inters: c.Interceptors(),
	}
}

// Get returns a Claim entity by its id.
func (c *ClaimClient) Get(ctx context.Context, id string) (*Claim, error) {
	return c.Query().Where(claim.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimClient) GetX(ctx context.Context, id string) *Claim {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClaimClient) Hooks() []Hook {
	return c.hooks.Claim
}

// Interceptors returns the client interceptors.
func (c *ClaimClient) Interceptors() []Interceptor {
	return c.inters.Claim
}

func (c *ClaimClient) mutate(ctx context.Context, m *ClaimMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Claim mutation op: %q", m.Op())
	}
}

// DataSourceClient is a client for the DataSource schema.
type DataSourceClient struct {
	config
}

// NewDataSourceClient returns a client for the DataSource from the given config.
func NewDataSourceClient(c config) *DataSourceClient {
	return &DataSourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `datasource.Hooks(f(g(h())))`.
func (c *DataSourceClient) Use(hooks ...Hook) {
	c.hooks.DataSource = append(c.hooks.DataSource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `datasource.Intercept(f(g(h())))`.
func (c *DataSourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.DataSource = append(c.inters.DataSource, interceptors...)
}

// Create returns a builder for creating a DataSource entity.
func (c *DataSourceClient) Create() *DataSourceCreate {
	mutation := newDataSourceMutation(c.config, OpCreate)
	return &DataSourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DataSource entities.
func (c *DataSourceClient) CreateBulk(builders ...*DataSourceCreate) *DataSourceCreateBulk {
	return &DataSourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DataSourceClient) MapCreateBulk(slice any, setFunc func(*DataSourceCreate, int)) *DataSourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DataSourceCreateBulk{err: fmt.Errorf("calling to DataSourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DataSourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DataSourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DataSource.
func (c *DataSourceClient) Update() *DataSourceUpdate {
	mutation := newDataSourceMutation(c.config, OpUpdate)
	return &DataSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DataSourceClient) UpdateOne(_m *DataSource) *DataSourceUpdateOne {
	mutation := newDataSourceMutation(c.config, OpUpdateOne, withDataSource(_m))
	return &DataSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DataSourceClient) UpdateOneID(id string) *DataSourceUpdateOne {
	mutation := newDataSourceMutation(c.config, OpUpdateOne, withDataSourceID(id))
	return &DataSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DataSource.
func (c *DataSourceClient) Delete() *DataSourceDelete {
	mutation := newDataSourceMutation(c.config, OpDelete)
	return &DataSourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DataSourceClient) DeleteOne(_m *DataSource) *DataSourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DataSourceClient) DeleteOneID(id string) *DataSourceDeleteOne {
	builder := c.Delete().Where(datasource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DataSourceDeleteOne{builder}
}

// Query returns a query builder for DataSource.
func (c *DataSourceClient) Query() *DataSourceQuery {
	return &DataSourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDataSource},
		inters: c.Interceptors(),
	}
}

// Get returns a DataSource entity by its id.
func (c *DataSourceClient) Get(ctx context.Context, id string) (*DataSource, error) {
	return c.Query().Where(datasource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DataSourceClient) GetX(ctx context.Context, id string) *DataSource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DataSourceClient) Hooks() []Hook {
	return c.hooks.DataSource
}

// Interceptors returns the client interceptors.
func (c *DataSourceClient) Interceptors() []Interceptor {
	return c.inters.DataSource
}

func (c *DataSourceClient) mutate(ctx context.Context, m *DataSourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DataSourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DataSourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DataSourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DataSourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DataSource mutation op: %q", m.Op())
	}
}

// DeadLetterClient is a client for the DeadLetter schema.
type DeadLetterClient struct {
	config
}

// NewDeadLetterClient returns a client for the DeadLetter from the given config.
func NewDeadLetterClient(c config) *DeadLetterClient {
	return &DeadLetterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `deadletter.Hooks(f(g(h())))`.
func (c *DeadLetterClient) Use(hooks ...Hook) {
	c.hooks.DeadLetter = append(c.hooks.DeadLetter, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `deadletter.Intercept(f(g(h())))`.
func (c *DeadLetterClient) Intercept(interceptors ...Interceptor) {
	c.inters.DeadLetter = append(c.inters.DeadLetter, interceptors...)
}

// Create returns a builder for creating a DeadLetter entity.
func (c *DeadLetterClient) Create() *DeadLetterCreate {
	mutation := newDeadLetterMutation(c.config, OpCreate)
	return &DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DeadLetter entities.
func (c *DeadLetterClient) CreateBulk(builders ...*DeadLetterCreate) *DeadLetterCreateBulk {
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DeadLetterClient) MapCreateBulk(slice any, setFunc func(*DeadLetterCreate, int)) *DeadLetterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DeadLetterCreateBulk{err: fmt.Errorf("calling to DeadLetterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DeadLetterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DeadLetterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DeadLetter.
func (c *DeadLetterClient) Update() *DeadLetterUpdate {
	mutation := newDeadLetterMutation(c.config, OpUpdate)
	return &DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DeadLetterClient) UpdateOne(_m *DeadLetter) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetter(_m))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DeadLetterClient) UpdateOneID(id string) *DeadLetterUpdateOne {
	mutation := newDeadLetterMutation(c.config, OpUpdateOne, withDeadLetterID(id))
	return &DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DeadLetter.
func (c *DeadLetterClient) Delete() *DeadLetterDelete {
	mutation := newDeadLetterMutation(c.config, OpDelete)
	return &DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DeadLetterClient) DeleteOne(_m *DeadLetter) *DeadLetterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DeadLetterClient) DeleteOneID(id string) *DeadLetterDeleteOne {
	builder := c.Delete().Where(deadletter.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DeadLetterDeleteOne{builder}
}

// Query returns a query builder for DeadLetter.
func (c *DeadLetterClient) Query() *DeadLetterQuery {
	return &DeadLetterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDeadLetter},
		inters: c.Interceptors(),
	}
}

// Get returns a DeadLetter entity by its id.
func (c *DeadLetterClient) Get(ctx context.Context, id string) (*DeadLetter, error) {
	return c.Query().Where(deadletter.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DeadLetterClient) GetX(ctx context.Context, id string) *DeadLetter {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DeadLetterClient) Hooks() []Hook {
	return c.hooks.DeadLetter
}

// Interceptors returns the client interceptors.
func (c *DeadLetterClient) Interceptors() []Interceptor {
	return c.inters.DeadLetter
}

func (c *DeadLetterClient) mutate(ctx context.Context, m *DeadLetterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DeadLetterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DeadLetterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DeadLetterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DeadLetterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DeadLetter mutation op: %q", m.Op())
	}
}

// EventClient is a client for the Event schema.
type EventClient struct {
	config
}

// NewEventClient returns a client for the Event from the given config.
func NewEventClient(c config) *EventClient {
	return &EventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `event.Hooks(f(g(h())))`.
func (c *EventClient) Use(hooks ...Hook) {
	c.hooks.Event = append(c.hooks.Event, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `event.Intercept(f(g(h())))`.
func (c *EventClient) Intercept(interceptors ...Interceptor) {
	c.inters.Event = append(c.inters.Event, interceptors...)
}

// Create returns a builder for creating a Event entity.
func (c *EventClient) Create() *EventCreate {
	mutation := newEventMutation(c.config, OpCreate)
	return &EventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Event entities.
func (c *EventClient) CreateBulk(builders ...*EventCreate) *EventCreateBulk {
	return &EventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EventClient) MapCreateBulk(slice any, setFunc func(*EventCreate, int)) *EventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EventCreateBulk{err: fmt.Errorf("calling to EventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Event.
func (c *EventClient) Update() *EventUpdate {
	mutation := newEventMutation(c.config, OpUpdate)
	return &EventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EventClient) UpdateOne(_m *Event) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEvent(_m))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EventClient) UpdateOneID(id string) *EventUpdateOne {
	mutation := newEventMutation(c.config, OpUpdateOne, withEventID(id))
	return &EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Event.
func (c *EventClient) Delete() *EventDelete {
	mutation := newEventMutation(c.config, OpDelete)
	return &EventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EventClient) DeleteOne(_m *Event) *EventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EventClient) DeleteOneID(id string) *EventDeleteOne {
	builder := c.Delete().Where(event.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EventDeleteOne{builder}
}

// Query returns a query builder for Event.
func (c *EventClient) Query() *EventQuery {
	return &EventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a Event entity by its id.
func (c *EventClient) Get(ctx context.Context, id string) (*Event, error) {
	return c.Query().Where(event.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EventClient) GetX(ctx context.Context, id string) *Event {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EventClient) Hooks() []Hook {
	return c.hooks.Event
}

// Interceptors returns the client interceptors.
func (c *EventClient) Interceptors() []Interceptor {
	return c.inters.Event
}

func (c *EventClient) mutate(ctx context.Context, m *EventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Event mutation op: %q", m.Op())
	}
}

// StateAggregationClient is a client for the StateAggregation schema.
type StateAggregationClient struct {
	config
}

// NewStateAggregationClient returns a client for the StateAggregation from the given config.
func NewStateAggregationClient(c config) *StateAggregationClient {
	return &StateAggregationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stateaggregation.Hooks(f(g(h())))`.
func (c *StateAggregationClient) Use(hooks ...Hook) {
	c.hooks.StateAggregation = append(c.hooks.StateAggregation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stateaggregation.Intercept(f(g(h())))`.
func (c *StateAggregationClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateAggregation = append(c.inters.StateAggregation, interceptors...)
}

// Create returns a builder for creating a StateAggregation entity.
func (c *StateAggregationClient) Create() *StateAggregationCreate {
	mutation := newStateAggregationMutation(c.config, OpCreate)
	return &StateAggregationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateAggregation entities.
func (c *StateAggregationClient) CreateBulk(builders ...*StateAggregationCreate) *StateAggregationCreateBulk {
	return &StateAggregationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateAggregationClient) MapCreateBulk(slice any, setFunc func(*StateAggregationCreate, int)) *StateAggregationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateAggregationCreateBulk{err: fmt.Errorf("calling to StateAggregationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateAggregationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateAggregationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateAggregation.
func (c *StateAggregationClient) Update() *StateAggregationUpdate {
	mutation := newStateAggregationMutation(c.config, OpUpdate)
	return &StateAggregationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateAggregationClient) UpdateOne(_m *StateAggregation) *StateAggregationUpdateOne {
	mutation := newStateAggregationMutation(c.config, OpUpdateOne, withStateAggregation(_m))
	return &StateAggregationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateAggregationClient) UpdateOneID(id string) *StateAggregationUpdateOne {
	mutation := newStateAggregationMutation(c.config, OpUpdateOne, withStateAggregationID(id))
	return &StateAggregationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateAggregation.
func (c *StateAggregationClient) Delete() *StateAggregationDelete {
	mutation := newStateAggregationMutation(c.config, OpDelete)
	return &StateAggregationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateAggregationClient) DeleteOne(_m *StateAggregation) *StateAggregationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateAggregationClient) DeleteOneID(id string) *StateAggregationDeleteOne {
	builder := c.Delete().Where(stateaggregation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateAggregationDeleteOne{builder}
}

// Query returns a query builder for StateAggregation.
func (c *StateAggregationClient) Query() *StateAggregationQuery {
	return &StateAggregationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateAggregation},
		inters: c.Interceptors(),
	}
}

// Get returns a StateAggregation entity by its id.
func (c *StateAggregationClient) Get(ctx context.Context, id string) (*StateAggregation, error) {
	return c.Query().Where(stateaggregation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateAggregationClient) GetX(ctx context.Context, id string) *StateAggregation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateAggregationClient) Hooks() []Hook {
	return c.hooks.StateAggregation
}

// Interceptors returns the client interceptors.
func (c *StateAggregationClient) Interceptors() []Interceptor {
	return c.inters.StateAggregation
}

func (c *StateAggregationClient) mutate(ctx context.Context, m *StateAggregationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateAggregationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateAggregationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateAggregationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateAggregationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateAggregation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, Claim, DataSource, DeadLetter, Event, StateAggregation []ent.Hook
	}
	inters struct {
		AuditLog, Claim, DataSource, DeadLetter, Event,
		StateAggregation []ent.Interceptor
	}
)
