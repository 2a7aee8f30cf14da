// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/parsewell/invoice-parser/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/parsewell/invoice-parser/gen/ent/invoicerecord"
	"github.com/parsewell/invoice-parser/gen/ent/parsejob"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// InvoiceRecord is the client for interacting with the InvoiceRecord builders.
	InvoiceRecord *InvoiceRecordClient
	// ParseJob is the client for interacting with the ParseJob builders.
	ParseJob *ParseJobClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.InvoiceRecord = NewInvoiceRecordClient(c.config)
	c.ParseJob = NewParseJobClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		InvoiceRecord: NewInvoiceRecordClient(cfg),
		ParseJob:      NewParseJobClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		InvoiceRecord: NewInvoiceRecordClient(cfg),
		ParseJob:      NewParseJobClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		InvoiceRecord.
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
	c.InvoiceRecord.Use(hooks...)
	c.ParseJob.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.InvoiceRecord.Intercept(interceptors...)
	c.ParseJob.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *InvoiceRecordMutation:
		return c.InvoiceRecord.mutate(ctx, m)
	case *ParseJobMutation:
		return c.ParseJob.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// InvoiceRecordClient is a client for the InvoiceRecord schema.
type InvoiceRecordClient struct {
	config
}

// NewInvoiceRecordClient returns a client for the InvoiceRecord from the given config.
func NewInvoiceRecordClient(c config) *InvoiceRecordClient {
	return &InvoiceRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoicerecord.Hooks(f(g(h())))`.
func (c *InvoiceRecordClient) Use(hooks ...Hook) {
	c.hooks.InvoiceRecord = append(c.hooks.InvoiceRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoicerecord.Intercept(f(g(h())))`.
func (c *InvoiceRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.InvoiceRecord = append(c.inters.InvoiceRecord, interceptors...)
}

// Create returns a builder for creating a InvoiceRecord entity.
func (c *InvoiceRecordClient) Create() *InvoiceRecordCreate {
	mutation := newInvoiceRecordMutation(c.config, OpCreate)
	return &InvoiceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of InvoiceRecord entities.
func (c *InvoiceRecordClient) CreateBulk(builders ...*InvoiceRecordCreate) *InvoiceRecordCreateBulk {
	return &InvoiceRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceRecordClient) MapCreateBulk(slice any, setFunc func(*InvoiceRecordCreate, int)) *InvoiceRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceRecordCreateBulk{err: fmt.Errorf("calling to InvoiceRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for InvoiceRecord.
func (c *InvoiceRecordClient) Update() *InvoiceRecordUpdate {
	mutation := newInvoiceRecordMutation(c.config, OpUpdate)
	return &InvoiceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceRecordClient) UpdateOne(_m *InvoiceRecord) *InvoiceRecordUpdateOne {
	mutation := newInvoiceRecordMutation(c.config, OpUpdateOne, withInvoiceRecord(_m))
	return &InvoiceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceRecordClient) UpdateOneID(id uuid.UUID) *InvoiceRecordUpdateOne {
	mutation := newInvoiceRecordMutation(c.config, OpUpdateOne, withInvoiceRecordID(id))
	return &InvoiceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for InvoiceRecord.
func (c *InvoiceRecordClient) Delete() *InvoiceRecordDelete {
	mutation := newInvoiceRecordMutation(c.config, OpDelete)
	return &InvoiceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceRecordClient) DeleteOne(_m *InvoiceRecord) *InvoiceRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceRecordClient) DeleteOneID(id uuid.UUID) *InvoiceRecordDeleteOne {
	builder := c.Delete().Where(invoicerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceRecordDeleteOne{builder}
}

// Query returns a query builder for InvoiceRecord.
func (c *InvoiceRecordClient) Query() *InvoiceRecordQuery {
	return &InvoiceRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoiceRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a InvoiceRecord entity by its id.
func (c *InvoiceRecordClient) Get(ctx context.Context, id uuid.UUID) (*InvoiceRecord, error) {
	return c.Query().Where(invoicerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceRecordClient) GetX(ctx context.Context, id uuid.UUID) *InvoiceRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a InvoiceRecord.
func (c *InvoiceRecordClient) QueryJob(_m *InvoiceRecord) *ParseJobQuery {
	query := (&ParseJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(invoicerecord.Table, invoicerecord.FieldID, id),
			sqlgraph.To(parsejob.Table, parsejob.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, invoicerecord.JobTable, invoicerecord.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvoiceRecordClient) Hooks() []Hook {
	return c.hooks.InvoiceRecord
}

// Interceptors returns the client interceptors.
func (c *InvoiceRecordClient) Interceptors() []Interceptor {
	return c.inters.InvoiceRecord
}

func (c *InvoiceRecordClient) mutate(ctx context.Context, m *InvoiceRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown InvoiceRecord mutation op: %q", m.Op())
	}
}

// ParseJobClient is a client for the ParseJob schema.
type ParseJobClient struct {
	config
}

// NewParseJobClient returns a client for the ParseJob from the given config.
func NewParseJobClient(c config) *ParseJobClient {
	return &ParseJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parsejob.Hooks(f(g(h())))`.
func (c *ParseJobClient) Use(hooks ...Hook) {
	c.hooks.ParseJob = append(c.hooks.ParseJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parsejob.Intercept(f(g(h())))`.
func (c *ParseJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseJob = append(c.inters.ParseJob, interceptors...)
}

// Create returns a builder for creating a ParseJob entity.
func (c *ParseJobClient) Create() *ParseJobCreate {
	mutation := newParseJobMutation(c.config, OpCreate)
	return &ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseJob entities.
func (c *ParseJobClient) CreateBulk(builders ...*ParseJobCreate) *ParseJobCreateBulk {
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseJobClient) MapCreateBulk(slice any, setFunc func(*ParseJobCreate, int)) *ParseJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseJobCreateBulk{err: fmt.Errorf("calling to ParseJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseJob.
func (c *ParseJobClient) Update() *ParseJobUpdate {
	mutation := newParseJobMutation(c.config, OpUpdate)
	return &ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseJobClient) UpdateOne(_m *ParseJob) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJob(_m))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseJobClient) UpdateOneID(id uuid.UUID) *ParseJobUpdateOne {
	mutation := newParseJobMutation(c.config, OpUpdateOne, withParseJobID(id))
	return &ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseJob.
func (c *ParseJobClient) Delete() *ParseJobDelete {
	mutation := newParseJobMutation(c.config, OpDelete)
	return &ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseJobClient) DeleteOne(_m *ParseJob) *ParseJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseJobClient) DeleteOneID(id uuid.UUID) *ParseJobDeleteOne {
	builder := c.Delete().Where(parsejob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseJobDeleteOne{builder}
}

// Query returns a query builder for ParseJob.
func (c *ParseJobClient) Query() *ParseJobQuery {
	return &ParseJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseJob entity by its id.
func (c *ParseJobClient) Get(ctx context.Context, id uuid.UUID) (*ParseJob, error) {
	return c.Query().Where(parsejob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseJobClient) GetX(ctx context.Context, id uuid.UUID) *ParseJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvoice queries the invoice edge of a ParseJob.
func (c *ParseJobClient) QueryInvoice(_m *ParseJob) *InvoiceRecordQuery {
	query := (&InvoiceRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(parsejob.Table, parsejob.FieldID, id),
			sqlgraph.To(invoicerecord.Table, invoicerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, parsejob.InvoiceTable, parsejob.InvoiceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ParseJobClient) Hooks() []Hook {
	return c.hooks.ParseJob
}

// Interceptors returns the client interceptors.
func (c *ParseJobClient) Interceptors() []Interceptor {
	return c.inters.ParseJob
}

func (c *ParseJobClient) mutate(ctx context.Context, m *ParseJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseJob mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		InvoiceRecord, ParseJob []ent.Hook
	}
	inters struct {
		InvoiceRecord, ParseJob []ent.Interceptor
	}
)
