// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/jmcarrillo/docuflow/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/jmcarrillo/docuflow/gen/ent/document"
	"github.com/jmcarrillo/docuflow/gen/ent/documentmetadata"
	"github.com/jmcarrillo/docuflow/gen/ent/documenttype"
	"github.com/jmcarrillo/docuflow/gen/ent/documentversion"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DocumentMetadata is the client for interacting with the DocumentMetadata builders.
	DocumentMetadata *DocumentMetadataClient
	// DocumentType is the client for interacting with the DocumentType builders.
	DocumentType *DocumentTypeClient
	// DocumentVersion is the client for interacting with the DocumentVersion builders.
	DocumentVersion *DocumentVersionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Document = NewDocumentClient(c.config)
	c.DocumentMetadata = NewDocumentMetadataClient(c.config)
	c.DocumentType = NewDocumentTypeClient(c.config)
	c.DocumentVersion = NewDocumentVersionClient(c.config)
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
		Document:         NewDocumentClient(cfg),
		DocumentMetadata: NewDocumentMetadataClient(cfg),
		DocumentType:     NewDocumentTypeClient(cfg),
		DocumentVersion:  NewDocumentVersionClient(cfg),
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
		Document:         NewDocumentClient(cfg),
		DocumentMetadata: NewDocumentMetadataClient(cfg),
		DocumentType:     NewDocumentTypeClient(cfg),
		DocumentVersion:  NewDocumentVersionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Document.
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
	c.Document.Use(hooks...)
	c.DocumentMetadata.Use(hooks...)
	c.DocumentType.Use(hooks...)
	c.DocumentVersion.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Document.Intercept(interceptors...)
	c.DocumentMetadata.Intercept(interceptors...)
	c.DocumentType.Intercept(interceptors...)
	c.DocumentVersion.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DocumentMetadataMutation:
		return c.DocumentMetadata.mutate(ctx, m)
	case *DocumentTypeMutation:
		return c.DocumentType.mutate(ctx, m)
	case *DocumentVersionMutation:
		return c.DocumentVersion.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumentType queries the document_type edge of a Document.
func (c *DocumentClient) QueryDocumentType(_m *Document) *DocumentTypeQuery {
	query := (&DocumentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documenttype.Table, documenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.DocumentTypeTable, document.DocumentTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestedType queries the suggested_type edge of a Document.
func (c *DocumentClient) QuerySuggestedType(_m *Document) *DocumentTypeQuery {
	query := (&DocumentTypeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documenttype.Table, documenttype.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, document.SuggestedTypeTable, document.SuggestedTypeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVersions queries the versions edge of a Document.
func (c *DocumentClient) QueryVersions(_m *Document) *DocumentVersionQuery {
	query := (&DocumentVersionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documentversion.Table, documentversion.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.VersionsTable, document.VersionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMetadata queries the metadata edge of a Document.
func (c *DocumentClient) QueryMetadata(_m *Document) *DocumentMetadataQuery {
	query := (&DocumentMetadataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(documentmetadata.Table, documentmetadata.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, document.MetadataTable, document.MetadataColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DocumentMetadataClient is a client for the DocumentMetadata schema.
type DocumentMetadataClient struct {
	config
}

// NewDocumentMetadataClient returns a client for the DocumentMetadata from the given config.
func NewDocumentMetadataClient(c config) *DocumentMetadataClient {
	return &DocumentMetadataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentmetadata.Hooks(f(g(h())))`.
func (c *DocumentMetadataClient) Use(hooks ...Hook) {
	c.hooks.DocumentMetadata = append(c.hooks.DocumentMetadata, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentmetadata.Intercept(f(g(h())))`.
func (c *DocumentMetadataClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentMetadata = append(c.inters.DocumentMetadata, interceptors...)
}

// Create returns a builder for creating a DocumentMetadata entity.
func (c *DocumentMetadataClient) Create() *DocumentMetadataCreate {
	mutation := newDocumentMetadataMutation(c.config, OpCreate)
	return &DocumentMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentMetadata entities.
func (c *DocumentMetadataClient) CreateBulk(builders ...*DocumentMetadataCreate) *DocumentMetadataCreateBulk {
	return &DocumentMetadataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentMetadataClient) MapCreateBulk(slice any, setFunc func(*DocumentMetadataCreate, int)) *DocumentMetadataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentMetadataCreateBulk{err: fmt.Errorf("calling to DocumentMetadataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentMetadataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentMetadataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentMetadata.
func (c *DocumentMetadataClient) Update() *DocumentMetadataUpdate {
	mutation := newDocumentMetadataMutation(c.config, OpUpdate)
	return &DocumentMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentMetadataClient) UpdateOne(_m *DocumentMetadata) *DocumentMetadataUpdateOne {
	mutation := newDocumentMetadataMutation(c.config, OpUpdateOne, withDocumentMetadata(_m))
	return &DocumentMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentMetadataClient) UpdateOneID(id uuid.UUID) *DocumentMetadataUpdateOne {
	mutation := newDocumentMetadataMutation(c.config, OpUpdateOne, withDocumentMetadataID(id))
	return &DocumentMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentMetadata.
func (c *DocumentMetadataClient) Delete() *DocumentMetadataDelete {
	mutation := newDocumentMetadataMutation(c.config, OpDelete)
	return &DocumentMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentMetadataClient) DeleteOne(_m *DocumentMetadata) *DocumentMetadataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentMetadataClient) DeleteOneID(id uuid.UUID) *DocumentMetadataDeleteOne {
	builder := c.Delete().Where(documentmetadata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentMetadataDeleteOne{builder}
}

// Query returns a query builder for DocumentMetadata.
func (c *DocumentMetadataClient) Query() *DocumentMetadataQuery {
	return &DocumentMetadataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentMetadata},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentMetadata entity by its id.
func (c *DocumentMetadataClient) Get(ctx context.Context, id uuid.UUID) (*DocumentMetadata, error) {
	return c.Query().Where(documentmetadata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentMetadataClient) GetX(ctx context.Context, id uuid.UUID) *DocumentMetadata {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentMetadata.
func (c *DocumentMetadataClient) QueryDocument(_m *DocumentMetadata) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentmetadata.Table, documentmetadata.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, documentmetadata.DocumentTable, documentmetadata.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentMetadataClient) Hooks() []Hook {
	return c.hooks.DocumentMetadata
}

// Interceptors returns the client interceptors.
func (c *DocumentMetadataClient) Interceptors() []Interceptor {
	return c.inters.DocumentMetadata
}

func (c *DocumentMetadataClient) mutate(ctx context.Context, m *DocumentMetadataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentMetadata mutation op: %q", m.Op())
	}
}

// DocumentTypeClient is a client for the DocumentType schema.
type DocumentTypeClient struct {
	config
}

// NewDocumentTypeClient returns a client for the DocumentType from the given config.
func NewDocumentTypeClient(c config) *DocumentTypeClient {
	return &DocumentTypeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documenttype.Hooks(f(g(h())))`.
func (c *DocumentTypeClient) Use(hooks ...Hook) {
	c.hooks.DocumentType = append(c.hooks.DocumentType, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documenttype.Intercept(f(g(h())))`.
func (c *DocumentTypeClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentType = append(c.inters.DocumentType, interceptors...)
}

// Create returns a builder for creating a DocumentType entity.
func (c *DocumentTypeClient) Create() *DocumentTypeCreate {
	mutation := newDocumentTypeMutation(c.config, OpCreate)
	return &DocumentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentType entities.
func (c *DocumentTypeClient) CreateBulk(builders ...*DocumentTypeCreate) *DocumentTypeCreateBulk {
	return &DocumentTypeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentTypeClient) MapCreateBulk(slice any, setFunc func(*DocumentTypeCreate, int)) *DocumentTypeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentTypeCreateBulk{err: fmt.Errorf("calling to DocumentTypeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentTypeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentTypeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentType.
func (c *DocumentTypeClient) Update() *DocumentTypeUpdate {
	mutation := newDocumentTypeMutation(c.config, OpUpdate)
	return &DocumentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentTypeClient) UpdateOne(_m *DocumentType) *DocumentTypeUpdateOne {
	mutation := newDocumentTypeMutation(c.config, OpUpdateOne, withDocumentType(_m))
	return &DocumentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentTypeClient) UpdateOneID(id int) *DocumentTypeUpdateOne {
	mutation := newDocumentTypeMutation(c.config, OpUpdateOne, withDocumentTypeID(id))
	return &DocumentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentType.
func (c *DocumentTypeClient) Delete() *DocumentTypeDelete {
	mutation := newDocumentTypeMutation(c.config, OpDelete)
	return &DocumentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentTypeClient) DeleteOne(_m *DocumentType) *DocumentTypeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentTypeClient) DeleteOneID(id int) *DocumentTypeDeleteOne {
	builder := c.Delete().Where(documenttype.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentTypeDeleteOne{builder}
}

// Query returns a query builder for DocumentType.
func (c *DocumentTypeClient) Query() *DocumentTypeQuery {
	return &DocumentTypeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentType},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentType entity by its id.
func (c *DocumentTypeClient) Get(ctx context.Context, id int) (*DocumentType, error) {
	return c.Query().Where(documenttype.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentTypeClient) GetX(ctx context.Context, id int) *DocumentType {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocuments queries the documents edge of a DocumentType.
func (c *DocumentTypeClient) QueryDocuments(_m *DocumentType) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documenttype.Table, documenttype.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documenttype.DocumentsTable, documenttype.DocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySuggestedDocuments queries the suggested_documents edge of a DocumentType.
func (c *DocumentTypeClient) QuerySuggestedDocuments(_m *DocumentType) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documenttype.Table, documenttype.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, documenttype.SuggestedDocumentsTable, documenttype.SuggestedDocumentsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentTypeClient) Hooks() []Hook {
	return c.hooks.DocumentType
}

// Interceptors returns the client interceptors.
func (c *DocumentTypeClient) Interceptors() []Interceptor {
	return c.inters.DocumentType
}

func (c *DocumentTypeClient) mutate(ctx context.Context, m *DocumentTypeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentTypeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentTypeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentTypeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentTypeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentType mutation op: %q", m.Op())
	}
}

// DocumentVersionClient is a client for the DocumentVersion schema.
type DocumentVersionClient struct {
	config
}

// NewDocumentVersionClient returns a client for the DocumentVersion from the given config.
func NewDocumentVersionClient(c config) *DocumentVersionClient {
	return &DocumentVersionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentversion.Hooks(f(g(h())))`.
func (c *DocumentVersionClient) Use(hooks ...Hook) {
	c.hooks.DocumentVersion = append(c.hooks.DocumentVersion, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentversion.Intercept(f(g(h())))`.
func (c *DocumentVersionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentVersion = append(c.inters.DocumentVersion, interceptors...)
}

// Create returns a builder for creating a DocumentVersion entity.
func (c *DocumentVersionClient) Create() *DocumentVersionCreate {
	mutation := newDocumentVersionMutation(c.config, OpCreate)
	return &DocumentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentVersion entities.
func (c *DocumentVersionClient) CreateBulk(builders ...*DocumentVersionCreate) *DocumentVersionCreateBulk {
	return &DocumentVersionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentVersionClient) MapCreateBulk(slice any, setFunc func(*DocumentVersionCreate, int)) *DocumentVersionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentVersionCreateBulk{err: fmt.Errorf("calling to DocumentVersionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentVersionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentVersionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentVersion.
func (c *DocumentVersionClient) Update() *DocumentVersionUpdate {
	mutation := newDocumentVersionMutation(c.config, OpUpdate)
	return &DocumentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentVersionClient) UpdateOne(_m *DocumentVersion) *DocumentVersionUpdateOne {
	mutation := newDocumentVersionMutation(c.config, OpUpdateOne, withDocumentVersion(_m))
	return &DocumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentVersionClient) UpdateOneID(id uuid.UUID) *DocumentVersionUpdateOne {
	mutation := newDocumentVersionMutation(c.config, OpUpdateOne, withDocumentVersionID(id))
	return &DocumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentVersion.
func (c *DocumentVersionClient) Delete() *DocumentVersionDelete {
	mutation := newDocumentVersionMutation(c.config, OpDelete)
	return &DocumentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentVersionClient) DeleteOne(_m *DocumentVersion) *DocumentVersionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentVersionClient) DeleteOneID(id uuid.UUID) *DocumentVersionDeleteOne {
	builder := c.Delete().Where(documentversion.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentVersionDeleteOne{builder}
}

// Query returns a query builder for DocumentVersion.
func (c *DocumentVersionClient) Query() *DocumentVersionQuery {
	return &DocumentVersionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentVersion},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentVersion entity by its id.
func (c *DocumentVersionClient) Get(ctx context.Context, id uuid.UUID) (*DocumentVersion, error) {
	return c.Query().Where(documentversion.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentVersionClient) GetX(ctx context.Context, id uuid.UUID) *DocumentVersion {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocument queries the document edge of a DocumentVersion.
func (c *DocumentVersionClient) QueryDocument(_m *DocumentVersion) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(documentversion.Table, documentversion.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, documentversion.DocumentTable, documentversion.DocumentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentVersionClient) Hooks() []Hook {
	return c.hooks.DocumentVersion
}

// Interceptors returns the client interceptors.
func (c *DocumentVersionClient) Interceptors() []Interceptor {
	return c.inters.DocumentVersion
}

func (c *DocumentVersionClient) mutate(ctx context.Context, m *DocumentVersionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentVersionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentVersionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentVersionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentVersionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentVersion mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Document, DocumentMetadata, DocumentType, DocumentVersion []ent.Hook
	}
	inters struct {
		Document, DocumentMetadata, DocumentType, DocumentVersion []ent.Interceptor
	}
)
