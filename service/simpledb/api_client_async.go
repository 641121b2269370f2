package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/async"
	"github.com/awslabs/aws-query-go/auth"
)

// AsyncClient invokes SimpleDB operations on an async.Executor. Each XxxAsync
// method submits exactly one call of the matching Client method and returns
// its Future. Failures of the call resolve the Future as is, they are not
// retried or translated.
type AsyncClient struct {
	client   *Client
	executor async.Executor

	// set when the executor was created by, and is shut down with, the client
	owned *async.Pool
}

// NewAsyncFromCredentials returns an AsyncClient for us-east-1 running
// operations on its own unbounded pool. Close shuts the pool down.
func NewAsyncFromCredentials(credentials auth.CredentialsProvider) *AsyncClient {
	pool := async.NewCachedPool()
	return &AsyncClient{
		client:   NewFromCredentials(credentials),
		executor: pool,
		owned:    pool,
	}
}

// NewAsyncWithExecutor returns an AsyncClient for us-east-1 running
// operations on executor.
func NewAsyncWithExecutor(credentials auth.CredentialsProvider, executor async.Executor) *AsyncClient {
	return &AsyncClient{
		client:   NewFromCredentials(credentials),
		executor: executor,
	}
}

// NewAsyncWithOptions returns an AsyncClient for the options running
// operations on executor. The credentials override options.Credentials when
// not nil.
func NewAsyncWithOptions(credentials auth.CredentialsProvider, options Options, executor async.Executor) *AsyncClient {
	if credentials != nil {
		options.Credentials = credentials
	}
	return &AsyncClient{
		client:   New(options),
		executor: executor,
	}
}

// Executor returns the executor operations are submitted to.
func (c *AsyncClient) Executor() async.Executor {
	return c.executor
}

// Client returns the synchronous client the operations are delegated to.
func (c *AsyncClient) Client() *Client {
	return c.client
}

// Close shuts down the pool created by NewAsyncFromCredentials. Operations
// already submitted still run. Executors supplied by the caller are left
// running.
func (c *AsyncClient) Close() {
	if c.owned != nil {
		c.owned.Shutdown()
	}
}

func mustInput(isNil bool, operation string) {
	if isNil {
		panic("simpledb: nil " + operation + " input")
	}
}

// SelectAsync submits Select.
func (c *AsyncClient) SelectAsync(ctx context.Context, params *SelectInput, optFns ...func(*Options)) *async.Future[*SelectOutput] {
	mustInput(params == nil, "Select")
	return async.Submit(ctx, c.executor, func(ctx context.Context) (*SelectOutput, error) {
		return c.client.Select(ctx, params, optFns...)
	})
}

// PutAttributesAsync submits PutAttributes.
func (c *AsyncClient) PutAttributesAsync(ctx context.Context, params *PutAttributesInput, optFns ...func(*Options)) *async.Future[async.Void] {
	mustInput(params == nil, "PutAttributes")
	return async.SubmitVoid(ctx, c.executor, func(ctx context.Context) error {
		_, err := c.client.PutAttributes(ctx, params, optFns...)
		return err
	})
}

// DeleteDomainAsync submits DeleteDomain.
func (c *AsyncClient) DeleteDomainAsync(ctx context.Context, params *DeleteDomainInput, optFns ...func(*Options)) *async.Future[async.Void] {
	mustInput(params == nil, "DeleteDomain")
	return async.SubmitVoid(ctx, c.executor, func(ctx context.Context) error {
		_, err := c.client.DeleteDomain(ctx, params, optFns...)
		return err
	})
}

// CreateDomainAsync submits CreateDomain.
func (c *AsyncClient) CreateDomainAsync(ctx context.Context, params *CreateDomainInput, optFns ...func(*Options)) *async.Future[async.Void] {
	mustInput(params == nil, "CreateDomain")
	return async.SubmitVoid(ctx, c.executor, func(ctx context.Context) error {
		_, err := c.client.CreateDomain(ctx, params, optFns...)
		return err
	})
}

// DeleteAttributesAsync submits DeleteAttributes.
func (c *AsyncClient) DeleteAttributesAsync(ctx context.Context, params *DeleteAttributesInput, optFns ...func(*Options)) *async.Future[async.Void] {
	mustInput(params == nil, "DeleteAttributes")
	return async.SubmitVoid(ctx, c.executor, func(ctx context.Context) error {
		_, err := c.client.DeleteAttributes(ctx, params, optFns...)
		return err
	})
}

// ListDomainsAsync submits ListDomains.
func (c *AsyncClient) ListDomainsAsync(ctx context.Context, params *ListDomainsInput, optFns ...func(*Options)) *async.Future[*ListDomainsOutput] {
	mustInput(params == nil, "ListDomains")
	return async.Submit(ctx, c.executor, func(ctx context.Context) (*ListDomainsOutput, error) {
		return c.client.ListDomains(ctx, params, optFns...)
	})
}

// GetAttributesAsync submits GetAttributes.
func (c *AsyncClient) GetAttributesAsync(ctx context.Context, params *GetAttributesInput, optFns ...func(*Options)) *async.Future[*GetAttributesOutput] {
	mustInput(params == nil, "GetAttributes")
	return async.Submit(ctx, c.executor, func(ctx context.Context) (*GetAttributesOutput, error) {
		return c.client.GetAttributes(ctx, params, optFns...)
	})
}

// BatchPutAttributesAsync submits BatchPutAttributes.
func (c *AsyncClient) BatchPutAttributesAsync(ctx context.Context, params *BatchPutAttributesInput, optFns ...func(*Options)) *async.Future[async.Void] {
	mustInput(params == nil, "BatchPutAttributes")
	return async.SubmitVoid(ctx, c.executor, func(ctx context.Context) error {
		_, err := c.client.BatchPutAttributes(ctx, params, optFns...)
		return err
	})
}

// DomainMetadataAsync submits DomainMetadata.
func (c *AsyncClient) DomainMetadataAsync(ctx context.Context, params *DomainMetadataInput, optFns ...func(*Options)) *async.Future[*DomainMetadataOutput] {
	mustInput(params == nil, "DomainMetadata")
	return async.Submit(ctx, c.executor, func(ctx context.Context) (*DomainMetadataOutput, error) {
		return c.client.DomainMetadata(ctx, params, optFns...)
	})
}
