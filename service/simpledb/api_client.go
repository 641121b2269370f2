package simpledb

import (
	"context"
	"time"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/auth"
	"github.com/awslabs/aws-query-go/auth/sigv2"
	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

// ServiceID is the identifier of the service in errors and metadata.
const ServiceID = "SimpleDB"

// ServiceAPIVersion is the query protocol Version of every request.
const ServiceAPIVersion = "2009-04-15"

const (
	endpointTemplate = "https://sdb.{region}.amazonaws.com"
	globalEndpoint   = "https://sdb.amazonaws.com"
)

// Options are the configuration of a Client.
type Options struct {
	// The region to send requests to.
	Region string

	// Overrides the endpoint resolved from Region.
	BaseEndpoint string

	Credentials auth.CredentialsProvider

	// Signs requests. Defaults to a Signature Version 2 signer.
	Signer auth.Signer

	HTTPClient smithyhttp.ClientDo

	// Timeout of the default HTTP client, ignored when HTTPClient is set.
	Timeout time.Duration

	Logger        logging.Logger
	ClientLogMode logging.ClientLogMode

	// Stack mutators applied to every operation.
	APIOptions []func(*middleware.Stack) error
}

// Copy returns a copy of the options, the APIOptions slice is not shared.
func (o Options) Copy() Options {
	to := o
	to.APIOptions = make([]func(*middleware.Stack) error, len(o.APIOptions))
	copy(to.APIOptions, o.APIOptions)
	return to
}

// Client is the SimpleDB API client. A Client is safe for concurrent use.
type Client struct {
	options Options
}

// New returns a client for the options, modified by optFns.
func New(options Options, optFns ...func(*Options)) *Client {
	options = options.Copy()
	for _, fn := range optFns {
		fn(&options)
	}
	if options.HTTPClient == nil {
		options.HTTPClient = awsquery.NewHTTPClient(options.Timeout)
	}
	return &Client{options: options}
}

// NewFromCredentials returns a client for us-east-1 using the credentials.
func NewFromCredentials(credentials auth.CredentialsProvider, optFns ...func(*Options)) *Client {
	return New(Options{Region: "us-east-1", Credentials: credentials}, optFns...)
}

// Options returns a copy of the client's options.
func (c *Client) Options() Options {
	return c.options.Copy()
}

func resolveEndpoint(options Options) (string, error) {
	if len(options.BaseEndpoint) == 0 && options.Region == "us-east-1" {
		return globalEndpoint, nil
	}
	return awsquery.ResolveEndpoint(endpointTemplate, options.Region, options.BaseEndpoint)
}

func invoke[In, Out any](ctx context.Context, c *Client, op awsquery.Operation[In, Out], input *In, optFns []func(*Options)) (
	*Out, middleware.Metadata, error,
) {
	options := c.options.Copy()
	for _, fn := range optFns {
		fn(&options)
	}

	op.ServiceID = ServiceID
	op.Version = ServiceAPIVersion

	endpoint, err := resolveEndpoint(options)
	if err != nil {
		return nil, middleware.Metadata{}, &smithy.OperationError{
			ServiceID: ServiceID, OperationName: op.Action, Err: err,
		}
	}

	signer := options.Signer
	if signer == nil {
		signer = sigv2.New()
	}

	return awsquery.Invoke(ctx, op, input, awsquery.Config{
		Endpoint:      endpoint,
		HTTPClient:    options.HTTPClient,
		Credentials:   options.Credentials,
		Signer:        signer,
		Logger:        options.Logger,
		ClientLogMode: options.ClientLogMode,
		UserAgent:     []string{"aws-query-go", "api/simpledb"},
		APIOptions:    options.APIOptions,
	})
}
