package rds

import (
	"context"
	"time"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/auth"
	"github.com/awslabs/aws-query-go/auth/sigv4"
	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

// ServiceID is the identifier of the service in errors and metadata.
const ServiceID = "RDS"

// ServiceAPIVersion is the query protocol Version of every request.
const ServiceAPIVersion = "2014-10-31"

const (
	endpointTemplate = "https://rds.{region}.amazonaws.com"
	signingName      = "rds"
	defaultRegion    = "us-east-1"
)

// Options are the configuration of a Client.
type Options struct {
	// The region to send requests to.
	Region string

	// Overrides the endpoint resolved from Region.
	BaseEndpoint string

	Credentials auth.CredentialsProvider

	// Signs requests. Defaults to a Signature Version 4 signer for the
	// client's region.
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

// Client is the RDS API client.
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

// Options returns a copy of the client's options.
func (c *Client) Options() Options {
	return c.options.Copy()
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

	endpoint, err := awsquery.ResolveEndpoint(endpointTemplate, options.Region, options.BaseEndpoint)
	if err != nil {
		return nil, middleware.Metadata{}, &smithy.OperationError{
			ServiceID: ServiceID, OperationName: op.Action, Err: err,
		}
	}

	signer := options.Signer
	if signer == nil {
		region := options.Region
		if len(region) == 0 {
			region = defaultRegion
		}
		signer = sigv4.New(signingName, region)
	}

	return awsquery.Invoke(ctx, op, input, awsquery.Config{
		Endpoint:      endpoint,
		HTTPClient:    options.HTTPClient,
		Credentials:   options.Credentials,
		Signer:        signer,
		Logger:        options.Logger,
		ClientLogMode: options.ClientLogMode,
		UserAgent:     []string{"aws-query-go", "api/rds"},
		APIOptions:    options.APIOptions,
	})
}
