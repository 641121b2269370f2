package awsquery

import (
	"context"
	"fmt"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/auth"
	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
	"github.com/awslabs/aws-query-go/query"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// Operation describes a query protocol operation with input In and result
// Out.
type Operation[In, Out any] struct {
	ServiceID string

	// Action is the operation name sent as the Action form value.
	Action  string
	Version string

	// Serialize adds the input's members to the form.
	Serialize func(*In, *query.Object) error

	// Validate returns an error if required members of the input are missing.
	Validate func(*In) error

	Result smithyxml.Shape[Out]

	// EnvelopeDepth overrides the number of wrapper elements enclosing the
	// result's members when positive.
	EnvelopeDepth int
}

// Invoke sends the operation request for input and returns the unmarshaled
// result with the response metadata. Errors are returned as a
// *smithy.OperationError.
func Invoke[In, Out any](ctx context.Context, op Operation[In, Out], input *In, cfg Config) (
	*Out, middleware.Metadata, error,
) {
	if input == nil {
		input = new(In)
	}

	stack := middleware.NewStack(op.Action, smithyhttp.NewStackRequest)
	if err := addProtocolMiddlewares(stack, op, cfg); err != nil {
		return nil, middleware.Metadata{}, &smithy.OperationError{
			ServiceID: op.ServiceID, OperationName: op.Action, Err: err,
		}
	}
	for _, fn := range cfg.APIOptions {
		if err := fn(stack); err != nil {
			return nil, middleware.Metadata{}, &smithy.OperationError{
				ServiceID: op.ServiceID, OperationName: op.Action, Err: err,
			}
		}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Noop{}
	}
	ctx = middleware.SetLogger(ctx, logging.WithContext(ctx, logger))
	ctx = middleware.SetClientLogMode(ctx, cfg.ClientLogMode)

	client := cfg.HTTPClient
	if client == nil {
		client = NewHTTPClient(0)
	}
	handler := middleware.DecorateHandler(smithyhttp.NewClientHandler(client), stack)

	result, metadata, err := handler.Handle(ctx, input)
	if err != nil {
		return nil, metadata, &smithy.OperationError{
			ServiceID:     op.ServiceID,
			OperationName: op.Action,
			Err:           err,
		}
	}

	out, ok := result.(*Out)
	if !ok {
		return nil, metadata, &smithy.OperationError{
			ServiceID:     op.ServiceID,
			OperationName: op.Action,
			Err:           fmt.Errorf("unexpected operation result type %T", result),
		}
	}
	middleware.WithServiceID(&metadata, op.ServiceID)
	middleware.WithOperationName(&metadata, op.Action)

	return out, metadata, nil
}

func addProtocolMiddlewares[In, Out any](stack *middleware.Stack, op Operation[In, Out], cfg Config) error {
	if op.Validate != nil {
		if err := stack.Initialize.Add(&validateMiddleware[In]{validate: op.Validate}, middleware.After); err != nil {
			return err
		}
	}

	if err := stack.Serialize.Add(&serializeMiddleware[In]{
		endpoint:  cfg.Endpoint,
		action:    op.Action,
		version:   op.Version,
		serialize: op.Serialize,
	}, middleware.After); err != nil {
		return err
	}

	if err := smithyhttp.AddComputeContentLengthMiddleware(stack); err != nil {
		return err
	}
	if err := smithyhttp.AddUserAgentMiddleware(stack, cfg.UserAgent...); err != nil {
		return err
	}
	if err := smithyhttp.AddInvocationIDMiddleware(stack); err != nil {
		return err
	}

	if err := auth.AddSigningMiddleware(stack, cfg.Credentials, cfg.Signer); err != nil {
		return err
	}

	envelopeDepth := smithyxml.DefaultEnvelopeDepth
	if op.EnvelopeDepth > 0 {
		envelopeDepth = op.EnvelopeDepth
	}
	if err := stack.Deserialize.Add(&deserializeMiddleware[Out]{
		action:        op.Action,
		shape:         op.Result,
		envelopeDepth: envelopeDepth,
	}, middleware.After); err != nil {
		return err
	}
	if err := smithyhttp.AddRequestResponseLogger(stack, cfg.ClientLogMode); err != nil {
		return err
	}
	if err := smithyhttp.AddCloseResponseBodyMiddleware(stack); err != nil {
		return err
	}
	return smithyhttp.AddErrorCloseResponseBodyMiddleware(stack)
}

type validateMiddleware[In any] struct {
	validate func(*In) error
}

func (*validateMiddleware[In]) ID() string { return id.OperationInputValidation }

func (m *validateMiddleware[In]) HandleInitialize(
	ctx context.Context, in middleware.InitializeInput, next middleware.InitializeHandler,
) (
	out middleware.InitializeOutput, metadata middleware.Metadata, err error,
) {
	input, ok := in.Parameters.(*In)
	if !ok {
		return out, metadata, fmt.Errorf("unknown input parameters type %T", in.Parameters)
	}
	if err := m.validate(input); err != nil {
		return out, metadata, err
	}
	return next.HandleInitialize(ctx, in)
}
