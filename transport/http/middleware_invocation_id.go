package http

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
)

// InvocationIDHeader is the header carrying the unique ID of an operation
// invocation.
const InvocationIDHeader = "Amz-Sdk-Invocation-Id"

type invocationIDKey struct{}

// GetInvocationID returns the invocation ID of the operation the context is
// associated with.
func GetInvocationID(ctx context.Context) string {
	v, _ := ctx.Value(invocationIDKey{}).(string)
	return v
}

// InvocationIDMiddleware tags every invocation of an operation with a random
// UUID, sent in the InvocationIDHeader and stored on the context.
type InvocationIDMiddleware struct {
	newID func() (uuid.UUID, error)
}

// AddInvocationIDMiddleware adds the InvocationIDMiddleware to the Build step
// of the stack.
func AddInvocationIDMiddleware(stack *middleware.Stack) error {
	return stack.Build.Add(&InvocationIDMiddleware{newID: uuid.NewRandom}, middleware.After)
}

// ID returns the identifier of the middleware.
func (*InvocationIDMiddleware) ID() string { return id.InvocationID }

// HandleBuild sets the invocation ID header.
func (m *InvocationIDMiddleware) HandleBuild(
	ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	req, ok := in.Request.(*Request)
	if !ok {
		return out, metadata, fmt.Errorf("unknown transport type %T", in.Request)
	}

	newID := m.newID
	if newID == nil {
		newID = uuid.NewRandom
	}
	invocationID, err := newID()
	if err != nil {
		return out, metadata, fmt.Errorf("failed to generate invocation id, %w", err)
	}

	req.Header.Set(InvocationIDHeader, invocationID.String())
	ctx = context.WithValue(ctx, invocationIDKey{}, invocationID.String())

	return next.HandleBuild(ctx, in)
}
