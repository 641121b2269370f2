package http

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
)

// ComputeContentLength provides a middleware to set the content-length of a
// serialized form body. A body whose length cannot be determined is read into
// memory, leaving the request with a seekable stream of known length that
// signers can hash and rewind.
type ComputeContentLength struct{}

// AddComputeContentLengthMiddleware adds ComputeContentLength to the middleware
// stack's Build step.
func AddComputeContentLengthMiddleware(stack *middleware.Stack) error {
	return stack.Build.Add(&ComputeContentLength{}, middleware.After)
}

// ID returns the identifier for the ComputeContentLength.
func (m *ComputeContentLength) ID() string { return id.ComputeContentLength }

// HandleBuild sets the request's content length.
func (m *ComputeContentLength) HandleBuild(
	ctx context.Context, in middleware.BuildInput, next middleware.BuildHandler,
) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	req, ok := in.Request.(*Request)
	if !ok {
		return out, metadata, fmt.Errorf("unknown request type %T", in.Request)
	}

	if req.ContentLength >= 0 {
		return next.HandleBuild(ctx, in)
	}

	n, ok, err := req.StreamLength()
	if err != nil {
		return out, metadata, fmt.Errorf("failed getting length of request stream, %w", err)
	}
	if !ok {
		body, err := io.ReadAll(req.GetStream())
		if err != nil {
			return out, metadata, fmt.Errorf("failed buffering request stream, %w", err)
		}
		if req, err = req.SetStream(bytes.NewReader(body)); err != nil {
			return out, metadata, err
		}
		n = int64(len(body))
	}
	req.ContentLength = n
	in.Request = req

	return next.HandleBuild(ctx, in)
}
