package awsquery

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
	"github.com/awslabs/aws-query-go/query"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

const contentType = "application/x-www-form-urlencoded"

type serializeMiddleware[In any] struct {
	endpoint  string
	action    string
	version   string
	serialize func(*In, *query.Object) error
}

func (*serializeMiddleware[In]) ID() string { return id.OperationSerializer }

func (m *serializeMiddleware[In]) HandleSerialize(
	ctx context.Context, in middleware.SerializeInput, next middleware.SerializeHandler,
) (
	out middleware.SerializeOutput, metadata middleware.Metadata, err error,
) {
	request, ok := in.Request.(*smithyhttp.Request)
	if !ok {
		return out, metadata, &SerializationError{Err: fmt.Errorf("unknown transport type %T", in.Request)}
	}

	input, ok := in.Parameters.(*In)
	if !ok {
		return out, metadata, &SerializationError{Err: fmt.Errorf("unknown input parameters type %T", in.Parameters)}
	}

	endpoint, err := url.Parse(m.endpoint)
	if err != nil {
		return out, metadata, &SerializationError{Err: fmt.Errorf("invalid endpoint, %w", err)}
	}
	request.URL = endpoint
	if len(request.URL.Path) == 0 {
		request.URL.Path = "/"
	} else {
		request.URL.Path = path.Clean(request.URL.Path)
	}
	request.Method = "POST"
	request.Header.Set("Content-Type", contentType)

	var body bytes.Buffer
	encoder := query.NewEncoder(&body)
	root := encoder.Object()
	root.Key("Action").String(m.action)
	root.Key("Version").String(m.version)

	if m.serialize != nil {
		if err := m.serialize(input, root); err != nil {
			return out, metadata, &SerializationError{Err: err}
		}
	}

	if err := encoder.Encode(); err != nil {
		return out, metadata, &SerializationError{Err: err}
	}

	if request, err = request.SetStream(bytes.NewReader(body.Bytes())); err != nil {
		return out, metadata, &SerializationError{Err: err}
	}
	in.Request = request

	return next.HandleSerialize(ctx, in)
}

// SerializationError is the error of a request that could not be encoded.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization failed, %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *SerializationError) Unwrap() error { return e.Err }
