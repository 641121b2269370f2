package awsquery

import (
	"bytes"
	"context"
	"fmt"
	"io"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// Metadata keys captured from the ResponseMetadata element of a response.
const (
	requestIDMetadata = "RequestId"
	boxUsageMetadata  = "BoxUsage"
)

type deserializeMiddleware[Out any] struct {
	action        string
	shape         smithyxml.Shape[Out]
	envelopeDepth int
}

func (*deserializeMiddleware[Out]) ID() string { return id.OperationDeserializer }

func (m *deserializeMiddleware[Out]) HandleDeserialize(
	ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler,
) (
	out middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	out, metadata, err = next.HandleDeserialize(ctx, in)
	if err != nil {
		return out, metadata, err
	}

	response, ok := out.RawResponse.(*smithyhttp.Response)
	if !ok {
		return out, metadata, &smithy.DeserializationError{Err: fmt.Errorf("unknown transport type %T", out.RawResponse)}
	}

	defer func() {
		if middleware.GetClientLogMode(ctx) == 0 {
			return
		}
		requestID, _ := GetRequestIDMetadata(metadata)
		middleware.GetLogger(ctx).Logf(logging.Debug, "%s invocation %s: status %d, request id %s",
			m.action, smithyhttp.GetInvocationID(ctx), response.StatusCode, requestID)
	}()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return out, metadata, deserializeError(response, &metadata)
	}

	var buff [1024]byte
	ringBuffer := newRingBuffer(buff[:])
	body := io.TeeReader(response.Body, ringBuffer)

	cursor := smithyxml.NewCursor(body, func(o *smithyxml.CursorOptions) {
		o.EnvelopeDepth = m.envelopeDepth
	})
	cursor.RegisterMetadata("ResponseMetadata/RequestId", 2, requestIDMetadata)
	cursor.RegisterMetadata("ResponseMetadata/BoxUsage", 2, boxUsageMetadata)

	result, err := m.shape.Unmarshal(cursor)
	if err != nil {
		return out, metadata, &smithy.DeserializationError{
			Err:      fmt.Errorf("failed to decode response body, %w", err),
			Snapshot: ringBuffer.Bytes(),
		}
	}
	out.Result = result

	if v, ok := cursor.Metadata()[requestIDMetadata]; ok {
		SetRequestIDMetadata(&metadata, v)
	}
	if v, ok := cursor.Metadata()[boxUsageMetadata]; ok {
		SetBoxUsageMetadata(&metadata, v)
	}

	return out, metadata, nil
}

func deserializeError(response *smithyhttp.Response, metadata *middleware.Metadata) error {
	var errorBuffer bytes.Buffer
	if _, err := io.Copy(&errorBuffer, response.Body); err != nil {
		return &smithy.DeserializationError{Err: fmt.Errorf("failed to copy error response body, %w", err)}
	}

	errorCode := "UnknownError"
	errorMessage := errorCode

	components, err := smithyxml.GetErrorResponseComponents(bytes.NewReader(errorBuffer.Bytes()), false)
	if err == nil {
		if len(components.Code) != 0 {
			errorCode = components.Code
		}
		if len(components.Message) != 0 {
			errorMessage = components.Message
		}
		if len(components.RequestID) != 0 {
			SetRequestIDMetadata(metadata, components.RequestID)
		}
	}

	fault := smithy.FaultUnknown
	switch {
	case response.StatusCode >= 500:
		fault = smithy.FaultServer
	case response.StatusCode >= 400:
		fault = smithy.FaultClient
	}

	return &smithyhttp.ResponseError{
		Response: response,
		Err: &smithy.GenericAPIError{
			Code:    errorCode,
			Message: errorMessage,
			Fault:   fault,
		},
	}
}

// ringBuffer keeps the last bytes written to it, the snapshot of a response
// body that failed to decode.
type ringBuffer struct {
	slice []byte
	start int
	size  int
}

func newRingBuffer(slice []byte) *ringBuffer {
	return &ringBuffer{slice: slice}
}

func (r *ringBuffer) Write(p []byte) (int, error) {
	for _, b := range p {
		end := (r.start + r.size) % len(r.slice)
		r.slice[end] = b
		if r.size < len(r.slice) {
			r.size++
		} else {
			r.start = (r.start + 1) % len(r.slice)
		}
	}
	return len(p), nil
}

// Bytes returns a copy of the buffered bytes in write order.
func (r *ringBuffer) Bytes() []byte {
	b := make([]byte, r.size)
	for i := 0; i < r.size; i++ {
		b[i] = r.slice[(r.start+i)%len(r.slice)]
	}
	return b
}
