package http

import (
	"context"
	"fmt"
	"net/http/httputil"

	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
)

// RequestResponseLogger logs the wire requests and responses of an operation
// with the logger on the context, as selected by the log mode.
type RequestResponseLogger struct {
	LogMode logging.ClientLogMode
}

// AddRequestResponseLogger adds the RequestResponseLogger to the Deserialize
// step of the stack. Added after the operation deserializer it sees the raw
// response before it is deserialized.
func AddRequestResponseLogger(stack *middleware.Stack, mode logging.ClientLogMode) error {
	if mode == 0 {
		return nil
	}
	return stack.Deserialize.Add(&RequestResponseLogger{LogMode: mode}, middleware.After)
}

// ID returns the identifier of the middleware.
func (*RequestResponseLogger) ID() string { return id.RequestLogging }

// HandleDeserialize logs the request before sending it, and the response after
// it is received.
func (m *RequestResponseLogger) HandleDeserialize(
	ctx context.Context, in middleware.DeserializeInput, next middleware.DeserializeHandler,
) (
	out middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	logger := middleware.GetLogger(ctx)

	if m.LogMode.IsRequest() {
		req, ok := in.Request.(*Request)
		if !ok {
			return out, metadata, fmt.Errorf("unknown transport type %T", in.Request)
		}

		rc := req.Build(ctx)
		dump, err := httputil.DumpRequestOut(rc, false)
		if err != nil {
			return out, metadata, fmt.Errorf("failed to dump request, %w", err)
		}
		logger.Logf(logging.Debug, "Request\n%s", dump)
	}

	out, metadata, err = next.HandleDeserialize(ctx, in)

	if m.LogMode.IsResponse() {
		if resp, ok := out.RawResponse.(*Response); ok && resp.Response != nil {
			dump, dumpErr := httputil.DumpResponse(resp.Response, true)
			if dumpErr != nil {
				logger.Logf(logging.Warn, "failed to dump response, %v", dumpErr)
			} else {
				logger.Logf(logging.Debug, "Response\n%s", dump)
			}
		}
	}

	return out, metadata, err
}
