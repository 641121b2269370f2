package http

import (
	"context"
	"fmt"
	"io"

	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
)

// maxDrainBytes bounds how much of an unread response body is discarded
// before the body is closed.
const maxDrainBytes = 4 << 10

// AddErrorCloseResponseBodyMiddleware adds the middleware closing the response
// body when the operation failed. Closing errors are ignored.
func AddErrorCloseResponseBodyMiddleware(stack *middleware.Stack) error {
	return stack.Deserialize.Add(&closeResponseBodyMiddleware{onErrorOnly: true}, middleware.Before)
}

// AddCloseResponseBodyMiddleware adds the middleware closing the response body
// after a successful deserialization. Bytes left unread by the deserializer,
// such as trailing whitespace after the document, are discarded first.
func AddCloseResponseBodyMiddleware(stack *middleware.Stack) error {
	return stack.Deserialize.Add(&closeResponseBodyMiddleware{}, middleware.Before)
}

type closeResponseBodyMiddleware struct {
	onErrorOnly bool
}

func (m *closeResponseBodyMiddleware) ID() string {
	if m.onErrorOnly {
		return id.ErrorCloseResponseBody
	}
	return id.CloseResponseBody
}

func (m *closeResponseBodyMiddleware) HandleDeserialize(
	ctx context.Context, input middleware.DeserializeInput, next middleware.DeserializeHandler,
) (
	output middleware.DeserializeOutput, metadata middleware.Metadata, err error,
) {
	output, metadata, err = next.HandleDeserialize(ctx, input)

	resp, ok := output.RawResponse.(*Response)
	if !ok || resp == nil || resp.Body == nil {
		return output, metadata, err
	}

	if err != nil {
		resp.Body.Close()
		return output, metadata, err
	}
	if m.onErrorOnly {
		return output, metadata, nil
	}

	io.CopyN(io.Discard, resp.Body, maxDrainBytes)
	if err := resp.Body.Close(); err != nil {
		return output, metadata, fmt.Errorf("close response body failed, %w", err)
	}
	return output, metadata, nil
}
