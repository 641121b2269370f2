package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
)

func TestRequestResponseLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := middleware.SetLogger(context.Background(), logging.NewStandardLogger(&buf))

	req := NewStackRequest().(*Request)
	req.Method = http.MethodPost
	req.URL, _ = url.Parse("https://sdb.amazonaws.com/")
	req, _ = req.SetStream(strings.NewReader("Action=ListDomains"))

	m := &RequestResponseLogger{LogMode: logging.LogRequest | logging.LogResponse}
	out, _, err := m.HandleDeserialize(ctx, middleware.DeserializeInput{Request: req},
		middleware.DeserializeHandlerFunc(func(ctx context.Context, in middleware.DeserializeInput) (
			middleware.DeserializeOutput, middleware.Metadata, error,
		) {
			return middleware.DeserializeOutput{
				RawResponse: &Response{Response: &http.Response{
					StatusCode: 200,
					ProtoMajor: 1,
					ProtoMinor: 1,
					Header:     http.Header{},
					Body:       io.NopCloser(strings.NewReader("<ListDomainsResponse/>")),
				}},
			}, middleware.Metadata{}, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	logged := buf.String()
	for _, expect := range []string{"POST / HTTP/1.1", "Host: sdb.amazonaws.com", "200", "<ListDomainsResponse/>"} {
		if !strings.Contains(logged, expect) {
			t.Errorf("expect log to contain %q, got\n%v", expect, logged)
		}
	}

	// the response body must still be readable after logging
	body, _ := io.ReadAll(out.RawResponse.(*Response).Body)
	if e, a := "<ListDomainsResponse/>", string(body); e != a {
		t.Errorf("expect %q body, got %q", e, a)
	}
}

func TestAddRequestResponseLoggerDisabled(t *testing.T) {
	stack := middleware.NewStack("test", NewStackRequest)
	if err := AddRequestResponseLogger(stack, 0); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := 0, len(stack.Deserialize.List()); e != a {
		t.Errorf("expect %v middleware, got %v", e, a)
	}
}
