package http

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/awslabs/aws-query-go/middleware"
)

func TestComputeContentLength(t *testing.T) {
	cases := map[string]struct {
		Stream     io.Reader
		ExpectLen  int64
		ExpectBody string
		ExpectErr  string
	}{
		"form body": {
			Stream:     strings.NewReader("Action=ListDomains&Version=2009-04-15"),
			ExpectLen:  37,
			ExpectBody: "Action=ListDomains&Version=2009-04-15",
		},
		"empty body": {
			Stream:    strings.NewReader(""),
			ExpectLen: 0,
		},
		"unknown length is buffered": {
			Stream:     io.MultiReader(strings.NewReader("Action="), strings.NewReader("Select")),
			ExpectLen:  13,
			ExpectBody: "Action=Select",
		},
		"seek error": {
			Stream:    &errorSecondSeekableReader{err: fmt.Errorf("seek failed")},
			ExpectErr: "seek failed",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			req, err := NewStackRequest().(*Request).SetStream(c.Stream)
			if err != nil {
				t.Fatalf("expect to set stream, %v", err)
			}

			var built *Request
			var m ComputeContentLength
			_, _, err = m.HandleBuild(context.Background(),
				middleware.BuildInput{Request: req},
				middleware.BuildHandlerFunc(func(ctx context.Context, in middleware.BuildInput) (
					middleware.BuildOutput, middleware.Metadata, error,
				) {
					built = in.Request.(*Request)
					return middleware.BuildOutput{}, middleware.Metadata{}, nil
				}),
			)
			if len(c.ExpectErr) != 0 {
				if err == nil {
					t.Fatalf("expect error, got none")
				}
				if e, a := c.ExpectErr, err.Error(); !strings.Contains(a, e) {
					t.Fatalf("expect error to contain %q, got %v", e, a)
				}
				return
			}
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			if e, a := c.ExpectLen, built.ContentLength; e != a {
				t.Errorf("expect %v content-length, got %v", e, a)
			}
			if stream := built.GetStream(); stream != nil {
				if err := built.RewindStream(); err != nil {
					t.Fatalf("expect seekable stream, %v", err)
				}
				body, _ := io.ReadAll(stream)
				if e, a := c.ExpectBody, string(body); e != a {
					t.Errorf("expect %q body, got %q", e, a)
				}
			}
		})
	}
}

func TestComputeContentLength_AlreadySet(t *testing.T) {
	req, err := NewStackRequest().(*Request).SetStream(strings.NewReader("Action=ListDomains"))
	if err != nil {
		t.Fatalf("expect to set stream, %v", err)
	}
	req.ContentLength = 1234

	var m ComputeContentLength
	_, _, err = m.HandleBuild(context.Background(),
		middleware.BuildInput{Request: req},
		middleware.BuildHandlerFunc(func(ctx context.Context, in middleware.BuildInput) (
			middleware.BuildOutput, middleware.Metadata, error,
		) {
			return middleware.BuildOutput{}, middleware.Metadata{}, nil
		}),
	)
	if err != nil {
		t.Fatalf("expect middleware to run, %v", err)
	}

	if e, a := int64(1234), req.ContentLength; e != a {
		t.Errorf("expect content length not to change, got %v", a)
	}
}

type errorSecondSeekableReader struct {
	err   error
	count int
}

func (r *errorSecondSeekableReader) Read(p []byte) (int, error) {
	return 0, io.EOF
}

func (r *errorSecondSeekableReader) Seek(offset int64, whence int) (int64, error) {
	r.count++
	if r.count == 2 {
		return 0, r.err
	}
	return 0, nil
}

type nopBuildHandler struct{}

func (nopBuildHandler) HandleBuild(ctx context.Context, in middleware.BuildInput) (
	out middleware.BuildOutput, metadata middleware.Metadata, err error,
) {
	return out, metadata, nil
}
