package http

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"github.com/awslabs/aws-query-go/middleware"
)

func TestInvocationIDMiddleware(t *testing.T) {
	expectID := uuid.MustParse("f7d5a2b0-4a6c-4d2b-9f1e-6c1a2b3c4d5e")

	m := &InvocationIDMiddleware{
		newID: func() (uuid.UUID, error) { return expectID, nil },
	}

	req := NewStackRequest().(*Request)
	var ctxID string
	_, _, err := m.HandleBuild(context.Background(), middleware.BuildInput{Request: req},
		middleware.BuildHandlerFunc(func(ctx context.Context, in middleware.BuildInput) (
			middleware.BuildOutput, middleware.Metadata, error,
		) {
			ctxID = GetInvocationID(ctx)
			return middleware.BuildOutput{}, middleware.Metadata{}, nil
		}))
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if e, a := expectID.String(), req.Header.Get(InvocationIDHeader); e != a {
		t.Errorf("expect %v header, got %v", e, a)
	}
	if e, a := expectID.String(), ctxID; e != a {
		t.Errorf("expect %v on context, got %v", e, a)
	}
}

func TestInvocationIDMiddlewareRandom(t *testing.T) {
	stack := middleware.NewStack("test", NewStackRequest)
	if err := AddInvocationIDMiddleware(stack); err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	m, _ := stack.Build.Get("InvocationID")

	seen := map[string]struct{}{}
	for i := 0; i < 5; i++ {
		req := NewStackRequest().(*Request)
		if _, _, err := m.HandleBuild(context.Background(), middleware.BuildInput{Request: req}, nopBuildHandler{}); err != nil {
			t.Fatalf("expect no error, got %v", err)
		}
		v := req.Header.Get(InvocationIDHeader)
		if _, err := uuid.Parse(v); err != nil {
			t.Errorf("expect valid uuid, got %q, %v", v, err)
		}
		if _, ok := seen[v]; ok {
			t.Errorf("expect unique invocation id, got duplicate %v", v)
		}
		seen[v] = struct{}{}
	}
}

func TestInvocationIDMiddlewareError(t *testing.T) {
	m := &InvocationIDMiddleware{
		newID: func() (uuid.UUID, error) { return uuid.Nil, fmt.Errorf("entropy exhausted") },
	}

	_, _, err := m.HandleBuild(context.Background(), middleware.BuildInput{Request: NewStackRequest()}, nopBuildHandler{})
	if err == nil {
		t.Fatalf("expect error, got none")
	}
}
