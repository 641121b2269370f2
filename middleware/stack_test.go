package middleware

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
)

type mockRequest struct {
	params  interface{}
	headers map[string]string
}

func TestStackHandleMiddleware(t *testing.T) {
	stack := NewStack("test stack", func() interface{} {
		return &mockRequest{headers: map[string]string{}}
	})

	noError(t, stack.Initialize.Add(InitializeMiddlewareFunc("validate",
		func(ctx context.Context, in InitializeInput, next InitializeHandler) (
			InitializeOutput, Metadata, error,
		) {
			if in.Parameters == nil {
				return InitializeOutput{}, Metadata{}, errors.New("nil input")
			}
			return next.HandleInitialize(ctx, in)
		}), After))

	noError(t, stack.Serialize.Add(SerializeMiddlewareFunc("serialize",
		func(ctx context.Context, in SerializeInput, next SerializeHandler) (
			SerializeOutput, Metadata, error,
		) {
			in.Request.(*mockRequest).params = in.Parameters
			return next.HandleSerialize(ctx, in)
		}), After))

	noError(t, stack.Build.Add(BuildMiddlewareFunc("header",
		func(ctx context.Context, in BuildInput, next BuildHandler) (
			BuildOutput, Metadata, error,
		) {
			in.Request.(*mockRequest).headers["X-Build"] = "1"
			return next.HandleBuild(ctx, in)
		}), After))

	noError(t, stack.Finalize.Add(FinalizeMiddlewareFunc("sign",
		func(ctx context.Context, in FinalizeInput, next FinalizeHandler) (
			FinalizeOutput, Metadata, error,
		) {
			in.Request.(*mockRequest).headers["X-Signed"] = "1"
			return next.HandleFinalize(ctx, in)
		}), After))

	noError(t, stack.Deserialize.Add(DeserializeMiddlewareFunc("deserialize",
		func(ctx context.Context, in DeserializeInput, next DeserializeHandler) (
			DeserializeOutput, Metadata, error,
		) {
			out, metadata, err := next.HandleDeserialize(ctx, in)
			if err != nil {
				return out, metadata, err
			}
			out.Result = "result:" + out.RawResponse.(string)
			metadata.Set("request-id", "abc")
			return out, metadata, nil
		}), After))

	var ids []string
	handler := HandlerFunc(func(ctx context.Context, input interface{}) (interface{}, Metadata, error) {
		ids = GetMiddlewareIDs(ctx)
		req := input.(*mockRequest)
		if e, a := "params", req.params; e != a {
			t.Errorf("expect %v params, got %v", e, a)
		}
		expectHeaders := map[string]string{"X-Build": "1", "X-Signed": "1"}
		if e, a := expectHeaders, req.headers; !reflect.DeepEqual(e, a) {
			t.Errorf("expect %v headers, got %v", e, a)
		}
		return "raw", Metadata{}, nil
	})

	out, metadata, err := DecorateHandler(handler, stack).Handle(context.Background(), "params")
	noError(t, err)

	if e, a := "result:raw", out; e != a {
		t.Errorf("expect %v result, got %v", e, a)
	}
	if e, a := "abc", metadata.Get("request-id"); e != a {
		t.Errorf("expect %v metadata, got %v", e, a)
	}

	expectIDs := []string{
		"test stack",
		"Initialize stack step", "validate",
		"Serialize stack step", "serialize",
		"Build stack step", "header",
		"Finalize stack step", "sign",
		"Deserialize stack step", "deserialize",
	}
	if e, a := expectIDs, ids; !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v middleware, got %v", e, a)
	}

	if _, _, err := DecorateHandler(handler, stack).Handle(context.Background(), nil); err == nil {
		t.Errorf("expect validation error, got none")
	}
}

func TestStackString(t *testing.T) {
	stack := NewStack("stack", nil)
	noError(t, stack.Serialize.Add(SerializeMiddlewareFunc("serialize", nil), After))
	noError(t, stack.Deserialize.Add(DeserializeMiddlewareFunc("deserialize", nil), After))

	expect := strings.Join([]string{
		"stack",
		"\tInitialize stack step",
		"\tSerialize stack step",
		"\t\tserialize",
		"\tBuild stack step",
		"\tFinalize stack step",
		"\tDeserialize stack step",
		"\t\tdeserialize",
		"",
	}, "\n")
	if e, a := expect, stack.String(); e != a {
		t.Errorf("expect\n%v\ngot\n%v", e, a)
	}

	expectList := []string{
		"stack",
		"Initialize stack step",
		"Serialize stack step", "serialize",
		"Build stack step",
		"Finalize stack step",
		"Deserialize stack step", "deserialize",
	}
	if e, a := expectList, stack.List(); !reflect.DeepEqual(e, a) {
		t.Errorf("expect %v, got %v", e, a)
	}
}
