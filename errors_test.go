package smithy

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestOperationError(t *testing.T) {
	apiErr := &GenericAPIError{Code: "NoSuchDomain", Message: "The specified domain does not exist.", Fault: FaultClient}
	err := error(&OperationError{ServiceID: "SimpleDB", OperationName: "DomainMetadata", Err: apiErr})

	if e, a := "operation error SimpleDB: DomainMetadata, api error NoSuchDomain: The specified domain does not exist.", err.Error(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}

	var target APIError
	if !errors.As(err, &target) {
		t.Fatalf("expect APIError in chain")
	}
	if e, a := "NoSuchDomain", target.ErrorCode(); e != a {
		t.Errorf("expect %v code, got %v", e, a)
	}
	if e, a := FaultClient, target.ErrorFault(); e != a {
		t.Errorf("expect %v fault, got %v", e, a)
	}
}

func TestErrorFaultString(t *testing.T) {
	cases := map[ErrorFault]string{
		FaultUnknown:  "unknown",
		FaultServer:   "server",
		FaultClient:   "client",
		ErrorFault(9): "unknown",
	}
	for f, expect := range cases {
		if e, a := expect, f.String(); e != a {
			t.Errorf("expect %v, got %v", e, a)
		}
	}
}

func TestCanceledError(t *testing.T) {
	err := error(&CanceledError{Err: context.Canceled})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expect context.Canceled in chain")
	}
	if e, a := "canceled, context canceled", err.Error(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestDeserializationError(t *testing.T) {
	if e, a := "deserialization failed", (&DeserializationError{}).Error(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}

	inner := errors.New("unexpected EOF")
	err := &DeserializationError{Err: inner, Snapshot: []byte("<Select")}
	if !errors.Is(err, inner) {
		t.Errorf("expect wrapped error in chain")
	}
	if e, a := "deserialization failed, unexpected EOF", err.Error(); e != a {
		t.Errorf("expect %q, got %q", e, a)
	}
}

func TestInvalidParamsError(t *testing.T) {
	nested := InvalidParamsError{Context: "ReplaceableAttribute"}
	nested.Add(NewErrParamRequired("Name"))

	err := InvalidParamsError{Context: "PutAttributesInput"}
	err.Add(NewErrParamRequired("DomainName"))
	err.AddNested("Attributes[0]", nested)

	if e, a := 2, err.Len(); e != a {
		t.Fatalf("expect %v errors, got %v", e, a)
	}

	expectFields := []string{
		"PutAttributesInput.DomainName",
		"PutAttributesInput.Attributes[0].Name",
	}
	for i, f := range err.Fields {
		if e, a := expectFields[i], f.Field(); e != a {
			t.Errorf("expect %v field, got %v", e, a)
		}
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "2 validation error(s) found.\n") {
		t.Errorf("expect count prefix, got %q", msg)
	}
	if !strings.Contains(msg, "- missing required field, PutAttributesInput.Attributes[0].Name.\n") {
		t.Errorf("expect nested field message, got %q", msg)
	}
}
