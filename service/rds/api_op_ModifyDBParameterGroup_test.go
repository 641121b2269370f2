package rds

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	smithy "github.com/awslabs/aws-query-go"
	"github.com/awslabs/aws-query-go/auth"
	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/service/rds/types"
	smithytesting "github.com/awslabs/aws-query-go/testing"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

func ptrString(v string) *string { return &v }

const modifyResponse = `<ModifyDBParameterGroupResponse xmlns="http://rds.amazonaws.com/doc/2014-10-31/">
  <ModifyDBParameterGroupResult>
    <DBParameterGroupName>mydbparametergroup</DBParameterGroupName>
  </ModifyDBParameterGroupResult>
  <ResponseMetadata>
    <RequestId>12d7435e-bba0-11e3-fe11-33d33a9bb7e3</RequestId>
  </ResponseMetadata>
</ModifyDBParameterGroupResponse>`

func TestModifyDBParameterGroup(t *testing.T) {
	var body []byte
	var authorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		authorization = r.Header.Get("Authorization")
		io.WriteString(w, modifyResponse)
	}))
	defer server.Close()

	client := New(Options{
		BaseEndpoint: server.URL,
		Credentials:  auth.NewStaticCredentialsProvider("AKID", "SECRET", ""),
	})

	out, err := client.ModifyDBParameterGroup(context.Background(), &ModifyDBParameterGroupInput{
		DBParameterGroupName: ptrString("mydbparametergroup"),
		Parameters: []types.Parameter{
			{
				ParameterName:  ptrString("max_user_connections"),
				ParameterValue: ptrString("24"),
				ApplyMethod:    types.ApplyMethodPendingReboot,
			},
			{
				ParameterName:  ptrString("max_allowed_packet"),
				ParameterValue: ptrString("1024"),
				ApplyMethod:    types.ApplyMethodImmediate,
			},
		},
	})
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	if e, a := "mydbparametergroup", *out.DBParameterGroupName; e != a {
		t.Errorf("expect %v name, got %v", e, a)
	}
	if v, _ := awsquery.GetRequestIDMetadata(out.ResultMetadata); v != "12d7435e-bba0-11e3-fe11-33d33a9bb7e3" {
		t.Errorf("expect request id, got %q", v)
	}

	smithytesting.AssertURLFormEqual(t, []byte(strings.Join([]string{
		"Action=ModifyDBParameterGroup",
		"Version=2014-10-31",
		"DBParameterGroupName=mydbparametergroup",
		"Parameters.member.1.ParameterName=max_user_connections",
		"Parameters.member.1.ParameterValue=24",
		"Parameters.member.1.ApplyMethod=pending-reboot",
		"Parameters.member.2.ParameterName=max_allowed_packet",
		"Parameters.member.2.ParameterValue=1024",
		"Parameters.member.2.ApplyMethod=immediate",
	}, "&")), body)

	if e, a := "AWS4-HMAC-SHA256 Credential=AKID/", authorization; !strings.HasPrefix(a, e) {
		t.Errorf("expect authorization to start with %q, got %q", e, a)
	}
	if e, a := "/us-east-1/rds/aws4_request", authorization; !strings.Contains(a, e) {
		t.Errorf("expect authorization scope %q, got %q", e, a)
	}
}

func TestModifyDBParameterGroupValidation(t *testing.T) {
	client := New(Options{Region: "us-west-2"})

	_, err := client.ModifyDBParameterGroup(context.Background(), &ModifyDBParameterGroupInput{})
	var invalidParams *smithy.InvalidParamsError
	if !errors.As(err, &invalidParams) {
		t.Fatalf("expect invalid params error, got %v", err)
	}
	if e, a := 2, invalidParams.Len(); e != a {
		t.Errorf("expect %v invalid params, got %v", e, a)
	}
}

func TestModifyDBParameterGroupError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
		io.WriteString(w, `<ErrorResponse xmlns="http://rds.amazonaws.com/doc/2014-10-31/">
  <Error>
    <Type>Sender</Type>
    <Code>DBParameterGroupNotFound</Code>
    <Message>DBParameterGroup not found: missing</Message>
  </Error>
  <RequestId>5e8a7f3c-1234-4c4a-9a43-bbd1b8b1f3a7</RequestId>
</ErrorResponse>`)
	}))
	defer server.Close()

	client := New(Options{BaseEndpoint: server.URL})
	_, err := client.ModifyDBParameterGroup(context.Background(), &ModifyDBParameterGroupInput{
		DBParameterGroupName: ptrString("missing"),
		Parameters:           []types.Parameter{},
	})

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expect api error, got %v", err)
	}
	if e, a := "DBParameterGroupNotFound", apiErr.ErrorCode(); e != a {
		t.Errorf("expect %v code, got %v", e, a)
	}
	if e, a := smithy.FaultClient, apiErr.ErrorFault(); e != a {
		t.Errorf("expect %v fault, got %v", e, a)
	}
}

func TestModifyDBParameterGroupResultShape(t *testing.T) {
	cases := map[string]struct {
		body   string
		expect *string
	}{
		"full response": {
			body:   modifyResponse,
			expect: ptrString("mydbparametergroup"),
		},
		"missing name": {
			body: `<ModifyDBParameterGroupResponse><ModifyDBParameterGroupResult/></ModifyDBParameterGroupResponse>`,
		},
		"name outside the result": {
			body: `<ModifyDBParameterGroupResponse><DBParameterGroupName>x</DBParameterGroupName></ModifyDBParameterGroupResponse>`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			out, err := ModifyDBParameterGroupResultShape.Unmarshal(smithyxml.NewCursor(strings.NewReader(c.body)))
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if err := smithytesting.CompareValues(c.expect, out.DBParameterGroupName); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestOptionsCopy(t *testing.T) {
	o := Options{Region: "us-east-1", APIOptions: make([]func(*middleware.Stack) error, 1, 2)}
	c := o.Copy()
	c.APIOptions = append(c.APIOptions, nil)
	c.APIOptions[0] = func(*middleware.Stack) error { return nil }

	if o.APIOptions[0] != nil {
		t.Errorf("expect original APIOptions not to be modified")
	}
}
