package sigv4

import (
	"context"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/awslabs/aws-query-go/auth"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

var credsSession = auth.Credentials{
	AccessKeyID:     "AKID",
	SecretAccessKey: "SECRET",
	SessionToken:    "SESSION",
}

func newRequest(t *testing.T, body string) *smithyhttp.Request {
	t.Helper()

	req := smithyhttp.NewStackRequest().(*smithyhttp.Request)
	req.Method = "POST"
	u, err := url.Parse("https://service.region.amazonaws.com")
	if err != nil {
		t.Fatal(err)
	}
	req.URL = u

	req, err = req.SetStream(strings.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	return req
}

func TestSignQuery(t *testing.T) {
	for name, tt := range map[string]struct {
		Credentials     auth.Credentials
		Options         func(*SignerOptions)
		ExpectSignature string
		ExpectToken     string
		ExpectHash      string
	}{
		"minimal case": {
			Credentials:     credsSession,
			ExpectSignature: "AWS4-HMAC-SHA256 Credential=AKID/19700101/us-east-1/dynamodb/aws4_request, SignedHeaders=host;x-amz-date;x-amz-security-token, Signature=e75efbd4e2b3d3a8218d8fc0125e8fc888844510125ca6f33be555fd76d9aa18",
			ExpectToken:     "SESSION",
		},
		"payload hash header": {
			Credentials: credsSession,
			Options: func(o *SignerOptions) {
				o.AddPayloadHashHeader = true
			},
			ExpectToken: "SESSION",
			ExpectHash:  "44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a",
		},
	} {
		t.Run(name, func(t *testing.T) {
			var optFns []func(*SignerOptions)
			if tt.Options != nil {
				optFns = append(optFns, tt.Options)
			}
			signer := New("dynamodb", "us-east-1", optFns...)

			req := newRequest(t, "{}")
			signed, err := signer.SignQuery(context.Background(), tt.Credentials, req, time.Unix(0, 0))
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			if len(tt.ExpectSignature) != 0 {
				if e, a := tt.ExpectSignature, signed.Header.Get("Authorization"); e != a {
					t.Errorf("expect signature:\n%s\n!=\n%s", e, a)
				}
			}
			if e, a := "19700101T000000Z", signed.Header.Get("X-Amz-Date"); e != a {
				t.Errorf("expect date: %s != %s", e, a)
			}
			if e, a := tt.ExpectToken, signed.Header.Get("X-Amz-Security-Token"); e != a {
				t.Errorf("expect token: %s != %s", e, a)
			}
			if e, a := tt.ExpectHash, signed.Header.Get("X-Amz-Content-Sha256"); e != a {
				t.Errorf("expect payload hash: %s != %s", e, a)
			}

			if v := req.Header.Get("Authorization"); len(v) != 0 {
				t.Errorf("expect original request unsigned, got %v", v)
			}

			body, err := io.ReadAll(signed.GetStream())
			if err != nil {
				t.Fatal(err)
			}
			if e, a := "{}", string(body); e != a {
				t.Errorf("expect body rewound to %q, got %q", e, a)
			}
		})
	}
}

func TestSignQuery_MissingScope(t *testing.T) {
	for name, signer := range map[string]*Signer{
		"no service": New("", "us-east-1"),
		"no region":  New("rds", ""),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := signer.SignQuery(context.Background(), credsSession, newRequest(t, ""), time.Unix(0, 0))
			if err == nil {
				t.Fatalf("expect error")
			}
		})
	}
}

func TestBuildCanonicalRequest(t *testing.T) {
	for name, tt := range map[string]struct {
		Path   string
		Expect string
	}{
		"signed payload": {
			Path: "/path1/path 2",
			Expect: `POST
/path1/path%25202
a=b
host:service.region.amazonaws.com
x-amz-foo:bar

host;x-amz-foo
44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a`,
		},
		"no path": {
			Path: "",
			Expect: `POST
/
a=b
host:service.region.amazonaws.com
x-amz-foo:bar

host;x-amz-foo
44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			req := newRequest(t, "{}")
			req.URL.Path = tt.Path
			req.URL.RawQuery = "a=b"
			req.Header.Set("Host", "service.region.amazonaws.com")
			req.Header.Set("X-Amz-Foo", "\t \tbar ")
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

			s := New("service", "region")
			canonHeaders, signedHeaders := s.buildCanonicalHeaders(req)
			actual := s.buildCanonicalRequest(req, canonHeaders, signedHeaders, stosha("{}"))
			if tt.Expect != actual {
				t.Errorf("canonical request\n%s\n!=\n%s", tt.Expect, actual)
			}
		})
	}
}
