// Package sigv4 implements AWS Signature Version 4 header signing of query
// protocol requests.
package sigv4

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/awslabs/aws-query-go/auth"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

const (
	// Algorithm is the signing algorithm named in the Authorization header.
	Algorithm = "AWS4-HMAC-SHA256"

	// TimeFormat is the full-width form to be used in the X-Amz-Date header.
	TimeFormat = "20060102T150405Z"

	// ShortTimeFormat is the shortened form used in credential scope.
	ShortTimeFormat = "20060102"
)

// SignedHeaderRules determines whether a request header should be included
// in the calculated signature.
//
// By convention, IsSigned is passed the lowercase canonical header name.
type SignedHeaderRules interface {
	IsSigned(string) bool
}

// SignerOptions configures a Signer.
type SignerOptions struct {
	// Rules to determine what headers are signed.
	//
	// By default, the signer will only include the minimum required headers:
	//   - Host
	//   - X-Amz-*
	HeaderRules SignedHeaderRules

	// Disables the double escape of the canonical request path. Services
	// using S3 style path semantics set this.
	DisableDoublePathEscape bool

	// Adds the X-Amz-Content-Sha256 header to signed requests.
	AddPayloadHashHeader bool
}

// Signer signs query protocol requests for a single service and region.
type Signer struct {
	// The signing name of the service.
	Service string

	// The region requests are scoped to.
	Region string

	options SignerOptions
}

var _ auth.Signer = (*Signer)(nil)

// New returns a Signer for the service's signing name and region.
func New(service, region string, optFns ...func(*SignerOptions)) *Signer {
	var options SignerOptions
	for _, fn := range optFns {
		fn(&options)
	}
	if options.HeaderRules == nil {
		options.HeaderRules = defaultHeaderRules{}
	}

	return &Signer{
		Service: service,
		Region:  region,
		options: options,
	}
}

// SignQuery signs a copy of r, hashing the form body as the payload. The
// X-Amz-Date, X-Amz-Security-Token and Authorization headers of the copy are
// set.
func (s *Signer) SignQuery(ctx context.Context, creds auth.Credentials, r *smithyhttp.Request, signingTime time.Time) (*smithyhttp.Request, error) {
	if len(s.Service) == 0 {
		return nil, fmt.Errorf("sigv4: signing name is required")
	}
	if len(s.Region) == 0 {
		return nil, fmt.Errorf("sigv4: region is required")
	}

	payloadHash, err := hashPayload(r)
	if err != nil {
		return nil, fmt.Errorf("sigv4: compute payload hash, %w", err)
	}

	req := r.Clone()
	signingTime = signingTime.UTC()

	host := req.Host
	if len(host) == 0 {
		host = req.URL.Host
	}
	req.Header.Set("Host", host)
	req.Header.Set("X-Amz-Date", signingTime.Format(TimeFormat))
	if len(creds.SessionToken) > 0 {
		req.Header.Set("X-Amz-Security-Token", creds.SessionToken)
	} else {
		req.Header.Del("X-Amz-Security-Token")
	}
	if s.options.AddPayloadHashHeader {
		req.Header.Set("X-Amz-Content-Sha256", hex.EncodeToString(payloadHash))
	}

	scope := strings.Join([]string{
		signingTime.Format(ShortTimeFormat),
		s.Region,
		s.Service,
		"aws4_request",
	}, "/")

	canonHeaders, signedHeaders := s.buildCanonicalHeaders(req)
	canonicalRequest := s.buildCanonicalRequest(req, canonHeaders, signedHeaders, payloadHash)
	stringToSign := strings.Join([]string{
		Algorithm,
		signingTime.Format(TimeFormat),
		scope,
		hex.EncodeToString(stosha(canonicalRequest)),
	}, "\n")

	key := deriveKey(creds.SecretAccessKey, s.Service, s.Region, signingTime)
	signature := hex.EncodeToString(hmacsha256(key, []byte(stringToSign)))

	req.Header.Set("Authorization", fmt.Sprintf("%s Credential=%s, SignedHeaders=%s, Signature=%s",
		Algorithm,
		creds.AccessKeyID+"/"+scope,
		signedHeaders,
		signature))

	return req, nil
}

func hashPayload(r *smithyhttp.Request) ([]byte, error) {
	stream := r.GetStream()
	if stream == nil {
		return stosha(""), nil
	}
	if err := r.RewindStream(); err != nil {
		return nil, err
	}

	h := sha256.New()
	if _, err := io.Copy(h, stream); err != nil {
		return nil, err
	}
	if err := r.RewindStream(); err != nil {
		return nil, err
	}
	return h.Sum(nil), nil
}

func deriveKey(secret, service, region string, t time.Time) []byte {
	key := hmacsha256([]byte("AWS4"+secret), []byte(t.Format(ShortTimeFormat)))
	key = hmacsha256(key, []byte(region))
	key = hmacsha256(key, []byte(service))
	return hmacsha256(key, []byte("aws4_request"))
}

func hmacsha256(key, data []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(data)
	return h.Sum(nil)
}

func stosha(s string) []byte {
	h := sha256.Sum256([]byte(s))
	return h[:]
}

type defaultHeaderRules struct{}

func (defaultHeaderRules) IsSigned(h string) bool {
	return h == "host" || strings.HasPrefix(h, "x-amz-")
}
