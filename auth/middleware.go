package auth

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/middleware/id"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

// Signer signs a query protocol request with the credentials provided,
// returning the signed request. Signers adding form values should use
// SetFormValues.
type Signer interface {
	SignQuery(ctx context.Context, credentials Credentials, r *smithyhttp.Request, signingTime time.Time) (*smithyhttp.Request, error)
}

// SignerFunc wraps a function as a Signer.
type SignerFunc func(ctx context.Context, credentials Credentials, r *smithyhttp.Request, signingTime time.Time) (*smithyhttp.Request, error)

// SignQuery calls the wrapped function.
func (fn SignerFunc) SignQuery(ctx context.Context, credentials Credentials, r *smithyhttp.Request, signingTime time.Time) (*smithyhttp.Request, error) {
	return fn(ctx, credentials, r, signingTime)
}

// SigningMiddleware provides the Finalize middleware step for signing a
// request with the credentials retrieved from the provider. Without a Signer
// the request is sent unsigned, carrying only the access key id and the
// session token as AWSAccessKeyId and SecurityToken form values.
type SigningMiddleware struct {
	Credentials CredentialsProvider
	Signer      Signer

	now func() time.Time
}

// AddSigningMiddleware adds the SigningMiddleware to the Finalize step of
// the stack. A nil or anonymous provider leaves requests unauthenticated.
func AddSigningMiddleware(stack *middleware.Stack, provider CredentialsProvider, signer Signer) error {
	return stack.Finalize.Add(&SigningMiddleware{
		Credentials: provider,
		Signer:      signer,
		now:         time.Now,
	}, middleware.After)
}

// ID returns the identifier of the middleware.
func (*SigningMiddleware) ID() string { return id.Signing }

// HandleFinalize signs the request.
func (m *SigningMiddleware) HandleFinalize(
	ctx context.Context, in middleware.FinalizeInput, next middleware.FinalizeHandler,
) (
	out middleware.FinalizeOutput, metadata middleware.Metadata, err error,
) {
	if isAnonymous(m.Credentials) || ctx.Value(signedKey{}) != nil {
		return next.HandleFinalize(ctx, in)
	}

	req, ok := in.Request.(*smithyhttp.Request)
	if !ok {
		return out, metadata, fmt.Errorf("unexpected request middleware type %T", in.Request)
	}

	creds, err := m.Credentials.Retrieve(ctx)
	if err != nil {
		return out, metadata, fmt.Errorf("failed to retrieve credentials, %w", err)
	}

	now := time.Now
	if m.now != nil {
		now = m.now
	}

	if m.Signer != nil {
		req, err = m.Signer.SignQuery(ctx, creds, req, now().UTC())
		if err != nil {
			return out, metadata, fmt.Errorf("failed to sign request, %w", err)
		}
	} else {
		req, err = SetFormValues(req, func(v url.Values) {
			v.Set("AWSAccessKeyId", creds.AccessKeyID)
			if len(creds.SessionToken) != 0 {
				v.Set("SecurityToken", creds.SessionToken)
			}
		})
		if err != nil {
			return out, metadata, err
		}
	}
	in.Request = req

	return next.HandleFinalize(context.WithValue(ctx, signedKey{}, true), in)
}

func isAnonymous(p CredentialsProvider) bool {
	if p == nil {
		return true
	}
	switch p.(type) {
	case AnonymousCredentials, *AnonymousCredentials:
		return true
	}
	return false
}

// SetFormValues parses the request's form body, applies fn to its values and
// returns a copy of the request with the re-encoded body.
func SetFormValues(req *smithyhttp.Request, fn func(url.Values)) (*smithyhttp.Request, error) {
	var body string
	if stream := req.GetStream(); stream != nil {
		if err := req.RewindStream(); err != nil {
			return nil, fmt.Errorf("failed to rewind request body, %w", err)
		}
		b, err := io.ReadAll(stream)
		if err != nil {
			return nil, fmt.Errorf("failed to read request body, %w", err)
		}
		body = string(b)
	}

	values, err := url.ParseQuery(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse request form body, %w", err)
	}
	fn(values)

	encoded := values.Encode()
	rc, err := req.SetStream(strings.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("failed to set request body, %w", err)
	}
	rc.ContentLength = int64(len(encoded))

	return rc, nil
}
