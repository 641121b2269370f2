// Package sigv2 implements AWS Signature Version 2 signing of query protocol
// requests. The signature and its parameters are carried as form values.
package sigv2

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/awslabs/aws-query-go/auth"
	smithytime "github.com/awslabs/aws-query-go/time"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

const (
	// SignatureVersion is the value of the SignatureVersion form value.
	SignatureVersion = "2"

	// SignatureMethod is the value of the SignatureMethod form value.
	SignatureMethod = "HmacSHA256"
)

// Signer signs query protocol requests with Signature Version 2.
type Signer struct{}

var _ auth.Signer = Signer{}

// New returns a Signer.
func New() Signer {
	return Signer{}
}

// SignQuery returns a copy of r whose form body carries AWSAccessKeyId,
// SignatureVersion, SignatureMethod, Timestamp, SecurityToken when the
// credentials have a session, and the Signature computed over all of them.
func (Signer) SignQuery(ctx context.Context, creds auth.Credentials, r *smithyhttp.Request, signingTime time.Time) (*smithyhttp.Request, error) {
	host := r.Host
	if len(host) == 0 {
		host = r.URL.Host
	}
	path := r.URL.EscapedPath()
	if len(path) == 0 {
		path = "/"
	}
	method := r.Method
	if len(method) == 0 {
		method = "POST"
	}

	return auth.SetFormValues(r, func(v url.Values) {
		v.Del("Signature")
		v.Set("AWSAccessKeyId", creds.AccessKeyID)
		v.Set("SignatureVersion", SignatureVersion)
		v.Set("SignatureMethod", SignatureMethod)
		v.Set("Timestamp", smithytime.FormatDateTime(signingTime))
		if len(creds.SessionToken) != 0 {
			v.Set("SecurityToken", creds.SessionToken)
		}

		stringToSign := StringToSign(method, host, path, v)
		h := hmac.New(sha256.New, []byte(creds.SecretAccessKey))
		h.Write([]byte(stringToSign))
		v.Set("Signature", base64.StdEncoding.EncodeToString(h.Sum(nil)))
	})
}

// StringToSign returns the Signature Version 2 string to sign of a request
// with the form values v.
func StringToSign(method, host, path string, v url.Values) string {
	return strings.Join([]string{
		strings.ToUpper(method),
		strings.ToLower(host),
		path,
		canonicalQuery(v),
	}, "\n")
}

func canonicalQuery(v url.Values) string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		values := append([]string(nil), v[k]...)
		sort.Strings(values)
		for _, value := range values {
			if sb.Len() != 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(escape(k))
			sb.WriteByte('=')
			sb.WriteString(escape(value))
		}
	}
	return sb.String()
}

// escape percent encodes every byte outside the RFC 3986 unreserved set.
func escape(s string) string {
	const hexUpper = "0123456789ABCDEF"

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9' ||
			c == '-' || c == '_' || c == '.' || c == '~' {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hexUpper[c>>4])
		sb.WriteByte(hexUpper[c&0x0f])
	}
	return sb.String()
}
