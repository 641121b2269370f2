package sigv4

import (
	"encoding/hex"
	"sort"
	"strings"

	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

func (s *Signer) buildCanonicalRequest(req *smithyhttp.Request, canonHeaders, signedHeaders string, payloadHash []byte) string {
	canonPath := req.URL.EscapedPath()
	if len(canonPath) == 0 {
		canonPath = "/"
	}
	if !s.options.DisableDoublePathEscape {
		canonPath = uriEncode(canonPath)
	}

	query := req.URL.Query()
	for key := range query {
		sort.Strings(query[key])
	}
	canonQuery := strings.Replace(query.Encode(), "+", "%20", -1)

	return strings.Join([]string{
		req.Method,
		canonPath,
		canonQuery,
		canonHeaders,
		signedHeaders,
		hex.EncodeToString(payloadHash),
	}, "\n")
}

func (s *Signer) buildCanonicalHeaders(req *smithyhttp.Request) (canon, signed string) {
	var canonHeaders []string
	signedHeaders := map[string][]string{}

	for header, values := range req.Header {
		lowercase := strings.ToLower(header)
		if !s.options.HeaderRules.IsSigned(lowercase) {
			continue
		}

		canonHeaders = append(canonHeaders, lowercase)
		signedHeaders[lowercase] = values
	}
	sort.Strings(canonHeaders)

	var ch strings.Builder
	for i := range canonHeaders {
		ch.WriteString(canonHeaders[i])
		ch.WriteRune(':')

		values := signedHeaders[canonHeaders[i]]
		for j, value := range values {
			ch.WriteString(strings.TrimSpace(value))
			if j < len(values)-1 {
				ch.WriteRune(',')
			}
		}
		ch.WriteRune('\n')
	}

	return ch.String(), strings.Join(canonHeaders, ";")
}

// uriEncode percent encodes every byte outside the RFC 3986 unreserved set,
// leaving path separators as is.
func uriEncode(s string) string {
	const hexUpper = "0123456789ABCDEF"

	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) || c == '/' {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(hexUpper[c>>4])
		sb.WriteByte(hexUpper[c&0x0f])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	return 'A' <= c && c <= 'Z' ||
		'a' <= c && c <= 'z' ||
		'0' <= c && c <= '9' ||
		c == '-' || c == '_' || c == '.' || c == '~'
}
