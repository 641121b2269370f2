// Package uri validates the host components of service endpoints.
package uri

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ValidPortNumber returns whether the port is valid RFC 3986 port.
func ValidPortNumber(port string) bool {
	i, err := strconv.Atoi(port)
	if err != nil {
		return false
	}

	if i < 0 || i > 65535 {
		return false
	}
	return true
}

// ValidHostLabel returns whether the label is a valid RFC 3986 host label.
func ValidHostLabel(label string) bool {
	if l := len(label); l < 1 || l > 63 {
		return false
	}
	if c := label[0]; !isValidHostLabelFirstCharacter(rune(c)) {
		return false
	}

	for _, r := range label[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r == '-':
		default:
			return false
		}
	}

	return true
}

func isValidHostLabelFirstCharacter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// ValidHost returns whether every dot separated label of host is a valid
// host label.
func ValidHost(host string) bool {
	if len(host) == 0 {
		return false
	}
	for _, label := range strings.Split(host, ".") {
		if !ValidHostLabel(label) {
			return false
		}
	}
	return true
}

// ParseEndpoint parses an absolute http or https endpoint URL, validating its
// host and port.
func ParseEndpoint(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q, %w", raw, err)
	}

	switch u.Scheme {
	case "http", "https":
	default:
		return nil, fmt.Errorf("invalid endpoint %q, scheme must be http or https", raw)
	}

	if host := u.Hostname(); !ValidHost(host) {
		return nil, fmt.Errorf("invalid endpoint %q, invalid host %q", raw, host)
	}
	if port := u.Port(); len(port) != 0 && !ValidPortNumber(port) {
		return nil, fmt.Errorf("invalid endpoint %q, invalid port %q", raw, port)
	}

	return u, nil
}
