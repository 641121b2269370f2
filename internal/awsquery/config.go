package awsquery

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/awslabs/aws-query-go/auth"
	"github.com/awslabs/aws-query-go/internal/uri"
	"github.com/awslabs/aws-query-go/logging"
	"github.com/awslabs/aws-query-go/middleware"
	smithyhttp "github.com/awslabs/aws-query-go/transport/http"
)

// Config is the resolved client configuration an operation is invoked with.
type Config struct {
	// Endpoint the request is sent to, e.g. https://sdb.amazonaws.com
	Endpoint string

	HTTPClient  smithyhttp.ClientDo
	Credentials auth.CredentialsProvider
	Signer      auth.Signer

	Logger        logging.Logger
	ClientLogMode logging.ClientLogMode

	// Keys of the User-Agent header.
	UserAgent []string

	// Stack mutators applied after the protocol middleware are added.
	APIOptions []func(*middleware.Stack) error
}

// ResolveEndpoint returns the endpoint of a service in region. Returns
// baseEndpoint instead when set. The template's "{region}" is replaced by the
// region, which must be a valid host label.
func ResolveEndpoint(template, region, baseEndpoint string) (string, error) {
	if len(baseEndpoint) != 0 {
		if _, err := uri.ParseEndpoint(baseEndpoint); err != nil {
			return "", err
		}
		return baseEndpoint, nil
	}

	if len(region) == 0 {
		return "", fmt.Errorf("region is required to resolve the endpoint")
	}
	if !uri.ValidHostLabel(region) {
		return "", fmt.Errorf("invalid region %q, must be a valid host label", region)
	}

	return strings.ReplaceAll(template, "{region}", region), nil
}

// NewHTTPClient returns the default HTTP client of a service client, with the
// timeout applied when positive.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		return &http.Client{}
	}
	return &http.Client{Timeout: timeout}
}
