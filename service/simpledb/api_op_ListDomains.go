package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// ListDomains lists the domains of the account. Results are paginated with
// NextToken.
func (c *Client) ListDomains(ctx context.Context, params *ListDomainsInput, optFns ...func(*Options)) (*ListDomainsOutput, error) {
	out, metadata, err := invoke(ctx, c, opListDomains, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type ListDomainsInput struct {
	// The maximum number of domain names returned, at most 100.
	MaxNumberOfDomains *int32

	// The token of the next page of domain names.
	NextToken *string
}

type ListDomainsOutput struct {
	DomainNames []string

	// Set when more domain names are available.
	NextToken *string

	ResultMetadata middleware.Metadata
}

// ListDomainsResultShape unmarshals the ListDomainsResult element of a
// ListDomains response.
var ListDomainsResultShape = smithyxml.NewShape[ListDomainsOutput]("ListDomainsResult",
	smithyxml.Member("DomainName", smithyxml.Deref(smithyxml.String), func(v *ListDomainsOutput, s string) {
		v.DomainNames = append(v.DomainNames, s)
	}),
	smithyxml.Member("NextToken", smithyxml.String, func(v *ListDomainsOutput, s *string) { v.NextToken = s }),
)

var opListDomains = awsquery.Operation[ListDomainsInput, ListDomainsOutput]{
	Action:    "ListDomains",
	Serialize: serializeListDomainsInput,
	Result:    ListDomainsResultShape,
}
