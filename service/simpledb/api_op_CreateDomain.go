package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
)

// CreateDomain creates a domain. Creating a domain that already exists
// succeeds without changing it.
func (c *Client) CreateDomain(ctx context.Context, params *CreateDomainInput, optFns ...func(*Options)) (*CreateDomainOutput, error) {
	out, metadata, err := invoke(ctx, c, opCreateDomain, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type CreateDomainInput struct {
	// The name of the domain, 3 to 255 characters of a-z, A-Z, 0-9, "_", "-"
	// and ".".
	//
	// This member is required.
	DomainName *string
}

type CreateDomainOutput struct {
	ResultMetadata middleware.Metadata
}

var opCreateDomain = awsquery.Operation[CreateDomainInput, CreateDomainOutput]{
	Action:    "CreateDomain",
	Serialize: serializeCreateDomainInput,
	Validate:  validateCreateDomainInput,
	Result:    emptyResultShape[CreateDomainOutput]("CreateDomain"),
}
