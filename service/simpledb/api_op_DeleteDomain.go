package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
)

// DeleteDomain deletes a domain and all of its items. Deleting a domain that
// does not exist succeeds.
func (c *Client) DeleteDomain(ctx context.Context, params *DeleteDomainInput, optFns ...func(*Options)) (*DeleteDomainOutput, error) {
	out, metadata, err := invoke(ctx, c, opDeleteDomain, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type DeleteDomainInput struct {
	// This member is required.
	DomainName *string
}

type DeleteDomainOutput struct {
	ResultMetadata middleware.Metadata
}

var opDeleteDomain = awsquery.Operation[DeleteDomainInput, DeleteDomainOutput]{
	Action:    "DeleteDomain",
	Serialize: serializeDeleteDomainInput,
	Validate:  validateDeleteDomainInput,
	Result:    emptyResultShape[DeleteDomainOutput]("DeleteDomain"),
}
