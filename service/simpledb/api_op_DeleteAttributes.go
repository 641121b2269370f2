package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
)

// DeleteAttributes deletes attributes of an item. Without Attributes the
// whole item is deleted.
func (c *Client) DeleteAttributes(ctx context.Context, params *DeleteAttributesInput, optFns ...func(*Options)) (*DeleteAttributesOutput, error) {
	out, metadata, err := invoke(ctx, c, opDeleteAttributes, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type DeleteAttributesInput struct {
	// This member is required.
	DomainName *string

	// This member is required.
	ItemName *string

	// The attributes to delete. An attribute without a value deletes all of
	// its values.
	Attributes []types.Attribute

	// Performs the delete only if the condition holds.
	Expected *types.UpdateCondition
}

type DeleteAttributesOutput struct {
	ResultMetadata middleware.Metadata
}

var opDeleteAttributes = awsquery.Operation[DeleteAttributesInput, DeleteAttributesOutput]{
	Action:    "DeleteAttributes",
	Serialize: serializeDeleteAttributesInput,
	Validate:  validateDeleteAttributesInput,
	Result:    emptyResultShape[DeleteAttributesOutput]("DeleteAttributes"),
}
