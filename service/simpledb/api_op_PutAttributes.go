package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
)

// PutAttributes creates or replaces attributes of an item. The item is
// created if it does not exist.
func (c *Client) PutAttributes(ctx context.Context, params *PutAttributesInput, optFns ...func(*Options)) (*PutAttributesOutput, error) {
	out, metadata, err := invoke(ctx, c, opPutAttributes, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type PutAttributesInput struct {
	// This member is required.
	DomainName *string

	// This member is required.
	ItemName *string

	// This member is required.
	Attributes []types.ReplaceableAttribute

	// Performs the put only if the condition holds.
	Expected *types.UpdateCondition
}

type PutAttributesOutput struct {
	ResultMetadata middleware.Metadata
}

var opPutAttributes = awsquery.Operation[PutAttributesInput, PutAttributesOutput]{
	Action:    "PutAttributes",
	Serialize: serializePutAttributesInput,
	Validate:  validatePutAttributesInput,
	Result:    emptyResultShape[PutAttributesOutput]("PutAttributes"),
}
