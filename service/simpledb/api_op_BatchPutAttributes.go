package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
)

// BatchPutAttributes puts the attributes of up to 25 items in a single
// request.
func (c *Client) BatchPutAttributes(ctx context.Context, params *BatchPutAttributesInput, optFns ...func(*Options)) (*BatchPutAttributesOutput, error) {
	out, metadata, err := invoke(ctx, c, opBatchPutAttributes, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type BatchPutAttributesInput struct {
	// This member is required.
	DomainName *string

	// This member is required.
	Items []types.ReplaceableItem
}

type BatchPutAttributesOutput struct {
	ResultMetadata middleware.Metadata
}

var opBatchPutAttributes = awsquery.Operation[BatchPutAttributesInput, BatchPutAttributesOutput]{
	Action:    "BatchPutAttributes",
	Serialize: serializeBatchPutAttributesInput,
	Validate:  validateBatchPutAttributesInput,
	Result:    emptyResultShape[BatchPutAttributesOutput]("BatchPutAttributes"),
}
