package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// Select returns the items matching a select expression, e.g.
//
//	select * from `mydomain` where itemName() = 'item1'
func (c *Client) Select(ctx context.Context, params *SelectInput, optFns ...func(*Options)) (*SelectOutput, error) {
	out, metadata, err := invoke(ctx, c, opSelect, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type SelectInput struct {
	// This member is required.
	SelectExpression *string

	// The token of the next page of items.
	NextToken *string

	// Reads the latest committed values when true.
	ConsistentRead *bool
}

type SelectOutput struct {
	Items []types.Item

	// Set when more items are available.
	NextToken *string

	ResultMetadata middleware.Metadata
}

// SelectResultShape unmarshals the SelectResult element of a Select response.
var SelectResultShape = smithyxml.NewShape[SelectOutput]("SelectResult",
	smithyxml.Member("Item", smithyxml.Deref(itemShape.Unmarshal), func(v *SelectOutput, item types.Item) {
		v.Items = append(v.Items, item)
	}),
	smithyxml.Member("NextToken", smithyxml.String, func(v *SelectOutput, s *string) { v.NextToken = s }),
)

var opSelect = awsquery.Operation[SelectInput, SelectOutput]{
	Action:    "Select",
	Serialize: serializeSelectInput,
	Validate:  validateSelectInput,
	Result:    SelectResultShape,
}
