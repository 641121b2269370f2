package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	"github.com/awslabs/aws-query-go/service/simpledb/types"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// GetAttributes returns the attributes of an item. A missing item has no
// attributes.
func (c *Client) GetAttributes(ctx context.Context, params *GetAttributesInput, optFns ...func(*Options)) (*GetAttributesOutput, error) {
	out, metadata, err := invoke(ctx, c, opGetAttributes, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type GetAttributesInput struct {
	// This member is required.
	DomainName *string

	// This member is required.
	ItemName *string

	// Limits the attributes returned. All attributes are returned when
	// empty.
	AttributeNames []string

	// Reads the latest committed values when true.
	ConsistentRead *bool
}

type GetAttributesOutput struct {
	Attributes []types.Attribute

	ResultMetadata middleware.Metadata
}

// GetAttributesResultShape unmarshals the GetAttributesResult element of a
// GetAttributes response.
var GetAttributesResultShape = smithyxml.NewShape[GetAttributesOutput]("GetAttributesResult",
	smithyxml.Member("Attribute", smithyxml.Deref(attributeShape.Unmarshal), func(v *GetAttributesOutput, a types.Attribute) {
		v.Attributes = append(v.Attributes, a)
	}),
)

var opGetAttributes = awsquery.Operation[GetAttributesInput, GetAttributesOutput]{
	Action:    "GetAttributes",
	Serialize: serializeGetAttributesInput,
	Validate:  validateGetAttributesInput,
	Result:    GetAttributesResultShape,
}
