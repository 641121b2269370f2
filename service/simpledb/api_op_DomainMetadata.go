package simpledb

import (
	"context"

	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// DomainMetadata returns the item and attribute counts and sizes of a domain.
func (c *Client) DomainMetadata(ctx context.Context, params *DomainMetadataInput, optFns ...func(*Options)) (*DomainMetadataOutput, error) {
	out, metadata, err := invoke(ctx, c, opDomainMetadata, params, optFns)
	if err != nil {
		return nil, err
	}
	out.ResultMetadata = metadata
	return out, nil
}

type DomainMetadataInput struct {
	// This member is required.
	DomainName *string
}

type DomainMetadataOutput struct {
	ItemCount                *int32
	ItemNamesSizeBytes       *int64
	AttributeNameCount       *int32
	AttributeNamesSizeBytes  *int64
	AttributeValueCount      *int32
	AttributeValuesSizeBytes *int64

	// Seconds since the epoch when the metadata was last updated.
	Timestamp *int32

	ResultMetadata middleware.Metadata
}

// DomainMetadataResultShape unmarshals the DomainMetadataResult element of a
// DomainMetadata response.
var DomainMetadataResultShape = smithyxml.NewShape[DomainMetadataOutput]("DomainMetadataResult",
	smithyxml.Member("ItemCount", smithyxml.Int32, func(v *DomainMetadataOutput, i *int32) { v.ItemCount = i }),
	smithyxml.Member("ItemNamesSizeBytes", smithyxml.Int64, func(v *DomainMetadataOutput, i *int64) { v.ItemNamesSizeBytes = i }),
	smithyxml.Member("AttributeNameCount", smithyxml.Int32, func(v *DomainMetadataOutput, i *int32) { v.AttributeNameCount = i }),
	smithyxml.Member("AttributeNamesSizeBytes", smithyxml.Int64, func(v *DomainMetadataOutput, i *int64) { v.AttributeNamesSizeBytes = i }),
	smithyxml.Member("AttributeValueCount", smithyxml.Int32, func(v *DomainMetadataOutput, i *int32) { v.AttributeValueCount = i }),
	smithyxml.Member("AttributeValuesSizeBytes", smithyxml.Int64, func(v *DomainMetadataOutput, i *int64) { v.AttributeValuesSizeBytes = i }),
	smithyxml.Member("Timestamp", smithyxml.Int32, func(v *DomainMetadataOutput, i *int32) { v.Timestamp = i }),
)

var opDomainMetadata = awsquery.Operation[DomainMetadataInput, DomainMetadataOutput]{
	Action:    "DomainMetadata",
	Serialize: serializeDomainMetadataInput,
	Validate:  validateDomainMetadataInput,
	Result:    DomainMetadataResultShape,
}
