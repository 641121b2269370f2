package simpledb

import (
	"github.com/awslabs/aws-query-go/service/simpledb/types"
	smithyxml "github.com/awslabs/aws-query-go/xml"
)

// emptyResultShape returns the shape of an operation whose response carries
// only the ResponseMetadata.
func emptyResultShape[T any](action string) smithyxml.Shape[T] {
	return smithyxml.NewShape[T](action + "Result")
}

var attributeShape = smithyxml.NewShape[types.Attribute]("Attribute",
	smithyxml.Member("Name", smithyxml.String, func(v *types.Attribute, s *string) { v.Name = s }),
	smithyxml.Member("Name/@encoding", smithyxml.String, func(v *types.Attribute, s *string) { v.AlternateNameEncoding = s }),
	smithyxml.Member("Value", smithyxml.String, func(v *types.Attribute, s *string) { v.Value = s }),
	smithyxml.Member("Value/@encoding", smithyxml.String, func(v *types.Attribute, s *string) { v.AlternateValueEncoding = s }),
)

var itemShape = smithyxml.NewShape[types.Item]("Item",
	smithyxml.Member("Name", smithyxml.String, func(v *types.Item, s *string) { v.Name = s }),
	smithyxml.Member("Name/@encoding", smithyxml.String, func(v *types.Item, s *string) { v.AlternateNameEncoding = s }),
	smithyxml.Member("Attribute", smithyxml.Deref(attributeShape.Unmarshal), func(v *types.Item, a types.Attribute) {
		v.Attributes = append(v.Attributes, a)
	}),
)
