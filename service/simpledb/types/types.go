// Package types holds the shapes shared by the simpledb operations.
package types

// Attribute is a name value pair of an item.
type Attribute struct {
	// This member is required.
	Name *string

	AlternateNameEncoding *string

	// This member is required.
	Value *string

	AlternateValueEncoding *string
}

// ReplaceableAttribute is an attribute to put, optionally replacing the
// existing values of the attribute.
type ReplaceableAttribute struct {
	// This member is required.
	Name *string

	// This member is required.
	Value *string

	// Replaces all existing values of the attribute when true.
	Replace *bool
}

// ReplaceableItem is an item of a batch put.
type ReplaceableItem struct {
	// The name of the item.
	//
	// This member is required.
	Name *string

	// This member is required.
	Attributes []ReplaceableAttribute
}

// Item is an item returned by Select.
type Item struct {
	Name *string

	AlternateNameEncoding *string

	Attributes []Attribute
}

// UpdateCondition conditions a put or delete on the current state of an
// attribute. Either Value or Exists false is expected.
type UpdateCondition struct {
	Name *string

	// The value the attribute must have.
	Value *string

	// Whether the attribute must exist. Defaults to true when Value is set.
	Exists *bool
}
