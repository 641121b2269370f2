package query

import (
	"fmt"
	"net/url"
)

// Array represents the encoding of a list. Members are numbered from 1.
//
// A wrapped array of name "Parameters" encodes its members as
// "Parameters.member.1", "Parameters.member.2", and so on. A flattened array
// of name "Attribute" encodes its members as "Attribute.1".
type Array struct {
	values url.Values

	// The array key, set to an empty value when the array has no members.
	emptyValue Value

	prefix string
	flat   bool

	memberName string

	size int32
}

func newArray(values url.Values, prefix string, flat bool, memberName string) *Array {
	emptyValue := newValue(values, prefix, flat)
	emptyValue.String("")

	return &Array{
		values:     values,
		emptyValue: emptyValue,
		prefix:     prefix,
		flat:       flat,
		memberName: memberName,
	}
}

// Value adds a new member to the array and returns a Value for encoding it.
func (a *Array) Value() Value {
	if a.size == 0 {
		delete(a.values, a.emptyValue.key)
	}
	a.size++

	prefix := a.prefix
	if !a.flat {
		prefix = fmt.Sprintf("%s.%s", prefix, a.memberName)
	}
	// lists can't have flat members
	return newValue(a.values, fmt.Sprintf("%s.%d", prefix, a.size), false)
}

// Len returns the number of members added to the array.
func (a *Array) Len() int {
	return int(a.size)
}
