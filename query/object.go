package query

import "net/url"

// Object represents the encoding of a structure. Its keys are prefixed by
// the path of the structure.
type Object struct {
	values url.Values
	prefix string
}

func newObject(values url.Values, prefix string) *Object {
	return &Object{
		values: values,
		prefix: prefix,
	}
}

// Key adds the given named key to the query object. Arrays encoded with the
// returned Value use the wrapped "member" form.
func (o *Object) Key(name string) Value {
	return o.key(name, false)
}

// FlatKey adds the given named key to the query object. Arrays encoded with
// the returned Value are flattened, members are numbered directly under the
// key.
func (o *Object) FlatKey(name string) Value {
	return o.key(name, true)
}

func (o *Object) key(name string, flatValue bool) Value {
	if o.prefix != "" {
		return newValue(o.values, o.prefix+"."+name, flatValue)
	}
	return newValue(o.values, name, flatValue)
}
