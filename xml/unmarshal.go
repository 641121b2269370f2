package xml

// UnmarshalFunc decodes a value of type V starting at the cursor's current
// position. For scalar values the cursor is positioned on the element (or
// attribute) holding the value. For structured values the cursor is
// positioned just after the start element of the structure.
type UnmarshalFunc[V any] func(*Cursor) (V, error)

// Field binds a member of the result shape T to the element tag it is
// unmarshaled from.
type Field[T any] struct {
	// Tag is the path expression matched relative to the shape's target
	// depth, usually the member's element name.
	Tag string

	decode func(*Cursor, *T) error
}

// Member returns a Field that decodes the element matching tag with
// unmarshal and assigns the result with set. For flattened lists set
// should append, each occurrence of the element is decoded separately.
func Member[T, V any](tag string, unmarshal func(*Cursor) (V, error), set func(*T, V)) Field[T] {
	return Field[T]{
		Tag: tag,
		decode: func(c *Cursor, v *T) error {
			mv, err := unmarshal(c)
			if err != nil {
				return err
			}
			set(v, mv)
			return nil
		},
	}
}

// Shape is the declarative unmarshaler of a result shape T. Fields are
// tested in declared order against each start element or attribute found at
// the shape's target depth. The first matching field wins. Elements matching
// no field are skipped.
//
// A Shape holds no per call state. Package level Shape values are safe to
// share between goroutines, each unmarshal call owning its own Cursor.
type Shape[T any] struct {
	Name   string
	Fields []Field[T]
}

// NewShape returns a Shape with the fields in match order.
func NewShape[T any](name string, fields ...Field[T]) Shape[T] {
	return Shape[T]{Name: name, Fields: fields}
}

// Lookup returns the first field matching the cursor's current position at
// the target depth.
func (s Shape[T]) Lookup(c *Cursor, targetDepth int) (Field[T], bool) {
	for _, f := range s.Fields {
		if c.Match(f.Tag, targetDepth) {
			return f, true
		}
	}
	return Field[T]{}, false
}

// Unmarshal decodes a new T from the cursor. The shape's fields are expected
// one level below the cursor's depth on entry, plus the cursor's envelope
// depth when nothing has been read from the document yet. Unmarshal returns
// when the end of the document is reached, or when the element enclosing the
// shape is closed. Missing fields are left unset.
func (s Shape[T]) Unmarshal(c *Cursor) (*T, error) {
	v := new(T)

	originalDepth := c.Depth()
	targetDepth := originalDepth + 1
	if c.AtDocumentStart() {
		targetDepth += c.EnvelopeDepth()
	}

	for {
		ev, err := c.Next()
		if err != nil {
			return nil, err
		}

		switch ev.Kind {
		case EndDocumentEvent:
			return v, nil

		case StartElementEvent, AttributeEvent:
			f, ok := s.Lookup(c, targetDepth)
			if !ok {
				continue
			}
			if err := f.decode(c, v); err != nil {
				return nil, err
			}

		case EndElementEvent:
			if c.Depth() < originalDepth {
				return v, nil
			}
		}
	}
}

// List returns an UnmarshalFunc for a wrapped list, where each member is
// enclosed by an element named memberTag inside the list's element.
//
//	<Parameters><member>...</member><member>...</member></Parameters>
func List[V any](memberTag string, member func(*Cursor) (V, error)) UnmarshalFunc[[]V] {
	return func(c *Cursor) ([]V, error) {
		var list []V
		originalDepth := c.Depth()
		targetDepth := originalDepth + 1

		for {
			ev, err := c.Next()
			if err != nil {
				return nil, err
			}

			switch ev.Kind {
			case EndDocumentEvent:
				return list, nil

			case StartElementEvent:
				if !c.Match(memberTag, targetDepth) {
					continue
				}
				v, err := member(c)
				if err != nil {
					return nil, err
				}
				list = append(list, v)

			case EndElementEvent:
				if c.Depth() < originalDepth {
					return list, nil
				}
			}
		}
	}
}

// Entry is a single key value pair of a map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// MapEntry returns an UnmarshalFunc for a single map entry whose key and
// value are the elements keyTag and valueTag.
//
//	<entry><key>k</key><value>v</value></entry>
func MapEntry[K, V any](keyTag, valueTag string, key func(*Cursor) (K, error), value func(*Cursor) (V, error)) UnmarshalFunc[Entry[K, V]] {
	shape := NewShape[Entry[K, V]]("MapEntry",
		Member(keyTag, key, func(e *Entry[K, V], k K) { e.Key = k }),
		Member(valueTag, value, func(e *Entry[K, V], v V) { e.Value = v }),
	)

	return func(c *Cursor) (Entry[K, V], error) {
		e, err := shape.Unmarshal(c)
		if err != nil {
			return Entry[K, V]{}, err
		}
		return *e, nil
	}
}

// MapOf returns an UnmarshalFunc for a wrapped map whose entries are enclosed
// by <entry> elements.
func MapOf[K comparable, V any](entry func(*Cursor) (Entry[K, V], error)) UnmarshalFunc[map[K]V] {
	entries := List(mapEntryWrapper, entry)

	return func(c *Cursor) (map[K]V, error) {
		list, err := entries(c)
		if err != nil {
			return nil, err
		}
		m := make(map[K]V, len(list))
		for _, e := range list {
			m[e.Key] = e.Value
		}
		return m, nil
	}
}

// Deref adapts an UnmarshalFunc of a pointer to one of the pointed to value.
// A nil pointer is returned as the zero value.
func Deref[V any](unmarshal func(*Cursor) (*V, error)) UnmarshalFunc[V] {
	return func(c *Cursor) (V, error) {
		var zero V
		v, err := unmarshal(c)
		if err != nil || v == nil {
			return zero, err
		}
		return *v, nil
	}
}
