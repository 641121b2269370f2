package query

import (
	"io"
	"net/url"
	"sort"
)

// Encoder is a query protocol encoder.
type Encoder struct {
	writer io.Writer
	values url.Values
}

// NewEncoder returns a new Encoder for the query protocol writing the
// encoded form body to writer.
func NewEncoder(writer io.Writer) *Encoder {
	return &Encoder{
		writer: writer,
		values: map[string][]string{},
	}
}

// Object returns the root Object of the body.
func (e Encoder) Object() *Object {
	return newObject(e.values, "")
}

// Encode writes the query encoded body to the writer. Keys are sorted.
func (e Encoder) Encode() error {
	_, err := io.WriteString(e.writer, e.values.Encode())
	return err
}

// Keys returns the sorted keys set on the encoder.
func (e Encoder) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
