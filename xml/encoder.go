package xml

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"math"
	"strconv"
	"strings"
	"time"

	smithytime "github.com/awslabs/aws-query-go/time"
)

const (
	// arrayMemberWrapper is the element wrapping each member of a wrapped list.
	arrayMemberWrapper = "member"

	// mapEntryWrapper is the element wrapping each entry of a wrapped map.
	mapEntryWrapper = "entry"
)

// Encoder builds an XML document in memory, element by element. It writes
// the query protocol response documents used by service test fakes.
type Encoder struct {
	buf *bytes.Buffer
}

// NewEncoder returns an empty Encoder.
func NewEncoder() *Encoder {
	return &Encoder{buf: &bytes.Buffer{}}
}

// RootElement writes the start tag of the document's root element. The
// returned Value must be closed.
func (e *Encoder) RootElement(start StartElement) Value {
	return openValue(e.buf, start)
}

// String returns the document written so far.
func (e *Encoder) String() string {
	return e.buf.String()
}

// Bytes returns the document written so far.
func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Value is an element of the document. Scalar writers write the element's
// text and end tag. Elements with members must be closed explicitly.
type Value struct {
	buf   *bytes.Buffer
	start StartElement

	// false for collection elements whose start tag is written per member
	opened bool
}

func openValue(buf *bytes.Buffer, start StartElement) Value {
	writeStart(buf, start)
	return Value{buf: buf, start: start, opened: true}
}

// MemberElement writes the start tag of a member element.
func (v Value) MemberElement(start StartElement) Value {
	return openValue(v.buf, start)
}

// CollectionElement returns a Value for a list or map member whose start tag
// is deferred. Flattened collections repeat the element for every member,
// wrapped collections write it once.
func (v Value) CollectionElement(start StartElement) Value {
	return Value{buf: v.buf, start: start}
}

// Close writes the element's end tag.
func (v Value) Close() {
	if !v.opened {
		writeStart(v.buf, v.start)
	}
	writeEnd(v.buf, v.start.End())
}

func (v Value) writeText(s string) {
	if !v.opened {
		writeStart(v.buf, v.start)
	}
	v.buf.WriteString(s)
	writeEnd(v.buf, v.start.End())
}

// String writes the escaped text s.
func (v Value) String(s string) {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	v.writeText(sb.String())
}

// Integer writes a 32-bit integer.
func (v Value) Integer(i int32) {
	v.writeText(strconv.FormatInt(int64(i), 10))
}

// Long writes a 64-bit integer.
func (v Value) Long(i int64) {
	v.writeText(strconv.FormatInt(i, 10))
}

// Double writes a double. Non-finite values are written as NaN, Infinity
// and -Infinity.
func (v Value) Double(f float64) {
	v.writeText(formatDouble(f))
}

// Boolean writes true or false.
func (v Value) Boolean(b bool) {
	v.writeText(strconv.FormatBool(b))
}

// Timestamp writes an ISO-8601 date-time in UTC.
func (v Value) Timestamp(t time.Time) {
	v.writeText(smithytime.FormatDateTime(t))
}

// Blob writes b base64 encoded.
func (v Value) Blob(b []byte) {
	v.writeText(base64.StdEncoding.EncodeToString(b))
}

// Array returns a wrapped list whose members are <member> elements.
func (v Value) Array() *Array {
	return v.ArrayWithMemberName(arrayMemberWrapper)
}

// ArrayWithMemberName returns a wrapped list whose members are wrapped in
// the named element.
func (v Value) ArrayWithMemberName(name string) *Array {
	if !v.opened {
		writeStart(v.buf, v.start)
	}
	end := v.start.End()
	return &Array{buf: v.buf, member: Start(name), end: &end}
}

// FlattenedArray returns a list whose members each repeat the collection
// element.
func (v Value) FlattenedArray() *Array {
	return &Array{buf: v.buf, member: v.start}
}

// Map returns a wrapped map whose entries are <entry> elements.
func (v Value) Map() *Map {
	a := v.ArrayWithMemberName(mapEntryWrapper)
	return &Map{array: a}
}

// FlattenedMap returns a map whose entries each repeat the collection
// element.
func (v Value) FlattenedMap() *Map {
	return &Map{array: v.FlattenedArray()}
}

// Array writes the members of a list.
type Array struct {
	buf    *bytes.Buffer
	member StartElement

	// nil for flattened lists
	end *EndElement
}

// Member writes the start tag of the next member.
func (a *Array) Member() Value {
	return openValue(a.buf, a.member)
}

// Close writes the end tag of a wrapped list.
func (a *Array) Close() {
	if a.end == nil {
		return
	}
	writeEnd(a.buf, *a.end)
	a.end = nil
}

// Map writes the entries of a map. Each entry's key and value are written as
// members of the entry.
type Map struct {
	array *Array
}

// Entry writes the start tag of the next entry. The entry must be closed.
func (m *Map) Entry() Value {
	return m.array.Member()
}

// Close writes the end tag of a wrapped map.
func (m *Map) Close() {
	m.array.Close()
}

func writeStart(buf *bytes.Buffer, start StartElement) {
	buf.WriteByte('<')
	writeName(buf, start.Name)
	for _, attr := range start.Attr {
		buf.WriteByte(' ')
		writeName(buf, attr.Name)
		buf.WriteString(`="`)
		xml.EscapeText(buf, []byte(attr.Value))
		buf.WriteByte('"')
	}
	buf.WriteByte('>')
}

func writeEnd(buf *bytes.Buffer, end EndElement) {
	buf.WriteString("</")
	writeName(buf, end.Name)
	buf.WriteByte('>')
}

func writeName(buf *bytes.Buffer, name Name) {
	if len(name.Space) != 0 {
		buf.WriteString(name.Space)
		buf.WriteByte(':')
	}
	buf.WriteString(name.Local)
}

func formatDouble(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs == 0 || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	// trim the zero padding of two digit exponents, 1e-09 to 1e-9
	if n := len(s); n >= 4 && s[n-4] == 'e' && s[n-2] == '0' {
		s = s[:n-2] + s[n-1:]
	}
	return s
}
