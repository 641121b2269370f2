package query

import (
	"encoding/base64"
	"math"
	"net/url"
	"strconv"
	"time"

	smithytime "github.com/awslabs/aws-query-go/time"
)

// Value represents a query value.
type Value struct {
	values url.Values
	key    string
	flat   bool
}

func newValue(values url.Values, key string, flat bool) Value {
	return Value{
		values: values,
		key:    key,
		flat:   flat,
	}
}

// Array returns a new Array encoder. The member name is used for wrapped
// arrays, and ignored when the value was returned by FlatKey.
func (qv Value) Array(locationName string) *Array {
	return newArray(qv.values, qv.key, qv.flat, locationName)
}

// Object returns a new Object encoder for a nested structure.
func (qv Value) Object() *Object {
	return newObject(qv.values, qv.key)
}

// String encodes v as a query string value.
func (qv Value) String(v string) {
	qv.values.Set(qv.key, v)
}

// Byte encodes v as a query byte value.
func (qv Value) Byte(v int8) {
	qv.Long(int64(v))
}

// Short encodes v as a query short value.
func (qv Value) Short(v int16) {
	qv.Long(int64(v))
}

// Integer encodes v as a query integer value.
func (qv Value) Integer(v int32) {
	qv.Long(int64(v))
}

// Long encodes v as a query long value.
func (qv Value) Long(v int64) {
	qv.String(strconv.FormatInt(v, 10))
}

// Float encodes v as a query float value.
func (qv Value) Float(v float32) {
	qv.float(float64(v), 32)
}

// Double encodes v as a query double value.
func (qv Value) Double(v float64) {
	qv.float(v, 64)
}

func (qv Value) float(v float64, bits int) {
	switch {
	case math.IsNaN(v):
		qv.String("NaN")
	case math.IsInf(v, 1):
		qv.String("Infinity")
	case math.IsInf(v, -1):
		qv.String("-Infinity")
	default:
		qv.String(strconv.FormatFloat(v, 'f', -1, bits))
	}
}

// Boolean encodes v as a query boolean value.
func (qv Value) Boolean(v bool) {
	qv.String(strconv.FormatBool(v))
}

// Time encodes v as an ISO-8601 date-time in UTC.
func (qv Value) Time(v time.Time) {
	qv.String(smithytime.FormatDateTime(v))
}

// Base64EncodeBytes encodes v as a base64 query string value.
func (qv Value) Base64EncodeBytes(v []byte) {
	qv.String(base64.StdEncoding.EncodeToString(v))
}
