package xml

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	smithytime "github.com/awslabs/aws-query-go/time"
)

// String unmarshals the text of the current element or attribute.
func String(c *Cursor) (*string, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Int32 unmarshals the text of the current element as a 32-bit integer.
func Int32(c *Cursor) (*int32, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("expected %s to be a 32-bit integer, %w", c.Path(), err)
	}
	i32 := int32(i)
	return &i32, nil
}

// Int64 unmarshals the text of the current element as a 64-bit integer.
func Int64(c *Cursor) (*int64, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	i, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("expected %s to be a 64-bit integer, %w", c.Path(), err)
	}
	return &i, nil
}

// Float64 unmarshals the text of the current element as a double.
func Float64(c *Cursor) (*float64, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return nil, fmt.Errorf("expected %s to be a double, %w", c.Path(), err)
	}
	return &f, nil
}

// Bool unmarshals the text of the current element as a boolean.
func Bool(c *Cursor) (*bool, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("expected %s to be a boolean, %w", c.Path(), err)
	}
	return &b, nil
}

// Timestamp unmarshals the text of the current element as an ISO-8601
// date-time.
func Timestamp(c *Cursor) (*time.Time, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	t, err := smithytime.ParseDateTime(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("expected %s to be a timestamp, %w", c.Path(), err)
	}
	return &t, nil
}

// Blob unmarshals the text of the current element as base64 encoded bytes.
func Blob(c *Cursor) ([]byte, error) {
	v, err := c.Text()
	if err != nil {
		return nil, err
	}
	b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(v))
	if err != nil {
		return nil, fmt.Errorf("expected %s to be base64 encoded, %w", c.Path(), err)
	}
	return b, nil
}
