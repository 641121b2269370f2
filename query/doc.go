// Package query encodes operation input as an AWS query protocol form body:
// flat "Key.Sub.N" names with url encoded values, posted as
// application/x-www-form-urlencoded.
package query
