// Package smithy provides the shared error types of the query protocol
// client runtime.
//
// Operation failures are always returned as *OperationError wrapping either a
// client side failure (request send, cancellation, deserialization) or an
// APIError returned by the remote service. Use errors.As to inspect them.
package smithy
