// Package id holds the identifiers of middleware shared between the protocol
// and service packages.
package id

const (
	// ComputeContentLength is the ID of middleware that determines the transport body's content length.
	ComputeContentLength = "ComputeContentLength"
	// CloseResponseBody is the ID of middleware that closes the transport layer response body.
	CloseResponseBody = "CloseResponseBody"
	// ErrorCloseResponseBody is the ID of middleware that closes the transport layer response body if an error occurred.
	ErrorCloseResponseBody = "ErrorCloseResponseBody"
	// OperationDeserializer is the ID of middleware that deserializes an operation response.
	OperationDeserializer = "OperationDeserializer"
	// OperationInputValidation is the ID of middleware that validates operation input.
	OperationInputValidation = "OperationInputValidation"
	// OperationSerializer is the ID of middleware that serializes operation requests.
	OperationSerializer = "OperationSerializer"
	// UserAgent is the ID of middleware that sets the User-Agent header.
	UserAgent = "UserAgent"
	// InvocationID is the ID of middleware that tags each invocation with a unique ID.
	InvocationID = "InvocationID"
	// Signing is the ID of middleware that signs the request.
	Signing = "Signing"
	// RequestLogging is the ID of middleware that logs requests and responses.
	RequestLogging = "RequestLogging"
)
