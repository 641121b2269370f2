package awsquery

import "github.com/awslabs/aws-query-go/middleware"

type requestIDKey struct{}
type boxUsageKey struct{}

// GetRequestIDMetadata returns the request id of the response the metadata
// was recorded from.
func GetRequestIDMetadata(metadata middleware.MetadataReader) (string, bool) {
	v, ok := metadata.Get(requestIDKey{}).(string)
	return v, ok
}

// SetRequestIDMetadata records the request id of a response.
func SetRequestIDMetadata(metadata *middleware.Metadata, id string) {
	metadata.Set(requestIDKey{}, id)
}

// GetBoxUsageMetadata returns the machine utilization SimpleDB reported for
// the request, in hours.
func GetBoxUsageMetadata(metadata middleware.MetadataReader) (string, bool) {
	v, ok := metadata.Get(boxUsageKey{}).(string)
	return v, ok
}

// SetBoxUsageMetadata records the box usage of a response.
func SetBoxUsageMetadata(metadata *middleware.Metadata, usage string) {
	metadata.Set(boxUsageKey{}, usage)
}
