package simpledb

import (
	"github.com/awslabs/aws-query-go/internal/awsquery"
	"github.com/awslabs/aws-query-go/middleware"
)

// GetRequestID returns the request id of the response the metadata was
// recorded from.
func GetRequestID(metadata middleware.MetadataReader) (string, bool) {
	return awsquery.GetRequestIDMetadata(metadata)
}

// GetBoxUsage returns the machine hours the request consumed, as reported by
// the service.
func GetBoxUsage(metadata middleware.MetadataReader) (string, bool) {
	return awsquery.GetBoxUsageMetadata(metadata)
}
