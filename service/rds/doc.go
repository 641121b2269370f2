// Package rds provides the client for the Amazon Relational Database Service
// query API. Only the DB parameter group operations are modeled.
package rds
