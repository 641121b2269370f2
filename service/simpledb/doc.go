// Package simpledb provides the client for the Amazon SimpleDB query API.
//
// Client invokes operations synchronously. AsyncClient submits each
// operation to an async.Executor and returns a Future of its result.
package simpledb
