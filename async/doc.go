// Package async runs blocking operations on an Executor and exposes their
// outcome as a Future.
//
// A Future is resolved exactly once, with either a value or an error. Errors
// returned by the task are delivered unchanged, a task that was rejected by
// a shut down executor resolves with ErrPoolShutdown.
package async
