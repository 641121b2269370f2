// Package auth provides the credentials and request signing hooks of query
// protocol clients.
package auth

type signedKey struct{}
