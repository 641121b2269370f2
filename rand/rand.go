// Package rand provides random number helpers backed by a replaceable entropy
// source.
package rand

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

// Reader is the entropy source used by the package. Defaults to crypto/rand.
var Reader io.Reader = rand.Reader

// Int63n returns a random int64 in [0,n) read from the reader. Returns an
// error if n is not positive or the reader fails.
func Int63n(reader io.Reader, n int64) (int64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("invalid range %d, must be greater than zero", n)
	}
	v, err := rand.Int(reader, big.NewInt(n))
	if err != nil {
		return 0, fmt.Errorf("failed to read random value, %w", err)
	}
	return v.Int64(), nil
}

// CryptoRandInt63n returns a random int64 in [0,n) read from Reader.
func CryptoRandInt63n(n int64) (int64, error) {
	return Int63n(Reader, n)
}
