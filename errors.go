package hwid

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by rendering and hasher lookup.
var (
	// ErrHashFailed is matched by every error produced when a [Hasher] fails
	// while rendering. The concrete error is a [*HashError].
	ErrHashFailed = errors.New("hash failed")

	// ErrUnknownAlgorithm is returned by [NewHasher] and [ParseAlgorithm] for
	// unsupported algorithm names.
	ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

	// ErrNilHasher is returned when a [Renderer] without a hasher is asked to
	// produce a digest.
	ErrNilHasher = errors.New("no hasher configured")

	// ErrUnsupportedFormat is returned by [ParseFormat] for lengths other than
	// 0, 32, 64, 128 and 256.
	ErrUnsupportedFormat = errors.New("unsupported digest format")
)

// HashError records a failed digest computation.
// Use [errors.As] to extract the algorithm from wrapped errors.
type HashError struct {
	Algorithm Algorithm // algorithm of the failing hasher, e.g. "sha3-512"
	Err       error     // underlying error from the hasher
}

// Error returns a human-readable description of the hash failure.
func (e *HashError) Error() string {
	return fmt.Sprintf("hash %q failed: %v", e.Algorithm, e.Err)
}

// Is reports whether target is [ErrHashFailed].
func (e *HashError) Is(target error) bool {
	return target == ErrHashFailed
}

// Unwrap returns the underlying error.
func (e *HashError) Unwrap() error {
	return e.Err
}
