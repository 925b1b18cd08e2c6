package hwid

import (
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"hash"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Algorithm names a digest algorithm usable through [NewHasher].
type Algorithm string

// Supported algorithms.
const (
	SHA3_512   Algorithm = "sha3-512"
	SHA3_256   Algorithm = "sha3-256"
	SHA256     Algorithm = "sha256"
	SHA512     Algorithm = "sha512"
	BLAKE2b512 Algorithm = "blake2b-512"
	BLAKE2b256 Algorithm = "blake2b-256"
	// UUID5 derives a name-based (SHA-1, OID namespace) UUID from the text.
	UUID5 Algorithm = "uuid5"
)

// DefaultAlgorithm is used by [Identifier.Render] and [NewRenderer].
const DefaultAlgorithm = SHA3_512

var algorithms = []Algorithm{SHA3_512, SHA3_256, SHA256, SHA512, BLAKE2b512, BLAKE2b256, UUID5}

// Algorithms returns the supported algorithm names, default first.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithms))
	copy(out, algorithms)

	return out
}

// ParseAlgorithm returns the algorithm named s, ignoring case and surrounding
// whitespace.
func ParseAlgorithm(s string) (Algorithm, error) {
	want := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, alg := range algorithms {
		if alg == want {
			return alg, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Hasher is a one-way function from arbitrary bytes to a fixed-width digest
// string. Implementations must be deterministic and safe for concurrent use.
type Hasher interface {
	Algorithm() Algorithm
	Hash(data []byte) (string, error)
}

// HasherFunc adapts a plain function to the [Hasher] interface.
type HasherFunc struct {
	Name Algorithm
	Fn   func(data []byte) (string, error)
}

// Algorithm returns h.Name.
func (h HasherFunc) Algorithm() Algorithm {
	return h.Name
}

// Hash calls h.Fn.
func (h HasherFunc) Hash(data []byte) (string, error) {
	return h.Fn(data)
}

// NewHasher returns the built-in hasher for alg.
func NewHasher(alg Algorithm) (Hasher, error) {
	switch alg {
	case SHA3_512:
		return digestHasher{alg: alg, newHash: sha3.New512}, nil
	case SHA3_256:
		return digestHasher{alg: alg, newHash: sha3.New256}, nil
	case SHA256:
		return digestHasher{alg: alg, newHash: sha256.New}, nil
	case SHA512:
		return digestHasher{alg: alg, newHash: sha512.New}, nil
	case BLAKE2b512:
		return digestHasher{alg: alg, newHash: newBLAKE2b(blake2b.New512)}, nil
	case BLAKE2b256:
		return digestHasher{alg: alg, newHash: newBLAKE2b(blake2b.New256)}, nil
	case UUID5:
		return uuidHasher{namespace: uuid.NameSpaceOID}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(alg))
	}
}

// DefaultHasher returns the SHA3-512 hasher.
func DefaultHasher() Hasher {
	return digestHasher{alg: SHA3_512, newHash: sha3.New512}
}

// digestHasher hex encodes the output of a hash.Hash constructor.
type digestHasher struct {
	alg     Algorithm
	newHash func() hash.Hash
}

func (h digestHasher) Algorithm() Algorithm {
	return h.alg
}

func (h digestHasher) Hash(data []byte) (string, error) {
	d := h.newHash()
	if _, err := d.Write(data); err != nil {
		return "", err
	}

	return hex.EncodeToString(d.Sum(nil)), nil
}

// newBLAKE2b adapts an unkeyed blake2b constructor. With a nil key the
// constructors cannot fail.
func newBLAKE2b(fn func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(fmt.Sprintf("blake2b: unkeyed constructor failed: %v", err))
		}

		return h
	}
}

// uuidHasher renders a version 5 UUID in its canonical 36 character form.
type uuidHasher struct {
	namespace uuid.UUID
}

func (h uuidHasher) Algorithm() Algorithm {
	return UUID5
}

func (h uuidHasher) Hash(data []byte) (string, error) {
	return uuid.NewSHA1(h.namespace, data).String(), nil
}
