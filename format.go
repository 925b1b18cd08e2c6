package hwid

import (
	"fmt"
	"strings"
)

// FormatMode defines the length of a rendered digest.
type FormatMode int

const (
	// FormatFull outputs the digest exactly as the hasher produced it (default).
	FormatFull FormatMode = iota
	// Format32 outputs 32 characters (2^5), truncated digest
	Format32
	// Format64 outputs 64 characters (2^6)
	Format64
	// Format128 outputs 128 characters (2^7)
	Format128
	// Format256 outputs 256 characters (2^8)
	Format256
)

// Length returns the number of characters produced by the mode, or 0 for
// [FormatFull] and unknown modes.
func (m FormatMode) Length() int {
	switch m {
	case Format32:
		return 32
	case Format64:
		return 64
	case Format128:
		return 128
	case Format256:
		return 256
	default:
		return 0
	}
}

// String returns the mode as its character count, or "full".
func (m FormatMode) String() string {
	if n := m.Length(); n > 0 {
		return fmt.Sprintf("%d", n)
	}

	return "full"
}

// ParseFormat maps a character count to a FormatMode. Zero selects
// [FormatFull].
func ParseFormat(length int) (FormatMode, error) {
	switch length {
	case 0:
		return FormatFull, nil
	case 32:
		return Format32, nil
	case 64:
		return Format64, nil
	case 128:
		return Format128, nil
	case 256:
		return Format256, nil
	default:
		return FormatFull, fmt.Errorf("%w %d; valid values are 0, 32, 64, 128, 256", ErrUnsupportedFormat, length)
	}
}

// formatDigest fits digest to the length selected by mode. Longer digests are
// truncated. Shorter digests are extended by rehashing the previous block and
// appending the result until the length is reached.
func formatDigest(h Hasher, digest string, mode FormatMode) (string, error) {
	want := mode.Length()
	if want == 0 || len(digest) == want {
		return digest, nil
	}

	if len(digest) > want {
		return digest[:want], nil
	}

	if digest == "" {
		return "", fmt.Errorf("cannot extend empty digest to %d characters", want)
	}

	var sb strings.Builder
	sb.Grow(want + len(digest))
	sb.WriteString(digest)

	block := digest
	for sb.Len() < want {
		next, err := h.Hash([]byte(block))
		if err != nil {
			return "", err
		}
		if next == "" {
			return "", fmt.Errorf("cannot extend digest: hasher returned empty block")
		}
		sb.WriteString(next)
		block = next
	}

	return sb.String()[:want], nil
}
