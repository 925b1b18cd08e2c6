package hwid

import (
	"crypto/subtle"
	"log/slog"
)

// defaultRenderer backs [Identifier.Render].
var defaultRenderer = NewRenderer()

// Renderer turns identifiers into canonical text or digests.
// Configure it with the With* methods before use; after that a Renderer is
// safe for concurrent use.
type Renderer struct {
	hasher     Hasher
	logger     *slog.Logger
	formatMode FormatMode
}

// NewRenderer creates a Renderer with the SHA3-512 hasher, full-length
// digests and no logger.
func NewRenderer() *Renderer {
	return &Renderer{
		hasher:     DefaultHasher(),
		formatMode: FormatFull,
	}
}

// WithHasher sets the hasher used when a digest is requested.
func (r *Renderer) WithHasher(h Hasher) *Renderer {
	r.hasher = h

	return r
}

// WithFormat sets the digest length.
// Use FormatFull (default), Format32, Format64, Format128, or Format256.
func (r *Renderer) WithFormat(mode FormatMode) *Renderer {
	r.formatMode = mode

	return r
}

// WithLogger sets an optional [*slog.Logger] for observability.
// A nil logger (the default) disables all logging with zero overhead.
func (r *Renderer) WithLogger(logger *slog.Logger) *Renderer {
	r.logger = logger

	return r
}

// Hasher returns the configured hasher.
func (r *Renderer) Hasher() Hasher {
	return r.hasher
}

// Format returns the configured digest format.
func (r *Renderer) Format() FormatMode {
	return r.formatMode
}

// Render returns the canonical text of id, or its digest when applyHash is
// true. On failure no part of the canonical text is returned; hasher errors
// are reported as [*HashError].
func (r *Renderer) Render(id Identifier, applyHash bool) (string, error) {
	text := id.String()

	if !applyHash {
		r.logDebug("rendering identifier", "types", id.Len(), "hashed", false)

		return text, nil
	}

	if r.hasher == nil {
		r.logWarn("hash requested without a hasher")

		return "", ErrNilHasher
	}

	alg := r.hasher.Algorithm()
	r.logDebug("rendering identifier",
		"types", id.Len(),
		"hashed", true,
		"algorithm", alg,
		"format", r.formatMode,
	)

	digest, err := r.hasher.Hash([]byte(text))
	if err != nil {
		r.logWarn("hash failed", "algorithm", alg, "error", err)

		return "", &HashError{Algorithm: alg, Err: err}
	}

	formatted, err := formatDigest(r.hasher, digest, r.formatMode)
	if err != nil {
		r.logWarn("digest formatting failed", "algorithm", alg, "format", r.formatMode, "error", err)

		return "", &HashError{Algorithm: alg, Err: err}
	}

	r.logDebug("digest computed", "algorithm", alg, "length", len(formatted))

	return formatted, nil
}

// Verify reports whether digest matches the digest of id under the current
// configuration. The comparison runs in constant time.
func (r *Renderer) Verify(id Identifier, digest string) (bool, error) {
	current, err := r.Render(id, true)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(current), []byte(digest)) == 1, nil
}

// logDebug logs at debug level if a logger is configured.
func (r *Renderer) logDebug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, args...)
	}
}

// logWarn logs at warn level if a logger is configured.
func (r *Renderer) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, args...)
	}
}
