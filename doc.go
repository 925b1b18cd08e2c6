// Package hwid builds deterministic textual identifiers from named groups of
// hardware-like facts and optionally reduces them to a fixed-size digest.
//
// # Overview
//
// An [Identifier] is an optional name followed by an ordered list of
// [IdentifierType] values (CPU, RAM, DISK, ...), each holding an ordered list of
// [DataPair] key/value facts. Its canonical text form is
//
//	NAME[TYPE(key=value, key=value), TYPE(...)]
//
// for example
//
//	HWID[CPU(Vendor=Intel, Model=Xeon E5-2670)]
//
// Order is significant everywhere: types and pairs render in insertion order
// and are never sorted or deduplicated. An unnamed identifier omits the prefix
// but keeps the brackets, so the empty identifier renders as "[]".
//
// # Quick Start
//
//	id := hwid.NewBuilder().
//		Name("HWID").
//		Add(hwid.CPU(
//			hwid.Pair("Vendor", "Intel"),
//			hwid.Pair("Model", "Xeon E5-2670"),
//		)).
//		Build()
//
//	text, _ := id.Render(false)  // HWID[CPU(Vendor=Intel, Model=Xeon E5-2670)]
//	digest, _ := id.Render(true) // 128 hex characters, SHA3-512
//
// # Hashing
//
// When a digest is requested the whole canonical text, name included, is the
// hash input; the name therefore acts as a salt. Only the digest is returned.
//
// The algorithm is pluggable through the [Hasher] interface. Built-in hashers
// are available from [NewHasher]:
//
//   - [SHA3_512]: default, 128 hex characters
//   - [SHA3_256], [SHA256]: 64 hex characters
//   - [SHA512], [BLAKE2b512]: 128 hex characters
//   - [BLAKE2b256]: 64 hex characters
//   - [UUID5]: name-based UUID, 36 characters
//
// A [Renderer] combines a hasher with a [FormatMode] and an optional
// [*slog.Logger]:
//
//	r := hwid.NewRenderer().
//		WithHasher(h).
//		WithFormat(hwid.Format64)
//	digest, err := r.Render(id, true)
//	ok, err := r.Verify(id, digest)
//
// # Limitations
//
// The grammar has no escaping. Names, keys and values containing any of
// "[ ] ( ) = ," are emitted verbatim and produce ambiguous text. Parsing text
// back into an Identifier is not supported.
//
// # Thread Safety
//
// Identifier, IdentifierType and DataPair are immutable values. Built-in
// hashers and configured Renderers are safe for concurrent use. A [Builder]
// belongs to a single goroutine.
package hwid
