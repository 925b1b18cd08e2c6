package hwid

import (
	"slices"
	"strings"
)

// Common identifier type names. Any string is a valid type name; these exist
// so callers agree on spelling.
const (
	TypeCPU         = "CPU"
	TypeRAM         = "RAM"
	TypeDisk        = "DISK"
	TypeGPU         = "GPU"
	TypeMotherboard = "MOTHERBOARD"
	TypeBIOS        = "BIOS"
	TypeNetwork     = "NETWORK"
	TypeOS          = "OS"
	TypeSystem      = "SYSTEM"
)

// Separators of the canonical text form.
const (
	listSeparator = ", "
	pairSeparator = "="
)

// DataPair is a single key/value fact inside an [IdentifierType].
type DataPair struct {
	key   string
	value string
}

// Key returns the key of the pair.
func (p DataPair) Key() string {
	return p.key
}

// Value returns the value of the pair.
func (p DataPair) Value() string {
	return p.value
}

// String returns the pair as key=value.
func (p DataPair) String() string {
	return p.key + pairSeparator + p.value
}

// IdentifierType is a named category, such as CPU, holding an ordered list of
// data pairs.
type IdentifierType struct {
	name string
	data []DataPair
}

// Name returns the type name.
func (t IdentifierType) Name() string {
	return t.name
}

// Data returns a copy of the type's pairs in insertion order.
func (t IdentifierType) Data() []DataPair {
	return slices.Clone(t.data)
}

// Len returns the number of pairs.
func (t IdentifierType) Len() int {
	return len(t.data)
}

// String returns the type as NAME(key=value, ...). A type without pairs
// renders as NAME().
func (t IdentifierType) String() string {
	var sb strings.Builder
	t.writeTo(&sb)

	return sb.String()
}

// Equal reports whether t and other have the same name and the same pairs in
// the same order.
func (t IdentifierType) Equal(other IdentifierType) bool {
	return t.name == other.name && slices.Equal(t.data, other.data)
}

func (t IdentifierType) writeTo(sb *strings.Builder) {
	sb.WriteString(t.name)
	sb.WriteByte('(')
	for i, p := range t.data {
		if i > 0 {
			sb.WriteString(listSeparator)
		}
		sb.WriteString(p.key)
		sb.WriteString(pairSeparator)
		sb.WriteString(p.value)
	}
	sb.WriteByte(')')
}

// Identifier is an optional name followed by an ordered list of identifier
// types. Its canonical text form is NAME[TYPE(key=value, ...), ...].
//
// The zero value is a valid unnamed identifier with no types and renders as
// "[]". Identifier values are immutable and safe for concurrent use.
type Identifier struct {
	name  string
	named bool
	types []IdentifierType
}

// New returns a named identifier holding types in the given order.
func New(name string, types ...IdentifierType) Identifier {
	return Identifier{
		name:  name,
		named: true,
		types: cloneTypes(types),
	}
}

// NewUnnamed returns an identifier without a name prefix.
func NewUnnamed(types ...IdentifierType) Identifier {
	return Identifier{types: cloneTypes(types)}
}

// Name returns the identifier name and whether one is set.
func (id Identifier) Name() (string, bool) {
	return id.name, id.named
}

// Types returns a copy of the identifier types in insertion order.
func (id Identifier) Types() []IdentifierType {
	return cloneTypes(id.types)
}

// Len returns the number of identifier types.
func (id Identifier) Len() int {
	return len(id.types)
}

// String returns the canonical, unhashed text of the identifier.
func (id Identifier) String() string {
	var sb strings.Builder
	if id.named {
		sb.WriteString(id.name)
	}
	sb.WriteByte('[')
	for i, t := range id.types {
		if i > 0 {
			sb.WriteString(listSeparator)
		}
		t.writeTo(&sb)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Render returns the canonical text when applyHash is false, or the SHA3-512
// hex digest of that text when applyHash is true. Use [Renderer] to choose a
// different hasher or digest format.
func (id Identifier) Render(applyHash bool) (string, error) {
	return defaultRenderer.Render(id, applyHash)
}

// Hash returns the full digest of the canonical text computed by h.
func (id Identifier) Hash(h Hasher) (string, error) {
	return NewRenderer().WithHasher(h).Render(id, true)
}

// Equal reports whether id and other are structurally equal: same name
// presence, same name, and the same types and pairs in the same order.
func (id Identifier) Equal(other Identifier) bool {
	if id.named != other.named || id.name != other.name {
		return false
	}

	return slices.EqualFunc(id.types, other.types, IdentifierType.Equal)
}

// cloneTypes deep copies types so the result shares no backing arrays with
// the caller.
func cloneTypes(types []IdentifierType) []IdentifierType {
	if len(types) == 0 {
		return nil
	}

	cloned := make([]IdentifierType, len(types))
	for i, t := range types {
		cloned[i] = IdentifierType{name: t.name, data: slices.Clone(t.data)}
	}

	return cloned
}
