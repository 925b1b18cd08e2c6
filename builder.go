package hwid

// Builder assembles an [Identifier] incrementally.
//
//	id := hwid.NewBuilder().
//		Name("HWID").
//		Add(hwid.CPU(hwid.Pair("Vendor", "Intel"))).
//		Build()
//
// A Builder is single-use and must not be shared between goroutines.
type Builder struct {
	name  string
	named bool
	types []IdentifierType
}

// NewBuilder returns an empty builder: no name and no types.
func NewBuilder() *Builder {
	return &Builder{}
}

// Name sets the identifier name. Later calls overwrite earlier ones.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	b.named = true

	return b
}

// Add appends an identifier type.
func (b *Builder) Add(t IdentifierType) *Builder {
	b.types = append(b.types, t)

	return b
}

// AddType appends a new identifier type built from name and pairs.
func (b *Builder) AddType(name string, pairs ...DataPair) *Builder {
	return b.Add(NewType(name, pairs...))
}

// Build returns the accumulated identifier. The name is absent if [Builder.Name]
// was never called.
func (b *Builder) Build() Identifier {
	return Identifier{
		name:  b.name,
		named: b.named,
		types: cloneTypes(b.types),
	}
}
