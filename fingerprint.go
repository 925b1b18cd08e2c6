package hwid

import (
	"fmt"

	"github.com/mitchellh/hashstructure/v2"
)

// fingerprintView is the exported mirror of an Identifier hashed by
// hashstructure, which skips unexported fields.
type fingerprintView struct {
	Name  string
	Named bool
	Types []fingerprintType
}

type fingerprintType struct {
	Name string
	Data []fingerprintPair
}

type fingerprintPair struct {
	Key   string
	Value string
}

// Fingerprint returns a fast, non-cryptographic 64-bit hash of the identifier
// structure, suitable as an in-memory cache or dedup key. Structurally equal
// identifiers have equal fingerprints. Use [Identifier.Render] for stable,
// cryptographic identifiers.
func (id Identifier) Fingerprint() (uint64, error) {
	view := fingerprintView{
		Name:  id.name,
		Named: id.named,
		Types: make([]fingerprintType, len(id.types)),
	}
	for i, t := range id.types {
		ft := fingerprintType{Name: t.name, Data: make([]fingerprintPair, len(t.data))}
		for j, p := range t.data {
			ft.Data[j] = fingerprintPair{Key: p.key, Value: p.value}
		}
		view.Types[i] = ft
	}

	return hashstructure.Hash(view, hashstructure.FormatV2, nil)
}

// FingerprintString returns [Identifier.Fingerprint] as 16 hex characters.
func (id Identifier) FingerprintString() (string, error) {
	h, err := id.Fingerprint()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%016x", h), nil
}
