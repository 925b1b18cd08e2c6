package hwid

import "slices"

// Pair returns a data pair. Keys and values are stored verbatim.
func Pair(key, value string) DataPair {
	return DataPair{key: key, value: value}
}

// Pairs builds data pairs from alternating keys and values. A trailing key
// without a value gets an empty value.
func Pairs(kv ...string) []DataPair {
	pairs := make([]DataPair, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		var value string
		if i+1 < len(kv) {
			value = kv[i+1]
		}
		pairs = append(pairs, Pair(kv[i], value))
	}

	return pairs
}

// NewType returns an identifier type with the given name and pairs.
func NewType(name string, pairs ...DataPair) IdentifierType {
	return IdentifierType{name: name, data: slices.Clone(pairs)}
}

// CPU returns a [TypeCPU] identifier type.
func CPU(pairs ...DataPair) IdentifierType { return NewType(TypeCPU, pairs...) }

// RAM returns a [TypeRAM] identifier type.
func RAM(pairs ...DataPair) IdentifierType { return NewType(TypeRAM, pairs...) }

// Disk returns a [TypeDisk] identifier type.
func Disk(pairs ...DataPair) IdentifierType { return NewType(TypeDisk, pairs...) }

// GPU returns a [TypeGPU] identifier type.
func GPU(pairs ...DataPair) IdentifierType { return NewType(TypeGPU, pairs...) }

// Motherboard returns a [TypeMotherboard] identifier type.
func Motherboard(pairs ...DataPair) IdentifierType { return NewType(TypeMotherboard, pairs...) }

// BIOS returns a [TypeBIOS] identifier type.
func BIOS(pairs ...DataPair) IdentifierType { return NewType(TypeBIOS, pairs...) }

// Network returns a [TypeNetwork] identifier type.
func Network(pairs ...DataPair) IdentifierType { return NewType(TypeNetwork, pairs...) }

// OS returns a [TypeOS] identifier type.
func OS(pairs ...DataPair) IdentifierType { return NewType(TypeOS, pairs...) }

// System returns a [TypeSystem] identifier type.
func System(pairs ...DataPair) IdentifierType { return NewType(TypeSystem, pairs...) }
