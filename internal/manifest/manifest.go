// Package manifest loads identifier descriptions from YAML (or JSON) files.
//
// A manifest names the identifier, lists its types in order and optionally
// selects the digest algorithm and length:
//
//	name: HWID
//	hash:
//	  algorithm: sha3-512
//	  format: 64
//	types:
//	  - name: CPU
//	    data:
//	      Vendor: Intel
//	      Model: Xeon E5-2670
//	  - name: DISK
//	    data:
//	      - {key: serial, value: S1}
//	      - {key: serial, value: S2}
//
// Mapping data keeps document order. The sequence form allows duplicate keys.
package manifest

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/slashdevops/hwid"
)

// Manifest is a parsed identifier description.
type Manifest struct {
	Name  *string      `yaml:"name"`
	Hash  HashSettings `yaml:"hash"`
	Types []Type       `yaml:"types"`
}

// HashSettings selects the digest algorithm and length.
type HashSettings struct {
	Algorithm string `yaml:"algorithm"` // algorithm name, default sha3-512
	Format    int    `yaml:"format"`    // digest length in characters, 0 = full
}

// Type is one identifier type entry.
type Type struct {
	Name string   `yaml:"name"`
	Data PairList `yaml:"data"`
}

// Pair is one key/value entry of the sequence form.
type Pair struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// PairList is an ordered list of pairs decoded from either a mapping or a
// sequence of {key, value} entries.
type PairList []Pair

// ParseError records a failure while parsing a manifest.
// Use [errors.As] to extract the source from wrapped errors.
type ParseError struct {
	Source string // manifest source, e.g. a file path or "stdin"
	Err    error  // underlying parse error
}

// Error returns a human-readable description of the parse failure.
func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	errMissingTypeName = errors.New("type name is required")
	errInvalidData     = errors.New("data must be a mapping or a sequence of key/value entries")
)

// UnmarshalYAML decodes mapping or sequence data preserving document order.
func (l *PairList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.MappingNode:
		pairs := make(PairList, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var key, value string
			if err := node.Content[i].Decode(&key); err != nil {
				return err
			}
			if err := node.Content[i+1].Decode(&value); err != nil {
				return err
			}
			pairs = append(pairs, Pair{Key: key, Value: value})
		}
		*l = pairs

		return nil

	case yaml.SequenceNode:
		var pairs []Pair
		if err := node.Decode(&pairs); err != nil {
			return err
		}
		*l = pairs

		return nil

	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*l = nil

			return nil
		}
	}

	return fmt.Errorf("line %d: %w", node.Line, errInvalidData)
}

// Parse decodes a manifest from r. source names the input in errors.
func Parse(r io.Reader, source string) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Source: source, Err: err}
	}

	for i, t := range m.Types {
		if t.Name == "" {
			return nil, &ParseError{Source: source, Err: fmt.Errorf("types[%d]: %w", i, errMissingTypeName)}
		}
	}

	return &m, nil
}

// Load reads and parses the manifest at path.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path)
}

// Identifier builds the described identifier.
func (m *Manifest) Identifier() hwid.Identifier {
	b := hwid.NewBuilder()
	if m.Name != nil {
		b.Name(*m.Name)
	}

	for _, t := range m.Types {
		pairs := make([]hwid.DataPair, len(t.Data))
		for i, p := range t.Data {
			pairs[i] = hwid.Pair(p.Key, p.Value)
		}
		b.AddType(t.Name, pairs...)
	}

	return b.Build()
}

// Renderer returns a renderer configured from the hash settings.
func (m *Manifest) Renderer(logger *slog.Logger) (*hwid.Renderer, error) {
	alg := hwid.DefaultAlgorithm
	if m.Hash.Algorithm != "" {
		parsed, err := hwid.ParseAlgorithm(m.Hash.Algorithm)
		if err != nil {
			return nil, err
		}
		alg = parsed
	}

	h, err := hwid.NewHasher(alg)
	if err != nil {
		return nil, err
	}

	mode, err := hwid.ParseFormat(m.Hash.Format)
	if err != nil {
		return nil, err
	}

	return hwid.NewRenderer().
		WithHasher(h).
		WithFormat(mode).
		WithLogger(logger), nil
}
