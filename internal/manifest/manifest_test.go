package manifest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slashdevops/hwid"
)

const xeonManifest = `
name: HWID
types:
  - name: CPU
    data:
      Vendor: Intel
      Model: Xeon E5-2670
`

func TestParseMappingKeepsOrder(t *testing.T) {
	m, err := Parse(strings.NewReader(xeonManifest), "test")
	require.NoError(t, err)

	require.NotNil(t, m.Name)
	assert.Equal(t, "HWID", *m.Name)
	require.Len(t, m.Types, 1)
	assert.Equal(t, PairList{{Key: "Vendor", Value: "Intel"}, {Key: "Model", Value: "Xeon E5-2670"}}, m.Types[0].Data)

	assert.Equal(t, "HWID[CPU(Vendor=Intel, Model=Xeon E5-2670)]", m.Identifier().String())
}

func TestParseSequenceAllowsDuplicates(t *testing.T) {
	doc := `
types:
  - name: DISK
    data:
      - {key: serial, value: S1}
      - {key: serial, value: S2}
  - name: RAM
`
	m, err := Parse(strings.NewReader(doc), "test")
	require.NoError(t, err)

	id := m.Identifier()
	_, named := id.Name()
	assert.False(t, named)
	assert.Equal(t, "[DISK(serial=S1, serial=S2), RAM()]", id.String())
}

func TestParseScalarValuesAsText(t *testing.T) {
	doc := `
name: N
types:
  - name: RAM
    data:
      Size: 16
      ECC: true
`
	m, err := Parse(strings.NewReader(doc), "test")
	require.NoError(t, err)
	assert.Equal(t, "N[RAM(Size=16, ECC=true)]", m.Identifier().String())
}

func TestParseJSON(t *testing.T) {
	doc := `{"name": "HWID", "types": [{"name": "CPU", "data": {"Vendor": "Intel", "Model": "Xeon E5-2670"}}]}`

	m, err := Parse(strings.NewReader(doc), "test.json")
	require.NoError(t, err)
	assert.Equal(t, "HWID[CPU(Vendor=Intel, Model=Xeon E5-2670)]", m.Identifier().String())
}

func TestParseEmptyDocument(t *testing.T) {
	m, err := Parse(strings.NewReader(""), "empty")
	require.NoError(t, err)
	assert.Equal(t, "[]", m.Identifier().String())
}

func TestParseEmptyName(t *testing.T) {
	m, err := Parse(strings.NewReader(`name: ""`), "test")
	require.NoError(t, err)

	id := m.Identifier()
	name, named := id.Name()
	assert.True(t, named)
	assert.Empty(t, name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "types: [\n"},
		{"missing type name", "types:\n  - data: {a: b}\n"},
		{"scalar data", "types:\n  - name: CPU\n    data: nope\n"},
		{"nested value", "types:\n  - name: CPU\n    data:\n      a: {b: c}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc), "bad.yaml")
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, "bad.yaml", parseErr.Source)
			assert.Contains(t, err.Error(), "failed to parse bad.yaml")
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hwid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(xeonManifest), 0o600))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "HWID[CPU(Vendor=Intel, Model=Xeon E5-2670)]", m.Identifier().String())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRendererFromSettings(t *testing.T) {
	doc := xeonManifest + `
hash:
  algorithm: SHA256
  format: 32
`
	m, err := Parse(strings.NewReader(doc), "test")
	require.NoError(t, err)

	r, err := m.Renderer(nil)
	require.NoError(t, err)
	assert.Equal(t, hwid.SHA256, r.Hasher().Algorithm())
	assert.Equal(t, hwid.Format32, r.Format())

	digest, err := r.Render(m.Identifier(), true)
	require.NoError(t, err)
	assert.Equal(t, "92855bde12191e058a5290f7d68626e4", digest)
}

func TestRendererDefaults(t *testing.T) {
	m, err := Parse(strings.NewReader(xeonManifest), "test")
	require.NoError(t, err)

	r, err := m.Renderer(nil)
	require.NoError(t, err)
	assert.Equal(t, hwid.DefaultAlgorithm, r.Hasher().Algorithm())
	assert.Equal(t, hwid.FormatFull, r.Format())
}

func TestRendererInvalidSettings(t *testing.T) {
	_, err := (&Manifest{Hash: HashSettings{Algorithm: "md5"}}).Renderer(nil)
	assert.ErrorIs(t, err, hwid.ErrUnknownAlgorithm)

	_, err = (&Manifest{Hash: HashSettings{Format: 48}}).Renderer(nil)
	assert.ErrorIs(t, err, hwid.ErrUnsupportedFormat)
}

func TestParseErrorUnwrap(t *testing.T) {
	inner := errMissingTypeName
	err := &ParseError{Source: "x", Err: inner}

	assert.Equal(t, inner, err.Unwrap())
	assert.Equal(t, "failed to parse x: type name is required", err.Error())
}
