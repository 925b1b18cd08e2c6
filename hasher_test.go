package hwid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slashdevops/hwid"
)

func TestNewHasherDigests(t *testing.T) {
	tests := []struct {
		alg  hwid.Algorithm
		text string
		want string
	}{
		{hwid.SHA3_512, xeonText, xeonSHA3},
		{hwid.SHA3_256, xeonText, "a81fe9f253415ddbb709f2577498de92e1a58f6a4cfca7390c9cd7c575565759"},
		{hwid.SHA256, xeonText, "92855bde12191e058a5290f7d68626e4108a1751928c54773112f8c2979841fd"},
		{hwid.SHA512, xeonText, "f8f34606bd6db1fc5ddb135c76b722bfc474ec7497b93da17275c25705dd7d3982f74a9b320293d5bf643e0ab579b12426f9bb0d086301d45bebeb57b7e07372"},
		{hwid.BLAKE2b512, xeonText, "897a3bed027396927ab08cc0d8ce42a459b0701290113886398951eea708a9979763adc252358f6d9f372603d106d66ddd96e0ec1a87655dbfce64710f7a52c7"},
		{hwid.BLAKE2b256, xeonText, "5dc226b10a54e8422970922e1ecd65cf468322efeb330f84726508f7ffd4d88a"},
		{hwid.UUID5, xeonText, "a36b4bbe-7870-564a-98d1-4d2719fa3fd2"},
		{hwid.SHA256, "[]", "4f53cda18c2baa0c0354bb5f9a3ecbe5ed12ab4d8e11ba873c2f11161202b945"},
		{hwid.UUID5, "[]", "0b09b32a-0778-568a-8323-935d72f552c3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg)+" "+tt.text, func(t *testing.T) {
			h, err := hwid.NewHasher(tt.alg)
			require.NoError(t, err)
			assert.Equal(t, tt.alg, h.Algorithm())

			got, err := h.Hash([]byte(tt.text))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHashersAcceptEmptyInput(t *testing.T) {
	for _, alg := range hwid.Algorithms() {
		t.Run(string(alg), func(t *testing.T) {
			h, err := hwid.NewHasher(alg)
			require.NoError(t, err)

			got, err := h.Hash(nil)
			require.NoError(t, err)
			assert.NotEmpty(t, got)
		})
	}
}

func TestNewHasherUnknown(t *testing.T) {
	_, err := hwid.NewHasher("md4")
	assert.ErrorIs(t, err, hwid.ErrUnknownAlgorithm)
}

func TestDefaultHasher(t *testing.T) {
	h := hwid.DefaultHasher()
	assert.Equal(t, hwid.DefaultAlgorithm, h.Algorithm())

	got, err := h.Hash([]byte(xeonText))
	require.NoError(t, err)
	assert.Equal(t, xeonSHA3, got)
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input   string
		want    hwid.Algorithm
		wantErr bool
	}{
		{"sha3-512", hwid.SHA3_512, false},
		{"SHA256", hwid.SHA256, false},
		{"  Blake2b-256 ", hwid.BLAKE2b256, false},
		{"uuid5", hwid.UUID5, false},
		{"", "", true},
		{"sha1", "", true},
	}

	for _, tt := range tests {
		got, err := hwid.ParseAlgorithm(tt.input)
		if tt.wantErr {
			assert.ErrorIs(t, err, hwid.ErrUnknownAlgorithm, "ParseAlgorithm(%q)", tt.input)
			continue
		}
		require.NoError(t, err, "ParseAlgorithm(%q)", tt.input)
		assert.Equal(t, tt.want, got)
	}
}

func TestAlgorithmsReturnsCopy(t *testing.T) {
	algs := hwid.Algorithms()
	require.NotEmpty(t, algs)
	assert.Equal(t, hwid.DefaultAlgorithm, algs[0])

	algs[0] = "tampered"
	assert.Equal(t, hwid.DefaultAlgorithm, hwid.Algorithms()[0])
}

func TestHasherFunc(t *testing.T) {
	h := hwid.HasherFunc{
		Name: "len",
		Fn: func(data []byte) (string, error) {
			return string(rune('a' + len(data)%26)), nil
		},
	}

	assert.Equal(t, hwid.Algorithm("len"), h.Algorithm())

	got, err := hwid.NewUnnamed().Hash(h)
	require.NoError(t, err)
	assert.Equal(t, "c", got)
}
