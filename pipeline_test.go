package ziv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	enc, err := EncodeString("a_asa_da_casa")
	require.NoError(t, err)
	require.Len(t, enc.Codes, 13)
	assert.Equal(t, 3, enc.Index)

	// The pipeline Huffman-encodes the transformed string, not the input.
	decodedBWT, err := enc.Table.Decode(enc.Codes)
	require.NoError(t, err)
	assert.Equal(t, "aaaadss_c__aa", decodedBWT)

	s, err := enc.Decode()
	require.NoError(t, err)
	assert.Equal(t, "a_asa_da_casa", s)
}

func TestPipelineRoundTrip(t *testing.T) {
	inputs := []string{
		"a",
		"zzzz",
		"banana",
		"a_asa_da_casa",
		"the quick brown fox jumps over the lazy dog",
	}
	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			enc, err := EncodeString(input)
			require.NoError(t, err)

			s, err := enc.Decode()
			require.NoError(t, err)
			assert.Equal(t, input, s)
		})
	}
}

func TestEncodingBits(t *testing.T) {
	enc, err := EncodeString("a_asa_da_casa")
	require.NoError(t, err)

	total := 0
	for _, code := range enc.Codes {
		total += len(code)
	}
	assert.Len(t, enc.Bits(), total)
	require.NoError(t, checkBits(enc.Bits()))
}

func TestEncodeStringEmpty(t *testing.T) {
	_, err := EncodeString("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEncodingDecodeBadIndex(t *testing.T) {
	enc, err := EncodeString("banana")
	require.NoError(t, err)
	enc.Index = 6
	_, err = enc.Decode()
	assert.ErrorIs(t, err, ErrInvalidInput)
}
