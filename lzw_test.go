package ziv

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompressBits(t *testing.T) {
	// Worked example: "1" emits code "1" and the width bump at index 2 turns
	// the codes two bits wide, so "0" then emits "00" and "11" emits "10".
	compressed, err := CompressBits("1011")
	require.NoError(t, err)
	assert.Equal(t, "10010", compressed)

	decompressed, err := DecompressBits(compressed)
	require.NoError(t, err)
	assert.Equal(t, "1011", decompressed)
}

func TestCompressBitsTrailingCandidate(t *testing.T) {
	// The trailing candidate "1" matches nothing and is zero-padded to "10";
	// decompression therefore reproduces the input plus that padding.
	compressed, err := CompressBits("11")
	require.NoError(t, err)
	assert.Equal(t, "101", compressed)

	decompressed, err := DecompressBits(compressed)
	require.NoError(t, err)
	assert.Equal(t, "110", decompressed)
}

func TestLZWRoundTrip(t *testing.T) {
	inputs := []string{
		"0",
		"1",
		"1011",
		"00000000",
		"11111111",
		"010101010101",
		bytesToBits([]byte("the quick brown fox jumps over the lazy dog")),
		bytesToBits([]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")),
		bytesToBits([]byte{0x00, 0xff, 0x55, 0xaa, 0x00, 0xff, 0x55, 0xaa}),
	}
	for _, input := range inputs {
		name := input
		if len(name) > 16 {
			name = name[:16]
		}
		t.Run(name, func(t *testing.T) {
			compressed, err := CompressBits(input)
			require.NoError(t, err)

			decompressed, err := DecompressBits(compressed)
			require.NoError(t, err)

			// The decompressed sequence is the input followed only by the
			// zero bits that padded the compressor's trailing candidate.
			require.GreaterOrEqual(t, len(decompressed), len(input))
			assert.Equal(t, input, decompressed[:len(input)])
			assert.Equal(t, strings.Count(decompressed[len(input):], "0"), len(decompressed)-len(input))
		})
	}
}

func TestLZWLexiconsStayInLockStep(t *testing.T) {
	// Two independent compress calls over the same input must emit identical
	// streams, and so must two independent decompress calls.
	input := bytesToBits([]byte("deterministic growth, deterministic codes"))
	first, err := CompressBits(input)
	require.NoError(t, err)
	second, err := CompressBits(input)
	require.NoError(t, err)
	require.Equal(t, first, second)

	d1, err := DecompressBits(first)
	require.NoError(t, err)
	d2, err := DecompressBits(second)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestLZWErrors(t *testing.T) {
	_, err := CompressBits("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = CompressBits("01x0")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DecompressBits("")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = DecompressBits("2")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
