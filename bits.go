package ziv

import (
	"strings"

	"github.com/pkg/errors"
)

// bytesToBits lays out data bit by bit, most significant bit first per byte.
func bytesToBits(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, c := range data {
		for i := 7; i >= 0; i-- {
			if c&(1<<uint(i)) != 0 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String()
}

// bitsToBytes packs a string of '0'/'1' characters into bytes, most
// significant bit first. The length of bits must be a multiple of 8.
func bitsToBytes(bits string) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "bit length %d is not a multiple of 8", len(bits))
	}
	data := make([]byte, len(bits)/8)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '1':
			data[i/8] |= 1 << uint(7-i%8)
		case '0':
		default:
			return nil, errors.Wrapf(ErrInvalidInput, "character %q at offset %d is not a bit", bits[i], i)
		}
	}
	return data, nil
}

// checkBits verifies that s consists solely of '0' and '1' characters.
func checkBits(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return errors.Wrapf(ErrInvalidInput, "character %q at offset %d is not a bit", s[i], i)
		}
	}
	return nil
}
