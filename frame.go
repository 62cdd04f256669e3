package ziv

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Frame wraps payload bits in the self-describing file layout:
//
//	[unary length prefix][payload bits][sentinel + zero padding]
//
// The prefix is k-1 zero bits followed by the k-bit binary form of bitLen,
// where k is the bit-width of that form. bitLen records the uncompressed bit
// length of the data the payload was derived from. The result is padded to a
// byte boundary with a '1' sentinel bit and zero bits; a payload that already
// ends on a byte boundary gets a full sentinel byte. Bits are packed into
// bytes most significant bit first.
func Frame(payload string, bitLen int) ([]byte, error) {
	if bitLen <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "non-positive bit length %d", bitLen)
	}
	if err := checkBits(payload); err != nil {
		return nil, err
	}

	length := strconv.FormatInt(int64(bitLen), 2)
	var b strings.Builder
	b.WriteString(strings.Repeat("0", len(length)-1))
	b.WriteString(length)
	b.WriteString(payload)

	if pad := 8 - b.Len()%8; pad == 8 {
		b.WriteString("10000000")
	} else {
		b.WriteString("1")
		b.WriteString(strings.Repeat("0", pad-1))
	}
	return bitsToBytes(b.String())
}

// Unframe unpacks data into bits and strips the unary length prefix. It
// returns the remaining bits and the length the prefix declared. The declared
// length is metadata: payload boundaries are implicit in the coder's own
// termination, so the trailing sentinel padding is left in place and must be
// removed with TrimPadding by whichever coder consumes the payload.
func Unframe(data []byte) (string, int, error) {
	bits := bytesToBits(data)

	zeros := strings.IndexByte(bits, '1')
	if zeros < 0 {
		return "", 0, errors.Wrap(ErrMalformedStream, "no leading 1 bit in length prefix")
	}
	if len(bits) < 2*zeros+1 {
		return "", 0, errors.Wrapf(ErrMalformedStream, "length prefix claims %d bits, stream has %d", 2*zeros+1, len(bits))
	}
	bitLen, err := strconv.ParseInt(bits[zeros:2*zeros+1], 2, 64)
	if err != nil {
		return "", 0, errors.Wrapf(ErrMalformedStream, "length prefix %q does not fit an int64", bits[zeros:2*zeros+1])
	}
	return bits[2*zeros+1:], int(bitLen), nil
}

// TrimPadding removes the byte-alignment padding from the end of bits: the
// trailing zero bits and the '1' sentinel before them.
func TrimPadding(bits string) (string, error) {
	sentinel := strings.LastIndexByte(bits, '1')
	if sentinel < 0 {
		return "", errors.Wrap(ErrMalformedStream, "no sentinel bit before padding")
	}
	return bits[:sentinel], nil
}
