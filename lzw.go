package ziv

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The LZW coder operates on flat bit sequences, not byte symbols. A lexicon
// maps candidate bit-patterns to compact codes (or codes back to patterns on
// the decode side). Both sides seed their lexicon with the two one-bit
// entries and grow it by exactly one entry per step, so the two tables stay
// in lock-step without ever being transmitted: growth is a pure function of
// the entry index.
//
// The stored codes are kept at a uniform width of ceil(log2(index)) bits by
// prepending a '0' to every entry each time index crosses a power of two.

// CompressBits compresses a sequence of bits with the adaptive dictionary
// coder. Bits are represented as a string of '0' and '1' characters.
func CompressBits(data string) (string, error) {
	if data == "" {
		return "", errors.Wrap(ErrInvalidInput, "compress of empty bit sequence")
	}
	if err := checkBits(data); err != nil {
		return "", err
	}

	lexicon := map[string]string{"0": "0", "1": "1"}
	index := 2
	var out strings.Builder
	var candidate string

	for i := 0; i < len(data); i++ {
		candidate += data[i : i+1]
		code, ok := lexicon[candidate]
		if !ok {
			continue
		}
		out.WriteString(code)

		// The matched candidate is retired in favor of its two extensions.
		// candidate+"0" keeps the code just emitted, candidate+"1" takes the
		// next free index.
		delete(lexicon, candidate)
		lexicon[candidate+"0"] = code
		if index&(index-1) == 0 {
			for key, value := range lexicon {
				lexicon[key] = "0" + value
			}
		}
		lexicon[candidate+"1"] = strconv.FormatInt(int64(index), 2)
		index++
		candidate = ""
	}

	// Flush a trailing unmatched candidate by zero-padding it until it hits a
	// lexicon entry. Every retired candidate left its all-zeros extension
	// behind, so the padding always terminates at a match.
	for candidate != "" {
		if code, ok := lexicon[candidate]; ok {
			out.WriteString(code)
			break
		}
		candidate += "0"
	}

	return out.String(), nil
}

// DecompressBits reverses CompressBits. It rebuilds the same lexicon from the
// same growth rule, keyed by code rather than by candidate pattern, reading
// bits into a probe until the probe matches a known code.
//
// The decompressed sequence reproduces the original input of CompressBits,
// except that the zero bits CompressBits used to pad its trailing candidate
// reappear at the end of the output. Callers that know the original bit
// length, such as Decompress, truncate to it.
func DecompressBits(data string) (string, error) {
	if data == "" {
		return "", errors.Wrap(ErrInvalidInput, "decompress of empty bit sequence")
	}
	if err := checkBits(data); err != nil {
		return "", err
	}

	lexicon := map[string]string{"0": "0", "1": "1"}
	index := 2
	var out strings.Builder
	var probe string

	for i := 0; i < len(data); i++ {
		probe += data[i : i+1]
		pattern, ok := lexicon[probe]
		if !ok {
			continue
		}
		out.WriteString(pattern)

		// Mirror of the compress-side growth: the matched code now stands
		// for pattern+"0", and the next free index's code for pattern+"1".
		// The width bump prepends '0' to the keys here since the codes are
		// the keys on this side.
		lexicon[probe] = pattern + "0"
		if index&(index-1) == 0 {
			widened := make(map[string]string, len(lexicon)+1)
			for key, value := range lexicon {
				widened["0"+key] = value
			}
			lexicon = widened
		}
		lexicon[strconv.FormatInt(int64(index), 2)] = pattern + "1"
		index++
		probe = ""
	}

	return out.String(), nil
}
