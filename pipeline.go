package ziv

import (
	"strings"
)

// An Encoding is the result of the BWT-Huffman pipeline: the Huffman codes of
// the transformed string, the code table that produced them, and the rotation
// index needed to undo the transform. Table and Index must accompany Codes
// out-of-band for the encoding to be decodable.
type Encoding struct {
	Codes []string
	Table CodeTable
	Index int
}

// EncodeString compresses s by running the Burrows-Wheeler transform and
// Huffman-encoding the transformed string symbol by symbol.
func EncodeString(s string) (*Encoding, error) {
	bwt, err := Transform(s)
	if err != nil {
		return nil, err
	}
	table, err := BuildCodeTable(Frequencies(bwt.Transformed))
	if err != nil {
		return nil, err
	}
	codes, err := table.Encode(bwt.Transformed)
	if err != nil {
		return nil, err
	}
	return &Encoding{Codes: codes, Table: table, Index: bwt.Index}, nil
}

// Decode reverses EncodeString, reproducing the original string exactly.
func (e *Encoding) Decode() (string, error) {
	transformed, err := e.Table.Decode(e.Codes)
	if err != nil {
		return "", err
	}
	return Invert(transformed, e.Index)
}

// Bits concatenates the encoding's codes into a single bitstring.
// The concatenation is unambiguous because the code table is prefix-free.
func (e *Encoding) Bits() string {
	var b strings.Builder
	for _, code := range e.Codes {
		b.WriteString(code)
	}
	return b.String()
}
