package ziv

import (
	"fmt"
)

// ErrInvalidInput is returned when an input sequence is empty, contains
// characters other than '0' and '1' where bits are expected, or carries an
// out-of-range rotation index.
var ErrInvalidInput = fmt.Errorf("invalid input")

// ErrUnknownSymbol is returned by Huffman encoding when a symbol is absent
// from the code table.
var ErrUnknownSymbol = fmt.Errorf("symbol not in code table")

// ErrUnknownCode is returned by Huffman decoding when a bitstring matches no
// code table entry.
var ErrUnknownCode = fmt.Errorf("code not in code table")

// ErrMalformedStream is returned when a framed stream is shorter than its own
// length prefix claims, or when the padding sentinel bit is missing.
var ErrMalformedStream = fmt.Errorf("malformed stream")
