// Package ziv implements lossless compression built from three cooperating
// coders: the Burrows-Wheeler transform, Huffman coding over the transformed
// string, and an adaptive LZW-style dictionary coder that operates on a flat
// bitstream and backs the framed file format.
//
// Below is an example of using the bundled command to round-trip a file:
//
//	go run ./cmd/ziv compress README.md
//	go run ./cmd/ziv decompress -format md README_compressed.ziv
//	diff README.md README_compressed_decompressed.md
package ziv

import (
	"io"
	"os"

	"github.com/pkg/errors"
)

// Compress reads the file called name fully, compresses its bits with the
// adaptive dictionary coder, and writes the framed result to w.
func Compress(w io.Writer, name string) error {
	data, err := os.ReadFile(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if len(data) == 0 {
		return errors.Wrapf(ErrInvalidInput, "file %s is empty", name)
	}

	bits := bytesToBits(data)
	compressed, err := CompressBits(bits)
	if err != nil {
		return err
	}
	framed, err := Frame(compressed, len(bits))
	if err != nil {
		return err
	}
	if _, err := w.Write(framed); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// Decompress reads a framed stream fully from r, undoes the dictionary coder,
// and writes the original bytes to w. The bit length declared by the frame's
// prefix bounds the output, which discards the zero bits the compressor used
// to pad its trailing candidate.
func Decompress(w io.Writer, r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "")
	}

	payload, bitLen, err := Unframe(data)
	if err != nil {
		return err
	}
	compressed, err := TrimPadding(payload)
	if err != nil {
		return err
	}
	bits, err := DecompressBits(compressed)
	if err != nil {
		return err
	}
	if len(bits) < bitLen {
		return errors.Wrapf(ErrMalformedStream, "prefix declares %d bits, decoded only %d", bitLen, len(bits))
	}
	if bitLen%8 != 0 {
		return errors.Wrapf(ErrMalformedStream, "declared bit length %d is not a whole number of bytes", bitLen)
	}

	out, err := bitsToBytes(bits[:bitLen])
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
