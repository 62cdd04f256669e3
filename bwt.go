package ziv

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// A BWT is the result of the Burrows-Wheeler transform of a string.
// Transformed is a permutation of the input's symbols, and Index is the rank
// of the original string among the sorted cyclic rotations. Index is required
// to undo the transform.
type BWT struct {
	Transformed string
	Index       int
}

// Transform performs the Burrows-Wheeler transform of s.
// The transform groups equal symbols of s together, which improves the
// compressibility of the downstream coder.
//
// For example, Transform("a_asa_da_casa") gives {"aaaadss_c__aa", 3}.
func Transform(s string) (BWT, error) {
	if s == "" {
		return BWT{}, errors.Wrap(ErrInvalidInput, "transform of empty string")
	}

	rotations := allRotations(s)
	sort.Strings(rotations)

	var last strings.Builder
	last.Grow(len(s))
	for _, rot := range rotations {
		last.WriteByte(rot[len(rot)-1])
	}

	// The original string is itself a rotation, so the search always hits.
	// SearchStrings returns the first occurrence when s is periodic and
	// several rotations compare equal.
	idx := sort.SearchStrings(rotations, s)
	return BWT{Transformed: last.String(), Index: idx}, nil
}

// Invert undoes the Burrows-Wheeler transform, reconstructing the original
// string from the transformed string and the rotation index.
//
// The sorted rotation table is rebuilt in len(transformed) rounds: each round
// prepends transformed[i] to row i and re-sorts the rows. After the final
// round the rows equal the sorted rotations and the original string sits at
// row index. This is the direct O(n^2 log n) reconstruction.
func Invert(transformed string, index int) (string, error) {
	if transformed == "" {
		return "", errors.Wrap(ErrInvalidInput, "invert of empty string")
	}
	if index < 0 || index >= len(transformed) {
		return "", errors.Wrapf(ErrInvalidInput, "rotation index %d out of range [0, %d)", index, len(transformed))
	}

	rows := make([]string, len(transformed))
	for round := 0; round < len(transformed); round++ {
		for i := 0; i < len(transformed); i++ {
			rows[i] = transformed[i:i+1] + rows[i]
		}
		sort.Strings(rows)
	}
	return rows[index], nil
}

// allRotations returns the len(s) cyclic rotations of s, where rotation i is
// s shifted left by i.
func allRotations(s string) []string {
	doubled := s + s
	rotations := make([]string, len(s))
	for i := range rotations {
		rotations[i] = doubled[i : i+len(s)]
	}
	return rotations
}
