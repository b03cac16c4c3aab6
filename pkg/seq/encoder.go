// Package seq encodes DNA sequences over the ACGT alphabet into integer
// indices and flattened one-hot matrices.
package seq

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cesco345/molecular-biology-meanderings/internal/tensor"
)

// Alphabet is the nucleotide alphabet, in index order.
const Alphabet = "ACGT"

// AlphabetSize is the number of distinct bases.
const AlphabetSize = len(Alphabet)

var (
	// ErrInvalidBase indicates a character outside the ACGT alphabet.
	ErrInvalidBase = errors.New("seq: invalid nucleotide")
	// ErrInvalidIndex indicates an index outside [0, AlphabetSize).
	ErrInvalidIndex = errors.New("seq: base index out of range")
	// ErrEmpty indicates an empty sequence or sequence set.
	ErrEmpty = errors.New("seq: sequence must be non-empty")
	// ErrLengthMismatch indicates sequences of differing lengths where equal
	// lengths are required.
	ErrLengthMismatch = errors.New("seq: all sequences must have the same length")
)

// Encode converts a DNA string to base indices. Lowercase input is accepted.
func Encode(s string) ([]int, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	ids := make([]int, len(s))
	for i, c := range strings.ToUpper(s) {
		idx := strings.IndexRune(Alphabet, c)
		if idx < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidBase, c, i)
		}
		ids[i] = idx
	}
	return ids, nil
}

// Decode converts base indices back to a DNA string.
func Decode(ids []int) (string, error) {
	if len(ids) == 0 {
		return "", ErrEmpty
	}
	var sb strings.Builder
	sb.Grow(len(ids))
	for i, id := range ids {
		if id < 0 || id >= AlphabetSize {
			return "", fmt.Errorf("%w: %d at position %d", ErrInvalidIndex, id, i)
		}
		sb.WriteByte(Alphabet[id])
	}
	return sb.String(), nil
}

// OneHot encodes equal-length sequences as a (len(seqs), L*4) Float64 tensor,
// each row the concatenation of per-position one-hot vectors.
func OneHot(seqs []string) (*tensor.Tensor, error) {
	if len(seqs) == 0 {
		return nil, ErrEmpty
	}
	length := len(seqs[0])
	rows := make([][]float64, len(seqs))
	for i, s := range seqs {
		if len(s) != length {
			return nil, fmt.Errorf("%w: sequence %d has length %d, want %d", ErrLengthMismatch, i, len(s), length)
		}
		ids, err := Encode(s)
		if err != nil {
			return nil, err
		}
		row := make([]float64, length*AlphabetSize)
		for pos, id := range ids {
			row[pos*AlphabetSize+id] = 1
		}
		rows[i] = row
	}
	return tensor.FromRows(rows)
}
