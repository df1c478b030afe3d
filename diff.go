package genestring

import (
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/genestring/internal/bitmath"
)

// Hamming returns the number of bit positions at which a and b differ.
// The two genestrings must have the same word length.
//
// Computed as the popcount of the per-word XOR, so it costs one pass over
// the words regardless of how many bits differ.
func Hamming(a, b *Genestring) (uint64, error) {
	if len(a.words) != len(b.words) {
		return 0, &ErrLengthMismatch{Words: len(a.words), OtherWords: len(b.words)}
	}

	var distance uint64
	for i, w := range a.words {
		distance += uint64(bits.OnesCount64(w ^ b.words[i]))
	}

	return distance, nil
}

// DiffPositions returns the set of absolute bit positions at which a and b
// differ, as a roaring bitmap. The two genestrings must have the same word
// length.
func DiffPositions(a, b *Genestring) (*roaring64.Bitmap, error) {
	if len(a.words) != len(b.words) {
		return nil, &ErrLengthMismatch{Words: len(a.words), OtherWords: len(b.words)}
	}

	rb := roaring64.New()
	for i, w := range a.words {
		x := w ^ b.words[i]
		for x != 0 {
			rb.Add(uint64(i)*bitmath.WordBits + uint64(bits.TrailingZeros64(x)))
			x &= x - 1 // clear the lowest set bit
		}
	}

	return rb, nil
}
