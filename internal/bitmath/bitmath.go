// Package bitmath provides the word-sizing arithmetic for bit-addressed
// storage: how many 64-bit words a bit count needs, and which word a given
// bit position lives in.
package bitmath

const (
	// WordBits is the number of bits per storage word.
	WordBits = 64

	// WordBytes is the number of bytes per storage word.
	WordBytes = 8
)

// WordsForBits returns the minimum number of 64-bit words needed to hold
// bits bits. A zero-bit request still yields one word.
func WordsForBits(bits uint64) uint64 {
	if bits == 0 {
		return 1
	}
	return (bits + WordBits - 1) / WordBits
}

// WordIndex returns the zero-based index of the word containing bit
// position bit. Bit positions are absolute and LSB-first within each word.
//
// For ranges, callers must index the word of the last occupied bit,
// WordIndex(offset+bits-1), never WordIndex(offset+bits): the latter
// reports a word crossing for ranges that end exactly on a word boundary.
func WordIndex(bit uint64) uint64 {
	return bit / WordBits
}
