package genestring

import (
	"github.com/hupe1980/genestring/internal/bitmath"
)

// WordBits is the number of bits per storage word.
const WordBits = bitmath.WordBits

// Genestring is a fixed-capacity, bit-addressable packed array backed by
// 64-bit words. Fields of 1-64 bits are read and written at arbitrary bit
// offsets, including fields straddling a word boundary.
//
// A Genestring is not safe for concurrent use. Each instance owns its words
// exclusively; capacity is fixed at construction.
//
// The zero value holds no words and rejects every access; use New.
type Genestring struct {
	words  []uint64
	logger *Logger
}

// New creates a genestring capable of holding at least bits bits, rounded up
// to whole 64-bit words. Even a zero-bit request allocates one word. All
// words start zeroed.
func New(bits uint64, optFns ...Option) *Genestring {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Genestring{
		words:  make([]uint64, bitmath.WordsForBits(bits)),
		logger: opts.logger,
	}
}

// BitLen returns the number of bits in the genestring.
func (g *Genestring) BitLen() uint64 {
	return uint64(len(g.words)) * bitmath.WordBits
}

// ByteLen returns the number of bytes in the genestring.
func (g *Genestring) ByteLen() uint64 {
	return uint64(len(g.words)) * bitmath.WordBytes
}

// WordLen returns the number of 64-bit words in the genestring.
func (g *Genestring) WordLen() int {
	return len(g.words)
}

// IsEmpty reports whether the genestring holds no words. Only the zero
// value is empty; New always allocates at least one word.
func (g *Genestring) IsEmpty() bool {
	return len(g.words) == 0
}

// Words returns a copy of the underlying words.
func (g *Genestring) Words() []uint64 {
	out := make([]uint64, len(g.words))
	copy(out, g.words)
	return out
}

// Clone returns a deep copy of the genestring.
func (g *Genestring) Clone() *Genestring {
	clone := &Genestring{
		words:  make([]uint64, len(g.words)),
		logger: g.logger,
	}
	copy(clone.words, g.words)
	return clone
}

// Equal reports whether a and b have the same word length and identical
// contents.
func Equal(a, b *Genestring) bool {
	if len(a.words) != len(b.words) {
		return false
	}
	for i, w := range a.words {
		if w != b.words[i] {
			return false
		}
	}
	return true
}

// Get retrieves the bits-wide unsigned value stored at bit position offset.
// Bit 0 of the result corresponds to bit offset of the genestring (LSB-first
// bit order within the field). A zero-width read returns 0.
//
// Returns *ErrFieldWidth if bits exceeds 64 and *ErrOutOfBounds if the field
// does not fit inside the genestring.
func (g *Genestring) Get(offset, bits uint64) (uint64, error) {
	if bits > bitmath.WordBits {
		return 0, &ErrFieldWidth{Bits: bits}
	}

	if bits == 0 {
		return 0, nil
	}

	if err := g.checkBounds(offset, bits); err != nil {
		return 0, err
	}

	first := bitmath.WordIndex(offset)
	last := bitmath.WordIndex(offset + bits - 1)
	shift := offset % bitmath.WordBits

	if first == last {
		return (g.words[first] >> shift) & lowMask(bits), nil
	}

	// The field straddles two words: the low part is the top 64-shift bits
	// of the first word, the high part comes from the bottom of the second.
	// The two widths sum to bits exactly.
	low := bitmath.WordBits - shift
	v := g.words[first] >> shift
	v |= g.words[last] << low

	return v & lowMask(bits), nil
}

// Set writes the low bits bits of value at bit position offset, leaving
// every other bit of the touched word(s) unchanged. Bits of value above
// position bits-1 are ignored. A zero-width write is a no-op.
//
// Validation happens before either word is written; on error the genestring
// is unmodified.
func (g *Genestring) Set(offset, bits, value uint64) error {
	if bits > bitmath.WordBits {
		return &ErrFieldWidth{Bits: bits}
	}

	if bits == 0 {
		return nil
	}

	if err := g.checkBounds(offset, bits); err != nil {
		return err
	}

	first := bitmath.WordIndex(offset)
	last := bitmath.WordIndex(offset + bits - 1)
	shift := offset % bitmath.WordBits

	value &= lowMask(bits)

	if first == last {
		mask := lowMask(bits) << shift
		g.words[first] = g.words[first]&^mask | value<<shift
		return nil
	}

	// First word keeps its low shift bits; the shifted value occupies the
	// rest. The second word keeps everything above the spilled high part.
	low := bitmath.WordBits - shift
	high := bits - low

	g.words[first] = g.words[first]&lowMask(shift) | value<<shift
	g.words[last] = g.words[last]&^lowMask(high) | value>>low

	return nil
}

// Fill replaces every word with the next value produced by gen, in word
// order starting at index 0. gen is invoked exactly once per word and may be
// stateful, e.g. a pseudo-random source seeding fresh DNA.
func (g *Genestring) Fill(gen func() uint64) {
	for i := range g.words {
		g.words[i] = gen()
	}

	g.log().LogFill(len(g.words))
}

// Transplant copies the bits-wide field at bit position offset from donor
// into the same positions of g, the usual crossover primitive. Fields wider
// than 64 bits are copied as successive 64-bit windows followed by a shorter
// tail, tiling the range exactly.
//
// The donor is only read. Donor and destination must be distinct; bounds are
// validated against both genestrings before any word is written.
func (g *Genestring) Transplant(donor *Genestring, offset, bits uint64) error {
	if donor == g {
		return ErrSelfTransplant
	}

	if err := g.checkBounds(offset, bits); err != nil {
		g.log().LogTransplant(offset, bits, err)
		return err
	}

	if err := donor.checkBounds(offset, bits); err != nil {
		g.log().LogTransplant(offset, bits, err)
		return err
	}

	defer g.log().LogTransplant(offset, bits, nil)

	for bits > bitmath.WordBits {
		v, err := donor.Get(offset, bitmath.WordBits)
		if err != nil {
			return err
		}
		if err := g.Set(offset, bitmath.WordBits, v); err != nil {
			return err
		}

		offset += bitmath.WordBits
		bits -= bitmath.WordBits
	}

	if bits > 0 {
		v, err := donor.Get(offset, bits)
		if err != nil {
			return err
		}
		if err := g.Set(offset, bits, v); err != nil {
			return err
		}
	}

	return nil
}

// checkBounds verifies that the field [offset, offset+bits) fits inside the
// genestring. Written to stay exact when offset+bits would overflow uint64.
func (g *Genestring) checkBounds(offset, bits uint64) error {
	capacity := g.BitLen()
	if bits > capacity || offset > capacity-bits {
		return &ErrOutOfBounds{Offset: offset, Bits: bits, Capacity: capacity}
	}
	return nil
}

func (g *Genestring) log() *Logger {
	if g.logger == nil {
		return noopLogger
	}
	return g.logger
}

// lowMask returns a mask of the low bits bits. bits must be in [1, 64].
func lowMask(bits uint64) uint64 {
	return ^uint64(0) >> (bitmath.WordBits - bits)
}
