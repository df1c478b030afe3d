package genestring

import (
	"errors"
	"fmt"
)

var (
	// ErrSelfTransplant is returned when a genestring is used as its own
	// transplant donor. The windowed copy reads and writes incrementally,
	// so aliased source and destination would observe partial writes.
	ErrSelfTransplant = errors.New("donor and destination must be distinct genestrings")
)

// ErrFieldWidth indicates a field width above the 64-bit access window.
type ErrFieldWidth struct {
	Bits uint64
}

func (e *ErrFieldWidth) Error() string {
	return fmt.Sprintf("field width %d exceeds 64 bits", e.Bits)
}

// ErrOutOfBounds indicates a field [Offset, Offset+Bits) that does not fit
// inside a genestring of Capacity bits.
type ErrOutOfBounds struct {
	Offset   uint64
	Bits     uint64
	Capacity uint64
}

func (e *ErrOutOfBounds) Error() string {
	return fmt.Sprintf("field [%d, %d) is out of bounds for capacity %d bits", e.Offset, e.Offset+e.Bits, e.Capacity)
}

// ErrLengthMismatch indicates two genestrings of different word lengths
// passed to an operation that requires equal capacity.
type ErrLengthMismatch struct {
	Words      int
	OtherWords int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("genestring length mismatch: %d words vs %d words", e.Words, e.OtherWords)
}
