package genestring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamming(t *testing.T) {
	a := New(128)
	b := New(128)

	d, err := Hamming(a, b)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), d)

	require.NoError(t, a.Set(60, 8, 0xFF))

	d, err = Hamming(a, b)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), d)

	// Symmetric.
	d, err = Hamming(b, a)
	require.NoError(t, err)
	assert.Equal(t, uint64(8), d)
}

func TestHamming_LengthMismatch(t *testing.T) {
	a := New(64)
	b := New(128)

	_, err := Hamming(a, b)
	var lm *ErrLengthMismatch
	require.ErrorAs(t, err, &lm)
	assert.Equal(t, 1, lm.Words)
	assert.Equal(t, 2, lm.OtherWords)
}

func TestDiffPositions(t *testing.T) {
	a := New(128)
	b := New(128)

	// Differences straddling the word boundary.
	require.NoError(t, a.Set(60, 8, 0xFF))
	require.NoError(t, b.Set(60, 8, 0x0F))

	rb, err := DiffPositions(a, b)
	require.NoError(t, err)

	assert.Equal(t, uint64(4), rb.GetCardinality())
	for _, pos := range []uint64{64, 65, 66, 67} {
		assert.True(t, rb.Contains(pos), "position %d", pos)
	}
	assert.False(t, rb.Contains(60))

	d, err := Hamming(a, b)
	require.NoError(t, err)
	assert.Equal(t, rb.GetCardinality(), d)
}

func TestDiffPositions_Identical(t *testing.T) {
	a := New(256)
	a.Fill(func() uint64 { return 0xDEADBEEF })

	rb, err := DiffPositions(a, a.Clone())
	require.NoError(t, err)
	assert.True(t, rb.IsEmpty())
}
