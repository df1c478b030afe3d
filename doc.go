// Package genestring provides a fixed-capacity, bit-addressable packed array
// backed by 64-bit words.
//
// A genestring stores fields of 1-64 bits at arbitrary bit offsets, including
// fields that straddle a word boundary, without disturbing neighboring bits.
// It is the storage primitive for genetic-algorithm style hosts: genes are
// encoded as (offset, bits) fields, populations are seeded via Fill, and
// crossover is implemented via Transplant.
//
// # Quick Start
//
//	g := genestring.New(128)
//
//	// Write an 8-bit gene straddling the word boundary, read it back.
//	_ = g.Set(60, 8, 0xFF)
//	v, _ := g.Get(60, 8) // v == 0xFF
//
//	// Seed fresh DNA from any word source.
//	rng := rand.New(rand.NewSource(4711))
//	g.Fill(rng.Uint64)
//
//	// Crossover: copy bits [32, 288) from a donor.
//	child := g.Clone()
//	_ = child.Transplant(donor, 32, 256)
//
// # Contracts
//
// Get and Set reject widths above 64 bits and any field extending past the
// bit capacity; failed calls never partially mutate the words. Capacity is
// fixed at construction (rounded up to whole words) and a genestring is not
// safe for concurrent use.
package genestring
