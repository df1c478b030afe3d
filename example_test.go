package genestring_test

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/genestring"
)

func Example() {
	g := genestring.New(128)

	// An 8-bit gene straddling the word boundary.
	if err := g.Set(60, 8, 0xFF); err != nil {
		panic(err)
	}

	v, err := g.Get(60, 8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("gene: %#x\n", v)
	fmt.Printf("words: %#x %#x\n", g.Words()[0], g.Words()[1])
	// Output:
	// gene: 0xff
	// words: 0xf000000000000000 0xf
}

func Example_crossover() {
	rng := rand.New(rand.NewSource(4711))

	mother := genestring.New(256)
	mother.Fill(rng.Uint64)

	father := genestring.New(256)
	father.Fill(rng.Uint64)

	// The child starts as a copy of the mother and receives a 128-bit
	// field from the father.
	child := mother.Clone()
	if err := child.Transplant(father, 64, 128); err != nil {
		panic(err)
	}

	toMother, _ := genestring.Hamming(child, mother)
	toFather, _ := genestring.Hamming(child, father)

	fmt.Println(toMother > 0, toFather > 0)
	// Output:
	// true true
}
