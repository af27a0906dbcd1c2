// Package gen builds Person trees of controlled shape for exercising deep
// round-trip conversion in tests and examples.
package gen

import (
	"math/rand/v2"
	"strings"

	kindred "github.com/reoring/kindred"
)

// Leaf returns a Person with a random name and age and no children.
func Leaf() kindred.Person {
	return LeafFrom(nil)
}

// LeafFrom is Leaf with an explicit source; a nil source uses the shared
// global one. Names are 3-10 lowercase letters, ages 1-99.
func LeafFrom(r *rand.Rand) kindred.Person {
	n := 3 + intN(r, 8)
	b := &strings.Builder{}
	for i := 0; i < n; i++ {
		b.WriteByte(byte('a' + intN(r, 26)))
	}
	return kindred.New(b.String(), 1+intN(r, 99))
}

// Nested builds a random tree of height at most depth in which every node has
// at most maxChildren children. At depth 0 it returns a leaf; otherwise each
// node gets between 0 and maxChildren (inclusive) recursively generated
// children of depth-1.
func Nested(depth, maxChildren int) kindred.Person {
	return NestedFrom(nil, depth, maxChildren)
}

// NestedFrom is Nested with an explicit source for deterministic trees.
func NestedFrom(r *rand.Rand, depth, maxChildren int) kindred.Person {
	p := LeafFrom(r)
	if depth <= 0 || maxChildren <= 0 {
		return p
	}
	n := intN(r, maxChildren+1)
	for i := 0; i < n; i++ {
		p.AddChild(NestedFrom(r, depth-1, maxChildren))
	}
	return p
}

func intN(r *rand.Rand, n int) int {
	if r != nil {
		return r.IntN(n)
	}
	return rand.IntN(n)
}
