package gen_test

import (
	"math/rand/v2"
	"testing"

	kindred "github.com/reoring/kindred"
	"github.com/reoring/kindred/gen"
)

func height(p kindred.Person) int {
	h := 0
	for i := range p.Children {
		if ch := height(p.Children[i]) + 1; ch > h {
			h = ch
		}
	}
	return h
}

func maxFanOut(p kindred.Person) int {
	n := len(p.Children)
	for i := range p.Children {
		if f := maxFanOut(p.Children[i]); f > n {
			n = f
		}
	}
	return n
}

func TestLeaf_SatisfiesInvariants(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		p := gen.LeafFrom(r)
		if len(p.Children) != 0 {
			t.Fatalf("leaf must have no children: %v", p)
		}
		if n := len(p.Name); n < 3 || n > 10 {
			t.Fatalf("name length out of range: %q", p.Name)
		}
		for _, c := range p.Name {
			if c < 'a' || c > 'z' {
				t.Fatalf("unexpected name character: %q", p.Name)
			}
		}
		if p.Age < 1 || p.Age > 99 {
			t.Fatalf("age out of range: %d", p.Age)
		}
	}
}

func TestNested_DepthZeroIsLeaf(t *testing.T) {
	p := gen.Nested(0, 3)
	if len(p.Children) != 0 {
		t.Fatalf("depth 0 must yield a leaf, got %d children", len(p.Children))
	}
}

func TestNested_Bounds(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 100; i++ {
		p := gen.NestedFrom(r, 2, 3)
		if h := height(p); h > 2 {
			t.Fatalf("height %d exceeds depth 2", h)
		}
		if f := maxFanOut(p); f > 3 {
			t.Fatalf("fan-out %d exceeds max 3", f)
		}
	}
}

func TestNested_RoundTripsThroughDispatch(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 50; i++ {
		p := gen.NestedFrom(r, 3, 2)
		q, err := kindred.FromMap(p.Dict().Map())
		if err != nil {
			t.Fatalf("generated tree failed import: %v", err)
		}
		if !q.Equal(p) {
			t.Fatalf("round trip lost structure:\n got  %v\n want %v", q, p)
		}
	}
}
