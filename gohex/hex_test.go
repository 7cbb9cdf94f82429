package gohex_test

import (
	"testing"

	"github.com/polyhex-systems/gohex/gohex"
)

func TestNeighbours(t *testing.T) {
	want := [6]gohex.Coord{
		{I: 1, J: 0}, {I: 1, J: -1}, {I: 0, J: -1},
		{I: -1, J: 0}, {I: -1, J: 1}, {I: 0, J: 1},
	}
	got := gohex.Coord{}.Neighbours()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}

	// A neighbour of c+d is the neighbour of c translated by d
	c := gohex.Coord{I: 3, J: -2}
	for k, n := range c.Neighbours() {
		want := gohex.Coord{I: c.I + got[k].I, J: c.J + got[k].J}
		if n != want {
			t.Fatalf("neighbour %d: got %v, want %v", k, n, want)
		}
	}
}

func TestRotate60(t *testing.T) {
	c := gohex.Coord{I: 2, J: -5}

	// Six rotations are the identity
	r := c
	for k := 0; k < 6; k++ {
		r = r.Rotate60()
		if k < 5 && r == c {
			t.Fatalf("rotation has period %d", k+1)
		}
	}
	if r != c {
		t.Fatalf("six rotations of %v gave %v", c, r)
	}

	// Rotation permutes the neighbours of the origin
	n := gohex.Coord{I: 1, J: 0}.Rotate60()
	if (n != gohex.Coord{I: 1, J: -1}) {
		t.Fatalf("got %v", n)
	}
}

func TestReflect(t *testing.T) {
	c := gohex.Coord{I: 4, J: 1}
	if r := c.Reflect().Reflect(); r != c {
		t.Fatalf("double reflection of %v gave %v", c, r)
	}
}

func TestCompareCoords(t *testing.T) {
	a := []gohex.Coord{{I: 0, J: 0}, {I: 0, J: 1}}
	b := []gohex.Coord{{I: 0, J: 0}, {I: 1, J: 0}}

	if gohex.CompareCoords(a, a) != 0 {
		t.Fatal("equal slices should compare 0")
	}
	if gohex.CompareCoords(a, b) >= 0 {
		t.Fatal("(0,1) should order before (1,0)")
	}
	if gohex.CompareCoords(a[:1], a) >= 0 {
		t.Fatal("shorter prefix should order first")
	}
}
