package libhex_test

import (
	"testing"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
)

func mustParse(t *testing.T, expr string) *libhex.Benzenoid {
	t.Helper()
	b, err := libhex.ParseSystem(expr)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func mustCanonize(t *testing.T, b *libhex.Benzenoid) *libhex.Benzenoid {
	t.Helper()
	if err := b.Canonize(); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestCanonizeTranslation(t *testing.T) {
	b1 := mustCanonize(t, mustParse(t, "[(1,2),(1,3),(2,2)]"))
	b2 := mustCanonize(t, mustParse(t, "[(0,0),(0,1),(1,0)]"))
	defer b1.Reclaim()
	defer b2.Reclaim()

	if b1.String() != b2.String() {
		t.Fatalf("%v != %v", b1, b2)
	}
}

func TestCanonizeIdempotent(t *testing.T) {
	b := mustCanonize(t, mustParse(t, "[(0,0),(0,1),(1,1),(0,2)]"))
	defer b.Reclaim()

	first := b.String()
	mustCanonize(t, b)
	if b.String() != first {
		t.Fatalf("second canonize changed %s to %s", first, b.String())
	}
}

// All 12 symmetric images of a shape must canonize to the same value.
func TestCanonizeSymmetryClass(t *testing.T) {
	base := mustCanonize(t, mustParse(t, "[(0,0),(0,1),(1,1),(0,2)]"))
	defer base.Reclaim()
	want := base.String()

	coords := append([]gohex.Coord(nil), base.Coords()...)
	for reflected := 0; reflected < 2; reflected++ {
		for rot := 0; rot < 6; rot++ {
			img, err := libhex.NewBenzenoidFromCoords(coords)
			if err != nil {
				t.Fatal(err)
			}
			mustCanonize(t, img)
			if img.String() != want {
				t.Fatalf("image (reflect=%d, rot=%d) canonized to %s, want %s",
					reflected, rot, img.String(), want)
			}
			img.Reclaim()

			for k := range coords {
				coords[k] = coords[k].Rotate60()
			}
		}
		for k := range coords {
			coords[k] = coords[k].Reflect()
		}
	}
}

func TestAreIsomorphic(t *testing.T) {
	b1 := mustParse(t, "[(0,0),(0,1),(1,0)]")
	b2 := mustParse(t, "[(5,5),(5,6),(6,5)]")
	b3 := mustParse(t, "[(0,0),(0,1),(0,2)]")
	defer b1.Reclaim()
	defer b2.Reclaim()
	defer b3.Reclaim()

	iso, err := libhex.AreIsomorphic(b1, b2)
	if err != nil || !iso {
		t.Fatalf("iso=%v err=%v", iso, err)
	}
	iso, err = libhex.AreIsomorphic(b1, b3)
	if err != nil || iso {
		t.Fatalf("iso=%v err=%v", iso, err)
	}

	// Arguments must come back unchanged
	if b1.String() != "[(0,0),(0,1),(1,0)]" {
		t.Fatalf("argument was mutated: %v", b1)
	}

	if _, err = libhex.AreIsomorphic(b1, nil); err != gohex.ErrNilSystem {
		t.Fatalf("err=%v", err)
	}
}

func TestFrontierUnit(t *testing.T) {
	b := libhex.Unit()
	defer b.Reclaim()

	frontier := b.Frontier()
	if len(frontier) != 6 {
		t.Fatalf("unit frontier has %d cells", len(frontier))
	}
	for _, cell := range frontier {
		if b.Contains(cell) {
			t.Fatalf("frontier cell %v is a member", cell)
		}
	}
}

func TestIsConnected(t *testing.T) {
	b := mustParse(t, "[(0,0),(2,2)]")
	defer b.Reclaim()
	if b.IsConnected() {
		t.Fatal("disjoint hexagons reported connected")
	}

	c := mustParse(t, "[(0,0),(0,1),(1,0)]")
	defer c.Reclaim()
	if !c.IsConnected() {
		t.Fatal("triangle reported disconnected")
	}
}

func TestEncodingRoundTrip(t *testing.T) {
	b := mustParse(t, "[(1,2),(1,3),(2,2)]")
	defer b.Reclaim()

	enc, err := b.AppendEncodingTo(nil)
	if err != nil {
		t.Fatal(err)
	}
	if enc[0] != 3 {
		t.Fatalf("encoding leads with %d, want hex count 3", enc[0])
	}

	b2, err := libhex.NewBenzenoidFromEncoding(enc)
	if err != nil {
		t.Fatal(err)
	}
	defer b2.Reclaim()

	iso, err := libhex.AreIsomorphic(b, b2)
	if err != nil || !iso {
		t.Fatalf("iso=%v err=%v", iso, err)
	}

	if _, err = libhex.NewBenzenoidFromEncoding(enc[:2]); err == nil {
		t.Fatal("truncated encoding must not decode")
	}
}
