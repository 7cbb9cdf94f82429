package libhex_test

import (
	"testing"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
)

// Free polyhex counts, one per hexagon count starting at 1.
var goldenCounts = []int{1, 1, 3, 7, 22}

func TestEnumerate(t *testing.T) {
	for h, want := range goldenCounts {
		systems, err := libhex.Enumerate(h + 1)
		if err != nil {
			t.Fatal(err)
		}
		if len(systems) != want {
			t.Fatalf("h=%d: enumerated %d systems, want %d", h+1, len(systems), want)
		}
		for _, b := range systems {
			if b.HexCount() != h+1 {
				t.Fatalf("h=%d: got a %d-hexagon system", h+1, b.HexCount())
			}
			if !b.IsConnected() {
				t.Fatalf("h=%d: %v is not connected", h+1, b)
			}
			b.Reclaim()
		}
	}

	if _, err := libhex.Enumerate(0); err != gohex.ErrBadHexCount {
		t.Fatalf("err=%v", err)
	}
	if _, err := libhex.Enumerate(gohex.MaxHexCount + 1); err != gohex.ErrHexCountRange {
		t.Fatalf("err=%v", err)
	}
}

func TestEnumStream(t *testing.T) {
	total := 0
	for _, n := range goldenCounts {
		total += n
	}

	count := libhex.EnumBenzenoids(1, len(goldenCounts)).PullAll()
	if count != total {
		t.Fatalf("streamed %d systems, want %d", count, total)
	}

	// Bounds are clamped, not rejected
	if count = libhex.EnumBenzenoids(-10, 2).PullAll(); count != 2 {
		t.Fatalf("streamed %d systems, want 2", count)
	}
	if count = libhex.EnumBenzenoids(3, 2).PullAll(); count != 0 {
		t.Fatalf("streamed %d systems, want 0", count)
	}
}

func TestStreamDropDupes(t *testing.T) {
	b := mustParse(t, "[(0,0),(0,1),(1,0)]")
	src := libhex.NewSystemStream()
	go func() {
		for k := 0; k < 3; k++ {
			src.PushSystem(b)
		}
		b.Reclaim()
		src.Close()
	}()

	count := src.DropDupes(libhex.NewCanonicSet()).PullAll()
	if count != 1 {
		t.Fatalf("passed %d systems, want 1", count)
	}
}

func TestCanonicSets(t *testing.T) {
	for _, set := range []libhex.CanonicSet{libhex.NewCanonicSet(), libhex.NewLSMSet()} {
		b1 := mustParse(t, "[(0,0),(0,1)]")
		b2 := mustParse(t, "[(4,4),(5,4)]") // isomorphic to b1
		b3 := mustParse(t, "[(0,0),(0,1),(0,2)]")

		if !set.TryAdd(b1) {
			t.Fatal("nope")
		}
		if set.TryAdd(b2) {
			t.Fatal("isomorphic add should fail")
		}
		if !set.TryAdd(b3) {
			t.Fatal("nope")
		}

		set.Close()
		if !set.TryAdd(b1) {
			t.Fatal("Close should empty the set")
		}
		set.Close()

		b1.Reclaim()
		b2.Reclaim()
		b3.Reclaim()
	}
}
