package libhex_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
)

func TestParseSystem(t *testing.T) {
	b := mustParse(t, "[(0,0),(0,1),(1,0)]")
	defer b.Reclaim()
	if b.String() != "[(0,0),(0,1),(1,0)]" {
		t.Fatalf("round trip gave %s", b.String())
	}

	// Whitespace, ordering, and duplicates don't matter
	b2 := mustParse(t, "[ (1,0), (0,0), (0,1), (0,0) ]")
	defer b2.Reclaim()
	if b2.String() != b.String() {
		t.Fatalf("got %s, want %s", b2.String(), b.String())
	}

	// Negative coordinates are allowed
	b3 := mustParse(t, "[(-1,0),(-1,1)]")
	defer b3.Reclaim()
	if b3.HexCount() != 2 {
		t.Fatalf("got %d hexagons", b3.HexCount())
	}
}

func TestParseSystemErrors(t *testing.T) {
	if _, err := libhex.ParseSystem("[]"); err != gohex.ErrEmptySystem {
		t.Fatalf("err=%v", err)
	}

	for _, expr := range []string{
		"",
		"(0,0)",
		"[(0,0)",
		"[(0)]",
		"[(0,0),]",
		"[(a,b)]",
	} {
		_, err := libhex.ParseSystem(expr)
		if !errors.Is(err, gohex.ErrBadCoordExpr) {
			t.Fatalf("%q: err=%v", expr, err)
		}
	}
}
