package catalog_test

import (
	"os"
	"path"
	"testing"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/catalog"
)

func TestBasics(t *testing.T) {

	dir, err := os.MkdirTemp("", "junk*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := gohex.NewCatalogContext()

	cat, err := catalog.OpenCatalog(ctx, gohex.CatalogOpts{
		DBPath:      path.Join(dir, "TestBasics"),
		MaxHexCount: 4,
	})
	if err != nil {
		t.Fatal(err)
	}

	added := 0
	for h := 1; h <= 4; h++ {
		systems, err := libhex.Enumerate(h)
		if err != nil {
			t.Fatal(err)
		}
		for _, b := range systems {
			if !cat.TryAddSystem(b) {
				t.Fatal("nope")
			}
			if cat.TryAddSystem(b) {
				t.Fatal("dupe add should fail")
			}
			added++
			b.Reclaim()
		}
	}

	if n := cat.NumSystems(3); n != 3 {
		t.Fatalf("NumSystems(3) = %d", n)
	}
	if n := cat.NumSystems(0); n != 0 {
		t.Fatalf("NumSystems(0) = %d", n)
	}

	// A system over the catalog's MaxHexCount is refused
	tooBig, err := libhex.Enumerate(5)
	if err != nil {
		t.Fatal(err)
	}
	if cat.TryAddSystem(tooBig[0]) {
		t.Fatal("over-budget add should fail")
	}
	for _, b := range tooBig {
		b.Reclaim()
	}

	// Select -- we should get all the systems we've added so far
	{
		total := 0
		onHit := make(chan gohex.System)
		go func() {
			cat.Select(gohex.DefaultSelector, onHit)
			close(onHit)
		}()
		for b := range onHit {
			total++
			b.Reclaim()
		}
		if total != added {
			t.Fatalf("Select returned %d systems, want %d", total, added)
		}
	}

	// Tallies and content survive a reopen
	if err = cat.Close(); err != nil {
		t.Fatal(err)
	}

	cat, err = catalog.OpenCatalog(ctx, gohex.CatalogOpts{
		DBPath:      path.Join(dir, "TestBasics"),
		MaxHexCount: 4,
		ReadOnly:    true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if n := cat.NumSystems(4); n != 7 {
		t.Fatalf("NumSystems(4) = %d after reopen", n)
	}

	b := libhex.Unit()
	if cat.TryAddSystem(b) {
		t.Fatal("read-only add should fail")
	}
	b.Reclaim()

	ctx.Close()
	<-ctx.Done()
}

func TestInMemory(t *testing.T) {

	ctx := gohex.NewCatalogContext()

	cat, err := catalog.OpenCatalog(ctx, gohex.CatalogOpts{})
	if err != nil {
		t.Fatal(err)
	}

	stream := libhex.EnumBenzenoids(1, 3).
		AddTo(cat, libhex.AddSystemOpts{})
	if count := stream.PullAll(); count != 5 {
		t.Fatalf("added %d systems, want 5", count)
	}
	if n := cat.NumSystems(3); n != 3 {
		t.Fatalf("NumSystems(3) = %d", n)
	}

	ctx.Close()
	<-ctx.Done()
}
