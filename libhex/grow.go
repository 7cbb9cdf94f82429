package libhex

import (
	"github.com/polyhex-systems/gohex/gohex"
)

// Enumerate returns all canonical benzenoid systems with exactly hexCount
// hexagons, built by repeatedly growing each smaller size class by one
// frontier cell and deduplicating via canonical form.
//
// Warning: the number of systems grows super-polynomially in hexCount; there
// is no pruning beyond symmetry dedup, so keep hexCount small.
func Enumerate(hexCount int) ([]*Benzenoid, error) {
	if hexCount < 1 {
		return nil, gohex.ErrBadHexCount
	}
	if hexCount > gohex.MaxHexCount {
		return nil, gohex.ErrHexCountRange
	}

	sizeClass := []*Benzenoid{Unit()}
	for h := 1; h < hexCount; h++ {
		next := growSizeClass(sizeClass)
		for _, b := range sizeClass {
			b.Reclaim()
		}
		sizeClass = next
	}
	return sizeClass, nil
}

// growSizeClass produces the canonical systems of size k+1 from the complete
// canonical size-k class.
func growSizeClass(sizeClass []*Benzenoid) []*Benzenoid {
	emitted := NewCanonicSet()
	defer emitted.Close()

	var next []*Benzenoid
	for _, b := range sizeClass {
		for _, cell := range b.Frontier() {
			bc, err := b.Grow(cell)
			if err != nil {
				panic(err) // a grown system is never empty
			}
			if emitted.TryAdd(bc) {
				next = append(next, bc)
			} else {
				bc.Reclaim()
			}
		}
	}
	return next
}

// GrowthWalker enumerates canonical benzenoid systems one size class at a
// time, emitting them onto EnumStream.
type GrowthWalker struct {
	EnumStream *SystemStream
}

func NewGrowthWalker() *GrowthWalker {
	return &GrowthWalker{
		EnumStream: &SystemStream{
			Outlet: make(chan *Benzenoid, 1),
		},
	}
}

// EnumBenzenoids streams every canonical benzenoid system with hexagon counts
// hexLo..hexHi (inclusive).
func EnumBenzenoids(hexLo, hexHi int) *SystemStream {
	gw := NewGrowthWalker()

	go func() {
		gw.EnumBenzenoids(hexLo, hexHi)
	}()

	return gw.EnumStream
}

func (gw *GrowthWalker) EnumBenzenoids(hexLo, hexHi int) {
	defer gw.EnumStream.Close()

	if hexLo < 1 {
		hexLo = 1
	}
	if hexHi > gohex.MaxHexCount {
		hexHi = gohex.MaxHexCount
	}
	if hexHi < hexLo {
		return
	}

	sizeClass := []*Benzenoid{Unit()}
	for h := 1; ; h++ {
		if h >= hexLo {
			for _, b := range sizeClass {
				gw.EnumStream.PushSystem(b)
			}
		}
		if h == hexHi {
			break
		}
		next := growSizeClass(sizeClass)
		for _, b := range sizeClass {
			b.Reclaim()
		}
		sizeClass = next
	}

	for _, b := range sizeClass {
		b.Reclaim()
	}
}
