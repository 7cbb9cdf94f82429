package libhex

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/polyhex-systems/gohex/gohex"
)

type Coord = gohex.Coord

// Benzenoid is the concrete gohex.System implementation: an unordered
// collection of distinct hexagons, interpreted as a connected polyhex.
// Connectivity is preserved by construction when growing; systems built from
// arbitrary coordinate lists can be checked with IsConnected().
type Benzenoid struct {
	coords  []Coord
	canonic bool
}

func NewBenzenoid(src *Benzenoid) *Benzenoid {
	b := benzenoidPool.Get().(*Benzenoid)
	b.Init(src)
	return b
}

// Unit returns the single-hexagon system ("benzene"), in canonical form.
func Unit() *Benzenoid {
	b := NewBenzenoid(nil)
	b.coords = append(b.coords, Coord{I: 0, J: 0})
	b.canonic = true
	return b
}

// NewBenzenoidFromCoords forms a system from the given hexagons.
// Duplicates collapse into one hexagon; the input slice is not retained.
func NewBenzenoidFromCoords(coords []Coord) (*Benzenoid, error) {
	if len(coords) == 0 {
		return nil, gohex.ErrEmptySystem
	}
	b := NewBenzenoid(nil)
	b.coords = append(b.coords, coords...)
	sortCoords(b.coords)
	b.coords = compactCoords(b.coords)
	return b, nil
}

func (b *Benzenoid) Init(src *Benzenoid) {
	if b == src {
		return
	}
	if src == nil {
		b.coords = b.coords[:0]
		b.canonic = false
		return
	}
	b.coords = append(b.coords[:0], src.coords...)
	b.canonic = src.canonic
}

func (b *Benzenoid) HexCount() int {
	return len(b.coords)
}

func (b *Benzenoid) Coords() []Coord {
	return b.coords
}

// Contains returns whether the given hexagon is part of b.
func (b *Benzenoid) Contains(c Coord) bool {
	for _, ci := range b.coords {
		if ci == c {
			return true
		}
	}
	return false
}

// Normalize translates b so that all coordinates are non-negative and as
// small as possible: the minimum i and minimum j across the system (computed
// independently per axis) both become 0. The coordinates are then sorted into
// the (i, j) lexicographic order and duplicates collapse.
func (b *Benzenoid) Normalize() error {
	if len(b.coords) == 0 {
		return gohex.ErrEmptySystem
	}
	normalizeCoords(&b.coords)
	return nil
}

// Canonize replaces b's coordinates with the canonical form of its symmetry
// class: the lexicographically smallest normalized image over the 6 rotations
// and the 6 rotated reflections. Canonize is idempotent, and all 12 symmetric
// images of a shape canonize to the same value.
func (b *Benzenoid) Canonize() error {
	if b.canonic {
		return nil
	}
	if err := b.Normalize(); err != nil {
		return err
	}

	best := append([]Coord(nil), b.coords...)
	img := append([]Coord(nil), b.coords...)

	// The 5 remaining rotational images, each re-normalized from the previous
	for k := 0; k < 5; k++ {
		rotateCoords(img)
		normalizeCoords(&img)
		if gohex.CompareCoords(img, best) < 0 {
			copy(best, img)
		}
	}

	// The reflected image and its 5 rotations
	img = append(img[:0], b.coords...)
	reflectCoords(img)
	normalizeCoords(&img)
	if gohex.CompareCoords(img, best) < 0 {
		copy(best, img)
	}
	for k := 0; k < 5; k++ {
		rotateCoords(img)
		normalizeCoords(&img)
		if gohex.CompareCoords(img, best) < 0 {
			copy(best, img)
		}
	}

	b.coords = best
	b.canonic = true
	return nil
}

// Frontier returns the hexagons that are adjacent to some hexagon of b but do
// not belong to b: the candidate cells for growth. The result is sorted so
// enumeration order is deterministic.
func (b *Benzenoid) Frontier() []Coord {
	members := make(map[Coord]struct{}, len(b.coords))
	for _, c := range b.coords {
		members[c] = struct{}{}
	}

	seen := make(map[Coord]struct{}, 4*len(b.coords))
	frontier := make([]Coord, 0, 2*len(b.coords)+4)
	for _, c := range b.coords {
		for _, n := range c.Neighbours() {
			if _, inB := members[n]; inB {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			frontier = append(frontier, n)
		}
	}
	sortCoords(frontier)
	return frontier
}

// Grow returns the canonical form of b with the given frontier cell added.
func (b *Benzenoid) Grow(cell Coord) (*Benzenoid, error) {
	bc := NewBenzenoid(b)
	bc.coords = append(bc.coords, cell)
	bc.canonic = false
	if err := bc.Canonize(); err != nil {
		bc.Reclaim()
		return nil, err
	}
	return bc, nil
}

// AreIsomorphic returns whether b1 and b2 have the same shape up to
// translation, rotation, and reflection. Neither argument is mutated.
func AreIsomorphic(b1, b2 *Benzenoid) (bool, error) {
	if b1 == nil || b2 == nil {
		return false, gohex.ErrNilSystem
	}
	c1 := NewBenzenoid(b1)
	defer c1.Reclaim()
	c2 := NewBenzenoid(b2)
	defer c2.Reclaim()

	if err := c1.Canonize(); err != nil {
		return false, err
	}
	if err := c2.Canonize(); err != nil {
		return false, err
	}
	return gohex.CompareCoords(c1.coords, c2.coords) == 0, nil
}

// IsConnected reports whether every hexagon of b is reachable from every
// other through lattice adjacencies. Grown systems are connected by
// construction; parsed coordinate lists are not.
func (b *Benzenoid) IsConnected() bool {
	if len(b.coords) == 0 {
		return false
	}

	members := make(map[Coord]struct{}, len(b.coords))
	for _, c := range b.coords {
		members[c] = struct{}{}
	}

	visited := make(map[Coord]struct{}, len(members))
	queue := append(make([]Coord, 0, len(members)), b.coords[0])
	visited[b.coords[0]] = struct{}{}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, n := range c.Neighbours() {
			if _, inB := members[n]; !inB {
				continue
			}
			if _, done := visited[n]; done {
				continue
			}
			visited[n] = struct{}{}
			queue = append(queue, n)
		}
	}
	return len(visited) == len(members)
}

func (b *Benzenoid) WriteAsString(out io.Writer, opts gohex.PrintOpts) {
	if opts.Label != "" {
		fmt.Fprintf(out, "%s,", opts.Label)
	}
	if opts.Counts {
		fmt.Fprintf(out, "h=%d,", b.HexCount())
	}
	if opts.Coords {
		io.WriteString(out, b.String())
	}
}

// String formats b as a coordinate list expr, e.g. "[(0,0),(0,1),(1,0)]".
// ParseSystem accepts the same form.
func (b *Benzenoid) String() string {
	sb := strings.Builder{}
	sb.Grow(8*len(b.coords) + 2)
	sb.WriteByte('[')
	for k, c := range b.coords {
		if k > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "(%d,%d)", c.I, c.J)
	}
	sb.WriteByte(']')
	return sb.String()
}

func (b *Benzenoid) Println(prefix string) {
	sb := strings.Builder{}
	sb.Grow(128)
	sb.WriteString(prefix)
	b.WriteAsString(&sb, gohex.DefaultPrintOpts)
	fmt.Println(sb.String())
}

func (b *Benzenoid) MakeCopy() gohex.System {
	return NewBenzenoid(b)
}

func (b *Benzenoid) Reclaim() {
	if b != nil {
		benzenoidPool.Put(b)
	}
}

var benzenoidPool = sync.Pool{
	New: func() interface{} {
		return new(Benzenoid)
	},
}

func rotateCoords(coords []Coord) {
	for k, c := range coords {
		coords[k] = c.Rotate60()
	}
}

func reflectCoords(coords []Coord) {
	for k, c := range coords {
		coords[k] = c.Reflect()
	}
}

func sortCoords(coords []Coord) {
	sort.Slice(coords, func(i, j int) bool {
		return coords[i].Compare(coords[j]) < 0
	})
}

// compactCoords collapses duplicate coordinates in a sorted slice.
func compactCoords(coords []Coord) []Coord {
	if len(coords) < 2 {
		return coords
	}
	D := 1
	for k := 1; k < len(coords); k++ {
		if coords[k] != coords[D-1] {
			coords[D] = coords[k]
			D++
		}
	}
	return coords[:D]
}

// normalizeCoords translates the coordinates by their per-axis minima, sorts
// them, and collapses duplicates.
func normalizeCoords(coords *[]Coord) {
	cc := *coords
	iMin, jMin := cc[0].I, cc[0].J
	for _, c := range cc[1:] {
		if c.I < iMin {
			iMin = c.I
		}
		if c.J < jMin {
			jMin = c.J
		}
	}
	for k, c := range cc {
		cc[k] = Coord{I: c.I - iMin, J: c.J - jMin}
	}
	sortCoords(cc)
	*coords = compactCoords(cc)
}
