package gohex

// Coord is a hexagon on the infinite hex lattice, addressed in axial
// coordinates (i, j). Identity is purely by value: coordinates are never
// mutated, only mapped to new values when building new systems.
type Coord struct {
	I int
	J int
}

// hexDeltas are the axial offsets to the six lattice-adjacent hexagons.
var hexDeltas = [6]Coord{
	{1, 0}, {1, -1}, {0, -1},
	{-1, 0}, {-1, 1}, {0, 1},
}

// Neighbours returns the six lattice-adjacent hexagons of c.
func (c Coord) Neighbours() [6]Coord {
	var nbrs [6]Coord
	for k, d := range hexDeltas {
		nbrs[k] = Coord{c.I + d.I, c.J + d.J}
	}
	return nbrs
}

// Rotate60 maps c to its image under a 60 degree counter-clockwise rotation
// about the lattice origin: (i, j) -> (i+j, -i).
func (c Coord) Rotate60() Coord {
	return Coord{c.I + c.J, -c.I}
}

// Reflect maps c to its image across a fixed lattice axis: (i, j) -> (-i, i+j).
func (c Coord) Reflect() Coord {
	return Coord{-c.I, c.I + c.J}
}

// Compare orders coordinates lexicographically by (I, J), returning -1, 0,
// or 1. This is the total order used for normalized systems and their
// canonical forms.
func (c Coord) Compare(oth Coord) int {
	switch {
	case c.I < oth.I:
		return -1
	case c.I > oth.I:
		return 1
	case c.J < oth.J:
		return -1
	case c.J > oth.J:
		return 1
	}
	return 0
}

// CompareCoords orders two coordinate sequences lexicographically, shorter
// sequences ordering first. Two canonical systems are isomorphic iff
// CompareCoords over their coordinates returns 0.
func CompareCoords(a, b []Coord) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if d := a[i].Compare(b[i]); d != 0 {
			return d
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
