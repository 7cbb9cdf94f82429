package huckel

import (
	"sort"

	"github.com/polyhex-systems/gohex/gohex"
)

// corner is a hexagon corner in scaled integer units (lattice x doubled by
// 2/√3, y doubled), so shared corners of fused hexagons compare exactly.
type corner struct {
	X, Y int
}

// Corner offsets around a hexagon centre at (i+2j, 3i), in ring order.
var cornerOffsets = [6]corner{
	{1, 1}, {0, 2}, {-1, 1}, {-1, -1}, {0, -2}, {1, -1},
}

// CarbonSkeleton returns the molecular carbon graph of a benzenoid system:
// one atom per distinct hexagon corner, one bond per hexagon edge, with
// corners and edges shared between fused hexagons collapsed. Atoms are
// labeled 1..n in scan order of their positions.
func CarbonSkeleton(b gohex.System) (*Graph, error) {
	coords := b.Coords()
	if len(coords) == 0 {
		return nil, gohex.ErrEmptySystem
	}

	atoms := make(map[corner]struct{}, 6*len(coords))
	bonds := make(map[[2]corner]struct{}, 6*len(coords))

	for _, hex := range coords {
		cx := hex.I + 2*hex.J
		cy := 3 * hex.I

		var ring [6]corner
		for k, d := range cornerOffsets {
			ring[k] = corner{cx + d.X, cy + d.Y}
			atoms[ring[k]] = struct{}{}
		}
		for k := range ring {
			a, c := ring[k], ring[(k+1)%6]
			if c.X < a.X || (c.X == a.X && c.Y < a.Y) {
				a, c = c, a
			}
			bonds[[2]corner{a, c}] = struct{}{}
		}
	}

	positions := make([]corner, 0, len(atoms))
	for pos := range atoms {
		positions = append(positions, pos)
	}
	sort.Slice(positions, func(a, b int) bool {
		if positions[a].X != positions[b].X {
			return positions[a].X < positions[b].X
		}
		return positions[a].Y < positions[b].Y
	})

	index := make(map[corner]int, len(positions))
	for k, pos := range positions {
		index[pos] = k
	}

	g := newGraph(seqLabels(len(positions)))
	for bond := range bonds {
		g.addBond(index[bond[0]], index[bond[1]])
	}
	sort.Slice(g.edges, func(a, b int) bool {
		if g.edges[a][0] != g.edges[b][0] {
			return g.edges[a][0] < g.edges[b][0]
		}
		return g.edges[a][1] < g.edges[b][1]
	})
	return g, nil
}
