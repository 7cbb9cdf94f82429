package huckel

import (
	"errors"
	"strings"
)

// ErrBadGraph6 is returned when a graph6 string is malformed.
var ErrBadGraph6 = errors.New("huckel: bad graph6 string")

// FromGraph6 decodes a graph6-encoded simple graph (the format emitted by
// nauty's geng). An optional ">>graph6<<" header is accepted. Atoms are
// labeled 1..n.
func FromGraph6(s string) (*Graph, error) {
	s = strings.TrimPrefix(s, ">>graph6<<")
	s = strings.TrimSuffix(s, "\n")
	if len(s) == 0 {
		return nil, ErrBadGraph6
	}

	data := []byte(s)
	for _, c := range data {
		if c < 63 || c > 126 {
			return nil, ErrBadGraph6
		}
	}

	var n int
	switch {
	case data[0] < 126: // N(n) for n <= 62
		n = int(data[0] - 63)
		data = data[1:]
	case len(data) >= 4 && data[1] < 126: // '~' + 3 chars for n <= 258047
		n = int(data[1]-63)<<12 | int(data[2]-63)<<6 | int(data[3]-63)
		data = data[4:]
	default:
		return nil, ErrBadGraph6
	}
	if n == 0 {
		return nil, ErrNoAtoms
	}

	numBits := n * (n - 1) / 2
	if len(data) != (numBits+5)/6 {
		return nil, ErrBadGraph6
	}

	g := newGraph(seqLabels(n))

	// Upper triangle in column order: bit k covers pair (i, j), j ascending,
	// i = 0..j-1 within each column.
	bit, i, j := 0, 0, 1
	for _, c := range data {
		for shift := 5; shift >= 0 && bit < numBits; shift-- {
			if (c-63)>>shift&1 == 1 {
				g.addBond(i, j)
			}
			bit++
			i++
			if i == j {
				i = 0
				j++
			}
		}
	}
	return g, nil
}
