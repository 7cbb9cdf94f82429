// Package huckel computes Hückel molecular-orbital spectra: the energies of a
// conjugated molecule are the eigenvalues of its molecular graph's adjacency
// matrix, with eigenvectors as the orbital coefficients.
package huckel

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoAtoms is returned when a graph would have no atoms at all.
	ErrNoAtoms = errors.New("huckel: graph has no atoms")

	// ErrBadOrder is returned when a family generator is given an order it
	// cannot produce (e.g. a cycle on fewer than 3 atoms).
	ErrBadOrder = errors.New("huckel: bad graph order")

	// ErrSelfBond is returned when an edge list bonds an atom to itself.
	ErrSelfBond = errors.New("huckel: atom bonded to itself")

	// ErrEigenFailed is returned if the eigen-decomposition does not converge.
	ErrEigenFailed = errors.New("huckel: eigen decomposition failed")
)

// Graph is a simple undirected molecular graph. Atoms carry arbitrary integer
// labels (mapped to dense indices in ascending label order); bonds are
// unweighted.
type Graph struct {
	labels []int
	index  map[int]int
	edges  [][2]int // dense index pairs, a < b, deduped
}

// FromEdges builds a molecular graph from a bond list. The atom set is
// inferred from the labels appearing in the bonds; duplicate bonds collapse.
func FromEdges(bonds [][2]int) (*Graph, error) {
	if len(bonds) == 0 {
		return nil, ErrNoAtoms
	}

	labelSet := make(map[int]struct{}, 2*len(bonds))
	for _, bond := range bonds {
		if bond[0] == bond[1] {
			return nil, ErrSelfBond
		}
		labelSet[bond[0]] = struct{}{}
		labelSet[bond[1]] = struct{}{}
	}

	labels := make([]int, 0, len(labelSet))
	for label := range labelSet {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	g := newGraph(labels)
	for _, bond := range bonds {
		g.addBond(g.index[bond[0]], g.index[bond[1]])
	}
	return g, nil
}

func newGraph(labels []int) *Graph {
	g := &Graph{
		labels: labels,
		index:  make(map[int]int, len(labels)),
	}
	for k, label := range labels {
		g.index[label] = k
	}
	return g
}

// addBond records an undirected bond between dense indices a and b, dropping
// duplicates.
func (g *Graph) addBond(a, b int) {
	if a > b {
		a, b = b, a
	}
	for _, e := range g.edges {
		if e[0] == a && e[1] == b {
			return
		}
	}
	g.edges = append(g.edges, [2]int{a, b})
}

// NumAtoms returns the number of atoms in the graph.
func (g *Graph) NumAtoms() int {
	return len(g.labels)
}

// NumBonds returns the number of bonds in the graph.
func (g *Graph) NumBonds() int {
	return len(g.edges)
}

// Labels returns the atom labels in ascending order, aligned with the rows of
// AdjacencyMatrix().
func (g *Graph) Labels() []int {
	return g.labels
}

// AdjacencyMatrix returns the graph's symmetric adjacency matrix.
func (g *Graph) AdjacencyMatrix() *mat.SymDense {
	n := len(g.labels)
	a := mat.NewSymDense(n, nil)
	for _, e := range g.edges {
		a.SetSym(e[0], e[1], 1)
	}
	return a
}

// Spectrum is the eigen-decomposition of a molecular graph's adjacency
// matrix: the Hückel energies (in units of β relative to α) and their
// orbitals.
type Spectrum struct {
	Values  []float64  // eigenvalues, ascending
	Vectors *mat.Dense // column k is the orthonormal eigenvector of Values[k]
}

// Spectrum computes the graph's eigenvalues and eigenvectors.
func (g *Graph) Spectrum() (*Spectrum, error) {
	if len(g.labels) == 0 {
		return nil, ErrNoAtoms
	}

	var es mat.EigenSym
	if !es.Factorize(g.AdjacencyMatrix(), true) {
		return nil, ErrEigenFailed
	}

	spec := &Spectrum{
		Values:  es.Values(nil),
		Vectors: &mat.Dense{},
	}
	es.VectorsTo(spec.Vectors)
	return spec, nil
}

// seqLabels returns the labels 1..n.
func seqLabels(n int) []int {
	labels := make([]int, n)
	for k := range labels {
		labels[k] = k + 1
	}
	return labels
}

// Path returns the path graph on n atoms (a linear polyene chain).
func Path(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := newGraph(seqLabels(n))
	for k := 0; k < n-1; k++ {
		g.addBond(k, k+1)
	}
	return g, nil
}

// Cycle returns the cycle graph on n atoms (an annulene ring).
func Cycle(n int) (*Graph, error) {
	if n < 3 {
		return nil, ErrBadOrder
	}
	g := newGraph(seqLabels(n))
	for k := 0; k < n; k++ {
		g.addBond(k, (k+1)%n)
	}
	return g, nil
}

// Complete returns the complete graph on n atoms.
func Complete(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := newGraph(seqLabels(n))
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			g.addBond(a, b)
		}
	}
	return g, nil
}

// Star returns the star graph with one hub atom bonded to n leaves
// (n+1 atoms in total).
func Star(n int) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := newGraph(seqLabels(n + 1))
	for leaf := 1; leaf <= n; leaf++ {
		g.addBond(0, leaf)
	}
	return g, nil
}
