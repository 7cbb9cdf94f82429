package huckel_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/huckel"
)

const eigenTol = 1e-9

func spectrumOf(t *testing.T, g *huckel.Graph) []float64 {
	t.Helper()
	spec, err := g.Spectrum()
	require.NoError(t, err)
	require.True(t, sort.Float64sAreSorted(spec.Values))
	return spec.Values
}

// The path graph P_n has eigenvalues 2cos(kπ/(n+1)), k = 1..n.
func TestPathSpectrum(t *testing.T) {
	const n = 6
	g, err := huckel.Path(n)
	require.NoError(t, err)
	require.Equal(t, n, g.NumAtoms())
	require.Equal(t, n-1, g.NumBonds())

	values := spectrumOf(t, g)
	for i, got := range values {
		k := n - i // ascending order reverses k
		require.InDelta(t, 2*math.Cos(float64(k)*math.Pi/float64(n+1)), got, eigenTol)
	}
}

// The cycle graph C_n has eigenvalues 2cos(2kπ/n); benzene gives ±2, ±1 (x2).
func TestBenzeneSpectrum(t *testing.T) {
	g, err := huckel.Cycle(6)
	require.NoError(t, err)

	want := []float64{-2, -1, -1, 1, 1, 2}
	values := spectrumOf(t, g)
	for i, got := range values {
		require.InDelta(t, want[i], got, eigenTol)
	}

	_, err = huckel.Cycle(2)
	require.ErrorIs(t, err, huckel.ErrBadOrder)
}

// The star K_{1,n} has eigenvalues ±√n and n-1 zeros.
func TestStarSpectrum(t *testing.T) {
	g, err := huckel.Star(4)
	require.NoError(t, err)
	require.Equal(t, 5, g.NumAtoms())

	want := []float64{-2, 0, 0, 0, 2}
	values := spectrumOf(t, g)
	for i, got := range values {
		require.InDelta(t, want[i], got, eigenTol)
	}
}

// The complete graph K_n has eigenvalues n-1 and -1 (x n-1).
func TestCompleteSpectrum(t *testing.T) {
	g, err := huckel.Complete(4)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumBonds())

	want := []float64{-1, -1, -1, 3}
	values := spectrumOf(t, g)
	for i, got := range values {
		require.InDelta(t, want[i], got, eigenTol)
	}
}

func TestFromEdges(t *testing.T) {
	// Labels are arbitrary; dupes and reversed bonds collapse
	g, err := huckel.FromEdges([][2]int{{7, 3}, {3, 7}, {3, 11}, {7, 11}})
	require.NoError(t, err)
	require.Equal(t, []int{3, 7, 11}, g.Labels())
	require.Equal(t, 3, g.NumBonds())

	_, err = huckel.FromEdges(nil)
	require.ErrorIs(t, err, huckel.ErrNoAtoms)

	_, err = huckel.FromEdges([][2]int{{1, 1}})
	require.ErrorIs(t, err, huckel.ErrSelfBond)
}

func TestFromGraph6(t *testing.T) {
	// "Dhc" is the 5-cycle
	g, err := huckel.FromGraph6("Dhc")
	require.NoError(t, err)
	require.Equal(t, 5, g.NumAtoms())
	require.Equal(t, 5, g.NumBonds())

	values := spectrumOf(t, g)
	require.InDelta(t, 2, values[len(values)-1], eigenTol)

	g, err = huckel.FromGraph6(">>graph6<<Dhc\n")
	require.NoError(t, err)
	require.Equal(t, 5, g.NumAtoms())

	for _, bad := range []string{"", "D", "Dhcc", "Dh\x1f"} {
		_, err = huckel.FromGraph6(bad)
		require.Error(t, err, "graph6 %q", bad)
	}
}

// Benzene: one hexagon is the 6-cycle of carbons.
func TestCarbonSkeletonBenzene(t *testing.T) {
	b := libhex.Unit()
	defer b.Reclaim()

	g, err := huckel.CarbonSkeleton(b)
	require.NoError(t, err)
	require.Equal(t, 6, g.NumAtoms())
	require.Equal(t, 6, g.NumBonds())

	want := []float64{-2, -1, -1, 1, 1, 2}
	values := spectrumOf(t, g)
	for i, got := range values {
		require.InDelta(t, want[i], got, eigenTol)
	}
}

// Naphthalene: two fused hexagons share two carbons and one bond.
func TestCarbonSkeletonNaphthalene(t *testing.T) {
	b, err := libhex.ParseSystem("[(0,0),(0,1)]")
	require.NoError(t, err)
	defer b.Reclaim()

	g, err := huckel.CarbonSkeleton(b)
	require.NoError(t, err)
	require.Equal(t, 10, g.NumAtoms())
	require.Equal(t, 11, g.NumBonds())

	// Largest Hückel eigenvalue of naphthalene
	values := spectrumOf(t, g)
	require.InDelta(t, 2.30277563773, values[len(values)-1], 1e-9)
}
