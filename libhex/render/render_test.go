package render_test

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/render"
)

func TestCenter(t *testing.T) {
	sqrt3 := math.Sqrt(3)

	x, y := render.Center(gohex.Coord{})
	require.Zero(t, x)
	require.Zero(t, y)

	x, y = render.Center(gohex.Coord{I: 0, J: 1})
	require.InDelta(t, sqrt3, x, 1e-12)
	require.Zero(t, y)

	x, y = render.Center(gohex.Coord{I: 1, J: 0})
	require.InDelta(t, sqrt3/2, x, 1e-12)
	require.InDelta(t, 1.5, y, 1e-12)
}

func TestDraw(t *testing.T) {
	b := libhex.Unit()
	defer b.Reclaim()

	img, err := render.Draw(b, render.Opts{})
	require.NoError(t, err)

	// One hexagon spans √3 x 2 lattice units; default opts add a one-unit
	// margin on each side at 48 px per unit.
	bounds := img.Bounds()
	require.Equal(t, int(math.Ceil((math.Sqrt(3)+2)*48)), bounds.Dx())
	require.Equal(t, int(math.Ceil(4.0*48)), bounds.Dy())
}

func TestDrawEmpty(t *testing.T) {
	_, err := render.Draw(&emptySystem{}, render.Opts{})
	require.ErrorIs(t, err, gohex.ErrEmptySystem)
}

// emptySystem is a System with no hexagons, which Benzenoid constructors
// refuse to build.
type emptySystem struct {
	libhex.Benzenoid
}

func (*emptySystem) Coords() []gohex.Coord { return nil }

func TestDrawFile(t *testing.T) {
	b, err := libhex.ParseSystem("[(0,0),(0,1),(1,0)]")
	require.NoError(t, err)
	defer b.Reclaim()

	pathname := filepath.Join(t.TempDir(), "out", "benzenoid_3_01.png")
	require.NoError(t, render.DrawFile(b, pathname, render.Opts{Scale: 8}))

	file, err := os.Open(pathname)
	require.NoError(t, err)
	defer file.Close()

	img, err := png.Decode(file)
	require.NoError(t, err)
	require.Positive(t, img.Bounds().Dx())
	require.Positive(t, img.Bounds().Dy())
}
