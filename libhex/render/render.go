// Package render rasterizes benzenoid systems: each hexagon is drawn with
// unit circumradius at centre x = √3·j + (√3/2)·i, y = (3/2)·i.
package render

import (
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"

	"github.com/polyhex-systems/gohex/gohex"
)

var (
	sqrt3 = math.Sqrt(3)

	// Corner offsets of a unit-circumradius hexagon around its centre.
	hexVerts = [6][2]float64{
		{sqrt3 / 2, 0.5}, {0, 1}, {-sqrt3 / 2, 0.5},
		{-sqrt3 / 2, -0.5}, {0, -1}, {sqrt3 / 2, -0.5},
	}

	lightSalmon = color.RGBA{R: 0xFF, G: 0xA0, B: 0x7A, A: 0xFF}
	orangeRed   = color.RGBA{R: 0xFF, G: 0x45, B: 0x00, A: 0xFF}
)

// Opts specifies how a benzenoid system is rasterized.
// The zero value draws salmon-filled, orange-outlined hexagons at 48 pixels
// per lattice unit with a one-unit margin.
type Opts struct {
	Scale     float64     // pixels per lattice unit
	Margin    float64     // margin around the system, in lattice units
	LineWidth float64     // hexagon outline width, in pixels
	Fill      color.Color // hexagon fill
	Outline   color.Color // hexagon outline
}

func (opts *Opts) applyDefaults() {
	if opts.Scale <= 0 {
		opts.Scale = 48
	}
	if opts.Margin <= 0 {
		opts.Margin = 1
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 2
	}
	if opts.Fill == nil {
		opts.Fill = lightSalmon
	}
	if opts.Outline == nil {
		opts.Outline = orangeRed
	}
}

// Center returns the cartesian centre of the hexagon at c.
func Center(c gohex.Coord) (x, y float64) {
	x = sqrt3*float64(c.J) + sqrt3/2*float64(c.I)
	y = 1.5 * float64(c.I)
	return
}

// Draw rasterizes the given system. The image is sized to fit the system
// plus opts.Margin, with equal aspect and the lattice y axis pointing up.
func Draw(b gohex.System, opts Opts) (image.Image, error) {
	coords := b.Coords()
	if len(coords) == 0 {
		return nil, gohex.ErrEmptySystem
	}
	opts.applyDefaults()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range coords {
		cx, cy := Center(c)
		minX = math.Min(minX, cx-sqrt3/2)
		maxX = math.Max(maxX, cx+sqrt3/2)
		minY = math.Min(minY, cy-1)
		maxY = math.Max(maxY, cy+1)
	}

	w := int(math.Ceil((maxX - minX + 2*opts.Margin) * opts.Scale))
	h := int(math.Ceil((maxY - minY + 2*opts.Margin) * opts.Scale))

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()

	for _, c := range coords {
		cx, cy := Center(c)
		for k, v := range hexVerts {
			px := (cx + v[0] - minX + opts.Margin) * opts.Scale
			py := (maxY + opts.Margin - (cy + v[1])) * opts.Scale
			if k == 0 {
				dc.MoveTo(px, py)
			} else {
				dc.LineTo(px, py)
			}
		}
		dc.ClosePath()
		dc.SetColor(opts.Fill)
		dc.FillPreserve()
		dc.SetColor(opts.Outline)
		dc.SetLineWidth(opts.LineWidth)
		dc.Stroke()
	}

	return dc.Image(), nil
}

// DrawFile rasterizes b and writes it to the named PNG file, creating parent
// directories as needed.
func DrawFile(b gohex.System, pathname string, opts Opts) error {
	img, err := Draw(b, opts)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(pathname); dir != "." {
		if err = os.MkdirAll(dir, 0700); err != nil {
			return err
		}
	}
	file, err := os.OpenFile(pathname, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}
