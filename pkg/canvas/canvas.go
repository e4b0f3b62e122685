// Package canvas provides the mutable pixel grid that generators paint into.
//
// A [Grid] is the narrow contract the generator needs: dimensions plus
// per-pixel read and write. [Canvas] implements it on top of an
// [image.RGBA] so the painted result can be handed straight to any
// image encoder.
//
// Cells start out as the transparent zero colour. Every painter in this
// module writes fully opaque colours, so a transparent cell after generation
// means the cell was never painted; [Unset] counts those.
package canvas

import (
	"image"
	"image/color"
)

// Grid is a 2D colour grid with the origin at the top-left corner.
// Columns are indexed by x in [0, Width) and rows by y in [0, Height).
type Grid interface {
	Width() int
	Height() int
	At(x, y int) color.RGBA
	Set(x, y int, c color.RGBA)
}

// Canvas is a [Grid] backed by an in-memory RGBA image.
type Canvas struct {
	img *image.RGBA
}

// New creates a width×height canvas with every cell unset.
func New(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))}
}

// FromImage wraps an existing RGBA image. The image is shared, not copied.
// Its bounds are translated so that the top-left pixel is (0, 0).
func FromImage(img *image.RGBA) *Canvas {
	if img.Rect.Min != (image.Point{}) {
		img = img.SubImage(img.Rect).(*image.RGBA)
		img.Rect = img.Rect.Sub(img.Rect.Min)
	}
	return &Canvas{img: img}
}

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.img.Rect.Dx() }

// Height returns the number of rows.
func (c *Canvas) Height() int { return c.img.Rect.Dy() }

// At returns the colour at column x, row y.
func (c *Canvas) At(x, y int) color.RGBA { return c.img.RGBAAt(x, y) }

// Set paints column x, row y.
func (c *Canvas) Set(x, y int, col color.RGBA) { c.img.SetRGBA(x, y, col) }

// Image returns the underlying image for encoding.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Equal reports whether two grids have the same size and identical pixels.
func Equal(a, b Grid) bool {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return false
	}
	for y := range a.Height() {
		for x := range a.Width() {
			if a.At(x, y) != b.At(x, y) {
				return false
			}
		}
	}
	return true
}

// Unset returns the number of cells that still hold the transparent sentinel.
func Unset(g Grid) int {
	n := 0
	for y := range g.Height() {
		for x := range g.Width() {
			if g.At(x, y).A == 0 {
				n++
			}
		}
	}
	return n
}

// Ensure Canvas implements Grid.
var _ Grid = (*Canvas)(nil)
