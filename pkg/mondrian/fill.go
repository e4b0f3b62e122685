package mondrian

import (
	"image/color"

	"github.com/matzehuels/mondrian/pkg/canvas"
)

// Filler paints a terminal region. Fillers never recurse.
type Filler interface {
	Fill(g canvas.Grid, r Region, p Palette, rng Rand)
}

// Basic fills a region with one palette colour inside a one-pixel black frame.
// Regions without an interior (an extent below 2) end up entirely black.
type Basic struct{}

// Fill implements Filler.
func (Basic) Fill(g canvas.Grid, r Region, p Palette, rng Rand) {
	selected := p[rng.IntN(len(p))]
	paintRect(g, r.XStart, r.XEnd, r.YStart, r.YEnd, Black)
	paintRect(g, r.XStart+1, r.XEnd-1, r.YStart+1, r.YEnd-1, selected)
}

// Complex fills a region with a black cell holding a jittered colour band.
//
// The band runs along the cell's longer axis. Each row (vertical wave) or
// column (horizontal wave) between the borders draws its own inset c in
// [0, (shorterSide+2)/2) and is painted over [start+c, end-c). An inset that
// swallows the whole span leaves that line black.
type Complex struct{}

// Fill implements Filler.
func (Complex) Fill(g canvas.Grid, r Region, p Palette, rng Rand) {
	selected := p[rng.IntN(len(p))]
	insets := (min(r.DX(), r.DY()) + 2) / 2

	paintRect(g, r.XStart, r.XEnd, r.YStart, r.YEnd, Black)

	if WaveOrientation(r) == Vertical {
		for y := r.YStart + 1; y < r.YEnd; y++ {
			c := rng.IntN(insets)
			for x := r.XStart + c; x < r.XEnd-c; x++ {
				g.Set(x, y, selected)
			}
		}
		return
	}
	for x := r.XStart + 1; x < r.XEnd; x++ {
		c := rng.IntN(insets)
		for y := r.YStart + c; y < r.YEnd-c; y++ {
			g.Set(x, y, selected)
		}
	}
}

// WaveOrientation returns the axis a complex fill uses for r.
// Cells whose horizontal extent is the shorter side (square cells included)
// get a vertical wave; wider cells get a horizontal one.
func WaveOrientation(r Region) Orientation {
	if r.DX() == min(r.DX(), r.DY()) {
		return Vertical
	}
	return Horizontal
}

// paintRect paints the inclusive rectangle [x0,x1]×[y0,y1]; empty ranges paint nothing.
func paintRect(g canvas.Grid, x0, x1, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			g.Set(x, y, c)
		}
	}
}

var (
	_ Filler = Basic{}
	_ Filler = Complex{}
)
