package mondrian

import (
	"fmt"

	"github.com/matzehuels/mondrian/pkg/canvas"
)

// Region is an axis-aligned rectangle with inclusive pixel bounds.
type Region struct {
	XStart, XEnd int
	YStart, YEnd int
}

// Full returns the region covering the whole grid.
func Full(g canvas.Grid) Region {
	return Region{XStart: 0, XEnd: g.Width() - 1, YStart: 0, YEnd: g.Height() - 1}
}

// DX is the horizontal extent, XEnd-XStart.
func (r Region) DX() int { return r.XEnd - r.XStart }

// DY is the vertical extent, YEnd-YStart.
func (r Region) DY() int { return r.YEnd - r.YStart }

// Contains reports whether pixel (x, y) lies inside r, borders included.
func (r Region) Contains(x, y int) bool {
	return x >= r.XStart && x <= r.XEnd && y >= r.YStart && y <= r.YEnd
}

// OnBorder reports whether pixel (x, y) lies on the outermost ring of r.
func (r Region) OnBorder(x, y int) bool {
	return r.Contains(x, y) && (x == r.XStart || x == r.XEnd || y == r.YStart || y == r.YEnd)
}

// Within reports whether r is well-formed and lies inside g.
func (r Region) Within(g canvas.Grid) bool {
	return r.XStart >= 0 && r.YStart >= 0 &&
		r.XStart <= r.XEnd && r.YStart <= r.YEnd &&
		r.XEnd < g.Width() && r.YEnd < g.Height()
}

func (r Region) String() string {
	return fmt.Sprintf("[%d..%d]x[%d..%d]", r.XStart, r.XEnd, r.YStart, r.YEnd)
}

// Orientation names the axis of a split line or a wave.
type Orientation int

const (
	// Horizontal splits divide rows; horizontal waves run left to right.
	Horizontal Orientation = iota
	// Vertical splits divide columns; vertical waves run top to bottom.
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}
