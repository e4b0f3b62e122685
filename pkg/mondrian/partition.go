package mondrian

import (
	"fmt"
	"math/rand/v2"

	"github.com/matzehuels/mondrian/pkg/canvas"
)

// Rand is the random stream threaded through a generation.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a uniform integer in [0, n). n is always positive.
	IntN(n int) int
}

// NewRand returns a deterministic PCG stream for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Observer receives traversal events from a partition in depth-first order.
// Observers must not touch the grid or the random stream.
type Observer interface {
	// Enter is called when the partitioner starts on r at the given depth.
	Enter(r Region, depth int)
	// Split is called before the two halves of r are partitioned.
	Split(r Region, o Orientation, at int)
	// Fill is called after r has been painted as a terminal region.
	Fill(r Region)
	// Leave is called when the partitioner is done with r.
	Leave(r Region)
}

// Partition recursively subdivides r and paints every terminal region with f.
// The split threshold is a quarter of g's full width and height.
//
// g must be at least MinDimension on both axes and r must lie within g;
// Partition panics otherwise. Generate checks the same conditions and
// returns an error instead.
func Partition(g canvas.Grid, r Region, rng Rand, p Palette, f Filler) {
	if g.Width() < MinDimension || g.Height() < MinDimension {
		panic(fmt.Sprintf("mondrian: Partition on %dx%d grid, minimum is %dx%d", g.Width(), g.Height(), MinDimension, MinDimension))
	}
	if !r.Within(g) {
		panic(fmt.Sprintf("mondrian: Partition region %v outside %dx%d grid", r, g.Width(), g.Height()))
	}
	newPartitioner(g, rng, p, f, nil).partition(r, 0)
}

type partitioner struct {
	grid     canvas.Grid
	rng      Rand
	palette  Palette
	filler   Filler
	observer Observer
	minDX    int
	minDY    int
}

func newPartitioner(g canvas.Grid, rng Rand, p Palette, f Filler, obs Observer) *partitioner {
	return &partitioner{
		grid:     g,
		rng:      rng,
		palette:  p,
		filler:   f,
		observer: obs,
		minDX:    g.Width() / 4,
		minDY:    g.Height() / 4,
	}
}

func (pt *partitioner) partition(r Region, depth int) {
	if pt.observer != nil {
		pt.observer.Enter(r, depth)
		defer pt.observer.Leave(r)
	}

	if r.DX() < pt.minDX && r.DY() < pt.minDY {
		pt.filler.Fill(pt.grid, r, pt.palette, pt.rng)
		if pt.observer != nil {
			pt.observer.Fill(r)
		}
		return
	}

	if pt.rng.IntN(2) == 1 {
		pt.splitHorizontal(r, depth)
		pt.splitVertical(r, depth)
	} else {
		pt.splitVertical(r, depth)
		pt.splitHorizontal(r, depth)
	}
}

func (pt *partitioner) splitHorizontal(r Region, depth int) {
	if r.DY() < pt.minDY {
		return
	}
	at := r.YStart + pt.rng.IntN(r.DY())
	if pt.observer != nil {
		pt.observer.Split(r, Horizontal, at)
	}
	pt.partition(Region{XStart: r.XStart, XEnd: r.XEnd, YStart: r.YStart, YEnd: at}, depth+1)
	pt.partition(Region{XStart: r.XStart, XEnd: r.XEnd, YStart: at, YEnd: r.YEnd}, depth+1)
}

func (pt *partitioner) splitVertical(r Region, depth int) {
	if r.DX() < pt.minDX {
		return
	}
	at := r.XStart + pt.rng.IntN(r.DX())
	if pt.observer != nil {
		pt.observer.Split(r, Vertical, at)
	}
	pt.partition(Region{XStart: r.XStart, XEnd: at, YStart: r.YStart, YEnd: r.YEnd}, depth+1)
	pt.partition(Region{XStart: at, XEnd: r.XEnd, YStart: r.YStart, YEnd: r.YEnd}, depth+1)
}
