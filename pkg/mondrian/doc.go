// Package mondrian generates Mondrian-style grid art by recursive rectangle
// subdivision.
//
// # Overview
//
// Generation starts from a [Region] covering the whole canvas and recurses
// depth-first over a binary split tree. At each step the partitioner decides
// whether the region is still large enough to split. The threshold is a
// quarter of the FULL canvas width (or height), evaluated at every depth, so
// the smallest splittable size is fixed in absolute pixels and recursion ends
// once every region falls below it on both axes.
//
// When a region is large enough, a fair coin decides whether the horizontal
// or the vertical split is attempted first. Each attempt runs independently
// when its own axis passes the threshold, so a region that is large on both
// axes is subdivided twice and the second subdivision paints over the first.
// Split lines are drawn uniformly from [start, end) and are shared by both
// halves, so neighbouring cells overlap on a one-pixel line.
//
// Regions that are too small to split are handed to a [Filler]:
//
//   - [Basic] paints a black one-pixel frame around a flat palette colour.
//   - [Complex] paints a black cell containing a jittered colour band ("wave")
//     running along the cell's longer axis, with a fresh random inset on every
//     row or column.
//
// # Randomness
//
// One [Rand] stream is threaded through the whole traversal, including the
// fills. A generation is therefore a single draw sequence: the same seed and
// canvas size always produce the same image.
//
//	c := canvas.New(300, 300)
//	stats, err := mondrian.Generate(c, mondrian.Options{
//	    Mode: mondrian.ModeBasic,
//	    Seed: 42,
//	})
//
// [GenerateBasic] and [GenerateComplex] are shortcuts that draw a fresh seed.
//
// # Observing a generation
//
// An [Observer] receives enter/split/fill/leave events in traversal order
// without consuming randomness. [Recorder] uses them to build a [Tree] whose
// [Tree.Leaves] are exactly the cells that stay visible on the canvas.
package mondrian
