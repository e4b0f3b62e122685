// Package sink encodes generated canvases into output formats.
//
// # Overview
//
// A "sink" turns a painted canvas (or the metadata of a run) into bytes
// ready to be written to disk:
//
//   - PNG, JPEG, BMP and TIFF raster images via [RenderImage]
//   - A JSON manifest describing the run via [RenderJSON]
//
// # Image Output
//
// Images are encoded at one pixel per canvas cell by default. [WithScale]
// enlarges them with nearest-neighbour sampling so the one-pixel black
// borders stay crisp instead of blurring into their neighbours:
//
//	png, err := sink.RenderImage(c.Image(), sink.FormatPNG, sink.WithScale(4))
//	jpg, err := sink.RenderImage(c.Image(), sink.FormatJPEG, sink.WithJPEGQuality(90))
//
// # JSON Output
//
// [RenderJSON] records everything needed to reproduce an image (mode, seed,
// size, palette) together with the visible terminal regions:
//
//	data, err := sink.RenderJSON(w, h, tree,
//	    sink.WithJSONMode("basic"),
//	    sink.WithJSONSeed(stats.Seed),
//	    sink.WithJSONPalette(palette),
//	)
package sink
