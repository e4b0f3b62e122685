// Package render turns generated canvases and their split trees into files.
//
// # Overview
//
// Generation happens in [mondrian]; this package family only encodes the
// results:
//
//   - [sink]: raster images (PNG, JPEG, BMP, TIFF) and the JSON run manifest
//   - [tree]: Graphviz diagrams of the recursive split tree
//
// # Images
//
//	png, err := sink.RenderImage(c.Image(), sink.FormatPNG, sink.WithScale(2))
//
// # Split Trees
//
// A [mondrian.Recorder] attached to a generation captures every split. The
// tree can be exported as DOT source or rendered through Graphviz:
//
//	dot := tree.ToDOT(rec.Tree(), tree.Options{Canvas: c})
//	svg, err := tree.RenderSVG(ctx, dot)
//
// [mondrian]: github.com/matzehuels/mondrian/pkg/mondrian
// [mondrian.Recorder]: github.com/matzehuels/mondrian/pkg/mondrian.Recorder
// [sink]: github.com/matzehuels/mondrian/pkg/render/sink
// [tree]: github.com/matzehuels/mondrian/pkg/render/tree
package render
