// Package pkg holds the libraries behind the mondrian grid-art generator.
//
// # Overview
//
// Mondrian paints a canvas by recursive rectangular subdivision: every region
// large enough on an axis is split at a random line, the halves are processed
// recursively, and terminal regions are filled from a palette inside a
// one-pixel black border. The pkg directory is organised as:
//
//  1. [mondrian] - The algorithm (regions, partitioning, fill strategies, split tree)
//  2. [canvas] - The mutable pixel grid the algorithm paints on
//  3. [render] - Encoders for the painted canvas and the split tree
//  4. [pipeline] - Orchestration (generate → render, with caching)
//  5. [config], [cache], [io] - User defaults, artifact cache, run manifests
//
// # Architecture
//
//	Options (mode, size, seed, palette)
//	         ↓
//	    [mondrian] Generate (paint canvas, record split tree)
//	         ↓
//	    [render/sink] PNG/JPEG/BMP/TIFF/JSON    [render/tree] DOT/SVG/PNG
//	         ↓
//	    [cache] keyed by inputs, reused for seeded runs
//
// # Quick Start
//
//	c := canvas.New(300, 300)
//	stats, err := mondrian.Generate(c, mondrian.Options{Mode: mondrian.ModeBasic, Seed: 42})
//	if err != nil {
//	    return err
//	}
//	png, err := sink.RenderPNG(c.Image(), sink.WithScale(2))
//
// Or run the whole pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Mode:    "complex",
//	    Seed:    42,
//	    Formats: []string{"png", "json"},
//	    Tree:    "svg",
//	})
//
// # Supporting Packages
//
// [errors] - Coded errors (INVALID_DIMENSIONS, INVALID_MODE, ...) and input validation.
//
// [observability] - Hooks for generate, render and cache events.
//
// [buildinfo] - Version information stamped at link time.
//
// [mondrian]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/mondrian
// [canvas]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/canvas
// [render]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/render/sink
// [render/tree]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/render/tree
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/cache
// [io]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/io
// [errors]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/mondrian/pkg/buildinfo
package pkg
