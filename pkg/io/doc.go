// Package io reads and writes run manifests.
//
// # Overview
//
// A manifest records everything needed to reproduce an image (mode, size,
// seed, palette) together with the visible terminal regions. The CLI writes
// one with --format json and can repaint the exact image from it with
// --from.
//
// # JSON Format
//
//	{
//	  "id": "3d0c7f8e-...",
//	  "mode": "basic",
//	  "seed": 42,
//	  "width": 300,
//	  "height": 300,
//	  "palette": ["#ff0000", "#0000ff", "#ffff00", "#ffffff"],
//	  "splits": 31,
//	  "fills": 28,
//	  "depth": 6,
//	  "regions": 17,
//	  "leaves": [{"x0": 0, "x1": 112, "y0": 0, "y1": 74}, ...]
//	}
//
// Leaf bounds are inclusive. Neighbouring leaves share their boundary line,
// which is painted black.
//
// # Usage
//
//	m, err := io.ImportJSON("piece.json")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(m.Mode, m.Seed)
package io
