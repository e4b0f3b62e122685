package sink

import (
	"bytes"

	pkgio "github.com/matzehuels/mondrian/pkg/io"
	"github.com/matzehuels/mondrian/pkg/mondrian"
)

// FormatJSON is the manifest format.
const FormatJSON = "json"

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	id      string
	mode    string
	seed    uint64
	palette mondrian.Palette
	stats   *mondrian.Stats
}

// WithJSONID records a run identifier.
func WithJSONID(id string) JSONOption { return func(r *jsonRenderer) { r.id = id } }

// WithJSONMode records the generation mode.
func WithJSONMode(mode string) JSONOption { return func(r *jsonRenderer) { r.mode = mode } }

// WithJSONSeed records the seed, enabling the image to be regenerated exactly.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONPalette records the palette the regions were filled from.
func WithJSONPalette(p mondrian.Palette) JSONOption {
	return func(r *jsonRenderer) { r.palette = p }
}

// WithJSONStats records split and fill counts.
func WithJSONStats(s *mondrian.Stats) JSONOption {
	return func(r *jsonRenderer) { r.stats = s }
}

// RenderJSON exports a run manifest as pretty-printed JSON.
//
// Leaves lists the terminal regions still visible on the canvas, in painting
// order, with inclusive bounds. A nil tree yields an empty list.
func RenderJSON(width, height int, t *mondrian.Tree, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	leaves := t.Leaves()
	m := &pkgio.Manifest{
		ID:      r.id,
		Mode:    r.mode,
		Seed:    r.seed,
		Width:   width,
		Height:  height,
		Depth:   t.Depth(),
		Regions: len(leaves),
		Leaves:  make([]pkgio.Region, 0, len(leaves)),
	}
	if len(r.palette) > 0 {
		m.Palette = r.palette.Hex()
	}
	if r.stats != nil {
		m.Splits = r.stats.Splits
		m.Fills = r.stats.Fills
	}
	for _, l := range leaves {
		m.Leaves = append(m.Leaves, pkgio.Region{X0: l.XStart, X1: l.XEnd, Y0: l.YStart, Y1: l.YEnd})
	}

	var buf bytes.Buffer
	if err := pkgio.WriteJSON(m, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
