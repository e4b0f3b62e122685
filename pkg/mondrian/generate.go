package mondrian

import (
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/matzehuels/mondrian/pkg/canvas"
	apperrors "github.com/matzehuels/mondrian/pkg/errors"
)

// MinDimension is the smallest canvas width or height Generate accepts.
const MinDimension = apperrors.MinDimension

// Mode selects a palette and fill strategy.
type Mode string

const (
	// ModeBasic paints flat primary-coloured cells.
	ModeBasic Mode = "basic"
	// ModeComplex paints purple/blue cells with wave bands.
	ModeComplex Mode = "complex"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeBasic, ModeComplex}

// ParseMode parses a mode name. The console menu numbers "1" and "2" are
// accepted as aliases for basic and complex.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic", "1":
		return ModeBasic, nil
	case "complex", "2", "extension":
		return ModeComplex, nil
	default:
		return "", apperrors.New(apperrors.ErrCodeInvalidMode, "invalid mode: %q (must be one of: basic, complex)", s)
	}
}

// Palette returns the mode's fixed palette.
func (m Mode) Palette() Palette {
	if m == ModeComplex {
		return ComplexPalette()
	}
	return BasicPalette()
}

// Filler returns the mode's fill strategy.
func (m Mode) Filler() Filler {
	if m == ModeComplex {
		return Complex{}
	}
	return Basic{}
}

// DefaultOutput returns the file name the console client writes for m.
func (m Mode) DefaultOutput() string {
	if m == ModeComplex {
		return "extension.png"
	}
	return "basic.png"
}

// Options configures a generation.
type Options struct {
	Mode Mode
	// Seed selects the random stream. Zero draws a fresh seed, reported in Stats.
	Seed uint64
	// Palette overrides the mode's palette when non-empty.
	Palette Palette
	// Observer, if set, receives traversal events.
	Observer Observer
}

// Stats summarises a finished generation.
type Stats struct {
	Seed     uint64
	Splits   int
	Fills    int
	MaxDepth int
}

// Generate paints the whole of g and returns generation statistics.
// It fails only on precondition violations: an unknown mode, an unusable
// palette, or a grid smaller than MinDimension on either axis.
func Generate(g canvas.Grid, opts Options) (*Stats, error) {
	if opts.Mode != ModeBasic && opts.Mode != ModeComplex {
		return nil, apperrors.New(apperrors.ErrCodeInvalidMode, "invalid mode: %q", opts.Mode)
	}
	if g.Width() < MinDimension || g.Height() < MinDimension {
		return nil, apperrors.New(apperrors.ErrCodeInvalidDimensions,
			"canvas %dx%d is too small (minimum %dx%d)", g.Width(), g.Height(), MinDimension, MinDimension)
	}

	palette := opts.Mode.Palette()
	if len(opts.Palette) > 0 {
		palette = slices.Clone(opts.Palette)
	}
	if err := palette.Validate(); err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = RandomSeed()
	}

	stats := &Stats{Seed: seed}
	var obs Observer = (*statsObserver)(stats)
	if opts.Observer != nil {
		obs = fanout{obs, opts.Observer}
	}

	newPartitioner(g, NewRand(seed), palette, opts.Mode.Filler(), obs).partition(Full(g), 0)
	return stats, nil
}

// GenerateBasic paints g in basic mode with a fresh seed.
func GenerateBasic(g canvas.Grid) error {
	_, err := Generate(g, Options{Mode: ModeBasic})
	return err
}

// GenerateComplex paints g in complex mode with a fresh seed.
func GenerateComplex(g canvas.Grid) error {
	_, err := Generate(g, Options{Mode: ModeComplex})
	return err
}

// RandomSeed returns a non-zero seed from the runtime's random source.
func RandomSeed() uint64 {
	for {
		if s := rand.Uint64(); s != 0 {
			return s
		}
	}
}

type statsObserver Stats

func (s *statsObserver) Enter(_ Region, depth int) {
	s.MaxDepth = max(s.MaxDepth, depth)
}

func (s *statsObserver) Split(Region, Orientation, int) { s.Splits++ }
func (s *statsObserver) Fill(Region)                    { s.Fills++ }
func (s *statsObserver) Leave(Region)                   {}

type fanout []Observer

func (f fanout) Enter(r Region, depth int) {
	for _, o := range f {
		o.Enter(r, depth)
	}
}

func (f fanout) Split(r Region, or Orientation, at int) {
	for _, o := range f {
		o.Split(r, or, at)
	}
}

func (f fanout) Fill(r Region) {
	for _, o := range f {
		o.Fill(r)
	}
}

func (f fanout) Leave(r Region) {
	for _, o := range f {
		o.Leave(r)
	}
}
