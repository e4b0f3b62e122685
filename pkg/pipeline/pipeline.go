// Package pipeline runs a complete generation: paint a canvas, then encode it
// in every requested format, with caching.
//
// This is the single entry point used by the CLI. Keeping defaults,
// validation and caching here ensures every command behaves the same way.
//
// # Architecture
//
// The pipeline has two stages:
//
//  1. Generate: paint a canvas with [mondrian.Generate] while recording the split tree
//  2. Render: encode the canvas (PNG, JPEG, BMP, TIFF), the JSON manifest and
//     optionally the split-tree diagram
//
// Generation is deterministic for a fixed seed, so rendered artifacts are
// cached by mode, size, seed, palette and encoding. Runs without a seed draw
// a fresh one and are never served from the cache.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Mode:    "complex",
//	    Width:   1200,
//	    Height:  800,
//	    Formats: []string{"png", "json"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
//
// [mondrian.Generate]: github.com/matzehuels/mondrian/pkg/mondrian.Generate
package pipeline

import (
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/mondrian/pkg/cache"
	"github.com/matzehuels/mondrian/pkg/canvas"
	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/render/sink"
	"github.com/matzehuels/mondrian/pkg/render/tree"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultWidth is the default canvas width in pixels.
	DefaultWidth = 800

	// DefaultHeight is the default canvas height in pixels.
	DefaultHeight = 600

	// DefaultScale is the default upscaling factor.
	DefaultScale = 1

	// DefaultMode is the default generation mode.
	DefaultMode = mondrian.ModeBasic
)

// Format constants for output formats.
const (
	FormatPNG  = sink.FormatPNG
	FormatJPEG = sink.FormatJPEG
	FormatBMP  = sink.FormatBMP
	FormatTIFF = sink.FormatTIFF
	FormatJSON = sink.FormatJSON
)

// ValidFormats lists the supported artifact formats.
var ValidFormats = []string{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF, FormatJSON}

// TreeArtifactPrefix prefixes the Artifacts key of the split-tree diagram,
// e.g. "tree.svg".
const TreeArtifactPrefix = "tree."

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one generation.
type Options struct {
	Mode    string   `json:"mode"`
	Width   int      `json:"width,omitempty"`
	Height  int      `json:"height,omitempty"`
	Seed    uint64   `json:"seed,omitempty"` // 0 draws a fresh seed
	Palette []string `json:"palette,omitempty"`

	Formats     []string `json:"formats,omitempty"`
	Scale       int      `json:"scale,omitempty"`
	JPEGQuality int      `json:"jpeg_quality,omitempty"`

	// Tree, if set, also renders the split tree in this format (dot, svg, png).
	Tree string `json:"tree,omitempty"`
	// TreeDetailed adds region bounds to tree node labels.
	TreeDetailed bool `json:"tree_detailed,omitempty"`

	// Refresh ignores cached artifacts and regenerates.
	Refresh bool `json:"refresh,omitempty"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// ID identifies the image. Runs with equal inputs and seed share an ID.
	ID string

	Mode mondrian.Mode
	Seed uint64

	// Canvas and Tree are nil when every artifact came from the cache.
	Canvas *canvas.Canvas
	Tree   *mondrian.Tree

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Regions      int // visible terminal regions
	Splits       int
	Fills        int
	Depth        int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits.
type CacheInfo struct {
	Cacheable bool // false for unseeded runs
	RenderHit bool // every artifact came from the cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(ValidFormats, ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTreeFormat checks a split-tree diagram format.
func ValidateTreeFormat(format string) error {
	if !slices.Contains(tree.Formats, format) {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid tree format: %q (must be one of: %s)", format, strings.Join(tree.Formats, ", "))
	}
	return nil
}

// ParseFormats splits a comma-separated format list, normalising "jpg" and "tif".
func ParseFormats(s string) []string {
	var out []string
	for f := range strings.SplitSeq(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		switch f {
		case "":
			continue
		case "jpg":
			f = FormatJPEG
		case "tif":
			f = FormatTIFF
		}
		if !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills unset fields with defaults.
func (o *Options) SetDefaults() {
	if o.Mode == "" {
		o.Mode = string(DefaultMode)
	}
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatPNG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.JPEGQuality == 0 {
		o.JPEGQuality = sink.DefaultJPEGQuality
	}
}

// ValidateAndSetDefaults applies defaults and checks every field.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	mode, err := mondrian.ParseMode(o.Mode)
	if err != nil {
		return err
	}
	o.Mode = string(mode)

	if err := apperrors.ValidateDimensions(o.Width, o.Height); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 1 || o.Scale > sink.MaxScale {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "scale %d out of range [1, %d]", o.Scale, sink.MaxScale)
	}
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "jpeg quality %d out of range [1, 100]", o.JPEGQuality)
	}
	if o.Tree != "" {
		if err := ValidateTreeFormat(o.Tree); err != nil {
			return err
		}
	}
	if len(o.Palette) > 0 {
		p, err := mondrian.ParsePalette(o.Palette)
		if err != nil {
			return err
		}
		o.Palette = p.Hex()
	}

	o.validated = true
	return nil
}

// GenerateMode returns the parsed mode. Call after ValidateAndSetDefaults.
func (o *Options) GenerateMode() mondrian.Mode {
	m, _ := mondrian.ParseMode(o.Mode)
	return m
}

// EffectivePalette returns the custom palette, or the mode's built-in one.
func (o *Options) EffectivePalette() mondrian.Palette {
	if len(o.Palette) > 0 {
		if p, err := mondrian.ParsePalette(o.Palette); err == nil {
			return p
		}
	}
	return o.GenerateMode().Palette()
}

// ArtifactKeyOpts returns cache key options for one artifact of a seeded run.
func (o *Options) ArtifactKeyOpts(format string, seed uint64) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Mode:    o.Mode,
		Width:   o.Width,
		Height:  o.Height,
		Seed:    seed,
		Palette: o.Palette,
		Format:  format,
	}
	if sink.IsImageFormat(format) {
		k.Scale = o.Scale
	}
	if format == FormatJPEG {
		k.Quality = o.JPEGQuality
	}
	return k
}

// TreeKeyOpts returns cache key options for the split-tree diagram.
func (o *Options) TreeKeyOpts(seed uint64) cache.ArtifactKeyOpts {
	k := o.ArtifactKeyOpts(o.Tree, seed)
	if o.TreeDetailed {
		k.Format += "+detailed"
	}
	return k
}
