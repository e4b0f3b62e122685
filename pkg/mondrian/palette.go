package mondrian

import (
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
)

// Palette is an ordered, non-empty set of fill colours.
type Palette []color.RGBA

// Black is the border colour shared by every fill strategy.
var Black = color.RGBA{A: 255}

var basicPalette = Palette{
	{R: 255, A: 255},                 // red
	{R: 255, G: 255, A: 255},         // yellow
	{G: 255, B: 255, A: 255},         // cyan
	{R: 255, G: 255, B: 255, A: 255}, // white
}

var complexPalette = Palette{
	{R: 92, G: 59, B: 168, A: 255},
	{R: 118, G: 74, B: 209, A: 255},
	{R: 12, G: 7, B: 53, A: 255},
	{R: 176, G: 109, B: 240, A: 255},
	{R: 29, G: 18, B: 64, A: 255},
	{R: 19, G: 12, B: 56, A: 255},
	{R: 25, G: 14, B: 57, A: 255},
	{R: 32, G: 16, B: 116, A: 255},
	{R: 43, G: 32, B: 119, A: 255},
	{R: 18, G: 9, B: 47, A: 255},
}

// BasicPalette returns Mondrian's primaries: red, yellow, cyan and white.
func BasicPalette() Palette { return slices.Clone(basicPalette) }

// ComplexPalette returns the ten purples and blues used by complex mode.
func ComplexPalette() Palette { return slices.Clone(complexPalette) }

// Contains reports whether c is one of the palette's colours.
func (p Palette) Contains(c color.RGBA) bool {
	return slices.Contains(p, c)
}

// Hex returns the palette as "#rrggbb" strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p))
	for i, c := range p {
		cf, _ := colorful.MakeColor(c)
		out[i] = cf.Hex()
	}
	return out
}

// Validate checks that the palette can be drawn from.
func (p Palette) Validate() error {
	if len(p) == 0 {
		return apperrors.New(apperrors.ErrCodeInvalidPalette, "palette is empty")
	}
	for i, c := range p {
		if c.A != 255 {
			return apperrors.New(apperrors.ErrCodeInvalidPalette, "palette colour %d is not opaque", i)
		}
	}
	return nil
}

// ParsePalette builds a palette from "#rrggbb" strings.
func ParsePalette(hexes []string) (Palette, error) {
	if len(hexes) == 0 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidPalette, "palette is empty")
	}
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		if err := apperrors.ValidateHexColor(h); err != nil {
			return nil, err
		}
		cf, err := colorful.Hex(h)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInvalidPalette, err, "parse colour %q", h)
		}
		r, g, b := cf.RGB255()
		p = append(p, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return p, nil
}
