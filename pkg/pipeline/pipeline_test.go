package pipeline

import (
	"slices"
	"testing"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	"github.com/matzehuels/mondrian/pkg/mondrian"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"png", false},
		{"jpeg", false},
		{"bmp", false},
		{"tiff", false},
		{"json", false},
		{"svg", true},
		{"PNG", true}, // case-sensitive; ParseFormats lowercases
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !apperrors.Is(err, apperrors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, apperrors.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"png", "json"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"png", "gif"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestValidateTreeFormat(t *testing.T) {
	for _, f := range []string{"dot", "svg", "png"} {
		if err := ValidateTreeFormat(f); err != nil {
			t.Errorf("ValidateTreeFormat(%q) error: %v", f, err)
		}
	}
	if err := ValidateTreeFormat("json"); err == nil {
		t.Error("json is not a tree format")
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"png", []string{"png"}},
		{"png,json", []string{"png", "json"}},
		{" JPG , tif ", []string{"jpeg", "tiff"}},
		{"png,png,", []string{"png"}},
		{"", nil},
	}

	for _, tt := range tests {
		if got := ParseFormats(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("zero Options should validate: %v", err)
	}
	if opts.Mode != "basic" || opts.Width != DefaultWidth || opts.Height != DefaultHeight {
		t.Errorf("defaults = %s %dx%d", opts.Mode, opts.Width, opts.Height)
	}
	if !slices.Equal(opts.Formats, []string{FormatPNG}) || opts.Scale != 1 {
		t.Errorf("render defaults = %v x%d", opts.Formats, opts.Scale)
	}

	aliased := Options{Mode: "2", Palette: []string{"#ABCDEF"}}
	if err := aliased.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if aliased.Mode != "complex" {
		t.Errorf("Mode = %q, want complex", aliased.Mode)
	}
	if !slices.Equal(aliased.Palette, []string{"#abcdef"}) {
		t.Errorf("Palette = %v, want normalised hex", aliased.Palette)
	}
	if aliased.GenerateMode() != mondrian.ModeComplex || len(aliased.EffectivePalette()) != 1 {
		t.Errorf("GenerateMode/EffectivePalette = %v/%v", aliased.GenerateMode(), aliased.EffectivePalette())
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want apperrors.Code
	}{
		{"mode", Options{Mode: "cubist"}, apperrors.ErrCodeInvalidMode},
		{"width", Options{Width: 7}, apperrors.ErrCodeInvalidDimensions},
		{"height", Options{Height: 100000}, apperrors.ErrCodeInvalidDimensions},
		{"format", Options{Formats: []string{"webp"}}, apperrors.ErrCodeInvalidFormat},
		{"scale", Options{Scale: 99}, apperrors.ErrCodeInvalidInput},
		{"quality", Options{JPEGQuality: 200}, apperrors.ErrCodeInvalidInput},
		{"tree", Options{Tree: "pdf"}, apperrors.ErrCodeInvalidFormat},
		{"palette", Options{Palette: []string{"blue"}}, apperrors.ErrCodeInvalidPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !apperrors.Is(err, tt.want) {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Mode: "basic", Width: 100, Height: 80, Scale: 3, JPEGQuality: 70}

	png := opts.ArtifactKeyOpts(FormatPNG, 5)
	if png.Scale != 3 || png.Quality != 0 || png.Seed != 5 {
		t.Errorf("png key = %+v", png)
	}
	jpg := opts.ArtifactKeyOpts(FormatJPEG, 5)
	if jpg.Quality != 70 {
		t.Errorf("jpeg key should carry quality, got %+v", jpg)
	}
	js := opts.ArtifactKeyOpts(FormatJSON, 5)
	if js.Scale != 0 {
		t.Errorf("json key should ignore scale, got %+v", js)
	}

	opts.Tree = "svg"
	plain := opts.TreeKeyOpts(5)
	opts.TreeDetailed = true
	if detailed := opts.TreeKeyOpts(5); detailed.Format == plain.Format {
		t.Error("detailed tree should use a separate key")
	}
}
