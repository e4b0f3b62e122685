package mondrian

import (
	"image/color"
	"slices"
	"testing"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
)

func TestPaletteHex(t *testing.T) {
	want := []string{"#ff0000", "#ffff00", "#00ffff", "#ffffff"}
	if got := BasicPalette().Hex(); !slices.Equal(got, want) {
		t.Errorf("BasicPalette().Hex() = %v, want %v", got, want)
	}
	if got := ComplexPalette().Hex()[0]; got != "#5c3ba8" {
		t.Errorf("ComplexPalette()[0] = %s, want #5c3ba8", got)
	}
}

func TestPaletteClone(t *testing.T) {
	p := BasicPalette()
	p[0] = color.RGBA{A: 255}
	if BasicPalette()[0] != (color.RGBA{R: 255, A: 255}) {
		t.Error("mutating a returned palette changed the default")
	}
}

func TestParsePalette(t *testing.T) {
	tests := []struct {
		name    string
		input   []string
		want    Palette
		wantErr bool
	}{
		{
			name:  "round trip",
			input: []string{"#ff0000", "#00FFff"},
			want:  Palette{{R: 255, A: 255}, {G: 255, B: 255, A: 255}},
		},
		{name: "empty", input: nil, wantErr: true},
		{name: "missing hash", input: []string{"ff0000"}, wantErr: true},
		{name: "short form", input: []string{"#f00"}, wantErr: true},
		{name: "not hex", input: []string{"#gg0000"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePalette(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePalette() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !apperrors.Is(err, apperrors.ErrCodeInvalidPalette) {
					t.Errorf("error code = %s, want %s", apperrors.GetCode(err), apperrors.ErrCodeInvalidPalette)
				}
				return
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParsePalette() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPaletteValidate(t *testing.T) {
	if err := (Palette{}).Validate(); err == nil {
		t.Error("empty palette should be invalid")
	}
	if err := (Palette{{R: 1, A: 128}}).Validate(); err == nil {
		t.Error("translucent palette should be invalid")
	}
	if err := ComplexPalette().Validate(); err != nil {
		t.Errorf("complex palette invalid: %v", err)
	}
}

func TestPaletteContains(t *testing.T) {
	p := BasicPalette()
	if !p.Contains(color.RGBA{R: 255, G: 255, A: 255}) {
		t.Error("yellow should be in the basic palette")
	}
	if p.Contains(Black) {
		t.Error("black is a border colour, not a palette colour")
	}
}
