package errors_test

import (
	"strings"
	"testing"

	"github.com/matzehuels/mondrian/pkg/canvas"
	"github.com/matzehuels/mondrian/pkg/config"
	apperrors "github.com/matzehuels/mondrian/pkg/errors"
	pkgio "github.com/matzehuels/mondrian/pkg/io"
	"github.com/matzehuels/mondrian/pkg/mondrian"
	"github.com/matzehuels/mondrian/pkg/pipeline"
)

// TestCodesFromCallers checks the code each package attaches to its
// precondition failures.
func TestCodesFromCallers(t *testing.T) {
	generate := func(w, h int, opts mondrian.Options) func() error {
		return func() error {
			_, err := mondrian.Generate(canvas.New(w, h), opts)
			return err
		}
	}
	parsePalette := func(hexes ...string) func() error {
		return func() error {
			_, err := mondrian.ParsePalette(hexes)
			return err
		}
	}

	tests := []struct {
		name     string
		call     func() error
		wantCode apperrors.Code
		wantMsg  string
	}{
		{"generate below minimum", generate(apperrors.MinDimension-1, 300, mondrian.Options{Mode: mondrian.ModeBasic, Seed: 1}),
			apperrors.ErrCodeInvalidDimensions, "too small"},
		{"generate empty canvas", generate(0, 0, mondrian.Options{Mode: mondrian.ModeComplex, Seed: 1}),
			apperrors.ErrCodeInvalidDimensions, "0x0"},
		{"generate unknown mode", generate(64, 64, mondrian.Options{Mode: "cubist"}),
			apperrors.ErrCodeInvalidMode, "cubist"},
		{"palette short hex", parsePalette("#12345"), apperrors.ErrCodeInvalidPalette, "#12345"},
		{"palette named colour", parsePalette("#ff0000", "red"), apperrors.ErrCodeInvalidPalette, "red"},
		{"palette empty", parsePalette(), apperrors.ErrCodeInvalidPalette, "empty"},
		{"mode digit", func() error { _, err := mondrian.ParseMode("3"); return err },
			apperrors.ErrCodeInvalidMode, "basic, complex"},
		{"manifest too small", func() error {
			_, err := pkgio.ReadJSON(strings.NewReader(`{"seed": 1, "width": 12, "height": 100}`))
			return err
		}, apperrors.ErrCodeInvalidDimensions, "too small"},
		{"format", func() error { return pipeline.ValidateFormat("gif") }, apperrors.ErrCodeInvalidFormat, "gif"},
		{"config palette", func() error {
			_, err := config.Parse([]byte("[palettes]\nbasic = [\"#zzzzzz\"]"))
			return err
		}, apperrors.ErrCodeInvalidConfig, "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if !apperrors.Is(err, tt.wantCode) {
				t.Fatalf("error = %v, want code %s", err, tt.wantCode)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestGenerateAtMinimumSucceeds(t *testing.T) {
	c := canvas.New(apperrors.MinDimension, apperrors.MinDimension)
	if _, err := mondrian.Generate(c, mondrian.Options{Mode: mondrian.ModeBasic, Seed: 1}); err != nil {
		t.Fatalf("Generate(%dx%d) error: %v", apperrors.MinDimension, apperrors.MinDimension, err)
	}
	if err := apperrors.ValidateDimensions(apperrors.MinDimension, apperrors.MinDimension); err != nil {
		t.Errorf("ValidateDimensions at minimum: %v", err)
	}
}
