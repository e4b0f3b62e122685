package sink

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/matzehuels/mondrian/pkg/canvas"
	apperrors "github.com/matzehuels/mondrian/pkg/errors"
)

var (
	red   = color.RGBA{R: 255, A: 255}
	black = color.RGBA{A: 255}
)

// testImage is a 4x3 black canvas with a red pixel at (1,1).
func testImage() image.Image {
	c := canvas.New(4, 3)
	for y := range 3 {
		for x := range 4 {
			c.Set(x, y, black)
		}
	}
	c.Set(1, 1, red)
	return c.Image()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestRenderImageLossless(t *testing.T) {
	decoders := map[string]func([]byte) (image.Image, error){
		FormatPNG:  func(b []byte) (image.Image, error) { return png.Decode(bytes.NewReader(b)) },
		FormatBMP:  func(b []byte) (image.Image, error) { return bmp.Decode(bytes.NewReader(b)) },
		FormatTIFF: func(b []byte) (image.Image, error) { return tiff.Decode(bytes.NewReader(b)) },
	}

	for format, decode := range decoders {
		t.Run(format, func(t *testing.T) {
			data, err := RenderImage(testImage(), format)
			if err != nil {
				t.Fatalf("RenderImage() error: %v", err)
			}
			img, err := decode(data)
			if err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
				t.Errorf("size = %dx%d, want 4x3", b.Dx(), b.Dy())
			}
			if got := rgba(img.At(1, 1)); got != red {
				t.Errorf("pixel (1,1) = %v, want %v", got, red)
			}
			if got := rgba(img.At(3, 2)); got != black {
				t.Errorf("pixel (3,2) = %v, want %v", got, black)
			}
		})
	}
}

func TestRenderImageScale(t *testing.T) {
	data, err := RenderImage(testImage(), FormatPNG, WithScale(3))
	if err != nil {
		t.Fatalf("RenderImage() error: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 9 {
		t.Fatalf("size = %dx%d, want 12x9", b.Dx(), b.Dy())
	}

	// Nearest-neighbour: the red source pixel becomes a crisp 3x3 block.
	for y := range 9 {
		for x := range 12 {
			want := black
			if x >= 3 && x < 6 && y >= 3 && y < 6 {
				want = red
			}
			if got := rgba(img.At(x, y)); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderImageJPEG(t *testing.T) {
	low, err := RenderImage(testImage(), FormatJPEG, WithScale(8), WithJPEGQuality(10))
	if err != nil {
		t.Fatalf("RenderImage() error: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(low))
	if err != nil {
		t.Fatalf("jpeg.Decode() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 24 {
		t.Errorf("size = %dx%d, want 32x24", b.Dx(), b.Dy())
	}

	high, err := RenderImage(testImage(), FormatJPEG, WithScale(8), WithJPEGQuality(100))
	if err != nil {
		t.Fatalf("RenderImage() error: %v", err)
	}
	if len(high) <= len(low) {
		t.Errorf("quality 100 (%d bytes) should be larger than quality 10 (%d bytes)", len(high), len(low))
	}
}

func TestRenderImageErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		opts   []ImageOption
		want   apperrors.Code
	}{
		{"unknown format", "gif", nil, apperrors.ErrCodeInvalidFormat},
		{"json is not an image", FormatJSON, nil, apperrors.ErrCodeInvalidFormat},
		{"zero scale", FormatPNG, []ImageOption{WithScale(0)}, apperrors.ErrCodeInvalidInput},
		{"huge scale", FormatPNG, []ImageOption{WithScale(MaxScale + 1)}, apperrors.ErrCodeInvalidInput},
		{"bad quality", FormatJPEG, []ImageOption{WithJPEGQuality(0)}, apperrors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := RenderImage(testImage(), tt.format, tt.opts...)
			if !apperrors.Is(err, tt.want) {
				t.Errorf("RenderImage() error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestExtension(t *testing.T) {
	tests := map[string]string{
		FormatPNG:  ".png",
		FormatJPEG: ".jpg",
		FormatBMP:  ".bmp",
		FormatTIFF: ".tif",
		FormatJSON: ".json",
	}
	for format, want := range tests {
		if got := Extension(format); got != want {
			t.Errorf("Extension(%q) = %q, want %q", format, got, want)
		}
	}
	if IsImageFormat(FormatJSON) || !IsImageFormat(FormatTIFF) {
		t.Error("IsImageFormat misclassifies formats")
	}
}
