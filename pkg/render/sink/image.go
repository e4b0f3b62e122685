package sink

import (
	"bytes"
	"image"
	"slices"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	apperrors "github.com/matzehuels/mondrian/pkg/errors"
)

// Image formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// ImageFormats lists the raster formats RenderImage accepts.
var ImageFormats = []string{FormatPNG, FormatJPEG, FormatBMP, FormatTIFF}

// DefaultJPEGQuality is used when no quality option is given.
const DefaultJPEGQuality = 95

// MaxScale bounds the upscaling factor.
const MaxScale = 16

// IsImageFormat reports whether format is a raster format.
func IsImageFormat(format string) bool {
	return slices.Contains(ImageFormats, format)
}

// Extension returns the conventional file extension for a format, dot included.
func Extension(format string) string {
	switch format {
	case FormatJPEG:
		return ".jpg"
	case FormatTIFF:
		return ".tif"
	default:
		return "." + format
	}
}

// ImageOption configures image encoding.
type ImageOption func(*imageRenderer)

type imageRenderer struct {
	scale   int
	quality int
}

// WithScale enlarges the image by an integer factor (default 1).
func WithScale(s int) ImageOption {
	return func(r *imageRenderer) { r.scale = s }
}

// WithJPEGQuality sets JPEG quality in [1, 100]. Other formats ignore it.
func WithJPEGQuality(q int) ImageOption {
	return func(r *imageRenderer) { r.quality = q }
}

// RenderImage encodes img in the given raster format.
func RenderImage(img image.Image, format string, opts ...ImageOption) ([]byte, error) {
	r := imageRenderer{scale: 1, quality: DefaultJPEGQuality}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale < 1 || r.scale > MaxScale {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "scale %d out of range [1, %d]", r.scale, MaxScale)
	}
	if r.quality < 1 || r.quality > 100 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "jpeg quality %d out of range [1, 100]", r.quality)
	}

	if r.scale > 1 {
		b := img.Bounds()
		img = imaging.Resize(img, b.Dx()*r.scale, b.Dy()*r.scale, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(r.quality))
	case FormatBMP:
		err = bmp.Encode(&buf, img)
	case FormatTIFF:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidFormat, "unsupported image format: %q", format)
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode %s", format)
	}
	return buf.Bytes(), nil
}

// RenderPNG is shorthand for RenderImage(img, FormatPNG, opts...).
func RenderPNG(img image.Image, opts ...ImageOption) ([]byte, error) {
	return RenderImage(img, FormatPNG, opts...)
}
