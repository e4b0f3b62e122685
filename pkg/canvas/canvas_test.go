package canvas

import (
	"image"
	"image/color"
	"testing"
)

func TestNew(t *testing.T) {
	c := New(30, 20)
	if c.Width() != 30 || c.Height() != 20 {
		t.Fatalf("New(30, 20) size = %dx%d, want 30x20", c.Width(), c.Height())
	}
	if got := Unset(c); got != 30*20 {
		t.Errorf("Unset(new canvas) = %d, want %d", got, 30*20)
	}
}

func TestSetAt(t *testing.T) {
	c := New(4, 3)
	red := color.RGBA{R: 255, A: 255}
	c.Set(3, 2, red)

	if got := c.At(3, 2); got != red {
		t.Errorf("At(3, 2) = %v, want %v", got, red)
	}
	if got := c.At(2, 3); got != (color.RGBA{}) {
		t.Errorf("At(2, 3) should be out of bounds and zero, got %v", got)
	}
	if got := Unset(c); got != 11 {
		t.Errorf("Unset() = %d, want 11", got)
	}
	if got := c.Image().RGBAAt(3, 2); got != red {
		t.Errorf("Image() does not share pixels: got %v", got)
	}
}

func TestFromImageTranslatesOrigin(t *testing.T) {
	img := image.NewRGBA(image.Rect(10, 10, 15, 12))
	c := FromImage(img)

	if c.Width() != 5 || c.Height() != 2 {
		t.Fatalf("size = %dx%d, want 5x2", c.Width(), c.Height())
	}
	blue := color.RGBA{B: 255, A: 255}
	c.Set(0, 0, blue)
	if got := img.RGBAAt(10, 10); got != blue {
		t.Errorf("FromImage should share pixels with the source image, got %v", got)
	}
}

func TestEqual(t *testing.T) {
	a, b := New(3, 3), New(3, 3)
	if !Equal(a, b) {
		t.Error("fresh canvases of equal size should be equal")
	}
	b.Set(1, 1, color.RGBA{G: 255, A: 255})
	if Equal(a, b) {
		t.Error("canvases differing in one pixel should not be equal")
	}
	if Equal(a, New(3, 4)) {
		t.Error("canvases of different size should not be equal")
	}
}
