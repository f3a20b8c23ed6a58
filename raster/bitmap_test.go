package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestFromImageRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 1, color.RGBA{R: 40, G: 50, B: 60, A: 128})

	b := FromImage(img)
	if b.Width != 2 || b.Height != 2 || b.BytesPerPixel != 4 {
		t.Fatalf("unexpected bitmap shape: %+v", b)
	}
	p := b.At(0, 0)
	if p.R != 10 || p.G != 20 || p.B != 30 || p.A != 255 {
		t.Fatalf("At(0,0) = %+v, want {10,20,30,255}", p)
	}
}

func TestBitmapAtOutOfBounds(t *testing.T) {
	b := NewBitmap(2, 2)
	if p := b.At(5, 5); p.R != 0 || p.A != 0 {
		t.Fatalf("expected zero value for out-of-bounds At, got %+v", p)
	}
}

func TestNewBitmapZeroSize(t *testing.T) {
	if !NewBitmap(0, 5).Empty() {
		t.Fatalf("expected empty bitmap for zero width")
	}
	if !NewBitmap(5, 0).Empty() {
		t.Fatalf("expected empty bitmap for zero height")
	}
}
