package graphics

import (
	"strings"
	"testing"

	"termgfx/raster"
)

func TestANSIRenderProducesCellOutput(t *testing.T) {
	b := &ANSIBackend{}
	bmp := raster.NewBitmap(2, 2)
	for i := range bmp.Pix {
		bmp.Pix[i] = 255
	}
	out := b.Render(RawImage(bmp), RenderOptions{X: 1, Y: 2})
	if !strings.HasPrefix(out, "\x1b[3;2H") {
		t.Fatalf("expected cursor-position prefix for (1,2), got %q", out)
	}
	if !strings.Contains(out, "\x1b[0m") {
		t.Fatalf("expected SGR reset in cell output, got %q", out)
	}
}

func TestANSIRenderRejectsEncodedOnly(t *testing.T) {
	b := &ANSIBackend{}
	if got := b.Render(Image{Format: FormatPNG, Encoded: []byte("x")}, RenderOptions{}); got != "" {
		t.Fatalf("expected empty string for PNG-only image, got %q", got)
	}
}

func TestANSIClearAlwaysEmpty(t *testing.T) {
	b := &ANSIBackend{}
	if got := b.Clear(nil); got != "" {
		t.Fatalf("Clear(nil) = %q, want \"\"", got)
	}
	if got := b.Clear(&Rect{X: 0, Y: 0, Width: 3, Height: 2}); got != "" {
		t.Fatalf("Clear(area) = %q, want \"\" — ANSI leaves clearing to the caller", got)
	}
}

func TestBrailleClearNilVsArea(t *testing.T) {
	b := &BrailleBackend{}
	if got := b.Clear(nil); got != "" {
		t.Fatalf("Clear(nil) = %q, want \"\"", got)
	}
	got := b.Clear(&Rect{X: 0, Y: 0, Width: 3, Height: 2})
	if !strings.Contains(got, "   ") {
		t.Fatalf("Clear(area) should space-overwrite the rect, got %q", got)
	}
}

func TestASCIIClearAlwaysEmpty(t *testing.T) {
	b := &ASCIIBackend{}
	if got := b.Clear(nil); got != "" {
		t.Fatalf("Clear(nil) = %q, want \"\"", got)
	}
	if got := b.Clear(&Rect{X: 0, Y: 0, Width: 3, Height: 2}); got != "" {
		t.Fatalf("Clear(area) = %q, want \"\"", got)
	}
}

func TestASCIIRenderProducesLuminanceGlyph(t *testing.T) {
	b := &ASCIIBackend{}
	bmp := raster.NewBitmap(1, 1)
	bmp.Pix[0], bmp.Pix[1], bmp.Pix[2], bmp.Pix[3] = 255, 255, 255, 255
	out := b.Render(RawImage(bmp), RenderOptions{})
	if !strings.Contains(out, "@") {
		t.Fatalf("expected '@' glyph for full-luminance white pixel, got %q", out)
	}
}

func TestBrailleRenderProducesDots(t *testing.T) {
	b := &BrailleBackend{}
	bmp := raster.NewBitmap(2, 4)
	for i := range bmp.Pix {
		bmp.Pix[i] = 255
	}
	out := b.Render(RawImage(bmp), RenderOptions{})
	if !strings.Contains(out, "⣿") {
		t.Fatalf("expected full braille glyph for fully-lit 2x4 cell, got %q", out)
	}
}
