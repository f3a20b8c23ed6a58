package graphics

import (
	"strings"
	"testing"

	"termgfx/raster"
)

func solidBitmap(w, h int, r, g, b, a uint8) raster.Bitmap {
	bmp := raster.NewBitmap(w, h)
	for i := 0; i < w*h; i++ {
		bmp.Pix[i*4] = r
		bmp.Pix[i*4+1] = g
		bmp.Pix[i*4+2] = b
		bmp.Pix[i*4+3] = a
	}
	return bmp
}

func TestSixelEmptyImage(t *testing.T) {
	b := NewSixelBackend()
	out := b.Render(RawImage(raster.Bitmap{}), RenderOptions{})
	if !strings.Contains(out, "\x1bPq") || !strings.HasSuffix(out, "\x1b\\") {
		t.Fatalf("empty image should still emit bare DCS wrapper: %q", out)
	}
}

func TestSixelPaletteHeaderFormat(t *testing.T) {
	b := NewSixelBackend()
	bmp := solidBitmap(2, 2, 255, 0, 0, 255)
	out := b.Render(RawImage(bmp), RenderOptions{})
	if !strings.Contains(out, "#0;2;100;0;0") {
		t.Fatalf("expected palette entry for pure red, got %q", out)
	}
}

func TestSixelRunLengthEncoding(t *testing.T) {
	values := []int{0, 0, 0, 0, 0, 1}
	got := encodeSixelRun(values)
	want := "!5?@"
	if got != want {
		t.Fatalf("encodeSixelRun(%v) = %q, want %q", values, got, want)
	}
}

func TestSixelRunLengthShortRunLiteral(t *testing.T) {
	values := []int{1, 1}
	got := encodeSixelRun(values)
	want := "@@"
	if got != want {
		t.Fatalf("encodeSixelRun(%v) = %q, want %q", values, got, want)
	}
}

func TestSixelPopularityPaletteSkipsTransparentPixels(t *testing.T) {
	bmp := raster.NewBitmap(1, 1) // alpha 0 by default
	pal := buildPopularityPalette(bmp, 256)
	if len(pal) != 0 {
		t.Fatalf("expected empty palette for fully transparent image, got %v", pal)
	}
}

func TestSixelBandSeparator(t *testing.T) {
	b := NewSixelBackend()
	bmp := solidBitmap(1, 12, 0, 255, 0, 255) // two full bands of green
	out := b.Render(RawImage(bmp), RenderOptions{})
	if !strings.Contains(out, "$-#") && !strings.Contains(out, "$\n#") {
		// band separator '-' should appear between the two bands' color rows
		if !strings.Contains(out, "-") {
			t.Fatalf("expected '-' band separator between two bands: %q", out)
		}
	}
}

func TestNewSixelOptionsRejectsOutOfRange(t *testing.T) {
	if _, err := NewSixelOptions(1, PalettePopularity); err == nil {
		t.Fatalf("expected error for maxColors=1")
	}
	if _, err := NewSixelOptions(257, PalettePopularity); err == nil {
		t.Fatalf("expected error for maxColors=257")
	}
}

func TestNewSixelOptionsAccepts(t *testing.T) {
	opts, err := NewSixelOptions(16, PaletteMedianCut)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.MaxColors != 16 || opts.PaletteMode != PaletteMedianCut {
		t.Fatalf("opts = %+v, want MaxColors=16 PaletteMode=PaletteMedianCut", opts)
	}
}

func TestSixelIsSupported(t *testing.T) {
	b := NewSixelBackend()
	env := func(name string) (string, bool) {
		if name == "TERM" {
			return "xterm-sixel", true
		}
		return "", false
	}
	if !b.IsSupported(env) {
		t.Fatalf("expected sixel supported via TERM containing sixel")
	}
}
