// Package raster renders pixel Bitmaps into terminal CellMaps: color
// half-block, ASCII luminance ramp, and Unicode braille dot patterns, with
// optional Floyd-Steinberg dithering and nearest-neighbor scaling.
package raster

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"termgfx/palette"
)

// Bitmap is a row-major pixel buffer, either 3 bytes/pixel (RGB) or 4
// bytes/pixel (RGBA). Pixel (x,y) starts at byte offset
// (y*Width+x)*BytesPerPixel.
type Bitmap struct {
	Width, Height int
	BytesPerPixel int
	Pix           []byte
}

// NewBitmap allocates a zeroed RGBA bitmap. A zero width or height is legal
// and yields an empty bitmap.
func NewBitmap(w, h int) Bitmap {
	if w <= 0 || h <= 0 {
		return Bitmap{BytesPerPixel: 4}
	}
	return Bitmap{Width: w, Height: h, BytesPerPixel: 4, Pix: make([]byte, w*h*4)}
}

// At returns the pixel at (x,y) as RGBA. Out-of-bounds coordinates return
// the zero value.
func (b Bitmap) At(x, y int) palette.RGBA {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height || b.BytesPerPixel == 0 {
		return palette.RGBA{}
	}
	off := (y*b.Width + x) * b.BytesPerPixel
	if off+b.BytesPerPixel > len(b.Pix) {
		return palette.RGBA{}
	}
	if b.BytesPerPixel == 3 {
		return palette.RGBA{R: b.Pix[off], G: b.Pix[off+1], B: b.Pix[off+2], A: 255}
	}
	return palette.RGBA{R: b.Pix[off], G: b.Pix[off+1], B: b.Pix[off+2], A: b.Pix[off+3]}
}

// Empty reports whether the bitmap has no pixels.
func (b Bitmap) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// FromImage converts a standard library image.Image into a Bitmap, always
// producing 4-bytes/pixel RGBA output.
func FromImage(img image.Image) Bitmap {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	bmp := NewBitmap(w, h)
	if bmp.Empty() {
		return bmp
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			off := (y*w + x) * 4
			bmp.Pix[off] = uint8(r >> 8)
			bmp.Pix[off+1] = uint8(g >> 8)
			bmp.Pix[off+2] = uint8(b >> 8)
			bmp.Pix[off+3] = uint8(a >> 8)
		}
	}
	return bmp
}

// Decode sniffs and decodes any image format registered via blank import
// (PNG, GIF, JPEG, BMP, TIFF, WebP) into a Bitmap. This is an ambient
// convenience: backends and the renderer itself only ever operate on
// already-decoded Bitmap/RGB data.
func Decode(r io.Reader) (Bitmap, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return Bitmap{}, "", fmt.Errorf("raster: decode image: %w", err)
	}
	return FromImage(img), format, nil
}

// resolveAlpha resolves a pixel's effective opaque RGB against a
// background per spec.md §4.2: alpha=255 passes RGB through, alpha=0 uses
// the background, otherwise a straight-alpha composite.
func resolveAlpha(p palette.RGBA, bg palette.RGB) palette.RGB {
	switch p.A {
	case 255:
		return palette.RGB{R: p.R, G: p.G, B: p.B}
	case 0:
		return bg
	default:
		return palette.OverRGBA(p, bg)
	}
}
