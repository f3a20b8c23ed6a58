// Package graphics unifies Kitty, iTerm2, Sixel, ANSI, and Braille output
// behind one Backend interface, with capability-based selection managed by
// Manager.
package graphics

import "termgfx/raster"

// Format tags how Image's encoded bytes should be interpreted.
type Format int

const (
	FormatRaw Format = iota // raw pixel bytes, width/height/BytesPerPixel from the Bitmap
	FormatPNG
)

// Image is either a raw Bitmap or pre-encoded bytes with a declared format.
// Kitty and iTerm2 can render pre-encoded PNG bytes directly; ANSI,
// Braille, and Sixel always need raw pixels and will treat a PNG-only Image
// as unrenderable (empty string).
type Image struct {
	Bitmap  raster.Bitmap
	Format  Format
	Encoded []byte // valid when Format != FormatRaw
}

// RawImage wraps a Bitmap as a FormatRaw Image.
func RawImage(b raster.Bitmap) Image {
	return Image{Bitmap: b, Format: FormatRaw}
}

// PNGImage wraps pre-encoded PNG bytes as an Image. width/height describe
// the decoded pixel dimensions (backends that need s/v read them from here
// rather than decoding the PNG header themselves).
func PNGImage(data []byte, width, height int) Image {
	return Image{
		Format:  FormatPNG,
		Encoded: data,
		Bitmap:  raster.Bitmap{Width: width, Height: height},
	}
}

// Capabilities describes what a backend can do.
type Capabilities struct {
	StaticImages bool
	Animation    bool
	AlphaChannel bool
	MaxWidth     int // 0 = unbounded
	MaxHeight    int // 0 = unbounded
}

// Rect is a terminal-cell rectangle, used to scope a Clear.
type Rect struct {
	X, Y, Width, Height int
}

// RenderOptions positions and sizes a render call in terminal cells, plus
// backend-specific extras that not every backend uses.
type RenderOptions struct {
	X, Y          int
	Width, Height int // destination size in cells; 0 = backend default
	ID            int // 0 = unset
	ZIndex        int
	HoldCursor    bool
	Name          string // iTerm2 file name hint
	Background    [3]uint8
}

// Backend is the narrow interface every graphics protocol implements.
type Backend interface {
	Name() string
	Capabilities() Capabilities
	Render(img Image, opts RenderOptions) string
	Clear(area *Rect) string
	IsSupported(env func(string) (string, bool)) bool
}

// cursorPosition returns the SGR-adjacent cursor-positioning escape used by
// every pixel-producing backend before it emits its protocol-specific data.
func cursorPosition(x, y int) string {
	return sgrCursor(y, x)
}
