package graphics

import (
	"strings"

	"termgfx/palette"
	"termgfx/raster"
	"termgfx/termcap"
)

// ASCIIBackend renders images as one luminance-ramp character per pixel.
// It is the last-resort fallback in the default preference order, below
// Braille, for terminals where even Unicode braille glyphs are unreliable.
type ASCIIBackend struct{}

func (b *ASCIIBackend) Name() string { return "ascii" }

func (b *ASCIIBackend) Capabilities() Capabilities {
	return Capabilities{StaticImages: true}
}

// IsSupported reports the same result as termcap.DetectANSI256: NO_COLOR
// must be unset and TERM/TERM_PROGRAM must match one of that function's
// 256-color or xterm/screen rules.
func (b *ASCIIBackend) IsSupported(env func(string) (string, bool)) bool {
	return termcap.DetectANSI256(termcap.EnvFunc(env))
}

func (b *ASCIIBackend) Render(img Image, opts RenderOptions) string {
	if img.Format != FormatRaw {
		return ""
	}
	ropts := raster.DefaultOptions()
	ropts.Mode = raster.ASCIIMode
	ropts.Background = palette.RGB{R: opts.Background[0], G: opts.Background[1], B: opts.Background[2]}
	if opts.Width > 0 {
		ropts.TargetCellW = opts.Width
	}
	if opts.Height > 0 {
		ropts.TargetCellH = opts.Height
	}
	cm := raster.Render(img.Bitmap, ropts)
	var sb strings.Builder
	sb.WriteString(cursorPosition(opts.X, opts.Y))
	sb.WriteString(cm.String())
	return sb.String()
}

// Clear always returns "", for the same reason as ANSIBackend: ASCII has no
// dot-level addressing either, so clearing is the caller's problem.
func (b *ASCIIBackend) Clear(area *Rect) string {
	return ""
}
