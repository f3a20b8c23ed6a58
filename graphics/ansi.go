package graphics

import (
	"strings"

	"termgfx/palette"
	"termgfx/raster"
	"termgfx/termcap"
)

// ANSIBackend renders images as half-block cells using the 256-color
// palette. It never needs a target cell size; if RenderOptions.Width/Height
// are 0 it sizes the output from the bitmap itself via raster.DefaultOptions.
type ANSIBackend struct{}

func (b *ANSIBackend) Name() string { return "ansi" }

func (b *ANSIBackend) Capabilities() Capabilities {
	return Capabilities{StaticImages: true}
}

func (b *ANSIBackend) IsSupported(env func(string) (string, bool)) bool {
	return termcap.DetectANSI256(termcap.EnvFunc(env))
}

func (b *ANSIBackend) Render(img Image, opts RenderOptions) string {
	if img.Format != FormatRaw {
		return ""
	}
	ropts := raster.DefaultOptions()
	ropts.Mode = raster.ColorMode
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

// Clear always returns "": ANSI treats clearing as the caller's problem.
func (b *ANSIBackend) Clear(area *Rect) string {
	return ""
}
