package graphics

import (
	"strings"

	"termgfx/palette"
	"termgfx/raster"
	"termgfx/termcap"
)

// BrailleBackend renders images as Unicode braille dot patterns, the
// universal fallback when no pixel-graphics protocol and no 256-color ANSI
// is available.
type BrailleBackend struct{}

func (b *BrailleBackend) Name() string { return "braille" }

func (b *BrailleBackend) Capabilities() Capabilities {
	return Capabilities{StaticImages: true}
}

func (b *BrailleBackend) IsSupported(env func(string) (string, bool)) bool {
	return termcap.DetectBraille(termcap.EnvFunc(env))
}

func (b *BrailleBackend) Render(img Image, opts RenderOptions) string {
	if img.Format != FormatRaw {
		return ""
	}
	ropts := raster.DefaultOptions()
	ropts.Mode = raster.BrailleMode
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

func (b *BrailleBackend) Clear(area *Rect) string {
	if area == nil {
		return ""
	}
	var sb strings.Builder
	blankRow := strings.Repeat(" ", area.Width)
	for row := 0; row < area.Height; row++ {
		sb.WriteString(sgrCursor(area.Y+row, area.X))
		sb.WriteString(blankRow)
	}
	return sb.String()
}
