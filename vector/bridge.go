package vector

import (
	"github.com/gdamore/tcell/v2"

	"termgfx/graphics"
	"termgfx/raster"
)

// pixelBackends is the set of backend names that can display a
// rasterized pixel image instead of a Unicode glyph string.
var pixelBackends = map[string]bool{
	"kitty":  true,
	"iterm2": true,
	"sixel":  true,
}

// activeNamer is satisfied by *graphics.Manager; declared narrowly so this
// package doesn't need to import graphics' concrete Manager for testing.
type activeNamer interface {
	ActiveName() string
}

// HasPixelBackend reports whether manager's active backend can render
// pixels directly rather than needing a braille glyph fallback.
func HasPixelBackend(manager activeNamer) bool {
	return pixelBackends[manager.ActiveName()]
}

// BridgeOptions configures how canvas dots are rasterized to pixels.
type BridgeOptions struct {
	CellW, CellH int // pixel size of one braille cell; defaults 8x16
	Fg, Bg       RGB // defaults white-on-black
}

// DefaultBridgeOptions returns the spec-mandated defaults.
func DefaultBridgeOptions() BridgeOptions {
	return BridgeOptions{
		CellW: 8, CellH: 16,
		Fg: RGB{255, 255, 255},
		Bg: RGB{0, 0, 0},
	}
}

func (o BridgeOptions) dotSize() (int, int) {
	dotW := o.CellW / 2
	if dotW < 1 {
		dotW = 1
	}
	dotH := o.CellH / 4
	if dotH < 1 {
		dotH = 1
	}
	return dotW, dotH
}

// ToPixelBitmap rasterizes the canvas's dot buffer to an RGBA bitmap. Each
// dot becomes a dotW x dotH pixel patch, colored by its containing cell's
// stored color (or Fg if unset); everything else is Bg.
func ToPixelBitmap(c *Canvas, opts BridgeOptions) raster.Bitmap {
	dotW, dotH := opts.dotSize()
	width := c.WidthDots * dotW
	height := c.HeightDots * dotH
	bmp := raster.NewBitmap(width, height)

	fill := func(x0, y0, w, h int, col RGB) {
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				i := (y*width + x) * 4
				bmp.Pix[i], bmp.Pix[i+1], bmp.Pix[i+2], bmp.Pix[i+3] = col.R, col.G, col.B, 255
			}
		}
	}

	fill(0, 0, width, height, opts.Bg)

	for cy := 0; cy < c.HeightCells; cy++ {
		for cx := 0; cx < c.WidthCells; cx++ {
			cellColor := c.cellColor(cx, cy)
			useColor := opts.Fg
			if cellColor != (RGB{}) {
				useColor = cellColor
			}
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					px, py := cx*2+dx, cy*4+dy
					if !c.GetDot(px, py) {
						continue
					}
					fill(px*dotW, py*dotH, dotW, dotH, useColor)
				}
			}
		}
	}
	return bmp
}

// RenderVector renders a canvas either as a pixel image (if the manager has
// an active pixel-capable backend) or as a braille glyph string.
func RenderVector(c *Canvas, manager *graphics.Manager, x, y int, opts BridgeOptions) string {
	if !HasPixelBackend(manager) {
		return c.String()
	}
	bmp := ToPixelBitmap(c, opts)
	return manager.RenderImage(graphics.RawImage(bmp), graphics.RenderOptions{
		X: x, Y: y, Width: c.WidthCells, Height: c.HeightCells,
	})
}

// RenderVectorToScreen draws a canvas directly onto a tcell.Screen as braille
// cells, for hosts that already own a tcell.Screen for the rest of their UI
// instead of writing an escape-sequence stream to stdout. Unlike RenderVector
// it always uses a one-dot-per-pixel bitmap (CellW:2, CellH:4), so raster's
// braille cell grid lines up exactly with the canvas's own cell grid.
func RenderVectorToScreen(c *Canvas, screen tcell.Screen, x, y int) {
	opts := DefaultBridgeOptions()
	opts.CellW, opts.CellH = 2, 4
	bmp := ToPixelBitmap(c, opts)
	cm := raster.Render(bmp, raster.Options{Mode: raster.BrailleMode})
	raster.WriteToScreen(cm, screen, x, y)
}
