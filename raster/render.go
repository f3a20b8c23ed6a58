package raster

import "termgfx/palette"

// Mode selects which cell-rendering strategy Render uses.
type Mode int

const (
	ColorMode Mode = iota
	ASCIIMode
	BrailleMode
)

// Options configures a Render call.
type Options struct {
	Mode                     Mode
	TargetCellW, TargetCellH int
	Dither                   bool
	Background               palette.RGB
	// PerceptualMatch switches palette lookup from Nearest's cheap Euclidean
	// RGB distance to NearestPerceptual's CIE Lab distance. Off by default:
	// Nearest is deterministic and bit-exact, which is what most terminal
	// output wants; this is for callers who'd rather pay the Lab-distance
	// cost for smoother gradients.
	PerceptualMatch bool
}

func (o Options) nearest(c palette.RGB) palette.Color256 {
	if o.PerceptualMatch {
		return palette.NearestPerceptual(c)
	}
	return palette.Nearest(c)
}

// DefaultOptions returns color mode, no dithering, black background, and
// source-dimension target sizing.
func DefaultOptions() Options {
	return Options{Mode: ColorMode, Background: palette.RGB{}}
}

const asciiRamp = " .:-=+*#%@"

// Render converts a Bitmap into a CellMap per the active mode. Zero-sized
// input or a negative target yields an empty CellMap. A zero target means
// none was given, and the source dimensions are used; both targets must be
// positive for either to take effect. There is no error return because
// rendering never fails, per spec.
func Render(b Bitmap, opts Options) CellMap {
	if b.Empty() {
		return emptyCellMap()
	}
	if opts.TargetCellW < 0 || opts.TargetCellH < 0 {
		return emptyCellMap()
	}

	var pixW, pixH, cellW, cellH int
	if opts.TargetCellW > 0 && opts.TargetCellH > 0 {
		cellW, cellH = opts.TargetCellW, opts.TargetCellH
		switch opts.Mode {
		case ColorMode:
			pixW, pixH = cellW, cellH*2
		case BrailleMode:
			pixW, pixH = cellW*2, cellH*4
		default:
			pixW, pixH = cellW, cellH
		}
	} else {
		// No target cells given: the source pixel dimensions are used
		// directly (no resize), and cell counts are derived by ceiling
		// division so a trailing partial row/column falls back to the
		// background color instead of a distorting resize.
		pixW, pixH = b.Width, b.Height
		switch opts.Mode {
		case ColorMode:
			cellW, cellH = pixW, ceilDiv(pixH, 2)
		case BrailleMode:
			cellW, cellH = ceilDiv(pixW, 2), ceilDiv(pixH, 4)
		default:
			cellW, cellH = pixW, pixH
		}
	}

	if pixW <= 0 || pixH <= 0 || cellW <= 0 || cellH <= 0 {
		return emptyCellMap()
	}

	switch opts.Mode {
	case ColorMode:
		return renderColor(b, pixW, pixH, cellW, cellH, opts)
	case ASCIIMode:
		return renderASCII(b, pixW, pixH, cellW, cellH, opts)
	case BrailleMode:
		return renderBraille(b, pixW, pixH, cellW, cellH, opts)
	default:
		return emptyCellMap()
	}
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

func renderColor(b Bitmap, pixW, pixH, cellW, cellH int, opts Options) CellMap {
	scaled := Resize(b, pixW, pixH)
	if scaled.Empty() {
		return emptyCellMap()
	}

	resolved := make([]palette.RGB, pixW*pixH)
	for y := 0; y < pixH; y++ {
		for x := 0; x < pixW; x++ {
			resolved[y*pixW+x] = resolveAlpha(scaled.At(x, y), opts.Background)
		}
	}
	if opts.Dither {
		floydSteinberg(resolved, pixW, pixH)
	}

	cells := make([][]Cell, cellH)
	for row := 0; row < cellH; row++ {
		line := make([]Cell, cellW)
		topY := row * 2
		botY := topY + 1
		for col := 0; col < cellW; col++ {
			top := resolved[topY*pixW+col]
			var bot palette.RGB
			if botY < pixH {
				bot = resolved[botY*pixW+col]
			} else {
				bot = opts.Background
			}
			line[col] = Cell{
				Char: upperHalfBlock,
				Fg:   opts.nearest(top),
				Bg:   opts.nearest(bot),
			}
		}
		cells[row] = line
	}
	return CellMap{Width: cellW, Height: cellH, Cells: cells}
}

func renderASCII(b Bitmap, pixW, pixH, cellW, cellH int, opts Options) CellMap {
	scaled := Resize(b, pixW, pixH)
	if scaled.Empty() {
		return emptyCellMap()
	}

	cells := make([][]Cell, cellH)
	for y := 0; y < cellH; y++ {
		line := make([]Cell, cellW)
		for x := 0; x < cellW; x++ {
			rgb := resolveAlpha(scaled.At(x, y), opts.Background)
			lum := palette.PerceptualLuminance(rgb)
			idx := asciiIndex(lum)
			line[x] = Cell{
				Char: rune(asciiRamp[idx]),
				Fg:   opts.nearest(rgb),
				Bg:   0,
			}
		}
		cells[y] = line
	}
	return CellMap{Width: cellW, Height: cellH, Cells: cells}
}

func asciiIndex(lum float64) int {
	if lum < 0 {
		lum = 0
	}
	if lum > 1 {
		lum = 1
	}
	idx := int(lum*float64(len(asciiRamp)-1) + 0.5)
	if idx >= len(asciiRamp) {
		idx = len(asciiRamp) - 1
	}
	return idx
}

// brailleDotBit is the fixed dot-to-bit map: [dx][dy].
// (0,0)=0x01 (1,0)=0x08 (0,1)=0x02 (1,1)=0x10 (0,2)=0x04 (1,2)=0x20
// (0,3)=0x40 (1,3)=0x80
var brailleDotBit = [2][4]int{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

func renderBraille(b Bitmap, pixW, pixH, cellW, cellH int, opts Options) CellMap {
	scaled := Resize(b, pixW, pixH)
	if scaled.Empty() {
		return emptyCellMap()
	}

	cells := make([][]Cell, cellH)
	for cy := 0; cy < cellH; cy++ {
		line := make([]Cell, cellW)
		for cx := 0; cx < cellW; cx++ {
			var pattern int
			var rSum, gSum, bSum, n int
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					px, py := cx*2+dx, cy*4+dy
					if px >= pixW || py >= pixH {
						continue
					}
					rgb := resolveAlpha(scaled.At(px, py), opts.Background)
					lum := palette.PerceptualLuminance(rgb)
					rSum += int(rgb.R)
					gSum += int(rgb.G)
					bSum += int(rgb.B)
					n++
					if lum >= 0.5 {
						pattern |= brailleDotBit[dx][dy]
					}
				}
			}
			avg := palette.RGB{}
			if n > 0 {
				avg = palette.RGB{R: uint8(rSum / n), G: uint8(gSum / n), B: uint8(bSum / n)}
			}
			line[cx] = Cell{Char: rune(brailleBase + pattern), Fg: opts.nearest(avg), Bg: 0}
		}
		cells[cy] = line
	}
	return CellMap{Width: cellW, Height: cellH, Cells: cells}
}
