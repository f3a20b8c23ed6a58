// Package vector implements a dot-addressable braille drawing surface and
// primitives (lines, shapes, curves) on top of it, plus a bridge that
// rasterizes the canvas to pixels for backends that can display them
// directly instead of as Unicode glyphs.
package vector

import (
	"fmt"
	"strings"

	"termgfx/palette"
)

const brailleBase = 0x2800

// brailleDotBit is the fixed dot-to-bit map: [dx][dy].
var brailleDotBit = [2][4]int{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// RGB is a packed-friendly 24-bit color; zero means "unset / transparent",
// which the canvas renders as the default foreground.
type RGB struct {
	R, G, B uint8
}

func (c RGB) packed() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

func unpack(v uint32) RGB {
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Canvas is a braille dot surface addressed in dot coordinates
// (2 dots per cell wide, 4 dots per cell tall) with one color per cell.
type Canvas struct {
	WidthCells, HeightCells int
	WidthDots, HeightDots   int
	dots                    []byte // packed bit buffer, 1 bit per dot
	colors                  []uint32
}

// NewCanvas allocates a zeroed canvas of the given size in cells.
func NewCanvas(widthCells, heightCells int) *Canvas {
	wd := widthCells * 2
	hd := heightCells * 4
	nbits := wd * hd
	return &Canvas{
		WidthCells:  widthCells,
		HeightCells: heightCells,
		WidthDots:   wd,
		HeightDots:  hd,
		dots:        make([]byte, (nbits+7)/8),
		colors:      make([]uint32, widthCells*heightCells),
	}
}

// NewCanvasChecked validates widthCells/heightCells before allocating,
// returning InvalidDimensions for non-positive sizes instead of producing
// a zero-area canvas every subsequent call would silently no-op against.
func NewCanvasChecked(widthCells, heightCells int) (*Canvas, error) {
	if widthCells <= 0 || heightCells <= 0 {
		return nil, &palette.Error{
			Kind:  palette.InvalidDimensions,
			Msg:   "canvas dimensions must be positive",
			Value: [2]int{widthCells, heightCells},
		}
	}
	return NewCanvas(widthCells, heightCells), nil
}

func (c *Canvas) dotIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= c.WidthDots || y >= c.HeightDots {
		return 0, false
	}
	return y*c.WidthDots + x, true
}

// SetDot lights the dot at (x,y). Out-of-range coordinates are a no-op.
func (c *Canvas) SetDot(x, y int) {
	idx, ok := c.dotIndex(x, y)
	if !ok {
		return
	}
	c.dots[idx/8] |= 1 << uint(idx%8)
}

// ClearDot unlights the dot at (x,y). Out-of-range coordinates are a no-op.
func (c *Canvas) ClearDot(x, y int) {
	idx, ok := c.dotIndex(x, y)
	if !ok {
		return
	}
	c.dots[idx/8] &^= 1 << uint(idx%8)
}

// GetDot reports whether the dot at (x,y) is lit. Out-of-range is false.
func (c *Canvas) GetDot(x, y int) bool {
	idx, ok := c.dotIndex(x, y)
	if !ok {
		return false
	}
	return c.dots[idx/8]&(1<<uint(idx%8)) != 0
}

// SetCellColor sets the stored color for the cell at cell coordinates
// (cellX,cellY). Out-of-range cells are a no-op. A zero RGB clears to
// transparent.
func (c *Canvas) SetCellColor(cellX, cellY int, rgb RGB) {
	if cellX < 0 || cellY < 0 || cellX >= c.WidthCells || cellY >= c.HeightCells {
		return
	}
	c.colors[cellY*c.WidthCells+cellX] = rgb.packed()
}

func (c *Canvas) cellColor(cellX, cellY int) RGB {
	return unpack(c.colors[cellY*c.WidthCells+cellX])
}

// setDotColored sets a dot and, if color is non-zero, colors its containing
// cell. Used by every drawing primitive so each visited point paints both
// the dot pattern and (optionally) the cell's color.
func (c *Canvas) setDotColored(x, y int, color RGB) {
	c.SetDot(x, y)
	if color != (RGB{}) {
		c.SetCellColor(x/2, y/4, color)
	}
}

// String serializes the canvas row-by-row: each cell becomes a braille
// glyph chr(0x2800+pattern), wrapped in a 24-bit SGR foreground escape when
// its stored color is non-zero.
func (c *Canvas) String() string {
	var sb strings.Builder
	for cy := 0; cy < c.HeightCells; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		for cx := 0; cx < c.WidthCells; cx++ {
			pattern := 0
			for dx := 0; dx < 2; dx++ {
				for dy := 0; dy < 4; dy++ {
					if c.GetDot(cx*2+dx, cy*4+dy) {
						pattern |= brailleDotBit[dx][dy]
					}
				}
			}
			glyph := rune(brailleBase + pattern)
			col := c.cellColor(cx, cy)
			if col != (RGB{}) {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm%c\x1b[0m", col.R, col.G, col.B, glyph)
			} else {
				sb.WriteRune(glyph)
			}
		}
	}
	return sb.String()
}
