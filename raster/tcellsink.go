package raster

import (
	"github.com/gdamore/tcell/v2"

	"termgfx/palette"
)

// WriteToScreen paints a CellMap directly onto a tcell.Screen starting at
// (x,y), for hosts that render through tcell rather than consuming the
// CellMap's escape-sequence String() form. This is the same role tcell
// plays for half-block/braille output in terminal-graphics hosts that
// already own a tcell.Screen for the rest of their UI.
func WriteToScreen(cm CellMap, screen tcell.Screen, x, y int) {
	for row := 0; row < cm.Height; row++ {
		for col := 0; col < cm.Width; col++ {
			cell := cm.Cells[row][col]
			fg := Palette256ToTCell(cell.Fg)
			bg := Palette256ToTCell(cell.Bg)
			style := tcell.StyleDefault.Foreground(fg).Background(bg)
			screen.SetContent(x+col, y+row, cell.Char, nil, style)
		}
	}
}

// Palette256ToTCell converts a Color256 index into the equivalent
// tcell.Color by way of its RGB triple.
func Palette256ToTCell(idx palette.Color256) tcell.Color {
	rgb := palette.Palette[idx]
	return tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
}
