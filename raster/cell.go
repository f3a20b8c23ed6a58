package raster

import (
	"strconv"
	"strings"

	"termgfx/palette"
)

// Cell is one terminal character position: a glyph plus fg/bg palette
// indices.
type Cell struct {
	Char rune
	Fg   palette.Color256
	Bg   palette.Color256
}

// CellMap is a rectangular grid of cells, immutable once produced.
type CellMap struct {
	Width, Height int
	Cells         [][]Cell
}

const (
	upperHalfBlock = '▀'
	brailleBase    = 0x2800
)

// String serializes the CellMap to an SGR-minimal escape-sequence stream:
// one row per line, fg/bg emitted only when they change from the last
// emitted pair, and a trailing reset. An empty CellMap emits only the
// reset.
func (cm CellMap) String() string {
	var sb strings.Builder
	if cm.Width == 0 || cm.Height == 0 {
		sb.WriteString("\x1b[0m")
		return sb.String()
	}

	for row := 0; row < cm.Height; row++ {
		lastFg, lastBg := -1, -1
		for _, cell := range cm.Cells[row] {
			if int(cell.Fg) != lastFg || int(cell.Bg) != lastBg {
				sb.WriteString("\x1b[38;5;")
				sb.WriteString(strconv.Itoa(int(cell.Fg)))
				sb.WriteString(";48;5;")
				sb.WriteString(strconv.Itoa(int(cell.Bg)))
				sb.WriteByte('m')
				lastFg, lastBg = int(cell.Fg), int(cell.Bg)
			}
			sb.WriteRune(cell.Char)
		}
		if row < cm.Height-1 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString("\x1b[0m")
	return sb.String()
}

func emptyCellMap() CellMap {
	return CellMap{}
}
