package graphics

import (
	"fmt"
)

const (
	esc = "\x1b"
	bel = "\x07"
	st  = "\x1b\\"
)

// sgrCursor builds the cursor-position escape ESC[(row+1);(col+1)H.
func sgrCursor(row, col int) string {
	return fmt.Sprintf("%s[%d;%dH", esc, row+1, col+1)
}
