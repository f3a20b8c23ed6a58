package graphics

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/soniakeys/quant/median"

	"termgfx/palette"
	"termgfx/raster"
	"termgfx/termcap"
)

// PaletteMode selects how SixelBackend builds its output palette.
type PaletteMode int

const (
	PalettePopularity PaletteMode = iota // histogram, spec-mandated default
	PaletteMedianCut                     // soniakeys/quant/median, opt-in for images with many distinct colors
)

// SixelOptions configures SixelBackend encoding.
type SixelOptions struct {
	MaxColors   int // default 256, clamped to [2,256]
	PaletteMode PaletteMode
}

// DefaultSixelOptions returns the spec-mandated defaults.
func DefaultSixelOptions() SixelOptions {
	return SixelOptions{MaxColors: 256, PaletteMode: PalettePopularity}
}

// NewSixelOptions validates maxColors against the spec's 2..256 bound,
// returning an InvalidConfig error rather than silently clamping.
func NewSixelOptions(maxColors int, mode PaletteMode) (SixelOptions, error) {
	if maxColors < 2 || maxColors > 256 {
		return SixelOptions{}, &palette.Error{
			Kind:  palette.InvalidConfig,
			Msg:   "maxColors must be within 2..256",
			Value: maxColors,
		}
	}
	return SixelOptions{MaxColors: maxColors, PaletteMode: mode}, nil
}

// SixelBackend implements the DEC Sixel graphics protocol via a DCS
// sequence carrying a palette header followed by run-length-encoded raster
// data in six-row bands.
type SixelBackend struct {
	Options SixelOptions
}

func NewSixelBackend() *SixelBackend {
	return &SixelBackend{Options: DefaultSixelOptions()}
}

func (b *SixelBackend) Name() string { return "sixel" }

func (b *SixelBackend) Capabilities() Capabilities {
	return Capabilities{StaticImages: true, AlphaChannel: true}
}

func (b *SixelBackend) IsSupported(env func(string) (string, bool)) bool {
	return termcap.DetectSixel(termcap.EnvFunc(env))
}

func (b *SixelBackend) maxColors() int {
	n := b.Options.MaxColors
	if n <= 0 {
		n = 256
	}
	if n < 2 {
		n = 2
	}
	if n > 256 {
		n = 256
	}
	return n
}

// buildPopularityPalette scans the bitmap and returns the min(K,maxColors)
// most frequent opaque colors, sorted by descending pixel count.
func buildPopularityPalette(bmp raster.Bitmap, maxColors int) []palette.RGB {
	type entry struct {
		rgb   palette.RGB
		count int
	}
	hist := make(map[uint32]*entry)
	for y := 0; y < bmp.Height; y++ {
		for x := 0; x < bmp.Width; x++ {
			c := bmp.At(x, y)
			if c.A == 0 {
				continue
			}
			key := uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			if e, ok := hist[key]; ok {
				e.count++
			} else {
				hist[key] = &entry{rgb: palette.RGB{R: c.R, G: c.G, B: c.B}, count: 1}
			}
		}
	}
	entries := make([]*entry, 0, len(hist))
	for _, e := range hist {
		entries = append(entries, e)
	}
	rgbKey := func(c palette.RGB) uint32 {
		return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return rgbKey(entries[i].rgb) < rgbKey(entries[j].rgb)
	})
	if len(entries) > maxColors {
		entries = entries[:maxColors]
	}
	out := make([]palette.RGB, len(entries))
	for i, e := range entries {
		out[i] = e.rgb
	}
	return out
}

// buildMedianCutPalette quantizes the bitmap via median-cut to at most
// maxColors entries.
func buildMedianCutPalette(bmp raster.Bitmap, maxColors int) []palette.RGB {
	img := image.NewRGBA(image.Rect(0, 0, bmp.Width, bmp.Height))
	for y := 0; y < bmp.Height; y++ {
		for x := 0; x < bmp.Width; x++ {
			c := bmp.At(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	q := median.Quantizer(maxColors)
	paletted := q.Paletted(img)
	out := make([]palette.RGB, 0, len(paletted.Palette))
	for _, c := range paletted.Palette {
		r, g, bb, _ := c.RGBA()
		out = append(out, palette.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bb >> 8)})
	}
	return out
}

func nearestPaletteIndex(pal []palette.RGB, c palette.RGB) int {
	best := 0
	bestDist := -1
	for i, p := range pal {
		dr := int(p.R) - int(c.R)
		dg := int(p.G) - int(c.G)
		db := int(p.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if d == 0 {
			return i
		}
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

func sixelPaletteHeader(pal []palette.RGB) string {
	var sb strings.Builder
	for i, c := range pal {
		rp := percentOf(c.R)
		gp := percentOf(c.G)
		bp := percentOf(c.B)
		fmt.Fprintf(&sb, "#%d;2;%d;%d;%d", i, rp, gp, bp)
	}
	return sb.String()
}

func percentOf(channel uint8) int {
	return int((float64(channel)/255.0)*100.0 + 0.5)
}

// encodeSixelRun run-length-encodes a single six-bit-value-per-column
// sequence into sixel character form: runs of 3 or more identical values
// become "!<count><char>"; shorter runs are emitted literally.
func encodeSixelRun(values []int) string {
	var sb strings.Builder
	i := 0
	for i < len(values) {
		j := i + 1
		for j < len(values) && values[j] == values[i] {
			j++
		}
		runLen := j - i
		ch := rune(63 + values[i])
		if runLen >= 3 {
			fmt.Fprintf(&sb, "!%d%c", runLen, ch)
		} else {
			for k := 0; k < runLen; k++ {
				sb.WriteRune(ch)
			}
		}
		i = j
	}
	return sb.String()
}

// Render builds the full Sixel DCS sequence for the bitmap.
func (b *SixelBackend) Render(img Image, opts RenderOptions) string {
	if img.Format != FormatRaw {
		return ""
	}
	bmp := img.Bitmap
	var sb strings.Builder
	sb.WriteString(cursorPosition(opts.X, opts.Y))
	sb.WriteString(esc + "Pq")

	if bmp.Width == 0 || bmp.Height == 0 {
		sb.WriteString(esc + "\\")
		return sb.String()
	}

	maxColors := b.maxColors()
	var pal []palette.RGB
	if b.Options.PaletteMode == PaletteMedianCut {
		pal = buildMedianCutPalette(bmp, maxColors)
	} else {
		pal = buildPopularityPalette(bmp, maxColors)
	}
	if len(pal) == 0 {
		sb.WriteString(esc + "\\")
		return sb.String()
	}

	indices := make([][]int, bmp.Height)
	for y := 0; y < bmp.Height; y++ {
		indices[y] = make([]int, bmp.Width)
		for x := 0; x < bmp.Width; x++ {
			c := bmp.At(x, y)
			if c.A == 0 {
				indices[y][x] = 0
				continue
			}
			indices[y][x] = nearestPaletteIndex(pal, palette.RGB{R: c.R, G: c.G, B: c.B})
		}
	}

	sb.WriteString(sixelPaletteHeader(pal))

	numBands := (bmp.Height + 5) / 6
	for band := 0; band < numBands; band++ {
		bandY := band * 6
		bandHeight := 6
		if bandY+bandHeight > bmp.Height {
			bandHeight = bmp.Height - bandY
		}
		for c := 0; c < len(pal); c++ {
			values := make([]int, bmp.Width)
			any := false
			for x := 0; x < bmp.Width; x++ {
				v := 0
				for k := 0; k < bandHeight; k++ {
					if indices[bandY+k][x] == c {
						v |= 1 << uint(k)
					}
				}
				values[x] = v
				if v != 0 {
					any = true
				}
			}
			if !any {
				continue
			}
			fmt.Fprintf(&sb, "#%d%s$", c, encodeSixelRun(values))
		}
		if band < numBands-1 {
			sb.WriteString("-")
		}
	}

	sb.WriteString(esc + "\\")
	return sb.String()
}

func (b *SixelBackend) Clear(area *Rect) string {
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
