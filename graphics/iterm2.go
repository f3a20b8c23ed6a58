package graphics

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"termgfx/termcap"
)

// SizeUnit selects how a SizeSpec's numeric value is interpreted.
type SizeUnit int

const (
	SizeCells SizeUnit = iota // bare integer, terminal cells (default)
	SizePixels
	SizePercent
)

// SizeSpec formats as iTerm2's width/height parameter value.
type SizeSpec struct {
	Auto bool
	N    int
	Unit SizeUnit
}

func (s SizeSpec) String() string {
	if s.Auto {
		return "auto"
	}
	switch s.Unit {
	case SizePixels:
		return strconv.Itoa(s.N) + "px"
	case SizePercent:
		return strconv.Itoa(s.N) + "%"
	default:
		return strconv.Itoa(s.N)
	}
}

// AspectRatioMode selects whether Render emits iTerm2's preserveAspectRatio
// parameter at all.
type AspectRatioMode int

const (
	AspectRatioUnset   AspectRatioMode = iota // zero value: omit the parameter, let the terminal default
	AspectRatioPreserve                       // explicit no-op, still omits the parameter (preserve is the terminal default)
	AspectRatioDisable                        // emits preserveAspectRatio=0
)

// ITerm2Backend implements the iTerm2 inline-image protocol, an OSC 1337
// sequence carrying base64-encoded image bytes. Only FormatPNG images are
// rendered; a raw Bitmap yields an empty string.
type ITerm2Backend struct {
	Width, Height   SizeSpec
	AspectRatioMode AspectRatioMode
}

func (b *ITerm2Backend) Name() string { return "iterm2" }

func (b *ITerm2Backend) Capabilities() Capabilities {
	return Capabilities{StaticImages: true, AlphaChannel: true}
}

func (b *ITerm2Backend) IsSupported(env func(string) (string, bool)) bool {
	return termcap.DetectITerm2(termcap.EnvFunc(env))
}

func (b *ITerm2Backend) Render(img Image, opts RenderOptions) string {
	var data []byte
	switch img.Format {
	case FormatPNG:
		data = img.Encoded
	case FormatRaw:
		return "" // iTerm2 needs an encoded image (PNG); raw bitmaps aren't transmitted
	default:
		return ""
	}

	params := []string{}
	if opts.Name != "" {
		params = append(params, "name="+base64.StdEncoding.EncodeToString([]byte(opts.Name)))
	}
	params = append(params, fmt.Sprintf("size=%d", len(data)))
	params = append(params, "inline=1")
	if opts.Width > 0 {
		params = append(params, "width="+SizeSpec{N: opts.Width}.String())
	}
	if opts.Height > 0 {
		params = append(params, "height="+SizeSpec{N: opts.Height}.String())
	}
	if b.AspectRatioMode == AspectRatioDisable {
		params = append(params, "preserveAspectRatio=0")
	}

	payload := base64.StdEncoding.EncodeToString(data)
	var sb strings.Builder
	sb.WriteString(cursorPosition(opts.X, opts.Y))
	sb.WriteString(esc + "]1337;File=")
	sb.WriteString(strings.Join(params, ";"))
	sb.WriteString(":")
	sb.WriteString(payload)
	sb.WriteString(bel)
	return sb.String()
}

func (b *ITerm2Backend) Clear(area *Rect) string {
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
