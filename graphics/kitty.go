package graphics

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"termgfx/termcap"
)

const kittyChunkSize = 4096

// KittyBackend implements the Kitty terminal graphics protocol: chunked APC
// escape sequences transmitting raw or PNG-encoded pixels, with placement,
// deletion, animation, and a query handshake.
type KittyBackend struct {
	// NextID is not read by any method: ids are never assigned
	// automatically. Render emits i= only when RenderOptions.ID is non-zero,
	// so callers that need an id supply RenderOptions.ID.
	NextID int
}

func (b *KittyBackend) Name() string { return "kitty" }

func (b *KittyBackend) Capabilities() Capabilities {
	return Capabilities{StaticImages: true, Animation: true, AlphaChannel: true}
}

func (b *KittyBackend) IsSupported(env func(string) (string, bool)) bool {
	return termcap.DetectKitty(termcap.EnvFunc(env))
}

// kittyControls builds the control-key CSV for a transmit+display sequence.
func kittyControls(format int, width, height int, opts RenderOptions) string {
	keys := []string{"a=T", fmt.Sprintf("f=%d", format), "t=d", "q=2"}
	if format != 100 {
		keys = append(keys, fmt.Sprintf("s=%d", width), fmt.Sprintf("v=%d", height))
	}
	if opts.Width > 0 {
		keys = append(keys, fmt.Sprintf("c=%d", opts.Width))
	}
	if opts.Height > 0 {
		keys = append(keys, fmt.Sprintf("r=%d", opts.Height))
	}
	if opts.ID != 0 {
		keys = append(keys, fmt.Sprintf("i=%d", opts.ID))
	}
	if opts.ZIndex != 0 {
		keys = append(keys, fmt.Sprintf("z=%d", opts.ZIndex))
	}
	if opts.HoldCursor {
		keys = append(keys, "C=1")
	}
	return strings.Join(keys, ",")
}

// chunkTransmit splits a base64 payload into Kitty APC chunks per spec.md
// §4.6: chunks of at most kittyChunkSize, each a multiple of 4 except the
// last; the first chunk carries controls+m=1, intermediate chunks carry only
// m=1, the last carries only m=0. A payload that fits in one chunk is sent
// with a single m=0 sequence carrying controls.
func chunkTransmit(controls, payload string) string {
	var sb strings.Builder
	if len(payload) <= kittyChunkSize {
		sb.WriteString(esc + "_G" + controls + ",m=0;" + payload + esc + "\\")
		return sb.String()
	}
	first := true
	for i := 0; i < len(payload); {
		end := i + kittyChunkSize
		if end > len(payload) {
			end = len(payload)
		}
		// keep every non-final chunk a multiple of 4
		for end < len(payload) && (end-i)%4 != 0 {
			end--
		}
		chunk := payload[i:end]
		last := end >= len(payload)
		sb.WriteString(esc + "_G")
		if first {
			sb.WriteString(controls)
			sb.WriteString(",m=1")
			first = false
		} else if last {
			sb.WriteString("m=0")
		} else {
			sb.WriteString("m=1")
		}
		sb.WriteString(";")
		sb.WriteString(chunk)
		sb.WriteString(esc + "\\")
		i = end
	}
	return sb.String()
}

func (b *KittyBackend) Render(img Image, opts RenderOptions) string {
	var format int
	var payload string
	var width, height int

	switch img.Format {
	case FormatPNG:
		format = 100
		payload = base64.StdEncoding.EncodeToString(img.Encoded)
	case FormatRaw:
		format = 32
		width, height = img.Bitmap.Width, img.Bitmap.Height
		raw := make([]byte, 0, width*height*4)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				c := img.Bitmap.At(x, y)
				raw = append(raw, c.R, c.G, c.B, c.A)
			}
		}
		payload = base64.StdEncoding.EncodeToString(raw)
	default:
		return ""
	}

	controls := kittyControls(format, width, height, opts)
	var sb strings.Builder
	sb.WriteString(cursorPosition(opts.X, opts.Y))
	sb.WriteString(chunkTransmit(controls, payload))
	return sb.String()
}

// Place emits a placement sequence for a previously transmitted image.
func (b *KittyBackend) Place(id int, opts RenderOptions) string {
	keys := []string{"a=p", "q=2", fmt.Sprintf("i=%d", id)}
	if opts.Width > 0 {
		keys = append(keys, fmt.Sprintf("c=%d", opts.Width))
	}
	if opts.Height > 0 {
		keys = append(keys, fmt.Sprintf("r=%d", opts.Height))
	}
	if opts.ZIndex != 0 {
		keys = append(keys, fmt.Sprintf("z=%d", opts.ZIndex))
	}
	if opts.HoldCursor {
		keys = append(keys, "C=1")
	}
	return cursorPosition(opts.X, opts.Y) + esc + "_G" + strings.Join(keys, ",") + esc + "\\"
}

// DeleteMode selects which deletion variant Delete emits.
type DeleteMode int

const (
	DeleteAll          DeleteMode = iota // d=A, all images and their data
	DeleteByIDWithData                   // d=I,i=<id>
	DeleteByID                           // d=i,i=<id>, keep pixel data
	DeleteAtCursor                       // d=C, at cursor, with data
	DeleteAtCursorKeep                   // d=c, at cursor, keep data
)

// Delete builds a deletion APC sequence for the given mode and image id
// (ignored for DeleteAll/DeleteAtCursor*).
func (b *KittyBackend) Delete(mode DeleteMode, id int) string {
	var d string
	withID := false
	switch mode {
	case DeleteAll:
		d = "A"
	case DeleteByIDWithData:
		d, withID = "I", true
	case DeleteByID:
		d, withID = "i", true
	case DeleteAtCursor:
		d = "C"
	case DeleteAtCursorKeep:
		d = "c"
	}
	keys := []string{"a=d", "d=" + d}
	if withID {
		keys = append(keys, fmt.Sprintf("i=%d", id))
	}
	return esc + "_G" + strings.Join(keys, ",") + esc + "\\"
}

// AnimationFrame uploads one frame of an animation: a raw sub-rectangle at
// (x,y) of size (w,h), with display duration durationMs and the frame number
// assigned by the caller, composited over backgroundFrame (0 = none).
func (b *KittyBackend) AnimationFrame(bmp Image, frameNumber, backgroundFrame, durationMs, x, y int) string {
	if bmp.Format != FormatRaw {
		return ""
	}
	width, height := bmp.Bitmap.Width, bmp.Bitmap.Height
	raw := make([]byte, 0, width*height*4)
	for py := 0; py < height; py++ {
		for px := 0; px < width; px++ {
			c := bmp.Bitmap.At(px, py)
			raw = append(raw, c.R, c.G, c.B, c.A)
		}
	}
	payload := base64.StdEncoding.EncodeToString(raw)
	keys := []string{
		"a=f", "f=32", "t=d", "q=2",
		fmt.Sprintf("s=%d", width), fmt.Sprintf("v=%d", height),
		fmt.Sprintf("r=%d", frameNumber),
		fmt.Sprintf("c=%d", backgroundFrame),
		fmt.Sprintf("z=%d", durationMs),
		fmt.Sprintf("x=%d", x), fmt.Sprintf("y=%d", y),
	}
	return chunkTransmit(strings.Join(keys, ","), payload)
}

// Playback builds the animation-control sequence: start plays loops times
// (0 = forever), stop halts playback.
func (b *KittyBackend) Playback(start bool, loops int) string {
	if !start {
		return esc + "_Ga=a,s=1" + esc + "\\"
	}
	v := loops + 1
	if loops == 0 {
		v = 1
	}
	return esc + "_Ga=a,s=3,v=" + strconv.Itoa(v) + esc + "\\"
}

// Query builds the fixed capability-probe handshake.
func (b *KittyBackend) Query() string {
	return esc + "_Gi=31,s=1,v=1,a=q,t=d,f=24;AAAA" + esc + "\\"
}

func (b *KittyBackend) Clear(area *Rect) string {
	if area == nil {
		return b.Delete(DeleteAll, 0)
	}
	var sb strings.Builder
	blankRow := strings.Repeat(" ", area.Width)
	for row := 0; row < area.Height; row++ {
		sb.WriteString(sgrCursor(area.Y+row, area.X))
		sb.WriteString(blankRow)
	}
	return sb.String()
}
