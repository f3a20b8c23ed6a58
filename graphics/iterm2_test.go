package graphics

import (
	"strings"
	"testing"
)

func TestITerm2RenderRequiresEncoded(t *testing.T) {
	b := &ITerm2Backend{}
	if got := b.Render(Image{Format: FormatRaw}, RenderOptions{}); got != "" {
		t.Fatalf("expected empty string for raw-only image, got %q", got)
	}
}

func TestITerm2RenderFormat(t *testing.T) {
	b := &ITerm2Backend{}
	out := b.Render(PNGImage([]byte("fakepngdata"), 4, 4), RenderOptions{Name: "x.png", Width: 10, Height: 5})
	if !strings.Contains(out, "\x1b]1337;File=") || !strings.HasSuffix(out, "\x07") {
		t.Fatalf("expected OSC 1337 wrapper with BEL terminator: %q", out)
	}
	if !strings.Contains(out, "size=11") {
		t.Fatalf("expected size=<bytecount>, got %q", out)
	}
	if !strings.Contains(out, "width=10") || !strings.Contains(out, "height=5") {
		t.Fatalf("expected cell-unit width/height, got %q", out)
	}
	if strings.Contains(out, "preserveAspectRatio") {
		t.Fatalf("expected preserveAspectRatio to be omitted by default, got %q", out)
	}
}

func TestITerm2RenderDisabledAspectRatio(t *testing.T) {
	b := &ITerm2Backend{AspectRatioMode: AspectRatioDisable}
	out := b.Render(PNGImage([]byte("fakepngdata"), 4, 4), RenderOptions{Name: "x.png"})
	if !strings.Contains(out, "preserveAspectRatio=0") {
		t.Fatalf("expected preserveAspectRatio=0 when explicitly disabled, got %q", out)
	}
}

func TestSizeSpecString(t *testing.T) {
	cases := []struct {
		spec SizeSpec
		want string
	}{
		{SizeSpec{Auto: true}, "auto"},
		{SizeSpec{N: 5}, "5"},
		{SizeSpec{N: 100, Unit: SizePixels}, "100px"},
		{SizeSpec{N: 50, Unit: SizePercent}, "50%"},
	}
	for _, c := range cases {
		if got := c.spec.String(); got != c.want {
			t.Fatalf("SizeSpec(%+v).String() = %q, want %q", c.spec, got, c.want)
		}
	}
}

func TestITerm2IsSupported(t *testing.T) {
	b := &ITerm2Backend{}
	env := func(name string) (string, bool) {
		if name == "TERM_PROGRAM" {
			return "iTerm.app", true
		}
		return "", false
	}
	if !b.IsSupported(env) {
		t.Fatalf("expected iterm2 supported")
	}
}
