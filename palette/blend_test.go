package palette

import "testing"

func TestMixEndpoints(t *testing.T) {
	a := RGB{10, 20, 30}
	b := RGB{200, 100, 50}
	if got := Mix(a, b, 0); got != a {
		t.Fatalf("Mix(a,b,0) = %+v, want %+v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Fatalf("Mix(a,b,1) = %+v, want %+v", got, b)
	}
}

func TestMixClampsOutOfRangeT(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{255, 255, 255}
	if got := Mix(a, b, -5); got != a {
		t.Fatalf("expected clamp to a for t<0, got %+v", got)
	}
	if got := Mix(a, b, 5); got != b {
		t.Fatalf("expected clamp to b for t>1, got %+v", got)
	}
}

func TestOverFullAndZeroAlpha(t *testing.T) {
	bg := RGB{1, 2, 3}
	src := RGB{200, 201, 202}
	if got := Over(src, 1, bg); got != src {
		t.Fatalf("alpha=1 should pass src through, got %+v", got)
	}
	if got := Over(src, 0, bg); got != bg {
		t.Fatalf("alpha=0 should return bg, got %+v", got)
	}
}

func TestOverPremultipliedTransparentOntoTransparent(t *testing.T) {
	out := OverPremultiplied(RGBA{0, 0, 0, 0}, RGBA{0, 0, 0, 0})
	if out.A != 0 {
		t.Fatalf("expected fully transparent result, got %+v", out)
	}
}

func TestOverPremultipliedPartialAlphaStaysPremultiplied(t *testing.T) {
	out := OverPremultiplied(RGBA{255, 0, 0, 128}, RGBA{0, 0, 255, 128})
	want := RGBA{R: 128, G: 0, B: 64, A: 192}
	if out != want {
		t.Fatalf("OverPremultiplied(...) = %+v, want %+v (premultiplied, not straight-alpha)", out, want)
	}
}
