package raster

import "testing"

func TestResizeNearestNeighborSampling(t *testing.T) {
	b := NewBitmap(2, 1)
	b.Pix[0], b.Pix[1], b.Pix[2], b.Pix[3] = 10, 20, 30, 255
	b.Pix[4], b.Pix[5], b.Pix[6], b.Pix[7] = 200, 210, 220, 255

	out := Resize(b, 4, 1)
	if out.Width != 4 || out.Height != 1 {
		t.Fatalf("expected 4x1, got %dx%d", out.Width, out.Height)
	}
	// dst x=0,1 -> src x=0*2/4=0, 1*2/4=0; dst x=2,3 -> src x=2*2/4=1, 3*2/4=1
	for x := 0; x < 2; x++ {
		p := out.At(x, 0)
		if p.R != 10 {
			t.Fatalf("dst x=%d expected src pixel 0, got %+v", x, p)
		}
	}
	for x := 2; x < 4; x++ {
		p := out.At(x, 0)
		if p.R != 200 {
			t.Fatalf("dst x=%d expected src pixel 1, got %+v", x, p)
		}
	}
}

func TestResizeZeroDestination(t *testing.T) {
	b := NewBitmap(4, 4)
	out := Resize(b, 0, 5)
	if !out.Empty() {
		t.Fatalf("expected empty bitmap for zero destination dimension")
	}
}
