package palette

import (
	"errors"
	"testing"
)

func TestPaletteFixedEntries(t *testing.T) {
	cases := []struct {
		idx  int
		want RGB
	}{
		{0, RGB{0, 0, 0}},
		{9, RGB{255, 0, 0}},
		{15, RGB{255, 255, 255}},
		{16, RGB{0, 0, 0}},
		{231, RGB{255, 255, 255}},
		{232, RGB{8, 8, 8}},
		{255, RGB{238, 238, 238}},
	}
	for _, c := range cases {
		if got := Palette[c.idx]; got != c.want {
			t.Fatalf("Palette[%d] = %+v, want %+v", c.idx, got, c.want)
		}
	}
}

func TestCubeIndexFormula(t *testing.T) {
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				got := CubeIndex(r, g, b)
				want := Color256(16 + 36*r + 6*g + b)
				if got != want {
					t.Fatalf("CubeIndex(%d,%d,%d) = %d, want %d", r, g, b, got, want)
				}
			}
		}
	}
}

func TestNearestExactStandardColors(t *testing.T) {
	for i, c := range standard16 {
		if got := Nearest(c); got != Color256(i) {
			t.Fatalf("Nearest(%+v) = %d, want %d", c, got, i)
		}
	}
}

func TestNearestExactMatchEarlyExit(t *testing.T) {
	// (0,0,128) is exactly standard16[4] and appears nowhere else in the
	// table, so this exercises the exact-match early-exit path.
	if got := Nearest(RGB{0, 0, 128}); got != 4 {
		t.Fatalf("expected exact match index 4, got %d", got)
	}
}

func TestLookupValidIndex(t *testing.T) {
	rgb, err := Lookup(9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rgb != (RGB{255, 0, 0}) {
		t.Fatalf("Lookup(9) = %+v, want %+v", rgb, RGB{255, 0, 0})
	}
}

func TestLookupOutOfRange(t *testing.T) {
	for _, idx := range []int{-1, 256} {
		_, err := Lookup(idx)
		if err == nil {
			t.Fatalf("expected error for index %d", idx)
		}
		var pe *Error
		if !errors.As(err, &pe) || pe.Kind != InvalidPaletteIndex {
			t.Fatalf("expected InvalidPaletteIndex error, got %v", err)
		}
	}
}
