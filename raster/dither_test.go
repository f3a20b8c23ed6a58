package raster

import (
	"testing"

	"termgfx/palette"
)

func TestFloydSteinbergSkipsOutOfBoundsNeighbors(t *testing.T) {
	buf := []palette.RGB{{100, 100, 100}}
	// A single pixel has no in-bounds neighbors; this must not panic or
	// leave the pixel unmapped to a palette entry.
	floydSteinberg(buf, 1, 1)
	if buf[0] != palette.Palette[palette.Nearest(palette.RGB{100, 100, 100})] {
		t.Fatalf("expected pixel mapped to nearest palette entry, got %+v", buf[0])
	}
}

func TestFloydSteinbergDistributesResidual(t *testing.T) {
	// Two pixels in a row: a color that isn't an exact palette hit should
	// leave a residual distributed onto its right neighbor.
	buf := []palette.RGB{{130, 5, 5}, {0, 0, 0}}
	before := buf[1]
	floydSteinberg(buf, 2, 1)
	if buf[1] == before {
		t.Fatalf("expected neighbor to receive diffused error, unchanged: %+v", buf[1])
	}
}
