package raster

import "termgfx/palette"

// floydSteinberg runs error-diffusion dithering over a resolved RGB buffer
// in scan order, before palette mapping. For each pixel it finds the
// nearest palette entry, computes the residual, and distributes fractions
// 7/16, 3/16, 5/16, 1/16 to its unvisited neighbors, clamping each channel
// to [0,255] after accumulation. The source buffer is mutated in place;
// callers pass a working copy, never the caller's original Bitmap data.
func floydSteinberg(buf []palette.RGB, w, h int) {
	at := func(x, y int) int { return y*w + x }

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := at(x, y)
			old := buf[idx]
			nearest := palette.Palette[palette.Nearest(old)]

			er := int(old.R) - int(nearest.R)
			eg := int(old.G) - int(nearest.G)
			eb := int(old.B) - int(nearest.B)

			buf[idx] = nearest

			distribute(buf, w, h, x+1, y, er, eg, eb, 7, 16)
			distribute(buf, w, h, x-1, y+1, er, eg, eb, 3, 16)
			distribute(buf, w, h, x, y+1, er, eg, eb, 5, 16)
			distribute(buf, w, h, x+1, y+1, er, eg, eb, 1, 16)
		}
	}
}

func distribute(buf []palette.RGB, w, h, x, y, er, eg, eb, num, den int) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	idx := y*w + x
	p := buf[idx]
	buf[idx] = palette.RGB{
		R: palette.Saturate(int(p.R) + er*num/den),
		G: palette.Saturate(int(p.G) + eg*num/den),
		B: palette.Saturate(int(p.B) + eb*num/den),
	}
}
