package raster

// Resize scales a bitmap to w x h using nearest-neighbor sampling:
// destination pixel (x,y) samples source pixel
// (min(floor(x*srcW/dstW), srcW-1), min(floor(y*srcH/dstH), srcH-1)).
// A zero destination dimension yields an empty bitmap.
func Resize(b Bitmap, w, h int) Bitmap {
	if w <= 0 || h <= 0 || b.Empty() {
		return Bitmap{BytesPerPixel: 4}
	}
	out := NewBitmap(w, h)
	srcW, srcH := b.Width, b.Height
	for y := 0; y < h; y++ {
		sy := y * srcH / h
		if sy >= srcH {
			sy = srcH - 1
		}
		for x := 0; x < w; x++ {
			sx := x * srcW / w
			if sx >= srcW {
				sx = srcW - 1
			}
			p := b.At(sx, sy)
			off := (y*w + x) * 4
			out.Pix[off] = p.R
			out.Pix[off+1] = p.G
			out.Pix[off+2] = p.B
			out.Pix[off+3] = p.A
		}
	}
	return out
}
