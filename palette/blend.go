package palette

import "math"

// Mix linearly interpolates a toward b: round(a*(1-t) + b*t). t is clamped
// to [0,1] first, so Mix(a,b,0)==a and Mix(a,b,1)==b exactly.
func Mix(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: roundByte(float64(a.R)*(1-t) + float64(b.R)*t),
		G: roundByte(float64(a.G)*(1-t) + float64(b.G)*t),
		B: roundByte(float64(a.B)*(1-t) + float64(b.B)*t),
	}
}

// Over composites a straight-alpha src color onto an opaque background and
// returns the resulting opaque RGB. alpha is 0..1.
func Over(src RGB, alpha float64, bg RGB) RGB {
	if alpha >= 1 {
		return src
	}
	if alpha <= 0 {
		return bg
	}
	return Mix(bg, src, alpha)
}

// OverRGBA composites a straight-alpha src pixel (alpha 0..255) onto an
// opaque background RGB.
func OverRGBA(src RGBA, bg RGB) RGB {
	return Over(RGB{src.R, src.G, src.B}, float64(src.A)/255, bg)
}

// OverPremultiplied performs Porter-Duff source-over with premultiplied
// output, compositing a straight-alpha src onto a straight-alpha dst.
func OverPremultiplied(src, dst RGBA) RGBA {
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	if outA <= 0 {
		return RGBA{0, 0, 0, 0}
	}
	mix := func(sc, dc uint8) uint8 {
		s := float64(sc) / 255 * sa
		d := float64(dc) / 255 * da * (1 - sa)
		return roundByte((s + d) * 255)
	}
	return RGBA{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: roundByte(outA * 255),
	}
}

// Saturate clamps an arithmetic channel result into 0..255.
func Saturate(v int) uint8 {
	return uint8(math.Max(0, math.Min(255, float64(v))))
}
