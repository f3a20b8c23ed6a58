package palette

import colorful "github.com/lucasb-eyer/go-colorful"

// RGBToColorful converts an RGB triple to a go-colorful Color in the 0..1
// linear-ish RGB space that library expects for its Lab/Luv distance work.
func RGBToColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// NearestPerceptual matches c to the palette entry with the smallest CIE Lab
// distance rather than the default Euclidean RGB distance used by Nearest.
// raster.Options.PerceptualMatch routes rendering through this instead of
// Nearest. Ties break on lowest index.
func NearestPerceptual(c RGB) Color256 {
	target := RGBToColorful(c)
	best := Color256(0)
	bestDist := -1.0
	for i, p := range Palette {
		d := target.DistanceLab(RGBToColorful(p))
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = Color256(i)
		}
	}
	return best
}
