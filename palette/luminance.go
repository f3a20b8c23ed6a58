package palette

import "math"

// RelativeLuminance computes sRGB relative luminance: each channel is
// gamma-decoded with the standard piecewise curve, then combined with
// Rec.709 weights (0.2126, 0.7152, 0.0722). Result is in 0..1.
func RelativeLuminance(c RGB) float64 {
	r := srgbDecode(float64(c.R) / 255)
	g := srgbDecode(float64(c.G) / 255)
	b := srgbDecode(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func srgbDecode(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// PerceptualLuminance is the BT.601 weighted luminance used by the ASCII
// and braille renderer modes, in 0..1.
func PerceptualLuminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
