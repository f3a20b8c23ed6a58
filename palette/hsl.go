package palette

import "math"

// RGBToHSL converts using the standard formula. Achromatic RGB maps to
// h=0, s=0.
func RGBToHSL(c RGB) HSL {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{0, 0, l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{h, s * 100, l * 100}
}

// HSLToRGB converts using the standard formula.
func HSLToRGB(hsl HSL) RGB {
	h := math.Mod(hsl.H, 360)
	if h < 0 {
		h += 360
	}
	s := clamp01(hsl.S / 100)
	l := clamp01(hsl.L / 100)

	if s == 0 {
		v := roundByte(l * 255)
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hk := h / 360
	r := hueToChannel(p, q, hk+1.0/3)
	g := hueToChannel(p, q, hk)
	b := hueToChannel(p, q, hk-1.0/3)

	return RGB{roundByte(r * 255), roundByte(g * 255), roundByte(b * 255)}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func roundByte(v float64) uint8 {
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}
