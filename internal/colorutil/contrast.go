package colorutil

import "math"

// Linearize maps an 8-bit sRGB channel to linear light in [0,1] using the
// piecewise sRGB transfer function.
func Linearize(channel uint8) float64 {
	v := float64(channel) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance (0 black, 1 white).
func RelativeLuminance(c RGB) float64 {
	r := Linearize(c.R)
	g := Linearize(c.G)
	b := Linearize(c.B)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG 2.x contrast ratio between two colors (1 to 21).
// Argument order does not matter.
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}
