package colorutil

import "math"

// BlendOver composites fg at the given opacity over bg:
// result = fg*alpha + bg*(1-alpha), per channel.
func BlendOver(fg RGB, alpha float64, bg RGB) RGB {
	return MixSRGB(fg, alpha, bg, 1-alpha)
}

// MixSRGB returns c1*p1 + c2*p2 per channel. The proportions are used as
// given; they are not required to sum to 1. Mixing happens on the
// gamma-encoded values, not in linear light.
func MixSRGB(c1 RGB, p1 float64, c2 RGB, p2 float64) RGB {
	return RGB{
		R: roundChannel(float64(c1.R)*p1 + float64(c2.R)*p2),
		G: roundChannel(float64(c1.G)*p1 + float64(c2.G)*p2),
		B: roundChannel(float64(c1.B)*p1 + float64(c2.B)*p2),
	}
}

// roundChannel rounds half away from zero and clamps to [0,255].
func roundChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
