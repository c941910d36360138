// Package colorutil implements the sRGB colorimetry used by the contrast
// checks: hex parsing, linearization, relative luminance, WCAG contrast
// ratios, and compositing of derived colors.
//
// All functions are pure and operate on value types.
package colorutil
