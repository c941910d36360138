package colorutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrFormat is returned when a color literal is not a 6-digit hex string.
var ErrFormat = errors.New("invalid hex color")

// RGB is an opaque sRGB color with 8-bit gamma-encoded channels.
type RGB struct {
	R, G, B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// ParseHex parses "#rrggbb" or "rrggbb" (either case) into an RGB.
// Anything else returns an error wrapping ErrFormat.
func ParseHex(hex string) (RGB, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q: want 6 hex digits, got %d", ErrFormat, hex, len(digits))
	}

	var ch [3]uint8
	for i := range ch {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrFormat, hex)
		}
		ch[i] = uint8(v)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Only use it for color literals compiled into the program.
func MustParseHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as lowercase #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String formats the color as a channel tuple, e.g. "(17, 24, 39)".
func (c RGB) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}
