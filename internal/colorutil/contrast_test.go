package colorutil

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestLinearize(t *testing.T) {
	tests := []struct {
		channel uint8
		want    float64
	}{
		{0, 0},
		{10, 0.003035269835488375}, // low-end linear branch
		{11, 0.003346535763899161}, // first value on the power curve
		{255, 1},
	}
	for _, tt := range tests {
		got := Linearize(tt.channel)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Linearize(%d) = %v, want %v", tt.channel, got, tt.want)
		}
	}
}

func TestLinearizeMatchesColorful(t *testing.T) {
	for ch := 0; ch <= 255; ch++ {
		c := colorful.Color{R: float64(ch) / 255.0}
		want, _, _ := c.LinearRgb()
		if got := Linearize(uint8(ch)); math.Abs(got-want) > 1e-12 {
			t.Errorf("Linearize(%d) = %v, colorful says %v", ch, got, want)
		}
	}
}

func TestRelativeLuminance(t *testing.T) {
	if got := RelativeLuminance(White); got != 1.0 {
		t.Errorf("RelativeLuminance(white) = %v, want 1", got)
	}
	if got := RelativeLuminance(Black); got != 0.0 {
		t.Errorf("RelativeLuminance(black) = %v, want 0", got)
	}

	tests := []struct {
		c    RGB
		want float64
	}{
		{RGB{255, 0, 0}, 0.2126},
		{RGB{0, 255, 0}, 0.7152},
		{RGB{0, 0, 255}, 0.0722},
		{RGB{128, 128, 128}, 0.21586050011389923},
	}
	for _, tt := range tests {
		if got := RelativeLuminance(tt.c); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("RelativeLuminance(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	if got := ContrastRatio(White, Black); got != 21.0 {
		t.Errorf("ContrastRatio(white, black) = %v, want 21", got)
	}
	if got := ContrastRatio(Black, White); got != 21.0 {
		t.Errorf("ContrastRatio(black, white) = %v, want 21", got)
	}

	tests := []struct {
		name   string
		fg, bg RGB
		want   float64
	}{
		{"slate on white", RGB{17, 24, 39}, White, 17.73971700407407},
		{"gray 500 on white", RGB{107, 114, 128}, White, 4.834490081424352},
		{"just below AA", RGB{119, 119, 119}, White, 4.478089453577214},
		{"just above AA", RGB{118, 118, 118}, White, 4.542224959605253},
		{"light on tab composite", RGB{229, 231, 235}, RGB{20, 27, 38}, 13.96584518906847},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContrastRatio(tt.fg, tt.bg); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ContrastRatio(%v, %v) = %v, want %v", tt.fg, tt.bg, got, tt.want)
			}
		})
	}
}

func TestContrastRatioProperties(t *testing.T) {
	colors := []RGB{
		Black, White,
		{17, 24, 39}, {37, 99, 235}, {107, 114, 128}, {243, 244, 246},
		{11, 18, 32}, {148, 163, 184}, {96, 165, 250}, {1, 1, 1}, {254, 0, 127},
	}
	for _, a := range colors {
		if got := ContrastRatio(a, a); got != 1.0 {
			t.Errorf("ContrastRatio(%v, %v) = %v, want 1", a, a, got)
		}
		for _, b := range colors {
			ab := ContrastRatio(a, b)
			if ba := ContrastRatio(b, a); ab != ba {
				t.Errorf("ContrastRatio not symmetric for %v, %v: %v vs %v", a, b, ab, ba)
			}
			if ab < 1 || ab > 21 {
				t.Errorf("ContrastRatio(%v, %v) = %v, out of [1, 21]", a, b, ab)
			}
		}
	}
}
