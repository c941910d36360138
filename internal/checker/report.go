package checker

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marcus/themecheck/internal/styles"
)

// Report writes one line per check and the worst-case summary to stdout.
// A passing run ends with a PASS line on stdout; a failing run ends with a
// FAIL line on stderr. Every line is written before the status line.
func Report(stdout, stderr io.Writer, r Result) error {
	for _, l := range r.Lines {
		if _, err := fmt.Fprintln(stdout, FormatLine(l)); err != nil {
			return fmt.Errorf("write check line: %w", err)
		}
	}

	if _, err := fmt.Fprintf(stdout, "\nWorst-case contrast: %.2f:1 (%s)\n", r.Worst.Ratio, r.Worst.Label); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	threshold := FormatThreshold(r.Threshold)
	if r.Passed() {
		st := styles.New(stdout)
		msg := fmt.Sprintf("PASS: All checked pairs meet or exceed %s:1", threshold)
		if _, err := fmt.Fprintln(stdout, st.Pass.Render(msg)); err != nil {
			return fmt.Errorf("write status: %w", err)
		}
		return nil
	}

	st := styles.New(stderr)
	msg := fmt.Sprintf("FAIL: Minimum contrast %.2f:1 is below AA threshold %s:1", r.Worst.Ratio, threshold)
	if _, err := fmt.Fprintln(stderr, st.Fail.Render(msg)); err != nil {
		return fmt.Errorf("write status: %w", err)
	}
	return nil
}

// FormatLine renders an evaluated check, e.g.
// "Light: body text: fg (17, 24, 39) on bg (255, 255, 255) => contrast 17.74:1".
func FormatLine(l Line) string {
	return fmt.Sprintf("%s: fg %s on bg %s => contrast %.2f:1", l.Label, l.Foreground, l.Background, l.Ratio)
}

// FormatThreshold prints a threshold in its shortest form, keeping one
// decimal for whole numbers ("4.5", "3.0").
func FormatThreshold(t float64) string {
	s := strconv.FormatFloat(t, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
