// Package checker evaluates foreground/background color pairs against a
// minimum WCAG contrast ratio and reports the outcome.
package checker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/marcus/themecheck/internal/colorutil"
)

// WCAG 2.x minimum contrast ratios.
const (
	ThresholdAA      = 4.5 // normal text
	ThresholdAALarge = 3.0 // large text and UI components
	ThresholdAAA     = 7.0

	DefaultThreshold = ThresholdAA
)

// initialWorst is the ratio reported when no check ran.
const initialWorst = 99

// ErrBelowThreshold is returned by Result.Err when the worst-case ratio is
// under the threshold.
var ErrBelowThreshold = errors.New("contrast below threshold")

// Check is one foreground/background pair to verify.
type Check struct {
	Label      string
	Foreground colorutil.RGB
	Background colorutil.RGB
}

// Line is an evaluated Check.
type Line struct {
	Check
	Ratio float64
}

// Evaluate computes the contrast ratio of the pair.
func (c Check) Evaluate() Line {
	return Line{Check: c, Ratio: colorutil.ContrastRatio(c.Foreground, c.Background)}
}

// Result is the outcome of a run. Lines keep the input order.
type Result struct {
	Lines     []Line
	Worst     Line
	Threshold float64
}

// Passed reports whether the worst-case ratio meets the threshold.
func (r Result) Passed() bool {
	return r.Worst.Ratio >= r.Threshold
}

// Err returns nil when the run passed, otherwise an error wrapping
// ErrBelowThreshold that names the worst pair.
func (r Result) Err() error {
	if r.Passed() {
		return nil
	}
	return fmt.Errorf("%w: %.2f:1 (%s) < %s:1",
		ErrBelowThreshold, r.Worst.Ratio, r.Worst.Label, FormatThreshold(r.Threshold))
}

// Runner evaluates check lists.
type Runner struct {
	Threshold float64
	Logger    *slog.Logger // nil discards
}

// Run evaluates checks in order against threshold with no logging.
func Run(checks []Check, threshold float64) Result {
	return Runner{Threshold: threshold}.Run(checks)
}

// Run evaluates every check and tracks the minimum ratio. On ties the
// earliest check stays the worst.
func (rn Runner) Run(checks []Check) Result {
	logger := rn.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	res := Result{
		Lines:     make([]Line, 0, len(checks)),
		Worst:     Line{Ratio: initialWorst},
		Threshold: rn.Threshold,
	}
	for _, c := range checks {
		line := c.Evaluate()
		logger.Debug("contrast check",
			"label", c.Label,
			"fg", c.Foreground.Hex(),
			"bg", c.Background.Hex(),
			"ratio", line.Ratio)
		res.Lines = append(res.Lines, line)
		if line.Ratio < res.Worst.Ratio {
			res.Worst = line
		}
	}

	logger.Debug("contrast run complete",
		"checks", len(checks),
		"worst", res.Worst.Label,
		"ratio", res.Worst.Ratio,
		"passed", res.Passed())
	return res
}
