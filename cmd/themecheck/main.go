package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/marcus/themecheck/internal/checker"
	"github.com/marcus/themecheck/internal/theme"
)

// Version is set at build time via ldflags
var Version = ""

var (
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("themecheck version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	os.Exit(run(os.Stdout, os.Stderr, logger, theme.Checks(), checker.DefaultThreshold))
}

// run evaluates checks, writes the report and returns the process exit code.
func run(stdout, stderr io.Writer, logger *slog.Logger, checks []checker.Check, threshold float64) int {
	res := checker.Runner{Threshold: threshold, Logger: logger}.Run(checks)

	if err := checker.Report(stdout, stderr, res); err != nil {
		logger.Error("failed to write report", "err", err)
		return 1
	}
	if !res.Passed() {
		logger.Debug("contrast check failed", "err", res.Err())
		return 1
	}
	return 0
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	// Fall back to VCS info
	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: themecheck [options]\n\n")
		fmt.Fprintf(os.Stderr, "Checks the light and dark theme palettes against the WCAG AA contrast ratio.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
}
