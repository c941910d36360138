// Package theme defines the built-in light and dark palettes and the
// contrast checks run against them.
package theme

import (
	"github.com/marcus/themecheck/internal/checker"
	"github.com/marcus/themecheck/internal/colorutil"
)

// Checks returns the full check list: the light theme's pairs followed by
// the dark theme's.
func Checks() []checker.Check {
	return append(LightTheme.lightChecks(), DarkTheme.darkChecks()...)
}

func (t Theme) lightChecks() []checker.Check {
	c := t.Colors
	bg := hex(c.BgPrimary)
	return []checker.Check{
		{Label: "Light: body text", Foreground: hex(c.TextPrimary), Background: bg},
		{Label: "Light: link on bg", Foreground: hex(c.Link), Background: bg},
		{Label: "Light: muted on bg", Foreground: hex(c.TextMuted), Background: bg},
		{Label: "Light: code fg on code bg", Foreground: hex(c.TextPrimary), Background: hex(c.BgCode)},
		{Label: "Light: pre fg on pre bg", Foreground: hex(c.FgPre), Background: hex(c.BgPre)},
	}
}

func (t Theme) darkChecks() []checker.Check {
	c := t.Colors
	bg := hex(c.BgPrimary)
	tab := t.TabBackground()
	surface := hex(c.Surface)
	return []checker.Check{
		{Label: "Dark: body text", Foreground: hex(c.TextPrimary), Background: bg},
		{Label: "Dark: muted on bg", Foreground: hex(c.TextMuted), Background: bg},
		{Label: "Dark: link on bg", Foreground: hex(c.Link), Background: bg},
		{Label: "Dark: tab fg on tab bg", Foreground: hex(c.TextPrimary), Background: tab},
		{Label: "Dark: tab inactive fg on tab bg", Foreground: hex(c.TextInactive), Background: tab},
		{Label: "Dark: dialog body fg on surface", Foreground: hex(c.TextPrimary), Background: surface},
		{Label: "Dark: dialog body muted on surface", Foreground: hex(c.TextMuted), Background: surface},
		{Label: "Dark: dialog title fg on titlebar", Foreground: hex(c.TextPrimary), Background: t.TitlebarBackground()},
	}
}

func hex(s string) colorutil.RGB {
	return colorutil.MustParseHex(s)
}
