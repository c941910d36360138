package theme

import "github.com/marcus/themecheck/internal/colorutil"

// ColorPalette holds the theme colors that are checked for contrast.
// Overlay colors are stored opaque; their opacity lives in the Theme.
type ColorPalette struct {
	// Text colors
	TextPrimary  string
	TextMuted    string
	TextInactive string
	Link         string

	// Background colors
	BgPrimary string
	BgCode    string
	BgPre     string
	FgPre     string

	// Tab strip
	TabStrip   string
	TabOverlay string

	// Dialogs
	Surface string
	Accent  string
}

// Theme is a named palette plus the composite parameters used to derive
// backgrounds that are not literal colors.
type Theme struct {
	Name        string
	DisplayName string
	Colors      ColorPalette

	// TabOverlayAlpha is the opacity of TabOverlay over TabStrip.
	TabOverlayAlpha float64
	// TitlebarAccent is the share of Accent in the dialog titlebar tint;
	// the rest is Surface.
	TitlebarAccent float64
}

// Built-in themes
var (
	LightTheme = Theme{
		Name:        "light",
		DisplayName: "Light",
		Colors: ColorPalette{
			TextPrimary: "#111827",
			TextMuted:   "#6b7280",
			Link:        "#2563eb",

			BgPrimary: "#ffffff",
			BgCode:    "#f3f4f6",
			BgPre:     "#0b1220",
			FgPre:     "#e5e7eb",
		},
	}

	DarkTheme = Theme{
		Name:        "dark",
		DisplayName: "Dark",
		Colors: ColorPalette{
			TextPrimary:  "#e5e7eb",
			TextMuted:    "#94a3b8",
			TextInactive: "#cbd5e1",
			Link:         "#60a5fa",

			BgPrimary: "#0b1220",

			TabStrip:   "#0a111d",
			TabOverlay: "#ffffff",

			Surface: "#0c1526",
			Accent:  "#60a5fa",
		},
		TabOverlayAlpha: 0.04,
		TitlebarAccent:  0.14,
	}
)

// TabBackground is the tab fill: TabOverlay at TabOverlayAlpha over TabStrip.
func (t Theme) TabBackground() colorutil.RGB {
	return colorutil.BlendOver(
		colorutil.MustParseHex(t.Colors.TabOverlay),
		t.TabOverlayAlpha,
		colorutil.MustParseHex(t.Colors.TabStrip),
	)
}

// TitlebarBackground is the dialog titlebar: an sRGB mix of Accent and Surface.
func (t Theme) TitlebarBackground() colorutil.RGB {
	return colorutil.MixSRGB(
		colorutil.MustParseHex(t.Colors.Accent), t.TitlebarAccent,
		colorutil.MustParseHex(t.Colors.Surface), 1-t.TitlebarAccent,
	)
}
