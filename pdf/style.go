package pdf

import (
	"github.com/flanksource/wardclerk/api"
)

// Theme holds the fonts and colours widgets draw with.
type Theme struct {
	Family   string
	BaseSize float64
	Text     api.Color
	Muted    api.Color
	Accent   api.Color
	Header   api.Color
	Stripe   api.Color
	Rule     api.Color
	// Locale is used for case mapping of section titles.
	Locale string
}

// DefaultTheme is Helvetica 10pt with the default template colours.
func DefaultTheme() Theme {
	return ThemeFromTemplate(api.DefaultTemplate("en"), "en")
}

// ThemeFromTemplate derives the theme from the ward branding.
func ThemeFromTemplate(t api.Template, locale string) Theme {
	return Theme{
		Family:   "Helvetica",
		BaseSize: 10,
		Text:     api.Color{R: 33, G: 33, B: 33},
		Muted:    api.Gray,
		Accent:   api.MustColor(t.AccentColor, api.Color{R: 43, G: 108, B: 176}),
		Header:   api.MustColor(t.HeaderColor, api.Color{R: 31, G: 58, B: 95}),
		Stripe:   api.Color{R: 242, G: 245, B: 249},
		Rule:     api.Color{R: 200, G: 200, B: 200},
		Locale:   locale,
	}
}
