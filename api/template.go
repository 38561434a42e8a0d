package api

import (
	"strconv"
	"strings"
)

// Template is the ward branding stamped on every page.
type Template struct {
	WardName    string `json:"wardName" yaml:"wardName"`
	StakeName   string `json:"stakeName" yaml:"stakeName"`
	Country     string `json:"country" yaml:"country"`
	HeaderColor string `json:"headerColor" yaml:"headerColor"`
	AccentColor string `json:"accentColor" yaml:"accentColor"`
	LogoURL     string `json:"logoUrl,omitempty" yaml:"logoUrl,omitempty"`
	FooterText  string `json:"footerText" yaml:"footerText"`

	// Logo holds the downloaded LogoURL bytes, if any.
	Logo []byte `json:"-" yaml:"-"`
}

const (
	defaultHeaderColor = "#1f3a5f"
	defaultAccentColor = "#2b6cb0"
)

// IsSpanish reports whether locale selects the Spanish label set.
func IsSpanish(locale string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(locale)), "es")
}

// DefaultTemplate is the fixed fallback used when the settings source is
// unavailable. Only the locale varies.
func DefaultTemplate(locale string) Template {
	if IsSpanish(locale) {
		return Template{
			WardName:    "Barrio",
			StakeName:   "Estaca",
			HeaderColor: defaultHeaderColor,
			AccentColor: defaultAccentColor,
			FooterText:  "Documento generado automáticamente",
		}
	}
	return Template{
		WardName:    "Ward",
		StakeName:   "Stake",
		HeaderColor: defaultHeaderColor,
		AccentColor: defaultAccentColor,
		FooterText:  "Generated automatically",
	}
}

// WithDefaults fills blank fields from DefaultTemplate(locale).
func (t Template) WithDefaults(locale string) Template {
	d := DefaultTemplate(locale)
	if strings.TrimSpace(t.WardName) == "" {
		t.WardName = d.WardName
	}
	if strings.TrimSpace(t.StakeName) == "" {
		t.StakeName = d.StakeName
	}
	if _, ok := ParseColor(t.HeaderColor); !ok {
		t.HeaderColor = d.HeaderColor
	}
	if _, ok := ParseColor(t.AccentColor); !ok {
		t.AccentColor = d.AccentColor
	}
	if t.FooterText == "" {
		t.FooterText = d.FooterText
	}
	return t
}

// Region is the "stakeName, country" line used by the header band and footer.
func (t Template) Region() string {
	if t.Country == "" {
		return t.StakeName
	}
	if t.StakeName == "" {
		return t.Country
	}
	return t.StakeName + ", " + t.Country
}

// Color is an 8-bit RGB colour.
type Color struct {
	R, G, B int
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
	Gray  = Color{110, 110, 110}
)

var namedColors = map[string]Color{
	"black":  Black,
	"white":  White,
	"gray":   Gray,
	"grey":   Gray,
	"navy":   {31, 58, 95},
	"blue":   {43, 108, 176},
	"teal":   {20, 120, 120},
	"green":  {39, 103, 73},
	"red":    {155, 44, 44},
	"maroon": {110, 30, 40},
	"purple": {85, 60, 154},
	"gold":   {183, 121, 31},
}

// ParseColor accepts #rrggbb, #rgb or one of the named colours.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, false
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, true
}

// MustColor parses s and falls back to def when s is not a colour.
func MustColor(s string, def Color) Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return def
}
