package pdf

import (
	"strings"

	"github.com/flanksource/wardclerk/api"
)

// FontStyle uses the gofpdf style letters.
type FontStyle string

const (
	Regular    FontStyle = ""
	Bold       FontStyle = "B"
	Italic     FontStyle = "I"
	BoldItalic FontStyle = "BI"
)

// Font selects family, style and size (points).
type Font struct {
	Family string
	Style  FontStyle
	Size   float64
}

// Canvas is the rendering surface the engine draws on. Coordinates are in
// millimetres from the top-left corner; y passed to DrawText is a baseline.
// Implementations own byte encoding, the engine never does.
type Canvas interface {
	MeasureWidth(text string, font Font) float64
	WrapToWidth(text string, maxWidth float64, font Font) []string

	DrawText(text string, x, y float64, font Font)
	DrawLine(x1, y1, x2, y2 float64)
	DrawRect(x, y, w, h float64, fill bool)
	DrawImage(name string, data []byte, x, y, w, h float64) error

	SetTextColor(c api.Color)
	SetDrawColor(c api.Color)
	SetFillColor(c api.Color)

	NewPage()
	PageCount() int
	SetPage(n int)
	PageSize() (width, height float64)
}

// PageSize names a supported paper size.
type PageSize string

const (
	A4     PageSize = "A4"
	Letter PageSize = "Letter"
)

// Dimensions returns the portrait size in millimetres. Unknown sizes are A4.
func (p PageSize) Dimensions() (width, height float64) {
	if p == Letter {
		return 215.9, 279.4
	}
	return 210, 297
}

// ParsePageSize accepts "a4" and "letter" in any case.
func ParsePageSize(s string) PageSize {
	if strings.EqualFold(strings.TrimSpace(s), string(Letter)) {
		return Letter
	}
	return A4
}
