package pdf

import (
	"strings"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
)

// OpKind names a recorded drawing operation
type OpKind string

const (
	OpText  OpKind = "text"
	OpLine  OpKind = "line"
	OpRect  OpKind = "rect"
	OpImage OpKind = "image"
)

// Op is one drawing call captured by a Recorder
type Op struct {
	Page  int
	Kind  OpKind
	Text  string
	Font  Font
	X, Y  float64
	X2    float64
	Y2    float64
	W, H  float64
	Fill  bool
	Color api.Color
}

// Recorder is a Canvas that keeps every call in memory with fixed-width
// metrics. It backs dry runs and layout tests.
type Recorder struct {
	Ops []Op

	// CharWidth is millimetres per rune per point of font size
	CharWidth float64

	width, height float64
	page, pages   int
	text          api.Color
}

// NewRecorder creates an empty recorder with the given page size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{CharWidth: 0.18, width: width, height: height}
}

// MeasureWidth implements Canvas
func (r *Recorder) MeasureWidth(text string, font Font) float64 {
	size := font.Size
	if size <= 0 {
		size = 10
	}
	return float64(utf8.RuneCountInString(text)) * size * r.CharWidth
}

// WrapToWidth implements Canvas
func (r *Recorder) WrapToWidth(text string, maxWidth float64, font Font) []string {
	return WrapText(text, maxWidth, func(s string) float64 {
		return r.MeasureWidth(s, font)
	})
}

// DrawText implements Canvas
func (r *Recorder) DrawText(text string, x, y float64, font Font) {
	r.Ops = append(r.Ops, Op{Page: r.page, Kind: OpText, Text: text, Font: font, X: x, Y: y, Color: r.text})
}

// DrawLine implements Canvas
func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	r.Ops = append(r.Ops, Op{Page: r.page, Kind: OpLine, X: x1, Y: y1, X2: x2, Y2: y2})
}

// DrawRect implements Canvas
func (r *Recorder) DrawRect(x, y, w, h float64, fill bool) {
	r.Ops = append(r.Ops, Op{Page: r.page, Kind: OpRect, X: x, Y: y, W: w, H: h, Fill: fill})
}

// DrawImage implements Canvas
func (r *Recorder) DrawImage(name string, data []byte, x, y, w, h float64) error {
	r.Ops = append(r.Ops, Op{Page: r.page, Kind: OpImage, Text: name, X: x, Y: y, W: w, H: h})
	return nil
}

// SetTextColor implements Canvas
func (r *Recorder) SetTextColor(c api.Color) { r.text = c }

// SetDrawColor implements Canvas
func (r *Recorder) SetDrawColor(api.Color) {}

// SetFillColor implements Canvas
func (r *Recorder) SetFillColor(api.Color) {}

// NewPage implements Canvas
func (r *Recorder) NewPage() {
	r.pages++
	r.page = r.pages
}

// PageCount implements Canvas
func (r *Recorder) PageCount() int { return r.pages }

// SetPage implements Canvas
func (r *Recorder) SetPage(n int) {
	if n >= 1 && n <= r.pages {
		r.page = n
	}
}

// PageSize implements Canvas
func (r *Recorder) PageSize() (float64, float64) { return r.width, r.height }

// TextOps returns the text operations, optionally limited to one page.
// Page 0 means all pages.
func (r *Recorder) TextOps(page int) []Op {
	return lo.Filter(r.Ops, func(op Op, _ int) bool {
		return op.Kind == OpText && (page == 0 || op.Page == page)
	})
}

// Texts returns the drawn strings in drawing order
func (r *Recorder) Texts(page int) []string {
	return lo.Map(r.TextOps(page), func(op Op, _ int) string { return op.Text })
}

// String joins every drawn string, one per line
func (r *Recorder) String() string {
	return strings.Join(r.Texts(0), "\n")
}
