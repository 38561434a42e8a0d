package pdf

import (
	"github.com/flanksource/wardclerk/api"
)

// Cursor is the mutable positioning state of one composition pass. Y is the
// baseline of the next line. A Cursor must not be shared between documents.
type Cursor struct {
	Y            float64
	MarginX      float64
	TopMargin    float64
	BottomMargin float64
	PageWidth    float64
	PageHeight   float64
	LineHeight   float64
	Accent       api.Color
}

const (
	DefaultMarginX      = 18.0
	DefaultTopMargin    = 34.0
	DefaultBottomMargin = 22.0
	DefaultLineHeight   = 5.0
)

// NewCursor returns a cursor at the top margin of a page of the given size.
func NewCursor(pageWidth, pageHeight float64) *Cursor {
	c := &Cursor{
		MarginX:      DefaultMarginX,
		TopMargin:    DefaultTopMargin,
		BottomMargin: DefaultBottomMargin,
		PageWidth:    pageWidth,
		PageHeight:   pageHeight,
		LineHeight:   DefaultLineHeight,
	}
	c.Reset()
	return c
}

// ContentWidth is the page width between the side margins.
func (c *Cursor) ContentWidth() float64 {
	return c.PageWidth - 2*c.MarginX
}

// Bottom is the lowest y content may reach.
func (c *Cursor) Bottom() float64 {
	return c.PageHeight - c.BottomMargin
}

// Usable is the content height of an empty page.
func (c *Cursor) Usable() float64 {
	return c.Bottom() - c.TopMargin
}

// Fits reports whether h more millimetres fit on the current page.
func (c *Cursor) Fits(h float64) bool {
	return c.Y+h <= c.Bottom()
}

// Reset moves to the top margin, as after a page break.
func (c *Cursor) Reset() {
	c.Y = c.TopMargin
}

// Right is the x of the right margin.
func (c *Cursor) Right() float64 {
	return c.PageWidth - c.MarginX
}
