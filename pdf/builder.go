package pdf

import (
	"fmt"

	"github.com/flanksource/commons/logger"
	"github.com/flanksource/wardclerk/api"
)

var log = logger.GetLogger("pdf")

// Widget is a layout primitive drawn at the builder's cursor.
type Widget interface {
	// Draw draws the widget and advances the cursor past it
	Draw(b *Builder) error
}

// Builder drives a Canvas with a single Cursor.
type Builder struct {
	canvas    Canvas
	cursor    *Cursor
	theme     Theme
	debugMode bool
	breaks    int
}

// BuilderOption is a function that configures a Builder
type BuilderOption func(*Builder)

// WithDebug outlines the content area of every page
func WithDebug(enabled bool) BuilderOption {
	return func(b *Builder) {
		b.debugMode = enabled
	}
}

// WithTheme sets fonts and colours
func WithTheme(theme Theme) BuilderOption {
	return func(b *Builder) {
		b.theme = theme
	}
}

// WithMargins overrides the side, top and bottom margins
func WithMargins(x, top, bottom float64) BuilderOption {
	return func(b *Builder) {
		b.cursor.MarginX = x
		b.cursor.TopMargin = top
		b.cursor.BottomMargin = bottom
	}
}

// WithLineHeight sets the line height used at the base font size
func WithLineHeight(h float64) BuilderOption {
	return func(b *Builder) {
		b.cursor.LineHeight = h
	}
}

// NewBuilder starts a composition on canvas, adding the first page if the
// canvas has none.
func NewBuilder(canvas Canvas, opts ...BuilderOption) *Builder {
	w, h := canvas.PageSize()
	b := &Builder{
		canvas: canvas,
		cursor: NewCursor(w, h),
		theme:  DefaultTheme(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.cursor.Accent = b.theme.Accent
	if canvas.PageCount() == 0 {
		canvas.NewPage()
	}
	b.cursor.Reset()
	b.startPage()
	return b
}

// Canvas returns the underlying surface
func (b *Builder) Canvas() Canvas {
	return b.canvas
}

// Cursor returns the positioning state
func (b *Builder) Cursor() *Cursor {
	return b.cursor
}

// Theme returns the active theme
func (b *Builder) Theme() Theme {
	return b.theme
}

// PageBreaks counts the breaks taken so far
func (b *Builder) PageBreaks() int {
	return b.breaks
}

// EnsureSpace starts a new page when h does not fit below the cursor. It
// reports whether a break happened.
func (b *Builder) EnsureSpace(h float64) bool {
	if b.cursor.Fits(h) {
		return false
	}
	log.Tracef("page break at y=%.1f, need %.1f of %.1f", b.cursor.Y, h, b.cursor.Bottom())
	b.NewPage()
	return true
}

// NewPage unconditionally breaks the page
func (b *Builder) NewPage() {
	b.canvas.NewPage()
	b.breaks++
	b.cursor.Reset()
	b.startPage()
}

func (b *Builder) startPage() {
	b.canvas.SetTextColor(b.theme.Text)
	if !b.debugMode {
		return
	}
	c := b.cursor
	b.canvas.SetDrawColor(api.Color{R: 230, G: 80, B: 80})
	b.canvas.DrawRect(c.MarginX, c.TopMargin, c.ContentWidth(), c.Usable(), false)
	b.canvas.SetDrawColor(b.theme.Rule)
}

// MoveBy advances the cursor without drawing
func (b *Builder) MoveBy(dy float64) *Builder {
	b.cursor.Y += dy
	return b
}

// DrawWidget draws a widget
func (b *Builder) DrawWidget(widget Widget) error {
	if widget == nil {
		return nil
	}
	if err := widget.Draw(b); err != nil {
		return fmt.Errorf("failed to draw %T: %w", widget, err)
	}
	return nil
}

// Draw draws widgets in order, stopping at the first error
func (b *Builder) Draw(widgets ...Widget) error {
	for _, w := range widgets {
		if err := b.DrawWidget(w); err != nil {
			return err
		}
	}
	return nil
}

// Font resolves a size and style against the theme; size 0 is the base size.
func (b *Builder) Font(size float64, style FontStyle) Font {
	if size <= 0 {
		size = b.theme.BaseSize
	}
	return Font{Family: b.theme.Family, Style: style, Size: size}
}

// LineHeight scales the cursor line height linearly with font size.
func (b *Builder) LineHeight(size float64) float64 {
	if size <= 0 {
		size = b.theme.BaseSize
	}
	return b.cursor.LineHeight * size / b.theme.BaseSize
}

// line writes one line at the cursor after ensuring it fits.
func (b *Builder) line(text string, x float64, font Font, lh float64) {
	b.EnsureSpace(lh)
	if text != "" {
		b.canvas.DrawText(text, x, b.cursor.Y, font)
	}
	b.cursor.Y += lh
}
