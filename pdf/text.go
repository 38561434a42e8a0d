package pdf

import (
	"strings"
)

// Align is the horizontal alignment of paragraph lines
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ParagraphGap is the space left after a paragraph
const ParagraphGap = 2.0

// Paragraph widget for wrapped body text
type Paragraph struct {
	Text   string    `json:"text,omitempty"`
	Size   float64   `json:"size,omitempty"` // points, 0 is the base size
	Style  FontStyle `json:"style,omitempty"`
	Indent float64   `json:"indent,omitempty"` // mm from the left margin
	Align  Align     `json:"align,omitempty"`
	Muted  bool      `json:"muted,omitempty"`
}

// Draw implements the Widget interface
func (p Paragraph) Draw(b *Builder) error {
	if strings.TrimSpace(p.Text) == "" {
		return nil
	}
	c := b.cursor
	font := b.Font(p.Size, p.Style)
	lh := b.LineHeight(p.Size)
	width := c.ContentWidth() - p.Indent
	left := c.MarginX + p.Indent

	if p.Muted {
		b.canvas.SetTextColor(b.theme.Muted)
		defer b.canvas.SetTextColor(b.theme.Text)
	}

	for _, line := range b.canvas.WrapToWidth(p.Text, width, font) {
		x := left
		switch p.Align {
		case AlignCenter:
			x += (width - b.canvas.MeasureWidth(line, font)) / 2
		case AlignRight:
			x += width - b.canvas.MeasureWidth(line, font)
		}
		b.line(line, x, font, lh)
	}
	c.Y += ParagraphGap
	return nil
}

// Spacer leaves vertical space without drawing
type Spacer struct {
	Height float64 `json:"height,omitempty"`
}

// Draw implements the Widget interface
func (s Spacer) Draw(b *Builder) error {
	if s.Height > 0 {
		b.cursor.Y += s.Height
	}
	return nil
}

const (
	headingSize = 16.0
	headingGap  = 3.0
)

// Heading renders a document title with an optional muted subtitle
type Heading struct {
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Draw implements the Widget interface
func (h Heading) Draw(b *Builder) error {
	if strings.TrimSpace(h.Title) == "" && strings.TrimSpace(h.Subtitle) == "" {
		return nil
	}
	if err := (Paragraph{Text: h.Title, Size: headingSize, Style: Bold}).Draw(b); err != nil {
		return err
	}
	if err := (Paragraph{Text: h.Subtitle, Muted: true}).Draw(b); err != nil {
		return err
	}
	b.cursor.Y += headingGap
	return nil
}
