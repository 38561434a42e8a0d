package pdf

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// LabelGap separates a label from its value
	LabelGap = 4.0
	// minValueWidth is the narrowest first line a value may start on
	// beside its label before it drops below the label instead.
	minValueWidth = 20.0
	entryGap      = 1.0
	sectionSize   = 11.0
	sectionGap    = 2.0
	// ruleGap separates a section title from its rule
	ruleGap = 5.0
)

// LabeledLine renders "Label: value" with the value wrapping back to the
// left margin. An empty value draws nothing.
type LabeledLine struct {
	Label       string  `json:"label,omitempty"`
	Value       string  `json:"value,omitempty"`
	ItalicValue bool    `json:"italic_value,omitempty"`
	Size        float64 `json:"size,omitempty"`
}

// Draw implements the Widget interface
func (l LabeledLine) Draw(b *Builder) error {
	if strings.TrimSpace(l.Value) == "" {
		return nil
	}
	c := b.cursor
	labelFont := b.Font(l.Size, Bold)
	valueStyle := Regular
	if l.ItalicValue {
		valueStyle = Italic
	}
	valueFont := b.Font(l.Size, valueStyle)
	lh := b.LineHeight(l.Size)

	label := l.Label + ":"
	labelWidth := b.canvas.MeasureWidth(label, labelFont)
	first := c.ContentWidth() - labelWidth - LabelGap

	if first < minValueWidth {
		b.line(label, c.MarginX, labelFont, lh)
		for _, line := range b.canvas.WrapToWidth(l.Value, c.ContentWidth(), valueFont) {
			b.line(line, c.MarginX, valueFont, lh)
		}
		c.Y += entryGap
		return nil
	}

	lines := hangingWrap(b.canvas, l.Value, first, c.ContentWidth(), valueFont)
	b.EnsureSpace(lh)
	b.canvas.DrawText(label, c.MarginX, c.Y, labelFont)
	if lines[0] != "" {
		b.canvas.DrawText(lines[0], c.MarginX+labelWidth+LabelGap, c.Y, valueFont)
	}
	c.Y += lh
	for _, line := range lines[1:] {
		b.line(line, c.MarginX, valueFont, lh)
	}
	c.Y += entryGap
	return nil
}

// SectionHeader renders an upper-cased accent title followed by a rule to
// the right margin on the same baseline.
type SectionHeader struct {
	Title string  `json:"title,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

// Draw implements the Widget interface
func (s SectionHeader) Draw(b *Builder) error {
	if strings.TrimSpace(s.Title) == "" {
		return nil
	}
	if s.Size == 0 {
		s.Size = sectionSize
	}
	c := b.cursor
	font := b.Font(s.Size, Bold)
	lh := b.LineHeight(s.Size)
	title := upper(b.theme.Locale, strings.TrimSpace(s.Title))

	c.Y += sectionGap
	// keep the title with at least one following line
	b.EnsureSpace(lh + b.LineHeight(0))

	b.canvas.SetTextColor(c.Accent)
	b.canvas.DrawText(title, c.MarginX, c.Y, font)
	b.canvas.SetTextColor(b.theme.Text)

	ruleStart := c.MarginX + b.canvas.MeasureWidth(title, font) + ruleGap
	if ruleStart < c.Right() {
		b.canvas.SetDrawColor(c.Accent)
		b.canvas.DrawLine(ruleStart, c.Y, c.Right(), c.Y)
		b.canvas.SetDrawColor(b.theme.Rule)
	}
	c.Y += lh + entryGap
	return nil
}

func upper(locale, s string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return cases.Upper(tag).String(s)
}
