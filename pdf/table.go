package pdf

import (
	"fmt"
	"math"

	"github.com/flanksource/wardclerk/api"
	"github.com/samber/lo"
)

const (
	cellPadding = 1.5
	tableGap    = 3.0
	// ascent is the share of a line height above the baseline
	ascent = 0.75
)

// Table widget for rendering tables in PDF. Widths are relative weights;
// nil means equal columns. The header row is repeated after every page break.
type Table struct {
	Headers []string   `json:"headers,omitempty"`
	Widths  []float64  `json:"widths,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Size    float64    `json:"size,omitempty"`
}

// Draw implements the Widget interface
func (t Table) Draw(b *Builder) error {
	if len(t.Rows) == 0 {
		return nil
	}
	numColumns := len(t.Headers)
	if numColumns == 0 {
		numColumns = len(t.Rows[0])
	}
	if numColumns == 0 {
		return nil
	}
	if len(t.Widths) > 0 && len(t.Widths) != numColumns {
		return fmt.Errorf("table has %d columns but %d widths", numColumns, len(t.Widths))
	}
	for i, row := range t.Rows {
		if len(row) > numColumns {
			return fmt.Errorf("table row %d has %d cells, expected at most %d", i, len(row), numColumns)
		}
	}

	c := b.cursor
	widths := t.columnWidths(numColumns, c.ContentWidth())
	lh := b.LineHeight(t.Size)
	bodyFont := b.Font(t.Size, Regular)
	headFont := b.Font(t.Size, Bold)
	maxLines := math.MaxInt32

	wrapRow := func(cells []string, font Font) ([][]string, float64) {
		wrapped := make([][]string, numColumns)
		lines := 1
		for i := 0; i < numColumns && i < len(cells); i++ {
			wrapped[i] = b.canvas.WrapToWidth(cells[i], widths[i]-2*cellPadding, font)
			if len(wrapped[i]) > maxLines {
				wrapped[i] = append(wrapped[i][:maxLines-1], wrapped[i][maxLines-1]+" …")
			}
			lines = max(lines, len(wrapped[i]))
		}
		return wrapped, float64(lines)*lh + 2*cellPadding
	}

	drawRow := func(wrapped [][]string, height float64, font Font, fill *api.Color) {
		top := c.Y - lh*ascent - cellPadding
		if fill != nil {
			b.canvas.SetFillColor(*fill)
			b.canvas.DrawRect(c.MarginX, top, c.ContentWidth(), height, true)
		}
		x := c.MarginX
		for i, lines := range wrapped {
			for j, line := range lines {
				if line != "" {
					b.canvas.DrawText(line, x+cellPadding, c.Y+float64(j)*lh, font)
				}
			}
			x += widths[i]
		}
		c.Y += height
	}

	header, headerHeight := wrapRow(t.Headers, headFont)
	room := c.Usable() - 2*cellPadding
	if len(t.Headers) > 0 {
		room -= headerHeight
	}
	maxLines = max(1, int(room/lh))
	drawHeader := func() {
		if len(t.Headers) == 0 {
			return
		}
		b.canvas.SetTextColor(api.White)
		drawRow(header, headerHeight, headFont, &b.theme.Accent)
		b.canvas.SetTextColor(b.theme.Text)
	}

	first, firstHeight := wrapRow(t.Rows[0], bodyFont)
	if len(t.Headers) > 0 {
		b.EnsureSpace(headerHeight + firstHeight)
	}
	drawHeader()

	for i, row := range t.Rows {
		wrapped, height := first, firstHeight
		if i > 0 {
			wrapped, height = wrapRow(row, bodyFont)
		}
		if b.EnsureSpace(height) {
			drawHeader()
		}
		var fill *api.Color
		if i%2 == 1 {
			fill = &b.theme.Stripe
		}
		drawRow(wrapped, height, bodyFont, fill)
	}

	b.canvas.SetDrawColor(b.theme.Rule)
	b.canvas.DrawLine(c.MarginX, c.Y-lh*ascent-cellPadding, c.Right(), c.Y-lh*ascent-cellPadding)
	c.Y += tableGap
	return nil
}

func (t Table) columnWidths(n int, total float64) []float64 {
	if len(t.Widths) == 0 {
		return lo.Times(n, func(int) float64 { return total / float64(n) })
	}
	sum := lo.Sum(t.Widths)
	if sum <= 0 {
		return lo.Times(n, func(int) float64 { return total / float64(n) })
	}
	return lo.Map(t.Widths, func(w float64, _ int) float64 { return total * w / sum })
}
