package pdf

import (
	"math"
	"strings"

	"github.com/samber/lo"
)

const (
	// ColumnGutter separates the left column from the right one
	ColumnGutter = 6.0
	// CallingIndent offsets a calling drawn on its own line
	CallingIndent = 6.0
	// ColumnEntryGap is the space after each column entry
	ColumnEntryGap = 1.5
	// ColumnBlockGap is the space after the whole two-column block
	ColumnBlockGap = 4.0
	// CallingSeparator joins a name and a calling on one line
	CallingSeparator = ", "
)

// ColumnEntry is one labelled value of a two-column block. Calling is an
// optional secondary line rendered in italics.
type ColumnEntry struct {
	Label   string `json:"label,omitempty"`
	Value   string `json:"value,omitempty"`
	Calling string `json:"calling,omitempty"`
}

// IsEmpty reports whether the entry has nothing to draw.
func (e ColumnEntry) IsEmpty() bool {
	return strings.TrimSpace(e.Value) == ""
}

// Rules name the labels that get special treatment. Labels are matched
// case-insensitively and must be given in the document locale.
type Rules struct {
	// BreakBefore labels drop their value to the line below the label
	BreakBefore []string `json:"break_before,omitempty"`
	// CallingOwnLine labels always put the calling on its own indented line
	CallingOwnLine []string `json:"calling_own_line,omitempty"`
}

// DefaultRules are the English rules.
var DefaultRules = Rules{
	BreakBefore:    []string{"Recognition"},
	CallingOwnLine: []string{"Presides", "Directs"},
}

func matchLabel(labels []string, label string) bool {
	return lo.ContainsBy(labels, func(l string) bool {
		return strings.EqualFold(strings.TrimSpace(l), strings.TrimSpace(label))
	})
}

// Columns lays out two lists of labelled entries side by side. The right
// column takes the last third of the content width; once the left column
// passes the bottom of the right one its entries reclaim the full width.
// Without right-hand values the left column spans the full width.
type Columns struct {
	Left  []ColumnEntry `json:"left,omitempty"`
	Right []ColumnEntry `json:"right,omitempty"`
	Rules *Rules        `json:"rules,omitempty"`
	Size  float64       `json:"size,omitempty"`
}

// ColumnsResult reports where each column ended and how many entries were
// drawn. Sequential is set when the block was taller than a page and was
// drawn as plain labelled lines instead.
type ColumnsResult struct {
	LeftEnd    float64
	RightEnd   float64
	Drawn      int
	Sequential bool
}

type columnFrame struct {
	x         float64
	width     float64
	fullWidth float64
	// entries starting at or below reclaimBelow use fullWidth
	reclaimBelow float64
}

// Draw implements the Widget interface
func (c Columns) Draw(b *Builder) error {
	_, err := c.Layout(b)
	return err
}

// Layout draws the block and returns where the columns ended. Every
// non-empty entry is drawn exactly once.
func (c Columns) Layout(b *Builder) (ColumnsResult, error) {
	rules := DefaultRules
	if c.Rules != nil {
		rules = *c.Rules
	}
	cur := b.cursor
	width := cur.ContentWidth()
	hasRight := lo.ContainsBy(c.Right, func(e ColumnEntry) bool { return !e.IsEmpty() })

	left := columnFrame{x: cur.MarginX, width: width, fullWidth: width, reclaimBelow: math.Inf(1)}
	right := columnFrame{x: cur.MarginX + width*2/3, width: width / 3, fullWidth: width / 3, reclaimBelow: math.Inf(1)}
	if hasRight {
		left.width = width*2/3 - ColumnGutter
	}

	measure := func(start float64) (float64, float64) {
		rightEnd := start
		if hasRight {
			rightEnd, _ = c.traverse(b, rules, c.Right, start, right, false)
			left.reclaimBelow = rightEnd
		}
		leftEnd, _ := c.traverse(b, rules, c.Left, start, left, false)
		return leftEnd, rightEnd
	}

	start := cur.Y
	leftEnd, rightEnd := measure(start)
	height := math.Max(leftEnd, rightEnd) - start
	if height > cur.Usable() {
		log.Debugf("column block of %.1fmm exceeds the page, drawing sequentially", height)
		return c.sequential(b, rules)
	}
	if b.EnsureSpace(height) {
		start = cur.Y
		measure(start)
	}

	leftEnd, nLeft := c.traverse(b, rules, c.Left, start, left, true)
	rightEnd, nRight := c.traverse(b, rules, c.Right, start, right, true)
	cur.Y = math.Max(leftEnd, rightEnd) + ColumnBlockGap
	return ColumnsResult{LeftEnd: leftEnd, RightEnd: rightEnd, Drawn: nLeft + nRight}, nil
}

// traverse walks entries from y, drawing only when commit is set, and returns
// the y after the last entry. The measuring and drawing passes share it so
// they cannot disagree.
func (c Columns) traverse(b *Builder, rules Rules, entries []ColumnEntry, y float64, frame columnFrame, commit bool) (float64, int) {
	canvas := b.canvas
	labelFont := b.Font(c.Size, Bold)
	valueFont := b.Font(c.Size, Regular)
	callingFont := b.Font(c.Size, Italic)
	lh := b.LineHeight(c.Size)

	emit := func(text string, x float64, font Font) {
		if commit && text != "" {
			canvas.DrawText(text, x, y, font)
		}
	}

	drawn := 0
	for _, e := range entries {
		if e.IsEmpty() {
			continue
		}
		drawn++
		width := frame.width
		if y >= frame.reclaimBelow {
			width = frame.fullWidth
		}
		label := e.Label + ":"
		labelWidth := canvas.MeasureWidth(label, labelFont)

		// right edge of the last value line, for an inline calling
		var lastEnd float64
		if matchLabel(rules.BreakBefore, e.Label) || width-labelWidth-LabelGap < minValueWidth {
			emit(label, frame.x, labelFont)
			y += lh
			x := frame.x + ContinuationIndent
			for _, line := range canvas.WrapToWidth(e.Value, width-ContinuationIndent, valueFont) {
				emit(line, x, valueFont)
				lastEnd = x + canvas.MeasureWidth(line, valueFont)
				y += lh
			}
		} else {
			emit(label, frame.x, labelFont)
			lines := hangingWrap(canvas, e.Value, width-labelWidth-LabelGap, width, valueFont)
			for i, line := range lines {
				x := frame.x
				if i == 0 {
					x += labelWidth + LabelGap
				}
				emit(line, x, valueFont)
				lastEnd = x + canvas.MeasureWidth(line, valueFont)
				y += lh
			}
		}

		if calling := strings.TrimSpace(e.Calling); calling != "" {
			inline := CallingSeparator + calling
			if !matchLabel(rules.CallingOwnLine, e.Label) &&
				lastEnd+canvas.MeasureWidth(inline, callingFont) <= frame.x+width {
				if commit {
					canvas.DrawText(inline, lastEnd, y-lh, callingFont)
				}
			} else {
				for _, line := range canvas.WrapToWidth(calling, width-CallingIndent, callingFont) {
					emit(line, frame.x+CallingIndent, callingFont)
					y += lh
				}
			}
		}
		y += ColumnEntryGap
	}
	return y, drawn
}

// sequential draws every entry as a full-width labelled line, left column
// first, letting each line paginate on its own.
func (c Columns) sequential(b *Builder, rules Rules) (ColumnsResult, error) {
	result := ColumnsResult{Sequential: true}
	for _, e := range append(append([]ColumnEntry{}, c.Left...), c.Right...) {
		if e.IsEmpty() {
			continue
		}
		value := e.Value
		calling := strings.TrimSpace(e.Calling)
		ownLine := calling != "" && matchLabel(rules.CallingOwnLine, e.Label)
		if calling != "" && !ownLine {
			value += CallingSeparator + calling
		}
		if matchLabel(rules.BreakBefore, e.Label) {
			value = "\n" + value
		}
		if err := b.DrawWidget(LabeledLine{Label: e.Label, Value: value, Size: c.Size}); err != nil {
			return result, err
		}
		if ownLine {
			if err := b.DrawWidget(Paragraph{Text: calling, Size: c.Size, Style: Italic, Indent: CallingIndent}); err != nil {
				return result, err
			}
		}
		result.Drawn++
	}
	result.LeftEnd = b.cursor.Y
	result.RightEnd = b.cursor.Y
	b.cursor.Y += ColumnBlockGap
	return result, nil
}
