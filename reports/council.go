package reports

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

var blankLine = regexp.MustCompile(`\n\s*\n`)

// Council composes council minutes.
func Council(doc records.Document, l Labels) ([]pdf.Widget, error) {
	c, err := as[*records.CouncilMinutes](doc)
	if err != nil {
		return nil, err
	}

	widgets := []pdf.Widget{
		pdf.Heading{Title: Title(c, l), Subtitle: l.LongDate(c.Held)},
		pdf.Columns{
			Left: []pdf.ColumnEntry{
				personEntry(l.Presides, c.Presider),
				personEntry(l.Directs, c.Director),
			},
			Right: []pdf.ColumnEntry{
				personEntry(l.OpeningPrayer, c.OpeningPrayer),
				personEntry(l.ClosingPrayer, c.ClosingPrayer),
			},
			Rules: l.Rules(),
		},
	}
	widgets = append(widgets, lines(pdf.LabeledLine{Label: l.SpiritualThought, Value: c.SpiritualThought})...)

	if len(c.Attendees) > 0 {
		attendees := lo.Map(c.Attendees, func(p api.PersonEntry, _ int) string { return Person(p) })
		widgets = append(widgets, section(l.Attendance, pdf.BulletList{Items: attendees})...)
	}
	if agenda := nonBlank(c.Agenda); len(agenda) > 0 {
		widgets = append(widgets, section(l.Agenda, pdf.BulletList{Items: agenda})...)
	}
	widgets = append(widgets, section(l.Discussion, Paragraphs(c.Discussion)...)...)
	if len(c.Assignments) > 0 {
		widgets = append(widgets, section(l.Assignments, pdf.Table{
			Headers: []string{l.Person, l.Assignment, l.Due},
			Widths:  []float64{2, 4, 1.2},
			Rows: lo.Map(c.Assignments, func(a records.Assignment, _ int) []string {
				return []string{Person(a.Person), a.Task, a.Due}
			}),
		})...)
	}
	widgets = append(widgets, lines(pdf.LabeledLine{Label: l.NextMeeting, Value: c.NextMeeting})...)
	return widgets, nil
}

// Paragraphs splits text on blank lines.
func Paragraphs(text string) []pdf.Widget {
	return lo.FilterMap(blankLine.Split(strings.TrimSpace(text), -1), func(p string, _ int) (pdf.Widget, bool) {
		p = strings.TrimSpace(p)
		return pdf.Paragraph{Text: p}, p != ""
	})
}

func nonBlank(items []string) []string {
	return lo.FilterMap(items, func(s string, _ int) (string, bool) {
		s = strings.TrimSpace(s)
		return s, s != ""
	})
}
