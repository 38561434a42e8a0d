package reports

import (
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

// Agenda composes an interview agenda. Without interviews the body is a
// single paragraph and no table.
func Agenda(doc records.Document, l Labels) ([]pdf.Widget, error) {
	a, err := as[*records.InterviewAgenda](doc)
	if err != nil {
		return nil, err
	}

	heading := pdf.Heading{Title: Title(a, l), Subtitle: l.DateRange(a.From, a.To)}
	if len(a.Interviews) == 0 {
		log.Debugf("no interviews between %s and %s", a.From.ISO(), a.To.ISO())
		return []pdf.Widget{heading, pdf.Paragraph{Text: l.NoInterviews}}, nil
	}

	widgets := []pdf.Widget{heading}
	widgets = append(widgets, lines(pdf.LabeledLine{Label: l.Interviewer, Value: DisplayName(a.Interviewer)})...)
	widgets = append(widgets, pdf.Table{
		Headers: []string{l.When, l.Name, l.Purpose, l.Location},
		Widths:  []float64{1.4, 2.2, 2.2, 1.6},
		Rows: lo.Map(a.Interviews, func(i records.Interview, _ int) []string {
			return []string{when(i, l), DisplayName(i.Name), i.Purpose, i.Location}
		}),
	})
	return widgets, nil
}

func when(i records.Interview, l Labels) string {
	return strings.TrimSpace(l.ShortDate(i.Date) + " " + i.Time)
}
