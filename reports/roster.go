package reports

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/names"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

// Roster composes an attendance roster sorted by display name.
func Roster(doc records.Document, l Labels) ([]pdf.Widget, error) {
	r, err := as[*records.AttendanceRoster](doc)
	if err != nil {
		return nil, err
	}

	subtitle := strings.Join(nonBlank([]string{r.Organization, l.LongDate(r.Taken)}), " · ")
	widgets := []pdf.Widget{pdf.Heading{Title: Title(r, l), Subtitle: subtitle}}
	if len(r.Entries) == 0 {
		return append(widgets, pdf.Paragraph{Text: l.NoEntries}), nil
	}

	entries := SortedEntries(r.Entries)
	present := lo.CountBy(entries, func(e records.RosterEntry) bool { return e.Present })
	widgets = append(widgets,
		pdf.LabeledLine{Label: l.Present, Value: strconv.Itoa(present)},
		pdf.LabeledLine{Label: l.Absent, Value: strconv.Itoa(len(entries) - present)},
		pdf.LabeledLine{Label: l.Total, Value: strconv.Itoa(len(entries))},
		pdf.Spacer{Height: 2},
		pdf.Table{
			Headers: []string{l.Number, l.Name, l.Present},
			Widths:  []float64{0.6, 4, 1.2},
			Rows: lo.Map(entries, func(e records.RosterEntry, i int) []string {
				mark := l.No
				if e.Present {
					mark = l.Yes
				}
				return []string{strconv.Itoa(i + 1), e.Name, mark}
			}),
		},
	)
	return widgets, nil
}

// SortedEntries returns the entries with display names, sorted by their
// folded display name.
func SortedEntries(entries []records.RosterEntry) []records.RosterEntry {
	out := lo.Map(entries, func(e records.RosterEntry, _ int) records.RosterEntry {
		e.Name = DisplayName(e.Name)
		return e
	})
	sort.SliceStable(out, func(i, j int) bool {
		return names.Fold(out[i].Name) < names.Fold(out[j].Name)
	})
	return out
}
