package reports

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

// Sacramental composes a sacrament meeting program.
func Sacramental(doc records.Document, l Labels) ([]pdf.Widget, error) {
	m, err := as[*records.SacramentalMeeting](doc)
	if err != nil {
		return nil, err
	}

	widgets := []pdf.Widget{
		pdf.Heading{Title: Title(m, l), Subtitle: l.LongDate(m.Held)},
		pdf.Columns{
			Left: []pdf.ColumnEntry{
				personEntry(l.Presides, m.Presider),
				personEntry(l.Directs, m.Director),
				{Label: l.Recognition, Value: People(m.Recognition)},
				{Label: l.VisitingAuthorities, Value: People(m.VisitingAuthority)},
			},
			Right: []pdf.ColumnEntry{
				personEntry(l.Chorister, m.Chorister),
				personEntry(l.Organist, m.Organist),
			},
			Rules: l.Rules(),
		},
	}

	if len(m.Announcements) > 0 {
		widgets = append(widgets, section(l.Announcements, pdf.BulletList{Items: m.Announcements})...)
	}
	widgets = append(widgets, section(l.Opening, lines(
		pdf.LabeledLine{Label: l.OpeningHymn, Value: m.OpeningHymn},
		pdf.LabeledLine{Label: l.Invocation, Value: Person(m.OpeningPrayer)},
	)...)...)
	widgets = append(widgets, section(l.WardBusiness, wardBusiness(m, l)...)...)
	widgets = append(widgets, section(l.Sacrament, sacrament(m, l)...)...)
	widgets = append(widgets, section(l.Program, program(m, l)...)...)
	widgets = append(widgets, section(l.Closing, lines(
		pdf.LabeledLine{Label: l.ClosingHymn, Value: m.ClosingHymn},
		pdf.LabeledLine{Label: l.Benediction, Value: Person(m.ClosingPrayer)},
	)...)...)
	if m.Notes != "" {
		widgets = append(widgets, section(l.Notes, pdf.Paragraph{Text: m.Notes})...)
	}
	return widgets, nil
}

// wardBusiness lists releases then sustainments, one block per organization,
// each closed by its voting formula.
func wardBusiness(m *records.SacramentalMeeting, l Labels) []pdf.Widget {
	var widgets []pdf.Widget
	blocks := []struct {
		changes          []records.CallingChange
		withOrg, without string
		formula          string
	}{
		{m.Releases, l.ReleasedFrom, l.Released, l.ReleaseFormula},
		{m.Sustainments, l.CalledTo, l.Called, l.SustainFormula},
	}
	for _, block := range blocks {
		listed := false
		for _, g := range records.GroupByOrganization(block.changes, m.Organizations) {
			items := lo.FilterMap(g.Changes, func(c records.CallingChange, _ int) (string, bool) {
				return Change(c, g.OrganizationName, l.Locale), strings.TrimSpace(c.Name) != ""
			})
			if len(items) == 0 {
				continue
			}
			intro := block.without
			if g.OrganizationID != records.NoOrganization && g.OrganizationName != "" {
				intro = fmt.Sprintf(block.withOrg, OrganizationPhrase(g.OrganizationName, l.Locale))
			}
			widgets = append(widgets,
				pdf.Paragraph{Text: intro, Style: pdf.Bold},
				pdf.BulletList{Items: items},
			)
			listed = true
		}
		if listed {
			widgets = append(widgets, pdf.Paragraph{Text: block.formula, Style: pdf.Italic})
		}
	}
	return widgets
}

func sacrament(m *records.SacramentalMeeting, l Labels) []pdf.Widget {
	if m.SacramentHymn == "" {
		return nil
	}
	return []pdf.Widget{
		pdf.LabeledLine{Label: l.SacramentHymn, Value: m.SacramentHymn},
		pdf.Paragraph{Text: l.SacramentText, Style: pdf.Italic, Align: pdf.AlignCenter},
	}
}

// program lists the speakers with the intermediate hymn after
// IntermediateAfter speakers, half of them when unset or out of range. A
// testimony meeting replaces the speakers.
func program(m *records.SacramentalMeeting, l Labels) []pdf.Widget {
	if m.IsTestimonyMeeting {
		return []pdf.Widget{pdf.Paragraph{Text: l.TestimonyMeeting, Style: pdf.Italic}}
	}
	hymn := pdf.LabeledLine{Label: l.IntermediateHymn, Value: m.IntermediateHymn}
	after := IntermediatePosition(len(m.Speakers), m.IntermediateAfter)

	var widgets []pdf.Widget
	if after == 0 {
		widgets = append(widgets, lines(hymn)...)
	}
	for i, speaker := range m.Speakers {
		widgets = append(widgets, pdf.LabeledLine{Label: l.Speaker, Value: Person(speaker)})
		if i+1 == after {
			widgets = append(widgets, lines(hymn)...)
		}
	}
	return widgets
}

// IntermediatePosition is the number of speakers before the intermediate
// hymn.
func IntermediatePosition(speakers, after int) int {
	if speakers == 0 {
		return 0
	}
	if after < 1 || after > speakers {
		return (speakers + 1) / 2
	}
	return after
}
