package reports

import (
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/names"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

// Person renders "Name, Calling", or the name alone.
func Person(p api.PersonEntry) string {
	if p.Calling == "" {
		return p.Name
	}
	return p.Name + pdf.CallingSeparator + p.Calling
}

// People renders one person per line.
func People(people []api.PersonEntry) string {
	return strings.Join(lo.FilterMap(people, func(p api.PersonEntry, _ int) (string, bool) {
		return Person(p), !p.IsEmpty()
	}), "\n")
}

// DisplayName puts a free-text name in "Given Surname" order.
func DisplayName(name string) string {
	if n := names.Normalize(name); n != "" {
		return n
	}
	return strings.TrimSpace(name)
}

// OrganizationPhrase is the organization name with the article the
// connector lookup picks: "the Relief Society", "de la Sociedad de Socorro".
func OrganizationPhrase(organization, locale string) string {
	connector := records.Connector(organization, locale)
	if api.IsSpanish(locale) {
		return connector + " " + organization
	}
	if strings.HasSuffix(connector, "the") {
		return "the " + organization
	}
	return organization
}

// Change renders a release or sustainment with its calling qualified by the
// organization of its group.
func Change(c records.CallingChange, organization, locale string) string {
	calling := records.QualifyCalling(c.Calling, organization, locale)
	if calling == "" {
		return c.Name
	}
	return c.Name + pdf.CallingSeparator + calling
}

func personEntry(label string, p api.PersonEntry) pdf.ColumnEntry {
	return pdf.ColumnEntry{Label: label, Value: p.Name, Calling: p.Calling}
}

func section(title string, body ...pdf.Widget) []pdf.Widget {
	if len(body) == 0 {
		return nil
	}
	return append([]pdf.Widget{pdf.SectionHeader{Title: title}}, body...)
}

// lines keeps the labelled lines with a value.
func lines(entries ...pdf.LabeledLine) []pdf.Widget {
	return lo.FilterMap(entries, func(l pdf.LabeledLine, _ int) (pdf.Widget, bool) {
		return l, strings.TrimSpace(l.Value) != ""
	})
}
