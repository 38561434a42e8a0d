package records

import (
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/names"
)

// NoOrganization is the bucket id of changes without an organization.
const NoOrganization = "__none__"

// Group is the calling changes of one organization.
type Group struct {
	OrganizationID   string
	OrganizationName string
	Changes          []CallingChange
}

// GroupByOrganization buckets changes by organization id in order of first
// appearance, with the NoOrganization bucket last. Every change lands in
// exactly one bucket, named or not. Organization names come from the changes
// themselves or, failing that, from orgs.
func GroupByOrganization(changes []CallingChange, orgs []api.OrganizationRef) []Group {
	var groups []*Group
	index := map[string]*Group{}
	for _, c := range changes {
		id := strings.TrimSpace(c.OrganizationID)
		if id == "" {
			id = NoOrganization
		}
		g, ok := index[id]
		if !ok {
			g = &Group{OrganizationID: id}
			index[id] = g
			groups = append(groups, g)
		}
		if g.OrganizationName == "" {
			g.OrganizationName = strings.TrimSpace(c.OrganizationName)
		}
		g.Changes = append(g.Changes, c)
	}

	out := make([]Group, 0, len(groups))
	var none *Group
	for _, g := range groups {
		if g.OrganizationID == NoOrganization {
			none = g
			continue
		}
		if g.OrganizationName == "" {
			if ref, ok := lo.Find(orgs, func(o api.OrganizationRef) bool { return o.ID == g.OrganizationID }); ok {
				g.OrganizationName = ref.Name
			}
		}
		out = append(out, *g)
	}
	if none != nil {
		out = append(out, *none)
	}
	return out
}

type connector struct {
	keywords []string
	en, es   string
}

// connectors are checked in order against the folded organization name.
var connectors = []connector{
	{[]string{"young women", "mujeres jovenes"}, "of the", "de las"},
	{[]string{"young men", "hombres jovenes"}, "of the", "de los"},
	{[]string{"quorum", "ward", "barrio"}, "of the", "del"},
	{[]string{"society", "school", "sociedad", "escuela"}, "of the", "de la"},
}

// Connector returns the words joining a calling to the organization name.
func Connector(organization, locale string) string {
	folded := names.Fold(organization)
	for _, c := range connectors {
		if lo.SomeBy(c.keywords, func(k string) bool { return strings.Contains(folded, k) }) {
			if api.IsSpanish(locale) {
				return c.es
			}
			return c.en
		}
	}
	if api.IsSpanish(locale) {
		return "de"
	}
	return "of"
}

// QualifyCalling appends the organization to a calling unless the calling
// already mentions it: "President" + "Relief Society" is
// "President of the Relief Society".
func QualifyCalling(calling, organization, locale string) string {
	calling = strings.TrimSpace(calling)
	organization = strings.TrimSpace(organization)
	if calling == "" || organization == "" || names.ContainsFold(calling, organization) {
		return calling
	}
	return calling + " " + Connector(organization, locale) + " " + organization
}
