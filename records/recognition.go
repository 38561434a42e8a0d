package records

import (
	"strings"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/names"
)

type roleLabel struct {
	en, es string
}

var roleLabels = map[string]roleLabel{}

func init() {
	for _, r := range []struct {
		keys  []string
		label roleLabel
	}{
		{[]string{"bishop", "obispo"}, roleLabel{"Bishop", "Obispo"}},
		{[]string{"first counselor", "primer consejero"}, roleLabel{"First Counselor", "Primer Consejero"}},
		{[]string{"second counselor", "segundo consejero"}, roleLabel{"Second Counselor", "Segundo Consejero"}},
		{[]string{"executive secretary", "secretario ejecutivo"}, roleLabel{"Executive Secretary", "Secretario Ejecutivo"}},
		{[]string{"ward clerk", "secretario"}, roleLabel{"Ward Clerk", "Secretario"}},
	} {
		for _, k := range r.keys {
			roleLabels[k] = r.label
		}
	}
}

// RoleLabel maps a presiding-body calling to its display label in locale.
// Unknown callings keep their text. A counselor calling that does not name
// the bishopric is completed with it.
func RoleLabel(calling, locale string) string {
	label := strings.Join(strings.Fields(calling), " ")
	if r, ok := roleLabels[names.Fold(label)]; ok {
		label = r.en
		if api.IsSpanish(locale) {
			label = r.es
		}
	}
	folded := names.Fold(label)
	switch {
	case strings.Contains(folded, "counselor") && !strings.Contains(folded, "bishopric"):
		label += " of the Bishopric"
	case strings.Contains(folded, "consejero") && !strings.Contains(folded, "obispado"):
		label += " del Obispado"
	}
	return label
}

// FilterVisiting drops visiting authorities who are the director or the
// presider, since they are listed under their own role.
func FilterVisiting(visiting []api.PersonEntry, director, presider api.PersonEntry) []api.PersonEntry {
	return lo.Filter(visiting, func(p api.PersonEntry, _ int) bool {
		if p.IsEmpty() {
			return false
		}
		if names.Same(p.Name, director.Name) || names.Same(p.Name, presider.Name) {
			log.Debugf("visiting authority %q already has a role", p.Name)
			return false
		}
		return true
	})
}

// AssembleRecognition concatenates the manual recognition list with the
// entries generated from the bishopric and removes duplicate names, keeping
// the first occurrence.
//
// Entries are generated only when the director belongs to the bishopric and
// someone else presides: every other member, except the presider, is then
// recognised with a role label.
func AssembleRecognition(manual, bishopric []api.PersonEntry, director, presider api.PersonEntry, locale string) []api.PersonEntry {
	var auto []api.PersonEntry
	directorInBishopric := lo.ContainsBy(bishopric, func(p api.PersonEntry) bool { return names.Same(p.Name, director.Name) })
	if directorInBishopric && !presider.IsEmpty() && !names.Same(presider.Name, director.Name) {
		for _, member := range bishopric {
			if names.Same(member.Name, director.Name) || names.Same(member.Name, presider.Name) {
				continue
			}
			auto = append(auto, api.PersonEntry{Name: member.Name, Calling: RoleLabel(member.Calling, locale)})
		}
	}
	all := nonEmpty(append(append([]api.PersonEntry{}, manual...), auto...))
	return lo.UniqBy(all, func(p api.PersonEntry) string { return names.Fold(p.Name) })
}
