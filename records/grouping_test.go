package records

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/wardclerk/api"
)

func TestGroupByOrganization(t *testing.T) {
	changes := []CallingChange{
		{Name: "Ana", Calling: "President", OrganizationID: "rs"},
		{Name: "Luis", Calling: "Teacher"},
		{Name: "Eva", Calling: "Counselor", OrganizationID: "yw", OrganizationName: "Young Women"},
		{Name: "Sara", Calling: "Secretary", OrganizationID: "rs", OrganizationName: "Relief Society"},
		{Name: "Juan", Calling: "Librarian", OrganizationID: "  "},
		{Name: "", Calling: "Ghost", OrganizationID: "rs"},
	}
	orgs := []api.OrganizationRef{{ID: "rs", Name: "Sociedad de Socorro"}}

	groups := GroupByOrganization(changes, orgs)
	require.Len(t, groups, 3)

	assert.Equal(t, "rs", groups[0].OrganizationID)
	assert.Equal(t, "Relief Society", groups[0].OrganizationName)
	assert.Equal(t, []string{"Ana", "Sara", ""}, changeNames(groups[0].Changes))

	assert.Equal(t, "yw", groups[1].OrganizationID)
	assert.Equal(t, "Young Women", groups[1].OrganizationName)

	assert.Equal(t, NoOrganization, groups[2].OrganizationID)
	assert.Equal(t, []string{"Luis", "Juan"}, changeNames(groups[2].Changes))
}

func TestGroupNameFromOrganizations(t *testing.T) {
	groups := GroupByOrganization([]CallingChange{{Name: "Ana", OrganizationID: "eq"}}, []api.OrganizationRef{{ID: "eq", Name: "Elders Quorum"}})
	require.Len(t, groups, 1)
	assert.Equal(t, "Elders Quorum", groups[0].OrganizationName)
}

func TestGroupingCompleteness(t *testing.T) {
	var changes []CallingChange
	ids := []string{"a", "b", "", "c", "a", "", "b", "d", "e", ""}
	for i, id := range ids {
		changes = append(changes, CallingChange{Calling: string(rune('A' + i)), OrganizationID: id})
	}
	// nameless changes are bucketed like any other
	for i := range changes[:8] {
		changes[i].Name = changes[i].Calling
	}
	groups := GroupByOrganization(changes, nil)

	seen := map[string]int{}
	for _, g := range groups {
		for _, c := range g.Changes {
			seen[c.Calling]++
			if c.OrganizationID == "" {
				assert.Equal(t, NoOrganization, g.OrganizationID)
			} else {
				assert.Equal(t, c.OrganizationID, g.OrganizationID)
			}
		}
	}
	assert.Len(t, seen, len(ids))
	for calling, n := range seen {
		assert.Equal(t, 1, n, calling)
	}
	assert.Equal(t, NoOrganization, groups[len(groups)-1].OrganizationID)
	assert.Equal(t, 1, lo.CountBy(groups, func(g Group) bool { return g.OrganizationID == NoOrganization }))
}

func changeNames(changes []CallingChange) []string {
	return lo.Map(changes, func(c CallingChange, _ int) string { return c.Name })
}

func TestQualifyCalling(t *testing.T) {
	fixtures := []struct {
		calling, org, locale, expected string
	}{
		{"President", "Relief Society", "en", "President of the Relief Society"},
		{"Presidenta", "Sociedad de Socorro", "es", "Presidenta de la Sociedad de Socorro"},
		{"Presidenta", "Mujeres Jóvenes", "es", "Presidenta de las Mujeres Jóvenes"},
		{"President", "Young Women", "en", "President of the Young Women"},
		{"Asesor", "Hombres Jóvenes", "es", "Asesor de los Hombres Jóvenes"},
		{"Presidente", "Quórum de Élderes", "es", "Presidente del Quórum de Élderes"},
		{"Secretary", "Elders Quorum", "en", "Secretary of the Elders Quorum"},
		{"Maestro", "Escuela Dominical", "es", "Maestro de la Escuela Dominical"},
		{"Teacher", "Primary", "en", "Teacher of Primary"},
		{"Maestra", "Primaria", "es", "Maestra de Primaria"},
		{"Primary President", "primary", "en", "Primary President"},
		{"Presidenta de la sociedad de socorro", "Sociedad de Socorro", "es", "Presidenta de la sociedad de socorro"},
		{"", "Relief Society", "en", ""},
		{"Clerk", "", "en", "Clerk"},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.expected, func(t *testing.T) {
			assert.Equal(t, fixture.expected, QualifyCalling(fixture.calling, fixture.org, fixture.locale))
		})
	}
}

func TestRoleLabel(t *testing.T) {
	fixtures := []struct {
		calling, locale, expected string
	}{
		{"bishop", "en", "Bishop"},
		{"Obispo", "en", "Bishop"},
		{"first counselor", "en", "First Counselor of the Bishopric"},
		{"primer consejero", "es", "Primer Consejero del Obispado"},
		{"Second Counselor in the Bishopric", "en", "Second Counselor in the Bishopric"},
		{"Counselor", "en", "Counselor of the Bishopric"},
		{"consejero del obispado", "es", "consejero del obispado"},
		{"ward clerk", "es", "Secretario"},
		{"Ward Mission Leader", "en", "Ward Mission Leader"},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.calling, func(t *testing.T) {
			assert.Equal(t, fixture.expected, RoleLabel(fixture.calling, fixture.locale))
		})
	}
}

func TestAssembleRecognition(t *testing.T) {
	bishopric := []api.PersonEntry{
		{Name: "Carlos Ruiz", Calling: "Bishop"},
		{Name: "Juan Gómez", Calling: "First Counselor"},
		{Name: "Luis Soto", Calling: "Second Counselor"},
		{Name: "Pablo Díaz", Calling: "executive secretary"},
	}
	director := api.PersonEntry{Name: "Juan Gomez"}

	t.Run("director in bishopric, someone else presides", func(t *testing.T) {
		manual := []api.PersonEntry{{Name: "Ana Vera", Calling: "Stake Relief Society President"}, {Name: "luis soto"}}
		got := AssembleRecognition(manual, bishopric, director, api.PersonEntry{Name: "Pedro Alba", Calling: "Stake President"}, "en")
		assert.Equal(t, []api.PersonEntry{
			{Name: "Ana Vera", Calling: "Stake Relief Society President"},
			{Name: "luis soto"},
			{Name: "Carlos Ruiz", Calling: "Bishop"},
			{Name: "Pablo Díaz", Calling: "Executive Secretary"},
		}, got)
	})

	t.Run("presider excluded", func(t *testing.T) {
		got := AssembleRecognition(nil, bishopric, director, api.PersonEntry{Name: "Carlos Ruiz"}, "es")
		assert.Equal(t, []api.PersonEntry{
			{Name: "Luis Soto", Calling: "Segundo Consejero del Obispado"},
			{Name: "Pablo Díaz", Calling: "Secretario Ejecutivo"},
		}, got)
	})

	t.Run("director presides", func(t *testing.T) {
		assert.Empty(t, AssembleRecognition(nil, bishopric, director, director, "en"))
	})

	t.Run("no presider", func(t *testing.T) {
		assert.Empty(t, AssembleRecognition(nil, bishopric, director, api.PersonEntry{}, "en"))
	})

	t.Run("director outside bishopric", func(t *testing.T) {
		manual := []api.PersonEntry{{Name: "Ana Vera"}, {Name: "ANA VERA", Calling: "duplicate"}, {}}
		got := AssembleRecognition(manual, bishopric, api.PersonEntry{Name: "Eva Paz"}, api.PersonEntry{Name: "Carlos Ruiz"}, "en")
		assert.Equal(t, []api.PersonEntry{{Name: "Ana Vera"}}, got)
	})
}
