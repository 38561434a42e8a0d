package records

import (
	"fmt"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/wardclerk/api"
)

func nameList(people []api.PersonEntry) []string {
	return lo.Map(people, func(p api.PersonEntry, _ int) string { return p.Name })
}

func normalizeYAML(t *testing.T, kind api.Kind, src, locale string) Document {
	t.Helper()
	raw, err := Decode([]byte(src))
	require.NoError(t, err)
	doc, err := Normalize(kind, raw, locale)
	require.NoError(t, err)
	return doc
}

func TestVisitingAuthorityExcludesDirector(t *testing.T) {
	doc := normalizeYAML(t, api.KindSacramental, `
director: Juan Gómez
presider: Carlos Ruiz
visitingAuthority: "Pedro Pérez, Juan Gómez"
`, "es")
	m := doc.(*SacramentalMeeting)
	assert.Equal(t, []string{"Pedro Pérez"}, nameList(m.VisitingAuthority))
}

func TestVisitingAuthorityMatchesFoldedNames(t *testing.T) {
	doc := normalizeYAML(t, api.KindSacramental, `
director: "juan gomez | Primer Consejero"
presider: "Carlos Ruiz"
visitingAuthority: ["Carlos  RUIZ | Obispo", "Ana Díaz | Stake President", "JUAN GÓMEZ"]
`, "es")
	m := doc.(*SacramentalMeeting)
	require.Len(t, m.VisitingAuthority, 1)
	assert.Equal(t, api.PersonEntry{Name: "Ana Díaz", Calling: "Stake President"}, m.VisitingAuthority[0])
}

func TestCoerceJSONEncodedLists(t *testing.T) {
	raw := Raw{
		"speakers":           `["Ana Ruiz", "Luis Soto | Youth Speaker"]`,
		"announcements":      `["Ward conference", 42]`,
		"bishopric":          `[not json`,
		"isTestimonyMeeting": " TRUE ",
		"intermediateAfter":  "1",
		"openingHymn":        19,
		"date":               "2024-03-10",
	}
	doc, err := Normalize(api.KindSacramental, raw, "en")
	require.NoError(t, err)
	m := doc.(*SacramentalMeeting)

	assert.Equal(t, []string{"Ana Ruiz", "Luis Soto"}, nameList(m.Speakers))
	assert.Equal(t, "Youth Speaker", m.Speakers[1].Calling)
	assert.Equal(t, []string{"Ward conference", "42"}, m.Announcements)
	assert.Equal(t, []string{"[not json"}, nameList(m.Bishopric))
	assert.True(t, m.IsTestimonyMeeting)
	assert.Equal(t, 1, m.IntermediateAfter)
	assert.Equal(t, "19", m.OpeningHymn)
	assert.Equal(t, "2024-03-10", m.Date().ISO())
}

func TestCoerceBool(t *testing.T) {
	fixtures := []struct {
		input    any
		expected bool
		ok       bool
	}{
		{true, true, true},
		{"true", true, true},
		{" False ", false, true},
		{"yes", false, false},
		{1, true, true},
		{nil, false, false},
	}
	for _, fixture := range fixtures {
		t.Run(fmt.Sprint(fixture.input), func(t *testing.T) {
			v, ok := coerceBool(fixture.input, "test")
			assert.Equal(t, fixture.ok, ok)
			if ok {
				assert.Equal(t, fixture.expected, v)
			}
		})
	}
}

func TestUnparseableFlagReadsFalse(t *testing.T) {
	doc, err := Normalize(api.KindSacramental, Raw{"isTestimonyMeeting": "sometimes"}, "en")
	require.NoError(t, err)
	assert.False(t, doc.(*SacramentalMeeting).IsTestimonyMeeting)
}

func TestBadDateIsDropped(t *testing.T) {
	doc, err := Normalize(api.KindCouncil, Raw{"date": "next sunday", "council": "Ward Council"}, "en")
	require.NoError(t, err)
	assert.True(t, doc.Date().IsZero())
	assert.Equal(t, "Ward Council", doc.(*CouncilMinutes).Council)
}

func TestDecodeAcceptsJSONAndYAML(t *testing.T) {
	fromJSON, err := Decode([]byte(`{"date": "2024-05-01", "organization": "Primary", "entries": ["Ana"]}`))
	require.NoError(t, err)
	fromYAML, err := Decode([]byte("date: 2024-05-01\norganization: Primary\nentries:\n  - Ana\n"))
	require.NoError(t, err)
	assert.Equal(t, fromJSON, fromYAML)

	_, err = Decode([]byte("- just\n- a list\n"))
	assert.Error(t, err)
}

func TestRosterEntries(t *testing.T) {
	doc := normalizeYAML(t, api.KindRoster, `
date: 2024-05-01
organization: Elders Quorum
entries:
  - Pérez Soto Juan
  - {name: Ana Ruiz, present: "false"}
  - {name: Luis Díaz}
  - {name: "  ", present: true}
`, "en")
	r := doc.(*AttendanceRoster)
	assert.Equal(t, []RosterEntry{
		{Name: "Pérez Soto Juan", Present: true},
		{Name: "Ana Ruiz", Present: false},
		{Name: "Luis Díaz", Present: true},
	}, r.Entries)
}

func TestAgendaSortsInterviews(t *testing.T) {
	doc := normalizeYAML(t, api.KindAgenda, `
from: 2024-06-01
to: 2024-06-07
interviews:
  - {date: 2024-06-02, time: "10:30", name: Ruiz Ana, purpose: Temple recommend}
  - {date: 2024-06-02, time: "9:00", name: Soto Luis}
  - {date: 2024-06-01T18:15:00Z, name: Díaz Eva}
  - {time: "11:00"}
`, "en")
	a := doc.(*InterviewAgenda)
	require.Len(t, a.Interviews, 3)
	assert.Equal(t, "Díaz Eva", a.Interviews[0].Name)
	assert.Equal(t, "18:15", a.Interviews[0].Time)
	assert.Equal(t, "09:00", a.Interviews[1].Time)
	assert.Equal(t, "10:30", a.Interviews[2].Time)
	assert.Equal(t, "2024-06-01", a.Date().ISO())
}

func TestCouncilAssignments(t *testing.T) {
	doc := normalizeYAML(t, api.KindCouncil, `
council: Ward Council
attendees: "Ana Ruiz; Luis Soto, ana ruiz"
assignments:
  - {person: "Luis Soto | Elders Quorum President", task: Visit the Pérez family, due: 2024-06-10}
  - Prepare the ward calendar
  - {person: Ana Ruiz}
`, "en")
	c := doc.(*CouncilMinutes)
	assert.Equal(t, []string{"Ana Ruiz", "Luis Soto"}, nameList(c.Attendees))
	require.Len(t, c.Assignments, 2)
	assert.Equal(t, "Elders Quorum President", c.Assignments[0].Person.Calling)
	assert.Equal(t, "2024-06-10", c.Assignments[0].Due)
	assert.Equal(t, "Prepare the ward calendar", c.Assignments[1].Task)
}

func TestNewRejectsUnknownKind(t *testing.T) {
	_, err := New(api.Kind("newsletter"))
	assert.Error(t, err)
}
