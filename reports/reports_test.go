package reports

import (
	"strings"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

func normalize(t *testing.T, kind api.Kind, src, locale string) records.Document {
	t.Helper()
	raw, err := records.Decode([]byte(src))
	require.NoError(t, err)
	doc, err := records.Normalize(kind, raw, locale)
	require.NoError(t, err)
	return doc
}

func compose(t *testing.T, doc records.Document, l Labels) *pdf.Recorder {
	t.Helper()
	rec := pdf.NewRecorder(pdf.A4.Dimensions())
	b := pdf.NewBuilder(rec)
	require.NoError(t, NewReportManager().Compose(b, doc, l))
	return rec
}

func ofType[T pdf.Widget](widgets []pdf.Widget) []T {
	return lo.FilterMap(widgets, func(w pdf.Widget, _ int) (T, bool) {
		typed, ok := w.(T)
		return typed, ok
	})
}

// indexOf returns the position of the first drawn text containing s.
func indexOf(texts []string, s string) int {
	_, i, ok := lo.FindIndexOf(texts, func(t string) bool { return strings.Contains(t, s) })
	if !ok {
		return -1
	}
	return i
}

func TestAgendaWithoutInterviews(t *testing.T) {
	doc := normalize(t, api.KindAgenda, "from: 2024-06-01\nto: 2024-06-07\ninterviewer: Ruiz Soto Carlos Andrés\n", "en")

	widgets, err := NewReportManager().Widgets(doc, LabelsFor("en"))
	require.NoError(t, err)

	paragraphs := ofType[pdf.Paragraph](widgets)
	require.Len(t, paragraphs, 1)
	assert.Equal(t, "No interviews scheduled for this period.", paragraphs[0].Text)
	assert.Empty(t, ofType[pdf.Table](widgets))

	rec := compose(t, doc, LabelsFor("en"))
	assert.Contains(t, rec.Texts(0), "No interviews scheduled for this period.")
	assert.Equal(t, 1, rec.PageCount())
}

func TestAgendaWithoutInterviewsSpanish(t *testing.T) {
	widgets, err := Agenda(&records.InterviewAgenda{}, LabelsFor("es"))
	require.NoError(t, err)
	paragraphs := ofType[pdf.Paragraph](widgets)
	require.Len(t, paragraphs, 1)
	assert.Equal(t, "No hay entrevistas programadas para este período.", paragraphs[0].Text)
}

func TestAgendaTable(t *testing.T) {
	doc := normalize(t, api.KindAgenda, `
from: 2024-06-01
to: 2024-06-07
interviewer: "García López, Juan Carlos"
interviews:
  - {date: 2024-06-02, time: "10:30", name: "Pérez, Ana", purpose: Temple recommend, location: Office}
  - {date: 2024-06-02, time: "9:00", name: Soto Díaz Luis Alberto}
`, "en")

	widgets, err := Agenda(doc, LabelsFor("en"))
	require.NoError(t, err)
	tables := ofType[pdf.Table](widgets)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{"When", "Name", "Purpose", "Location"}, tables[0].Headers)
	assert.Equal(t, [][]string{
		{"Jun 2 09:00", "Luis Alberto Soto Díaz", "", ""},
		{"Jun 2 10:30", "Ana Pérez", "Temple recommend", "Office"},
	}, tables[0].Rows)

	lines := ofType[pdf.LabeledLine](widgets)
	require.Len(t, lines, 1)
	assert.Equal(t, "Juan Carlos García López", lines[0].Value)
}

func TestSacramentalProgram(t *testing.T) {
	doc := normalize(t, api.KindSacramental, `
date: 2024-03-10
presider: "Carlos Ruiz | Bishop"
director: "Juan Gómez | First Counselor"
chorister: Eva Paz
organist: "Luis Vera | Ward Organist"
bishopric:
  - "Carlos Ruiz | bishop"
  - "Juan Gómez | first counselor"
  - "Pedro Alba | second counselor"
visitingAuthority: "Marta Díaz | Stake Relief Society President; Juan Gómez"
announcements: '["Ward conference next Sunday", "Temple trip on Saturday"]'
openingHymn: "2 - The Spirit of God"
openingPrayer: Ana Ruiz
sacramentHymn: "169 - As Now We Take the Sacrament"
speakers: [Luis Soto, "Ana Vera | Youth Speaker", Pedro Núñez]
intermediateHymn: "85 - How Firm a Foundation"
intermediateAfter: 1
closingHymn: "152 - God Be with You"
closingPrayer: Marta Soto
`, "en")

	rec := compose(t, doc, LabelsFor("en"))
	texts := rec.Texts(0)

	assert.Contains(t, texts, "Sacrament Meeting Program")
	assert.Contains(t, texts, "Sunday, March 10, 2024")
	assert.Contains(t, texts, "Presides:")
	assert.Contains(t, texts, "Bishop")
	assert.Contains(t, texts, "Recognition:")
	assert.NotEqual(t, -1, indexOf(texts, "Pedro Alba, Second Counselor of the Bishopric"))
	assert.NotEqual(t, -1, indexOf(texts, "Marta Díaz"))
	assert.Equal(t, -1, indexOf(texts, "Juan Gómez, "), "director listed again as visiting authority")

	order := []string{
		"ANNOUNCEMENTS", "Ward conference next Sunday",
		"OPENING", "The Spirit of God",
		"SACRAMENT", "As Now We Take the Sacrament",
		"PROGRAM", "Luis Soto", "How Firm a Foundation", "Ana Vera", "Pedro Núñez",
		"CLOSING", "God Be with You", "Marta Soto",
	}
	last := -1
	for _, s := range order {
		i := indexOf(texts, s)
		require.NotEqual(t, -1, i, s)
		assert.Greater(t, i, last, s)
		last = i
	}
	assert.Equal(t, -1, indexOf(texts, "WARD BUSINESS"), "empty sections are skipped")
	assert.Equal(t, -1, indexOf(texts, "NOTES"))
}

func TestWardBusiness(t *testing.T) {
	m := &records.SacramentalMeeting{
		Releases: []records.CallingChange{
			{Name: "Ana Ruiz", Calling: "President", OrganizationID: "rs"},
			{Name: "Luis Soto", Calling: "Sunday School Teacher"},
			{Name: "Eva Paz", Calling: "Secretary", OrganizationID: "rs"},
			{Calling: "Counselor", OrganizationID: "rs"},
		},
		Sustainments: []records.CallingChange{
			{Name: "Marta Díaz", Calling: "Primary President", OrganizationID: "pr"},
			{Calling: "Advisor", OrganizationID: "yw"},
		},
		Organizations: []api.OrganizationRef{{ID: "rs", Name: "Relief Society"}, {ID: "pr", Name: "Primary"}},
	}

	widgets := wardBusiness(m, LabelsFor("en"))
	paragraphs := lo.Map(ofType[pdf.Paragraph](widgets), func(p pdf.Paragraph, _ int) string { return p.Text })
	assert.Equal(t, []string{
		"The following have been released from the Relief Society:",
		"The following have been released:",
		"Those who wish to thank them for their service may do so by the uplifted hand.",
		"The following have been called to serve in Primary:",
		"Those in favor may manifest it by the uplifted hand. Those opposed, if any, may manifest it.",
	}, paragraphs)

	lists := ofType[pdf.BulletList](widgets)
	require.Len(t, lists, 3)
	assert.Equal(t, []string{"Ana Ruiz, President of the Relief Society", "Eva Paz, Secretary of the Relief Society"}, lists[0].Items)
	assert.Equal(t, []string{"Luis Soto, Sunday School Teacher"}, lists[1].Items)
	assert.Equal(t, []string{"Marta Díaz, Primary President"}, lists[2].Items)
}

func TestWardBusinessSpanish(t *testing.T) {
	m := &records.SacramentalMeeting{
		Sustainments: []records.CallingChange{
			{Name: "Marta Díaz", Calling: "Consejera", OrganizationID: "mj", OrganizationName: "Mujeres Jóvenes"},
		},
	}
	widgets := wardBusiness(m, LabelsFor("es"))
	paragraphs := ofType[pdf.Paragraph](widgets)
	require.NotEmpty(t, paragraphs)
	assert.Equal(t, "Han sido llamados a servir en la organización de las Mujeres Jóvenes:", paragraphs[0].Text)
	assert.Equal(t, []string{"Marta Díaz, Consejera de las Mujeres Jóvenes"}, ofType[pdf.BulletList](widgets)[0].Items)
}

func TestIntermediatePosition(t *testing.T) {
	fixtures := []struct {
		speakers, after, expected int
	}{
		{0, 0, 0},
		{0, 2, 0},
		{1, 0, 1},
		{3, 0, 2},
		{4, 0, 2},
		{4, 1, 1},
		{4, 4, 4},
		{4, 9, 2},
		{4, -1, 2},
	}
	for _, fixture := range fixtures {
		assert.Equal(t, fixture.expected, IntermediatePosition(fixture.speakers, fixture.after), "%+v", fixture)
	}
}

func TestTestimonyMeetingReplacesSpeakers(t *testing.T) {
	m := &records.SacramentalMeeting{
		IsTestimonyMeeting: true,
		Speakers:           []api.PersonEntry{{Name: "Luis Soto"}},
		IntermediateHymn:   "85",
	}
	widgets := program(m, LabelsFor("en"))
	require.Len(t, widgets, 1)
	assert.Contains(t, widgets[0].(pdf.Paragraph).Text, "testimony")
}

func TestCouncilMinutes(t *testing.T) {
	doc := normalize(t, api.KindCouncil, `
date: 2024-06-02
council: Ward Council
presider: "Carlos Ruiz | Bishop"
director: Juan Gómez
openingPrayer: Ana Ruiz
attendees: "Ana Ruiz | Relief Society President; Luis Soto"
agenda: ["Ward conference", "  ", "Youth camp"]
discussion: |
  The ward conference will be held in July.

  Youth camp needs two more leaders.
assignments:
  - {person: Luis Soto, task: Find camp leaders, due: 2024-06-20}
nextMeeting: June 16
`, "en")

	widgets, err := Council(doc, LabelsFor("en"))
	require.NoError(t, err)

	heading := ofType[pdf.Heading](widgets)
	require.Len(t, heading, 1)
	assert.Equal(t, "Ward Council", heading[0].Title)

	lists := ofType[pdf.BulletList](widgets)
	require.Len(t, lists, 2)
	assert.Equal(t, []string{"Ana Ruiz, Relief Society President", "Luis Soto"}, lists[0].Items)
	assert.Equal(t, []string{"Ward conference", "Youth camp"}, lists[1].Items)

	assert.Len(t, ofType[pdf.Paragraph](widgets), 2)

	tables := ofType[pdf.Table](widgets)
	require.Len(t, tables, 1)
	assert.Equal(t, [][]string{{"Luis Soto", "Find camp leaders", "2024-06-20"}}, tables[0].Rows)

	rec := compose(t, doc, LabelsFor("en"))
	texts := rec.Texts(0)
	assert.Less(t, indexOf(texts, "ATTENDANCE"), indexOf(texts, "DISCUSSION"))
	assert.Less(t, indexOf(texts, "DISCUSSION"), indexOf(texts, "Next Meeting:"))
}

func TestParagraphs(t *testing.T) {
	assert.Empty(t, Paragraphs("  \n\n "))
	assert.Len(t, Paragraphs("one\ntwo\n\n\nthree\n   \nfour"), 3)
}

func TestRoster(t *testing.T) {
	doc := normalize(t, api.KindRoster, `
date: 2024-05-05
organization: Elders Quorum
entries:
  - Pérez Soto Juan Carlos
  - {name: "Álvarez, Ana", present: false}
  - Luis Díaz
`, "es")

	widgets, err := Roster(doc, LabelsFor("es"))
	require.NoError(t, err)

	heading := ofType[pdf.Heading](widgets)[0]
	assert.Equal(t, "Registro de Asistencia", heading.Title)
	assert.Equal(t, "Elders Quorum · domingo, 5 de mayo de 2024", heading.Subtitle)

	counts := lo.Map(ofType[pdf.LabeledLine](widgets), func(l pdf.LabeledLine, _ int) string { return l.Label + "=" + l.Value })
	assert.Equal(t, []string{"Presentes=2", "Ausentes=1", "Total=3"}, counts)

	table := ofType[pdf.Table](widgets)[0]
	assert.Equal(t, [][]string{
		{"1", "Ana Álvarez", "No"},
		{"2", "Juan Carlos Pérez Soto", "Sí"},
		{"3", "Luis Díaz", "Sí"},
	}, table.Rows)
}

func TestUndatedHeadingOmitsDate(t *testing.T) {
	doc := normalize(t, api.KindCouncil, "council: Ward Council\n", "en")
	widgets, err := NewReportManager().Widgets(doc, LabelsFor("en"))
	require.NoError(t, err)

	headings := ofType[pdf.Heading](widgets)
	require.Len(t, headings, 1)
	assert.Equal(t, "Ward Council", headings[0].Title)
	assert.Empty(t, headings[0].Subtitle)
	assert.Equal(t, "council-minutes-2024-07-01.pdf", Filename(doc, time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)))
}

func TestRosterWithoutEntries(t *testing.T) {
	widgets, err := Roster(&records.AttendanceRoster{Organization: "Primary"}, LabelsFor("en"))
	require.NoError(t, err)
	assert.Empty(t, ofType[pdf.Table](widgets))
	assert.Equal(t, "No attendance recorded.", ofType[pdf.Paragraph](widgets)[0].Text)
}

func TestAssemblerRejectsOtherKinds(t *testing.T) {
	_, err := Sacramental(&records.CouncilMinutes{}, LabelsFor("en"))
	assert.Error(t, err)

	m := &ReportManager{assemblers: map[api.Kind]Assembler{}}
	_, err = m.Widgets(&records.AttendanceRoster{}, LabelsFor("en"))
	assert.ErrorContains(t, err, "unsupported document kind")
}

func TestRegisterReplacesAssembler(t *testing.T) {
	m := NewReportManager()
	m.Register(api.KindRoster, AssemblerFunc(func(records.Document, Labels) ([]pdf.Widget, error) {
		return []pdf.Widget{pdf.Paragraph{Text: "custom"}}, nil
	}))
	widgets, err := m.Widgets(&records.AttendanceRoster{}, LabelsFor("en"))
	require.NoError(t, err)
	assert.Equal(t, []pdf.Widget{pdf.Paragraph{Text: "custom"}}, widgets)
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	dated := &records.InterviewAgenda{From: api.Date{Time: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)}}
	assert.Equal(t, "interview-agenda-2024-06-01.pdf", Filename(dated, now))
	assert.Equal(t, "attendance-roster-2024-07-01.pdf", Filename(&records.AttendanceRoster{}, now))
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Acta del Consejo", Title(&records.CouncilMinutes{}, LabelsFor("es")))
	assert.Equal(t, "Primary Presidency", Title(&records.CouncilMinutes{Council: "Primary Presidency"}, LabelsFor("es")))
}
