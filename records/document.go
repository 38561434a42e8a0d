package records

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/names"
)

// Document is one of the typed record variants. The set is closed.
type Document interface {
	Kind() api.Kind
	// Date is the date the document is about; zero when not provided
	Date() api.Date
	normalize(locale string)
}

// CallingChange is a release or sustainment.
type CallingChange struct {
	Name             string `json:"name"`
	Calling          string `json:"calling,omitempty"`
	OrganizationID   string `json:"organizationId,omitempty"`
	OrganizationName string `json:"organizationName,omitempty"`
}

// UnmarshalJSON accepts "Name | Calling" or an object.
func (c *CallingChange) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p := api.ParsePersonEntry(s)
		*c = CallingChange{Name: p.Name, Calling: p.Calling}
		return nil
	}
	type plain CallingChange
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("calling change must be a string or an object: %w", err)
	}
	*c = CallingChange(obj)
	c.Name = strings.TrimSpace(c.Name)
	c.Calling = strings.TrimSpace(c.Calling)
	c.OrganizationID = strings.TrimSpace(c.OrganizationID)
	return nil
}

// SacramentalMeeting is the input of a sacramental meeting program.
type SacramentalMeeting struct {
	Held               api.Date              `json:"date"`
	Presider           api.PersonEntry       `json:"presider"`
	Director           api.PersonEntry       `json:"director"`
	Chorister          api.PersonEntry       `json:"chorister"`
	Organist           api.PersonEntry       `json:"organist"`
	Bishopric          []api.PersonEntry     `json:"bishopric"`
	Recognition        []api.PersonEntry     `json:"recognition"`
	VisitingAuthority  []api.PersonEntry     `json:"visitingAuthority"`
	Announcements      []string              `json:"announcements"`
	OpeningHymn        string                `json:"openingHymn"`
	OpeningPrayer      api.PersonEntry       `json:"openingPrayer"`
	SacramentHymn      string                `json:"sacramentHymn"`
	IntermediateHymn   string                `json:"intermediateHymn"`
	IntermediateAfter  int                   `json:"intermediateAfter"`
	Speakers           []api.PersonEntry     `json:"speakers"`
	IsTestimonyMeeting bool                  `json:"isTestimonyMeeting"`
	Releases           []CallingChange       `json:"releases"`
	Sustainments       []CallingChange       `json:"sustainments"`
	Organizations      []api.OrganizationRef `json:"organizations"`
	ClosingHymn        string                `json:"closingHymn"`
	ClosingPrayer      api.PersonEntry       `json:"closingPrayer"`
	Notes              string                `json:"notes"`
}

func (m *SacramentalMeeting) Kind() api.Kind { return api.KindSacramental }
func (m *SacramentalMeeting) Date() api.Date { return m.Held }

func (m *SacramentalMeeting) normalize(locale string) {
	m.Bishopric = nonEmpty(m.Bishopric)
	m.Speakers = nonEmpty(m.Speakers)
	m.VisitingAuthority = FilterVisiting(m.VisitingAuthority, m.Director, m.Presider)
	m.Recognition = AssembleRecognition(m.Recognition, m.Bishopric, m.Director, m.Presider, locale)
	m.Announcements = lo.Filter(m.Announcements, func(s string, _ int) bool { return strings.TrimSpace(s) != "" })
}

// Assignment is an action item recorded in council minutes.
type Assignment struct {
	Person api.PersonEntry `json:"person"`
	Task   string          `json:"task"`
	Due    string          `json:"due,omitempty"`
}

// UnmarshalJSON accepts a bare task string or an object.
func (a *Assignment) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Assignment{Task: strings.TrimSpace(s)}
		return nil
	}
	type plain Assignment
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("assignment must be a string or an object: %w", err)
	}
	*a = Assignment(obj)
	return nil
}

// CouncilMinutes is the input of ward or organization council minutes.
type CouncilMinutes struct {
	Held             api.Date          `json:"date"`
	Council          string            `json:"council"`
	Presider         api.PersonEntry   `json:"presider"`
	Director         api.PersonEntry   `json:"director"`
	OpeningPrayer    api.PersonEntry   `json:"openingPrayer"`
	ClosingPrayer    api.PersonEntry   `json:"closingPrayer"`
	SpiritualThought string            `json:"spiritualThought"`
	Attendees        []api.PersonEntry `json:"attendees"`
	Agenda           []string          `json:"agenda"`
	Discussion       string            `json:"discussion"`
	Assignments      []Assignment      `json:"assignments"`
	NextMeeting      string            `json:"nextMeeting"`
}

func (c *CouncilMinutes) Kind() api.Kind { return api.KindCouncil }
func (c *CouncilMinutes) Date() api.Date { return c.Held }

func (c *CouncilMinutes) normalize(string) {
	c.Attendees = lo.UniqBy(nonEmpty(c.Attendees), func(p api.PersonEntry) string { return names.Fold(p.Name) })
	c.Assignments = lo.Filter(c.Assignments, func(a Assignment, _ int) bool { return strings.TrimSpace(a.Task) != "" })
}

// Interview is one scheduled interview.
type Interview struct {
	Date     api.Date `json:"date"`
	Time     string   `json:"time"`
	Name     string   `json:"name"`
	Purpose  string   `json:"purpose,omitempty"`
	Location string   `json:"location,omitempty"`
}

// InterviewAgenda lists interviews scheduled for a period.
type InterviewAgenda struct {
	From        api.Date    `json:"from"`
	To          api.Date    `json:"to"`
	Interviewer string      `json:"interviewer"`
	Interviews  []Interview `json:"interviews"`
}

func (a *InterviewAgenda) Kind() api.Kind { return api.KindAgenda }
func (a *InterviewAgenda) Date() api.Date { return a.From }

var clockLayouts = []string{"15:04", "3:04PM", "3:04 PM", "3PM", "3 PM"}

// clock reformats a time of day as HH:MM, or returns s trimmed when it is
// not a recognised time.
func clock(s string) string {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, strings.ToUpper(s)); err == nil {
			return t.Format("15:04")
		}
	}
	return s
}

func (a *InterviewAgenda) normalize(string) {
	a.Interviews = lo.FilterMap(a.Interviews, func(i Interview, _ int) (Interview, bool) {
		i.Name = strings.Join(strings.Fields(i.Name), " ")
		if i.Time == "" && i.Date.HasClock() {
			i.Time = i.Date.Format("15:04")
		}
		i.Time = clock(i.Time)
		return i, i.Name != ""
	})
	sort.SliceStable(a.Interviews, func(x, y int) bool {
		ix, iy := a.Interviews[x], a.Interviews[y]
		if dx, dy := ix.Date.ISO(), iy.Date.ISO(); dx != dy {
			return dx < dy
		}
		return ix.Time < iy.Time
	})
}

// RosterEntry is one member of an attendance roster.
type RosterEntry struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
}

// UnmarshalJSON accepts a bare name, meaning present, or an object whose
// missing present flag also means present.
func (r *RosterEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RosterEntry{Name: strings.TrimSpace(s), Present: true}
		return nil
	}
	var obj struct {
		Name    string `json:"name"`
		Present *bool  `json:"present"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("roster entry must be a name or an object: %w", err)
	}
	*r = RosterEntry{Name: strings.TrimSpace(obj.Name), Present: obj.Present == nil || *obj.Present}
	return nil
}

// AttendanceRoster records who attended an organization meeting.
type AttendanceRoster struct {
	Taken        api.Date      `json:"date"`
	Organization string        `json:"organization"`
	Entries      []RosterEntry `json:"entries"`
}

func (r *AttendanceRoster) Kind() api.Kind { return api.KindRoster }
func (r *AttendanceRoster) Date() api.Date { return r.Taken }

func (r *AttendanceRoster) normalize(string) {
	r.Entries = lo.Filter(r.Entries, func(e RosterEntry, _ int) bool { return e.Name != "" })
}

// New returns an empty document of the given kind.
func New(kind api.Kind) (Document, error) {
	switch kind {
	case api.KindSacramental:
		return &SacramentalMeeting{}, nil
	case api.KindCouncil:
		return &CouncilMinutes{}, nil
	case api.KindAgenda:
		return &InterviewAgenda{}, nil
	case api.KindRoster:
		return &AttendanceRoster{}, nil
	}
	return nil, fmt.Errorf("unknown document kind %q", kind)
}

// Normalize coerces raw, decodes it into the variant for kind and applies
// the cross-field rules. locale selects role labels.
func Normalize(kind api.Kind, raw Raw, locale string) (Document, error) {
	doc, err := New(kind)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(Coerce(kind, raw))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", kind, err)
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s record: %w", kind, err)
	}
	doc.normalize(locale)
	log.Debugf("normalized %s record dated %s", kind, doc.Date().ISO())
	return doc, nil
}

func nonEmpty(people []api.PersonEntry) []api.PersonEntry {
	return lo.Filter(people, func(p api.PersonEntry, _ int) bool { return !p.IsEmpty() })
}
