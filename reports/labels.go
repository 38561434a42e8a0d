package reports

import (
	"fmt"
	"strings"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/pdf"
)

// Labels is the fixed text of every document in one language.
type Labels struct {
	Locale string
	Titles map[api.Kind]string

	// column block
	Presides            string
	Directs             string
	Recognition         string
	VisitingAuthorities string
	Chorister           string
	Organist            string

	// sacramental program
	Announcements    string
	Opening          string
	OpeningHymn      string
	Invocation       string
	WardBusiness     string
	ReleasedFrom     string // %s is the organization phrase
	Released         string
	ReleaseFormula   string
	CalledTo         string // %s is the organization phrase
	Called           string
	SustainFormula   string
	Sacrament        string
	SacramentHymn    string
	SacramentText    string
	Program          string
	Speaker          string
	IntermediateHymn string
	TestimonyMeeting string
	Closing          string
	ClosingHymn      string
	Benediction      string
	Notes            string

	// council minutes
	OpeningPrayer    string
	ClosingPrayer    string
	SpiritualThought string
	Attendance       string
	Agenda           string
	Discussion       string
	Assignments      string
	Person           string
	Assignment       string
	Due              string
	NextMeeting      string

	// interview agenda
	Interviewer  string
	Period       string
	When         string
	Name         string
	Purpose      string
	Location     string
	NoInterviews string

	// attendance roster
	Present   string
	Absent    string
	Total     string
	Number    string
	Yes       string
	No        string
	NoEntries string

	Months   [12]string
	Weekdays [7]string
	// PageOf is the footer label, page then total
	PageOf string
}

var english = Labels{
	Locale: "en",
	Titles: map[api.Kind]string{
		api.KindSacramental: "Sacrament Meeting Program",
		api.KindCouncil:     "Council Minutes",
		api.KindAgenda:      "Interview Agenda",
		api.KindRoster:      "Attendance Roster",
	},
	Presides:            "Presides",
	Directs:             "Directs",
	Recognition:         "Recognition",
	VisitingAuthorities: "Visiting Authorities",
	Chorister:           "Chorister",
	Organist:            "Organist",

	Announcements:    "Announcements",
	Opening:          "Opening",
	OpeningHymn:      "Opening Hymn",
	Invocation:       "Invocation",
	WardBusiness:     "Ward Business",
	ReleasedFrom:     "The following have been released from %s:",
	Released:         "The following have been released:",
	ReleaseFormula:   "Those who wish to thank them for their service may do so by the uplifted hand.",
	CalledTo:         "The following have been called to serve in %s:",
	Called:           "The following have been called to serve:",
	SustainFormula:   "Those in favor may manifest it by the uplifted hand. Those opposed, if any, may manifest it.",
	Sacrament:        "Sacrament",
	SacramentHymn:    "Sacrament Hymn",
	SacramentText:    "Administration of the Sacrament",
	Program:          "Program",
	Speaker:          "Speaker",
	IntermediateHymn: "Intermediate Hymn",
	TestimonyMeeting: "Fast and testimony meeting. The pulpit is open for members to bear their testimonies.",
	Closing:          "Closing",
	ClosingHymn:      "Closing Hymn",
	Benediction:      "Benediction",
	Notes:            "Notes",

	OpeningPrayer:    "Opening Prayer",
	ClosingPrayer:    "Closing Prayer",
	SpiritualThought: "Spiritual Thought",
	Attendance:       "Attendance",
	Agenda:           "Agenda",
	Discussion:       "Discussion",
	Assignments:      "Assignments",
	Person:           "Person",
	Assignment:       "Assignment",
	Due:              "Due",
	NextMeeting:      "Next Meeting",

	Interviewer:  "Interviewer",
	Period:       "Period",
	When:         "When",
	Name:         "Name",
	Purpose:      "Purpose",
	Location:     "Location",
	NoInterviews: "No interviews scheduled for this period.",

	Present:   "Present",
	Absent:    "Absent",
	Total:     "Total",
	Number:    "#",
	Yes:       "Yes",
	No:        "No",
	NoEntries: "No attendance recorded.",

	Months: [12]string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"},
	Weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	PageOf:   "Page %d of %d",
}

var spanish = Labels{
	Locale: "es",
	Titles: map[api.Kind]string{
		api.KindSacramental: "Programa de la Reunión Sacramental",
		api.KindCouncil:     "Acta del Consejo",
		api.KindAgenda:      "Agenda de Entrevistas",
		api.KindRoster:      "Registro de Asistencia",
	},
	Presides:            "Preside",
	Directs:             "Dirige",
	Recognition:         "Reconocimiento",
	VisitingAuthorities: "Autoridades Visitantes",
	Chorister:           "Director de Música",
	Organist:            "Organista",

	Announcements:    "Anuncios",
	Opening:          "Apertura",
	OpeningHymn:      "Himno de Apertura",
	Invocation:       "Primera Oración",
	WardBusiness:     "Asuntos del Barrio",
	ReleasedFrom:     "Han sido relevados %s:",
	Released:         "Han sido relevados:",
	ReleaseFormula:   "Quienes deseen agradecerles su servicio pueden hacerlo levantando la mano.",
	CalledTo:         "Han sido llamados a servir en la organización %s:",
	Called:           "Han sido llamados a servir:",
	SustainFormula:   "Quienes estén a favor, sírvanse manifestarlo levantando la mano. Si alguien se opone, puede manifestarlo.",
	Sacrament:        "Santa Cena",
	SacramentHymn:    "Himno Sacramental",
	SacramentText:    "Administración de la Santa Cena",
	Program:          "Programa",
	Speaker:          "Discursante",
	IntermediateHymn: "Himno Intermedio",
	TestimonyMeeting: "Reunión de ayuno y testimonios. El púlpito queda abierto para que los miembros compartan su testimonio.",
	Closing:          "Clausura",
	ClosingHymn:      "Himno Final",
	Benediction:      "Última Oración",
	Notes:            "Notas",

	OpeningPrayer:    "Primera Oración",
	ClosingPrayer:    "Última Oración",
	SpiritualThought: "Pensamiento Espiritual",
	Attendance:       "Asistencia",
	Agenda:           "Temas",
	Discussion:       "Deliberación",
	Assignments:      "Asignaciones",
	Person:           "Persona",
	Assignment:       "Asignación",
	Due:              "Plazo",
	NextMeeting:      "Próxima Reunión",

	Interviewer:  "Entrevistador",
	Period:       "Período",
	When:         "Fecha",
	Name:         "Nombre",
	Purpose:      "Motivo",
	Location:     "Lugar",
	NoInterviews: "No hay entrevistas programadas para este período.",

	Present:   "Presentes",
	Absent:    "Ausentes",
	Total:     "Total",
	Number:    "#",
	Yes:       "Sí",
	No:        "No",
	NoEntries: "No se registró asistencia.",

	Months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
	Weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	PageOf:   "Página %d de %d",
}

// LabelsFor returns the label set for locale; anything that is not Spanish
// gets English.
func LabelsFor(locale string) Labels {
	if api.IsSpanish(locale) {
		return spanish
	}
	return english
}

// Title is the document title for kind.
func (l Labels) Title(kind api.Kind) string {
	if t, ok := l.Titles[kind]; ok {
		return t
	}
	return string(kind)
}

// Rules localizes the column balancer's special labels.
func (l Labels) Rules() *pdf.Rules {
	return &pdf.Rules{
		BreakBefore:    []string{l.Recognition},
		CallingOwnLine: []string{l.Presides, l.Directs},
	}
}

// PageLabel formats the centred footer label.
func (l Labels) PageLabel(page, total int) string {
	return fmt.Sprintf(l.PageOf, page, total)
}

// LongDate renders "Sunday, March 10, 2024" or "domingo, 10 de marzo de 2024".
// The zero date renders as "".
func (l Labels) LongDate(d api.Date) string {
	if d.IsZero() {
		return ""
	}
	weekday := l.Weekdays[d.Weekday()]
	month := l.Months[d.Month()-1]
	if api.IsSpanish(l.Locale) {
		return fmt.Sprintf("%s, %d de %s de %d", weekday, d.Day(), month, d.Year())
	}
	return fmt.Sprintf("%s, %s %d, %d", weekday, month, d.Day(), d.Year())
}

// ShortDate renders "Jun 2" or "2 jun".
func (l Labels) ShortDate(d api.Date) string {
	if d.IsZero() {
		return ""
	}
	month := []rune(l.Months[d.Month()-1])
	if len(month) > 3 {
		month = month[:3]
	}
	if api.IsSpanish(l.Locale) {
		return fmt.Sprintf("%d %s", d.Day(), string(month))
	}
	return fmt.Sprintf("%s %d", string(month), d.Day())
}

// DateRange renders a from/to range, collapsing missing or equal ends.
func (l Labels) DateRange(from, to api.Date) string {
	parts := []string{}
	for _, d := range []api.Date{from, to} {
		if s := l.LongDate(d); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 2 && parts[0] == parts[1] {
		parts = parts[:1]
	}
	return strings.Join(parts, " – ")
}
