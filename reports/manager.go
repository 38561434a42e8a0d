// Package reports composes typed records into document widgets, one
// assembler per document kind.
package reports

import (
	"fmt"
	"time"

	"github.com/flanksource/commons/logger"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
)

var log = logger.GetLogger("reports")

// Assembler turns one document into the widgets of its body.
type Assembler interface {
	Assemble(doc records.Document, l Labels) ([]pdf.Widget, error)
}

// AssemblerFunc adapts a function to Assembler.
type AssemblerFunc func(doc records.Document, l Labels) ([]pdf.Widget, error)

// Assemble implements Assembler.
func (f AssemblerFunc) Assemble(doc records.Document, l Labels) ([]pdf.Widget, error) {
	return f(doc, l)
}

type ReportManager struct {
	assemblers map[api.Kind]Assembler
}

// NewReportManager creates a manager with every document kind registered
func NewReportManager() *ReportManager {
	return &ReportManager{
		assemblers: map[api.Kind]Assembler{
			api.KindSacramental: AssemblerFunc(Sacramental),
			api.KindCouncil:     AssemblerFunc(Council),
			api.KindAgenda:      AssemblerFunc(Agenda),
			api.KindRoster:      AssemblerFunc(Roster),
		},
	}
}

// Register replaces the assembler of kind.
func (m *ReportManager) Register(kind api.Kind, a Assembler) {
	m.assemblers[kind] = a
}

// Widgets assembles doc with the assembler registered for its kind.
func (m *ReportManager) Widgets(doc records.Document, l Labels) ([]pdf.Widget, error) {
	a, ok := m.assemblers[doc.Kind()]
	if !ok {
		return nil, fmt.Errorf("unsupported document kind: %s", doc.Kind())
	}
	return a.Assemble(doc, l)
}

// Compose draws the body of doc onto b.
func (m *ReportManager) Compose(b *pdf.Builder, doc records.Document, l Labels) error {
	widgets, err := m.Widgets(doc, l)
	if err != nil {
		return err
	}
	log.Debugf("composing %s with %d widgets", doc.Kind(), len(widgets))
	return b.Draw(widgets...)
}

// Title is the title of doc, used for the heading and the PDF metadata.
func Title(doc records.Document, l Labels) string {
	if c, ok := doc.(*records.CouncilMinutes); ok && c.Council != "" {
		return c.Council
	}
	return l.Title(doc.Kind())
}

// Filename suggests "<kind>-<ISO date>.pdf", dated by the record or, when it
// has no date, by now.
func Filename(doc records.Document, now time.Time) string {
	date := doc.Date().ISO()
	if date == "" {
		date = now.Format(api.DateLayout)
	}
	return fmt.Sprintf("%s-%s.pdf", doc.Kind(), date)
}

func as[T records.Document](doc records.Document) (T, error) {
	typed, ok := doc.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("expected %T, got %T", zero, doc)
	}
	return typed, nil
}
