// Package wardclerk turns congregation meeting records into paginated,
// branded PDF documents.
package wardclerk

import (
	"bytes"
	"fmt"
	"time"

	"github.com/flanksource/commons/logger"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/flanksource/wardclerk/api"
	"github.com/flanksource/wardclerk/pdf"
	"github.com/flanksource/wardclerk/records"
	"github.com/flanksource/wardclerk/reports"
)

var log = logger.GetLogger("wardclerk")

// Options control one render.
type Options struct {
	Locale   string
	PageSize pdf.PageSize
	// Template is the branding; blank fields take the locale default
	Template api.Template
	// Now dates the metadata and undated filenames; nil is time.Now
	Now   func() time.Time
	Debug bool
}

func (o Options) withDefaults() Options {
	if o.Locale == "" {
		o.Locale = "en"
	}
	if o.PageSize == "" {
		o.PageSize = pdf.A4
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	o.Template = o.Template.WithDefaults(o.Locale)
	return o
}

// Result describes a rendered document.
type Result struct {
	ID       uuid.UUID
	Kind     api.Kind
	Title    string
	Filename string
	Pages    int
	// Bytes is the PDF, nil for a dry run
	Bytes []byte
}

// Parse decodes and normalizes one input record of kind.
func Parse(kind api.Kind, input []byte, locale string) (records.Document, error) {
	if !lo.Contains(api.Kinds, kind) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if len(bytes.TrimSpace(input)) == 0 {
		return nil, ErrEmptyInput
	}
	raw, err := records.Decode(input)
	if err != nil {
		return nil, err
	}
	return records.Normalize(kind, raw, locale)
}

// Render composes the record into a PDF.
func Render(kind api.Kind, input []byte, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	doc, err := Parse(kind, input, opts.Locale)
	if err != nil {
		return nil, err
	}

	result := newResult(doc, opts)
	canvas := pdf.NewFPDF(opts.PageSize)
	canvas.SetMetadata(pdf.Metadata{
		Title:    result.Title,
		Author:   opts.Template.WardName,
		Subject:  result.ID.String(),
		Keywords: string(kind),
		Created:  opts.Now(),
	})
	if err := Compose(canvas, doc, opts); err != nil {
		return nil, err
	}
	if result.Bytes, err = canvas.Bytes(); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", result.Filename, err)
	}
	result.Pages = canvas.PageCount()
	log.Infof("rendered %s (%d pages)", result.Filename, result.Pages)
	return result, nil
}

// DryRun composes the record on a recording canvas instead of a PDF.
func DryRun(kind api.Kind, input []byte, opts Options) (*Result, *pdf.Recorder, error) {
	opts = opts.withDefaults()
	doc, err := Parse(kind, input, opts.Locale)
	if err != nil {
		return nil, nil, err
	}
	result := newResult(doc, opts)
	rec := pdf.NewRecorder(opts.PageSize.Dimensions())
	if err := Compose(rec, doc, opts); err != nil {
		return nil, nil, err
	}
	result.Pages = rec.PageCount()
	return result, rec, nil
}

// Compose draws doc on canvas, then stamps the header and footer on every
// page.
func Compose(canvas pdf.Canvas, doc records.Document, opts Options) error {
	opts = opts.withDefaults()
	labels := reports.LabelsFor(opts.Locale)
	b := pdf.NewBuilder(canvas,
		pdf.WithTheme(pdf.ThemeFromTemplate(opts.Template, opts.Locale)),
		pdf.WithDebug(opts.Debug),
	)
	if err := reports.NewReportManager().Compose(b, doc, labels); err != nil {
		return fmt.Errorf("failed to compose %s: %w", doc.Kind(), err)
	}
	finisher := pdf.Finisher{
		Template:  opts.Template,
		MarginX:   b.Cursor().MarginX,
		PageLabel: labels.PageLabel,
	}
	return finisher.Finish(canvas)
}

func newResult(doc records.Document, opts Options) *Result {
	return &Result{
		ID:       uuid.New(),
		Kind:     doc.Kind(),
		Title:    reports.Title(doc, reports.LabelsFor(opts.Locale)),
		Filename: reports.Filename(doc, opts.Now()),
	}
}
