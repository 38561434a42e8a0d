package pdf

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/flanksource/wardclerk/api"
)

// FPDF is the gofpdf backed Canvas. Text is translated to cp1252 before it
// is measured or drawn; runes outside it are replaced by gofpdf.
type FPDF struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	images    map[string]bool
	width     float64
	height    float64
}

// NewFPDF creates an empty portrait document with no margins or automatic
// page breaks; the Builder owns both.
func NewFPDF(size PageSize) *FPDF {
	pdf := gofpdf.New("P", "mm", string(size), "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(0.3)
	pdf.SetFont("Helvetica", "", 10)
	w, h := pdf.GetPageSize()
	return &FPDF{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		images:    map[string]bool{},
		width:     w,
		height:    h,
	}
}

// Metadata describes the produced document
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Created  time.Time
}

// SetMetadata sets the document information dictionary
func (f *FPDF) SetMetadata(m Metadata) {
	f.pdf.SetTitle(m.Title, true)
	f.pdf.SetAuthor(m.Author, true)
	f.pdf.SetSubject(m.Subject, true)
	f.pdf.SetKeywords(m.Keywords, true)
	f.pdf.SetCreator("wardclerk", true)
	if !m.Created.IsZero() {
		f.pdf.SetCreationDate(m.Created)
		f.pdf.SetModificationDate(m.Created)
	}
}

func (f *FPDF) setFont(font Font) {
	family := font.Family
	if family == "" {
		family = "Helvetica"
	}
	size := font.Size
	if size <= 0 {
		size = 10
	}
	f.pdf.SetFont(family, string(font.Style), size)
}

// MeasureWidth implements Canvas
func (f *FPDF) MeasureWidth(text string, font Font) float64 {
	f.setFont(font)
	return f.pdf.GetStringWidth(f.translate(text))
}

// WrapToWidth implements Canvas
func (f *FPDF) WrapToWidth(text string, maxWidth float64, font Font) []string {
	return WrapText(text, maxWidth, func(s string) float64 {
		return f.MeasureWidth(s, font)
	})
}

// DrawText implements Canvas
func (f *FPDF) DrawText(text string, x, y float64, font Font) {
	f.setFont(font)
	f.pdf.Text(x, y, f.translate(text))
}

// DrawLine implements Canvas
func (f *FPDF) DrawLine(x1, y1, x2, y2 float64) {
	f.pdf.Line(x1, y1, x2, y2)
}

// DrawRect implements Canvas
func (f *FPDF) DrawRect(x, y, w, h float64, fill bool) {
	style := "D"
	if fill {
		style = "F"
	}
	f.pdf.Rect(x, y, w, h, style)
}

// DrawImage implements Canvas. An image gofpdf cannot embed is reported and
// the error gofpdf recorded for it is cleared, leaving the document usable.
func (f *FPDF) DrawImage(name string, data []byte, x, y, w, h float64) error {
	if err := f.pdf.Error(); err != nil {
		return err
	}
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	options := gofpdf.ImageOptions{ImageType: imageType(format)}
	if options.ImageType == "" {
		return fmt.Errorf("unsupported image format %q for %s", format, name)
	}
	if !f.images[name] {
		f.pdf.RegisterImageOptionsReader(name, options, bytes.NewReader(data))
		if err := f.pdf.Error(); err != nil {
			f.pdf.ClearError()
			return fmt.Errorf("failed to register image %s: %w", name, err)
		}
		f.images[name] = true
	}
	f.pdf.ImageOptions(name, x, y, w, h, false, options, 0, "")
	if err := f.pdf.Error(); err != nil {
		f.pdf.ClearError()
		return fmt.Errorf("failed to draw image %s: %w", name, err)
	}
	return nil
}

func imageType(format string) string {
	switch format {
	case "png":
		return "PNG"
	case "jpeg":
		return "JPG"
	case "gif":
		return "GIF"
	}
	return ""
}

// SetTextColor implements Canvas
func (f *FPDF) SetTextColor(c api.Color) {
	f.pdf.SetTextColor(c.R, c.G, c.B)
}

// SetDrawColor implements Canvas
func (f *FPDF) SetDrawColor(c api.Color) {
	f.pdf.SetDrawColor(c.R, c.G, c.B)
}

// SetFillColor implements Canvas
func (f *FPDF) SetFillColor(c api.Color) {
	f.pdf.SetFillColor(c.R, c.G, c.B)
}

// NewPage implements Canvas
func (f *FPDF) NewPage() {
	f.pdf.AddPage()
}

// PageCount implements Canvas
func (f *FPDF) PageCount() int {
	return f.pdf.PageCount()
}

// SetPage implements Canvas
func (f *FPDF) SetPage(n int) {
	f.pdf.SetPage(n)
}

// PageSize implements Canvas
func (f *FPDF) PageSize() (float64, float64) {
	return f.width, f.height
}

// Err returns the first error gofpdf recorded, if any
func (f *FPDF) Err() error {
	return f.pdf.Error()
}

// Output writes the finished document
func (f *FPDF) Output(w io.Writer) error {
	if err := f.pdf.Output(w); err != nil {
		return fmt.Errorf("failed to generate PDF: %w", err)
	}
	return nil
}

// Bytes renders the finished document into memory
func (f *FPDF) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
