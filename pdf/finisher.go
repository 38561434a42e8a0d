package pdf

import (
	"bytes"
	"fmt"
	"image"

	"github.com/flanksource/wardclerk/api"
)

const (
	// HeaderBandHeight is the height of the coloured band on every page
	HeaderBandHeight = 24.0
	logoHeight       = 16.0
	footerRuleOffset = 16.0
	footerTextOffset = 11.0
)

// Finisher stamps the header band and footer on every page once the body
// is composed, when the total page count is known.
type Finisher struct {
	Template api.Template
	MarginX  float64
	// PageLabel formats the centred footer label; nil uses English.
	PageLabel func(page, total int) string
}

// Finish visits pages 1..N and draws the chrome on each.
func (f Finisher) Finish(c Canvas) error {
	total := c.PageCount()
	if total == 0 {
		return nil
	}
	if f.MarginX == 0 {
		f.MarginX = DefaultMarginX
	}
	label := f.PageLabel
	if label == nil {
		label = func(page, total int) string { return fmt.Sprintf("Page %d of %d", page, total) }
	}
	width, height := c.PageSize()
	header := api.MustColor(f.Template.HeaderColor, api.Color{R: 31, G: 58, B: 95})
	logo, logoWidth := f.logo()
	region := f.Template.Region()

	wardFont := Font{Family: "Helvetica", Style: Bold, Size: 14}
	regionFont := Font{Family: "Helvetica", Size: 9}
	footerFont := Font{Family: "Helvetica", Size: 8}

	for page := 1; page <= total; page++ {
		c.SetPage(page)

		c.SetFillColor(header)
		c.DrawRect(0, 0, width, HeaderBandHeight, true)
		c.SetTextColor(api.White)
		c.DrawText(f.Template.WardName, f.MarginX, 11, wardFont)
		if region != "" {
			c.DrawText(region, f.MarginX, 17.5, regionFont)
		}
		if len(logo) > 0 {
			x := width - f.MarginX - logoWidth
			if err := c.DrawImage("logo", logo, x, (HeaderBandHeight-logoHeight)/2, logoWidth, logoHeight); err != nil {
				log.Warnf("skipping logo: %v", err)
				logo = nil
			}
		}

		c.SetDrawColor(api.Color{R: 200, G: 200, B: 200})
		c.DrawLine(f.MarginX, height-footerRuleOffset, width-f.MarginX, height-footerRuleOffset)
		c.SetTextColor(api.Gray)
		y := height - footerTextOffset
		if region != "" {
			c.DrawText(region, f.MarginX, y, footerFont)
		}
		center := label(page, total)
		c.DrawText(center, (width-c.MeasureWidth(center, footerFont))/2, y, footerFont)
		if f.Template.FooterText != "" {
			c.DrawText(f.Template.FooterText, width-f.MarginX-c.MeasureWidth(f.Template.FooterText, footerFont), y, footerFont)
		}
	}
	c.SetPage(total)
	c.SetTextColor(api.Black)
	return nil
}

// logo returns the template logo and its width when drawn logoHeight tall,
// or nil when the logo cannot be decoded.
func (f Finisher) logo() ([]byte, float64) {
	data := f.Template.Logo
	if len(data) == 0 {
		return nil, 0
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		log.Warnf("skipping logo: %v", err)
		return nil, 0
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		log.Warnf("skipping logo: empty image %dx%d", cfg.Width, cfg.Height)
		return nil, 0
	}
	return data, logoHeight * float64(cfg.Width) / float64(cfg.Height)
}
