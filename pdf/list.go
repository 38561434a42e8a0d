package pdf

import (
	"strings"
)

const (
	// ContinuationIndent offsets wrapped bullet lines past the bullet
	ContinuationIndent = 4.0
	defaultBullet      = "•"
	listGap            = 1.0
)

// BulletList renders one bullet per item. Blank items leave a half-line gap.
type BulletList struct {
	Items  []string `json:"items,omitempty"`
	Indent float64  `json:"indent,omitempty"`
	Bullet string   `json:"bullet,omitempty"`
	Size   float64  `json:"size,omitempty"`
}

// Draw implements the Widget interface
func (l BulletList) Draw(b *Builder) error {
	if len(l.Items) == 0 {
		return nil
	}
	if l.Bullet == "" {
		l.Bullet = defaultBullet
	}
	c := b.cursor
	font := b.Font(l.Size, Regular)
	lh := b.LineHeight(l.Size)
	x := c.MarginX + l.Indent
	width := c.ContentWidth() - l.Indent - ContinuationIndent

	for _, item := range l.Items {
		if strings.TrimSpace(item) == "" {
			c.Y += lh / 2
			continue
		}
		for i, line := range b.canvas.WrapToWidth(item, width, font) {
			if i == 0 {
				b.line(l.Bullet+" "+line, x, font, lh)
			} else {
				b.line(line, x+ContinuationIndent, font, lh)
			}
		}
	}
	c.Y += listGap
	return nil
}
