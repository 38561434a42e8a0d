package pdf

import (
	"strings"
)

// WrapText greedily breaks text into lines no wider than maxWidth as reported
// by measure. Explicit newlines start a new line and blank input lines are
// kept. Words wider than maxWidth are broken between runes.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := ""
		for _, word := range words {
			if maxWidth > 0 && measure(word) > maxWidth {
				if line != "" {
					lines = append(lines, line)
				}
				chunks := breakWord(word, maxWidth, measure)
				lines = append(lines, chunks[:len(chunks)-1]...)
				line = chunks[len(chunks)-1]
				continue
			}
			if line == "" {
				line = word
				continue
			}
			candidate := line + " " + word
			if maxWidth > 0 && measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = word
			} else {
				line = candidate
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func breakWord(word string, maxWidth float64, measure func(string) float64) []string {
	var chunks []string
	current := ""
	for _, r := range word {
		next := current + string(r)
		if current != "" && measure(next) > maxWidth {
			chunks = append(chunks, current)
			next = string(r)
		}
		current = next
	}
	return append(chunks, current)
}

// hangingWrap wraps the first line to first and every following line to rest,
// for values that start after a label and continue at the left margin.
func hangingWrap(c Canvas, text string, first, rest float64, font Font) []string {
	head, tail, hasTail := strings.Cut(text, "\n")
	lines := c.WrapToWidth(head, first, font)
	if len(lines) == 0 {
		lines = []string{""}
	}
	out := []string{lines[0]}
	if len(lines) > 1 {
		out = append(out, c.WrapToWidth(strings.Join(lines[1:], " "), rest, font)...)
	}
	if hasTail {
		out = append(out, c.WrapToWidth(tail, rest, font)...)
	}
	return out
}
