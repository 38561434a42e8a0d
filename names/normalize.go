// Package names reorders free-text person names into display order
// ("Given Surname") and provides the folding used for name comparisons.
//
// Names arrive from membership exports as "Surname(s) Given(s)" or
// "Surname(s), Given(s)". The comma form is unambiguous. Without a comma the
// split point is guessed by scoring candidate splits, see Normalize.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// particles are tokens that belong to surnames ("de la Cruz", "van Dijk").
var particles = map[string]bool{
	"da": true, "das": true, "de": true, "del": true, "della": true,
	"der": true, "den": true, "di": true, "do": true, "dos": true,
	"du": true, "la": true, "las": true, "le": true, "los": true,
	"san": true, "santa": true, "van": true, "von": true, "y": true,
}

// IsParticle reports whether tok is a known surname particle.
func IsParticle(tok string) bool {
	return particles[strings.ToLower(tok)]
}

func startsLower(tok string) bool {
	r, _ := utf8.DecodeRuneInString(tok)
	return unicode.IsLower(r)
}

// weak tokens are particles or tokens starting with a lower-case letter.
func weak(tok string) bool {
	return IsParticle(tok) || startsLower(tok)
}

// Split is a candidate division of the name tokens.
type Split struct {
	Surname []string
	Given   []string
}

// Display joins the split in display order.
func (s Split) Display() string {
	return strings.Join(append(append([]string{}, s.Given...), s.Surname...), " ")
}

// Score rates how plausible the split is. The weights are empirical and must
// stay as they are: changing them silently reorders existing users' names.
func (s Split) Score() float64 {
	score := 0.0
	if len(s.Surname) > 0 && len(s.Given) > 0 &&
		(IsParticle(s.Surname[len(s.Surname)-1]) || IsParticle(s.Given[0])) {
		score -= 2
	}
	for _, tok := range s.Surname {
		if weak(tok) {
			score++
		}
	}
	for _, tok := range s.Given {
		if weak(tok) {
			score--
		}
	}
	switch n := len(s.Given); {
	case n == 1:
		score++
	case n == 2:
		score += 0.5
	case n > 2:
		score--
	}
	if n := len(s.Surname); n >= 1 && n <= 3 {
		score += 0.5
	}
	return score
}

// Candidates returns the 1-given and 2-given splits that leave at least one
// surname token, in evaluation order.
func Candidates(tokens []string) []Split {
	var out []Split
	for given := 1; given <= 2; given++ {
		if given >= len(tokens) {
			break
		}
		cut := len(tokens) - given
		out = append(out, Split{Surname: tokens[:cut], Given: tokens[cut:]})
	}
	return out
}

// Normalize returns name in "Given Surname" display order. It is a pure
// function; it is not idempotent in general, but a two-token name is always
// returned unchanged.
func Normalize(name string) string {
	if surname, given, found := strings.Cut(name, ","); found {
		surname = strings.Join(strings.Fields(surname), " ")
		given = strings.Join(strings.Fields(given), " ")
		switch {
		case given == "":
			return surname
		case surname == "":
			return given
		}
		return given + " " + surname
	}

	tokens := strings.Fields(name)
	switch len(tokens) {
	case 0:
		return ""
	case 1, 2:
		return strings.Join(tokens, " ")
	case 4:
		if !anyWeak(tokens) {
			return strings.Join([]string{tokens[2], tokens[3], tokens[0], tokens[1]}, " ")
		}
	}

	best, _ := BestSplit(tokens)
	return best.Display()
}

// BestSplit picks the highest scoring candidate; the earlier candidate wins
// ties. ok is false when tokens cannot be split.
func BestSplit(tokens []string) (Split, bool) {
	candidates := Candidates(tokens)
	if len(candidates) == 0 {
		return Split{Given: tokens}, false
	}
	best := candidates[0]
	bestScore := best.Score()
	for _, c := range candidates[1:] {
		if s := c.Score(); s > bestScore {
			best, bestScore = c, s
		}
	}
	return best, true
}

func anyWeak(tokens []string) bool {
	for _, tok := range tokens {
		if weak(tok) {
			return true
		}
	}
	return false
}
