package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	fixtures := []struct {
		name     string
		input    string
		expected string
	}{
		{"comma form", "García López, Juan Carlos", "Juan Carlos García López"},
		{"comma form with blank given", "García López,", "García López"},
		{"single token", "Cher", "Cher"},
		{"two tokens unchanged", "Juan García", "Juan García"},
		{"blank", "   ", ""},
		{"double surname double given", "García López Juan Carlos", "Juan Carlos García López"},
		{"double surname single given", "García López Juan", "Juan García López"},
		{"particle surname", "van der Berg Anna", "Anna van der Berg"},
		{"tie keeps single given", "de la Fuente Pérez María", "María de la Fuente Pérez"},
		{"four tokens with particle", "Juan de la Cruz", "Cruz Juan de la"},
		{"extra whitespace", "  Gómez   Ruiz  Ana   María ", "Ana María Gómez Ruiz"},
	}
	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			assert.Equal(t, fixture.expected, Normalize(fixture.input))
		})
	}
}

func TestNormalizeTwoTokensIsIdentity(t *testing.T) {
	for _, name := range []string{"Juan García", "Ana de", "maría pérez", "Pérez Juan"} {
		assert.Equal(t, name, Normalize(name))
		assert.Equal(t, name, Normalize(Normalize(name)))
	}
}

func TestParticleNeverLeadsGivenNames(t *testing.T) {
	inputs := []string{
		"Juan de la Cruz",
		"Pérez de Juan",
		"García López y",
		"de los Santos Martín Pedro",
		"Cruz del Río Ana",
		"María de las Nieves Soto",
	}
	for _, input := range inputs {
		best, ok := BestSplit(strings.Fields(input))
		if !assert.True(t, ok, input) {
			continue
		}
		assert.NotEmpty(t, best.Given, input)
		assert.NotEmpty(t, best.Surname, input)
		assert.Equal(t, len(strings.Fields(input)), len(best.Given)+len(best.Surname), input)
		assert.False(t, IsParticle(best.Given[0]), "%s: given names start with a particle", input)
	}
}

func TestSplitScore(t *testing.T) {
	fixtures := []struct {
		split Split
		score float64
	}{
		{Split{Surname: []string{"Juan", "de", "la"}, Given: []string{"Cruz"}}, 1.5},
		{Split{Surname: []string{"Juan", "de"}, Given: []string{"la", "Cruz"}}, -1},
		{Split{Surname: []string{"García", "López"}, Given: []string{"Juan"}}, 1.5},
		{Split{Surname: []string{"García"}, Given: []string{"López", "Juan"}}, 1},
		{Split{Surname: []string{"A", "B", "C", "D"}, Given: []string{"E"}}, 1},
	}
	for _, fixture := range fixtures {
		assert.Equal(t, fixture.score, fixture.split.Score(), fixture.split.Display())
	}
}

func TestCandidatesOrder(t *testing.T) {
	c := Candidates([]string{"A", "B", "C"})
	if assert.Len(t, c, 2) {
		assert.Equal(t, []string{"C"}, c[0].Given)
		assert.Equal(t, []string{"B", "C"}, c[1].Given)
	}
	assert.Len(t, Candidates([]string{"A", "B"}), 1)
	assert.Empty(t, Candidates([]string{"A"}))
}

func TestFold(t *testing.T) {
	assert.Equal(t, "jose perez", Fold("  José   PÉREZ "))
	assert.Equal(t, "nunez", Fold("Núñez"))
	assert.True(t, Same("Juan Gómez", "juan gomez"))
	assert.False(t, Same("", ""))
	assert.True(t, ContainsFold("Presidenta de la Sociedad de Socorro", "sociedad de socorro"))
	assert.False(t, ContainsFold("Presidenta", ""))
}
