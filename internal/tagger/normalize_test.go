package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Vent", "vent"},
		{"Poème", "poeme"},
		{"OCÉAN", "ocean"},
		{"vagues", "vague"},
		{"chevaux", "cheval"},
		{"  mer  ", "mer"},
		{"(mer)", "mer"},
		{"mer,", "mer"},
		{"porte-plume", "porte-plume"},
		{"l'eau", "l'eau"},
		{"deep  Learning", "deep learning"},
		{"", ""},
		{"...", ""},
		{"---", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Normalize(c.in), "Normalize(%q)", c.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Vagues", "chevaux", "Poème marin", "l'océan", "dansent",
		"porte-plumes", "très", "  Mixed CASE  ", "canaux", "basses",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", in)
	}
}

func TestNormalizeSingularThreshold(t *testing.T) {
	// Short tokens are never singularized.
	assert.Equal(t, "bus", Normalize("bus"))
	assert.Equal(t, "gas", Normalize("gas"))
	// Double-s endings are kept.
	assert.Equal(t, "tendress", Normalize("tendress"))
}

func TestNormalizeWithCustomSingularizer(t *testing.T) {
	none := noopSingularizer{}
	assert.Equal(t, "vagues", NormalizeWith("Vagues", none))
	assert.Equal(t, "vague", NormalizeWith("Vagues", SuffixSingularizer{}))
}

type noopSingularizer struct{}

func (noopSingularizer) Singular(s string) string { return s }
