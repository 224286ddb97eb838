package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractScoring(t *testing.T) {
	tags := Extract("le vent souffle sur la mer, les vagues dansent", "Poème marin", 5)
	require.Len(t, tags, 5)

	// Title bigram outranks title unigrams, which outrank body bigrams.
	assert.Equal(t, ScoredTag{Name: "poeme_marin", Score: 2.5}, tags[0])
	assert.Equal(t, ScoredTag{Name: "Poème", Score: 2}, tags[1])
	assert.Equal(t, ScoredTag{Name: "marin", Score: 2}, tags[2])
	assert.Equal(t, ScoredTag{Name: "vent_souffle", Score: 1.5}, tags[3])
	assert.Equal(t, ScoredTag{Name: "souffle_mer", Score: 1.5}, tags[4])

	// No stopword ever survives extraction.
	for _, tag := range Extract("le vent souffle sur la mer, les vagues dansent", "Poème marin", 100) {
		assert.False(t, IsStopword(Normalize(tag.Name)), "stopword leaked: %q", tag.Name)
	}
}

func TestExtractNoDuplicatesAllPositive(t *testing.T) {
	text := "mer mer vague océan vague mer ciel étoile vague"
	tags := Extract(text, "Mer et vagues", 50)
	require.NotEmpty(t, tags)

	seen := make(map[string]bool)
	for _, tag := range tags {
		key := Normalize(tag.Name)
		assert.False(t, seen[key], "duplicate tag %q", tag.Name)
		seen[key] = true
		assert.Greater(t, tag.Score, 0.0)
	}
}

func TestExtractTitleBoost(t *testing.T) {
	bodyOnly := Extract("mer ciel", "", 10)
	titled := Extract("mer ciel", "mer", 10)

	score := func(tags []ScoredTag, norm string) float64 {
		for _, tag := range tags {
			if Normalize(tag.Name) == norm {
				return tag.Score
			}
		}
		return 0
	}

	assert.Equal(t, TitleUnigramWeight, score(titled, "mer")-score(bodyOnly, "mer"))
}

func TestExtractMergesBodyAndTitleOccurrences(t *testing.T) {
	// One body occurrence (1) plus one title occurrence (+2) = 3.
	tags := Extract("mer ciel", "mer", 10)
	assert.Equal(t, 3.0, tags[0].Score)
	assert.Equal(t, "mer", Normalize(tags[0].Name))
}

func TestExtractEmptyInput(t *testing.T) {
	assert.Empty(t, Extract("", "", 10))
	assert.Empty(t, Extract("le la les et ou", "", 10))
}

func TestExtractTopNClamp(t *testing.T) {
	tags := Extract("mer vague ciel", "", 0)
	require.Len(t, tags, 1)

	tags = Extract("mer vague ciel", "", -3)
	require.Len(t, tags, 1)
}

func TestExtractFirstSurfaceWins(t *testing.T) {
	tags := Extract("Vagues hautes, vagues froides", "", 10)
	var name string
	for _, tag := range tags {
		if Normalize(tag.Name) == "vague" {
			name = tag.Name
		}
	}
	assert.Equal(t, "Vagues", name)
}

func TestExtractBigramIndependentOfUnigrams(t *testing.T) {
	tags := Extract("mer vague", "", 10)
	byKey := make(map[string]float64, len(tags))
	for _, tag := range tags {
		byKey[Normalize(tag.Name)] = tag.Score
	}
	assert.Equal(t, 1.0, byKey["mer"])
	assert.Equal(t, 1.0, byKey["vague"])
	assert.Equal(t, 1.5, byKey["mer_vague"])
}
