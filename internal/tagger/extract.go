package tagger

import "sort"

// Scoring constants. These are the behavioral contract: a body unigram
// occurrence is worth 1, a title unigram occurrence adds 2, body and
// title bigram occurrences are worth 1.5 and 2.5. All buckets sum per
// normalized key.
const (
	BodyUnigramWeight  = 1.0
	TitleUnigramWeight = 2.0
	BodyBigramWeight   = 1.5
	TitleBigramWeight  = 2.5
)

// DefaultTopN is the tag count returned when the caller does not ask
// for a specific limit.
const DefaultTopN = 20

// IngestTopN is the wider candidate set used at ingestion time, so the
// co-occurrence graph sees more than the query-time top slice.
const IngestTopN = 30

// ScoredTag is one ranked extraction result. Name is the first-seen
// surface form for unigrams and the normalized underscore join for
// bigrams.
type ScoredTag struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// candidate accumulates the score for one normalized key.
type candidate struct {
	name  string
	score float64
	order int
}

// Extract combines unigram and bigram streams from body and title into
// a ranked tag list: score descending, ties broken by first-occurrence
// order, truncated to topN. topN <= 0 is clamped to 1; extraction never
// fails on string input, so empty text yields an empty list.
func Extract(text, title string, topN int) []ScoredTag {
	if topN <= 0 {
		topN = 1
	}

	byKey := make(map[string]*candidate)
	order := 0

	add := func(key, name string, weight float64) {
		c, ok := byKey[key]
		if !ok {
			c = &candidate{name: name, order: order}
			byKey[key] = c
			order++
		}
		c.score += weight
	}

	bodyTokens := tokenize(text)
	for _, t := range bodyTokens {
		add(t.Norm, t.Surface, BodyUnigramWeight)
	}
	for i := 0; i < len(bodyTokens)-1; i++ {
		a, b := bodyTokens[i], bodyTokens[i+1]
		if IsStopword(a.Norm) || IsStopword(b.Norm) {
			continue
		}
		bg := a.Norm + "_" + b.Norm
		add(bg, bg, BodyBigramWeight)
	}

	titleTokens := tokenize(title)
	for _, t := range titleTokens {
		add(t.Norm, t.Surface, TitleUnigramWeight)
	}
	for i := 0; i < len(titleTokens)-1; i++ {
		a, b := titleTokens[i], titleTokens[i+1]
		if IsStopword(a.Norm) || IsStopword(b.Norm) {
			continue
		}
		bg := a.Norm + "_" + b.Norm
		add(bg, bg, TitleBigramWeight)
	}

	ranked := make([]*candidate, 0, len(byKey))
	for _, c := range byKey {
		ranked = append(ranked, c)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].order < ranked[j].order
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]ScoredTag, len(ranked))
	for i, c := range ranked {
		out[i] = ScoredTag{Name: c.name, Score: c.score}
	}
	return out
}
