// Package tagger extracts weighted keyword and bigram tags from free text.
//
// The pipeline is pure: Normalize canonicalizes a single token, Tokenize
// produces the filtered unigram stream, Bigrams derives adjacent pairs,
// and Extract scores everything into a ranked tag list. No I/O happens
// here; persistence is the store's job.
package tagger

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minSingularLen is the minimum cleaned-token length before the
// singularization heuristic applies. Shorter tokens ("les", "bus")
// are left alone.
const minSingularLen = 5

// stripMarks removes diacritics: NFD decomposition, drop combining
// marks, recompose. "Poème" → "Poeme".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Singularizer reduces a cleaned, lower-cased token to a singular form.
// The default is a naive suffix stripper; it is a separate strategy so
// it can be swapped without touching the tokenizer or extractor.
type Singularizer interface {
	Singular(token string) string
}

// SuffixSingularizer strips common French/English plural suffixes.
// It is heuristic and will happily mis-singularize ("souris" → "souri");
// tags only need to collide consistently, not be dictionary words.
type SuffixSingularizer struct{}

func (SuffixSingularizer) Singular(token string) string {
	if len(token) < minSingularLen {
		return token
	}
	switch {
	case strings.HasSuffix(token, "aux"):
		return strings.TrimSuffix(token, "aux") + "al"
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss"):
		return strings.TrimSuffix(token, "s")
	}
	return token
}

// defaultSingularizer is used by Normalize. Swap via NormalizeWith.
var defaultSingularizer Singularizer = SuffixSingularizer{}

// Normalize maps a raw token to its canonical form: lower-case, strip
// diacritics, drop characters that are not letters, digits, or internal
// hyphen/underscore/apostrophe, trim non-alphanumeric edges, collapse
// internal whitespace, then singularize. Returns "" for degenerate
// input; callers must drop empty results. Idempotent.
func Normalize(token string) string {
	return NormalizeWith(token, defaultSingularizer)
}

// NormalizeWith is Normalize with an explicit singularization strategy.
func NormalizeWith(token string, sing Singularizer) string {
	s := strings.ToLower(strings.TrimSpace(token))
	if s == "" {
		return ""
	}

	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}

	// Collapse internal whitespace runs to a single space, then drop
	// everything outside the allowed tag alphabet.
	s = strings.Join(strings.Fields(s), " ")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '\'' || r == ' ':
			b.WriteRune(r)
		}
	}
	s = b.String()

	s = strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if s == "" {
		return ""
	}

	if sing != nil {
		s = sing.Singular(s)
	}
	return s
}
