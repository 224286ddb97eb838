package tagger

import (
	"strings"
	"unicode"
)

// token pairs a normalized form with the surface form it was first
// seen as. The extractor uses surfaces as display names.
type token struct {
	Norm    string
	Surface string
}

// elisionPrefixes are French elided articles/pronouns stripped before
// normalization: "l'ocean" → "ocean", "qu'il" → "il".
var elisionPrefixes = []string{"l'", "d'", "j'", "n'", "s'", "t'", "c'", "m'", "qu'"}

// tokenize splits text into normalized tokens with surfaces, dropping
// empty, short, purely numeric, and stopword candidates. One pass,
// order preserved.
func tokenize(text string) []token {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' && r != '\''
	})

	tokens := make([]token, 0, len(fields))
	for _, f := range fields {
		surface := stripElision(f)
		n := Normalize(surface)
		if len(n) < 2 || isNumeric(n) || IsStopword(n) {
			continue
		}
		tokens = append(tokens, token{Norm: n, Surface: surface})
	}
	return tokens
}

// Tokenize returns the filtered stream of normalized unigrams for text,
// in source order.
func Tokenize(text string) []string {
	toks := tokenize(text)
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Norm
	}
	return out
}

// Bigrams joins every adjacent pair of surviving tokens with an
// underscore. Members are double-checked against the stopword set even
// though Tokenize already filters; a future tokenizer swap must not be
// able to leak stopwords into bigrams. Produces max(0, n-1) candidates.
func Bigrams(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]string, 0, len(tokens)-1)
	for i := 0; i < len(tokens)-1; i++ {
		if IsStopword(tokens[i]) || IsStopword(tokens[i+1]) {
			continue
		}
		out = append(out, tokens[i]+"_"+tokens[i+1])
	}
	return out
}

// stripElision removes a leading French elided article ("l'", "qu'", ...).
func stripElision(s string) string {
	lower := strings.ToLower(s)
	for _, p := range elisionPrefixes {
		if strings.HasPrefix(lower, p) && len(s) > len(p) {
			return s[len(p):]
		}
	}
	return s
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
