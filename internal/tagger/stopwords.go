package tagger

// stopwords is the fixed French + English function-word set excluded
// from tagging. Checked after normalization, so accented forms ("où",
// "être") are listed in their stripped spelling. Kept conservative:
// only words that carry no topical signal in either language.
var stopwords = map[string]bool{
	// French articles, pronouns, determiners
	"le": true, "la": true, "les": true, "un": true, "une": true,
	"des": true, "du": true, "de": true, "d'": true, "au": true,
	"aux": true, "ce": true, "cet": true, "cette": true, "ces": true,
	"mon": true, "ton": true, "son": true, "ma": true, "ta": true,
	"sa": true, "mes": true, "tes": true, "ses": true, "notre": true,
	"votre": true, "leur": true, "nos": true, "vos": true, "leurs": true,
	"je": true, "tu": true, "il": true, "elle": true, "on": true,
	"nous": true, "vous": true, "ils": true, "elles": true, "lui": true,
	"moi": true, "toi": true, "soi": true, "eux": true, "y": true,
	"qui": true, "que": true, "quoi": true, "dont": true, "ou": true,
	// French conjunctions, prepositions, adverbs
	"et": true, "mais": true, "donc": true, "or": true, "ni": true,
	"car": true, "ne": true, "pas": true, "plus": true, "moins": true,
	"tres": true, "sur": true, "sous": true, "dans": true, "par": true,
	"pour": true, "avec": true, "sans": true, "entre": true, "vers": true,
	"chez": true, "si": true, "comme": true, "aussi": true, "bien": true,
	"tout": true, "tous": true, "toute": true, "toutes": true,
	"autre": true, "meme": true, "encore": true, "alors": true,
	"quand": true, "apres": true, "avant": true, "ici": true,
	// Normalized spellings: the singularizer rewrites "alors" → "alor",
	// "moins" → "moin", "apres" → "apre" before the stopword check runs.
	"alor": true, "moin": true, "apre": true,
	// French auxiliaries
	"est": true, "sont": true, "etait": true, "etre": true, "avoir": true,
	"a": true, "ont": true, "sera": true, "fut": true, "en": true,
	"se": true, "s'": true, "c'est": true,
	// English articles, pronouns, determiners
	"the": true, "an": true, "this": true, "that": true, "these": true,
	"those": true, "it": true, "its": true, "you": true, "your": true,
	"they": true, "them": true, "their": true, "our": true, "she": true,
	"her": true, "his": true, "him": true, "we": true, "us": true,
	"my": true, "me": true, "i": true, "who": true, "whom": true,
	"which": true, "what": true, "when": true, "where": true, "how": true,
	"why": true,
	// English conjunctions, prepositions, adverbs
	"and": true, "but": true, "not": true, "nor": true, "for": true,
	"with": true, "from": true, "into": true, "about": true, "than": true,
	"then": true, "over": true, "under": true, "out": true, "up": true,
	"in": true, "to": true, "as": true, "at": true,
	"by": true, "of": true, "so": true, "no": true, "if": true,
	"also": true, "just": true, "only": true, "very": true, "here": true,
	"there": true,
	// English auxiliaries
	"is": true, "are": true, "was": true, "were": true, "be": true,
	"been": true, "being": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "can": true, "may": true, "might": true,
}

// IsStopword reports whether a normalized token is in the stopword set.
func IsStopword(token string) bool {
	return stopwords[token]
}
