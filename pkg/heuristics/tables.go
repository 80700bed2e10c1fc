package heuristics

import "regexp"

// substitution is one ordered (pattern, replacement) entry of a rewrite table.
type substitution struct {
	pattern     *regexp.Regexp
	replacement string
}

func word(phrase string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(phrase) + `\b`)
}

func table(pairs ...string) []substitution {
	subs := make([]substitution, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		subs = append(subs, substitution{pattern: word(pairs[i]), replacement: pairs[i+1]})
	}
	return subs
}

// aiIsms are removed outright, case-insensitively and without word boundaries.
var aiIsms = func() []*regexp.Regexp {
	phrases := []string{
		"in conclusion",
		"delve into",
		"unlocking potential",
		"as mentioned earlier",
		"in today's world",
		"moreover",
		"furthermore",
		"additionally",
	}
	out := make([]*regexp.Regexp, len(phrases))
	for i, p := range phrases {
		out[i] = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(p))
	}
	return out
}()

// Stripping runs first, so "in conclusion" never reaches its breaker entry.
var ngramBreakers = table(
	"in conclusion", "wrapping up",
	"it is important to note that", "worth noting is",
	"as a result of", "because of",
	"in order to", "to",
	"on the other hand", "by contrast",
)

var connectorSwaps = table(
	"therefore", "that's why",
	"furthermore", "on top of that",
	"in addition", "plus",
	"moreover", "what's more",
	"additionally", "also",
	"however", "but",
)

var contractionSwaps = table(
	"do not", "don't",
	"does not", "doesn't",
	"did not", "didn't",
	"can not", "can't",
	"will not", "won't",
	"should not", "shouldn't",
	"would not", "wouldn't",
	"they are", "they're",
	"we are", "we're",
	"it is", "it's",
)

// synonyms only fire for words of four or more letters, so "use" is inert.
var synonyms = map[string][]string{
	"important": {"notable", "meaningful", "material"},
	"complex":   {"knotted", "layered", "intricate"},
	"simple":    {"plain", "clean", "straightforward"},
	"improve":   {"sharpen", "elevate", "polish"},
	"use":       {"apply", "lean on", "put to work"},
	"show":      {"reveal", "surface", "lay out"},
	"make":      {"craft", "build", "shape"},
	"help":      {"support", "steady", "back"},
	"create":    {"forge", "form", "shape"},
}

func applyTable(text string, subs []substitution) string {
	for _, s := range subs {
		text = s.pattern.ReplaceAllLiteralString(text, s.replacement)
	}
	return text
}
