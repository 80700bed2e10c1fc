// Package heuristics implements the deterministic, local text rewriter used
// before and after the language-model stages of the humanization pipeline.
//
// Every function here is total over strings (the empty string included) and
// pure: pseudo-random choices are derived from [Seed] of the text being
// rewritten, never from the clock or a global random source.
//
// The post stage is not idempotent. Running it on its own output can rotate
// synonyms and reshape sentences again.
package heuristics

import (
	"regexp"
	"strings"

	"github.com/germanamz/humanize/pkg/style"
)

// Stage selects which half of the rewriter runs.
type Stage string

const (
	// Pre strips AI-isms, breaks templates, swaps connectors and converts the
	// trailing-agent passive pattern.
	Pre Stage = "pre"
	// Post rotates synonyms, rebalances sentence length and varies punctuation.
	Post Stage = "post"
)

// Apply runs the rewriter for stage. Contractions are injected at both stages
// for informal tones. The result always has whitespace collapsed and trimmed.
func Apply(text string, tone style.Tone, level style.Level, stage Stage) string {
	out := text

	if stage == Pre {
		out = StripAIIsms(out)
		out = applyTable(out, ngramBreakers)
		out = applyTable(out, connectorSwaps)
		out = PassiveToActive(out)
	}

	if tone.Informal() {
		out = applyTable(out, contractionSwaps)
	}

	if stage == Post {
		out = RotateSynonyms(out)
		out = InjectBurstiness(out, level)
		out = VaryPunctuation(out, level)
	}

	return Normalize(out)
}

// StripAIIsms removes the flagged stock phrases.
func StripAIIsms(text string) string {
	for _, re := range aiIsms {
		text = re.ReplaceAllLiteralString(text, "")
	}
	return text
}

var passivePattern = regexp.MustCompile(`(?i)\b(\w+)\s+(was|were|is|are|been|being|be)\s+(\w+(?:ed|en))\s+by\s+([^.!?]+)([.!?])`)

// PassiveToActive rewrites "<object> <be> <participle> by <agent><punct>" as
// "<agent> <participle> <object><punct>". Only a clause that runs up to the
// terminal punctuation right after the agent matches; anything else is left
// as is.
func PassiveToActive(text string) string {
	return passivePattern.ReplaceAllStringFunc(text, func(m string) string {
		g := passivePattern.FindStringSubmatch(m)
		object, participle, agent, punct := strings.TrimSpace(g[1]), g[3], strings.TrimSpace(g[4]), g[5]
		return agent + " " + participle + " " + object + punct
	})
}

var longWord = regexp.MustCompile(`\b[A-Za-z]{4,}\b`)

// RotateSynonyms replaces table words with a synonym picked by
// (Seed(text) + len(word) + first char code) mod len(options). A leading
// capital is carried over to the synonym.
func RotateSynonyms(text string) string {
	seed := Seed(text)

	return longWord.ReplaceAllStringFunc(text, func(w string) string {
		lower := strings.ToLower(w)
		options := synonyms[lower]
		if len(options) == 0 {
			return w
		}

		choice := options[(seed+int64(len(lower))+int64(w[0]))%int64(len(options))]
		if isUpper(w[0]) {
			return strings.ToUpper(choice[:1]) + choice[1:]
		}
		return choice
	})
}

// InjectBurstiness splits sentences longer than the level's long threshold
// and merges sentences shorter than its short threshold with the next one.
// Text of one sentence or less is returned unchanged.
func InjectBurstiness(text string, level style.Level) string {
	sentences := Sentences(text)
	if len(sentences) <= 1 {
		return text
	}

	short, long := level.BurstThresholds()

	out := make([]string, 0, len(sentences))
	for i := 0; i < len(sentences); {
		current := sentences[i]
		words := strings.Fields(current)

		switch {
		case len(words) > long:
			head, tail := splitLong(words)
			out = append(out, head, tail)
			i++
		case len(words) < short && i+1 < len(sentences):
			out = append(out, current+" -- "+sentences[i+1])
			i += 2
		default:
			out = append(out, current)
			i++
		}
	}

	return strings.Join(out, " ")
}

// splitLong breaks at the first comma or semicolon word past index 6,
// otherwise at the midpoint (never before word 6).
func splitLong(words []string) (string, string) {
	for idx := 7; idx < len(words); idx++ {
		if strings.ContainsAny(words[idx], ",;") {
			head := strings.Join(words[:idx+1], " ")
			if last := head[len(head)-1]; last == ',' || last == ';' {
				head = head[:len(head)-1] + "."
			}
			return head, strings.Join(words[idx+1:], " ")
		}
	}

	mid := max(6, len(words)/2)
	return strings.Join(words[:mid], " ") + ".", strings.Join(words[mid:], " ")
}

// VaryPunctuation turns full stops into ellipses where
// (Seed(text) + position) mod 100 falls under the level's rate. Positions
// count every '.' from 1.
func VaryPunctuation(text string, level style.Level) string {
	seed := Seed(text)
	rate := int64(level.EllipsisRate())

	var b strings.Builder
	b.Grow(len(text))

	var idx int64
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '.' {
			b.WriteByte(c)
			continue
		}

		idx++
		if (seed+idx)%100 < rate {
			b.WriteString("...")
		} else {
			b.WriteByte(c)
		}
	}

	return b.String()
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}
