// Package prompts builds the natural-language instructions sent to the
// language-model stages of the humanization pipeline and parses the
// meaning-preservation verdict that comes back.
package prompts

import (
	"strings"

	"github.com/germanamz/humanize/pkg/style"
)

// Deoptimizer builds the first rewrite instruction: a human-editor persona
// that strips AI-isms in the requested tone. The aggressive level asks for an
// unpredictable rhythm.
func Deoptimizer(text string, tone style.Tone, level style.Level, options string) string {
	intensity := "Preserve meaning while sharpening tone and flow."
	if level == style.Aggressive {
		intensity = "Be bold, varied, and unpredictable in rhythm while keeping meaning intact."
	}

	return compose(
		[]string{
			"You are a human editor. Rewrite the text to sound like a real person.",
			"Avoid AI-isms and boilerplate phrasing. No generic conclusions.",
			tone.Guide(),
			intensity,
		},
		options, text,
	)
}

// Burstiness builds the second rewrite instruction, asking for maximal
// variation of sentence length and punctuation.
func Burstiness(text string, tone style.Tone, options string) string {
	return compose(
		[]string{
			"Rewrite the text to maximize burstiness.",
			"Mix very short, punchy sentences with longer, layered ones.",
			"Vary punctuation (commas, semicolons, dashes) and sentence openings.",
			tone.Guide(),
		},
		options, text,
	)
}

// Preservation builds the checker instruction comparing the original text with
// a rewrite candidate. The model is asked for one JSON object with a verdict
// of OK or CHANGED and free-form notes.
func Preservation(original, candidate string) string {
	return strings.Join([]string{
		"Compare the original and candidate. If facts or meaning changed, say CHANGED and list the issues.",
		"If meaning is preserved, say OK.",
		"Return a short JSON object with keys: verdict (OK or CHANGED), notes.",
		"Original:",
		original,
		"Candidate:",
		candidate,
	}, "\n")
}

func compose(lines []string, options, text string) string {
	if options != "" {
		lines = append(lines, "User options: "+options)
	}
	lines = append(lines, "Output only the rewritten text.", "Text:", text)

	return strings.Join(lines, "\n")
}
