package heuristics_test

import (
	"strings"
	"testing"

	"github.com/germanamz/humanize/pkg/heuristics"
	"github.com/germanamz/humanize/pkg/style"
	"github.com/stretchr/testify/assert"
)

const sample = "Furthermore, it is important to note that the results were reviewed by the committee. " +
	"In order to improve the process, we do not skip steps. However, the work is complex."

const longSample = "The committee met on Monday to discuss the budget for the coming year and the many " +
	"competing priorities, which included staffing and equipment and travel and training for every " +
	"department. It went well. Everyone agreed."

func TestApply_Deterministic(t *testing.T) {
	inputs := []string{"", sample, longSample, "Hail 27. Wind 28. Fog 29. Mist 30."}

	for _, in := range inputs {
		for _, tone := range style.Tones {
			for _, level := range style.Levels {
				for _, stage := range []heuristics.Stage{heuristics.Pre, heuristics.Post} {
					first := heuristics.Apply(in, tone, level, stage)
					second := heuristics.Apply(in, tone, level, stage)
					assert.Equal(t, first, second)
				}
			}
		}
	}
}

func TestApply_EmptyInput(t *testing.T) {
	assert.Empty(t, heuristics.Apply("", style.Casual, style.Aggressive, heuristics.Pre))
	assert.Empty(t, heuristics.Apply("   \n\t", style.Casual, style.Aggressive, heuristics.Post))
}

func TestApply_PreRoundTrip(t *testing.T) {
	in := "The cat sat  on the mat.\n It was warm\toutside, and the dog slept."

	got := heuristics.Apply(in, style.Professional, style.Medium, heuristics.Pre)
	assert.Equal(t, "The cat sat on the mat. It was warm outside, and the dog slept.", got)
}

func TestApply_PreStage(t *testing.T) {
	tests := []struct {
		name string
		tone style.Tone
		want string
	}{
		{
			name: "professional keeps formal verbs",
			tone: style.Professional,
			want: ", worth noting is the the committee reviewed results. to improve the process, we do not skip steps. but, the work is complex.",
		},
		{
			name: "conversational injects contractions",
			tone: style.Conversational,
			want: ", worth noting is the the committee reviewed results. to improve the process, we don't skip steps. but, the work is complex.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, heuristics.Apply(sample, tt.tone, style.Medium, heuristics.Pre))
		})
	}
}

func TestApply_PostStage(t *testing.T) {
	got := heuristics.Apply(sample, style.Conversational, style.Medium, heuristics.Post)
	assert.Equal(t, "Furthermore, it's material to note that the results were reviewed by the committee. "+
		"In order to sharpen the process, we don't skip steps. However, the work is knotted.", got)

	got = heuristics.Apply(sample, style.Conversational, style.Aggressive, heuristics.Post)
	assert.Equal(t, "Furthermore, it's material to note that the results were reviewed by the committee... "+
		"In order to sharpen the process, we don't skip steps... However, the work is knotted...", got)
}

func TestApply_PreThenPost(t *testing.T) {
	pre := heuristics.Apply(sample, style.Professional, style.Medium, heuristics.Pre)
	got := heuristics.Apply(pre, style.Professional, style.Medium, heuristics.Post)
	assert.Equal(t, ", worth noting is the the committee reviewed results. to sharpen the process, we do not skip steps. but, the work is knotted.", got)
}

func TestStripAIIsms(t *testing.T) {
	assert.Equal(t, " the plan works", heuristics.StripAIIsms("Moreover the plan works"))
	assert.Equal(t, "Let us  the data.", heuristics.StripAIIsms("Let us DELVE INTO the data."))
	assert.Equal(t, ", we win.", heuristics.StripAIIsms("In conclusion, we win."))
}

func TestApply_TemplatesAndConnectors(t *testing.T) {
	got := heuristics.Apply("We left early in order to rest. Therefore we slept.", style.Academic, style.Light, heuristics.Pre)
	assert.Equal(t, "We left early to rest. that's why we slept.", got)

	got = heuristics.Apply("As a result of rain, on the other hand, we stayed.", style.Academic, style.Light, heuristics.Pre)
	assert.Equal(t, "because of rain, by contrast, we stayed.", got)
}

func TestPassiveToActive(t *testing.T) {
	t.Run("trailing agent converts", func(t *testing.T) {
		got := heuristics.PassiveToActive("The report was written by Alice.")
		assert.Equal(t, "The Alice written report.", got)
		assert.NotContains(t, got, "was written by")
	})

	t.Run("plural agent with exclamation", func(t *testing.T) {
		got := heuristics.PassiveToActive("Bugs were fixed by the night shift!")
		assert.Equal(t, "the night shift fixed Bugs!", got)
	})

	t.Run("no terminal punctuation stays", func(t *testing.T) {
		in := "The report was written by Alice and reviewed later"
		assert.Equal(t, in, heuristics.PassiveToActive(in))
	})

	t.Run("no agent stays", func(t *testing.T) {
		in := "The report was written yesterday."
		assert.Equal(t, in, heuristics.PassiveToActive(in))
	})

	t.Run("participle without ed or en stays", func(t *testing.T) {
		in := "The song was sung by Bob."
		assert.Equal(t, in, heuristics.PassiveToActive(in))
	})
}

func TestRotateSynonyms(t *testing.T) {
	assert.Equal(t,
		"It is meaningful to polish straightforward things. Shape steady.",
		heuristics.RotateSynonyms("It is important to improve simple things. Create help."),
	)
	assert.Equal(t,
		"Meaningful work can lay out how layered systems elevate.",
		heuristics.RotateSynonyms("Important work can show how complex systems improve."),
	)
}

func TestRotateSynonyms_ShortWordsUntouched(t *testing.T) {
	in := "We use it."
	assert.Equal(t, in, heuristics.RotateSynonyms(in))
}

func TestInjectBurstiness(t *testing.T) {
	t.Run("single sentence unchanged", func(t *testing.T) {
		in := "Just  one sentence here"
		assert.Equal(t, in, heuristics.InjectBurstiness(in, style.Medium))
	})

	t.Run("splits long at comma and merges short", func(t *testing.T) {
		want := "The committee met on Monday to discuss the budget for the coming year and the many " +
			"competing priorities. which included staffing and equipment and travel and training for every " +
			"department. It went well. -- Everyone agreed."

		assert.Equal(t, want, heuristics.InjectBurstiness(longSample, style.Medium))
		assert.Equal(t, want, heuristics.InjectBurstiness(longSample, style.Aggressive))
	})

	t.Run("splits at midpoint without comma", func(t *testing.T) {
		words := make([]string, 26)
		for i := range words {
			words[i] = "word"
		}
		long := strings.Join(words, " ") + "."
		in := long + " This closing line has exactly eight words here."

		got := heuristics.InjectBurstiness(in, style.Medium)
		want := strings.Join(words[:13], " ") + ". " + strings.Join(words[13:], " ") + ". This closing line has exactly eight words here."
		assert.Equal(t, want, got)

		// 26 words is under the aggressive long threshold.
		assert.Equal(t, in, heuristics.InjectBurstiness(in, style.Aggressive))
	})

	t.Run("short threshold depends on level", func(t *testing.T) {
		in := "One two three four five six seven. Next sentence follows right here now."
		assert.Equal(t, "One two three four five six seven. -- Next sentence follows right here now.",
			heuristics.InjectBurstiness(in, style.Light))
		assert.Equal(t, in, heuristics.InjectBurstiness(in, style.Aggressive))
	})
}

func TestVaryPunctuation(t *testing.T) {
	in := "Hail 27. Wind 28. Fog 29. Mist 30."
	assert.Equal(t, "Hail 27... Wind 28. Fog 29. Mist 30.", heuristics.VaryPunctuation(in, style.Medium))
	assert.Equal(t, "Hail 27... Wind 28... Fog 29... Mist 30...", heuristics.VaryPunctuation(in, style.Aggressive))

	in = "We ran. We hid. We won. We left. We slept."
	assert.Equal(t, in, heuristics.VaryPunctuation(in, style.Light))
	assert.Equal(t, "We ran... We hid... We won... We left... We slept...", heuristics.VaryPunctuation(in, style.Aggressive))
}

func TestVaryPunctuation_Rate(t *testing.T) {
	in := strings.Repeat("x. ", 100)

	medium := heuristics.VaryPunctuation(in, style.Medium)
	aggressive := heuristics.VaryPunctuation(in, style.Aggressive)

	assert.Equal(t, 20, strings.Count(medium, "..."))
	assert.Equal(t, 35, strings.Count(aggressive, "..."))
}

func TestSeed(t *testing.T) {
	assert.Equal(t, int64(0), heuristics.Seed(""))
	assert.Equal(t, int64(97), heuristics.Seed("a"))
	assert.Equal(t, int64(99162322), heuristics.Seed("hello"))
	// Hashes to the minimum int32; the absolute value must not overflow.
	assert.Equal(t, int64(2147483648), heuristics.Seed("polygenelubricants"))
}

func TestSentences(t *testing.T) {
	assert.Nil(t, heuristics.Sentences("  "))
	assert.Equal(t, []string{"Hi there!", "How are you?", "Fine"}, heuristics.Sentences(" Hi  there! How are\nyou? Fine"))
	assert.Equal(t, []string{"Version 1.5 is out."}, heuristics.Sentences("Version 1.5 is out."))
}

func TestWordCount(t *testing.T) {
	assert.Equal(t, 0, heuristics.WordCount(""))
	assert.Equal(t, 3, heuristics.WordCount(" one\ttwo  three "))
}
