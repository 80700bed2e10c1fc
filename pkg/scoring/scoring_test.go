package scoring_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/germanamz/humanize/pkg/scoring"
	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 { return &v }

// uniqueSentences builds sentences of the given lengths from distinct words.
func uniqueSentences(lengths ...int) string {
	var (
		sentences []string
		n         int
	)
	for _, l := range lengths {
		words := make([]string, l)
		for i := range words {
			words[i] = fmt.Sprintf("w%d", n)
			n++
		}
		sentences = append(sentences, strings.Join(words, " ")+".")
	}
	return strings.Join(sentences, " ")
}

func TestBurstiness(t *testing.T) {
	assert.Zero(t, scoring.Burstiness(""))
	assert.Zero(t, scoring.Burstiness("One two three. Four five six."))
	assert.InDelta(t, 1.0/12, scoring.Burstiness("One. Two two two."), 1e-9)
	assert.InDelta(t, 1.0, scoring.Burstiness(uniqueSentences(1, 199)), 1e-9)
}

func TestLexicalVariety(t *testing.T) {
	assert.Zero(t, scoring.LexicalVariety(""))
	assert.InDelta(t, 0.6, scoring.LexicalVariety("a A b b"), 1e-9)
	assert.InDelta(t, 1.0, scoring.LexicalVariety("all words differ here"), 1e-9)
}

func TestScoresInRange(t *testing.T) {
	texts := []string{"", "x", "Same same same same.", uniqueSentences(3, 40, 2, 90), strings.Repeat("go. ", 500)}

	for _, text := range texts {
		b := scoring.Burstiness(text)
		l := scoring.LexicalVariety(text)
		assert.GreaterOrEqual(t, b, 0.0)
		assert.LessOrEqual(t, b, 1.0)
		assert.GreaterOrEqual(t, l, 0.0)
		assert.LessOrEqual(t, l, 1.0)

		c := scoring.Confidence(text, nil)
		assert.GreaterOrEqual(t, c, scoring.HeuristicFloor)
		assert.LessOrEqual(t, c, 100)
	}
}

func TestConfidence_Detector(t *testing.T) {
	assert.Equal(t, 100, scoring.Confidence("anything", ptr(0)))
	assert.Equal(t, 0, scoring.Confidence("anything", ptr(1)))
	assert.Equal(t, 50, scoring.Confidence("anything", ptr(0.5)))
	assert.Equal(t, 88, scoring.Confidence("anything", ptr(0.123)))
	// Detector precedence also bypasses the heuristic floor.
	assert.Equal(t, 10, scoring.Confidence(uniqueSentences(1, 199), ptr(0.9)))
}

func TestConfidence_Heuristic(t *testing.T) {
	assert.Equal(t, 50, scoring.Confidence("", nil))
	assert.Equal(t, 50, scoring.Confidence("a b c d", nil))
	assert.Equal(t, 73, scoring.Confidence(uniqueSentences(94, 106), nil))
	assert.Equal(t, 100, scoring.Confidence(uniqueSentences(1, 199), nil))
}
