// Package scoring estimates how human a text reads, either from local
// statistics (sentence-length spread and lexical variety) or from an external
// detector's AI probability.
package scoring

import (
	"math"
	"strings"

	"github.com/germanamz/humanize/pkg/heuristics"
)

// HeuristicFloor is the lowest confidence reported without a detector signal.
const HeuristicFloor = 50

// Burstiness returns the population standard deviation of per-sentence word
// counts divided by 12, capped at 1. Empty text scores 0.
func Burstiness(text string) float64 {
	sentences := heuristics.Sentences(text)
	if len(sentences) == 0 {
		return 0
	}

	lengths := make([]float64, len(sentences))
	var sum float64
	for i, s := range sentences {
		lengths[i] = float64(heuristics.WordCount(s))
		sum += lengths[i]
	}
	avg := sum / float64(len(lengths))

	var variance float64
	for _, l := range lengths {
		variance += (l - avg) * (l - avg)
	}
	variance /= float64(len(lengths))

	return clamp(math.Sqrt(variance)/12, 0, 1)
}

// LexicalVariety returns the share of distinct lowercased words plus 0.1,
// capped at 1. Empty text scores 0.
func LexicalVariety(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0
	}

	unique := make(map[string]struct{}, len(words))
	for _, w := range words {
		unique[w] = struct{}{}
	}

	return clamp(float64(len(unique))/float64(len(words))+0.1, 0, 1)
}

// Confidence returns a 0-100 score of how human text reads. A detector score
// takes precedence: confidence is (1 - detector) * 100. Without one, the
// weighted local statistics are scaled by a length penalty and floored at
// HeuristicFloor.
func Confidence(text string, detector *float64) int {
	if detector != nil {
		return int(clamp(round((1-*detector)*100), 0, 100))
	}

	lengthPenalty := clamp(float64(heuristics.WordCount(text))/200, 0.5, 1)
	raw := (Burstiness(text)*55 + LexicalVariety(text)*45) * lengthPenalty

	return int(clamp(round(raw), HeuristicFloor, 100))
}

// round rounds half up, matching the usual UI rounding of scores.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
