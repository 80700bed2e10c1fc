package heuristics

import (
	"strings"
	"unicode/utf16"
)

// Seed hashes text into a non-negative integer. It reproduces the classic
// 32-bit string hash h = h*31 + c over UTF-16 code units with two's-complement
// wraparound, so the value is stable across runtimes and Go versions.
func Seed(text string) int64 {
	var h int32
	for _, u := range utf16.Encode([]rune(text)) {
		h = (h << 5) - h + int32(u)
	}

	s := int64(h)
	if s < 0 {
		s = -s
	}
	return s
}

// Normalize collapses every whitespace run to a single space and trims.
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Sentences splits text into sentences after normalizing whitespace. A
// sentence ends at '.', '!' or '?' followed by whitespace; the terminal
// punctuation stays with its sentence.
func Sentences(text string) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		out     []string
		current []string
	)
	for _, w := range words {
		current = append(current, w)
		if endsSentence(w) {
			out = append(out, strings.Join(current, " "))
			current = current[:0]
		}
	}
	if len(current) > 0 {
		out = append(out, strings.Join(current, " "))
	}
	return out
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

func endsSentence(w string) bool {
	switch w[len(w)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}
