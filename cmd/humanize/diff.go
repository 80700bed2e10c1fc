package main

import (
	"fmt"
	"strings"

	"github.com/germanamz/humanize/pkg/heuristics"
	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff returns a unified diff between input and output with one
// sentence per line, so that prose diffs stay readable. Returns an empty
// string when both split to the same sentences.
func unifiedDiff(input, output string) string {
	diff := difflib.UnifiedDiff{
		A:        sentenceLines(input),
		B:        sentenceLines(output),
		FromFile: "input",
		ToFile:   "output",
		Context:  2,
	}

	result, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return fmt.Sprintf("(diff error: %v)", err)
	}

	return result
}

func sentenceLines(text string) []string {
	sentences := heuristics.Sentences(text)
	lines := make([]string, len(sentences))
	for i, s := range sentences {
		lines[i] = strings.TrimSpace(s) + "\n"
	}
	return lines
}
