// Package usage normalizes token accounting across provider response shapes
// and accumulates it over the stages of one pipeline run.
package usage

import "sync"

// TokenCount holds the token counts reported for a single LLM call.
// Chat-completion APIs report prompt/completion/total tokens, message-block
// APIs report input/output tokens only; both map onto this type.
type TokenCount struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens,omitempty"`
}

// Total returns the reported total, or the sum of input and output tokens
// when the provider did not report one.
func (tc TokenCount) Total() int {
	if tc.TotalTokens > 0 {
		return tc.TotalTokens
	}
	return tc.InputTokens + tc.OutputTokens
}

// Tracker accumulates token usage across multiple LLM calls.
// It is safe for concurrent use.
type Tracker struct {
	mu      sync.Mutex
	entries []TokenCount
}

// Add records a token count entry.
func (t *Tracker) Add(tc TokenCount) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.entries = append(t.entries, tc)
}

// Total returns the aggregate token count across all entries.
func (t *Tracker) Total() TokenCount {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total TokenCount
	for _, e := range t.entries {
		total.InputTokens += e.InputTokens
		total.OutputTokens += e.OutputTokens
		total.TotalTokens += e.Total()
	}

	return total
}

// Count returns the number of recorded entries.
func (t *Tracker) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.entries)
}
