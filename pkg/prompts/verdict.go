package prompts

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrUnparseable is returned when a checker response holds no JSON verdict.
var ErrUnparseable = errors.New("prompts: no verdict in response")

const (
	VerdictOK      = "OK"
	VerdictChanged = "CHANGED"
)

// Verdict is the checker's structured answer. Notes is kept raw because
// models return it as a string or as a list of issues.
type Verdict struct {
	Verdict string          `json:"verdict"`
	Notes   json.RawMessage `json:"notes,omitempty"`
}

// Changed reports whether the checker flagged a meaning change.
func (v Verdict) Changed() bool {
	return strings.EqualFold(strings.TrimSpace(v.Verdict), VerdictChanged)
}

// NotesText renders Notes as plain text.
func (v Verdict) NotesText() string {
	if len(v.Notes) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(v.Notes, &s); err == nil {
		return s
	}

	var list []string
	if err := json.Unmarshal(v.Notes, &list); err == nil {
		return strings.Join(list, "; ")
	}

	return string(v.Notes)
}

var fenced = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

// ParseVerdict extracts the verdict object from a checker response. It tries
// the whole response, then a fenced code block, then the outermost brace span.
func ParseVerdict(response string) (Verdict, error) {
	response = strings.TrimSpace(response)

	candidates := []string{response}
	if m := fenced.FindStringSubmatch(response); len(m) >= 2 {
		candidates = append(candidates, strings.TrimSpace(m[1]))
	}
	if start, end := strings.Index(response, "{"), strings.LastIndex(response, "}"); start >= 0 && end > start {
		candidates = append(candidates, response[start:end+1])
	}

	for _, c := range candidates {
		var v Verdict
		if err := json.Unmarshal([]byte(c), &v); err == nil && v.Verdict != "" {
			return v, nil
		}
	}

	return Verdict{}, ErrUnparseable
}
