package humanizer

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/modeladapter/usage"
	"github.com/germanamz/humanize/pkg/providers"
	"github.com/germanamz/humanize/pkg/style"
)

// MaxOptionsLen is the number of characters of free-form user options kept
// after trimming.
const MaxOptionsLen = 2000

var (
	// ErrEmptyInput is returned when the input text is blank.
	ErrEmptyInput = errors.New("humanizer: input text is empty")
	// ErrInvalidLevel is returned for a level outside the known set.
	ErrInvalidLevel = errors.New("humanizer: invalid level")
	// ErrInvalidTone is returned for a tone outside the known set.
	ErrInvalidTone = errors.New("humanizer: invalid tone")
	// ErrStage wraps any failure of a language-model stage.
	ErrStage = errors.New("humanizer: stage failed")
)

// ProviderSettings selects the remote provider, its credential and the
// configured model list. The first model serves the rewrite stages, the second
// the preservation check.
type ProviderSettings struct {
	Provider providers.ID `json:"provider"`
	APIToken string       `json:"-"`
	Models   []string     `json:"models,omitempty"`
}

// Request is one humanization invocation.
type Request struct {
	Text  string      `json:"text"`
	Level style.Level `json:"level"`
	Tone  style.Tone  `json:"tone"`
	// Provider may be nil, which means no credential and a fallback run.
	Provider *ProviderSettings `json:"provider,omitempty"`
	// Model is the caller's preferred rewrite model. It applies only when it is
	// in the provider's model list.
	Model   string `json:"model,omitempty"`
	Options string `json:"options,omitempty"`
	// Settings override the level's generation defaults.
	Settings modeladapter.Settings `json:"settings"`
}

// Result is the outcome of a successful run.
type Result struct {
	OutputText      string   `json:"outputText"`
	ConfidenceScore int      `json:"confidenceScore"`
	DetectorScore   *float64 `json:"detectorScore,omitempty"`
	UsedFallback    bool     `json:"usedFallback"`
	// Escalated reports that the detector score triggered the aggressive pass.
	Escalated bool `json:"escalated"`
	// MeaningChanged reports a CHANGED verdict from the preservation check.
	MeaningChanged bool             `json:"meaningChanged"`
	Usage          usage.TokenCount `json:"usage"`
}

// normalize validates req and returns the trimmed input, the sanitized
// options, and the effective provider settings.
func (req Request) normalize() (text, options string, ps ProviderSettings, err error) {
	text = strings.TrimSpace(req.Text)
	if text == "" {
		return "", "", ProviderSettings{}, ErrEmptyInput
	}
	if !req.Level.Valid() {
		return "", "", ProviderSettings{}, fmt.Errorf("%w: %q", ErrInvalidLevel, req.Level)
	}
	if !req.Tone.Valid() {
		return "", "", ProviderSettings{}, fmt.Errorf("%w: %q", ErrInvalidTone, req.Tone)
	}

	options = truncate(strings.TrimSpace(req.Options), MaxOptionsLen)

	ps = ProviderSettings{Provider: providers.OpenAI}
	if req.Provider != nil {
		ps = *req.Provider
		if ps.Provider == "" {
			ps.Provider = providers.OpenAI
		}
	}

	return text, options, ps, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
