package humanizer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/germanamz/humanize/pkg/heuristics"
	"github.com/germanamz/humanize/pkg/scoring"
	"github.com/germanamz/humanize/pkg/style"
	"github.com/germanamz/humanize/pkg/tools/toolbox"
)

// Tools returns the tool surface backed by r. Tool inputs never carry
// credentials: provider settings, default level and default tone come from
// base.
func Tools(r Runner, base Request) []toolbox.Tool {
	return []toolbox.Tool{
		{
			Name:        "humanize",
			Description: "Rewrite AI-sounding text so it reads as human-written. Returns the output text with a confidence score.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"text": {"type": "string", "description": "Text to humanize"},
					"level": {"type": "string", "enum": ["light", "medium", "aggressive"]},
					"tone": {"type": "string", "enum": ["conversational", "professional", "casual", "academic", "creative"]},
					"model": {"type": "string", "description": "Preferred model, used when configured"},
					"options": {"type": "string", "description": "Free-form instructions for the rewrite"}
				},
				"required": ["text"]
			}`),
			Handler: humanizeHandler(r, base),
		},
		{
			Name:        "score",
			Description: "Score text for burstiness, lexical variety and heuristic human-likeness confidence.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {"text": {"type": "string"}},
				"required": ["text"]
			}`),
			Handler: scoreHandler,
		},
		{
			Name:        "rewrite",
			Description: "Run only the local heuristic rewriter, without any language model.",
			InputSchema: json.RawMessage(`{
				"type": "object",
				"properties": {
					"text": {"type": "string"},
					"level": {"type": "string", "enum": ["light", "medium", "aggressive"]},
					"tone": {"type": "string", "enum": ["conversational", "professional", "casual", "academic", "creative"]},
					"stage": {"type": "string", "enum": ["pre", "post"]}
				},
				"required": ["text"]
			}`),
			Handler: rewriteHandler(base),
		},
	}
}

type toolInput struct {
	Text    string `json:"text"`
	Level   string `json:"level"`
	Tone    string `json:"tone"`
	Model   string `json:"model"`
	Options string `json:"options"`
	Stage   string `json:"stage"`
}

// request fills req from in, keeping base values for omitted fields.
func (in toolInput) request(base Request) (Request, error) {
	req := base
	req.Text = in.Text

	if in.Level != "" {
		l, err := style.ParseLevel(in.Level)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %w", ErrInvalidLevel, err)
		}
		req.Level = l
	}
	if in.Tone != "" {
		t, err := style.ParseTone(in.Tone)
		if err != nil {
			return Request{}, fmt.Errorf("%w: %w", ErrInvalidTone, err)
		}
		req.Tone = t
	}
	if in.Model != "" {
		req.Model = in.Model
	}
	if in.Options != "" {
		req.Options = in.Options
	}

	return req, nil
}

func decodeInput(input json.RawMessage) (toolInput, error) {
	var in toolInput
	if err := json.Unmarshal(input, &in); err != nil {
		return toolInput{}, fmt.Errorf("invalid input: %w", err)
	}
	return in, nil
}

func humanizeHandler(r Runner, base Request) toolbox.Handler {
	return func(ctx context.Context, input json.RawMessage) (string, error) {
		in, err := decodeInput(input)
		if err != nil {
			return "", err
		}

		req, err := in.request(base)
		if err != nil {
			return "", err
		}

		res, err := r.Run(ctx, req)
		if err != nil {
			return "", err
		}

		out, err := json.Marshal(res)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

// Scores is the heuristic scoring breakdown of a text.
type Scores struct {
	Burstiness     float64 `json:"burstiness"`
	LexicalVariety float64 `json:"lexicalVariety"`
	Confidence     int     `json:"confidence"`
	Words          int     `json:"words"`
}

// Score computes the heuristic scores of text without a detector signal.
func Score(text string) Scores {
	return Scores{
		Burstiness:     scoring.Burstiness(text),
		LexicalVariety: scoring.LexicalVariety(text),
		Confidence:     scoring.Confidence(text, nil),
		Words:          heuristics.WordCount(text),
	}
}

func scoreHandler(_ context.Context, input json.RawMessage) (string, error) {
	in, err := decodeInput(input)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(Score(in.Text))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func rewriteHandler(base Request) toolbox.Handler {
	return func(_ context.Context, input json.RawMessage) (string, error) {
		in, err := decodeInput(input)
		if err != nil {
			return "", err
		}

		req, err := in.request(base)
		if err != nil {
			return "", err
		}

		stage := heuristics.Pre
		switch in.Stage {
		case "", string(heuristics.Pre):
		case string(heuristics.Post):
			stage = heuristics.Post
		default:
			return "", fmt.Errorf("humanizer: unknown stage %q", in.Stage)
		}

		return Rewrite(req, stage)
	}
}

// Rewrite runs only the heuristic rewriter on req's text for stage.
func Rewrite(req Request, stage heuristics.Stage) (string, error) {
	text, _, _, err := req.normalize()
	if err != nil {
		return "", err
	}
	return heuristics.Apply(text, req.Tone, req.Level, stage), nil
}
