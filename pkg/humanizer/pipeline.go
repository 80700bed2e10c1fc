package humanizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/heuristics"
	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/modeladapter/usage"
	"github.com/germanamz/humanize/pkg/prompts"
	"github.com/germanamz/humanize/pkg/scoring"
	"github.com/germanamz/humanize/pkg/style"
	"github.com/google/uuid"
)

// state is a step of the run. Each state has one step function returning the
// next state; the run only moves forward.
type state int

const (
	statePreHeuristic state = iota
	stateDeoptimize
	stateBurst
	statePreservation
	stateSelect
	statePostHeuristic
	stateDetect
	stateEscalate
	stateRedetect
	stateScore
	stateDone
)

var stateNames = [...]string{
	statePreHeuristic:  "pre_heuristic",
	stateDeoptimize:    "deoptimize",
	stateBurst:         "burst",
	statePreservation:  "preservation",
	stateSelect:        "select",
	statePostHeuristic: "post_heuristic",
	stateDetect:        "detect",
	stateEscalate:      "escalate",
	stateRedetect:      "redetect",
	stateScore:         "score",
	stateDone:          "done",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// run carries the working data of one invocation.
type run struct {
	p   *Pipeline
	log *slog.Logger

	req      Request
	text     string
	options  string
	provider ProviderSettings
	llm      bool

	heuristic string // pre-pass output, the fallback candidate
	deopt     string
	burst     string
	changed   bool
	candidate string
	detector  *float64
	escalated bool
	score     int
	usage     usage.Tracker
}

// Run executes the pipeline for req. Validation failures return ErrEmptyInput,
// ErrInvalidLevel or ErrInvalidTone. Provider failures return an error
// wrapping ErrStage and the gateway error; no partial result is returned.
func (p *Pipeline) Run(ctx context.Context, req Request) (Result, error) {
	text, options, ps, err := req.normalize()
	if err != nil {
		return Result{}, err
	}

	r := &run{
		p:        p,
		log:      p.logger.With("run_id", uuid.NewString()),
		req:      req,
		text:     text,
		options:  options,
		provider: ps,
		llm:      strings.TrimSpace(ps.APIToken) != "",
	}

	r.log.InfoContext(ctx, "humanize started",
		"level", req.Level,
		"tone", req.Tone,
		"provider", ps.Provider,
		"fallback", !r.llm,
		"words", heuristics.WordCount(text),
	)

	start := time.Now()

	for s := statePreHeuristic; s != stateDone; {
		next, err := r.step(ctx, s)
		if err != nil {
			r.log.ErrorContext(ctx, "humanize failed", "state", s.String(), "error", err)
			return Result{}, err
		}
		s = next
	}

	res := Result{
		OutputText:      r.candidate,
		ConfidenceScore: r.score,
		DetectorScore:   r.detector,
		UsedFallback:    !r.llm,
		Escalated:       r.escalated,
		MeaningChanged:  r.changed,
		Usage:           r.usage.Total(),
	}

	r.log.InfoContext(ctx, "humanize finished",
		"confidence", res.ConfidenceScore,
		"escalated", res.Escalated,
		"tokens", res.Usage.Total(),
		"duration", time.Since(start),
	)

	return res, nil
}

func (r *run) step(ctx context.Context, s state) (state, error) {
	switch s {
	case statePreHeuristic:
		return r.preHeuristic()
	case stateDeoptimize:
		return r.deoptimize(ctx)
	case stateBurst:
		return r.burstStage(ctx)
	case statePreservation:
		return r.preservation(ctx)
	case stateSelect:
		return r.selectCandidate()
	case statePostHeuristic:
		return r.postHeuristic()
	case stateDetect:
		return r.detect(ctx)
	case stateEscalate:
		return r.escalate(ctx)
	case stateRedetect:
		return r.redetect(ctx)
	case stateScore:
		return r.scoreCandidate()
	default:
		return stateDone, fmt.Errorf("humanizer: unknown state %s", s)
	}
}

func (r *run) preHeuristic() (state, error) {
	r.heuristic = heuristics.Apply(r.text, r.req.Tone, r.req.Level, heuristics.Pre)
	if !r.llm {
		return stateSelect, nil
	}
	return stateDeoptimize, nil
}

func (r *run) deoptimize(ctx context.Context) (state, error) {
	prompt := prompts.Deoptimizer(r.heuristic, r.req.Tone, r.req.Level, r.options)

	out, err := r.call(ctx, stateDeoptimize, rolePrimary, prompt, r.baseSettings())
	if err != nil {
		return stateDone, err
	}

	r.deopt = out
	return stateBurst, nil
}

func (r *run) burstStage(ctx context.Context) (state, error) {
	prompt := prompts.Burstiness(r.deopt, r.req.Tone, r.options)

	s := r.baseSettings()
	s.Temperature = modeladapter.Ptr(r.req.Level.Profile().Temperature + 0.1)
	s = s.Merge(modeladapter.Settings{Temperature: r.req.Settings.Temperature})

	out, err := r.call(ctx, stateBurst, roleSecondary, prompt, s)
	if err != nil {
		return stateDone, err
	}

	r.burst = out
	return statePreservation, nil
}

func (r *run) preservation(ctx context.Context) (state, error) {
	prompt := prompts.Preservation(r.text, r.burst)

	s := modeladapter.Settings{
		Temperature:      modeladapter.Ptr(0.2),
		FrequencyPenalty: modeladapter.Ptr(0.0),
		TopP:             r.req.Settings.TopP,
		MaxTokens:        r.req.Settings.MaxTokens,
	}

	out, err := r.call(ctx, statePreservation, roleChecker, prompt, s)
	if err != nil {
		return stateDone, err
	}

	v, err := prompts.ParseVerdict(out)
	switch {
	case errors.Is(err, prompts.ErrUnparseable):
		r.log.WarnContext(ctx, "preservation verdict unparseable, assuming OK")
	case v.Changed():
		r.changed = true
		r.log.WarnContext(ctx, "preservation check flagged a meaning change", "notes", v.NotesText())
	default:
		r.log.DebugContext(ctx, "preservation check passed", "verdict", v.Verdict)
	}

	return stateSelect, nil
}

func (r *run) selectCandidate() (state, error) {
	r.candidate = r.heuristic
	if r.llm && !r.changed {
		r.candidate = r.burst
	}
	return statePostHeuristic, nil
}

func (r *run) postHeuristic() (state, error) {
	r.candidate = heuristics.Apply(r.candidate, r.req.Tone, r.req.Level, heuristics.Post)
	return stateDetect, nil
}

func (r *run) detect(ctx context.Context) (state, error) {
	if !r.query(ctx) {
		return stateScore, nil
	}
	if *r.detector > EscalationThreshold {
		return stateEscalate, nil
	}
	return stateScore, nil
}

func (r *run) escalate(ctx context.Context) (state, error) {
	r.log.InfoContext(ctx, "detector escalation", "detector_score", *r.detector)

	r.candidate = heuristics.Apply(r.candidate, r.req.Tone, style.Aggressive, heuristics.Post)
	r.escalated = true

	return stateRedetect, nil
}

func (r *run) redetect(ctx context.Context) (state, error) {
	r.query(ctx)
	return stateScore, nil
}

func (r *run) scoreCandidate() (state, error) {
	r.score = scoring.Confidence(r.candidate, r.detector)
	return stateDone, nil
}

// query asks the detector about the current candidate and records the score.
// A missing signal keeps any earlier score.
func (r *run) query(ctx context.Context) bool {
	if r.p.detector == nil {
		return false
	}

	score, ok := r.p.detector.Score(ctx, r.candidate)
	if !ok {
		r.log.DebugContext(ctx, "detector gave no signal")
		return false
	}

	r.detector = &score
	r.log.InfoContext(ctx, "detector scored candidate", "detector_score", score)

	return true
}

// baseSettings merges the caller's overrides over the level profile.
func (r *run) baseSettings() modeladapter.Settings {
	p := r.req.Level.Profile()

	return modeladapter.Settings{
		Temperature:      modeladapter.Ptr(p.Temperature),
		FrequencyPenalty: modeladapter.Ptr(p.FrequencyPenalty),
	}.Merge(r.req.Settings)
}

func (r *run) call(ctx context.Context, s state, rl role, prompt string, settings modeladapter.Settings) (string, error) {
	model := resolveModel(r.provider, rl, r.req.Model)
	start := time.Now()

	resp, err := r.p.gateway.Call(ctx, r.provider.Provider, r.provider.APIToken, model,
		[]message.Message{message.User(prompt)}, settings)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrStage, s, err)
	}

	attrs := []any{"stage", s.String(), "model", model, "duration", time.Since(start)}
	if resp.Usage != nil {
		r.usage.Add(*resp.Usage)
		attrs = append(attrs, "input_tokens", resp.Usage.InputTokens, "output_tokens", resp.Usage.OutputTokens)
	}
	r.log.InfoContext(ctx, "stage completed", attrs...)

	return strings.TrimSpace(resp.Message), nil
}
