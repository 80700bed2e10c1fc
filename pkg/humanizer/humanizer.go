// Package humanizer orchestrates the humanization pipeline: a heuristic
// pre-pass, three optional language-model stages (deoptimize, burstiness,
// meaning-preservation check), a heuristic post-pass, a best-effort detector
// query with a single aggressive escalation, and the final confidence score.
//
// A run without a provider credential is a fallback run and touches no
// language model. Once model stages have started, any provider failure fails
// the whole run; detector failures never do.
package humanizer

import (
	"context"
	"log/slog"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/providers"
)

// EscalationThreshold is the detector probability above which the aggressive
// post-pass runs.
const EscalationThreshold = 0.2

// Gateway performs one language-model call. *providers.Gateway satisfies it.
type Gateway interface {
	Call(ctx context.Context, id providers.ID, credential, model string, msgs []message.Message, s modeladapter.Settings) (modeladapter.Response, error)
}

// Detector returns an AI probability in [0,1], or ok=false for no signal.
// *detector.Client satisfies it.
type Detector interface {
	Score(ctx context.Context, text string) (score float64, ok bool)
}

// Pipeline runs humanization requests. It holds no per-run state and is safe
// for concurrent use when its Gateway and Detector are.
type Pipeline struct {
	gateway  Gateway
	detector Detector
	logger   *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithDetector sets the detector queried after the post-pass.
func WithDetector(d Detector) Option {
	return func(p *Pipeline) { p.detector = d }
}

// WithLogger sets the logger. Every record of a run carries its run_id.
func WithLogger(l *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// New creates a Pipeline calling providers through gw. A nil gw uses a zero
// providers.Gateway against the public endpoints.
func New(gw Gateway, opts ...Option) *Pipeline {
	p := &Pipeline{gateway: gw}
	if p.gateway == nil {
		p.gateway = &providers.Gateway{}
	}
	for _, o := range opts {
		o(p)
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	return p
}
