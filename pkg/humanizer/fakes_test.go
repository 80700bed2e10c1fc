package humanizer_test

import (
	"context"
	"sync"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/modeladapter/usage"
	"github.com/germanamz/humanize/pkg/providers"
)

type gatewayCall struct {
	Provider   providers.ID
	Credential string
	Model      string
	Prompt     string
	Settings   modeladapter.Settings
}

// fakeGateway answers calls in order from replies and records every call.
// A call past the end of replies returns err, or an empty reply if err is nil.
type fakeGateway struct {
	mu      sync.Mutex
	replies []string
	usage   *usage.TokenCount
	err     error
	failAt  int // 1-based call index that fails with err; 0 means never
	calls   []gatewayCall
}

func (g *fakeGateway) Call(
	_ context.Context,
	id providers.ID,
	credential, model string,
	msgs []message.Message,
	s modeladapter.Settings,
) (modeladapter.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	prompt := ""
	if len(msgs) > 0 {
		prompt = msgs[len(msgs)-1].Content
	}
	g.calls = append(g.calls, gatewayCall{Provider: id, Credential: credential, Model: model, Prompt: prompt, Settings: s})

	n := len(g.calls)
	if g.failAt == n || (g.failAt == 0 && g.err != nil && n > len(g.replies)) {
		return modeladapter.Response{}, g.err
	}
	if n > len(g.replies) {
		return modeladapter.Response{}, nil
	}

	return modeladapter.Response{Message: g.replies[n-1], Usage: g.usage}, nil
}

// fakeDetector answers Score calls in order; a nil entry means no signal.
type fakeDetector struct {
	mu     sync.Mutex
	scores []*float64
	texts  []string
}

func (d *fakeDetector) Score(_ context.Context, text string) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.texts = append(d.texts, text)
	i := len(d.texts) - 1
	if i >= len(d.scores) || d.scores[i] == nil {
		return 0, false
	}
	return *d.scores[i], true
}

func ptr(v float64) *float64 { return &v }
