// Package detector queries an external AI-likelihood detector.
//
// The detector is best-effort: an unconfigured client, a transport failure, a
// non-2xx status and a malformed body all mean "no signal" and are reported
// through the boolean of [Client.Score], never as an error.
package detector

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/germanamz/humanize/pkg/modeladapter"
)

// Client posts text to a detector endpoint and reads back its AI probability.
type Client struct {
	modeladapter.ModelAdapter
	// Timeout bounds a single Score call. Zero means no extra bound.
	Timeout time.Duration
	// Logger receives debug records for swallowed failures. Nil discards them.
	Logger *slog.Logger
}

// New creates a Client for the full endpoint URL, authenticating with a bearer
// apiKey. A nil client falls back to http.DefaultClient.
func New(endpoint, apiKey string, client *http.Client) *Client {
	return &Client{
		ModelAdapter: modeladapter.New(endpoint, modeladapter.Auth{Key: apiKey}, client),
	}
}

// Configured reports whether both endpoint and credential are set.
func (c *Client) Configured() bool {
	return c != nil && c.BaseURL != "" && c.Auth.Key != ""
}

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	AIProbability *float64 `json:"aiProbability"`
	Provider      string   `json:"provider,omitempty"`
}

// Score returns the detector's AI probability for text. ok is false when the
// client is unconfigured or the call yields no usable probability in [0,1].
func (c *Client) Score(ctx context.Context, text string) (score float64, ok bool) {
	if !c.Configured() {
		return 0, false
	}

	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	var resp scoreResponse
	if err := c.PostJSON(ctx, "", scoreRequest{Text: text}, &resp); err != nil {
		c.logger().DebugContext(ctx, "detector call failed", "error", err)
		return 0, false
	}

	if resp.AIProbability == nil {
		c.logger().DebugContext(ctx, "detector response without aiProbability")
		return 0, false
	}

	p := *resp.AIProbability
	if p < 0 || p > 1 {
		c.logger().DebugContext(ctx, "detector probability out of range", "ai_probability", p)
		return 0, false
	}

	return p, true
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
