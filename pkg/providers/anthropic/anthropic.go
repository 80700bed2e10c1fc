// Package anthropic provides a Completer implementation for the Anthropic Messages API.
package anthropic

import (
	"context"
	"fmt"
	"net/http"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/chats/role"
	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/modeladapter/usage"
)

const (
	messagesPath = "/v1/messages"
	apiVersion   = "2023-06-01"

	// DefaultMaxTokens is sent when the caller leaves Settings.MaxTokens unset;
	// the Messages API requires the field.
	DefaultMaxTokens = 2048

	maxTemperature = 1.0
)

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Anthropic Messages API.
type Adapter struct {
	modeladapter.ModelAdapter
}

// New creates an Adapter configured for the Anthropic API.
// The baseURL should be "https://api.anthropic.com" (no trailing slash).
// A nil client falls back to http.DefaultClient.
func New(baseURL, apiKey, model string, client *http.Client) *Adapter {
	a := &Adapter{
		ModelAdapter: modeladapter.New(baseURL, modeladapter.Auth{
			Key:    apiKey,
			Header: "x-api-key",
		}, client),
	}
	a.Name = model
	a.SetHeader("anthropic-version", apiVersion)

	return a
}

// Complete sends the messages to the Messages API and returns the first text
// block of the reply. Frequency and presence penalties have no Messages API
// equivalent and are not sent.
func (a *Adapter) Complete(ctx context.Context, msgs []message.Message, s modeladapter.Settings) (modeladapter.Response, error) {
	req := a.buildRequest(msgs, s)

	var resp apiResponse
	if err := a.PostJSON(ctx, messagesPath, req, &resp); err != nil {
		return modeladapter.Response{}, fmt.Errorf("anthropic: %w", err)
	}

	out := modeladapter.Response{}
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.Message = block.Text
			break
		}
	}
	if resp.Usage != nil {
		out.Usage = &usage.TokenCount{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		}
	}

	return out, nil
}

// --- request types ---

type apiRequest struct {
	Model       string       `json:"model"`
	MaxTokens   int          `json:"max_tokens"`
	System      string       `json:"system,omitempty"`
	Messages    []apiMessage `json:"messages"`
	Temperature *float64     `json:"temperature,omitempty"`
	TopP        *float64     `json:"top_p,omitempty"`
}

type apiMessage struct {
	Role    string       `json:"role"`
	Content []apiContent `json:"content"`
}

type apiContent struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// --- response types ---

type apiResponse struct {
	Content    []apiContent `json:"content"`
	StopReason string       `json:"stop_reason"`
	Usage      *apiUsage    `json:"usage"`
}

type apiUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// --- conversion helpers ---

func (a *Adapter) buildRequest(msgs []message.Message, s modeladapter.Settings) apiRequest {
	req := apiRequest{
		Model:     a.Name,
		MaxTokens: DefaultMaxTokens,
		System:    message.SystemPrompt(msgs),
		TopP:      s.TopP,
	}

	if s.MaxTokens != nil {
		req.MaxTokens = *s.MaxTokens
	}

	if s.Temperature != nil {
		t := min(*s.Temperature, maxTemperature)
		req.Temperature = &t
	}

	for _, m := range message.WithoutSystem(msgs) {
		appendMessage(&req.Messages, m)
	}

	return req
}

// appendMessage adds m as a text block, merging into the previous message when
// the roles match since the API expects alternating turns.
func appendMessage(msgs *[]apiMessage, m message.Message) {
	block := apiContent{Type: "text", Text: m.Content}
	msgRole := mapRole(m.Role)

	if n := len(*msgs); n > 0 && (*msgs)[n-1].Role == msgRole {
		(*msgs)[n-1].Content = append((*msgs)[n-1].Content, block)
		return
	}

	*msgs = append(*msgs, apiMessage{Role: msgRole, Content: []apiContent{block}})
}

func mapRole(r role.Role) string {
	if r == role.Assistant {
		return "assistant"
	}
	return "user"
}
