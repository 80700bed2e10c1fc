// Package openai provides a Completer implementation for the chat-completions
// API shape. OpenAI, OpenRouter and xAI all serve this shape, so the gateway
// uses this adapter for all three with different base URLs and headers.
package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/modeladapter/usage"
)

const completionsPath = "/v1/chat/completions"

var _ modeladapter.Completer = (*Adapter)(nil)

// Adapter implements modeladapter.Completer for the Chat Completions API.
type Adapter struct {
	modeladapter.ModelAdapter
	// Label prefixes errors. Defaults to "openai".
	Label string
}

// New creates an Adapter configured for a chat-completions endpoint.
// The baseURL should be e.g. "https://api.openai.com" (no trailing slash).
// A nil client falls back to http.DefaultClient.
func New(baseURL, apiKey, model string, client *http.Client) *Adapter {
	a := &Adapter{
		ModelAdapter: modeladapter.New(baseURL, modeladapter.Auth{Key: apiKey}, client),
		Label:        "openai",
	}
	a.Name = model

	return a
}

// Complete sends the messages to the chat-completions endpoint and returns the
// content of the first choice.
func (a *Adapter) Complete(ctx context.Context, msgs []message.Message, s modeladapter.Settings) (modeladapter.Response, error) {
	req := a.buildRequest(msgs, s)

	var resp apiResponse
	if err := a.PostJSON(ctx, completionsPath, req, &resp); err != nil {
		return modeladapter.Response{}, fmt.Errorf("%s: %w", a.Label, err)
	}

	if len(resp.Choices) == 0 {
		return modeladapter.Response{}, fmt.Errorf("%s: %w", a.Label, errEmptyChoices)
	}

	out := modeladapter.Response{}
	if c := resp.Choices[0].Message.Content; c != nil {
		out.Message = *c
	}
	if resp.Usage != nil {
		out.Usage = &usage.TokenCount{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return out, nil
}

var errEmptyChoices = errors.New("empty choices in response")

// --- request types ---

type apiRequest struct {
	Model            string       `json:"model"`
	Messages         []apiMessage `json:"messages"`
	Temperature      *float64     `json:"temperature,omitempty"`
	TopP             *float64     `json:"top_p,omitempty"`
	MaxTokens        *int         `json:"max_tokens,omitempty"`
	FrequencyPenalty *float64     `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64     `json:"presence_penalty,omitempty"`
}

type apiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// --- response types ---

type apiResponse struct {
	Choices []apiChoice `json:"choices"`
	Usage   *apiUsage   `json:"usage"`
}

type apiChoice struct {
	Message      apiRespMessage `json:"message"`
	FinishReason string         `json:"finish_reason"`
}

type apiRespMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type apiUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// --- conversion helpers ---

func (a *Adapter) buildRequest(msgs []message.Message, s modeladapter.Settings) apiRequest {
	req := apiRequest{
		Model:            a.Name,
		Messages:         make([]apiMessage, len(msgs)),
		Temperature:      s.Temperature,
		TopP:             s.TopP,
		MaxTokens:        s.MaxTokens,
		FrequencyPenalty: s.FrequencyPenalty,
		PresencePenalty:  s.PresencePenalty,
	}

	for i, m := range msgs {
		req.Messages[i] = apiMessage{Role: m.Role.String(), Content: m.Content}
	}

	return req
}
