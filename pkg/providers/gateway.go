package providers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/modeladapter"
	"github.com/germanamz/humanize/pkg/providers/anthropic"
	"github.com/germanamz/humanize/pkg/providers/openai"
)

// ID identifies a remote LLM provider.
type ID string

const (
	OpenAI     ID = "openai"
	Anthropic  ID = "anthropic"
	OpenRouter ID = "openrouter"
	XAI        ID = "xai"
)

// IDs lists the supported providers.
var IDs = []ID{OpenAI, Anthropic, OpenRouter, XAI}

// Valid reports whether id is a supported provider.
func (id ID) Valid() bool {
	switch id {
	case OpenAI, Anthropic, OpenRouter, XAI:
		return true
	}
	return false
}

func (id ID) String() string { return string(id) }

// ErrUnsupportedProvider is returned for a provider ID outside the closed set.
var ErrUnsupportedProvider = errors.New("providers: unsupported provider")

// Default base URLs, without the API path.
const (
	OpenAIBaseURL     = "https://api.openai.com"
	AnthropicBaseURL  = "https://api.anthropic.com"
	OpenRouterBaseURL = "https://openrouter.ai/api"
	XAIBaseURL        = "https://api.x.ai"
)

// Default OpenRouter attribution headers.
const (
	DefaultReferer = "https://molos.app"
	DefaultTitle   = "MoLOS"
)

// Gateway performs single LLM calls against the supported providers. The zero
// value is ready to use and talks to the public endpoints.
type Gateway struct {
	// Client is the HTTP client for every call. Nil means http.DefaultClient.
	Client *http.Client
	// BaseURLs overrides the default base URL per provider.
	BaseURLs map[ID]string
	// Referer and Title are sent to OpenRouter as HTTP-Referer and X-Title.
	// Empty values fall back to DefaultReferer and DefaultTitle.
	Referer string
	Title   string
}

// Call sends msgs to the given provider and model with the credential and
// returns the normalized reply. The credential is not validated here.
func (g *Gateway) Call(
	ctx context.Context,
	id ID,
	credential, model string,
	msgs []message.Message,
	s modeladapter.Settings,
) (modeladapter.Response, error) {
	c, err := g.Completer(id, credential, model)
	if err != nil {
		return modeladapter.Response{}, err
	}

	return c.Complete(ctx, msgs, s)
}

// Completer builds the adapter for one provider and model.
func (g *Gateway) Completer(id ID, credential, model string) (modeladapter.Completer, error) {
	switch id {
	case OpenAI:
		return g.chatCompletions(id, OpenAIBaseURL, credential, model), nil
	case XAI:
		return g.chatCompletions(id, XAIBaseURL, credential, model), nil
	case OpenRouter:
		a := g.chatCompletions(id, OpenRouterBaseURL, credential, model)
		a.SetHeader("HTTP-Referer", orDefault(g.Referer, DefaultReferer))
		a.SetHeader("X-Title", orDefault(g.Title, DefaultTitle))
		return a, nil
	case Anthropic:
		return anthropic.New(g.baseURL(id, AnthropicBaseURL), credential, model, g.Client), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, string(id))
	}
}

func (g *Gateway) chatCompletions(id ID, fallback, credential, model string) *openai.Adapter {
	a := openai.New(g.baseURL(id, fallback), credential, model, g.Client)
	a.Label = id.String()
	return a
}

func (g *Gateway) baseURL(id ID, fallback string) string {
	if u, ok := g.BaseURLs[id]; ok && u != "" {
		return u
	}
	return fallback
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
