// Package providers is the gateway between the humanization pipeline and the
// remote LLM APIs.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/humanize/pkg/providers/openai]: chat-completions shape (OpenAI, OpenRouter, xAI)
//   - [github.com/germanamz/humanize/pkg/providers/anthropic]: message-block shape (Anthropic)
//
// The [Gateway] maps a provider [ID] to an endpoint, auth scheme and response
// shape, and normalizes every reply into a [modeladapter.Response]. The set of
// IDs is closed: anything else fails with [ErrUnsupportedProvider].
package providers
