package modeladapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/modeladapter/usage"
)

// StatusError is returned when the API responds with a non-2xx status other
// than 429. It carries the raw response body for diagnostics.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Body)
}

// RateLimitError is returned when the API responds with HTTP 429 (Too Many Requests).
// It carries an optional RetryAfter duration parsed from the Retry-After header.
// Nothing in this package retries; the duration is for the caller to act on.
type RateLimitError struct {
	RetryAfter time.Duration
	Body       string
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited (retry after %s): %s", e.RetryAfter, e.Body)
	}
	return fmt.Sprintf("rate limited: %s", e.Body)
}

// ParseRetryAfter parses the Retry-After header value as either seconds (integer)
// or an HTTP-date (RFC 7231). Returns zero if unparseable or if the date is in the past.
func ParseRetryAfter(val string) time.Duration {
	if val == "" {
		return 0
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(val); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

// Settings are the optional generation parameters of one call. Nil fields are
// left out of the request so the provider default applies.
type Settings struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	TopP             *float64 `json:"top_p,omitempty"`
	FrequencyPenalty *float64 `json:"frequency_penalty,omitempty"`
	PresencePenalty  *float64 `json:"presence_penalty,omitempty"`
	MaxTokens        *int     `json:"max_tokens,omitempty"`
}

// Merge returns s with every non-nil field of override applied on top.
func (s Settings) Merge(override Settings) Settings {
	if override.Temperature != nil {
		s.Temperature = override.Temperature
	}
	if override.TopP != nil {
		s.TopP = override.TopP
	}
	if override.FrequencyPenalty != nil {
		s.FrequencyPenalty = override.FrequencyPenalty
	}
	if override.PresencePenalty != nil {
		s.PresencePenalty = override.PresencePenalty
	}
	if override.MaxTokens != nil {
		s.MaxTokens = override.MaxTokens
	}
	return s
}

// Ptr returns a pointer to v, for filling Settings literals.
func Ptr[T any](v T) *T { return &v }

// Response is the normalized result of a completion call. Usage is nil when
// the provider reported none.
type Response struct {
	Message string
	Usage   *usage.TokenCount
}

// Completer sends a message list to an LLM and returns the assistant's reply.
type Completer interface {
	Complete(ctx context.Context, msgs []message.Message, s Settings) (Response, error)
}

// Auth holds authentication settings for an LLM provider API.
type Auth struct {
	Key    string // API key value.
	Header string // Header name (default: "Authorization").
	Scheme string // Scheme prefix (default: "Bearer" when Header is "Authorization").
}

// ModelAdapter holds shared state for LLM provider implementations. Embed it in
// concrete provider structs to get HTTP helpers, auth and custom headers.
// Concrete types should define their own Complete method to shadow the
// default stub.
type ModelAdapter struct {
	Name    string            // Model identifier (e.g. "gpt-4o").
	Auth    Auth              // Authentication settings.
	BaseURL string            // API base URL (no trailing slash).
	Client  *http.Client      // HTTP client; falls back to http.DefaultClient.
	Headers map[string]string // Extra headers applied to every request.
}

// New creates a ModelAdapter with the given settings.
// A nil client falls back to http.DefaultClient at call time.
func New(baseURL string, auth Auth, client *http.Client) ModelAdapter {
	return ModelAdapter{
		Auth:    auth,
		BaseURL: baseURL,
		Client:  client,
	}
}

// Complete is a stub that returns an error. Concrete providers that embed
// ModelAdapter should define their own Complete method to shadow this one.
func (a *ModelAdapter) Complete(_ context.Context, _ []message.Message, _ Settings) (Response, error) {
	return Response{}, errors.New("adapter: Complete not implemented")
}

// SetHeader sets an extra header sent with every request.
func (a *ModelAdapter) SetHeader(key, value string) {
	if a.Headers == nil {
		a.Headers = make(map[string]string)
	}
	a.Headers[key] = value
}

func (a *ModelAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return http.DefaultClient
}

// NewRequest builds an *http.Request with the base URL, auth, and custom
// headers already applied.
func (a *ModelAdapter) NewRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	url := a.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	if a.Auth.Key != "" {
		header := a.Auth.Header
		if header == "" {
			header = "Authorization"
		}

		value := a.Auth.Key
		if header == "Authorization" {
			scheme := a.Auth.Scheme
			if scheme == "" {
				scheme = "Bearer"
			}

			value = scheme + " " + value
		} else if a.Auth.Scheme != "" {
			value = a.Auth.Scheme + " " + value
		}

		req.Header.Set(header, value)
	}

	for k, v := range a.Headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

// Do sends the request using the configured HTTP client.
func (a *ModelAdapter) Do(req *http.Request) (*http.Response, error) {
	return a.httpClient().Do(req) //nolint:gosec // URL is built from trusted BaseURL config, not user input.
}

// PostJSON marshals payload as JSON, sends a POST to the given path,
// checks for a 2xx status, and unmarshals the response body into dest.
// If dest is nil the response body is discarded after the status check.
func (a *ModelAdapter) PostJSON(ctx context.Context, path string, payload any, dest any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := a.NewRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := a.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		respBody, _ := io.ReadAll(resp.Body)
		return &RateLimitError{
			RetryAfter: ParseRetryAfter(resp.Header.Get("Retry-After")),
			Body:       string(respBody),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if dest == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}
