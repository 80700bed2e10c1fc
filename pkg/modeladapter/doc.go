// Package modeladapter defines the interface and types for LLM completion adapters.
//
// It contains:
//   - [Completer] interface and embeddable [ModelAdapter] base struct with HTTP helpers, auth, and custom headers
//   - [Settings] generation parameters and the normalized [Response]
//   - [StatusError] and [RateLimitError] for non-2xx replies
//   - [github.com/germanamz/humanize/pkg/modeladapter/usage]: token accounting
//
// This package contains no provider-specific code. Concrete adapters live in
// separate packages that import modeladapter.
package modeladapter
