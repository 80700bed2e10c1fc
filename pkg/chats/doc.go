// Package chats provides the provider-neutral message model exchanged with
// language-model providers.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/humanize/pkg/chats/role]: conversation roles (system, user, assistant)
//   - [github.com/germanamz/humanize/pkg/chats/message]: text messages composed of a role and content
//
// No provider or API code is included; adapters translate these types into
// their own wire shapes.
package chats
