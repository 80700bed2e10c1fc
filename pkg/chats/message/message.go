// Package message defines the Message type used in LLM conversations.
package message

import "github.com/germanamz/humanize/pkg/chats/role"

// Message is a single text turn in a conversation. It is a value type that
// copies cheaply.
type Message struct {
	Role    role.Role `json:"role"`
	Content string    `json:"content"`
}

// New creates a message with the given role and content.
func New(r role.Role, content string) Message {
	return Message{Role: r, Content: content}
}

// System creates a system message.
func System(content string) Message { return New(role.System, content) }

// User creates a user message.
func User(content string) Message { return New(role.User, content) }

// SystemPrompt returns the content of the first system message in msgs, or an
// empty string if there is none.
func SystemPrompt(msgs []Message) string {
	for _, m := range msgs {
		if m.Role == role.System {
			return m.Content
		}
	}
	return ""
}

// WithoutSystem returns msgs with every system message removed.
func WithoutSystem(msgs []Message) []Message {
	out := make([]Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Role != role.System {
			out = append(out, m)
		}
	}
	return out
}
