package message_test

import (
	"testing"

	"github.com/germanamz/humanize/pkg/chats/message"
	"github.com/germanamz/humanize/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	assert.Equal(t, message.Message{Role: role.System, Content: "be brief"}, message.System("be brief"))
	assert.Equal(t, message.Message{Role: role.User, Content: "hi"}, message.User("hi"))
	assert.Equal(t, role.Assistant, message.New(role.Assistant, "ok").Role)
}

func TestSystemPrompt(t *testing.T) {
	msgs := []message.Message{
		message.User("first"),
		message.System("sys one"),
		message.System("sys two"),
	}
	assert.Equal(t, "sys one", message.SystemPrompt(msgs))
	assert.Empty(t, message.SystemPrompt([]message.Message{message.User("x")}))
	assert.Empty(t, message.SystemPrompt(nil))
}

func TestWithoutSystem(t *testing.T) {
	msgs := []message.Message{
		message.System("sys"),
		message.User("a"),
		message.New(role.Assistant, "b"),
	}

	got := message.WithoutSystem(msgs)
	assert.Equal(t, []message.Message{message.User("a"), message.New(role.Assistant, "b")}, got)
	assert.Len(t, msgs, 3)
}
