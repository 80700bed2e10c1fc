package role_test

import (
	"testing"

	"github.com/germanamz/humanize/pkg/chats/role"
	"github.com/stretchr/testify/assert"
)

func TestValid(t *testing.T) {
	for _, r := range []role.Role{role.System, role.User, role.Assistant} {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, role.Role("tool").Valid())
	assert.False(t, role.Role("").Valid())
}

func TestString(t *testing.T) {
	assert.Equal(t, "assistant", role.Assistant.String())
}
