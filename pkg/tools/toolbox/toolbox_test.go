package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, input json.RawMessage) (string, error) {
	return string(input), nil
}

func errorHandler(_ context.Context, _ json.RawMessage) (string, error) {
	return "", errors.New("tool failed")
}

func newEchoTool(name string) Tool {
	return Tool{
		Name:        name,
		Description: "Echoes input",
		InputSchema: json.RawMessage(`{"type":"object"}`),
		Handler:     echoHandler,
	}
}

func TestNew(t *testing.T) {
	tb := New()
	assert.NotNil(t, tb)
	assert.Empty(t, tb.Tools())
}

func TestNew_WithTools(t *testing.T) {
	tb := New(newEchoTool("a"), newEchoTool("b"))
	assert.Len(t, tb.Tools(), 2)
}

func TestRegisterAndGet(t *testing.T) {
	tb := New()
	tb.Register(newEchoTool("echo"))

	got, ok := tb.Get("echo")
	assert.True(t, ok)
	assert.Equal(t, "echo", got.Name)
}

func TestGetNotFound(t *testing.T) {
	tb := New()

	_, ok := tb.Get("missing")
	assert.False(t, ok)
}

func TestRegisterReplace(t *testing.T) {
	tb := New()
	tb.Register(Tool{Name: "tool", Description: "original", Handler: echoHandler})
	tb.Register(Tool{Name: "tool", Description: "replaced", Handler: echoHandler})

	got, ok := tb.Get("tool")
	require.True(t, ok)
	assert.Equal(t, "replaced", got.Description)
	assert.Len(t, tb.Tools(), 1)
}

func TestTools_Sorted(t *testing.T) {
	tb := New(newEchoTool("score"), newEchoTool("humanize"), newEchoTool("rewrite"))

	var names []string
	for _, tool := range tb.Tools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"humanize", "rewrite", "score"}, names)
}

func TestCallSuccess(t *testing.T) {
	tb := New(newEchoTool("echo"))

	got, err := tb.Call(context.Background(), "echo", json.RawMessage(`{"text":"hi"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi"}`, got)
}

func TestCallEmptyInput(t *testing.T) {
	tb := New(newEchoTool("echo"))

	got, err := tb.Call(context.Background(), "echo", nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", got)
}

func TestCallNotFound(t *testing.T) {
	tb := New()

	_, err := tb.Call(context.Background(), "missing", nil)
	require.ErrorIs(t, err, ErrToolNotFound)
	assert.ErrorContains(t, err, "missing")
}

func TestCallHandlerError(t *testing.T) {
	tb := New(Tool{Name: "fail", Handler: errorHandler})

	_, err := tb.Call(context.Background(), "fail", nil)
	assert.EqualError(t, err, "tool failed")
}
