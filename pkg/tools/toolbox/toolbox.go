// Package toolbox holds named tools with JSON inputs and text results, the
// surface the humanizer exposes to MCP clients.
package toolbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrToolNotFound is returned by Call for an unregistered tool name.
var ErrToolNotFound = errors.New("toolbox: tool not found")

// Handler executes a tool with the given JSON input and returns a text result.
type Handler func(ctx context.Context, input json.RawMessage) (string, error)

// Tool represents an executable tool with a name, description, JSON Schema, and handler.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// ToolBox is a named collection of tools.
type ToolBox struct {
	tools map[string]Tool
}

// New creates a ToolBox holding tools.
func New(tools ...Tool) *ToolBox {
	tb := &ToolBox{tools: make(map[string]Tool)}
	tb.Register(tools...)
	return tb
}

// Register adds one or more tools to the ToolBox. If a tool with the same name
// already exists, it is replaced.
func (tb *ToolBox) Register(tools ...Tool) {
	for _, t := range tools {
		tb.tools[t.Name] = t
	}
}

// Get returns a tool by name and a boolean indicating whether it was found.
func (tb *ToolBox) Get(name string) (Tool, bool) {
	t, ok := tb.tools[name]
	return t, ok
}

// Tools returns all registered tools sorted by name.
func (tb *ToolBox) Tools() []Tool {
	result := make([]Tool, 0, len(tb.tools))
	for _, t := range tb.tools {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b Tool) int { return strings.Compare(a.Name, b.Name) })
	return result
}

// Call runs the named tool. An empty input is passed to the handler as "{}".
func (tb *ToolBox) Call(ctx context.Context, name string, input json.RawMessage) (string, error) {
	t, ok := tb.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	if len(input) == 0 {
		input = json.RawMessage("{}")
	}

	return t.Handler(ctx, input)
}
