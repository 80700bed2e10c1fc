package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/germanamz/humanize/pkg/style"
	"github.com/germanamz/humanize/pkg/tools/toolbox"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connect runs s on an in-memory transport and returns a connected client
// session. Everything is torn down with the test.
func connect(t *testing.T, s *MCPServer) *mcp.ClientSession {
	t.Helper()

	serverSide, clientSide := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx, serverSide) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientSide, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func call(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)

	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	return res, tc.Text
}

// humanizerServer serves the real humanizer tools without a provider key, so
// every run takes the heuristic path.
func humanizerServer(opts ...Option) *MCPServer {
	base := humanizer.Request{Level: style.Medium, Tone: style.Professional}
	box := toolbox.New(humanizer.Tools(humanizer.New(nil), base)...)
	return New("humanize", "test", box, opts...)
}

func TestListTools(t *testing.T) {
	session := connect(t, humanizerServer())

	res, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)

	names := make([]string, len(res.Tools))
	for i, tool := range res.Tools {
		names[i] = tool.Name
		assert.NotEmpty(t, tool.Description)
	}
	assert.Equal(t, []string{"humanize", "rewrite", "score"}, names)
}

func TestInstructions(t *testing.T) {
	session := connect(t, humanizerServer(WithInstructions("Call humanize with the draft text.")))

	assert.Equal(t, "Call humanize with the draft text.", session.InitializeResult().Instructions)
}

func TestCallHumanize(t *testing.T) {
	session := connect(t, humanizerServer())

	res, text := call(t, session, "humanize", map[string]any{
		"text": "Furthermore, the team shipped the release. In conclusion, it works.",
		"tone": "casual",
	})
	assert.False(t, res.IsError)

	var out humanizer.Result
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.True(t, out.UsedFallback)
	assert.NotContains(t, out.OutputText, "Furthermore")
	assert.GreaterOrEqual(t, out.ConfidenceScore, 50)

	structured, ok := res.StructuredContent.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, out.OutputText, structured["outputText"])
}

func TestCallScore(t *testing.T) {
	session := connect(t, humanizerServer())

	res, text := call(t, session, "score", map[string]any{"text": "Short. A much longer sentence follows here."})
	assert.False(t, res.IsError)
	assert.JSONEq(t, mustJSON(t, humanizer.Score("Short. A much longer sentence follows here.")), text)
}

func TestCallInvalidInput(t *testing.T) {
	session := connect(t, humanizerServer())

	res, text := call(t, session, "humanize", map[string]any{"text": "Some text.", "level": "extreme"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "invalid level")
	assert.Nil(t, res.StructuredContent)
}

func TestCallPlainTextResult(t *testing.T) {
	var logs bytes.Buffer
	box := toolbox.New(
		toolbox.Tool{
			Name:    "plain",
			Handler: func(context.Context, json.RawMessage) (string, error) { return "just text", nil },
		},
		toolbox.Tool{
			Name:    "broken",
			Handler: func(context.Context, json.RawMessage) (string, error) { return "", errors.New("upstream down") },
		},
	)
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	session := connect(t, New("srv", "1", box, WithLogger(logger)))

	res, text := call(t, session, "plain", nil)
	assert.False(t, res.IsError)
	assert.Equal(t, "just text", text)
	assert.Nil(t, res.StructuredContent)

	res, text = call(t, session, "broken", nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "upstream down", text)

	assert.Contains(t, logs.String(), "tool=plain")
	assert.Contains(t, logs.String(), `msg="tool call failed" tool=broken`)
}

func TestCallUnknownTool(t *testing.T) {
	session := connect(t, New("srv", "1", toolbox.New()))

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{Name: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestRunCancelled(t *testing.T) {
	serverSide, _ := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, New("srv", "1", toolbox.New()).run(ctx, serverSide), context.Canceled)
}

func TestIsJSONObject(t *testing.T) {
	assert.True(t, isJSONObject(` {"a":1}`))
	assert.False(t, isJSONObject(`[1,2]`))
	assert.False(t, isJSONObject(`{broken`))
	assert.False(t, isJSONObject(``))
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
