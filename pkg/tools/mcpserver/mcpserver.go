// Package mcpserver serves a toolbox over the Model Context Protocol, so that
// editors and agents can call the humanizer tools over stdio.
package mcpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"github.com/germanamz/humanize/pkg/tools/toolbox"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Option configures an MCPServer.
type Option func(*MCPServer)

// WithInstructions sets the usage hint sent to clients on initialize.
func WithInstructions(text string) Option {
	return func(s *MCPServer) { s.instructions = text }
}

// WithLogger sets the logger for tool calls.
func WithLogger(l *slog.Logger) Option {
	return func(s *MCPServer) {
		if l != nil {
			s.log = l
		}
	}
}

// MCPServer serves the tools of a ToolBox over MCP.
type MCPServer struct {
	server       *mcp.Server
	box          *toolbox.ToolBox
	log          *slog.Logger
	instructions string
}

// New creates an MCPServer serving every tool in box. The tool set is fixed at
// construction.
func New(name, version string, box *toolbox.ToolBox, opts ...Option) *MCPServer {
	s := &MCPServer{
		box: box,
		log: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.server = mcp.NewServer(
		&mcp.Implementation{Name: name, Version: version},
		&mcp.ServerOptions{Instructions: s.instructions},
	)
	for _, t := range box.Tools() {
		s.server.AddTool(sdkTool(t), s.handler(t.Name))
	}

	return s
}

// Serve reads requests from in and writes responses to out until ctx is
// cancelled or in is exhausted.
func (s *MCPServer) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.run(ctx, &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	})
}

func (s *MCPServer) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

func sdkTool(t toolbox.Tool) *mcp.Tool {
	schema := t.InputSchema
	if len(schema) == 0 {
		schema = json.RawMessage(`{"type":"object"}`)
	}

	return &mcp.Tool{
		Name:        t.Name,
		Description: t.Description,
		InputSchema: schema,
	}
}

// handler dispatches through the toolbox. Tool failures become error results
// so that the client sees the message; a JSON object result is also attached
// as structured content.
func (s *MCPServer) handler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		text, err := s.box.Call(ctx, name, req.Params.Arguments)

		if err != nil {
			s.log.WarnContext(ctx, "tool call failed", "tool", name, "duration", time.Since(start), "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}

		s.log.InfoContext(ctx, "tool call", "tool", name, "duration", time.Since(start))

		res := &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: text}},
		}
		if isJSONObject(text) {
			res.StructuredContent = json.RawMessage(text)
		}
		return res, nil
	}
}

func isJSONObject(s string) bool {
	b := bytes.TrimSpace([]byte(s))
	return len(b) > 0 && b[0] == '{' && json.Valid(b)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
