// Package tools exposes the humanizer to MCP (Model Context Protocol) clients.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/humanize/pkg/tools/toolbox]: Tool type and ToolBox for registering, listing, and calling tools
//   - [github.com/germanamz/humanize/pkg/tools/mcpserver]: MCP server using the official MCP Go SDK for serving a ToolBox
//
// The mcpserver package is a thin wrapper around the official MCP Go SDK
// (github.com/modelcontextprotocol/go-sdk).
package tools
