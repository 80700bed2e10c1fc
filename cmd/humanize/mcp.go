package main

import (
	"github.com/germanamz/humanize/pkg/humanizer"
	"github.com/germanamz/humanize/pkg/tools/mcpserver"
	"github.com/germanamz/humanize/pkg/tools/toolbox"
	"github.com/spf13/cobra"
)

func newMCPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the humanizer as MCP tools over stdio",
		Long: `Serve the humanize, score and rewrite tools over the Model Context Protocol
on stdin/stdout. Provider credentials come from the configuration; tool
inputs never carry them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newMCPServer(a).Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func newMCPServer(a *app) *mcpserver.MCPServer {
	box := toolbox.New(humanizer.Tools(a.pipeline("mcp"), a.cfg.Request())...)
	return mcpserver.New("humanize", version, box,
		mcpserver.WithLogger(a.logger),
		mcpserver.WithInstructions("Call humanize with the draft text to rewrite it; score and rewrite run locally without a language model."),
	)
}
