package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	healthmcp "github.com/gorewood/healthnote/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run healthnote as a Model Context Protocol (MCP) server over stdio.

This exposes export listing, scoring and conversion as MCP tools that any
MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "healthnote": {
        "command": "healthnote",
        "args": ["serve"]
      }
    }
  }

Available tools: list_exports, scores, convert`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			server := healthmcp.NewServer(buildVersion(), cfg, nil)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
