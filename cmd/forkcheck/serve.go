package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/gorewood/forkcheck/internal/advisor"
	forkmcp "github.com/gorewood/forkcheck/internal/mcp"
	"github.com/gorewood/forkcheck/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run forkcheck as a Model Context Protocol (MCP) server over stdio.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "forkcheck": {
        "command": "forkcheck",
        "args": ["serve"]
      }
    }
  }

Available tools: report, fork_setup, branch_check, guidance`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd)
			defer logger.Sync() //nolint:errcheck // stderr sync errors are not actionable

			// Config and source are resolved per call so edits take effect
			// without restarting the server.
			open := func(context.Context) (*advisor.Advisor, error) {
				loaded, err := loadConfig(cmd, logger)
				if err != nil {
					return nil, err
				}
				src, err := newSource(cmd, logger)
				if err != nil {
					return nil, err
				}
				return advisor.New(src, loaded.Config), nil
			}

			server := forkmcp.NewServer(buildVersion(), open)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				return output.NewSystemErrorWithCause("mcp server: "+err.Error(), err)
			}
			return nil
		},
	}
}
