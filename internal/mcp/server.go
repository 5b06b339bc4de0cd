// Package mcp provides a Model Context Protocol server for forkcheck.
// It exposes the workflow advisor's read-only checks as MCP tools.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/forkcheck/internal/advisor"
)

// Opener builds the Advisor a tool call runs against. It is called once per
// tool call so that every call sees the repository as it is now.
type Opener func(ctx context.Context) (*advisor.Advisor, error)

// NewServer creates an MCP server with all forkcheck tools registered.
func NewServer(version string, open Opener) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "forkcheck",
		Version: version,
	}, nil)
	registerTools(server, open)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// readOnlyAnnotations returns annotations for read-only tools.
func readOnlyAnnotations() *mcp.ToolAnnotations {
	return &mcp.ToolAnnotations{
		ReadOnlyHint:   true,
		IdempotentHint: true,
		OpenWorldHint:  boolPtr(false),
	}
}

// registerTools adds all forkcheck tools to the server.
func registerTools(server *mcp.Server, open Opener) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "report",
		Description: "Run the full fork-workflow report: repository root, current branch, remotes, recent commits, working tree status, fork setup, watched branches, guidance and summary.",
		Annotations: readOnlyAnnotations(),
	}, handleReport(open))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "fork_setup",
		Description: "Check whether the origin (fork) and upstream remotes are configured, with the command that fixes a missing upstream.",
		Annotations: readOnlyAnnotations(),
	}, handleForkSetup(open))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "branch_check",
		Description: "Locate a branch: checked out, only on the fork remote, only local, or missing. Without a branch name, checks every watched branch.",
		Annotations: readOnlyAnnotations(),
	}, handleBranchCheck(open))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "guidance",
		Description: "Get the numbered contribution steps for the current branch.",
		Annotations: readOnlyAnnotations(),
	}, handleGuidance(open))
}
