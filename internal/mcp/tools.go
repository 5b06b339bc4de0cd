package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/forkcheck/internal/advisor"
)

// --- Report tool ---

// ReportInput is the input for the report tool (no parameters needed).
type ReportInput struct{}

// ReportOutput is the output for the report tool.
type ReportOutput struct {
	Report *advisor.Report `json:"report" jsonschema:"every report section in run order"`
}

func handleReport(open Opener) mcp.ToolHandlerFor[ReportInput, ReportOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ReportInput) (*mcp.CallToolResult, ReportOutput, error) {
		adv, err := open(ctx)
		if err != nil {
			return nil, ReportOutput{}, fmt.Errorf("opening repository: %w", err)
		}

		report, err := adv.Run(ctx)
		if err != nil {
			return nil, ReportOutput{}, err
		}
		return nil, ReportOutput{Report: report}, nil
	}
}

// --- Fork setup tool ---

// ForkSetupInput is the input for the fork_setup tool (no parameters needed).
type ForkSetupInput struct{}

// ForkSetupOutput is the output for the fork_setup tool.
type ForkSetupOutput struct {
	Fork advisor.ForkSetup `json:"fork" jsonschema:"remote flags, verdict and remediation"`
}

func handleForkSetup(open Opener) mcp.ToolHandlerFor[ForkSetupInput, ForkSetupOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ForkSetupInput) (*mcp.CallToolResult, ForkSetupOutput, error) {
		adv, err := openRepository(ctx, open)
		if err != nil {
			return nil, ForkSetupOutput{}, err
		}
		return nil, ForkSetupOutput{Fork: adv.AnalyzeForkSetup(ctx)}, nil
	}
}

// --- Branch check tool ---

// BranchCheckInput is the input for the branch_check tool.
type BranchCheckInput struct {
	Branch string `json:"branch,omitempty" jsonschema:"branch name to locate (default: every watched branch)"`
}

// BranchCheckOutput is the output for the branch_check tool.
type BranchCheckOutput struct {
	Branches []advisor.BranchCheck `json:"branches" jsonschema:"one result per checked branch"`
}

func handleBranchCheck(open Opener) mcp.ToolHandlerFor[BranchCheckInput, BranchCheckOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input BranchCheckInput) (*mcp.CallToolResult, BranchCheckOutput, error) {
		adv, err := openRepository(ctx, open)
		if err != nil {
			return nil, BranchCheckOutput{}, err
		}

		names := adv.WatchBranches()
		if input.Branch != "" {
			names = []string{input.Branch}
		}
		if len(names) == 0 {
			return nil, BranchCheckOutput{}, errors.New("no branch given and no watched branches configured")
		}

		out := BranchCheckOutput{Branches: make([]advisor.BranchCheck, 0, len(names))}
		for _, name := range names {
			out.Branches = append(out.Branches, adv.CheckNamedBranch(ctx, name))
		}
		return nil, out, nil
	}
}

// --- Guidance tool ---

// GuidanceInput is the input for the guidance tool (no parameters needed).
type GuidanceInput struct{}

// GuidanceOutput is the output for the guidance tool.
type GuidanceOutput struct {
	Guidance advisor.Guidance `json:"guidance" jsonschema:"contribution steps for the current branch"`
}

func handleGuidance(open Opener) mcp.ToolHandlerFor[GuidanceInput, GuidanceOutput] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ GuidanceInput) (*mcp.CallToolResult, GuidanceOutput, error) {
		adv, err := openRepository(ctx, open)
		if err != nil {
			return nil, GuidanceOutput{}, err
		}
		return nil, GuidanceOutput{Guidance: adv.PrintGuidance(ctx)}, nil
	}
}

// openRepository opens an Advisor and fails unless it is inside a repository.
func openRepository(ctx context.Context, open Opener) (*advisor.Advisor, error) {
	adv, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening repository: %w", err)
	}
	if check := adv.VerifyRepository(ctx); !check.Found {
		return nil, fmt.Errorf("%w: %s", advisor.ErrNotRepository, check.Error)
	}
	return adv, nil
}
