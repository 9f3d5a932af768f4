package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// OverviewPrompt handles the notes-overview MCP prompt.
type OverviewPrompt struct{}

// NewOverviewPrompt creates an OverviewPrompt.
func NewOverviewPrompt() *OverviewPrompt {
	return &OverviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *OverviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("notes-overview",
		mcp.WithPromptDescription(
			"Summarize what is in Apple Notes: accounts, folders and the most recently modified notes.",
		),
	)
}

// Handle processes the notes-overview prompt request.
func (p *OverviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Apple Notes overview",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please give me an overview of my Apple Notes.\n\n" +
						"1. Run `list_accounts` to see which accounts exist\n" +
						"2. Run `list_folders` for each account\n" +
						"3. Run `list_notes` and sort the result by modification date\n" +
						"4. Show accounts and folders as a short tree, then the ten most recent notes\n\n" +
						"Do not read or change any note unless I ask.",
				),
			},
		},
	}, nil
}
