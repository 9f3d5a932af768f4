// Package prompts implements MCP prompt handlers for Apple Notes.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to run a short sequence of tools. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// FindPrompt handles the notes-find MCP prompt.
// It walks the AI through search, disambiguation and read.
type FindPrompt struct{}

// NewFindPrompt creates a FindPrompt.
func NewFindPrompt() *FindPrompt {
	return &FindPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *FindPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("notes-find",
		mcp.WithPromptDescription(
			"Find a note in Apple Notes and show its content. "+
				"Searches titles and bodies, then reads the best match by ID.",
		),
		mcp.WithArgument("query",
			mcp.ArgumentDescription("Text to look for in your notes"),
			mcp.RequiredArgument(),
		),
		mcp.WithArgument("account",
			mcp.ArgumentDescription("Limit the search to one account, e.g. 'iCloud'"),
		),
	)
}

// Handle processes the notes-find prompt request.
func (p *FindPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	query := strings.TrimSpace(req.Params.Arguments["query"])
	if query == "" {
		return nil, fmt.Errorf("'query' is required")
	}

	search := fmt.Sprintf("query='%s'", query)
	if account := strings.TrimSpace(req.Params.Arguments["account"]); account != "" {
		search += fmt.Sprintf(", account='%s'", account)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Find notes about: %s", query),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I'm looking for a note about '%s'.\n\n"+
						"Please:\n"+
						"1. Run `search_notes` with %s\n"+
						"2. If nothing matches, tell me and suggest a shorter query\n"+
						"3. If several notes match, show me the list and ask which one I mean\n"+
						"4. Run `read_note` with the chosen note's `note_id` and plain=true\n"+
						"5. Show me the content and a one-line summary\n\n"+
						"Use `note_id` rather than `note_name` when reading, since titles are not unique.",
					query, search,
				)),
			},
		},
	}, nil
}
