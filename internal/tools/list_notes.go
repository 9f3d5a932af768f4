package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// ListNotesTool handles the list_notes MCP tool.
type ListNotesTool struct {
	svc *notes.Service
}

// NewListNotesTool creates a ListNotesTool.
func NewListNotesTool(svc *notes.Service) *ListNotesTool {
	return &ListNotesTool{svc: svc}
}

// Definition returns the MCP tool definition for list_notes.
func (t *ListNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("list_notes",
		mcp.WithDescription(
			"List notes in Apple Notes with their IDs and modification dates. "+
				"Without an account, notes from every account are listed and tagged with their account.",
		),
		accountParam("Account to list, e.g. 'iCloud'. Omit to list all accounts."),
		mcp.WithString("folder",
			mcp.Description("Folder within the account. Ignored unless 'account' is also set."),
		),
		mcp.WithString("match",
			mcp.Description("Optional glob on note titles, e.g. 'Meeting *' or '*{todo,TODO}*'"),
		),
		mcp.WithTitleAnnotation("List notes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the list_notes tool call.
func (t *ListNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.svc.ListNotes(ctx, notes.ListParams{
		Account: req.GetString("account", ""),
		Folder:  req.GetString("folder", ""),
		Match:   req.GetString("match", ""),
	})), nil
}
