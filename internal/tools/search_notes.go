package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// SearchNotesTool handles the search_notes MCP tool.
type SearchNotesTool struct {
	svc *notes.Service
}

// NewSearchNotesTool creates a SearchNotesTool.
func NewSearchNotesTool(svc *notes.Service) *SearchNotesTool {
	return &SearchNotesTool{svc: svc}
}

// Definition returns the MCP tool definition for search_notes.
func (t *SearchNotesTool) Definition() mcp.Tool {
	return mcp.NewTool("search_notes",
		mcp.WithDescription(
			"Search Apple Notes for notes whose title or body contains the query text.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Text to look for in note titles and bodies"),
		),
		accountParam("Restrict the search to one account. Omit to search all accounts."),
		mcp.WithTitleAnnotation("Search notes"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the search_notes tool call.
func (t *SearchNotesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	return result(t.svc.SearchNotes(ctx, notes.SearchParams{
		Query:   query,
		Account: req.GetString("account", ""),
	})), nil
}
