package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// DeleteNoteTool handles the delete_note MCP tool.
type DeleteNoteTool struct {
	svc *notes.Service
}

// NewDeleteNoteTool creates a DeleteNoteTool.
func NewDeleteNoteTool(svc *notes.Service) *DeleteNoteTool {
	return &DeleteNoteTool{svc: svc}
}

// Definition returns the MCP tool definition for delete_note.
func (t *DeleteNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("delete_note",
		mcp.WithDescription(
			"Delete a note. Notes.app moves it to Recently Deleted.",
		),
		mcp.WithString("note_name",
			mcp.Description("Exact title of the note. Required unless 'note_id' is set."),
		),
		mcp.WithString("note_id",
			mcp.Description("Note ID as reported by list_notes or search_notes. Takes precedence over 'note_name'."),
		),
		accountParam("Account holding the note. Omit to look in every account."),
		mcp.WithTitleAnnotation("Delete note"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the delete_note tool call.
func (t *DeleteNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("note_name", "")
	id := req.GetString("note_id", "")
	if name == "" && id == "" {
		return mcp.NewToolResultError("'note_name' is required"), nil
	}

	return result(t.svc.DeleteNote(ctx, notes.DeleteParams{
		Name:    name,
		ID:      id,
		Account: req.GetString("account", ""),
	})), nil
}
