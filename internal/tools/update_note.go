package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// UpdateNoteTool handles the update_note MCP tool.
type UpdateNoteTool struct {
	svc *notes.Service
}

// NewUpdateNoteTool creates an UpdateNoteTool.
func NewUpdateNoteTool(svc *notes.Service) *UpdateNoteTool {
	return &UpdateNoteTool{svc: svc}
}

// Definition returns the MCP tool definition for update_note.
func (t *UpdateNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("update_note",
		mcp.WithDescription(
			"Replace the entire body of an existing note. The previous content is overwritten.",
		),
		mcp.WithString("note_name",
			mcp.Description("Exact title of the note. Required unless 'note_id' is set."),
		),
		mcp.WithString("note_id",
			mcp.Description("Note ID as reported by list_notes or search_notes. Takes precedence over 'note_name'."),
		),
		mcp.WithString("new_content",
			mcp.Required(),
			mcp.Description("New body for the note"),
		),
		accountParam("Account holding the note. Omit to look in every account."),
		mcp.WithTitleAnnotation("Update note"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the update_note tool call.
func (t *UpdateNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("note_name", "")
	id := req.GetString("note_id", "")
	if name == "" && id == "" {
		return mcp.NewToolResultError("'note_name' is required"), nil
	}
	content := req.GetString("new_content", "")
	if content == "" {
		return mcp.NewToolResultError("'new_content' is required"), nil
	}

	return result(t.svc.UpdateNote(ctx, notes.UpdateParams{
		Name:       name,
		ID:         id,
		NewContent: content,
		Account:    req.GetString("account", ""),
	})), nil
}
