package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// ReadNoteTool handles the read_note MCP tool.
type ReadNoteTool struct {
	svc *notes.Service
}

// NewReadNoteTool creates a ReadNoteTool.
func NewReadNoteTool(svc *notes.Service) *ReadNoteTool {
	return &ReadNoteTool{svc: svc}
}

// Definition returns the MCP tool definition for read_note.
func (t *ReadNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("read_note",
		mcp.WithDescription(
			"Read the full content of a note. Notes are matched by exact title; "+
				"when several notes share a title, pass 'note_id' from list_notes or search_notes instead.",
		),
		mcp.WithString("note_name",
			mcp.Description("Exact title of the note. Required unless 'note_id' is set."),
		),
		mcp.WithString("note_id",
			mcp.Description("Note ID as reported by list_notes or search_notes. Takes precedence over 'note_name'."),
		),
		accountParam("Account holding the note. Omit to look in every account."),
		mcp.WithBoolean("plain",
			mcp.Description("Return plain text instead of the HTML body (default: false)"),
		),
		mcp.WithTitleAnnotation("Read note"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the read_note tool call.
func (t *ReadNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("note_name", "")
	id := req.GetString("note_id", "")
	if name == "" && id == "" {
		return mcp.NewToolResultError("'note_name' is required"), nil
	}

	return result(t.svc.ReadNote(ctx, notes.ReadParams{
		Name:    name,
		ID:      id,
		Account: req.GetString("account", ""),
		Plain:   boolArg(req, "plain", false),
	})), nil
}
