package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// CreateNoteTool handles the create_note MCP tool.
type CreateNoteTool struct {
	svc *notes.Service
}

// NewCreateNoteTool creates a CreateNoteTool.
func NewCreateNoteTool(svc *notes.Service) *CreateNoteTool {
	return &CreateNoteTool{svc: svc}
}

// Definition returns the MCP tool definition for create_note.
func (t *CreateNoteTool) Definition() mcp.Tool {
	return mcp.NewTool("create_note",
		mcp.WithDescription(
			"Create a new note in Apple Notes. Without an account the note lands in the default account and folder.",
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Title of the new note"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Body of the new note. Plain text or simple HTML."),
		),
		accountParam("Account to create the note in. Omit for the default account."),
		mcp.WithString("folder",
			mcp.Description("Folder within the account. Ignored unless 'account' is also set."),
		),
		mcp.WithTitleAnnotation("Create note"),
		mcp.WithReadOnlyHintAnnotation(false),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the create_note tool call.
func (t *CreateNoteTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	if title == "" {
		return mcp.NewToolResultError("'title' is required"), nil
	}
	content := req.GetString("content", "")
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	return result(t.svc.CreateNote(ctx, notes.CreateParams{
		Title:   title,
		Content: content,
		Account: req.GetString("account", ""),
		Folder:  req.GetString("folder", ""),
	})), nil
}
