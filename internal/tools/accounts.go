package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// ─── ListAccountsTool ───────────────────────────────────────────────────────

// ListAccountsTool handles the list_accounts MCP tool.
type ListAccountsTool struct {
	svc *notes.Service
}

// NewListAccountsTool creates a ListAccountsTool.
func NewListAccountsTool(svc *notes.Service) *ListAccountsTool {
	return &ListAccountsTool{svc: svc}
}

// Definition returns the MCP tool definition for list_accounts.
func (t *ListAccountsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_accounts",
		mcp.WithDescription("List the accounts configured in Apple Notes, such as iCloud or On My Mac."),
		mcp.WithTitleAnnotation("List accounts"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the list_accounts tool call.
func (t *ListAccountsTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.svc.ListAccounts(ctx)), nil
}

// ─── ListFoldersTool ────────────────────────────────────────────────────────

// ListFoldersTool handles the list_folders MCP tool.
type ListFoldersTool struct {
	svc *notes.Service
}

// NewListFoldersTool creates a ListFoldersTool.
func NewListFoldersTool(svc *notes.Service) *ListFoldersTool {
	return &ListFoldersTool{svc: svc}
}

// Definition returns the MCP tool definition for list_folders.
func (t *ListFoldersTool) Definition() mcp.Tool {
	return mcp.NewTool("list_folders",
		mcp.WithDescription(
			"List folders in Apple Notes. Without an account, folders from every account are listed and tagged with their account.",
		),
		accountParam("Account whose folders to list. Omit to list all accounts."),
		mcp.WithTitleAnnotation("List folders"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}

// Handle processes the list_folders tool call.
func (t *ListFoldersTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return result(t.svc.ListFolders(ctx, req.GetString("account", ""))), nil
}
