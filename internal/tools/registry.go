package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// Tool is implemented by every handler in this package.
type Tool interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every note tool bound to svc, in registration order.
func All(svc *notes.Service) []Tool {
	return []Tool{
		NewListNotesTool(svc),
		NewSearchNotesTool(svc),
		NewReadNoteTool(svc),
		NewCreateNoteTool(svc),
		NewUpdateNoteTool(svc),
		NewDeleteNoteTool(svc),
		NewListAccountsTool(svc),
		NewListFoldersTool(svc),
	}
}
