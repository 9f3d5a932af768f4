// Package resources implements MCP resource handlers for Apple Notes.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (notes://...) following MCP conventions.
package resources

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// AccountsURI addresses the account list.
const AccountsURI = "notes://accounts"

// Handler manages note resource endpoints.
type Handler struct {
	svc *notes.Service
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(svc *notes.Service) *Handler {
	return &Handler{svc: svc}
}

// AccountsResource returns the MCP resource definition for the account list.
func (h *Handler) AccountsResource() mcp.Resource {
	return mcp.NewResource(
		AccountsURI,
		"Apple Notes accounts",
		mcp.WithResourceDescription("Accounts configured in Apple Notes"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleAccounts returns the account list as JSON.
func (h *Handler) HandleAccounts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	accounts, err := h.svc.Accounts(ctx)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling accounts: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
