// Package tools implements the MCP tool handlers for Apple Notes.
//
// Each tool follows the same shape:
// - A struct holding the *notes.Service it calls
// - Definition() returns the mcp.Tool schema
// - Handle() reads arguments, calls the service and returns its reply
//
// Tools never return Go errors. Failures travel as error results so the
// host always receives one text message.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
)

// result converts a service reply into a tool result.
func result(r notes.Reply) *mcp.CallToolResult {
	if r.IsError {
		return mcp.NewToolResultError(r.Text)
	}
	return mcp.NewToolResultText(r.Text)
}

// boolArg extracts a boolean argument from a tool request. Hosts that
// send "true" or "false" as strings are accepted too.
func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	switch v := req.GetArguments()[key].(type) {
	case bool:
		return v
	case string:
		switch v {
		case "true":
			return true
		case "false":
			return false
		}
	}
	return defaultVal
}

// accountParam is shared by every tool that can be scoped to one account.
func accountParam(desc string) mcp.ToolOption {
	return mcp.WithString("account", mcp.Description(desc))
}
