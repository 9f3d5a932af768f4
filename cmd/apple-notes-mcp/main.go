// apple-notes-mcp: an MCP server for Apple Notes.
//
// It drives Notes.app through osascript and exposes listing, search,
// read, create, update and delete of notes as MCP tools.
//
// Usage:
//
//	apple-notes-mcp serve                          # Start MCP server (stdio transport)
//	apple-notes-mcp call list_notes --arg account=iCloud
//	apple-notes-mcp tools                          # Print tool definitions as JSON
package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
