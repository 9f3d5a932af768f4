// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the osascript executor and the
// notes service and injects them into the tools, prompts and resources.
// No business logic lives here, only wiring.
package server

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/HendryAvila/apple-notes-mcp/internal/config"
	"github.com/HendryAvila/apple-notes-mcp/internal/notes"
	"github.com/HendryAvila/apple-notes-mcp/internal/osascript"
	"github.com/HendryAvila/apple-notes-mcp/internal/prompts"
	"github.com/HendryAvila/apple-notes-mcp/internal/resources"
	"github.com/HendryAvila/apple-notes-mcp/internal/tools"
)

// Name is the server name advertised to MCP hosts.
const Name = "apple-notes"

// Version is set at build time via ldflags.
var Version = "dev"

// NewService builds the notes service described by cfg.
func NewService(cfg config.Config, logger *slog.Logger) *notes.Service {
	runner := osascript.New(
		osascript.WithCommand(cfg.Osascript.Command),
		osascript.WithTimeout(cfg.Osascript.Timeout),
		osascript.WithLogger(logger),
	)
	return notes.NewService(runner, logger)
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New(cfg config.Config, logger *slog.Logger) (*server.MCPServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	svc := NewService(cfg, logger)

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	for _, t := range tools.All(svc) {
		s.AddTool(t.Definition(), t.Handle)
	}

	// --- Register prompts ---

	findPrompt := prompts.NewFindPrompt()
	s.AddPrompt(findPrompt.Definition(), findPrompt.Handle)

	overviewPrompt := prompts.NewOverviewPrompt()
	s.AddPrompt(overviewPrompt.Definition(), overviewPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(svc)
	s.AddResource(resourceHandler.AccountsResource(), resourceHandler.HandleAccounts)

	logger.Debug("server ready",
		"osascript", cfg.Osascript.Command,
		"timeout", cfg.Osascript.Timeout,
	)
	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the Apple Notes tools.
func serverInstructions() string {
	return `You have access to Apple Notes on this Mac.

## ADDRESSING NOTES

Notes are matched by exact title. Titles are not unique: when several notes
share a title, the first match wins. Prefer 'note_id' (from list_notes or
search_notes) for read_note, update_note and delete_note.

## SCOPE

- Omit 'account' to work across every account. Results are tagged [Account].
- 'folder' only applies together with 'account'.
- create_note without an account uses the default account and folder.

## SAFETY

- update_note replaces the whole body. Read the note first and send the full new text.
- delete_note moves the note to Recently Deleted. Confirm with the user before deleting.
- A "not found" reply is normal and not an error. Re-run search_notes to find the right title.

## CONTENT

Bodies are HTML. Pass plain=true to read_note for plain text.`
}
