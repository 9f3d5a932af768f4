package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/google/uuid"

	"github.com/HendryAvila/apple-notes-mcp/internal/applescript"
	"github.com/HendryAvila/apple-notes-mcp/internal/osascript"
)

// ErrNotFound is returned when a named or identified lookup matches nothing.
var ErrNotFound = errors.New("note not found")

// HostError carries a failure reported by osascript or by the trapped
// script logic.
type HostError struct {
	// Diagnostic is the host's text. Process failures keep the
	// osascript.FailurePrefix; script failures carry only the message
	// that followed the ERROR sentinel.
	Diagnostic string
	// InScript is true when the script trapped the error and the
	// process itself exited cleanly.
	InScript bool
}

func (e *HostError) Error() string { return e.Diagnostic }

// Service runs note operations against Notes.app.
type Service struct {
	runner osascript.Runner
	logger *slog.Logger
}

// NewService creates a Service. A nil logger falls back to slog.Default().
func NewService(runner osascript.Runner, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{runner: runner, logger: logger}
}

// run builds and executes one script. It returns the raw success payload
// with the in-script error sentinel already turned into a HostError.
func (s *Service) run(ctx context.Context, op applescript.Operation, p applescript.Params) (applescript.Scope, string, error) {
	script, err := applescript.Build(op, p)
	if err != nil {
		return "", "", err
	}

	log := s.logger.With("call_id", uuid.NewString(), "op", string(op), "scope", string(script.Scope))
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("running script", "bytes", len(script.Text), "script", script.Text)
	}

	start := time.Now()
	res := s.runner.Run(ctx, script.Text)
	log.Info("osascript finished", "status", res.Status.String(), "elapsed", time.Since(start))

	if !res.OK() {
		return script.Scope, "", &HostError{Diagnostic: res.Output}
	}
	if kind, msg := ParseScalar(res.Output); kind == ScalarError {
		log.Warn("script reported an error", "message", msg)
		return script.Scope, "", &HostError{Diagnostic: msg, InScript: true}
	}
	return script.Scope, res.Output, nil
}

// ─── Typed queries ──────────────────────────────────────────────────────────

// ListParams scopes a note listing. Folder only applies with Account.
// Match is an optional glob ('*', '?', '[...]', '{a,b}') on note names.
type ListParams struct {
	Account string
	Folder  string
	Match   string
}

// Notes lists notes in a folder, an account, or across all accounts.
func (s *Service) Notes(ctx context.Context, p ListParams) ([]Note, error) {
	var match glob.Glob
	if pattern := clean(p.Match); pattern != "" {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid 'match' pattern %q: %w", pattern, err)
		}
		match = g
	}

	params := applescript.Params{Account: clean(p.Account), Folder: clean(p.Folder)}
	if params.Folder != "" && params.Account == "" {
		s.logger.Warn("folder ignored without account", "folder", params.Folder)
	}

	scope, raw, err := s.run(ctx, applescript.ListNotes, params)
	if err != nil {
		return nil, err
	}

	records := ParseList(raw, Layout{Fields: noteLayout, Prefixed: scope == applescript.ScopeAll})
	notes := make([]Note, 0, len(records))
	for _, r := range records {
		n := noteFromRecord(r)
		if match != nil && !match.Match(n.Name) {
			continue
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// SearchParams holds a substring query and an optional account.
type SearchParams struct {
	Query   string
	Account string
}

// Search finds notes whose name or body contains the query.
func (s *Service) Search(ctx context.Context, p SearchParams) ([]Note, error) {
	params := applescript.Params{Query: p.Query, Account: clean(p.Account)}
	scope, raw, err := s.run(ctx, applescript.SearchNotes, params)
	if err != nil {
		return nil, err
	}

	records := ParseList(raw, Layout{Fields: searchLayout, Prefixed: scope == applescript.ScopeAll})
	notes := make([]Note, 0, len(records))
	for _, r := range records {
		notes = append(notes, noteFromRecord(r))
	}
	return notes, nil
}

// Accounts lists every Notes account.
func (s *Service) Accounts(ctx context.Context) ([]Account, error) {
	_, raw, err := s.run(ctx, applescript.ListAccounts, applescript.Params{})
	if err != nil {
		return nil, err
	}

	records := ParseList(raw, Layout{Fields: nameLayout})
	accounts := make([]Account, 0, len(records))
	for _, r := range records {
		accounts = append(accounts, Account{Name: r["name"]})
	}
	return accounts, nil
}

// Folders lists folders of one account, or of every account.
func (s *Service) Folders(ctx context.Context, account string) ([]Folder, error) {
	scope, raw, err := s.run(ctx, applescript.ListFolders, applescript.Params{Account: clean(account)})
	if err != nil {
		return nil, err
	}

	records := ParseList(raw, Layout{Fields: nameLayout, Prefixed: scope == applescript.ScopeAll})
	folders := make([]Folder, 0, len(records))
	for _, r := range records {
		folders = append(folders, folderFromRecord(r))
	}
	return folders, nil
}

// ReadParams addresses one note by ID, or by name within an optional
// account.
type ReadParams struct {
	Name    string
	ID      string
	Account string
	Plain   bool
}

// Read returns a note's body, or ErrNotFound.
func (s *Service) Read(ctx context.Context, p ReadParams) (string, error) {
	params := applescript.Params{Name: clean(p.Name), ID: clean(p.ID), Account: clean(p.Account), Plain: p.Plain}
	_, raw, err := s.run(ctx, applescript.ReadNote, params)
	if err != nil {
		return "", err
	}
	if kind, _ := ParseScalar(raw); kind == ScalarNotFound {
		return "", ErrNotFound
	}
	return raw, nil
}

// mutate runs a trapped mutation and maps its sentinel.
func (s *Service) mutate(ctx context.Context, op applescript.Operation, p applescript.Params) error {
	_, raw, err := s.run(ctx, op, p)
	if err != nil {
		return err
	}
	switch kind, _ := ParseScalar(raw); kind {
	case ScalarSuccess:
		return nil
	case ScalarNotFound:
		return ErrNotFound
	default:
		return &HostError{Diagnostic: fmt.Sprintf("unexpected response from Notes: %q", raw), InScript: true}
	}
}

// ─── Operations ─────────────────────────────────────────────────────────────
//
// Each operation returns a Reply rather than an error: the caller receives
// one string either way.

// ListNotes enumerates notes as "name (ID, Modified)".
func (s *Service) ListNotes(ctx context.Context, p ListParams) Reply {
	notes, err := s.Notes(ctx, p)
	if err != nil {
		return failure("list notes", err)
	}
	if len(notes) == 0 {
		return textReply("No notes found.")
	}

	var b strings.Builder
	b.WriteString("Found notes:\n")
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s%s (ID: %s, Modified: %s)\n", i+1, accountTag(n.Account), n.Name, n.ID, n.Modified)
	}
	return textReply(b.String())
}

// SearchNotes enumerates notes matching a substring in name or body.
func (s *Service) SearchNotes(ctx context.Context, p SearchParams) Reply {
	if strings.TrimSpace(p.Query) == "" {
		return errorReply("'query' is required")
	}

	notes, err := s.Search(ctx, p)
	if err != nil {
		return failure("search notes", err)
	}
	if len(notes) == 0 {
		return textReply(fmt.Sprintf("No notes found containing '%s'.", p.Query))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d note(s) containing '%s':\n", len(notes), p.Query)
	for i, n := range notes {
		fmt.Fprintf(&b, "%d. %s%s (ID: %s)\n", i+1, accountTag(n.Account), n.Name, n.ID)
	}
	return textReply(b.String())
}

// ReadNote returns the full body text of one note.
func (s *Service) ReadNote(ctx context.Context, p ReadParams) Reply {
	if clean(p.Name) == "" && clean(p.ID) == "" {
		return errorReply("'note_name' is required")
	}

	body, err := s.Read(ctx, p)
	if errors.Is(err, ErrNotFound) {
		return textReply(notFound(p.Name, p.ID))
	}
	if err != nil {
		return failure("read note", err)
	}
	return textReply(body)
}

// CreateParams describes a new note. Folder only applies with Account.
type CreateParams struct {
	Title   string
	Content string
	Account string
	Folder  string
}

// CreateNote makes a note in the given container, or the default one.
func (s *Service) CreateNote(ctx context.Context, p CreateParams) Reply {
	title := clean(p.Title)
	if title == "" {
		return errorReply("'title' is required")
	}
	if p.Content == "" {
		return errorReply("'content' is required")
	}
	params := applescript.Params{Title: title, Content: p.Content, Account: clean(p.Account), Folder: clean(p.Folder)}
	if params.Folder != "" && params.Account == "" {
		s.logger.Warn("folder ignored without account", "folder", params.Folder)
	}

	if err := s.mutate(ctx, applescript.CreateNote, params); err != nil {
		return failure(fmt.Sprintf("create note '%s'", title), err)
	}
	return textReply(fmt.Sprintf("Successfully created note '%s'.", title))
}

// UpdateParams replaces the body of one note.
type UpdateParams struct {
	Name       string
	ID         string
	NewContent string
	Account    string
}

// UpdateNote replaces a note's body.
func (s *Service) UpdateNote(ctx context.Context, p UpdateParams) Reply {
	if clean(p.Name) == "" && clean(p.ID) == "" {
		return errorReply("'note_name' is required")
	}
	if p.NewContent == "" {
		return errorReply("'new_content' is required")
	}
	params := applescript.Params{Name: clean(p.Name), ID: clean(p.ID), Content: p.NewContent, Account: clean(p.Account)}

	label := noteLabel(p.Name, p.ID)
	err := s.mutate(ctx, applescript.UpdateNote, params)
	if errors.Is(err, ErrNotFound) {
		return textReply(notFound(p.Name, p.ID))
	}
	if err != nil {
		return failure("update note "+label, err)
	}
	return textReply(fmt.Sprintf("Successfully updated note %s.", label))
}

// DeleteParams addresses the note to delete.
type DeleteParams struct {
	Name    string
	ID      string
	Account string
}

// DeleteNote removes one note.
func (s *Service) DeleteNote(ctx context.Context, p DeleteParams) Reply {
	if clean(p.Name) == "" && clean(p.ID) == "" {
		return errorReply("'note_name' is required")
	}
	params := applescript.Params{Name: clean(p.Name), ID: clean(p.ID), Account: clean(p.Account)}

	label := noteLabel(p.Name, p.ID)
	err := s.mutate(ctx, applescript.DeleteNote, params)
	if errors.Is(err, ErrNotFound) {
		return textReply(notFound(p.Name, p.ID))
	}
	if err != nil {
		return failure("delete note "+label, err)
	}
	return textReply(fmt.Sprintf("Successfully deleted note %s.", label))
}

// ListAccounts enumerates account names.
func (s *Service) ListAccounts(ctx context.Context) Reply {
	accounts, err := s.Accounts(ctx)
	if err != nil {
		return failure("list accounts", err)
	}
	if len(accounts) == 0 {
		return textReply("No accounts found.")
	}

	var b strings.Builder
	b.WriteString("Available accounts:\n")
	for i, a := range accounts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, a.Name)
	}
	return textReply(b.String())
}

// ListFolders enumerates folder names of one account, or of all.
func (s *Service) ListFolders(ctx context.Context, account string) Reply {
	folders, err := s.Folders(ctx, account)
	if err != nil {
		return failure("list folders", err)
	}
	if len(folders) == 0 {
		return textReply("No folders found.")
	}

	var b strings.Builder
	b.WriteString("Available folders:\n")
	for i, f := range folders {
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, accountTag(f.Account), f.Name)
	}
	return textReply(b.String())
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// failure renders err for the caller. Process failures pass through
// verbatim; script failures are framed with the action that failed.
func failure(action string, err error) Reply {
	var hostErr *HostError
	if errors.As(err, &hostErr) && !hostErr.InScript {
		return errorReply(hostErr.Diagnostic)
	}
	if errors.As(err, &hostErr) {
		return errorReply(fmt.Sprintf("Failed to %s: %s", action, hostErr.Diagnostic))
	}
	return errorReply(fmt.Sprintf("Failed to %s: %v", action, err))
}

func clean(s string) string { return strings.TrimSpace(s) }

func accountTag(account string) string {
	if account == "" {
		return ""
	}
	return "[" + account + "] "
}

func noteLabel(name, id string) string {
	if clean(id) != "" {
		return fmt.Sprintf("with ID '%s'", clean(id))
	}
	return fmt.Sprintf("'%s'", clean(name))
}

func notFound(name, id string) string {
	return fmt.Sprintf("Note %s not found.", noteLabel(name, id))
}
