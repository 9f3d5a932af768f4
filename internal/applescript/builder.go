// Package applescript builds the AppleScript programs the bridge sends to
// Notes.app through osascript.
//
// Scripts live as text/template files under scripts/ and are embedded into
// the binary. Every user-controlled value reaches a template through the
// "q" function, which escapes and quotes it (see Escape), so no template
// ever interpolates raw input.
//
// Each operation has up to four variants ("scopes"). Build picks the most
// specific scope whose parameters are all present.
package applescript

import (
	"embed"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

//go:embed scripts/*.tmpl
var scriptFS embed.FS

var scripts = template.Must(
	template.New("applescript").
		Funcs(template.FuncMap{"q": Quote}).
		ParseFS(scriptFS, "scripts/*.tmpl"),
)

// Sentinels written by trapped scripts on stdout. The host process exits 0
// even when the scripted logic fails, so these carry the real outcome.
const (
	SentinelSuccess  = "SUCCESS"
	SentinelError    = "ERROR: "
	SentinelNotFound = "NOT_FOUND"
)

var (
	// ErrUnknownOperation is returned for an operation with no scripts.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrMissingParam is returned when a required parameter is empty.
	ErrMissingParam = errors.New("missing required parameter")
)

// Operation names a bridge operation. The names double as MCP tool names.
type Operation string

const (
	ListNotes    Operation = "list_notes"
	SearchNotes  Operation = "search_notes"
	ReadNote     Operation = "read_note"
	CreateNote   Operation = "create_note"
	UpdateNote   Operation = "update_note"
	DeleteNote   Operation = "delete_note"
	ListAccounts Operation = "list_accounts"
	ListFolders  Operation = "list_folders"
)

// Scope identifies which container a script variant addresses.
type Scope string

const (
	// ScopeFolder targets one folder of one account.
	ScopeFolder Scope = "folder"
	// ScopeID targets a single note by its host-assigned identifier.
	ScopeID Scope = "id"
	// ScopeAccount targets one account.
	ScopeAccount Scope = "account"
	// ScopeAll walks every account. Multi-result variants prefix each
	// record with "Account::".
	ScopeAll Scope = "all"
)

func (s Scope) satisfiedBy(p Params) bool {
	switch s {
	case ScopeFolder:
		return p.Account != "" && p.Folder != ""
	case ScopeID:
		return p.ID != ""
	case ScopeAccount:
		return p.Account != ""
	default:
		return true
	}
}

// Params carries the already-validated inputs of an operation.
// Empty strings mean "not supplied".
type Params struct {
	Account string
	Folder  string
	Name    string
	ID      string
	Title   string
	Content string
	Query   string
	// Plain selects the plaintext property instead of the HTML body
	// when reading a note.
	Plain bool
}

// Script is a rendered AppleScript program plus the variant it came from.
type Script struct {
	Op    Operation
	Scope Scope
	Text  string
}

type field struct {
	name string
	get  func(Params) string
}

var (
	fieldQuery   = field{"query", func(p Params) string { return p.Query }}
	fieldName    = field{"note_name", func(p Params) string { return p.Name }}
	fieldTitle   = field{"title", func(p Params) string { return p.Title }}
	fieldContent = field{"content", func(p Params) string { return p.Content }}
	fieldID      = field{"note_id", func(p Params) string { return p.ID }}

	fieldNewContent = field{"new_content", func(p Params) string { return p.Content }}
)

type operationSpec struct {
	required []field
	// identified lists fields of which at least one must be present.
	identified []field
	// scopes is ordered from most to least specific and always ends
	// with a scope every Params satisfies.
	scopes []Scope
}

var operations = map[Operation]operationSpec{
	ListNotes: {
		scopes: []Scope{ScopeFolder, ScopeAccount, ScopeAll},
	},
	SearchNotes: {
		required: []field{fieldQuery},
		scopes:   []Scope{ScopeAccount, ScopeAll},
	},
	ReadNote: {
		identified: []field{fieldName, fieldID},
		scopes:     []Scope{ScopeID, ScopeAccount, ScopeAll},
	},
	CreateNote: {
		required: []field{fieldTitle, fieldContent},
		scopes:   []Scope{ScopeFolder, ScopeAccount, ScopeAll},
	},
	UpdateNote: {
		required:   []field{fieldNewContent},
		identified: []field{fieldName, fieldID},
		scopes:     []Scope{ScopeID, ScopeAccount, ScopeAll},
	},
	DeleteNote: {
		identified: []field{fieldName, fieldID},
		scopes:     []Scope{ScopeID, ScopeAccount, ScopeAll},
	},
	ListAccounts: {
		scopes: []Scope{ScopeAll},
	},
	ListFolders: {
		scopes: []Scope{ScopeAccount, ScopeAll},
	},
}

// Operations returns every operation Build understands.
func Operations() []Operation {
	return []Operation{
		ListNotes, SearchNotes, ReadNote, CreateNote,
		UpdateNote, DeleteNote, ListAccounts, ListFolders,
	}
}

// SelectScope returns the most specific variant of op that p can fill.
func SelectScope(op Operation, p Params) (Scope, error) {
	def, ok := operations[op]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	for _, s := range def.scopes {
		if s.satisfiedBy(p) {
			return s, nil
		}
	}
	return ScopeAll, nil
}

// Build renders the script for op. It is a pure function and only fails
// when op is unknown or a required parameter is empty.
func Build(op Operation, p Params) (Script, error) {
	def, ok := operations[op]
	if !ok {
		return Script{}, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	for _, f := range def.required {
		if f.get(p) == "" {
			return Script{}, fmt.Errorf("%w: %s requires %s", ErrMissingParam, op, f.name)
		}
	}
	if len(def.identified) > 0 && !anyPresent(def.identified, p) {
		names := make([]string, 0, len(def.identified))
		for _, f := range def.identified {
			names = append(names, f.name)
		}
		return Script{}, fmt.Errorf("%w: %s requires %s", ErrMissingParam, op, strings.Join(names, " or "))
	}

	scope, err := SelectScope(op, p)
	if err != nil {
		return Script{}, err
	}

	var b strings.Builder
	name := string(op) + "." + string(scope)
	if err := scripts.ExecuteTemplate(&b, name, p); err != nil {
		return Script{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	return Script{Op: op, Scope: scope, Text: b.String()}, nil
}

func anyPresent(fields []field, p Params) bool {
	for _, f := range fields {
		if f.get(p) != "" {
			return true
		}
	}
	return false
}
