package notes

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/HendryAvila/apple-notes-mcp/internal/applescript"
)

// Args are raw string arguments keyed by their external parameter names
// (account, folder, match, note_name, note_id, title, content, new_content,
// query, plain).
type Args map[string]string

type handler func(ctx context.Context, s *Service, a Args) Reply

// handlers is the static operation table. Transports look operations up
// here by name; the table owns no state.
var handlers = map[applescript.Operation]handler{
	applescript.ListNotes: func(ctx context.Context, s *Service, a Args) Reply {
		return s.ListNotes(ctx, ListParams{Account: a["account"], Folder: a["folder"], Match: a["match"]})
	},
	applescript.SearchNotes: func(ctx context.Context, s *Service, a Args) Reply {
		return s.SearchNotes(ctx, SearchParams{Query: a["query"], Account: a["account"]})
	},
	applescript.ReadNote: func(ctx context.Context, s *Service, a Args) Reply {
		plain, err := boolArg(a, "plain")
		if err != nil {
			return errorReply(err.Error())
		}
		return s.ReadNote(ctx, ReadParams{Name: a["note_name"], ID: a["note_id"], Account: a["account"], Plain: plain})
	},
	applescript.CreateNote: func(ctx context.Context, s *Service, a Args) Reply {
		return s.CreateNote(ctx, CreateParams{Title: a["title"], Content: a["content"], Account: a["account"], Folder: a["folder"]})
	},
	applescript.UpdateNote: func(ctx context.Context, s *Service, a Args) Reply {
		return s.UpdateNote(ctx, UpdateParams{Name: a["note_name"], ID: a["note_id"], NewContent: a["new_content"], Account: a["account"]})
	},
	applescript.DeleteNote: func(ctx context.Context, s *Service, a Args) Reply {
		return s.DeleteNote(ctx, DeleteParams{Name: a["note_name"], ID: a["note_id"], Account: a["account"]})
	},
	applescript.ListAccounts: func(ctx context.Context, s *Service, _ Args) Reply {
		return s.ListAccounts(ctx)
	},
	applescript.ListFolders: func(ctx context.Context, s *Service, a Args) Reply {
		return s.ListFolders(ctx, a["account"])
	},
}

// OperationNames returns the names Dispatch accepts, sorted.
func OperationNames() []string {
	names := make([]string, 0, len(handlers))
	for op := range handlers {
		names = append(names, string(op))
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the operation called name.
func (s *Service) Dispatch(ctx context.Context, name string, args Args) Reply {
	h, ok := handlers[applescript.Operation(name)]
	if !ok {
		return errorReply(fmt.Sprintf("Unknown operation %q. Available: %s", name, strings.Join(OperationNames(), ", ")))
	}
	if args == nil {
		args = Args{}
	}
	return h(ctx, s, args)
}

func boolArg(a Args, key string) (bool, error) {
	v := strings.TrimSpace(a[key])
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("'%s' must be true or false, got %q", key, v)
	}
	return b, nil
}
