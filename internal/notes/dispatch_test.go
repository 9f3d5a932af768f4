package notes

import (
	"context"
	"strings"
	"testing"

	"github.com/HendryAvila/apple-notes-mcp/internal/applescript"
	"github.com/HendryAvila/apple-notes-mcp/internal/osascript"
)

func TestOperationNames_CoverBuilder(t *testing.T) {
	names := OperationNames()
	if len(names) != len(applescript.Operations()) {
		t.Fatalf("dispatch has %d operations, builder has %d", len(names), len(applescript.Operations()))
	}
	for _, op := range applescript.Operations() {
		if _, ok := handlers[op]; !ok {
			t.Errorf("no handler for %s", op)
		}
	}
}

func TestDispatch_Unknown(t *testing.T) {
	svc, _ := scripted(osascript.Success(""))
	reply := svc.Dispatch(context.Background(), "format_disk", nil)

	if !reply.IsError || !strings.Contains(reply.Text, "list_notes") {
		t.Errorf("reply = %+v, want error listing available operations", reply)
	}
}

func TestDispatch_RoutesArguments(t *testing.T) {
	tests := []struct {
		op         string
		args       Args
		response   string
		wantScript string
		wantReply  string
	}{
		{
			op:         "search_notes",
			args:       Args{"query": "milk", "account": "iCloud"},
			response:   "Groceries|x-coredata://1",
			wantScript: `set searchText to "milk"`,
			wantReply:  "1. Groceries (ID: x-coredata://1)",
		},
		{
			op:         "read_note",
			args:       Args{"note_name": "Groceries", "plain": "true"},
			response:   "milk, eggs",
			wantScript: "return plaintext of note noteName",
			wantReply:  "milk, eggs",
		},
		{
			op:         "update_note",
			args:       Args{"note_id": "x-coredata://1", "new_content": "bread"},
			response:   "SUCCESS",
			wantScript: `set body of note id noteID to "bread"`,
			wantReply:  "Successfully updated",
		},
		{
			op:         "list_folders",
			args:       Args{"account": "iCloud"},
			response:   "Notes, Work",
			wantScript: `account "iCloud"`,
			wantReply:  "2. Work",
		},
	}

	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			svc, script := scripted(osascript.Success(tt.response))
			reply := svc.Dispatch(context.Background(), tt.op, tt.args)

			if reply.IsError {
				t.Fatalf("unexpected error: %s", reply.Text)
			}
			if !strings.Contains(*script, tt.wantScript) {
				t.Errorf("script missing %q:\n%s", tt.wantScript, *script)
			}
			if !strings.Contains(reply.Text, tt.wantReply) {
				t.Errorf("reply %q missing %q", reply.Text, tt.wantReply)
			}
		})
	}
}

func TestDispatch_BadBool(t *testing.T) {
	svc, _ := scripted(osascript.Success(""))
	reply := svc.Dispatch(context.Background(), "read_note", Args{"note_name": "a", "plain": "maybe"})

	if !reply.IsError || !strings.Contains(reply.Text, "plain") {
		t.Errorf("reply = %+v", reply)
	}
}
