// Package notes is the operation layer of the bridge. Each operation builds
// a script, runs it through an osascript.Runner, parses the output and
// renders a human-readable Reply.
//
// Nothing here is persisted: every Note, Account and Folder is built from a
// single host response and dropped when the call returns. Notes.app is the
// system of record.
//
// Known limitation: the host indexes notes by name within a container, so
// name-addressed reads and mutations against duplicate names hit whichever
// note the host finds first. Pass a note ID to address a note exactly.
package notes

// Note is a note as reported by the host. Name is not unique; ID is the
// host-assigned identifier and survives renames.
type Note struct {
	Account  string `json:"account,omitempty"`
	Name     string `json:"name"`
	ID       string `json:"id"`
	Modified string `json:"modified,omitempty"`
	Body     string `json:"body,omitempty"`
}

// Account is a Notes account, such as "iCloud" or "On My Mac".
type Account struct {
	Name string `json:"name"`
}

// Folder belongs to exactly one account.
type Folder struct {
	Account string `json:"account,omitempty"`
	Name    string `json:"name"`
}

// Reply is the result of an operation. Text is returned to the caller as
// is; IsError lets a transport signal the failure however it can.
type Reply struct {
	Text    string
	IsError bool
}

func textReply(s string) Reply  { return Reply{Text: s} }
func errorReply(s string) Reply { return Reply{Text: s, IsError: true} }

func noteFromRecord(r Record) Note {
	return Note{
		Account:  r["account"],
		Name:     r["name"],
		ID:       r["id"],
		Modified: r["modified"],
	}
}

func folderFromRecord(r Record) Folder {
	return Folder{Account: r["account"], Name: r["name"]}
}
