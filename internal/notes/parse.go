package notes

import (
	"strings"

	"github.com/HendryAvila/apple-notes-mcp/internal/applescript"
)

// Wire format delimiters. osascript renders an AppleScript list of strings
// as its items joined by ", ". Each item carries "|"-separated fields and,
// in unscoped variants, an "Account::" prefix on the first field.
//
// None of these are escaped on the way out. A name containing "|", ", "
// or a quote misparses; this is a known limitation of the text protocol.
const (
	recordSeparator  = ", "
	fieldSeparator   = "|"
	accountSeparator = "::"
	emptyCollection  = "{}"
)

// Record is one parsed item, keyed by field name.
type Record map[string]string

// Layout describes the positional fields of one record.
type Layout struct {
	Fields []string
	// Prefixed means the first field carries "Account::" which is split
	// out into the "account" key.
	Prefixed bool
}

// Layouts of the list-style operations.
var (
	noteLayout   = []string{"name", "id", "modified"}
	searchLayout = []string{"name", "id"}
	nameLayout   = []string{"name"}
)

// ParseList turns a raw success payload into records. Empty output and the
// empty-collection marker yield no records. Records with fewer fields than
// the layout are dropped without affecting their neighbours.
func ParseList(raw string, layout Layout) []Record {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == emptyCollection {
		return nil
	}
	// "osascript -s s" renders the list with braces.
	if strings.HasPrefix(raw, "{") && strings.HasSuffix(raw, "}") {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}

	var records []Record
	for _, token := range strings.Split(raw, recordSeparator) {
		token = unquote(strings.TrimSpace(token))
		if token == "" {
			continue
		}

		parts := strings.Split(token, fieldSeparator)
		if len(parts) < len(layout.Fields) {
			continue
		}

		rec := make(Record, len(layout.Fields)+1)
		if layout.Prefixed {
			if account, name, ok := strings.Cut(parts[0], accountSeparator); ok {
				rec["account"] = account
				parts[0] = name
			}
		}
		for i, key := range layout.Fields {
			rec[key] = parts[i]
		}
		records = append(records, rec)
	}
	return records
}

// unquote strips one layer of matching double or single quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// ScalarKind classifies a single-value payload.
type ScalarKind int

const (
	// ScalarValue is an ordinary value, such as a note body.
	ScalarValue ScalarKind = iota
	// ScalarSuccess is the SUCCESS confirmation of a mutation.
	ScalarSuccess
	// ScalarNotFound is the not-found sentinel of a named lookup.
	ScalarNotFound
	// ScalarError is a failure trapped inside the script.
	ScalarError
)

// ParseScalar classifies raw without splitting it. For ScalarError the
// returned string is the message after the sentinel; for ScalarValue it
// is raw unchanged.
func ParseScalar(raw string) (ScalarKind, string) {
	switch {
	case strings.HasPrefix(raw, applescript.SentinelError):
		return ScalarError, strings.TrimSpace(strings.TrimPrefix(raw, applescript.SentinelError))
	case raw == applescript.SentinelNotFound:
		return ScalarNotFound, ""
	case raw == applescript.SentinelSuccess:
		return ScalarSuccess, ""
	default:
		return ScalarValue, raw
	}
}
